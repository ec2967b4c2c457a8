package protocal

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"mock-interview-api/configs"
	httpAdapter "mock-interview-api/internal/adapters/input/http"
	"mock-interview-api/internal/adapters/output/assemblyai"
	"mock-interview-api/internal/adapters/output/elevenlabs"
	"mock-interview-api/internal/adapters/output/memory"
	"mock-interview-api/internal/adapters/output/openai"
	"mock-interview-api/internal/application"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultSessionTimeout = 120 * time.Minute
	defaultMaxSessions    = 10000
	defaultBodyLimitMB    = 25
)

// ServeHTTP func
func ServeHTTP(configPath, env string) error {
	configs.InitViper(configPath, env)
	cfg := configs.GetViper()
	setupLogger(cfg.App)
	logrus.Info(cfg.App.Env)

	bodyLimitMB := cfg.App.BodyLimitMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = defaultBodyLimitMB
	}
	app := fiber.New(fiber.Config{
		BodyLimit:    bodyLimitMB << 20,
		ErrorHandler: httpAdapter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range c {
			logrus.Info("Gracefull shut down ...")
			err := app.Shutdown()
			if err != nil {
				logrus.Errorln("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters (completion, speech, session memory)
	completionClient, err := openai.NewCompletionClientAdapter(cfg.Completion)
	if err != nil {
		return err
	}
	ttsClient := elevenlabs.NewTTSClientAdapter(cfg.TTS)
	sttClient := assemblyai.NewTranscriptionClientAdapter(cfg.STT)

	sessionTimeout := time.Duration(cfg.Session.Timeout) * time.Minute
	if sessionTimeout <= 0 {
		sessionTimeout = defaultSessionTimeout
	}
	maxSessions := cfg.Session.MaxSessions
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	sessionStore := memory.NewMemorySessionStore(sessionTimeout, maxSessions)

	// Application services (use cases)
	interviewSrv := application.NewInterviewService(completionClient, sessionStore, application.InterviewSettings{
		FollowupCap:         cfg.Interview.FollowupCap,
		SummaryWindow:       cfg.Interview.SummaryWindow,
		MaxQuestions:        cfg.Interview.MaxQuestions,
		ResumeMaxChars:      cfg.Interview.ResumeMaxChars,
		JobMaxChars:         cfg.Interview.JobMaxChars,
		DefaultJob:          cfg.Interview.DefaultJob,
		RequireQuestionMark: cfg.Interview.RequireQuestionMark,
		QuestionTemperature: cfg.Completion.QuestionTemperature,
		TurnTemperature:     cfg.Completion.TurnTemperature,
		ReportTemperature:   cfg.Completion.ReportTemperature,
	})
	speechSrv := application.NewSpeechService(ttsClient, sttClient, cfg.TTS.MaxChars)

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(interviewSrv, speechSrv, completionClient)
	routes(app, hdl)

	logrus.WithFields(logrus.Fields{
		"port":            cfg.App.Port,
		"followup_cap":    cfg.Interview.FollowupCap,
		"max_sessions":    sessionStore.GetMaxSessions(),
		"session_timeout": sessionStore.GetTimeout().String(),
	}).Info("Listening")

	return app.Listen(":" + cfg.App.Port)
}

func routes(app *fiber.App, hdl *httpAdapter.HTTPHandler) {
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)
	app.Get("/health/ready", hdl.ReadinessCheck)

	api := app.Group("/api")
	{
		api.Post("/generate-questions", hdl.GenerateQuestions)
		api.Get("/tts", hdl.TextToSpeech)
		api.Post("/answer", hdl.Answer)
		api.Post("/generate-report", hdl.GenerateReport)
		api.Post("/transcribe", hdl.Transcribe)
	}
}

func setupLogger(cfg configs.App) {
	switch cfg.Env {
	case "", "local", "test":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
