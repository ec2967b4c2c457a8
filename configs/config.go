package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App        `mapstructure:"app"`
	Completion `mapstructure:"completion"`
	Interview  `mapstructure:"interview"`
	Session    `mapstructure:"session"`
	TTS        `mapstructure:"tts"`
	STT        `mapstructure:"stt"`
}

// App struct
type App struct {
	Debug       bool   `mapstructure:"debug"`
	Env         string `mapstructure:"env"`
	Port        string `mapstructure:"port"`
	BodyLimitMB int    `mapstructure:"body_limit_mb"`
}

// Completion struct - OpenAI-compatible chat completion endpoint
type Completion struct {
	BaseURL             string  `mapstructure:"base_url"`
	APIKey              string  `mapstructure:"api_key"`
	Model               string  `mapstructure:"model"`
	Timeout             int     `mapstructure:"timeout"` // seconds
	QuestionTemperature float64 `mapstructure:"question_temperature"`
	TurnTemperature     float64 `mapstructure:"turn_temperature"`
	ReportTemperature   float64 `mapstructure:"report_temperature"`
}

// Interview struct - dialogue policy and prompt limits
type Interview struct {
	FollowupCap         int    `mapstructure:"followup_cap"`
	SummaryWindow       int    `mapstructure:"summary_window"`
	MaxQuestions        int    `mapstructure:"max_questions"`
	ResumeMaxChars      int    `mapstructure:"resume_max_chars"`
	JobMaxChars         int    `mapstructure:"job_max_chars"`
	DefaultJob          string `mapstructure:"default_job"`
	RequireQuestionMark bool   `mapstructure:"require_question_mark"`
}

// Session struct - summary memory lifecycle
type Session struct {
	Timeout     int `mapstructure:"timeout"` // minutes since last write
	MaxSessions int `mapstructure:"max_sessions"`
}

// TTS struct - speech synthesis endpoint
type TTS struct {
	BaseURL         string  `mapstructure:"base_url"`
	APIKey          string  `mapstructure:"api_key"`
	VoiceID         string  `mapstructure:"voice_id"`
	ModelID         string  `mapstructure:"model_id"`
	Stability       float64 `mapstructure:"stability"`
	SimilarityBoost float64 `mapstructure:"similarity_boost"`
	MaxChars        int     `mapstructure:"max_chars"`
}

// STT struct - speech transcription endpoint
type STT struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Timeout        int    `mapstructure:"timeout"` // seconds, per request
	PollIntervalMs int    `mapstructure:"poll_interval_ms"`
	MaxPolls       int    `mapstructure:"max_polls"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	// .env is optional; real environment variables still win
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	if env != "" {
		viper.Set("app.env", env)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
