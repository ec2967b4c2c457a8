package http

import (
	"context"
	"io"
	"strings"

	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/input"
	"mock-interview-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ReadinessChecker is asked whether the completion endpoint answers
type ReadinessChecker interface {
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	interview input.InterviewService
	speech    input.SpeechService
	readiness ReadinessChecker
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(interview input.InterviewService, speech input.SpeechService, readiness ReadinessChecker) *HTTPHandler {
	return &HTTPHandler{
		interview: interview,
		speech:    speech,
		readiness: readiness,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ReadinessCheck func
/* readiness */
// ReadinessCheck godoc
// @Summary Readiness probe
// @Description Lists the models of the completion endpoint
// @Tags Health
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready	[get]
// @Produce json
func (hdl *HTTPHandler) ReadinessCheck(c *fiber.Ctx) error {
	models, err := hdl.readiness.ListModels(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable, Kind: domain.KindOf(err)})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: fiber.Map{"models": len(models)}})
}

// GenerateQuestions func
/* generate questions */
// GenerateQuestions godoc
// @Summary Generate interview questions
// @Description Generate the initial question set from a résumé and an optional job title or description
// @Tags Interview
// @Accept application/json
// @Success 200 {object} QuestionsResponse
// @Failure 400 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Router /api/generate-questions	[post]
// @Produce json
// @param GenerateQuestions body GenerateQuestionsRequest true "GenerateQuestions"
func (hdl *HTTPHandler) GenerateQuestions(c *fiber.Ctx) error {
	var request GenerateQuestionsRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return badRequest(c)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return invalid(c, err)
	}

	result, err := hdl.interview.GenerateQuestions(c.UserContext(), request.toDomain())
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(QuestionsResponse{Questions: result.Questions})
}

// Answer func
/* answer */
// Answer godoc
// @Summary Evaluate an answer
// @Description Evaluate one candidate answer and decide whether to follow up, move on or finish
// @Tags Interview
// @Accept application/json
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Failure 504 {object} ResponseBody
// @Router /api/answer	[post]
// @Produce json
// @param Answer body AnswerRequest true "Answer"
func (hdl *HTTPHandler) Answer(c *fiber.Ctx) error {
	var request AnswerRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return badRequest(c)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return invalid(c, err)
	}

	result, err := hdl.interview.Answer(c.UserContext(), request.toDomain())
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(AnswerResponse{
		Action:   result.Action,
		Question: result.Question,
		Summary:  result.Summary,
	})
}

// GenerateReport func
/* generate report */
// GenerateReport godoc
// @Summary Generate evaluation report
// @Description Write the post-interview evaluation from the full transcript
// @Tags Interview
// @Accept application/json
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Router /api/generate-report	[post]
// @Produce json
// @param GenerateReport body GenerateReportRequest true "GenerateReport"
func (hdl *HTTPHandler) GenerateReport(c *fiber.Ctx) error {
	var request GenerateReportRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return badRequest(c)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return invalid(c, err)
	}

	report, err := hdl.interview.GenerateReport(c.UserContext(), request.toDomain())
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ReportResponse{Report: report.Text})
}

// TextToSpeech func
/* tts */
// TextToSpeech godoc
// @Summary Speak text
// @Description Stream the spoken text as MP3. Text beyond the length cap is cut off.
// @Tags Speech
// @Success 200 {file} binary
// @Failure 400 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Router /api/tts	[get]
// @Produce audio/mpeg
// @param text query string true "text"
func (hdl *HTTPHandler) TextToSpeech(c *fiber.Ctx) error {
	var query TTSQuery
	if err := c.QueryParser(&query); err != nil {
		logrus.Errorln(err)
		return badRequest(c)
	}
	if err := hdl.validator.ValidateStruct(query); err != nil {
		return badRequest(c, "text missing")
	}

	stream, err := hdl.speech.Synthesize(c.UserContext(), query.Text)
	if err != nil {
		return renderError(c, err)
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	// fasthttp closes the stream once the body is written
	return c.Status(fiber.StatusOK).SendStream(stream)
}

// Transcribe func
/* transcribe */
// Transcribe godoc
// @Summary Transcribe an answer
// @Description Upload recorded audio and wait for its transcript
// @Tags Speech
// @Accept multipart/form-data
// @Success 200 {object} TranscriptResponse
// @Failure 400 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Failure 504 {object} ResponseBody
// @Router /api/transcribe	[post]
// @Produce json
// @param audio formData file true "audio"
func (hdl *HTTPHandler) Transcribe(c *fiber.Ctx) error {
	header, err := c.FormFile("audio")
	if err != nil {
		logrus.Debugf("No audio part: %v", err)
		return badRequest(c, "audio missing")
	}

	file, err := header.Open()
	if err != nil {
		logrus.Errorln(err)
		return badRequest(c, "audio unreadable")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		logrus.Errorln(err)
		return badRequest(c, "audio unreadable")
	}

	transcript, err := hdl.speech.Transcribe(c.UserContext(), audio)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(TranscriptResponse{Text: strings.TrimSpace(transcript.Text)})
}
