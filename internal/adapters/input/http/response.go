package http

import (
	"errors"
	"net/http"

	"mock-interview-api/internal/domain"
	"mock-interview-api/pkg/validator"

	validators "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, An upstream service failed. Please try again"}}
	// GatewayTimeout response
	GatewayTimeout = Status{Code: http.StatusGatewayTimeout, Message: []string{"Sorry, An upstream service did not answer in time"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Service Unavailable"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper used for errors and probes
type ResponseBody struct {
	Status Status           `json:"status,omitempty"`
	Kind   domain.ErrorKind `json:"kind,omitempty"`
	Data   interface{}      `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// QuestionsResponse struct - HTTP response DTO for generate-questions
	QuestionsResponse struct {
		Questions []string `json:"questions"`
	}

	// AnswerResponse struct - HTTP response DTO for one interview turn
	AnswerResponse struct {
		Action   domain.Action `json:"action"`
		Question string        `json:"question"`
		Summary  string        `json:"summary"`
	}

	// ReportResponse struct - HTTP response DTO for generate-report
	ReportResponse struct {
		Report string `json:"report"`
	}

	// TranscriptResponse struct - HTTP response DTO for transcribe
	TranscriptResponse struct {
		Text string `json:"text"`
	}
)

// badRequest renders a rejected request body or query
func badRequest(c *fiber.Ctx, messages ...string) error {
	status := BadRequest
	if len(messages) > 0 {
		status.Message = messages
	}
	return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: status, Kind: domain.ErrorKindValidation})
}

// invalid renders a DTO validation failure
func invalid(c *fiber.Ctx, err error) error {
	var fieldErrs validators.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return badRequest(c, validator.Messages(err)...)
	}
	return badRequest(c, err.Error())
}

// renderError maps a use-case error onto a status code and error body
func renderError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)

	var status Status
	switch kind {
	case domain.ErrorKindValidation:
		status = BadRequest
	case domain.ErrorKindTranscriptionTimeout:
		status = GatewayTimeout
	case domain.ErrorKindUpstream, domain.ErrorKindDecisionParse:
		status = BadGateway
		if domain.IsTimeout(err) {
			status = GatewayTimeout
		}
	default:
		status = InternalServerError
	}

	if status.Code >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"request_id": requestID(c),
			"kind":       kind,
		}).Errorln(err)
	}

	status.Message = []string{err.Error()}
	return c.Status(status.Code).JSON(ResponseBody{Status: status, Kind: kind})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// ErrorHandler renders errors returned by Fiber itself (unknown route, oversized body) in the common body shape
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		logrus.WithField("request_id", requestID(c)).Errorln(err)
	}
	return c.Status(code).JSON(ResponseBody{
		Status: Status{Code: code, Message: []string{err.Error()}},
		Kind:   domain.KindOf(err),
	})
}
