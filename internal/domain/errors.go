package domain

import (
	"context"
	"errors"
	"fmt"
)

// Interview error types

var (
	// ErrValidation indicates a request was rejected before any upstream call
	ErrValidation = errors.New("validation failed")

	// ErrUpstream indicates an external capability answered with a non-success status or did not answer
	ErrUpstream = errors.New("upstream service error")

	// ErrDecisionParse indicates the completion output is not the expected structured shape
	ErrDecisionParse = errors.New("decision parse error")

	// ErrTranscriptionTimeout indicates a transcription job did not finish within the poll budget
	ErrTranscriptionTimeout = errors.New("transcription timed out")

	// ErrTranscriptionFailed indicates the transcription job ended in the error state
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// ErrorKind classifies an error for rendering to the caller
type ErrorKind string

const (
	// ErrorKindValidation - missing or malformed input
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindUpstream - external capability failure
	ErrorKindUpstream ErrorKind = "upstream"
	// ErrorKindDecisionParse - malformed structured output
	ErrorKindDecisionParse ErrorKind = "decision_parse"
	// ErrorKindTranscriptionTimeout - transcription poll budget exhausted
	ErrorKindTranscriptionTimeout ErrorKind = "transcription_timeout"
	// ErrorKindInternal - anything else
	ErrorKindInternal ErrorKind = "internal"
)

// ValidationError reports a missing or invalid request field
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError func
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UpstreamError carries the status and body of a failed call to an external capability
// so the caller can log it and decide what to do.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Timeout    bool
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d - %s", e.Service, e.StatusCode, e.Body)
	case e.Timeout:
		return fmt.Sprintf("%s: request timed out: %v", e.Service, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Service, ErrUpstream)
	}
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// DecisionParseError reports completion output that could not be turned into a structured value
type DecisionParseError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *DecisionParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrDecisionParse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrDecisionParse, e.Reason)
}

func (e *DecisionParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecisionParse}
	}
	return []error{ErrDecisionParse, e.Err}
}

// KindOf maps an error onto the caller-facing taxonomy
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return ErrorKindValidation
	case errors.Is(err, ErrTranscriptionTimeout):
		return ErrorKindTranscriptionTimeout
	case errors.Is(err, ErrDecisionParse):
		return ErrorKindDecisionParse
	case errors.Is(err, ErrUpstream):
		return ErrorKindUpstream
	default:
		return ErrorKindInternal
	}
}

// IsTimeout reports whether err is an upstream timeout or an exceeded deadline
func IsTimeout(err error) bool {
	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.Timeout {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
