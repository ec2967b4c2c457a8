package domain

import "strings"

// Action is the dialogue decision for one turn
type Action string

const (
	// ActionFollowup - ask a deeper question about the current topic
	ActionFollowup Action = "followup"
	// ActionNext - move on to the next main question
	ActionNext Action = "next"
	// ActionFinish - end the interview
	ActionFinish Action = "finish"
)

// Valid reports whether a is one of the three known actions
func (a Action) Valid() bool {
	switch a {
	case ActionFollowup, ActionNext, ActionFinish:
		return true
	}
	return false
}

type (
	// TurnRequest is the immutable input to one policy evaluation
	TurnRequest struct {
		SessionID     string
		Job           string
		Question      string
		Answer        string
		FollowupCount int
	}

	// ModelDecision is the structured output of the completion capability for one turn.
	// It is not trusted until validated.
	ModelDecision struct {
		Action          Action `json:"action" validate:"required"`
		Question        string `json:"question" validate:"required,notblank"`
		Acknowledgement string `json:"acknowledgement,omitempty"`
		Summary         string `json:"summary" validate:"required,notblank"`
	}

	// TurnResult is the outcome of one policy evaluation
	TurnResult struct {
		Action     Action
		Question   string // follow-up, transition or closing text to surface to the candidate
		Summary    string // appended to the session memory
		Overridden bool   // the model asked for a follow-up past the cap
	}

	// QuestionRequest - input for initial question-set generation
	QuestionRequest struct {
		Resume string
		Job    string
	}

	// QuestionSet - generated interview questions
	QuestionSet struct {
		Questions []string
		Fallback  bool // extracted from prose instead of structured output
	}

	// QnA is one question and the candidate's answer
	QnA struct {
		Question string
		Answer   string
	}

	// ReportRequest - input for post-interview report synthesis
	ReportRequest struct {
		SessionID string
		QnA       []QnA
		Job       string
		Resume    string
	}

	// Report - free-text candidate evaluation
	Report struct {
		Text string
	}
)

// Validate checks the fields a turn cannot be evaluated without
func (r TurnRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.SessionID) == "":
		return NewValidationError("id", "session id missing")
	case strings.TrimSpace(r.Question) == "":
		return NewValidationError("question", "question missing")
	case strings.TrimSpace(r.Answer) == "":
		return NewValidationError("answer", "answer missing")
	case r.FollowupCount < 0:
		return NewValidationError("followupCount", "must not be negative")
	}
	return nil
}

// Validate func
func (r QuestionRequest) Validate() error {
	if strings.TrimSpace(r.Resume) == "" {
		return NewValidationError("resume", "resume missing")
	}
	return nil
}

// Validate func
func (r ReportRequest) Validate() error {
	if len(r.QnA) == 0 {
		return NewValidationError("qna", "invalid or missing interview data")
	}
	return nil
}

// Finished reports whether the turn ended the interview
func (r TurnResult) Finished() bool {
	return r.Action == ActionFinish
}
