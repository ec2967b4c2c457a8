package input

import (
	"context"

	"mock-interview-api/internal/domain"
)

// InterviewService interface - Input port (use case)
// Defines what the application can do for one mock interview
type InterviewService interface {
	// GenerateQuestions produces the initial question set from a résumé and job context
	GenerateQuestions(ctx context.Context, request domain.QuestionRequest) (*domain.QuestionSet, error)

	// Answer evaluates one candidate answer and decides follow-up, next or finish
	Answer(ctx context.Context, request domain.TurnRequest) (*domain.TurnResult, error)

	// GenerateReport synthesizes the post-interview evaluation
	GenerateReport(ctx context.Context, request domain.ReportRequest) (*domain.Report, error)
}
