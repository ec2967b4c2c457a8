package output

import (
	"context"

	"mock-interview-api/internal/domain"
)

// CompletionClient interface - Output port
// Defines what the application needs from an OpenAI-compatible text-completion API.
type CompletionClient interface {
	// ChatCompletion sends one non-streaming completion request and returns the generated text.
	// A non-success status or a timeout is returned as *domain.UpstreamError.
	// Implementations must not retry.
	ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)

	// ListModels queries the models endpoint. Used for model discovery and readiness checks.
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
}
