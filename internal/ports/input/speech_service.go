package input

import (
	"context"
	"io"

	"mock-interview-api/internal/domain"
)

// SpeechService interface - Input port (use case)
type SpeechService interface {
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
	Transcribe(ctx context.Context, audio []byte) (*domain.Transcript, error)
}
