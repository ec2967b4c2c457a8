package output

import (
	"context"
	"io"

	"mock-interview-api/internal/domain"
)

// SpeechSynthesizer interface - Output port for text-to-speech
type SpeechSynthesizer interface {
	// Synthesize starts an audio stream for the given text. The caller must close the stream.
	// The stream has no overall deadline; a non-success status is returned as *domain.UpstreamError
	// carrying the response body.
	Synthesize(ctx context.Context, request domain.SynthesisRequest) (io.ReadCloser, error)
}

// Transcriber interface - Output port for speech-to-text
type Transcriber interface {
	// Transcribe uploads raw audio, starts a job and polls it until it completes.
	// Returns domain.ErrTranscriptionTimeout when the poll budget is exhausted.
	Transcribe(ctx context.Context, audio []byte) (*domain.Transcript, error)
}
