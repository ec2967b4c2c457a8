package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/input"
	"mock-interview-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

var _ input.SpeechService = (*SpeechService)(nil)

const defaultTTSMaxChars = 950

// SpeechService struct - Application service for voice in and out
type SpeechService struct {
	synthesizer output.SpeechSynthesizer
	transcriber output.Transcriber
	maxChars    int
}

// NewSpeechService func
func NewSpeechService(synthesizer output.SpeechSynthesizer, transcriber output.Transcriber, maxChars int) *SpeechService {
	if maxChars <= 0 {
		maxChars = defaultTTSMaxChars
	}
	return &SpeechService{
		synthesizer: synthesizer,
		transcriber: transcriber,
		maxChars:    maxChars,
	}
}

// Synthesize func - Use case: speak a question. Text beyond the cap is cut off.
func (s *SpeechService) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "text missing")
	}

	stream, err := s.synthesizer.Synthesize(ctx, domain.SynthesisRequest{
		Text: domain.TruncateRunes(text, s.maxChars),
	})
	if err != nil {
		logrus.Errorf("Speech synthesis failed: %v", err)
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	return stream, nil
}

// Transcribe func - Use case: turn a recorded answer into text
func (s *SpeechService) Transcribe(ctx context.Context, audio []byte) (*domain.Transcript, error) {
	if len(audio) == 0 {
		return nil, domain.NewValidationError("audio", "audio missing")
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		logrus.Errorf("Transcription failed: %v", err)
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}

	logrus.Debugf("Transcription %s returned %d chars", transcript.JobID, len(transcript.Text))
	return transcript, nil
}
