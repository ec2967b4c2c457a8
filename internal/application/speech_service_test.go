package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"mock-interview-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeTruncatesText(t *testing.T) {
	synth := &MockSpeechSynthesizer{
		SynthesizeFunc: func(context.Context, domain.SynthesisRequest) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("audio-bytes")), nil
		},
	}
	svc := NewSpeechService(synth, &MockTranscriber{}, 10)

	stream, err := svc.Synthesize(context.Background(), strings.Repeat("a", 25))
	require.NoError(t, err)
	defer stream.Close()

	body, _ := io.ReadAll(stream)
	assert.Equal(t, "audio-bytes", string(body))
	assert.Equal(t, strings.Repeat("a", 10), synth.LastRequest.Text)
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	synth := &MockSpeechSynthesizer{}
	svc := NewSpeechService(synth, &MockTranscriber{}, 0)

	_, err := svc.Synthesize(context.Background(), "  ")

	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Nil(t, synth.LastRequest)
}

func TestSynthesizeWrapsUpstreamError(t *testing.T) {
	synth := &MockSpeechSynthesizer{
		SynthesizeFunc: func(context.Context, domain.SynthesisRequest) (io.ReadCloser, error) {
			return nil, &domain.UpstreamError{Service: "tts", StatusCode: 401, Body: "bad key"}
		},
	}
	svc := NewSpeechService(synth, &MockTranscriber{}, 0)

	_, err := svc.Synthesize(context.Background(), "Hello")

	assert.Equal(t, domain.ErrorKindUpstream, domain.KindOf(err))
}

func TestTranscribe(t *testing.T) {
	transcriber := &MockTranscriber{
		TranscribeFunc: func(_ context.Context, audio []byte) (*domain.Transcript, error) {
			return &domain.Transcript{Text: "I led the migration.", JobID: "job-1"}, nil
		},
	}
	svc := NewSpeechService(&MockSpeechSynthesizer{}, transcriber, 0)

	transcript, err := svc.Transcribe(context.Background(), []byte{0x1, 0x2})

	require.NoError(t, err)
	assert.Equal(t, "I led the migration.", transcript.Text)
}

func TestTranscribeErrors(t *testing.T) {
	transcriber := &MockTranscriber{
		TranscribeFunc: func(context.Context, []byte) (*domain.Transcript, error) {
			return nil, domain.ErrTranscriptionTimeout
		},
	}
	svc := NewSpeechService(&MockSpeechSynthesizer{}, transcriber, 0)

	_, err := svc.Transcribe(context.Background(), nil)
	assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	assert.Zero(t, transcriber.Calls)

	_, err = svc.Transcribe(context.Background(), []byte{0x1})
	assert.Equal(t, domain.ErrorKindTranscriptionTimeout, domain.KindOf(err))
}
