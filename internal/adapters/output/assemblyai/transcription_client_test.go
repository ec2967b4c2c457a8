package assemblyai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mock-interview-api/configs"
	"mock-interview-api/internal/domain"
)

// newFakeAssembly serves upload and submit, and answers polls with statusFor(pollNumber)
func newFakeAssembly(t *testing.T, polls *int32, statusFor func(n int32) string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "stt-key" {
			t.Errorf("expected authorization header, got: %q", r.Header.Get("Authorization"))
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/upload":
			audio, _ := io.ReadAll(r.Body)
			if string(audio) != "webm-bytes" {
				t.Errorf("unexpected upload body: %q", audio)
			}
			w.Write([]byte(`{"upload_url":"https://cdn.example/abc"}`))

		case r.Method == http.MethodPost && r.URL.Path == "/v2/transcript":
			var body transcriptAPIRequest
			json.NewDecoder(r.Body).Decode(&body)
			if body.AudioURL != "https://cdn.example/abc" {
				t.Errorf("unexpected audio_url: %s", body.AudioURL)
			}
			w.Write([]byte(`{"id":"job-1","status":"queued"}`))

		case r.Method == http.MethodGet && r.URL.Path == "/v2/transcript/job-1":
			n := atomic.AddInt32(polls, 1)
			status := statusFor(n)
			resp := transcriptAPIResponse{ID: "job-1", Status: status}
			switch status {
			case "completed":
				resp.Text = "I led the payments team."
			case "error":
				resp.Error = "audio too short"
			}
			json.NewEncoder(w).Encode(resp)

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestAdapter(baseURL string, maxPolls int) *TranscriptionClientAdapter {
	return NewTranscriptionClientAdapter(configs.STT{
		BaseURL:        baseURL,
		APIKey:         "stt-key",
		Timeout:        5,
		PollIntervalMs: 1,
		MaxPolls:       maxPolls,
	})
}

// TestTranscribeCompletesAfterPolling tests the upload, submit, poll sequence
func TestTranscribeCompletesAfterPolling(t *testing.T) {
	var polls int32
	server := newFakeAssembly(t, &polls, func(n int32) string {
		if n < 3 {
			return "processing"
		}
		return "completed"
	})
	defer server.Close()

	transcript, err := newTestAdapter(server.URL, 10).Transcribe(context.Background(), []byte("webm-bytes"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if transcript.Text != "I led the payments team." || transcript.JobID != "job-1" {
		t.Errorf("unexpected transcript: %+v", transcript)
	}

	if atomic.LoadInt32(&polls) != 3 {
		t.Errorf("expected 3 polls, got: %d", polls)
	}
}

// TestTranscribeTimesOutAfterPollBudget tests that a job stuck in processing does not poll forever
func TestTranscribeTimesOutAfterPollBudget(t *testing.T) {
	var polls int32
	server := newFakeAssembly(t, &polls, func(int32) string { return "processing" })
	defer server.Close()

	_, err := newTestAdapter(server.URL, 5).Transcribe(context.Background(), []byte("webm-bytes"))

	if !errors.Is(err, domain.ErrTranscriptionTimeout) {
		t.Fatalf("expected ErrTranscriptionTimeout, got: %v", err)
	}

	if domain.KindOf(err) != domain.ErrorKindTranscriptionTimeout {
		t.Errorf("expected transcription_timeout kind, got: %s", domain.KindOf(err))
	}

	if atomic.LoadInt32(&polls) != 5 {
		t.Errorf("expected exactly 5 polls, got: %d", polls)
	}
}

// TestTranscribeJobError tests the error status of a job
func TestTranscribeJobError(t *testing.T) {
	var polls int32
	server := newFakeAssembly(t, &polls, func(int32) string { return "error" })
	defer server.Close()

	_, err := newTestAdapter(server.URL, 5).Transcribe(context.Background(), []byte("webm-bytes"))

	if !errors.Is(err, domain.ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got: %v", err)
	}

	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected failure to be an upstream error, got: %v", err)
	}
}

// TestTranscribeStopsOnContextCancel tests that polling honours cancellation
func TestTranscribeStopsOnContextCancel(t *testing.T) {
	var polls int32
	server := newFakeAssembly(t, &polls, func(int32) string { return "processing" })
	defer server.Close()

	adapter := NewTranscriptionClientAdapter(configs.STT{
		BaseURL:        server.URL,
		APIKey:         "stt-key",
		PollIntervalMs: 200,
		MaxPolls:       100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.Transcribe(ctx, []byte("webm-bytes"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline, got: %v", err)
	}
}

// TestUploadFailureIsUpstreamError tests that a rejected upload surfaces its status
func TestUploadFailureIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Authentication error"}`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL, 5).Transcribe(context.Background(), []byte("webm-bytes"))

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *domain.UpstreamError, got: %v", err)
	}

	if upstream.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got: %d", upstream.StatusCode)
	}
}
