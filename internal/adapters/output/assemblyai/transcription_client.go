package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mock-interview-api/configs"
	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const serviceName = "transcription"

const maxErrorBody = 4 << 10

// Polling defaults
const (
	defaultPollInterval = 1 * time.Second
	defaultMaxPolls     = 120
)

var _ output.Transcriber = (*TranscriptionClientAdapter)(nil)

// TranscriptionClientAdapter struct - Output adapter for AssemblyAI speech-to-text.
// A transcription is three steps: upload the audio, submit a job, poll the job.
type TranscriptionClientAdapter struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	maxPolls     int
}

// NewTranscriptionClientAdapter func - Creates new transcription client adapter
func NewTranscriptionClientAdapter(config configs.STT) *TranscriptionClientAdapter {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.assemblyai.com"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	pollInterval := time.Duration(config.PollIntervalMs) * time.Millisecond
	if config.PollIntervalMs <= 0 {
		pollInterval = defaultPollInterval
	}

	maxPolls := config.MaxPolls
	if maxPolls <= 0 {
		maxPolls = defaultMaxPolls
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			IdleConnTimeout: 90 * time.Second,
		},
	}

	logrus.Infof("Transcription client adapter initialized with base URL: %s, poll every %v up to %d times", baseURL, pollInterval, maxPolls)

	return &TranscriptionClientAdapter{
		httpClient:   httpClient,
		baseURL:      baseURL,
		apiKey:       config.APIKey,
		pollInterval: pollInterval,
		maxPolls:     maxPolls,
	}
}

// Transcribe uploads audio, starts a job and waits for it within the poll budget
func (a *TranscriptionClientAdapter) Transcribe(ctx context.Context, audio []byte) (*domain.Transcript, error) {
	uploadURL, err := a.upload(ctx, audio)
	if err != nil {
		return nil, fmt.Errorf("failed to upload audio: %w", err)
	}

	jobID, err := a.submit(ctx, uploadURL)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transcription: %w", err)
	}

	return a.poll(ctx, jobID)
}

func (a *TranscriptionClientAdapter) upload(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/upload", bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	var out uploadAPIResponse
	if err := a.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.UploadURL == "" {
		return "", &domain.UpstreamError{Service: serviceName, Err: errors.New("upload returned no url")}
	}
	return out.UploadURL, nil
}

func (a *TranscriptionClientAdapter) submit(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(transcriptAPIRequest{AudioURL: audioURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/transcript", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var out transcriptAPIResponse
	if err := a.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", &domain.UpstreamError{Service: serviceName, Err: errors.New("submit returned no job id")}
	}
	return out.ID, nil
}

func (a *TranscriptionClientAdapter) poll(ctx context.Context, jobID string) (*domain.Transcript, error) {
	endpoint := fmt.Sprintf("%s/v2/transcript/%s", a.baseURL, url.PathEscape(jobID))
	status := domain.TranscriptionQueued

	for attempt := 1; attempt <= a.maxPolls; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		var job transcriptAPIResponse
		if err := a.doJSON(req, &job); err != nil {
			return nil, fmt.Errorf("failed to poll transcription %s: %w", jobID, err)
		}
		status = domain.TranscriptionStatus(job.Status)

		switch status {
		case domain.TranscriptionCompleted:
			logrus.Debugf("Transcription %s completed after %d polls", jobID, attempt)
			return &domain.Transcript{Text: job.Text, JobID: jobID}, nil
		case domain.TranscriptionError:
			return nil, &domain.UpstreamError{
				Service: serviceName,
				Body:    job.Error,
				Err:     fmt.Errorf("%w: job %s: %s", domain.ErrTranscriptionFailed, jobID, job.Error),
			}
		}

		if attempt == a.maxPolls {
			break
		}

		timer := time.NewTimer(a.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("transcription %s cancelled: %w", jobID, ctx.Err())
		case <-timer.C:
		}
	}

	logrus.Warnf("Transcription %s still %s after %d polls", jobID, status, a.maxPolls)
	return nil, fmt.Errorf("%w: job %s still %s after %d polls", domain.ErrTranscriptionTimeout, jobID, status, a.maxPolls)
}

// doJSON sends an authorized request and decodes a JSON success body into out
func (a *TranscriptionClientAdapter) doJSON(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
		return &domain.UpstreamError{Service: serviceName, Timeout: timeout, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}

type uploadAPIResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptAPIRequest struct {
	AudioURL string `json:"audio_url"`
}

type transcriptAPIResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}
