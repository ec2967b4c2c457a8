package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"mock-interview-api/configs"
	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const serviceName = "completion"

// Completion defaults, applied when a setting is zero
const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 60 * time.Second
)

// maxErrorBody bounds how much of an error response is kept for logging
const maxErrorBody = 4 << 10

var _ output.CompletionClient = (*CompletionClientAdapter)(nil)

// CompletionClientAdapter struct - Output adapter for an OpenAI-compatible chat completion API.
// Requests are sent once; a failure comes back as *domain.UpstreamError.
type CompletionClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
}

// NewCompletionClientAdapter func - Creates new completion client adapter
func NewCompletionClientAdapter(config configs.Completion) (*CompletionClientAdapter, error) {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("Completion client adapter initialized with base URL: %s, model: %s, timeout: %v", baseURL, model, timeout)

	return &CompletionClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		model:      model,
		timeout:    timeout,
	}, nil
}

// ChatCompletion sends one non-streaming chat completion and returns the first choice
func (a *CompletionClientAdapter) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	body := chatRequest{
		Model:       a.model,
		Messages:    make([]chatMessage, 0, len(request.Messages)),
		Temperature: request.Temperature,
	}
	for _, msg := range request.Messages {
		body.Messages = append(body.Messages, chatMessage{Role: string(msg.Role), Content: msg.Content})
	}

	var out chatResponse
	if err := a.call(ctx, http.MethodPost, "/v1/chat/completions", body, &out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, &domain.UpstreamError{Service: serviceName, Err: errors.New("no choices in response")}
	}

	logrus.Debugf("Chat completion done: model=%s, tokens=%d, finish=%s",
		out.Model, out.Usage.TotalTokens, out.Choices[0].FinishReason)

	return &domain.ChatCompletionResponse{
		Content:          out.Choices[0].Message.Content,
		Model:            out.Model,
		PromptTokens:     out.Usage.PromptTokens,
		CompletionTokens: out.Usage.CompletionTokens,
		TotalTokens:      out.Usage.TotalTokens,
	}, nil
}

// ListModels lists the models the endpoint serves. It backs the readiness probe.
func (a *CompletionClientAdapter) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	var out modelList
	if err := a.call(ctx, http.MethodGet, "/v1/models", nil, &out); err != nil {
		return nil, err
	}

	models := make([]domain.ModelInfo, 0, len(out.Data))
	for _, m := range out.Data {
		models = append(models, domain.ModelInfo{ID: m.ID, Object: m.Object, OwnedBy: m.OwnedBy})
	}
	return models, nil
}

// call sends an authorized JSON request and decodes a success body into out.
// in may be nil for requests without a body.
func (a *CompletionClientAdapter) call(ctx context.Context, method, path string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Service: serviceName, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logrus.Warnf("Completion endpoint %s answered %d", path, resp.StatusCode)
		return &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(detail)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("failed to parse %s response: %w", path, err)}
	}
	return nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type modelList struct {
	Data []struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		OwnedBy string `json:"owned_by"`
	} `json:"data"`
}
