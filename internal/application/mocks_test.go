package application

import (
	"context"
	"io"
	"strings"
	"sync"

	"mock-interview-api/internal/domain"
)

// Mock implementations for testing

// MockCompletionClient implements output.CompletionClient for testing
type MockCompletionClient struct {
	ChatCompletionFunc func(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)
	ListModelsFunc     func(ctx context.Context) ([]domain.ModelInfo, error)

	mu sync.Mutex
	// Captured values for assertions
	Requests []domain.ChatCompletionRequest
}

func (m *MockCompletionClient) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, request)
	m.mu.Unlock()
	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, request)
	}
	return &domain.ChatCompletionResponse{Content: `{"action":"next","question":"Thanks.","summary":"Answered."}`}, nil
}

func (m *MockCompletionClient) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, nil
}

// CallCount returns how many completion requests were made
func (m *MockCompletionClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// LastPrompt returns the content of the last request's first message
func (m *MockCompletionClient) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return ""
	}
	return m.Requests[len(m.Requests)-1].Messages[0].Content
}

// respondWith returns a ChatCompletionFunc answering every call with content
func respondWith(content string) func(context.Context, domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	return func(context.Context, domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
		return &domain.ChatCompletionResponse{Content: content}, nil
	}
}

// MockSummaryStore implements output.SummaryStore for testing with a plain map
type MockSummaryStore struct {
	AppendFunc func(sessionID, summary string) error

	mu       sync.Mutex
	sessions map[string][]string

	// Captured values for assertions
	LastRecentN int
	AppendCalls int
}

func NewMockSummaryStore() *MockSummaryStore {
	return &MockSummaryStore{sessions: make(map[string][]string)}
}

func (m *MockSummaryStore) Recent(sessionID string, n int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRecentN = n
	all := m.sessions[sessionID]
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return append([]string{}, all...), nil
}

func (m *MockSummaryStore) All(sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.sessions[sessionID]...), nil
}

func (m *MockSummaryStore) Append(sessionID, summary string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendCalls++
	if m.AppendFunc != nil {
		if err := m.AppendFunc(sessionID, summary); err != nil {
			return err
		}
	}
	m.sessions[sessionID] = append(m.sessions[sessionID], summary)
	return nil
}

func (m *MockSummaryStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// Summaries returns a copy of a session's summaries
func (m *MockSummaryStore) Summaries(sessionID string) []string {
	all, _ := m.All(sessionID)
	return all
}

// MockSpeechSynthesizer implements output.SpeechSynthesizer for testing
type MockSpeechSynthesizer struct {
	SynthesizeFunc func(ctx context.Context, request domain.SynthesisRequest) (io.ReadCloser, error)
	LastRequest    *domain.SynthesisRequest
}

func (m *MockSpeechSynthesizer) Synthesize(ctx context.Context, request domain.SynthesisRequest) (io.ReadCloser, error) {
	m.LastRequest = &request
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, request)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

// MockTranscriber implements output.Transcriber for testing
type MockTranscriber struct {
	TranscribeFunc func(ctx context.Context, audio []byte) (*domain.Transcript, error)
	Calls          int
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte) (*domain.Transcript, error) {
	m.Calls++
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audio)
	}
	return &domain.Transcript{Text: "transcribed"}, nil
}
