package application

import (
	"context"
	"errors"
	"testing"

	"mock-interview-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision(t *testing.T) {
	g := NewCompletionGateway(&MockCompletionClient{})

	decision, err := g.ParseDecision(`{"action":"followup","question":"Why?","acknowledgement":"Nice.","summary":"Good."}`)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionFollowup, decision.Action)
	assert.Equal(t, "Why?", decision.Question)
	assert.Equal(t, "Nice.", decision.Acknowledgement)

	decision, err = g.ParseDecision("```json\n{\"action\":\"finish\",\"question\":\"Bye!\",\"summary\":\"Done.\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionFinish, decision.Action)
}

func TestParseDecisionRejects(t *testing.T) {
	g := NewCompletionGateway(&MockCompletionClient{})

	tests := map[string]string{
		"prose":          "Let's move on.",
		"array":          `[{"action":"next"}]`,
		"blank question": `{"action":"next","question":"   ","summary":"S"}`,
		"unknown action": `{"action":"FOLLOWUP","question":"Q?","summary":"S"}`,
		"no summary":     `{"action":"next","question":"Q?"}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := g.ParseDecision(raw)
			require.Error(t, err)

			var parseErr *domain.DecisionParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, raw, parseErr.Raw)
			assert.Equal(t, domain.ErrorKindDecisionParse, domain.KindOf(err))
		})
	}
}

func TestDecidePassesUpstreamErrorsThrough(t *testing.T) {
	upstream := &domain.UpstreamError{Service: "completion", StatusCode: 429, Body: "rate limited"}
	client := &MockCompletionClient{
		ChatCompletionFunc: func(context.Context, domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
			return nil, upstream
		},
	}
	g := NewCompletionGateway(client)

	_, err := g.Decide(context.Background(), "prompt", 0.4)

	assert.Same(t, upstream, err)
	assert.Equal(t, 1, client.CallCount())
}

func TestCompleteSendsSingleUserMessage(t *testing.T) {
	client := &MockCompletionClient{ChatCompletionFunc: respondWith("text")}
	g := NewCompletionGateway(client)

	out, err := g.Complete(context.Background(), "hello", 0.7)

	require.NoError(t, err)
	assert.Equal(t, "text", out)
	require.Len(t, client.Requests, 1)
	assert.Equal(t, []domain.ChatMessage{{Role: domain.ChatMessageRoleUser, Content: "hello"}}, client.Requests[0].Messages)
	assert.Equal(t, 0.7, *client.Requests[0].Temperature)
}
