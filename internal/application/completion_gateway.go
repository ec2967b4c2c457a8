package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/output"
	"mock-interview-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// maxLoggedRaw bounds the raw completion text kept in logs and parse errors
const maxLoggedRaw = 2000

// CompletionGateway sends prompts to the completion capability and parses what comes back.
// It never retries; failures go to the caller unchanged.
type CompletionGateway struct {
	client    output.CompletionClient
	validator validator.Validator
}

// NewCompletionGateway func
func NewCompletionGateway(client output.CompletionClient) *CompletionGateway {
	return &CompletionGateway{
		client:    client,
		validator: validator.New(),
	}
}

// Complete returns the raw completion text for a prompt
func (g *CompletionGateway) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	resp, err := g.client.ChatCompletion(ctx, domain.NewUserPrompt(prompt, temperature))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Decide returns the validated dialogue decision for a turn prompt
func (g *CompletionGateway) Decide(ctx context.Context, prompt string, temperature float64) (*domain.ModelDecision, error) {
	raw, err := g.Complete(ctx, prompt, temperature)
	if err != nil {
		return nil, err
	}

	decision, err := g.ParseDecision(raw)
	if err != nil {
		logrus.WithField("raw", domain.TruncateRunes(raw, maxLoggedRaw)).Warnf("Unparseable dialogue decision: %v", err)
		return nil, err
	}
	return decision, nil
}

// ParseDecision turns completion text into a ModelDecision, rejecting missing fields and unknown actions
func (g *CompletionGateway) ParseDecision(raw string) (*domain.ModelDecision, error) {
	text := trimCodeFence(raw)

	var decision domain.ModelDecision
	if err := json.Unmarshal([]byte(text), &decision); err != nil {
		return nil, &domain.DecisionParseError{
			Raw:    domain.TruncateRunes(raw, maxLoggedRaw),
			Reason: "not a JSON object",
			Err:    err,
		}
	}

	if err := g.validator.ValidateStruct(decision); err != nil {
		return nil, &domain.DecisionParseError{
			Raw:    domain.TruncateRunes(raw, maxLoggedRaw),
			Reason: strings.Join(validator.Messages(err), "; "),
		}
	}

	if !decision.Action.Valid() {
		return nil, &domain.DecisionParseError{
			Raw:    domain.TruncateRunes(raw, maxLoggedRaw),
			Reason: fmt.Sprintf("unknown action %q", decision.Action),
		}
	}

	return &decision, nil
}

// trimCodeFence strips a surrounding ``` or ```json fence some models add despite instructions
func trimCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.ContainsAny(text[:nl], "{[") {
		// drop the language tag line
		text = text[nl+1:]
	}
	return strings.TrimSpace(text)
}
