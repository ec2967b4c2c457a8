package domain

import "strings"

// DefaultFollowupCap is used when no positive cap is configured
const DefaultFollowupCap = 3

// DialoguePolicy turns the model's proposed action into the action surfaced to the candidate.
// It holds no per-session state; a turn submitted after finish is evaluated like any other.
type DialoguePolicy struct {
	FollowupCap int
}

// NewDialoguePolicy func
func NewDialoguePolicy(followupCap int) DialoguePolicy {
	if followupCap <= 0 {
		followupCap = DefaultFollowupCap
	}
	return DialoguePolicy{FollowupCap: followupCap}
}

// Resolve applies the follow-up cap to a validated decision.
// Once the cap is reached a proposed follow-up becomes next, and only the
// acknowledgement survives as a transition; the proposed question is dropped.
func (p DialoguePolicy) Resolve(req TurnRequest, decision ModelDecision) TurnResult {
	result := TurnResult{
		Action:  decision.Action,
		Summary: strings.TrimSpace(decision.Summary),
	}

	if decision.Action == ActionFollowup && req.FollowupCount >= p.FollowupCap {
		result.Action = ActionNext
		result.Overridden = true
		result.Question = strings.TrimSpace(decision.Acknowledgement)
		return result
	}

	result.Question = joinSpoken(decision.Acknowledgement, decision.Question)
	return result
}

func joinSpoken(ack, question string) string {
	ack = strings.TrimSpace(ack)
	question = strings.TrimSpace(question)
	if ack == "" {
		return question
	}
	if question == "" {
		return ack
	}
	return ack + " " + question
}
