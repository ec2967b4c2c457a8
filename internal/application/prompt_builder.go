package application

import (
	"fmt"
	"strings"

	"mock-interview-api/internal/domain"
)

// TurnPrompt holds everything the dialogue prompt embeds
type TurnPrompt struct {
	Job             string
	Question        string
	Answer          string
	FollowupCount   int
	RecentSummaries []string
}

// PromptBuilder renders the fixed prompt templates. It is pure: equal inputs give equal prompts.
type PromptBuilder struct {
	followupCap int
}

// NewPromptBuilder func
func NewPromptBuilder(followupCap int) PromptBuilder {
	if followupCap <= 0 {
		followupCap = domain.DefaultFollowupCap
	}
	return PromptBuilder{followupCap: followupCap}
}

// Turn builds the prompt that asks for one dialogue decision
func (b PromptBuilder) Turn(p TurnPrompt) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are interviewing a candidate for the role: %s\n", p.Job)
	fmt.Fprintf(&sb, "Current question: %s\n", p.Question)
	fmt.Fprintf(&sb, "Candidate's answer: %s\n", p.Answer)
	fmt.Fprintf(&sb, "Follow-up questions already asked on this topic: %d\n\n", p.FollowupCount)

	sb.WriteString("Summaries of earlier answers (oldest first):\n")
	if len(p.RecentSummaries) == 0 {
		sb.WriteString("(none yet)\n")
	}
	for _, s := range p.RecentSummaries {
		sb.WriteString("- ")
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	sb.WriteString("\nChoose exactly one action:\n")
	sb.WriteString(`1. "followup" - ask one deeper question about the current topic` + "\n")
	sb.WriteString(`2. "next" - move on to the next main question` + "\n")
	sb.WriteString(`3. "finish" - close the interview` + "\n\n")

	sb.WriteString("Rules:\n")
	fmt.Fprintf(&sb, "- At most %d follow-up questions are allowed per topic. Once %d have been asked, choose \"next\".\n", b.followupCap, b.followupCap)
	sb.WriteString("- If the candidate says they do not know or cannot remember, or keeps answering vaguely, choose \"next\".\n")
	sb.WriteString("- \"summary\" is one sentence describing the candidate's answer.\n")
	sb.WriteString("- \"acknowledgement\" is an optional short reaction to the answer, spoken before the question.\n\n")

	sb.WriteString("Reply with a single JSON object and nothing else, no code fences and no explanation:\n")
	sb.WriteString(`{"action": "followup" | "next" | "finish", "question": "the follow-up question or closing statement", "acknowledgement": "optional", "summary": "one sentence"}`)

	return sb.String()
}

// Questions builds the prompt for the initial question set. An empty job omits the job section.
func (b PromptBuilder) Questions(resume, job string, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a professional interviewer. Using the candidate's résumé and the job context below, write %d interview questions in English ", count)
	sb.WriteString("about skills, experience and fit for the role.\n")
	sb.WriteString(`Reply with a JSON array only, shaped like [{"q": "..."}, ...], with no code fences and no explanation.` + "\n\n")

	if job != "" {
		fmt.Fprintf(&sb, "Job description or title:\n----\n%s\n----\n\n", job)
	}
	fmt.Fprintf(&sb, "Candidate résumé:\n----\n%s\n----", resume)

	return sb.String()
}

// Report builds the evaluation prompt over the whole transcript.
// notes are the per-answer summaries recorded during the interview, if any survive.
func (b PromptBuilder) Report(job, resume string, qna []domain.QnA, notes []string) string {
	var sb strings.Builder

	sb.WriteString("You are an experienced technical recruiter. From the job context, résumé and interview transcript below, ")
	sb.WriteString("write a concise, structured evaluation of the candidate in English with these sections:\n")
	sb.WriteString("1. Strengths\n2. Weaknesses\n3. Overall fit score (0-100)\n4. Reasoning for the score\n\n")

	fmt.Fprintf(&sb, "Job description or title:\n----\n%s\n----\n\n", job)
	fmt.Fprintf(&sb, "Résumé:\n----\n%s\n----\n\n", resume)

	sb.WriteString("Interview transcript:\n----\n")
	for i, item := range qna {
		fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n", i+1, item.Question, i+1, item.Answer)
	}
	sb.WriteString("----")

	if len(notes) > 0 {
		sb.WriteString("\n\nInterviewer notes per answer:\n----\n")
		for _, n := range notes {
			sb.WriteString("- ")
			sb.WriteString(n)
			sb.WriteString("\n")
		}
		sb.WriteString("----")
	}

	return sb.String()
}
