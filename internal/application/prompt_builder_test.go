package application

import (
	"strings"
	"testing"

	"mock-interview-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTurnPromptIsDeterministic(t *testing.T) {
	b := NewPromptBuilder(3)
	p := TurnPrompt{
		Job:             "Data Engineer",
		Question:        "Describe your ETL stack?",
		Answer:          "Airflow and dbt.",
		FollowupCount:   2,
		RecentSummaries: []string{"Knows SQL.", "Used Spark."},
	}

	assert.Equal(t, b.Turn(p), b.Turn(p))
}

func TestTurnPromptEmbedsInputsVerbatim(t *testing.T) {
	b := NewPromptBuilder(3)
	answer := `I'd say "it depends" {not JSON}`

	prompt := b.Turn(TurnPrompt{
		Job:             "Data Engineer",
		Question:        "Describe your ETL stack?",
		Answer:          answer,
		FollowupCount:   2,
		RecentSummaries: []string{"Knows SQL.", "Used Spark."},
	})

	assert.Contains(t, prompt, "role: Data Engineer")
	assert.Contains(t, prompt, "Current question: Describe your ETL stack?")
	assert.Contains(t, prompt, "Candidate's answer: "+answer)
	assert.Contains(t, prompt, "already asked on this topic: 2")
	assert.Contains(t, prompt, "At most 3 follow-up questions")
	assert.Less(t, strings.Index(prompt, "Knows SQL."), strings.Index(prompt, "Used Spark."))
	for _, action := range []string{`"followup"`, `"next"`, `"finish"`} {
		assert.Contains(t, prompt, action)
	}
}

func TestTurnPromptWithoutSummaries(t *testing.T) {
	prompt := NewPromptBuilder(0).Turn(TurnPrompt{Job: "QA", Question: "Q?", Answer: "A"})

	assert.Contains(t, prompt, "(none yet)")
	assert.Contains(t, prompt, "At most 3 follow-up questions")
}

func TestQuestionsPromptOmitsEmptyJob(t *testing.T) {
	b := NewPromptBuilder(3)

	withJob := b.Questions("Go, Kubernetes", "SRE", 5)
	withoutJob := b.Questions("Go, Kubernetes", "", 5)

	assert.Contains(t, withJob, "Job description or title:\n----\nSRE\n----")
	assert.NotContains(t, withoutJob, "Job description or title")
	assert.Contains(t, withoutJob, "write 5 interview questions")
	assert.Contains(t, withoutJob, "Go, Kubernetes")
}

func TestReportPromptListsTranscriptInOrder(t *testing.T) {
	b := NewPromptBuilder(3)
	qna := []domain.QnA{
		{Question: "First?", Answer: "One"},
		{Question: "Second?", Answer: "Two"},
	}

	prompt := b.Report("Backend", "Résumé text", qna, nil)

	assert.Contains(t, prompt, "Q1: First?\nA1: One\nQ2: Second?\nA2: Two\n")
	assert.Contains(t, prompt, "Overall fit score (0-100)")
	assert.NotContains(t, prompt, "Interviewer notes")

	withNotes := b.Report("Backend", "Résumé text", qna, []string{"Solid answer."})
	assert.Contains(t, withNotes, "Interviewer notes per answer:\n----\n- Solid answer.\n----")
}
