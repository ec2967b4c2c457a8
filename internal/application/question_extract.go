package application

import (
	"encoding/json"
	"strings"
)

// bulletChars are stripped from both ends of each line in the fallback path
const bulletChars = "•- \t\r"

// ExtractQuestions reads a question list from completion text, keeping at most max entries.
// Structured output is a JSON array of {"q": "..."} objects (plain strings are accepted too).
// An array without a single non-blank question is not structured output. Anything else
// falls back to a line heuristic: strip bullet markers, drop empty lines and optionally
// keep only lines containing '?'.
// fallback reports whether the heuristic was used.
func ExtractQuestions(raw string, max int, requireQuestionMark bool) (questions []string, fallback bool) {
	text := trimCodeFence(raw)

	if qs, ok := parseQuestionArray(text); ok {
		if max > 0 && len(qs) > max {
			qs = qs[:max]
		}
		return qs, false
	}

	questions = make([]string, 0, max)
	for _, line := range strings.Split(raw, "\n") {
		q := strings.Trim(line, bulletChars)
		if q == "" {
			continue
		}
		if requireQuestionMark && !strings.Contains(q, "?") {
			continue
		}
		questions = append(questions, q)
		if max > 0 && len(questions) == max {
			break
		}
	}
	return questions, true
}

func parseQuestionArray(text string) ([]string, bool) {
	var items []struct {
		Q string `json:"q"`
	}
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		qs := make([]string, 0, len(items))
		for _, it := range items {
			if q := strings.TrimSpace(it.Q); q != "" {
				qs = append(qs, q)
			}
		}
		return qs, len(qs) > 0
	}

	var plain []string
	if err := json.Unmarshal([]byte(text), &plain); err == nil {
		qs := make([]string, 0, len(plain))
		for _, p := range plain {
			if q := strings.TrimSpace(p); q != "" {
				qs = append(qs, q)
			}
		}
		return qs, len(qs) > 0
	}

	return nil, false
}
