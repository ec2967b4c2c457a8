package domain

import "time"

// SummaryMemory holds the ordered answer summaries of one interview session, newest last.
// Entries are never evicted; readers only consult a suffix window.
type SummaryMemory struct {
	SessionID      string
	Summaries      []string
	LastAccessTime time.Time
}

// NewSummaryMemory creates an empty memory for a session
func NewSummaryMemory(sessionID string) *SummaryMemory {
	return &SummaryMemory{
		SessionID:      sessionID,
		Summaries:      make([]string, 0),
		LastAccessTime: time.Now(),
	}
}

// Append adds a summary at the end
func (m *SummaryMemory) Append(summary string) {
	m.Summaries = append(m.Summaries, summary)
	m.LastAccessTime = time.Now()
}

// Window returns a copy of the last n summaries
func (m *SummaryMemory) Window(n int) []string {
	if n <= 0 || len(m.Summaries) == 0 {
		return []string{}
	}
	start := len(m.Summaries) - n
	if start < 0 {
		start = 0
	}
	window := make([]string, len(m.Summaries)-start)
	copy(window, m.Summaries[start:])
	return window
}

// All returns a copy of every summary
func (m *SummaryMemory) All() []string {
	return m.Window(len(m.Summaries))
}

// Len func
func (m *SummaryMemory) Len() int {
	return len(m.Summaries)
}
