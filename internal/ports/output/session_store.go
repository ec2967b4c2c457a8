package output

// SummaryStore interface - Output port
// Holds the rolling answer summaries of each interview session keyed by session id.
// Implementations must be safe for concurrent use. A session is created implicitly
// by its first Append; reads of an unknown session return an empty slice.
type SummaryStore interface {
	// Recent returns a copy of at most the last n summaries, oldest first.
	Recent(sessionID string, n int) ([]string, error)

	// All returns a copy of every stored summary of the session.
	All(sessionID string) ([]string, error)

	// Append adds a summary at the end of the session's sequence.
	Append(sessionID, summary string) error

	// Delete removes the session. Deleting an unknown session is not an error.
	Delete(sessionID string) error
}
