package memory

import (
	"sync"
	"time"

	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/output"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MemorySessionStore implements SummaryStore interface
var _ output.SummaryStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory summary storage.
// Sessions live in an expirable LRU: each Append restarts the session's TTL, and once
// maxSessions is reached the least recently used session is evicted.
type MemorySessionStore struct {
	mu          sync.Mutex
	sessions    *expirable.LRU[string, *domain.SummaryMemory]
	timeout     time.Duration
	maxSessions int
}

// NewMemorySessionStore creates a new in-memory store.
// timeout: duration since the last Append after which a session is dropped
// maxSessions: capacity bound of the store
func NewMemorySessionStore(timeout time.Duration, maxSessions int) *MemorySessionStore {
	onEvict := func(sessionID string, mem *domain.SummaryMemory) {
		logrus.Debugf("Session memory evicted: id=%s, summaries=%d", sessionID, mem.Len())
	}
	return &MemorySessionStore{
		sessions:    expirable.NewLRU[string, *domain.SummaryMemory](maxSessions, onEvict, timeout),
		timeout:     timeout,
		maxSessions: maxSessions,
	}
}

// GetTimeout returns the configured session timeout duration.
func (m *MemorySessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetMaxSessions returns the configured capacity.
func (m *MemorySessionStore) GetMaxSessions() int {
	return m.maxSessions
}

// Recent returns a copy of at most the last n summaries of a session.
// Unknown and expired sessions yield an empty slice.
func (m *MemorySessionStore) Recent(sessionID string, n int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mem, ok := m.sessions.Get(sessionID)
	if !ok {
		return []string{}, nil
	}
	return mem.Window(n), nil
}

// All returns a copy of every summary of a session.
func (m *MemorySessionStore) All(sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mem, ok := m.sessions.Get(sessionID)
	if !ok {
		return []string{}, nil
	}
	return mem.All(), nil
}

// Append adds a summary to a session, creating the session on first use.
func (m *MemorySessionStore) Append(sessionID, summary string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mem, ok := m.sessions.Get(sessionID)
	if !ok {
		mem = domain.NewSummaryMemory(sessionID)
	}
	mem.Append(summary)

	// Re-adding restarts the TTL
	m.sessions.Add(sessionID, mem)

	return nil
}

// Delete removes a session.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions.Remove(sessionID)
	return nil
}

// Len returns the number of live sessions
func (m *MemorySessionStore) Len() int {
	return m.sessions.Len()
}
