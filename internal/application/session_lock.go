package application

import (
	"context"
	"sync"
)

// sessionLocks serializes turns per session id. Entries are reference counted and
// removed once no turn holds or waits for them, so idle sessions cost nothing.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	ch   chan struct{}
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// Lock blocks until the session is free or ctx is done. The returned func releases it.
func (l *sessionLocks) Lock(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	sl, ok := l.locks[sessionID]
	if !ok {
		sl = &sessionLock{ch: make(chan struct{}, 1)}
		l.locks[sessionID] = sl
	}
	sl.refs++
	l.mu.Unlock()

	select {
	case sl.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-sl.ch
				l.release(sessionID, sl)
			})
		}, nil
	case <-ctx.Done():
		l.release(sessionID, sl)
		return nil, ctx.Err()
	}
}

func (l *sessionLocks) release(sessionID string, sl *sessionLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sl.refs--
	if sl.refs == 0 {
		delete(l.locks, sessionID)
	}
}

// held returns the number of sessions currently locked or awaited
func (l *sessionLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
