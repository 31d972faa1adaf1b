package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

// fakeClock returns a fixed instant that tests can move forward.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)}
}

// seqIDs returns a generator yielding prefix-1, prefix-2, ...
func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestAuth(store kv.Store, clock *fakeClock) *AuthService {
	a := NewAuthService(store, logging.Discard())
	a.now = clock.Now
	a.newID = seqIDs("user")
	return a
}

func newTestEntries(store kv.Store, clock *fakeClock) *EntryService {
	s := NewEntryService(store, logging.Discard())
	s.now = clock.Now
	s.newID = seqIDs("entry")
	return s
}

func newTestSessions(store kv.Store, clock *fakeClock) *SessionManager {
	m := NewSessionManager(store, logging.Discard())
	m.now = clock.Now
	return m
}

func itoa(n int64) string { return fmt.Sprintf("%d", n) }
