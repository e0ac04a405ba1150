package bot

import (
	"sync"
	"time"
)

// maxTrackedIdentities bounds the limiter's memory; beyond it, stale
// identities are swept before new ones are admitted.
const maxTrackedIdentities = 10000

// slidingWindow is a per-identity sliding-window rate limiter. It is the
// only in-process mutable state shared across chat turns; it is not
// persisted and resets on restart, which is acceptable for abuse damping.
type slidingWindow struct {
	mu     sync.Mutex
	events map[int64][]time.Time
	limit  int
	window time.Duration
	now    func() time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		events: make(map[int64][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records an event for the identity and reports whether it stays
// within the window budget.
func (l *slidingWindow) Allow(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.events[id][:0]
	for _, t := range l.events[id] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.events[id] = recent
		return false
	}

	if _, tracked := l.events[id]; !tracked && len(l.events) >= maxTrackedIdentities {
		l.sweep(cutoff)
	}

	l.events[id] = append(recent, now)
	return true
}

func (l *slidingWindow) sweep(cutoff time.Time) {
	for id, times := range l.events {
		live := false
		for _, t := range times {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.events, id)
		}
	}
}
