// Package scan guards the product intake against the camera resubmitting
// the same decoded payload several times per second while a code stays in
// frame. It is the only shared mutable structure in the service.
package scan

import (
	"sync"
	"time"
)

type lastScan struct {
	code string
	at   time.Time
}

type Deduper struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]lastScan

	now func() time.Time
}

func NewDeduper(window time.Duration) *Deduper {
	return &Deduper{
		window: window,
		seen:   make(map[string]lastScan),
		now:    time.Now,
	}
}

// Allow reports whether the decoded code should be processed for the
// session. The identical code re-submitted within the window is suppressed;
// a different code, or the same code after the window expires, is recorded
// and allowed.
func (d *Deduper) Allow(sessionID, code string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.prune(now)

	if last, ok := d.seen[sessionID]; ok {
		if last.code == code && now.Sub(last.at) < d.window {
			return false
		}
	}

	d.seen[sessionID] = lastScan{code: code, at: now}

	return true
}

// Forget clears the session's guard, e.g. on logout.
func (d *Deduper) Forget(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.seen, sessionID)
}

// prune drops expired entries so abandoned sessions do not accumulate.
// Caller must hold the lock.
func (d *Deduper) prune(now time.Time) {
	for sessionID, last := range d.seen {
		if now.Sub(last.at) >= d.window {
			delete(d.seen, sessionID)
		}
	}
}
