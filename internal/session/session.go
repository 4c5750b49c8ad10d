// Package session coordinates re-analysis of an actively edited resume. A
// Tracker stamps each analysis request with a generation counter so results
// from superseded requests can be discarded, and a Debouncer holds off work
// until edits pause.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tracker issues request IDs and tells stale results apart from current ones.
// Safe for concurrent use.
type Tracker struct {
	mu         sync.Mutex
	log        zerolog.Logger
	generation uint64
	currentID  string
}

// NewTracker creates a tracker that logs discarded results to log.
func NewTracker(log zerolog.Logger) *Tracker {
	return &Tracker{log: log}
}

// Request is one stamped analysis request.
type Request struct {
	ID         string
	Generation uint64
}

// Begin stamps a new request, superseding all earlier ones.
func (t *Tracker) Begin() Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	t.currentID = uuid.New().String()
	return Request{ID: t.currentID, Generation: t.generation}
}

// Accept reports whether a finished request is still current. Stale results
// are logged and must be discarded by the caller.
func (t *Tracker) Accept(req Request) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if req.Generation != t.generation {
		t.log.Debug().
			Str("request_id", req.ID).
			Uint64("generation", req.Generation).
			Uint64("current", t.generation).
			Msg("discarding stale analysis result")
		return false
	}
	return true
}

// Debouncer runs a function after a quiet period, resetting the timer on
// every trigger. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period. A trigger before the period
// elapses cancels the pending call and restarts the timer.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
