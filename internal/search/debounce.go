package search

import (
	"sync"
	"time"
)

// Debouncer turns a stream of keystrokes into committed queries. Each call to
// Type resets the pending timer, so only the last input within a quiet window
// commits. At most one timer is live per Debouncer.
//
// A commit does not cancel in-flight work for an earlier query; callers must
// discard stale results by checking IsCurrent with the query the work was
// issued for (last-committed-wins).
type Debouncer struct {
	mu        sync.Mutex
	window    time.Duration
	timer     *time.Timer
	committed string
}

// NewDebouncer builds a debouncer with the given quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Type registers a keystroke. When the quiet window elapses without another
// keystroke, query becomes the committed query and commit fires with it.
func (d *Debouncer) Type(query string, commit func(query string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		d.committed = query
		d.mu.Unlock()
		if commit != nil {
			commit(query)
		}
	})
}

// Committed returns the last query that survived the quiet window.
func (d *Debouncer) Committed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed
}

// IsCurrent reports whether a result computed for query is still the one the
// caller should display.
func (d *Debouncer) IsCurrent(query string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed == query
}

// Stop cancels any pending commit.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
