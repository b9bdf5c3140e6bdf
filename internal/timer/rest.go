package timer

import (
	"sync"
	"time"
)

// RestTimer is a between-sets countdown: one tick per second, pausable, and
// a cue callback when it reaches zero.
type RestTimer struct {
	mu        sync.Mutex
	remaining int
	running   bool
	done      chan struct{}
	cue       func()
}

// NewRestTimer builds a stopped timer. cue fires once when the countdown
// hits zero; it may be nil.
func NewRestTimer(cue func()) *RestTimer {
	return &RestTimer{cue: cue}
}

// Start begins a countdown of the given number of seconds, replacing any
// countdown in progress. The returned channel closes when the countdown
// finishes or is stopped.
func (t *RestTimer) Start(seconds int) <-chan struct{} {
	t.mu.Lock()
	if t.done != nil {
		close(t.done)
	}
	t.remaining = seconds
	t.running = true
	t.done = make(chan struct{})
	done := t.done
	t.mu.Unlock()

	go t.run(done)
	return done
}

func (t *RestTimer) run(done chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if t.tick() {
				return
			}
		}
	}
}

// tick advances the countdown one second and reports whether it finished.
// Paused timers hold their remaining time.
func (t *RestTimer) tick() bool {
	t.mu.Lock()
	if !t.running || t.remaining <= 0 {
		t.mu.Unlock()
		return false
	}
	t.remaining--
	finished := t.remaining == 0
	var done chan struct{}
	if finished {
		t.running = false
		done = t.done
		t.done = nil
	}
	t.mu.Unlock()

	if finished {
		if t.cue != nil {
			t.cue()
		}
		close(done)
	}
	return finished
}

// Pause freezes the countdown in place.
func (t *RestTimer) Pause() {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
}

// Resume continues a paused countdown.
func (t *RestTimer) Resume() {
	t.mu.Lock()
	if t.remaining > 0 {
		t.running = true
	}
	t.mu.Unlock()
}

// Stop cancels the countdown without firing the cue.
func (t *RestTimer) Stop() {
	t.mu.Lock()
	t.running = false
	t.remaining = 0
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	t.mu.Unlock()
}

// Remaining reports the seconds left on the countdown.
func (t *RestTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether the countdown is actively ticking.
func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
