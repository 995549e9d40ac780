package tui

import (
	"time"

	"github.com/vovakirdan/tether/internal/core"
)

const (
	// DefaultHoldWindow is how long an action stays held after an
	// auto-repeat event. It must cover the gap between two repeats.
	DefaultHoldWindow = 150 * time.Millisecond

	// DefaultRepeatDelay is how long an action stays held after a fresh
	// press, before the terminal starts auto-repeating. Terminals wait
	// 250-600ms before the first repeat.
	DefaultRepeatDelay = 500 * time.Millisecond
)

// holdActions only trigger on a fresh press; their auto-repeat events just
// keep them held.
var holdActions = map[core.Action]bool{
	core.ActionUp:   true,
	core.ActionDown: true,
	core.ActionJump: true,
}

// HoldTracker turns the key events of a terminal, which reports repeats but
// never releases, into per-tick input frames.
type HoldTracker struct {
	window    time.Duration
	delay     time.Duration
	last      map[core.Action]time.Time
	repeating map[core.Action]bool
	pending   []core.Action
}

// NewHoldTracker creates a tracker. window applies once repeats arrive and
// delay to the gap after a fresh press. Non-positive values use
// DefaultHoldWindow and DefaultRepeatDelay; delay is never shorter than
// window.
func NewHoldTracker(window, delay time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	return &HoldTracker{
		window:    window,
		delay:     max(delay, window),
		last:      make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
	}
}

// Window returns the hold window between repeats.
func (h *HoldTracker) Window() time.Duration { return h.window }

// Delay returns the hold window after a fresh press.
func (h *HoldTracker) Delay() time.Duration { return h.delay }

// Press records a key event for a at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	held := h.IsHeld(a, now)
	if !holdActions[a] || !held {
		h.pending = append(h.pending, a)
	}
	h.repeating[a] = held
	h.last[a] = now
}

// IsHeld reports whether a had a key event recently enough before now.
func (h *HoldTracker) IsHeld(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) <= h.limit(a)
}

func (h *HoldTracker) limit(a core.Action) time.Duration {
	if h.repeating[a] {
		return h.window
	}
	return h.delay
}

// Frame returns the input for one tick and consumes pending presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range h.pending {
		f.Set(a)
	}
	h.pending = h.pending[:0]

	for a := range h.last {
		if h.IsHeld(a, now) {
			f.Hold(a)
		} else {
			delete(h.last, a)
			delete(h.repeating, a)
		}
	}
	return f
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.last)
	clear(h.repeating)
	h.pending = h.pending[:0]
}
