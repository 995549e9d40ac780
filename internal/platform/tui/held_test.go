package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tether/internal/core"
)

func TestHoldTrackerPressAndRelease(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionUp, t0)
	f := h.Frame(t0.Add(10 * time.Millisecond))
	if !f.IsPressed(core.ActionUp) || !f.IsDown(core.ActionUp) {
		t.Fatalf("first frame: pressed=%v held=%v, want both", f.IsPressed(core.ActionUp), f.IsDown(core.ActionUp))
	}

	f = h.Frame(t0.Add(50 * time.Millisecond))
	if f.IsPressed(core.ActionUp) {
		t.Error("press leaked into the next frame")
	}
	if !f.IsDown(core.ActionUp) {
		t.Error("action released inside the window")
	}

	f = h.Frame(t0.Add(200 * time.Millisecond))
	if f.IsDown(core.ActionUp) {
		t.Error("action still held after the window")
	}
}

func TestHoldTrackerRepeats(t *testing.T) {
	tests := []struct {
		name    string
		action  core.Action
		presses int
	}{
		{"jump repeat keeps holding", core.ActionJump, 1},
		{"top jump repeat keeps holding", core.ActionUp, 1},
		{"fire repeats", core.ActionFire, 3},
		{"swap repeats", core.ActionSwap, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHoldTracker(100*time.Millisecond, 0)
			t0 := time.Unix(0, 0)
			presses := 0
			for i := range 3 {
				now := t0.Add(time.Duration(i) * 30 * time.Millisecond)
				h.Press(tt.action, now)
				if h.Frame(now).IsPressed(tt.action) {
					presses++
				}
			}
			if presses != tt.presses {
				t.Errorf("presses = %d, want %d", presses, tt.presses)
			}
		})
	}
}

// A terminal waits before it starts repeating a held key, then repeats
// quickly. The key must stay held across the whole first gap.
func TestHoldTrackerRepeatDelay(t *testing.T) {
	const (
		firstRepeat = 400
		repeatEvery = 33
		frameEvery  = 16
		lastRepeat  = firstRepeat + 18*repeatEvery
	)
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(0, 0)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	presses := 0
	for ms := 0; ms <= lastRepeat; ms++ {
		if ms == 0 || (ms >= firstRepeat && (ms-firstRepeat)%repeatEvery == 0) {
			h.Press(core.ActionJump, at(ms))
		}
		if ms%frameEvery != 0 {
			continue
		}
		f := h.Frame(at(ms))
		if f.IsPressed(core.ActionJump) {
			presses++
		}
		if !f.IsDown(core.ActionJump) {
			t.Fatalf("jump released at %dms while the key was held", ms)
		}
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}

	if h.Frame(at(lastRepeat + int(DefaultHoldWindow/time.Millisecond) + frameEvery)).IsDown(core.ActionJump) {
		t.Error("jump still held after the repeats stopped")
	}
}

func TestHoldTrackerDelayNotShorterThanWindow(t *testing.T) {
	h := NewHoldTracker(time.Second, 10*time.Millisecond)
	if h.Delay() != time.Second {
		t.Errorf("Delay = %v, want %v", h.Delay(), time.Second)
	}
}

func TestHoldTrackerPressAfterRelease(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 0)
	t0 := time.Unix(0, 0)
	h.Press(core.ActionJump, t0)
	h.Frame(t0)

	later := t0.Add(time.Second)
	h.Press(core.ActionJump, later)
	if !h.Frame(later).IsPressed(core.ActionJump) {
		t.Error("a press after release should trigger again")
	}
}

func TestHoldTrackerIgnoresNone(t *testing.T) {
	h := NewHoldTracker(0, 0)
	if h.Window() != DefaultHoldWindow || h.Delay() != DefaultRepeatDelay {
		t.Errorf("Window = %v Delay = %v, want defaults", h.Window(), h.Delay())
	}
	h.Press(core.ActionNone, time.Now())
	f := h.Frame(time.Now())
	if len(f.Pressed) != 0 || len(f.Held) != 0 {
		t.Errorf("frame = %+v, want empty", f)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second, 0)
	now := time.Unix(0, 0)
	h.Press(core.ActionFire, now)
	h.Reset()
	if f := h.Frame(now); f.IsPressed(core.ActionFire) || f.IsDown(core.ActionFire) {
		t.Error("Reset kept state")
	}
}
