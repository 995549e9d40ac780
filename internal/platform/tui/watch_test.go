package tui

import (
	"testing"

	"github.com/vovakirdan/tether/internal/level"
)

func TestWaitForLevelNilWatcher(t *testing.T) {
	if cmd := waitForLevel(nil); cmd != nil {
		t.Error("nil watcher returned a command")
	}
}

func TestWaitForLevelClosedWatcher(t *testing.T) {
	w, err := level.NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	cmd := waitForLevel(w)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if msg := cmd(); msg != nil {
		t.Errorf("closed watcher produced %#v, want nil", msg)
	}
}
