package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tether/internal/level"
)

// LevelChangedMsg carries the path of a level file that changed on disk.
type LevelChangedMsg string

// levelWatchErrMsg carries an error from the level watcher.
type levelWatchErrMsg struct{ err error }

// waitForLevel blocks on the watcher until the next change or error.
// It returns nil once the watcher is closed.
func waitForLevel(w *level.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return levelWatchErrMsg{err: err}
		}
	}
}
