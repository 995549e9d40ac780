package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tether/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runes("w"), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runes("s"), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"f", runes("f"), core.ActionFire},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSwap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"[", runes("["), core.ActionSlower},
		{"]", runes("]"), core.ActionFaster},
		{"quit is not an action", runes("q"), core.ActionNone},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapDebugBindings(t *testing.T) {
	k := DefaultKeyMap()
	k.SetDebug(false)
	if got := k.Action(runes("[")); got != core.ActionNone {
		t.Errorf("slower without debug = %v, want None", got)
	}
	k.SetDebug(true)
	if got := k.Action(runes("[")); got != core.ActionSlower {
		t.Errorf("slower with debug = %v, want Slower", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("empty short help")
	}
	n := 0
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	if n < len(k.ShortHelp()) {
		t.Errorf("full help has %d bindings, fewer than short help", n)
	}
}
