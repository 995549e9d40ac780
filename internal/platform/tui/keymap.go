package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tether/internal/core"
)

// KeyMap holds the key bindings used while playing.
type KeyMap struct {
	TopJump    key.Binding
	BottomJump key.Binding
	Jump       key.Binding
	Fire       key.Binding
	Swap       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Slower     key.Binding
	Faster     key.Binding
	Screenshot key.Binding
	Mute       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TopJump: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("w/↑", "top jump"),
		),
		BottomJump: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("s/↓", "bottom jump"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "both jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "l", "right"),
			key.WithHelp("f", "fire"),
		),
		Swap: key.NewBinding(
			key.WithKeys("tab", "e"),
			key.WithHelp("tab", "pass gun"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Slower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "faster"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetDebug enables or disables the debug-only bindings.
func (k *KeyMap) SetDebug(on bool) {
	k.Slower.SetEnabled(on)
	k.Faster.SetEnabled(on)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TopJump, k.BottomJump, k.Jump, k.Fire, k.Swap, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TopJump, k.BottomJump, k.Jump},
		{k.Fire, k.Swap},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Slower, k.Faster, k.Screenshot, k.Mute, k.Quit},
	}
}

// Action translates a key message to a game action. Quit, help, mute and
// screenshot keys are handled by the model and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.TopJump):
		return core.ActionUp
	case key.Matches(msg, k.BottomJump):
		return core.ActionDown
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Swap):
		return core.ActionSwap
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Slower):
		return core.ActionSlower
	case key.Matches(msg, k.Faster):
		return core.ActionFaster
	}
	return core.ActionNone
}
