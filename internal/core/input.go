package core

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation, top character jump
	ActionDown           // S, Down arrow - menu navigation, bottom character jump
	ActionJump           // Space - jump both characters
	ActionFire           // F, Ctrl - fire from the character holding the gun
	ActionSwap           // Tab, Shift - pass the gun to the other character
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart level (debug) or run after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
	ActionSlower         // [ - debug slow motion
	ActionFaster         // ] - debug speed up
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionSwap:
		return "Swap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSlower:
		return "Slower"
	case ActionFaster:
		return "Faster"
	default:
		return "Unknown"
	}
}

// KeyState is the read side of input that the simulation consumes.
type KeyState interface {
	// IsDown reports whether the action is currently held.
	IsDown(a Action) bool
	// IsPressed reports whether the action was triggered this tick.
	IsPressed(a Action) bool
}

// InputFrame is the input state for a single simulation tick.
// Pressed holds edge-triggered actions, Held holds actions that are down.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this tick. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.IsPressed(a)
}

// IsPressed implements KeyState.
func (f InputFrame) IsPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// IsDown implements KeyState.
func (f InputFrame) IsDown(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
