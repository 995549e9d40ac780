package core

// Game is the contract between the platform loop and a game.
// Games contain pure logic; the platform handles input mapping, timing, and
// drawing the screen buffer to the terminal.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
