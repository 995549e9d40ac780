package sim

import "github.com/vovakirdan/tether/internal/core"

// Events is a set of things that happened during one Step.
type Events uint16

const (
	EventJumped Events = 1 << iota
	EventLanded
	EventFired
	EventSwapped
	EventEnemyHit
	EventEnemyKilled
	EventRestart
	EventNextLevel
)

// Has reports whether all bits of f are set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

// Effect is an event tied to a world position, used to place particles.
type Effect struct {
	Event  Events
	Pos    core.Vec2
	Orient Orientation // Set for jumps and landings, zero otherwise
}
