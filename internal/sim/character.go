package sim

import (
	"github.com/vovakirdan/tether/internal/core"
)

// Orientation is +1 for the top character and -1 for the bottom one.
// A character rises by moving -Orientation along Y.
type Orientation float64

const (
	OrientTop    Orientation = 1
	OrientBottom Orientation = -1
)

// Character is one of the two mirrored runners. X is shared and lives on
// the World.
type Character struct {
	Y           float64
	Velocity    float64 // Positive means rising
	GoingUp     bool
	JumpTimer   float64
	Orientation Orientation

	OnGround       bool
	AgainstCeiling bool

	AnimTimer float64
	AnimFrame int
}

// Rect returns the character's tile-sized box at the shared X.
func (c *Character) Rect(x, tileSize float64) core.Rect {
	return core.NewRect(x, c.Y, tileSize, tileSize)
}

// Center returns the middle of the character's box.
func (c *Character) Center(x, tileSize float64) core.Vec2 {
	return core.V(x+tileSize/2, c.Y+tileSize/2)
}

// Foot returns the middle of the edge the character stands on.
func (c *Character) Foot(x, tileSize float64) core.Vec2 {
	if c.Orientation == OrientBottom {
		return core.V(x+tileSize/2, c.Y)
	}
	return core.V(x+tileSize/2, c.Y+tileSize)
}

// groundProbe is the thin strip just past the character's feet.
func (c *Character) groundProbe(x float64, p Params) core.Rect {
	if c.Orientation == OrientTop {
		return core.NewRect(x, c.Y+p.TileSize, p.TileSize, p.ProbeDepth)
	}
	return core.NewRect(x, c.Y-p.ProbeDepth, p.TileSize, p.ProbeDepth)
}

// ceilingProbe is the thin strip just past the character's head.
func (c *Character) ceilingProbe(x float64, p Params) core.Rect {
	if c.Orientation == OrientTop {
		return core.NewRect(x, c.Y-p.ProbeDepth, p.TileSize, p.ProbeDepth)
	}
	return core.NewRect(x, c.Y+p.TileSize, p.TileSize, p.ProbeDepth)
}

// wallProbe is a thin vertical strip in front of the character, inset so
// that the floor and ceiling rows do not count.
func (c *Character) wallProbe(x float64, p Params) core.Rect {
	return core.NewRect(x+p.TileSize, c.Y+p.ProbeDepth, p.ProbeDepth, p.TileSize-2*p.ProbeDepth)
}

// reset puts the character at rest at y.
func (c *Character) reset(y float64, o Orientation) {
	*c = Character{Y: y, Orientation: o}
}

// integrate advances the character's vertical motion by dt.
// pressed starts a jump, held extends it. Returns the events raised.
func (c *Character) integrate(dt float64, pressed, held bool, p Params) Events {
	var ev Events

	switch {
	case c.AgainstCeiling:
		c.Velocity = min(c.Velocity, p.CeilingFall)
		c.GoingUp = false
	case c.OnGround:
		c.Velocity = 0
	default:
		c.Velocity -= p.Gravity * dt
	}

	if c.Velocity < p.AscendCutoff {
		c.GoingUp = false
	}
	if c.GoingUp {
		c.JumpTimer += dt
	}

	if pressed && c.OnGround && !c.AgainstCeiling {
		c.Velocity = p.JumpImpulse
		c.GoingUp = true
		c.JumpTimer = 0
		ev |= EventJumped
	}
	// The boost also applies on the frame the jump starts.
	if held && c.GoingUp && c.JumpTimer < p.JumpBoostTime {
		c.Velocity += p.JumpBoost * dt
	}

	c.Y -= float64(c.Orientation) * c.Velocity * dt
	return ev
}

// animate advances the run cycle.
func (c *Character) animate(dt float64, p Params) {
	if p.AnimFrames <= 0 || p.AnimFrameTime <= 0 {
		return
	}
	c.AnimTimer += dt
	for c.AnimTimer >= p.AnimFrameTime {
		c.AnimTimer -= p.AnimFrameTime
		c.AnimFrame = (c.AnimFrame + 1) % p.AnimFrames
	}
}
