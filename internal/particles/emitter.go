// Package particles implements fixed-capacity particle emitters stored as
// parallel arrays, and a System that drives a group of them together.
package particles

import (
	"math/rand"

	"github.com/vovakirdan/tether/internal/core"
)

// FloatRange is an inclusive min/max pair sampled uniformly.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Rand returns a uniform value in [Min, Max].
func (r FloatRange) Rand(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// IntRange is an inclusive min/max pair sampled uniformly.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Rand returns a uniform value in [Min, Max].
func (r IntRange) Rand(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// BlendMode tells the renderer how particles combine with what is below them.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

// Config describes an emitter. Angles are in degrees.
type Config struct {
	Direction            core.Vec2  // Normalized on construction
	Velocity             FloatRange // Speed along the rotated direction
	DirectionAngle       FloatRange // Rotation applied to Direction
	VelocityAngle        FloatRange // Rotation applied to the scaled velocity
	Offset               FloatRange // Spawn offset from Origin, same on both axes
	Size                 FloatRange
	Burst                IntRange
	Capacity             int
	EmissionRate         float64 // Particles per second while emitting
	Origin               core.Vec2
	ExternalAcceleration core.Vec2
	Color                core.Color
	Age                  FloatRange // Time to live in seconds
	HaltTime             FloatRange // Age after which a particle stops moving
	BlendMode            BlendMode
}

// Renderer draws a single particle as a filled square.
type Renderer interface {
	FillSquare(x, y, size float64, c core.Color, mode BlendMode)
}

// Emitter owns a fixed pool of particles. Slots [0, active) are live;
// slots past active hold stale data.
type Emitter struct {
	cfg      Config
	rng      *rand.Rand
	emitting bool
	mustEmit float64
	active   int

	positions     []core.Vec2
	velocities    []core.Vec2
	accelerations []core.Vec2
	sizes         []float64
	ages          []float64
	ttls          []float64
	haltTimes     []float64
}

// NewEmitter allocates an emitter with cfg.Capacity slots.
// A nil rng is replaced by one seeded with 1.
func NewEmitter(cfg Config, rng *rand.Rand) *Emitter {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	cfg.Capacity = max(cfg.Capacity, 0)
	cfg.Direction = cfg.Direction.Normalize()

	n := cfg.Capacity
	return &Emitter{
		cfg:           cfg,
		rng:           rng,
		positions:     make([]core.Vec2, n),
		velocities:    make([]core.Vec2, n),
		accelerations: make([]core.Vec2, n),
		sizes:         make([]float64, n),
		ages:          make([]float64, n),
		ttls:          make([]float64, n),
		haltTimes:     make([]float64, n),
	}
}

// Config returns the emitter configuration.
func (e *Emitter) Config() Config { return e.cfg }

// ActiveCount returns the number of live particles.
func (e *Emitter) ActiveCount() int { return e.active }

// Capacity returns the pool size.
func (e *Emitter) Capacity() int { return e.cfg.Capacity }

// Emitting reports whether continuous emission is on.
func (e *Emitter) Emitting() bool { return e.emitting }

// Start enables continuous emission.
func (e *Emitter) Start() {
	e.emitting = true
	e.mustEmit = 0
}

// Stop disables continuous emission. Live particles keep simulating.
func (e *Emitter) Stop() { e.emitting = false }

// SetOrigin moves the spawn point for future particles.
func (e *Emitter) SetOrigin(origin core.Vec2) { e.cfg.Origin = origin }

// SetDirection changes the base direction for future particles.
func (e *Emitter) SetDirection(dir core.Vec2) { e.cfg.Direction = dir.Normalize() }

// SetExternalAcceleration changes the acceleration for future particles.
func (e *Emitter) SetExternalAcceleration(acc core.Vec2) { e.cfg.ExternalAcceleration = acc }

// Emit spawns up to count particles and returns how many were spawned.
// Particles beyond the pool capacity are dropped.
func (e *Emitter) Emit(count int) int {
	count = min(count, e.cfg.Capacity-e.active)
	if count <= 0 {
		return 0
	}

	c := &e.cfg
	for i := e.active; i < e.active+count; i++ {
		dir := c.Direction.Rotate(c.DirectionAngle.Rand(e.rng))
		speed := c.Velocity.Rand(e.rng)
		vel := dir.Scale(speed).Rotate(c.VelocityAngle.Rand(e.rng))
		off := c.Offset.Rand(e.rng)

		e.positions[i] = core.V(c.Origin.X+off, c.Origin.Y+off)
		e.velocities[i] = vel
		e.accelerations[i] = c.ExternalAcceleration
		e.sizes[i] = c.Size.Rand(e.rng)
		e.ages[i] = 0
		e.ttls[i] = c.Age.Rand(e.rng)
		e.haltTimes[i] = c.HaltTime.Rand(e.rng)
	}
	e.active += count
	return count
}

// Burst emits a random number of particles from the burst range,
// regardless of whether the emitter is started.
func (e *Emitter) Burst() int {
	return e.Emit(e.cfg.Burst.Rand(e.rng))
}

// Update emits pending particles, ages and expires live ones, and
// integrates the survivors.
func (e *Emitter) Update(dt float64) {
	if e.emitting {
		e.mustEmit += dt * e.cfg.EmissionRate
		if n := int(e.mustEmit); n > 0 {
			e.Emit(n)
			e.mustEmit -= float64(n)
		}
	}

	for i := 0; i < e.active; i++ {
		e.ages[i] += dt
	}

	for i := 0; i < e.active; {
		if e.ages[i] > e.ttls[i] {
			e.removeSwap(i)
			continue
		}
		i++
	}

	for i := 0; i < e.active; i++ {
		if e.ages[i] > e.haltTimes[i] {
			e.velocities[i] = core.Vec2{}
			e.accelerations[i] = core.Vec2{}
		}
		e.velocities[i] = e.velocities[i].Add(e.accelerations[i].Scale(dt))
		e.positions[i] = e.positions[i].Add(e.velocities[i].Scale(dt))
	}
}

// removeSwap overwrites slot i with the last live particle.
func (e *Emitter) removeSwap(i int) {
	last := e.active - 1
	e.positions[i] = e.positions[last]
	e.velocities[i] = e.velocities[last]
	e.accelerations[i] = e.accelerations[last]
	e.sizes[i] = e.sizes[last]
	e.ages[i] = e.ages[last]
	e.ttls[i] = e.ttls[last]
	e.haltTimes[i] = e.haltTimes[last]
	e.active = last
}

// Draw renders every live particle.
func (e *Emitter) Draw(r Renderer) {
	for i := 0; i < e.active; i++ {
		r.FillSquare(e.positions[i].X, e.positions[i].Y, e.sizes[i], e.cfg.Color, e.cfg.BlendMode)
	}
}

// Particle is a read-only view of one live particle.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
	Age  float64
	TTL  float64
}

// At returns the live particle in slot i. It panics if i >= ActiveCount.
func (e *Emitter) At(i int) Particle {
	if i < 0 || i >= e.active {
		panic("particles: index out of range")
	}
	return Particle{
		Pos:  e.positions[i],
		Vel:  e.velocities[i],
		Size: e.sizes[i],
		Age:  e.ages[i],
		TTL:  e.ttls[i],
	}
}

// Clear drops every live particle.
func (e *Emitter) Clear() {
	e.active = 0
	e.mustEmit = 0
}
