package game

import (
	"math/rand"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/particles"
	"github.com/vovakirdan/tether/internal/sim"
)

// Effects owns the particle emitters used during play. One-shot effects
// share a single system and are repositioned per burst; the portal glow has
// its own system that is rebuilt for each level.
type Effects struct {
	enabled bool
	rng     *rand.Rand
	portal  particles.Config

	bursts *particles.System
	dust   *particles.Emitter
	sparks *particles.Emitter
	debris *particles.Emitter
	trail  *particles.Emitter

	glow *particles.System
}

// NewEffects builds the emitters described by cfg.
func NewEffects(cfg config.EffectsConfig, rng *rand.Rand) *Effects {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	fx := &Effects{
		enabled: cfg.Enabled,
		rng:     rng,
		portal:  EmitterConfig(cfg.Portal),
		bursts:  particles.NewSystem(),
		glow:    particles.NewSystem(),
	}
	fx.dust = particles.NewEmitter(EmitterConfig(cfg.Dust), rng)
	fx.sparks = particles.NewEmitter(EmitterConfig(cfg.Sparks), rng)
	fx.debris = particles.NewEmitter(EmitterConfig(cfg.Debris), rng)
	fx.trail = particles.NewEmitter(EmitterConfig(cfg.Trail), rng)
	for _, e := range []*particles.Emitter{fx.dust, fx.sparks, fx.debris, fx.trail} {
		fx.bursts.Register(e)
	}
	return fx
}

// Enabled reports whether effects are drawn at all.
func (fx *Effects) Enabled() bool { return fx.enabled }

// Trigger bursts the emitter that belongs to a simulation effect.
func (fx *Effects) Trigger(e sim.Effect) {
	if !fx.enabled {
		return
	}
	switch e.Event {
	case sim.EventJumped, sim.EventLanded:
		// Dust kicks away from the surface the character stands on.
		up := core.V(0, -1)
		if e.Orient == sim.OrientBottom {
			up = core.V(0, 1)
		}
		fx.dust.SetDirection(up)
		fx.dust.SetExternalAcceleration(core.V(0, fx.dust.Config().ExternalAcceleration.Len()*-up.Y))
		fx.dust.SetOrigin(e.Pos)
		fx.dust.Burst()
	case sim.EventEnemyHit:
		fx.sparks.SetOrigin(e.Pos)
		fx.sparks.Burst()
	case sim.EventEnemyKilled:
		fx.debris.SetOrigin(e.Pos)
		fx.debris.Burst()
	case sim.EventFired:
		fx.trail.SetOrigin(e.Pos)
		fx.trail.Burst()
	}
}

// SetPortals replaces the glow emitters with one per portal position.
func (fx *Effects) SetPortals(positions []core.Vec2) {
	for _, e := range append([]*particles.Emitter(nil), fx.glow.Emitters()...) {
		fx.glow.Deregister(e)
	}
	if !fx.enabled || fx.portal.Capacity <= 0 {
		return
	}
	for _, pos := range positions {
		cfg := fx.portal
		cfg.Origin = pos
		fx.glow.Register(particles.NewEmitter(cfg, fx.rng))
	}
	fx.glow.Start()
}

// Update advances every live particle.
func (fx *Effects) Update(dt float64) {
	if !fx.enabled {
		return
	}
	fx.bursts.Update(dt)
	fx.glow.Update(dt)
}

// Draw renders every live particle.
func (fx *Effects) Draw(r particles.Renderer) {
	if !fx.enabled {
		return
	}
	fx.glow.Draw(r)
	fx.bursts.Draw(r)
}

// Clear drops every live particle without touching the portal emitters.
func (fx *Effects) Clear() {
	for _, e := range fx.bursts.Emitters() {
		e.Clear()
	}
	for _, e := range fx.glow.Emitters() {
		e.Clear()
	}
}

// ActiveCount returns the number of live particles.
func (fx *Effects) ActiveCount() int {
	return fx.bursts.ActiveCount() + fx.glow.ActiveCount()
}
