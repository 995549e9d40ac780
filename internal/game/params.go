package game

import (
	"strings"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/particles"
	"github.com/vovakirdan/tether/internal/sim"
)

// SimParams converts the YAML configuration into simulation constants.
// Animation and bobbing tuning is not exposed in the file and keeps the
// stock values.
func SimParams(cfg config.Config) sim.Params {
	p := sim.DefaultParams()

	p.TileSize = cfg.World.TileSize
	p.ScreenW = cfg.World.ScreenW
	p.ScreenH = cfg.World.ScreenH

	p.MoveSpeed = cfg.Physics.MoveSpeed
	p.Gravity = cfg.Physics.Gravity
	p.JumpImpulse = cfg.Physics.JumpImpulse
	p.JumpBoost = cfg.Physics.JumpBoost
	p.JumpBoostTime = cfg.Physics.JumpBoostTime
	p.CeilingFall = cfg.Physics.CeilingFall
	p.AscendCutoff = cfg.Physics.AscendCutoff
	p.ProbeDepth = cfg.Physics.ProbeDepth

	p.CameraSlack = cfg.Camera.Slack
	p.CameraSlackDiv = cfg.Camera.SlackDiv
	p.WallPenalty = cfg.Camera.WallPenalty
	p.StartLag = cfg.Camera.StartLag
	p.RestartLag = cfg.Camera.RestartLag

	p.BulletSpeed = cfg.Combat.BulletSpeed
	p.BulletRadius = cfg.Combat.BulletRadius
	p.MaxBullets = cfg.Combat.MaxBullets
	p.HitTime = cfg.Combat.HitTime
	p.EnemyHP = cfg.Combat.EnemyHP

	return p
}

// colorNames maps the palette names accepted in effect configs.
var colorNames = map[string]core.Color{
	"default": core.ColorDefault,
	"ink":     core.ColorInk,
	"dusk":    core.ColorDusk,
	"moss":    core.ColorMoss,
	"leaf":    core.ColorLeaf,
	"sand":    core.ColorSand,
	"ember":   core.ColorEmber,
	"blood":   core.ColorBlood,
	"sky":     core.ColorSky,
	"gray":    core.ColorGray,
	"grey":    core.ColorGray,
	"white":   core.ColorWhite,
	"portal":  core.ColorPortal,
}

// ColorByName resolves a palette name. Unknown names map to the default
// color.
func ColorByName(name string) core.Color {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return core.ColorDefault
}

// EmitterConfig converts one effect section into an emitter configuration.
// Gravity is applied as a downward external acceleration.
func EmitterConfig(ec config.EffectConfig) particles.Config {
	cfg := particles.Config{
		Direction:            core.V(ec.Direction[0], ec.Direction[1]),
		Velocity:             floatRange(ec.Velocity),
		DirectionAngle:       floatRange(ec.DirectionAngle),
		VelocityAngle:        floatRange(ec.VelocityAngle),
		Offset:               floatRange(ec.Offset),
		Size:                 floatRange(ec.Size),
		Burst:                particles.IntRange{Min: int(ec.Burst.Min), Max: int(ec.Burst.Max)},
		Capacity:             ec.Capacity,
		EmissionRate:         ec.EmissionRate,
		ExternalAcceleration: core.V(0, ec.Gravity),
		Color:                ColorByName(ec.Color),
		Age:                  floatRange(ec.Age),
		HaltTime:             floatRange(ec.HaltTime),
	}
	if ec.Additive {
		cfg.BlendMode = particles.BlendAdditive
	}
	return cfg
}

func floatRange(r config.Range) particles.FloatRange {
	return particles.FloatRange{Min: r.Min, Max: r.Max}
}
