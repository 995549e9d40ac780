package game

import (
	"testing"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/particles"
	"github.com/vovakirdan/tether/internal/sim"
)

func TestSimParamsFromDefaults(t *testing.T) {
	if got, want := SimParams(config.DefaultConfig()), sim.DefaultParams(); got != want {
		t.Errorf("SimParams(defaults) = %+v\nwant %+v", got, want)
	}
}

func TestSimParamsOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Physics.MoveSpeed = 120
	cfg.Camera.RestartLag = 40
	cfg.Combat.MaxBullets = 2

	p := SimParams(cfg)
	if p.MoveSpeed != 120 || p.RestartLag != 40 || p.MaxBullets != 2 {
		t.Errorf("overrides not applied: %+v", p)
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name string
		want core.Color
	}{
		{"sand", core.ColorSand},
		{" Portal ", core.ColorPortal},
		{"grey", core.ColorGray},
		{"", core.ColorDefault},
		{"chartreuse", core.ColorDefault},
	}
	for _, tt := range tests {
		if got := ColorByName(tt.name); got != tt.want {
			t.Errorf("ColorByName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEmitterConfig(t *testing.T) {
	ec := config.DefaultConfig().Effects.Sparks
	cfg := EmitterConfig(ec)

	if cfg.BlendMode != particles.BlendAdditive {
		t.Error("additive effect not mapped to additive blending")
	}
	if cfg.Color != core.ColorEmber {
		t.Errorf("Color = %v, want ember", cfg.Color)
	}
	if cfg.Burst.Min != int(ec.Burst.Min) || cfg.Burst.Max != int(ec.Burst.Max) {
		t.Errorf("Burst = %+v", cfg.Burst)
	}
	if cfg.Capacity != ec.Capacity {
		t.Errorf("Capacity = %d, want %d", cfg.Capacity, ec.Capacity)
	}
	if cfg.VelocityAngle != (particles.FloatRange{Min: -15, Max: 15}) {
		t.Errorf("VelocityAngle = %+v, want -15..15", cfg.VelocityAngle)
	}

	custom := EmitterConfig(config.EffectConfig{
		Offset:        config.Range{Min: -3, Max: 5},
		VelocityAngle: config.Range{Min: 10, Max: 20},
	})
	if custom.Offset != (particles.FloatRange{Min: -3, Max: 5}) {
		t.Errorf("Offset = %+v, want -3..5", custom.Offset)
	}
	if custom.VelocityAngle != (particles.FloatRange{Min: 10, Max: 20}) {
		t.Errorf("VelocityAngle = %+v, want 10..20", custom.VelocityAngle)
	}

	dust := EmitterConfig(config.DefaultConfig().Effects.Dust)
	if dust.ExternalAcceleration != core.V(0, 120) {
		t.Errorf("dust gravity = %+v", dust.ExternalAcceleration)
	}
	if dust.BlendMode != particles.BlendAlpha {
		t.Error("dust should blend normally")
	}
}
