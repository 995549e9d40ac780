package config

import (
	_ "embed"
)

//go:embed defaults/tether.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration. It matches the
// embedded defaults/tether.yaml and is used if that fails to parse.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			TileSize: 30,
			ScreenW:  800,
			ScreenH:  450,
		},
		Physics: PhysicsConfig{
			MoveSpeed:     300,
			Gravity:       400,
			JumpImpulse:   150,
			JumpBoost:     350,
			JumpBoostTime: 0.4,
			CeilingFall:   -10,
			AscendCutoff:  -0.1,
			ProbeDepth:    10,
		},
		Camera: CameraConfig{
			Slack:       120,
			SlackDiv:    15,
			WallPenalty: 100,
			StartLag:    200,
			RestartLag:  15,
		},
		Combat: CombatConfig{
			BulletSpeed:  500,
			BulletRadius: 5,
			MaxBullets:   16,
			HitTime:      0.2,
			EnemyHP:      3,
		},
		Timing: TimingConfig{
			TimeScale:      1.3,
			MaxDT:          0.5,
			SlowMoStep:     0.1,
			IntroDelay:     2.0,
			TransitionTime: 1.5,
		},
		Gameplay: GameplayConfig{
			Lives:        5,
			KillPoints:   100,
			LevelPoints:  500,
			DistanceUnit: 30,
		},
		Effects: EffectsConfig{
			Enabled: true,
			Dust: EffectConfig{
				Color:          "sand",
				Capacity:       64,
				Burst:          Range{4, 7},
				Direction:      [2]float64{0, -1},
				DirectionAngle: Range{-60, 60},
				Velocity:       Range{20, 60},
				VelocityAngle:  Range{0, 0},
				Offset:         Range{-4, 4},
				Size:           Range{2, 4},
				Age:            Range{0.2, 0.5},
				HaltTime:       Range{0.3, 0.5},
				Gravity:        120,
			},
			Sparks: EffectConfig{
				Color:          "ember",
				Capacity:       64,
				Burst:          Range{5, 9},
				Direction:      [2]float64{-1, 0},
				DirectionAngle: Range{-70, 70},
				Velocity:       Range{80, 160},
				VelocityAngle:  Range{-15, 15},
				Offset:         Range{0, 0},
				Size:           Range{1, 3},
				Age:            Range{0.15, 0.35},
				HaltTime:       Range{1, 1},
				Additive:       true,
			},
			Debris: EffectConfig{
				Color:          "blood",
				Capacity:       96,
				Burst:          Range{12, 18},
				Direction:      [2]float64{0, -1},
				DirectionAngle: Range{-180, 180},
				Velocity:       Range{60, 180},
				VelocityAngle:  Range{-25, 25},
				Offset:         Range{-6, 6},
				Size:           Range{2, 5},
				Age:            Range{0.4, 0.9},
				HaltTime:       Range{0.6, 0.9},
				Gravity:        300,
			},
			Portal: EffectConfig{
				Color:          "portal",
				Capacity:       48,
				EmissionRate:   20,
				Direction:      [2]float64{0, -1},
				DirectionAngle: Range{-30, 30},
				Velocity:       Range{10, 30},
				VelocityAngle:  Range{0, 0},
				Offset:         Range{-10, 10},
				Size:           Range{1, 3},
				Age:            Range{0.6, 1.2},
				HaltTime:       Range{2, 2},
				Additive:       true,
			},
			Trail: EffectConfig{
				Color:          "white",
				Capacity:       32,
				Burst:          Range{2, 4},
				Direction:      [2]float64{1, 0},
				DirectionAngle: Range{-20, 20},
				Velocity:       Range{100, 200},
				VelocityAngle:  Range{0, 0},
				Offset:         Range{0, 3},
				Size:           Range{1, 2},
				Age:            Range{0.05, 0.15},
				HaltTime:       Range{1, 1},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.4,
				CameraPenaltyGain: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
