package config

import "math"

// DifficultyManager calculates dynamic game parameters from progress
// through the level sequence, score or time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Progress describes how far a run has come.
type Progress struct {
	LevelIndex int // Zero-based index into the level sequence
	Score      int
	Ticks      int
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(p.LevelIndex) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the run speed for the current difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, p Progress) float64 {
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// WallPenalty returns the camera catch-up penalty for the current
// difficulty; a larger penalty punishes hitting walls sooner.
func (d *DifficultyManager) WallPenalty(basePenalty float64, p Progress) float64 {
	return basePenalty * (1.0 + d.Level(p)*d.cfg.Scaling.CameraPenaltyGain)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
