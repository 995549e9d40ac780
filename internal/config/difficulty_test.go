package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, CameraPenaltyGain: 1},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		index int
		want  float64
	}{
		{0, 0.2},
		{2, 0.6},
		{4, 1.0},
		{10, 1.0},
	}
	for _, tt := range tests {
		got := d.Level(Progress{LevelIndex: tt.index})
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(index %d) = %v, want %v", tt.index, got, tt.want)
		}
	}

	if got := d.Speed(300, Progress{LevelIndex: 4}); math.Abs(got-450) > 1e-9 {
		t.Errorf("Speed at max = %v, want 450", got)
	}
	if got := d.WallPenalty(100, Progress{LevelIndex: 4}); math.Abs(got-200) > 1e-9 {
		t.Errorf("WallPenalty at max = %v, want 200", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 1},
	})
	if got := d.Level(Progress{LevelIndex: 5}); got != 0.3 {
		t.Errorf("Level = %v, want initial 0.3", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should be false")
	}

	high := NewDifficultyManager(DifficultyConfig{
		InitialLevel: 2,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 1},
	})
	if got := high.Level(Progress{}); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyScoreAndTime(t *testing.T) {
	score := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	if got := score.Level(Progress{Score: 500}); got != 0.5 {
		t.Errorf("score Level = %v, want 0.5", got)
	}

	ticks := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})
	if got := ticks.Level(Progress{Ticks: 3}); got != 1 {
		t.Errorf("time Level with max_at 0 = %v, want 1", got)
	}
}
