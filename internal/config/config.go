// Package config provides YAML-based configuration loading and difficulty
// management for tether.
package config

// Config is the complete game configuration.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Camera     CameraConfig     `yaml:"camera"`
	Combat     CombatConfig     `yaml:"combat"`
	Timing     TimingConfig     `yaml:"timing"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the dimensions of the simulated view.
type WorldConfig struct {
	TileSize float64 `yaml:"tile_size"`
	ScreenW  float64 `yaml:"screen_w"`
	ScreenH  float64 `yaml:"screen_h"`
}

// PhysicsConfig defines runner movement.
type PhysicsConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	JumpBoost     float64 `yaml:"jump_boost"`
	JumpBoostTime float64 `yaml:"jump_boost_time"`
	CeilingFall   float64 `yaml:"ceiling_fall"`
	AscendCutoff  float64 `yaml:"ascend_cutoff"`
	ProbeDepth    float64 `yaml:"probe_depth"`
}

// CameraConfig defines how the camera trails the runners.
type CameraConfig struct {
	Slack       float64 `yaml:"slack"`
	SlackDiv    float64 `yaml:"slack_div"`
	WallPenalty float64 `yaml:"wall_penalty"`
	StartLag    float64 `yaml:"start_lag"`
	RestartLag  float64 `yaml:"restart_lag"`
}

// CombatConfig defines bullets and enemies.
type CombatConfig struct {
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
	MaxBullets   int     `yaml:"max_bullets"`
	HitTime      float64 `yaml:"hit_time"`
	EnemyHP      int     `yaml:"enemy_hp"`
}

// TimingConfig defines frame timing and screen durations.
type TimingConfig struct {
	TimeScale      float64 `yaml:"time_scale"`      // Applied to every frame delta
	MaxDT          float64 `yaml:"max_dt"`          // Frame delta clamp in seconds
	SlowMoStep     float64 `yaml:"slow_mo_step"`    // Debug slow-motion increment
	IntroDelay     float64 `yaml:"intro_delay"`     // Seconds on the second intro slide
	TransitionTime float64 `yaml:"transition_time"` // Seconds between levels
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	KillPoints   int     `yaml:"kill_points"`
	LevelPoints  int     `yaml:"level_points"`
	DistanceUnit float64 `yaml:"distance_unit"` // Pixels per distance point
}

// Range is an inclusive min/max pair.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// EffectConfig defines one particle effect.
type EffectConfig struct {
	Color          string     `yaml:"color"`
	Capacity       int        `yaml:"capacity"`
	Burst          Range      `yaml:"burst"`
	EmissionRate   float64    `yaml:"emission_rate"`
	Direction      [2]float64 `yaml:"direction"`
	DirectionAngle Range      `yaml:"direction_angle"`
	Velocity       Range      `yaml:"velocity"`
	VelocityAngle  Range      `yaml:"velocity_angle"` // Degrees, applied after scaling
	Offset         Range      `yaml:"offset"`         // Spawn jitter in pixels on both axes
	Size           Range      `yaml:"size"`
	Age            Range      `yaml:"age"`
	HaltTime       Range      `yaml:"halt_time"`
	Gravity        float64    `yaml:"gravity"`
	Additive       bool       `yaml:"additive"`
}

// EffectsConfig defines the particle effects used in play.
type EffectsConfig struct {
	Enabled bool         `yaml:"enabled"`
	Dust    EffectConfig `yaml:"dust"`   // Jumps and landings
	Sparks  EffectConfig `yaml:"sparks"` // Bullet hits
	Debris  EffectConfig `yaml:"debris"` // Enemy deaths
	Portal  EffectConfig `yaml:"portal"` // Continuous glow at the exit
	Trail   EffectConfig `yaml:"trail"`  // Muzzle flash
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level index/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`    // Added to run speed at max difficulty
	CameraPenaltyGain float64 `yaml:"camera_penalty_gain"` // Added to wall penalty at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
