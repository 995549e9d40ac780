// Package sim advances the two mirrored runners, the camera, enemies and
// bullets against a static tile grid.
//
// All units are pixels and seconds with Y pointing down. The top character
// stands on tiles below it and rises by decreasing Y; the bottom character
// hangs from tiles above it and rises by increasing Y.
package sim

// Params holds the tunable constants of the simulation.
type Params struct {
	TileSize float64
	ScreenW  float64
	ScreenH  float64

	MoveSpeed      float64 // Auto-run speed
	Gravity        float64
	JumpImpulse    float64
	JumpBoost      float64 // Extra upward acceleration while jump is held
	JumpBoostTime  float64 // How long the boost may be held
	CeilingFall    float64 // Velocity clamp after hitting a ceiling
	AscendCutoff   float64 // Velocity below which a character stops ascending
	ProbeDepth     float64 // Thickness of contact probes
	CameraSlack    float64 // Lag below which the camera slows down
	CameraSlackDiv float64
	WallPenalty    float64 // Camera speed lost while blocked by a wall
	StartLag       float64 // Initial distance between camera and player
	RestartLag     float64 // Lag below which the level restarts

	BulletSpeed  float64 // Added to MoveSpeed
	BulletRadius float64
	MaxBullets   int
	HitTime      float64
	EnemyHP      int

	BobSpeed      float64
	BobAmplitude  float64
	AnimFrameTime float64
	AnimFrames    int
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		TileSize: 30,
		ScreenW:  800,
		ScreenH:  450,

		MoveSpeed:      300,
		Gravity:        400,
		JumpImpulse:    150,
		JumpBoost:      350,
		JumpBoostTime:  0.4,
		CeilingFall:    -10,
		AscendCutoff:   -0.1,
		ProbeDepth:     10,
		CameraSlack:    120,
		CameraSlackDiv: 15,
		WallPenalty:    100,
		StartLag:       200,
		RestartLag:     15,

		BulletSpeed:  500,
		BulletRadius: 5,
		MaxBullets:   16,
		HitTime:      0.2,
		EnemyHP:      3,

		BobSpeed:      4,
		BobAmplitude:  4,
		AnimFrameTime: 0.1,
		AnimFrames:    4,
	}
}

// ClampDT limits a frame delta to [0, maxDT].
func ClampDT(dt, maxDT float64) float64 {
	if dt < 0 {
		return 0
	}
	if maxDT > 0 && dt > maxDT {
		return maxDT
	}
	return dt
}
