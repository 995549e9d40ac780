package sim

// Cue identifies a sound effect.
type Cue uint8

const (
	CueJump Cue = iota
	CueShoot
	CueHit
	CueKill
	CuePortal
	CueRestart
	CueSwap
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	case CuePortal:
		return "portal"
	case CueRestart:
		return "restart"
	case CueSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound cues. Implementations must not block.
type SoundPlayer interface {
	Play(c Cue)
	IsPlaying(c Cue) bool
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) Play(Cue)           {}
func (NopSound) IsPlaying(Cue) bool { return false }
