// Package audio plays synthesized sound cues through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tether/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes sound cues into a single speaker stream. It is safe for
// concurrent use. Until Init succeeds every call is a no-op, so a machine
// without an audio device simply plays nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	playing     map[sim.Cue]int
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Init to open the speaker.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:   mixer,
		volume:  &effects.Volume{Streamer: mixer, Base: 2},
		playing: make(map[sim.Cue]int),
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	if !p.initialized {
		p.mu.Unlock()
		return
	}
	p.initialized = false
	clear(p.playing)
	p.mu.Unlock()

	speaker.Clear()
	speaker.Close()
}

// SetMuted silences or restores output without dropping cue tracking.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()

	speaker.Lock()
	p.volume.Silent = muted
	speaker.Unlock()
}

// SetVolume sets the master volume in halvings: 0 is unchanged, -1 is half.
func (p *Player) SetVolume(v float64) {
	speaker.Lock()
	p.volume.Volume = v
	speaker.Unlock()
}

// Play starts a cue. Cues overlap freely.
func (p *Player) Play(c sim.Cue) {
	p.mu.Lock()
	if !p.initialized || p.muted {
		p.mu.Unlock()
		return
	}
	s := p.track(c)
	p.mu.Unlock()

	// Lock order is speaker then p.mu (see the tracking callback), so the
	// mixer is touched only after p.mu is released.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// IsPlaying reports whether any instance of the cue is still sounding.
func (p *Player) IsPlaying(c sim.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing[c] > 0
}

// track marks the cue as playing and returns its streamer, which clears the
// mark when it finishes. p.mu must be held.
func (p *Player) track(c sim.Cue) beep.Streamer {
	p.playing[c]++
	return beep.Seq(
		Cue(c),
		beep.Callback(func() {
			p.mu.Lock()
			if p.playing[c] > 0 {
				p.playing[c]--
			}
			p.mu.Unlock()
		}),
	)
}

var _ sim.SoundPlayer = (*Player)(nil)
