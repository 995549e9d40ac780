package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tether/internal/sim"
)

// Cue returns a finite streamer for the cue.
func Cue(c sim.Cue) beep.Streamer {
	switch c {
	case sim.CueJump:
		return tone(120*time.Millisecond, 320, 640, sine, 0.25)
	case sim.CueShoot:
		return tone(80*time.Millisecond, 900, 300, square, 0.12)
	case sim.CueHit:
		return noise(70*time.Millisecond, 0, 0.3, 1)
	case sim.CueKill:
		return noise(250*time.Millisecond, 80, 0.35, 2)
	case sim.CuePortal:
		return beep.Seq(
			tone(150*time.Millisecond, 440, 440, sine, 0.2),
			tone(150*time.Millisecond, 554, 554, sine, 0.2),
			tone(150*time.Millisecond, 659, 659, sine, 0.2),
			tone(450*time.Millisecond, 880, 1320, sine, 0.2),
		)
	case sim.CueRestart:
		return tone(400*time.Millisecond, 300, 90, square, 0.15)
	case sim.CueSwap:
		return tone(50*time.Millisecond, 700, 760, sine, 0.15)
	default:
		return beep.Silence(0)
	}
}

type waveform func(phase float64) float64

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

// toneGenerator sweeps linearly between two frequencies under a short
// attack and an exponential release.
type toneGenerator struct {
	wave     waveform
	from, to float64
	amp      float64
	total    int
	pos      int
	phase    float64
}

func tone(d time.Duration, from, to float64, wave waveform, amp float64) beep.Streamer {
	return &toneGenerator{
		wave:  wave,
		from:  from,
		to:    to,
		amp:   amp,
		total: sampleRate.N(d),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(sampleRate)

		sample := g.amp * envelope(g.pos) * math.Exp(-3*progress) * g.wave(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// noiseGenerator is white noise over an optional low rumble, decaying
// exponentially.
type noiseGenerator struct {
	rng    *rand.Rand
	rumble float64
	amp    float64
	decay  float64
	total  int
	pos    int
}

func noise(d time.Duration, rumble, amp, decay float64) beep.Streamer {
	return &noiseGenerator{
		rng:    rand.New(rand.NewSource(int64(d))),
		rumble: rumble,
		amp:    amp,
		decay:  decay,
		total:  sampleRate.N(d),
	}
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(sampleRate)
		progress := float64(g.pos) / float64(g.total)

		sample := 0.6 * (g.rng.Float64()*2 - 1)
		if g.rumble > 0 {
			sample += 0.4 * math.Sin(2*math.Pi*g.rumble*t)
		}
		sample *= g.amp * envelope(g.pos) * math.Exp(-g.decay*3*progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error { return nil }

// envelope ramps in over 5ms to avoid clicks.
func envelope(pos int) float64 {
	attack := sampleRate.N(5 * time.Millisecond)
	return math.Min(float64(pos)/float64(attack), 1)
}
