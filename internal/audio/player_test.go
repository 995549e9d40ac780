package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tether/internal/sim"
)

var allCues = []sim.Cue{
	sim.CueJump, sim.CueShoot, sim.CueHit, sim.CueKill,
	sim.CuePortal, sim.CueRestart, sim.CueSwap,
}

// cueDuration streams the cue to its end and returns how long it sounds.
func cueDuration(c sim.Cue) time.Duration {
	n := 0
	buf := make([][2]float64, 512)
	s := Cue(c)
	for {
		m, ok := s.Stream(buf)
		n += m
		if !ok {
			break
		}
	}
	return sampleRate.D(n)
}

func TestCuesAreFiniteAndBounded(t *testing.T) {
	for _, c := range allCues {
		t.Run(c.String(), func(t *testing.T) {
			s := Cue(c)
			buf := make([][2]float64, 1024)
			total := 0
			peak := 0.0
			for i := 0; i < 1000; i++ {
				n, ok := s.Stream(buf)
				for _, smp := range buf[:n] {
					if math.IsNaN(smp[0]) || math.Abs(smp[0]) > 1 {
						t.Fatalf("sample out of range: %v", smp[0])
					}
					peak = math.Max(peak, math.Abs(smp[0]))
				}
				total += n
				if !ok {
					break
				}
			}
			if total == 0 || peak == 0 {
				t.Error("cue is silent")
			}
			if d := sampleRate.D(total); d > 2*time.Second {
				t.Errorf("cue lasts %v", d)
			}
		})
	}
}

func TestPortalCueIsLongest(t *testing.T) {
	portal := cueDuration(sim.CuePortal)
	for _, c := range allCues {
		if c != sim.CuePortal && cueDuration(c) >= portal {
			t.Errorf("%s (%v) is not shorter than portal (%v)", c, cueDuration(c), portal)
		}
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Play(sim.CuePortal)
	if p.IsPlaying(sim.CuePortal) {
		t.Error("uninitialized player should not report playing")
	}
	p.Close()
}

func TestTrackingClearsWhenFinished(t *testing.T) {
	p := NewPlayer()

	p.mu.Lock()
	s := p.track(sim.CueJump)
	p.mu.Unlock()

	if !p.IsPlaying(sim.CueJump) {
		t.Fatal("cue should be playing once tracked")
	}
	if p.IsPlaying(sim.CueShoot) {
		t.Error("other cues should not be playing")
	}

	buf := make([][2]float64, 512)
	for {
		if _, ok := s.Stream(buf); !ok {
			break
		}
	}

	if p.IsPlaying(sim.CueJump) {
		t.Error("cue should stop playing when drained")
	}
}

func TestOverlappingInstances(t *testing.T) {
	p := NewPlayer()

	p.mu.Lock()
	a := p.track(sim.CueHit)
	b := p.track(sim.CueHit)
	p.mu.Unlock()

	drain := func(s interface {
		Stream([][2]float64) (int, bool)
	}) {
		buf := make([][2]float64, 512)
		for {
			if _, ok := s.Stream(buf); !ok {
				return
			}
		}
	}

	drain(a)
	if !p.IsPlaying(sim.CueHit) {
		t.Error("second instance still sounding")
	}
	drain(b)
	if p.IsPlaying(sim.CueHit) {
		t.Error("all instances finished")
	}
}
