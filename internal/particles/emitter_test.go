package particles

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tether/internal/core"
)

func testConfig(capacity int) Config {
	return Config{
		Direction:    core.V(1, 0),
		Velocity:     FloatRange{Min: 10, Max: 20},
		Offset:       FloatRange{Min: -2, Max: 2},
		Size:         FloatRange{Min: 1, Max: 3},
		Burst:        IntRange{Min: 3, Max: 5},
		Capacity:     capacity,
		EmissionRate: 10,
		Age:          FloatRange{Min: 1, Max: 1},
		HaltTime:     FloatRange{Min: 10, Max: 10},
		Color:        core.ColorEmber,
	}
}

func newTestEmitter(cfg Config) *Emitter {
	return NewEmitter(cfg, rand.New(rand.NewSource(42)))
}

func TestEmitThenUpdateZero(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		before   int
		emit     int
		want     int
	}{
		{"empty pool", 10, 0, 4, 4},
		{"partially full", 10, 3, 4, 7},
		{"clamped at capacity", 10, 8, 5, 10},
		{"already full", 5, 5, 2, 5},
		{"zero capacity", 0, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEmitter(testConfig(tt.capacity))
			e.Emit(tt.before)
			e.Emit(tt.emit)
			e.Update(0)
			if got := e.ActiveCount(); got != tt.want {
				t.Errorf("ActiveCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmitReturnsSpawned(t *testing.T) {
	e := newTestEmitter(testConfig(4))
	if n := e.Emit(3); n != 3 {
		t.Errorf("Emit(3) = %d, want 3", n)
	}
	if n := e.Emit(3); n != 1 {
		t.Errorf("Emit(3) on nearly full pool = %d, want 1", n)
	}
	if n := e.Emit(-1); n != 0 {
		t.Errorf("Emit(-1) = %d, want 0", n)
	}
}

func TestExpiryCompacts(t *testing.T) {
	cfg := testConfig(10)
	e := newTestEmitter(cfg)
	e.Emit(5)

	// Give particles distinct lifetimes: slots 1 and 3 expire.
	e.ttls[0], e.ttls[1], e.ttls[2], e.ttls[3], e.ttls[4] = 5, 0.1, 5, 0.1, 5
	e.sizes[4] = 99

	e.Update(0.5)

	if got := e.ActiveCount(); got != 3 {
		t.Fatalf("ActiveCount = %d, want 3", got)
	}
	for i := 0; i < e.ActiveCount(); i++ {
		if p := e.At(i); p.Age > p.TTL {
			t.Errorf("slot %d is expired but live (age %.2f ttl %.2f)", i, p.Age, p.TTL)
		}
	}
	// The last particle was swapped into the first freed slot.
	if e.sizes[1] != 99 {
		t.Errorf("slot 1 size = %v, want the swapped-in 99", e.sizes[1])
	}
}

func TestExpiryRechecksSwappedSlot(t *testing.T) {
	e := newTestEmitter(testConfig(4))
	e.Emit(3)
	// Slot 0 and the last slot both expire; the swapped-in particle must be
	// removed too.
	e.ttls[0], e.ttls[1], e.ttls[2] = 0.1, 5, 0.1

	e.Update(1)

	if got := e.ActiveCount(); got != 1 {
		t.Fatalf("ActiveCount = %d, want 1", got)
	}
	if e.ttls[0] != 5 {
		t.Errorf("survivor ttl = %v, want 5", e.ttls[0])
	}
}

func TestHaltTimeFreezes(t *testing.T) {
	cfg := testConfig(1)
	cfg.HaltTime = FloatRange{Min: 0.5, Max: 0.5}
	cfg.Age = FloatRange{Min: 10, Max: 10}
	cfg.ExternalAcceleration = core.V(0, 100)
	cfg.Offset = FloatRange{}
	e := newTestEmitter(cfg)
	e.Emit(1)

	e.Update(0.25)
	moving := e.At(0)
	if moving.Vel == (core.Vec2{}) {
		t.Fatal("particle should still be moving before halt time")
	}

	e.Update(0.5)
	halted := e.At(0)
	if halted.Vel != (core.Vec2{}) {
		t.Errorf("velocity = %v, want zero after halt time", halted.Vel)
	}

	pos := halted.Pos
	e.Update(0.5)
	if e.At(0).Pos != pos {
		t.Error("halted particle moved")
	}
}

func TestIntegration(t *testing.T) {
	cfg := testConfig(1)
	cfg.Velocity = FloatRange{Min: 10, Max: 10}
	cfg.Offset = FloatRange{}
	cfg.Origin = core.V(100, 50)
	cfg.ExternalAcceleration = core.V(0, 20)
	e := newTestEmitter(cfg)
	e.Emit(1)

	e.Update(0.5)

	p := e.At(0)
	// v = (10, 0) + (0, 20)*0.5 = (10, 10); pos = origin + v*0.5
	if p.Vel.X != 10 || p.Vel.Y != 10 {
		t.Errorf("Vel = %v, want (10, 10)", p.Vel)
	}
	if p.Pos.X != 105 || p.Pos.Y != 55 {
		t.Errorf("Pos = %v, want (105, 55)", p.Pos)
	}
}

func TestContinuousEmission(t *testing.T) {
	cfg := testConfig(100)
	cfg.EmissionRate = 10
	cfg.Age = FloatRange{Min: 100, Max: 100}
	e := newTestEmitter(cfg)

	e.Update(1)
	if e.ActiveCount() != 0 {
		t.Fatal("stopped emitter should not emit")
	}

	e.Start()
	// 0.25s at 10/s: 2 now, 0.5 carried.
	e.Update(0.25)
	if got := e.ActiveCount(); got != 2 {
		t.Errorf("after 0.25s ActiveCount = %d, want 2", got)
	}
	e.Update(0.25)
	if got := e.ActiveCount(); got != 5 {
		t.Errorf("after 0.5s ActiveCount = %d, want 5", got)
	}

	e.Stop()
	e.Update(1)
	if got := e.ActiveCount(); got != 5 {
		t.Errorf("after Stop ActiveCount = %d, want 5", got)
	}
}

func TestBurstWithinRange(t *testing.T) {
	e := newTestEmitter(testConfig(100))
	for i := 0; i < 5; i++ {
		before := e.ActiveCount()
		n := e.Burst()
		if n < 3 || n > 5 {
			t.Errorf("Burst spawned %d, want 3..5", n)
		}
		if e.ActiveCount() != before+n {
			t.Errorf("ActiveCount = %d, want %d", e.ActiveCount(), before+n)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := NewEmitter(testConfig(20), rand.New(rand.NewSource(7)))
	b := NewEmitter(testConfig(20), rand.New(rand.NewSource(7)))
	a.Burst()
	b.Burst()
	a.Update(0.1)
	b.Update(0.1)

	if a.ActiveCount() != b.ActiveCount() {
		t.Fatalf("counts differ: %d vs %d", a.ActiveCount(), b.ActiveCount())
	}
	for i := 0; i < a.ActiveCount(); i++ {
		if a.At(i) != b.At(i) {
			t.Errorf("particle %d differs", i)
		}
	}
}

type recordingRenderer struct {
	calls int
	color core.Color
}

func (r *recordingRenderer) FillSquare(x, y, size float64, c core.Color, mode BlendMode) {
	r.calls++
	r.color = c
}

func TestDrawVisitsLiveParticles(t *testing.T) {
	e := newTestEmitter(testConfig(10))
	e.Emit(4)

	r := &recordingRenderer{}
	e.Draw(r)
	if r.calls != 4 {
		t.Errorf("Draw calls = %d, want 4", r.calls)
	}
	if r.color != core.ColorEmber {
		t.Errorf("color = %v, want ember", r.color)
	}
}
