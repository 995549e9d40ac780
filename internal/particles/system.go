package particles

import "github.com/vovakirdan/tether/internal/core"

// System batches calls across a group of emitters.
type System struct {
	emitters []*Emitter
	length   int
	active   bool
}

// NewSystem creates an empty system.
func NewSystem() *System {
	return &System{emitters: make([]*Emitter, 2)}
}

// Len returns the number of registered emitters.
func (s *System) Len() int { return s.length }

// Emitters returns the registered emitters.
func (s *System) Emitters() []*Emitter { return s.emitters[:s.length] }

// Active reports whether the system has been started.
func (s *System) Active() bool { return s.active }

// Register adds an emitter, doubling storage when full.
// Registering nil or an already registered emitter returns false.
func (s *System) Register(e *Emitter) bool {
	if e == nil {
		return false
	}
	for _, existing := range s.emitters[:s.length] {
		if existing == e {
			return false
		}
	}
	if s.length == len(s.emitters) {
		grown := make([]*Emitter, max(2, len(s.emitters)*2))
		copy(grown, s.emitters)
		s.emitters = grown
	}
	s.emitters[s.length] = e
	s.length++
	return true
}

// Deregister removes an emitter by identity, moving the last emitter into
// its slot. Returns false if the emitter is not registered.
func (s *System) Deregister(e *Emitter) bool {
	for i := 0; i < s.length; i++ {
		if s.emitters[i] != e {
			continue
		}
		last := s.length - 1
		s.emitters[i] = s.emitters[last]
		s.emitters[last] = nil
		s.length = last
		return true
	}
	return false
}

// SetOrigin moves every emitter's origin.
func (s *System) SetOrigin(origin core.Vec2) {
	for _, e := range s.Emitters() {
		e.SetOrigin(origin)
	}
}

// Start starts every emitter.
func (s *System) Start() {
	s.active = true
	for _, e := range s.Emitters() {
		e.Start()
	}
}

// Stop stops every emitter.
func (s *System) Stop() {
	s.active = false
	for _, e := range s.Emitters() {
		e.Stop()
	}
}

// Burst bursts every emitter.
func (s *System) Burst() {
	for _, e := range s.Emitters() {
		e.Burst()
	}
}

// Update advances every emitter.
func (s *System) Update(dt float64) {
	for _, e := range s.Emitters() {
		e.Update(dt)
	}
}

// Draw renders every emitter.
func (s *System) Draw(r Renderer) {
	for _, e := range s.Emitters() {
		e.Draw(r)
	}
}

// ActiveCount returns the total live particles across all emitters.
func (s *System) ActiveCount() int {
	n := 0
	for _, e := range s.Emitters() {
		n += e.ActiveCount()
	}
	return n
}

// Capacity returns the current emitter slot capacity.
func (s *System) Capacity() int { return len(s.emitters) }
