package testutil

import "sync"

// SequenceSource replays a fixed list of uniform draws.
//
// Draws cycle back to the start once the list is exhausted, so a short
// script can drive an arbitrarily long sampling loop. It satisfies
// stats.Source.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequenceSource struct {
	mu    sync.Mutex
	draws []float64
	calls int
}

// NewSequenceSource creates a source that returns draws in order.
//
// If draws is empty, Float64() always returns 0.
func NewSequenceSource(draws ...float64) *SequenceSource {
	cp := make([]float64, len(draws))
	copy(cp, draws)
	return &SequenceSource{draws: cp}
}

// Float64 returns the next scripted draw.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.draws) == 0 {
		s.calls++
		return 0
	}
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

// Calls returns how many draws have been taken.
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Reset rewinds the source to the first draw.
func (s *SequenceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = 0
}
