// Package diagnostics keeps a smoothed frames-per-second estimate from recorded frame times.
package diagnostics

import "time"

// DefaultHistory is the number of frame times averaged for FPS.
const DefaultHistory = 20

// Store is a frame-time diagnostic. It is stored as an ECS resource; only the main loop
// records into it.
type Store struct {
	enabled bool
	history []time.Duration
	next    int
	full    bool
	sum     time.Duration
}

// New returns an enabled store averaging over n frames (DefaultHistory if n <= 0).
func New(n int) *Store {
	if n <= 0 {
		n = DefaultHistory
	}
	return &Store{enabled: true, history: make([]time.Duration, n)}
}

// SetEnabled turns recording and reporting on or off. Disabling clears the history.
func (s *Store) SetEnabled(on bool) {
	if !on {
		s.Reset()
	}
	s.enabled = on
}

// Enabled reports whether the store records frames.
func (s *Store) Enabled() bool { return s.enabled }

// Reset drops all recorded frame times.
func (s *Store) Reset() {
	for i := range s.history {
		s.history[i] = 0
	}
	s.next, s.full, s.sum = 0, false, 0
}

// Record adds one frame time. Non-positive durations are ignored.
func (s *Store) Record(dt time.Duration) {
	if !s.enabled || dt <= 0 || len(s.history) == 0 {
		return
	}
	s.sum -= s.history[s.next]
	s.history[s.next] = dt
	s.sum += dt
	s.next++
	if s.next == len(s.history) {
		s.next = 0
		s.full = true
	}
}

func (s *Store) count() int {
	if s.full {
		return len(s.history)
	}
	return s.next
}

// FPS returns the average frames per second over the history. ok is false when the store is
// disabled or nothing has been recorded yet.
func (s *Store) FPS() (fps float32, ok bool) {
	n := s.count()
	if !s.enabled || n == 0 || s.sum <= 0 {
		return 0, false
	}
	avg := s.sum.Seconds() / float64(n)
	return float32(1 / avg), true
}
