// Package frame holds per-frame timing shared by systems through the ECS world.
package frame

import "time"

// Time is the frame clock. The main loop advances it once per rendered frame, before systems run.
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
	Frame   uint64
}

// Advance records a frame of length dt. Negative deltas count as zero.
func (t *Time) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	t.Delta = dt
	t.Elapsed += dt
	t.Frame++
}

// Seconds converts raylib's float32 frame time to a duration.
func Seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}
