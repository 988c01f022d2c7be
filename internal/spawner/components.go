package spawner

import (
	"time"

	"github.com/mlange-42/ark/ecs"
)

// CubeSpawner owns the grid dimensions and every marker it has spawned. There is exactly one
// per world; it is created by System.Initialize and mutated only by the spawner system.
type CubeSpawner struct {
	Width     int
	Height    int
	Increment int
	CubeSize  float32
	Distance  float32 // gap between neighbouring cubes
	Depth     float32 // z of the grid plane
	Timer     Timer
	Spawned   []ecs.Entity
}

// Marker tags a spawned cube. Size is the cube edge length.
type Marker struct {
	Size float32
}

// Transform places an entity in the world. Orientation is a quaternion (x, y, z, w).
type Transform struct {
	Position    [3]float32
	Orientation [4]float32
}

// Timer is a repeating timer advanced by frame deltas.
type Timer struct {
	Period  time.Duration
	elapsed time.Duration
}

// NewTimer returns a repeating timer firing every period.
func NewTimer(period time.Duration) Timer {
	return Timer{Period: period}
}

// Tick advances the timer by dt and reports whether it fired. Time past the period carries
// over to the next cycle; several periods elapsed in one tick still fire once.
// A non-positive period fires every tick.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Period <= 0 {
		return true
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed < t.Period {
		return false
	}
	t.elapsed %= t.Period
	return true
}

// Elapsed is the time accumulated in the current cycle.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }
