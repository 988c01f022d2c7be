// Package xr describes controller input the way an XR runtime reports it: grip poses,
// thumbsticks, triggers and face buttons for two hands. Sources are sampled once per frame.
package xr

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrUnavailable is returned by a Source that has no device or session to read from.
var ErrUnavailable = errors.New("xr: input source unavailable")

// Hand selects one of the two tracked controllers.
type Hand int

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Button names accepted by Sample.Button. A/B sit on the right controller, X/Y on the left.
const (
	ButtonA = "a"
	ButtonB = "b"
	ButtonX = "x"
	ButtonY = "y"
)

// Pose is a position plus an orientation quaternion (x, y, z, w).
type Pose struct {
	Position    [3]float32
	Orientation [4]float32
}

// IdentityPose sits at the origin with no rotation.
var IdentityPose = Pose{Orientation: [4]float32{0, 0, 0, 1}}

// HandState is what one controller reports in a frame.
type HandState struct {
	Grip       Pose
	Thumbstick [2]float32 // x, y in [-1, 1]
	Trigger    float32    // [0, 1]
	Primary    bool       // A on the right hand, X on the left
	Secondary  bool       // B on the right hand, Y on the left
}

// Sample is a per-frame snapshot of both controllers. It is read and discarded each frame.
type Sample struct {
	Hands [2]HandState
}

// Grip returns the grip pose of hand h.
func (s Sample) Grip(h Hand) Pose { return s.Hands[h].Grip }

// Thumbstick returns the stick deflection of hand h.
func (s Sample) Thumbstick(h Hand) [2]float32 { return s.Hands[h].Thumbstick }

// Trigger returns the analog trigger value of hand h.
func (s Sample) Trigger(h Hand) float32 { return s.Hands[h].Trigger }

// Button reports whether the named face button is pressed. Unknown names are never pressed.
func (s Sample) Button(name string) bool {
	switch name {
	case ButtonA:
		return s.Hands[Right].Primary
	case ButtonB:
		return s.Hands[Right].Secondary
	case ButtonX:
		return s.Hands[Left].Primary
	case ButtonY:
		return s.Hands[Left].Secondary
	}
	return false
}

// Source produces controller samples. Implementations may fail when the device or
// session is gone; callers skip the frame in that case.
type Source interface {
	Sample() (Sample, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (Sample, error)

// Sample calls f.
func (f SourceFunc) Sample() (Sample, error) { return f() }

// Past reports which side of the deadzone v lies on: +1 above dz, -1 below -dz, 0 inside.
// The bounds are strict so a value exactly on the deadzone does not count.
func Past(v, dz float32) int {
	dz = math32.Abs(dz)
	switch {
	case v > dz:
		return 1
	case v < -dz:
		return -1
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
