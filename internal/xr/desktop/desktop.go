// Package desktop provides xr.Source implementations for machines without a headset:
// a raylib gamepad and a keyboard+mouse emulator. Both must be sampled on the main
// thread after the window exists.
package desktop

import (
	"xr-cubes/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Gamepad maps a raylib gamepad onto the two-controller layout: left stick and LT/LB
// drive the left hand, right stick and RT/face buttons drive the right hand.
// Hand poses come from Rig since gamepads are not tracked.
type Gamepad struct {
	Index int32
	Rig   *xr.Rig
}

// NewGamepad returns a source for gamepad index, posed by rig.
func NewGamepad(index int32, rig *xr.Rig) *Gamepad {
	return &Gamepad{Index: index, Rig: rig}
}

// Sample returns xr.ErrUnavailable when no gamepad is connected at Index.
func (g *Gamepad) Sample() (xr.Sample, error) {
	if !rl.IsGamepadAvailable(g.Index) {
		return xr.Sample{}, xr.ErrUnavailable
	}
	axis := func(a int32) float32 { return rl.GetGamepadAxisMovement(g.Index, a) }
	down := func(b int32) bool { return rl.IsGamepadButtonDown(g.Index, b) }

	var s xr.Sample
	// raylib reports stick Y positive downwards; XR sticks are positive upwards.
	s.Hands[xr.Left].Thumbstick = [2]float32{axis(rl.GamepadAxisLeftX), -axis(rl.GamepadAxisLeftY)}
	s.Hands[xr.Right].Thumbstick = [2]float32{axis(rl.GamepadAxisRightX), -axis(rl.GamepadAxisRightY)}
	s.Hands[xr.Left].Trigger = triggerValue(axis(rl.GamepadAxisLeftTrigger))
	s.Hands[xr.Right].Trigger = triggerValue(axis(rl.GamepadAxisRightTrigger))
	s.Hands[xr.Right].Primary = down(rl.GamepadButtonRightFaceDown)
	s.Hands[xr.Right].Secondary = down(rl.GamepadButtonRightFaceRight)
	s.Hands[xr.Left].Primary = down(rl.GamepadButtonRightFaceLeft)
	s.Hands[xr.Left].Secondary = down(rl.GamepadButtonRightFaceUp)

	s.Hands[xr.Left].Grip = g.Rig.Pose(xr.Left)
	s.Hands[xr.Right].Grip = g.Rig.Pose(xr.Right)
	return s, nil
}

// triggerValue remaps raylib's trigger axis ([-1, 1], -1 released) to [0, 1].
func triggerValue(v float32) float32 {
	return xr.Clamp((v+1)*0.5, 0, 1)
}
