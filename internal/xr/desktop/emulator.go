package desktop

import (
	"xr-cubes/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// triggerRamp is how much of the trigger range a held mouse button covers per second.
	triggerRamp = 2.0
	// mouseTurn converts mouse pixels to radians while the middle button is held.
	mouseTurn = 0.005
)

// Emulator drives both controllers from the keyboard and mouse.
//
//	arrows        right thumbstick
//	WASD          left thumbstick
//	left mouse    right trigger (ramps while held)
//	right mouse   left trigger
//	J / K         A / B
//	U / I         X / Y
//	middle drag   turn both hands
//
// Active, when set, gates input; a closed gate yields a neutral sample (e.g. while the
// terminal is capturing keys).
type Emulator struct {
	Rig    *xr.Rig
	Active func() bool

	triggers [2]float32
}

// NewEmulator returns a keyboard+mouse source posed by rig.
func NewEmulator(rig *xr.Rig) *Emulator {
	return &Emulator{Rig: rig}
}

// Sample never fails.
func (e *Emulator) Sample() (xr.Sample, error) {
	var s xr.Sample
	s.Hands[xr.Left].Grip = e.Rig.Pose(xr.Left)
	s.Hands[xr.Right].Grip = e.Rig.Pose(xr.Right)
	if e.Active != nil && !e.Active() {
		e.triggers = [2]float32{}
		return s, nil
	}

	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		e.Rig.Turn(-d.Y*mouseTurn, -d.X*mouseTurn)
		s.Hands[xr.Left].Grip = e.Rig.Pose(xr.Left)
		s.Hands[xr.Right].Grip = e.Rig.Pose(xr.Right)
	}

	s.Hands[xr.Right].Thumbstick = keyAxes(rl.KeyLeft, rl.KeyRight, rl.KeyDown, rl.KeyUp)
	s.Hands[xr.Left].Thumbstick = keyAxes(rl.KeyA, rl.KeyD, rl.KeyS, rl.KeyW)

	dt := rl.GetFrameTime()
	e.triggers[xr.Right] = ramp(e.triggers[xr.Right], rl.IsMouseButtonDown(rl.MouseButtonLeft), dt)
	e.triggers[xr.Left] = ramp(e.triggers[xr.Left], rl.IsMouseButtonDown(rl.MouseButtonRight), dt)
	s.Hands[xr.Right].Trigger = e.triggers[xr.Right]
	s.Hands[xr.Left].Trigger = e.triggers[xr.Left]

	s.Hands[xr.Right].Primary = rl.IsKeyDown(rl.KeyJ)
	s.Hands[xr.Right].Secondary = rl.IsKeyDown(rl.KeyK)
	s.Hands[xr.Left].Primary = rl.IsKeyDown(rl.KeyU)
	s.Hands[xr.Left].Secondary = rl.IsKeyDown(rl.KeyI)
	return s, nil
}

func keyAxes(left, right, down, up int32) [2]float32 {
	var v [2]float32
	if rl.IsKeyDown(right) {
		v[0]++
	}
	if rl.IsKeyDown(left) {
		v[0]--
	}
	if rl.IsKeyDown(up) {
		v[1]++
	}
	if rl.IsKeyDown(down) {
		v[1]--
	}
	return v
}

// ramp moves a trigger value towards 1 while held and snaps it back to 0 on release.
func ramp(v float32, held bool, dt float32) float32 {
	if !held {
		return 0
	}
	return xr.Clamp(v+triggerRamp*dt, 0, 1)
}
