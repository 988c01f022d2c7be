package xr

import "github.com/chewxy/math32"

// Rig places both hands for sources that have no positional tracking (gamepads, keyboard).
// Offsets are in world space, in front of the viewer.
type Rig struct {
	Left, Right [3]float32
	Pitch, Yaw  float32 // radians, applied to both hands
}

// DefaultRig holds the hands at chest height, a little apart, in front of a viewer at (0, 0.5, 1).
func DefaultRig() Rig {
	return Rig{
		Left:  [3]float32{-0.15, 0.35, 0.6},
		Right: [3]float32{0.15, 0.35, 0.6},
	}
}

// Turn adds pitch and yaw (radians). Pitch is kept within ±90°.
func (r *Rig) Turn(dPitch, dYaw float32) {
	r.Pitch = Clamp(r.Pitch+dPitch, -math32.Pi/2, math32.Pi/2)
	r.Yaw = math32.Mod(r.Yaw+dYaw, 2*math32.Pi)
}

// Pose returns the grip pose of hand h.
func (r Rig) Pose(h Hand) Pose {
	pos := r.Right
	if h == Left {
		pos = r.Left
	}
	return Pose{Position: pos, Orientation: yawPitch(r.Yaw, r.Pitch)}
}

// yawPitch builds the quaternion for a yaw about +Y followed by a pitch about +X.
func yawPitch(yaw, pitch float32) [4]float32 {
	sy, cy := math32.Sincos(yaw / 2)
	sp, cp := math32.Sincos(pitch / 2)
	return [4]float32{
		cy * sp,
		sy * cp,
		-sy * sp,
		cy * cp,
	}
}
