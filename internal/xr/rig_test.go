package xr

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRigDefaultIsIdentity(t *testing.T) {
	r := DefaultRig()
	for _, h := range []Hand{Left, Right} {
		p := r.Pose(h)
		if p.Orientation != IdentityPose.Orientation {
			t.Errorf("%v orientation = %v, want identity", h, p.Orientation)
		}
	}
	if r.Pose(Left).Position == r.Pose(Right).Position {
		t.Error("hands share a position")
	}
}

func TestRigTurnClampsPitch(t *testing.T) {
	r := DefaultRig()
	r.Turn(10, 0)
	if r.Pitch != math32.Pi/2 {
		t.Errorf("pitch = %v, want %v", r.Pitch, math32.Pi/2)
	}
}

func TestRigOrientationIsUnit(t *testing.T) {
	r := DefaultRig()
	r.Turn(0.3, 1.2)
	q := r.Pose(Right).Orientation
	n := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if math32.Abs(n-1) > 1e-5 {
		t.Errorf("|q|^2 = %v, want 1", n)
	}
}
