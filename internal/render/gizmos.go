// Package render draws ECS state and immediate-mode overlays with raylib. Everything here
// must run between BeginMode3D and EndMode3D.
package render

import (
	"image/color"

	"xr-cubes/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Gizmos draws outlines in world space. It implements handviz.Painter.
type Gizmos struct{}

// Rect draws a width x height rectangle outline centred on pose, in the pose's local XY plane.
func (Gizmos) Rect(pose xr.Pose, size [2]float32, c color.RGBA) {
	q := rl.NewQuaternion(pose.Orientation[0], pose.Orientation[1], pose.Orientation[2], pose.Orientation[3])
	center := rl.NewVector3(pose.Position[0], pose.Position[1], pose.Position[2])
	hw, hh := size[0]/2, size[1]/2

	corners := [4]rl.Vector3{
		rl.NewVector3(-hw, -hh, 0),
		rl.NewVector3(hw, -hh, 0),
		rl.NewVector3(hw, hh, 0),
		rl.NewVector3(-hw, hh, 0),
	}
	for i := range corners {
		corners[i] = rl.Vector3Add(center, rl.Vector3RotateByQuaternion(corners[i], q))
	}
	for i := range corners {
		rl.DrawLine3D(corners[i], corners[(i+1)%len(corners)], c)
	}
}
