package scene

import (
	"xr-cubes/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 100
	groundSize     = 5
)

var (
	// groundColor is (0.3, 0.5, 0.3).
	groundColor = rl.NewColor(77, 128, 77, 255)
	gridMinor   = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor   = rl.NewColor(160, 160, 160, gridMajorAlpha)
	lightDir    = [3]float32{0.5, 1, 0.5}
)

// Scene is the desktop stand-in for the headset view: a fixed camera at standing eye height
// looking down -Z towards the cube grid, a ground plane, and optional editor grid lines.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	reg         *primitives.Registry
}

// New returns a scene drawing through reg. Camera: position (0,0.5,1), target (0,0.3,-6),
// up +Y, fovy 60°.
func New(reg *primitives.Registry) *Scene {
	s := &Scene{reg: reg, GridVisible: true}
	s.Camera.Position = rl.NewVector3(0, 0.5, 1)
	s.Camera.Target = rl.NewVector3(0, 0.3, -6)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the grid lines are drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Draw renders the 3D scene and calls draw3D while the 3D view is active (markers, hands).
// Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw(draw3D func()) {
	pos := s.Camera.Position
	s.reg.SetView([3]float32{pos.X, pos.Y, pos.Z}, lightDir)

	rl.BeginMode3D(s.Camera)
	s.reg.Draw(primitives.Plane, [3]float32{0, 0, 0}, [3]float32{groundSize, 1, groundSize}, groundColor)
	if s.GridVisible {
		drawGrid()
	}
	if draw3D != nil {
		draw3D()
	}
	rl.EndMode3D()
}

// drawGrid draws major/minor lines on the XZ plane just above the ground to avoid z-fighting.
func drawGrid() {
	const y = 0.001
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMinor
		if i%gridMajorStep == 0 {
			c = gridMajor
		}
		f := float32(i)
		rl.DrawLine3D(rl.NewVector3(f, y, -gridExtent), rl.NewVector3(f, y, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, y, f), rl.NewVector3(gridExtent, y, f), c)
	}
}
