package render

import (
	"image/color"

	"xr-cubes/internal/primitives"
	"xr-cubes/internal/spawner"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
)

// MarkerColor is the cube albedo (0.8, 0.7, 0.6).
var MarkerColor = rl.NewColor(204, 179, 153, 255)

// MarkerSystem is an ark-tools UI system drawing every spawned marker as a cube.
type MarkerSystem struct {
	Registry *primitives.Registry
	Color    color.RGBA

	filter *ecs.Filter2[spawner.Transform, spawner.Marker]
}

// NewMarkerSystem draws markers through reg in MarkerColor.
func NewMarkerSystem(reg *primitives.Registry) *MarkerSystem {
	return &MarkerSystem{Registry: reg, Color: MarkerColor}
}

func (s *MarkerSystem) InitializeUI(w *ecs.World) {
	s.filter = ecs.NewFilter2[spawner.Transform, spawner.Marker](w)
}

func (s *MarkerSystem) UpdateUI(w *ecs.World) {
	q := s.filter.Query()
	for q.Next() {
		t, m := q.Get()
		s.Registry.Draw(primitives.Cube, t.Position, [3]float32{m.Size, m.Size, m.Size}, s.Color)
	}
}

func (s *MarkerSystem) PostUpdateUI(w *ecs.World) {}

func (s *MarkerSystem) FinalizeUI(w *ecs.World) {}
