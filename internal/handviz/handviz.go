// Package handviz draws a flat rectangle at each hand's grip pose, coloured from the frame
// rate, the right controller's face buttons and its trigger.
package handviz

import (
	"fmt"
	"image/color"

	"xr-cubes/internal/diagnostics"
	"xr-cubes/internal/xr"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// RectSize is the default hand rectangle: 5 cm wide, 20 cm tall.
var RectSize = [2]float32{0.05, 0.2}

// Painter draws immediate-mode shapes for the current frame.
type Painter interface {
	// Rect draws a rectangle outline of size (width, height) centred on pose, lying in the
	// pose's local XY plane.
	Rect(pose xr.Pose, size [2]float32, c color.RGBA)
}

// System is an ark-tools UI system; UpdateUI must run while the 3D view is active.
// Nothing is kept between frames except the error dedup for logging.
type System struct {
	Rule    ColorRule
	Size    [2]float32
	Source  xr.Source
	Painter Painter
	Log     *zap.Logger

	diag    ecs.Resource[diagnostics.Store]
	lastErr string
}

// New returns a hand visualiser. size zero means RectSize.
func New(rule ColorRule, size [2]float32, src xr.Source, p Painter, log *zap.Logger) *System {
	if size == [2]float32{} {
		size = RectSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &System{Rule: rule, Size: size, Source: src, Painter: p, Log: log}
}

func (s *System) InitializeUI(w *ecs.World) {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	s.diag = ecs.NewResource[diagnostics.Store](w)
}

func (s *System) UpdateUI(w *ecs.World) {
	if err := s.draw(); err != nil {
		if msg := err.Error(); msg != s.lastErr {
			s.lastErr = msg
			s.Log.Debug("hands frame skipped", zap.Error(err))
		}
		return
	}
	s.lastErr = ""
}

func (s *System) PostUpdateUI(w *ecs.World) {}

func (s *System) FinalizeUI(w *ecs.World) {}

// FPS returns the current frames-per-second estimate truncated to an integer, or 0 when the
// diagnostics store is missing or has nothing to report.
func (s *System) FPS() int {
	if !s.diag.Has() {
		return 0
	}
	fps, ok := s.diag.Get().FPS()
	if !ok {
		return 0
	}
	return int(fps)
}

func (s *System) draw() error {
	if s.Rule.Gradient == nil {
		return fmt.Errorf("hands: no gradient")
	}
	sample, err := s.Source.Sample()
	if err != nil {
		return fmt.Errorf("sample controller: %w", err)
	}
	c := s.Rule.Pick(s.FPS(), sample)
	s.Painter.Rect(sample.Grip(xr.Right), s.Size, c)
	s.Painter.Rect(sample.Grip(xr.Left), s.Size, c)
	return nil
}
