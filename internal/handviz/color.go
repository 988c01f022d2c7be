package handviz

import (
	"fmt"
	"image/color"

	"xr-cubes/internal/xr"
)

// Order decides which input wins when several want to colour the hands.
type Order int

const (
	// OrderPriority: trigger, then B, then A, then the fps gradient.
	OrderPriority Order = iota
	// OrderLegacy reproduces the first version of the demo: the fps gradient always
	// overwrites the button colours, and only the trigger can override it.
	OrderLegacy
)

// ParseOrder accepts "priority" (or "") and "legacy".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "priority":
		return OrderPriority, nil
	case "legacy":
		return OrderLegacy, nil
	}
	return 0, fmt.Errorf("unknown color order %q", s)
}

func (o Order) String() string {
	if o == OrderLegacy {
		return "legacy"
	}
	return "priority"
}

var (
	Blue = rgb(0, 0, 1)
	Red  = rgb(1, 0, 0)
)

// ColorRule picks the hand colour for a frame.
type ColorRule struct {
	Gradient *Gradient
	Order    Order
}

// Pick is deterministic in (fps, buttons, right trigger).
func (r ColorRule) Pick(fps int, s xr.Sample) color.RGBA {
	trigger := s.Trigger(xr.Right)
	if r.Order == OrderLegacy {
		// Buttons have no effect in this order: the gradient always wins over them.
		if trigger != 0 {
			return triggerColor(trigger)
		}
		return r.Gradient.At(float32(fps))
	}

	switch {
	case trigger != 0:
		return triggerColor(trigger)
	case s.Button(xr.ButtonB):
		return Red
	case s.Button(xr.ButtonA):
		return Blue
	}
	return r.Gradient.At(float32(fps))
}

func triggerColor(t float32) color.RGBA {
	return rgb(t, 0.5, t)
}
