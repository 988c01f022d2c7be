package handviz

import (
	"errors"
	"fmt"
	"image/color"

	"xr-cubes/internal/xr"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// FPSStops are deeppink, gold and seagreen: slow frames pink, fast frames green.
var FPSStops = []string{"#ff1493", "#ffd700", "#2e8b57"}

// Gradient maps a scalar domain onto evenly spaced colour stops, blending linearly in RGB.
type Gradient struct {
	stops  []colorful.Color
	lo, hi float32
}

// NewGradient parses the hex stops over the domain [lo, hi].
func NewGradient(stops []string, lo, hi float32) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, errors.New("gradient: need at least two stops")
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("gradient: empty domain [%v, %v]", lo, hi)
	}
	g := &Gradient{stops: make([]colorful.Color, len(stops)), lo: lo, hi: hi}
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("gradient stop %d: %w", i, err)
		}
		g.stops[i] = c
	}
	return g, nil
}

// At returns the colour at v. Values outside the domain take the end colours.
func (g *Gradient) At(v float32) color.RGBA {
	t := xr.Clamp((v-g.lo)/(g.hi-g.lo), 0, 1)
	seg := t * float32(len(g.stops)-1)
	i := int(math32.Floor(seg))
	if i >= len(g.stops)-1 {
		return toRGBA(g.stops[len(g.stops)-1])
	}
	return toRGBA(g.stops[i].BlendRgb(g.stops[i+1], float64(seg-float32(i))))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// rgb builds an opaque colour from [0, 1] channels.
func rgb(r, g, b float32) color.RGBA {
	ch := func(v float32) uint8 { return uint8(xr.Clamp(v, 0, 1)*255 + 0.5) }
	return color.RGBA{R: ch(r), G: ch(g), B: ch(b), A: 255}
}
