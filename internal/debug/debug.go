package debug

import (
	"fmt"
	"runtime"

	"xr-cubes/internal/diagnostics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats reports the grid the spawner currently shows.
type Stats func() (width, height, markers int, err error)

// Debug draws the top-right overlay: FPS from the diagnostics store, the grid size and
// optionally heap usage.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	Diag         *diagnostics.Store
	Stats        Stats

	frameCount uint32
	lines      []string
	mem        runtime.MemStats
}

// New returns an overlay reading fps from diag and grid stats from stats (either may be nil).
func New(diag *diagnostics.Store, stats Stats) *Debug {
	return &Debug{Diag: diag, Stats: stats}
}

// SetShowFPS sets whether the FPS line is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	d.frameCount = 0
}

// SetShowMemAlloc sets whether the heap line is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
	d.frameCount = 0
}

func (d *Debug) refresh() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		if fps, ok := d.fps(); ok {
			d.lines = append(d.lines, fmt.Sprintf("FPS: %d", int(fps)))
		} else {
			d.lines = append(d.lines, "FPS: -")
		}
	}
	if d.Stats != nil {
		if w, h, n, err := d.Stats(); err == nil {
			d.lines = append(d.lines, fmt.Sprintf("Grid: %dx%d (%d cubes)", w, h, n))
		}
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.mem)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.mem.Alloc)/(1024*1024)))
	}
}

func (d *Debug) fps() (float32, bool) {
	if d.Diag == nil {
		return 0, false
	}
	return d.Diag.FPS()
}

// Draw renders the overlay. Call after the scene, outside 3D mode.
func (d *Debug) Draw() {
	if d.frameCount%updateInterval == 0 {
		d.refresh()
	}
	d.frameCount++

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
