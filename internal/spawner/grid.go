package spawner

import (
	"fmt"

	"xr-cubes/internal/xr"

	"github.com/chewxy/math32"
)

// Step applies the four thumbstick threshold rules to the grid size: right/left change the
// width, up/down change the height, each by Increment. Dimensions never go below zero.
// It reports whether any rule fired; a reduction already clamped at zero still counts.
func Step(c *CubeSpawner, stick [2]float32, deadzone float32) bool {
	changed := false
	switch xr.Past(stick[0], deadzone) {
	case 1:
		c.Width += c.Increment
		changed = true
	case -1:
		c.Width = max(c.Width-c.Increment, 0)
		changed = true
	}
	switch xr.Past(stick[1], deadzone) {
	case 1:
		c.Height += c.Increment
		changed = true
	case -1:
		c.Height = max(c.Height-c.Increment, 0)
		changed = true
	}
	return changed
}

// Columns returns the first and one-past-last column index for width w. The range starts at
// the integer half width and always spans w columns.
func Columns(w int) (from, to int) {
	half := int(math32.Floor(float32(w) * 0.5))
	return -half, w - half
}

// Cell returns the world position of the cube at column x, row y.
func Cell(c *CubeSpawner, x, y int) [3]float32 {
	pitch := c.CubeSize + c.Distance
	return [3]float32{float32(x) * pitch, float32(y) * pitch, c.Depth}
}

// Regenerate despawns every marker c owns and spawns a fresh Width x Height grid.
// A grid that would exceed the pool limit is rejected with ErrPoolFull before anything is
// despawned. On any later spawn error the ownership list holds exactly the markers created
// before the failure.
func Regenerate(c *CubeSpawner, p *Pool) error {
	if !p.Fits(len(c.Spawned), c.Width*c.Height) {
		return fmt.Errorf("%dx%d grid: %w", c.Width, c.Height, ErrPoolFull)
	}
	for _, e := range c.Spawned {
		p.Despawn(e)
	}
	c.Spawned = c.Spawned[:0]

	from, to := Columns(c.Width)
	for x := from; x < to; x++ {
		for y := 0; y < c.Height; y++ {
			e, err := p.Spawn(Cell(c, x, y), c.CubeSize)
			if err != nil {
				return fmt.Errorf("spawn marker (%d,%d): %w", x, y, err)
			}
			c.Spawned = append(c.Spawned, e)
		}
	}
	return nil
}
