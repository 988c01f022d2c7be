package engineconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"xr-cubes/internal/handviz"
	"xr-cubes/internal/logger"
	"xr-cubes/internal/spawner"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the config file, relative to the process working directory.
const EngineConfigPath = "config/xr.yaml"

// EnginePrefs holds everything tunable without a rebuild. Persisted across runs.
type EnginePrefs struct {
	ShowFPS      bool          `yaml:"show_fps"`
	ShowMemAlloc bool          `yaml:"show_memalloc"`
	GridVisible  bool          `yaml:"grid_visible"`
	Spawner      SpawnerPrefs  `yaml:"spawner"`
	Hands        HandPrefs     `yaml:"hands"`
	Input        InputPrefs    `yaml:"input"`
	Log          logger.Config `yaml:"log"`
}

// SpawnerPrefs configures the cube grid.
type SpawnerPrefs struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Increment  int           `yaml:"increment"`
	CubeSize   float32       `yaml:"cube_size"`
	Distance   float32       `yaml:"distance"`
	Depth      float32       `yaml:"depth"`
	Period     time.Duration `yaml:"period"`
	Deadzone   float32       `yaml:"deadzone"`
	MaxMarkers int           `yaml:"max_markers"`
}

// HandPrefs configures the hand rectangles and their colour rule.
type HandPrefs struct {
	RectWidth   float32  `yaml:"rect_width"`
	RectHeight  float32  `yaml:"rect_height"`
	Gradient    []string `yaml:"gradient"`
	GradientMin float32  `yaml:"gradient_min"`
	GradientMax float32  `yaml:"gradient_max"`
	ColorOrder  string   `yaml:"color_order"` // priority or legacy
}

// InputPrefs selects the controller source.
type InputPrefs struct {
	Gamepad  int32 `yaml:"gamepad"`  // raylib gamepad index
	Emulator bool  `yaml:"emulator"` // keyboard+mouse fallback
}

// Default returns default preferences (fps overlay on, grid lines on, 10x10 grid).
func Default() EnginePrefs {
	sp := spawner.DefaultConfig()
	return EnginePrefs{
		ShowFPS:      true,
		ShowMemAlloc: false,
		GridVisible:  true,
		Spawner: SpawnerPrefs{
			Width:      sp.Width,
			Height:     sp.Height,
			Increment:  sp.Increment,
			CubeSize:   sp.CubeSize,
			Distance:   sp.Distance,
			Depth:      sp.Depth,
			Period:     sp.Period,
			Deadzone:   sp.Deadzone,
			MaxMarkers: sp.MaxMarkers,
		},
		Hands: HandPrefs{
			RectWidth:   handviz.RectSize[0],
			RectHeight:  handviz.RectSize[1],
			Gradient:    append([]string(nil), handviz.FPSStops...),
			GradientMin: 0,
			GradientMax: 72,
			ColorOrder:  handviz.OrderPriority.String(),
		},
		Input: InputPrefs{Gamepad: 0, Emulator: true},
		Log:   logger.DefaultConfig(),
	}
}

// Load reads preferences from path (EngineConfigPath if empty). Keys missing from the file
// keep their defaults. A missing file returns Default() and no error; a malformed one returns
// Default() and the parse error.
func Load(path string) (EnginePrefs, error) {
	if path == "" {
		path = EngineConfigPath
	}
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path (EngineConfigPath if empty), creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if path == "" {
		path = EngineConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SpawnerConfig converts the prefs to the spawner's config.
func (p EnginePrefs) SpawnerConfig() spawner.Config {
	s := p.Spawner
	return spawner.Config{
		Width:      s.Width,
		Height:     s.Height,
		Increment:  s.Increment,
		CubeSize:   s.CubeSize,
		Distance:   s.Distance,
		Depth:      s.Depth,
		Period:     s.Period,
		Deadzone:   s.Deadzone,
		MaxMarkers: s.MaxMarkers,
	}
}

// ColorRule builds the hand colour rule. Fails if the gradient or order is invalid.
func (p EnginePrefs) ColorRule() (handviz.ColorRule, error) {
	g, err := handviz.NewGradient(p.Hands.Gradient, p.Hands.GradientMin, p.Hands.GradientMax)
	if err != nil {
		return handviz.ColorRule{}, err
	}
	order, err := handviz.ParseOrder(p.Hands.ColorOrder)
	if err != nil {
		return handviz.ColorRule{}, err
	}
	return handviz.ColorRule{Gradient: g, Order: order}, nil
}

// RectSize is the hand rectangle size.
func (p EnginePrefs) RectSize() [2]float32 {
	return [2]float32{p.Hands.RectWidth, p.Hands.RectHeight}
}
