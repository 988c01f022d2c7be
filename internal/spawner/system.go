// Package spawner grows and shrinks a grid of cube markers from the right thumbstick.
//
// Every Config.Period the right stick is sampled; pushing it past the deadzone changes the
// grid width (x) or height (y) by Config.Increment, and any change despawns the old grid
// and spawns a new one in front of the viewer.
package spawner

import (
	"errors"
	"fmt"
	"time"

	"xr-cubes/internal/frame"
	"xr-cubes/internal/xr"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// ErrNoSpawner is returned when the world does not hold exactly one CubeSpawner.
var ErrNoSpawner = errors.New("spawner: expected exactly one cube spawner")

// Config is the initial spawner state and its input tuning.
type Config struct {
	Width      int
	Height     int
	Increment  int
	CubeSize   float32
	Distance   float32
	Depth      float32
	Period     time.Duration
	Deadzone   float32
	MaxMarkers int
}

// DefaultConfig is a 10x10 grid of 1 cm cubes six metres out, stepping by 5 every half second.
func DefaultConfig() Config {
	return Config{
		Width:      10,
		Height:     10,
		Increment:  5,
		CubeSize:   0.01,
		Distance:   0.001,
		Depth:      -6,
		Period:     500 * time.Millisecond,
		Deadzone:   0.5,
		MaxMarkers: 250_000,
	}
}

// System is the ark-tools system driving the grid. Source is sampled only on ticks where the
// timer fires. Errors abort the current frame and are logged at debug level.
type System struct {
	Config Config
	Source xr.Source
	Log    *zap.Logger

	spawners *ecs.Map1[CubeSpawner]
	filter   *ecs.Filter1[CubeSpawner]
	clock    ecs.Resource[frame.Time]
	pool     *Pool
	lastErr  string
}

// New returns a spawner system reading the right thumbstick from src.
func New(cfg Config, src xr.Source, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	return &System{Config: cfg, Source: src, Log: log}
}

// Initialize creates the spawner entity and its initial grid. A frame.Time resource is added
// if the world does not have one yet.
func (s *System) Initialize(w *ecs.World) {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	s.spawners = ecs.NewMap1[CubeSpawner](w)
	s.filter = ecs.NewFilter1[CubeSpawner](w)
	s.clock = ecs.NewResource[frame.Time](w)
	if !s.clock.Has() {
		s.clock.Add(&frame.Time{})
	}
	s.pool = NewPool(w, s.Config.MaxMarkers)

	c := s.Config
	e := s.spawners.NewEntity(&CubeSpawner{
		Width:     max(c.Width, 0),
		Height:    max(c.Height, 0),
		Increment: c.Increment,
		CubeSize:  c.CubeSize,
		Distance:  c.Distance,
		Depth:     c.Depth,
		Timer:     NewTimer(c.Period),
	})
	if err := Regenerate(s.spawners.Get(e), s.pool); err != nil {
		s.Log.Warn("initial grid incomplete", zap.Error(err))
	}
}

// Update ticks the spawner timer and, when it fires, applies the right thumbstick.
func (s *System) Update(w *ecs.World) {
	if err := s.update(); err != nil {
		s.skip(err)
		return
	}
	s.lastErr = ""
}

func (s *System) update() error {
	c, err := s.spawner()
	if err != nil {
		return err
	}
	if !c.Timer.Tick(s.clock.Get().Delta) {
		return nil
	}
	sample, err := s.Source.Sample()
	if err != nil {
		return fmt.Errorf("sample controller: %w", err)
	}
	w, h := c.Width, c.Height
	if !Step(c, sample.Thumbstick(xr.Right), s.Config.Deadzone) {
		return nil
	}
	return s.regenerate(c, w, h)
}

// regenerate rebuilds the grid for c's current size. If that fails the previous
// dimensions w, h are restored; a grid over the marker limit leaves the old markers intact.
func (s *System) regenerate(c *CubeSpawner, w, h int) error {
	if err := Regenerate(c, s.pool); err != nil {
		c.Width, c.Height = w, h
		return err
	}
	s.Log.Info("grid resized", zap.Int("width", c.Width), zap.Int("height", c.Height),
		zap.Int("markers", len(c.Spawned)))
	return nil
}

// skip logs a frame-aborting error once until a different error, or a clean frame, occurs.
func (s *System) skip(err error) {
	if msg := err.Error(); msg != s.lastErr {
		s.lastErr = msg
		s.Log.Debug("spawner frame skipped", zap.Error(err))
	}
}

// Finalize despawns every marker.
func (s *System) Finalize(w *ecs.World) {
	c, err := s.spawner()
	if err != nil {
		return
	}
	for _, e := range c.Spawned {
		s.pool.Despawn(e)
	}
	c.Spawned = nil
}

// Resize sets the grid dimensions directly and regenerates. Negative values are clamped to
// zero; a size over the marker limit is rejected and the grid kept. Must not be called while
// a query on the world is open.
func (s *System) Resize(width, height int) error {
	c, err := s.spawner()
	if err != nil {
		return err
	}
	w, h := c.Width, c.Height
	c.Width, c.Height = max(width, 0), max(height, 0)
	return s.regenerate(c, w, h)
}

// State returns a copy of the spawner's dimensions and marker count.
func (s *System) State() (width, height, markers int, err error) {
	c, err := s.spawner()
	if err != nil {
		return 0, 0, 0, err
	}
	return c.Width, c.Height, len(c.Spawned), nil
}

// Pool exposes the marker pool (nil before Initialize).
func (s *System) Pool() *Pool { return s.pool }

func (s *System) spawner() (*CubeSpawner, error) {
	if s.filter == nil {
		return nil, ErrNoSpawner
	}
	q := s.filter.Query()
	var (
		e ecs.Entity
		n int
	)
	for q.Next() {
		e = q.Entity()
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoSpawner, n)
	}
	return s.spawners.Get(e), nil
}
