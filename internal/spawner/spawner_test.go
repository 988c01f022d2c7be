package spawner

import (
	"errors"
	"testing"
	"time"

	"xr-cubes/internal/frame"
	"xr-cubes/internal/xr"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap/zaptest"
)

// stickSource reports a fixed right thumbstick and counts how often it was sampled.
type stickSource struct {
	stick [2]float32
	err   error
	calls int
}

func (s *stickSource) Sample() (xr.Sample, error) {
	s.calls++
	if s.err != nil {
		return xr.Sample{}, s.err
	}
	var out xr.Sample
	out.Hands[xr.Right].Thumbstick = s.stick
	return out, nil
}

func newTestSystem(t *testing.T, cfg Config, src xr.Source) (*System, *ecs.World, *frame.Time) {
	t.Helper()
	w := ecs.NewWorld()
	sys := New(cfg, src, zaptest.NewLogger(t))
	sys.Initialize(&w)
	res := ecs.NewResource[frame.Time](&w)
	return sys, &w, res.Get()
}

// tick advances the clock by one full timer period and runs the system once.
func tick(sys *System, w *ecs.World, clock *frame.Time) {
	clock.Advance(sys.Config.Period)
	sys.Update(w)
}

func assertGrid(t *testing.T, sys *System, width, height int) {
	t.Helper()
	w, h, n, err := sys.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if w != width || h != height {
		t.Fatalf("grid = %dx%d, want %dx%d", w, h, width, height)
	}
	if n != width*height {
		t.Fatalf("owned markers = %d, want %d", n, width*height)
	}
	if live := sys.Pool().Live(); live != n {
		t.Fatalf("marker entities in world = %d, owned = %d", live, n)
	}
}

func TestStepThresholds(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		stick        [2]float32
		wantW, wantH int
		wantChanged  bool
	}{
		{"right grows width", 10, 10, [2]float32{0.8, 0}, 15, 10, true},
		{"left shrinks width", 10, 10, [2]float32{-0.8, 0}, 5, 10, true},
		{"up grows height", 10, 10, [2]float32{0, 0.8}, 10, 15, true},
		{"down shrinks height", 10, 10, [2]float32{0, -0.8}, 10, 5, true},
		{"diagonal changes both", 10, 10, [2]float32{0.9, -0.9}, 15, 5, true},
		{"inside deadzone", 10, 10, [2]float32{0.5, -0.5}, 10, 10, false},
		{"width clamped at zero", 0, 10, [2]float32{-0.8, 0}, 0, 10, true},
		{"height clamped at zero", 10, 3, [2]float32{0, -1}, 10, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CubeSpawner{Width: tt.w, Height: tt.h, Increment: 5}
			changed := Step(c, tt.stick, 0.5)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if c.Width != tt.wantW || c.Height != tt.wantH {
				t.Errorf("grid = %dx%d, want %dx%d", c.Width, c.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestStepNeverNegative(t *testing.T) {
	c := &CubeSpawner{Width: 3, Height: 7, Increment: 5}
	sticks := [][2]float32{{-1, -1}, {-1, 1}, {1, -1}, {-0.6, -0.6}, {-1, -1}, {0, 0}, {-1, -1}}
	for i := 0; i < 50; i++ {
		Step(c, sticks[i%len(sticks)], 0.5)
		if c.Width < 0 || c.Height < 0 {
			t.Fatalf("step %d: grid went negative: %dx%d", i, c.Width, c.Height)
		}
	}
}

func TestColumns(t *testing.T) {
	tests := []struct{ w, from, to int }{
		{0, 0, 0},
		{1, 0, 1},
		{10, -5, 5},
		{15, -7, 8},
	}
	for _, tt := range tests {
		from, to := Columns(tt.w)
		if from != tt.from || to != tt.to {
			t.Errorf("Columns(%d) = [%d,%d), want [%d,%d)", tt.w, from, to, tt.from, tt.to)
		}
		if to-from != tt.w {
			t.Errorf("Columns(%d) spans %d columns", tt.w, to-from)
		}
	}
}

func TestCell(t *testing.T) {
	c := &CubeSpawner{CubeSize: 0.01, Distance: 0.001, Depth: -6}
	got := Cell(c, -2, 3)
	want := [3]float32{-2 * 0.011, 3 * 0.011, -6}
	for i := range got {
		if d := got[i] - want[i]; d > 1e-6 || d < -1e-6 {
			t.Fatalf("Cell = %v, want %v", got, want)
		}
	}
}

func TestRegenerateReplacesGrid(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPool(&w, 0)
	c := &CubeSpawner{Width: 4, Height: 2, CubeSize: 1}
	if err := Regenerate(c, p); err != nil {
		t.Fatal(err)
	}
	old := append([]ecs.Entity(nil), c.Spawned...)

	c.Width, c.Height = 2, 3
	if err := Regenerate(c, p); err != nil {
		t.Fatal(err)
	}
	for _, e := range old {
		if w.Alive(e) {
			t.Fatalf("old marker %v still alive", e)
		}
	}
	if len(c.Spawned) != 6 || p.Live() != 6 {
		t.Fatalf("owned=%d live=%d, want 6", len(c.Spawned), p.Live())
	}
}

func TestRegenerateRowsStartAtZero(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPool(&w, 0)
	c := &CubeSpawner{Width: 2, Height: 2, CubeSize: 1, Depth: -6}
	if err := Regenerate(c, p); err != nil {
		t.Fatal(err)
	}
	transforms := ecs.NewMap1[Transform](&w)
	seen := map[[3]float32]bool{}
	for _, e := range c.Spawned {
		seen[transforms.Get(e).Position] = true
	}
	for _, want := range [][3]float32{{-1, 0, -6}, {-1, 1, -6}, {0, 0, -6}, {0, 1, -6}} {
		if !seen[want] {
			t.Errorf("missing marker at %v (have %v)", want, seen)
		}
	}
}

func TestRegenerateOverLimitKeepsGrid(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPool(&w, 10)
	c := &CubeSpawner{Width: 2, Height: 4, CubeSize: 1}
	if err := Regenerate(c, p); err != nil {
		t.Fatal(err)
	}
	old := append([]ecs.Entity(nil), c.Spawned...)

	c.Width = 4
	err := Regenerate(c, p)
	if !errors.Is(err, ErrPoolFull) {
		t.Fatalf("err = %v, want ErrPoolFull", err)
	}
	if len(c.Spawned) != len(old) || p.Live() != len(old) {
		t.Fatalf("owned=%d live=%d, want %d untouched", len(c.Spawned), p.Live(), len(old))
	}
	for _, e := range old {
		if !w.Alive(e) {
			t.Fatalf("marker %v despawned by a rejected grid", e)
		}
	}

	// Replacing the owned markers counts against the limit only once.
	c.Width, c.Height = 5, 2
	if err := Regenerate(c, p); err != nil {
		t.Fatalf("10 markers within a limit of 10: %v", err)
	}
	if p.Live() != 10 {
		t.Fatalf("live = %d, want 10", p.Live())
	}
}

func TestPoolLiveTracksWorld(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPool(&w, 0)
	a, _ := p.Spawn([3]float32{}, 1)
	b, _ := p.Spawn([3]float32{1, 0, 0}, 1)
	w.RemoveEntity(a)
	if p.Live() != 1 {
		t.Fatalf("live = %d after removing a marker outside the pool, want 1", p.Live())
	}
	p.Despawn(a)
	p.Despawn(b)
	if p.Live() != 0 {
		t.Fatalf("live = %d, want 0", p.Live())
	}
}

func TestPoolDespawnIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPool(&w, 0)
	e, err := p.Spawn([3]float32{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	p.Despawn(e)
	p.Despawn(e)
	p.Despawn(ecs.Entity{})
	if p.Live() != 0 {
		t.Fatalf("live = %d after despawn", p.Live())
	}
}

func TestSystemInitialGrid(t *testing.T) {
	sys, _, _ := newTestSystem(t, DefaultConfig(), &stickSource{})
	assertGrid(t, sys, 10, 10)
}

func TestSystemGrowsWidth(t *testing.T) {
	src := &stickSource{stick: [2]float32{0.8, 0}}
	sys, w, clock := newTestSystem(t, DefaultConfig(), src)

	tick(sys, w, clock)
	assertGrid(t, sys, 15, 10)
	if n := len(sysSpawned(t, sys)); n != 150 {
		t.Fatalf("markers = %d, want 150", n)
	}
}

func TestSystemClampsWidthAtZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	src := &stickSource{stick: [2]float32{-0.8, 0}}
	sys, w, clock := newTestSystem(t, cfg, src)

	tick(sys, w, clock)
	assertGrid(t, sys, 0, 10)
}

func TestSystemNoThresholdIsNoop(t *testing.T) {
	src := &stickSource{stick: [2]float32{0.3, -0.4}}
	sys, w, clock := newTestSystem(t, DefaultConfig(), src)
	before := append([]ecs.Entity(nil), sysSpawned(t, sys)...)

	tick(sys, w, clock)
	after := sysSpawned(t, sys)
	if len(after) != len(before) {
		t.Fatalf("marker count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("marker %d replaced", i)
		}
	}
	if src.calls != 1 {
		t.Fatalf("source sampled %d times, want 1", src.calls)
	}
}

func TestSystemWaitsForTimer(t *testing.T) {
	src := &stickSource{stick: [2]float32{0.8, 0}}
	sys, w, clock := newTestSystem(t, DefaultConfig(), src)

	clock.Advance(200 * time.Millisecond)
	sys.Update(w)
	clock.Advance(200 * time.Millisecond)
	sys.Update(w)
	if src.calls != 0 {
		t.Fatalf("source sampled before the timer fired")
	}
	assertGrid(t, sys, 10, 10)

	clock.Advance(200 * time.Millisecond)
	sys.Update(w)
	assertGrid(t, sys, 15, 10)
}

func TestSystemSkipsFrameOnSourceError(t *testing.T) {
	src := &stickSource{stick: [2]float32{0.8, 0}, err: xr.ErrUnavailable}
	sys, w, clock := newTestSystem(t, DefaultConfig(), src)

	tick(sys, w, clock)
	assertGrid(t, sys, 10, 10)

	src.err = nil
	tick(sys, w, clock)
	assertGrid(t, sys, 15, 10)
}

func TestSystemSkipsFrameWithoutSingleSpawner(t *testing.T) {
	src := &stickSource{stick: [2]float32{0.8, 0}}
	sys, w, clock := newTestSystem(t, DefaultConfig(), src)
	ecs.NewMap1[CubeSpawner](w).NewEntity(&CubeSpawner{})

	tick(sys, w, clock)
	if src.calls != 0 {
		t.Fatal("source sampled with two spawners in the world")
	}
	if _, _, _, err := sys.State(); !errors.Is(err, ErrNoSpawner) {
		t.Fatalf("State err = %v, want ErrNoSpawner", err)
	}
}

func TestSystemStepOverLimitKeepsState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMarkers = 120
	src := &stickSource{stick: [2]float32{0.8, 0}}
	sys, w, clock := newTestSystem(t, cfg, src)
	before := append([]ecs.Entity(nil), sysSpawned(t, sys)...)

	tick(sys, w, clock)
	assertGrid(t, sys, 10, 10)
	after := sysSpawned(t, sys)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("marker %d replaced by a rejected step", i)
		}
	}

	src.stick = [2]float32{0, -0.8}
	tick(sys, w, clock)
	assertGrid(t, sys, 10, 5)
}

func TestSystemResizeOverLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMarkers = 120
	sys, _, _ := newTestSystem(t, cfg, &stickSource{})
	if err := sys.Resize(20, 20); !errors.Is(err, ErrPoolFull) {
		t.Fatalf("err = %v, want ErrPoolFull", err)
	}
	assertGrid(t, sys, 10, 10)
}

func TestSystemResize(t *testing.T) {
	sys, _, _ := newTestSystem(t, DefaultConfig(), &stickSource{})
	if err := sys.Resize(4, -2); err != nil {
		t.Fatal(err)
	}
	assertGrid(t, sys, 4, 0)
	if err := sys.Resize(6, 3); err != nil {
		t.Fatal(err)
	}
	assertGrid(t, sys, 6, 3)
}

func TestSystemFinalizeDespawnsAll(t *testing.T) {
	sys, w, _ := newTestSystem(t, DefaultConfig(), &stickSource{})
	sys.Finalize(w)
	if n := sys.Pool().Live(); n != 0 {
		t.Fatalf("markers left after Finalize: %d", n)
	}
}

func TestTimer(t *testing.T) {
	tm := NewTimer(500 * time.Millisecond)
	if tm.Tick(300 * time.Millisecond) {
		t.Fatal("fired early")
	}
	if !tm.Tick(300 * time.Millisecond) {
		t.Fatal("did not fire after 600ms")
	}
	if tm.Elapsed() != 100*time.Millisecond {
		t.Fatalf("carry-over = %v, want 100ms", tm.Elapsed())
	}
	if !tm.Tick(2 * time.Second) {
		t.Fatal("did not fire after a long frame")
	}
	if tm.Elapsed() >= tm.Period {
		t.Fatalf("elapsed %v not wrapped", tm.Elapsed())
	}

	always := NewTimer(0)
	if !always.Tick(0) {
		t.Fatal("zero-period timer did not fire")
	}
}

func sysSpawned(t *testing.T, sys *System) []ecs.Entity {
	t.Helper()
	c, err := sys.spawner()
	if err != nil {
		t.Fatal(err)
	}
	return c.Spawned
}
