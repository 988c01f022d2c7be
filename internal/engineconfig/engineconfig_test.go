package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"xr-cubes/internal/handviz"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Spawner.Width != 10 || p.Spawner.Increment != 5 || p.Spawner.Period != 500*time.Millisecond {
		t.Errorf("defaults not applied: %+v", p.Spawner)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "xr.yaml")
	want := Default()
	want.Spawner.Width = 24
	want.Hands.ColorOrder = "legacy"
	want.ShowMemAlloc = true
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spawner != want.Spawner || got.Hands.ColorOrder != "legacy" || !got.ShowMemAlloc {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xr.yaml")
	data := "spawner:\n  width: 4\n  period: 250ms\nhands:\n  color_order: legacy\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Spawner.Width != 4 || p.Spawner.Height != 10 || p.Spawner.Period != 250*time.Millisecond {
		t.Errorf("spawner = %+v", p.Spawner)
	}
	if len(p.Hands.Gradient) != 3 {
		t.Errorf("gradient default lost: %v", p.Hands.Gradient)
	}
	rule, err := p.ColorRule()
	if err != nil {
		t.Fatal(err)
	}
	if rule.Order != handviz.OrderLegacy {
		t.Errorf("order = %v", rule.Order)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xr.yaml")
	if err := os.WriteFile(path, []byte("spawner: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if p.Spawner.Width != Default().Spawner.Width {
		t.Errorf("malformed file did not fall back to defaults")
	}
}

func TestColorRuleRejectsBadPrefs(t *testing.T) {
	p := Default()
	p.Hands.Gradient = []string{"#fff"}
	if _, err := p.ColorRule(); err == nil {
		t.Error("single-stop gradient accepted")
	}
	p = Default()
	p.Hands.ColorOrder = "sideways"
	if _, err := p.ColorRule(); err == nil {
		t.Error("unknown order accepted")
	}
}

func TestSpawnerConfig(t *testing.T) {
	p := Default()
	p.Spawner.Depth = -3
	c := p.SpawnerConfig()
	if c.Depth != -3 || c.Width != p.Spawner.Width || c.Deadzone != 0.5 {
		t.Errorf("SpawnerConfig = %+v", c)
	}
	if p.RectSize() != handviz.RectSize {
		t.Errorf("RectSize = %v", p.RectSize())
	}
}
