package main

import (
	"fmt"
	"os"

	"xr-cubes/internal/commands"
	"xr-cubes/internal/debug"
	"xr-cubes/internal/diagnostics"
	"xr-cubes/internal/engineconfig"
	"xr-cubes/internal/frame"
	"xr-cubes/internal/graphics"
	"xr-cubes/internal/handviz"
	"xr-cubes/internal/logger"
	"xr-cubes/internal/primitives"
	"xr-cubes/internal/render"
	"xr-cubes/internal/scene"
	"xr-cubes/internal/spawner"
	"xr-cubes/internal/terminal"
	"xr-cubes/internal/xr"
	"xr-cubes/internal/xr/desktop"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

func main() {
	prefs, cfgErr := engineconfig.Load("")
	log, err := logger.New(prefs.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()
	zl := log.Zap()
	if cfgErr != nil {
		zl.Warn("config ignored, using defaults", zap.Error(cfgErr))
	}

	rule, err := prefs.ColorRule()
	if err != nil {
		zl.Warn("hand colours invalid, using defaults", zap.Error(err))
		rule, _ = engineconfig.Default().ColorRule()
	}

	reg := commands.NewRegistry()
	term := terminal.New(log, reg)

	rig := xr.DefaultRig()
	var src xr.Source = desktop.NewGamepad(prefs.Input.Gamepad, &rig)
	if prefs.Input.Emulator {
		emu := desktop.NewEmulator(&rig)
		emu.Active = func() bool { return !term.IsOpen() }
		src = &xr.Fallback{Primary: src, Secondary: emu}
	}
	input := xr.NewLatch(src)

	tool := app.New(1024)
	// The raylib loop paces frames; systems run once per rendered frame.
	tool.TPS = 0
	tool.FPS = 0
	world := &tool.World

	clock := &frame.Time{}
	clockRes := ecs.NewResource[frame.Time](world)
	clockRes.Add(clock)
	diag := diagnostics.New(diagnostics.DefaultHistory)
	diagRes := ecs.NewResource[diagnostics.Store](world)
	diagRes.Add(diag)

	prims := primitives.NewRegistry()
	scn := scene.New(prims)
	scn.SetGridVisible(prefs.GridVisible)

	spawn := spawner.New(prefs.SpawnerConfig(), input, zl.Named("spawner"))
	hands := handviz.New(rule, prefs.RectSize(), input, render.Gizmos{}, zl.Named("hands"))
	tool.AddSystem(spawn)
	tool.AddUISystem(render.NewMarkerSystem(prims))
	tool.AddUISystem(hands)

	dbg := debug.New(diag, spawn.State)
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	registerCommands(reg, &console{
		log:   log,
		prefs: &prefs,
		spawn: spawn,
		hands: hands,
		scene: scn,
		debug: dbg,
	})

	tool.Initialize()
	zl.Info("xr-cubes started",
		zap.Int("width", prefs.Spawner.Width),
		zap.Int("height", prefs.Spawner.Height),
		zap.Stringer("color_order", rule.Order))

	update := func() {
		dt := frame.Seconds(rl.GetFrameTime())
		clock.Advance(dt)
		diag.Record(dt)
		term.Update()
		input.Refresh()
		tool.Update()
	}
	draw := func() {
		scn.Draw(func() { tool.UpdateUI() })
		dbg.Draw()
		term.Draw()
	}
	onClose := func() {
		tool.Finalize()
		prims.Unload()
	}
	graphics.Run(graphics.Window{Title: "xr-cubes", Width: 1280, Height: 720, TargetFPS: 72}, update, draw, onClose)
}
