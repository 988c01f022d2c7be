package main

import (
	"fmt"
	"strings"

	"xr-cubes/internal/commands"
	"xr-cubes/internal/debug"
	"xr-cubes/internal/engineconfig"
	"xr-cubes/internal/handviz"
	"xr-cubes/internal/logger"
	"xr-cubes/internal/scene"
	"xr-cubes/internal/spawner"
)

// console is what terminal commands may touch. Changes are mirrored into prefs so "save"
// persists them.
type console struct {
	log   *logger.Logger
	prefs *engineconfig.EnginePrefs
	spawn *spawner.System
	hands *handviz.System
	scene *scene.Scene
	debug *debug.Debug
}

func registerCommands(reg *commands.Registry, c *console) {
	gridFlags := commands.NewFlagSet("grid")
	width := gridFlags.Int("width", -1, "grid width")
	height := gridFlags.Int("height", -1, "grid height")
	reg.Register("grid", "grid [-width N] [-height N]: show or set the cube grid", gridFlags, func([]string) error {
		defer func() { *width, *height = -1, -1 }()
		w, h, n, err := c.spawn.State()
		if err != nil {
			return err
		}
		if *width < 0 && *height < 0 {
			c.log.Log(fmt.Sprintf("grid %dx%d, %d cubes", w, h, n))
			return nil
		}
		if *width >= 0 {
			w = *width
		}
		if *height >= 0 {
			h = *height
		}
		if err := c.spawn.Resize(w, h); err != nil {
			return err
		}
		c.prefs.Spawner.Width, c.prefs.Spawner.Height = w, h
		c.log.Log(fmt.Sprintf("grid %dx%d", w, h))
		return nil
	})

	reg.Register("fps", "fps on|off: fps overlay", nil, toggle(func(on bool) {
		c.debug.SetShowFPS(on)
		c.prefs.ShowFPS = on
	}))
	reg.Register("mem", "mem on|off: heap overlay", nil, toggle(func(on bool) {
		c.debug.SetShowMemAlloc(on)
		c.prefs.ShowMemAlloc = on
	}))
	reg.Register("gridlines", "gridlines on|off: floor grid", nil, toggle(func(on bool) {
		c.scene.SetGridVisible(on)
		c.prefs.GridVisible = on
	}))
	reg.Register("diag", "diag on|off: frame-time diagnostics (hand colour uses 0 fps when off)", nil, toggle(func(on bool) {
		c.debug.Diag.SetEnabled(on)
	}))

	reg.Register("order", "order priority|legacy: hand colour precedence", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("order: want one of priority, legacy")
		}
		o, err := handviz.ParseOrder(args[0])
		if err != nil {
			return err
		}
		c.hands.Rule.Order = o
		c.prefs.Hands.ColorOrder = o.String()
		return nil
	})

	reg.Register("save", "save: write settings to "+engineconfig.EngineConfigPath, nil, func([]string) error {
		if err := engineconfig.Save("", *c.prefs); err != nil {
			return err
		}
		c.log.Log("saved " + engineconfig.EngineConfigPath)
		return nil
	})

	reg.Register("help", "help: list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			c.log.Log(line)
		}
		return nil
	})
}

// toggle adapts an on/off setter to a command taking "on" or "off".
func toggle(set func(on bool)) func(args []string) error {
	return func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("want on or off")
		}
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			set(true)
		case "off", "false", "0":
			set(false)
		default:
			return fmt.Errorf("want on or off, got %q", args[0])
		}
		return nil
	}
}
