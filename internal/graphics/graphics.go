package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the desktop window.
type Window struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
}

// Run opens the window and runs the main loop. Each frame it calls update (input, systems),
// then clears the screen and calls draw. ESC is reserved for the terminal; close via the
// window button. onClose runs while the GL context still exists.
func Run(win Window, update, draw, onClose func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if onClose != nil {
		onClose()
	}
}
