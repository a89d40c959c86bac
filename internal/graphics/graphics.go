package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens. Zero Width or Height uses the monitor size.
type Window struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Fullscreen bool
}

// Run opens the window and runs the main loop. Each frame it calls update (input, animation),
// then draw between BeginDrawing and EndDrawing. Draw is expected to clear the screen.
// closers run in order after the loop ends, while the OpenGL context still exists.
// ESC or the window button closes the window.
func Run(w Window, update, draw func(), closers ...func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := int32(w.Width), int32(w.Height)
	if w.Fullscreen || width <= 0 || height <= 0 {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	fps := w.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
	for _, c := range closers {
		c()
	}
}
