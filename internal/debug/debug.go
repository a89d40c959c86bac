package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"viz-tiles/internal/scenegraph"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh the overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the viewer's overlays: FPS, scene statistics and heap size. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowStats    bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastStats    []string
	lastMemText  string
	lastMemStats runtime.MemStats
	stats        func() scenegraph.Stats
	// font is optional; when loaded, text is drawn with DrawTextEx instead of the default font.
	font     rl.Font
	fontPath string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowStats sets whether scene statistics are drawn under the FPS counter.
// source is polled every updateInterval frames.
func (d *Debug) SetShowStats(show bool, source func() scenegraph.Stats) {
	d.ShowStats = show
	d.stats = source
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, last line).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFontPath sets a TTF/OTF file to draw the overlay with. The font is loaded on the next Draw,
// after the window and OpenGL context exist. An empty path keeps raylib's default font.
func (d *Debug) SetFontPath(path string) {
	d.fontPath = path
}

func (d *Debug) ensureFont() {
	if d.fontPath == "" {
		return
	}
	path := d.fontPath
	d.fontPath = ""
	if f := rl.LoadFontEx(path, fpsFontSize*2, nil); f.Texture.ID != 0 {
		d.font = f
	}
}

// Close unloads the overlay font, if any. Call before the window closes.
func (d *Debug) Close() {
	if d.font.Texture.ID != 0 {
		rl.UnloadFont(d.font)
		d.font = rl.Font{}
	}
}

// statsLines formats st for the overlay.
func statsLines(st scenegraph.Stats) []string {
	return []string{
		fmt.Sprintf("Objects: %d", st.Objects),
		fmt.Sprintf("Meshes: %d  Points: %d", st.Meshes, st.Points),
		fmt.Sprintf("Lights: %d", st.Lights),
		fmt.Sprintf("Triangles: %d", st.Triangles),
		fmt.Sprintf("Vertices: %d", st.Vertices),
	}
}

// Draw renders any enabled overlays, right-aligned at the top of the screen in green.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.ensureFont()
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowStats && d.lastStats == nil {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		y = d.drawLine(d.lastFpsText, y)
	}
	if d.ShowStats && d.stats != nil {
		if update {
			d.lastStats = statsLines(d.stats())
		}
		for _, line := range d.lastStats {
			y = d.drawLine(line, y)
		}
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawLine(d.lastMemText, y)
	}
}

// drawLine draws text right-aligned at y and returns the next line's y.
func (d *Debug) drawLine(text string, y int32) int32 {
	if text == "" {
		return y + fpsLineHeight
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
	} else {
		w := rl.MeasureText(text, fpsFontSize)
		rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
	}
	return y + fpsLineHeight
}
