// Package scene hosts one scenegraph.Scene in the raylib window: it owns the camera,
// turns mouse input into orbit controls, advances the scene's animation and draws it.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"viz-tiles/internal/orbit"
	"viz-tiles/internal/render"
	"viz-tiles/internal/scenegraph"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Host draws the current scene from a perspective camera. Update runs input and animation;
// Draw renders between BeginMode3D and EndMode3D.
type Host struct {
	Camera      rl.Camera3D
	GridVisible bool
	// Orbit is nil when the scene disables camera controls.
	Orbit *orbit.Controls

	view     scenegraph.CameraSettings
	scene    *scenegraph.Scene
	animate  func(seconds float64)
	renderer *render.Renderer
}

// New returns a host with an empty scene and the default camera.
func New() *Host {
	h := &Host{renderer: render.New()}
	h.SetScene(scenegraph.New(), scenegraph.DefaultCamera(), false, nil)
	return h
}

// SetScene replaces the hosted scene. The previous scene is disposed and its GPU meshes
// released. animate may be nil for a static scene.
func (h *Host) SetScene(sc *scenegraph.Scene, cam scenegraph.CameraSettings, orbitEnabled bool, animate func(seconds float64)) {
	if h.scene != nil && h.scene != sc {
		h.scene.Dispose()
		h.renderer.Release()
	}
	h.scene = sc
	h.view = cam
	h.animate = animate
	h.Orbit = nil
	if orbitEnabled {
		h.Orbit = orbit.New()
	}
	h.syncCamera()
}

// Scene returns the hosted scene.
func (h *Host) Scene() *scenegraph.Scene { return h.scene }

// View returns the current camera settings, including any orbit changes.
func (h *Host) View() scenegraph.CameraSettings { return h.view }

// SetGridVisible sets whether the editor grid is drawn.
func (h *Host) SetGridVisible(visible bool) {
	h.GridVisible = visible
}

func (h *Host) syncCamera() {
	h.Camera.Position = rl.NewVector3(h.view.Position.X, h.view.Position.Y, h.view.Position.Z)
	h.Camera.Target = rl.NewVector3(h.view.Target.X, h.view.Target.Y, h.view.Target.Z)
	h.Camera.Up = rl.NewVector3(0, 1, 0)
	h.Camera.Fovy = h.view.Fovy
	h.Camera.Projection = rl.CameraPerspective
}

// Update runs once per frame: left drag orbits, right drag pans, the wheel zooms.
// Then the scene's animation is advanced to the window clock.
func (h *Host) Update() {
	if h.Orbit != nil {
		height := float32(rl.GetScreenHeight())
		delta := rl.GetMouseDelta()
		switch {
		case rl.IsMouseButtonDown(rl.MouseButtonLeft):
			h.Orbit.Rotate(&h.view, delta.X, delta.Y, height)
		case rl.IsMouseButtonDown(rl.MouseButtonRight), rl.IsMouseButtonDown(rl.MouseButtonMiddle):
			h.Orbit.Pan(&h.view, delta.X, delta.Y, height)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			h.Orbit.Zoom(&h.view, wheel)
		}
	}
	if h.animate != nil {
		h.animate(rl.GetTime())
	}
	h.syncCamera()
}

// Draw clears to the scene background and renders the scene, then the editor grid when
// GridVisible is true.
func (h *Host) Draw() {
	rl.ClearBackground(rl.Color(h.scene.Background))
	rl.BeginMode3D(h.Camera)
	h.renderer.Draw(h.scene, h.view)
	if h.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

// Close disposes the scene and frees GPU resources. Call before the window closes.
func (h *Host) Close() {
	if h.scene != nil {
		h.scene.Dispose()
	}
	h.renderer.Close()
}

// drawEditorGrid draws an infinite-style grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
