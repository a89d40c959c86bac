package orbit

import (
	"testing"

	"cogentcore.org/core/math32"
	fm "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"viz-tiles/internal/scenegraph"
)

func TestRotateKeepsDistance(t *testing.T) {
	c := New()
	cam := scenegraph.DefaultCamera()
	c.Rotate(&cam, 150, -40, 600)
	assert.InDelta(t, 5, cam.Position.Sub(cam.Target).Length(), 1e-4)
	assert.Equal(t, math32.Vector3{}, cam.Target)
}

func TestRotateQuarterTurn(t *testing.T) {
	c := New()
	cam := scenegraph.DefaultCamera()
	// a quarter of the viewport height is a quarter turn
	c.Rotate(&cam, -150, 0, 600)
	assert.InDelta(t, 5, cam.Position.X, 1e-4)
	assert.InDelta(t, 0, cam.Position.Y, 1e-4)
	assert.InDelta(t, 0, cam.Position.Z, 1e-4)
}

func TestRotateStopsShortOfPole(t *testing.T) {
	c := New()
	cam := scenegraph.DefaultCamera()
	c.Rotate(&cam, 0, 10000, 600)
	assert.InDelta(t, 5, cam.Position.Y, 1e-3)
	assert.InDelta(t, 5, cam.Position.Length(), 1e-3)
	assert.False(t, fm.IsNaN(cam.Position.X))

	c.MinPolar, c.MaxPolar = fm.Pi/4, fm.Pi/2
	c.Rotate(&cam, 0, 1, 600)
	s := toSpherical(cam.Position)
	assert.InDelta(t, fm.Pi/4, s.phi, 1e-5)
}

func TestZoom(t *testing.T) {
	c := New()
	cam := scenegraph.DefaultCamera()
	c.Zoom(&cam, 1)
	assert.InDelta(t, 4.75, cam.Position.Z, 1e-4)
	c.Zoom(&cam, -1)
	assert.InDelta(t, 5, cam.Position.Z, 1e-4)

	c.MinDistance = 4
	c.Zoom(&cam, 100)
	assert.InDelta(t, 4, cam.Position.Z, 1e-4)
}

func TestPanMovesTargetAndCamera(t *testing.T) {
	c := New()
	cam := scenegraph.DefaultCamera()
	c.Pan(&cam, 100, 0, 600)
	// dragging right moves the view left
	assert.Less(t, cam.Target.X, float32(0))
	assert.InDelta(t, cam.Target.X, cam.Position.X, 1e-5)
	assert.InDelta(t, 0, cam.Target.Y, 1e-5)
	assert.InDelta(t, 5, cam.Position.Z, 1e-5)

	want := 2 * 100 * 5 * fm.Tan(75.0/2*fm.Pi/180) / 600
	assert.InDelta(t, -want, cam.Target.X, 1e-4)

	c.Pan(&cam, 0, 60, 600)
	assert.Greater(t, cam.Target.Y, float32(0))
}

func TestDisabledControlsDoNothing(t *testing.T) {
	c := &Controls{}
	cam := scenegraph.DefaultCamera()
	want := cam
	c.Rotate(&cam, 100, 100, 600)
	c.Zoom(&cam, 3)
	c.Pan(&cam, 100, 100, 600)
	assert.Equal(t, want, cam)
}

func TestBasis(t *testing.T) {
	right, up := Basis(scenegraph.DefaultCamera())
	assert.InDelta(t, 1, right.X, 1e-6)
	assert.InDelta(t, 1, up.Y, 1e-6)

	// looking straight down still yields a usable basis
	cam := scenegraph.CameraSettings{Position: math32.Vec3(0, 10, 0)}
	right, up = Basis(cam)
	assert.InDelta(t, 1, right.Length(), 1e-6)
	assert.InDelta(t, 0, right.Dot(up), 1e-6)
}
