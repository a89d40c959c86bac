package demos

import (
	"testing"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/light"
	"viz-tiles/internal/logger"
	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
	"viz-tiles/internal/scenegraph"
)

func build(t *testing.T, name string) (*scenegraph.Scene, scenegraph.CameraSettings, Animator, *logger.Logger) {
	t.Helper()
	d, ok := Lookup(name)
	require.True(t, ok, name)
	sc := scenegraph.New()
	cam := scenegraph.DefaultCamera()
	log := logger.New("")
	anim := d.Build(sc, &cam, randx.NewSysRand(1), log)
	return sc, cam, anim, log
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"basics", "explorer", "plane", "tile"}, Names())
	for _, d := range All() {
		assert.NotEmpty(t, d.Summary, d.Name)
		assert.NotNil(t, d.Build, d.Name)
	}
	_, ok := Lookup("missing")
	assert.False(t, ok)

	tile, _ := Lookup("tile")
	assert.False(t, tile.Orbit)
	basics, _ := Lookup("basics")
	assert.True(t, basics.Orbit)
}

func TestBasics(t *testing.T) {
	sc, cam, anim, log := build(t, "basics")
	assert.Zero(t, log.Count(logger.Warn))
	assert.Equal(t, paint.Black, sc.Background)
	assert.Equal(t, scenegraph.DefaultCamera(), cam)

	lights := sc.Lights()
	require.Len(t, lights, 6)
	assert.Equal(t, 5, light.Count(lights, light.Point))
	assert.Equal(t, 1, light.Count(lights, light.Ambient))
	assert.Equal(t, paint.MustParse("#c0c0c0"), lights[5].AsBase().Color)

	first := lights[0].(*light.PointLight)
	assert.Equal(t, paint.MustParse("#6EACDA"), first.Color)
	assert.Equal(t, float32(0.5), first.Intensity)
	assert.Equal(t, float32(10), first.Distance)
	assert.Equal(t, math32.Vec3(0, 0, 2), first.Position)
	magenta := lights[4].(*light.PointLight)
	assert.Equal(t, float32(0.8), magenta.Intensity)
	assert.Equal(t, float32(8), magenta.Distance)

	meshes := sc.Meshes()
	require.Len(t, meshes, 1+700)

	tile := meshes[0]
	assert.Equal(t, geometry.KindExtrude, tile.Geometry.Kind)
	require.NotNil(t, tile.Geometry.Extrude)
	assert.Equal(t, float32(0.05), tile.Geometry.Extrude.BevelSize)
	require.Len(t, tile.Materials, 1)
	m := tile.Materials[0]
	assert.Equal(t, material.Physical, m.Type)
	assert.Equal(t, paint.Hex(0x777777), m.Color)
	assert.Equal(t, float32(1), m.Metalness)
	assert.Equal(t, float32(0.4), m.Roughness)
	assert.Equal(t, float32(0.1), m.Clearcoat)
	assert.Equal(t, float32(0.1), m.ClearcoatRoughness)

	for _, bead := range meshes[1:] {
		assert.LessOrEqual(t, bead.Position.Length(), float32(2)+1e-5)
		assert.Equal(t, geometry.KindSphere, bead.Geometry.Kind)
		assert.Equal(t, 33*33, bead.Geometry.VertexCount())
		assert.LessOrEqual(t, bead.Geometry.BoundingBox().Size().Y, float32(0.04)+1e-6)
		assert.Equal(t, paint.MustParse("#c0c0c0"), bead.Materials[0].Color)
	}

	require.NotNil(t, anim)
	anim(0)
	for _, l := range lights[:5] {
		assert.InDelta(t, 0, l.AsBase().Position.X, 1e-6)
		assert.InDelta(t, 1, l.AsBase().Position.Y, 1e-6)
	}
	assert.Equal(t, float32(3), magenta.Position.Z)

	// light 0 has xFactor 2 and yFactor 12
	anim(math32.Pi)
	assert.InDelta(t, 1, first.Position.X, 1e-5)
	assert.InDelta(t, math32.Cos(math32.Pi/12), first.Position.Y, 1e-5)
	assert.Equal(t, float32(2), first.Position.Z)

	// the ambient light does not move
	assert.Equal(t, math32.Vector3{}, lights[5].AsBase().Position)
}

func TestBasicsIsSeeded(t *testing.T) {
	a, _, _, _ := build(t, "basics")
	b, _, _, _ := build(t, "basics")
	am, bm := a.Meshes(), b.Meshes()
	for i := range am {
		assert.Equal(t, am[i].Position, bm[i].Position)
	}
}

func TestExplorer(t *testing.T) {
	sc, cam, anim, log := build(t, "explorer")
	assert.Nil(t, anim)
	assert.Zero(t, log.Count(logger.Warn))
	assert.Equal(t, math32.Vec3(3, 3, 5), cam.Position)
	assert.Equal(t, math32.Vector3{}, cam.Target)

	meshes := sc.Meshes()
	require.Len(t, meshes, 1)
	beam := meshes[0]
	assert.Equal(t, geometry.KindBox, beam.Geometry.Kind)
	assert.Equal(t, math32.Vec3(2, 0.4, 0.4), beam.Geometry.BoundingBox().Size())
	assert.True(t, beam.Transparent())
	assert.Equal(t, float32(0.5), beam.Materials[0].Opacity)

	lights := sc.Lights()
	require.Len(t, lights, 2)
	one := lights[0].(*light.DirectionalLight)
	two := lights[1].(*light.DirectionalLight)
	assert.Equal(t, math32.Vec3(5, 10, 7.5), one.Position)
	assert.Equal(t, math32.Vector3{}, one.Target)
	assert.Equal(t, math32.Vec3(-5, 10, 7.5), two.Position)
	assert.Equal(t, math32.Vec3(1, 0, 0), two.Target)
}

func TestPlane(t *testing.T) {
	sc, _, anim, _ := build(t, "plane")
	assert.Nil(t, anim)
	assert.Empty(t, sc.Lights())

	kids := sc.Children()
	require.Len(t, kids, 2)
	axes, ok := kids[0].(*scenegraph.Axes)
	require.True(t, ok)
	assert.Equal(t, float32(100), axes.Size)

	plane := kids[1].(*scenegraph.Mesh)
	assert.Equal(t, math32.Vec3(60, 20, 0), plane.Geometry.BoundingBox().Size())
	n := plane.Rotate(plane.Geometry.Normals[0])
	assert.InDelta(t, 1, n.Y, 1e-6)
}

func TestTile(t *testing.T) {
	sc, cam, anim, _ := build(t, "tile")
	assert.Nil(t, anim)
	assert.Equal(t, scenegraph.DefaultCamera(), cam)
	assert.Empty(t, sc.Meshes())

	lights := sc.Lights()
	require.Len(t, lights, 1)
	p := lights[0].(*light.PointLight)
	assert.Equal(t, paint.White, p.Color)
	assert.Equal(t, float32(1), p.Intensity)
	assert.Equal(t, float32(100), p.Distance)
	assert.Equal(t, math32.Vec3(0, 0, 10), p.Position)
}
