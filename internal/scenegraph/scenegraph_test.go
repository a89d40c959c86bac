package scenegraph

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/light"
	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
)

func TestNewSceneIsBlackAndEmpty(t *testing.T) {
	s := New()
	assert.Equal(t, paint.Black, s.Background)
	assert.Empty(t, s.Children())
	assert.Equal(t, Stats{}, s.Stats())
}

func TestAddSkipsNil(t *testing.T) {
	s := New()
	var nilMesh *Mesh
	s.Add(nil, nilMesh, &LightNode{}, &Axes{Size: 100})
	require.Len(t, s.Children(), 1)

	added := s.AddLight(nil, light.Create("nope", light.DefaultOptions(), nil), light.New(light.Point, light.DefaultOptions(), nil))
	assert.Len(t, added, 1)
	assert.Len(t, s.Lights(), 1)
	assert.Len(t, s.Children(), 2)
}

func TestChildrenKeepOrderAndAreCopied(t *testing.T) {
	s := New()
	a := &Axes{Size: 1}
	g := &Grid{Size: 10, Divisions: 10}
	m := NewMesh(geometry.Plane(1, 1, geometry.DefaultPlaneOptions()))
	s.Add(a, g, m)

	kids := s.Children()
	assert.Equal(t, []Node{a, g, m}, kids)
	kids[0] = nil
	assert.Equal(t, Node(a), s.Children()[0])

	var seen []Node
	s.Traverse(func(n Node) { seen = append(seen, n) })
	assert.Equal(t, []Node{a, g, m}, seen)
}

func TestRemove(t *testing.T) {
	s := New()
	a, b := &Axes{Size: 1}, &Axes{Size: 2}
	s.Add(a, b)
	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, []Node{b}, s.Children())
}

func TestStats(t *testing.T) {
	s := New()
	box := geometry.Box(1, 1, 1, geometry.DefaultBoxOptions())
	s.Add(NewMesh(box, material.One(nil, nil, nil)))
	s.Add(NewPoints(geometry.Points([]math32.Vector3{{}, {X: 1}}, geometry.DefaultPointsOptions())))
	s.AddLight(light.New(light.Ambient, light.DefaultOptions(), nil))

	st := s.Stats()
	assert.Equal(t, 3, st.Objects)
	assert.Equal(t, 1, st.Meshes)
	assert.Equal(t, 1, st.Points)
	assert.Equal(t, 1, st.Lights)
	assert.Equal(t, 12, st.Triangles)
	assert.Equal(t, 24+2, st.Vertices)
	assert.Len(t, s.Meshes(), 1)
}

func TestDisposeRunsHooksInReverseOnce(t *testing.T) {
	s := New()
	var order []int
	s.OnDispose(func() { order = append(order, 1) })
	s.OnDispose(nil)
	s.OnDispose(func() { order = append(order, 2) })
	s.Add(&Axes{Size: 1})

	s.Dispose()
	assert.Equal(t, []int{2, 1}, order)
	assert.Empty(t, s.Children())

	s.Dispose()
	assert.Equal(t, []int{2, 1}, order)
}

func TestMaterialFor(t *testing.T) {
	box := geometry.Box(1, 1, 1, geometry.DefaultBoxOptions())
	single := material.One(nil, nil, nil)
	m := NewMesh(box, single)
	for _, g := range box.Groups {
		assert.Same(t, single, m.MaterialFor(g))
	}

	faces := material.New(material.Colors{paint.Hex(0xff0000), paint.Hex(0x00ff00)}, nil, nil)
	m = NewMesh(box, faces...)
	assert.Same(t, faces[1], m.MaterialFor(box.Groups[1]))
	assert.Nil(t, m.MaterialFor(box.Groups[2]))

	assert.Nil(t, NewMesh(box).MaterialFor(box.Groups[0]))
}

func TestTransparent(t *testing.T) {
	box := geometry.Box(1, 1, 1, geometry.DefaultBoxOptions())
	opaque := material.One(nil, nil, nil)
	glass := material.One(material.Spec{
		Type:    "MeshPhysicalMaterial",
		Options: material.Options{Opacity: material.Float(0.5), Transparent: material.Bool(true)},
	}, nil, nil)
	assert.False(t, NewMesh(box, opaque).Transparent())
	assert.True(t, NewMesh(box, opaque, glass).Transparent())
}

func TestTransformApply(t *testing.T) {
	tr := Identity()
	p := math32.Vec3(1, 2, 3)
	assert.Equal(t, p, tr.Apply(p))

	// a plane in XY rotated -π/2 about X lies in XZ and faces +Y
	tr.Rotation.X = -0.5 * math32.Pi
	n := tr.Rotate(math32.Vec3(0, 0, 1))
	assert.InDelta(t, 0, n.X, 1e-6)
	assert.InDelta(t, 1, n.Y, 1e-6)
	assert.InDelta(t, 0, n.Z, 1e-6)
	edge := tr.Apply(math32.Vec3(30, 10, 0))
	assert.InDelta(t, 30, edge.X, 1e-5)
	assert.InDelta(t, 0, edge.Y, 1e-5)
	assert.InDelta(t, -10, edge.Z, 1e-5)

	// Z is applied before X
	tr = Transform{Rotation: math32.Vec3(0.5*math32.Pi, 0, 0.5*math32.Pi), Scale: math32.Vec3(2, 2, 2), Position: math32.Vec3(0, 0, 1)}
	got := tr.Apply(math32.Vec3(1, 0, 0))
	assert.InDelta(t, 0, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)
	assert.InDelta(t, 3, got.Z, 1e-5)
}

func TestDefaultCamera(t *testing.T) {
	c := DefaultCamera()
	assert.Equal(t, float32(75), c.Fovy)
	assert.Equal(t, float32(0.1), c.Near)
	assert.Equal(t, float32(1000), c.Far)
	assert.Equal(t, math32.Vec3(0, 0, 5), c.Position)
	assert.Equal(t, math32.Vector3{}, c.Target)
}
