package geometry

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuboidWithoutBorderRadiusIsBox(t *testing.T) {
	for _, br := range []float32{0, -1} {
		g := Cuboid(3, 2, 1, CuboidOptions{BorderRadius: br})
		assert.Equal(t, KindBox, g.Kind)
		assert.Nil(t, g.Extrude)

		size := g.BoundingBox().Size()
		assert.Equal(t, math32.Vec3(3, 2, 1), size)
		center := g.BoundingBox().Center()
		assert.Equal(t, math32.Vector3{}, center)
	}
}

func TestBoxFaces(t *testing.T) {
	g := Box(1, 1, 1, DefaultBoxOptions())
	assert.Equal(t, 24, g.VertexCount())
	assert.Equal(t, 12, g.TriangleCount())
	require.Len(t, g.Groups, 6)
	assert.Equal(t, 6, g.MaterialCount())

	want := []math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(-1, 0, 0),
		math32.Vec3(0, 1, 0), math32.Vec3(0, -1, 0),
		math32.Vec3(0, 0, 1), math32.Vec3(0, 0, -1),
	}
	for i, gr := range g.Groups {
		assert.Equal(t, i*6, gr.Start)
		assert.Equal(t, 6, gr.Count)
		assert.Equal(t, i, gr.MaterialIndex)

		face := g.GroupGeometry(i)
		require.NotNil(t, face)
		assert.Equal(t, 4, face.VertexCount())
		for _, n := range face.Normals {
			assert.Equal(t, want[i], n, "face %d", i)
		}
		for _, p := range face.Positions {
			assert.InDelta(t, 0.5, p.Dot(want[i]), 1e-6)
		}
	}
	assert.Nil(t, g.GroupGeometry(6))
}

func TestBoxSegments(t *testing.T) {
	g := Box(2, 2, 2, BoxOptions{WidthSegments: 2, HeightSegments: 3, DepthSegments: 4})
	// two faces per axis pair: (d+1)(h+1), (w+1)(d+1), (w+1)(h+1)
	assert.Equal(t, 2*(5*4+3*5+3*4), g.VertexCount())
	assert.Equal(t, 2*(4*3+2*4+2*3)*2, g.TriangleCount())

	zero := Box(2, 2, 2, BoxOptions{})
	assert.Equal(t, 24, zero.VertexCount())
}

func TestCornerRadiusClamp(t *testing.T) {
	assert.Equal(t, float32(1), CornerRadius(2, 2, 5))
	assert.Equal(t, float32(0.25), CornerRadius(0.5, 1, 3))
	assert.Equal(t, float32(0.05), CornerRadius(0.5, 1, 0.05))
}

func TestCuboidClampsBorderRadius(t *testing.T) {
	g := Cuboid(2, 2, 1, CuboidOptions{BorderRadius: 5})
	assert.Equal(t, KindExtrude, g.Kind)
	require.NotNil(t, g.Extrude)

	assert.Equal(t, float32(1), g.Extrude.BevelSize)
	assert.Equal(t, float32(1), g.Extrude.BevelThickness)
	assert.Equal(t, g.Extrude.BevelSize, g.Extrude.BevelThickness)
	assert.Equal(t, 4, g.Extrude.BevelSegments)
	assert.Equal(t, 4, g.Extrude.CurveSegments)
	assert.Equal(t, 1, g.Extrude.Steps)
	assert.True(t, g.Extrude.BevelEnabled)
	assert.Equal(t, float32(1), g.Extrude.Depth)

	// both straight edges collapse at r = w/2 = h/2, leaving 4 curves x 4 points
	layers := 2*4 + 1 + 1
	assert.Equal(t, 2*16+16*layers, g.VertexCount())

	b := g.BoundingBox()
	assert.InDelta(t, -1, b.Min.Z, 1e-6)
	assert.InDelta(t, 2, b.Max.Z, 1e-6)
	// the bevel widens the outline by the radius on every side
	assert.InDelta(t, 4, b.Size().X, 0.05)
	assert.InDelta(t, 4, b.Size().Y, 0.05)
}

func TestCuboidRoundedCounts(t *testing.T) {
	g := Cuboid(0.5, 1, 0.01, CuboidOptions{BorderRadius: 0.05, BevelSegments: 4})
	require.NotNil(t, g.Extrude)
	assert.Equal(t, float32(0.05), g.Extrude.BevelSize)

	contour := 20
	layers := 10
	assert.Equal(t, 2*contour+contour*layers, g.VertexCount())
	assert.Equal(t, 2*(contour-2)+contour*(layers-1)*2, g.TriangleCount())

	require.Len(t, g.Groups, 2)
	assert.Equal(t, 0, g.Groups[0].MaterialIndex)
	assert.Equal(t, 1, g.Groups[1].MaterialIndex)
	assert.Equal(t, 2*(contour-2)*3, g.Groups[0].Count)
	assert.Equal(t, g.Groups[0].Count, g.Groups[1].Start)
	assert.Equal(t, len(g.Indices), g.Groups[1].Start+g.Groups[1].Count)
}

func TestCuboidDefaultBevelSegments(t *testing.T) {
	g := Cuboid(2, 2, 1, CuboidOptions{BorderRadius: 0.5})
	require.NotNil(t, g.Extrude)
	assert.Equal(t, 4, g.Extrude.BevelSegments)
	assert.Equal(t, DefaultCuboidOptions().BevelSegments, g.Extrude.CurveSegments)
}

func TestRoundedRectOutline(t *testing.T) {
	s := RoundedRect(-0.25, -0.5, 0.5, 1, 0.05)
	assert.Equal(t, 8, s.SegmentCount())
	assert.True(t, s.Closed())

	lines, curves := 0, 0
	for _, seg := range s.segments {
		switch seg.(type) {
		case lineSegment:
			lines++
		case quadSegment:
			curves++
		}
	}
	assert.Equal(t, 4, lines)
	assert.Equal(t, 4, curves)

	pts := s.Points(4)
	assert.InDelta(t, -0.2, pts[0].X, 1e-6)
	assert.InDelta(t, -0.5, pts[0].Y, 1e-6)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	assert.Len(t, s.Contour(4), 20)

	// corners are cut: no outline point reaches the rectangle's corner
	for _, p := range pts {
		assert.False(t, p.X == 0.25 && p.Y == 0.5)
	}
}

func TestExtrudeWithoutBevel(t *testing.T) {
	square := NewShape().MoveTo(-1, -1).LineTo(1, -1).LineTo(1, 1).LineTo(-1, 1).LineTo(-1, -1)
	g := Extrude(square, ExtrudeOptions{Depth: 3, BevelEnabled: false, BevelSize: 9, BevelSegments: 5})

	require.NotNil(t, g.Extrude)
	assert.Zero(t, g.Extrude.BevelSize)
	assert.Zero(t, g.Extrude.BevelSegments)
	assert.Equal(t, math32.Vec3(2, 2, 3), g.BoundingBox().Size())
	assert.Equal(t, float32(0), g.BoundingBox().Min.Z)

	assert.Equal(t, 2*4+4*2, g.VertexCount())
	assert.Equal(t, 2*2+4*2, g.TriangleCount())

	for i := 0; i < 4; i++ {
		assert.Equal(t, math32.Vec3(0, 0, -1), g.Normals[i])
		assert.Equal(t, math32.Vec3(0, 0, 1), g.Normals[4+i])
	}
	// side normals lie in the xy plane and point away from the axis
	for i := 8; i < g.VertexCount(); i++ {
		n, p := g.Normals[i], g.Positions[i]
		assert.InDelta(t, 0, n.Z, 1e-5)
		assert.Greater(t, n.X*p.X+n.Y*p.Y, float32(0))
	}
}

func TestExtrudeCapsFaceOutward(t *testing.T) {
	g := Cuboid(1, 1, 1, CuboidOptions{BorderRadius: 0.2})
	caps := g.GroupGeometry(0)
	require.NotNil(t, caps)
	for k := 0; k < len(caps.Indices); k += 3 {
		a := caps.Positions[caps.Indices[k]]
		b := caps.Positions[caps.Indices[k+1]]
		c := caps.Positions[caps.Indices[k+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if a.Z > 0.5 {
			assert.Greater(t, n.Z, float32(0))
		} else {
			assert.Less(t, n.Z, float32(0))
		}
	}
}

func TestTriangulateConcave(t *testing.T) {
	// an L shape, given clockwise
	contour := []math32.Vector2{
		math32.Vec2(0, 2), math32.Vec2(1, 2), math32.Vec2(1, 1),
		math32.Vec2(2, 1), math32.Vec2(2, 0), math32.Vec2(0, 0),
	}
	assert.True(t, IsClockwise(contour))
	assert.InDelta(t, -3, Area(contour), 1e-6)

	tris := Triangulate(contour)
	require.Len(t, tris, len(contour)-2)

	var total float32
	for _, tr := range tris {
		a := Area([]math32.Vector2{contour[tr[0]], contour[tr[1]], contour[tr[2]]})
		assert.Greater(t, a, float32(0))
		total += a
	}
	assert.InDelta(t, 3, total, 1e-5)
}

func TestTriangulateDegenerate(t *testing.T) {
	assert.Nil(t, Triangulate(nil))
	assert.Nil(t, Triangulate([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 0)}))
}
