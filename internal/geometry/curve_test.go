package geometry

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCurve(t *testing.T) {
	l := LineCurve3{A: math32.Vec3(0, 0, 0), B: math32.Vec3(0, 0, 10)}
	assert.InDelta(t, 10, Length(l), 1e-4)
	assert.Equal(t, math32.Vec3(0, 0, 5), PointAt(l, 0.5))
	assert.Equal(t, math32.Vec3(0, 0, 1), Tangent(l, 0.3))
	assert.Equal(t, l.B, l.Point(1))
}

func TestArcLengthParameterisation(t *testing.T) {
	// control points bunched at the start make t and arc length disagree
	c := CubicBezierCurve3{
		V0: math32.Vec3(0, 0, 0),
		V1: math32.Vec3(0.1, 0, 0),
		V2: math32.Vec3(0.2, 0, 0),
		V3: math32.Vec3(3, 0, 0),
	}
	total := Length(c)
	assert.InDelta(t, 3, total, 1e-3)
	for _, u := range []float32{0, 0.25, 0.5, 0.9, 1} {
		assert.InDelta(t, 3*u, PointAt(c, u).X, 0.02, "u=%v", u)
	}
	assert.NotEqual(t, UToT(c, 0.5), float32(0.5))
}

func TestQuadraticBezierEnds(t *testing.T) {
	q := QuadraticBezierCurve3{V0: math32.Vec3(-1, 0, 0), V1: math32.Vec3(0, 2, 0), V2: math32.Vec3(1, 0, 0)}
	assert.Equal(t, q.V0, q.Point(0))
	assert.Equal(t, q.V2, q.Point(1))
	assert.InDelta(t, 1, q.Point(0.5).Y, 1e-6)
}

func TestCatmullRomPassesThroughPoints(t *testing.T) {
	pts := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(2, 0, 1), math32.Vec3(3, 1, 1),
	}
	for _, typ := range []CatmullRomType{Centripetal, Chordal, Uniform} {
		c := CatmullRomCurve3{Points: pts, Type: typ}
		for i, p := range pts {
			got := c.Point(float32(i) / float32(len(pts)-1))
			assert.InDelta(t, 0, got.Sub(p).Length(), 1e-5, "type %d point %d", typ, i)
		}
	}

	closed := CatmullRomCurve3{Points: pts, Closed: true}
	assert.InDelta(t, 0, closed.Point(0).Sub(closed.Point(1)).Length(), 1e-5)

	assert.Equal(t, math32.Vector3{}, CatmullRomCurve3{}.Point(0.5))
	assert.Equal(t, pts[2], CatmullRomCurve3{Points: pts[2:3]}.Point(0.5))
}

func TestFrenetFramesOrthonormal(t *testing.T) {
	curves := map[string]Curve{
		"line":   LineCurve3{A: math32.Vec3(0, 0, 0), B: math32.Vec3(1, 2, 3)},
		"spline": CatmullRomCurve3{Points: []math32.Vector3{math32.Vec3(-2, 0, 0), math32.Vec3(0, 1, 1), math32.Vec3(2, 0, 0), math32.Vec3(3, -1, 2)}},
		"bezier": QuadraticBezierCurve3{V0: math32.Vec3(0, 0, 0), V1: math32.Vec3(1, 3, 0), V2: math32.Vec3(2, 0, 1)},
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			f := FrenetFrames(c, 16, false)
			require.Len(t, f.Tangents, 17)
			for i := range f.Tangents {
				tg, n, b := f.Tangents[i], f.Normals[i], f.Binormals[i]
				assert.InDelta(t, 1, tg.Length(), 1e-3)
				assert.InDelta(t, 1, n.Length(), 1e-3)
				assert.InDelta(t, 1, b.Length(), 1e-3)
				assert.InDelta(t, 0, tg.Dot(n), 1e-3)
				assert.InDelta(t, 0, tg.Dot(b), 1e-3)
				assert.InDelta(t, 0, n.Dot(b), 1e-3)
			}
		})
	}
}

func TestTubeAlongLine(t *testing.T) {
	path := LineCurve3{A: math32.Vec3(0, 0, 0), B: math32.Vec3(0, 0, 10)}
	g := Tube(path, TubeOptions{TubularSegments: 4, Radius: 0.5, RadialSegments: 6})
	assert.Equal(t, KindTube, g.Kind)
	assert.Equal(t, 5*7, g.VertexCount())
	assert.Equal(t, 4*6*2, g.TriangleCount())
	for i, p := range g.Positions {
		assert.InDelta(t, 0.5, math32.Sqrt(p.X*p.X+p.Y*p.Y), 1e-5)
		assert.InDelta(t, 0, g.Normals[i].Z, 1e-5)
	}
	b := g.BoundingBox()
	assert.InDelta(t, 0, b.Min.Z, 1e-5)
	assert.InDelta(t, 10, b.Max.Z, 1e-5)
}

func TestTubeDefaultsAndClosed(t *testing.T) {
	d := DefaultTubeOptions()
	assert.Equal(t, 64, d.TubularSegments)
	assert.Equal(t, float32(1), d.Radius)
	assert.Equal(t, 8, d.RadialSegments)
	assert.False(t, d.Closed)

	loop := CatmullRomCurve3{
		Points: []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(-1, 0, 0), math32.Vec3(0, -1, 0)},
		Closed: true,
	}
	g := Tube(loop, TubeOptions{TubularSegments: 12, Radius: 0.1, RadialSegments: 5, Closed: true})
	assert.Equal(t, 13*6, g.VertexCount())
	last := 12 * 6
	for j := 0; j < 6; j++ {
		assert.Equal(t, g.Positions[j], g.Positions[last+j])
		assert.Equal(t, float32(1), g.UVs[last+j].X)
	}
}
