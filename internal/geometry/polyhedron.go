package geometry

import "cogentcore.org/core/math32"

type PolyhedronOptions struct {
	// Detail subdivides every face edge into Detail+1 pieces.
	Detail int `yaml:"detail"`
}

// DefaultPolyhedronOptions returns no subdivision.
func DefaultPolyhedronOptions() PolyhedronOptions { return PolyhedronOptions{} }

var goldenRatio = (1 + math32.Sqrt(5)) / 2

var tetraVertices = []float32{1, 1, 1, -1, -1, 1, -1, 1, -1, 1, -1, -1}
var tetraIndices = []int{2, 1, 0, 0, 3, 2, 1, 3, 0, 2, 3, 1}

var octaVertices = []float32{1, 0, 0, -1, 0, 0, 0, 1, 0, 0, -1, 0, 0, 0, 1, 0, 0, -1}
var octaIndices = []int{0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2, 1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2}

var icosaVertices = []float32{
	-1, goldenRatio, 0, 1, goldenRatio, 0, -1, -goldenRatio, 0, 1, -goldenRatio, 0,
	0, -1, goldenRatio, 0, 1, goldenRatio, 0, -1, -goldenRatio, 0, 1, -goldenRatio,
	goldenRatio, 0, -1, goldenRatio, 0, 1, -goldenRatio, 0, -1, -goldenRatio, 0, 1,
}
var icosaIndices = []int{
	0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
	1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
	3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
	4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
}

var dodecaVertices = func() []float32 {
	t, r := goldenRatio, 1/goldenRatio
	return []float32{
		// (±1, ±1, ±1)
		-1, -1, -1, -1, -1, 1, -1, 1, -1, -1, 1, 1,
		1, -1, -1, 1, -1, 1, 1, 1, -1, 1, 1, 1,
		// (0, ±1/φ, ±φ)
		0, -r, -t, 0, -r, t, 0, r, -t, 0, r, t,
		// (±1/φ, ±φ, 0)
		-r, -t, 0, -r, t, 0, r, -t, 0, r, t, 0,
		// (±φ, 0, ±1/φ)
		-t, 0, -r, t, 0, -r, -t, 0, r, t, 0, r,
	}
}()
var dodecaIndices = []int{
	3, 11, 7, 3, 7, 15, 3, 15, 13,
	7, 19, 17, 7, 17, 6, 7, 6, 15,
	17, 4, 8, 17, 8, 10, 17, 10, 6,
	8, 0, 16, 8, 16, 2, 8, 2, 10,
	0, 12, 1, 0, 1, 18, 0, 18, 16,
	6, 10, 2, 6, 2, 13, 6, 13, 15,
	2, 16, 18, 2, 18, 3, 2, 3, 13,
	18, 1, 9, 18, 9, 11, 18, 11, 3,
	4, 14, 12, 4, 12, 0, 4, 0, 8,
	11, 9, 5, 11, 5, 19, 11, 19, 7,
	19, 5, 14, 19, 14, 4, 19, 4, 17,
	1, 12, 14, 1, 14, 5, 1, 5, 9,
}

// Tetrahedron builds a regular tetrahedron of the given circumradius.
func Tetrahedron(radius float32, opts PolyhedronOptions) *Geometry {
	return polyhedron(KindTetrahedron, tetraVertices, tetraIndices, radius, opts.Detail)
}

// Octahedron builds a regular octahedron of the given circumradius.
func Octahedron(radius float32, opts PolyhedronOptions) *Geometry {
	return polyhedron(KindOctahedron, octaVertices, octaIndices, radius, opts.Detail)
}

// Icosahedron builds a regular icosahedron of the given circumradius.
func Icosahedron(radius float32, opts PolyhedronOptions) *Geometry {
	return polyhedron(KindIcosahedron, icosaVertices, icosaIndices, radius, opts.Detail)
}

// Dodecahedron builds a regular dodecahedron of the given circumradius.
func Dodecahedron(radius float32, opts PolyhedronOptions) *Geometry {
	return polyhedron(KindDodecahedron, dodecaVertices, dodecaIndices, radius, opts.Detail)
}

// polyhedron subdivides each face of a base solid and projects every vertex onto the
// sphere of the given radius. The result is not indexed. Detail 0 keeps flat faces;
// any subdivision switches to smooth, radial normals.
func polyhedron(kind Kind, verts []float32, indices []int, radius float32, detail int) *Geometry {
	detail = atLeast(detail, 0)
	cols := detail + 1
	g := newGeometry(kind, len(indices)*cols*cols)

	at := func(i int) math32.Vector3 {
		return math32.Vec3(verts[i*3], verts[i*3+1], verts[i*3+2])
	}
	push := func(p math32.Vector3) {
		p = normalize(p).MulScalar(radius)
		g.vertex(p, math32.Vector3{}, sphereUV(p))
	}

	for f := 0; f+2 < len(indices); f += 3 {
		a, b, c := at(indices[f]), at(indices[f+1]), at(indices[f+2])

		v := make([][]math32.Vector3, cols+1)
		for i := 0; i <= cols; i++ {
			aj := lerp3(a, c, float32(i)/float32(cols))
			bj := lerp3(b, c, float32(i)/float32(cols))
			rows := cols - i
			v[i] = make([]math32.Vector3, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					v[i][j] = aj
				} else {
					v[i][j] = lerp3(aj, bj, float32(j)/float32(rows))
				}
			}
		}
		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					push(v[i][k+1])
					push(v[i+1][k])
					push(v[i][k])
				} else {
					push(v[i][k+1])
					push(v[i+1][k+1])
					push(v[i+1][k])
				}
			}
		}
	}

	if detail == 0 {
		g.ComputeVertexNormals()
	} else {
		for i, p := range g.Positions {
			g.Normals[i] = normalize(p)
		}
	}
	return g
}

func lerp3(a, b math32.Vector3, t float32) math32.Vector3 {
	return a.Add(b.Sub(a).MulScalar(t))
}

// sphereUV maps a point to azimuth/inclination texture coordinates.
func sphereUV(p math32.Vector3) math32.Vector2 {
	u := math32.Atan2(p.Z, -p.X)/2/math32.Pi + 0.5
	v := math32.Atan2(-p.Y, math32.Sqrt(p.X*p.X+p.Z*p.Z))/math32.Pi + 0.5
	return math32.Vec2(u, v)
}
