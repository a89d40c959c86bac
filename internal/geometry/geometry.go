// Package geometry builds CPU-side triangle meshes: a rounded-or-plain cuboid built by
// extruding a 2-D outline, and the usual primitive shapes with their customary defaults.
// Geometries are plain slices; uploading them to the GPU is the render package's job.
package geometry

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Kind records which constructor produced a geometry.
type Kind int

const (
	KindBox Kind = iota + 1
	KindExtrude
	KindSphere
	KindCylinder
	KindCone
	KindTorus
	KindPlane
	KindCircle
	KindRing
	KindTetrahedron
	KindOctahedron
	KindIcosahedron
	KindDodecahedron
	KindTube
	KindTorusKnot
)

var kindNames = map[Kind]string{
	KindBox:          "Box",
	KindExtrude:      "Extrude",
	KindSphere:       "Sphere",
	KindCylinder:     "Cylinder",
	KindCone:         "Cone",
	KindTorus:        "Torus",
	KindPlane:        "Plane",
	KindCircle:       "Circle",
	KindRing:         "Ring",
	KindTetrahedron:  "Tetrahedron",
	KindOctahedron:   "Octahedron",
	KindIcosahedron:  "Icosahedron",
	KindDodecahedron: "Dodecahedron",
	KindTube:         "Tube",
	KindTorusKnot:    "TorusKnot",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Group is a contiguous index range drawn with one material. Start and Count are in
// index units for indexed geometry and in vertex units otherwise.
type Group struct {
	Start         int
	Count         int
	MaterialIndex int
}

// Geometry is a triangle list. Positions, Normals and UVs are parallel slices.
// When Indices is empty every three consecutive vertices form a triangle.
type Geometry struct {
	Kind      Kind
	Positions []math32.Vector3
	Normals   []math32.Vector3
	UVs       []math32.Vector2
	Indices   []uint32
	Groups    []Group

	// Extrude holds the parameters an extruded geometry was actually built with.
	Extrude *ExtrudeOptions
}

func newGeometry(k Kind, vertexHint int) *Geometry {
	return &Geometry{
		Kind:      k,
		Positions: make([]math32.Vector3, 0, vertexHint),
		Normals:   make([]math32.Vector3, 0, vertexHint),
		UVs:       make([]math32.Vector2, 0, vertexHint),
	}
}

func (g *Geometry) vertex(p, n math32.Vector3, uv math32.Vector2) uint32 {
	g.Positions = append(g.Positions, p)
	g.Normals = append(g.Normals, n)
	g.UVs = append(g.UVs, uv)
	return uint32(len(g.Positions) - 1)
}

func (g *Geometry) triangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// quad adds the two triangles a,b,d and b,c,d.
func (g *Geometry) quad(a, b, c, d uint32) {
	g.Indices = append(g.Indices, a, b, d, b, c, d)
}

func (g *Geometry) addGroup(start, count, materialIndex int) {
	g.Groups = append(g.Groups, Group{Start: start, Count: count, MaterialIndex: materialIndex})
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int { return len(g.Positions) }

// Indexed reports whether triangles are described through Indices.
func (g *Geometry) Indexed() bool { return len(g.Indices) > 0 }

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	if g.Indexed() {
		return len(g.Indices) / 3
	}
	return len(g.Positions) / 3
}

// BoundingBox returns the axis-aligned bounds of all positions; empty for no vertices.
func (g *Geometry) BoundingBox() math32.Box3 {
	b := math32.B3Empty()
	for _, p := range g.Positions {
		b.ExpandByPoint(p)
	}
	return b
}

// MaterialCount returns one more than the highest material index used by a group,
// or 1 when the geometry has no groups.
func (g *Geometry) MaterialCount() int {
	n := 1
	for _, gr := range g.Groups {
		if gr.MaterialIndex+1 > n {
			n = gr.MaterialIndex + 1
		}
	}
	return n
}

// GroupGeometry returns a compact, indexed copy of the triangles in group i, with only
// the vertices that group references. It returns nil when i is out of range.
func (g *Geometry) GroupGeometry(i int) *Geometry {
	if i < 0 || i >= len(g.Groups) {
		return nil
	}
	gr := g.Groups[i]
	out := newGeometry(g.Kind, gr.Count)
	remap := make(map[uint32]uint32, gr.Count)
	for k := gr.Start; k < gr.Start+gr.Count; k++ {
		src := uint32(k)
		if g.Indexed() {
			if k >= len(g.Indices) {
				break
			}
			src = g.Indices[k]
		} else if k >= len(g.Positions) {
			break
		}
		dst, ok := remap[src]
		if !ok {
			dst = out.vertex(g.Positions[src], g.normalAt(int(src)), g.uvAt(int(src)))
			remap[src] = dst
		}
		out.Indices = append(out.Indices, dst)
	}
	out.addGroup(0, len(out.Indices), gr.MaterialIndex)
	return out
}

func (g *Geometry) normalAt(i int) math32.Vector3 {
	if i < len(g.Normals) {
		return g.Normals[i]
	}
	return math32.Vector3{}
}

func (g *Geometry) uvAt(i int) math32.Vector2 {
	if i < len(g.UVs) {
		return g.UVs[i]
	}
	return math32.Vector2{}
}

// ComputeVertexNormals replaces Normals with area-weighted face normals summed per vertex.
// Non-indexed geometry therefore gets flat shading.
func (g *Geometry) ComputeVertexNormals() {
	acc := make([]math32.Vector3, len(g.Positions))
	face := func(a, b, c int) {
		pa, pb, pc := g.Positions[a], g.Positions[b], g.Positions[c]
		n := pc.Sub(pb).Cross(pa.Sub(pb))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	if g.Indexed() {
		for k := 0; k+2 < len(g.Indices); k += 3 {
			face(int(g.Indices[k]), int(g.Indices[k+1]), int(g.Indices[k+2]))
		}
	} else {
		for k := 0; k+2 < len(g.Positions); k += 3 {
			face(k, k+1, k+2)
		}
	}
	for i := range acc {
		acc[i] = normalize(acc[i])
	}
	g.Normals = acc
}

// normalize returns v scaled to unit length, or the zero vector for a zero-length v.
func normalize(v math32.Vector3) math32.Vector3 {
	l := v.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return v.MulScalar(1 / l)
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func orDefault(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
