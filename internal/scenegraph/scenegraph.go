// Package scenegraph is the renderer-independent scene: what is in it, where, and how it is lit.
// The host walks it every frame; nothing here touches the GPU.
package scenegraph

import (
	"cogentcore.org/core/math32"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/light"
	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
)

// Node is anything a Scene can hold: *Mesh, *Points, *LightNode, *Axes, *Grid.
type Node interface {
	node()
}

// Transform places a node. Rotation is Euler angles in radians applied X, then Y, then Z
// in the node's frame (so a point is rotated by Z first).
type Transform struct {
	Position math32.Vector3
	Rotation math32.Vector3
	Scale    math32.Vector3
}

// Identity is no translation, no rotation, unit scale.
func Identity() Transform {
	return Transform{Scale: math32.Vec3(1, 1, 1)}
}

// Apply maps a local point to the parent frame: scale, rotate, then translate.
func (t Transform) Apply(p math32.Vector3) math32.Vector3 {
	p = math32.Vec3(p.X*t.Scale.X, p.Y*t.Scale.Y, p.Z*t.Scale.Z)
	return t.Rotate(p).Add(t.Position)
}

// Rotate applies only the rotation, for directions and normals.
func (t Transform) Rotate(v math32.Vector3) math32.Vector3 {
	v = rotZ(v, t.Rotation.Z)
	v = rotY(v, t.Rotation.Y)
	return rotX(v, t.Rotation.X)
}

func rotX(v math32.Vector3, a float32) math32.Vector3 {
	if a == 0 {
		return v
	}
	s, c := math32.Sin(a), math32.Cos(a)
	return math32.Vec3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
}

func rotY(v math32.Vector3, a float32) math32.Vector3 {
	if a == 0 {
		return v
	}
	s, c := math32.Sin(a), math32.Cos(a)
	return math32.Vec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
}

func rotZ(v math32.Vector3, a float32) math32.Vector3 {
	if a == 0 {
		return v
	}
	s, c := math32.Sin(a), math32.Cos(a)
	return math32.Vec3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
}

// Mesh pairs a geometry with its materials. With one material every group uses it; with
// several, group i is drawn with Materials[group.MaterialIndex].
type Mesh struct {
	Name      string
	Geometry  *geometry.Geometry
	Materials []*material.Material
	Transform
}

// NewMesh returns a mesh at the origin.
func NewMesh(g *geometry.Geometry, mats ...*material.Material) *Mesh {
	return &Mesh{Geometry: g, Materials: mats, Transform: Identity()}
}

// MaterialFor returns the material a geometry group is drawn with, or nil when the mesh has
// no material for it (the group is then not drawn).
func (m *Mesh) MaterialFor(group geometry.Group) *material.Material {
	switch {
	case len(m.Materials) == 0:
		return nil
	case len(m.Materials) == 1:
		return m.Materials[0]
	case group.MaterialIndex >= 0 && group.MaterialIndex < len(m.Materials):
		return m.Materials[group.MaterialIndex]
	}
	return nil
}

// Transparent reports whether any of m's materials blends.
func (m *Mesh) Transparent() bool {
	for _, mt := range m.Materials {
		if mt != nil && mt.IsTransparent() {
			return true
		}
	}
	return false
}

// Points is a placed point cloud.
type Points struct {
	Name  string
	Cloud *geometry.PointCloud
	Transform
}

// NewPoints returns a point cloud node at the origin.
func NewPoints(pc *geometry.PointCloud) *Points {
	return &Points{Cloud: pc, Transform: Identity()}
}

// LightNode puts a light in the scene. The light carries its own position.
type LightNode struct {
	Light light.Light
}

// Axes draws the X (red), Y (green) and Z (blue) axes from the origin to Size.
type Axes struct {
	Size float32
}

// Grid is a ground grid on the XZ plane.
type Grid struct {
	Size      float32
	Divisions int
}

func (*Mesh) node()      {}
func (*Points) node()    {}
func (*LightNode) node() {}
func (*Axes) node()      {}
func (*Grid) node()      {}

// CameraSettings is the perspective camera a scene is viewed through.
type CameraSettings struct {
	Fovy     float32 // vertical field of view, degrees
	Near     float32
	Far      float32
	Position math32.Vector3
	Target   math32.Vector3
}

// DefaultCamera is 75°, near 0.1, far 1000, at (0,0,5) looking at the origin.
func DefaultCamera() CameraSettings {
	return CameraSettings{
		Fovy:     75,
		Near:     0.1,
		Far:      1000,
		Position: math32.Vec3(0, 0, 5),
	}
}

// Stats counts what a scene holds.
type Stats struct {
	Objects   int
	Meshes    int
	Points    int
	Lights    int
	Triangles int
	Vertices  int
}

// Scene is an ordered list of nodes plus a background color.
type Scene struct {
	Background paint.Color

	nodes     []Node
	disposers []func()
}

// New returns an empty scene with a black background.
func New() *Scene {
	return &Scene{Background: paint.Black}
}

// Add appends nodes in order. Nil nodes, and light nodes without a light, are skipped.
func (s *Scene) Add(nodes ...Node) {
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		s.nodes = append(s.nodes, n)
	}
}

// AddLight wraps each non-nil light in a LightNode and adds it. It returns the nodes added.
func (s *Scene) AddLight(ls ...light.Light) []*LightNode {
	var out []*LightNode
	for _, l := range ls {
		if l == nil {
			continue
		}
		ln := &LightNode{Light: l}
		s.nodes = append(s.nodes, ln)
		out = append(out, ln)
	}
	return out
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Mesh:
		return v == nil
	case *Points:
		return v == nil
	case *LightNode:
		return v == nil || v.Light == nil
	case *Axes:
		return v == nil
	case *Grid:
		return v == nil
	}
	return false
}

// Remove drops the first occurrence of n and reports whether it was present.
func (s *Scene) Remove(n Node) bool {
	for i, c := range s.nodes {
		if c == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a copy of the scene's nodes in insertion order.
func (s *Scene) Children() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Traverse calls fn on every node in insertion order. fn may not add or remove nodes.
func (s *Scene) Traverse(fn func(Node)) {
	for _, n := range s.nodes {
		fn(n)
	}
}

// Lights returns the scene's lights in insertion order.
func (s *Scene) Lights() []light.Light {
	var out []light.Light
	for _, n := range s.nodes {
		if ln, ok := n.(*LightNode); ok {
			out = append(out, ln.Light)
		}
	}
	return out
}

// Meshes returns the scene's meshes in insertion order.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, n := range s.nodes {
		if m, ok := n.(*Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// Stats walks the scene once.
func (s *Scene) Stats() Stats {
	var st Stats
	for _, n := range s.nodes {
		st.Objects++
		switch v := n.(type) {
		case *Mesh:
			st.Meshes++
			if v.Geometry != nil {
				st.Triangles += v.Geometry.TriangleCount()
				st.Vertices += v.Geometry.VertexCount()
			}
		case *Points:
			st.Points++
			if v.Cloud != nil {
				st.Vertices += len(v.Cloud.Positions)
			}
		case *LightNode:
			st.Lights++
		}
	}
	return st
}

// Clear removes every node. Dispose hooks are kept.
func (s *Scene) Clear() {
	s.nodes = nil
}

// OnDispose registers fn to run when the scene is disposed.
func (s *Scene) OnDispose(fn func()) {
	if fn != nil {
		s.disposers = append(s.disposers, fn)
	}
}

// Dispose runs the dispose hooks in reverse registration order, once, then clears the scene.
func (s *Scene) Dispose() {
	for i := len(s.disposers) - 1; i >= 0; i-- {
		s.disposers[i]()
	}
	s.disposers = nil
	s.Clear()
}
