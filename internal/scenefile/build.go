package scenefile

import (
	"fmt"
	"sort"
	"strings"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/light"
	"viz-tiles/internal/logger"
	"viz-tiles/internal/material"
	"viz-tiles/internal/sampler"
	"viz-tiles/internal/scenegraph"
)

// Build adds the file's contents to sc and applies its camera to cam (which may be nil).
// Nothing is added when a geometry fails to build. Unknown light and material tags only warn.
// Optionally can pass a single Rand interface for unseeded samples;
// otherwise uses the system global Rand source.
func (f *File) Build(sc *scenegraph.Scene, cam *scenegraph.CameraSettings, w logger.Warner, randOpt ...randx.Rand) error {
	var rnd randx.Rand
	if len(randOpt) == 0 || randOpt[0] == nil {
		rnd = randx.NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}

	var nodes []scenegraph.Node
	for i, m := range f.Meshes {
		mesh, err := m.build(w)
		if err != nil {
			return fmt.Errorf("scenefile: mesh %d (%s): %w", i, m.Geometry.Type, err)
		}
		nodes = append(nodes, mesh)
	}
	for _, p := range f.Points {
		nodes = append(nodes, p.build(rnd))
	}

	if f.Background != nil {
		sc.Background = *f.Background
	}
	if f.Camera != nil && cam != nil {
		f.Camera.applyTo(cam)
	}
	if f.Axes > 0 {
		sc.Add(&scenegraph.Axes{Size: f.Axes})
	}
	if f.Grid != nil {
		sc.Add(&scenegraph.Grid{Size: f.Grid.Size, Divisions: f.Grid.Divisions})
	}
	for _, l := range f.Lights {
		sc.AddLight(light.Create(l.Type, l.Options, w))
	}
	sc.Add(nodes...)
	return nil
}

func (m Mesh) build(w logger.Warner) (*scenegraph.Mesh, error) {
	g, err := m.Geometry.build()
	if err != nil {
		return nil, err
	}
	mesh := scenegraph.NewMesh(g, material.New(m.Material.Option, nil, w)...)
	mesh.Name = m.Name
	mesh.Position = vec3(m.Position)
	mesh.Rotation = vec3(m.Rotation)
	if m.Scale != nil {
		mesh.Scale = vec3(*m.Scale)
	}
	return mesh, nil
}

func (p PointSet) build(rnd randx.Rand) *scenegraph.Points {
	var verts []math32.Vector3
	if p.Sample != nil {
		r := rnd
		if p.Sample.Seed != nil {
			r = randx.NewSysRand(*p.Sample.Seed)
		}
		verts = sampler.SphericalPoints(p.Sample.Count, sampler.SphereOptions{Radius: p.Sample.Radius}, r)
	}
	for _, v := range p.Vertices {
		verts = append(verts, vec3(v))
	}
	pts := scenegraph.NewPoints(geometry.Points(verts, p.Options))
	pts.Name = p.Name
	pts.Position = vec3(p.Position)
	return pts
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// builder makes one geometry type from positional args (already padded with defaults).
type builder struct {
	args  []float32
	build func(a []float32, g *Geometry) (*geometry.Geometry, error)
}

var builders = map[string]builder{
	"cuboid": {[]float32{1, 1, 1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultCuboidOptions())
		return geometry.Cuboid(a[0], a[1], a[2], opts), err
	}},
	"box": {[]float32{1, 1, 1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultBoxOptions())
		return geometry.Box(a[0], a[1], a[2], opts), err
	}},
	"sphere": {[]float32{1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultSphereOptions())
		return geometry.Sphere(a[0], opts), err
	}},
	"cylinder": {[]float32{1, 1, 1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultCylinderOptions())
		return geometry.Cylinder(a[0], a[1], a[2], opts), err
	}},
	"cone": {[]float32{1, 1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultCylinderOptions())
		return geometry.Cone(a[0], a[1], opts), err
	}},
	"torus": {[]float32{1, 0.4}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultTorusOptions())
		return geometry.Torus(a[0], a[1], opts), err
	}},
	"torusknot": {[]float32{1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultTorusKnotOptions())
		return geometry.TorusKnot(a[0], opts), err
	}},
	"plane": {[]float32{1, 1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultPlaneOptions())
		return geometry.Plane(a[0], a[1], opts), err
	}},
	"circle": {[]float32{1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultCircleOptions())
		return geometry.Circle(a[0], opts), err
	}},
	"ring": {[]float32{0.5, 1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultRingOptions())
		return geometry.Ring(a[0], a[1], opts), err
	}},
	"tetrahedron":  polyhedron(geometry.Tetrahedron),
	"octahedron":   polyhedron(geometry.Octahedron),
	"icosahedron":  polyhedron(geometry.Icosahedron),
	"dodecahedron": polyhedron(geometry.Dodecahedron),
	"tube": {nil, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		path, err := g.Path.curve()
		if err != nil {
			return nil, err
		}
		opts, err := decodeOnto(g.Options, geometry.DefaultTubeOptions())
		return geometry.Tube(path, opts), err
	}},
	"extrude": {nil, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		shape, err := g.outline()
		if err != nil {
			return nil, err
		}
		opts, err := decodeOnto(g.Options, geometry.DefaultExtrudeOptions())
		return geometry.Extrude(shape, opts), err
	}},
}

func polyhedron(fn func(float32, geometry.PolyhedronOptions) *geometry.Geometry) builder {
	return builder{[]float32{1}, func(a []float32, g *Geometry) (*geometry.Geometry, error) {
		opts, err := decodeOnto(g.Options, geometry.DefaultPolyhedronOptions())
		return fn(a[0], opts), err
	}}
}

// GeometryTypes lists the accepted geometry type names.
func GeometryTypes() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// normalize maps "TorusKnotGeometry", "torus-knot" and "torusknot" to the same key.
func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return strings.TrimSuffix(s, "geometry")
}

func (g *Geometry) build() (*geometry.Geometry, error) {
	b, ok := builders[normalize(g.Type)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", g.Type, ErrUnknownGeometry)
	}
	args := make([]float32, len(b.args))
	copy(args, b.args)
	copy(args, g.Args)
	geo, err := b.build(args, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", normalize(g.Type), err)
	}
	return geo, nil
}

func (g *Geometry) outline() (*geometry.Shape, error) {
	switch {
	case len(g.RoundedRect) == 5:
		r := g.RoundedRect
		return geometry.RoundedRect(r[0], r[1], r[2], r[3], r[4]), nil
	case len(g.Shape) >= 3:
		s := geometry.NewShape().MoveTo(g.Shape[0][0], g.Shape[0][1])
		for _, p := range g.Shape[1:] {
			s.LineTo(p[0], p[1])
		}
		return s, nil
	}
	return nil, fmt.Errorf("extrude needs a shape of at least 3 points or roundedRect [x, y, w, h, r]: %w", ErrInvalidGeometry)
}

func (p *Path) curve() (geometry.Curve, error) {
	if p == nil {
		return nil, fmt.Errorf("tube needs a path: %w", ErrInvalidGeometry)
	}
	pts := make([]math32.Vector3, len(p.Points))
	for i, v := range p.Points {
		pts[i] = vec3(v)
	}
	need := func(n int) error {
		if len(pts) != n {
			return fmt.Errorf("%s path needs %d points, got %d: %w", p.Type, n, len(pts), ErrInvalidGeometry)
		}
		return nil
	}
	switch normalize(p.Type) {
	case "line":
		if err := need(2); err != nil {
			return nil, err
		}
		return geometry.LineCurve3{A: pts[0], B: pts[1]}, nil
	case "quadratic":
		if err := need(3); err != nil {
			return nil, err
		}
		return geometry.QuadraticBezierCurve3{V0: pts[0], V1: pts[1], V2: pts[2]}, nil
	case "cubic":
		if err := need(4); err != nil {
			return nil, err
		}
		return geometry.CubicBezierCurve3{V0: pts[0], V1: pts[1], V2: pts[2], V3: pts[3]}, nil
	case "", "catmullrom", "centripetal", "chordal", "uniform":
		if len(pts) < 2 {
			return nil, fmt.Errorf("catmullrom path needs at least 2 points, got %d: %w", len(pts), ErrInvalidGeometry)
		}
		c := geometry.CatmullRomCurve3{Points: pts, Closed: p.Closed, Tension: p.Tension}
		switch normalize(p.Type) {
		case "chordal":
			c.Type = geometry.Chordal
		case "uniform":
			c.Type = geometry.Uniform
		}
		return c, nil
	}
	return nil, fmt.Errorf("path type %q: %w", p.Type, ErrInvalidGeometry)
}
