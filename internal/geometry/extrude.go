package geometry

import "cogentcore.org/core/math32"

// ExtrudeOptions controls how a Shape is pushed along +z.
type ExtrudeOptions struct {
	Depth          float32 `yaml:"depth"`
	BevelEnabled   bool    `yaml:"bevelEnabled"`
	BevelThickness float32 `yaml:"bevelThickness"`
	BevelSize      float32 `yaml:"bevelSize"`
	BevelOffset    float32 `yaml:"bevelOffset"`
	BevelSegments  int     `yaml:"bevelSegments"`
	Steps          int     `yaml:"steps"`
	CurveSegments  int     `yaml:"curveSegments"`
}

// DefaultExtrudeOptions returns a depth of 1 with a 3-segment bevel 0.2 thick and 0.1 wide.
func DefaultExtrudeOptions() ExtrudeOptions {
	return ExtrudeOptions{
		Depth:          1,
		BevelEnabled:   true,
		BevelThickness: 0.2,
		BevelSize:      0.1,
		BevelSegments:  3,
		Steps:          1,
		CurveSegments:  12,
	}
}

// Extrude sweeps the shape's outline from z=0 to z=Depth. With bevels enabled the
// outline grows by BevelSize over BevelSegments layers on each side, reaching out
// BevelThickness beyond both ends. Caps come first as group 0, side walls as group 1.
func Extrude(shape *Shape, opts ExtrudeOptions) *Geometry {
	opts.Steps = atLeast(opts.Steps, 1)
	opts.CurveSegments = atLeast(opts.CurveSegments, 1)
	if !opts.BevelEnabled {
		opts.BevelSegments = 0
		opts.BevelThickness = 0
		opts.BevelSize = 0
		opts.BevelOffset = 0
	} else {
		opts.BevelSegments = atLeast(opts.BevelSegments, 1)
	}

	g := &Geometry{Kind: KindExtrude, Extrude: &opts}

	contour := shape.Contour(opts.CurveSegments)
	if len(contour) < 3 {
		return g
	}
	// The miter vectors below point outward for a clockwise outline.
	if !IsClockwise(contour) {
		for i, j := 0, len(contour)-1; i < j; i, j = i+1, j-1 {
			contour[i], contour[j] = contour[j], contour[i]
		}
	}
	faces := Triangulate(contour)

	n := len(contour)
	moves := make([]math32.Vector2, n)
	for i := range contour {
		prev := contour[(i+n-1)%n]
		next := contour[(i+1)%n]
		moves[i] = bevelVector(contour[i], prev, next)
	}

	type layer struct{ z, size float32 }
	var layers []layer
	bevel := func(b int) layer {
		t := float32(b) / float32(opts.BevelSegments)
		return layer{
			z:    opts.BevelThickness * math32.Cos(t*math32.Pi/2),
			size: opts.BevelSize*math32.Sin(t*math32.Pi/2) + opts.BevelOffset,
		}
	}
	for b := 0; b < opts.BevelSegments; b++ {
		l := bevel(b)
		layers = append(layers, layer{z: -l.z, size: l.size})
	}
	full := opts.BevelSize + opts.BevelOffset
	for s := 0; s <= opts.Steps; s++ {
		layers = append(layers, layer{z: opts.Depth / float32(opts.Steps) * float32(s), size: full})
	}
	for b := opts.BevelSegments - 1; b >= 0; b-- {
		l := bevel(b)
		layers = append(layers, layer{z: opts.Depth + l.z, size: l.size})
	}

	ring := func(l layer) []math32.Vector3 {
		out := make([]math32.Vector3, n)
		for i, p := range contour {
			q := p.Add(moves[i].MulScalar(l.size))
			out[i] = math32.Vec3(q.X, q.Y, l.z)
		}
		return out
	}

	total := len(faces)*2*3 + n*(len(layers)-1)*6
	g.Positions = make([]math32.Vector3, 0, n*(len(layers)+2))
	g.Normals = make([]math32.Vector3, 0, cap(g.Positions))
	g.UVs = make([]math32.Vector2, 0, cap(g.Positions))
	g.Indices = make([]uint32, 0, total)

	// Caps get their own vertices so their normals stay flat.
	bottom := uint32(g.VertexCount())
	for _, p := range ring(layers[0]) {
		g.vertex(p, math32.Vec3(0, 0, -1), math32.Vec2(p.X, p.Y))
	}
	top := uint32(g.VertexCount())
	for _, p := range ring(layers[len(layers)-1]) {
		g.vertex(p, math32.Vec3(0, 0, 1), math32.Vec2(p.X, p.Y))
	}
	for _, f := range faces {
		g.triangle(bottom+uint32(f[2]), bottom+uint32(f[1]), bottom+uint32(f[0]))
	}
	for _, f := range faces {
		g.triangle(top+uint32(f[0]), top+uint32(f[1]), top+uint32(f[2]))
	}
	g.addGroup(0, len(g.Indices), 0)

	sideStart := len(g.Indices)
	side := uint32(g.VertexCount())
	for li, l := range layers {
		v := float32(li) / float32(len(layers)-1)
		for i, p := range ring(l) {
			g.vertex(p, math32.Vector3{}, math32.Vec2(float32(i)/float32(n), v))
		}
	}
	for i := n - 1; i >= 0; i-- {
		j, k := i, i-1
		if k < 0 {
			k = n - 1
		}
		for s := 0; s < len(layers)-1; s++ {
			s1, s2 := uint32(n*s), uint32(n*(s+1))
			g.quad(side+uint32(j)+s1, side+uint32(k)+s1, side+uint32(k)+s2, side+uint32(j)+s2)
		}
	}
	g.addGroup(sideStart, len(g.Indices)-sideStart, 1)

	smoothSides(g, int(side), sideStart)
	return g
}

// smoothSides averages face normals over the side-wall vertices only, leaving the
// cap normals untouched.
func smoothSides(g *Geometry, firstVertex, firstIndex int) {
	for k := firstIndex; k+2 < len(g.Indices); k += 3 {
		a, b, c := g.Indices[k], g.Indices[k+1], g.Indices[k+2]
		pa, pb, pc := g.Positions[a], g.Positions[b], g.Positions[c]
		nrm := pc.Sub(pb).Cross(pa.Sub(pb))
		g.Normals[a] = g.Normals[a].Add(nrm)
		g.Normals[b] = g.Normals[b].Add(nrm)
		g.Normals[c] = g.Normals[c].Add(nrm)
	}
	for i := firstVertex; i < len(g.Normals); i++ {
		g.Normals[i] = normalize(g.Normals[i])
	}
}

// bevelVector returns the direction a contour point moves as the outline grows, scaled so
// that moving by 1 along it offsets both adjacent edges by 1 (a miter), capped at sqrt(2)
// for sharp corners.
func bevelVector(pt, prev, next math32.Vector2) math32.Vector2 {
	px, py := pt.X-prev.X, pt.Y-prev.Y
	nx, ny := next.X-pt.X, next.Y-pt.Y
	prevLenSq := px*px + py*py

	var tx, ty, shrink float32
	collinear := px*ny - py*nx
	if math32.Abs(collinear) > pointEpsilon*pointEpsilon {
		prevLen := math32.Sqrt(prevLenSq)
		nextLen := math32.Sqrt(nx*nx + ny*ny)

		prevShiftX := prev.X - py/prevLen
		prevShiftY := prev.Y + px/prevLen
		nextShiftX := next.X - ny/nextLen
		nextShiftY := next.Y + nx/nextLen

		sf := ((nextShiftX-prevShiftX)*ny - (nextShiftY-prevShiftY)*nx) / (px*ny - py*nx)
		tx = prevShiftX + px*sf - pt.X
		ty = prevShiftY + py*sf - pt.Y

		lenSq := tx*tx + ty*ty
		if lenSq <= 2 {
			return math32.Vec2(tx, ty)
		}
		shrink = math32.Sqrt(lenSq / 2)
	} else {
		sameDir := false
		switch {
		case px > pointEpsilon:
			sameDir = nx > pointEpsilon
		case px < -pointEpsilon:
			sameDir = nx < -pointEpsilon
		default:
			sameDir = math32.Sign(py) == math32.Sign(ny)
		}
		if sameDir {
			tx, ty = -py, px
			shrink = math32.Sqrt(prevLenSq)
		} else {
			tx, ty = px, py
			shrink = math32.Sqrt(prevLenSq / 2)
		}
	}
	if shrink == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(tx/shrink, ty/shrink)
}
