package geometry

import "cogentcore.org/core/math32"

type TubeOptions struct {
	TubularSegments int     `yaml:"tubularSegments"`
	Radius          float32 `yaml:"radius"`
	RadialSegments  int     `yaml:"radialSegments"`
	Closed          bool    `yaml:"closed"`
}

// DefaultTubeOptions returns 64 tubular segments, 8 radial segments and a radius of 1.
func DefaultTubeOptions() TubeOptions {
	return TubeOptions{TubularSegments: 64, Radius: 1, RadialSegments: 8}
}

// Tube sweeps a circle of opts.Radius along path. Rings are spaced by arc length and
// oriented by the path's Frenet frames; a closed tube reuses the first frame for its
// last ring.
func Tube(path Curve, opts TubeOptions) *Geometry {
	tubular := atLeast(orDefaultInt(opts.TubularSegments, 64), 1)
	radial := atLeast(orDefaultInt(opts.RadialSegments, 8), 3)
	radius := orDefault(opts.Radius, 1)

	frames := FrenetFrames(path, tubular, opts.Closed)
	g := newGeometry(KindTube, (tubular+1)*(radial+1))

	ring := func(i, frame int) {
		p := PointAt(path, float32(i)/float32(tubular))
		n, b := frames.Normals[frame], frames.Binormals[frame]
		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * math32.Pi * 2
			sin, cos := math32.Sin(v), -math32.Cos(v)
			normal := normalize(n.MulScalar(cos).Add(b.MulScalar(sin)))
			g.vertex(p.Add(normal.MulScalar(radius)), normal,
				math32.Vec2(float32(i)/float32(tubular), float32(j)/float32(radial)))
		}
	}
	for i := 0; i < tubular; i++ {
		ring(i, i)
	}
	if opts.Closed {
		ring(0, 0)
		// the closing ring keeps its end-of-path texture coordinate
		for j := 0; j <= radial; j++ {
			g.UVs[tubular*(radial+1)+j].X = 1
		}
	} else {
		ring(tubular, tubular)
	}

	sweepIndices(g, tubular, radial)
	return g
}

// sweepIndices joins consecutive rings of radial+1 vertices into quads.
func sweepIndices(g *Geometry, rings, radial int) {
	stride := uint32(radial + 1)
	for j := uint32(1); j <= uint32(rings); j++ {
		for i := uint32(1); i <= uint32(radial); i++ {
			a := stride*(j-1) + i - 1
			b := stride*j + i - 1
			c := stride*j + i
			d := stride*(j-1) + i
			g.quad(a, b, c, d)
		}
	}
}

type TorusKnotOptions struct {
	TubeRadius      float32 `yaml:"tube"`
	TubularSegments int     `yaml:"tubularSegments"`
	RadialSegments  int     `yaml:"radialSegments"`
	P               int     `yaml:"p"`
	Q               int     `yaml:"q"`
}

// DefaultTorusKnotOptions returns a (2, 3) knot with a 0.4 tube, 64 tubular and 8 radial segments.
func DefaultTorusKnotOptions() TorusKnotOptions {
	return TorusKnotOptions{TubeRadius: 0.4, TubularSegments: 64, RadialSegments: 8, P: 2, Q: 3}
}

// TorusKnot builds a tube around the (P, Q) torus knot of the given radius. P is how many
// times the curve winds around the axis of rotational symmetry, Q around the torus interior.
func TorusKnot(radius float32, opts TorusKnotOptions) *Geometry {
	tube := orDefault(opts.TubeRadius, 0.4)
	tubular := atLeast(orDefaultInt(opts.TubularSegments, 64), 3)
	radial := atLeast(orDefaultInt(opts.RadialSegments, 8), 3)
	p := float32(orDefaultInt(opts.P, 2))
	q := float32(orDefaultInt(opts.Q, 3))

	g := newGeometry(KindTorusKnot, (tubular+1)*(radial+1))
	for i := 0; i <= tubular; i++ {
		u := float32(i) / float32(tubular) * p * math32.Pi * 2
		p1 := knotPoint(u, p, q, radius)
		p2 := knotPoint(u+0.01, p, q, radius)

		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := normalize(t.Cross(n))
		n = normalize(b.Cross(t))

		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * math32.Pi * 2
			cx, cy := -tube*math32.Cos(v), tube*math32.Sin(v)
			pos := p1.Add(n.MulScalar(cx)).Add(b.MulScalar(cy))
			g.vertex(pos, normalize(pos.Sub(p1)),
				math32.Vec2(float32(i)/float32(tubular), float32(j)/float32(radial)))
		}
	}
	sweepIndices(g, tubular, radial)
	return g
}

func knotPoint(u, p, q, radius float32) math32.Vector3 {
	cu, su := math32.Cos(u), math32.Sin(u)
	quOverP := q / p * u
	cs := math32.Cos(quOverP)
	return math32.Vec3(
		radius*(2+cs)*0.5*cu,
		radius*(2+cs)*su*0.5,
		radius*math32.Sin(quOverP)*0.5,
	)
}
