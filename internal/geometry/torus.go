package geometry

import "cogentcore.org/core/math32"

type TorusOptions struct {
	RadialSegments  int     `yaml:"radialSegments"`
	TubularSegments int     `yaml:"tubularSegments"`
	Arc             float32 `yaml:"arc"`
}

// DefaultTorusOptions returns a full torus of 16 radial and 100 tubular segments.
func DefaultTorusOptions() TorusOptions {
	return TorusOptions{RadialSegments: 16, TubularSegments: 100, Arc: 2 * math32.Pi}
}

// Torus builds a ring of the given radius around the z axis with a tube of radius tube.
func Torus(radius, tube float32, opts TorusOptions) *Geometry {
	radial := atLeast(orDefaultInt(opts.RadialSegments, 16), 2)
	tubular := atLeast(orDefaultInt(opts.TubularSegments, 100), 3)
	arc := orDefault(opts.Arc, 2*math32.Pi)

	g := newGeometry(KindTorus, (radial+1)*(tubular+1))
	for j := 0; j <= radial; j++ {
		v := float32(j) / float32(radial) * math32.Pi * 2
		for i := 0; i <= tubular; i++ {
			u := float32(i) / float32(tubular) * arc
			p := math32.Vec3(
				(radius+tube*math32.Cos(v))*math32.Cos(u),
				(radius+tube*math32.Cos(v))*math32.Sin(u),
				tube*math32.Sin(v),
			)
			center := math32.Vec3(radius*math32.Cos(u), radius*math32.Sin(u), 0)
			g.vertex(p, normalize(p.Sub(center)),
				math32.Vec2(float32(i)/float32(tubular), float32(j)/float32(radial)))
		}
	}
	gridIndices(g, 0, radial, tubular)
	return g
}

// gridIndices joins a (rows+1) x (cols+1) vertex grid starting at base with two triangles
// per cell.
func gridIndices(g *Geometry, base uint32, rows, cols int) {
	stride := uint32(cols + 1)
	for j := uint32(1); j <= uint32(rows); j++ {
		for i := uint32(1); i <= uint32(cols); i++ {
			a := base + stride*j + i - 1
			b := base + stride*(j-1) + i - 1
			c := base + stride*(j-1) + i
			d := base + stride*j + i
			g.quad(a, b, c, d)
		}
	}
}
