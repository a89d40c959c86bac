package geometry

import "cogentcore.org/core/math32"

// SphereOptions sets the tessellation and sweep of a sphere. Zero segment counts and zero
// sweep lengths take the defaults; PhiStart and ThetaStart default to 0.
type SphereOptions struct {
	WidthSegments  int     `yaml:"widthSegments"`
	HeightSegments int     `yaml:"heightSegments"`
	PhiStart       float32 `yaml:"phiStart"`
	PhiLength      float32 `yaml:"phiLength"`
	ThetaStart     float32 `yaml:"thetaStart"`
	ThetaLength    float32 `yaml:"thetaLength"`
}

// DefaultSphereOptions returns a full 32 x 32 sphere.
func DefaultSphereOptions() SphereOptions {
	return SphereOptions{
		WidthSegments:  32,
		HeightSegments: 32,
		PhiLength:      2 * math32.Pi,
		ThetaLength:    math32.Pi,
	}
}

// Sphere builds a UV sphere. Width segments are floored at 3 and height segments at 2.
// Pole rows that collapse to a point emit no degenerate triangles.
func Sphere(radius float32, opts SphereOptions) *Geometry {
	ws := atLeast(orDefaultInt(opts.WidthSegments, 32), 3)
	hs := atLeast(orDefaultInt(opts.HeightSegments, 32), 2)
	phiLength := orDefault(opts.PhiLength, 2*math32.Pi)
	thetaLength := orDefault(opts.ThetaLength, math32.Pi)
	thetaEnd := math32.Min(opts.ThetaStart+thetaLength, math32.Pi)

	g := newGeometry(KindSphere, (ws+1)*(hs+1))
	grid := make([][]uint32, hs+1)
	for iy := 0; iy <= hs; iy++ {
		v := float32(iy) / float32(hs)

		var uOffset float32
		if iy == 0 && opts.ThetaStart == 0 {
			uOffset = 0.5 / float32(ws)
		} else if iy == hs && thetaEnd == math32.Pi {
			uOffset = -0.5 / float32(ws)
		}

		theta := opts.ThetaStart + v*thetaLength
		row := make([]uint32, ws+1)
		for ix := 0; ix <= ws; ix++ {
			u := float32(ix) / float32(ws)
			phi := opts.PhiStart + u*phiLength
			p := math32.Vec3(
				-radius*math32.Cos(phi)*math32.Sin(theta),
				radius*math32.Cos(theta),
				radius*math32.Sin(phi)*math32.Sin(theta),
			)
			row[ix] = g.vertex(p, normalize(p), math32.Vec2(u+uOffset, 1-v))
		}
		grid[iy] = row
	}

	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 || opts.ThetaStart > 0 {
				g.triangle(a, b, d)
			}
			if iy != hs-1 || thetaEnd < math32.Pi {
				g.triangle(b, c, d)
			}
		}
	}
	return g
}
