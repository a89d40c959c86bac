package geometry

import "cogentcore.org/core/math32"

// CylinderOptions is shared by Cylinder and Cone.
type CylinderOptions struct {
	RadialSegments int     `yaml:"radialSegments"`
	HeightSegments int     `yaml:"heightSegments"`
	OpenEnded      bool    `yaml:"openEnded"`
	ThetaStart     float32 `yaml:"thetaStart"`
	ThetaLength    float32 `yaml:"thetaLength"`
}

// DefaultCylinderOptions returns a closed cylinder of 32 radial segments and one height segment.
func DefaultCylinderOptions() CylinderOptions {
	return CylinderOptions{RadialSegments: 32, HeightSegments: 1, ThetaLength: 2 * math32.Pi}
}

// Cylinder builds a (possibly tapered) cylinder along y, centered on the origin.
// Groups: 0 the side, 1 the top cap, 2 the bottom cap; a cap is skipped when its radius
// is not positive or the cylinder is open-ended.
func Cylinder(radiusTop, radiusBottom, height float32, opts CylinderOptions) *Geometry {
	return cylinder(KindCylinder, radiusTop, radiusBottom, height, opts)
}

// Cone is a Cylinder with a zero top radius.
func Cone(radius, height float32, opts CylinderOptions) *Geometry {
	return cylinder(KindCone, 0, radius, height, opts)
}

func cylinder(kind Kind, radiusTop, radiusBottom, height float32, opts CylinderOptions) *Geometry {
	rs := atLeast(orDefaultInt(opts.RadialSegments, 32), 1)
	hs := atLeast(orDefaultInt(opts.HeightSegments, 1), 1)
	thetaLength := orDefault(opts.ThetaLength, 2*math32.Pi)
	halfHeight := height / 2

	g := newGeometry(kind, (rs+1)*(hs+1)+2*(2*rs+1))

	// side
	slope := float32(0)
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}
	rows := make([][]uint32, hs+1)
	for y := 0; y <= hs; y++ {
		v := float32(y) / float32(hs)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		row := make([]uint32, rs+1)
		for x := 0; x <= rs; x++ {
			u := float32(x) / float32(rs)
			theta := u*thetaLength + opts.ThetaStart
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			p := math32.Vec3(radius*sin, -v*height+halfHeight, radius*cos)
			row[x] = g.vertex(p, normalize(math32.Vec3(sin, slope, cos)), math32.Vec2(u, 1-v))
		}
		rows[y] = row
	}
	for x := 0; x < rs; x++ {
		for y := 0; y < hs; y++ {
			a, b := rows[y][x], rows[y+1][x]
			c, d := rows[y+1][x+1], rows[y][x+1]
			if radiusTop > 0 || y != 0 {
				g.triangle(a, b, d)
			}
			if radiusBottom > 0 || y != hs-1 {
				g.triangle(b, c, d)
			}
		}
	}
	g.addGroup(0, len(g.Indices), 0)

	if !opts.OpenEnded {
		if radiusTop > 0 {
			cylinderCap(g, true, radiusTop, halfHeight, rs, opts.ThetaStart, thetaLength)
		}
		if radiusBottom > 0 {
			cylinderCap(g, false, radiusBottom, halfHeight, rs, opts.ThetaStart, thetaLength)
		}
	}
	return g
}

func cylinderCap(g *Geometry, top bool, radius, halfHeight float32, rs int, thetaStart, thetaLength float32) {
	start := len(g.Indices)
	sign := float32(-1)
	materialIndex := 2
	if top {
		sign = 1
		materialIndex = 1
	}
	n := math32.Vec3(0, sign, 0)

	centers := uint32(g.VertexCount())
	for x := 1; x <= rs; x++ {
		g.vertex(math32.Vec3(0, halfHeight*sign, 0), n, math32.Vec2(0.5, 0.5))
	}
	rim := uint32(g.VertexCount())
	for x := 0; x <= rs; x++ {
		u := float32(x) / float32(rs)
		theta := u*thetaLength + thetaStart
		sin, cos := math32.Sin(theta), math32.Cos(theta)
		g.vertex(math32.Vec3(radius*sin, halfHeight*sign, radius*cos), n,
			math32.Vec2(cos*0.5+0.5, sin*0.5*sign+0.5))
	}
	for x := 0; x < rs; x++ {
		c := centers + uint32(x)
		i := rim + uint32(x)
		if top {
			g.triangle(i, i+1, c)
		} else {
			g.triangle(i+1, i, c)
		}
	}
	g.addGroup(start, len(g.Indices)-start, materialIndex)
}
