package geometry

import "cogentcore.org/core/math32"

// BoxOptions sets the number of segments along each axis. Zero fields take the default of 1.
type BoxOptions struct {
	WidthSegments  int `yaml:"widthSegments"`
	HeightSegments int `yaml:"heightSegments"`
	DepthSegments  int `yaml:"depthSegments"`
}

// DefaultBoxOptions returns one segment along each axis.
func DefaultBoxOptions() BoxOptions {
	return BoxOptions{WidthSegments: 1, HeightSegments: 1, DepthSegments: 1}
}

// Box builds an axis-aligned box centered on the origin, one group per face in the
// order +x, -x, +y, -y, +z, -z.
func Box(width, height, depth float32, opts BoxOptions) *Geometry {
	ws := atLeast(orDefaultInt(opts.WidthSegments, 1), 1)
	hs := atLeast(orDefaultInt(opts.HeightSegments, 1), 1)
	ds := atLeast(orDefaultInt(opts.DepthSegments, 1), 1)

	g := newGeometry(KindBox, 2*((ws+1)*(hs+1)+(ws+1)*(ds+1)+(hs+1)*(ds+1)))
	b := boxBuilder{g: g}
	b.plane(2, 1, 0, -1, -1, depth, height, width, ds, hs, 0)
	b.plane(2, 1, 0, 1, -1, depth, height, -width, ds, hs, 1)
	b.plane(0, 2, 1, 1, 1, width, depth, height, ws, ds, 2)
	b.plane(0, 2, 1, 1, -1, width, depth, -height, ws, ds, 3)
	b.plane(0, 1, 2, 1, -1, width, height, depth, ws, hs, 4)
	b.plane(0, 1, 2, -1, -1, width, height, -depth, ws, hs, 5)
	return g
}

type boxBuilder struct {
	g          *Geometry
	groupStart int
}

// plane adds one face. u, v and w are axis indices (0=x, 1=y, 2=z); the face lies at
// w = depth/2 and spans width along u and height along v.
func (b *boxBuilder) plane(u, v, w int, udir, vdir, width, height, depth float32, gridX, gridY, materialIndex int) {
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	halfW, halfH, halfD := width/2, height/2, depth/2
	gridX1 := gridX + 1

	nsign := float32(1)
	if depth <= 0 {
		nsign = -1
	}

	base := uint32(b.g.VertexCount())
	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - halfW
			var p, n math32.Vector3
			setAxis(&p, u, x*udir)
			setAxis(&p, v, y*vdir)
			setAxis(&p, w, halfD)
			setAxis(&n, w, nsign)
			b.g.vertex(p, n, math32.Vec2(float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY)))
		}
	}

	count := 0
	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := base + uint32(ix+gridX1*iy)
			bb := base + uint32(ix+gridX1*(iy+1))
			c := base + uint32(ix+1+gridX1*(iy+1))
			d := base + uint32(ix+1+gridX1*iy)
			b.g.quad(a, bb, c, d)
			count += 6
		}
	}
	b.g.addGroup(b.groupStart, count, materialIndex)
	b.groupStart += count
}

func setAxis(p *math32.Vector3, axis int, val float32) {
	switch axis {
	case 0:
		p.X = val
	case 1:
		p.Y = val
	default:
		p.Z = val
	}
}
