package geometry

import "cogentcore.org/core/math32"

type PlaneOptions struct {
	WidthSegments  int `yaml:"widthSegments"`
	HeightSegments int `yaml:"heightSegments"`
}

// DefaultPlaneOptions returns a single quad.
func DefaultPlaneOptions() PlaneOptions {
	return PlaneOptions{WidthSegments: 1, HeightSegments: 1}
}

// Plane builds a width x height rectangle in the xy plane facing +z.
func Plane(width, height float32, opts PlaneOptions) *Geometry {
	gridX := atLeast(orDefaultInt(opts.WidthSegments, 1), 1)
	gridY := atLeast(orDefaultInt(opts.HeightSegments, 1), 1)
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	gridX1 := gridX + 1

	g := newGeometry(KindPlane, (gridX+1)*(gridY+1))
	n := math32.Vec3(0, 0, 1)
	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - width/2
			g.vertex(math32.Vec3(x, -y, 0), n,
				math32.Vec2(float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY)))
		}
	}
	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			g.quad(a, b, c, d)
		}
	}
	return g
}

type CircleOptions struct {
	Segments    int     `yaml:"segments"`
	ThetaStart  float32 `yaml:"thetaStart"`
	ThetaLength float32 `yaml:"thetaLength"`
}

// DefaultCircleOptions returns a full disc of 32 segments.
func DefaultCircleOptions() CircleOptions {
	return CircleOptions{Segments: 32, ThetaLength: 2 * math32.Pi}
}

// Circle builds a disc (or sector) in the xy plane as a fan around a center vertex.
func Circle(radius float32, opts CircleOptions) *Geometry {
	segments := atLeast(orDefaultInt(opts.Segments, 32), 3)
	thetaLength := orDefault(opts.ThetaLength, 2*math32.Pi)

	g := newGeometry(KindCircle, segments+2)
	n := math32.Vec3(0, 0, 1)
	g.vertex(math32.Vector3{}, n, math32.Vec2(0.5, 0.5))
	for s := 0; s <= segments; s++ {
		theta := opts.ThetaStart + float32(s)/float32(segments)*thetaLength
		x, y := radius*math32.Cos(theta), radius*math32.Sin(theta)
		g.vertex(math32.Vec3(x, y, 0), n, discUV(x, y, radius))
	}
	for i := uint32(1); i <= uint32(segments); i++ {
		g.triangle(i, i+1, 0)
	}
	return g
}

type RingOptions struct {
	ThetaSegments int     `yaml:"thetaSegments"`
	PhiSegments   int     `yaml:"phiSegments"`
	ThetaStart    float32 `yaml:"thetaStart"`
	ThetaLength   float32 `yaml:"thetaLength"`
}

// DefaultRingOptions returns a full ring of 32 theta segments and one phi segment.
func DefaultRingOptions() RingOptions {
	return RingOptions{ThetaSegments: 32, PhiSegments: 1, ThetaLength: 2 * math32.Pi}
}

// Ring builds an annulus between innerRadius and outerRadius in the xy plane.
func Ring(innerRadius, outerRadius float32, opts RingOptions) *Geometry {
	thetaSegs := atLeast(orDefaultInt(opts.ThetaSegments, 32), 3)
	phiSegs := atLeast(orDefaultInt(opts.PhiSegments, 1), 1)
	thetaLength := orDefault(opts.ThetaLength, 2*math32.Pi)

	g := newGeometry(KindRing, (thetaSegs+1)*(phiSegs+1))
	n := math32.Vec3(0, 0, 1)
	step := (outerRadius - innerRadius) / float32(phiSegs)
	radius := innerRadius
	for j := 0; j <= phiSegs; j++ {
		for i := 0; i <= thetaSegs; i++ {
			theta := opts.ThetaStart + float32(i)/float32(thetaSegs)*thetaLength
			x, y := radius*math32.Cos(theta), radius*math32.Sin(theta)
			g.vertex(math32.Vec3(x, y, 0), n, discUV(x, y, outerRadius))
		}
		radius += step
	}
	for j := 0; j < phiSegs; j++ {
		level := j * (thetaSegs + 1)
		for i := 0; i < thetaSegs; i++ {
			s := uint32(i + level)
			g.quad(s, s+uint32(thetaSegs)+1, s+uint32(thetaSegs)+2, s+1)
		}
	}
	return g
}

func discUV(x, y, radius float32) math32.Vector2 {
	if radius == 0 {
		return math32.Vec2(0.5, 0.5)
	}
	return math32.Vec2((x/radius+1)/2, (y/radius+1)/2)
}
