package geometry

import "cogentcore.org/core/math32"

// CuboidOptions controls corner rounding. A non-positive BorderRadius gives a plain box.
type CuboidOptions struct {
	BorderRadius float32 `yaml:"borderRadius"`

	// BevelSegments sets how many steps approximate each rounded corner and bevel.
	// Zero means the default of 4.
	BevelSegments int `yaml:"bevelSegments"`
}

// DefaultCuboidOptions returns square corners with 4 bevel segments once a radius is set.
func DefaultCuboidOptions() CuboidOptions {
	return CuboidOptions{BevelSegments: 4}
}

// Cuboid builds a width x height x depth prism. With a positive BorderRadius the outline
// is a rounded rectangle extruded along z, and the extrusion's bevel size and thickness
// both equal the clamped corner radius so the bevel continues the flat rounding.
func Cuboid(width, height, depth float32, opts CuboidOptions) *Geometry {
	if opts.BorderRadius <= 0 {
		return Box(width, height, depth, DefaultBoxOptions())
	}
	r := CornerRadius(width, height, opts.BorderRadius)
	segs := atLeast(orDefaultInt(opts.BevelSegments, 4), 1)

	shape := RoundedRect(-width/2, -height/2, width, height, r)
	return Extrude(shape, ExtrudeOptions{
		Depth:          depth,
		BevelEnabled:   true,
		BevelSegments:  segs,
		Steps:          1,
		BevelSize:      r,
		BevelThickness: r,
		CurveSegments:  segs,
	})
}

// CornerRadius clamps a requested corner radius to half the smaller side, so opposite
// corners never overlap.
func CornerRadius(width, height, borderRadius float32) float32 {
	return math32.Min(borderRadius, math32.Min(width/2, height/2))
}

// RoundedRect returns the closed outline of a rectangle with quarter-round corners:
// four straight edges and four quadratic curves, starting at (x+r, y).
func RoundedRect(x, y, width, height, r float32) *Shape {
	return NewShape().
		MoveTo(x+r, y).
		LineTo(x+width-r, y).
		QuadraticCurveTo(x+width, y, x+width, y+r).
		LineTo(x+width, y+height-r).
		QuadraticCurveTo(x+width, y+height, x+width-r, y+height).
		LineTo(x+r, y+height).
		QuadraticCurveTo(x, y+height, x, y+height-r).
		LineTo(x, y+r).
		QuadraticCurveTo(x, y, x+r, y)
}
