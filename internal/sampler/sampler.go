// Package sampler draws random points inside a sphere.
//
// The radius is drawn uniformly in its linear value, not in volume, so points
// cluster toward the center: a point is as likely to land within R/2 of the
// center as beyond it. Directions are uniform on the sphere.
package sampler

import (
	"math"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

// SphereOptions configures SphericalPoints. A zero Radius means the default of 1.
type SphereOptions struct {
	Radius float32 `yaml:"radius"`
}

// DefaultSphereOptions returns the unit sphere.
func DefaultSphereOptions() SphereOptions {
	return SphereOptions{Radius: 1}
}

// SphericalPoints returns exactly n points (none for n <= 0). Each point draws, in order,
// U1 for the radius r = U1*R, U2 for the polar angle θ = acos(2*U2-1), and U3 for the
// azimuth φ = U3*2π.
// Optionally can pass a single Rand interface to use;
// otherwise uses the system global Rand source.
func SphericalPoints(n int, opts SphereOptions, randOpt ...randx.Rand) []math32.Vector3 {
	if n <= 0 {
		return []math32.Vector3{}
	}
	var rnd randx.Rand
	if len(randOpt) == 0 {
		rnd = randx.NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	radius := float64(opts.Radius)
	if radius == 0 {
		radius = 1
	}

	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = point(radius, rnd)
	}
	return pts
}

func point(radius float64, rnd randx.Rand) math32.Vector3 {
	r := rnd.Float64() * radius
	theta := math.Acos(2*rnd.Float64() - 1)
	phi := rnd.Float64() * 2 * math.Pi

	sinTheta := math.Sin(theta)
	return math32.Vec3(
		float32(r*sinTheta*math.Cos(phi)),
		float32(r*sinTheta*math.Sin(phi)),
		float32(r*math.Cos(theta)),
	)
}
