package geometry

import "cogentcore.org/core/math32"

// Curve is a 3-D path parameterised over t in [0, 1]. The parameter need not be
// proportional to arc length; see PointAt.
type Curve interface {
	Point(t float32) math32.Vector3
}

// arcLengthDivisions is how finely curves are sampled for arc-length lookups.
const arcLengthDivisions = 200

// Lengths returns the cumulative chord lengths of the curve sampled at divisions+1 points.
func Lengths(c Curve, divisions int) []float32 {
	divisions = atLeast(divisions, 1)
	out := make([]float32, divisions+1)
	last := c.Point(0)
	for i := 1; i <= divisions; i++ {
		p := c.Point(float32(i) / float32(divisions))
		out[i] = out[i-1] + math32.Sqrt(distSq(p, last))
		last = p
	}
	return out
}

// Length is the approximate arc length of the curve.
func Length(c Curve) float32 {
	l := Lengths(c, arcLengthDivisions)
	return l[len(l)-1]
}

// UToT maps a fraction u of the arc length to the curve parameter t.
func UToT(c Curve, u float32) float32 {
	lengths := Lengths(c, arcLengthDivisions)
	n := len(lengths)
	target := u * lengths[n-1]

	lo, hi := 0, n-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch d := lengths[mid] - target; {
		case d < 0:
			lo = mid + 1
		case d > 0:
			hi = mid - 1
		default:
			return float32(mid) / float32(n-1)
		}
	}
	i := hi
	if i < 0 {
		return 0
	}
	if lengths[i] == target || i+1 >= n || lengths[i+1] == lengths[i] {
		return float32(i) / float32(n-1)
	}
	before, after := lengths[i], lengths[i+1]
	frac := (target - before) / (after - before)
	return (float32(i) + frac) / float32(n-1)
}

// PointAt returns the point a fraction u of the way along the curve by arc length.
func PointAt(c Curve, u float32) math32.Vector3 {
	if l, ok := c.(LineCurve3); ok {
		return l.Point(u)
	}
	return c.Point(UToT(c, u))
}

// Tangent returns the unit tangent at parameter t, by central difference.
func Tangent(c Curve, t float32) math32.Vector3 {
	if l, ok := c.(LineCurve3); ok {
		return normalize(l.B.Sub(l.A))
	}
	const delta = 0.0001
	t1 := math32.Max(t-delta, 0)
	t2 := math32.Min(t+delta, 1)
	return normalize(c.Point(t2).Sub(c.Point(t1)))
}

// TangentAt is Tangent at arc-length fraction u.
func TangentAt(c Curve, u float32) math32.Vector3 {
	if _, ok := c.(LineCurve3); ok {
		return Tangent(c, u)
	}
	return Tangent(c, UToT(c, u))
}

// LineCurve3 is a straight segment from A to B.
type LineCurve3 struct {
	A, B math32.Vector3
}

func (l LineCurve3) Point(t float32) math32.Vector3 {
	if t == 1 {
		return l.B
	}
	return lerp3(l.A, l.B, t)
}

// QuadraticBezierCurve3 has one control point.
type QuadraticBezierCurve3 struct {
	V0, V1, V2 math32.Vector3
}

func (q QuadraticBezierCurve3) Point(t float32) math32.Vector3 {
	k := 1 - t
	return q.V0.MulScalar(k * k).Add(q.V1.MulScalar(2 * k * t)).Add(q.V2.MulScalar(t * t))
}

// CubicBezierCurve3 has two control points.
type CubicBezierCurve3 struct {
	V0, V1, V2, V3 math32.Vector3
}

func (c CubicBezierCurve3) Point(t float32) math32.Vector3 {
	k := 1 - t
	return c.V0.MulScalar(k * k * k).
		Add(c.V1.MulScalar(3 * k * k * t)).
		Add(c.V2.MulScalar(3 * k * t * t)).
		Add(c.V3.MulScalar(t * t * t))
}

// CatmullRomType selects the knot parameterisation of a CatmullRomCurve3.
type CatmullRomType int

const (
	Centripetal CatmullRomType = iota
	Chordal
	Uniform
)

// CatmullRomCurve3 passes through every point in Points.
type CatmullRomCurve3 struct {
	Points  []math32.Vector3
	Closed  bool
	Type    CatmullRomType
	Tension float32 // used by Uniform only; 0 means 0.5
}

func (c CatmullRomCurve3) Point(t float32) math32.Vector3 {
	pts := c.Points
	l := len(pts)
	switch l {
	case 0:
		return math32.Vector3{}
	case 1:
		return pts[0]
	}

	closedAdj := 1
	if c.Closed {
		closedAdj = 0
	}
	p := float32(l-closedAdj) * t
	idx := int(math32.Floor(p))
	weight := p - float32(idx)

	if c.Closed {
		if idx <= 0 {
			idx += (abs(idx)/l + 1) * l
		}
	} else if weight == 0 && idx == l-1 {
		idx = l - 2
		weight = 1
	}

	var p0, p3 math32.Vector3
	if c.Closed || idx > 0 {
		p0 = pts[(idx-1)%l]
	} else {
		p0 = pts[0].Sub(pts[1]).Add(pts[0])
	}
	p1 := pts[idx%l]
	p2 := pts[(idx+1)%l]
	if c.Closed || idx+2 < l {
		p3 = pts[(idx+2)%l]
	} else {
		p3 = pts[l-1].Sub(pts[l-2]).Add(pts[l-1])
	}

	var px, py, pz cubicPoly
	if c.Type == Uniform {
		tension := orDefault(c.Tension, 0.5)
		px.catmullRom(p0.X, p1.X, p2.X, p3.X, tension)
		py.catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, tension)
		pz.catmullRom(p0.Z, p1.Z, p2.Z, p3.Z, tension)
	} else {
		pow := float32(0.25)
		if c.Type == Chordal {
			pow = 0.5
		}
		dt0 := math32.Pow(distSq(p0, p1), pow)
		dt1 := math32.Pow(distSq(p1, p2), pow)
		dt2 := math32.Pow(distSq(p2, p3), pow)
		if dt1 < 1e-4 {
			dt1 = 1
		}
		if dt0 < 1e-4 {
			dt0 = dt1
		}
		if dt2 < 1e-4 {
			dt2 = dt1
		}
		px.nonuniform(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2)
		py.nonuniform(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2)
		pz.nonuniform(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2)
	}
	return math32.Vec3(px.at(weight), py.at(weight), pz.at(weight))
}

func distSq(a, b math32.Vector3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// cubicPoly is c0 + c1 t + c2 t^2 + c3 t^3 with Hermite end conditions.
type cubicPoly struct{ c0, c1, c2, c3 float32 }

func (p *cubicPoly) hermite(x0, x1, t0, t1 float32) {
	p.c0 = x0
	p.c1 = t0
	p.c2 = -3*x0 + 3*x1 - 2*t0 - t1
	p.c3 = 2*x0 - 2*x1 + t0 + t1
}

func (p *cubicPoly) catmullRom(x0, x1, x2, x3, tension float32) {
	p.hermite(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

func (p *cubicPoly) nonuniform(x0, x1, x2, x3, dt0, dt1, dt2 float32) {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	p.hermite(x1, x2, t1*dt1, t2*dt1)
}

func (p cubicPoly) at(t float32) float32 {
	t2 := t * t
	return p.c0 + p.c1*t + p.c2*t2 + p.c3*t2*t
}

// Frames holds a rotation-minimising frame per sample along a curve.
type Frames struct {
	Tangents  []math32.Vector3
	Normals   []math32.Vector3
	Binormals []math32.Vector3
}

// FrenetFrames samples segments+1 frames at equal arc-length steps. The first normal is
// chosen perpendicular to the tangent's smallest component; later normals are carried
// along by the rotation between successive tangents. For closed curves the accumulated
// twist is spread evenly so the last frame meets the first.
func FrenetFrames(c Curve, segments int, closed bool) Frames {
	segments = atLeast(segments, 1)
	f := Frames{
		Tangents:  make([]math32.Vector3, segments+1),
		Normals:   make([]math32.Vector3, segments+1),
		Binormals: make([]math32.Vector3, segments+1),
	}
	for i := 0; i <= segments; i++ {
		f.Tangents[i] = TangentAt(c, float32(i)/float32(segments))
	}

	t0 := f.Tangents[0]
	smallest := float32(math32.MaxFloat32)
	var normal math32.Vector3
	tx, ty, tz := math32.Abs(t0.X), math32.Abs(t0.Y), math32.Abs(t0.Z)
	if tx <= smallest {
		smallest = tx
		normal = math32.Vec3(1, 0, 0)
	}
	if ty <= smallest {
		smallest = ty
		normal = math32.Vec3(0, 1, 0)
	}
	if tz <= smallest {
		normal = math32.Vec3(0, 0, 1)
	}
	vec := normalize(t0.Cross(normal))
	f.Normals[0] = t0.Cross(vec)
	f.Binormals[0] = t0.Cross(f.Normals[0])

	for i := 1; i <= segments; i++ {
		f.Normals[i] = f.Normals[i-1]
		axis := f.Tangents[i-1].Cross(f.Tangents[i])
		if axis.Length() > pointEpsilon {
			axis = normalize(axis)
			theta := math32.Acos(math32.Clamp(f.Tangents[i-1].Dot(f.Tangents[i]), -1, 1))
			f.Normals[i] = rotateAround(f.Normals[i], axis, theta)
		}
		f.Binormals[i] = f.Tangents[i].Cross(f.Normals[i])
	}

	if closed {
		theta := math32.Acos(math32.Clamp(f.Normals[0].Dot(f.Normals[segments]), -1, 1)) / float32(segments)
		if f.Tangents[0].Dot(f.Normals[0].Cross(f.Normals[segments])) > 0 {
			theta = -theta
		}
		for i := 1; i <= segments; i++ {
			f.Normals[i] = rotateAround(f.Normals[i], f.Tangents[i], theta*float32(i))
			f.Binormals[i] = f.Tangents[i].Cross(f.Normals[i])
		}
	}
	return f
}

// rotateAround rotates v by angle around the unit axis k (Rodrigues' formula).
func rotateAround(v, k math32.Vector3, angle float32) math32.Vector3 {
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	return v.MulScalar(cos).
		Add(k.Cross(v).MulScalar(sin)).
		Add(k.MulScalar(k.Dot(v) * (1 - cos)))
}
