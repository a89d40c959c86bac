package geometry

import "cogentcore.org/core/math32"

const pointEpsilon = 1e-6

// segment is one piece of a 2-D path.
type segment interface {
	at(t float32) math32.Vector2
	// resolution is how many pieces the segment is cut into for a given curve detail.
	resolution(divisions int) int
}

type lineSegment struct{ a, b math32.Vector2 }

func (s lineSegment) at(t float32) math32.Vector2 {
	return s.a.Add(s.b.Sub(s.a).MulScalar(t))
}

func (lineSegment) resolution(int) int { return 1 }

type quadSegment struct{ a, ctrl, b math32.Vector2 }

func (s quadSegment) at(t float32) math32.Vector2 {
	k := 1 - t
	return s.a.MulScalar(k * k).Add(s.ctrl.MulScalar(2 * k * t)).Add(s.b.MulScalar(t * t))
}

func (quadSegment) resolution(divisions int) int { return divisions }

// Shape is a 2-D path made of straight and quadratic segments, used as an extrusion outline.
type Shape struct {
	start    math32.Vector2
	cur      math32.Vector2
	segments []segment
}

// NewShape returns an empty path starting at the origin.
func NewShape() *Shape { return &Shape{} }

// MoveTo sets the start of the path. It must be called before any segment is added.
func (s *Shape) MoveTo(x, y float32) *Shape {
	s.start = math32.Vec2(x, y)
	s.cur = s.start
	return s
}

// LineTo adds a straight segment from the current point to (x, y).
func (s *Shape) LineTo(x, y float32) *Shape {
	p := math32.Vec2(x, y)
	s.segments = append(s.segments, lineSegment{a: s.cur, b: p})
	s.cur = p
	return s
}

// QuadraticCurveTo adds a quadratic Bezier to (x, y) with control point (cx, cy).
func (s *Shape) QuadraticCurveTo(cx, cy, x, y float32) *Shape {
	p := math32.Vec2(x, y)
	s.segments = append(s.segments, quadSegment{a: s.cur, ctrl: math32.Vec2(cx, cy), b: p})
	s.cur = p
	return s
}

// SegmentCount returns how many segments were added after MoveTo.
func (s *Shape) SegmentCount() int { return len(s.segments) }

// Closed reports whether the path ends where it started.
func (s *Shape) Closed() bool {
	return len(s.segments) > 0 && samePoint(s.cur, s.start)
}

// Points samples the path with the given number of divisions per curved segment.
// Consecutive duplicates are dropped and the start point is appended when the path
// does not already return to it.
func (s *Shape) Points(divisions int) []math32.Vector2 {
	divisions = atLeast(divisions, 1)
	pts := []math32.Vector2{s.start}
	for _, seg := range s.segments {
		n := seg.resolution(divisions)
		for j := 0; j <= n; j++ {
			p := seg.at(float32(j) / float32(n))
			if samePoint(p, pts[len(pts)-1]) {
				continue
			}
			pts = append(pts, p)
		}
	}
	if len(pts) > 1 && !samePoint(pts[len(pts)-1], pts[0]) {
		pts = append(pts, pts[0])
	}
	return pts
}

// Contour is Points without the repeated closing point.
func (s *Shape) Contour(divisions int) []math32.Vector2 {
	pts := s.Points(divisions)
	if len(pts) > 1 && samePoint(pts[len(pts)-1], pts[0]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func samePoint(a, b math32.Vector2) bool {
	return math32.Abs(a.X-b.X) <= pointEpsilon && math32.Abs(a.Y-b.Y) <= pointEpsilon
}

// Area returns the signed area of a closed contour; positive when counter-clockwise.
func Area(contour []math32.Vector2) float32 {
	n := len(contour)
	var a float32
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += contour[p].X*contour[q].Y - contour[q].X*contour[p].Y
	}
	return a / 2
}

// IsClockwise reports whether a contour winds clockwise.
func IsClockwise(contour []math32.Vector2) bool {
	return Area(contour) < 0
}

// Triangulate splits a simple polygon into triangles by ear clipping. Each triangle holds
// indices into contour and winds counter-clockwise whatever the contour's own winding.
// Degenerate input yields as many triangles as could be clipped.
func Triangulate(contour []math32.Vector2) [][3]int {
	n := len(contour)
	if n < 3 {
		return nil
	}
	verts := make([]int, n)
	if Area(contour) > 0 {
		for i := range verts {
			verts[i] = i
		}
	} else {
		for i := range verts {
			verts[i] = n - 1 - i
		}
	}

	tris := make([][3]int, 0, n-2)
	nv := n
	count := 2 * nv
	for v := nv - 1; nv > 2; {
		if count <= 0 {
			return tris
		}
		count--

		u := v
		if nv <= u {
			u = 0
		}
		v = u + 1
		if nv <= v {
			v = 0
		}
		w := v + 1
		if nv <= w {
			w = 0
		}

		if isEar(contour, verts[:nv], u, v, w) {
			tris = append(tris, [3]int{verts[u], verts[v], verts[w]})
			copy(verts[v:], verts[v+1:nv])
			nv--
			count = 2 * nv
		}
	}
	return tris
}

func isEar(contour []math32.Vector2, verts []int, u, v, w int) bool {
	a, b, c := contour[verts[u]], contour[verts[v]], contour[verts[w]]
	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) <= pointEpsilon*pointEpsilon {
		return false
	}
	for p := range verts {
		if p == u || p == v || p == w {
			continue
		}
		if insideTriangle(a, b, c, contour[verts[p]]) {
			return false
		}
	}
	return true
}

func insideTriangle(a, b, c, p math32.Vector2) bool {
	cross := func(o, e, q math32.Vector2) float32 {
		return (e.X-o.X)*(q.Y-o.Y) - (e.Y-o.Y)*(q.X-o.X)
	}
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}
