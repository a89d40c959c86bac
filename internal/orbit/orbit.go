// Package orbit moves a camera around its target the way a mouse-driven orbit control does:
// drag to rotate, drag to pan, wheel to dolly. It works on plain camera settings so the host
// only feeds it mouse deltas.
package orbit

import (
	"cogentcore.org/core/math32"
	fm "github.com/chewxy/math32"

	"viz-tiles/internal/scenegraph"
)

// polarEps keeps the camera off the poles, where the up vector flips.
const polarEps = 1e-6

// Controls holds the enable flags and speeds. The zero value does nothing; use New.
type Controls struct {
	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	MinDistance float32
	MaxDistance float32
	// MinPolar and MaxPolar bound the angle from +Y, in radians.
	MinPolar float32
	MaxPolar float32
}

// New returns controls with rotate, zoom and pan on, unit speeds and no distance limit.
func New() *Controls {
	return &Controls{
		EnableRotate: true,
		EnableZoom:   true,
		EnablePan:    true,
		RotateSpeed:  1,
		ZoomSpeed:    1,
		PanSpeed:     1,
		MaxDistance:  fm.Inf(1),
		MaxPolar:     fm.Pi,
	}
}

// spherical is the camera offset from the target: radius, polar angle from +Y, azimuth about +Y from +Z.
type spherical struct {
	radius, phi, theta float32
}

func toSpherical(v math32.Vector3) spherical {
	r := fm.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if r == 0 {
		return spherical{}
	}
	cos := v.Y / r
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return spherical{radius: r, phi: fm.Acos(cos), theta: fm.Atan2(v.X, v.Z)}
}

func (s spherical) vector() math32.Vector3 {
	sinPhi := fm.Sin(s.phi)
	return math32.Vec3(s.radius*sinPhi*fm.Sin(s.theta), s.radius*fm.Cos(s.phi), s.radius*sinPhi*fm.Cos(s.theta))
}

func (c *Controls) apply(cam *scenegraph.CameraSettings, s spherical) {
	s.phi = clamp(s.phi, fm.Max(c.MinPolar, polarEps), fm.Min(c.MaxPolar, fm.Pi-polarEps))
	s.radius = clamp(s.radius, c.MinDistance, c.MaxDistance)
	cam.Position = cam.Target.Add(s.vector())
}

func clamp(v, lo, hi float32) float32 {
	return fm.Max(lo, fm.Min(hi, v))
}

// Rotate turns the camera about the target for a drag of (dx, dy) pixels in a viewport
// height pixels tall. A full-height drag is one full turn.
func (c *Controls) Rotate(cam *scenegraph.CameraSettings, dx, dy, height float32) {
	if !c.EnableRotate || height <= 0 {
		return
	}
	s := toSpherical(cam.Position.Sub(cam.Target))
	if s.radius == 0 {
		return
	}
	s.theta -= 2 * fm.Pi * dx / height * c.RotateSpeed
	s.phi -= 2 * fm.Pi * dy / height * c.RotateSpeed
	c.apply(cam, s)
}

// Zoom dollies toward the target for wheel > 0 and away for wheel < 0, by 0.95^ZoomSpeed per notch.
func (c *Controls) Zoom(cam *scenegraph.CameraSettings, wheel float32) {
	if !c.EnableZoom || wheel == 0 {
		return
	}
	s := toSpherical(cam.Position.Sub(cam.Target))
	if s.radius == 0 {
		return
	}
	s.radius *= fm.Pow(fm.Pow(0.95, c.ZoomSpeed), wheel)
	c.apply(cam, s)
}

// Pan slides both camera and target in the view plane so the point under the cursor follows
// a drag of (dx, dy) pixels.
func (c *Controls) Pan(cam *scenegraph.CameraSettings, dx, dy, height float32) {
	if !c.EnablePan || height <= 0 {
		return
	}
	offset := cam.Position.Sub(cam.Target)
	dist := offset.Length() * fm.Tan(cam.Fovy/2*fm.Pi/180)
	right, up := Basis(*cam)

	left := right.MulScalar(-2 * dx * dist / height * c.PanSpeed)
	upward := up.MulScalar(2 * dy * dist / height * c.PanSpeed)
	move := left.Add(upward)
	cam.Position = cam.Position.Add(move)
	cam.Target = cam.Target.Add(move)
}

// Basis returns the camera's right and up unit vectors for a +Y-up world.
func Basis(cam scenegraph.CameraSettings) (right, up math32.Vector3) {
	fwd := cam.Target.Sub(cam.Position)
	if fwd.Length() == 0 {
		return math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)
	}
	fwd = fwd.Normal()
	right = fwd.Cross(math32.Vec3(0, 1, 0))
	if right.Length() < 1e-6 {
		right = math32.Vec3(1, 0, 0)
	}
	right = right.Normal()
	return right, right.Cross(fwd).Normal()
}
