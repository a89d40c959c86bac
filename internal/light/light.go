// Package light builds scene lights from a kind tag and an options record.
// Lights are plain values; nothing here touches a scene or the GPU.
package light

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/core/math32"

	"viz-tiles/internal/logger"
	"viz-tiles/internal/paint"
)

// ErrUnknownKind is returned by ParseKind for tags outside the supported set.
var ErrUnknownKind = errors.New("unknown light type")

// Kind selects the light model. The zero value is not a valid kind.
type Kind int

const (
	Point Kind = iota + 1
	Ambient
	Directional
	Spot
	Hemisphere
	RectArea
)

var kindNames = map[Kind]string{
	Point:       "PointLight",
	Ambient:     "AmbientLight",
	Directional: "DirectionalLight",
	Spot:        "SpotLight",
	Hemisphere:  "HemisphereLight",
	RectArea:    "RectAreaLight",
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Point, Ambient, Directional, Spot, Hemisphere, RectArea}
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "PointLight" style names and short ones ("point", "rectarea", "rect-area").
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	norm = strings.TrimSuffix(norm, "light")
	for k, n := range kindNames {
		if strings.TrimSuffix(strings.ToLower(n), "light") == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("light: %q: %w", name, ErrUnknownKind)
}

// Options is the construction record. Every field is independently defaulted by DefaultOptions;
// decode scene files onto DefaultOptions() so absent fields keep their defaults.
type Options struct {
	Color       paint.Color `yaml:"color"`
	Intensity   float32     `yaml:"intensity"`
	Distance    float32     `yaml:"distance"`
	Decay       float32     `yaml:"decay"`
	Position    [3]float32  `yaml:"position"`
	Target      *[3]float32 `yaml:"target,omitempty"`
	Angle       float32     `yaml:"angle"`
	Penumbra    float32     `yaml:"penumbra"`
	Width       float32     `yaml:"width"`
	Height      float32     `yaml:"height"`
	GroundColor paint.Color `yaml:"groundColor"`
}

// DefaultOptions returns white, intensity 1, distance 0, decay 1, at the origin, no target,
// a 60° cone, no penumbra, a 10×10 area and a white ground color.
func DefaultOptions() Options {
	return Options{
		Color:       paint.White,
		Intensity:   1,
		Distance:    0,
		Decay:       1,
		Angle:       math32.Pi / 3,
		Penumbra:    0,
		Width:       10,
		Height:      10,
		GroundColor: paint.White,
	}
}

// Light is implemented by every light type; AsBase exposes the shared fields.
type Light interface {
	AsBase() *Base
	Kind() Kind
}

// Base holds what every light has.
type Base struct {
	Color     paint.Color
	Intensity float32
	Position  math32.Vector3
}

func (b *Base) AsBase() *Base { return b }

// PointLight is omnidirectional with distance falloff. Distance 0 means no cutoff.
type PointLight struct {
	Base
	Distance float32
	Decay    float32
}

func (*PointLight) Kind() Kind { return Point }

// AmbientLight lights everything uniformly; its position has no effect on shading.
type AmbientLight struct {
	Base
}

func (*AmbientLight) Kind() Kind { return Ambient }

// DirectionalLight shines from Position toward Target with no falloff.
type DirectionalLight struct {
	Base
	Target math32.Vector3
}

func (*DirectionalLight) Kind() Kind { return Directional }

// Direction is the normalized Target - Position vector.
func (l *DirectionalLight) Direction() math32.Vector3 {
	return direction(l.Position, l.Target)
}

// SpotLight is a cone from Position toward Target. Angle is the half-angle in radians.
type SpotLight struct {
	Base
	Distance float32
	Angle    float32
	Penumbra float32
	Decay    float32
	Target   math32.Vector3
}

func (*SpotLight) Kind() Kind { return Spot }

// Direction is the normalized Target - Position vector.
func (l *SpotLight) Direction() math32.Vector3 {
	return direction(l.Position, l.Target)
}

// HemisphereLight blends Color (sky) and GroundColor by surface orientation.
type HemisphereLight struct {
	Base
	GroundColor paint.Color
}

func (*HemisphereLight) Kind() Kind { return Hemisphere }

// RectAreaLight emits from a Width × Height rectangle.
type RectAreaLight struct {
	Base
	Width  float32
	Height float32
}

func (*RectAreaLight) Kind() Kind { return RectArea }

func direction(from, to math32.Vector3) math32.Vector3 {
	d := to.Sub(from)
	if d.Length() == 0 {
		return math32.Vec3(0, -1, 0)
	}
	return d.Normal()
}

// Create parses name and builds the light. An unknown name emits one warning and returns nil;
// callers must treat nil as "nothing to add".
func Create(name string, opts Options, w logger.Warner) Light {
	k, err := ParseKind(name)
	if err != nil {
		logger.Warnf(w, "unknown light type: %s", name)
		return nil
	}
	return New(k, opts, w)
}

// New builds a light of kind k with only the parameters that kind accepts.
// Position is applied after construction; Directional and Spot lights also take opts.Target
// as their aim-point when it is set. An unknown kind emits one warning and returns nil.
func New(k Kind, opts Options, w logger.Warner) Light {
	var lt Light
	switch k {
	case Point:
		lt = &PointLight{Base: base(opts), Distance: opts.Distance, Decay: opts.Decay}
	case Ambient:
		lt = &AmbientLight{Base: base(opts)}
	case Directional:
		lt = &DirectionalLight{Base: base(opts)}
	case Spot:
		lt = &SpotLight{Base: base(opts), Distance: opts.Distance, Angle: opts.Angle, Penumbra: opts.Penumbra, Decay: opts.Decay}
	case Hemisphere:
		lt = &HemisphereLight{Base: base(opts), GroundColor: opts.GroundColor}
	case RectArea:
		lt = &RectAreaLight{Base: base(opts), Width: opts.Width, Height: opts.Height}
	default:
		logger.Warnf(w, "unknown light type: %s", k)
		return nil
	}

	lt.AsBase().Position = vec(opts.Position)

	if opts.Target != nil {
		switch l := lt.(type) {
		case *DirectionalLight:
			l.Target = vec(*opts.Target)
		case *SpotLight:
			l.Target = vec(*opts.Target)
		}
	}
	return lt
}

func base(opts Options) Base {
	return Base{Color: opts.Color, Intensity: opts.Intensity}
}

func vec(p [3]float32) math32.Vector3 {
	return math32.Vec3(p[0], p[1], p[2])
}

// Count returns how many lights in ls are of kind k. Nil entries are skipped.
func Count(ls []Light, k Kind) int {
	n := 0
	for _, l := range ls {
		if l != nil && l.Kind() == k {
			n++
		}
	}
	return n
}
