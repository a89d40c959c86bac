// Package material builds shading materials from a color, a list of colors, or a typed descriptor.
package material

import (
	"errors"
	"fmt"
	"strings"

	"viz-tiles/internal/paint"
)

// ErrUnknownType is returned by ParseType for names outside the supported table.
var ErrUnknownType = errors.New("unknown material type")

// Type names a shading model of the material table. The zero value is not a valid type.
type Type int

const (
	Basic Type = iota + 1
	Standard
	Physical
	Lambert
	Phong
	Toon
	Normal
	Depth
	Distance
	Matcap
	Points
	LineBasic
	LineDashed
	Sprite
)

var typeNames = map[Type]string{
	Basic:      "MeshBasicMaterial",
	Standard:   "MeshStandardMaterial",
	Physical:   "MeshPhysicalMaterial",
	Lambert:    "MeshLambertMaterial",
	Phong:      "MeshPhongMaterial",
	Toon:       "MeshToonMaterial",
	Normal:     "MeshNormalMaterial",
	Depth:      "MeshDepthMaterial",
	Distance:   "MeshDistanceMaterial",
	Matcap:     "MeshMatcapMaterial",
	Points:     "PointsMaterial",
	LineBasic:  "LineBasicMaterial",
	LineDashed: "LineDashedMaterial",
	Sprite:     "SpriteMaterial",
}

// Types lists the whole table in declaration order.
func Types() []Type {
	return []Type{Basic, Standard, Physical, Lambert, Phong, Toon, Normal, Depth, Distance, Matcap, Points, LineBasic, LineDashed, Sprite}
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func shortName(full string) string {
	s := strings.ToLower(full)
	s = strings.TrimPrefix(s, "mesh")
	return strings.TrimSuffix(s, "material")
}

// ParseType accepts "MeshPhysicalMaterial" style names and short ones ("physical", "line-dashed").
func ParseType(name string) (Type, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(name))
	norm = shortName(norm)
	for t, n := range typeNames {
		if shortName(n) == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("material: %q: %w", name, ErrUnknownType)
}

// Model is the shading path the renderer takes for a material.
type Model int

const (
	Unlit Model = iota
	Diffuse
	Specular
	PBR
	Cel
	NormalColor
	DepthShade
	MatcapShade
	PointSprites
	Lines
	Billboard
)

// Material is a fully resolved material. Each factory call allocates a fresh one.
type Material struct {
	Type Type

	Color             paint.Color
	Opacity           float32
	Transparent       bool
	Wireframe         bool
	FlatShading       bool
	Emissive          paint.Color
	EmissiveIntensity float32

	Metalness          float32
	Roughness          float32
	Clearcoat          float32
	ClearcoatRoughness float32
	IOR                float32

	Shininess float32
	Specular  paint.Color

	Size            float32
	SizeAttenuation bool

	LineWidth float32
	DashSize  float32
	GapSize   float32
	Scale     float32

	Rotation float32
}

// Model returns the shading path for m's type.
func (m *Material) Model() Model {
	switch m.Type {
	case Basic:
		return Unlit
	case Lambert:
		return Diffuse
	case Phong:
		return Specular
	case Standard, Physical:
		return PBR
	case Toon:
		return Cel
	case Normal:
		return NormalColor
	case Depth, Distance:
		return DepthShade
	case Matcap:
		return MatcapShade
	case Points:
		return PointSprites
	case LineBasic, LineDashed:
		return Lines
	case Sprite:
		return Billboard
	}
	return Specular
}

// IsTransparent reports whether the renderer must blend m after opaque materials.
func (m *Material) IsTransparent() bool {
	return m.Transparent && m.Opacity < 1
}

// baseline is the rendering library's own default state for a type, before the factory's
// type defaults and the caller's options are applied.
func baseline(t Type) *Material {
	m := &Material{
		Type:              t,
		Color:             paint.White,
		Opacity:           1,
		Emissive:          paint.Black,
		EmissiveIntensity: 1,
		LineWidth:         1,
		Scale:             1,
	}
	switch t {
	case Standard, Physical:
		m.Roughness = 1
		m.Metalness = 0
		if t == Physical {
			m.IOR = 1.5
		}
	case Phong:
		m.Shininess = 30
		m.Specular = paint.Hex(0x111111)
	case Points:
		m.Size = 1
		m.SizeAttenuation = true
	case LineDashed:
		m.DashSize = 3
		m.GapSize = 1
	case Sprite:
		m.SizeAttenuation = true
	}
	return m
}
