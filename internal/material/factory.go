package material

import (
	"viz-tiles/internal/logger"
	"viz-tiles/internal/paint"
)

// Option is what New accepts: a Color, a Colors list, a Spec, or nil.
type Option interface {
	isOption()
}

// Color asks for one default-shaded material of that color.
type Color paint.Color

// Colors asks for one default-shaded material per entry, in order (per-face materials).
type Colors []paint.Color

// Spec asks for a material of a named type. Type is kept as a string so that scene files and
// callers can name types the table does not know; those fall back with a warning.
type Spec struct {
	Type    string  `yaml:"type"`
	Options Options `yaml:"options"`
}

func (Color) isOption()  {}
func (Colors) isOption() {}
func (Spec) isOption()   {}

// New resolves opt into materials. Colors yields len(opt) materials; every other form yields one.
//
// For a Spec, the type's library baseline is overlaid with the factory's type defaults and then
// with opt.Options, field by field. When opt.Options.Color is unset, defaultColor (white when nil)
// is injected first. An unknown type logs one warning and yields a Phong material built from the
// options alone. Nil and Color produce a Phong material of that color or defaultColor.
func New(opt Option, defaultColor *paint.Color, w logger.Warner) []*Material {
	def := paint.White
	if defaultColor != nil {
		def = *defaultColor
	}
	switch o := opt.(type) {
	case Colors:
		out := make([]*Material, len(o))
		for i, c := range o {
			out[i] = phong(paint.Color(c))
		}
		return out
	case Spec:
		return []*Material{fromSpec(o, def, w)}
	case Color:
		return []*Material{phong(paint.Color(o))}
	}
	return []*Material{phong(def)}
}

// One is New for callers that know opt yields a single material; for Colors it returns the first
// entry, or a default material when the list is empty.
func One(opt Option, defaultColor *paint.Color, w logger.Warner) *Material {
	ms := New(opt, defaultColor, w)
	if len(ms) == 0 {
		return phong(paint.White)
	}
	return ms[0]
}

func phong(c paint.Color) *Material {
	m := baseline(Phong)
	m.Color = c
	return m
}

func fromSpec(s Spec, def paint.Color, w logger.Warner) *Material {
	opts := s.Options
	if opts.Color == nil {
		opts.Color = def.Ptr()
	}

	t, err := ParseType(s.Type)
	if err != nil {
		logger.Warnf(w, "unknown material type: %s. falling back to MeshPhongMaterial", s.Type)
		m := baseline(Phong)
		opts.applyTo(m)
		return m
	}
	m := baseline(t)
	opts.over(typeDefaults(t)).applyTo(m)
	return m
}
