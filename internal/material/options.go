package material

import "viz-tiles/internal/paint"

// Options overlays a material's defaults. A nil field means "not given"; a set field always
// wins over both the library baseline and the factory's type defaults, even when it is zero.
type Options struct {
	Color             *paint.Color `yaml:"color,omitempty"`
	Opacity           *float32     `yaml:"opacity,omitempty"`
	Transparent       *bool        `yaml:"transparent,omitempty"`
	Wireframe         *bool        `yaml:"wireframe,omitempty"`
	FlatShading       *bool        `yaml:"flatShading,omitempty"`
	Emissive          *paint.Color `yaml:"emissive,omitempty"`
	EmissiveIntensity *float32     `yaml:"emissiveIntensity,omitempty"`

	Metalness          *float32 `yaml:"metalness,omitempty"`
	Roughness          *float32 `yaml:"roughness,omitempty"`
	Clearcoat          *float32 `yaml:"clearcoat,omitempty"`
	ClearcoatRoughness *float32 `yaml:"clearcoatRoughness,omitempty"`
	IOR                *float32 `yaml:"ior,omitempty"`

	Shininess *float32     `yaml:"shininess,omitempty"`
	Specular  *paint.Color `yaml:"specular,omitempty"`

	Size            *float32 `yaml:"size,omitempty"`
	SizeAttenuation *bool    `yaml:"sizeAttenuation,omitempty"`

	LineWidth *float32 `yaml:"linewidth,omitempty"`
	DashSize  *float32 `yaml:"dashSize,omitempty"`
	GapSize   *float32 `yaml:"gapSize,omitempty"`
	Scale     *float32 `yaml:"scale,omitempty"`

	Rotation *float32 `yaml:"rotation,omitempty"`
}

// Float returns a pointer to v, for Options literals.
func Float(v float32) *float32 { return &v }

// Bool returns a pointer to v, for Options literals.
func Bool(v bool) *bool { return &v }

// over returns a copy of base with every field set in o replacing base's.
func (o Options) over(base Options) Options {
	out := base
	if o.Color != nil {
		out.Color = o.Color
	}
	if o.Opacity != nil {
		out.Opacity = o.Opacity
	}
	if o.Transparent != nil {
		out.Transparent = o.Transparent
	}
	if o.Wireframe != nil {
		out.Wireframe = o.Wireframe
	}
	if o.FlatShading != nil {
		out.FlatShading = o.FlatShading
	}
	if o.Emissive != nil {
		out.Emissive = o.Emissive
	}
	if o.EmissiveIntensity != nil {
		out.EmissiveIntensity = o.EmissiveIntensity
	}
	if o.Metalness != nil {
		out.Metalness = o.Metalness
	}
	if o.Roughness != nil {
		out.Roughness = o.Roughness
	}
	if o.Clearcoat != nil {
		out.Clearcoat = o.Clearcoat
	}
	if o.ClearcoatRoughness != nil {
		out.ClearcoatRoughness = o.ClearcoatRoughness
	}
	if o.IOR != nil {
		out.IOR = o.IOR
	}
	if o.Shininess != nil {
		out.Shininess = o.Shininess
	}
	if o.Specular != nil {
		out.Specular = o.Specular
	}
	if o.Size != nil {
		out.Size = o.Size
	}
	if o.SizeAttenuation != nil {
		out.SizeAttenuation = o.SizeAttenuation
	}
	if o.LineWidth != nil {
		out.LineWidth = o.LineWidth
	}
	if o.DashSize != nil {
		out.DashSize = o.DashSize
	}
	if o.GapSize != nil {
		out.GapSize = o.GapSize
	}
	if o.Scale != nil {
		out.Scale = o.Scale
	}
	if o.Rotation != nil {
		out.Rotation = o.Rotation
	}
	return out
}

// applyTo writes every set field into m.
func (o Options) applyTo(m *Material) {
	if o.Color != nil {
		m.Color = *o.Color
	}
	if o.Opacity != nil {
		m.Opacity = *o.Opacity
	}
	if o.Transparent != nil {
		m.Transparent = *o.Transparent
	}
	if o.Wireframe != nil {
		m.Wireframe = *o.Wireframe
	}
	if o.FlatShading != nil {
		m.FlatShading = *o.FlatShading
	}
	if o.Emissive != nil {
		m.Emissive = *o.Emissive
	}
	if o.EmissiveIntensity != nil {
		m.EmissiveIntensity = *o.EmissiveIntensity
	}
	if o.Metalness != nil {
		m.Metalness = *o.Metalness
	}
	if o.Roughness != nil {
		m.Roughness = *o.Roughness
	}
	if o.Clearcoat != nil {
		m.Clearcoat = *o.Clearcoat
	}
	if o.ClearcoatRoughness != nil {
		m.ClearcoatRoughness = *o.ClearcoatRoughness
	}
	if o.IOR != nil {
		m.IOR = *o.IOR
	}
	if o.Shininess != nil {
		m.Shininess = *o.Shininess
	}
	if o.Specular != nil {
		m.Specular = *o.Specular
	}
	if o.Size != nil {
		m.Size = *o.Size
	}
	if o.SizeAttenuation != nil {
		m.SizeAttenuation = *o.SizeAttenuation
	}
	if o.LineWidth != nil {
		m.LineWidth = *o.LineWidth
	}
	if o.DashSize != nil {
		m.DashSize = *o.DashSize
	}
	if o.GapSize != nil {
		m.GapSize = *o.GapSize
	}
	if o.Scale != nil {
		m.Scale = *o.Scale
	}
	if o.Rotation != nil {
		m.Rotation = *o.Rotation
	}
}

// typeDefaults are the factory's own per-type defaults, applied over the library baseline
// and under the caller's options.
func typeDefaults(t Type) Options {
	switch t {
	case Standard:
		return Options{Metalness: Float(0.5), Roughness: Float(0.5)}
	case Physical:
		return Options{Metalness: Float(0.5), Roughness: Float(0.5), Clearcoat: Float(0)}
	case Phong:
		return Options{Shininess: Float(30)}
	case Points:
		return Options{Size: Float(1), SizeAttenuation: Bool(true)}
	}
	return Options{}
}
