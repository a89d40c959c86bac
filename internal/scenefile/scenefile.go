// Package scenefile reads YAML scene descriptors and builds them through the light, geometry
// and material factories.
//
//	background: "#000000"
//	camera: {fov: 75, position: [3, 3, 5], target: [0, 0, 0]}
//	lights:
//	  - type: PointLight
//	    options: {color: "#6EACDA", intensity: 0.5, distance: 10, position: [0, 0, 2]}
//	meshes:
//	  - geometry: {type: cuboid, args: [0.5, 1, 0.01], options: {borderRadius: 0.05}}
//	    material: {type: MeshPhysicalMaterial, options: {color: 0x777777, metalness: 1}}
//	points:
//	  - sample: {count: 700, radius: 2}
//	    options: {size: 0.02}
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/light"
	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
	"viz-tiles/internal/scenegraph"
)

var (
	// ErrUnknownGeometry is returned by Build for a geometry type outside the table.
	ErrUnknownGeometry = errors.New("unknown geometry type")
	// ErrInvalidGeometry is returned by Build when a tube has no usable path or an extrusion no outline.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// File is a decoded scene descriptor. Lights and point sets already carry their defaults;
// geometry options are decoded by Build once the type is known.
type File struct {
	Background *paint.Color `yaml:"background"`
	Camera     *Camera      `yaml:"camera"`
	Axes       float32      `yaml:"axes"`
	Grid       *Grid        `yaml:"grid"`
	Lights     []Light      `yaml:"lights"`
	Meshes     []Mesh       `yaml:"meshes"`
	Points     []PointSet   `yaml:"points"`
}

// Camera overrides the camera. Zero numbers and missing vectors keep the current value.
type Camera struct {
	Fov      float32     `yaml:"fov"`
	Near     float32     `yaml:"near"`
	Far      float32     `yaml:"far"`
	Position *[3]float32 `yaml:"position"`
	Target   *[3]float32 `yaml:"target"`
}

func (c *Camera) applyTo(cam *scenegraph.CameraSettings) {
	if c.Fov > 0 {
		cam.Fovy = c.Fov
	}
	if c.Near > 0 {
		cam.Near = c.Near
	}
	if c.Far > 0 {
		cam.Far = c.Far
	}
	if c.Position != nil {
		cam.Position = vec3(*c.Position)
	}
	if c.Target != nil {
		cam.Target = vec3(*c.Target)
	}
}

// Grid adds a ground grid.
type Grid struct {
	Size      float32 `yaml:"size"`
	Divisions int     `yaml:"divisions"`
}

// Light is a light tag and its options, decoded onto light.DefaultOptions.
// The tag is resolved by Build so unknown tags degrade the same way the factory does.
type Light struct {
	Type    string
	Options light.Options
}

func (l *Light) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Type    string    `yaml:"type"`
		Options yaml.Node `yaml:"options"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	opts, err := decodeOnto(raw.Options, light.DefaultOptions())
	if err != nil {
		return fmt.Errorf("light %q: %w", raw.Type, err)
	}
	l.Type, l.Options = raw.Type, opts
	return nil
}

// Mesh is one geometry with its material and placement. Rotation is Euler radians.
type Mesh struct {
	Name     string      `yaml:"name"`
	Geometry Geometry    `yaml:"geometry"`
	Material Material    `yaml:"material"`
	Position [3]float32  `yaml:"position"`
	Rotation [3]float32  `yaml:"rotation"`
	Scale    *[3]float32 `yaml:"scale"`
}

// Geometry names a geometry constructor. Args are its positional numbers (missing ones take
// the constructor's defaults); Options are decoded onto the type's Default…Options.
// Tubes need Path and extrusions need Shape or RoundedRect.
type Geometry struct {
	Type        string       `yaml:"type"`
	Args        []float32    `yaml:"args"`
	Options     yaml.Node    `yaml:"options"`
	Path        *Path        `yaml:"path"`
	Shape       [][2]float32 `yaml:"shape"`
	RoundedRect []float32    `yaml:"roundedRect"`
}

// Path is a 3-D curve for tubes. Type is line, quadratic, cubic, or catmullrom (the default),
// with chordal and uniform as catmullrom variants.
type Path struct {
	Type    string       `yaml:"type"`
	Points  [][3]float32 `yaml:"points"`
	Closed  bool         `yaml:"closed"`
	Tension float32      `yaml:"tension"`
}

// Material accepts a color ("#ff0000"), a list of colors, or a {type, options} mapping,
// the three forms the material factory takes.
type Material struct {
	Option material.Option
}

func (m *Material) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			m.Option = nil
			return nil
		}
		var c paint.Color
		if err := value.Decode(&c); err != nil {
			return err
		}
		m.Option = material.Color(c)
	case yaml.SequenceNode:
		var cs []paint.Color
		if err := value.Decode(&cs); err != nil {
			return err
		}
		m.Option = material.Colors(cs)
	case yaml.MappingNode:
		var s material.Spec
		if err := value.Decode(&s); err != nil {
			return err
		}
		m.Option = s
	default:
		return fmt.Errorf("line %d: material must be a color, a list of colors or a mapping", value.Line)
	}
	return nil
}

// PointSet is a point cloud given either as explicit vertices or as a spherical sample.
type PointSet struct {
	Name     string
	Sample   *Sample
	Vertices [][3]float32
	Options  geometry.PointsOptions
	Position [3]float32
}

// Sample draws Count points inside a sphere of Radius. With Seed set the draw is reproducible.
type Sample struct {
	Count  int     `yaml:"count"`
	Radius float32 `yaml:"radius"`
	Seed   *int64  `yaml:"seed"`
}

func (p *PointSet) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name     string       `yaml:"name"`
		Sample   *Sample      `yaml:"sample"`
		Vertices [][3]float32 `yaml:"vertices"`
		Options  yaml.Node    `yaml:"options"`
		Position [3]float32   `yaml:"position"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Sample == nil && len(raw.Vertices) == 0 {
		return fmt.Errorf("line %d: points need a sample or vertices", value.Line)
	}
	opts, err := decodeOnto(raw.Options, geometry.DefaultPointsOptions())
	if err != nil {
		return fmt.Errorf("points: %w", err)
	}
	*p = PointSet{Name: raw.Name, Sample: raw.Sample, Vertices: raw.Vertices, Options: opts, Position: raw.Position}
	return nil
}

// decodeOnto decodes n over def, keeping every field n does not mention.
func decodeOnto[T any](n yaml.Node, def T) (T, error) {
	if n.IsZero() {
		return def, nil
	}
	if err := n.Decode(&def); err != nil {
		return def, err
	}
	return def, nil
}

// Parse decodes a scene descriptor. Unknown keys are errors; unknown light, material and
// geometry types are not, they are dealt with by Build.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return &f, nil
}

// Load reads and parses the descriptor at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
