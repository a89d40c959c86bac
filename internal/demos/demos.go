// Package demos builds the viewer's stock scenes through the light, geometry and material factories.
package demos

import (
	"sort"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/light"
	"viz-tiles/internal/logger"
	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
	"viz-tiles/internal/sampler"
	"viz-tiles/internal/scenegraph"
)

// Animator advances a scene to the given time in seconds. It runs once per frame before drawing.
type Animator func(seconds float64)

// BuildFunc fills sc and adjusts cam. It may return a nil Animator for static scenes.
type BuildFunc func(sc *scenegraph.Scene, cam *scenegraph.CameraSettings, r randx.Rand, w logger.Warner) Animator

// Demo is one entry of the viewer's scene list.
type Demo struct {
	Name    string
	Summary string
	// Orbit enables mouse orbit, pan and zoom in the host.
	Orbit bool
	Build BuildFunc
}

var registry = map[string]Demo{
	"basics": {
		Name:    "basics",
		Summary: "steel tile among 700 steel beads, lit by five orbiting colored lights",
		Orbit:   true,
		Build:   Basics,
	},
	"explorer": {
		Name:    "explorer",
		Summary: "translucent steel beam under two directional lights",
		Orbit:   true,
		Build:   Explorer,
	},
	"plane": {
		Name:    "plane",
		Summary: "60×20 steel ground plane with axes",
		Orbit:   true,
		Build:   Plane,
	},
	"tile": {
		Name:    "tile",
		Summary: "empty tile with a single white point light",
		Build:   Tile,
	},
}

// Lookup returns the demo registered under name.
func Lookup(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the demo names sorted.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, d := range all {
		out[i] = d.Name
	}
	return out
}

// steel is the brushed-steel physical finish every demo uses.
func steel(c paint.Color) material.Options {
	return material.Options{
		Color:              c.Ptr(),
		Metalness:          material.Float(1),
		Roughness:          material.Float(0.4),
		Clearcoat:          material.Float(0.1),
		ClearcoatRoughness: material.Float(0.1),
	}
}

func physical(opts material.Options, w logger.Warner) *material.Material {
	return material.One(material.Spec{Type: material.Physical.String(), Options: opts}, nil, w)
}

// orbiter is a point light that circles with its own x and y periods.
type orbiter struct {
	color     string
	intensity float32
	distance  float32
	position  [3]float32
	xFactor   float64
	yFactor   float64
}

var orbiters = []orbiter{
	{"#6EACDA", 0.5, 10, [3]float32{0, 0, 2}, 2, 12},
	{"#FFFF00", 0.5, 10, [3]float32{2, 2, 2}, 12, 2},
	{"#FF0000", 0.7, 12, [3]float32{-2, 0, 2}, 3, 10},
	{"#00FF00", 0.6, 15, [3]float32{0, -2, 2}, 8, 4},
	{"#FF00FF", 0.8, 8, [3]float32{1, 1, 3}, 6, 6},
}

const (
	beadCount     = 700
	beadSpread    = 2
	beadMaxRadius = 0.02
	beadSegments  = 32
)

// Basics is the steel tile scene. The five point lights move to x = sin(t/xFactor),
// y = cos(t/yFactor) every frame, keeping their z.
func Basics(sc *scenegraph.Scene, cam *scenegraph.CameraSettings, r randx.Rand, w logger.Warner) Animator {
	if r == nil {
		r = randx.NewGlobalRand()
	}
	sc.Background = paint.Black

	lights := make([]light.Light, len(orbiters))
	for i, o := range orbiters {
		opts := light.DefaultOptions()
		opts.Color = paint.MustParse(o.color)
		opts.Intensity = o.intensity
		opts.Distance = o.distance
		opts.Position = o.position
		lights[i] = light.Create("PointLight", opts, w)
		sc.AddLight(lights[i])
	}

	amb := light.DefaultOptions()
	amb.Color = paint.MustParse("#c0c0c0")
	sc.AddLight(light.Create("AmbientLight", amb, w))

	tile := geometry.Cuboid(0.5, 1, 0.01, geometry.CuboidOptions{BorderRadius: 0.05})
	sc.Add(scenegraph.NewMesh(tile, physical(steel(paint.Hex(0x777777)), w)))

	for _, p := range sampler.SphericalPoints(beadCount, sampler.SphereOptions{Radius: beadSpread}, r) {
		radius := float32(r.Float64()) * beadMaxRadius
		g := geometry.Sphere(radius, geometry.SphereOptions{WidthSegments: beadSegments, HeightSegments: beadSegments})
		bead := scenegraph.NewMesh(g, physical(steel(paint.MustParse("#c0c0c0")), w))
		bead.Position = p
		sc.Add(bead)
	}

	return func(seconds float64) {
		for i, o := range orbiters {
			if lights[i] == nil {
				continue
			}
			b := lights[i].AsBase()
			b.Position.X = math32.Sin(float32(seconds / o.xFactor))
			b.Position.Y = math32.Cos(float32(seconds / o.yFactor))
		}
	}
}

// Explorer is a translucent steel beam lit from above by two directional lights.
func Explorer(sc *scenegraph.Scene, cam *scenegraph.CameraSettings, r randx.Rand, w logger.Warner) Animator {
	sc.Background = paint.Black
	cam.Position = math32.Vec3(3, 3, 5)
	cam.Target = math32.Vector3{}

	finish := steel(paint.Hex(0x777777))
	finish.Opacity = material.Float(0.5)
	finish.Transparent = material.Bool(true)
	beam := scenegraph.NewMesh(geometry.Cuboid(2, 0.4, 0.4, geometry.DefaultCuboidOptions()), physical(finish, w))
	sc.Add(beam)

	for _, aim := range []struct{ pos, target [3]float32 }{
		{[3]float32{5, 10, 7.5}, [3]float32{0, 0, 0}},
		{[3]float32{-5, 10, 7.5}, [3]float32{1, 0, 0}},
	} {
		opts := light.DefaultOptions()
		opts.Color = paint.Hex(0xffffff)
		opts.Position = aim.pos
		target := aim.target
		opts.Target = &target
		sc.AddLight(light.Create("DirectionalLight", opts, w))
	}
	return nil
}

// Plane is a 60×20 steel plane laid flat on XZ with a 100-unit axes helper. It has no lights,
// so the plane only shows once a scene file or the host adds some.
func Plane(sc *scenegraph.Scene, cam *scenegraph.CameraSettings, r randx.Rand, w logger.Warner) Animator {
	sc.Add(&scenegraph.Axes{Size: 100})

	plane := scenegraph.NewMesh(geometry.Plane(60, 20, geometry.DefaultPlaneOptions()), physical(steel(paint.Hex(0x777777)), w))
	plane.Rotation.X = -0.5 * math32.Pi
	sc.Add(plane)
	return nil
}

// Tile holds a single white point light at (0,0,10) reaching 100 units.
func Tile(sc *scenegraph.Scene, cam *scenegraph.CameraSettings, r randx.Rand, w logger.Warner) Animator {
	opts := light.DefaultOptions()
	opts.Color = paint.Hex(0xffffff)
	opts.Intensity = 1
	opts.Distance = 100
	opts.Position = [3]float32{0, 0, 10}
	sc.AddLight(light.New(light.Point, opts, w))
	return nil
}
