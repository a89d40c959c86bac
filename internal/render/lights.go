package render

import (
	"cogentcore.org/core/math32"

	"viz-tiles/internal/light"
	"viz-tiles/internal/paint"
)

// lightUniforms is the flattened light array uploaded once per frame.
type lightUniforms struct {
	count    float32
	kind     [maxLights]float32
	pos      [maxLights * 3]float32
	dir      [maxLights * 3]float32
	color    [maxLights * 3]float32
	ground   [maxLights * 3]float32
	rng      [maxLights]float32
	decay    [maxLights]float32
	cosOuter [maxLights]float32
	cosInner [maxLights]float32
}

// packLights fills the shader light slots in scene order. Lights past maxLights are dropped.
// Rect area lights are approximated by a point light at their center.
func packLights(ls []light.Light) lightUniforms {
	var u lightUniforms
	i := 0
	for _, l := range ls {
		if i == maxLights {
			break
		}
		if l == nil {
			continue
		}
		b := l.AsBase()
		put3(u.pos[:], i, b.Position)
		put3(u.color[:], i, scaled(b.Color, b.Intensity))
		u.decay[i] = 1
		switch v := l.(type) {
		case *light.AmbientLight:
			u.kind[i] = lightAmbient
		case *light.PointLight:
			u.kind[i] = lightPoint
			u.rng[i] = v.Distance
			u.decay[i] = v.Decay
		case *light.DirectionalLight:
			u.kind[i] = lightDirectional
			// the shader wants the direction toward the light
			put3(u.dir[:], i, v.Direction().Negate())
		case *light.SpotLight:
			u.kind[i] = lightSpot
			u.rng[i] = v.Distance
			u.decay[i] = v.Decay
			put3(u.dir[:], i, v.Direction())
			u.cosOuter[i] = math32.Cos(v.Angle)
			u.cosInner[i] = math32.Cos(v.Angle * (1 - v.Penumbra))
		case *light.HemisphereLight:
			u.kind[i] = lightHemisphere
			put3(u.ground[:], i, scaled(v.GroundColor, b.Intensity))
		case *light.RectAreaLight:
			u.kind[i] = lightPoint
		default:
			continue
		}
		i++
	}
	u.count = float32(i)
	return u
}

func scaled(c paint.Color, intensity float32) math32.Vector3 {
	f := c.Floats()
	return math32.Vec3(f[0], f[1], f[2]).MulScalar(intensity)
}

func put3(dst []float32, i int, v math32.Vector3) {
	dst[i*3], dst[i*3+1], dst[i*3+2] = v.X, v.Y, v.Z
}
