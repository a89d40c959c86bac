package light

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viz-tiles/internal/logger"
	"viz-tiles/internal/paint"
)

func TestNewAllKindsApplyPosition(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Position = [3]float32{1, -2, 3.5}
			lt := New(k, opts, nil)
			require.NotNil(t, lt)
			assert.Equal(t, k, lt.Kind())
			assert.Equal(t, math32.Vec3(1, -2, 3.5), lt.AsBase().Position)
			assert.Equal(t, paint.White, lt.AsBase().Color)
			assert.Equal(t, float32(1), lt.AsBase().Intensity)
		})
	}
}

func TestTargetOnlyForDirectionalAndSpot(t *testing.T) {
	opts := DefaultOptions()
	opts.Position = [3]float32{5, 10, 7.5}
	opts.Target = &[3]float32{1, 0, 0}

	dl, ok := New(Directional, opts, nil).(*DirectionalLight)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 0, 0), dl.Target)

	sl, ok := New(Spot, opts, nil).(*SpotLight)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 0, 0), sl.Target)

	// other kinds have no aim-point and still get their position
	pl, ok := New(Point, opts, nil).(*PointLight)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(5, 10, 7.5), pl.Position)
}

func TestTargetDefaultsToOrigin(t *testing.T) {
	opts := DefaultOptions()
	opts.Position = [3]float32{0, 4, 0}
	dl := New(Directional, opts, nil).(*DirectionalLight)
	assert.Equal(t, math32.Vector3{}, dl.Target)
	assert.InDelta(t, -1, dl.Direction().Y, 1e-6)
}

func TestKindSpecificParameters(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 12
	opts.Decay = 2
	opts.Angle = 0.5
	opts.Penumbra = 0.25
	opts.Width = 4
	opts.Height = 3
	opts.GroundColor = paint.Hex(0x334455)

	pl := New(Point, opts, nil).(*PointLight)
	assert.Equal(t, float32(12), pl.Distance)
	assert.Equal(t, float32(2), pl.Decay)

	sl := New(Spot, opts, nil).(*SpotLight)
	assert.Equal(t, float32(0.5), sl.Angle)
	assert.Equal(t, float32(0.25), sl.Penumbra)

	hl := New(Hemisphere, opts, nil).(*HemisphereLight)
	assert.Equal(t, paint.Hex(0x334455), hl.GroundColor)

	rl := New(RectArea, opts, nil).(*RectAreaLight)
	assert.Equal(t, float32(4), rl.Width)
	assert.Equal(t, float32(3), rl.Height)
}

func TestDefaultOptions(t *testing.T) {
	d := DefaultOptions()
	assert.Equal(t, paint.White, d.Color)
	assert.Equal(t, float32(1), d.Intensity)
	assert.Equal(t, float32(0), d.Distance)
	assert.Equal(t, float32(1), d.Decay)
	assert.Equal(t, [3]float32{}, d.Position)
	assert.Nil(t, d.Target)
	assert.InDelta(t, 1.0471976, d.Angle, 1e-6)
	assert.Equal(t, float32(0), d.Penumbra)
	assert.Equal(t, float32(10), d.Width)
	assert.Equal(t, float32(10), d.Height)
	assert.Equal(t, paint.White, d.GroundColor)
}

func TestCreateUnsupported(t *testing.T) {
	log := logger.New("")
	lt := Create("Unsupported", Options{}, log)
	assert.Nil(t, lt)
	assert.Equal(t, 1, log.Count(logger.Warn))
	assert.Contains(t, log.Lines()[0], "unknown light type: Unsupported")
}

func TestNewUnknownKind(t *testing.T) {
	log := logger.New("")
	assert.Nil(t, New(Kind(42), DefaultOptions(), log))
	assert.Nil(t, New(0, DefaultOptions(), nil))
	assert.Equal(t, 1, log.Count(logger.Warn))
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"PointLight":       Point,
		"AmbientLight":     Ambient,
		"DirectionalLight": Directional,
		"SpotLight":        Spot,
		"HemisphereLight":  Hemisphere,
		"RectAreaLight":    RectArea,
		"point":            Point,
		"rect-area":        RectArea,
		" spot ":           Spot,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("Laser")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCount(t *testing.T) {
	ls := []Light{
		New(Point, DefaultOptions(), nil),
		nil,
		New(Point, DefaultOptions(), nil),
		New(Ambient, DefaultOptions(), nil),
	}
	assert.Equal(t, 2, Count(ls, Point))
	assert.Equal(t, 1, Count(ls, Ambient))
	assert.Equal(t, 0, Count(ls, Spot))
}
