package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viz-tiles/internal/paint"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadInvalidReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "viewer.json")
	want := Default()
	want.Width, want.Height = 1280, 720
	want.ShowFPS = true
	want.Demo = "explorer"
	want.Background = "#202020"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"demo": "tile", "width": -5}`), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tile", p.Demo)
	assert.Equal(t, 800, p.Width)
	assert.Equal(t, 600, p.Height)
	assert.Equal(t, 60, p.TargetFPS)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"VIZ_WIDTH":      "1024",
		"VIZ_HEIGHT":     "zero",
		"VIZ_FPS":        "-1",
		"VIZ_DEMO":       " plane ",
		"VIZ_SHOW_FPS":   "true",
		"VIZ_FULLSCREEN": "maybe",
		"VIZ_GRID":       "1",
		"VIZ_LOG":        "",
		"VIZ_FONT":       "Inter",
	}
	p := ApplyEnv(Default(), func(k string) string { return env[k] })
	assert.Equal(t, 1024, p.Width)
	assert.Equal(t, 600, p.Height)
	assert.Equal(t, 60, p.TargetFPS)
	assert.Equal(t, "plane", p.Demo)
	assert.True(t, p.ShowFPS)
	assert.False(t, p.Fullscreen)
	assert.True(t, p.GridVisible)
	assert.Equal(t, "logs/viewer.txt", p.LogPath)
	assert.Equal(t, "Inter", p.Font)
}

func TestBackgroundColor(t *testing.T) {
	p := Default()
	_, ok := p.BackgroundColor()
	assert.False(t, ok)

	p.Background = "#ff0000"
	c, ok := p.BackgroundColor()
	assert.True(t, ok)
	assert.Equal(t, paint.Hex(0xff0000), c)

	p.Background = "nope"
	_, ok = p.BackgroundColor()
	assert.False(t, ok)
}
