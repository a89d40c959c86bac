package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("font"), 0644))
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf", "README.md")

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}, list)
}

func TestScanDirMissing(t *testing.T) {
	list, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Google_Sans_Code/GoogleSansCode.ttf")

	tests := []struct {
		search string
		want   string
	}{
		{"Inter", "Inter/Inter-Regular.ttf"},
		{"inter bold", "Inter/Inter-Bold.ttf"},
		{"Google Sans", "Google_Sans_Code/GoogleSansCode.ttf"},
		{"Inter-Bold.ttf", "Inter/Inter-Bold.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got, err := Find(tt.search, dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, filepath.FromSlash(tt.want)), got)
		})
	}
}

func TestFindExistingPath(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "x/Custom.ttf")
	p := filepath.Join(dir, "x", "Custom.ttf")

	got, err := Find(p, filepath.Join(dir, "elsewhere"))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestFindMissing(t *testing.T) {
	_, err := Find("Nothing", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Find("", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
