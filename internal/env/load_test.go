package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	vars, err := Parse(strings.NewReader(`# viewer overrides

VIZ_DEMO=explorer
export VIZ_WIDTH = 1024
VIZ_TITLE="with spaces"
VIZ_LOG='x.txt'
VIZ_BACKGROUND=#202020
=nokey
broken line
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"VIZ_DEMO":       "explorer",
		"VIZ_WIDTH":      "1024",
		"VIZ_TITLE":      "with spaces",
		"VIZ_LOG":        "x.txt",
		"VIZ_BACKGROUND": "#202020",
	}, vars)
}

func TestLoadDoesNotOverrideShell(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VIZ_TEST_A=file\nVIZ_TEST_B=file\n"), 0644))
	t.Setenv("VIZ_TEST_A", "shell")
	t.Setenv("VIZ_TEST_B", "")
	require.NoError(t, os.Unsetenv("VIZ_TEST_B"))

	require.NoError(t, Load(path))
	assert.Equal(t, "shell", os.Getenv("VIZ_TEST_A"))
	assert.Equal(t, "file", os.Getenv("VIZ_TEST_B"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent.env")))
}
