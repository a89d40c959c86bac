package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	l := New("")
	l.Log("scene ready")
	l.Warnf("unknown light type: %s", "Laser")
	l.Infof("fps %d", 60)

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INFO scene ready")
	assert.Contains(t, lines[1], "WARN unknown light type: Laser")
	assert.True(t, strings.HasPrefix(lines[2], "["))
	assert.Equal(t, 1, l.Count(Warn))
	assert.Equal(t, 2, l.Count(Info))
}

func TestLoggerLinesIsCopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.txt")
	l := New(path)
	l.Warnf("x=%d", 1)
	l.Log("y")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "WARN x=1")
	assert.Contains(t, got[1], "INFO y")
}

func TestWarnfNil(t *testing.T) {
	assert.NotPanics(t, func() { Warnf(nil, "dropped %d", 1) })
	l := New("")
	Warnf(l, "kept")
	assert.Equal(t, 1, l.Count(Warn))
}
