package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"viz-tiles/internal/paint"
)

// ConfigPath is the path to the viewer config file, relative to the process working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds viewer preferences (window, overlays, startup demo). Persisted across runs.
// Scenes themselves come from demos or scene files, not from here.
type Prefs struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	TargetFPS  int    `json:"target_fps"`
	Fullscreen bool   `json:"fullscreen"`
	ShowFPS    bool   `json:"show_fps"`
	ShowStats  bool   `json:"show_stats"`
	// GridVisible draws the editor grid under every scene, on top of whatever the scene adds.
	GridVisible bool   `json:"grid_visible"`
	Demo        string `json:"demo"`
	LogPath     string `json:"log_path"`
	// Background overrides the scene background when set ("#202020").
	Background string `json:"background,omitempty"`
	// Font names a TTF/OTF under assets/fonts for the overlays; empty uses raylib's default font.
	Font string `json:"font,omitempty"`
}

// Default returns default viewer preferences (800×600 at 60 FPS, overlays off, basics demo).
func Default() Prefs {
	return Prefs{
		Width:     800,
		Height:    600,
		Title:     "viz-tiles",
		TargetFPS: 60,
		Demo:      "basics",
		LogPath:   "logs/viewer.txt",
	}
}

// Load reads preferences from path. If the file is missing or invalid, returns Default() and does
// not create a file. Fields the file leaves out keep their defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.sanitized(), nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// sanitized replaces unusable window settings with the defaults.
func (p Prefs) sanitized() Prefs {
	d := Default()
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.Title == "" {
		p.Title = d.Title
	}
	return p
}

// BackgroundColor parses Background. ok is false when it is empty or not a color.
func (p Prefs) BackgroundColor() (c paint.Color, ok bool) {
	if p.Background == "" {
		return c, false
	}
	c, err := paint.Parse(p.Background)
	return c, err == nil
}

// ApplyEnv overlays VIZ_WIDTH, VIZ_HEIGHT, VIZ_FPS, VIZ_DEMO, VIZ_SHOW_FPS, VIZ_SHOW_STATS,
// VIZ_FULLSCREEN, VIZ_GRID, VIZ_LOG, VIZ_BACKGROUND and VIZ_FONT. Unset or unparsable values are ignored.
// getenv is usually os.Getenv.
func ApplyEnv(p Prefs, getenv func(string) string) Prefs {
	setInt := func(key string, dst *int) {
		if v, err := strconv.Atoi(strings.TrimSpace(getenv(key))); err == nil && v > 0 {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if v, err := strconv.ParseBool(strings.TrimSpace(getenv(key))); err == nil {
			*dst = v
		}
	}
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	setInt("VIZ_WIDTH", &p.Width)
	setInt("VIZ_HEIGHT", &p.Height)
	setInt("VIZ_FPS", &p.TargetFPS)
	setString("VIZ_DEMO", &p.Demo)
	setBool("VIZ_SHOW_FPS", &p.ShowFPS)
	setBool("VIZ_SHOW_STATS", &p.ShowStats)
	setBool("VIZ_FULLSCREEN", &p.Fullscreen)
	setBool("VIZ_GRID", &p.GridVisible)
	setString("VIZ_LOG", &p.LogPath)
	setString("VIZ_BACKGROUND", &p.Background)
	setString("VIZ_FONT", &p.Font)
	return p
}
