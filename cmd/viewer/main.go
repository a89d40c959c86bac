package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/randx"

	"viz-tiles/internal/commands"
	"viz-tiles/internal/debug"
	"viz-tiles/internal/demos"
	"viz-tiles/internal/env"
	"viz-tiles/internal/fonts"
	"viz-tiles/internal/graphics"
	"viz-tiles/internal/logger"
	"viz-tiles/internal/scene"
	"viz-tiles/internal/scenefile"
	"viz-tiles/internal/scenegraph"
	"viz-tiles/internal/viewerconfig"
)

func main() {
	_ = env.Load(".env")
	prefs, _ := viewerconfig.Load(viewerconfig.ConfigPath)
	prefs = viewerconfig.ApplyEnv(prefs, os.Getenv)
	log := logger.New(prefs.LogPath)

	reg := commands.NewRegistry()
	for _, d := range demos.All() {
		fs, seed := viewerFlags(d.Name, &prefs)
		reg.Register(d.Name, d.Summary, fs, func() error {
			return run(prefs, log, d.Name, d.Orbit, func(sc *scenegraph.Scene, cam *scenegraph.CameraSettings) (demos.Animator, error) {
				return d.Build(sc, cam, rng(*seed), log), nil
			})
		})
	}

	fileFlags, seed := viewerFlags("file", &prefs)
	path := fileFlags.String("path", "scenes/showcase.yaml", "scene descriptor to load")
	noOrbit := fileFlags.Bool("no-orbit", false, "disable mouse camera controls")
	reg.Register("file", "Load a YAML scene descriptor", fileFlags, func() error {
		f, err := scenefile.Load(*path)
		if err != nil {
			return err
		}
		return run(prefs, log, *path, !*noOrbit, func(sc *scenegraph.Scene, cam *scenegraph.CameraSettings) (demos.Animator, error) {
			return nil, f.Build(sc, cam, log, rng(*seed))
		})
	})

	reg.Register("list", "List demos and scene-file geometry types", nil, func() error {
		return list(os.Stdout)
	})
	reg.SetDefault(prefs.Demo)

	if err := reg.Execute(os.Args[1:]); err != nil {
		log.Warnf("viewer: %v", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "commands:")
		reg.Usage(os.Stderr)
		os.Exit(1)
	}
}

// viewerFlags returns a flag set with the window and overlay flags every scene command takes,
// bound to prefs, plus the sampling seed.
func viewerFlags(name string, prefs *viewerconfig.Prefs) (*flag.FlagSet, *int64) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&prefs.Width, "width", prefs.Width, "window width")
	fs.IntVar(&prefs.Height, "height", prefs.Height, "window height")
	fs.IntVar(&prefs.TargetFPS, "target-fps", prefs.TargetFPS, "frame rate cap")
	fs.BoolVar(&prefs.Fullscreen, "fullscreen", prefs.Fullscreen, "fullscreen window")
	fs.BoolVar(&prefs.ShowFPS, "fps", prefs.ShowFPS, "show the FPS counter")
	fs.BoolVar(&prefs.ShowStats, "stats", prefs.ShowStats, "show scene statistics")
	fs.BoolVar(&prefs.GridVisible, "grid", prefs.GridVisible, "draw the editor grid")
	fs.StringVar(&prefs.Background, "background", prefs.Background, "background color override (#rrggbb)")
	fs.StringVar(&prefs.Font, "font", prefs.Font, "overlay font name or path (assets/fonts)")
	seed := fs.Int64("seed", 0, "seed for sampled points (0 = random)")
	return fs, seed
}

func rng(seed int64) randx.Rand {
	if seed == 0 {
		return nil
	}
	return randx.NewSysRand(seed)
}

// run builds one scene and shows it until the window closes.
func run(prefs viewerconfig.Prefs, log *logger.Logger, name string, orbit bool, build func(*scenegraph.Scene, *scenegraph.CameraSettings) (demos.Animator, error)) error {
	sc := scenegraph.New()
	cam := scenegraph.DefaultCamera()
	animate, err := build(sc, &cam)
	if err != nil {
		return err
	}
	if bg, ok := prefs.BackgroundColor(); ok {
		sc.Background = bg
	}
	st := sc.Stats()
	log.Infof("viewer: %s: %d objects, %d lights, %d triangles", name, st.Objects, st.Lights, st.Triangles)

	host := scene.New()
	host.SetGridVisible(prefs.GridVisible)
	host.SetScene(sc, cam, orbit, animate)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowStats(prefs.ShowStats, host.Scene().Stats)
	dbg.SetShowMemAlloc(prefs.ShowStats)
	if prefs.Font != "" {
		if path, err := fonts.Find(prefs.Font); err == nil {
			dbg.SetFontPath(path)
		} else {
			log.Warnf("viewer: font %q not found under %v", prefs.Font, fonts.BaseDirs())
		}
	}

	draw := func() {
		host.Draw()
		dbg.Draw()
	}
	graphics.Run(graphics.Window{
		Width:      prefs.Width,
		Height:     prefs.Height,
		Title:      prefs.Title + " - " + name,
		TargetFPS:  prefs.TargetFPS,
		Fullscreen: prefs.Fullscreen,
	}, host.Update, draw, dbg.Close, host.Close)
	log.Infof("viewer: %s closed", name)
	return nil
}

func list(w io.Writer) error {
	fmt.Fprintln(w, "demos:")
	for _, d := range demos.All() {
		fmt.Fprintf(w, "  %-10s %s\n", d.Name, d.Summary)
	}
	fmt.Fprintf(w, "geometry types: %s\n", strings.Join(scenefile.GeometryTypes(), ", "))
	return nil
}
