package main

import (
	"context"
	"fmt"
	"os"

	"wheel-viewer/internal/asset"
	"wheel-viewer/internal/debug"
	"wheel-viewer/internal/env"
	"wheel-viewer/internal/envpreset"
	"wheel-viewer/internal/gfxctx"
	"wheel-viewer/internal/graphics"
	"wheel-viewer/internal/logger"
	"wheel-viewer/internal/scene"
	"wheel-viewer/internal/ui"
	"wheel-viewer/internal/viewer"
	"wheel-viewer/internal/viewerconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	log := logger.New(logger.DefaultPath, "viewer")
	if err := run(log); err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	if err := env.Load(".env"); err != nil {
		log.Warnf(".env: %v", err)
	}
	cfg, created, err := viewerconfig.LoadOrCreate(viewerconfig.DefaultPath)
	if err != nil {
		log.Warnf("%v; using defaults", err)
	}
	if created {
		log.Infof("wrote default config to %s", viewerconfig.DefaultPath)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.SetDebug(cfg.Debug.Log)
	preset, _ := envpreset.Lookup(cfg.Environment.Preset)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The fetch starts before the window so file IO overlaps window creation.
	log.Infof("loading %s (scale %g, environment %s)", cfg.Model.Path, cfg.Model.Scale, preset.Name)
	task := asset.FetchAsync(ctx, asset.Request{
		Model: cfg.Model.Path,
		Resolver: asset.Resolver{
			CacheDir: cfg.Model.CacheDir,
			Timeout:  cfg.Model.DownloadTimeout,
		},
		Backdrop: asset.BackdropOptions{
			Dir:      cfg.Environment.Dir,
			Preset:   preset,
			Blur:     cfg.Environment.Blur,
			MaxWidth: cfg.Environment.MaxWidth,
		},
	})

	var (
		scn     *scene.Scene
		view    *viewer.Viewer
		engine  *ui.Engine
		overlay *ui.Overlay
		stats   = debug.New(cfg.Debug.ShowFPS, cfg.Debug.ShowMemAlloc)
	)

	setup := func(gfx gfxctx.Context) error {
		scn = scene.New(cfg.Model.Scale, gfxctx.NewFlipYFilter(gfx), log)
		scn.FlipY = cfg.Environment.FlipY
		view = viewer.New(task, scn, log, cfg.Text.Caption)

		engine = ui.New()
		engine.SetStylesheet(ui.DefaultStylesheet())
		if cfg.Text.CSS != "" {
			if err := engine.LoadCSS(cfg.Text.CSS); err != nil {
				log.Warnf("overlay css %s: %v", cfg.Text.CSS, err)
			}
		}
		if cfg.Text.Font != "" {
			if err := engine.LoadFont(cfg.Text.Font); err != nil {
				log.Warnf("font %s: %v", cfg.Text.Font, err)
			}
		}
		overlay = ui.NewOverlay(cfg.Text.Loading, view.Caption())
		engine.SetNodes(overlay.Nodes())
		return nil
	}

	update := func() {
		view.Step()
		scn.Update()
	}

	draw := func() {
		scn.Draw()
		overlay.Apply(overlayState(view))
		engine.Draw()
		stats.Draw()
	}

	teardown := func() {
		cancel()
		scn.Unload()
		log.Infof("view %s closed (%s)", view.ID, view.State())
	}

	return graphics.Run(graphics.Window{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		TargetFPS:  cfg.Window.TargetFPS,
		MSAA:       cfg.Window.MSAA,
		Background: rl.RayWhite,
	}, setup, update, draw, teardown)
}

func overlayState(v *viewer.Viewer) ui.OverlayState {
	switch v.Region() {
	case viewer.Caption:
		return ui.OverlayState{Caption: true}
	case viewer.Error:
		return ui.OverlayState{Error: true, ErrorText: "Failed to load 3D model: " + v.Err().Error()}
	}
	return ui.OverlayState{Indicator: true}
}
