// Command gallery opens the widget gallery in a desktop window.
//
//	go run ./cmd/gallery -backend ebiten -verbose
//
// Configuration is read from $GALLERY_CONFIG or config.toml in the user
// config directory; GALLERY_* environment variables and flags override it.
// The gallery state and open windows are saved to settings.path on exit.
// -write-config saves the effective configuration and exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/go-theft-auto/widgetgallery"
	"github.com/go-theft-auto/widgetgallery/backend/ebitengine"
	"github.com/go-theft-auto/widgetgallery/backend/opengl"
	"github.com/go-theft-auto/widgetgallery/gallery"
	"github.com/go-theft-auto/widgetgallery/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default $GALLERY_CONFIG or <user config dir>/widgetgallery/config.toml)")
	backend := flag.String("backend", "", "rendering backend: opengl or ebiten")
	settingsPath := flag.String("settings", "", "settings file, .toml or .yaml")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	writeConfig := flag.Bool("write-config", false, "save the effective config to -config (or the default path) and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *backend != "" {
		cfg.UI.Backend = *backend
	}
	if *settingsPath != "" {
		cfg.Settings.Path = *settingsPath
	}
	if *verbose {
		cfg.Log.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Log.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	gui.SetVerbose(cfg.Log.Verbose)

	if *writeConfig {
		path := *configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		slog.Info("config written", "path", path)
		return nil
	}

	style, err := gui.StyleByName(cfg.UI.Style)
	if err != nil {
		return err
	}

	settings, err := gallery.LoadFile(cfg.Settings.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Info("no saved settings, using defaults", "path", cfg.Settings.Path)
		settings = gallery.DefaultSettings()
	case err != nil:
		return err
	}

	demos := gallery.DemosFromRegistry()
	launcher := gallery.NewWindows(demos...)
	g, _ := findGallery(demos)
	settings.Apply(g, launcher)

	frame := func(ctx *gui.Context) {
		launcher.Show(ctx)
	}

	slog.Info("starting", "backend", cfg.UI.Backend, "style", cfg.UI.Style, "demos", len(demos))
	switch cfg.UI.Backend {
	case config.BackendEbiten:
		err = ebitengine.Run(ebitengine.Options{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Title:      cfg.Window.Title,
			Style:      style,
			ClearColor: style.ClearColor,
		}, frame)
	default:
		err = opengl.Run(opengl.Options{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Title:      cfg.Window.Title,
			Style:      style,
			ClearColor: style.ClearColor,
		}, frame)
	}
	if err != nil {
		return err
	}

	return gallery.SaveFile(cfg.Settings.Path, gallery.Capture(g, launcher))
}

// findGallery returns the widget gallery among demos.
func findGallery(demos []gallery.Demo) (*gallery.Gallery, bool) {
	for _, d := range demos {
		if g, ok := d.(*gallery.Gallery); ok {
			return g, true
		}
	}
	return nil, false
}
