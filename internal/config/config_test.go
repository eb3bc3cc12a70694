package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GALLERY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Width != 1280 || c.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", c.Window.Width, c.Window.Height)
	}
	if c.UI.Backend != BackendOpenGL {
		t.Errorf("backend = %q, want %q", c.UI.Backend, BackendOpenGL)
	}
	if c.UI.Style != "default" {
		t.Errorf("style = %q, want default", c.UI.Style)
	}
	if filepath.Base(c.Settings.Path) != "settings.toml" {
		t.Errorf("settings path = %q", c.Settings.Path)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "gallery.toml", `
[window]
width = 800
title = "Gallery"

[ui]
style = "gta"
backend = "ebiten"

[settings]
path = "/tmp/gallery.yaml"

[log]
verbose = true
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Width != 800 {
		t.Errorf("width = %d, want 800", c.Window.Width)
	}
	if c.Window.Height != 720 {
		t.Errorf("height = %d, want default 720", c.Window.Height)
	}
	if c.Window.Title != "Gallery" {
		t.Errorf("title = %q", c.Window.Title)
	}
	if c.UI.Style != "gta" || c.UI.Backend != BackendEbiten {
		t.Errorf("ui = %+v", c.UI)
	}
	if c.Settings.Path != "/tmp/gallery.yaml" {
		t.Errorf("settings path = %q", c.Settings.Path)
	}
	if !c.Log.Verbose {
		t.Error("verbose = false, want true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gallery.toml", "[ui]\nbackend = \"opengl\"\n")
	t.Setenv("GALLERY_UI_BACKEND", "ebiten")
	t.Setenv("GALLERY_WINDOW_WIDTH", "640")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Backend != BackendEbiten {
		t.Errorf("backend = %q, want ebiten", c.UI.Backend)
	}
	if c.Window.Width != 640 {
		t.Errorf("width = %d, want 640", c.Window.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "[ui]\nbackend = \"vulkan\"\n"},
		{"unknown style", "[ui]\nstyle = \"neon\"\n"},
		{"zero width", "[window]\nwidth = 0\n"},
		{"bad toml", "[window\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "gallery.toml", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load succeeded for a missing explicit file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := Config{
		Window:   WindowConfig{Width: 1024, Height: 600, Title: "Demo"},
		UI:       UIConfig{Style: "light", Backend: BackendEbiten},
		Settings: SettingsConfig{Path: "/tmp/s.toml"},
		Log:      LogConfig{Verbose: true},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDefaultPathIsWhereLoadLooks(t *testing.T) {
	t.Setenv("GALLERY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		Window:   WindowConfig{Width: 800, Height: 500, Title: "Saved"},
		UI:       UIConfig{Style: "gta", Backend: BackendOpenGL},
		Settings: SettingsConfig{Path: "/tmp/saved.yaml"},
	}
	if err := Save(DefaultPath(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load(\"\") = %+v, want %+v", got, want)
	}

	custom := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv("GALLERY_CONFIG", custom)
	if p := DefaultPath(); p != custom {
		t.Errorf("DefaultPath() = %q, want %q", p, custom)
	}
}
