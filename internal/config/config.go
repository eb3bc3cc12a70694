// Package config loads the gallery host configuration from an optional TOML
// file and GALLERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	gui "github.com/go-theft-auto/widgetgallery"
)

// Backends accepted by ui.backend.
const (
	BackendOpenGL = "opengl"
	BackendEbiten = "ebiten"
)

// Config holds application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	UI       UIConfig       `mapstructure:"ui"`
	Settings SettingsConfig `mapstructure:"settings"`
	Log      LogConfig      `mapstructure:"log"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// UIConfig selects the look and the rendering backend.
type UIConfig struct {
	Style   string `mapstructure:"style"`
	Backend string `mapstructure:"backend"`
}

// SettingsConfig locates the persisted gallery settings. The extension
// (.toml, .yaml, .yml) selects the format.
type SettingsConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// DefaultDir is where the config and settings files live by default.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "widgetgallery")
}

// DefaultPath is the file Load reads when no path is given:
// $GALLERY_CONFIG, or config.toml in DefaultDir.
func DefaultPath() string {
	if p := os.Getenv("GALLERY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Widget Gallery")
	v.SetDefault("ui.style", "default")
	v.SetDefault("ui.backend", BackendOpenGL)
	v.SetDefault("settings.path", filepath.Join(DefaultDir(), "settings.toml"))
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")
	v.SetEnvPrefix("GALLERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from path, or when path is empty from
// $GALLERY_CONFIG, or else from config.toml in DefaultDir if it exists.
// Environment variables such as GALLERY_UI_BACKEND override file values.
func Load(path string) (Config, error) {
	v := newViper()

	if path == "" {
		path = os.Getenv("GALLERY_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be clamped.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.UI.Backend {
	case BackendOpenGL, BackendEbiten:
	default:
		return fmt.Errorf("config: unknown ui.backend %q (want %s or %s)", c.UI.Backend, BackendOpenGL, BackendEbiten)
	}
	if _, err := gui.StyleByName(c.UI.Style); err != nil {
		return fmt.Errorf("config: ui.style: %w", err)
	}
	if c.Settings.Path == "" {
		return errors.New("config: settings.path is empty")
	}
	return nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("window.title", cfg.Window.Title)
	v.Set("ui.style", cfg.UI.Style)
	v.Set("ui.backend", cfg.UI.Backend)
	v.Set("settings.path", cfg.Settings.Path)
	v.Set("log.verbose", cfg.Log.Verbose)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
