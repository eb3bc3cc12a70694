package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	gui "github.com/go-theft-auto/widgetgallery"
)

// ErrUnsupportedFormat is returned for settings files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

// Format selects the settings encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Settings is what the host persists between runs.
type Settings struct {
	Gallery State
	Windows map[string]bool // Launcher open flags by demo name
}

// DefaultSettings returns the settings of a first run.
func DefaultSettings() Settings {
	return Settings{
		Gallery: DefaultState(),
		Windows: map[string]bool{Name: true},
	}
}

// stateRecord is the on-disk form of State.
type stateRecord struct {
	Enabled            bool    `toml:"enabled" yaml:"enabled"`
	Visible            bool    `toml:"visible" yaml:"visible"`
	Opacity            float32 `toml:"opacity" yaml:"opacity"`
	Boolean            bool    `toml:"boolean" yaml:"boolean"`
	Scalar             float32 `toml:"scalar" yaml:"scalar"`
	Text               string  `toml:"text" yaml:"text"`
	Color              string  `toml:"color" yaml:"color"`
	AnimateProgressBar bool    `toml:"animate_progress_bar" yaml:"animate_progress_bar"`
}

type settingsRecord struct {
	Gallery stateRecord     `toml:"gallery" yaml:"gallery"`
	Windows map[string]bool `toml:"windows" yaml:"windows"`
}

func toRecord(s Settings) settingsRecord {
	g := s.Gallery
	return settingsRecord{
		Gallery: stateRecord{
			Enabled:            g.Enabled,
			Visible:            g.Visible,
			Opacity:            g.Opacity,
			Boolean:            g.Boolean,
			Scalar:             g.Scalar,
			Text:               g.Text,
			Color:              gui.HexColor(g.Color),
			AnimateProgressBar: g.AnimateProgressBar,
		},
		Windows: s.Windows,
	}
}

func fromRecord(r settingsRecord) (Settings, error) {
	color, err := gui.ParseHexColor(r.Gallery.Color)
	if err != nil {
		return Settings{}, fmt.Errorf("gallery.color: %w", err)
	}
	g := State{
		Enabled: r.Gallery.Enabled,
		Visible: r.Gallery.Visible,
		Opacity: r.Gallery.Opacity,
		Boolean: r.Gallery.Boolean,
		Scalar:  r.Gallery.Scalar,
		Text:    r.Gallery.Text,
		Color:   color,
		// Derived from hover every frame, never restored.
		AnimateProgressBar: false,
	}
	g.Clamp()

	windows := r.Windows
	if windows == nil {
		windows = make(map[string]bool)
	}
	return Settings{Gallery: g, Windows: windows}, nil
}

// Encode writes s to w.
func Encode(w io.Writer, f Format, s Settings) error {
	rec := toRecord(s)
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(rec); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("encode %s: %w", f, ErrUnsupportedFormat)
	}
	return nil
}

// Decode reads settings from r. Fields missing from the input keep their
// defaults; out-of-range numbers are clamped.
func Decode(r io.Reader, f Format) (Settings, error) {
	rec := toRecord(DefaultSettings())
	rec.Windows = nil

	switch f {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&rec); err != nil {
			return Settings{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("decode %s: %w", f, ErrUnsupportedFormat)
	}

	return fromRecord(rec)
}

// LoadFile reads settings from path, choosing the format by extension.
// A missing file yields an error matching os.ErrNotExist.
func LoadFile(path string) (Settings, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	s, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	slog.Info("settings loaded", "path", path, "format", f)
	return s, nil
}

// SaveFile writes settings to path through a temporary file in the same
// directory, so a crash never leaves a truncated file behind.
func SaveFile(path string, s Settings) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f, s); err != nil {
		return fmt.Errorf("save settings %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("save settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	slog.Info("settings saved", "path", path, "format", f)
	return nil
}

// Apply copies the settings into the gallery and launcher.
func (s Settings) Apply(g *Gallery, w *Windows) {
	if g != nil {
		g.State = s.Gallery
	}
	if w != nil {
		for name, open := range s.Windows {
			w.SetOpen(name, open)
		}
	}
}

// Capture records the current gallery and launcher state.
func Capture(g *Gallery, w *Windows) Settings {
	s := DefaultSettings()
	if g != nil {
		s.Gallery = g.State
	}
	if w != nil {
		s.Windows = w.OpenSet()
	}
	return s
}
