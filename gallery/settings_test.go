package gallery_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gui "github.com/go-theft-auto/widgetgallery"
	"github.com/go-theft-auto/widgetgallery/gallery"
)

func customSettings() gallery.Settings {
	return gallery.Settings{
		Gallery: gallery.State{
			Enabled: false,
			Visible: true,
			Opacity: 0.5,
			Boolean: true,
			Scalar:  90,
			Text:    "hello",
			Color:   gui.RGBA(255, 0, 128, 64),
		},
		Windows: map[string]bool{gallery.Name: false, "Other": true},
	}
}

func equalSettings(a, b gallery.Settings) bool {
	if a.Gallery != b.Gallery || len(a.Windows) != len(b.Windows) {
		return false
	}
	for k, v := range a.Windows {
		if bv, ok := b.Windows[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, f := range []gallery.Format{gallery.FormatTOML, gallery.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			want := customSettings()

			var buf bytes.Buffer
			if err := gallery.Encode(&buf, f, want); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !strings.Contains(buf.String(), "#FF008040") {
				t.Errorf("color not written as hex:\n%s", buf.String())
			}

			got, err := gallery.Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !equalSettings(got, want) {
				t.Errorf("round trip = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	defaults := gallery.DefaultState()

	tests := []struct {
		name   string
		format gallery.Format
		input  string
		check  func(t *testing.T, s gallery.Settings)
	}{
		{
			name:   "missing fields keep defaults",
			format: gallery.FormatTOML,
			input:  "[gallery]\nscalar = 90.0\n",
			check: func(t *testing.T, s gallery.Settings) {
				want := defaults
				want.Scalar = 90
				if s.Gallery != want {
					t.Errorf("gallery = %+v, want %+v", s.Gallery, want)
				}
				if s.Windows == nil || len(s.Windows) != 0 {
					t.Errorf("windows = %v, want empty map", s.Windows)
				}
			},
		},
		{
			name:   "empty yaml",
			format: gallery.FormatYAML,
			input:  "",
			check: func(t *testing.T, s gallery.Settings) {
				if s.Gallery != defaults {
					t.Errorf("gallery = %+v, want defaults", s.Gallery)
				}
			},
		},
		{
			name:   "out of range values clamp",
			format: gallery.FormatYAML,
			input:  "gallery:\n  opacity: -1\n  scalar: 1000\n",
			check: func(t *testing.T, s gallery.Settings) {
				if s.Gallery.Opacity != 0 || s.Gallery.Scalar != 360 {
					t.Errorf("opacity %v scalar %v, want 0 360", s.Gallery.Opacity, s.Gallery.Scalar)
				}
			},
		},
		{
			name:   "animation is never restored",
			format: gallery.FormatTOML,
			input:  "[gallery]\nanimate_progress_bar = true\n",
			check: func(t *testing.T, s gallery.Settings) {
				if s.Gallery.AnimateProgressBar {
					t.Error("AnimateProgressBar restored from file")
				}
			},
		},
		{
			name:   "short color is opaque",
			format: gallery.FormatTOML,
			input:  "[gallery]\ncolor = \"#102030\"\n",
			check: func(t *testing.T, s gallery.Settings) {
				if want := gui.RGBA(0x10, 0x20, 0x30, 0xFF); s.Gallery.Color != want {
					t.Errorf("color = %s, want %s", gui.HexColor(s.Gallery.Color), gui.HexColor(want))
				}
			},
		},
		{
			name:   "window flags",
			format: gallery.FormatYAML,
			input:  "windows:\n  Widget Gallery: false\n",
			check: func(t *testing.T, s gallery.Settings) {
				if open, ok := s.Windows[gallery.Name]; !ok || open {
					t.Errorf("windows = %v", s.Windows)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := gallery.Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format gallery.Format
		input  string
	}{
		{"bad color", gallery.FormatTOML, "[gallery]\ncolor = \"blue\"\n"},
		{"bad toml", gallery.FormatTOML, "[gallery\n"},
		{"bad yaml", gallery.FormatYAML, "gallery: [1, 2\n"},
		{"wrong type", gallery.FormatYAML, "gallery:\n  scalar: lots\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := gallery.Decode(strings.NewReader(tt.input), tt.format); err == nil {
				t.Error("Decode succeeded")
			}
		})
	}

	if _, err := gallery.Decode(strings.NewReader(""), gallery.Format(9)); !errors.Is(err, gallery.ErrUnsupportedFormat) {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    gallery.Format
		wantErr bool
	}{
		{"settings.toml", gallery.FormatTOML, false},
		{"a/b/settings.YAML", gallery.FormatYAML, false},
		{"settings.yml", gallery.FormatYAML, false},
		{"settings.json", 0, true},
		{"settings", 0, true},
	}
	for _, tt := range tests {
		got, err := gallery.FormatFromPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, gallery.ErrUnsupportedFormat) {
				t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v", tt.path, got, err)
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			want := customSettings()

			if err := gallery.SaveFile(path, want); err != nil {
				t.Fatalf("SaveFile: %v", err)
			}
			got, err := gallery.LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if !equalSettings(got, want) {
				t.Errorf("loaded %+v, want %+v", got, want)
			}

			entries, err := os.ReadDir(filepath.Dir(path))
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("directory has %d entries, want only the settings file", len(entries))
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := gallery.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestApplyCapture(t *testing.T) {
	g := gallery.New()
	w := gallery.NewWindows(g, &stubDemo{name: "Other"})

	custom := customSettings()
	custom.Apply(g, w)
	if g.State != custom.Gallery {
		t.Errorf("gallery state = %+v", g.State)
	}
	if w.IsOpen(gallery.Name) || !w.IsOpen("Other") {
		t.Errorf("open flags = %v", w.OpenSet())
	}

	if got := gallery.Capture(g, w); !equalSettings(got, custom) {
		t.Errorf("Capture() = %+v, want %+v", got, custom)
	}

	if got := gallery.Capture(nil, nil); !equalSettings(got, gallery.DefaultSettings()) {
		t.Errorf("Capture(nil, nil) = %+v", got)
	}
}
