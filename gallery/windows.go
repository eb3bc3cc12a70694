package gallery

import (
	"log/slog"
	"slices"

	gui "github.com/go-theft-auto/widgetgallery"
)

// Demo is a panel that draws itself in its own window.
type Demo interface {
	Name() string
	Show(ctx *gui.Context, open *bool)
}

// Windows is a launcher listing demos with a checkbox each. Every checked
// demo draws its window; closing the window clears the checkbox.
type Windows struct {
	demos []Demo
	open  map[string]bool
}

// NewWindows creates a launcher. Demos start closed; see SetOpen.
func NewWindows(demos ...Demo) *Windows {
	return &Windows{
		demos: demos,
		open:  make(map[string]bool, len(demos)),
	}
}

// DemosFromRegistry instantiates every registered component that is also a
// Demo, in name order.
func DemosFromRegistry() []Demo {
	var demos []Demo
	for _, name := range gui.ComponentNames() {
		c, ok := gui.NewComponent(name)
		if !ok {
			continue
		}
		if d, ok := c.(Demo); ok {
			demos = append(demos, d)
		}
	}
	return demos
}

// Demos returns the launcher's demos.
func (w *Windows) Demos() []Demo {
	return w.demos
}

// Demo returns the demo named name.
func (w *Windows) Demo(name string) (Demo, bool) {
	i := slices.IndexFunc(w.demos, func(d Demo) bool { return d.Name() == name })
	if i < 0 {
		return nil, false
	}
	return w.demos[i], true
}

// IsOpen reports whether the demo named name is shown.
func (w *Windows) IsOpen(name string) bool {
	return w.open[name]
}

// SetOpen shows or hides the demo named name.
func (w *Windows) SetOpen(name string, open bool) {
	w.open[name] = open
}

// OpenSet returns a copy of the open flags keyed by demo name.
func (w *Windows) OpenSet() map[string]bool {
	out := make(map[string]bool, len(w.demos))
	for _, d := range w.demos {
		out[d.Name()] = w.open[d.Name()]
	}
	return out
}

// Show draws the launcher window and every open demo.
func (w *Windows) Show(ctx *gui.Context) {
	ctx.Window("Demos", nil, gui.DefaultPos(16, 16))(func() {
		for _, d := range w.demos {
			open := w.open[d.Name()]
			if ctx.Checkbox(d.Name(), &open) {
				slog.Debug("demo toggled", "demo", d.Name(), "open", open)
			}
			w.open[d.Name()] = open
		}
	})

	// Closed demos are still called so their windows keep their place.
	for _, d := range w.demos {
		open := w.open[d.Name()]
		wasOpen := open
		d.Show(ctx, &open)
		if wasOpen && !open {
			slog.Debug("demo closed", "demo", d.Name())
		}
		w.open[d.Name()] = open
	}
}
