// Package gallery implements the Widget Gallery demo: one example of each
// common widget in a striped two-column grid, plus controls that hide,
// disable or fade the whole grid.
package gallery

import (
	gui "github.com/go-theft-auto/widgetgallery"
)

// Name is the title of the gallery window.
const Name = "Widget Gallery"

// ScalarMax is the upper bound of State.Scalar; the progress bar shows
// Scalar/ScalarMax.
const ScalarMax = 360

// State is everything the gallery widgets are bound to.
type State struct {
	Enabled bool    // Widgets accept input
	Visible bool    // Widgets are drawn
	Opacity float32 // Alpha multiplier in [0,1]
	Boolean bool
	Scalar  float32 // In [0, ScalarMax]
	Text    string  // Kept for settings compatibility; no widget shows it
	Color   uint32  // Packed 0xAABBGGRR

	// AnimateProgressBar is recomputed every frame from the progress bar's
	// hover state.
	AnimateProgressBar bool
}

// DefaultColor is light blue at half intensity.
var DefaultColor = gui.LinearMultiply(gui.LightBlue, 0.5)

// DefaultState returns the state of a freshly opened gallery.
func DefaultState() State {
	return State{
		Enabled: true,
		Visible: true,
		Opacity: 1,
		Boolean: false,
		Scalar:  42,
		Text:    "",
		Color:   DefaultColor,
	}
}

// Clamp restores the numeric invariants.
func (s *State) Clamp() {
	s.Opacity = clamp(s.Opacity, 0, 1)
	s.Scalar = clamp(s.Scalar, 0, ScalarMax)
}

func clamp(v, lo, hi float32) float32 {
	if v != v { // NaN
		return lo
	}
	return max(lo, min(hi, v))
}

// ProgressFraction is the progress bar value for scalar.
func ProgressFraction(scalar float32) float32 {
	return scalar / ScalarMax
}

// Gallery is the widget gallery demo.
type Gallery struct {
	State
}

// New returns a gallery with DefaultState.
func New() *Gallery {
	return &Gallery{State: DefaultState()}
}

// Name implements Demo.
func (g *Gallery) Name() string {
	return Name
}

// Show draws the gallery in its own window. The window can be resized
// horizontally only and closes through its title bar button, which sets
// *open to false.
func (g *Gallery) Show(ctx *gui.Context, open *bool) {
	ctx.Window(g.Name(), open,
		gui.DefaultWidth(280),
		gui.Resizable(true, false),
	)(func() {
		g.UI(ctx)
	})
}

// Render implements gui.Component so the gallery can be embedded in any layout.
func (g *Gallery) Render(ctx *gui.Context) {
	g.UI(ctx)
}

// UI draws the gallery into the current layout.
func (g *Gallery) UI(ctx *gui.Context) {
	ctx.Scope(
		gui.Disabled(!g.Enabled),
		gui.Invisible(!g.Visible),
		gui.Opacity(g.Opacity),
	)(func() {
		ctx.Grid("my_grid", gui.Columns(2), gui.GridSpacing(40, 4), gui.Striped(true))(func() {
			g.gridContents(ctx)
		})
	})

	ctx.Separator()

	ctx.HStack()(func() {
		ctx.Checkbox("Visible", &g.Visible)
		ctx.ItemTooltip("Uncheck to hide all widgets.")
		if !g.Visible {
			return
		}

		ctx.Checkbox("Interactive", &g.Enabled)
		ctx.ItemTooltip("Uncheck to inspect how widgets look when disabled.")

		ctx.DragFloat("", &g.Opacity,
			gui.WithID("opacity"),
			gui.WithDragSpeed(0.01),
			gui.WithRange(0, 1),
		)
		hovered := ctx.IsItemHovered()
		ctx.Label("Opacity")
		if hovered || ctx.IsItemHovered() {
			ctx.Tooltip("Reduce this value to make widgets semi-transparent")
		}
	})
}

func (g *Gallery) gridContents(ctx *gui.Context) {
	ctx.Label("Label")
	ctx.Label("Welcome to the widget gallery!")
	ctx.EndRow()

	ctx.Label("Button")
	if ctx.Button("Click me!") {
		g.Boolean = !g.Boolean
	}
	ctx.EndRow()

	ctx.Label("Checkbox")
	ctx.Checkbox("Checkbox", &g.Boolean)
	ctx.EndRow()

	ctx.Label("Slider")
	ctx.SliderFloat("", &g.Scalar, 0, ScalarMax, gui.WithFormat("%.1f"), gui.WithSuffix("°"))
	ctx.EndRow()

	ctx.Label("DragValue")
	ctx.DragFloat("", &g.Scalar,
		gui.WithID("scalar"),
		gui.WithFormat("%.1f"),
		gui.WithDragSpeed(1),
		gui.WithRange(0, ScalarMax),
	)
	ctx.EndRow()

	ctx.Label("ProgressBar")
	ctx.ProgressBar(ProgressFraction(g.Scalar),
		gui.WithShowPercentage(),
		gui.WithAnimate(g.AnimateProgressBar),
	)
	ctx.ItemTooltip("The progress bar can be animated!")
	g.AnimateProgressBar = ctx.IsItemHovered()
	ctx.EndRow()

	ctx.Label("Color picker")
	ctx.ColorEditButton("##color", &g.Color)
	ctx.EndRow()

	ctx.Label("Separator")
	ctx.Separator()
	ctx.EndRow()
}

func init() {
	gui.RegisterComponent("widget_gallery", func() gui.Component {
		return New()
	})
}
