package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/widgetgallery"
)

// mockRenderer records what it is asked to draw.
type mockRenderer struct {
	renderCalls int
	vertices    []gui.Vertex
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	m.vertices = append(m.vertices, dl.VtxBuffer...)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

// harness drives frames with scripted input.
type harness struct {
	t        *testing.T
	renderer *mockRenderer
	ui       *gui.GUI
	input    *gui.InputState
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gui.ClearFrameStores()
	r := &mockRenderer{}
	return &harness{
		t:        t,
		renderer: r,
		ui:       gui.New(r),
		input:    gui.NewInputState(),
	}
}

// frame runs one frame and clears per-frame input afterwards.
func (h *harness) frame(draw func(ctx *gui.Context)) {
	h.t.Helper()
	h.renderer.renderCalls = 0
	h.renderer.vertices = h.renderer.vertices[:0]

	ctx := h.ui.Begin(h.input, gui.Vec2{X: 800, Y: 600}, 1.0/60)
	draw(ctx)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End: %v", err)
	}
	h.input.Reset()
}

func (h *harness) press(x, y float32) {
	h.input.SetMousePos(x, y)
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
}

func (h *harness) release() {
	h.input.SetMouseButton(gui.MouseButtonLeft, false)
}

// item finds a widget of the last finished frame by label.
func (h *harness) item(label string) gui.ItemResponse {
	h.t.Helper()
	for _, it := range h.ui.Items() {
		if it.Label == label {
			return it
		}
	}
	h.t.Fatalf("no item %q in last frame", label)
	return gui.ItemResponse{}
}

func center(r gui.Rect) (float32, float32) {
	c := r.Center()
	return c.X, c.Y
}

func TestGUIBasicUsage(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Text("Hello World")
		ctx.TextColored("Colored", gui.ColorYellow)
	})

	// Background list only; the foreground list is empty.
	if h.renderer.renderCalls != 1 {
		t.Errorf("render calls = %d, want 1", h.renderer.renderCalls)
	}
	if len(h.ui.Items()) != 2 {
		t.Errorf("items = %d, want 2", len(h.ui.Items()))
	}
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)

	var clicked bool
	h.frame(func(ctx *gui.Context) {
		clicked = ctx.Button("Click Me")
	})
	if clicked {
		t.Fatal("button clicked without input")
	}

	h.press(5, 5)
	h.frame(func(ctx *gui.Context) {
		clicked = ctx.Button("Click Me")
	})
	if !clicked {
		t.Error("button not clicked")
	}

	// Holding the button does not click again.
	h.frame(func(ctx *gui.Context) {
		clicked = ctx.Button("Click Me")
	})
	if clicked {
		t.Error("held button clicked twice")
	}
}

func TestCheckboxToggle(t *testing.T) {
	h := newHarness(t)
	value := false

	for i, want := range []bool{true, false} {
		h.press(4, 4)
		h.frame(func(ctx *gui.Context) {
			ctx.Checkbox("Check", &value)
		})
		h.release()
		h.frame(func(ctx *gui.Context) {
			ctx.Checkbox("Check", &value)
		})
		if value != want {
			t.Fatalf("click %d: value = %v, want %v", i+1, value, want)
		}
	}
}

func TestDisabledScope(t *testing.T) {
	h := newHarness(t)
	value := false
	var clicked, hovered bool

	h.press(4, 4)
	h.frame(func(ctx *gui.Context) {
		ctx.Scope(gui.Disabled(true))(func() {
			clicked = ctx.Button("Apply")
			hovered = ctx.IsItemHovered()
			ctx.Checkbox("Check", &value)
		})
	})

	if clicked {
		t.Error("disabled button clicked")
	}
	if !hovered {
		t.Error("disabled button should still report hover")
	}
	if value {
		t.Error("disabled checkbox toggled")
	}
}

func TestInvisibleScope(t *testing.T) {
	h := newHarness(t)
	var clicked, hovered bool

	h.press(4, 4)
	h.frame(func(ctx *gui.Context) {
		ctx.Scope(gui.Invisible(true))(func() {
			clicked = ctx.Button("Hidden")
			hovered = ctx.IsItemHovered()
			ctx.Separator()
		})
	})

	if clicked || hovered {
		t.Errorf("invisible button clicked=%v hovered=%v", clicked, hovered)
	}
	if n := len(h.renderer.vertices); n != 0 {
		t.Errorf("invisible scope emitted %d vertices", n)
	}
	if it := h.item("Hidden"); it.Rect.W <= 0 {
		t.Error("invisible button should keep its layout space")
	}
}

func TestOpacityScope(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Scope(gui.Opacity(0.5))(func() {
			ctx.Button("Faded")
		})
	})

	if len(h.renderer.vertices) == 0 {
		t.Fatal("no vertices rendered")
	}
	var maxAlpha uint8
	for _, v := range h.renderer.vertices {
		_, _, _, a := gui.UnpackRGBA(v.Color)
		maxAlpha = max(maxAlpha, a)
	}
	if maxAlpha != 128 {
		t.Errorf("max alpha = %d, want 128", maxAlpha)
	}
}

func TestNestedOpacityMultiplies(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.PushOpacity(0.5)
	dl.PushOpacity(0.5)
	if got := dl.Opacity(); got != 0.25 {
		t.Errorf("opacity = %v, want 0.25", got)
	}
	dl.PopOpacity()
	dl.PopOpacity()
	if got := dl.Opacity(); got != 1 {
		t.Errorf("opacity after pop = %v, want 1", got)
	}
}

func TestSliderClickSetsValue(t *testing.T) {
	h := newHarness(t)
	value := float32(42)
	var changed bool

	// The track spans [0,180) with a 10px grab; x=90 is the middle.
	h.press(90, 5)
	h.frame(func(ctx *gui.Context) {
		changed = ctx.SliderFloat("", &value, 0, 360, gui.WithWidth(180), gui.WithSuffix("°"))
	})

	if !changed {
		t.Error("slider did not report a change")
	}
	if value != 180 {
		t.Errorf("value = %v, want 180", value)
	}
}

func TestSliderDisabled(t *testing.T) {
	h := newHarness(t)
	value := float32(42)

	h.press(90, 5)
	h.frame(func(ctx *gui.Context) {
		ctx.Scope(gui.Disabled(true))(func() {
			ctx.SliderFloat("", &value, 0, 360, gui.WithWidth(180))
		})
	})
	if value != 42 {
		t.Errorf("disabled slider changed value to %v", value)
	}
}

func TestDragFloatClampsDrag(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	draw := func(ctx *gui.Context) {
		ctx.DragFloat("", &value, gui.WithID("opacity"), gui.WithDragSpeed(0.01), gui.WithRange(0, 1))
	}

	h.press(10, 5)
	h.frame(draw)

	h.input.SetMousePos(510, 5)
	h.frame(draw)
	if value != 1 {
		t.Errorf("after +500px value = %v, want 1", value)
	}

	h.input.SetMousePos(-1000, 5)
	h.frame(draw)
	if value != 0 {
		t.Errorf("after -1010px value = %v, want 0", value)
	}

	h.release()
	h.frame(draw)
	if value != 0 {
		t.Errorf("release changed value to %v", value)
	}
}

func TestDragFloatSpeed(t *testing.T) {
	h := newHarness(t)
	value := float32(42)
	draw := func(ctx *gui.Context) {
		ctx.DragFloat("", &value, gui.WithDragSpeed(1), gui.WithRange(0, 360))
	}

	h.press(10, 5)
	h.frame(draw)
	h.input.SetMousePos(30, 5)
	h.frame(draw)
	if value != 62 {
		t.Errorf("value = %v, want 62", value)
	}
}

func TestDragFloatTypedValue(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		key   gui.Key
		want  float32
	}{
		{"commit above range", "5", gui.KeyEnter, 1},
		{"commit below range", "-5", gui.KeyEnter, 0},
		{"commit in range", "0.25", gui.KeyEnter, 0.25},
		{"cancel", "0.25", gui.KeyEscape, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			value := float32(0.5)
			draw := func(ctx *gui.Context) {
				ctx.DragFloat("", &value, gui.WithID("opacity"), gui.WithDragSpeed(0.01), gui.WithRange(0, 1))
			}

			// Click without moving enters text editing.
			h.press(10, 5)
			h.frame(draw)
			h.release()
			h.frame(draw)

			for _, r := range tt.typed {
				h.input.AddInputChar(r)
			}
			h.frame(draw)

			h.input.SetKey(tt.key, true)
			h.frame(draw)
			h.input.SetKey(tt.key, false)

			if value != tt.want {
				t.Errorf("value = %v, want %v", value, tt.want)
			}
		})
	}
}

func TestDragFloatCommitsWhenNoLongerDrawn(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	shown := true
	draw := func(ctx *gui.Context) {
		if shown {
			ctx.DragFloat("", &value, gui.WithID("opacity"), gui.WithRange(0, 1))
		}
	}

	h.press(10, 5)
	h.frame(draw)
	h.release()
	h.frame(draw)
	h.input.AddInputChar('0')
	h.frame(draw)
	if !h.ui.Context().WantCaptureKeyboard {
		t.Fatal("field being edited does not capture the keyboard")
	}

	// Focus is released at the start of the frame after the first one
	// that skipped the field.
	shown = false
	h.frame(draw)
	h.frame(draw)

	if h.ui.Context().WantCaptureKeyboard {
		t.Error("keyboard still captured after the field stopped being drawn")
	}
	if value != 0 {
		t.Errorf("value = %v, want the typed 0 committed", value)
	}

	// Drawing it again starts from a clean, non-editing state.
	shown = true
	h.frame(draw)
	h.input.AddInputChar('1')
	h.frame(draw)
	if value != 0 || h.ui.Context().WantCaptureKeyboard {
		t.Errorf("field resumed editing: value %v, capture %v", value, h.ui.Context().WantCaptureKeyboard)
	}
}

func TestProgressBar(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(20, 5)
	h.frame(func(ctx *gui.Context) {
		ctx.ProgressBar(1.5, gui.WithShowPercentage(), gui.WithAnimate(true), gui.WithWidth(200))
	})

	it := h.item("progress")
	if !it.Hovered {
		t.Error("progress bar not hovered")
	}
	if it.Rect.W != 200 {
		t.Errorf("width = %v, want 200", it.Rect.W)
	}
}

func TestItemTooltipOnForeground(t *testing.T) {
	h := newHarness(t)

	h.input.SetMousePos(4, 4)
	h.frame(func(ctx *gui.Context) {
		ctx.Button("Help")
		ctx.ItemTooltip("Shows help")
	})
	// Background plus foreground (the tooltip).
	if h.renderer.renderCalls != 2 {
		t.Errorf("render calls = %d, want 2", h.renderer.renderCalls)
	}

	h.input.SetMousePos(400, 400)
	h.frame(func(ctx *gui.Context) {
		ctx.Button("Help")
		ctx.ItemTooltip("Shows help")
	})
	if h.renderer.renderCalls != 1 {
		t.Errorf("render calls without hover = %d, want 1", h.renderer.renderCalls)
	}
}

func TestGridAlignsColumns(t *testing.T) {
	h := newHarness(t)
	draw := func(ctx *gui.Context) {
		ctx.Grid("grid", gui.Columns(2), gui.GridSpacing(40, 4), gui.Striped(true))(func() {
			ctx.Label("A")
			ctx.Button("first")
			ctx.EndRow()

			ctx.Label("Longer label")
			ctx.Button("second")
			ctx.EndRow()
		})
	}

	h.frame(draw)
	h.frame(draw)

	first, second := h.item("first"), h.item("second")
	if first.Rect.X != second.Rect.X {
		t.Errorf("column 1 x differs: %v vs %v", first.Rect.X, second.Rect.X)
	}
	label := h.item("Longer label")
	if want := label.Rect.X + label.Rect.W + 40; first.Rect.X != want {
		t.Errorf("column 1 x = %v, want %v", first.Rect.X, want)
	}
	if second.Rect.Y < first.Rect.Y+first.Rect.H+4 {
		t.Errorf("row spacing: second row at %v, first ends at %v", second.Rect.Y, first.Rect.Y+first.Rect.H)
	}
}

func TestGridWrapsWithoutEndRow(t *testing.T) {
	h := newHarness(t)
	draw := func(ctx *gui.Context) {
		ctx.Grid("grid", gui.Columns(2))(func() {
			ctx.Label("a")
			ctx.Label("b")
			ctx.Label("c")
		})
	}
	h.frame(draw)

	a, c := h.item("a"), h.item("c")
	if c.Rect.X != a.Rect.X || c.Rect.Y <= a.Rect.Y {
		t.Errorf("third cell at %+v, want below first at %+v", c.Rect, a.Rect)
	}
}

func TestColorEditButtonPopup(t *testing.T) {
	h := newHarness(t)
	color := gui.LinearMultiply(gui.LightBlue, 0.5)
	var id gui.ID
	var open bool
	draw := func(ctx *gui.Context) {
		ctx.ColorEditButton("##color", &color)
		id = ctx.LastItem().ID
		open = ctx.IsPopupOpen(id)
	}

	h.press(5, 5)
	h.frame(draw)
	h.release()
	if !open {
		t.Fatal("popup did not open on click")
	}
	if h.renderer.renderCalls != 2 {
		t.Errorf("render calls = %d, want popup on the foreground list", h.renderer.renderCalls)
	}

	// Drag the red slider to its right end.
	h.frame(draw)
	red := h.item("R")
	var labelW float32
	h.frame(func(ctx *gui.Context) {
		labelW = ctx.MeasureText("R").X + ctx.Style().ItemSpacing
		draw(ctx)
	})
	h.press(red.Rect.X+labelW+139, red.Rect.Y+red.Rect.H/2)
	h.frame(draw)
	h.release()

	if r, g, b, a := gui.UnpackRGBA(color); r != 255 || g != 131 || b != 188 || a != 128 {
		t.Errorf("color = %d,%d,%d,%d, want 255,131,188,128", r, g, b, a)
	}
	if !open {
		t.Fatal("clicking inside the popup closed it")
	}

	h.input.SetKey(gui.KeyEscape, true)
	h.frame(draw)
	h.input.SetKey(gui.KeyEscape, false)
	if open {
		t.Error("escape did not close the popup")
	}
}

func TestPopupClosesOnOutsideClick(t *testing.T) {
	h := newHarness(t)
	color := gui.ColorWhite
	var open bool
	draw := func(ctx *gui.Context) {
		ctx.ColorEditButton("##color", &color)
		open = ctx.IsPopupOpen(ctx.LastItem().ID)
	}

	h.press(5, 5)
	h.frame(draw)
	h.release()
	h.frame(draw)
	if !open {
		t.Fatal("popup not open")
	}

	h.press(700, 500)
	h.frame(draw)
	if open {
		t.Error("outside click did not close the popup")
	}
}

func TestWindowCloseButton(t *testing.T) {
	h := newHarness(t)
	open := true
	var rect gui.Rect
	var pad, lh float32
	draw := func(ctx *gui.Context) {
		pad, lh = ctx.Style().WindowPadding, ctx.LineHeight()
		ctx.Window("Test", &open, gui.DefaultPos(100, 100), gui.DefaultWidth(280))(func() {
			ctx.Text("Hello")
		})
		rect, _ = ctx.WindowRect("Test")
	}

	h.frame(draw)
	if rect.X != 100 || rect.Y != 100 || rect.W != 280 {
		t.Fatalf("window rect = %+v, want at (100,100) width 280", rect)
	}

	titleH := lh + 2*h.ui.Style().ButtonPadding
	h.press(rect.X+rect.W-pad-lh/2, rect.Y+titleH/2)
	h.frame(draw)
	h.release()
	if open {
		t.Fatal("close button did not close the window")
	}

	h.frame(draw)
	if h.renderer.renderCalls != 0 {
		t.Errorf("closed window rendered %d lists", h.renderer.renderCalls)
	}
}

func TestWindowDrag(t *testing.T) {
	h := newHarness(t)
	var rect gui.Rect
	draw := func(ctx *gui.Context) {
		ctx.Window("Drag", nil, gui.DefaultPos(100, 100), gui.DefaultWidth(200))(func() {
			ctx.Text("Body")
		})
		rect, _ = ctx.WindowRect("Drag")
	}

	h.frame(draw)
	h.press(110, 105)
	h.frame(draw)
	h.input.SetMousePos(160, 135)
	h.frame(draw)
	h.release()
	h.frame(draw)

	if rect.X != 150 || rect.Y != 130 {
		t.Errorf("window at (%v,%v), want (150,130)", rect.X, rect.Y)
	}
}

func TestWindowResizeWidthOnly(t *testing.T) {
	h := newHarness(t)
	var rect gui.Rect
	draw := func(ctx *gui.Context) {
		ctx.Window("Resize", nil, gui.DefaultPos(100, 100), gui.DefaultWidth(280), gui.Resizable(true, false))(func() {
			ctx.Text("Body")
		})
		rect, _ = ctx.WindowRect("Resize")
	}

	h.frame(draw)
	startH := rect.H
	h.press(rect.X+rect.W-1, rect.Y+rect.H-4)
	h.frame(draw)
	h.input.SetMousePos(rect.X+rect.W+59, rect.Y+rect.H+40)
	h.frame(draw)
	h.release()
	h.frame(draw)

	if rect.W != 340 {
		t.Errorf("width = %v, want 340", rect.W)
	}
	if rect.H != startH {
		t.Errorf("height changed from %v to %v", startH, rect.H)
	}
}

func TestWindowMinSize(t *testing.T) {
	h := newHarness(t)
	var rect gui.Rect
	draw := func(ctx *gui.Context) {
		ctx.Window("Narrow", nil,
			gui.DefaultPos(100, 100),
			gui.DefaultWidth(280),
			gui.Resizable(true, false),
			gui.MinSize(200, 0),
		)(func() {
			ctx.Text("Body")
		})
		rect, _ = ctx.WindowRect("Narrow")
	}

	h.frame(draw)
	h.press(rect.X+rect.W-1, rect.Y+rect.H-4)
	h.frame(draw)
	h.input.SetMousePos(rect.X+rect.W-201, rect.Y+rect.H-4)
	h.frame(draw)
	h.release()
	h.frame(draw)

	if rect.W != 200 {
		t.Errorf("width = %v, want the 200 minimum", rect.W)
	}
}

func TestWindowSnapToEdges(t *testing.T) {
	tests := []struct {
		name  string
		opts  []gui.WindowOption
		wantX float32
	}{
		{"default distance", nil, 20},
		{"wider distance", []gui.WindowOption{gui.SnapToEdges(30)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			var rect gui.Rect
			opts := append([]gui.WindowOption{gui.DefaultPos(100, 100), gui.DefaultWidth(200)}, tt.opts...)
			draw := func(ctx *gui.Context) {
				ctx.Window("Snap", nil, opts...)(func() {
					ctx.Text("Body")
				})
				rect, _ = ctx.WindowRect("Snap")
			}

			h.frame(draw)
			h.press(110, 105)
			h.frame(draw)
			h.input.SetMousePos(30, 105)
			h.frame(draw)
			h.release()
			h.frame(draw)

			if rect.X != tt.wantX || rect.Y != 100 {
				t.Errorf("window at (%v,%v), want (%v,100)", rect.X, rect.Y, tt.wantX)
			}
		})
	}
}

func TestWindowOcclusion(t *testing.T) {
	h := newHarness(t)
	var backClicked bool
	draw := func(ctx *gui.Context) {
		ctx.Window("Back", nil, gui.DefaultPos(100, 100), gui.DefaultWidth(200))(func() {
			backClicked = ctx.Button("Under")
		})
		ctx.Window("Front", nil, gui.DefaultPos(100, 100), gui.DefaultWidth(200))(func() {
			ctx.Text("Over")
		})
	}

	h.frame(draw)
	under := h.item("Under")
	x, y := center(under.Rect)
	h.press(x, y)
	h.frame(draw)

	if backClicked {
		t.Error("click went through the front window")
	}
}

func TestLinearMultiplyLightBlue(t *testing.T) {
	got := gui.LinearMultiply(gui.LightBlue, 0.5)
	if want := gui.RGBA(101, 131, 188, 128); got != want {
		r, g, b, a := gui.UnpackRGBA(got)
		t.Errorf("LinearMultiply = %d,%d,%d,%d, want 101,131,188,128", r, g, b, a)
	}
}

func TestHexColor(t *testing.T) {
	c := gui.RGBA(101, 131, 188, 128)
	if got := gui.HexColor(c); got != "#6583BC80" {
		t.Errorf("HexColor = %q", got)
	}
	for _, s := range []string{"#6583BC80", "6583bc80"} {
		got, err := gui.ParseHexColor(s)
		if err != nil || got != c {
			t.Errorf("ParseHexColor(%q) = %#x, %v", s, got, err)
		}
	}
	if got, err := gui.ParseHexColor("#FFFFFF"); err != nil || got != gui.ColorWhite {
		t.Errorf("ParseHexColor(#FFFFFF) = %#x, %v", got, err)
	}
	for _, s := range []string{"", "#FFF", "#GGGGGGGG"} {
		if _, err := gui.ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded", s)
		}
	}
}

func TestStyleByName(t *testing.T) {
	for _, name := range gui.StyleNames {
		if _, err := gui.StyleByName(name); err != nil {
			t.Errorf("StyleByName(%q): %v", name, err)
		}
	}
	if _, err := gui.StyleByName("neon"); err == nil {
		t.Error("StyleByName(neon) succeeded")
	}
}
