package gallery_test

import (
	"testing"

	gui "github.com/go-theft-auto/widgetgallery"
	"github.com/go-theft-auto/widgetgallery/gallery"
)

type stubDemo struct {
	name  string
	shown int
}

func (d *stubDemo) Name() string { return d.name }

func (d *stubDemo) Show(ctx *gui.Context, open *bool) {
	d.shown++
	ctx.Window(d.name, open, gui.DefaultPos(400, 300))(func() {
		ctx.Text(d.name + " body")
	})
}

func TestDemosFromRegistry(t *testing.T) {
	demos := gallery.DemosFromRegistry()
	for _, d := range demos {
		if d.Name() == gallery.Name {
			return
		}
	}
	t.Errorf("registry demos %v do not include %q", demos, gallery.Name)
}

func TestWindowsOpenFlags(t *testing.T) {
	a, b := &stubDemo{name: "A"}, &stubDemo{name: "B"}
	w := gallery.NewWindows(a, b)

	if w.IsOpen("A") || w.IsOpen("B") {
		t.Fatal("demos should start closed")
	}
	w.SetOpen("B", true)

	got := w.OpenSet()
	if len(got) != 2 || got["A"] || !got["B"] {
		t.Errorf("OpenSet() = %v", got)
	}

	if d, ok := w.Demo("A"); !ok || d != a {
		t.Errorf("Demo(A) = %v, %v", d, ok)
	}
	if _, ok := w.Demo("missing"); ok {
		t.Error("Demo(missing) found")
	}
}

func TestWindowsLauncherToggles(t *testing.T) {
	h := newHarness(t)
	demo := &stubDemo{name: "Stub"}
	w := gallery.NewWindows(demo)
	draw := w.Show

	h.frame(draw)
	if demo.shown != 1 {
		t.Errorf("closed demo shown %d times, want 1", demo.shown)
	}
	if h.renderer.renderCalls != 1 {
		t.Errorf("render calls = %d, want only the launcher", h.renderer.renderCalls)
	}

	h.click(h.item("Stub").Rect, draw)
	if !w.IsOpen("Stub") {
		t.Fatal("launcher checkbox did not open the demo")
	}

	h.frame(draw)
	if _, ok := h.ui.Context().WindowRect("Stub"); !ok {
		t.Error("opened demo window not drawn")
	}
}

func TestWindowsCloseButtonClearsFlag(t *testing.T) {
	h := newHarness(t)
	demo := &stubDemo{name: "Stub"}
	w := gallery.NewWindows(demo)
	w.SetOpen("Stub", true)
	var lh float32
	draw := func(ctx *gui.Context) {
		lh = ctx.LineHeight()
		w.Show(ctx)
	}

	h.frame(draw)
	rect, ok := h.ui.Context().WindowRect("Stub")
	if !ok {
		t.Fatal("demo window not drawn")
	}

	style := h.ui.Style()
	titleH := lh + 2*style.ButtonPadding
	h.click(gui.Rect{
		X: rect.X + rect.W - style.WindowPadding - lh,
		Y: rect.Y + (titleH-lh)/2,
		W: lh,
		H: lh,
	}, draw)

	if w.IsOpen("Stub") {
		t.Error("close button did not clear the open flag")
	}
}
