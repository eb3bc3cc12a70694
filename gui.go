package gui

import "fmt"

// Renderer is the interface backends implement to draw GUI output.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate-mode UI system across frames.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context

	lastItems []ItemResponse
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI: the background list first,
// then every window in z-order, then popups and tooltips.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}

	g.lastItems = append(g.lastItems[:0], ctx.items...)

	lists := make([]*DrawList, 0, 2+len(ctx.windows.order))
	lists = append(lists, ctx.DrawList)
	lists = append(lists, ctx.windows.endFrame(ctx.FrameCount)...)
	lists = append(lists, ctx.ForegroundDrawList)

	var firstErr error
	for _, dl := range lists {
		if firstErr == nil && len(dl.VtxBuffer) > 0 {
			if err := g.renderer.Render(dl); err != nil {
				firstErr = fmt.Errorf("render frame %d: %w", ctx.FrameCount, err)
			}
		}
		ReleaseDrawList(dl)
	}

	ctx.DrawList = nil
	ctx.ForegroundDrawList = nil

	return firstErr
}

// Context returns the GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Items returns the widget responses recorded during the last finished frame.
func (g *GUI) Items() []ItemResponse {
	return g.lastItems
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
