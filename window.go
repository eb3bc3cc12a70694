package gui

// dragState tracks a title-bar drag or an edge resize in progress.
type dragState struct {
	active  bool
	offset  Vec2 // Window position minus mouse position at drag start
	start   Vec2 // Mouse position at drag start
	startSz Vec2 // Window size at drag start
}

// windowState persists a window's placement between frames.
type windowState struct {
	Pos    Vec2
	Width  float32 // Outer width, widened to fit content
	Height float32 // Outer height, only used when height-resizable

	placed     bool
	lastHeight float32 // Outer height drawn last frame

	drag   dragState
	resize dragState
}

var windowStore = NewFrameStore[windowState]()

// WindowOption configures a Window.
type WindowOption func(*windowConfig)

type windowConfig struct {
	pos          Vec2
	hasPos       bool
	width        float32
	resizeW      bool
	resizeH      bool
	minSize      Vec2
	snapDistance float32
}

// DefaultPos places the window the first time it is shown.
func DefaultPos(x, y float32) WindowOption {
	return func(c *windowConfig) {
		c.pos = Vec2{X: x, Y: y}
		c.hasPos = true
	}
}

// DefaultWidth sets the initial outer width. The window still grows when its
// content needs more room.
func DefaultWidth(w float32) WindowOption {
	return func(c *windowConfig) { c.width = w }
}

// Resizable enables the right edge (width) and bottom edge (height) grips.
func Resizable(width, height bool) WindowOption {
	return func(c *windowConfig) {
		c.resizeW = width
		c.resizeH = height
	}
}

// MinSize limits how small the window can be resized.
func MinSize(w, h float32) WindowOption {
	return func(c *windowConfig) { c.minSize = Vec2{X: w, Y: h} }
}

// SnapToEdges makes a dragged window stick to the display edges when it
// comes within distance pixels of them.
func SnapToEdges(distance float32) WindowOption {
	return func(c *windowConfig) { c.snapDistance = distance }
}

// Window draws a movable window with a title bar. When open is non-nil the
// title bar has a close button that sets *open to false; a closed window
// draws nothing but keeps its position.
//
//	ctx.Window("Widget Gallery", &open, DefaultWidth(280), Resizable(true, false))(func() {
//	    gallery.UI(ctx)
//	})
func (ctx *Context) Window(title string, open *bool, opts ...WindowOption) func(func()) {
	return func(contents func()) {
		cfg := windowConfig{minSize: Vec2{X: 120, Y: 60}, snapDistance: 8}
		for _, opt := range opts {
			opt(&cfg)
		}

		id := HashID("window/" + title)
		state := windowStore.Get(id, windowState{})
		if open != nil && !*open {
			state.drag.active = false
			state.resize.active = false
			return
		}
		if !state.placed {
			ctx.placeWindow(state, cfg)
		}

		style := ctx.style
		pad := style.WindowPadding
		titleH := ctx.frameHeight()

		parentDL := ctx.DrawList
		parentLayouts := ctx.layoutStack
		parentCursor := ctx.cursor
		parentWindow := ctx.currentWindow

		dl := ctx.windows.begin(id, ctx.FrameCount)
		ctx.DrawList = dl
		ctx.currentWindow = id

		width := ctx.windowWidth(state, cfg)
		closeSize := ctx.lineHeight()
		closeRect := Rect{
			X: state.Pos.X + width - pad - closeSize,
			Y: state.Pos.Y + (titleH-closeSize)/2,
			W: closeSize,
			H: closeSize,
		}
		closeHovered := open != nil && ctx.isHovered(closeRect)
		if open != nil && ctx.isClicked(id, closeRect) {
			*open = false
			ctx.takeClick()
			guiLogger.Debug("window closed", "title", title)
		}

		ctx.handleWindowResize(id, state, cfg, width)
		width = ctx.windowWidth(state, cfg)
		ctx.handleWindowDrag(id, state, cfg, Rect{X: state.Pos.X, Y: state.Pos.Y, W: width, H: titleH})

		x, y := state.Pos.X, state.Pos.Y
		closeRect.X = x + width - pad - closeSize
		closeRect.Y = y + (titleH-closeSize)/2

		bg := dl.ReserveRect()
		dl.AddRect(x, y, width, titleH, style.TitleBgColor)
		dl.PushClipRect(x, y, closeRect.X, y+titleH)
		ctx.AddText(x+pad, y+(titleH-ctx.lineHeight())/2, title, style.TitleTextColor)
		dl.PopClipRect()
		if open != nil {
			ctx.drawCloseButton(closeRect, closeHovered)
		}

		clipBottom := float32(1e9)
		if cfg.resizeH && state.Height > 0 {
			clipBottom = y + state.Height - pad
		}
		dl.PushClipRect(x, y+titleH, x+width, clipBottom)

		layout := &Layout{
			Type:   LayoutVertical,
			StartX: x + pad,
			StartY: y + titleH + pad,
			Width:  width - pad*2,
		}
		ctx.layoutStack = []*Layout{layout}
		ctx.cursor = Vec2{X: layout.StartX, Y: layout.StartY}

		ctx.PushIDValue(id)
		contents()
		ctx.PopID()

		dl.PopClipRect()

		outerW := maxf(width, layout.MaxWidth+pad*2)
		if outerW > state.Width {
			state.Width = outerW
		}
		outerH := titleH + layout.MaxHeight + pad*2
		if cfg.resizeH && state.Height > 0 {
			outerH = state.Height
		}

		dl.FillReservedRect(bg, x, y, outerW, outerH, style.WindowBgColor)
		if style.BorderSize > 0 {
			dl.AddRectOutline(x, y, outerW, outerH, style.WindowBorderColor, style.BorderSize)
		}
		if cfg.resizeW || cfg.resizeH {
			ctx.drawResizeGrip(x+outerW, y+outerH, ctx.isActive(id) && state.resize.active)
		}
		state.lastHeight = outerH

		ctx.windows.end(id, Rect{X: x, Y: y, W: outerW, H: outerH})

		ctx.DrawList = parentDL
		ctx.layoutStack = parentLayouts
		ctx.cursor = parentCursor
		ctx.currentWindow = parentWindow
	}
}

// placeWindow sets the first-frame position and size.
func (ctx *Context) placeWindow(state *windowState, cfg windowConfig) {
	if cfg.hasPos {
		state.Pos = cfg.pos
	} else {
		// Cascade new windows so they do not stack exactly.
		n := float32(ctx.windows.placed % 8)
		state.Pos = Vec2{X: 32 + n*24, Y: 32 + n*24}
	}
	state.Width = cfg.width
	state.placed = true
	ctx.windows.placed++
}

func (ctx *Context) windowWidth(state *windowState, cfg windowConfig) float32 {
	if state.Width > 0 {
		return maxf(state.Width, cfg.minSize.X)
	}
	return cfg.minSize.X
}

// handleWindowDrag moves the window while its title bar is held.
func (ctx *Context) handleWindowDrag(id ID, state *windowState, cfg windowConfig, titleBar Rect) {
	mouse := ctx.mousePos()

	if ctx.isClicked(id, titleBar) {
		ctx.setActive(id)
		ctx.takeClick()
		state.drag = dragState{
			active: true,
			offset: state.Pos.Sub(mouse),
			start:  mouse,
		}
	}

	if !state.drag.active {
		return
	}
	if !ctx.isActive(id) || ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft) {
		state.drag.active = false
		return
	}

	pos := mouse.Add(state.drag.offset)

	// Keep the title bar reachable.
	const keep = 40
	pos.X = clampf(pos.X, keep-titleBar.W, maxf(0, ctx.DisplaySize.X-keep))
	pos.Y = clampf(pos.Y, 0, maxf(0, ctx.DisplaySize.Y-titleBar.H))

	if d := cfg.snapDistance; d > 0 {
		pos.X = snapEdge(pos.X, 0, d)
		pos.X = snapEdge(pos.X+titleBar.W, ctx.DisplaySize.X, d) - titleBar.W
		pos.Y = snapEdge(pos.Y, 0, d)
		pos.Y = snapEdge(pos.Y+state.lastHeight, ctx.DisplaySize.Y, d) - state.lastHeight
	}
	state.Pos = pos
}

// snapEdge returns edge when v is within distance of it.
func snapEdge(v, edge, distance float32) float32 {
	if v > edge-distance && v < edge+distance {
		return edge
	}
	return v
}

// handleWindowResize drags the right and bottom edges.
func (ctx *Context) handleWindowResize(id ID, state *windowState, cfg windowConfig, width float32) {
	if !cfg.resizeW && !cfg.resizeH {
		return
	}
	grip := ctx.style.ResizeGripSize
	if grip <= 0 {
		grip = 6
	}
	x, y := state.Pos.X, state.Pos.Y
	height := state.lastHeight
	if cfg.resizeH && state.Height > 0 {
		height = state.Height
	}

	var hit bool
	if cfg.resizeW {
		hit = ctx.isClicked(id, Rect{X: x + width - grip/2, Y: y, W: grip, H: height})
	}
	if !hit && cfg.resizeH {
		hit = ctx.isClicked(id, Rect{X: x, Y: y + height - grip/2, W: width, H: grip})
	}
	if hit {
		ctx.setActive(id)
		ctx.takeClick()
		state.resize = dragState{
			active:  true,
			start:   ctx.mousePos(),
			startSz: Vec2{X: width, Y: height},
		}
	}

	if !state.resize.active {
		return
	}
	if !ctx.isActive(id) || ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft) {
		state.resize.active = false
		return
	}

	delta := ctx.mousePos().Sub(state.resize.start)
	if cfg.resizeW {
		state.Width = maxf(cfg.minSize.X, state.resize.startSz.X+delta.X)
	}
	if cfg.resizeH {
		state.Height = maxf(cfg.minSize.Y, state.resize.startSz.Y+delta.Y)
	}
}

func (ctx *Context) drawCloseButton(rect Rect, hovered bool) {
	dl := ctx.DrawList
	if hovered {
		dl.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.ButtonHoveredColor)
	}
	inset := rect.W * 0.25
	x1, y1 := rect.X+inset, rect.Y+inset
	x2, y2 := rect.X+rect.W-inset, rect.Y+rect.H-inset
	dl.AddLine(x1, y1, x2, y2, ctx.style.TitleTextColor, 1.5)
	dl.AddLine(x1, y2, x2, y1, ctx.style.TitleTextColor, 1.5)
}

// drawResizeGrip draws the triangle in the bottom-right corner.
func (ctx *Context) drawResizeGrip(right, bottom float32, active bool) {
	size := ctx.style.ResizeGripSize * 2
	color := ctx.style.ButtonHoveredColor
	if active {
		color = ctx.style.ButtonActiveColor
	}
	ctx.DrawList.AddTriangle(right, bottom-size, right, bottom, right-size, bottom, color)
}

// windowRecord is the manager's view of one window.
type windowRecord struct {
	rect      Rect
	lastFrame uint64
	list      *DrawList
}

// windowManager orders windows front to back and owns their draw lists.
type windowManager struct {
	order   []ID // Back to front
	records map[ID]*windowRecord
	placed  int
}

func newWindowManager() windowManager {
	return windowManager{records: make(map[ID]*windowRecord)}
}

// beginFrame returns the frontmost window under the mouse using last
// frame's rectangles, and raises it when clicked.
func (wm *windowManager) beginFrame(ctx *Context) ID {
	if ctx.Input == nil {
		return 0
	}
	mouse := ctx.Input.MousePos()
	for i := len(wm.order) - 1; i >= 0; i-- {
		id := wm.order[i]
		rec := wm.records[id]
		if rec.lastFrame+1 < ctx.FrameCount || !rec.rect.Contains(mouse) {
			continue
		}
		if ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.popup.containsMouse(ctx) {
			wm.raise(id)
		}
		return id
	}
	return 0
}

func (wm *windowManager) raise(id ID) {
	for i, other := range wm.order {
		if other == id {
			copy(wm.order[i:], wm.order[i+1:])
			wm.order[len(wm.order)-1] = id
			return
		}
	}
}

// begin returns the draw list for window id, creating the record on first use.
func (wm *windowManager) begin(id ID, frame uint64) *DrawList {
	rec, ok := wm.records[id]
	if !ok {
		rec = &windowRecord{}
		wm.records[id] = rec
		wm.order = append(wm.order, id)
	}
	rec.lastFrame = frame
	if rec.list == nil {
		rec.list = AcquireDrawList()
	}
	return rec.list
}

func (wm *windowManager) end(id ID, rect Rect) {
	if rec, ok := wm.records[id]; ok {
		rec.rect = rect
	}
}

// endFrame hands over the lists drawn this frame, back to front, and forgets
// windows that were not drawn. The caller releases the lists.
func (wm *windowManager) endFrame(frame uint64) []*DrawList {
	lists := make([]*DrawList, 0, len(wm.order))
	kept := wm.order[:0]
	for _, id := range wm.order {
		rec := wm.records[id]
		if rec.list != nil {
			lists = append(lists, rec.list)
			rec.list = nil
		}
		if rec.lastFrame < frame {
			delete(wm.records, id)
			continue
		}
		kept = append(kept, id)
	}
	wm.order = kept
	return lists
}

// WindowRect returns the outer rectangle a window occupied on the last frame
// it was drawn.
func (ctx *Context) WindowRect(title string) (Rect, bool) {
	rec, ok := ctx.windows.records[HashID("window/"+title)]
	if !ok {
		return Rect{}, false
	}
	return rec.rect, true
}
