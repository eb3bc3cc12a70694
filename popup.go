package gui

// popupState tracks the single open popup. Only one popup is open at a time;
// opening another closes the first.
type popupState struct {
	owner   ID
	rect    Rect // Bounds drawn on the previous frame
	seen    bool // Owner drew the popup this frame
	drawing bool // Popup contents are being drawn
}

// beginFrame closes a popup whose owner stopped drawing it.
func (p *popupState) beginFrame() {
	if p.owner != 0 && !p.seen {
		p.owner = 0
		p.rect = Rect{}
	}
	p.seen = false
	p.drawing = false
}

func (p *popupState) containsMouse(ctx *Context) bool {
	return p.owner != 0 && ctx.Input != nil && p.rect.Contains(ctx.Input.MousePos())
}

// OpenPopup opens the popup owned by id, closing any other.
func (ctx *Context) OpenPopup(id ID) {
	if ctx.popup.owner != id {
		ctx.popup = popupState{owner: id, seen: true}
	}
}

// ClosePopup closes the open popup.
func (ctx *Context) ClosePopup() {
	ctx.popup = popupState{}
}

// IsPopupOpen reports whether id owns the open popup.
func (ctx *Context) IsPopupOpen(id ID) bool {
	return id != 0 && ctx.popup.owner == id
}

// Popup draws the contents of popup id below anchor, on top of every window.
// It does nothing unless OpenPopup(id) was called. A click outside both the
// popup and the anchor, or Escape, closes it.
//
//	if ctx.Button("Pick") {
//	    ctx.OpenPopup(id)
//	}
//	ctx.Popup(id, ctx.LastItem().Rect, 0, func() {
//	    ctx.SliderFloat("Hue", &hue, 0, 360)
//	})
func (ctx *Context) Popup(id ID, anchor Rect, width float32, contents func()) {
	p := &ctx.popup
	if p.owner != id || ctx.popup.drawing {
		return
	}

	if ctx.Input != nil {
		mouse := ctx.Input.MousePos()
		outside := ctx.Input.MouseClicked(MouseButtonLeft) &&
			!p.rect.Contains(mouse) && !anchor.Contains(mouse)
		if outside || ctx.Input.KeyPressed(KeyEscape) {
			guiLogger.Debug("popup closed", "id", id, "escape", !outside)
			ctx.ClosePopup()
			return
		}
	}
	p.seen = true

	style := ctx.style
	pad := style.WindowPadding
	if width <= 0 {
		width = 200
	}

	// Place below the anchor, flipping above or shifting left when the
	// previous frame's size would leave the display.
	pos := Vec2{X: anchor.X, Y: anchor.Y + anchor.H + style.ItemSpacing}
	if h := p.rect.H; h > 0 && pos.Y+h > ctx.DisplaySize.Y {
		pos.Y = maxf(0, anchor.Y-style.ItemSpacing-h)
	}
	if pos.X+width > ctx.DisplaySize.X {
		pos.X = maxf(0, ctx.DisplaySize.X-width)
	}

	parentDL := ctx.DrawList
	parentLayouts := ctx.layoutStack
	parentCursor := ctx.cursor
	parentDisabled, parentInvisible := ctx.disabledDepth, ctx.invisibleDepth

	dl := ctx.ForegroundDrawList
	ctx.DrawList = dl
	ctx.disabledDepth, ctx.invisibleDepth = 0, 0
	p.drawing = true

	bg := dl.ReserveRect()
	layout := &Layout{
		Type:   LayoutVertical,
		StartX: pos.X + pad,
		StartY: pos.Y + pad,
		Width:  width - pad*2,
	}
	ctx.layoutStack = []*Layout{layout}
	ctx.cursor = Vec2{X: layout.StartX, Y: layout.StartY}

	ctx.PushIDValue(id)
	contents()
	ctx.PopID()

	rect := Rect{
		X: pos.X,
		Y: pos.Y,
		W: maxf(width, layout.MaxWidth+pad*2),
		H: layout.MaxHeight + pad*2,
	}
	dl.FillReservedRect(bg, rect.X, rect.Y, rect.W, rect.H, style.PopupBgColor)
	dl.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, style.WindowBorderColor, 1)

	// contents may have closed the popup
	if p.owner == id {
		p.rect = rect
		p.drawing = false
	}

	ctx.DrawList = parentDL
	ctx.layoutStack = parentLayouts
	ctx.cursor = parentCursor
	ctx.disabledDepth, ctx.invisibleDepth = parentDisabled, parentInvisible
	ctx.WantCaptureMouse = ctx.WantCaptureMouse || p.containsMouse(ctx)
}
