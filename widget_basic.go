package gui

import (
	"fmt"
	"math"
)

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.textItem(text, ctx.textColor(), ctx.lineHeight())
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	ctx.textItem(text, color, ctx.lineHeight())
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.textItem(text, ctx.style.TextDisabledColor, ctx.lineHeight())
}

// Label draws text as tall as a button so that it lines up with framed
// widgets placed next to it, e.g. in a grid row.
func (ctx *Context) Label(text string) {
	ctx.textItem(text, ctx.textColor(), ctx.frameHeight())
}

func (ctx *Context) textItem(text string, color uint32, h float32) {
	pos := ctx.ItemPos()
	size := ctx.MeasureText(text)
	ctx.AddText(pos.X, pos.Y+(h-size.Y)/2, text, color)
	size.Y = h
	ctx.advanceCursor(size)

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.recordItem(ItemResponse{Label: text, Rect: rect, Hovered: ctx.isHovered(rect)})
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: ctx.frameHeight(),
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled) || ctx.isDisabled()

	hovered := ctx.isHovered(rect)
	clicked := !disabled && ctx.isClicked(id, rect)
	if clicked {
		ctx.setActive(id)
	}

	bgColor := ctx.style.ButtonColor
	switch {
	case disabled:
		bgColor = ctx.style.ButtonDisabledColor
	case ctx.isActive(id) && ctx.isPressed(rect):
		bgColor = ctx.style.ButtonActiveColor
	case hovered:
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	ctx.advanceCursor(size)
	ctx.recordItem(ItemResponse{ID: id, Label: label, Rect: rect, Hovered: hovered, Clicked: clicked})
	return clicked
}

// Checkbox draws a checkbox with label. Clicking the box or the label toggles
// value. Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	boxSize := ctx.lineHeight()
	h := ctx.frameHeight()
	w := boxSize
	if label != "" {
		w += ctx.style.ItemSpacing + ctx.MeasureText(label).X
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	disabled := GetOpt(o, OptDisabled) || ctx.isDisabled()

	hovered := ctx.isHovered(rect)
	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	boxY := pos.Y + (h-boxSize)/2
	boxColor := ctx.style.InputBgColor
	if hovered && !disabled {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, boxY, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, boxY, boxSize, boxSize, ctx.style.InputBorderColor, 1)

	markColor := ctx.style.TextColor
	if disabled {
		markColor = ctx.style.TextDisabledColor
	}
	if *value {
		inset := boxSize * 0.2
		x1, y1 := pos.X+inset, boxY+boxSize*0.55
		x2, y2 := pos.X+boxSize*0.42, boxY+boxSize-inset
		x3, y3 := pos.X+boxSize-inset, boxY+inset
		ctx.DrawList.AddLine(x1, y1, x2, y2, markColor, 2)
		ctx.DrawList.AddLine(x2, y2, x3, y3, markColor, 2)
	}

	if label != "" {
		ctx.AddText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y+(h-ctx.lineHeight())/2, label, markColor)
	}

	ctx.advanceCursor(Vec2{X: w, Y: h})
	ctx.recordItem(ItemResponse{ID: id, Label: label, Rect: rect, Hovered: hovered, Clicked: changed, Changed: changed})
	return changed
}

// ProgressBar draws a progress bar filled to fraction, clamped to [0,1].
//
//	ctx.ProgressBar(done/total, WithShowPercentage(), WithAnimate(busy))
func (ctx *Context) ProgressBar(fraction float32, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	w := ctx.availableWidth()
	if w < 96 {
		w = 96
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	h := ctx.frameHeight()
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		h = optHeight
	}

	fraction = clampf(fraction, 0, 1)
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.InputBgColor)

	fill := ctx.style.SelectedBgColor
	if GetOpt(o, OptAnimate) {
		// Pulse between 60% and 100% alpha, one cycle per second.
		pulse := 0.8 + 0.2*math.Sin(ctx.Time*2*math.Pi)
		fill = ScaleAlpha(fill, float32(pulse))
	}
	if fillW := w * fraction; fillW > 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, fillW, h, fill)
	}
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.InputBorderColor, 1)

	text := GetOpt(o, OptOverlayText)
	if text == "" && GetOpt(o, OptShowPercentage) {
		text = fmt.Sprintf("%d%%", int(fraction*100+0.5))
	}
	if text != "" {
		size := ctx.MeasureText(text)
		ctx.AddText(pos.X+(w-size.X)/2, pos.Y+(h-size.Y)/2, text, ctx.textColor())
	}

	ctx.advanceCursor(Vec2{X: w, Y: h})
	ctx.recordItem(ItemResponse{Label: "progress", Text: text, Rect: rect, Hovered: ctx.isHovered(rect)})
}

// Tooltip shows text in a box next to the mouse, above every window.
// Use ItemTooltip to show it only while the previous widget is hovered.
func (ctx *Context) Tooltip(text string) {
	if ctx.Input == nil || ctx.ForegroundDrawList == nil {
		return
	}

	mouse := ctx.Input.MousePos()
	pad := ctx.style.ButtonPadding
	size := ctx.MeasureText(text)
	w := size.X + pad*2
	h := size.Y + pad*2

	// Keep on screen
	x := mouse.X + 12
	y := mouse.Y + 16
	if x+w > ctx.DisplaySize.X {
		x = maxf(0, ctx.DisplaySize.X-w)
	}
	if y+h > ctx.DisplaySize.Y {
		y = maxf(0, mouse.Y-h-4)
	}

	dl := ctx.ForegroundDrawList
	dl.AddRect(x, y, w, h, ctx.style.TooltipBgColor)
	dl.AddRectOutline(x, y, w, h, ctx.style.WindowBorderColor, 1)
	ctx.AddTextTo(dl, x+pad, y+pad, text, ctx.style.TextColor)
}
