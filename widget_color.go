package gui

import (
	"fmt"
	"strconv"
	"strings"
)

// HexColor formats c as "#RRGGBBAA".
func HexColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA"; the leading '#' is optional.
// A missing alpha means opaque.
func ParseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "FF"
	}
	if len(hex) != 8 {
		return 0, fmt.Errorf("parse color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// drawCheckerboard fills a rect with two-tone squares so that translucent
// colors drawn on top show their alpha.
func (ctx *Context) drawCheckerboard(x, y, w, h, cell float32) {
	dl := ctx.DrawList
	dl.AddRect(x, y, w, h, RGBA(204, 204, 204, 255))
	dark := RGBA(128, 128, 128, 255)
	row := 0
	for cy := y; cy < y+h; cy += cell {
		col := row % 2
		for cx := x + float32(col)*cell; cx < x+w; cx += cell * 2 {
			dl.AddRect(cx, cy, minf(cell, x+w-cx), minf(cell, y+h-cy), dark)
		}
		row++
	}
}

// colorSwatch draws c over a checkerboard with an outline.
func (ctx *Context) colorSwatch(rect Rect, c uint32, hovered bool) {
	ctx.drawCheckerboard(rect.X, rect.Y, rect.W, rect.H, rect.H/2)
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, c)
	border := ctx.style.InputBorderColor
	if hovered {
		border = ctx.style.TextColor
	}
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, border, 1)
}

// ColorEditButton draws a color swatch. Clicking it opens a popup with
// R, G, B and A sliders bound to color. Returns true if the color changed.
//
//	ctx.ColorEditButton("accent", &style.SelectedBgColor, WithNoAlpha())
func (ctx *Context) ColorEditButton(label string, color *uint32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label + "##color")
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	h := ctx.frameHeight()
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = h * 2
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	disabled := GetOpt(o, OptDisabled) || ctx.isDisabled()
	hovered := ctx.isHovered(rect)

	clicked := !disabled && ctx.isClicked(id, rect)
	if clicked {
		if ctx.IsPopupOpen(id) {
			ctx.ClosePopup()
		} else {
			ctx.OpenPopup(id)
			guiLogger.Debug("popup opened", "id", id, "label", label)
		}
	}

	ctx.colorSwatch(rect, *color, hovered && !disabled)

	changed := false
	if ctx.IsPopupOpen(id) && !disabled && ctx.IsVisible() {
		noAlpha := GetOpt(o, OptNoAlpha)
		ctx.Popup(id, rect, 220, func() {
			changed = ctx.colorPicker(color, noAlpha)
		})
	}

	labelW := float32(0)
	if label != "" && !strings.HasPrefix(label, "##") {
		ctx.AddText(pos.X+w+ctx.style.ItemSpacing, pos.Y+(h-ctx.lineHeight())/2, label, ctx.textColor())
		labelW = ctx.style.ItemSpacing + ctx.MeasureText(label).X
	}

	ctx.advanceCursor(Vec2{X: w + labelW, Y: h})
	ctx.recordItem(ItemResponse{
		ID:      id,
		Label:   label,
		Rect:    Rect{X: pos.X, Y: pos.Y, W: w + labelW, H: h},
		Hovered: hovered,
		Clicked: clicked,
		Changed: changed,
	})
	return changed
}

// colorPicker is the popup body of ColorEditButton.
func (ctx *Context) colorPicker(color *uint32, noAlpha bool) bool {
	r, g, b, a := UnpackRGBA(*color)
	channels := []struct {
		label string
		value *uint8
	}{
		{"R", &r}, {"G", &g}, {"B", &b}, {"A", &a},
	}
	if noAlpha {
		channels = channels[:3]
	}

	preview := ctx.ItemPos()
	previewRect := Rect{X: preview.X, Y: preview.Y, W: ctx.availableWidth(), H: ctx.frameHeight()}
	ctx.colorSwatch(previewRect, *color, false)
	ctx.advanceCursor(Vec2{X: previewRect.W, Y: previewRect.H})

	ctx.Label(HexColor(*color))

	changed := false
	for _, ch := range channels {
		v := int(*ch.value)
		if ctx.SliderInt(ch.label, &v, 0, 255, WithWidth(140)) {
			*ch.value = uint8(v)
			changed = true
		}
	}
	if changed {
		*color = RGBA(r, g, b, a)
	}
	return changed
}
