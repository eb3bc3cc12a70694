package gui

import (
	"fmt"
	"strings"
)

// formatValue renders v with a fmt verb. Integer verbs get the truncated value.
func formatValue(format string, v float32) string {
	if format == "" {
		format = "%.2f"
	}
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, int(v))
	}
	return fmt.Sprintf(format, v)
}

// snapStep rounds v to the nearest multiple of step counted from origin.
func snapStep(v, origin, step float32) float32 {
	if step <= 0 {
		return v
	}
	n := (v - origin) / step
	if n < 0 {
		n -= 0.5
	} else {
		n += 0.5
	}
	return origin + float32(int(n))*step
}

// SliderFloat draws a horizontal slider for float32 values followed by the
// value text, e.g. "42.0°" with WithSuffix("°"). Returns true if the value
// changed.
//
//	if ctx.SliderFloat("", &angle, 0, 360, WithSuffix("°")) {
//	    rotate(angle)
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label + "##slider")
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	valueText := GetOpt(o, OptPrefix) + formatValue(GetOpt(o, OptFormat), *value) + GetOpt(o, OptSuffix)
	valueWidth := ctx.MeasureText(valueText).X

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	sliderWidth := GetOpt(o, OptWidth)
	if sliderWidth <= 0 {
		sliderWidth = maxf(100, ctx.availableWidth()-labelWidth-valueWidth-ctx.style.ItemSpacing)
		sliderWidth = minf(sliderWidth, 180)
	}

	h := ctx.frameHeight()
	trackH := ctx.lineHeight() * 0.4
	grabW := float32(10)
	trackX := pos.X + labelWidth
	trackY := pos.Y + (h-trackH)/2

	rect := Rect{X: trackX, Y: pos.Y, W: sliderWidth, H: h}
	disabled := GetOpt(o, OptDisabled) || ctx.isDisabled()
	hovered := ctx.isHovered(rect)
	changed := false

	set := func(v float32) {
		v = clampf(snapStep(v, minVal, GetOpt(o, OptStep)), minVal, maxVal)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if !disabled && ctx.Input != nil {
		if ctx.isClicked(id, rect) {
			ctx.setActive(id)
		}
		if ctx.isActive(id) && ctx.Input.MouseDown(MouseButtonLeft) {
			ratio := clampf((ctx.Input.MouseX-trackX-grabW/2)/(sliderWidth-grabW), 0, 1)
			set(minVal + ratio*(maxVal-minVal))
		}
		if hovered && ctx.Input.MouseWheelY != 0 {
			step := GetOpt(o, OptStep)
			if step == 0 {
				step = (maxVal - minVal) / 100
			}
			set(*value + ctx.Input.MouseWheelY*step)
		}
	}

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	grabX := trackX + ratio*(sliderWidth-grabW)

	if label != "" {
		ctx.AddText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, ctx.textColor())
	}

	dl := ctx.DrawList
	dl.AddRect(trackX, trackY, sliderWidth, trackH, ctx.style.SliderTrackColor)
	if fillW := grabX + grabW/2 - trackX; fillW > 0 {
		fillColor := ctx.style.SliderFillColor
		if disabled {
			fillColor = ctx.style.ButtonDisabledColor
		}
		dl.AddRect(trackX, trackY, fillW, trackH, fillColor)
	}

	grabColor := ctx.style.SliderGrabColor
	switch {
	case disabled:
		grabColor = ctx.style.ButtonDisabledColor
	case ctx.isActive(id):
		grabColor = ctx.style.SliderGrabActive
	case hovered:
		grabColor = ctx.style.SliderGrabHovered
	}
	grabY := pos.Y + ctx.style.ButtonPadding/2
	grabH := h - ctx.style.ButtonPadding
	dl.AddRect(grabX, grabY, grabW, grabH, grabColor)
	dl.AddRectOutline(grabX, grabY, grabW, grabH, ctx.style.InputBorderColor, 1)

	// Value text reflects any change made this frame.
	valueText = GetOpt(o, OptPrefix) + formatValue(GetOpt(o, OptFormat), *value) + GetOpt(o, OptSuffix)
	textX := trackX + sliderWidth + ctx.style.ItemSpacing
	ctx.AddText(textX, pos.Y+(h-ctx.lineHeight())/2, valueText, ctx.textColor())

	size := Vec2{X: labelWidth + sliderWidth + ctx.style.ItemSpacing + valueWidth, Y: h}
	ctx.advanceCursor(size)
	ctx.recordItem(ItemResponse{
		ID:      id,
		Label:   itemLabel(label, o),
		Rect:    Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y},
		Hovered: hovered,
		Changed: changed,
	})
	return changed
}

// SliderInt draws a horizontal slider for int values.
// Returns true if the value changed.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	v := float32(*value)
	opts = append(opts, WithStep(1))
	if !HasOpt(applyOptions(opts), OptFormat) {
		opts = append(opts, WithFormat("%d"))
	}

	changed := ctx.SliderFloat(label, &v, float32(minVal), float32(maxVal), opts...)
	if changed {
		*value = int(v + 0.5)
	}
	return changed
}
