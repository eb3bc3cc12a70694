package gui

import (
	"strconv"
	"strings"
)

// dragValueState is the per-widget state of a DragFloat.
type dragValueState struct {
	Dragging   bool
	DragStartX float32
	StartValue float32

	Editing  bool
	EditText string
	fresh    bool // Next typed character replaces EditText
}

var dragValueStore = NewFrameStore[dragValueState]()

// dragClickSlop is how far the mouse may move between press and release for
// the gesture to count as a click that starts text editing.
const dragClickSlop = 3

// DragFloat draws a numeric field that changes by dragging horizontally,
// WithDragSpeed units per pixel (default 1). A click without dragging
// switches to text entry: Enter, a click elsewhere or the field no longer
// being drawn commits, Escape cancels. WithRange clamps both dragged and
// typed values.
//
//	ctx.DragFloat("", &opacity, WithDragSpeed(0.01), WithRange(0, 1))
func (ctx *Context) DragFloat(label string, value *float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	prefix := GetOpt(o, OptPrefix)
	suffix := GetOpt(o, OptSuffix)
	format := GetOpt(o, OptFormat)
	rng := GetOpt(o, OptRange)

	id := ctx.GetID(label + "##drag")
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}
	state := dragValueStore.Get(id, dragValueState{})

	speed := GetOpt(o, OptDragSpeed)
	if speed == 0 {
		speed = 1
	}

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	pad := ctx.style.InputPadding
	h := ctx.frameHeight()
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = maxf(48, ctx.MeasureText(prefix+formatValue(format, *value)+suffix).X+pad*2)
	}
	boxX := pos.X + labelWidth
	rect := Rect{X: boxX, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled) || ctx.isDisabled()
	hovered := ctx.isHovered(rect)
	changed := false

	set := func(v float32) {
		v = rng.Clamp(snapStep(v, 0, GetOpt(o, OptStep)))
		if v != *value {
			*value = v
			changed = true
		}
	}
	commit := func() {
		if v, err := strconv.ParseFloat(strings.TrimSpace(state.EditText), 32); err == nil {
			set(float32(v))
		}
		ctx.stopEditing(id, state)
	}

	if disabled {
		if state.Editing {
			ctx.stopEditing(id, state)
		}
		state.Dragging = false
	} else if ctx.Input != nil {
		in := ctx.Input
		startedEditing := false

		if !state.Editing && ctx.isClicked(id, rect) {
			ctx.setActive(id)
			state.Dragging = true
			state.DragStartX = in.MouseX
			state.StartValue = *value
		}

		if state.Dragging {
			moved := absf(in.MouseX - state.DragStartX)
			switch {
			case in.MouseReleased(MouseButtonLeft) || !ctx.isActive(id):
				state.Dragging = false
				if moved < dragClickSlop {
					state.Editing = true
					state.EditText = formatValue(format, *value)
					state.fresh = true
					ctx.SetFocused(id)
					startedEditing = true
				}
			case moved >= dragClickSlop:
				set(state.StartValue + (in.MouseX-state.DragStartX)*speed)
			}
		}

		if state.Editing && !startedEditing {
			switch {
			case !ctx.IsFocused(id):
				commit()
			case in.KeyPressed(KeyEscape):
				ctx.stopEditing(id, state)
			case in.KeyPressed(KeyEnter):
				commit()
			case in.MouseClicked(MouseButtonLeft) && !rect.Contains(in.MousePos()):
				commit()
			default:
				ctx.editNumber(state)
			}
		}
		if state.Editing {
			// Hidden or closed while editing: keep what was typed.
			ctx.KeepFocus(id, commit)
		}
	}

	bg := ctx.style.InputBgColor
	if state.Editing || (hovered && !disabled) || state.Dragging {
		bg = ctx.style.InputFocusedBgColor
	}
	dl := ctx.DrawList
	dl.AddRect(boxX, pos.Y, w, h, bg)
	dl.AddRectOutline(boxX, pos.Y, w, h, ctx.style.InputBorderColor, 1)

	textY := pos.Y + (h-ctx.lineHeight())/2
	if label != "" {
		ctx.AddText(pos.X, textY, label, ctx.textColor())
	}
	if state.Editing {
		text := prefix + state.EditText + suffix
		dl.PushClipRect(boxX, pos.Y, boxX+w, pos.Y+h)
		ctx.AddText(boxX+pad, textY, text, ctx.style.TextColor)
		if (ctx.FrameCount/30)%2 == 0 {
			cx := boxX + pad + ctx.MeasureText(prefix+state.EditText).X
			dl.AddLine(cx, pos.Y+2, cx, pos.Y+h-2, ctx.style.TextColor, 1)
		}
		dl.PopClipRect()
	} else {
		text := prefix + formatValue(format, *value) + suffix
		tw := ctx.MeasureText(text).X
		ctx.AddText(boxX+(w-tw)/2, textY, text, ctx.textColor())
	}

	size := Vec2{X: labelWidth + w, Y: h}
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

// editNumber applies typed characters and backspace to the edit text.
func (ctx *Context) editNumber(state *dragValueState) {
	in := ctx.Input
	ctx.WantCaptureKeyboard = true
	for _, ch := range in.InputChars {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == '+' || ch == 'e' {
			if state.fresh {
				state.EditText = ""
				state.fresh = false
			}
			state.EditText += string(ch)
		}
	}
	if in.KeyRepeated(KeyBackspace) && state.EditText != "" {
		if state.fresh {
			state.EditText = ""
			state.fresh = false
			return
		}
		state.EditText = state.EditText[:len(state.EditText)-1]
	}
}

func (ctx *Context) stopEditing(id ID, state *dragValueState) {
	state.Editing = false
	state.EditText = ""
	state.fresh = false
	if ctx.IsFocused(id) {
		ctx.ClearFocus()
	}
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
