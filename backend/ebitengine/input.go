package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	gui "github.com/go-theft-auto/widgetgallery"
)

var keyMap = map[ebiten.Key]gui.Key{
	ebiten.KeyBackspace:   gui.KeyBackspace,
	ebiten.KeyEnter:       gui.KeyEnter,
	ebiten.KeyNumpadEnter: gui.KeyEnter,
	ebiten.KeyEscape:      gui.KeyEscape,
}

var mouseMap = map[ebiten.MouseButton]gui.MouseButton{
	ebiten.MouseButtonLeft:   gui.MouseButtonLeft,
	ebiten.MouseButtonRight:  gui.MouseButtonRight,
	ebiten.MouseButtonMiddle: gui.MouseButtonMiddle,
}

// InputAdapter polls Ebitengine input into a gui.InputState once per Update.
type InputAdapter struct {
	input *gui.InputState
	chars []rune
}

// NewInputAdapter creates an input adapter.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{input: gui.NewInputState()}
}

// Update polls the current input. Edges are computed against the previous
// Update, so call EndFrame once the GUI frame is done.
func (a *InputAdapter) Update(dt float32) *gui.InputState {
	in := a.input

	x, y := ebiten.CursorPosition()
	in.SetMousePos(float32(x), float32(y))
	for eb, b := range mouseMap {
		in.SetMouseButton(b, ebiten.IsMouseButtonPressed(eb))
	}

	wx, wy := ebiten.Wheel()
	in.SetMouseWheel(float32(wx), float32(wy))

	// Two ebiten keys map to Enter; either one holds it down.
	var down [gui.KeyCount]bool
	for ek, k := range keyMap {
		down[k] = down[k] || ebiten.IsKeyPressed(ek)
	}
	for k := gui.KeyNone + 1; k < gui.KeyCount; k++ {
		in.SetKey(k, down[k])
	}
	in.UpdateKeyRepeat(dt)

	a.chars = ebiten.AppendInputChars(a.chars[:0])
	for _, r := range a.chars {
		in.AddInputChar(r)
	}
	return in
}

// EndFrame clears the per-frame edges.
func (a *InputAdapter) EndFrame() {
	a.input.Reset()
}
