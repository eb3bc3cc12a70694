package gui

import (
	"math"
	"sync"
	"unicode/utf8"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer:  make([]Vertex, 0, 1024),
			IdxBuffer:  make([]uint16, 0, 2048),
			CmdBuffer:  make([]DrawCmd, 0, 16),
			clipStack:  make([][4]float32, 0, 8),
			alphaStack: make([]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// maxCmdVertices keeps relative uint16 indices in range.
const maxCmdVertices = 1<<16 - 4

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // First vertex of the open command
	idxCmdOffset uint32 // First index of the open command

	alphaStack []float32
	alpha      float32 // Multiplier applied to every emitted vertex color

	// FontAtlas supplies glyph coordinates for AddText.
	FontAtlas *FontAtlas
}

// Clear resets the DrawList for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.alphaStack = dl.alphaStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.alpha = 1
	if dl.FontAtlas == nil {
		dl.FontAtlas = DefaultFontAtlas()
	}
}

// PushClipRect intersects the clip rectangle with (x1,y1)-(x2,y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(c[0], x1), maxf(c[1], y1), minf(c[2], x2), minf(c[3], y2)}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the active clip rectangle as x1, y1, x2, y2.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// PushOpacity multiplies the alpha of everything drawn until PopOpacity.
// Nested calls multiply.
func (dl *DrawList) PushOpacity(factor float32) {
	dl.alphaStack = append(dl.alphaStack, dl.alpha)
	dl.alpha *= clampf(factor, 0, 1)
}

// PopOpacity restores the previous alpha multiplier.
func (dl *DrawList) PopOpacity() {
	n := len(dl.alphaStack)
	if n > 0 {
		dl.alpha = dl.alphaStack[n-1]
		dl.alphaStack = dl.alphaStack[:n-1]
	}
}

// Opacity returns the current alpha multiplier.
func (dl *DrawList) Opacity() float32 {
	return dl.alpha
}

// tint applies the opacity multiplier. The bool is false when nothing would be visible.
func (dl *DrawList) tint(color uint32) (uint32, bool) {
	color = ScaleAlpha(color, dl.alpha)
	return color, color&0xFF000000 != 0
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw closes the open command and starts a new one with the current state.
func (dl *DrawList) splitDraw() {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		if last.ElemCount == 0 {
			// Reuse the empty command instead of leaving a gap.
			dl.CmdBuffer = dl.CmdBuffer[:n-1]
		}
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices appends vertices and returns the index of the first one
// relative to the open command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxCmdVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	idx := dl.addVertices(v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	color, ok := dl.tint(color)
	if !ok || w <= 0 || h <= 0 {
		return
	}

	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline inside the given bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	color, ok := dl.tint(color)
	if !ok {
		return
	}

	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := float32(math.Sqrt(float64(dx*dx + dy*dy))); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	color, ok := dl.tint(color)
	if !ok {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddText draws monospace text from the font atlas.
// The caller selects the atlas texture with SetTexture.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32) {
	color, ok := dl.tint(color)
	if !ok || text == "" {
		return
	}

	atlas := dl.FontAtlas
	cw := float32(atlas.CellW) * fontScale
	ch := float32(atlas.CellH) * fontScale

	px := x
	for _, r := range text {
		if r != ' ' {
			u0, v0, u1, v1 := atlas.GlyphUV(r)
			dl.addQuad(
				Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
				Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
				Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
				Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
			)
		}
		px += cw
	}
}

// RectSlot refers to a quad reserved with ReserveRect.
type RectSlot struct {
	vtx   int
	valid bool
}

// ReserveRect emits an invisible untextured quad that FillReservedRect
// can later resize and color. Containers use it to put a background behind
// content whose size is only known after the content is drawn.
func (dl *DrawList) ReserveRect() RectSlot {
	dl.SetTexture(0)
	dl.addQuad(Vertex{}, Vertex{}, Vertex{}, Vertex{})
	return RectSlot{vtx: len(dl.VtxBuffer) - 4, valid: true}
}

// FillReservedRect sets the geometry and color of a reserved quad.
func (dl *DrawList) FillReservedRect(slot RectSlot, x, y, w, h float32, color uint32) {
	if !slot.valid || slot.vtx+4 > len(dl.VtxBuffer) {
		return
	}
	color, ok := dl.tint(color)
	if !ok {
		return
	}
	v := dl.VtxBuffer[slot.vtx : slot.vtx+4]
	v[0] = Vertex{Pos: [2]float32{x, y}, Color: color}
	v[1] = Vertex{Pos: [2]float32{x + w, y}, Color: color}
	v[2] = Vertex{Pos: [2]float32{x + w, y + h}, Color: color}
	v[3] = Vertex{Pos: [2]float32{x, y + h}, Color: color}
}

// Finalize closes the open command and drops empty ones.
// Renderers call it before walking CmdBuffer.
func (dl *DrawList) Finalize() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// textWidth returns the advance of text in atlas cells.
func textWidth(text string, cellW, scale float32) float32 {
	return float32(utf8.RuneCountInString(text)) * cellW * scale
}
