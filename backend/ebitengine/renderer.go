// Package ebitengine runs the GUI inside an Ebitengine game loop.
//
// Ebitengine updates game state in Update and draws in Draw, possibly at
// different rates. The GUI frame is built in Update; the Renderer keeps a
// copy of each DrawList and replays it onto the screen in Draw.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	gui "github.com/go-theft-auto/widgetgallery"
)

// fontTextureID is the texture ID DrawLists use for the font atlas.
const fontTextureID = 1

// batch is a retained copy of one DrawList.
type batch struct {
	vertices []ebiten.Vertex
	indices  []uint16
	cmds     []gui.DrawCmd
}

// Renderer implements gui.Renderer with ebiten.Image.DrawTriangles.
type Renderer struct {
	font  *ebiten.Image
	white *ebiten.Image
	fontW float32
	fontH float32

	width, height int

	batches []batch
	used    int // Batches recorded since the last BeginFrame
}

// NewRenderer creates a renderer with the built-in font atlas.
func NewRenderer(width, height int) *Renderer {
	atlas := gui.DefaultFontAtlas()

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Renderer{
		font:   ebiten.NewImageFromImage(atlas.Image()),
		white:  white,
		fontW:  float32(atlas.Width),
		fontH:  float32(atlas.Height),
		width:  width,
		height: height,
	}
}

// FontTextureID implements gui.Renderer.
func (r *Renderer) FontTextureID() uint32 {
	return fontTextureID
}

// Resize implements gui.Renderer.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// BeginFrame drops the batches of the previous GUI frame.
func (r *Renderer) BeginFrame() {
	r.used = 0
}

// Render implements gui.Renderer. It copies dl so the caller may release it.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	if r.used == len(r.batches) {
		r.batches = append(r.batches, batch{})
	}
	b := &r.batches[r.used]
	r.used++

	b.vertices = b.vertices[:0]
	for _, v := range dl.VtxBuffer {
		b.vertices = append(b.vertices, r.vertex(v))
	}
	b.indices = append(b.indices[:0], dl.IdxBuffer...)
	b.cmds = append(b.cmds[:0], dl.CmdBuffer...)
	return nil
}

// vertex converts a GUI vertex. Texture coordinates are scaled to atlas
// pixels; untextured commands later point them at the white image instead.
func (r *Renderer) vertex(v gui.Vertex) ebiten.Vertex {
	cr, cg, cb, ca := gui.UnpackRGBA(v.Color)
	return ebiten.Vertex{
		DstX:   v.Pos[0],
		DstY:   v.Pos[1],
		SrcX:   v.TexCoord[0] * r.fontW,
		SrcY:   v.TexCoord[1] * r.fontH,
		ColorR: float32(cr) / 255,
		ColorG: float32(cg) / 255,
		ColorB: float32(cb) / 255,
		ColorA: float32(ca) / 255,
	}
}

// Draw replays the batches of the last GUI frame onto screen, in the order
// they were rendered.
func (r *Renderer) Draw(screen *ebiten.Image) {
	for i := 0; i < r.used; i++ {
		r.drawBatch(screen, &r.batches[i])
	}
}

func (r *Renderer) drawBatch(screen *ebiten.Image, b *batch) {
	bounds := screen.Bounds()
	for i, cmd := range b.cmds {
		if cmd.ElemCount == 0 {
			continue
		}

		clip := image.Rect(
			int(cmd.ClipRect[0]), int(cmd.ClipRect[1]),
			int(cmd.ClipRect[2]+0.5), int(cmd.ClipRect[3]+0.5),
		).Intersect(bounds)
		if clip.Empty() {
			continue
		}
		dst := screen.SubImage(clip).(*ebiten.Image)

		end := uint32(len(b.vertices))
		if i+1 < len(b.cmds) {
			end = b.cmds[i+1].VertexOffset
		}
		verts := b.vertices[cmd.VertexOffset:end]
		indices := b.indices[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]

		src := r.font
		if cmd.TextureID != fontTextureID {
			src = r.white
			for j := range verts {
				verts[j].SrcX, verts[j].SrcY = 1.5, 1.5
			}
		}

		dst.DrawTriangles(verts, indices, src, &ebiten.DrawTrianglesOptions{
			Filter: ebiten.FilterNearest,
		})
	}
}
