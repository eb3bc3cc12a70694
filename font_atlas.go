package gui

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: ASCII 32..127 followed by Latin-1 160..255, 16 glyphs per row.
const (
	atlasColumns = 16
	atlasRows    = 12
)

// FontAtlas is an alpha-only glyph sheet for the built-in monospace font.
// Renderers upload Pixels once and map DrawList texture coordinates onto it.
type FontAtlas struct {
	Width, Height int
	CellW, CellH  int
	Pixels        []byte // One alpha byte per pixel, row-major
}

var (
	defaultAtlas     *FontAtlas
	defaultAtlasOnce sync.Once
)

// DefaultFontAtlas returns the shared atlas rasterized from basicfont.Face7x13.
func DefaultFontAtlas() *FontAtlas {
	defaultAtlasOnce.Do(func() {
		defaultAtlas = newFontAtlas(basicfont.Face7x13)
	})
	return defaultAtlas
}

func newFontAtlas(face *basicfont.Face) *FontAtlas {
	cellW, cellH := face.Advance, face.Height
	img := image.NewAlpha(image.Rect(0, 0, cellW*atlasColumns, cellH*atlasRows))

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := 0; i < atlasColumns*atlasRows; i++ {
		ch := atlasRune(i)
		col, row := i%atlasColumns, i/atlasColumns
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(ch))
	}

	return &FontAtlas{
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		CellW:  cellW,
		CellH:  cellH,
		Pixels: img.Pix,
	}
}

// GlyphUV returns normalized texture coordinates for r.
// Characters outside the atlas map to '?'.
func (a *FontAtlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	idx := atlasIndex(unicodeFallback(r))
	col, row := idx%atlasColumns, idx/atlasColumns

	fw, fh := float32(a.Width), float32(a.Height)
	u0 = float32(col*a.CellW) / fw
	v0 = float32(row*a.CellH) / fh
	u1 = float32((col+1)*a.CellW) / fw
	v1 = float32((row+1)*a.CellH) / fh
	return u0, v0, u1, v1
}

// Image expands the atlas into white premultiplied RGBA, for backends that
// tint textures by vertex color instead of sampling a single channel.
func (a *FontAtlas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.Width, a.Height))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			v := a.Pixels[y*a.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}

func atlasRune(idx int) rune {
	if idx < 96 {
		return rune(32 + idx)
	}
	return rune(160 + idx - 96)
}

func atlasIndex(r rune) int {
	switch {
	case r >= 32 && r < 128:
		return int(r - 32)
	case r >= 160 && r < 256:
		return int(r-160) + 96
	default:
		return '?' - 32
	}
}

// unicodeFallback maps common symbols to ASCII lookalikes.
func unicodeFallback(r rune) rune {
	if r < 256 {
		return r
	}
	switch r {
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '▼', '↓':
		return 'v'
	case '▲', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
