package gui

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Vertex is the unit of geometry handed to renderers.
// Memory layout matches the OpenGL vertex attributes.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32 // Normalized atlas coordinates
	Color    uint32     // Packed 0xAABBGGRR
}

// DrawCmd is a batch of indices sharing a texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Color constants, packed as 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000

	// LightBlue matches the accent blue used for hyperlinks and selections.
	LightBlue uint32 = 0xFFFFB48C
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// ScaleAlpha multiplies the alpha channel of c by factor.
func ScaleAlpha(c uint32, factor float32) uint32 {
	if factor >= 1 {
		return c
	}
	if factor <= 0 {
		return c & 0x00FFFFFF
	}
	a := float32(c>>24) * factor
	return c&0x00FFFFFF | uint32(a+0.5)<<24
}

// LinearFromSRGB converts an 8-bit sRGB channel to linear space [0,1].
func LinearFromSRGB(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinear converts a linear channel in [0,1] to 8-bit sRGB.
func SRGBFromLinear(l float64) uint8 {
	var v float64
	switch {
	case l <= 0:
		return 0
	case l >= 1:
		return 255
	case l <= 0.0031308:
		v = l * 12.92 * 255
	default:
		v = (1.055*math.Pow(l, 1/2.4) - 0.055) * 255
	}
	return uint8(v + 0.5)
}

// LinearMultiply scales every channel of c, including alpha, by factor in
// linear space. Color channels are converted from sRGB first.
func LinearMultiply(c uint32, factor float64) uint32 {
	r, g, b, a := UnpackRGBA(c)
	return RGBA(
		SRGBFromLinear(LinearFromSRGB(r)*factor),
		SRGBFromLinear(LinearFromSRGB(g)*factor),
		SRGBFromLinear(LinearFromSRGB(b)*factor),
		uint8(clamp64(float64(a)*factor, 0, 255)+0.5),
	)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clamp64(v, minVal, maxVal float64) float64 {
	return math.Min(math.Max(v, minVal), maxVal)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
