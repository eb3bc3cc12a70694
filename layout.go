package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
	LayoutGrid                         // Items fill grid cells left to right
)

// Layout tracks the placement state of one container.
type Layout struct {
	Type LayoutType

	// Content origin, inside padding
	StartX, StartY float32

	Width               float32 // Available content width
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap     float32
	Padding float32

	ItemCount int

	grid *gridLayout
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding on all sides.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets the available width of the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// availableWidth returns the width left for the next item.
func (ctx *Context) availableWidth() float32 {
	layout := ctx.currentLayout()
	if layout == nil {
		return ctx.DisplaySize.X - ctx.cursor.X
	}
	switch layout.Type {
	case LayoutHorizontal:
		return maxf(0, layout.Width-(ctx.cursor.X-layout.StartX))
	case LayoutGrid:
		return layout.grid.cellWidth(layout)
	default:
		return layout.Width
	}
}

// AvailableWidth returns the width left for the next item (public API).
func (ctx *Context) AvailableWidth() float32 {
	return ctx.availableWidth()
}

// beginItem moves the cursor to where the next item goes.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	switch layout.Type {
	case LayoutGrid:
		layout.grid.placeCell(ctx, layout)
		return
	case LayoutVertical:
		ctx.cursor.X = layout.StartX
		if layout.ItemCount > 0 {
			ctx.cursor.Y += layout.gap(ctx)
		}
	case LayoutHorizontal:
		ctx.cursor.Y = layout.StartY
		if layout.ItemCount > 0 {
			ctx.cursor.X += layout.gap(ctx)
		}
	}
}

func (l *Layout) gap(ctx *Context) float32 {
	if l.Gap > 0 {
		return l.Gap
	}
	return ctx.style.ItemSpacing
}

// ItemPos returns the position for the next widget with layout gaps applied.
// Widgets call it once before drawing.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor past an item of the given size.
func (ctx *Context) advanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	switch layout.Type {
	case LayoutGrid:
		layout.grid.advance(ctx, layout, size)
	case LayoutVertical:
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	case LayoutHorizontal:
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}

// AdvanceCursor moves the cursor after drawing a custom item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.advanceCursor(size)
}

// pushLayout places layout as the next item of its parent and makes it current.
func (ctx *Context) pushLayout(layout *Layout) {
	pos := ctx.ItemPos()
	if layout.Width == 0 {
		layout.Width = ctx.availableWidth() - layout.Padding*2
	}
	layout.StartX = pos.X + layout.Padding
	layout.StartY = pos.Y + layout.Padding
	ctx.cursor = Vec2{X: layout.StartX, Y: layout.StartY}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout closes the current layout, reports it to the parent as a single
// item and returns its outer bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX - layout.Padding,
		Y: layout.StartY - layout.Padding,
		W: layout.MaxWidth + layout.Padding*2,
		H: layout.MaxHeight + layout.Padding*2,
	}

	ctx.cursor = Vec2{X: bounds.X, Y: bounds.Y}
	ctx.advanceCursor(Vec2{X: bounds.W, Y: bounds.H})
	return bounds
}

// VStack creates a vertical layout container.
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack creates a horizontal layout container.
//
//	ctx.HStack()(func() {
//	    ctx.Checkbox("Visible", &visible)
//	    ctx.Label("Opacity")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: typ}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// Separator draws a horizontal line across the available width.
// Inside a grid it spans its cell.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.availableWidth()
	if w <= 0 {
		w = ctx.MeasureText("Separator").X
	}
	h := ctx.style.ItemSpacing * 2
	if layout := ctx.currentLayout(); layout != nil && layout.Type == LayoutGrid {
		h = ctx.frameHeight()
	}
	y := pos.Y + h/2
	ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(Vec2{X: w, Y: h})
	ctx.recordItem(ItemResponse{Rect: Rect{X: pos.X, Y: pos.Y, W: w, H: h}})
}
