package gui

// gridState remembers measured column widths between frames.
type gridState struct {
	ColWidths []float32
}

var gridStore = NewFrameStore[gridState]()

// GridOption configures a grid.
type GridOption func(*gridLayout)

// Columns sets the number of columns. Rows wrap after this many cells even
// without EndRow.
func Columns(n int) GridOption {
	return func(g *gridLayout) { g.columns = n }
}

// GridSpacing sets the horizontal gap between columns and the vertical gap
// between rows.
func GridSpacing(x, y float32) GridOption {
	return func(g *gridLayout) { g.spacing = Vec2{X: x, Y: y} }
}

// Striped shades every other row with Style.StripeColor.
func Striped(striped bool) GridOption {
	return func(g *gridLayout) { g.striped = striped }
}

// gridLayout places items cell by cell. Column x positions come from the
// widths measured on the previous frame, widened by anything measured so far
// in this frame.
type gridLayout struct {
	columns int
	spacing Vec2
	striped bool

	prev     []float32 // Widths from the previous frame
	widths   []float32 // Widths measured this frame
	col, row int
	rowY     float32
	rowH     float32
	stripe   RectSlot
}

func (g *gridLayout) colWidth(i int) float32 {
	var w float32
	if i < len(g.prev) {
		w = g.prev[i]
	}
	if i < len(g.widths) {
		w = maxf(w, g.widths[i])
	}
	return w
}

func (g *gridLayout) colX(layout *Layout, col int) float32 {
	x := layout.StartX
	for i := 0; i < col; i++ {
		x += g.colWidth(i) + g.spacing.X
	}
	return x
}

// cellWidth is the width available to the current cell. The last column
// extends to the layout edge.
func (g *gridLayout) cellWidth(layout *Layout) float32 {
	if g.columns > 0 && g.col == g.columns-1 {
		return maxf(0, layout.Width-(g.colX(layout, g.col)-layout.StartX))
	}
	return g.colWidth(g.col)
}

func (g *gridLayout) placeCell(ctx *Context, layout *Layout) {
	if g.columns > 0 && g.col >= g.columns {
		ctx.EndRow()
	}
	ctx.cursor = Vec2{X: g.colX(layout, g.col), Y: g.rowY}
}

func (g *gridLayout) advance(ctx *Context, layout *Layout, size Vec2) {
	for len(g.widths) <= g.col {
		g.widths = append(g.widths, 0)
	}
	g.widths[g.col] = maxf(g.widths[g.col], size.X)
	g.rowH = maxf(g.rowH, size.Y)
	g.col++

	right := g.colX(layout, g.col) - g.spacing.X
	layout.MaxWidth = maxf(layout.MaxWidth, right-layout.StartX)
	layout.MaxHeight = g.rowY + g.rowH - layout.StartY
	ctx.cursor = Vec2{X: right + g.spacing.X, Y: g.rowY}
}

func (g *gridLayout) beginRow(ctx *Context) {
	g.stripe = RectSlot{}
	if g.striped && g.row%2 == 1 {
		g.stripe = ctx.DrawList.ReserveRect()
	}
}

// Grid lays out its contents in columns. Every widget fills one cell; call
// EndRow to start the next row.
//
//	ctx.Grid("settings", Columns(2), GridSpacing(40, 4), Striped(true))(func() {
//	    ctx.Label("Name")
//	    ctx.Button("Rename")
//	    ctx.EndRow()
//	})
func (ctx *Context) Grid(id string, opts ...GridOption) func(func()) {
	return func(contents func()) {
		gid := ctx.GetID(id)
		state := gridStore.Get(gid, gridState{})

		g := &gridLayout{
			spacing: Vec2{X: ctx.style.ItemSpacing * 2, Y: ctx.style.ItemSpacing},
			prev:    state.ColWidths,
		}
		for _, opt := range opts {
			opt(g)
		}

		layout := &Layout{Type: LayoutGrid, grid: g}
		ctx.pushLayout(layout)
		g.rowY = layout.StartY
		g.beginRow(ctx)

		ctx.PushIDValue(gid)
		contents()
		ctx.PopID()

		if g.col > 0 {
			ctx.EndRow()
		}
		state.ColWidths = append(state.ColWidths[:0], g.widths...)

		ctx.popLayout()
	}
}

// EndRow finishes the current grid row. Outside a grid it does nothing.
func (ctx *Context) EndRow() {
	layout := ctx.currentLayout()
	if layout == nil || layout.grid == nil {
		return
	}
	g := layout.grid

	if g.stripe.valid {
		pad := g.spacing.Y / 2
		ctx.DrawList.FillReservedRect(g.stripe,
			layout.StartX, g.rowY-pad,
			maxf(layout.Width, layout.MaxWidth), g.rowH+g.spacing.Y,
			ctx.style.StripeColor)
	}

	if g.rowH > 0 {
		layout.MaxHeight = g.rowY + g.rowH - layout.StartY
		g.rowY += g.rowH + g.spacing.Y
	}
	g.row++
	g.col = 0
	g.rowH = 0
	ctx.cursor = Vec2{X: layout.StartX, Y: g.rowY}
	g.beginRow(ctx)
}
