package gui

import "unicode/utf8"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context; it is the dedicated GUI context that every
// widget call receives.
type Context struct {
	// Drawing output. DrawList is swapped for a per-window list while a
	// window body runs.
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Popups and tooltips, drawn last

	style      Style
	styleStack []Style

	cursor      Vec2
	layoutStack []*Layout

	// Input is read-only during the frame.
	Input *InputState

	idStack []idScope

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32
	Time        float64 // Seconds accumulated over all frames

	// FontTextureID is the renderer's handle for the font atlas.
	FontTextureID uint32

	// Input capture flags for the host application.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	activeID   ID   // Widget holding the mouse until release
	focusedID  ID   // Widget receiving typed characters
	clickTaken bool // A container claimed this frame's click

	// The focused widget calls KeepFocus every frame it is drawn. Focus
	// that went unclaimed for a frame is dropped and focusLost runs.
	focusSeen bool
	focusLost func()

	scopes         []scopeFrame
	disabledDepth  int
	invisibleDepth int

	items    []ItemResponse
	lastItem ItemResponse

	windows       windowManager
	currentWindow ID
	hoveredWindow ID

	popup popupState

	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]idScope, 0, 32),
		items:            make([]ItemResponse, 0, 64),
		windows:          newWindowManager(),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance the frame counter and evict stale FrameStore entries
	NextFrame()

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = append(ctx.idStack[:0], idScope{})
	ctx.scopes = ctx.scopes[:0]
	ctx.disabledDepth = 0
	ctx.invisibleDepth = 0
	ctx.items = ctx.items[:0]
	ctx.lastItem = ItemResponse{}
	ctx.currentWindow = 0
	ctx.clickTaken = false
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.Time += float64(deltaTime)
	clear(ctx.textMeasureCache)

	if ctx.focusedID != 0 && !ctx.focusSeen {
		guiLogger.Debug("focus dropped", "id", ctx.focusedID)
		lost := ctx.focusLost
		ctx.ClearFocus()
		if lost != nil {
			lost()
		}
	}
	ctx.focusSeen = false

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = ctx.focusedID != 0

	if ctx.Input != nil && !ctx.Input.MouseDown(MouseButtonLeft) && !ctx.Input.MouseReleased(MouseButtonLeft) {
		ctx.activeID = 0
	}

	ctx.popup.beginFrame()
	ctx.hoveredWindow = ctx.windows.beginFrame(ctx)
	if ctx.hoveredWindow != 0 || ctx.popup.containsMouse(ctx) {
		ctx.WantCaptureMouse = true
	}
}

// mousePos returns the cursor position, or a point far off-screen without input.
func (ctx *Context) mousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{X: -1e9, Y: -1e9}
	}
	return ctx.Input.MousePos()
}

// canHover reports whether widgets drawn at this point may react to the mouse.
func (ctx *Context) canHover() bool {
	if ctx.Input == nil || ctx.invisibleDepth > 0 {
		return false
	}
	if ctx.popup.drawing {
		return true
	}
	if ctx.popup.containsMouse(ctx) {
		return false
	}
	return ctx.hoveredWindow == 0 || ctx.hoveredWindow == ctx.currentWindow
}

// isHovered returns true if rect is under the mouse and not covered by
// another window or a popup. Disabled widgets still report hover.
func (ctx *Context) isHovered(rect Rect) bool {
	return ctx.canHover() && rect.Contains(ctx.mousePos())
}

// IsHovered is the public form of isHovered for custom widgets.
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	hovered := ctx.isHovered(rect)
	if guiVerbose() && rect.Contains(ctx.mousePos()) {
		guiLogger.Debug("click",
			"id", id,
			"rect", rect,
			"routed", hovered,
			"disabled", ctx.isDisabled())
	}
	return hovered && !ctx.isDisabled() && !ctx.clickTaken
}

// takeClick marks this frame's click as handled so later widgets ignore it.
func (ctx *Context) takeClick() {
	ctx.clickTaken = true
}

// IsClicked is the public form of isClicked for custom widgets.
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true while the widget is held down.
func (ctx *Context) isPressed(rect Rect) bool {
	return ctx.Input != nil && !ctx.isDisabled() &&
		ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// isDisabled reports whether widgets should ignore input.
func (ctx *Context) isDisabled() bool {
	return ctx.disabledDepth > 0 || ctx.invisibleDepth > 0
}

// IsDisabled reports whether the enclosing scope disables widgets.
func (ctx *Context) IsDisabled() bool {
	return ctx.isDisabled()
}

// setActive gives id ownership of the mouse until the button is released.
func (ctx *Context) setActive(id ID) {
	ctx.activeID = id
}

// isActive reports whether id owns the mouse.
func (ctx *Context) isActive(id ID) bool {
	return id != 0 && ctx.activeID == id
}

// SetFocused gives id keyboard focus.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
	ctx.focusSeen = id != 0
	ctx.focusLost = nil
	if id != 0 {
		ctx.WantCaptureKeyboard = true
	}
}

// KeepFocus marks the focused widget id as drawn this frame. If a frame
// passes without the call, focus is released at the start of the next one
// and onLost runs.
func (ctx *Context) KeepFocus(id ID, onLost func()) {
	if !ctx.IsFocused(id) {
		return
	}
	ctx.focusSeen = true
	ctx.focusLost = onLost
}

// IsFocused returns true if id has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
	ctx.focusLost = nil
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) charWidth() float32 {
	return float32(ctx.DrawList.FontAtlas.CellW) * ctx.style.FontScale
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return float32(ctx.DrawList.FontAtlas.CellH) * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// frameHeight is the height of framed widgets such as buttons and inputs.
func (ctx *Context) frameHeight() float32 {
	return ctx.lineHeight() + ctx.style.ButtonPadding*2
}

// MeasureText returns the size of rendered text.
// Results are cached for the rest of the frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	result := Vec2{
		X: float32(utf8.RuneCountInString(text)) * ctx.charWidth(),
		Y: ctx.lineHeight(),
	}
	ctx.textMeasureCache[text] = result
	return result
}

// AddText draws text with the current style into the active draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into a specific list, e.g. ForegroundDrawList.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale)
	dl.SetTexture(0)
}

// textColor picks the regular or disabled text color for the current scope.
func (ctx *Context) textColor() uint32 {
	if ctx.isDisabled() {
		return ctx.style.TextDisabledColor
	}
	return ctx.style.TextColor
}

// ItemResponse describes how a widget reacted during this frame.
type ItemResponse struct {
	ID      ID
	Label   string
	Text    string // Text drawn inside the widget, when it differs from Label
	Rect    Rect
	Hovered bool
	Clicked bool
	Changed bool
}

// recordItem stores r as the last item and appends it to the frame's items.
func (ctx *Context) recordItem(r ItemResponse) ItemResponse {
	ctx.lastItem = r
	ctx.items = append(ctx.items, r)
	return r
}

// LastItem returns the response of the most recent widget.
func (ctx *Context) LastItem() ItemResponse {
	return ctx.lastItem
}

// IsItemHovered reports whether the most recent widget is under the mouse.
func (ctx *Context) IsItemHovered() bool {
	return ctx.lastItem.Hovered
}

// ItemTooltip shows text next to the mouse while the most recent widget is hovered.
func (ctx *Context) ItemTooltip(text string) {
	if ctx.lastItem.Hovered {
		ctx.Tooltip(text)
	}
}

// Items returns the responses recorded so far this frame.
func (ctx *Context) Items() []ItemResponse {
	return ctx.items
}
