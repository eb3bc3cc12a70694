package gui

// ScopeOption configures a Scope.
type ScopeOption func(*scopeFrame)

// Disabled makes widgets in the scope ignore input and draw in disabled colors.
// They still report hover, so tooltips keep working.
func Disabled(disabled bool) ScopeOption {
	return func(s *scopeFrame) { s.disabled = disabled }
}

// Invisible keeps the scope's layout space but draws nothing and disables
// all interaction, hover included.
func Invisible(invisible bool) ScopeOption {
	return func(s *scopeFrame) { s.invisible = invisible }
}

// Opacity multiplies the alpha of everything drawn in the scope.
// Values are clamped to [0,1]; nested scopes multiply.
func Opacity(opacity float32) ScopeOption {
	return func(s *scopeFrame) { s.opacity = opacity }
}

type scopeFrame struct {
	disabled  bool
	invisible bool
	opacity   float32
	dl        *DrawList
}

// Scope groups widgets under shared enabled, visibility and opacity settings.
// The scope is laid out as a single vertical item.
//
//	ctx.Scope(Disabled(!enabled), Opacity(0.5))(func() {
//	    ctx.Button("Apply")
//	})
func (ctx *Context) Scope(opts ...ScopeOption) func(func()) {
	return func(contents func()) {
		frame := scopeFrame{opacity: 1, dl: ctx.DrawList}
		for _, opt := range opts {
			opt(&frame)
		}

		ctx.pushScope(frame)
		ctx.VStack()(contents)
		ctx.popScope()
	}
}

func (ctx *Context) pushScope(frame scopeFrame) {
	if frame.disabled {
		ctx.disabledDepth++
	}
	if frame.invisible {
		ctx.invisibleDepth++
		frame.dl.PushOpacity(0)
	} else {
		frame.dl.PushOpacity(frame.opacity)
	}
	ctx.scopes = append(ctx.scopes, frame)
}

func (ctx *Context) popScope() {
	n := len(ctx.scopes)
	if n == 0 {
		return
	}
	frame := ctx.scopes[n-1]
	ctx.scopes = ctx.scopes[:n-1]

	frame.dl.PopOpacity()
	if frame.invisible {
		ctx.invisibleDepth--
	}
	if frame.disabled {
		ctx.disabledDepth--
	}
}

// IsVisible reports whether widgets drawn now will be visible.
func (ctx *Context) IsVisible() bool {
	return ctx.invisibleDepth == 0
}
