package gui

import (
	"slices"
	"sync"
)

// Component is implemented by anything that draws itself into the current
// layout. It allows users to extend the library with their own panels
// without modifying the core package.
//
//	type Counter struct{ n int }
//
//	func (c *Counter) Render(ctx *gui.Context) {
//	    if ctx.Button("+1") {
//	        c.n++
//	    }
//	    ctx.Label(strconv.Itoa(c.n))
//	}
type Component interface {
	Render(ctx *Context)
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(ctx *Context)

// Render implements Component.
func (f ComponentFunc) Render(ctx *Context) { f(ctx) }

// ComponentFactory creates a new instance of a component.
type ComponentFactory func() Component

var (
	componentMu       sync.RWMutex
	componentRegistry = make(map[string]ComponentFactory)
)

// RegisterComponent registers a factory under name, replacing any previous one.
//
//	gui.RegisterComponent("widget_gallery", func() gui.Component {
//	    return gallery.New()
//	})
func RegisterComponent(name string, factory ComponentFactory) {
	componentMu.Lock()
	componentRegistry[name] = factory
	componentMu.Unlock()
}

// UnregisterComponent removes a component from the registry.
func UnregisterComponent(name string) {
	componentMu.Lock()
	delete(componentRegistry, name)
	componentMu.Unlock()
}

// NewComponent creates a registered component. ok is false if name is unknown.
func NewComponent(name string) (c Component, ok bool) {
	componentMu.RLock()
	factory := componentRegistry[name]
	componentMu.RUnlock()
	if factory == nil {
		return nil, false
	}
	return factory(), true
}

// ComponentNames returns the registered names in sorted order.
func ComponentNames() []string {
	componentMu.RLock()
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	componentMu.RUnlock()
	slices.Sort(names)
	return names
}

// Render draws c as a single vertical item of the current layout.
func (ctx *Context) Render(c Component) {
	ctx.VStack()(func() {
		c.Render(ctx)
	})
}
