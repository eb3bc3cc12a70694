package gui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames as long as the widget is reached through the
// same ID scopes in the same order.
type ID uint64

// idScope is one level of the ID stack. Each level numbers its own calls so
// that widgets added or skipped inside one scope do not shift IDs elsewhere.
type idScope struct {
	id      ID
	counter uint32
}

// GetID derives an ID from label, the enclosing scope, and the call order
// within that scope, so identical labels in a loop stay distinct.
func (ctx *Context) GetID(label string) ID {
	scope := ctx.topIDScope()
	scope.counter++

	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(scope.id))
	binary.LittleEndian.PutUint32(buf[8:], scope.counter)

	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID opens a nested ID scope named label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, idScope{id: ctx.GetID(label)})
}

// PushIDValue opens a nested ID scope with an explicit ID.
func (ctx *Context) PushIDValue(id ID) {
	ctx.idStack = append(ctx.idStack, idScope{id: id})
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 1 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the ID of the innermost scope.
func (ctx *Context) CurrentID() ID {
	return ctx.topIDScope().id
}

func (ctx *Context) topIDScope() *idScope {
	if len(ctx.idStack) == 0 {
		ctx.idStack = append(ctx.idStack, idScope{})
	}
	return &ctx.idStack[len(ctx.idStack)-1]
}

// HashID derives an ID from label alone, independent of the ID stack and
// call order. Windows and other top-level containers use it so that their
// state survives being skipped for a frame.
func HashID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}
