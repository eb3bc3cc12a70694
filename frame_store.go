package gui

import "sync"

// Cleanable is implemented by stores that evict stale entries each frame.
type Cleanable interface {
	Cleanup(currentFrame uint64)
	Clear()
}

var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

func snapshotStores() []Cleanable {
	registryMu.Lock()
	defer registryMu.Unlock()
	return append([]Cleanable(nil), registeredStores...)
}

// NextFrame advances the frame counter and evicts entries that were not
// touched during the previous frame. Context.Reset calls it.
func NextFrame() {
	currentFrame++
	for _, store := range snapshotStores() {
		store.Cleanup(currentFrame)
	}
}

// ClearFrameStores drops every entry of every registered store.
// Hosts call it when switching scenes; tests call it for isolation.
func ClearFrameStores() {
	for _, store := range snapshotStores() {
		store.Clear()
	}
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps typed per-widget state between frames.
// An entry survives as long as its widget asks for it every frame.
//
//	var colorPopupStore = gui.NewFrameStore[ColorPopupState]()
//
//	state := colorPopupStore.Get(id, ColorPopupState{})
//	state.Open = true
type FrameStore[T any] struct {
	mu     sync.Mutex
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it for per-frame cleanup.
// Declare stores as package-level variables.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	registerStore(store)
	return store
}

// Get returns the state for id, creating it from defaultVal on first use,
// and marks it as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// Peek returns the state for id without creating or touching it.
func (s *FrameStore[T]) Peek(id ID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		return entry.value, true
	}
	var zero T
	return zero, false
}

// Delete removes the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes entries not used in the previous frame. Called by NextFrame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// Clear removes all entries.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
