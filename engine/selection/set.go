package selection

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type entry struct {
	transform Transform
	selected  bool
	parent    uint64
}

// Set is an in-memory Provider. Objects keep their insertion order, which is
// the order Each visits them in. Parent links let an object's world transform
// follow another object; a missing or cyclic parent is treated as the world root.
// Safe for concurrent use.
type Set struct {
	mu      *sync.RWMutex
	order   []uint64
	entries map[uint64]*entry
	nextID  uint64
}

var _ Provider = &Set{}

// ObjectOption configures an object as it is added to a Set.
type ObjectOption func(*entry)

// WithSelected sets the object's initial selection flag.
//
// Parameters:
//   - selected: whether the object starts selected
//
// Returns:
//   - ObjectOption: option to apply
func WithSelected(selected bool) ObjectOption {
	return func(e *entry) {
		e.selected = selected
	}
}

// WithParent makes the object's transform relative to another object.
//
// Parameters:
//   - parent: the parent's ID (0 for none)
//
// Returns:
//   - ObjectOption: option to apply
func WithParent(parent uint64) ObjectOption {
	return func(e *entry) {
		e.parent = parent
	}
}

// NewSet creates an empty selection set. IDs start at 1; 0 means "no object".
//
// Returns:
//   - *Set: the new set
func NewSet() *Set {
	return &Set{
		mu:      &sync.RWMutex{},
		entries: make(map[uint64]*entry),
		nextID:  1,
	}
}

// Add inserts an object and returns its ID.
//
// Parameters:
//   - t: the object's local transform
//   - options: selection flag and parent options
//
// Returns:
//   - uint64: the new object's ID
func (s *Set) Add(t Transform, options ...ObjectOption) uint64 {
	e := &entry{transform: t}
	for _, option := range options {
		option(e)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.entries[id] = e
	s.order = append(s.order, id)
	return id
}

// Remove deletes an object. Children of the removed object become roots.
//
// Parameters:
//   - id: the object ID
func (s *Set) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return
	}
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetTransform replaces an object's local transform.
//
// Parameters:
//   - id: the object ID
//   - t: the new local transform
//
// Returns:
//   - bool: false if the object does not exist
func (s *Set) SetTransform(id uint64, t Transform) bool {
	return s.update(id, func(e *entry) { e.transform = t })
}

// SetParent re-parents an object (0 detaches it).
//
// Parameters:
//   - id: the object ID
//   - parent: the new parent ID
//
// Returns:
//   - bool: false if the object does not exist
func (s *Set) SetParent(id, parent uint64) bool {
	return s.update(id, func(e *entry) { e.parent = parent })
}

// Select marks an object selected.
func (s *Set) Select(id uint64) bool {
	return s.update(id, func(e *entry) { e.selected = true })
}

// Deselect clears an object's selection flag.
func (s *Set) Deselect(id uint64) bool {
	return s.update(id, func(e *entry) { e.selected = false })
}

// Toggle flips an object's selection flag.
func (s *Set) Toggle(id uint64) bool {
	return s.update(id, func(e *entry) { e.selected = !e.selected })
}

// Clear deselects every object.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		e.selected = false
	}
}

// Len returns the number of objects.
//
// Returns:
//   - int: object count
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Get returns one object by ID.
//
// Parameters:
//   - id: the object ID
//
// Returns:
//   - Object: the object
//   - bool: false if the object does not exist
func (s *Set) Get(id uint64) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return Object{}, false
	}
	return s.object(id, e), true
}

// Each visits a copy of every object in insertion order. fn runs without the
// set's lock held, so it may call back into the set.
func (s *Set) Each(fn func(Object) bool) {
	s.mu.RLock()
	objs := make([]Object, 0, len(s.order))
	for _, id := range s.order {
		objs = append(objs, s.object(id, s.entries[id]))
	}
	s.mu.RUnlock()

	for _, o := range objs {
		if !fn(o) {
			return
		}
	}
}

func (s *Set) update(id uint64, fn func(*entry)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return false
	}
	fn(e)
	return true
}

// object builds the read view for one entry. Caller must hold the lock.
func (s *Set) object(id uint64, e *entry) Object {
	return Object{
		ID:        id,
		Selected:  e.selected,
		Transform: e.transform,
		World:     s.world(id),
	}
}

// world walks the parent chain from id to the root. Caller must hold the lock.
func (s *Set) world(id uint64) mgl32.Mat4 {
	m := mgl32.Ident4()
	visited := make(map[uint64]bool)
	for cur := id; cur != 0 && !visited[cur]; {
		e, ok := s.entries[cur]
		if !ok {
			break
		}
		visited[cur] = true
		m = e.transform.Matrix().Mul4(m)
		cur = e.parent
	}
	return m
}
