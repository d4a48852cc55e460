package camera

// Handle is a stable reference to a camera inside a Set.
// Handles stay valid after other cameras are removed.
type Handle int

// InvalidHandle is returned when no camera matches.
const InvalidHandle Handle = -1

// Set is an arena of cameras addressed by Handle. Removing a camera leaves an
// empty slot so outstanding handles never alias a different camera.
type Set struct {
	slots []Camera
	live  int
}

// NewSet creates an empty camera set.
//
// Parameters:
//   - cams: cameras to add in order
//
// Returns:
//   - *Set: the new set
func NewSet(cams ...Camera) *Set {
	s := &Set{}
	for _, c := range cams {
		s.Add(c)
	}
	return s
}

// Add stores a camera and returns its handle. Adding nil panics.
//
// Parameters:
//   - c: the camera to add
//
// Returns:
//   - Handle: the camera's handle
func (s *Set) Add(c Camera) Handle {
	if c == nil {
		panic("camera: Set.Add requires a non-nil Camera")
	}
	s.slots = append(s.slots, c)
	s.live++
	return Handle(len(s.slots) - 1)
}

// Get returns the camera for h, or nil if h is out of range or removed.
//
// Parameters:
//   - h: the camera handle
//
// Returns:
//   - Camera: the camera or nil
func (s *Set) Get(h Handle) Camera {
	if h < 0 || int(h) >= len(s.slots) {
		return nil
	}
	return s.slots[h]
}

// Remove empties the slot for h. Removing an unknown handle is a no-op.
//
// Parameters:
//   - h: the camera handle
func (s *Set) Remove(h Handle) {
	if s.Get(h) == nil {
		return
	}
	s.slots[h] = nil
	s.live--
}

// Len returns the number of live cameras.
//
// Returns:
//   - int: live camera count
func (s *Set) Len() int {
	return s.live
}

// Each calls fn for every live camera in handle order until fn returns false.
//
// Parameters:
//   - fn: visitor; return false to stop
func (s *Set) Each(fn func(Handle, Camera) bool) {
	for i, c := range s.slots {
		if c == nil {
			continue
		}
		if !fn(Handle(i), c) {
			return
		}
	}
}

// WithRole returns the handles of all live cameras carrying role r, in handle order.
//
// Parameters:
//   - r: the role bits to match
//
// Returns:
//   - []Handle: matching handles
func (s *Set) WithRole(r Role) []Handle {
	var out []Handle
	s.Each(func(h Handle, c Camera) bool {
		if c.HasRole(r) {
			out = append(out, h)
		}
		return true
	})
	return out
}

// First returns the lowest-handle live camera carrying role r.
//
// Parameters:
//   - r: the role bits to match
//
// Returns:
//   - Handle: the handle, or InvalidHandle
//   - Camera: the camera, or nil
func (s *Set) First(r Role) (Handle, Camera) {
	handle, found := InvalidHandle, Camera(nil)
	s.Each(func(h Handle, c Camera) bool {
		if c.HasRole(r) {
			handle, found = h, c
			return false
		}
		return true
	})
	return handle, found
}
