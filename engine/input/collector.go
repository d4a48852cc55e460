package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// EventSource is a platform window that reports raw input through callbacks.
// engine/window.Window satisfies it.
type EventSource interface {
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetMouseButtonDownCallback(callback func(button uint32))
	SetMouseButtonUpCallback(callback func(button uint32))
	SetMouseMoveCallback(callback func(x, y float64))
}

// Collector accumulates raw input events between frames and hands them out
// as one State per frame. Events usually arrive on the window thread while
// Frame is called from the engine tick, so all access is serialized.
type Collector interface {
	// Attach registers the collector's handlers on the event source,
	// replacing any callbacks previously set there.
	//
	// Parameters:
	//   - src: the window to receive events from
	Attach(src EventSource)

	// MouseMoved records an absolute cursor position. The first position after
	// creation only seeds the cursor and produces no motion.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	MouseMoved(x, y float64)

	// MouseMotion records a relative cursor motion directly.
	//
	// Parameters:
	//   - dx, dy: motion in pixels
	MouseMotion(dx, dy float32)

	// Scrolled records a vertical scroll delta.
	//
	// Parameters:
	//   - delta: scroll amount (positive = away from the user)
	Scrolled(delta float32)

	// ButtonDown records a mouse button press.
	ButtonDown(button uint32)

	// ButtonUp records a mouse button release.
	ButtonUp(button uint32)

	// KeyDown records a key press (or repeat).
	KeyDown(key uint32)

	// KeyUp records a key release.
	KeyUp(key uint32)

	// Frame returns everything gathered since the previous call and starts a new frame.
	// Held buttons and keys carry over; motion, scroll and edges do not.
	//
	// Returns:
	//   - State: the finished frame's input
	Frame() State
}

type collectorImpl struct {
	mu *sync.Mutex

	motion mgl32.Vec2
	scroll float32

	cursor      mgl32.Vec2
	cursorKnown bool

	buttons switchSet
	keys    switchSet
}

var _ Collector = &collectorImpl{}

// NewCollector creates an empty Collector.
//
// Returns:
//   - Collector: the newly created collector
func NewCollector() Collector {
	return &collectorImpl{
		mu:      &sync.Mutex{},
		buttons: newSwitchSet(),
		keys:    newSwitchSet(),
	}
}

func (c *collectorImpl) Attach(src EventSource) {
	src.SetMouseMoveCallback(c.MouseMoved)
	src.SetScrollCallback(c.Scrolled)
	src.SetMouseButtonDownCallback(c.ButtonDown)
	src.SetMouseButtonUpCallback(c.ButtonUp)
	src.SetKeyDownCallback(c.KeyDown)
	src.SetKeyUpCallback(c.KeyUp)
}

func (c *collectorImpl) MouseMoved(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := mgl32.Vec2{float32(x), float32(y)}
	if c.cursorKnown {
		c.motion = c.motion.Add(pos.Sub(c.cursor))
	}
	c.cursor = pos
	c.cursorKnown = true
}

func (c *collectorImpl) MouseMotion(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.motion = c.motion.Add(mgl32.Vec2{dx, dy})
}

func (c *collectorImpl) Scrolled(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scroll += delta
}

func (c *collectorImpl) ButtonDown(button uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buttons.press(button)
}

func (c *collectorImpl) ButtonUp(button uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buttons.release(button)
}

func (c *collectorImpl) KeyDown(key uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys.press(key)
}

func (c *collectorImpl) KeyUp(key uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys.release(key)
}

func (c *collectorImpl) Frame() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := State{
		Motion:  c.motion,
		Scroll:  c.scroll,
		buttons: c.buttons.snapshot(),
		keys:    c.keys.snapshot(),
	}
	c.motion = mgl32.Vec2{}
	c.scroll = 0
	return s
}
