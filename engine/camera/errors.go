package camera

import "errors"

var (
	// ErrNoViewport is returned when the viewport size cannot be read; no camera is updated that frame.
	ErrNoViewport = errors.New("camera: no primary viewport")

	// ErrNoPrimaryCamera is returned by Recenter when no camera carries RolePrimary.
	ErrNoPrimaryCamera = errors.New("camera: no primary camera")
)

// Viewport reports the size of the surface the cameras render into.
type Viewport interface {
	// ViewportSize returns the drawable size in pixels, or an error when no
	// viewport is available (closed, minimized or not yet created).
	ViewportSize() (width, height int, err error)
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() (width, height int, err error)

// ViewportSize calls f.
func (f ViewportFunc) ViewportSize() (width, height int, err error) { return f() }

// FixedViewport returns a Viewport that always reports the given size.
func FixedViewport(width, height int) Viewport {
	return ViewportFunc(func() (int, int, error) { return width, height, nil })
}
