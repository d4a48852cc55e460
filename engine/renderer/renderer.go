package renderer

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-editor/engine/window"
)

// ErrSurfaceUnavailable is returned by Render while the surface has no area
// (minimized window) and nothing can be drawn.
var ErrSurfaceUnavailable = errors.New("renderer: surface unavailable")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	clear       Color

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer presents the editor viewport. It owns the window surface and
// clears it to the background color every frame; the editor's gizmo and
// meshes are drawn by external systems.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are delivered; takes effect at the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the viewport background color.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c Color)

	// ClearColor returns the viewport background color.
	//
	// Returns:
	//   - Color: the clear color
	ClearColor() Color

	// Render draws and presents one frame.
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable while minimized, or a backend error
	Render() error

	// Release frees the renderer's GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into w's surface.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - w: the window whose surface to draw into
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the new renderer
//   - error: error if no GPU adapter or device could be obtained
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		b, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter)
		if err != nil {
			return nil, err
		}
		r.backend = b
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(w.Width(), w.Height())
	return r, nil
}

func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clear:       Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(c Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear = c
}

func (r *renderer) ClearColor() Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clear
}

func (r *renderer) Render() error {
	if err := r.backend.BeginFrame(r.ClearColor()); err != nil {
		return err
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
