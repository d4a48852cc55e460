package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// wgpuPresentMode maps a PresentMode onto the WebGPU present mode.
func wgpuPresentMode(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeVSync:
		return wgpu.PresentModeFifo
	default:
		return wgpu.PresentModeImmediate
	}
}

// Color is a linear RGBA clear color.
type Color struct {
	R, G, B, A float64
}

// RendererBackend is the GPU side of the Renderer: it owns the surface and
// records one clear pass per frame.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain for the given framebuffer size.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode changes the present mode used at the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next surface texture and opens a render pass
	// that clears it.
	//
	// Parameters:
	//   - clear: the clear color
	//
	// Returns:
	//   - error: error if the surface texture could not be acquired
	BeginFrame(clear Color) error

	// EndFrame closes the render pass and submits the command buffer.
	EndFrame()

	// Present shows the frame acquired by BeginFrame.
	Present()

	// Release frees every GPU object the backend holds.
	Release()
}
