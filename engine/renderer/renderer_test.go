package renderer

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

type fakeBackend struct {
	calls      []string
	clear      Color
	beginErr   error
	size       [2]int
	present    PresentMode
	configured int
}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured++
	f.size = [2]int{width, height}
}
func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.present = mode }
func (f *fakeBackend) BeginFrame(clear Color) error {
	f.calls = append(f.calls, "begin")
	f.clear = clear
	return f.beginErr
}
func (f *fakeBackend) EndFrame() { f.calls = append(f.calls, "end") }
func (f *fakeBackend) Present() { f.calls = append(f.calls, "present") }
func (f *fakeBackend) Release() { f.calls = append(f.calls, "release") }

func TestRenderSequence(t *testing.T) {
	fb := &fakeBackend{}
	r := newRenderer(BackendTypeWGPU, WithClearColor(Color{R: 1, A: 1}))
	r.backend = fb

	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []string{"begin", "end", "present"}
	if len(fb.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fb.calls, want)
	}
	for i := range want {
		if fb.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", fb.calls, want)
		}
	}
	if fb.clear != (Color{R: 1, A: 1}) {
		t.Errorf("clear = %+v, want red", fb.clear)
	}
}

func TestRenderStopsWhenSurfaceUnavailable(t *testing.T) {
	fb := &fakeBackend{beginErr: ErrSurfaceUnavailable}
	r := newRenderer(BackendTypeWGPU)
	r.backend = fb

	if err := r.Render(); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Fatalf("Render() error = %v, want ErrSurfaceUnavailable", err)
	}
	if len(fb.calls) != 1 {
		t.Errorf("calls = %v, want only begin", fb.calls)
	}
}

func TestResizeAndPresentModeForwarded(t *testing.T) {
	fb := &fakeBackend{}
	r := newRenderer(BackendTypeWGPU)
	r.backend = fb

	r.SetPresentMode(PresentModeUncapped)
	r.Resize(300, 200)
	r.SetClearColor(Color{B: 1})
	if fb.present != PresentModeUncapped || fb.size != [2]int{300, 200} {
		t.Errorf("backend state = %+v", fb)
	}
	if r.ClearColor() != (Color{B: 1}) {
		t.Errorf("ClearColor() = %+v", r.ClearColor())
	}
}

func TestWGPUPresentMode(t *testing.T) {
	if wgpuPresentMode(PresentModeVSync) != wgpu.PresentModeFifo {
		t.Error("vsync should map to FIFO")
	}
	if wgpuPresentMode(PresentModeUncapped) != wgpu.PresentModeImmediate {
		t.Error("uncapped should map to immediate")
	}
}
