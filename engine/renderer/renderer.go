package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu      *sync.Mutex
	backend wgpuRendererBackend

	forceFallbackAdapter bool
	presentMode          PresentMode
	skyDay, skyNight     [3]float32

	frames uint64
}

// Renderer presents scene frames on a window surface.
// Each Draw uploads the frame's camera, light, fog and object uniforms into GPU buffers
// and clears the surface to the fogged sky color. Mesh drawing is done by pipelines
// bound to those buffers and lives outside this package.
type Renderer interface {
	// Draw uploads f and presents one frame.
	//
	// Parameters:
	//   - f: the frame to present
	//
	// Returns:
	//   - error: error if the surface texture or command encoder could not be acquired
	Draw(f scene.Frame) error

	// Resize reconfigures the surface.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Buffer returns the GPU buffer backing one frame uniform, or nil before the first Draw.
	//
	// Parameters:
	//   - slot: which buffer
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	Buffer(slot BufferSlot) *wgpu.Buffer

	// Frames returns how many frames have been presented.
	Frames() uint64

	// Release frees every GPU resource.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU device for the surface and configures it at the given size.
//
// Parameters:
//   - surfaceDescriptor: the window surface, see window.Window.SurfaceDescriptor
//   - width, height: initial surface size in pixels
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: error if no adapter or device is available
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	if surfaceDescriptor == nil {
		return nil, fmt.Errorf("renderer: nil surface descriptor")
	}
	r := &renderer{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
		skyDay:      DefaultDaySky,
		skyNight:    DefaultNightSky,
	}
	for _, opt := range options {
		opt(r)
	}

	backend, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter)
	if err != nil {
		return nil, err
	}
	backend.SetPresentMode(r.presentMode)
	backend.ConfigureSurface(width, height)
	r.backend = backend
	return r, nil
}

func (r *renderer) Draw(f scene.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range frameUploads(f) {
		if err := r.backend.WriteBuffer(u.slot, u.data); err != nil {
			return err
		}
	}
	if err := r.backend.BeginFrame(ClearColor(f, r.skyDay, r.skyNight)); err != nil {
		return err
	}
	r.backend.EndFrame()
	r.backend.Present()
	r.frames++
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Buffer(slot BufferSlot) *wgpu.Buffer {
	return r.backend.Buffer(slot)
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) Release() {
	r.backend.Release()
}
