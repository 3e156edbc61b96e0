package renderer

import (
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lucasb-eyer/go-colorful"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for vertical blank. No tearing.
	PresentModeVSync PresentMode = iota
	// PresentModeUncapped presents immediately. May tear.
	PresentModeUncapped
)

// BufferSlot names one of the per-frame GPU buffers.
type BufferSlot int

const (
	BufferCamera BufferSlot = iota
	BufferLights
	BufferFog
	BufferObjects
	BufferLightViewProjection

	bufferSlotCount
)

var bufferLabels = [bufferSlotCount]string{"Camera", "Lights", "Fog", "Objects", "Light View Projection"}

func (s BufferSlot) String() string {
	if s < 0 || s >= bufferSlotCount {
		return "Unknown"
	}
	return bufferLabels[s]
}

func (s BufferSlot) usage() wgpu.BufferUsage {
	switch s {
	case BufferLights, BufferObjects:
		return wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst
	default:
		return wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst
	}
}

// Sky colors behind the fog.
var (
	DefaultDaySky   = [3]float32{0.45, 0.65, 0.9}
	DefaultNightSky = [3]float32{0.01, 0.01, 0.03}
)

type upload struct {
	slot BufferSlot
	data []byte
}

// frameUploads serializes every per-frame buffer of f.
// The object buffer is skipped when nothing is visible since zero-sized buffers are invalid.
func frameUploads(f scene.Frame) []upload {
	ups := []upload{
		{BufferCamera, f.MarshalCamera()},
		{BufferLights, f.MarshalLights()},
		{BufferFog, f.MarshalFog()},
		{BufferLightViewProjection, f.MarshalLightViewProjection()},
	}
	if objects, _ := f.MarshalObjects(); len(objects) > 0 {
		ups = append(ups, upload{BufferObjects, objects})
	}
	return ups
}

// ClearColor blends the day or night sky toward the fog color by the fog intensity.
//
// Parameters:
//   - f: the frame
//   - day, night: sky colors
//
// Returns:
//   - wgpu.Color: the opaque clear color
func ClearColor(f scene.Frame, day, night [3]float32) wgpu.Color {
	sky := night
	if f.IsDay {
		sky = day
	}
	c := rgb(sky).BlendRgb(rgb(f.Fog.Color), float64(f.Fog.Intensity))
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: 1}
}

func rgb(v [3]float32) colorful.Color {
	return colorful.Color{R: float64(v[0]), G: float64(v[1]), B: float64(v[2])}
}
