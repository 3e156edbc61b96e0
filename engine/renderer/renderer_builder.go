package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithSkyColors sets the background behind the fog for day and night.
//
// Parameters:
//   - day, night: RGB colors
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSkyColors(day, night [3]float32) RendererBuilderOption {
	return func(r *renderer) {
		r.skyDay = day
		r.skyNight = night
	}
}

// WithForceSoftwareRenderer asks WebGPU for a CPU fallback adapter. This requires a software
// Vulkan ICD such as SwiftShader or lavapipe.
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
