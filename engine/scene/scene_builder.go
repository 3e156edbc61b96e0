package scene

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene name used in logs and errors.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithFogEnabled sets whether fog starts rising.
//
// Parameters:
//   - enabled: true to start with fog enabled
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFogEnabled(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.fogEnabled = enabled
	}
}

// WithDirLightDirection overrides the direction of the directional light.
// A zero vector is ignored.
//
// Parameters:
//   - x, y, z: direction components
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDirLightDirection(x, y, z float32) SceneBuilderOption {
	return func(s *scene) {
		if d, ok := common.SafeNormalize(mgl32.Vec3{x, y, z}); ok {
			s.dirLight.Direction = d
		}
	}
}
