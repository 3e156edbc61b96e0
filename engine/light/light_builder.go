package light

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption is a function that configures a light during construction.
type LightBuilderOption func(*lightSpec)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - LightBuilderOption: a function that applies the position option
func WithPosition(p mgl32.Vec3) LightBuilderOption {
	return func(s *lightSpec) {
		s.position = p
	}
}

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing. A zero vector keeps the default.
//
// Parameters:
//   - d: the direction
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option
func WithDirection(d mgl32.Vec3) LightBuilderOption {
	return func(s *lightSpec) {
		s.direction = normalizeOr(d, s.direction)
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - c: the color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option
func WithColor(c mgl32.Vec3) LightBuilderOption {
	return func(s *lightSpec) {
		s.color = c
	}
}

// WithAttenuation is an option builder that sets the constant, linear and quadratic
// falloff terms of a point light.
//
// Parameters:
//   - a: the attenuation terms
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation option
func WithAttenuation(a mgl32.Vec3) LightBuilderOption {
	return func(s *lightSpec) {
		s.attenuation = a
	}
}

// WithConcentration is an option builder that sets the spot exponent.
//
// Parameters:
//   - concentration: the exponent applied to the cone cosine
//
// Returns:
//   - LightBuilderOption: a function that applies the concentration option
func WithConcentration(concentration float32) LightBuilderOption {
	return func(s *lightSpec) {
		s.concentration = concentration
	}
}
