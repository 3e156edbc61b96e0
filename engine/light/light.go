// Package light holds the light values handed to the renderer and the Arena that owns
// every point and spot light of a scene.
package light

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the per-kind light budget of a scene. Exceeding it is a construction error.
const MaxLights = 20

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// The sandbox has exactly one: the sun or moon, swapped by the day/night toggle.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position
	// and falls off with constant, linear and quadratic attenuation.
	LightTypePoint

	// LightTypeSpot represents a light that emits along a direction from a position.
	// Concentration sharpens the beam: the falloff is cos(angle)^concentration.
	LightTypeSpot
)

// DirLight is a directional light.
type DirLight struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
}

// PointLight is an omnidirectional light. Attenuation holds the constant, linear and
// quadratic falloff terms.
type PointLight struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Attenuation mgl32.Vec3
}

// SpotLight is a directional cone light.
type SpotLight struct {
	Position      mgl32.Vec3
	Direction     mgl32.Vec3
	Color         mgl32.Vec3
	Concentration float32
}

// Defaults used by the constructors when an option is not given.
var (
	DefaultColor       = mgl32.Vec3{1, 1, 1}
	DefaultDirection   = mgl32.Vec3{0, -1, 0}
	DefaultAttenuation = mgl32.Vec3{1, 0.09, 0.032}
)

// DefaultConcentration is the spot exponent used when WithConcentration is not given.
const DefaultConcentration float32 = 50

// lightSpec collects builder options before they are copied into a concrete light value.
type lightSpec struct {
	position      mgl32.Vec3
	direction     mgl32.Vec3
	color         mgl32.Vec3
	attenuation   mgl32.Vec3
	concentration float32
}

func newLightSpec(opts []LightBuilderOption) lightSpec {
	s := lightSpec{
		direction:     DefaultDirection,
		color:         DefaultColor,
		attenuation:   DefaultAttenuation,
		concentration: DefaultConcentration,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewDirLight creates a directional light. Only WithDirection and WithColor apply.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - DirLight: the configured light
func NewDirLight(opts ...LightBuilderOption) DirLight {
	s := newLightSpec(opts)
	return DirLight{Direction: s.direction, Color: s.color}
}

// NewPointLight creates a point light. WithDirection and WithConcentration are ignored.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - PointLight: the configured light
func NewPointLight(opts ...LightBuilderOption) PointLight {
	s := newLightSpec(opts)
	return PointLight{Position: s.position, Color: s.color, Attenuation: s.attenuation}
}

// NewSpotLight creates a spot light. WithAttenuation is ignored.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - SpotLight: the configured light
func NewSpotLight(opts ...LightBuilderOption) SpotLight {
	s := newLightSpec(opts)
	return SpotLight{
		Position:      s.position,
		Direction:     s.direction,
		Color:         s.color,
		Concentration: s.concentration,
	}
}

// normalizeOr returns v normalized, or fallback when v is zero.
func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if n, ok := common.SafeNormalize(v); ok {
		return n
	}
	return fallback
}
