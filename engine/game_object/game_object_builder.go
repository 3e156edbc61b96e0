package game_object

import (
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is drawn.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithController sets the movement controller that drives the GameObject.
//
// Parameters:
//   - c: the controller, owned by the object afterwards
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the controller
func WithController(c movement.Controller) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.controller = c
	}
}

// WithSize sets the uniform scale applied on top of the controller pose.
// Attached lights are positioned with the unscaled pose.
//
// Parameters:
//   - size: the scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the size
func WithSize(size float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.size = size
	}
}

// WithMaterial sets the surface material of the GameObject.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the material
func WithMaterial(m Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.material = m
	}
}

// WithShape sets the primitive or model drawn for the GameObject.
//
// Parameters:
//   - s: the shape
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the shape
func WithShape(s Shape) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.shape = s
	}
}

// WithPointLight attaches a point light at a local offset. The light's own position is
// overwritten on every update.
//
// Parameters:
//   - offset: position in the object's local frame
//   - l: the light template (color and attenuation)
//
// Returns:
//   - GameObjectBuilderOption: functional option to attach the light
func WithPointLight(offset mgl32.Vec3, l light.PointLight) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.pointLights = append(obj.pointLights, attachedPointLight{offset: offset, light: l})
	}
}

// WithSpotLight attaches a spot light at a local offset shining along a local direction.
// Local -Z is the object's front.
//
// Parameters:
//   - offset: position in the object's local frame
//   - direction: beam direction in the object's local frame
//   - l: the light template (color and concentration)
//
// Returns:
//   - GameObjectBuilderOption: functional option to attach the light
func WithSpotLight(offset, direction mgl32.Vec3, l light.SpotLight) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.spotLights = append(obj.spotLights, attachedSpotLight{offset: offset, direction: direction, light: l})
	}
}

// WithSpotSteering lets the TurnLeft and TurnRight actions rotate the object's spot
// light directions about the local Y axis.
//
// Parameters:
//   - rate: angular speed in radians per second
//
// Returns:
//   - GameObjectBuilderOption: functional option to enable steering
func WithSpotSteering(rate float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.steerRate = rate
	}
}
