package game_object

import (
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Materials shared by the prefabs.
var (
	DefaultMaterial = Material{Ambient: 0.1, Diffuse: 0.7, Specular: 0.8, Shininess: 10}
	LampMaterial    = Material{Ambient: 0.65, Diffuse: 0, Specular: 0, Shininess: 1}
	ShipMaterial    = Material{Ambient: 0.1, Diffuse: 0.6, Specular: 0.3, Shininess: 3}
	SphereMaterial  = Material{Ambient: 0.1, Diffuse: 0.4, Specular: 0.6, Shininess: 5}
	FloorMaterial   = Material{Ambient: 0.15, Diffuse: 0.8, Specular: 0.1, Shininess: 2}
	SkyboxMaterial  = Material{Ambient: 1, Diffuse: 0, Specular: 0, Shininess: 1}
)

// Prefab constants.
const (
	LampSize      float32 = 0.1
	ShipSize      float32 = 30
	SkyboxSize    float32 = 1000
	ShipSteerRate float32 = 1
	ShipBeamFocus float32 = 100
	SpotLampFocus float32 = 50
	FloorSize     float32 = 40
)

// LampAttenuation is the falloff of the point lamp bulb.
var LampAttenuation = mgl32.Vec3{0.6, 0.5, 0.5}

// localFront is the object-space direction that maps onto the pose front.
var localFront = mgl32.Vec3{0, 0, -1}

// NewPointLamp creates a small glowing sphere carrying a point light at its center.
//
// Parameters:
//   - c: the controller that moves the lamp
//   - color: the light color
//   - opts: extra options, e.g. WithID
//
// Returns:
//   - GameObject: the lamp
func NewPointLamp(c movement.Controller, color mgl32.Vec3, opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{
		WithController(c),
		WithShape(ShapeSphere),
		WithSize(LampSize),
		WithMaterial(LampMaterial),
		WithPointLight(mgl32.Vec3{}, light.NewPointLight(
			light.WithColor(color),
			light.WithAttenuation(LampAttenuation),
		)),
	}
	return NewGameObject(append(base, opts...)...)
}

// NewSpotLamp creates a small cube shining a spot light along its front.
//
// Parameters:
//   - c: the controller that moves and aims the lamp
//   - color: the light color
//   - opts: extra options, e.g. WithID
//
// Returns:
//   - GameObject: the lamp
func NewSpotLamp(c movement.Controller, color mgl32.Vec3, opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{
		WithController(c),
		WithShape(ShapeCube),
		WithSize(LampSize),
		WithMaterial(LampMaterial),
		WithSpotLight(mgl32.Vec3{}, localFront, light.NewSpotLight(
			light.WithColor(color),
			light.WithConcentration(SpotLampFocus),
		)),
	}
	return NewGameObject(append(base, opts...)...)
}

// NewSpaceShip creates the ship model with a white headlight the TurnLeft and TurnRight
// actions can swing around.
//
// Parameters:
//   - c: the controller that flies the ship, typically movement.NewKeyboard
//   - opts: extra options, e.g. WithID
//
// Returns:
//   - GameObject: the ship
func NewSpaceShip(c movement.Controller, opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{
		WithController(c),
		WithShape(ShapeShip),
		WithSize(ShipSize),
		WithMaterial(ShipMaterial),
		WithSpotLight(mgl32.Vec3{}, localFront, light.NewSpotLight(
			light.WithColor(mgl32.Vec3{1, 1, 1}),
			light.WithConcentration(ShipBeamFocus),
		)),
		WithSpotSteering(ShipSteerRate),
	}
	return NewGameObject(append(base, opts...)...)
}

// NewCube creates a textured crate.
//
// Parameters:
//   - c: the controller that moves the cube
//   - size: edge length
//   - opts: extra options
//
// Returns:
//   - GameObject: the cube
func NewCube(c movement.Controller, size float32, opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{WithController(c), WithShape(ShapeCube), WithSize(size)}
	return NewGameObject(append(base, opts...)...)
}

// NewSphere creates a sphere.
//
// Parameters:
//   - c: the controller that moves the sphere
//   - radius: sphere radius
//   - opts: extra options
//
// Returns:
//   - GameObject: the sphere
func NewSphere(c movement.Controller, radius float32, opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{
		WithController(c),
		WithShape(ShapeSphere),
		WithSize(radius),
		WithMaterial(SphereMaterial),
	}
	return NewGameObject(append(base, opts...)...)
}

// NewFloor creates the ground plane at the given height.
func NewFloor(height float32, opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{
		WithController(movement.NewStatic(floorPose(height))),
		WithShape(ShapeFloor),
		WithSize(FloorSize),
		WithMaterial(FloorMaterial),
	}
	return NewGameObject(append(base, opts...)...)
}

// NewSkybox creates the large inward-facing cube that frames the scene.
func NewSkybox(opts ...GameObjectBuilderOption) GameObject {
	base := []GameObjectBuilderOption{
		WithShape(ShapeSkybox),
		WithSize(SkyboxSize),
		WithMaterial(SkyboxMaterial),
	}
	return NewGameObject(append(base, opts...)...)
}

func floorPose(height float32) pose.Pose {
	return pose.New(mgl32.Vec3{0, height, 0})
}
