package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's starting position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(p mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = p
	}
}

// WithPitch sets the starting pitch in degrees. The value is clamped to [-89, 89].
//
// Parameters:
//   - degrees: pitch in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pitch
func WithPitch(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = degrees
	}
}

// WithYaw sets the starting yaw in degrees.
//
// Parameters:
//   - degrees: yaw in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's yaw
func WithYaw(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = degrees
	}
}

// WithFov sets the camera's field of view in degrees. The value is clamped to [1, 90].
//
// Parameters:
//   - degrees: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = degrees
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithControllable marks the camera as driven by free-fly input.
//
// Parameters:
//   - controllable: true to accept movement and mouse look
//
// Returns:
//   - CameraBuilderOption: a function that sets the controllable flag
func WithControllable(controllable bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controllable = controllable
	}
}

// WithOrthographic starts the camera in orthographic mode.
//
// Returns:
//   - CameraBuilderOption: a function that disables perspective projection
func WithOrthographic() CameraBuilderOption {
	return func(c *cameraImpl) {
		c.perspective = false
	}
}

// WithMoveSpeed sets the free-fly speed in units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraBuilderOption: a function that sets the movement speed
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithMouseSensitivity sets the degrees of rotation per pixel of mouse movement.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - CameraBuilderOption: a function that sets the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}
