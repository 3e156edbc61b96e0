// Package camera turns a viewpoint into view and projection matrices.
// Every variant is driven by pitch/yaw in degrees; follow and rubber-band cameras
// additionally track a target owned by a movement controller.
package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection and orientation limits shared by all cameras.
const (
	Near float32 = 0.01
	Far  float32 = 1000

	// OrthoWidth is the horizontal extent of the orthographic volume. Height is OrthoWidth / aspect.
	OrthoWidth float32 = 3

	MinPitch float32 = -89
	MaxPitch float32 = 89
	MinFov   float32 = 1
	MaxFov   float32 = 90

	DefaultYaw              float32 = -90
	DefaultPitch            float32 = 0
	DefaultFov              float32 = 90
	DefaultMoveSpeed        float32 = 1.5
	DefaultMouseSensitivity float32 = 0.2
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	pitch  float32 // degrees
	yaw    float32 // degrees
	fov    float32 // degrees
	aspect float32

	controllable bool
	perspective  bool

	moveSpeed        float32
	mouseSensitivity float32
}

// Camera defines the interface for every sandbox camera.
// front/right/up are derived from pitch and yaw and are never set directly.
// All methods are safe for concurrent use.
type Camera interface {
	// Position returns the world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// SetPosition moves the eye.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p mgl32.Vec3)

	// Front returns the unit viewing direction derived from pitch and yaw.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Right returns the unit right vector, front × world-up.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	Right() mgl32.Vec3

	// Up returns the unit up vector, right × front.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Pitch returns the pitch in degrees.
	//
	// Returns:
	//   - float32: pitch in [-89, 89]
	Pitch() float32

	// SetPitch sets the pitch in degrees, clamped to [-89, 89], and recomputes the direction vectors.
	//
	// Parameters:
	//   - degrees: the requested pitch
	SetPitch(degrees float32)

	// Yaw returns the yaw in degrees.
	//
	// Returns:
	//   - float32: yaw, unclamped
	Yaw() float32

	// SetYaw sets the yaw in degrees and recomputes the direction vectors.
	//
	// Parameters:
	//   - degrees: the requested yaw
	SetYaw(degrees float32)

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: fov in [1, 90]
	Fov() float32

	// SetFov sets the field of view in degrees, clamped to [1, 90].
	//
	// Parameters:
	//   - degrees: the requested field of view
	SetFov(degrees float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio (width / height). Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Controllable reports whether ApplyInput moves this camera.
	//
	// Returns:
	//   - bool: true for free-fly cameras
	Controllable() bool

	// Perspective reports whether the camera uses a perspective projection.
	//
	// Returns:
	//   - bool: true for perspective, false for orthographic
	Perspective() bool

	// SetPerspective selects the projection mode.
	//
	// Parameters:
	//   - perspective: true for perspective, false for orthographic
	SetPerspective(perspective bool)

	// ToggleProjection flips between perspective and orthographic projection.
	ToggleProjection()

	// ViewMatrix returns the world-to-view transform.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the view-to-clip transform for the current mode.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// Update advances camera-owned motion by dt seconds.
	// Free and follow cameras do not move on their own.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// ApplyInput applies free-fly movement and mouse look. No-op unless Controllable.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - in: the input snapshot for this tick; nil means no input
	ApplyInput(dt float32, in input.Snapshot)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a free camera at the origin looking down -Z with a 90° perspective.
// The camera is scripted (not controllable) unless WithControllable is given.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	return newCameraImpl(options...)
}

func newCameraImpl(options ...CameraBuilderOption) *cameraImpl {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		pitch:            DefaultPitch,
		yaw:              DefaultYaw,
		fov:              DefaultFov,
		aspect:           1,
		perspective:      true,
		moveSpeed:        DefaultMoveSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
	}
	for _, option := range options {
		option(c)
	}
	c.pitch = common.Clamp(c.pitch, MinPitch, MaxPitch)
	c.fov = common.Clamp(c.fov, MinFov, MaxFov)
	c.updateVectors()
	return c
}

// ViewProjection returns projection × view for c.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - mgl32.Mat4: the combined view-projection matrix
func ViewProjection(c Camera) mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) SetPitch(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = common.Clamp(degrees, MinPitch, MaxPitch)
	c.updateVectors()
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) SetYaw(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = degrees
	c.updateVectors()
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = common.Clamp(degrees, MinFov, MaxFov)
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
}

func (c *cameraImpl) Controllable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controllable
}

func (c *cameraImpl) Perspective() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.perspective
}

func (c *cameraImpl) SetPerspective(perspective bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.perspective = perspective
}

func (c *cameraImpl) ToggleProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.perspective = !c.perspective
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.perspective {
		return mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, Near, Far)
	}
	halfW := OrthoWidth / 2
	halfH := halfW / c.aspect
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, Near, Far)
}

func (c *cameraImpl) Update(_ float32) {}

// updateVectors recomputes front, right and up from pitch and yaw.
// Caller must hold the mutex.
func (c *cameraImpl) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)
	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	// pitch is clamped to ±89°, so front never lines up with world-up
	c.right = c.front.Cross(common.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// lookAt builds a view matrix from eye toward center. It reports false when the
// direction is zero or parallel to up, where mgl32.LookAtV would produce NaN.
func lookAt(eye, center, up mgl32.Vec3) (mgl32.Mat4, bool) {
	if _, _, _, ok := common.OrthonormalBasis(center.Sub(eye), up); !ok {
		return mgl32.Mat4{}, false
	}
	return mgl32.LookAtV(eye, center, up), true
}
