package camera

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultGain is the stiffness of the rubber-band spring in 1/s.
const DefaultGain float32 = 10

// LookAhead is added to the target position to get the rubber-band look point.
var LookAhead = mgl32.Vec3{0, 0.5, 0}

// rubberBandCamera chases a point fixed in the target's local frame with exponential lag.
// The embedded position is the smoothed current position.
type rubberBandCamera struct {
	*cameraImpl

	target Target
	offset mgl32.Vec3 // in the target's local frame
	gain   float32
}

var _ Camera = &rubberBandCamera{}

// RubberBandBuilderOption configures a rubber-band camera at construction time.
type RubberBandBuilderOption func(*rubberBandCamera)

// WithGain sets the spring stiffness k. Larger values follow more tightly.
//
// Parameters:
//   - k: gain in 1/s
//
// Returns:
//   - RubberBandBuilderOption: a function that sets the gain
func WithGain(k float32) RubberBandBuilderOption {
	return func(r *rubberBandCamera) {
		r.gain = k
	}
}

// WithCameraOptions forwards base camera options such as WithFov or WithAspect.
//
// Parameters:
//   - options: base camera options
//
// Returns:
//   - RubberBandBuilderOption: a function that applies the options
func WithCameraOptions(options ...CameraBuilderOption) RubberBandBuilderOption {
	return func(r *rubberBandCamera) {
		for _, option := range options {
			option(r.cameraImpl)
		}
	}
}

// NewRubberBandCamera creates a chase camera that springs toward target.Matrix() · offset.
// The camera starts at the desired point. Panics if target is nil.
//
// Parameters:
//   - target: the chased target
//   - offset: the desired camera position in the target's local frame
//   - options: functional options
//
// Returns:
//   - Camera: the rubber-band camera
func NewRubberBandCamera(target Target, offset mgl32.Vec3, options ...RubberBandBuilderOption) Camera {
	if target == nil {
		panic("camera: NewRubberBandCamera requires a target")
	}
	r := &rubberBandCamera{
		cameraImpl: newCameraImpl(),
		target:     target,
		offset:     offset,
		gain:       DefaultGain,
	}
	for _, option := range options {
		option(r)
	}
	r.controllable = false
	r.pitch = common.Clamp(r.pitch, MinPitch, MaxPitch)
	r.fov = common.Clamp(r.fov, MinFov, MaxFov)
	r.updateVectors()
	r.position = common.TransformPoint(target.Matrix(), offset)
	return r
}

func (r *rubberBandCamera) Update(dt float32) {
	desired := common.TransformPoint(r.target.Matrix(), r.offset)

	r.mu.Lock()
	defer r.mu.Unlock()
	if dt <= 0 {
		return
	}
	// 1 - e^(-k·dt) equals k·dt for small steps and never overshoots for large ones.
	alpha := 1 - math32.Exp(-r.gain*dt)
	r.position = r.position.Add(desired.Sub(r.position).Mul(alpha))
}

func (r *rubberBandCamera) ViewMatrix() mgl32.Mat4 {
	center := r.target.Pose().Position.Add(LookAhead)

	r.mu.Lock()
	defer r.mu.Unlock()
	if view, ok := lookAt(r.position, center, common.WorldUp); ok {
		return view
	}
	return mgl32.LookAtV(r.position, r.position.Add(r.front), r.up)
}
