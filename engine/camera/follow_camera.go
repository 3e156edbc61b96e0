package camera

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Target is anything a camera can track. movement.Controller satisfies it.
type Target interface {
	// Pose returns a copy of the target's current pose.
	//
	// Returns:
	//   - pose.Pose: the current pose
	Pose() pose.Pose

	// Matrix returns the target's local-to-world transform.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	Matrix() mgl32.Mat4
}

// followCamera stays where it is put and keeps the target's position centered.
type followCamera struct {
	*cameraImpl

	target Target
}

var _ Camera = &followCamera{}

// NewFollowCamera creates a camera that looks at target's position from its own position.
// It never moves itself and ignores free-fly input. Panics if target is nil.
//
// Parameters:
//   - target: the tracked target
//   - options: functional options, typically WithPosition
//
// Returns:
//   - Camera: the follow camera
func NewFollowCamera(target Target, options ...CameraBuilderOption) Camera {
	if target == nil {
		panic("camera: NewFollowCamera requires a target")
	}
	c := newCameraImpl(options...)
	c.controllable = false
	return &followCamera{cameraImpl: c, target: target}
}

func (f *followCamera) ViewMatrix() mgl32.Mat4 {
	center := f.target.Pose().Position

	f.mu.Lock()
	defer f.mu.Unlock()
	if view, ok := lookAt(f.position, center, common.WorldUp); ok {
		return view
	}
	return mgl32.LookAtV(f.position, f.position.Add(f.front), f.up)
}
