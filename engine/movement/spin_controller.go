package movement

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// spinController rotates a template pose in place about a fixed axis.
type spinController struct {
	poseHolder

	initial      pose.Pose // never mutated
	axis         mgl32.Vec3
	angularSpeed float32 // radians per second, signed
	angle        float32
}

var _ Controller = &spinController{}

// NewSpin creates a Controller that spins the initial pose about axis.
// The angle accumulator is reset to zero once its magnitude passes 2π.
// Panics if axis is the zero vector.
//
// Parameters:
//   - initial: template pose (copied); its position never changes
//   - axis: rotation axis (normalized internally)
//   - angularSpeed: radians per second, negative spins clockwise
//
// Returns:
//   - Controller: the spin controller
func NewSpin(initial pose.Pose, axis mgl32.Vec3, angularSpeed float32) Controller {
	a, ok := common.SafeNormalize(axis)
	if !ok {
		panic("movement: NewSpin requires a non-zero axis")
	}
	return &spinController{
		poseHolder:   newPoseHolder(initial),
		initial:      initial,
		axis:         a,
		angularSpeed: angularSpeed,
	}
}

func (s *spinController) Update(dt float32, _ input.Snapshot) pose.Pose {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.angle = common.WrapAngle(s.angle, dt*s.angularSpeed)
	rot := mgl32.HomogRotate3D(s.angle, s.axis).Mat3()
	s.pose.Front = rot.Mul3x1(s.initial.Front)
	s.pose.Up = rot.Mul3x1(s.initial.Up)
	return s.pose
}
