package movement

import (
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
)

// staticController never moves. Used for motionless lamps, boxes and floor anchors.
type staticController struct {
	poseHolder
}

var _ Controller = &staticController{}

// NewStatic creates a Controller that always reports the given pose.
//
// Parameters:
//   - p: the fixed pose (copied)
//
// Returns:
//   - Controller: the static controller
func NewStatic(p pose.Pose) Controller {
	return &staticController{poseHolder: newPoseHolder(p)}
}

func (s *staticController) Update(_ float32, _ input.Snapshot) pose.Pose {
	return s.Pose()
}
