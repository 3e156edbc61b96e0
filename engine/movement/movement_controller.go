// Package movement provides the controllers that move every object, lamp and camera target
// in the sandbox. A controller owns one Pose and advances it once per tick.
package movement

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// SpeedThreshold is the speed below which velocity-driven controllers stop re-deriving Front,
// so an object coasting to a halt keeps its last heading instead of jittering.
const SpeedThreshold float32 = 0.01

// Controller produces a new Pose each simulation tick.
// Implementations leave Front non-zero and Up not parallel to Front.
// All methods are safe for concurrent use.
type Controller interface {
	// Update advances the controller by dt seconds and returns the updated pose.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - in: the input snapshot for this tick; nil means no input
	//
	// Returns:
	//   - pose.Pose: a copy of the pose after the update
	Update(dt float32, in input.Snapshot) pose.Pose

	// Pose returns a copy of the current pose.
	//
	// Returns:
	//   - pose.Pose: the current pose
	Pose() pose.Pose

	// Matrix returns the model matrix of the current pose.
	//
	// Returns:
	//   - mgl32.Mat4: the local-to-world transform
	Matrix() mgl32.Mat4
}

// poseHolder is the shared state of every controller: the owned pose and its lock.
type poseHolder struct {
	mu   *sync.Mutex
	pose pose.Pose
}

func newPoseHolder(p pose.Pose) poseHolder {
	return poseHolder{mu: &sync.Mutex{}, pose: p}
}

func (h *poseHolder) Pose() pose.Pose {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pose
}

func (h *poseHolder) Matrix() mgl32.Mat4 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pose.Matrix()
}
