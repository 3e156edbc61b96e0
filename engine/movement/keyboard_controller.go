package movement

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Keyboard controller defaults.
const (
	DefaultThrust   float32 = 5
	DefaultFriction float32 = 0.5
	DefaultTurnRate float32 = math32.Pi / 2
)

// keyboardController is a ground vehicle: thrust along Front, yaw the velocity with
// turn keys, bleed speed through friction. Front follows the velocity while moving.
type keyboardController struct {
	poseHolder

	velocity     mgl32.Vec3
	acceleration float32
	friction     float32
	turnRate     float32
}

var _ Controller = &keyboardController{}

// NewKeyboard creates a Controller steered by the MoveForward/MoveBack and
// MoveLeft/MoveRight actions. It starts at rest at the origin facing +Z.
//
// Parameters:
//   - opts: optional configuration
//
// Returns:
//   - Controller: the keyboard controller
func NewKeyboard(opts ...KeyboardBuilderOption) Controller {
	k := &keyboardController{
		poseHolder: newPoseHolder(pose.Pose{
			Front: mgl32.Vec3{0, 0, 1},
			Up:    common.WorldUp,
		}),
		acceleration: DefaultThrust,
		friction:     DefaultFriction,
		turnRate:     DefaultTurnRate,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *keyboardController) Update(dt float32, in input.Snapshot) pose.Pose {
	k.mu.Lock()
	defer k.mu.Unlock()

	if thrust := input.Axis(in, input.ActionMoveForward, input.ActionMoveBack); thrust != 0 {
		if _, _, f, ok := common.OrthonormalBasis(k.pose.Front, common.WorldUp); ok {
			k.velocity = k.velocity.Add(f.Mul(thrust * k.acceleration * dt))
		}
	}
	if turn := input.Axis(in, input.ActionMoveLeft, input.ActionMoveRight); turn != 0 {
		k.velocity = mgl32.Rotate3DY(turn * k.turnRate * dt).Mul3x1(k.velocity)
	}

	k.velocity = k.velocity.Sub(k.velocity.Mul(k.friction * dt))
	k.pose.Position = k.pose.Position.Add(k.velocity.Mul(dt))

	if k.velocity.Len() > SpeedThreshold {
		if f, ok := common.SafeNormalize(k.velocity); ok {
			k.pose.Front = f
		}
	}
	return k.pose
}
