package movement

import (
	"math/rand"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Chaotic controller defaults.
const (
	DefaultJitter float32 = 20
)

// DefaultChaoticVelocity is the starting velocity of a chaotic controller.
var DefaultChaoticVelocity = mgl32.Vec3{0, 0, 4}

// chaoticController is a random walk in acceleration space. The acceleration for the
// next tick is redrawn after every update.
type chaoticController struct {
	poseHolder

	rng          *rand.Rand
	velocity     mgl32.Vec3
	acceleration mgl32.Vec3
	jitter       float32
}

var _ Controller = &chaoticController{}

// NewChaotic creates a Controller that wanders under random acceleration.
// The same rng seed always produces the same trajectory for the same dt sequence.
// Panics if rng is nil.
//
// Parameters:
//   - rng: the random source, owned by the controller afterwards
//   - opts: optional configuration
//
// Returns:
//   - Controller: the chaotic controller
func NewChaotic(rng *rand.Rand, opts ...ChaoticBuilderOption) Controller {
	if rng == nil {
		panic("movement: NewChaotic requires a random source")
	}
	c := &chaoticController{
		poseHolder: newPoseHolder(pose.Pose{
			Front: mgl32.Vec3{0, 0, -1},
			Up:    common.WorldUp,
		}),
		rng:      rng,
		velocity: DefaultChaoticVelocity,
		jitter:   DefaultJitter,
	}
	for _, opt := range opts {
		opt(c)
	}
	if f, ok := common.SafeNormalize(c.velocity.Mul(-1)); ok {
		c.pose.Front = f
	}
	c.acceleration = c.draw()
	return c
}

func (c *chaoticController) Update(dt float32, _ input.Snapshot) pose.Pose {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.velocity = c.velocity.Add(c.acceleration.Mul(dt))
	c.pose.Position = c.pose.Position.Add(c.velocity.Mul(dt))

	// Front points against the velocity; a vertical velocity would collapse the basis.
	if f, ok := common.SafeNormalize(c.velocity.Mul(-1)); ok {
		if _, _, _, valid := common.OrthonormalBasis(f, c.pose.Up); valid {
			c.pose.Front = f
		}
	}

	c.acceleration = c.draw()
	return c.pose
}

func (c *chaoticController) draw() mgl32.Vec3 {
	return mgl32.Vec3{
		(c.rng.Float32() - 0.5) * c.jitter,
		(c.rng.Float32() - 0.5) * c.jitter,
		(c.rng.Float32() - 0.5) * c.jitter,
	}
}
