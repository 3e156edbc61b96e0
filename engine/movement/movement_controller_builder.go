package movement

import "github.com/go-gl/mathgl/mgl32"

// KeyboardBuilderOption configures a keyboard controller at construction time.
type KeyboardBuilderOption func(*keyboardController)

// WithKeyboardStart sets the starting position of the keyboard controller.
//
// Parameters:
//   - position: the starting world position
//
// Returns:
//   - KeyboardBuilderOption: option applied by NewKeyboard
func WithKeyboardStart(position mgl32.Vec3) KeyboardBuilderOption {
	return func(k *keyboardController) {
		k.pose.Position = position
	}
}

// WithThrust sets the forward acceleration in units per second squared.
//
// Parameters:
//   - acceleration: acceleration applied while thrust is held
//
// Returns:
//   - KeyboardBuilderOption: option applied by NewKeyboard
func WithThrust(acceleration float32) KeyboardBuilderOption {
	return func(k *keyboardController) {
		k.acceleration = acceleration
	}
}

// WithFriction sets the per-second velocity decay factor.
//
// Parameters:
//   - friction: decay factor, velocity -= velocity * friction * dt
//
// Returns:
//   - KeyboardBuilderOption: option applied by NewKeyboard
func WithFriction(friction float32) KeyboardBuilderOption {
	return func(k *keyboardController) {
		k.friction = friction
	}
}

// WithTurnRate sets the yaw rate in radians per second used while turning.
//
// Parameters:
//   - rate: turn rate in radians per second
//
// Returns:
//   - KeyboardBuilderOption: option applied by NewKeyboard
func WithTurnRate(rate float32) KeyboardBuilderOption {
	return func(k *keyboardController) {
		k.turnRate = rate
	}
}

// ChaoticBuilderOption configures a chaotic controller at construction time.
type ChaoticBuilderOption func(*chaoticController)

// WithChaoticStart sets the starting position of the chaotic controller.
//
// Parameters:
//   - position: the starting world position
//
// Returns:
//   - ChaoticBuilderOption: option applied by NewChaotic
func WithChaoticStart(position mgl32.Vec3) ChaoticBuilderOption {
	return func(c *chaoticController) {
		c.pose.Position = position
	}
}

// WithInitialVelocity sets the starting velocity of the chaotic controller.
//
// Parameters:
//   - velocity: initial velocity in units per second
//
// Returns:
//   - ChaoticBuilderOption: option applied by NewChaotic
func WithInitialVelocity(velocity mgl32.Vec3) ChaoticBuilderOption {
	return func(c *chaoticController) {
		c.velocity = velocity
	}
}

// WithJitter sets the scale of the random acceleration drawn every tick.
// Each component is drawn uniformly from [-scale/2, scale/2).
//
// Parameters:
//   - scale: acceleration scale
//
// Returns:
//   - ChaoticBuilderOption: option applied by NewChaotic
func WithJitter(scale float32) ChaoticBuilderOption {
	return func(c *chaoticController) {
		c.jitter = scale
	}
}
