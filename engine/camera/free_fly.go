package camera

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
)

func (c *cameraImpl) ApplyInput(dt float32, in input.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.controllable || in == nil {
		return
	}

	step := c.moveSpeed * dt
	forward := input.Axis(in, input.ActionMoveForward, input.ActionMoveBack)
	strafe := input.Axis(in, input.ActionMoveRight, input.ActionMoveLeft)
	lift := input.Axis(in, input.ActionMoveUp, input.ActionMoveDown)

	c.position = c.position.
		Add(c.front.Mul(forward * step)).
		Add(c.right.Mul(strafe * step)).
		Add(c.up.Mul(lift * step))

	dx, dy := in.MouseDelta()
	if dx == 0 && dy == 0 {
		return
	}
	c.yaw += dx * c.mouseSensitivity
	c.pitch = common.Clamp(c.pitch-dy*c.mouseSensitivity, MinPitch, MaxPitch)
	c.updateVectors()
}
