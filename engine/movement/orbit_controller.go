package movement

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitController moves a pose around a horizontal circle, always facing along the tangent.
type orbitController struct {
	poseHolder

	radius       float32
	center       mgl32.Vec3
	angularSpeed float32
	angle        float32
}

var _ Controller = &orbitController{}

// NewOrbit creates a Controller that circles center in the XZ plane.
// The starting pose sits at angle 0, i.e. center + (radius, 0, 0), facing +Z.
//
// Parameters:
//   - radius: circle radius
//   - center: circle center
//   - angularSpeed: radians per second, signed
//
// Returns:
//   - Controller: the orbit controller
func NewOrbit(radius float32, center mgl32.Vec3, angularSpeed float32) Controller {
	return &orbitController{
		poseHolder: newPoseHolder(pose.Pose{
			Position: center.Add(mgl32.Vec3{radius, 0, 0}),
			Front:    mgl32.Vec3{0, 0, 1},
			Up:       common.WorldUp,
		}),
		radius:       radius,
		center:       center,
		angularSpeed: angularSpeed,
	}
}

func (o *orbitController) Update(dt float32, _ input.Snapshot) pose.Pose {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.angle = common.WrapAngle(o.angle, dt*o.angularSpeed)
	o.pose.Position = o.center.Add(mgl32.Vec3{o.radius * math32.Cos(o.angle), 0, o.radius * math32.Sin(o.angle)})

	tangent := o.angle + math32.Pi/2
	o.pose.Front = mgl32.Vec3{math32.Cos(tangent), 0, math32.Sin(tangent)}
	return o.pose
}
