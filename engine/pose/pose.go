// Package pose holds the position/orientation value shared by every movable entity and camera.
package pose

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a world-space placement: a position plus forward and up directions.
// Front and Up are not kept orthonormal; consumers call Basis when they need a rotation.
// Pose is a value type, so assigning it copies it.
type Pose struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
}

// New creates a Pose at position facing -Z with +Y up.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - Pose: the new pose
func New(position mgl32.Vec3) Pose {
	return Pose{
		Position: position,
		Front:    mgl32.Vec3{0, 0, -1},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// Zero returns a Pose at the origin facing -Z with +Y up.
func Zero() Pose {
	return New(mgl32.Vec3{})
}

// Basis re-orthonormalizes Front and Up.
//
// Returns:
//   - right, up, front: orthonormal basis vectors
//   - ok: false when Front is zero or parallel to Up
func (p Pose) Basis() (right, up, front mgl32.Vec3, ok bool) {
	return common.OrthonormalBasis(p.Front, p.Up)
}

// Matrix returns the model matrix of the pose: the local axes (right, up, -front) as columns
// followed by the translation. Local -Z therefore maps onto Front.
// A degenerate pose produces a pure translation.
//
// Returns:
//   - mgl32.Mat4: the local-to-world transform
func (p Pose) Matrix() mgl32.Mat4 {
	r, u, f, ok := p.Basis()
	if !ok {
		return mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	}
	return mgl32.Mat4FromCols(
		r.Vec4(0),
		u.Vec4(0),
		f.Mul(-1).Vec4(0),
		p.Position.Vec4(1),
	)
}

// Valid reports whether the pose can produce a rotation basis.
func (p Pose) Valid() bool {
	_, _, _, ok := p.Basis()
	return ok
}
