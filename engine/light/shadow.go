package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultShadowHalfExtent is the default orthographic half-extent (in world units)
// of the directional light's view volume. Controls how much of the scene around the
// camera is covered.
const DefaultShadowHalfExtent float32 = 40.0

// DefaultShadowNear is the default near plane for the directional light's
// orthographic projection.
const DefaultShadowNear float32 = 0.1

// DefaultShadowFar is the default far plane for the directional light's
// orthographic projection.
const DefaultShadowFar float32 = 200.0

// ViewProjection builds an orthographic view-projection matrix looking along the light's
// direction, centered on center (typically the active camera position). Renderers use it
// for the directional shadow pass.
//
// Parameters:
//   - center: world-space center of the light volume
//   - halfExtent: half-size of the orthographic volume in world units
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - mgl32.Mat4: the light-space view-projection matrix
func (d DirLight) ViewProjection(center mgl32.Vec3, halfExtent, near, far float32) mgl32.Mat4 {
	dir := normalizeOr(d.Direction, DefaultDirection)

	// Put the eye behind the center, opposite the light direction.
	eye := center.Sub(dir.Mul(far * 0.5))

	// Pick an up vector that isn't parallel to the light direction.
	up := mgl32.Vec3{0, 1, 0}
	if math32.Abs(dir.Y()) > 0.99 {
		up = mgl32.Vec3{1, 0, 0}
	}

	view := mgl32.LookAtV(eye, center, up)
	proj := mgl32.Ortho(-halfExtent, halfExtent, -halfExtent, halfExtent, near, far)
	return proj.Mul4(view)
}
