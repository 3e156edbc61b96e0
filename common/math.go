package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the squared-length threshold below which a vector is treated as zero
// and refused by SafeNormalize.
const Epsilon float32 = 1e-12

// WorldUp is the fixed world-space up axis used by cameras and ground-bound controllers.
var WorldUp = mgl32.Vec3{0, 1, 0}

// SafeNormalize returns the unit vector in the direction of v.
// The second return value is false when v is (numerically) zero, in which case the
// zero vector is returned instead of a NaN-filled one.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the normalized vector, or the zero vector
//   - bool: true if v could be normalized
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	lenSq := v.Dot(v)
	if lenSq < Epsilon || math32.IsNaN(lenSq) || math32.IsInf(lenSq, 0) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / math32.Sqrt(lenSq)), true
}

// OrthonormalBasis re-orthonormalizes a (front, up) pair with one Gram–Schmidt step:
// right = normalize(front × up), up' = normalize(right × front).
// The returned front is normalized as well.
//
// Parameters:
//   - front: forward direction (need not be unit length)
//   - up: approximate up direction (need not be orthogonal to front)
//
// Returns:
//   - right, upOut, frontOut: the orthonormal basis vectors
//   - ok: false when front is zero or parallel to up
func OrthonormalBasis(front, up mgl32.Vec3) (right, upOut, frontOut mgl32.Vec3, ok bool) {
	f, ok := SafeNormalize(front)
	if !ok {
		return
	}
	r, ok := SafeNormalize(f.Cross(up))
	if !ok {
		return
	}
	u, ok := SafeNormalize(r.Cross(f))
	if !ok {
		return
	}
	return r, u, f, true
}

// Clamp limits value to the closed range [lo, hi].
//
// Parameters:
//   - value: the input value
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// WrapAngle advances an angle accumulator and hard-resets it to zero once its magnitude
// exceeds a full turn. This is a reset, not a modulo: the step that crosses 2π lands on 0.
//
// Parameters:
//   - angle: the current accumulator value in radians
//   - delta: the increment in radians
//
// Returns:
//   - float32: the new accumulator value
func WrapAngle(angle, delta float32) float32 {
	angle += delta
	if math32.Abs(angle) > 2*math32.Pi {
		return 0
	}
	return angle
}

// TransformPoint applies a 4x4 affine matrix to a point (w = 1).
//
// Parameters:
//   - m: the transform
//   - p: the point
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDir applies the rotational part of a 4x4 matrix to a direction (w = 0).
//
// Parameters:
//   - m: the transform
//   - d: the direction
//
// Returns:
//   - mgl32.Vec3: the transformed direction
func TransformDir(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return m.Mat3().Mul3x1(d)
}

// ApproxEqualVec3 reports whether two vectors match component-wise within eps.
func ApproxEqualVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range 3 {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
