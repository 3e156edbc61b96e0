package pose

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPoseMatrix(t *testing.T) {
	Convey("Given a pose facing +X at (1, 2, 3)", t, func() {
		p := Pose{
			Position: mgl32.Vec3{1, 2, 3},
			Front:    mgl32.Vec3{2, 0, 0},
			Up:       mgl32.Vec3{0, 1, 0.3},
		}

		Convey("the basis is orthonormal", func() {
			r, u, f, ok := p.Basis()
			So(ok, ShouldBeTrue)
			So(r.Dot(u), ShouldAlmostEqual, 0, 1e-5)
			So(u.Dot(f), ShouldAlmostEqual, 0, 1e-5)
			So(r.Dot(f), ShouldAlmostEqual, 0, 1e-5)
		})

		Convey("local -Z maps onto front and the origin onto the position", func() {
			m := p.Matrix()
			So(common.ApproxEqualVec3(common.TransformPoint(m, mgl32.Vec3{}), p.Position, 1e-6), ShouldBeTrue)
			So(common.ApproxEqualVec3(common.TransformDir(m, mgl32.Vec3{0, 0, -1}), mgl32.Vec3{1, 0, 0}, 1e-5), ShouldBeTrue)
			So(common.ApproxEqualVec3(common.TransformDir(m, mgl32.Vec3{0, 1, 0}), p.Up.Normalize(), 1e-5), ShouldBeTrue)
		})
	})

	Convey("Given an upright pose facing +X", t, func() {
		p := Pose{
			Position: mgl32.Vec3{1, 2, 3},
			Front:    mgl32.Vec3{2, 0, 0},
			Up:       mgl32.Vec3{0, 1, 0},
		}

		Convey("local axes map onto the world axes of the pose", func() {
			m := p.Matrix()
			So(common.ApproxEqualVec3(common.TransformDir(m, mgl32.Vec3{0, 1, 0}), mgl32.Vec3{0, 1, 0}, 1e-6), ShouldBeTrue)
			So(common.ApproxEqualVec3(common.TransformDir(m, mgl32.Vec3{1, 0, 0}), mgl32.Vec3{0, 0, 1}, 1e-6), ShouldBeTrue)
			So(common.ApproxEqualVec3(common.TransformPoint(m, mgl32.Vec3{0, 0, -1}), mgl32.Vec3{2, 2, 3}, 1e-6), ShouldBeTrue)
		})
	})

	Convey("A degenerate pose yields a translation", t, func() {
		p := Pose{Position: mgl32.Vec3{4, 5, 6}, Front: mgl32.Vec3{}, Up: mgl32.Vec3{0, 1, 0}}
		So(p.Valid(), ShouldBeFalse)
		So(p.Matrix(), ShouldResemble, mgl32.Translate3D(4, 5, 6))
	})

	Convey("Copies do not alias", t, func() {
		a := New(mgl32.Vec3{1, 1, 1})
		b := a
		b.Position = mgl32.Vec3{9, 9, 9}
		So(a.Position, ShouldResemble, mgl32.Vec3{1, 1, 1})
		So(Zero().Front, ShouldResemble, mgl32.Vec3{0, 0, -1})
	})
}
