package camera

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeTarget struct {
	p pose.Pose
}

func (f *fakeTarget) Pose() pose.Pose { return f.p }
func (f *fakeTarget) Matrix() mgl32.Mat4 { return f.p.Matrix() }

func TestCameraDefaults(t *testing.T) {
	Convey("A new camera", t, func() {
		c := NewCamera()

		So(c.Yaw(), ShouldEqual, DefaultYaw)
		So(c.Pitch(), ShouldEqual, DefaultPitch)
		So(c.Fov(), ShouldEqual, DefaultFov)
		So(c.Perspective(), ShouldBeTrue)
		So(c.Controllable(), ShouldBeFalse)
		So(common.ApproxEqualVec3(c.Front(), mgl32.Vec3{0, 0, -1}, 1e-6), ShouldBeTrue)
		So(common.ApproxEqualVec3(c.Right(), mgl32.Vec3{1, 0, 0}, 1e-6), ShouldBeTrue)
		So(common.ApproxEqualVec3(c.Up(), mgl32.Vec3{0, 1, 0}, 1e-6), ShouldBeTrue)
	})
}

func TestCameraClamps(t *testing.T) {
	Convey("Pitch and fov are clamped, yaw is not", t, func() {
		c := NewCamera()

		c.SetPitch(120)
		So(c.Pitch(), ShouldEqual, MaxPitch)
		So(c.Front().Y(), ShouldAlmostEqual, math32.Sin(mgl32.DegToRad(89)), 1e-6)

		c.SetPitch(-500)
		So(c.Pitch(), ShouldEqual, MinPitch)

		c.SetFov(0)
		So(c.Fov(), ShouldEqual, MinFov)
		c.SetFov(170)
		So(c.Fov(), ShouldEqual, MaxFov)

		c.SetYaw(720)
		So(c.Yaw(), ShouldEqual, float32(720))

		Convey("including values passed at construction", func() {
			d := NewCamera(WithPitch(95), WithFov(-3))
			So(d.Pitch(), ShouldEqual, MaxPitch)
			So(d.Fov(), ShouldEqual, MinFov)
		})
	})
}

func TestCameraVectors(t *testing.T) {
	Convey("Direction vectors", t, func() {
		c := NewCamera()

		Convey("follow yaw", func() {
			c.SetYaw(0)
			So(common.ApproxEqualVec3(c.Front(), mgl32.Vec3{1, 0, 0}, 1e-6), ShouldBeTrue)
			So(common.ApproxEqualVec3(c.Right(), mgl32.Vec3{0, 0, 1}, 1e-6), ShouldBeTrue)
		})

		Convey("stay orthonormal for any pitch and yaw", func() {
			rng := rand.New(rand.NewSource(3))
			for range 200 {
				c.SetYaw(rng.Float32()*720 - 360)
				c.SetPitch(rng.Float32()*200 - 100)
				f, r, u := c.Front(), c.Right(), c.Up()
				So(f.Len(), ShouldAlmostEqual, 1, 1e-5)
				So(r.Len(), ShouldAlmostEqual, 1, 1e-5)
				So(u.Len(), ShouldAlmostEqual, 1, 1e-5)
				So(f.Dot(r), ShouldAlmostEqual, 0, 1e-5)
				So(f.Dot(u), ShouldAlmostEqual, 0, 1e-5)
				So(r.Dot(u), ShouldAlmostEqual, 0, 1e-5)
			}
		})
	})
}

func TestCameraMatrices(t *testing.T) {
	Convey("View and projection", t, func() {
		c := NewCamera(WithPosition(mgl32.Vec3{1, 2, 3}), WithAspect(2))

		Convey("view maps the eye to the origin and front to -Z", func() {
			v := c.ViewMatrix()
			So(common.ApproxEqualVec3(common.TransformPoint(v, mgl32.Vec3{1, 2, 3}), mgl32.Vec3{}, 1e-5), ShouldBeTrue)
			ahead := common.TransformPoint(v, mgl32.Vec3{1, 2, 3}.Add(c.Front()))
			So(common.ApproxEqualVec3(ahead, mgl32.Vec3{0, 0, -1}, 1e-5), ShouldBeTrue)
		})

		Convey("perspective uses fov and aspect", func() {
			p := c.ProjectionMatrix()
			So(p.At(0, 0), ShouldAlmostEqual, 0.5, 1e-5)
			So(p.At(1, 1), ShouldAlmostEqual, 1, 1e-5)
			So(p.At(3, 2), ShouldEqual, float32(-1))
		})

		Convey("orthographic uses a fixed width", func() {
			c.ToggleProjection()
			So(c.Perspective(), ShouldBeFalse)
			p := c.ProjectionMatrix()
			So(p.At(0, 0), ShouldAlmostEqual, 2.0/3.0, 1e-5)
			So(p.At(1, 1), ShouldAlmostEqual, 4.0/3.0, 1e-5)
			So(p.At(3, 2), ShouldEqual, float32(0))

			c.ToggleProjection()
			So(c.Perspective(), ShouldBeTrue)
		})

		Convey("ignores a non-positive aspect", func() {
			c.SetAspect(0)
			So(c.Aspect(), ShouldEqual, float32(2))
		})

		Convey("ViewProjection composes projection after view", func() {
			So(ViewProjection(c), ShouldResemble, c.ProjectionMatrix().Mul4(c.ViewMatrix()))
		})
	})
}

func TestFreeFly(t *testing.T) {
	forward := input.NewFrame([]input.Action{input.ActionMoveForward}, nil, 0, 0)

	Convey("Free-fly input", t, func() {
		Convey("is ignored by scripted cameras", func() {
			c := NewCamera()
			c.ApplyInput(1, input.NewFrame([]input.Action{input.ActionMoveForward}, nil, 50, 50))
			So(c.Position(), ShouldResemble, mgl32.Vec3{})
			So(c.Yaw(), ShouldEqual, DefaultYaw)
		})

		Convey("moves a controllable camera along its axes", func() {
			c := NewCamera(WithControllable(true))
			c.ApplyInput(1, forward)
			So(common.ApproxEqualVec3(c.Position(), mgl32.Vec3{0, 0, -1.5}, 1e-5), ShouldBeTrue)

			c.ApplyInput(2, input.NewFrame([]input.Action{input.ActionMoveRight, input.ActionMoveUp}, nil, 0, 0))
			So(common.ApproxEqualVec3(c.Position(), mgl32.Vec3{3, 3, -1.5}, 1e-5), ShouldBeTrue)
		})

		Convey("turns with the mouse", func() {
			c := NewCamera(WithControllable(true))
			c.ApplyInput(0.016, input.NewFrame(nil, nil, 10, 10))
			So(c.Yaw(), ShouldAlmostEqual, -88, 1e-5)
			So(c.Pitch(), ShouldAlmostEqual, -2, 1e-5)

			c.ApplyInput(0.016, input.NewFrame(nil, nil, 0, -10000))
			So(c.Pitch(), ShouldEqual, MaxPitch)
		})

		Convey("accepts a nil snapshot", func() {
			c := NewCamera(WithControllable(true))
			So(func() { c.ApplyInput(1, nil) }, ShouldNotPanic)
		})
	})
}

func TestFollowCamera(t *testing.T) {
	Convey("Follow camera", t, func() {
		target := &fakeTarget{p: pose.New(mgl32.Vec3{0, 0, -5})}
		c := NewFollowCamera(target, WithPosition(mgl32.Vec3{0, 2, 5}), WithControllable(true))

		So(c.Controllable(), ShouldBeFalse)

		Convey("keeps the target centered", func() {
			for _, p := range []mgl32.Vec3{{0, 0, -5}, {3, 0, -5}, {-4, 1, 20}} {
				target.p.Position = p
				local := common.TransformPoint(c.ViewMatrix(), p)
				So(local.X(), ShouldAlmostEqual, 0, 1e-4)
				So(local.Y(), ShouldAlmostEqual, 0, 1e-4)
				So(local.Z(), ShouldBeLessThan, float32(0))
			}
		})

		Convey("does not move on update", func() {
			c.Update(1)
			So(c.Position(), ShouldResemble, mgl32.Vec3{0, 2, 5})
		})

		Convey("falls back to its own front when on top of the target", func() {
			target.p.Position = mgl32.Vec3{0, 2, 5}
			v := c.ViewMatrix()
			for i := range 16 {
				So(math32.IsNaN(v[i]), ShouldBeFalse)
			}
		})

		Convey("requires a target", func() {
			So(func() { NewFollowCamera(nil) }, ShouldPanic)
		})
	})
}

func TestRubberBandCamera(t *testing.T) {
	Convey("Rubber-band camera", t, func() {
		target := &fakeTarget{p: pose.Zero()}

		Convey("covers 1 - e^(-k·t) of a sudden jump", func() {
			c := NewRubberBandCamera(target, mgl32.Vec3{}, WithGain(10))
			target.p.Position = mgl32.Vec3{10, 0, 0}
			c.Update(1)
			So(c.Position().X(), ShouldAlmostEqual, 10*(1-math.Exp(-10)), 1e-4)
			So(c.Position().X(), ShouldBeLessThan, float32(10))
		})

		Convey("is step-size independent", func() {
			coarse := NewRubberBandCamera(target, mgl32.Vec3{})
			fine := NewRubberBandCamera(target, mgl32.Vec3{})
			target.p.Position = mgl32.Vec3{0, 0, 4}
			coarse.Update(0.2)
			for range 20 {
				fine.Update(0.01)
			}
			So(coarse.Position().Z(), ShouldAlmostEqual, fine.Position().Z(), 1e-4)
		})

		Convey("places the offset in the target's frame", func() {
			c := NewRubberBandCamera(target, mgl32.Vec3{0, 1, 3})
			So(common.ApproxEqualVec3(c.Position(), mgl32.Vec3{0, 1, 3}, 1e-6), ShouldBeTrue)

			target.p.Front = mgl32.Vec3{1, 0, 0}
			for range 100 {
				c.Update(0.1)
			}
			So(common.ApproxEqualVec3(c.Position(), mgl32.Vec3{-3, 1, 0}, 1e-3), ShouldBeTrue)
		})

		Convey("looks slightly above the target", func() {
			c := NewRubberBandCamera(target, mgl32.Vec3{0, 1, 3})
			local := common.TransformPoint(c.ViewMatrix(), target.p.Position.Add(LookAhead))
			So(local.X(), ShouldAlmostEqual, 0, 1e-5)
			So(local.Y(), ShouldAlmostEqual, 0, 1e-5)
			So(local.Z(), ShouldBeLessThan, float32(0))
		})

		Convey("holds still with zero gain or zero dt", func() {
			c := NewRubberBandCamera(target, mgl32.Vec3{}, WithGain(0))
			target.p.Position = mgl32.Vec3{5, 5, 5}
			c.Update(1)
			c.Update(0)
			So(c.Position(), ShouldResemble, mgl32.Vec3{})
		})

		Convey("forwards base options", func() {
			c := NewRubberBandCamera(target, mgl32.Vec3{}, WithCameraOptions(WithFov(60), WithControllable(true)))
			So(c.Fov(), ShouldEqual, float32(60))
			So(c.Controllable(), ShouldBeFalse)
		})
	})
}

func TestGPUCameraUniform(t *testing.T) {
	Convey("GPUCameraUniform", t, func() {
		c := NewCamera(WithPosition(mgl32.Vec3{1, 2, 3}))
		u := NewGPUCameraUniform(c)
		buf := u.Marshal()

		So(u.Size(), ShouldEqual, 144)
		So(len(buf), ShouldEqual, 144)
		So(math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])), ShouldEqual, u.View[0])
		So(math.Float32frombits(binary.LittleEndian.Uint32(buf[64+20:])), ShouldEqual, u.Projection[5])
		So(math.Float32frombits(binary.LittleEndian.Uint32(buf[128+8:])), ShouldEqual, float32(3))
	})
}
