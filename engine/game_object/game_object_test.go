package game_object

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGameObjectDefaults(t *testing.T) {
	Convey("A bare GameObject", t, func() {
		obj := NewGameObject(WithID(4))

		So(obj.ID(), ShouldEqual, uint64(4))
		So(obj.Enabled(), ShouldBeTrue)
		So(obj.Size(), ShouldEqual, float32(1))
		So(obj.Material(), ShouldResemble, DefaultMaterial)
		So(obj.Pose(), ShouldResemble, pose.Zero())
		So(obj.ModelMatrix(), ShouldResemble, mgl32.Ident4())
		So(obj.PointLights(), ShouldBeEmpty)
		So(obj.Shape().String(), ShouldEqual, "cube")
		So(func() { obj.Update(1, nil) }, ShouldNotPanic)
	})
}

func TestModelMatrix(t *testing.T) {
	Convey("ModelMatrix scales the pose matrix", t, func() {
		ctrl := movement.NewStatic(pose.New(mgl32.Vec3{1, 2, 3}))
		obj := NewGameObject(WithController(ctrl), WithSize(2))
		p := common.TransformPoint(obj.ModelMatrix(), mgl32.Vec3{0, 0, -1})
		So(common.ApproxEqualVec3(p, mgl32.Vec3{1, 2, 1}, 1e-6), ShouldBeTrue)
	})
}

func TestAttachedLights(t *testing.T) {
	Convey("Attached lights", t, func() {
		ctrl := movement.NewOrbit(2, mgl32.Vec3{}, math32.Pi/2)
		obj := NewGameObject(
			WithController(ctrl),
			WithSize(30),
			WithPointLight(mgl32.Vec3{0, 1, 0}, light.NewPointLight()),
			WithSpotLight(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, light.NewSpotLight()),
		)

		Convey("start at the pose", func() {
			So(common.ApproxEqualVec3(obj.PointLights()[0].Position, mgl32.Vec3{2, 1, 0}, 1e-6), ShouldBeTrue)
			So(common.ApproxEqualVec3(obj.SpotLights()[0].Direction, mgl32.Vec3{0, 0, 1}, 1e-6), ShouldBeTrue)
		})

		Convey("follow the unscaled pose", func() {
			obj.Update(1, nil)
			So(common.ApproxEqualVec3(obj.PointLights()[0].Position, mgl32.Vec3{0, 1, 2}, 1e-5), ShouldBeTrue)
			So(common.ApproxEqualVec3(obj.SpotLights()[0].Position, mgl32.Vec3{0, 0, 2}, 1e-5), ShouldBeTrue)
			So(common.ApproxEqualVec3(obj.SpotLights()[0].Direction, mgl32.Vec3{-1, 0, 0}, 1e-5), ShouldBeTrue)
		})

		Convey("are rewritten in place once bound", func() {
			arena := light.NewArena()
			_, _ = arena.AddPoint(light.NewPointLight())
			So(obj.BindLights(arena), ShouldBeNil)
			So(arena.PointCount(), ShouldEqual, 2)
			So(arena.SpotCount(), ShouldEqual, 1)

			obj.Update(1, nil)
			points, spots := arena.Snapshot()
			So(points[0].Position, ShouldResemble, mgl32.Vec3{})
			So(points[1].Position, ShouldResemble, obj.PointLights()[0].Position)
			So(spots[0], ShouldResemble, obj.SpotLights()[0])

			Convey("and only once", func() {
				err := obj.BindLights(arena)
				So(errors.Is(err, ErrLightsAlreadyBound), ShouldBeTrue)
				So(arena.PointCount(), ShouldEqual, 2)
			})
		})

		Convey("report a full arena", func() {
			arena := light.NewArena()
			for range light.MaxLights {
				_, _ = arena.AddSpot(light.NewSpotLight())
			}
			err := obj.BindLights(arena)
			So(errors.Is(err, light.ErrTooManySpotLights), ShouldBeTrue)
		})
	})
}

func TestSpaceShipHeadlight(t *testing.T) {
	left := input.NewFrame([]input.Action{input.ActionTurnLeft}, nil, 0, 0)
	right := input.NewFrame([]input.Action{input.ActionTurnRight}, nil, 0, 0)

	Convey("The ship headlight", t, func() {
		ship := NewSpaceShip(movement.NewStatic(pose.Zero()))

		So(ship.Shape(), ShouldEqual, ShapeShip)
		So(ship.Size(), ShouldEqual, ShipSize)
		So(ship.SpotLights()[0].Concentration, ShouldEqual, ShipBeamFocus)
		So(common.ApproxEqualVec3(ship.SpotLights()[0].Direction, mgl32.Vec3{0, 0, -1}, 1e-6), ShouldBeTrue)

		Convey("swings left and right at one radian per second", func() {
			ship.Update(math32.Pi/2, left)
			So(common.ApproxEqualVec3(ship.SpotLights()[0].Direction, mgl32.Vec3{-1, 0, 0}, 1e-5), ShouldBeTrue)

			ship.Update(math32.Pi, right)
			So(common.ApproxEqualVec3(ship.SpotLights()[0].Direction, mgl32.Vec3{1, 0, 0}, 1e-5), ShouldBeTrue)
		})

		Convey("stays put without arrow keys", func() {
			ship.Update(1, input.NewFrame([]input.Action{input.ActionMoveLeft}, nil, 0, 0))
			So(common.ApproxEqualVec3(ship.SpotLights()[0].Direction, mgl32.Vec3{0, 0, -1}, 1e-6), ShouldBeTrue)
		})
	})
}

func TestLamps(t *testing.T) {
	Convey("Lamps", t, func() {
		Convey("point lamp carries one attenuated light", func() {
			lamp := NewPointLamp(movement.NewStatic(pose.New(mgl32.Vec3{-1, -1, 0})), mgl32.Vec3{1, 1, 1})
			So(lamp.Material(), ShouldResemble, LampMaterial)
			So(lamp.Size(), ShouldEqual, LampSize)
			So(lamp.SpotLights(), ShouldBeEmpty)
			So(lamp.PointLights(), ShouldHaveLength, 1)
			So(lamp.PointLights()[0].Attenuation, ShouldResemble, LampAttenuation)
			So(lamp.PointLights()[0].Position, ShouldResemble, mgl32.Vec3{-1, -1, 0})
		})

		Convey("spot lamp shines along its front", func() {
			spin := movement.NewSpin(pose.Zero(), common.WorldUp, 1)
			lamp := NewSpotLamp(spin, mgl32.Vec3{1, 0, 0}, WithID(9))
			So(lamp.ID(), ShouldEqual, uint64(9))
			lamp.Update(1, nil)
			So(common.ApproxEqualVec3(lamp.SpotLights()[0].Direction, lamp.Pose().Front, 1e-5), ShouldBeTrue)
		})
	})
}

func TestGPUObjectUniform(t *testing.T) {
	Convey("GPUObjectUniform packs the model matrix and material", t, func() {
		obj := NewSphere(movement.NewStatic(pose.Zero()), 2)
		u := NewGPUObjectUniform(obj)
		So(u.Size(), ShouldEqual, 80)
		So(len(u.Marshal()), ShouldEqual, 80)
		So(u.Model[0], ShouldEqual, float32(2))
		So(u.Material, ShouldResemble, [4]float32{0.1, 0.4, 0.6, 5})
	})
}
