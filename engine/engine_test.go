package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/camera"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

var chaseOffset = mgl32.Vec3{0, 1, 3}

func chaseScene(orbit movement.Controller) scene.Scene {
	objects := []game_object.GameObject{
		game_object.NewCube(orbit, 1, game_object.WithID(1)),
		game_object.NewPointLamp(movement.NewOrbit(2, mgl32.Vec3{}, 2), mgl32.Vec3{1, 1, 1}, game_object.WithID(2)),
	}
	cameras := []camera.Camera{
		camera.NewCamera(camera.WithControllable(true)),
		camera.NewRubberBandCamera(orbit, chaseOffset, camera.WithGain(1e6)),
		camera.NewFollowCamera(orbit),
	}
	s, err := scene.NewScene(objects, scene.Lights{}, cameras)
	if err != nil {
		panic(err)
	}
	return s
}

func TestStepScene(t *testing.T) {
	Convey("StepScene", t, func() {
		orbit := movement.NewOrbit(3, mgl32.Vec3{}, 1)
		s := chaseScene(orbit)

		for _, tc := range []struct {
			name string
			run  TaskRunner
		}{
			{"inline", nil},
			{"on a worker pool", NewPoolRunner(4)},
		} {
			Convey("cameras observe the updated target when run "+tc.name, func() {
				for range 5 {
					StepScene(s, 0.25, nil, tc.run)
					want := common.TransformPoint(orbit.Matrix(), chaseOffset)
					So(common.ApproxEqualVec3(s.Cameras()[1].Position(), want, 1e-4), ShouldBeTrue)
				}
				So(orbit.Pose().Position, ShouldNotResemble, mgl32.Vec3{3, 0, 0})
			})
		}

		Convey("moves object-mounted lights with their owners", func() {
			StepScene(s, 1, nil, NewPoolRunner(2))
			So(s.PointLights()[0].Position, ShouldResemble, s.Objects()[1].Pose().Position)
		})

		Convey("leaves disabled objects alone", func() {
			s.Objects()[0].SetEnabled(false)
			before := orbit.Pose()
			StepScene(s, 1, nil, nil)
			So(orbit.Pose(), ShouldResemble, before)
		})

		Convey("flies the free camera", func() {
			StepScene(s, 1, input.NewFrame([]input.Action{input.ActionMoveForward}, nil, 0, 0), nil)
			So(common.ApproxEqualVec3(s.Camera().Position(), mgl32.Vec3{0, 0, -camera.DefaultMoveSpeed}, 1e-5), ShouldBeTrue)
		})

		Convey("handles pressed actions", func() {
			in := input.NewFrame(nil, []input.Action{
				input.ActionChangeCamera, input.ActionToggleProjection, input.ActionToggleDay, input.ActionToggleFog,
			}, 0, 0)
			StepScene(s, 0.1, in, nil)
			So(s.ActiveCameraIndex(), ShouldEqual, 1)
			So(s.Camera().Perspective(), ShouldBeFalse)
			So(s.Cameras()[0].Perspective(), ShouldBeTrue)
			So(s.IsDay(), ShouldBeTrue)
			So(s.FogEnabled(), ShouldBeTrue)
			So(s.Fog().Intensity, ShouldBeGreaterThan, float32(0))

			Convey("only on the frame they are pressed", func() {
				held := input.NewFrame([]input.Action{input.ActionChangeCamera, input.ActionToggleDay}, nil, 0, 0)
				StepScene(s, 0.1, held, nil)
				So(s.ActiveCameraIndex(), ShouldEqual, 1)
				So(s.IsDay(), ShouldBeTrue)
			})
		})

		Convey("panics without a scene", func() {
			So(func() { StepScene(nil, 1, nil, nil) }, ShouldPanic)
		})
	})
}

func TestEngine(t *testing.T) {
	Convey("Engine", t, func() {
		orbit := movement.NewOrbit(3, mgl32.Vec3{}, 1)
		s := chaseScene(orbit)

		Convey("Step consumes pending input", func() {
			e := NewEngine(WithScene(s))
			e.Input().KeyDown(common.KeyC)
			e.Step(0.1)
			So(s.ActiveCameraIndex(), ShouldEqual, 1)
			e.Step(0.1)
			So(s.ActiveCameraIndex(), ShouldEqual, 1)
		})

		Convey("Step without a scene is a no-op", func() {
			e := NewEngine()
			So(func() { e.Step(0.1) }, ShouldNotPanic)
			So(e.Scene(), ShouldBeNil)
			e.SetScene(s)
			So(e.Scene(), ShouldEqual, s)
		})

		Convey("runs headless until Quit", func() {
			var ticks, frames atomic.Int32
			e := NewEngine(WithScene(s), WithTickRate(200), WithRenderFrameLimit(200), WithWorkers(2))
			e.SetRenderCallback(func(_ float32, f scene.Frame) {
				if len(f.Objects) == 2 {
					frames.Add(1)
				}
			})
			e.SetTickCallback(func(_ float32) {
				if ticks.Add(1) == 5 {
					e.Quit()
				}
			})

			done := make(chan struct{})
			go func() {
				e.Run()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				e.Quit()
				<-done
			}
			So(ticks.Load(), ShouldBeGreaterThanOrEqualTo, 5)
			So(frames.Load(), ShouldBeGreaterThan, 0)
			So(orbit.Pose().Position, ShouldNotResemble, mgl32.Vec3{3, 0, 0})
			So(func() { e.Quit() }, ShouldNotPanic)
		})

		Convey("accepts tick rate changes while the idle render loop reads the rate", func() {
			var ticks atomic.Int32
			e := NewEngine(WithScene(s), WithTickRate(200))
			e.SetTickCallback(func(_ float32) {
				switch ticks.Add(1) {
				case 2:
					e.SetTickRate(400)
				case 6:
					e.Quit()
				}
			})

			done := make(chan struct{})
			go func() {
				e.Run()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				e.Quit()
				<-done
			}
			So(ticks.Load(), ShouldBeGreaterThanOrEqualTo, 6)
			So(e.(*engine).tickRate(), ShouldEqual, time.Second/400)
		})
	})
}
