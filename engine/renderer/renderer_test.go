package renderer

import (
	"errors"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-sandbox/engine/camera"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeBackend struct {
	writes   map[BufferSlot]int
	clear    wgpu.Color
	begun    int
	ended    int
	shown    int
	beginErr error
	released bool
}

func (f *fakeBackend) ConfigureSurface(int, int) {}
func (f *fakeBackend) SetPresentMode(PresentMode) {}
func (f *fakeBackend) WriteBuffer(slot BufferSlot, data []byte) error {
	f.writes[slot] = len(data)
	return nil
}
func (f *fakeBackend) Buffer(BufferSlot) *wgpu.Buffer { return nil }
func (f *fakeBackend) BeginFrame(c wgpu.Color) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.clear = c
	f.begun++
	return nil
}
func (f *fakeBackend) EndFrame() { f.ended++ }
func (f *fakeBackend) Present() { f.shown++ }
func (f *fakeBackend) Release() { f.released = true }

func testFrame(withObject bool) scene.Frame {
	var objects []game_object.GameObject
	if withObject {
		objects = append(objects, game_object.NewCube(movement.NewStatic(pose.New(mgl32.Vec3{0, 0, -4})), 1))
	}
	s, err := scene.NewScene(objects, scene.Lights{}, []camera.Camera{camera.NewCamera()})
	if err != nil {
		panic(err)
	}
	return s.Frame()
}

func TestFrameUploads(t *testing.T) {
	Convey("frameUploads", t, func() {
		Convey("covers every buffer when something is visible", func() {
			ups := frameUploads(testFrame(true))
			So(ups, ShouldHaveLength, int(bufferSlotCount))
			sizes := map[BufferSlot]int{}
			for _, u := range ups {
				sizes[u.slot] = len(u.data)
			}
			So(sizes[BufferCamera], ShouldEqual, 144)
			So(sizes[BufferLights], ShouldEqual, 32)
			So(sizes[BufferFog], ShouldEqual, 16)
			So(sizes[BufferObjects], ShouldEqual, 80)
			So(sizes[BufferLightViewProjection], ShouldEqual, 64)
		})

		Convey("skips the object buffer for an empty view", func() {
			for _, u := range frameUploads(testFrame(false)) {
				So(u.slot, ShouldNotEqual, BufferObjects)
			}
		})
	})
}

func TestClearColor(t *testing.T) {
	Convey("ClearColor", t, func() {
		day, night := [3]float32{1, 1, 1}, [3]float32{0, 0, 0}

		f := scene.Frame{}
		So(ClearColor(f, day, night), ShouldResemble, wgpu.Color{A: 1})

		f.IsDay = true
		So(ClearColor(f, day, night), ShouldResemble, wgpu.Color{R: 1, G: 1, B: 1, A: 1})

		f.Fog = scene.Fog{Color: mgl32.Vec3{0, 0.5, 0}, Intensity: 0.5}
		c := ClearColor(f, day, night)
		So(c.R, ShouldAlmostEqual, 0.5, 1e-6)
		So(c.G, ShouldAlmostEqual, 0.75, 1e-6)
		So(c.A, ShouldEqual, float64(1))
	})
}

func TestBufferHelpers(t *testing.T) {
	Convey("buffer helpers", t, func() {
		So(bufferCapacity(1), ShouldEqual, uint64(256))
		So(bufferCapacity(256), ShouldEqual, uint64(256))
		So(bufferCapacity(257), ShouldEqual, uint64(512))
		So(bufferCapacity(5000), ShouldEqual, uint64(8192))

		So(BufferLights.String(), ShouldEqual, "Lights")
		So(BufferSlot(99).String(), ShouldEqual, "Unknown")
		So(BufferLights.usage()&wgpu.BufferUsageStorage, ShouldNotEqual, 0)
		So(BufferCamera.usage()&wgpu.BufferUsageUniform, ShouldNotEqual, 0)
	})
}

func TestDraw(t *testing.T) {
	Convey("Draw", t, func() {
		fb := &fakeBackend{writes: map[BufferSlot]int{}}
		r := &renderer{mu: &sync.Mutex{}, backend: fb, skyDay: DefaultDaySky, skyNight: DefaultNightSky}

		Convey("uploads, clears and presents", func() {
			f := testFrame(true)
			So(r.Draw(f), ShouldBeNil)
			So(fb.writes, ShouldHaveLength, int(bufferSlotCount))
			So(fb.clear, ShouldResemble, ClearColor(f, DefaultDaySky, DefaultNightSky))
			So(fb.begun, ShouldEqual, 1)
			So(fb.ended, ShouldEqual, 1)
			So(fb.shown, ShouldEqual, 1)
			So(r.Frames(), ShouldEqual, uint64(1))
		})

		Convey("stops when the surface is unavailable", func() {
			fb.beginErr = errors.New("surface lost")
			So(r.Draw(testFrame(true)), ShouldNotBeNil)
			So(fb.shown, ShouldEqual, 0)
			So(r.Frames(), ShouldEqual, uint64(0))
		})

		Convey("releases the backend", func() {
			r.Release()
			So(fb.released, ShouldBeTrue)
		})
	})

	Convey("NewRenderer requires a surface", t, func() {
		_, err := NewRenderer(nil, 10, 10)
		So(err, ShouldNotBeNil)
	})
}
