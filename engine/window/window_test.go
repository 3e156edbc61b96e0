package window

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWindowWithoutPlatform(t *testing.T) {
	Convey("An unopened window", t, func() {
		w := &engineWindow{}
		for _, opt := range []WindowBuilderOption{
			WithTitle("sandbox"), WithWidth(800), WithHeight(400),
			WithSizeLimits(100, 50, 1000, 0),
			WithCursorCaptured(true),
		} {
			opt(w)
		}

		So(w.title, ShouldEqual, "sandbox")
		So(w.Width(), ShouldEqual, 800)
		So(w.Height(), ShouldEqual, 400)
		So(w.Aspect(), ShouldEqual, float32(2))
		So(w.cursorCaptured, ShouldBeTrue)
		So(w.minWidth, ShouldEqual, 100)
		So(w.maxWidth, ShouldEqual, 1000)
		So(w.maxHeight, ShouldEqual, 0)

		So(w.IsRunning(), ShouldBeFalse)
		So(w.SurfaceDescriptor(), ShouldBeNil)
		So(w.Close(), ShouldNotBeNil)
		So(func() { w.SetCursorCaptured(false) }, ShouldNotPanic)
		So(func() { w.ProcessMessages() }, ShouldNotPanic)

		w.height = 0
		So(w.Aspect(), ShouldEqual, float32(1))
	})

	Convey("NewWindow rejects empty sizes before touching the platform", t, func() {
		_, err := NewWindow(WithWidth(0))
		So(err, ShouldNotBeNil)
	})
}
