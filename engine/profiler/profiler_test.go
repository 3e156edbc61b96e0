package profiler

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProfiler(t *testing.T) {
	Convey("Profiler", t, func() {
		Convey("uses defaults", func() {
			p := NewProfiler(WithInterval(-1))
			So(p.Label(), ShouldEqual, "render")
			So(p.updateInterval, ShouldEqual, DefaultInterval)
			So(p.Rate(), ShouldEqual, 0)
		})

		Convey("reports only after the interval", func() {
			p := NewProfiler(WithLabel("tick"), WithInterval(20*time.Millisecond), WithLogging(false))
			So(p.Tick(), ShouldBeFalse)
			So(p.Tick(), ShouldBeFalse)
			time.Sleep(30 * time.Millisecond)
			So(p.Tick(), ShouldBeTrue)
			So(p.Rate(), ShouldBeGreaterThan, 0)
			So(p.Rate(), ShouldBeLessThanOrEqualTo, 3/0.03)
			So(p.frameCount, ShouldEqual, 0)
		})

		Convey("logs without failing", func() {
			p := NewProfiler(WithInterval(time.Nanosecond))
			time.Sleep(time.Millisecond)
			So(p.Tick(), ShouldBeTrue)
		})
	})
}
