package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("falls back to defaults when the file is missing", func() {
			cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Default())
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("layers the file over the defaults", func() {
			cfg, err := Load(writeFile(t, "window:\n  width: 800\n  height: 400\npreset: shapes-in-space\nseed: 42\nrubber_band_gain: 4\n"))
			So(err, ShouldBeNil)
			So(cfg.Window.Width, ShouldEqual, 800)
			So(cfg.Window.Title, ShouldEqual, DefaultTitle)
			So(cfg.TickRate, ShouldEqual, DefaultTickRate)
			So(cfg.Preset, ShouldEqual, scene.PresetShapesInSpace)
			So(cfg.Aspect(), ShouldEqual, float32(2))
			So(cfg.PresetConfig(), ShouldResemble, scene.PresetConfig{Aspect: 2, Seed: 42, RubberBandGain: 4})
		})

		Convey("restores cleared defaults", func() {
			cfg, err := Load(writeFile(t, "window:\n  title: \"\"\ntick_rate: 0\npreset: \"\"\n"))
			So(err, ShouldBeNil)
			So(cfg.Window.Title, ShouldEqual, DefaultTitle)
			So(cfg.TickRate, ShouldEqual, DefaultTickRate)
			So(cfg.Preset, ShouldEqual, DefaultPreset)
		})

		Convey("rejects malformed YAML", func() {
			_, err := Load(writeFile(t, "window: [oops\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("rejects invalid values", func() {
			cases := []struct {
				body string
				want error
			}{
				{"window:\n  width: 0\n", ErrInvalidWindow},
				{"window:\n  height: -3\n", ErrInvalidWindow},
				{"tick_rate: -1\n", ErrInvalidRate},
				{"frame_limit: -30\n", ErrInvalidRate},
				{"rubber_band_gain: -2\n", ErrInvalidGain},
				{"workers: -1\n", ErrInvalidWorkers},
				{"preset: moon-base\n", ErrUnknownPreset},
			}
			for _, c := range cases {
				_, err := Load(writeFile(t, c.body))
				So(errors.Is(err, c.want), ShouldBeTrue)
			}
		})
	})
}

func TestSave(t *testing.T) {
	Convey("Save writes a file Load reads back", t, func() {
		path := filepath.Join(t.TempDir(), "nested", "sandbox.yaml")
		cfg := Default()
		cfg.Preset = scene.PresetShapesInSpace
		cfg.FrameLimit = 144
		cfg.Workers = 3

		So(Save(path, cfg), ShouldBeNil)
		got, err := Load(path)
		So(err, ShouldBeNil)
		So(got, ShouldResemble, cfg)
	})
}
