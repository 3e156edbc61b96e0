// Command sandbox opens a window and runs one of the preset scenes.
//
// Keys: W/S/A/D and Space/Shift move, arrows steer the ship's headlight, C cycles cameras,
// P toggles the projection, N toggles day and night, F toggles fog, Tab frees the cursor, Esc quits.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/Carmen-Shannon/oxy-sandbox/engine"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/config"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/renderer"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/window"
)

var (
	configPath = flag.String("config", config.DefaultPath, "path to the sandbox YAML config")
	presetName = flag.String("preset", "", "scene preset, overrides the config ("+strings.Join(scene.PresetNames(), ", ")+")")
	writeCfg   = flag.Bool("write-config", false, "write the effective config to -config and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Sandbox] %v", err)
	}
	if *presetName != "" {
		cfg.Preset = *presetName
		if err := cfg.Validate(); err != nil {
			log.Fatalf("[Sandbox] %v", err)
		}
	}
	if *writeCfg {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("[Sandbox] %v", err)
		}
		log.Printf("[Sandbox] wrote %s", *configPath)
		return
	}

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithCursorCaptured(cfg.Window.CaptureCursor),
	)
	if err != nil {
		log.Fatalf("[Sandbox] %v", err)
	}
	defer win.Close()

	presetCfg := cfg.PresetConfig()
	presetCfg.Aspect = win.Aspect()
	sc, err := scene.NewPreset(cfg.Preset, presetCfg)
	if err != nil {
		log.Fatalf("[Sandbox] %v", err)
	}

	r, err := renderer.NewRenderer(win.SurfaceDescriptor(), win.Width(), win.Height())
	if err != nil {
		log.Fatalf("[Sandbox] %v", err)
	}
	defer r.Release()

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
		engine.WithTickRate(cfg.TickRate),
		engine.WithRenderFrameLimit(cfg.FrameLimit),
		engine.WithWorkers(cfg.Workers),
		engine.WithProfiling(cfg.Profiling),
	)
	eng.SetResizeCallback(r.Resize)
	eng.SetRenderCallback(func(_ float32, f scene.Frame) {
		if err := r.Draw(f); err != nil {
			log.Printf("[Sandbox] draw: %v", err)
		}
	})

	log.Printf("[Sandbox] running %q with %d objects and %d cameras", sc.Name(), len(sc.Objects()), len(sc.Cameras()))
	eng.Run()
}
