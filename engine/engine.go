package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/profiler"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads.
type engine struct {
	mu              *sync.Mutex
	tickRateChannel chan time.Duration // dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window window.Window
	input  *input.State
	scene  scene.Scene

	runner  TaskRunner
	workers int

	tickProfiler     *profiler.Profiler
	renderProfiler   *profiler.Profiler
	profilingEnabled bool

	engineTickRate   time.Duration
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32, frame scene.Frame)
	resizeCallback func(width, height int)
}

// Engine drives a sandbox scene.
// A tick goroutine steps the scene at a fixed rate from the window's input, and a render
// goroutine copies a scene.Frame for the render callback as fast as the frame limit allows.
type Engine interface {
	// Window returns the window the engine reads input from, or nil when headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the input state fed by the window.
	// Headless drivers can push key and mouse events into it directly.
	//
	// Returns:
	//   - *input.State: the input accumulator
	Input() *input.State

	// EnableProfiler enables tick and frame rate output to the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()

	// SetTickRate sets the simulation tick rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called after each simulation tick.
	//
	// Parameters:
	//   - callback: function receiving the tick length in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function that draws each frame.
	//
	// Parameters:
	//   - callback: function receiving the time since the last frame and the frame to draw
	SetRenderCallback(callback func(deltaTime float32, frame scene.Frame))

	// SetResizeCallback registers a function called after the window is resized and the
	// camera aspect ratios are updated.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetRenderFrameLimit caps the render loop.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetScene replaces the running scene. The window aspect ratio is pushed to its cameras.
	//
	// Parameters:
	//   - s: the scene to run
	SetScene(s scene.Scene)

	// Scene returns the running scene, or nil.
	//
	// Returns:
	//   - scene.Scene: the running scene
	Scene() scene.Scene

	// Step advances the running scene by dt using the pending input. The tick goroutine calls
	// this; headless drivers and tests may call it directly instead of Run.
	//
	// Parameters:
	//   - dt: tick length in seconds
	Step(dt float32)

	// Run starts the tick and render goroutines and blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine.
// Window callbacks are wired to the input state: keys and cursor feed the next tick,
// scroll zooms the active camera, and resizes update every camera's aspect ratio.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		input:            input.NewState(),
		engineTickRate:   time.Second / 60,
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.workers > 0 {
		e.runner = NewPoolRunner(e.workers)
	}
	e.tickProfiler = profiler.NewProfiler(profiler.WithLabel("tick"))
	e.renderProfiler = profiler.NewProfiler(profiler.WithLabel("render"))

	if e.window != nil {
		e.window.SetKeyDownCallback(e.input.KeyDown)
		e.window.SetKeyUpCallback(e.input.KeyUp)
		e.window.SetMouseMoveCallback(e.input.MouseMove)
		e.window.SetScrollCallback(func(delta float32) {
			if s := e.Scene(); s != nil {
				c := s.Camera()
				c.SetFov(c.Fov() - delta)
			}
		})
		e.window.SetResizeCallback(func(width, height int) {
			if s := e.Scene(); s != nil {
				setAspect(s, width, height)
			}
			if e.resizeCallback != nil {
				e.resizeCallback(width, height)
			}
		})
		if e.scene != nil {
			setAspect(e.scene, e.window.Width(), e.window.Height())
		}
	}

	return e
}

func setAspect(s scene.Scene, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	for _, c := range s.Cameras() {
		c.SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() *input.State {
	return e.input
}

func (e *engine) SetScene(s scene.Scene) {
	e.mu.Lock()
	e.scene = s
	e.mu.Unlock()
	if s != nil && e.window != nil {
		setAspect(s, e.window.Width(), e.window.Height())
	}
}

func (e *engine) Scene() scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scene
}

func (e *engine) Step(dt float32) {
	s := e.Scene()
	snapshot := e.input.Snapshot()
	if s == nil {
		return
	}
	StepScene(s, dt, snapshot, e.runner)
}

func (e *engine) Run() {
	if e.Scene() == nil {
		log.Printf("[Engine] no scene set, nothing to run")
		return
	}
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel exactly once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle launches the tick and render goroutines.
func (e *engine) handle() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the fixed-rate tick loop, listening for rate changes on tickRateChannel.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickRate())
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.Step(dt)
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.profilingEnabled {
				e.tickProfiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

// handleRender copies a frame from the scene and hands it to the render callback, optionally frame-limited.
// A panic in the callback is logged and shuts the engine down.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if s := e.Scene(); s != nil && e.renderCallback != nil {
				e.renderCallback(dt, s.Frame())
			}

			if e.profilingEnabled {
				e.renderProfiler.Tick()
			}

			limit := e.renderFrameLimit
			if limit <= 0 && e.renderCallback == nil {
				// nothing to draw; don't spin a core
				limit = e.tickRate()
			}
			if limit > 0 {
				if remaining := limit - time.Since(lastRender); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

func (e *engine) tickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate takes effect immediately when the engine is running.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()

	if !running {
		return
	}
	// replace any pending update
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32, frame scene.Frame)) {
	e.renderCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
