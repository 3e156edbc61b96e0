package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
)

// TaskRunner hands a task to a worker. A nil TaskRunner runs object updates on the calling goroutine.
type TaskRunner func(task worker.Task)

// NewPoolRunner starts a dynamic worker pool and returns a TaskRunner that submits to it.
// Idle workers exit after one second and are respawned on demand.
//
// Parameters:
//   - workers: maximum number of concurrent workers (at least 1)
//
// Returns:
//   - TaskRunner: submits tasks to the pool
func NewPoolRunner(workers int) TaskRunner {
	pool := worker.NewDynamicWorkerPool(max(workers, 1), 256, 1*time.Second)
	return func(task worker.Task) {
		pool.SubmitTask(task)
	}
}

// StepScene advances s by one simulation tick:
//  1. free-fly input on the active camera
//  2. pressed actions (change camera, toggle projection, toggle day, toggle fog)
//  3. every enabled object, in parallel when run is non-nil
//  4. every camera
//  5. the scene's fog blend
//
// Objects finish before any camera runs, so follow and chase cameras always see this tick's pose.
//
// Parameters:
//   - s: the scene to advance
//   - dt: tick length in seconds
//   - in: the input for this tick (nil means no input)
//   - run: where object updates execute
func StepScene(s scene.Scene, dt float32, in input.Snapshot, run TaskRunner) {
	if s == nil {
		panic("engine: StepScene requires a scene")
	}

	s.Camera().ApplyInput(dt, in)

	if input.Pressed(in, input.ActionChangeCamera) {
		s.ChangeCamera()
	}
	if input.Pressed(in, input.ActionToggleProjection) {
		s.Camera().ToggleProjection()
	}
	if input.Pressed(in, input.ActionToggleDay) {
		s.SwitchDay()
	}
	if input.Pressed(in, input.ActionToggleFog) {
		s.SwitchFog()
	}

	updateObjects(s, dt, in, run)

	for _, c := range s.Cameras() {
		c.Update(dt)
	}
	s.Update(dt)
}

// updateObjects runs every enabled object's Update and returns once all have finished.
// Each object writes only its own pose and lights, so they are independent.
func updateObjects(s scene.Scene, dt float32, in input.Snapshot, run TaskRunner) {
	objects := s.Objects()
	if run == nil {
		for _, obj := range objects {
			if obj.Enabled() {
				obj.Update(dt, in)
			}
		}
		return
	}

	// per-tick barrier; the pool's own Wait blocks until workers idle out
	var wg sync.WaitGroup
	for i, obj := range objects {
		if !obj.Enabled() {
			continue
		}
		wg.Add(1)
		o := obj
		run(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				o.Update(dt, in)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
