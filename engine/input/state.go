package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
)

// DefaultBindings maps GLFW key codes to sandbox actions.
func DefaultBindings() map[uint32]Action {
	return map[uint32]Action{
		common.KeyW:         ActionMoveForward,
		common.KeyS:         ActionMoveBack,
		common.KeyA:         ActionMoveLeft,
		common.KeyD:         ActionMoveRight,
		common.KeySpace:     ActionMoveUp,
		common.KeyLeftShift: ActionMoveDown,
		common.KeyLeft:      ActionTurnLeft,
		common.KeyRight:     ActionTurnRight,
		common.KeyC:         ActionChangeCamera,
		common.KeyP:         ActionToggleProjection,
		common.KeyN:         ActionToggleDay,
		common.KeyF:         ActionToggleFog,
	}
}

// State accumulates window events between ticks and hands out Frames.
// Window callbacks and the tick goroutine may run on different threads.
type State struct {
	mu       *sync.Mutex
	bindings map[uint32]Action

	held    [actionCount]bool
	pressed [actionCount]bool

	hasCursor            bool
	lastX, lastY         int32
	pendingDX, pendingDY float32
}

// StateBuilderOption configures a State.
type StateBuilderOption func(*State)

// WithBinding binds a key code to an action, replacing any previous binding of that key.
// An unknown action is ignored.
//
// Parameters:
//   - keyCode: the GLFW key code
//   - a: the action to trigger
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithBinding(keyCode uint32, a Action) StateBuilderOption {
	return func(s *State) {
		if a.valid() {
			s.bindings[keyCode] = a
		}
	}
}

// WithBindings replaces the whole key map. Entries with unknown actions are dropped.
//
// Parameters:
//   - bindings: key code to action map
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithBindings(bindings map[uint32]Action) StateBuilderOption {
	return func(s *State) {
		s.bindings = make(map[uint32]Action, len(bindings))
		for k, v := range bindings {
			if v.valid() {
				s.bindings[k] = v
			}
		}
	}
}

// NewState creates a State with DefaultBindings and any options applied.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - *State: the new input state
func NewState(options ...StateBuilderOption) *State {
	s := &State{
		mu:       &sync.Mutex{},
		bindings: DefaultBindings(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// KeyDown records a key press. Auto-repeat presses of a held key do not re-trigger Pressed.
func (s *State) KeyDown(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.bindings[keyCode]
	if !ok {
		return
	}
	if !s.held[a] {
		s.pressed[a] = true
	}
	s.held[a] = true
}

// KeyUp records a key release.
func (s *State) KeyUp(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.bindings[keyCode]; ok {
		s.held[a] = false
	}
}

// MouseMove records an absolute cursor position. The first sample only anchors the cursor.
func (s *State) MouseMove(x, y int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCursor {
		s.hasCursor = true
		s.lastX, s.lastY = x, y
		return
	}
	s.pendingDX += float32(x - s.lastX)
	s.pendingDY += float32(y - s.lastY)
	s.lastX, s.lastY = x, y
}

// Snapshot freezes the current state into a Frame and clears the per-frame edges and mouse delta.
//
// Returns:
//   - Frame: the input for one tick
func (s *State) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := Frame{
		held:    s.held,
		pressed: s.pressed,
		dx:      s.pendingDX,
		dy:      s.pendingDY,
	}
	s.pressed = [actionCount]bool{}
	s.pendingDX, s.pendingDY = 0, 0
	return f
}
