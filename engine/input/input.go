// Package input turns raw key and mouse events into per-frame snapshots over logical actions.
// The simulation only ever sees a Snapshot; it never polls a device.
package input

import "fmt"

// Action is a logical input the sandbox reacts to.
type Action int

const (
	// ActionMoveForward thrusts the ship forward or flies the free camera along its front.
	ActionMoveForward Action = iota
	// ActionMoveBack thrusts backwards or flies the free camera away from its front.
	ActionMoveBack
	// ActionMoveLeft yaws the ship left or strafes the free camera left.
	ActionMoveLeft
	// ActionMoveRight yaws the ship right or strafes the free camera right.
	ActionMoveRight
	// ActionMoveUp raises the free camera along its up vector.
	ActionMoveUp
	// ActionMoveDown lowers the free camera along its up vector.
	ActionMoveDown
	// ActionTurnLeft steers object-mounted spot lights left.
	ActionTurnLeft
	// ActionTurnRight steers object-mounted spot lights right.
	ActionTurnRight
	// ActionChangeCamera advances to the next scene camera.
	ActionChangeCamera
	// ActionToggleProjection flips the active camera between perspective and orthographic.
	ActionToggleProjection
	// ActionToggleDay flips the day/night lighting.
	ActionToggleDay
	// ActionToggleFog flips the fog target.
	ActionToggleFog

	actionCount
)

var actionNames = [actionCount]string{
	"move-forward", "move-back", "move-left", "move-right", "move-up", "move-down",
	"turn-left", "turn-right", "change-camera", "toggle-projection", "toggle-day", "toggle-fog",
}

func (a Action) valid() bool {
	return a >= 0 && a < actionCount
}

// String returns the action's kebab-case name.
func (a Action) String() string {
	if !a.valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Snapshot is the read-only input view handed to one simulation tick.
type Snapshot interface {
	// Held reports whether the action's key is currently down.
	//
	// Parameters:
	//   - a: the action to query
	//
	// Returns:
	//   - bool: true while the bound key is held
	Held(a Action) bool

	// Pressed reports whether the action's key went down since the previous snapshot.
	//
	// Parameters:
	//   - a: the action to query
	//
	// Returns:
	//   - bool: true only on the frame the key was pressed
	Pressed(a Action) bool

	// MouseDelta returns the cursor movement since the previous snapshot in pixels.
	//
	// Returns:
	//   - dx, dy: horizontal and vertical deltas
	MouseDelta() (dx, dy float32)
}

// Frame is an immutable Snapshot value. The zero Frame means "no input".
type Frame struct {
	held    [actionCount]bool
	pressed [actionCount]bool
	dx, dy  float32
}

var _ Snapshot = Frame{}

// NewFrame builds a Frame directly, mostly for tests and scripted drivers.
//
// Parameters:
//   - held: actions whose keys are down
//   - pressed: actions whose keys went down this frame (implicitly held as well)
//   - dx, dy: mouse movement
//
// Returns:
//   - Frame: the snapshot
func NewFrame(held, pressed []Action, dx, dy float32) Frame {
	var f Frame
	for _, a := range held {
		if a.valid() {
			f.held[a] = true
		}
	}
	for _, a := range pressed {
		if a.valid() {
			f.held[a] = true
			f.pressed[a] = true
		}
	}
	f.dx, f.dy = dx, dy
	return f
}

func (f Frame) Held(a Action) bool {
	if !a.valid() {
		return false
	}
	return f.held[a]
}

func (f Frame) Pressed(a Action) bool {
	if !a.valid() {
		return false
	}
	return f.pressed[a]
}

func (f Frame) MouseDelta() (dx, dy float32) {
	return f.dx, f.dy
}

// Held is a nil-safe Held query.
func Held(s Snapshot, a Action) bool {
	return s != nil && s.Held(a)
}

// Pressed is a nil-safe Pressed query.
func Pressed(s Snapshot, a Action) bool {
	return s != nil && s.Pressed(a)
}

// Axis returns +1 when pos is held, -1 when neg is held, and 0 for both or neither.
func Axis(s Snapshot, pos, neg Action) float32 {
	var v float32
	if Held(s, pos) {
		v++
	}
	if Held(s, neg) {
		v--
	}
	return v
}
