// Package game_object binds a movement controller to a drawable shape, a material and
// the lights the object carries around.
package game_object

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/input"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrLightsAlreadyBound is returned when BindLights is called twice on the same object.
var ErrLightsAlreadyBound = errors.New("lights already bound")

// Shape names the primitive or model the renderer draws for an object.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeShip
	ShapeFloor
	ShapeSkybox
)

var shapeNames = [...]string{"cube", "sphere", "ship", "floor", "skybox"}

// String returns the shape's lower-case name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Material holds the Phong reflection scalars of an object.
type Material struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

type attachedPointLight struct {
	offset mgl32.Vec3 // in the object's local frame
	light  light.PointLight
	handle light.PointHandle
}

type attachedSpotLight struct {
	offset    mgl32.Vec3 // in the object's local frame
	direction mgl32.Vec3 // in the object's local frame
	light     light.SpotLight
	handle    light.SpotHandle
}

type gameObject struct {
	mu *sync.Mutex

	id         uint64
	enabled    atomic.Bool
	controller movement.Controller
	size       float32
	material   Material
	shape      Shape

	pointLights []attachedPointLight
	spotLights  []attachedSpotLight
	steerRate   float32 // rad/s applied to spot directions by TurnLeft/TurnRight
	arena       *light.Arena
}

// GameObject defines the interface for a movable, drawable scene entity.
// Lights attached to the object are expressed in its local frame and follow the
// controller's unscaled pose every Update.
type GameObject interface {
	// ID returns the object's identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is updated and drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object takes part in the scene.
	// Disabled objects are neither updated nor drawn.
	//
	// Parameters:
	//   - enabled: false to freeze and hide the object
	SetEnabled(enabled bool)

	// Shape returns the primitive or model the renderer draws.
	//
	// Returns:
	//   - Shape: the shape
	Shape() Shape

	// Size returns the uniform scale applied on top of the controller pose.
	//
	// Returns:
	//   - float32: the scale factor
	Size() float32

	// Material returns the object's surface material.
	//
	// Returns:
	//   - Material: the material
	Material() Material

	// Controller returns the movement controller driving the object.
	//
	// Returns:
	//   - movement.Controller: the controller
	Controller() movement.Controller

	// Pose returns a copy of the controller's current pose.
	//
	// Returns:
	//   - pose.Pose: the current pose
	Pose() pose.Pose

	// ModelMatrix returns the controller's pose matrix scaled by Size.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix handed to the renderer
	ModelMatrix() mgl32.Mat4

	// PointLights returns the world-space values of the object's point lights.
	//
	// Returns:
	//   - []light.PointLight: copies in attachment order
	PointLights() []light.PointLight

	// SpotLights returns the world-space values of the object's spot lights.
	//
	// Returns:
	//   - []light.SpotLight: copies in attachment order
	SpotLights() []light.SpotLight

	// BindLights stores the object's lights in arena. Afterwards every Update rewrites
	// those arena slots in place. May be called once.
	//
	// Parameters:
	//   - arena: the scene's light arena
	//
	// Returns:
	//   - error: ErrLightsAlreadyBound, or a wrapped light arena capacity error
	BindLights(arena *light.Arena) error

	// Update advances the controller, steers spot lights and syncs every attached light.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - in: the input snapshot for this tick; nil means no input
	Update(dt float32, in input.Snapshot)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Without WithController the object sits motionless at the origin.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:       &sync.Mutex{},
		size:     1,
		material: DefaultMaterial,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	if obj.controller == nil {
		obj.controller = movement.NewStatic(pose.Zero())
	}
	obj.syncLights()
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Shape() Shape {
	return g.shape
}

func (g *gameObject) Size() float32 {
	return g.size
}

func (g *gameObject) Material() Material {
	return g.material
}

func (g *gameObject) Controller() movement.Controller {
	return g.controller
}

func (g *gameObject) Pose() pose.Pose {
	return g.controller.Pose()
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	return g.controller.Matrix().Mul4(mgl32.Scale3D(g.size, g.size, g.size))
}

func (g *gameObject) PointLights() []light.PointLight {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]light.PointLight, len(g.pointLights))
	for i, a := range g.pointLights {
		out[i] = a.light
	}
	return out
}

func (g *gameObject) SpotLights() []light.SpotLight {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]light.SpotLight, len(g.spotLights))
	for i, a := range g.spotLights {
		out[i] = a.light
	}
	return out
}

func (g *gameObject) BindLights(arena *light.Arena) error {
	if arena == nil {
		panic("game_object: BindLights requires an arena")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.arena != nil {
		return fmt.Errorf("object %d: %w", g.id, ErrLightsAlreadyBound)
	}

	for i := range g.pointLights {
		h, err := arena.AddPoint(g.pointLights[i].light)
		if err != nil {
			return fmt.Errorf("object %d: %w", g.id, err)
		}
		g.pointLights[i].handle = h
	}
	for i := range g.spotLights {
		h, err := arena.AddSpot(g.spotLights[i].light)
		if err != nil {
			return fmt.Errorf("object %d: %w", g.id, err)
		}
		g.spotLights[i].handle = h
	}
	g.arena = arena
	return nil
}

func (g *gameObject) Update(dt float32, in input.Snapshot) {
	g.controller.Update(dt, in)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.steerRate != 0 {
		if spin := input.Axis(in, input.ActionTurnLeft, input.ActionTurnRight); spin != 0 {
			rot := mgl32.Rotate3DY(spin * g.steerRate * dt)
			for i := range g.spotLights {
				g.spotLights[i].direction = rot.Mul3x1(g.spotLights[i].direction)
			}
		}
	}
	g.syncLights()
}

// syncLights moves every attached light into world space using the unscaled pose matrix
// and writes it back to the arena when bound.
// Caller must hold the mutex, except during construction.
func (g *gameObject) syncLights() {
	if len(g.pointLights) == 0 && len(g.spotLights) == 0 {
		return
	}
	m := g.controller.Matrix()
	for i := range g.pointLights {
		a := &g.pointLights[i]
		a.light.Position = common.TransformPoint(m, a.offset)
		if g.arena != nil {
			g.arena.SetPoint(a.handle, a.light)
		}
	}
	for i := range g.spotLights {
		a := &g.spotLights[i]
		a.light.Position = common.TransformPoint(m, a.offset)
		if dir, ok := common.SafeNormalize(common.TransformDir(m, a.direction)); ok {
			a.light.Direction = dir
		}
		if g.arena != nil {
			g.arena.SetSpot(a.handle, a.light)
		}
	}
}
