// Package scene owns the objects, cameras and lights of one sandbox session along with the
// day/night and fog state, and packages them into a Frame for the renderer.
package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/camera"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// FogCeiling is the highest fog intensity the scene ever reaches.
const FogCeiling float32 = 0.95

// Day and night palettes.
var (
	DayDirColor   = mgl32.Vec3{0.9, 0.9, 0.8}
	NightDirColor = mgl32.Vec3{0.05, 0.05, 0.1}
	DayFogColor   = mgl32.Vec3{0.75, 0.8, 0.85}
	NightFogColor = mgl32.Vec3{0.02, 0.02, 0.05}
)

// DefaultDirLight is the dim directional light a scene starts from.
var DefaultDirLight = light.DirLight{
	Direction: mgl32.Vec3{-0.2, -1, -0.3},
	Color:     mgl32.Vec3{0.1, 0.1, 0.1},
}

var (
	// ErrNoCameras is returned when a scene is built without cameras.
	ErrNoCameras = errors.New("scene needs at least one camera")
	// ErrTooManyPointLights is returned when the scene and its objects carry more than light.MaxLights point lights.
	ErrTooManyPointLights = light.ErrTooManyPointLights
	// ErrTooManySpotLights is returned when the scene and its objects carry more than light.MaxLights spot lights.
	ErrTooManySpotLights = light.ErrTooManySpotLights
)

// Fog is the distance fog blended over the frame.
type Fog struct {
	Color     mgl32.Vec3
	Intensity float32
}

// Lights are the scene-level lights that belong to no object.
type Lights struct {
	Points []light.PointLight
	Spots  []light.SpotLight
}

// Scene defines the interface for a sandbox session.
// Objects and cameras are updated by the frame driver. Update only advances the fog blend.
// All methods are safe for concurrent use.
type Scene interface {
	// Name returns the scene name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Objects returns the objects in construction order.
	//
	// Returns:
	//   - []game_object.GameObject: a copy of the object list
	Objects() []game_object.GameObject

	// Cameras returns the cameras in construction order.
	//
	// Returns:
	//   - []camera.Camera: a copy of the camera list
	Cameras() []camera.Camera

	// Camera returns the active camera.
	//
	// Returns:
	//   - camera.Camera: the active camera
	Camera() camera.Camera

	// ActiveCameraIndex returns the index of the active camera.
	//
	// Returns:
	//   - int: index in [0, len(Cameras()))
	ActiveCameraIndex() int

	// ChangeCamera activates the next camera, wrapping after the last one.
	ChangeCamera()

	// DirLight returns the directional light.
	//
	// Returns:
	//   - light.DirLight: the directional light
	DirLight() light.DirLight

	// PointLights returns every point light, scene-level lights first, then per object in order.
	//
	// Returns:
	//   - []light.PointLight: copies of the current values
	PointLights() []light.PointLight

	// SpotLights returns every spot light, scene-level lights first, then per object in order.
	//
	// Returns:
	//   - []light.SpotLight: copies of the current values
	SpotLights() []light.SpotLight

	// Fog returns the current fog color and intensity.
	//
	// Returns:
	//   - Fog: the fog state
	Fog() Fog

	// FogEnabled reports whether fog is rising toward FogCeiling.
	//
	// Returns:
	//   - bool: true when fog is enabled
	FogEnabled() bool

	// IsDay reports whether day lighting is active.
	//
	// Returns:
	//   - bool: true during the day
	IsDay() bool

	// SwitchDay flips between day and night lighting. Fog intensity is preserved.
	SwitchDay()

	// SwitchFog flips whether fog rises or fades. Intensity drifts on later updates.
	SwitchFog()

	// Update advances the fog blend by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// Frame copies everything the renderer needs for one frame.
	//
	// Returns:
	//   - Frame: the render packet
	Frame() Frame
}

type scene struct {
	mu *sync.RWMutex

	name    string
	objects []game_object.GameObject
	cameras []camera.Camera
	active  int

	dirLight   light.DirLight
	arena      *light.Arena
	fog        Fog
	day        bool
	fogEnabled bool
}

var _ Scene = &scene{}

// NewScene builds a scene. Scene-level lights go into the light arena first, then every
// object binds its own lights in order. The light set is fixed from then on.
// The scene starts at night.
//
// Parameters:
//   - objects: the objects in draw and update order
//   - lights: scene-level lights owned by no object
//   - cameras: the cameras, the first one starts active
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: ErrNoCameras, ErrTooManyPointLights or ErrTooManySpotLights (wrapped)
func NewScene(objects []game_object.GameObject, lights Lights, cameras []camera.Camera, options ...SceneBuilderOption) (Scene, error) {
	if len(cameras) == 0 {
		return nil, ErrNoCameras
	}
	for i, c := range cameras {
		if c == nil {
			panic(fmt.Sprintf("scene: NewScene camera %d is nil", i))
		}
	}
	for i, obj := range objects {
		if obj == nil {
			panic(fmt.Sprintf("scene: NewScene object %d is nil", i))
		}
	}

	s := &scene{
		mu:       &sync.RWMutex{},
		objects:  append([]game_object.GameObject(nil), objects...),
		cameras:  append([]camera.Camera(nil), cameras...),
		dirLight: DefaultDirLight,
		arena:    light.NewArena(),
		fog:      Fog{Color: DayFogColor},
		day:      true,
	}
	for _, option := range options {
		option(s)
	}

	for _, l := range lights.Points {
		if _, err := s.arena.AddPoint(l); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.name, err)
		}
	}
	for _, l := range lights.Spots {
		if _, err := s.arena.AddSpot(l); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.name, err)
		}
	}
	for _, obj := range s.objects {
		if err := obj.BindLights(s.arena); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.name, err)
		}
	}

	s.switchDay()
	return s, nil
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]game_object.GameObject(nil), s.objects...)
}

func (s *scene) Cameras() []camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]camera.Camera(nil), s.cameras...)
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cameras[s.active]
}

func (s *scene) ActiveCameraIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) ChangeCamera() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = (s.active + 1) % len(s.cameras)
}

func (s *scene) DirLight() light.DirLight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirLight
}

func (s *scene) PointLights() []light.PointLight {
	points, _ := s.arena.Snapshot()
	return points
}

func (s *scene) SpotLights() []light.SpotLight {
	_, spots := s.arena.Snapshot()
	return spots
}

func (s *scene) Fog() Fog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fog
}

func (s *scene) FogEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fogEnabled
}

func (s *scene) IsDay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day
}

func (s *scene) SwitchDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.switchDay()
}

func (s *scene) SwitchFog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fogEnabled = !s.fogEnabled
}

func (s *scene) Update(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// gain is capped at 1 so a long frame lands on the target instead of overshooting
	gain := common.Clamp(dt, 0, 1)
	if s.fogEnabled {
		s.fog.Intensity += (FogCeiling - s.fog.Intensity) * gain
	} else {
		s.fog.Intensity -= s.fog.Intensity * gain
	}
	s.fog.Intensity = common.Clamp(s.fog.Intensity, 0, FogCeiling)
}

// switchDay flips the palette. Caller must hold the mutex.
func (s *scene) switchDay() {
	s.day = !s.day
	if s.day {
		s.dirLight.Color = DayDirColor
		s.fog.Color = DayFogColor
		return
	}
	s.dirLight.Color = NightDirColor
	s.fog.Color = NightFogColor
}
