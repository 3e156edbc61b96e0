package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/camera"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/movement"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// PresetConfig carries the runtime values a preset needs.
type PresetConfig struct {
	Aspect         float32
	Seed           int64
	RubberBandGain float32 // 0 means camera.DefaultGain
}

// PresetFunc builds a scene from a PresetConfig.
type PresetFunc func(cfg PresetConfig) (Scene, error)

// Preset names.
const (
	PresetShapesInSpace = "shapes-in-space"
	PresetAssignment    = "assignment"
)

var presets = map[string]PresetFunc{
	PresetShapesInSpace: ShapesInSpace,
	PresetAssignment:    Assignment,
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPreset builds the named preset.
//
// Parameters:
//   - name: one of PresetNames()
//   - cfg: the runtime values
//
// Returns:
//   - Scene: the scene
//   - error: an unknown preset or a scene construction error
func NewPreset(name string, cfg PresetConfig) (Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return build(cfg)
}

// ShapesInSpace is a small showcase: a spinning crate, a crate circling below it, two
// white point lamps, a sphere and the skybox, seen by a free camera and a fixed one.
func ShapesInSpace(cfg PresetConfig) (Scene, error) {
	objects := []game_object.GameObject{
		game_object.NewCube(movement.NewSpin(pose.Zero(), common.WorldUp, 1), 1, game_object.WithID(1)),
		game_object.NewSkybox(game_object.WithID(2)),
		game_object.NewCube(movement.NewOrbit(3, mgl32.Vec3{0, -2, 0}, 1), 1, game_object.WithID(3)),
		game_object.NewPointLamp(movement.NewStatic(pose.New(mgl32.Vec3{-1, -1, 0})), mgl32.Vec3{1, 1, 1}, game_object.WithID(4)),
		game_object.NewPointLamp(movement.NewStatic(pose.New(mgl32.Vec3{0, 1, 1})), mgl32.Vec3{1, 1, 1}, game_object.WithID(5)),
		game_object.NewSphere(movement.NewStatic(pose.New(mgl32.Vec3{4, 4, -4})), 2, game_object.WithID(6)),
	}

	cameras := []camera.Camera{
		camera.NewCamera(camera.WithPosition(mgl32.Vec3{0, 0, 2}), camera.WithAspect(cfg.Aspect), camera.WithControllable(true)),
		camera.NewCamera(camera.WithPosition(mgl32.Vec3{-2, 6, 4}), camera.WithAspect(cfg.Aspect), camera.WithPitch(-45)),
	}

	return NewScene(objects, Lights{}, cameras, WithName(PresetShapesInSpace))
}

// Assignment is the full sandbox: a floor, a keyboard-flown ship with a steerable
// headlight, an orbiting crate, a spinning crate, a wandering sphere carrying a light,
// point and spot lamps, and four cameras (free, fixed, follow-the-ship, chase).
func Assignment(cfg PresetConfig) (Scene, error) {
	gain := common.Coalesce(cfg.RubberBandGain, camera.DefaultGain)
	rng := rand.New(rand.NewSource(cfg.Seed))

	ship := movement.NewKeyboard(movement.WithKeyboardStart(mgl32.Vec3{0, -1.5, 0}))
	chaotic := movement.NewChaotic(rng, movement.WithChaoticStart(mgl32.Vec3{0, 1, -8}))
	spotlight := pose.Pose{
		Position: mgl32.Vec3{0, 3, -4},
		Front:    mgl32.Vec3{0, -1, -1},
		Up:       common.WorldUp,
	}

	objects := []game_object.GameObject{
		game_object.NewFloor(-2, game_object.WithID(1)),
		game_object.NewSkybox(game_object.WithID(2)),
		game_object.NewSpaceShip(ship, game_object.WithID(3)),
		game_object.NewCube(movement.NewOrbit(4, mgl32.Vec3{0, 0, -6}, 0.8), 1, game_object.WithID(4)),
		game_object.NewCube(
			movement.NewSpin(pose.New(mgl32.Vec3{3, 0, -3}), mgl32.Vec3{1, 1, 0}, 1.5), 0.75,
			game_object.WithID(5),
		),
		game_object.NewSphere(chaotic, 0.3, game_object.WithID(6), game_object.WithPointLight(
			mgl32.Vec3{}, light.NewPointLight(
				light.WithColor(mgl32.Vec3{0.2, 1, 0.3}),
				light.WithAttenuation(game_object.LampAttenuation),
			),
		)),
		game_object.NewPointLamp(movement.NewStatic(pose.New(mgl32.Vec3{-3, 0, -2})), mgl32.Vec3{1, 0.2, 0.2}, game_object.WithID(7)),
		game_object.NewPointLamp(movement.NewOrbit(2, mgl32.Vec3{2, 1, 2}, -1), mgl32.Vec3{0.2, 0.4, 1}, game_object.WithID(8)),
		game_object.NewSpotLamp(movement.NewSpin(spotlight, common.WorldUp, 0.5), mgl32.Vec3{1, 0.9, 0.6}, game_object.WithID(9)),
	}

	lights := Lights{
		Points: []light.PointLight{light.NewPointLight(
			light.WithPosition(mgl32.Vec3{0, 6, 0}),
			light.WithColor(mgl32.Vec3{0.3, 0.3, 0.3}),
		)},
	}

	cameras := []camera.Camera{
		camera.NewCamera(camera.WithPosition(mgl32.Vec3{0, 1, 5}), camera.WithAspect(cfg.Aspect), camera.WithControllable(true)),
		camera.NewCamera(camera.WithPosition(mgl32.Vec3{-2, 6, 4}), camera.WithAspect(cfg.Aspect), camera.WithPitch(-45)),
		camera.NewFollowCamera(ship, camera.WithPosition(mgl32.Vec3{6, 4, 6}), camera.WithAspect(cfg.Aspect)),
		camera.NewRubberBandCamera(ship, mgl32.Vec3{0, 0.6, 2.5},
			camera.WithGain(gain),
			camera.WithCameraOptions(camera.WithAspect(cfg.Aspect)),
		),
	}

	return NewScene(objects, lights, cameras, WithName(PresetAssignment))
}
