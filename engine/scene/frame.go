package scene

import (
	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/camera"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

const boundingRadius float32 = 1.7320508

// ObjectFrame is the per-object part of a Frame.
type ObjectFrame struct {
	ID       uint64
	Shape    game_object.Shape
	Model    mgl32.Mat4
	Material game_object.Material
	Visible  bool // bounding sphere intersects the view frustum
}

// Frame is an immutable copy of everything the renderer needs for one frame.
type Frame struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3
	Frustum        common.Frustum

	DirLight            light.DirLight
	LightViewProjection mgl32.Mat4 // directional light volume centered on the camera
	PointLights         []light.PointLight
	SpotLights          []light.SpotLight

	Fog   Fog
	IsDay bool

	Objects []ObjectFrame // enabled objects in scene order
}

func (s *scene) Frame() Frame {
	s.mu.RLock()
	cam := s.cameras[s.active]
	objects := s.objects
	f := Frame{
		DirLight: s.dirLight,
		Fog:      s.fog,
		IsDay:    s.day,
	}
	s.mu.RUnlock()

	f.View = cam.ViewMatrix()
	f.Projection = cam.ProjectionMatrix()
	f.CameraPosition = cam.Position()
	f.Frustum = common.ExtractFrustum(f.Projection.Mul4(f.View))
	f.LightViewProjection = f.DirLight.ViewProjection(
		f.CameraPosition, light.DefaultShadowHalfExtent, light.DefaultShadowNear, light.DefaultShadowFar,
	)
	f.PointLights, f.SpotLights = s.arena.Snapshot()

	f.Objects = make([]ObjectFrame, 0, len(objects))
	for _, obj := range objects {
		if !obj.Enabled() {
			continue
		}
		model := obj.ModelMatrix()
		// meshes fit in a cube of half-extent 1 before scaling
		radius := obj.Size() * boundingRadius
		f.Objects = append(f.Objects, ObjectFrame{
			ID:       obj.ID(),
			Shape:    obj.Shape(),
			Model:    model,
			Material: obj.Material(),
			Visible:  f.Frustum.IntersectsSphere(common.TransformPoint(model, mgl32.Vec3{}), radius),
		})
	}
	return f
}

// ViewProjection returns Projection × View.
func (f Frame) ViewProjection() mgl32.Mat4 {
	return f.Projection.Mul4(f.View)
}

// CameraUniform returns the camera uniform for this frame.
func (f Frame) CameraUniform() camera.GPUCameraUniform {
	return camera.GPUCameraUniform{
		View:           f.View,
		Projection:     f.Projection,
		CameraPosition: f.CameraPosition,
	}
}
