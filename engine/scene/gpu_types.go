package scene

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-sandbox/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/light"
)

// GPUFog is the GPU-aligned fog uniform.
// Size: 16 bytes (vec3 + f32, std140 aligned).
type GPUFog struct {
	Color     [3]float32 // offset  0: fog RGB
	Intensity float32    // offset 12: blend factor in [0, FogCeiling]
}

// Size returns the size of the GPUFog struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUFog) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFog struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUFog) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	return buf
}

// MarshalCamera serializes the frame's camera uniform.
//
// Returns:
//   - []byte: the camera uniform buffer
func (f Frame) MarshalCamera() []byte {
	u := f.CameraUniform()
	return u.Marshal()
}

// MarshalLights serializes the directional, point and spot lights into one storage buffer.
//
// Returns:
//   - []byte: the light buffer, see light.MarshalLightBuffer for the layout
func (f Frame) MarshalLights() []byte {
	return light.MarshalLightBuffer(f.DirLight, f.PointLights, f.SpotLights)
}

// MarshalLightViewProjection serializes the directional light's view-projection matrix, column-major.
//
// Returns:
//   - []byte: 64-byte uniform buffer
func (f Frame) MarshalLightViewProjection() []byte {
	buf := make([]byte, 64)
	for i, v := range f.LightViewProjection {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// MarshalFog serializes the frame's fog uniform.
//
// Returns:
//   - []byte: the fog uniform buffer
func (f Frame) MarshalFog() []byte {
	g := GPUFog{Color: f.Fog.Color, Intensity: f.Fog.Intensity}
	return g.Marshal()
}

// MarshalObjects serializes the per-object uniforms of every visible object back to back.
//
// Returns:
//   - []byte: the object uniform buffer
//   - []uint64: object IDs in buffer order
func (f Frame) MarshalObjects() ([]byte, []uint64) {
	size := (&game_object.GPUObjectUniform{}).Size()
	buf := make([]byte, 0, len(f.Objects)*size)
	ids := make([]uint64, 0, len(f.Objects))
	for _, o := range f.Objects {
		if !o.Visible {
			continue
		}
		u := game_object.GPUObjectUniform{
			Model:    o.Model,
			Material: [4]float32{o.Material.Ambient, o.Material.Diffuse, o.Material.Specular, o.Material.Shininess},
		}
		buf = append(buf, u.Marshal()...)
		ids = append(ids, o.ID)
	}
	return buf, ids
}
