package game_object

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUObjectUniform is the GPU-aligned per-object uniform: model matrix plus material.
// Size: 80 bytes (std140 / WGSL aligned).
type GPUObjectUniform struct {
	Model    [16]float32 // offset  0: model matrix (mat4x4<f32>)
	Material [4]float32  // offset 64: ambient, diffuse, specular, shininess (vec4<f32>)
}

// NewGPUObjectUniform snapshots an object into its uniform layout.
//
// Parameters:
//   - obj: the object to snapshot
//
// Returns:
//   - GPUObjectUniform: the uniform data
func NewGPUObjectUniform(obj GameObject) GPUObjectUniform {
	m := obj.Material()
	return GPUObjectUniform{
		Model:    obj.ModelMatrix(),
		Material: [4]float32{m.Ambient, m.Diffuse, m.Specular, m.Shininess},
	}
}

// Size returns the size of the GPUObjectUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUObjectUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUObjectUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUObjectUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Material[i]))
	}
	return buf
}
