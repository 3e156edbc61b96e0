package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULight is the GPU-aligned representation of a single point or spot light.
// Size: 64 bytes (std430 / WGSL aligned).
type GPULight struct {
	Position      [3]float32 // offset  0: world-space position
	LightType     uint32     // offset 12: 1 = point, 2 = spot
	Color         [3]float32 // offset 16: RGB color
	Concentration float32    // offset 28: spot exponent, 0 for point lights
	Direction     [3]float32 // offset 32: normalized cone axis, zero for point lights
	_pad0         float32    // offset 44
	Attenuation   [3]float32 // offset 48: constant, linear, quadratic; zero for spot lights
	_pad1         float32    // offset 60: padding to 64-byte alignment
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	putVec3(buf[0:12], g.Position)
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	putVec3(buf[16:28], g.Color)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Concentration))
	putVec3(buf[32:44], g.Direction)
	binary.LittleEndian.PutUint32(buf[44:48], 0) // padding
	putVec3(buf[48:60], g.Attenuation)
	binary.LittleEndian.PutUint32(buf[60:64], 0) // padding
	return buf
}

// GPULightHeader is the header prepended to the light storage buffer.
// It carries the directional light and the counts of the arrays that follow.
// Size: 32 bytes (std430 aligned).
type GPULightHeader struct {
	DirDirection [3]float32 // offset  0: directional light direction
	PointCount   uint32     // offset 12: number of point lights following the header
	DirColor     [3]float32 // offset 16: directional light color
	SpotCount    uint32     // offset 28: number of spot lights following the point lights
}

// Size returns the size of the GPULightHeader struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (h *GPULightHeader) Size() int {
	return int(unsafe.Sizeof(*h))
}

// Marshal serializes the GPULightHeader struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (h *GPULightHeader) Marshal() []byte {
	buf := make([]byte, 32)
	putVec3(buf[0:12], h.DirDirection)
	binary.LittleEndian.PutUint32(buf[12:16], h.PointCount)
	putVec3(buf[16:28], h.DirColor)
	binary.LittleEndian.PutUint32(buf[28:32], h.SpotCount)
	return buf
}

// ToGPUPointLight converts a PointLight into the GPU-aligned GPULight struct.
//
// Parameters:
//   - l: the point light to convert
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPUPointLight(l PointLight) GPULight {
	return GPULight{
		Position:    l.Position,
		LightType:   uint32(LightTypePoint),
		Color:       l.Color,
		Attenuation: l.Attenuation,
	}
}

// ToGPUSpotLight converts a SpotLight into the GPU-aligned GPULight struct.
//
// Parameters:
//   - l: the spot light to convert
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPUSpotLight(l SpotLight) GPULight {
	return GPULight{
		Position:      l.Position,
		LightType:     uint32(LightTypeSpot),
		Color:         l.Color,
		Concentration: l.Concentration,
		Direction:     l.Direction,
	}
}

// MarshalLightBuffer marshals the scene lights into a byte buffer suitable for GPU upload.
// The buffer layout is:
//
//	[GPULightHeader (32 bytes)] [point GPULight × n (64 bytes each)] [spot GPULight × m]
//
// Scenes never hold more than MaxLights of each kind, so nothing is dropped.
//
// Parameters:
//   - dir: the directional light
//   - points: point lights in arena order
//   - spots: spot lights in arena order
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalLightBuffer(dir DirLight, points []PointLight, spots []SpotLight) []byte {
	header := GPULightHeader{
		DirDirection: dir.Direction,
		PointCount:   uint32(len(points)),
		DirColor:     dir.Color,
		SpotCount:    uint32(len(spots)),
	}
	headerSize := header.Size()
	lightSize := (&GPULight{}).Size()

	buf := make([]byte, headerSize+(len(points)+len(spots))*lightSize)
	copy(buf, header.Marshal())

	offset := headerSize
	for _, l := range points {
		gpu := ToGPUPointLight(l)
		copy(buf[offset:offset+lightSize], gpu.Marshal())
		offset += lightSize
	}
	for _, l := range spots {
		gpu := ToGPUSpotLight(l)
		copy(buf[offset:offset+lightSize], gpu.Marshal())
		offset += lightSize
	}
	return buf
}

func putVec3(buf []byte, v [3]float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v[2]))
}
