package light

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrTooManyPointLights is returned when a scene asks for more than MaxLights point lights.
	ErrTooManyPointLights = errors.New("too many point lights")
	// ErrTooManySpotLights is returned when a scene asks for more than MaxLights spot lights.
	ErrTooManySpotLights = errors.New("too many spot lights")
)

// PointHandle addresses a point light inside an Arena.
type PointHandle int

// SpotHandle addresses a spot light inside an Arena.
type SpotHandle int

// Arena is the single owner of a scene's point and spot lights. Lights are appended
// during scene construction and then rewritten in place by exactly one owner each tick.
// Handles stay valid for the life of the arena.
type Arena struct {
	mu     *sync.RWMutex
	points []PointLight
	spots  []SpotLight
}

// NewArena creates an empty Arena with room for MaxLights of each kind.
//
// Returns:
//   - *Arena: the arena
func NewArena() *Arena {
	return &Arena{
		mu:     &sync.RWMutex{},
		points: make([]PointLight, 0, MaxLights),
		spots:  make([]SpotLight, 0, MaxLights),
	}
}

// AddPoint appends a point light.
//
// Parameters:
//   - l: the light value
//
// Returns:
//   - PointHandle: the handle of the stored light
//   - error: ErrTooManyPointLights when the arena is full
func (a *Arena) AddPoint(l PointLight) (PointHandle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.points) >= MaxLights {
		return -1, fmt.Errorf("adding point light %d: %w", len(a.points)+1, ErrTooManyPointLights)
	}
	a.points = append(a.points, l)
	return PointHandle(len(a.points) - 1), nil
}

// AddSpot appends a spot light.
//
// Parameters:
//   - l: the light value
//
// Returns:
//   - SpotHandle: the handle of the stored light
//   - error: ErrTooManySpotLights when the arena is full
func (a *Arena) AddSpot(l SpotLight) (SpotHandle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.spots) >= MaxLights {
		return -1, fmt.Errorf("adding spot light %d: %w", len(a.spots)+1, ErrTooManySpotLights)
	}
	a.spots = append(a.spots, l)
	return SpotHandle(len(a.spots) - 1), nil
}

// Point returns a copy of the point light at h.
func (a *Arena) Point(h PointHandle) PointLight {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.points[h]
}

// Spot returns a copy of the spot light at h.
func (a *Arena) Spot(h SpotHandle) SpotLight {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.spots[h]
}

// SetPoint overwrites the point light at h.
func (a *Arena) SetPoint(h PointHandle, l PointLight) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.points[h] = l
}

// SetSpot overwrites the spot light at h.
func (a *Arena) SetSpot(h SpotHandle, l SpotLight) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.spots[h] = l
}

// PointCount returns the number of stored point lights.
func (a *Arena) PointCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.points)
}

// SpotCount returns the number of stored spot lights.
func (a *Arena) SpotCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.spots)
}

// Snapshot copies every light in storage order.
//
// Returns:
//   - []PointLight: copied point lights
//   - []SpotLight: copied spot lights
func (a *Arena) Snapshot() ([]PointLight, []SpotLight) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	points := make([]PointLight, len(a.points))
	copy(points, a.points)
	spots := make([]SpotLight, len(a.spots))
	copy(spots, a.spots)
	return points, spots
}
