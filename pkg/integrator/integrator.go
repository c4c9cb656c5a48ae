package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator computes the color seen along a primary ray
type Integrator interface {
	// RayColor traces a primary ray and records the work done in stats
	RayColor(ray core.Ray, stats *RayStats) core.Color
}

// RayStats counts the rays cast while rendering
type RayStats struct {
	Primary     int64 // Camera rays
	Shadow      int64 // Visibility tests towards non-ambient lights
	Reflected   int64 // Mirror rays
	Transmitted int64 // Refracted rays
	Degenerate  int64 // Rays dropped because their direction could not be normalized
}

// Recursive returns the number of reflected and transmitted rays
func (s RayStats) Recursive() int64 {
	return s.Reflected + s.Transmitted
}

// Total returns the number of rays of every kind
func (s RayStats) Total() int64 {
	return s.Primary + s.Shadow + s.Reflected + s.Transmitted
}

// Merge adds other's counts into s
func (s *RayStats) Merge(other RayStats) {
	s.Primary += other.Primary
	s.Shadow += other.Shadow
	s.Reflected += other.Reflected
	s.Transmitted += other.Transmitted
	s.Degenerate += other.Degenerate
}
