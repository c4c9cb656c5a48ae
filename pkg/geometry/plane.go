package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal, already flipped when inverted
	Inverted bool
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, inverted bool) (*Plane, error) {
	if !point.IsFinite() {
		return nil, core.NewConfigurationError("point", "must be finite, got %v", point)
	}
	unit, err := normal.Normalize()
	if err != nil {
		return nil, core.NewConfigurationError("normal", "must be a non-zero vector, got %v", normal)
	}
	return &Plane{
		Point:    point,
		Normal:   orient(unit, inverted),
		Inverted: inverted,
	}, nil
}

func (p *Plane) isShape() {}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-12 {
		return Hit{}, false
	}

	// t = (point_on_plane - ray_origin) . normal / (ray_direction . normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return Hit{}, false
	}

	return Hit{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}
