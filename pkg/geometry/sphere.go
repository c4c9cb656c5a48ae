package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape. An inverted sphere reports normals that
// point towards its center, which makes its inside the visible surface
// (e.g. an enclosing dome around the camera).
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Inverted bool
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, inverted bool) (*Sphere, error) {
	if !center.IsFinite() {
		return nil, core.NewConfigurationError("center", "must be finite, got %v", center)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, core.NewConfigurationError("radius", "must be a positive number, got %v", radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Inverted: inverted,
	}, nil
}

func (s *Sphere) isShape() {}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic |O + tD - C|^2 = r^2 in half-b form: at^2 + 2*halfB*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Closer root first; the far root is the exit point when the origin is inside
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	return Hit{
		T:      root,
		Point:  point,
		Normal: s.NormalAt(point),
	}, true
}

// NormalAt returns the outward normal, or the inward one for inverted spheres
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	outward := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	return orient(outward, s.Inverted)
}
