package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// Its front side is the one from which V0, V1, V2 appear counter-clockwise.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Inverted   bool
	normal     core.Vec3 // Cached unit normal
	edge1      core.Vec3 // V1 - V0
	edge2      core.Vec3 // V2 - V0
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, inverted bool) (*Triangle, error) {
	for i, v := range []core.Vec3{v0, v1, v2} {
		if !v.IsFinite() {
			return nil, core.NewConfigurationError([]string{"a", "b", "c"}[i], "must be finite, got %v", v)
		}
	}

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	normal, err := edge1.Cross(edge2).Normalize()
	if err != nil {
		return nil, core.NewConfigurationError("", "triangle %v %v %v has zero area", v0, v1, v2)
	}

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Inverted: inverted,
		normal:   orient(normal, inverted),
		edge1:    edge1,
		edge2:    edge2,
	}, nil
}

func (t *Triangle) isShape() {}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	const epsilon = 1e-12

	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Hit{}, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Hit{}, false
	}

	tParam := f * t.edge2.Dot(q)
	if tParam <= tMin || tParam >= tMax {
		return Hit{}, false
	}

	return Hit{
		T:      tParam,
		Point:  ray.At(tParam),
		Normal: t.normal,
	}, true
}

// NormalAt returns the triangle's face normal
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return t.normal
}
