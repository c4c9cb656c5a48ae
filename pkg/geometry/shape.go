package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Hit describes where a ray first meets a shape
type Hit struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit surface normal at the point, already flipped for inverted shapes
}

// Shape is the closed set of primitives the tracer understands: *Sphere,
// *Plane and *Triangle. The unexported method keeps other packages from
// adding variants that the scene loader and tests would not know about.
type Shape interface {
	// Hit returns the nearest intersection with tMin < t < tMax
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)

	// NormalAt returns the unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	isShape()
}

// orient flips a normal when the shape is inverted
func orient(normal core.Vec3, inverted bool) core.Vec3 {
	if inverted {
		return normal.Negate()
	}
	return normal
}
