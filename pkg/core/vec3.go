package core

import (
	"math"
)

// Vec3 represents a 3D vector or point
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A zero-length (or non-finite) vector has no direction and yields ErrDegenerateVector.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vec3{}, ErrDegenerateVector
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// IsFinite reports whether every component is a finite number
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether two vectors differ by at most tolerance per component
func (v Vec3) ApproxEqual(other Vec3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

// Reflect mirrors the direction d about the unit normal n: d - 2*dot(d,n)*n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refraction is the outcome of bending a unit direction through an interface.
type Refraction struct {
	Direction   Vec3    // Transmitted direction (unit length)
	Reflectance float64 // Averaged Fresnel reflectance, the share of light that reflects instead
}

// Refract bends the unit direction d through a surface with unit normal n,
// travelling from a medium of index n1 into a medium of index n2 (Snell's law).
// The normal may face either side of the surface. It returns false on total
// internal reflection, in which case the caller should follow Reflect instead.
func (v Vec3) Refract(n Vec3, n1, n2 float64) (Refraction, bool) {
	cosI := v.Dot(n)
	if cosI > 0 {
		// Ray leaves through the side the normal points to; work with the facing normal.
		n = n.Negate()
	} else {
		cosI = -cosI
	}

	eta := n1 / n2
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return Refraction{}, false
	}

	cosT := math.Sqrt(k)
	direction := v.Multiply(eta).Add(n.Multiply(eta*cosI - cosT))

	rs := (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rp := (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT)

	return Refraction{
		Direction:   direction,
		Reflectance: (rs*rs + rp*rp) / 2,
	}, true
}

// Ray represents a half-line with an origin and a unit direction.
// Rays are built by NewRay and never modified afterwards.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing its direction
func NewRay(origin, direction Vec3) (Ray, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: unit}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// OffsetOrigin nudges a surface point by Epsilon along the normal, on the side
// the outgoing direction travels to, so a secondary ray does not re-hit its own surface.
func OffsetOrigin(point, normal, direction Vec3) Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(Epsilon))
	}
	return point.Add(normal.Multiply(Epsilon))
}
