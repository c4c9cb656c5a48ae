package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material decides how a surface point responds to light: its local color
// response and how much of the final color comes from recursive rays.
// The set of materials is closed; *Uniform is the only variant.
type Material interface {
	// Properties returns the surface response at a point
	Properties(point core.Vec3) Properties

	isMaterial()
}

// Properties is the shading response of a material at a single point
type Properties struct {
	Diffuse      core.Color // Lambertian response
	Specular     core.Color // Phong highlight response
	Shininess    float64    // Phong exponent
	Reflectivity float64    // Fraction of the final color taken from the mirror ray, in [0,1]

	// Transmission is nil for opaque materials
	Transmission *Transmission
}

// Transmission describes a transparent material
type Transmission struct {
	Coefficient float64 // Fraction of the final color taken from the transmitted ray, in [0,1]
	Index       float64 // Refractive index of the material
}

// LocalWeight returns the fraction of the final color taken from local shading
func (p Properties) LocalWeight() float64 {
	w := 1 - p.Reflectivity
	if p.Transmission != nil {
		w -= p.Transmission.Coefficient
	}
	return max(0, w)
}

// IsTransparent reports whether the material transmits light
func (p Properties) IsTransparent() bool {
	return p.Transmission != nil
}
