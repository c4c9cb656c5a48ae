package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultShininess is the Phong exponent used when a material does not set one
const DefaultShininess = 32.0

// Uniform is a material whose response is the same everywhere on the surface
type Uniform struct {
	properties Properties
}

// UniformOption configures optional Uniform fields
type UniformOption func(*Properties)

// WithReflectivity sets the mirror weight
func WithReflectivity(reflectivity float64) UniformOption {
	return func(p *Properties) { p.Reflectivity = reflectivity }
}

// WithTransparency makes the material transparent. Coefficient and index always come as a pair.
func WithTransparency(coefficient, index float64) UniformOption {
	return func(p *Properties) {
		p.Transmission = &Transmission{Coefficient: coefficient, Index: index}
	}
}

// WithShininess sets the Phong exponent
func WithShininess(shininess float64) UniformOption {
	return func(p *Properties) { p.Shininess = shininess }
}

// NewUniform creates a uniform material and validates its parameters
func NewUniform(diffuse, specular core.Color, opts ...UniformOption) (*Uniform, error) {
	p := Properties{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: DefaultShininess,
	}
	for _, opt := range opts {
		opt(&p)
	}

	if err := validateColor("diffuse", p.Diffuse); err != nil {
		return nil, err
	}
	if err := validateColor("specular", p.Specular); err != nil {
		return nil, err
	}
	if !inUnitInterval(p.Reflectivity) {
		return nil, core.NewConfigurationError("reflectivity", "must be in [0, 1], got %v", p.Reflectivity)
	}
	if !(p.Shininess >= 0) || math.IsInf(p.Shininess, 0) {
		return nil, core.NewConfigurationError("shininess", "must be a non-negative number, got %v", p.Shininess)
	}
	if t := p.Transmission; t != nil {
		if !inUnitInterval(t.Coefficient) {
			return nil, core.NewConfigurationError("transparency", "must be in [0, 1], got %v", t.Coefficient)
		}
		if !(t.Index > 0) || math.IsInf(t.Index, 0) {
			return nil, core.NewConfigurationError("index", "must be a positive number, got %v", t.Index)
		}
		if p.Reflectivity+t.Coefficient > 1+1e-12 {
			return nil, core.NewConfigurationError("transparency",
				"reflectivity (%v) + transparency (%v) must not exceed 1", p.Reflectivity, t.Coefficient)
		}
	}

	return &Uniform{properties: p}, nil
}

func (u *Uniform) isMaterial() {}

// Properties returns the same response for every point
func (u *Uniform) Properties(point core.Vec3) Properties {
	return u.properties
}

func inUnitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

func validateColor(field string, c core.Color) error {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return core.NewConfigurationError(field, "channels must be finite and non-negative, got %v", c)
		}
	}
	return nil
}
