package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Directional is a light at infinity shining along a fixed direction.
// It is never attenuated but can be shadowed.
type Directional struct {
	direction core.Vec3 // Normalized direction the light travels in
	color     core.Color
}

// NewDirectional creates a directional light travelling along direction
func NewDirectional(direction core.Vec3, color core.Color) (*Directional, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, core.NewConfigurationError("direction", "must be a non-zero vector, got %v", direction)
	}
	if err := validateColor("color", color); err != nil {
		return nil, err
	}
	return &Directional{direction: unit, color: color}, nil
}

func (d *Directional) isLight() {}

// Type returns LightTypeDirectional
func (d *Directional) Type() LightType { return LightTypeDirectional }

// Direction returns the normalized direction the light travels in
func (d *Directional) Direction() core.Vec3 { return d.direction }

// Contribution points back against the light direction, at infinite distance
func (d *Directional) Contribution(point, normal core.Vec3) (Contribution, bool) {
	return Contribution{
		Direction: d.direction.Negate(),
		Distance:  math.Inf(1),
		Color:     d.color,
	}, true
}
