package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Spot is a point light restricted to a cone
type Spot struct {
	position     core.Vec3
	direction    core.Vec3 // Normalized cone axis
	color        core.Color
	falloff      Falloff
	cosHalfAngle float64 // Cosine of half the cone's field of view
}

// NewSpot creates a spot light whose cone spans fovDegrees around direction
func NewSpot(position, direction core.Vec3, fovDegrees float64, color core.Color, falloff Falloff) (*Spot, error) {
	if err := validatePoint("position", position); err != nil {
		return nil, err
	}
	axis, err := direction.Normalize()
	if err != nil {
		return nil, core.NewConfigurationError("direction", "must be a non-zero vector, got %v", direction)
	}
	if !(fovDegrees > 0 && fovDegrees <= 360) {
		return nil, core.NewConfigurationError("fov", "must be in (0, 360] degrees, got %v", fovDegrees)
	}
	if err := validateColor("color", color); err != nil {
		return nil, err
	}
	if falloff == "" {
		falloff = FalloffNone
	}
	return &Spot{
		position:     position,
		direction:    axis,
		color:        color,
		falloff:      falloff,
		cosHalfAngle: math.Cos(fovDegrees * math.Pi / 360.0),
	}, nil
}

func (s *Spot) isLight() {}

// Type returns LightTypeSpot
func (s *Spot) Type() LightType { return LightTypeSpot }

// Position returns the light position
func (s *Spot) Position() core.Vec3 { return s.position }

// Contribution is like a point light's, but nothing reaches points outside the cone
func (s *Spot) Contribution(point, normal core.Vec3) (Contribution, bool) {
	toLight := s.position.Subtract(point)
	distance := toLight.Length()
	direction, err := toLight.Normalize()
	if err != nil {
		return Contribution{}, false
	}

	// Angle between the cone axis and the light-to-point direction
	if s.direction.Dot(direction.Negate()) < s.cosHalfAngle {
		return Contribution{}, false
	}

	return Contribution{
		Direction: direction,
		Distance:  distance,
		Color:     s.falloff.Attenuate(s.color, distance),
	}, true
}
