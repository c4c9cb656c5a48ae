package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Point is an omnidirectional light at a position
type Point struct {
	position core.Vec3
	color    core.Color
	falloff  Falloff
}

// NewPoint creates a point light
func NewPoint(position core.Vec3, color core.Color, falloff Falloff) (*Point, error) {
	if err := validatePoint("position", position); err != nil {
		return nil, err
	}
	if err := validateColor("color", color); err != nil {
		return nil, err
	}
	if falloff == "" {
		falloff = FalloffNone
	}
	return &Point{position: position, color: color, falloff: falloff}, nil
}

func (p *Point) isLight() {}

// Type returns LightTypePoint
func (p *Point) Type() LightType { return LightTypePoint }

// Position returns the light position
func (p *Point) Position() core.Vec3 { return p.position }

// Contribution returns the direction and distance to the light.
// A surface point exactly at the light position has no direction and receives nothing.
func (p *Point) Contribution(point, normal core.Vec3) (Contribution, bool) {
	toLight := p.position.Subtract(point)
	distance := toLight.Length()
	direction, err := toLight.Normalize()
	if err != nil {
		return Contribution{}, false
	}
	return Contribution{
		Direction: direction,
		Distance:  distance,
		Color:     p.falloff.Attenuate(p.color, distance),
	}, true
}
