package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Ambient is a uniform light that reaches every point regardless of direction,
// distance or occlusion.
type Ambient struct {
	Color core.Color
}

// NewAmbient creates an ambient light
func NewAmbient(color core.Color) (*Ambient, error) {
	if err := validateColor("color", color); err != nil {
		return nil, err
	}
	return &Ambient{Color: color}, nil
}

func (a *Ambient) isLight() {}

// Type returns LightTypeAmbient
func (a *Ambient) Type() LightType { return LightTypeAmbient }

// Contribution returns the flat ambient color
func (a *Ambient) Contribution(point, normal core.Vec3) (Contribution, bool) {
	return Contribution{Color: a.Color}, true
}
