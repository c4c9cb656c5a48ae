package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// Light is the closed set of light sources: *Ambient, *Directional, *Point and *Spot.
type Light interface {
	Type() LightType

	// Contribution returns how this light reaches a surface point. The normal is
	// passed for lights whose output depends on surface orientation; none of the
	// built-in variants use it. A false result means the light contributes nothing.
	Contribution(point, normal core.Vec3) (Contribution, bool)

	isLight()
}

// Contribution describes the light arriving at a surface point
type Contribution struct {
	Direction core.Vec3  // Unit direction from the surface point to the light (zero for ambient)
	Distance  float64    // Distance to the light; +Inf for directional lights, 0 for ambient
	Color     core.Color // Incoming light after any falloff
}

// CastsShadows reports whether a light's contribution must be shadow-tested
func CastsShadows(l Light) bool {
	return l.Type() != LightTypeAmbient
}

// Falloff is the distance attenuation law applied by point and spot lights
type Falloff string

const (
	FalloffNone      Falloff = "none"      // Constant intensity
	FalloffLinear    Falloff = "linear"    // Intensity / d
	FalloffQuadratic Falloff = "quadratic" // Intensity / d²
)

// ParseFalloff converts a configuration string to a Falloff; empty means none
func ParseFalloff(s string) (Falloff, error) {
	switch f := Falloff(s); f {
	case "":
		return FalloffNone, nil
	case FalloffNone, FalloffLinear, FalloffQuadratic:
		return f, nil
	default:
		return "", core.NewConfigurationError("falloff", "unknown falloff %q (want none, linear or quadratic)", s)
	}
}

// Attenuate scales a color by the falloff law at the given distance
func (f Falloff) Attenuate(c core.Color, distance float64) core.Color {
	switch f {
	case FalloffLinear:
		return c.Multiply(1 / math.Max(distance, core.Epsilon))
	case FalloffQuadratic:
		d := math.Max(distance, core.Epsilon)
		return c.Multiply(1 / (d * d))
	default:
		return c
	}
}

func validateColor(field string, c core.Color) error {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return core.NewConfigurationError(field, "channels must be finite and non-negative, got %v", c)
		}
	}
	return nil
}

func validatePoint(field string, p core.Vec3) error {
	if !p.IsFinite() {
		return core.NewConfigurationError(field, "must be finite, got %v", p)
	}
	return nil
}
