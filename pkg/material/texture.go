package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture provides the base color of a surface point. The set is closed;
// *UniformTexture is the only variant.
type Texture interface {
	ColorAt(point core.Vec3) core.Color

	isTexture()
}

// UniformTexture provides a single color across the whole surface
type UniformTexture struct {
	Color core.Color
}

// NewUniformTexture creates a new uniform texture
func NewUniformTexture(color core.Color) (*UniformTexture, error) {
	if err := validateColor("color", color); err != nil {
		return nil, err
	}
	return &UniformTexture{Color: color}, nil
}

func (u *UniformTexture) isTexture() {}

// ColorAt returns the texture color regardless of position
func (u *UniformTexture) ColorAt(point core.Vec3) core.Color {
	return u.Color
}
