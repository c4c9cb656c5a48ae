package scene

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Object is one renderable item: a shape with its material and texture
type Object struct {
	Shape    geometry.Shape
	Material material.Material
	Texture  material.Texture
}

// Settings holds the scene-wide rendering limits and environment
type Settings struct {
	AliasingLimit   int        // Samples per pixel axis; N means N×N rays per pixel
	ReflectionLimit int        // Maximum recursion depth for reflected and transmitted rays
	Background      core.Color // Color of rays that hit nothing
	MediumIndex     float64    // Refractive index of the space between objects
}

// DefaultSettings returns one sample per pixel, local shading only, a black
// background and a vacuum medium
func DefaultSettings() Settings {
	return Settings{
		AliasingLimit:   1,
		ReflectionLimit: 0,
		Background:      core.Black(),
		MediumIndex:     1.0,
	}
}

// Validate checks the settings
func (s Settings) Validate() error {
	if s.AliasingLimit < 1 {
		return core.NewConfigurationError("aliasing_limit", "must be a positive integer, got %d", s.AliasingLimit)
	}
	if s.ReflectionLimit < 0 {
		return core.NewConfigurationError("reflection_limit", "must not be negative, got %d", s.ReflectionLimit)
	}
	for _, v := range [3]float64{s.Background.R, s.Background.G, s.Background.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return core.NewConfigurationError("background", "channels must be finite and non-negative, got %v", s.Background)
		}
	}
	if !(s.MediumIndex > 0) || math.IsInf(s.MediumIndex, 0) {
		return core.NewConfigurationError("medium_index", "must be a positive number, got %v", s.MediumIndex)
	}
	return nil
}

// Scene contains all the elements needed for rendering. It is immutable once
// built and safe to share between rendering goroutines.
type Scene struct {
	camera   *geometry.Camera
	lights   []lights.Light
	objects  []Object
	settings Settings
}

// New builds a scene. The light and object slices are copied so later changes
// by the caller cannot reach a scene that is being rendered.
func New(camera *geometry.Camera, sceneLights []lights.Light, objects []Object, settings Settings) (*Scene, error) {
	if camera == nil {
		return nil, core.NewConfigurationError("camera", "is required")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	for i, l := range sceneLights {
		if l == nil {
			return nil, core.NewConfigurationError(fmt.Sprintf("lights[%d]", i), "is nil")
		}
	}
	for i, obj := range objects {
		field := fmt.Sprintf("objects[%d]", i)
		switch {
		case obj.Shape == nil:
			return nil, core.NewConfigurationError(field+".shape", "is required")
		case obj.Material == nil:
			return nil, core.NewConfigurationError(field+".material", "is required")
		case obj.Texture == nil:
			return nil, core.NewConfigurationError(field+".texture", "is required")
		}
	}

	return &Scene{
		camera:   camera,
		lights:   slices.Clone(sceneLights),
		objects:  slices.Clone(objects),
		settings: settings,
	}, nil
}

// WithLimits returns a copy of the scene with different sampling and recursion limits
func (s *Scene) WithLimits(aliasingLimit, reflectionLimit int) (*Scene, error) {
	settings := s.settings
	settings.AliasingLimit = aliasingLimit
	settings.ReflectionLimit = reflectionLimit
	return New(s.camera, s.lights, s.objects, settings)
}

// Camera returns the scene camera
func (s *Scene) Camera() *geometry.Camera { return s.camera }

// Settings returns the scene-wide limits and environment
func (s *Scene) Settings() Settings { return s.settings }

// Lights iterates over the scene's lights
func (s *Scene) Lights() iter.Seq[lights.Light] { return slices.Values(s.lights) }

// Objects iterates over the scene's objects in declaration order
func (s *Scene) Objects() iter.Seq[Object] { return slices.Values(s.objects) }

// NumLights returns the number of lights
func (s *Scene) NumLights() int { return len(s.lights) }

// NumObjects returns the number of objects
func (s *Scene) NumObjects() int { return len(s.objects) }
