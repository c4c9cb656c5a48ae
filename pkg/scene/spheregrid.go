package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// oklchColor converts OKLCH values to a displayable color.
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchColor(l, c, h float64) core.Color {
	rgb := colorful.OkLch(l, c, h).Clamped()
	return core.NewColor(rgb.R, rgb.G, rgb.B)
}

// NewSphereGridScene creates a gridSize×gridSize grid of spheres on a mirror-ish floor.
// Hue varies along X, chroma along Z and reflectivity rises towards the back rows.
func NewSphereGridScene(gridSize int) (*Scene, error) {
	if gridSize < 2 {
		return nil, core.NewConfigurationError("grid_size", "must be at least 2, got %d", gridSize)
	}

	cameraConfig := geometry.CameraConfig{
		Origin:          core.NewVec3(4.5, 6, 18),
		Forward:         core.NewVec3(0, -5.2, -13.5), // Towards the grid center (4.5, 0.8, 4.5)
		Up:              core.NewVec3(0, 1, 0),
		FOV:             40,
		DistanceToImage: 1,
		Width:           640,
		Height:          360,
	}

	settings := DefaultSettings()
	settings.AliasingLimit = 2
	settings.ReflectionLimit = 3
	settings.Background = core.NewColor(0.5, 0.7, 1.0)

	var b builder
	b.addLight(lights.NewAmbient(core.NewColor(0.15, 0.15, 0.15)))
	b.addLight(lights.NewDirectional(core.NewVec3(-1, -2, -1), core.NewColor(0.8, 0.78, 0.7)))

	ground, groundErr := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), false)
	groundMat, groundMatErr := material.NewUniform(core.NewColor(0.5, 0.5, 0.5), core.Black(),
		material.WithReflectivity(0.2))
	b.addObject(ground, groundErr, groundMat, groundMatErr, core.NewColor(1, 1, 1))

	// Fit the grid in a roughly 9×9 area around the look-at point
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	const (
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(gridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			reflectivity := 0.6 * float64(gridSize-1-j) / float64(gridSize-1)

			sphere, sphereErr := geometry.NewSphere(core.NewVec3(x, radius, z), radius, false)
			sphereMat, sphereMatErr := material.NewUniform(core.NewColor(1, 1, 1), core.NewColor(0.6, 0.6, 0.6),
				material.WithReflectivity(reflectivity), material.WithShininess(64))
			b.addObject(sphere, sphereErr, sphereMat, sphereMatErr, oklchColor(lightness, chroma, hue))
		}
	}

	return b.build(cameraConfig, settings)
}
