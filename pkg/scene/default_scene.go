package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a mirror sphere, a glass sphere and a matte sphere
// on a floor, all inside an inverted sphere that acts as the sky
func NewDefaultScene() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Origin:          core.NewVec3(0, 1, -6),
		Forward:         core.NewVec3(0, -0.1, 1),
		Up:              core.NewVec3(0, 1, 0),
		FOV:             60,
		DistanceToImage: 1,
		Width:           400,
		Height:          300,
	}

	settings := DefaultSettings()
	settings.AliasingLimit = 2
	settings.ReflectionLimit = 4

	var b builder
	white := core.NewColor(1, 1, 1)

	b.addLight(lights.NewAmbient(core.NewColor(0.1, 0.1, 0.12)))
	b.addLight(lights.NewPoint(core.NewVec3(4, 6, -4), core.NewColor(0.7, 0.7, 0.65), lights.FalloffNone))
	b.addLight(lights.NewPoint(core.NewVec3(-6, 3, -2), core.NewColor(0.25, 0.25, 0.3), lights.FalloffNone))
	b.addLight(lights.NewSpot(core.NewVec3(0, 6, 1), core.NewVec3(0, -1, 0), 30, core.NewColor(20, 18, 15), lights.FalloffQuadratic))

	// Sky: seen from inside, so its normals face the camera. It also blocks
	// directional lights, so only positional lights are used here.
	sky, skyErr := geometry.NewSphere(core.NewVec3(0, 0, 0), 50, true)
	skyMat, skyMatErr := material.NewUniform(core.NewColor(0.5, 0.7, 1.0), core.Black(), material.WithShininess(1))
	b.addObject(sky, skyErr, skyMat, skyMatErr, white)

	floor, floorErr := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), false)
	floorMat, floorMatErr := material.NewUniform(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.1, 0.1, 0.1),
		material.WithReflectivity(0.15))
	b.addObject(floor, floorErr, floorMat, floorMatErr, core.NewColor(0.6, 0.6, 0.55))

	mirror, mirrorErr := geometry.NewSphere(core.NewVec3(-1.6, 0, 1), 1, false)
	mirrorMat, mirrorMatErr := material.NewUniform(core.NewColor(0.2, 0.2, 0.2), white,
		material.WithReflectivity(0.8), material.WithShininess(128))
	b.addObject(mirror, mirrorErr, mirrorMat, mirrorMatErr, core.NewColor(0.9, 0.9, 0.95))

	glass, glassErr := geometry.NewSphere(core.NewVec3(1.2, -0.2, -0.5), 0.8, false)
	glassMat, glassMatErr := material.NewUniform(core.NewColor(0.1, 0.1, 0.1), white,
		material.WithReflectivity(0.05), material.WithTransparency(0.9, 1.5), material.WithShininess(256))
	b.addObject(glass, glassErr, glassMat, glassMatErr, white)

	matte, matteErr := geometry.NewSphere(core.NewVec3(0.8, -0.4, 3), 0.6, false)
	matteMat, matteMatErr := material.NewUniform(core.NewColor(0.9, 0.25, 0.2), core.NewColor(0.3, 0.3, 0.3))
	b.addObject(matte, matteErr, matteMat, matteMatErr, white)

	return b.build(cameraConfig, settings)
}
