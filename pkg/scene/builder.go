package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// builder assembles the built-in scenes, keeping the first construction error
type builder struct {
	err     error
	lights  []lights.Light
	objects []Object
}

func (b *builder) fail(what string, err error) {
	if b.err == nil && err != nil {
		b.err = fmt.Errorf("%s: %w", what, err)
	}
}

func (b *builder) addLight(light lights.Light, err error) {
	if err != nil {
		b.fail(fmt.Sprintf("lights[%d]", len(b.lights)), err)
		return
	}
	b.lights = append(b.lights, light)
}

func (b *builder) addObject(shape geometry.Shape, shapeErr error, mat material.Material, matErr error, color core.Color) {
	field := fmt.Sprintf("objects[%d]", len(b.objects))
	if shapeErr != nil {
		b.fail(field+".shape", shapeErr)
		return
	}
	if matErr != nil {
		b.fail(field+".material", matErr)
		return
	}
	texture, err := material.NewUniformTexture(color)
	if err != nil {
		b.fail(field+".texture", err)
		return
	}
	b.objects = append(b.objects, Object{Shape: shape, Material: mat, Texture: texture})
}

func (b *builder) build(cameraConfig geometry.CameraConfig, settings Settings) (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return New(camera, b.lights, b.objects, settings)
}
