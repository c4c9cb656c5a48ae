package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive ray tracing: local Phong shading with
// hard shadows, plus mirror reflection and refraction up to a fixed depth.
type WhittedIntegrator struct {
	scene    *scene.Scene
	settings scene.Settings
}

// NewWhittedIntegrator creates a Whitted integrator for a scene
func NewWhittedIntegrator(s *scene.Scene) *WhittedIntegrator {
	return &WhittedIntegrator{scene: s, settings: s.Settings()}
}

// RayColor traces a primary ray from the camera
func (w *WhittedIntegrator) RayColor(ray core.Ray, stats *RayStats) core.Color {
	stats.Primary++
	return w.Trace(ray, 0, stats)
}

// Trace returns the color seen along ray at the given recursion depth.
// Primary rays are at depth 0; nothing deeper than the reflection limit is traced.
func (w *WhittedIntegrator) Trace(ray core.Ray, depth int, stats *RayStats) core.Color {
	if depth > w.settings.ReflectionLimit {
		return core.Black()
	}

	hit, isHit := w.scene.NearestHit(ray)
	if !isHit {
		return w.settings.Background
	}

	props := hit.Object.Material.Properties(hit.Point)
	base := hit.Object.Texture.ColorAt(hit.Point)

	color := w.localColor(ray, hit, props, base, stats).Multiply(props.LocalWeight())

	// Recursive rays at this depth would land past the limit and contribute black
	if depth >= w.settings.ReflectionLimit {
		return color
	}

	var reflected core.Color
	if props.Reflectivity > 0 || props.IsTransparent() {
		reflected = w.reflectedColor(ray, hit, depth, stats)
	}
	if props.Reflectivity > 0 {
		color = color.Add(reflected.Multiply(props.Reflectivity))
	}
	if t := props.Transmission; t != nil && t.Coefficient > 0 {
		transmitted := w.transmittedColor(ray, hit, t, reflected, depth, stats)
		color = color.Add(transmitted.Multiply(t.Coefficient))
	}

	return color
}

// localColor evaluates ambient, Lambertian and Phong terms over every light:
//
//	texture * diffuse * (sum(ambient) + sum(L * n.l)) + specular * sum(L * max(0, r.l)^shininess)
//
// Ambient light is scaled by the diffuse color as well as the texture.
// Non-ambient lights are skipped when another object blocks the path to them.
func (w *WhittedIntegrator) localColor(ray core.Ray, hit scene.HitRecord, props material.Properties, base core.Color, stats *RayStats) core.Color {
	normal := hit.Normal
	mirror := ray.Direction.Reflect(normal)

	var irradiance, highlight core.Color
	for light := range w.scene.Lights() {
		c, ok := light.Contribution(hit.Point, normal)
		if !ok {
			continue
		}
		if !lights.CastsShadows(light) {
			irradiance = irradiance.Add(c.Color)
			continue
		}

		cosTheta := normal.Dot(c.Direction)
		if cosTheta <= 0 {
			continue
		}
		if w.shadowed(hit, c, stats) {
			continue
		}

		irradiance = irradiance.Add(c.Color.Multiply(cosTheta))
		if cosAlpha := mirror.Dot(c.Direction); cosAlpha > 0 {
			highlight = highlight.Add(c.Color.Multiply(math.Pow(cosAlpha, props.Shininess)))
		}
	}

	diffuse := base.MultiplyColor(props.Diffuse).MultiplyColor(irradiance)
	return diffuse.Add(props.Specular.MultiplyColor(highlight))
}

// shadowed casts a shadow ray towards a light. Only objects nearer than the light occlude it.
func (w *WhittedIntegrator) shadowed(hit scene.HitRecord, c lights.Contribution, stats *RayStats) bool {
	origin := core.OffsetOrigin(hit.Point, hit.Normal, c.Direction)
	shadowRay, err := core.NewRay(origin, c.Direction)
	if err != nil {
		stats.Degenerate++
		return true
	}
	stats.Shadow++
	return w.scene.Occluded(shadowRay, c.Distance)
}

func (w *WhittedIntegrator) reflectedColor(ray core.Ray, hit scene.HitRecord, depth int, stats *RayStats) core.Color {
	direction := ray.Direction.Reflect(hit.Normal)
	reflectedRay, err := core.NewRay(core.OffsetOrigin(hit.Point, hit.Normal, direction), direction)
	if err != nil {
		stats.Degenerate++
		return core.Black()
	}
	stats.Reflected++
	return w.Trace(reflectedRay, depth+1, stats)
}

// transmittedColor follows the refracted ray and mixes in the mirror color by
// the Fresnel reflectance. Under total internal reflection it is the mirror color.
func (w *WhittedIntegrator) transmittedColor(ray core.Ray, hit scene.HitRecord, t *material.Transmission, reflected core.Color, depth int, stats *RayStats) core.Color {
	// Against the normal means entering the object from the surrounding medium
	n1, n2 := w.settings.MediumIndex, t.Index
	if ray.Direction.Dot(hit.Normal) > 0 {
		n1, n2 = n2, n1
	}

	refraction, ok := ray.Direction.Refract(hit.Normal, n1, n2)
	if !ok {
		return reflected
	}

	direction := refraction.Direction
	refractedRay, err := core.NewRay(core.OffsetOrigin(hit.Point, hit.Normal, direction), direction)
	if err != nil {
		stats.Degenerate++
		return reflected
	}
	stats.Transmitted++
	refracted := w.Trace(refractedRay, depth+1, stats)

	return refracted.Blend(reflected, refraction.Reflectance)
}
