package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// sceneBuilder collects objects and lights for a test scene
type sceneBuilder struct {
	t        *testing.T
	lights   []lights.Light
	objects  []scene.Object
	settings scene.Settings
}

func newSceneBuilder(t *testing.T) *sceneBuilder {
	return &sceneBuilder{t: t, settings: scene.DefaultSettings()}
}

func (b *sceneBuilder) light(l lights.Light, err error) *sceneBuilder {
	b.t.Helper()
	if err != nil {
		b.t.Fatalf("Invalid test light: %v", err)
	}
	b.lights = append(b.lights, l)
	return b
}

// shape starts an object; with completes it with a uniform material and white texture
func (b *sceneBuilder) shape(shape geometry.Shape, err error) pendingObject {
	b.t.Helper()
	if err != nil {
		b.t.Fatalf("Invalid test shape: %v", err)
	}
	return pendingObject{b: b, shape: shape}
}

type pendingObject struct {
	b     *sceneBuilder
	shape geometry.Shape
}

func (p pendingObject) with(diffuse core.Color, opts ...material.UniformOption) {
	p.b.t.Helper()
	mat, err := material.NewUniform(diffuse, core.Black(), opts...)
	if err != nil {
		p.b.t.Fatalf("Invalid test material: %v", err)
	}
	tex, err := material.NewUniformTexture(core.NewColor(1, 1, 1))
	if err != nil {
		p.b.t.Fatalf("Invalid test texture: %v", err)
	}
	p.b.objects = append(p.b.objects, scene.Object{Shape: p.shape, Material: mat, Texture: tex})
}

func (b *sceneBuilder) build() *WhittedIntegrator {
	b.t.Helper()
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Origin:          core.NewVec3(0, 0, 0),
		Forward:         core.NewVec3(1, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		FOV:             90,
		DistanceToImage: 1,
		Width:           9,
		Height:          9,
	})
	if err != nil {
		b.t.Fatalf("NewCamera failed: %v", err)
	}
	s, err := scene.New(camera, b.lights, b.objects, b.settings)
	if err != nil {
		b.t.Fatalf("scene.New failed: %v", err)
	}
	return NewWhittedIntegrator(s)
}

func testRay(t *testing.T, origin, direction core.Vec3) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("Invalid test ray: %v", err)
	}
	return ray
}

func TestWhitted_AmbientSphere(t *testing.T) {
	diffuse := core.NewColor(0.8, 0.2, 0.2)
	ambient := core.NewColor(0.1, 0.1, 0.1)

	b := newSceneBuilder(t)
	b.settings.Background = core.NewColor(0.5, 0.5, 0.5)
	b.light(lights.NewAmbient(ambient))
	b.shape(geometry.NewSphere(core.NewVec3(10, 0, 0), 5, false)).with(diffuse)
	integrator := b.build()

	// Center pixel of a camera at the origin looking down +x
	ray, err := integrator.scene.Camera().GetRay(4.5, 4.5)
	if err != nil {
		t.Fatalf("GetRay failed: %v", err)
	}

	var stats RayStats
	color := integrator.RayColor(ray, &stats)

	lit := diffuse.MultiplyColor(ambient)
	if color.Distance(lit) >= color.Distance(b.settings.Background) {
		t.Errorf("Expected %v to be closer to the ambient-lit sphere %v than to the background", color, lit)
	}
	if !color.ApproxEqual(lit, 1e-9) {
		t.Errorf("Expected exactly %v, got %v", lit, color)
	}
	if stats.Primary != 1 || stats.Shadow != 0 {
		t.Errorf("Ambient lights cast no shadow rays, got %+v", stats)
	}
}

func TestWhitted_TransparentShowsBackground(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	build := func(opts ...material.UniformOption) *WhittedIntegrator {
		b := newSceneBuilder(t)
		b.settings.Background = core.NewColor(0, 0, 1)
		b.settings.ReflectionLimit = 3
		b.light(lights.NewAmbient(core.NewColor(0.1, 0.1, 0.1)))
		b.shape(geometry.NewSphere(core.NewVec3(5, 0, 0), 1, false)).with(red, opts...)
		return b.build()
	}
	ray := testRay(t, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	var stats RayStats
	glass := build(material.WithTransparency(0.5, 1.5)).RayColor(ray, &stats)
	if glass.B <= 0.1 {
		t.Errorf("Expected blue background to show through the glass sphere, got %v", glass)
	}
	if glass.R <= 0 {
		t.Errorf("Expected the sphere's own color to remain visible, got %v", glass)
	}
	if stats.Transmitted == 0 {
		t.Error("Expected transmitted rays to be cast")
	}

	opaque := build().RayColor(ray, &RayStats{})
	if opaque.B != 0 {
		t.Errorf("Opaque sphere must hide the background, got %v", opaque)
	}
}

func TestWhitted_InvertedEnclosingSphere(t *testing.T) {
	build := func(inverted bool) *WhittedIntegrator {
		b := newSceneBuilder(t)
		b.light(lights.NewPoint(core.NewVec3(1, 0, 0), core.NewColor(1, 1, 1), lights.FalloffNone))
		b.shape(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, inverted)).with(core.NewColor(0.5, 0.5, 0.5))
		return b.build()
	}
	ray := testRay(t, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	inside := build(true)
	hit, ok := inside.scene.NearestHit(ray)
	if !ok {
		t.Fatal("Camera inside an inverted sphere must see its surface")
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(-1, 0, 0), 1e-9) {
		t.Errorf("Expected inward normal (-1,0,0), got %v", hit.Normal)
	}

	color := inside.RayColor(ray, &RayStats{})
	if !color.ApproxEqual(core.NewColor(0.5, 0.5, 0.5), 1e-9) {
		t.Errorf("Expected the light inside to illuminate the inner surface fully, got %v", color)
	}

	// Without inversion the normal faces away from the light inside
	if outside := build(false).RayColor(ray, &RayStats{}); !outside.IsBlack() {
		t.Errorf("Expected unlit surface for an outward-facing sphere, got %v", outside)
	}
}

func TestWhitted_HardShadow(t *testing.T) {
	build := func(lightPos core.Vec3) *WhittedIntegrator {
		b := newSceneBuilder(t)
		b.light(lights.NewAmbient(core.NewColor(0.1, 0.1, 0.1)))
		b.light(lights.NewPoint(lightPos, core.NewColor(1, 1, 1), lights.FalloffNone))
		b.shape(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), false)).with(core.NewColor(1, 1, 1))
		b.shape(geometry.NewSphere(core.NewVec3(0, 2, 0), 1, false)).with(core.NewColor(1, 1, 1))
		return b.build()
	}
	down := testRay(t, core.NewVec3(0, 0.5, 0), core.NewVec3(0, -1, 0))

	var stats RayStats
	blocked := build(core.NewVec3(0, 5, 0)).RayColor(down, &stats)
	if !blocked.ApproxEqual(core.NewColor(0.1, 0.1, 0.1), 1e-9) {
		t.Errorf("Expected only ambient light under the sphere, got %v", blocked)
	}
	if stats.Shadow != 1 {
		t.Errorf("Expected one shadow ray, got %d", stats.Shadow)
	}

	lit := build(core.NewVec3(5, 5, 0)).RayColor(down, &RayStats{})
	want := 0.1 + 1/math.Sqrt2
	if math.Abs(lit.R-want) > 1e-9 {
		t.Errorf("Expected ambient + cos(45°) = %f, got %f", want, lit.R)
	}
}

func TestWhitted_RecursionWorkGrowsWithLimit(t *testing.T) {
	ray := testRay(t, core.NewVec3(0, 0, 0), core.NewVec3(1, 0.3, 0.1))

	var previous int64 = -1
	for limit := 0; limit <= 6; limit++ {
		b := newSceneBuilder(t)
		b.settings.ReflectionLimit = limit
		b.light(lights.NewAmbient(core.NewColor(0.2, 0.2, 0.2)))
		b.shape(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, true)).with(core.NewColor(1, 1, 1), material.WithReflectivity(1))

		var stats RayStats
		b.build().RayColor(ray, &stats)

		if limit == 0 && stats.Recursive() != 0 {
			t.Errorf("Expected no recursive rays at limit 0, got %d", stats.Recursive())
		}
		// A closed mirror always has something to hit, so every level is traced
		if stats.Reflected != int64(limit) {
			t.Errorf("Limit %d: expected %d reflected rays, got %d", limit, limit, stats.Reflected)
		}
		if stats.Recursive() < previous {
			t.Errorf("Limit %d: recursive rays decreased from %d to %d", limit, previous, stats.Recursive())
		}
		previous = stats.Recursive()
	}
}

func TestWhitted_TraceBeyondLimitIsBlack(t *testing.T) {
	b := newSceneBuilder(t)
	b.settings.Background = core.NewColor(1, 1, 1)
	b.settings.ReflectionLimit = 2
	integrator := b.build()
	ray := testRay(t, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if c := integrator.Trace(ray, 2, &RayStats{}); c != b.settings.Background {
		t.Errorf("Expected background at the limit, got %v", c)
	}
	if c := integrator.Trace(ray, 3, &RayStats{}); !c.IsBlack() {
		t.Errorf("Expected black beyond the limit, got %v", c)
	}
}

func TestWhitted_MediumIndexMatchingMaterial(t *testing.T) {
	// A sphere with the same index as the surrounding medium does not bend or reflect light
	b := newSceneBuilder(t)
	b.settings.Background = core.NewColor(0, 1, 0)
	b.settings.ReflectionLimit = 3
	b.settings.MediumIndex = 1.33
	b.shape(geometry.NewSphere(core.NewVec3(5, 0, 0), 1, false)).with(core.Black(), material.WithTransparency(1, 1.33))
	integrator := b.build()

	color := integrator.RayColor(testRay(t, core.NewVec3(0, 0.3, 0), core.NewVec3(1, 0, 0)), &RayStats{})
	if !color.ApproxEqual(core.NewColor(0, 1, 0), 1e-9) {
		t.Errorf("Expected an index-matched sphere to be invisible, got %v", color)
	}
}

func TestWhitted_LightAtHitPointIsAbsorbed(t *testing.T) {
	diffuse := core.NewColor(0.8, 0.2, 0.2)
	ambient := core.NewColor(0.1, 0.1, 0.1)

	// The ray meets the sphere exactly at (5,0,0), where the point light sits
	b := newSceneBuilder(t)
	b.light(lights.NewAmbient(ambient))
	b.light(lights.NewPoint(core.NewVec3(5, 0, 0), core.NewColor(1, 1, 1), lights.FalloffQuadratic))
	b.shape(geometry.NewSphere(core.NewVec3(10, 0, 0), 5, false)).with(diffuse)
	integrator := b.build()

	var stats RayStats
	color := integrator.RayColor(testRay(t, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), &stats)

	for _, v := range [3]float64{color.R, color.G, color.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Expected a finite color, got %v", color)
		}
	}
	if lit := diffuse.MultiplyColor(ambient); !color.ApproxEqual(lit, 1e-12) {
		t.Errorf("Expected only the ambient term %v, got %v", lit, color)
	}
	if stats.Shadow != 0 || stats.Degenerate != 0 {
		t.Errorf("Expected no shadow ray for a light without direction, got %+v", stats)
	}
}

func TestRayStats_Merge(t *testing.T) {
	a := RayStats{Primary: 1, Shadow: 2, Reflected: 3, Transmitted: 4, Degenerate: 5}
	a.Merge(RayStats{Primary: 10, Shadow: 20, Reflected: 30, Transmitted: 40, Degenerate: 50})

	want := RayStats{Primary: 11, Shadow: 22, Reflected: 33, Transmitted: 44, Degenerate: 55}
	if a != want {
		t.Errorf("Expected %+v, got %+v", want, a)
	}
	if a.Total() != 110 || a.Recursive() != 77 {
		t.Errorf("Unexpected totals: total=%d recursive=%d", a.Total(), a.Recursive())
	}
}

func BenchmarkWhitted_RayColor(b *testing.B) {
	s, err := scene.NewDefaultScene()
	if err != nil {
		b.Fatalf("NewDefaultScene failed: %v", err)
	}
	integrator := NewWhittedIntegrator(s)
	ray, err := s.Camera().GetRay(200, 150)
	if err != nil {
		b.Fatalf("GetRay failed: %v", err)
	}
	var stats RayStats
	for i := 0; i < b.N; i++ {
		integrator.RayColor(ray, &stats)
	}
}
