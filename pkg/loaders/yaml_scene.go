package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// sceneFile mirrors the YAML scene description. Optional scalars are pointers
// so that an absent field can be told apart from a zero value.
type sceneFile struct {
	AliasingLimit   *int         `yaml:"aliasing_limit"`
	ReflectionLimit *int         `yaml:"reflection_limit"`
	Background      *colorSpec   `yaml:"background"`
	MediumIndex     *float64     `yaml:"medium_index"`
	Camera          *cameraSpec  `yaml:"camera"`
	Lights          lightsSpec   `yaml:"lights"`
	Objects         []objectSpec `yaml:"objects"`
}

// colorSpec channels are pointers so that an omitted channel is reported
// instead of read as zero
type colorSpec struct {
	R *float64 `yaml:"r"`
	G *float64 `yaml:"g"`
	B *float64 `yaml:"b"`
}

type cameraSpec struct {
	Origin          []float64 `yaml:"origin"`
	Forward         []float64 `yaml:"forward"`
	Up              []float64 `yaml:"up"`
	FOV             float64   `yaml:"fov"`
	DistanceToImage float64   `yaml:"distance_to_image"`
	X               int       `yaml:"x"`
	Y               int       `yaml:"y"`
}

type lightsSpec struct {
	Ambients     []ambientSpec     `yaml:"ambients"`
	Directionals []directionalSpec `yaml:"directionals"`
	Points       []pointSpec       `yaml:"points"`
	Spots        []spotSpec        `yaml:"spots"`
}

type ambientSpec struct {
	Color *colorSpec `yaml:"color"`
}

type directionalSpec struct {
	Direction []float64  `yaml:"direction"`
	Color     *colorSpec `yaml:"color"`
}

type pointSpec struct {
	Position []float64  `yaml:"position"`
	Color    *colorSpec `yaml:"color"`
	Falloff  string     `yaml:"falloff"`
}

type spotSpec struct {
	Position  []float64  `yaml:"position"`
	Direction []float64  `yaml:"direction"`
	FOV       float64    `yaml:"fov"`
	Color     *colorSpec `yaml:"color"`
	Falloff   string     `yaml:"falloff"`
}

type objectSpec struct {
	Shape    *shapeSpec    `yaml:"shape"`
	Material *materialSpec `yaml:"material"`
	Texture  *textureSpec  `yaml:"texture"`
}

// shapeSpec holds the union of every shape's fields, selected by Type
type shapeSpec struct {
	Type     string    `yaml:"type"`
	Inverted bool      `yaml:"inverted"`
	Center   []float64 `yaml:"center"` // sphere
	Radius   *float64  `yaml:"radius"` // sphere
	Point    []float64 `yaml:"point"`  // plane
	Normal   []float64 `yaml:"normal"` // plane
	A        []float64 `yaml:"a"`      // triangle
	B        []float64 `yaml:"b"`      // triangle
	C        []float64 `yaml:"c"`      // triangle
}

type materialSpec struct {
	Type         string     `yaml:"type"`
	Diffuse      *colorSpec `yaml:"diffuse"`
	Specular     *colorSpec `yaml:"specular"`
	Reflectivity *float64   `yaml:"reflectivity"`
	Transparency *float64   `yaml:"transparency"`
	Index        *float64   `yaml:"index"`
	Shininess    *float64   `yaml:"shininess"`
}

type textureSpec struct {
	Type  string     `yaml:"type"`
	Color *colorSpec `yaml:"color"`
}

// LoadScene reads a YAML scene description from a file
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from a YAML description. Malformed input, unknown
// fields and invalid values are all reported as *core.ConfigurationError.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file sceneFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.NewConfigurationError("", "empty scene description")
		}
		return nil, core.NewConfigurationError("", "%v", err)
	}

	return file.build()
}

func (f *sceneFile) build() (*scene.Scene, error) {
	settings := scene.DefaultSettings()
	if f.AliasingLimit != nil {
		settings.AliasingLimit = *f.AliasingLimit
	}
	if f.ReflectionLimit != nil {
		settings.ReflectionLimit = *f.ReflectionLimit
	}
	if f.Background != nil {
		background, err := color("background", f.Background)
		if err != nil {
			return nil, err
		}
		settings.Background = background
	}
	if f.MediumIndex != nil {
		settings.MediumIndex = *f.MediumIndex
	}

	if f.Camera == nil {
		return nil, core.NewConfigurationError("camera", "is required")
	}
	camera, err := f.Camera.build()
	if err != nil {
		return nil, core.WithFieldPrefix("camera", err)
	}

	sceneLights, err := f.Lights.build()
	if err != nil {
		return nil, core.WithFieldPrefix("lights", err)
	}

	objects := make([]scene.Object, 0, len(f.Objects))
	for i, spec := range f.Objects {
		obj, err := spec.build()
		if err != nil {
			return nil, core.WithFieldPrefix(fmt.Sprintf("objects[%d]", i), err)
		}
		objects = append(objects, obj)
	}

	return scene.New(camera, sceneLights, objects, settings)
}

// color converts a YAML color, reporting field when it or any channel is missing
func color(field string, c *colorSpec) (core.Color, error) {
	if c == nil {
		return core.Color{}, core.NewConfigurationError(field, "is required")
	}
	channels := []struct {
		name  string
		value *float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}}
	for _, ch := range channels {
		if ch.value == nil {
			return core.Color{}, core.NewConfigurationError(field+"."+ch.name, "is required")
		}
	}
	return core.NewColor(*c.R, *c.G, *c.B), nil
}

// vector converts a YAML sequence to a Vec3, reporting field when it is missing or malformed
func vector(field string, v []float64) (core.Vec3, error) {
	if v == nil {
		return core.Vec3{}, core.NewConfigurationError(field, "is required")
	}
	if len(v) != 3 {
		return core.Vec3{}, core.NewConfigurationError(field, "must have 3 components, got %d", len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func (c *cameraSpec) build() (*geometry.Camera, error) {
	origin, err := vector("origin", c.Origin)
	if err != nil {
		return nil, err
	}
	forward, err := vector("forward", c.Forward)
	if err != nil {
		return nil, err
	}
	up, err := vector("up", c.Up)
	if err != nil {
		return nil, err
	}
	return geometry.NewCamera(geometry.CameraConfig{
		Origin:          origin,
		Forward:         forward,
		Up:              up,
		FOV:             c.FOV,
		DistanceToImage: c.DistanceToImage,
		Width:           c.X,
		Height:          c.Y,
	})
}

func (l *lightsSpec) build() ([]lights.Light, error) {
	var result []lights.Light

	for i, spec := range l.Ambients {
		field := fmt.Sprintf("ambients[%d]", i)
		c, err := color("color", spec.Color)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		light, err := lights.NewAmbient(c)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		result = append(result, light)
	}

	for i, spec := range l.Directionals {
		field := fmt.Sprintf("directionals[%d]", i)
		direction, err := vector("direction", spec.Direction)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		c, err := color("color", spec.Color)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		light, err := lights.NewDirectional(direction, c)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		result = append(result, light)
	}

	for i, spec := range l.Points {
		field := fmt.Sprintf("points[%d]", i)
		position, err := vector("position", spec.Position)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		falloff, err := lights.ParseFalloff(spec.Falloff)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		c, err := color("color", spec.Color)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		light, err := lights.NewPoint(position, c, falloff)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		result = append(result, light)
	}

	for i, spec := range l.Spots {
		field := fmt.Sprintf("spots[%d]", i)
		position, err := vector("position", spec.Position)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		direction, err := vector("direction", spec.Direction)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		falloff, err := lights.ParseFalloff(spec.Falloff)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		c, err := color("color", spec.Color)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		light, err := lights.NewSpot(position, direction, spec.FOV, c, falloff)
		if err != nil {
			return nil, core.WithFieldPrefix(field, err)
		}
		result = append(result, light)
	}

	return result, nil
}

func (o *objectSpec) build() (scene.Object, error) {
	if o.Shape == nil {
		return scene.Object{}, core.NewConfigurationError("shape", "is required")
	}
	if o.Material == nil {
		return scene.Object{}, core.NewConfigurationError("material", "is required")
	}
	if o.Texture == nil {
		return scene.Object{}, core.NewConfigurationError("texture", "is required")
	}

	shape, err := o.Shape.build()
	if err != nil {
		return scene.Object{}, core.WithFieldPrefix("shape", err)
	}
	mat, err := o.Material.build()
	if err != nil {
		return scene.Object{}, core.WithFieldPrefix("material", err)
	}
	tex, err := o.Texture.build()
	if err != nil {
		return scene.Object{}, core.WithFieldPrefix("texture", err)
	}
	return scene.Object{Shape: shape, Material: mat, Texture: tex}, nil
}

func (s *shapeSpec) build() (geometry.Shape, error) {
	switch s.Type {
	case "sphere":
		center, err := vector("center", s.Center)
		if err != nil {
			return nil, err
		}
		if s.Radius == nil {
			return nil, core.NewConfigurationError("radius", "is required")
		}
		return geometry.NewSphere(center, *s.Radius, s.Inverted)
	case "plane":
		point, err := vector("point", s.Point)
		if err != nil {
			return nil, err
		}
		normal, err := vector("normal", s.Normal)
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(point, normal, s.Inverted)
	case "triangle":
		a, err := vector("a", s.A)
		if err != nil {
			return nil, err
		}
		b, err := vector("b", s.B)
		if err != nil {
			return nil, err
		}
		c, err := vector("c", s.C)
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangle(a, b, c, s.Inverted)
	case "":
		return nil, core.NewConfigurationError("type", "is required")
	default:
		return nil, core.NewConfigurationError("type", "unknown shape %q (want sphere, plane or triangle)", s.Type)
	}
}

func (m *materialSpec) build() (material.Material, error) {
	switch m.Type {
	case "uniform":
	case "":
		return nil, core.NewConfigurationError("type", "is required")
	default:
		return nil, core.NewConfigurationError("type", "unknown material %q (want uniform)", m.Type)
	}

	diffuse, err := color("diffuse", m.Diffuse)
	if err != nil {
		return nil, err
	}
	specular, err := color("specular", m.Specular)
	if err != nil {
		return nil, err
	}

	// Transparency and index only make sense together; neither is ever defaulted
	if m.Transparency != nil && m.Index == nil {
		return nil, core.NewConfigurationError("index", "is required when transparency is set")
	}
	if m.Index != nil && m.Transparency == nil {
		return nil, core.NewConfigurationError("transparency", "is required when index is set")
	}

	var opts []material.UniformOption
	if m.Reflectivity != nil {
		opts = append(opts, material.WithReflectivity(*m.Reflectivity))
	}
	if m.Transparency != nil {
		opts = append(opts, material.WithTransparency(*m.Transparency, *m.Index))
	}
	if m.Shininess != nil {
		opts = append(opts, material.WithShininess(*m.Shininess))
	}
	return material.NewUniform(diffuse, specular, opts...)
}

func (t *textureSpec) build() (material.Texture, error) {
	switch t.Type {
	case "uniform":
	case "":
		return nil, core.NewConfigurationError("type", "is required")
	default:
		return nil, core.NewConfigurationError("type", "unknown texture %q (want uniform)", t.Type)
	}
	c, err := color("color", t.Color)
	if err != nil {
		return nil, err
	}
	return material.NewUniformTexture(c)
}
