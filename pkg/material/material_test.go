package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewUniform_Defaults(t *testing.T) {
	m, err := NewUniform(core.NewColor(0.5, 0.5, 0.5), core.NewColor(1, 1, 1))
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}
	p := m.Properties(core.NewVec3(0, 0, 0))

	if p.Reflectivity != 0 {
		t.Errorf("Expected default reflectivity 0, got %f", p.Reflectivity)
	}
	if p.Shininess != DefaultShininess {
		t.Errorf("Expected default shininess %f, got %f", DefaultShininess, p.Shininess)
	}
	if p.IsTransparent() {
		t.Error("Expected opaque material by default")
	}
	if p.LocalWeight() != 1 {
		t.Errorf("Expected local weight 1, got %f", p.LocalWeight())
	}
}

func TestNewUniform_Weights(t *testing.T) {
	m, err := NewUniform(core.NewColor(1, 0, 0), core.NewColor(0, 0, 0),
		WithReflectivity(0.3), WithTransparency(0.5, 1.5))
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}
	p := m.Properties(core.NewVec3(1, 2, 3))

	if !p.IsTransparent() || p.Transmission.Index != 1.5 {
		t.Fatalf("Expected transmission with index 1.5, got %+v", p.Transmission)
	}
	if math.Abs(p.LocalWeight()-0.2) > 1e-12 {
		t.Errorf("Expected local weight 0.2, got %f", p.LocalWeight())
	}
}

func TestNewUniform_Invalid(t *testing.T) {
	black := core.NewColor(0, 0, 0)
	tests := []struct {
		name  string
		opts  []UniformOption
		field string
	}{
		{"reflectivity above 1", []UniformOption{WithReflectivity(1.5)}, "reflectivity"},
		{"negative reflectivity", []UniformOption{WithReflectivity(-0.1)}, "reflectivity"},
		{"transparency above 1", []UniformOption{WithTransparency(2, 1.5)}, "transparency"},
		{"zero index", []UniformOption{WithTransparency(0.5, 0)}, "index"},
		{"weights exceed 1", []UniformOption{WithReflectivity(0.6), WithTransparency(0.6, 1.5)}, "transparency"},
		{"negative shininess", []UniformOption{WithShininess(-1)}, "shininess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUniform(black, black, tt.opts...)
			cfgErr, ok := err.(*core.ConfigurationError)
			if !ok {
				t.Fatalf("Expected *core.ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestUniformTexture_ColorAt(t *testing.T) {
	tex, err := NewUniformTexture(core.NewColor(0.1, 0.2, 0.3))
	if err != nil {
		t.Fatalf("NewUniformTexture failed: %v", err)
	}
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(-7, 3, 100)} {
		if got := tex.ColorAt(p); got != core.NewColor(0.1, 0.2, 0.3) {
			t.Errorf("Expected uniform color at %v, got %v", p, got)
		}
	}

	if _, err := NewUniformTexture(core.NewColor(math.NaN(), 0, 0)); !core.IsConfigurationError(err) {
		t.Errorf("Expected ConfigurationError for NaN channel, got %v", err)
	}
}
