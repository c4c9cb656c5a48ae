package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

func TestRenderStats_RaysPerSecond(t *testing.T) {
	tests := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{
			name:     "zero duration",
			stats:    RenderStats{Rays: integrator.RayStats{Primary: 100}},
			expected: 0,
		},
		{
			name: "counts every ray kind except degenerate",
			stats: RenderStats{
				Rays:     integrator.RayStats{Primary: 100, Shadow: 50, Reflected: 30, Transmitted: 20, Degenerate: 7},
				Duration: 2 * time.Second,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.RaysPerSecond(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f rays/s, got %f", tt.expected, got)
			}
		})
	}
}
