package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int                 // Total number of pixels rendered
	SamplesPerPixel int                 // Rays cast per pixel (aliasing limit squared)
	Bands           int                 // Number of bands rendered
	Workers         int                 // Number of workers used
	Rays            integrator.RayStats // Rays cast, by kind
	Duration        time.Duration       // Wall-clock render time
}

// RaysPerSecond returns the overall ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rays.Total()) / s.Duration.Seconds()
}
