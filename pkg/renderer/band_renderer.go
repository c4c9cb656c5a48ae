package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Band is a horizontal strip of rows rendered by a single worker
type Band struct {
	ID     int
	Bounds image.Rectangle
}

// NewBands splits an image into bands of at most bandHeight rows, top to bottom
func NewBands(width, height, bandHeight int) []Band {
	var bands []Band
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{
			ID:     len(bands),
			Bounds: image.Rect(0, y, width, min(y+bandHeight, height)),
		})
	}
	return bands
}

// BandRenderer renders pixels with regular-grid super-sampling
type BandRenderer struct {
	camera     *geometry.Camera
	integrator integrator.Integrator
	samples    int // Samples per pixel axis
}

// NewBandRenderer creates a band renderer that casts samples×samples rays per pixel
func NewBandRenderer(camera *geometry.Camera, integ integrator.Integrator, samples int) *BandRenderer {
	return &BandRenderer{
		camera:     camera,
		integrator: integ,
		samples:    max(1, samples),
	}
}

// RenderBand renders every pixel within bounds into the frame
func (br *BandRenderer) RenderBand(bounds image.Rectangle, frame *Frame) integrator.RayStats {
	var stats integrator.RayStats
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			frame.Set(x, y, br.SamplePixel(x, y, &stats))
		}
	}
	return stats
}

// SamplePixel averages an N×N grid of rays through the pixel at sub-pixel
// offsets (i+0.5)/N and clamps the result to [0,1]
func (br *BandRenderer) SamplePixel(x, y int, stats *integrator.RayStats) core.Color {
	n := br.samples
	var sum core.Color
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			px := float64(x) + (float64(i)+0.5)/float64(n)
			py := float64(y) + (float64(j)+0.5)/float64(n)
			ray, err := br.camera.GetRay(px, py)
			if err != nil {
				stats.Degenerate++
				continue
			}
			sum = sum.Add(br.integrator.RayColor(ray, stats))
		}
	}
	return sum.Multiply(1/float64(n*n)).Clamp(0, 1)
}
