package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a scene into a frame using a pool of band workers
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer for a scene using the Whitted integrator
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	config, err := config.Validate()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integrator.NewWhittedIntegrator(s),
		config:     config,
		logger:     logger,
	}, nil
}

// Render traces every pixel of the scene camera. The returned frame holds
// colors clamped to [0,1].
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	camera := rt.scene.Camera()
	settings := rt.scene.Settings()
	width, height := camera.Width(), camera.Height()

	frame := NewFrame(width, height)
	bands := NewBands(width, height, rt.config.BandHeight)
	bandRenderer := NewBandRenderer(camera, rt.integrator, settings.AliasingLimit)
	pool := NewWorkerPool(bandRenderer, frame, rt.config.NumWorkers)

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: settings.AliasingLimit * settings.AliasingLimit,
		Bands:           len(bands),
		Workers:         pool.NumWorkers(),
	}

	rt.logger.Printf("Rendering %dx%d (%d samples/pixel, reflection limit %d) with %d workers...\n",
		width, height, stats.SamplesPerPixel, settings.ReflectionLimit, stats.Workers)

	// Report progress roughly every 10% of bands
	step := max(1, len(bands)/10)
	done := 0
	start := time.Now()
	rays, err := pool.Run(ctx, bands, func(BandResult) {
		done++
		if done%step == 0 || done == len(bands) {
			rt.logger.Printf("Progress: %d/%d bands (%.0f%%)\n", done, len(bands), 100*float64(done)/float64(len(bands)))
		}
	})
	stats.Rays = rays
	stats.Duration = time.Since(start)

	if err != nil {
		return nil, stats, fmt.Errorf("render aborted after %d/%d bands: %w", done, len(bands), err)
	}

	rt.logger.Printf("Render completed in %v: %d primary, %d shadow, %d reflected, %d transmitted rays (%d degenerate)\n",
		stats.Duration, rays.Primary, rays.Shadow, rays.Reflected, rays.Transmitted, rays.Degenerate)

	return frame, stats, nil
}

// Render is a convenience wrapper that renders a scene with the given config
func Render(ctx context.Context, s *scene.Scene, config Config, logger core.Logger) (*Frame, RenderStats, error) {
	rt, err := NewRaytracer(s, config, logger)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return rt.Render(ctx)
}
