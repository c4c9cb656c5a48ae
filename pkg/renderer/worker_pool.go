package renderer

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// BandResult reports a finished band
type BandResult struct {
	Band  Band
	Stats integrator.RayStats
}

// WorkerPool renders bands in parallel. Bands never overlap, so workers share
// the frame without locking.
type WorkerPool struct {
	numWorkers int
	renderer   *BandRenderer
	frame      *Frame
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *BandRenderer, frame *Frame, numWorkers int) *WorkerPool {
	return &WorkerPool{
		numWorkers: max(1, numWorkers),
		renderer:   renderer,
		frame:      frame,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders all bands and returns the merged ray statistics. onDone, if not
// nil, is called once per finished band, never concurrently. When ctx is
// cancelled no further bands are started and ctx.Err() is returned.
func (wp *WorkerPool) Run(ctx context.Context, bands []Band, onDone func(BandResult)) (integrator.RayStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	tasks := make(chan Band)

	g.Go(func() error {
		defer close(tasks)
		for _, band := range bands {
			select {
			case tasks <- band:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var (
		mu    sync.Mutex
		total integrator.RayStats
	)
	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for band := range tasks {
				if err := ctx.Err(); err != nil {
					return err
				}
				stats := wp.renderer.RenderBand(band.Bounds, wp.frame)

				mu.Lock()
				total.Merge(stats)
				if onDone != nil {
					onDone(BandResult{Band: band, Stats: stats})
				}
				mu.Unlock()
			}
			return nil
		})
	}

	err := g.Wait()
	return total, err
}
