package renderer

import (
	"runtime"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Config contains renderer settings that do not belong to the scene
type Config struct {
	NumWorkers int // Number of parallel workers (0 = auto-detect)
	BandHeight int // Rows per unit of work handed to a worker
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: runtime.NumCPU(),
		BandHeight: 8,
	}
}

// Validate checks the configuration, filling in auto-detected values
func (c Config) Validate() (Config, error) {
	if c.NumWorkers < 0 {
		return c, core.NewConfigurationError("workers", "must not be negative, got %d", c.NumWorkers)
	}
	if c.NumWorkers == 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	if c.BandHeight <= 0 {
		return c, core.NewConfigurationError("band_height", "must be positive, got %d", c.BandHeight)
	}
	return c, nil
}
