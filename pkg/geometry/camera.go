package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Origin          core.Vec3 // Eye position
	Forward         core.Vec3 // Viewing direction (normalized internally)
	Up              core.Vec3 // Up hint; must not be parallel to Forward
	FOV             float64   // Field of view in degrees, spanning the longer image axis
	DistanceToImage float64   // Distance from the eye to the image plane
	Width           int       // Horizontal resolution in pixels
	Height          int       // Vertical resolution in pixels
}

// Camera maps pixel coordinates to primary rays through a virtual film
// centered DistanceToImage in front of the eye.
type Camera struct {
	config     CameraConfig
	origin     core.Vec3
	forward    core.Vec3
	center     core.Vec3 // Center of the film
	horizontal core.Vec3 // Full film extent along the right axis
	vertical   core.Vec3 // Full film extent along the up axis
}

// NewCamera creates a camera, validating and orthonormalizing its basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if !config.Origin.IsFinite() {
		return nil, core.NewConfigurationError("origin", "must be finite, got %v", config.Origin)
	}
	forward, err := config.Forward.Normalize()
	if err != nil {
		return nil, core.NewConfigurationError("forward", "must be a non-zero vector, got %v", config.Forward)
	}
	upHint, err := config.Up.Normalize()
	if err != nil {
		return nil, core.NewConfigurationError("up", "must be a non-zero vector, got %v", config.Up)
	}
	cross := forward.Cross(upHint)
	if cross.Length() < 1e-9 {
		return nil, core.NewConfigurationError("up", "must not be parallel to forward (%v)", config.Forward)
	}
	right, _ := cross.Normalize()
	up := right.Cross(forward)

	if !(config.FOV > 0 && config.FOV < 180) {
		return nil, core.NewConfigurationError("fov", "must be in (0, 180) degrees, got %v", config.FOV)
	}
	if !(config.DistanceToImage > 0) || math.IsInf(config.DistanceToImage, 0) {
		return nil, core.NewConfigurationError("distance_to_image", "must be a positive number, got %v", config.DistanceToImage)
	}
	if config.Width <= 0 {
		return nil, core.NewConfigurationError("x", "resolution must be positive, got %d", config.Width)
	}
	if config.Height <= 0 {
		return nil, core.NewConfigurationError("y", "resolution must be positive, got %d", config.Height)
	}

	// The longer axis spans the full field of view
	screen := 2 * math.Tan(config.FOV*math.Pi/360.0) * config.DistanceToImage
	filmWidth, filmHeight := screen, screen
	if config.Width >= config.Height {
		filmHeight = screen * float64(config.Height) / float64(config.Width)
	} else {
		filmWidth = screen * float64(config.Width) / float64(config.Height)
	}

	return &Camera{
		config:     config,
		origin:     config.Origin,
		forward:    forward,
		center:     config.Origin.Add(forward.Multiply(config.DistanceToImage)),
		horizontal: right.Multiply(filmWidth),
		vertical:   up.Multiply(filmHeight),
	}, nil
}

// GetRay returns the primary ray through continuous pixel coordinates (px, py),
// where (0,0) is the top-left corner of the image and (Width, Height) the bottom-right.
func (c *Camera) GetRay(px, py float64) (core.Ray, error) {
	return core.NewRay(c.origin, c.FilmPoint(px, py).Subtract(c.origin))
}

// FilmPoint returns the point on the image plane for continuous pixel coordinates
func (c *Camera) FilmPoint(px, py float64) core.Vec3 {
	dx := px/float64(c.config.Width) - 0.5
	dy := 0.5 - py/float64(c.config.Height)
	return c.center.Add(c.horizontal.Multiply(dx)).Add(c.vertical.Multiply(dy))
}

// Width returns the horizontal resolution
func (c *Camera) Width() int { return c.config.Width }

// Height returns the vertical resolution
func (c *Camera) Height() int { return c.config.Height }

// Origin returns the eye position
func (c *Camera) Origin() core.Vec3 { return c.origin }

// Forward returns the normalized viewing direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }
