package renderer

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Frame is the rendered pixel grid, row-major with (0,0) at the top-left.
// Workers write disjoint rows, so no locking is needed while rendering.
type Frame struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.pixels[y*f.Width+x] = c
}

// ToRGBA converts the frame to an 8-bit image, clamping every channel to [0,1]
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
