package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Framebuffer is a row-major grid of pixels
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidResolution, width, height)
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}, nil
}

// At returns the pixel at column x, row y
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.Pixels[y*fb.Width+x]
}

// Set writes the pixel at column x, row y
func (fb *Framebuffer) Set(x, y int, c core.Color) {
	fb.Pixels[y*fb.Width+x] = c
}

// Bounds returns the pixel rectangle covered by the framebuffer
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Equal reports whether both framebuffers hold identical pixels
func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	if fb.Width != other.Width || fb.Height != other.Height {
		return false
	}
	for i := range fb.Pixels {
		if fb.Pixels[i] != other.Pixels[i] {
			return false
		}
	}
	return true
}

// Image converts the framebuffer to an opaque RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.At(x, y).RGBA())
		}
	}
	return img
}
