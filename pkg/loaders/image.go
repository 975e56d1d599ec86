package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// ImageData contains loaded image data as a row-major color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Color
}

// At returns the pixel at column x, row y
func (d *ImageData) At(x, y int) core.Color {
	return d.Pixels[y*d.Width+x]
}

// SaveImage encodes img to filename. The format follows the file extension:
// .bmp (or no extension) writes a 24-bit bitmap, .png writes PNG.
func SaveImage(filename string, img image.Image) error {
	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case "", ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	default:
		return fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}

// LoadImage loads a BMP, PNG or JPEG image and converts it to a color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
