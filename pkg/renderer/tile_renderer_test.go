package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
)

func TestTileRenderer_ScreenCoordinates(t *testing.T) {
	raytracer := newTestRaytracer(newMockScene(nil))
	tr := NewTileRenderer(raytracer, 64, 32)

	tests := []struct {
		name      string
		x, y      int
		sample    sampleOffset
		expectedU float64
		expectedV float64
	}{
		{"Top left center", 0, 0, sampleOffset{}, -63.0 / 64, -31.0 / 32},
		{"Bottom right center", 63, 31, sampleOffset{}, 63.0 / 64, 31.0 / 32},
		{"Left of middle", 31, 15, sampleOffset{}, -1.0 / 64, -1.0 / 32},
		{"Quarter offset", 32, 16, sampleOffset{dx: 0.25, dy: -0.25}, 0.75 / 32, 0.25 / 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := tr.screenCoordinates(tt.x, tt.y, tt.sample)
			if math.Abs(u-tt.expectedU) > 1e-12 || math.Abs(v-tt.expectedV) > 1e-12 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.expectedU, tt.expectedV, u, v)
			}
		})
	}
}

func TestTileRenderer_SampleCount(t *testing.T) {
	scene := newMockScene(nil)

	tests := []struct {
		name         string
		antialiasing bool
		expected     int
	}{
		{"Center sample only", false, 1},
		{"Four sub-pixel samples", true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raytracer := NewRaytracer(scene, RenderConfig{NumWorkers: 1, Antialiasing: tt.antialiasing}, nil)
			fb, _ := NewFramebuffer(8, 8)
			tr := NewTileRenderer(raytracer, fb.Width, fb.Height)

			stats, err := tr.RenderTileBounds(image.Rect(0, 2, 8, 4), fb)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if stats.TotalPixels != 16 {
				t.Errorf("Expected 16 pixels, got %d", stats.TotalPixels)
			}
			if stats.TotalSamples != 16*tt.expected {
				t.Errorf("Expected %d samples, got %d", 16*tt.expected, stats.TotalSamples)
			}

			// Only rows inside the bounds are written
			if fb.At(0, 2) != BackgroundColor || fb.At(7, 3) != BackgroundColor {
				t.Error("Expected rendered rows to hold the background color")
			}
			if fb.At(0, 0) != core.Black || fb.At(7, 4) != core.Black {
				t.Error("Expected rows outside the bounds to stay untouched")
			}
		})
	}
}

func TestTileRenderer_AntialiasingAveragesSamples(t *testing.T) {
	// A box edge through the middle of a pixel: two samples hit the box, two miss
	box := geometry.NewBox(core.NewVec3(-50, 0, 0), core.NewVec3(50, 50, 1))
	scene := newMockScene([]geometry.Shape{box})

	raytracer := NewRaytracer(scene, RenderConfig{NumWorkers: 1, Antialiasing: true}, nil)
	tr := NewTileRenderer(raytracer, 1, 1)

	// The single pixel is centered on the screen with samples at u = +-0.5
	pixel, err := tr.RenderPixel(0, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Samples: gray (40,40,40) twice and blue (0,0,255) twice, truncated
	expected := core.NewColor(20, 20, 127)
	if pixel != expected {
		t.Errorf("Expected averaged color %v, got %v", expected, pixel)
	}
}

func TestTileRenderer_RenderPixelFollowsCameraRay(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 10)
	scene := newMockScene([]geometry.Shape{sphere})
	raytracer := newTestRaytracer(scene)
	tr := NewTileRenderer(raytracer, 7, 5)

	for _, p := range [][2]int{{3, 2}, {0, 0}, {6, 4}} {
		u, v := tr.screenCoordinates(p[0], p[1], sampleOffset{})
		ray := scene.camera.GetRay(u, v)
		expected := raytracer.ColorAt(ray.Origin, ray.Direction, MaxBounces)

		pixel, err := tr.RenderPixel(p[0], p[1])
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if pixel != expected {
			t.Errorf("Pixel %v: expected %v, got %v", p, expected, pixel)
		}
	}
}
