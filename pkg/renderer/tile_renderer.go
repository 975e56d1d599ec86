package renderer

import (
	"image"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// sampleOffset is a sub-pixel position relative to the pixel center
type sampleOffset struct {
	dx, dy float64
}

var (
	centerSample       = []sampleOffset{{0, 0}}
	antialiasedSamples = []sampleOffset{{-0.25, 0.25}, {0.25, 0.25}, {0.25, -0.25}, {-0.25, -0.25}}
)

// TileRenderer renders rectangular pixel regions through the camera
type TileRenderer struct {
	raytracer  *Raytracer
	halfWidth  float64
	halfHeight float64
	samples    []sampleOffset
}

// NewTileRenderer creates a tile renderer for an image of the given size
func NewTileRenderer(raytracer *Raytracer, width, height int) *TileRenderer {
	samples := centerSample
	if raytracer.config.Antialiasing {
		samples = antialiasedSamples
	}

	return &TileRenderer{
		raytracer:  raytracer,
		halfWidth:  float64(width) / 2,
		halfHeight: float64(height) / 2,
		samples:    samples,
	}
}

// RenderTileBounds renders pixels within the specified bounds into fb.
// Bounds of concurrent calls must not overlap.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer) (RenderStats, error) {
	stats := RenderStats{Chunks: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel, err := tr.RenderPixel(x, y)
			if err != nil {
				return stats, err
			}
			fb.Set(x, y, pixel)

			stats.TotalPixels++
			stats.TotalSamples += len(tr.samples)
		}
	}

	return stats, nil
}

// RenderPixel averages the samples taken for the pixel at column x, row y
func (tr *TileRenderer) RenderPixel(x, y int) (core.Color, error) {
	camera := tr.raytracer.camera
	colorAccum := core.Vec3{}

	for _, sample := range tr.samples {
		u, v := tr.screenCoordinates(x, y, sample)
		ray := camera.GetRay(u, v)

		pixel := tr.raytracer.ColorAt(ray.Origin, ray.Direction, MaxBounces)
		colorAccum = colorAccum.Add(pixel.ToVec3())
	}

	average, err := colorAccum.Divide(float64(len(tr.samples)))
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColorFromVec3(average), nil
}

// screenCoordinates maps a pixel sample to [-1, 1] screen coordinates, with the
// image center at (0, 0)
func (tr *TileRenderer) screenCoordinates(x, y int, sample sampleOffset) (u, v float64) {
	u = (float64(x) + 0.5 + sample.dx - tr.halfWidth) / tr.halfWidth
	v = (float64(y) + 0.5 + sample.dy - tr.halfHeight) / tr.halfHeight
	return u, v
}
