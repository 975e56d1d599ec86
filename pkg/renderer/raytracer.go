package renderer

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers   int  // Number of parallel workers, at least 1
	Antialiasing bool // Sample 4 sub-pixel offsets instead of the pixel center
}

// DefaultRenderConfig returns a single-threaded render without antialiasing
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:   1,
		Antialiasing: false,
	}
}

// Validate checks the configuration
func (c RenderConfig) Validate() error {
	if c.NumWorkers < 1 {
		return fmt.Errorf("%w: thread count must be at least 1, got %d", core.ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() Camera
	GetBounds() core.AABB
	GetShapes() []geometry.Shape
	GetLights() []lights.PointLight
}

// Raytracer marches and shades rays against a scene. The scene is read once at
// construction and never modified, so one Raytracer is shared by every worker.
type Raytracer struct {
	camera Camera
	bounds core.AABB
	shapes []geometry.Shape
	lights []lights.PointLight
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Raytracer{
		camera: scene.GetCamera(),
		bounds: scene.GetBounds(),
		shapes: scene.GetShapes(),
		lights: scene.GetLights(),
		config: config,
		logger: logger,
	}
}

// RenderPass fills every pixel of fb exactly once, spreading row chunks over the
// configured number of workers
func (rt *Raytracer) RenderPass(fb *Framebuffer) (RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return RenderStats{}, err
	}
	if err := rt.camera.Validate(); err != nil {
		return RenderStats{}, err
	}

	rt.logger.Printf("Start Trace\n")
	rt.logger.Printf("Threads number: %d\n", rt.config.NumWorkers)
	if rt.config.Antialiasing {
		rt.logger.Printf("Antialiasing enabled\n")
	} else {
		rt.logger.Printf("Antialiasing disabled\n")
	}

	tileRenderer := NewTileRenderer(rt, fb.Width, fb.Height)
	pool := NewWorkerPool(rt.config.NumWorkers, fb.Height)

	stats, err := pool.Run(fb.Bounds(), func(task ChunkTask) (RenderStats, error) {
		return tileRenderer.RenderTileBounds(task.Bounds, fb)
	})
	if err != nil {
		return RenderStats{}, fmt.Errorf("render pass failed: %w", err)
	}

	rt.logger.Printf("End Trace\n")
	return stats, nil
}
