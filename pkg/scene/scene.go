package scene

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/loaders"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

// Scene holds the shapes, lights and camera of a render together with the
// framebuffer the camera draws into
type Scene struct {
	bounds      core.AABB
	shapes      []geometry.Shape
	lights      []lights.PointLight
	camera      renderer.Camera
	framebuffer *renderer.Framebuffer // nil until the camera is configured
	logger      core.Logger
}

// NewScene creates an empty scene. Rays that leave the bounds are treated as misses.
func NewScene(boundsMin, boundsMax core.Vec3) (*Scene, error) {
	bounds := core.NewAABB(boundsMin, boundsMax)
	if !bounds.IsValid() {
		return nil, fmt.Errorf("%w: min %v, max %v", core.ErrInvalidBounds, boundsMin, boundsMax)
	}

	return &Scene{
		bounds: bounds,
		shapes: make([]geometry.Shape, 0),
		lights: make([]lights.PointLight, 0),
		logger: renderer.NewNopLogger(),
	}, nil
}

// SetLogger sets the logger used for render and export progress
func (s *Scene) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = renderer.NewNopLogger()
	}
	s.logger = logger
}

// AddLight adds a point light at position
func (s *Scene) AddLight(position core.Vec3) {
	s.lights = append(s.lights, lights.NewPointLight(position))
}

// AddShape adds a shape. Shapes are tested in the order they were added.
func (s *Scene) AddShape(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
}

// ConfigureCamera sets the camera and allocates a width x height framebuffer
func (s *Scene) ConfigureCamera(camera renderer.Camera, width, height int) error {
	if err := camera.Validate(); err != nil {
		return err
	}

	fb, err := renderer.NewFramebuffer(width, height)
	if err != nil {
		return err
	}

	s.camera = camera
	s.framebuffer = fb
	return nil
}

// Render traces every pixel of the framebuffer
func (s *Scene) Render(config renderer.RenderConfig) (renderer.RenderStats, error) {
	if s.framebuffer == nil {
		return renderer.RenderStats{}, core.ErrCameraNotConfigured
	}

	raytracer := renderer.NewRaytracer(s, config, s.logger)
	return raytracer.RenderPass(s.framebuffer)
}

// SaveImage writes the framebuffer to path
func (s *Scene) SaveImage(path string) error {
	if s.framebuffer == nil {
		return core.ErrCameraNotConfigured
	}

	s.logger.Printf("Start Draw\n")
	if err := loaders.SaveImage(path, s.framebuffer.Image()); err != nil {
		return fmt.Errorf("failed to write image %s: %w", path, err)
	}
	s.logger.Printf("End Draw\n")
	return nil
}

// GetCamera returns the configured camera
func (s *Scene) GetCamera() renderer.Camera { return s.camera }

// GetBounds returns the box outside which rays count as misses
func (s *Scene) GetBounds() core.AABB { return s.bounds }

// GetShapes returns the shapes in insertion order
func (s *Scene) GetShapes() []geometry.Shape { return s.shapes }

// GetLights returns the point lights
func (s *Scene) GetLights() []lights.PointLight { return s.lights }

// Framebuffer returns the render target, or nil before ConfigureCamera
func (s *Scene) Framebuffer() *renderer.Framebuffer { return s.framebuffer }
