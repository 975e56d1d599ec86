package scene

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

// SceneConfig contains the image and camera settings shared by the built-in scenes
type SceneConfig struct {
	Width          int     // Image width in pixels
	Height         int     // Image height in pixels
	CameraDistance float64 // Distance from the camera to the screen plane
	CameraZ        float64 // Camera position along Z (default scene only)
}

// DefaultSceneConfig returns the settings used when none are given on the command line
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Width:          512,
		Height:         512,
		CameraDistance: 50,
		CameraZ:        10,
	}
}

// Validate checks that the configuration can produce an image
func (c SceneConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidResolution, c.Width, c.Height)
	}
	if c.CameraDistance <= 0 {
		return fmt.Errorf("%w: distance to camera %g must be positive", core.ErrInvalidCamera, c.CameraDistance)
	}
	return nil
}

// NewDefaultScene creates the demo scene: a reflective floor slab, a mirror-like
// sphere, a small pink sphere behind a glass pane and a torus, lit by three lights
func NewDefaultScene(cfg SceneConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := NewScene(core.NewVec3(-300, -300, -300), core.NewVec3(300, 300, 300))
	if err != nil {
		return nil, err
	}

	s.AddLight(core.NewVec3(200, 200, 200))
	s.AddLight(core.NewVec3(-30, 30, 30))
	s.AddLight(core.NewVec3(50, 130, 50))

	floor := geometry.NewBox(core.NewVec3(0, 20, 135), core.NewVec3(50, 10, 100))
	floor.MakeReflective(0.1)
	floor.SetDefaultColor(core.Red)

	darkGreen, err := core.Green.Divide(4)
	if err != nil {
		return nil, err
	}
	mirrorSphere := geometry.NewSphere(core.NewVec3(80, 70, 105), 40)
	mirrorSphere.MakeReflective(0.7)
	mirrorSphere.SetDefaultColor(darkGreen)

	pinkSphere := geometry.NewSphere(core.NewVec3(0, 50, 90), 20)
	pinkSphere.SetDefaultColor(core.LightPink)

	glassPane := geometry.NewBox(core.NewVec3(0, 50, 50), core.NewVec3(20, 20, 5))
	glassPane.MakeRefractive(0.5, 1.03)

	torus := geometry.NewTorus(core.NewVec3(50, 40, 60), 15, 3)

	s.AddShape(floor)
	s.AddShape(mirrorSphere)
	s.AddShape(pinkSphere)
	s.AddShape(glassPane)
	s.AddShape(torus)

	// Y points down the screen, so the camera's up vector is -Y
	camera := renderer.NewCamera(
		core.NewVec3(40, 50, cfg.CameraZ),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 0),
		cfg.CameraDistance,
	)
	if err := s.ConfigureCamera(camera, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	return s, nil
}
