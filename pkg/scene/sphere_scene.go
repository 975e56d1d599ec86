package scene

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

// NewSphereScene creates a single gray sphere of radius 10 at the origin, lit
// from above and viewed head-on. CameraZ is ignored.
func NewSphereScene(cfg SceneConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := NewScene(core.NewVec3(-300, -300, -300), core.NewVec3(300, 300, 300))
	if err != nil {
		return nil, err
	}

	s.AddLight(core.NewVec3(100, 100, 100))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 10))

	camera := renderer.NewCamera(
		core.NewVec3(0, 0, -50),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		cfg.CameraDistance,
	)
	if err := s.ConfigureCamera(camera, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	return s, nil
}
