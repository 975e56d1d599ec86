package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

func TestSceneConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*SceneConfig)
		expectedErr error
	}{
		{"Default", func(*SceneConfig) {}, nil},
		{"Zero width", func(c *SceneConfig) { c.Width = 0 }, core.ErrInvalidResolution},
		{"Negative height", func(c *SceneConfig) { c.Height = -3 }, core.ErrInvalidResolution},
		{"Zero camera distance", func(c *SceneConfig) { c.CameraDistance = 0 }, core.ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.expectedErr == nil && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestNewDefaultScene(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.CameraZ = -20
	cfg.CameraDistance = 75

	s, err := NewDefaultScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	camera := s.GetCamera()
	if camera.Position != core.NewVec3(40, 50, -20) {
		t.Errorf("Expected camera at (40,50,-20), got %v", camera.Position)
	}
	if camera.Distance != 75 || camera.Up != core.NewVec3(0, -1, 0) {
		t.Errorf("Unexpected camera %+v", camera)
	}
	if fb := s.Framebuffer(); fb.Width != 512 || fb.Height != 512 {
		t.Errorf("Expected 512x512 framebuffer, got %dx%d", fb.Width, fb.Height)
	}

	lights := s.GetLights()
	expectedLights := []core.Vec3{
		core.NewVec3(200, 200, 200),
		core.NewVec3(-30, 30, 30),
		core.NewVec3(50, 130, 50),
	}
	if len(lights) != len(expectedLights) {
		t.Fatalf("Expected %d lights, got %d", len(expectedLights), len(lights))
	}
	for i, pos := range expectedLights {
		if lights[i].Position != pos {
			t.Errorf("Light %d: expected %v, got %v", i, pos, lights[i].Position)
		}
	}

	shapes := s.GetShapes()
	if len(shapes) != 5 {
		t.Fatalf("Expected 5 shapes, got %d", len(shapes))
	}

	tests := []struct {
		name       string
		shape      geometry.Shape
		color      core.Color
		reflective bool
		refractive bool
	}{
		{"Floor", shapes[0], core.Red, true, false},
		{"Mirror sphere", shapes[1], core.NewColor(0, 63, 0), true, false},
		{"Pink sphere", shapes[2], core.LightPink, false, false},
		{"Glass pane", shapes[3], core.Gray, false, true},
		{"Torus", shapes[4], core.Gray, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shape.DefaultColor() != tt.color {
				t.Errorf("Expected color %v, got %v", tt.color, tt.shape.DefaultColor())
			}
			if tt.shape.IsReflective() != tt.reflective || tt.shape.IsRefractive() != tt.refractive {
				t.Errorf("Expected reflective=%v refractive=%v", tt.reflective, tt.refractive)
			}
		})
	}

	if k := shapes[1].ReflectCoefficient(); k != 0.7 {
		t.Errorf("Expected mirror sphere reflection 0.7, got %f", k)
	}
	if eta := shapes[3].RefractEta(); eta != 1.03 {
		t.Errorf("Expected glass eta 1.03, got %f", eta)
	}
}

func TestNewDefaultScene_Render(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.Width, cfg.Height = 48, 40

	render := func(workers int) *renderer.Framebuffer {
		s, err := NewDefaultScene(cfg)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, err := s.Render(renderer.RenderConfig{NumWorkers: workers, Antialiasing: true}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return s.Framebuffer()
	}

	fb := render(1)

	covered := 0
	for _, c := range fb.Pixels {
		if c != renderer.BackgroundColor {
			covered++
		}
	}
	if covered == 0 {
		t.Error("Expected some shapes to be visible")
	}

	if !fb.Equal(render(4)) {
		t.Error("Expected the same image regardless of worker count")
	}
}

func TestNewDefaultScene_InvalidConfig(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.Width = 0

	if _, err := NewDefaultScene(cfg); !errors.Is(err, core.ErrInvalidResolution) {
		t.Errorf("Expected ErrInvalidResolution, got %v", err)
	}
}

func TestNewSceneByName(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.Width, cfg.Height = 8, 8

	for _, name := range []string{"default", "sphere", " Sphere "} {
		t.Run(name, func(t *testing.T) {
			s, err := NewSceneByName(name, cfg)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.GetShapes()) == 0 {
				t.Error("Expected a populated scene")
			}
		})
	}

	if _, err := NewSceneByName("cornell", cfg); err == nil {
		t.Error("Expected error for an unknown scene")
	}

	scenes := ListScenes()
	if len(scenes) != 2 || scenes[0].ID != "default" || scenes[1].ID != "sphere" {
		t.Errorf("Expected default and sphere scenes in order, got %v", scenes)
	}
}
