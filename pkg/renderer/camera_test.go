package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

func TestCamera_ScreenHalfExtent(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
	}{
		{"Unit distance", 1},
		{"Default distance", 50},
		{"Far screen", 1234.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), tt.distance)

			// A 90 degree field of view puts the screen edge as far out as the screen is away
			if half := camera.ScreenHalfExtent(); math.Abs(half-tt.distance) > 1e-9*tt.distance {
				t.Errorf("Expected half extent %f, got %f", tt.distance, half)
			}
		})
	}
}

func TestCamera_RayDirection(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(40, 50, 10),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 0),
		50,
	)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"Center", 0, 0, core.NewVec3(0, 0, 1)},
		{"Right edge", 1, 0, core.NewVec3(1, 0, 1).Normalize()},
		{"Up edge follows the up vector", 0, 1, core.NewVec3(0, -1, 1).Normalize()},
		{"Corner", -1, -1, core.NewVec3(-1, 1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := camera.RayDirection(tt.u, tt.v)
			if dir.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, dir)
			}
			if math.Abs(dir.Length()-1) > 1e-12 {
				t.Errorf("Expected unit direction, got length %f", dir.Length())
			}
		})
	}

	ray := camera.GetRay(0, 0)
	if ray.Origin != camera.Position {
		t.Errorf("Expected ray to start at the camera, got %v", ray.Origin)
	}
}

func TestCamera_Validate(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), 50)
	if err := camera.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	camera.Distance = -1
	if err := camera.Validate(); !errors.Is(err, core.ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
}
