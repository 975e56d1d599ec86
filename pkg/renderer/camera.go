package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Camera looks along Direction at a virtual screen Distance units away.
// Direction, Up and Right are expected to be mutually orthogonal unit vectors.
type Camera struct {
	Position  core.Vec3
	Direction core.Vec3 // Forward axis
	Up        core.Vec3
	Right     core.Vec3
	Distance  float64 // Distance from the camera to the virtual screen
}

// NewCamera creates a camera
func NewCamera(position, direction, up, right core.Vec3, distance float64) Camera {
	return Camera{
		Position:  position,
		Direction: direction,
		Up:        up,
		Right:     right,
		Distance:  distance,
	}
}

// Validate checks that the camera can project onto its screen
func (c Camera) Validate() error {
	if c.Distance <= 0 {
		return fmt.Errorf("%w: screen distance must be positive, got %g", core.ErrInvalidCamera, c.Distance)
	}
	return nil
}

// ScreenHalfExtent returns the half-size of the virtual screen along Up and Right.
// The screen subtends a fixed 90 degrees: the hypotenuse to the screen edge at 45
// degrees, projected back onto the screen plane.
func (c Camera) ScreenHalfExtent() float64 {
	hypotenuse := c.Distance / math.Sin(math.Pi/4)
	return hypotenuse * math.Cos(math.Pi/4)
}

// RayDirection returns the unit direction through screen coordinates (u, v),
// where -1 and 1 are the screen edges along Right and Up
func (c Camera) RayDirection(u, v float64) core.Vec3 {
	halfExtent := c.ScreenHalfExtent()

	toScreen := c.Direction.Multiply(c.Distance)
	right := c.Right.Multiply(halfExtent * u)
	up := c.Up.Multiply(halfExtent * v)

	return toScreen.Add(right).Add(up).Normalize()
}

// GetRay generates the primary ray through screen coordinates (u, v)
func (c Camera) GetRay(u, v float64) core.Ray {
	return core.NewRay(c.Position, c.RayDirection(u, v))
}
