package geometry

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Material
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Material: NewMaterial(),
		Center:   center,
		Radius:   radius,
	}
}

// Distance returns the exact Euclidean distance to the sphere surface
func (s *Sphere) Distance(point core.Vec3) float64 {
	return point.Subtract(s.Center).Length() - s.Radius
}

// Normal returns the numerical gradient of the distance field
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return gradientNormal(s.Distance, point)
}
