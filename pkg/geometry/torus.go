package geometry

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Torus represents a ring lying in the XZ plane around Center
type Torus struct {
	Material
	Center      core.Vec3
	MajorRadius float64 // Radius of the tube's central circle
	MinorRadius float64 // Radius of the tube
}

// NewTorus creates a new torus
func NewTorus(center core.Vec3, majorRadius, minorRadius float64) *Torus {
	return &Torus{
		Material:    NewMaterial(),
		Center:      center,
		MajorRadius: majorRadius,
		MinorRadius: minorRadius,
	}
}

// Distance returns the distance from the tube's central circle minus the tube radius
func (t *Torus) Distance(point core.Vec3) float64 {
	q := t.Center.Subtract(point)
	k := math.Sqrt(q.X*q.X+q.Z*q.Z) - t.MajorRadius
	return math.Sqrt(k*k+q.Y*q.Y) - t.MinorRadius
}

// Normal returns the numerical gradient of the distance field
func (t *Torus) Normal(point core.Vec3) core.Vec3 {
	return gradientNormal(t.Distance, point)
}
