package geometry

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Box represents an axis-aligned box given by its center and half-extents.
// Its distance field is Chebyshev (max over axes), exact only at the surface.
type Box struct {
	Material
	Center      core.Vec3
	HalfExtents core.Vec3 // Distance from the center to each pair of faces
}

// NewBox creates a new axis-aligned box
func NewBox(center, halfExtents core.Vec3) *Box {
	return &Box{
		Material:    NewMaterial(),
		Center:      center,
		HalfExtents: halfExtents,
	}
}

// axisDistances returns the signed distance to each pair of faces
func (b *Box) axisDistances(point core.Vec3) (x, y, z float64) {
	x = math.Max(point.X-b.Center.X-b.HalfExtents.X, b.Center.X-point.X-b.HalfExtents.X)
	y = math.Max(point.Y-b.Center.Y-b.HalfExtents.Y, b.Center.Y-point.Y-b.HalfExtents.Y)
	z = math.Max(point.Z-b.Center.Z-b.HalfExtents.Z, b.Center.Z-point.Z-b.HalfExtents.Z)
	return x, y, z
}

// Distance returns the largest per-axis face distance
func (b *Box) Distance(point core.Vec3) float64 {
	x, y, z := b.axisDistances(point)
	return math.Max(math.Max(x, y), z)
}

// Normal returns the axis of the face the point lies on. The X face wins over Y,
// and Z is returned whenever neither X nor Y matches.
func (b *Box) Normal(point core.Vec3) core.Vec3 {
	x, y, _ := b.axisDistances(point)

	if math.Abs(x) < surfaceEpsilon {
		return core.NewVec3(1, 0, 0)
	}
	if math.Abs(y) < surfaceEpsilon {
		return core.NewVec3(0, 1, 0)
	}
	return core.NewVec3(0, 0, 1)
}
