package lights

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// PointLight is a light source at a single position. It carries no color,
// intensity or falloff: a surface point either sees it or does not.
type PointLight struct {
	Position core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3) PointLight {
	return PointLight{Position: position}
}

// DirectionFrom returns the unit direction from point toward the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}
