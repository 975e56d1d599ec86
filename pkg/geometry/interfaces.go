package geometry

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Shape is a signed-distance primitive with material properties
type Shape interface {
	// Distance estimates the distance from point to the surface, zero on the surface
	Distance(point core.Vec3) float64
	// Normal returns the unit surface normal near point
	Normal(point core.Vec3) core.Vec3

	IsReflective() bool
	ReflectCoefficient() float64
	IsRefractive() bool
	RefractCoefficient() float64
	RefractEta() float64
	DefaultColor() core.Color
}
