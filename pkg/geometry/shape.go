package geometry

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// gradientStep is the central-difference offset used for numerical normals
const gradientStep = 1.0

// surfaceEpsilon is the distance below which a point counts as on a surface
const surfaceEpsilon = 1e-4

// Material holds the surface properties shared by every shape.
// Values are set once while the scene is being configured.
type Material struct {
	color      core.Color
	reflective bool
	reflectK   float64
	refractive bool
	refractK   float64
	refractEta float64
}

// NewMaterial creates a plain gray, non-reflective, non-refractive material
func NewMaterial() Material {
	return Material{color: core.Gray}
}

// SetDefaultColor sets the base color of the surface
func (m *Material) SetDefaultColor(c core.Color) {
	m.color = c
}

// MakeReflective enables reflection, blending reflected color with coefficient k
func (m *Material) MakeReflective(k float64) {
	m.reflective = true
	m.reflectK = k
}

// MakeRefractive enables refraction with blend coefficient k and relative index eta
func (m *Material) MakeRefractive(k, eta float64) {
	m.refractive = true
	m.refractK = k
	m.refractEta = eta
}

// DefaultColor returns the base color of the surface
func (m *Material) DefaultColor() core.Color { return m.color }

// IsReflective reports whether reflected rays are traced
func (m *Material) IsReflective() bool { return m.reflective }

// ReflectCoefficient returns the weight of the reflected color
func (m *Material) ReflectCoefficient() float64 { return m.reflectK }

// IsRefractive reports whether refracted rays are traced
func (m *Material) IsRefractive() bool { return m.refractive }

// RefractCoefficient returns the weight of the refracted color
func (m *Material) RefractCoefficient() float64 { return m.refractK }

// RefractEta returns the relative index of refraction
func (m *Material) RefractEta() float64 { return m.refractEta }

// gradientNormal approximates the surface normal as the normalized central-difference
// gradient of the distance function
func gradientNormal(distance func(core.Vec3) float64, point core.Vec3) core.Vec3 {
	dx := distance(point.Add(core.NewVec3(gradientStep, 0, 0))) - distance(point.Subtract(core.NewVec3(gradientStep, 0, 0)))
	dy := distance(point.Add(core.NewVec3(0, gradientStep, 0))) - distance(point.Subtract(core.NewVec3(0, gradientStep, 0)))
	dz := distance(point.Add(core.NewVec3(0, 0, gradientStep))) - distance(point.Subtract(core.NewVec3(0, 0, gradientStep)))

	return core.NewVec3(dx, dy, dz).Multiply(1 / (2 * gradientStep)).Normalize()
}
