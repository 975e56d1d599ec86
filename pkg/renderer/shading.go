package renderer

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

const (
	// MaxBounces is the reflection/refraction budget of a primary ray
	MaxBounces = 5

	// diffuseDivisor scales the light contribution; an empirical brightness constant
	diffuseDivisor = 1.20
)

var (
	// BackgroundColor is returned for rays that hit nothing
	BackgroundColor = core.Blue

	// LightColor is the color every visible light adds, scaled by incidence
	LightColor = core.White
)

// ColorAt returns the color seen from origin along direction. Reflection and refraction
// each recurse with one bounce less; with no bounces left only direct lighting applies.
func (rt *Raytracer) ColorAt(origin, direction core.Vec3, bounces int) core.Color {
	point, shape, hit := rt.FindIntersection(origin, direction)
	if !hit {
		return BackgroundColor
	}

	normal := shape.Normal(point)
	pixel := shape.DefaultColor().Add(rt.directLight(point, normal))

	if bounces <= 0 {
		return pixel
	}

	if shape.IsReflective() {
		reflected := direction.Reflect(normal).Normalize()
		pixel = rt.blendSecondary(pixel, point, reflected, bounces, shape.ReflectCoefficient())
	}

	if shape.IsRefractive() {
		if refracted, ok := direction.Refract(normal, shape.RefractEta()); ok {
			pixel = rt.blendSecondary(pixel, point, refracted.Normalize(), bounces, shape.RefractCoefficient())
		}
	}

	return pixel
}

// directLight sums the contribution of every light that is not shadowed at point
func (rt *Raytracer) directLight(point, normal core.Vec3) core.Color {
	total := core.Black
	for _, light := range rt.lights {
		toLight := light.DirectionFrom(point)
		if rt.Occluded(point, toLight) {
			continue
		}

		cosine := toLight.CosAngle(normal)
		total = total.Add(LightColor.Scale(math.Abs(cosine) / diffuseDivisor))
	}
	return total
}

// blendSecondary traces a secondary ray and adds its color scaled by k.
// A secondary color equal to the background contributes nothing.
func (rt *Raytracer) blendSecondary(pixel core.Color, point, direction core.Vec3, bounces int, k float64) core.Color {
	secondary := rt.ColorAt(point, direction, bounces-1)
	if secondary == BackgroundColor {
		return pixel
	}
	return pixel.Add(secondary.Scale(k))
}
