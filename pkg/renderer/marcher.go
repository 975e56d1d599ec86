package renderer

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
)

const (
	marchEpsilon     = 1e-4  // Distance at which a ray counts as touching a surface
	minMarchStep     = 0.1   // Step taken when the nearest surface is closer than marchEpsilon
	maxMarchSteps    = 20000 // Steps after which a ray is treated as a miss
	infiniteDistance = 1e20
)

// FindIntersection marches from origin along direction and returns the first surface
// point reached together with its shape. Leaving the scene bounds or running out of
// steps is a miss.
//
// Every step scans all shapes; there is no spatial index.
func (rt *Raytracer) FindIntersection(origin, direction core.Vec3) (core.Vec3, geometry.Shape, bool) {
	if len(rt.shapes) == 0 {
		return core.Vec3{}, nil, false
	}

	position := origin
	current := infiniteDistance
	var nearest geometry.Shape

	for step := 1; ; step++ {
		// The selected shape is only replaced by one strictly closer
		dist := current
		for _, shape := range rt.shapes {
			if d := math.Abs(shape.Distance(position)); d < dist {
				dist = d
				nearest = shape
			}
		}
		if nearest == nil {
			return core.Vec3{}, nil, false
		}

		if dist < marchEpsilon {
			dist = minMarchStep
		}

		position = position.Add(direction.Multiply(dist))
		if !rt.bounds.Contains(position) {
			return core.Vec3{}, nil, false
		}

		current = math.Abs(nearest.Distance(position))

		if step >= maxMarchSteps {
			return core.Vec3{}, nil, false
		}
		if current <= marchEpsilon {
			return position, nearest, true
		}
	}
}

// Occluded reports whether a ray from origin along direction hits any shape
func (rt *Raytracer) Occluded(origin, direction core.Vec3) bool {
	_, _, hit := rt.FindIntersection(origin, direction)
	return hit
}
