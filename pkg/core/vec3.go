package core

import (
	"math"
)

// divisionEpsilon is the smallest magnitude a divisor may have
const divisionEpsilon = 1e-20

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar.
// A near-zero divisor yields ErrInvalidOperation.
func (v Vec3) Divide(scalar float64) (Vec3, error) {
	if math.Abs(scalar) < divisionEpsilon {
		return Vec3{}, ErrInvalidOperation
	}
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction.
// Degenerate vectors are returned unchanged.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length < divisionEpsilon {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// CosAngle returns the cosine of the angle between two vectors, or 0 if either is degenerate
func (v Vec3) CosAngle(other Vec3) float64 {
	lengths := v.Length() * other.Length()
	if lengths < divisionEpsilon {
		return 0
	}
	return v.Dot(other) / lengths
}

// Reflect mirrors the vector about the given normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Refract bends the vector through a surface with the given normal and relative index eta.
// The normal is flipped when it faces the same way as the vector, so the result always
// crosses the surface. Returns false on total internal reflection.
func (v Vec3) Refract(normal Vec3, eta float64) (Vec3, bool) {
	cosAlpha := v.CosAngle(normal)
	if cosAlpha > 0 {
		normal = normal.Negate()
	}
	cosAlpha = math.Abs(cosAlpha)

	tangent := v.Add(normal.Multiply(cosAlpha)).Multiply(eta)
	k := 1 - tangent.LengthSquared()
	if k < 0 {
		return Vec3{}, false
	}

	return tangent.Add(normal.Multiply(-math.Sqrt(k))), true
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
