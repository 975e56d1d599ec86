package core

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB pixel value. Arithmetic saturates at 255 and floors at 0.
type Color struct {
	R, G, B uint8
}

// Named colors
var (
	Red       = Color{255, 0, 0}
	Green     = Color{0, 255, 0}
	Blue      = Color{0, 0, 255}
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Gray      = Color{40, 40, 40}
	LightPink = Color{110, 0, 110}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorFromVec3 truncates each component into a channel, clamped to [0, 255]
func NewColorFromVec3(v Vec3) Color {
	return Color{
		R: saturate(v.X),
		G: saturate(v.Y),
		B: saturate(v.Z),
	}
}

// Scale multiplies every channel by k
func (c Color) Scale(k float64) Color {
	return Color{
		R: saturate(float64(c.R) * k),
		G: saturate(float64(c.G) * k),
		B: saturate(float64(c.B) * k),
	}
}

// Divide divides every channel by k. A near-zero divisor yields ErrInvalidOperation.
func (c Color) Divide(k float64) (Color, error) {
	if k < divisionEpsilon {
		return Color{}, ErrInvalidOperation
	}
	return Color{
		R: saturate(float64(c.R) / k),
		G: saturate(float64(c.G) / k),
		B: saturate(float64(c.B) / k),
	}, nil
}

// Add returns the channel-wise sum, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: uint8(min(255, int(c.R)+int(other.R))),
		G: uint8(min(255, int(c.G)+int(other.G))),
		B: uint8(min(255, int(c.B)+int(other.B))),
	}
}

// ToVec3 returns the channels as vector components
func (c Color) ToVec3() Vec3 {
	return Vec3{float64(c.R), float64(c.G), float64(c.B)}
}

// RGBA converts the pixel to an opaque color.RGBA
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// saturate truncates toward zero and clamps to a channel value
func saturate(value float64) uint8 {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	if value >= 255 {
		return 255
	}
	return uint8(value)
}
