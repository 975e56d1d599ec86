package core

import "errors"

var (
	// ErrInvalidOperation is returned by arithmetic that would divide by a near-zero scalar
	ErrInvalidOperation = errors.New("invalid operation: division by zero")

	// ErrInvalidBounds is returned for a bounding box with min > max on any axis
	ErrInvalidBounds = errors.New("invalid scene bounds")

	// ErrInvalidResolution is returned for a non-positive image size
	ErrInvalidResolution = errors.New("invalid image resolution")

	// ErrInvalidCamera is returned for a camera that cannot project onto a screen
	ErrInvalidCamera = errors.New("invalid camera")

	// ErrCameraNotConfigured is returned when rendering a scene without a camera
	ErrCameraNotConfigured = errors.New("camera not configured")

	// ErrInvalidConfig is returned for render settings out of range
	ErrInvalidConfig = errors.New("invalid render config")

	// ErrUnsupportedFormat is returned when saving to a file extension with no encoder
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
