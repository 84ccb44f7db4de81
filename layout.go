package frame

import "errors"

// Common errors for image construction.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("frame: negative width or height")

	// ErrInvalidStride is returned when stride is smaller than the
	// format's minimum row byte width.
	ErrInvalidStride = errors.New("frame: stride too small for width")

	// ErrInsufficientBuffer is returned when the supplied byte region is
	// shorter than the layout requires.
	ErrInsufficientBuffer = errors.New("frame: buffer too small for image layout")

	// ErrCapacityExceeded is returned when a fixed-capacity image is
	// requested larger than its storage.
	ErrCapacityExceeded = errors.New("frame: fixed storage capacity exceeded")

	// ErrOutOfBounds is returned when a requested region lies outside the
	// source image.
	ErrOutOfBounds = errors.New("frame: region outside image bounds")
)

// MinBufferLen returns the smallest buffer length that can back an image
// with the given layout. The final row needs only its pixel data, so
// trailing stride padding is not counted. An empty image needs no bytes.
func MinBufferLen(f PixFmt, width, height, stride int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return stride*(height-1) + f.MinStride(width)
}

// ValidateLayout checks that a buffer of bufLen bytes can back an image
// with the given format, dimensions and stride.
//
// ValidateLayout is the single gatekeeper for every image constructor in
// this package. Once a constructor has accepted a layout, no per-row or
// per-pixel bounds are re-checked.
func ValidateLayout(f PixFmt, width, height, stride, bufLen int) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}
	if stride < f.MinStride(width) {
		return ErrInvalidStride
	}
	if bufLen < MinBufferLen(f, width, height, stride) {
		return ErrInsufficientBuffer
	}
	return nil
}
