package frame

import "errors"

var (
	// ErrInvalidDimensions is returned when the frame dimensions are not
	// positive and even, or can't be processed by the requested operation.
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")
	// ErrInvalidCropParameters is returned when a crop amount is negative, odd
	// or not smaller than the frame dimension it applies to.
	ErrInvalidCropParameters = errors.New("frame: invalid crop parameters")
	// ErrInvalidFrameBuffer is returned when the plane lengths don't match the
	// declared frame dimensions, or when there is no frame at all.
	ErrInvalidFrameBuffer = errors.New("frame: invalid frame buffer")
)
