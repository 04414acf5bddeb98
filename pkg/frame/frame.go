package frame

import "fmt"

// Frame is a YUV 4:2:0 frame with a full resolution luma plane and a half
// resolution chroma plane holding interleaved U/V pairs.
//
// The chroma pair covering luma sample (x, y) starts at UV[(y/2)*Width+(x/2)*2].
// A chroma row therefore spans exactly Width bytes.
//
// Frames returned by this package are never mutated and never share memory
// with their inputs.
type Frame struct {
	Y      []uint8
	UV     []uint8
	Width  int
	Height int
}

// NewFrame validates the given planes and returns a Frame owning copies of them.
func NewFrame(y, uv []uint8, width, height int) (*Frame, error) {
	f := &Frame{Y: y, UV: uv, Width: width, Height: height}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Clone(), nil
}

// Validate checks the declared dimensions and the plane lengths against them.
// Non-positive or odd dimensions are reported as ErrInvalidDimensions, plane
// length mismatches as ErrInvalidFrameBuffer.
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("nil frame: %w", ErrInvalidFrameBuffer)
	}
	if err := checkDimensions(f.Width, f.Height); err != nil {
		return err
	}
	if yi := lumaSize(f.Width, f.Height); len(f.Y) != yi {
		return fmt.Errorf("luma plane length (%d) differs from expected (%d): %w", len(f.Y), yi, ErrInvalidFrameBuffer)
	}
	if ci := chromaSize(f.Width, f.Height); len(f.UV) != ci {
		return fmt.Errorf("chroma plane length (%d) differs from expected (%d): %w", len(f.UV), ci, ErrInvalidFrameBuffer)
	}
	return nil
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	return &Frame{
		Y:      append([]uint8(nil), f.Y...),
		UV:     append([]uint8(nil), f.UV...),
		Width:  f.Width,
		Height: f.Height,
	}
}

// YAt returns the luma sample at (x, y).
func (f *Frame) YAt(x, y int) uint8 {
	return f.Y[y*f.Width+x]
}

// UVAt returns the chroma pair shared by the 2x2 block containing (x, y).
func (f *Frame) UVAt(x, y int) (u, v uint8) {
	i := f.uvOffset(x, y)
	return f.UV[i], f.UV[i+1]
}

func (f *Frame) uvOffset(x, y int) int {
	return (y/2)*f.Width + (x/2)*2
}

// checkDimensions reports dimensions that can't hold 4:2:0 chroma.
func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("dimensions %dx%d are not positive and even: %w", width, height, ErrInvalidDimensions)
	}
	return nil
}

func lumaSize(width, height int) int {
	return width * height
}

func chromaSize(width, height int) int {
	return width * height / 2
}
