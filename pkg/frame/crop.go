package frame

import "fmt"

// Crop trims cropWidth columns and cropHeight rows from f, half of each from
// every side, and returns the centered (Width-cropWidth)x(Height-cropHeight)
// window.
//
// The chroma window covers chroma rows [cropHeight/4, (Height-cropHeight/2)/2)
// and chroma bytes [cropWidth/2, Width-cropWidth/2) of each row. The byte range
// is the luma column range taken as is, so when cropWidth/2 is odd the window
// starts on a V sample rather than on a U sample.
func Crop(f *Frame, cropWidth, cropHeight int) (*Frame, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if cropWidth < 0 || cropHeight < 0 || cropWidth%2 != 0 || cropHeight%2 != 0 {
		return nil, fmt.Errorf("crop %dx%d must be non-negative and even: %w", cropWidth, cropHeight, ErrInvalidCropParameters)
	}
	if cropWidth >= f.Width || cropHeight >= f.Height {
		return nil, fmt.Errorf("crop %dx%d exceeds frame %dx%d: %w", cropWidth, cropHeight, f.Width, f.Height, ErrInvalidCropParameters)
	}

	width := f.Width - cropWidth
	height := f.Height - cropHeight
	dst := &Frame{
		Y:      make([]uint8, lumaSize(width, height)),
		UV:     make([]uint8, chromaSize(width, height)),
		Width:  width,
		Height: height,
	}

	xStart, xEnd := cropWidth/2, f.Width-cropWidth/2
	yStart, yEnd := cropHeight/2, f.Height-cropHeight/2

	i := 0
	for y := yStart; y < yEnd; y++ {
		row := y * f.Width
		i += copy(dst.Y[i:], f.Y[row+xStart:row+xEnd])
	}

	i = 0
	for y := yStart / 2; y < yEnd/2; y++ {
		row := y * f.Width
		i += copy(dst.UV[i:], f.UV[row+xStart:row+xEnd])
	}

	return dst, nil
}
