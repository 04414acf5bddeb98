package frame

import (
	"fmt"
	"image"
)

// YCbCr copies f into a 4:2:0 image.YCbCr with separate Cb and Cr planes.
func (f *Frame) YCbCr() (*image.YCbCr, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	ci := f.Width * f.Height / 4
	cb := make([]uint8, ci)
	cr := make([]uint8, ci)
	for i := 0; i < ci; i++ {
		cb[i] = f.UV[2*i]
		cr[i] = f.UV[2*i+1]
	}

	return &image.YCbCr{
		Y:              append([]uint8(nil), f.Y...),
		YStride:        f.Width,
		Cb:             cb,
		Cr:             cr,
		CStride:        f.Width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, f.Width, f.Height),
	}, nil
}

// FromYCbCr copies a 4:2:0 image into a new Frame, interleaving its Cb and
// Cr planes. The image bounds must have even dimensions.
func FromYCbCr(img *image.YCbCr) (*Frame, error) {
	if img.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		return nil, fmt.Errorf("unsupported subsample ratio: %s", img.SubsampleRatio)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	f := &Frame{
		Y:      make([]uint8, lumaSize(width, height)),
		UV:     make([]uint8, chromaSize(width, height)),
		Width:  width,
		Height: height,
	}

	for y := 0; y < height; y++ {
		yi := img.YOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(f.Y[y*width:(y+1)*width], img.Y[yi:yi+width])
	}
	for y := 0; y < height; y += 2 {
		row := f.UV[(y/2)*width : (y/2+1)*width]
		for x := 0; x < width; x += 2 {
			ci := img.COffset(bounds.Min.X+x, bounds.Min.Y+y)
			row[x] = img.Cb[ci]
			row[x+1] = img.Cr[ci]
		}
	}

	return f, nil
}
