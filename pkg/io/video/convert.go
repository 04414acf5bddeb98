package video

import (
	"github.com/pion/yuvtransform/pkg/frame"
)

// ImageReader produces RGB images converted from a frame Reader.
type ImageReader interface {
	Read() (img *frame.RGB24Img, err error)
}

type ImageReaderFunc func() (img *frame.RGB24Img, err error)

func (rf ImageReaderFunc) Read() (img *frame.RGB24Img, err error) {
	img, err = rf()
	return
}

// ToRGB converts r to a new reader that will output every frame as packed RGB,
// interpreting samples with the given range.
func ToRGB(r Reader, rng frame.Range) ImageReader {
	return ImageReaderFunc(func() (*frame.RGB24Img, error) {
		f, err := r.Read()
		if err != nil {
			return nil, err
		}

		pix, err := frame.ToRGBWithRange(f, rng)
		if err != nil {
			return nil, err
		}
		return frame.NewRGB24Img(pix, f.Width, f.Height)
	})
}
