package video

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/pion/yuvtransform/pkg/frame"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

// Scale returns video scaling transform.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// A non-positive width or height keeps the aspect ratio of the incoming frame,
// rounded down to an even size.
//
// Unlike Compress, which drops samples at fixed positions, Scale resamples
// every plane and accepts any target size.
func Scale(width, height int, scaler Scaler) TransformFunc {
	return func(r Reader) Reader {
		if scaler == nil {
			scaler = ScalerNearestNeighbor
		}
		if width <= 0 && height <= 0 {
			panic("Both width and height are negative!")
		}

		newPlanes := func() *rgbLikeYCbCr {
			return &rgbLikeYCbCr{y: &image.Gray{}, cb: &image.Gray{}, cr: &image.Gray{}}
		}
		src, dst := newPlanes(), newPlanes()

		return ReaderFunc(func() (*frame.Frame, error) {
			f, err := r.Read()
			if err != nil {
				return nil, err
			}
			if err := f.Validate(); err != nil {
				return nil, err
			}

			w, h := width, height
			if h <= 0 {
				h = f.Height * w / f.Width
			} else if w <= 0 {
				w = f.Width * h / f.Height
			}
			w, h = w&^1, h&^1
			if w <= 0 || h <= 0 {
				return nil, fmt.Errorf("scaled size %dx%d is too small: %w", w, h, frame.ErrInvalidDimensions)
			}

			scaled := &frame.Frame{
				Y:      make([]uint8, w*h),
				UV:     make([]uint8, w*h/2),
				Width:  w,
				Height: h,
			}

			src.load(f.Y, f.UV, f.Width, f.Height)
			dst.load(scaled.Y, nil, w, h)
			scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
			dst.interleave(scaled.UV)

			return scaled, nil
		})
	}
}
