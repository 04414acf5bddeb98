package video

import (
	"github.com/pion/yuvtransform/pkg/frame"
)

// mapFrames wraps a pure frame operation into a TransformFunc.
func mapFrames(fn func(*frame.Frame) (*frame.Frame, error)) TransformFunc {
	return func(r Reader) Reader {
		return ReaderFunc(func() (*frame.Frame, error) {
			f, err := r.Read()
			if err != nil {
				return nil, err
			}
			return fn(f)
		})
	}
}

// Compress returns a transform reducing every frame to a third of its width
// and height. See frame.Compress.
func Compress() TransformFunc {
	return mapFrames(frame.Compress)
}

// Crop returns a transform trimming cropWidth columns and cropHeight rows
// evenly from the sides of every frame. See frame.Crop.
func Crop(cropWidth, cropHeight int) TransformFunc {
	return mapFrames(func(f *frame.Frame) (*frame.Frame, error) {
		return frame.Crop(f, cropWidth, cropHeight)
	})
}
