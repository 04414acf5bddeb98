package video

import (
	"github.com/pion/yuvtransform/pkg/frame"
)

// Reader produces frames one at a time. Read returns io.EOF when the source
// is exhausted.
type Reader interface {
	Read() (f *frame.Frame, err error)
}

type ReaderFunc func() (f *frame.Frame, err error)

func (rf ReaderFunc) Read() (f *frame.Frame, err error) {
	f, err = rf()
	return
}

// TransformFunc produces a new Reader that will produces a transformed video
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}
