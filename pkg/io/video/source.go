package video

import (
	"fmt"
	"io"

	"github.com/pion/yuvtransform/pkg/frame"
)

// NewRawReader reads consecutive raw frames of the given format and size from
// src. It returns io.EOF once src is exhausted on a frame boundary and
// io.ErrUnexpectedEOF when the last frame is truncated.
func NewRawReader(src io.Reader, format frame.Format, width, height int) (Reader, error) {
	decoder, err := frame.NewDecoder(format)
	if err != nil {
		return nil, err
	}
	frameSize, ok := frame.FrameSizeMap[format]
	if !ok {
		return nil, fmt.Errorf("%s has no known frame size", format)
	}

	buf := make([]byte, frameSize(width, height))
	var n int
	return ReaderFunc(func() (*frame.Frame, error) {
		if _, err := io.ReadFull(src, buf); err != nil {
			if err == io.ErrUnexpectedEOF {
				logger.Warnf("raw frame %d is truncated", n)
			}
			return nil, err
		}
		n++
		return decoder.Decode(buf, width, height)
	}), nil
}
