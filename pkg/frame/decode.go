package frame

import (
	"fmt"
)

// NewDecoder returns a Decoder turning raw buffers of format f into frames.
func NewDecoder(f Format) (Decoder, error) {
	var decoder decoderFunc

	switch f {
	case FormatNV12:
		decoder = decodeNV12
	case FormatNV21:
		decoder = decodeNV21
	default:
		return nil, fmt.Errorf("%s is not supported", f)
	}

	return decoder, nil
}

// Decoder splits a contiguous raw buffer into a Frame. The returned frame
// never aliases the buffer.
type Decoder interface {
	Decode(buf []byte, width, height int) (*Frame, error)
}

// decoderFunc is a proxy type for Decoder
type decoderFunc func(buf []byte, width, height int) (*Frame, error)

func (f decoderFunc) Decode(buf []byte, width, height int) (*Frame, error) {
	return f(buf, width, height)
}
