package frame

import (
	"fmt"
)

func splitSemiPlanar(buf []byte, width, height int) (y, uv []byte, err error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, nil, err
	}

	yi := lumaSize(width, height)
	ci := int(frameSizeNV12(width, height))
	if ci > len(buf) {
		return nil, nil, fmt.Errorf("frame length (%d) less than expected (%d): %w", len(buf), ci, ErrInvalidFrameBuffer)
	}

	return buf[:yi], buf[yi:ci], nil
}

func decodeNV12(buf []byte, width, height int) (*Frame, error) {
	y, uv, err := splitSemiPlanar(buf, width, height)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Y:      append([]uint8(nil), y...),
		UV:     append([]uint8(nil), uv...),
		Width:  width,
		Height: height,
	}, nil
}

func decodeNV21(buf []byte, width, height int) (*Frame, error) {
	y, vu, err := splitSemiPlanar(buf, width, height)
	if err != nil {
		return nil, err
	}

	uv := make([]uint8, len(vu))
	for i := 0; i < len(vu); i += 2 {
		uv[i] = vu[i+1]
		uv[i+1] = vu[i]
	}

	return &Frame{
		Y:      append([]uint8(nil), y...),
		UV:     uv,
		Width:  width,
		Height: height,
	}, nil
}
