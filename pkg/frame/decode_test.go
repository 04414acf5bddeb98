package frame

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	const (
		width  = 2
		height = 2
	)

	cases := map[Format]struct {
		input    []byte
		expected *Frame
	}{
		FormatNV12: {
			input: []byte{
				// Y
				0x01, 0x02,
				0x03, 0x04,
				// U     V
				0x80, 0x90,
			},
			expected: &Frame{
				Y:      []uint8{0x01, 0x02, 0x03, 0x04},
				UV:     []uint8{0x80, 0x90},
				Width:  width,
				Height: height,
			},
		},
		FormatNV21: {
			input: []byte{
				// Y
				0x01, 0x02,
				0x03, 0x04,
				// V     U
				0x90, 0x80,
			},
			expected: &Frame{
				Y:      []uint8{0x01, 0x02, 0x03, 0x04},
				UV:     []uint8{0x80, 0x90},
				Width:  width,
				Height: height,
			},
		},
	}

	for format, c := range cases {
		format, c := format, c
		t.Run(string(format), func(t *testing.T) {
			decoder, err := NewDecoder(format)
			if err != nil {
				t.Fatal(err)
			}

			_, err = decoder.Decode(c.input[:5], width, height)
			if !errors.Is(err, ErrInvalidFrameBuffer) {
				t.Errorf("Expected to get a frame length mismatch, got %v", err)
			}

			f, err := decoder.Decode(c.input, width, height)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(c.expected, f) {
				t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", c.expected, f)
			}

			c.input[0] = 0xFF
			if f.Y[0] != 0x01 {
				t.Error("Decoded frame must not alias the input buffer")
			}
		})
	}
}

func TestDecodeInvalidDimensions(t *testing.T) {
	decoder, err := NewDecoder(FormatNV12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decoder.Decode(make([]byte, 64), 3, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewDecoderUnsupported(t *testing.T) {
	if _, err := NewDecoder(Format("I420")); err == nil {
		t.Error("Expected I420 to be unsupported")
	}
}

func TestFrameSizeMap(t *testing.T) {
	for _, format := range []Format{FormatNV12, FormatNV21} {
		if size := FrameSizeMap[format](640, 480); size != 640*480*3/2 {
			t.Errorf("%s: expected %d bytes, got %d", format, 640*480*3/2, size)
		}
	}
}
