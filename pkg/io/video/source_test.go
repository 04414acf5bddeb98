package video

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/pion/yuvtransform/pkg/frame"
)

func TestNewRawReader(t *testing.T) {
	raw := []byte{
		// frame 0: Y, then U V
		0x01, 0x02, 0x03, 0x04, 0x80, 0x90,
		// frame 1: Y, then V U
		0x05, 0x06, 0x07, 0x08, 0xA0, 0xB0,
		// truncated frame 2
		0x09, 0x0A,
	}

	cases := map[frame.Format][]*frame.Frame{
		frame.FormatNV12: {
			{Y: []uint8{0x01, 0x02, 0x03, 0x04}, UV: []uint8{0x80, 0x90}, Width: 2, Height: 2},
			{Y: []uint8{0x05, 0x06, 0x07, 0x08}, UV: []uint8{0xA0, 0xB0}, Width: 2, Height: 2},
		},
		frame.FormatNV21: {
			{Y: []uint8{0x01, 0x02, 0x03, 0x04}, UV: []uint8{0x90, 0x80}, Width: 2, Height: 2},
			{Y: []uint8{0x05, 0x06, 0x07, 0x08}, UV: []uint8{0xB0, 0xA0}, Width: 2, Height: 2},
		},
	}

	for format, expected := range cases {
		format, expected := format, expected
		t.Run(string(format), func(t *testing.T) {
			r, err := NewRawReader(bytes.NewReader(raw), format, 2, 2)
			if err != nil {
				t.Fatal(err)
			}

			for i, e := range expected {
				f, err := r.Read()
				if err != nil {
					t.Fatal(err)
				}
				if !reflect.DeepEqual(e, f) {
					t.Errorf("Wrong frame %d,\nexpected:\n%+v\ngot:\n%+v", i, e, f)
				}
			}

			if _, err := r.Read(); err != io.ErrUnexpectedEOF {
				t.Errorf("Expected io.ErrUnexpectedEOF, got %v", err)
			}
		})
	}
}

func TestNewRawReaderEOF(t *testing.T) {
	r, err := NewRawReader(bytes.NewReader(make([]byte, 12)), frame.FormatNV12, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Read(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestNewRawReaderUnsupported(t *testing.T) {
	if _, err := NewRawReader(bytes.NewReader(nil), frame.Format("MJPEG"), 2, 2); err == nil {
		t.Error("Expected an unsupported format error")
	}
}
