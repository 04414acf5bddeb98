package frame

import (
	"errors"
	"testing"
)

func TestNewFrame(t *testing.T) {
	y := []uint8{1, 2, 3, 4}
	uv := []uint8{5, 6}

	f, err := NewFrame(y, uv, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	y[0], uv[0] = 0xFF, 0xFF
	if f.Y[0] != 1 || f.UV[0] != 5 {
		t.Error("NewFrame must not alias the given planes")
	}
	if u, v := f.UVAt(1, 1); u != 5 || v != 6 {
		t.Errorf("Expected chroma pair (5, 6), got (%d, %d)", u, v)
	}
	if got := f.YAt(1, 1); got != 4 {
		t.Errorf("Expected luma 4, got %d", got)
	}
}

func TestFrameValidate(t *testing.T) {
	cases := map[string]struct {
		f        *Frame
		expected error
	}{
		"Nil":           {nil, ErrInvalidFrameBuffer},
		"ShortLuma":     {&Frame{Y: make([]uint8, 3), UV: make([]uint8, 2), Width: 2, Height: 2}, ErrInvalidFrameBuffer},
		"LongChroma":    {&Frame{Y: make([]uint8, 4), UV: make([]uint8, 4), Width: 2, Height: 2}, ErrInvalidFrameBuffer},
		"NoChroma":      {&Frame{Y: make([]uint8, 16), Width: 4, Height: 4}, ErrInvalidFrameBuffer},
		"OddWidth":      {&Frame{Y: make([]uint8, 6), UV: make([]uint8, 3), Width: 3, Height: 2}, ErrInvalidDimensions},
		"OddHeight":     {&Frame{Y: make([]uint8, 162), UV: make([]uint8, 81), Width: 18, Height: 9}, ErrInvalidDimensions},
		"ZeroHeight":    {&Frame{Y: nil, UV: nil, Width: 2, Height: 0}, ErrInvalidDimensions},
		"Negative":      {&Frame{Y: nil, UV: nil, Width: -2, Height: -2}, ErrInvalidDimensions},
		"OddAndTooLong": {&Frame{Y: make([]uint8, 100), UV: make([]uint8, 100), Width: 5, Height: 5}, ErrInvalidDimensions},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			err := c.f.Validate()
			if !errors.Is(err, c.expected) {
				t.Fatalf("Expected %v, got %v", c.expected, err)
			}
			if c.expected == ErrInvalidDimensions && errors.Is(err, ErrInvalidFrameBuffer) {
				t.Errorf("Dimension errors must not be reported as ErrInvalidFrameBuffer: %v", err)
			}
		})
	}
}

func TestFrameUVAt(t *testing.T) {
	f := &Frame{
		Y: make([]uint8, 16),
		UV: []uint8{
			// U  V    U  V
			10, 11, 12, 13,
			14, 15, 16, 17,
		},
		Width:  4,
		Height: 4,
	}

	cases := []struct {
		x, y int
		u, v uint8
	}{
		{0, 0, 10, 11},
		{1, 1, 10, 11},
		{2, 0, 12, 13},
		{3, 1, 12, 13},
		{0, 2, 14, 15},
		{3, 3, 16, 17},
	}
	for _, c := range cases {
		u, v := f.UVAt(c.x, c.y)
		if u != c.u || v != c.v {
			t.Errorf("UVAt(%d, %d): expected (%d, %d), got (%d, %d)", c.x, c.y, c.u, c.v, u, v)
		}
	}
}
