// Package frametest provides synthetic frames for tests and examples.
package frametest

import (
	"math/rand"

	"github.com/pion/yuvtransform/pkg/frame"
)

// colors are the 75% SMPTE color bars as Y, U, V triplets.
var colors = [][3]uint8{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// Solid returns a width x height frame filled with a single color.
func Solid(width, height int, y, u, v uint8) *frame.Frame {
	f := &frame.Frame{
		Y:      make([]uint8, width*height),
		UV:     make([]uint8, width*height/2),
		Width:  width,
		Height: height,
	}
	for i := range f.Y {
		f.Y[i] = y
	}
	for i := 0; i < len(f.UV); i += 2 {
		f.UV[i] = u
		f.UV[i+1] = v
	}
	return f
}

// ColorBars returns a test pattern: seven vertical color bars on the top three
// quarters, a gray gradation followed by a noise area on the bottom quarter.
// The noise is seeded, so the result is the same for every call.
func ColorBars(width, height int) *frame.Frame {
	f := &frame.Frame{
		Y:      make([]uint8, width*height),
		UV:     make([]uint8, width*height/2),
		Width:  width,
		Height: height,
	}

	hColorBarEnd := height * 3 / 4
	wGradationEnd := width * 5 / 7
	random := rand.New(rand.NewSource(0))
	for y := 0; y < height; y++ {
		yi := width * y
		ci := width * (y / 2)
		for x := 0; x < width; x++ {
			u, v := uint8(128), uint8(128)
			switch {
			case y < hColorBarEnd:
				c := colors[x*len(colors)/width]
				f.Y[yi+x] = uint8(uint16(c[0]) * 75 / 100)
				u, v = c[1], c[2]
			case x < wGradationEnd:
				f.Y[yi+x] = uint8(x * 255 / wGradationEnd)
			default:
				f.Y[yi+x] = uint8(random.Int31n(2) * 255)
			}
			if x%2 == 0 && y%2 == 0 {
				f.UV[ci+x] = u
				f.UV[ci+x+1] = v
			}
		}
	}
	return f
}

// Sequence returns a frame whose luma sample at (x, y) is (y*width+x) mod 256
// and whose chroma byte i is (i+128) mod 256, making every sample position
// recognizable after a transform.
func Sequence(width, height int) *frame.Frame {
	f := &frame.Frame{
		Y:      make([]uint8, width*height),
		UV:     make([]uint8, width*height/2),
		Width:  width,
		Height: height,
	}
	for i := range f.Y {
		f.Y[i] = uint8(i)
	}
	for i := range f.UV {
		f.UV[i] = uint8(i + 128)
	}
	return f
}
