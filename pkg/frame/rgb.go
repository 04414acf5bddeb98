package frame

import (
	"fmt"
	"sync"
)

// Range selects how luma and chroma samples are interpreted before the
// BT.601 matrix is applied.
type Range int

const (
	// RangeFull treats samples as full swing: Y in [0, 255], chroma centered
	// on 128.
	RangeFull Range = iota
	// RangeLimited treats samples as studio swing: Y in [16, 235], chroma in
	// [16, 240]. Both are expanded to full swing before conversion.
	RangeLimited
)

func (r Range) String() string {
	switch r {
	case RangeFull:
		return "full"
	case RangeLimited:
		return "limited"
	default:
		return fmt.Sprintf("Range(%d)", int(r))
	}
}

// ToRGB converts f to packed RGB, 3 bytes per pixel in R, G, B order.
//
// Each channel is computed in floating point, clamped to [0, 255] and then
// truncated toward zero.
func ToRGB(f *Frame) ([]uint8, error) {
	return ToRGBWithRange(f, RangeFull)
}

// ToRGBWithRange is ToRGB with an explicit sample range.
func ToRGBWithRange(f *Frame, r Range) ([]uint8, error) {
	return ToRGBParallel(f, r, 1)
}

// ToRGBParallel is ToRGBWithRange spread over up to workers goroutines. Work
// is split on chroma row boundaries, so the output is identical to the
// sequential conversion.
func ToRGBParallel(f *Frame, r Range, workers int) ([]uint8, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if r != RangeFull && r != RangeLimited {
		return nil, fmt.Errorf("unsupported range: %s", r)
	}

	dst := make([]uint8, 3*f.Width*f.Height)

	chromaRows := f.Height / 2
	if workers > chromaRows {
		workers = chromaRows
	}
	if workers <= 1 {
		convertRows(dst, f, r, 0, f.Height)
		return dst, nil
	}

	var wg sync.WaitGroup
	band := (chromaRows + workers - 1) / workers
	for start := 0; start < chromaRows; start += band {
		end := start + band
		if end > chromaRows {
			end = chromaRows
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			convertRows(dst, f, r, y0, y1)
		}(2*start, 2*end)
	}
	wg.Wait()

	return dst, nil
}

// convertRows converts luma rows [y0, y1) of f into dst.
func convertRows(dst []uint8, f *Frame, r Range, y0, y1 int) {
	for y := y0; y < y1; y++ {
		yRow := f.Y[y*f.Width : (y+1)*f.Width]
		uvRow := f.UV[(y/2)*f.Width : (y/2+1)*f.Width]
		out := dst[3*y*f.Width : 3*(y+1)*f.Width]
		for x, yy := range yRow {
			// x&^1 is the U byte of pair x/2, x|1 its V byte.
			out[3*x], out[3*x+1], out[3*x+2] = yuvToRGB(yy, uvRow[x&^1], uvRow[x|1], r)
		}
	}
}

func yuvToRGB(y, u, v uint8, r Range) (uint8, uint8, uint8) {
	yy := float64(y)
	cb := float64(u) - 128
	cr := float64(v) - 128
	if r == RangeLimited {
		yy = (yy - 16) * 255 / 219
		cb = cb * 255 / 224
		cr = cr * 255 / 224
	}

	red := yy + 1.402*cr
	green := yy - 0.344136*cb - 0.714136*cr
	blue := yy + 1.772*cb
	return clamp(red), clamp(green), clamp(blue)
}

// clamp limits v to [0, 255] and truncates the fraction.
func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
