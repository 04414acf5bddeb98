package frame

import "fmt"

const (
	// compressFactor is the reduction applied to each axis by Compress.
	compressFactor = 3
	// compressBlock is the number of source samples consumed for every
	// compressKeep samples retained on the luma axes.
	compressBlock = 2 * compressFactor
	compressKeep  = 2
)

// Compress decimates f to a third of its width and height.
//
// Luma keeps 2 out of every 6 rows and columns (0, 1, 6, 7, ...), chroma keeps
// every third chroma row and one U/V pair out of every three. No filtering is
// applied: every output sample is copied verbatim from the source.
//
// Both dimensions must be multiples of 6 so that luma and chroma stay aligned,
// otherwise ErrInvalidDimensions is returned.
func Compress(f *Frame) (*Frame, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.Width%compressBlock != 0 || f.Height%compressBlock != 0 {
		return nil, fmt.Errorf("%dx%d is not a multiple of %d: %w", f.Width, f.Height, compressBlock, ErrInvalidDimensions)
	}

	width := f.Width / compressFactor
	height := f.Height / compressFactor
	dst := &Frame{
		Y:      make([]uint8, lumaSize(width, height)),
		UV:     make([]uint8, chromaSize(width, height)),
		Width:  width,
		Height: height,
	}

	rows := stride{start: 0, stop: f.Height, step: compressBlock, run: compressKeep}.indices()
	cols := stride{start: 0, stop: f.Width, step: compressBlock, run: compressKeep}.indices()
	i := 0
	for _, y := range rows {
		src := f.Y[y*f.Width : (y+1)*f.Width]
		for _, x := range cols {
			dst.Y[i] = src[x]
			i++
		}
	}

	// A chroma row is Width bytes wide, so stepping 6 bytes skips two U/V pairs.
	chromaRows := stride{start: 0, stop: f.Height / 2, step: compressFactor, run: 1}.indices()
	chromaCols := stride{start: 0, stop: f.Width, step: compressBlock, run: 1}.indices()
	i = 0
	for _, y := range chromaRows {
		src := f.UV[y*f.Width : (y+1)*f.Width]
		for _, x := range chromaCols {
			dst.UV[i] = src[x]
			dst.UV[i+1] = src[x+1]
			i += 2
		}
	}

	return dst, nil
}
