package frame

import (
	"fmt"
	"image"
	"image/color"
)

// RGB24Img is an image.Image over the packed output of ToRGB.
type RGB24Img struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Rect   image.Rectangle
	Stride int
}

// NewRGB24Img wraps pix, as returned by ToRGB, without copying it.
func NewRGB24Img(pix []uint8, width, height int) (*RGB24Img, error) {
	if size := 3 * width * height; len(pix) != size {
		return nil, fmt.Errorf("pixel buffer length (%d) differs from expected (%d): %w", len(pix), size, ErrInvalidFrameBuffer)
	}
	return &RGB24Img{
		Pix:    pix,
		Rect:   image.Rect(0, 0, width, height),
		Stride: width * 3,
	}, nil
}

// RGBImage converts f with ToRGB and wraps the result in an RGB24Img.
func RGBImage(f *Frame) (*RGB24Img, error) {
	pix, err := ToRGB(f)
	if err != nil {
		return nil, err
	}
	return NewRGB24Img(pix, f.Width, f.Height)
}

func (p *RGB24Img) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGB24Img) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB24Img) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB24Img) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *RGB24Img) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small capacity improves performance, see https://golang.org/issue/27857
	return color.RGBA{s[0], s[1], s[2], 0xff}
}
