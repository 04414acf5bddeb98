package video

import (
	"image"
	"image/color"
)

// rgbLikeYCbCr exposes three planes as a single RGB image so that a scaler can
// resample all of them in one pass: Y travels in R, Cb in G and Cr in B.
// Chroma planes are half size, so only the top left quadrant carries chroma.
type rgbLikeYCbCr struct {
	y  *image.Gray
	cb *image.Gray
	cr *image.Gray
}

func (p *rgbLikeYCbCr) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *rgbLikeYCbCr) Bounds() image.Rectangle {
	return p.y.Rect
}

// At clamps chroma lookups to the chroma plane, so interpolating scalers
// sampling past its right or bottom edge see the edge value instead of zero.
func (p *rgbLikeYCbCr) At(x, y int) color.Color {
	yy := p.y.GrayAt(x, y).Y
	if p.cb.Rect.Empty() {
		return color.RGBA{yy, 0, 0, 255}
	}
	cx := clampInt(x, p.cb.Rect.Min.X, p.cb.Rect.Max.X-1)
	cy := clampInt(y, p.cb.Rect.Min.Y, p.cb.Rect.Max.Y-1)
	cb := p.cb.GrayAt(cx, cy).Y
	cr := p.cr.GrayAt(cx, cy).Y
	return color.RGBA{yy, cb, cr, 255}
}

func (p *rgbLikeYCbCr) Set(x, y int, c color.Color) {
	rgb := color.RGBA64Model.Convert(c).(color.RGBA64)
	p.y.SetGray(x, y, color.Gray{uint8(rgb.R / 0x100)})
	if (image.Point{x, y}.In(p.cb.Rect)) {
		p.cb.SetGray(x, y, color.Gray{uint8(rgb.G / 0x100)})
		p.cr.SetGray(x, y, color.Gray{uint8(rgb.B / 0x100)})
	}
}

// load points the planes at f, splitting its interleaved chroma into cb and cr.
func (p *rgbLikeYCbCr) load(y []uint8, uv []uint8, width, height int) {
	rect := image.Rect(0, 0, width, height)
	chromaRect := image.Rect(0, 0, width/2, height/2)
	ci := width * height / 4

	*p.y = image.Gray{Pix: y, Stride: width, Rect: rect}
	*p.cb = image.Gray{Pix: resize(p.cb.Pix, ci), Stride: width / 2, Rect: chromaRect}
	*p.cr = image.Gray{Pix: resize(p.cr.Pix, ci), Stride: width / 2, Rect: chromaRect}
	if uv == nil {
		return
	}
	for i := 0; i < ci; i++ {
		p.cb.Pix[i] = uv[2*i]
		p.cr.Pix[i] = uv[2*i+1]
	}
}

// interleave writes cb and cr back as U/V pairs into uv.
func (p *rgbLikeYCbCr) interleave(uv []uint8) {
	for i := range p.cb.Pix {
		uv[2*i] = p.cb.Pix[i]
		uv[2*i+1] = p.cr.Pix[i]
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func resize(buf []uint8, n int) []uint8 {
	if cap(buf) < n {
		return make([]uint8, n)
	}
	return buf[:n]
}
