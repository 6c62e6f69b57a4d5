// SPDX-License-Identifier: GPL-2.0-or-later

package renderer

import (
	"image/color"
)

const bytesPerPixel = 4

// Bitmap is a 32 bit XRGB8888 pixel buffer, stored little endian.
type Bitmap struct {
	W, H   int
	Stride int // in bytes
	Pix    []byte
}

func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		W:      w,
		H:      h,
		Stride: w * bytesPerPixel,
		Pix:    make([]byte, w*h*bytesPerPixel),
	}
}

// wrapPixels uses pix as backing store without copying.
func wrapPixels(pix []byte, w, h, stride int) *Bitmap {
	return &Bitmap{W: w, H: h, Stride: stride, Pix: pix}
}

func (b *Bitmap) Row(y int) []byte {
	o := y * b.Stride
	return b.Pix[o : o+b.W*bytesPerPixel]
}

func (b *Bitmap) Set(x, y int, c color.RGBA) {
	o := y*b.Stride + x*bytesPerPixel
	b.Pix[o+0] = c.B
	b.Pix[o+1] = c.G
	b.Pix[o+2] = c.R
	b.Pix[o+3] = c.A
}

func (b *Bitmap) At(x, y int) color.RGBA {
	o := y*b.Stride + x*bytesPerPixel
	return color.RGBA{R: b.Pix[o+2], G: b.Pix[o+1], B: b.Pix[o+0], A: b.Pix[o+3]}
}

func (b *Bitmap) Fill(c color.RGBA) {
	if b.W == 0 || b.H == 0 {
		return
	}
	first := b.Row(0)
	for x := 0; x < b.W; x++ {
		b.Set(x, 0, c)
	}
	for y := 1; y < b.H; y++ {
		copy(b.Row(y), first)
	}
}

// blitCentered copies src into the middle of dst.
func blitCentered(dst, src *Bitmap) {
	sx := (dst.W - src.W) >> 1
	sy := (dst.H - src.H) >> 1
	for y := 0; y < src.H; y++ {
		o := (sy+y)*dst.Stride + sx*bytesPerPixel
		copy(dst.Pix[o:o+src.W*bytesPerPixel], src.Row(y))
	}
}
