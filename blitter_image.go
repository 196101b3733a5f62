package scan

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/scan/internal/blend"
)

// AlphaBlitter accumulates coverage into an *image.Alpha. Each blit
// combines with what is already there as independent coverage, so
// overlapping partial blits grow towards opaque but never exceed it.
// Pixels outside the image are dropped.
type AlphaBlitter struct {
	img    *image.Alpha
	bounds IRect
}

// NewAlphaBlitter returns a blitter drawing into img.
func NewAlphaBlitter(img *image.Alpha) *AlphaBlitter {
	return &AlphaBlitter{img: img, bounds: IRectFromImage(img.Rect)}
}

// Image returns the destination image.
func (b *AlphaBlitter) Image() *image.Alpha { return b.img }

func (b *AlphaBlitter) span(x, y, width int, alpha uint8) {
	if y < b.bounds.Top || y >= b.bounds.Bottom || alpha == 0 {
		return
	}
	left, right := max(x, b.bounds.Left), min(x+width, b.bounds.Right)
	if left >= right {
		return
	}
	off := b.img.PixOffset(left, y)
	for i, p := range b.img.Pix[off : off+right-left] {
		b.img.Pix[off+i] = blend.InvAlphaMul(p, alpha)
	}
}

// BlitH implements Blitter.
func (b *AlphaBlitter) BlitH(x, y, width int) { b.span(x, y, width, 0xFF) }

// BlitAntiH implements Blitter.
func (b *AlphaBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	for i := 0; i < len(runs) && runs[i] > 0; i += int(runs[i]) {
		b.span(x+i, y, int(runs[i]), alpha[i])
	}
}

// BlitV implements Blitter.
func (b *AlphaBlitter) BlitV(x, y, height int, alpha uint8) {
	for ; height > 0; height-- {
		b.span(x, y, 1, alpha)
		y++
	}
}

// BlitRect implements Blitter.
func (b *AlphaBlitter) BlitRect(x, y, width, height int) {
	for ; height > 0; height-- {
		b.span(x, y, width, 0xFF)
		y++
	}
}

// BlitAntiH2 implements AntiH2Blitter.
func (b *AlphaBlitter) BlitAntiH2(x, y int, alpha0, alpha1 uint8) {
	b.span(x, y, 1, alpha0)
	b.span(x+1, y, 1, alpha1)
}

// BlitAntiV2 implements AntiH2Blitter.
func (b *AlphaBlitter) BlitAntiV2(x, y int, alpha0, alpha1 uint8) {
	b.span(x, y, 1, alpha0)
	b.span(x, y+1, 1, alpha1)
}

// BlitMask implements Blitter.
func (b *AlphaBlitter) BlitMask(m *Mask, clip IRect) {
	r, ok := clip.Intersect(m.Bounds)
	if !ok {
		return
	}
	if r, ok = r.Intersect(b.bounds); !ok {
		return
	}
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			b.span(x, y, 1, m.Alpha(x, y))
		}
	}
}

// ColorBlitter composites a solid color over a draw.Image, using each
// blit's coverage as the mask.
type ColorBlitter struct {
	dst draw.Image
	src *image.Uniform
}

// NewColorBlitter returns a blitter painting c onto dst.
func NewColorBlitter(dst draw.Image, c color.Color) *ColorBlitter {
	return &ColorBlitter{dst: dst, src: image.NewUniform(c)}
}

func (b *ColorBlitter) fill(r image.Rectangle, alpha uint8) {
	switch alpha {
	case 0:
	case 0xFF:
		draw.Draw(b.dst, r, b.src, image.Point{}, draw.Over)
	default:
		mask := image.NewUniform(color.Alpha{A: alpha})
		draw.DrawMask(b.dst, r, b.src, image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// BlitH implements Blitter.
func (b *ColorBlitter) BlitH(x, y, width int) {
	b.fill(image.Rect(x, y, x+width, y+1), 0xFF)
}

// BlitAntiH implements Blitter.
func (b *ColorBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	for i := 0; i < len(runs) && runs[i] > 0; i += int(runs[i]) {
		b.fill(image.Rect(x+i, y, x+i+int(runs[i]), y+1), alpha[i])
	}
}

// BlitV implements Blitter.
func (b *ColorBlitter) BlitV(x, y, height int, alpha uint8) {
	b.fill(image.Rect(x, y, x+1, y+height), alpha)
}

// BlitRect implements Blitter.
func (b *ColorBlitter) BlitRect(x, y, width, height int) {
	b.fill(image.Rect(x, y, x+width, y+height), 0xFF)
}

// BlitMask implements Blitter.
func (b *ColorBlitter) BlitMask(m *Mask, clip IRect) {
	r, ok := clip.Intersect(m.Bounds)
	if !ok {
		return
	}
	ri := r.Image()
	draw.DrawMask(b.dst, ri, b.src, image.Point{}, m.ToImage(), ri.Min, draw.Over)
}
