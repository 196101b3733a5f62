// Package raster provides scanline rasterization for 2D paths.
// This file implements anti-aliased rectangle fills and frames in 24.8
// fixed point. Based on Skia's SkScan_Antihair.cpp (Android/Skia heritage).
package raster

import (
	"github.com/gogpu/scan/internal/blend"
	"github.com/gogpu/scan/internal/fixed"
)

// DotRect is a rectangle with 24.8 fixed-point edges.
type DotRect struct {
	Left, Top, Right, Bottom fixed.FDot8
}

// IsEmpty reports whether r has no area at 24.8 precision.
func (r DotRect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// AntiFillRect fills r with coverage proportional to the area of each
// pixel it overlaps. Fully covered rows between the partial top and
// bottom rows go out as one BlitAntiRect.
func AntiFillRect(s Sink, r DotRect) {
	antiFillDot8(s, r.Left, r.Top, r.Right, r.Bottom, true)
}

func antiFillDot8(s Sink, l, t, r, b fixed.FDot8, fillInner bool) {
	if l >= r || t >= b {
		return
	}

	top := int(t >> 8)
	if top == int((b-1)>>8) {
		// One scanline high.
		antiScanline(s, l, top, r, uint32(b-t-1)) //nolint:gosec // b-t-1 < 256
		return
	}
	if t&0xFF != 0 {
		antiScanline(s, l, top, r, uint32(256-(t&0xFF))) //nolint:gosec // in (0, 256)
		top++
	}

	bot := int(b >> 8)
	if height := bot - top; height > 0 {
		left := int(l >> 8)
		switch {
		case left == int((r-1)>>8):
			// One pixel wide.
			s.BlitV(left, top, height, uint8(r-l-1)) //nolint:gosec // r-l-1 < 256
		case fillInner:
			leftAlpha := uint8(0xFF)
			if l&0xFF != 0 {
				leftAlpha = uint8(256 - (l & 0xFF)) //nolint:gosec // in (0, 256)
			}
			rite := int(r >> 8)
			BlitAntiRect(s, left, top, rite-left-1, height, leftAlpha, uint8(r&0xFF)) //nolint:gosec // low byte
		default:
			if l&0xFF != 0 {
				s.BlitV(left, top, height, uint8(256-(l&0xFF))) //nolint:gosec // in (0, 256)
			}
			if r&0xFF != 0 {
				s.BlitV(int(r>>8), top, height, uint8(r&0xFF)) //nolint:gosec // low byte
			}
		}
	}

	if b&0xFF != 0 {
		antiScanline(s, l, bot, r, uint32(b&0xFF)) //nolint:gosec // low byte
	}
}

// antiScanline covers one row from l to r with alpha scaled by the
// horizontal coverage of the end pixels.
func antiScanline(s Sink, l fixed.FDot8, top int, r fixed.FDot8, alpha uint32) {
	if l>>8 == (r-1)>>8 {
		// 1x1 pixel.
		s.BlitV(int(l>>8), top, 1, uint8(blend.AlphaMul(alpha, uint32(r-l)))) //nolint:gosec // at most alpha
		return
	}

	left := int(l >> 8)
	if l&0xFF != 0 {
		s.BlitV(left, top, 1, uint8(blend.AlphaMul(alpha, uint32(256-(l&0xFF))))) //nolint:gosec // at most alpha
		left++
	}
	rite := int(r >> 8)
	if width := rite - left; width > 0 {
		BlitHLine(s, left, top, width, uint8(alpha)) //nolint:gosec // alpha < 256
	}
	if r&0xFF != 0 {
		s.BlitV(rite, top, 1, uint8(blend.AlphaMul(alpha, uint32(r&0xFF)))) //nolint:gosec // at most alpha
	}
}

// AntiFrameRect strokes the ring between outer and inner. The outer hull
// is anti-aliased like a fill, the opaque middle goes out as up to four
// BlitRects and the inner hull is anti-aliased with the inverse bias.
// thin must be set when the stroke is narrower than a pixel on either
// axis; it aligns hulls sharing a pixel so no row is blitted twice.
func AntiFrameRect(s Sink, outer, inner DotRect, thin bool) {
	if thin {
		alignThinStroke(&outer.Left, &inner.Left)
		alignThinStroke(&outer.Top, &inner.Top)
		alignThinStroke(&inner.Right, &outer.Right)
		alignThinStroke(&inner.Bottom, &outer.Bottom)
	}

	antiFillDot8(s, outer.Left, outer.Top, outer.Right, outer.Bottom, false)

	mid := Rect{outer.Left.Ceil(), outer.Top.Ceil(), outer.Right.Floor(), outer.Bottom.Floor()}
	if inner.IsEmpty() {
		fillCheckRect(s, mid.Left, mid.Top, mid.Right, mid.Bottom)
		return
	}

	in := Rect{inner.Left.Floor(), inner.Top.Floor(), inner.Right.Ceil(), inner.Bottom.Ceil()}
	fillCheckRect(s, mid.Left, mid.Top, mid.Right, in.Top)
	fillCheckRect(s, mid.Left, in.Top, in.Left, in.Bottom)
	fillCheckRect(s, in.Right, in.Top, mid.Right, in.Bottom)
	fillCheckRect(s, mid.Left, in.Bottom, mid.Right, mid.Bottom)

	innerStrokeDot8(s, inner.Left, inner.Top, inner.Right, inner.Bottom)
}

// alignThinStroke snaps edge1 to its pixel boundary when both edges fall
// in the same pixel, shifting edge2 by the same amount.
func alignThinStroke(edge1, edge2 *fixed.FDot8) {
	if edge1.Floor() == edge2.Floor() {
		*edge2 -= *edge1 & 0xFF
		*edge1 &^= 0xFF
	}
}

func fillCheckRect(s Sink, l, t, r, b int) {
	if l < r && t < b {
		s.BlitRect(l, t, r-l, b-t)
	}
}

// innerStrokeDot8 is antiFillDot8 for the inside edge of a frame: each
// partial pixel is covered by the part outside the inner rectangle.
func innerStrokeDot8(s Sink, l, t, r, b fixed.FDot8) {
	top := int(t >> 8)
	if top == int((b-1)>>8) {
		if alpha := 256 - (b - t); alpha != 0 {
			innerScanline(s, l, top, r, uint8(alpha)) //nolint:gosec // b > t
		}
		return
	}
	if t&0xFF != 0 {
		innerScanline(s, l, top, r, uint8(t&0xFF)) //nolint:gosec // low byte
		top++
	}

	bot := int(b >> 8)
	if height := bot - top; height > 0 {
		if l&0xFF != 0 {
			s.BlitV(int(l>>8), top, height, uint8(l&0xFF)) //nolint:gosec // low byte
		}
		if r&0xFF != 0 {
			s.BlitV(int(r>>8), top, height, uint8(^r&0xFF)) //nolint:gosec // low byte
		}
	}

	if b&0xFF != 0 {
		innerScanline(s, l, bot, r, uint8(^b&0xFF)) //nolint:gosec // low byte
	}
}

func innerScanline(s Sink, l fixed.FDot8, top int, r fixed.FDot8, alpha uint8) {
	if l>>8 == (r-1)>>8 {
		// 1x1 pixel; a full-width pixel clamps to 255.
		w := r - l
		w -= w >> 8
		s.BlitV(int(l>>8), top, 1, blend.InvAlphaMul(alpha, uint8(w))) //nolint:gosec // w < 256
		return
	}

	left := int(l >> 8)
	if l&0xFF != 0 {
		s.BlitV(left, top, 1, blend.InvAlphaMul(alpha, uint8(l&0xFF))) //nolint:gosec // low byte
		left++
	}
	rite := int(r >> 8)
	if width := rite - left; width > 0 {
		BlitHLine(s, left, top, width, alpha)
	}
	if r&0xFF != 0 {
		s.BlitV(rite, top, 1, blend.InvAlphaMul(alpha, uint8(^r&0xFF))) //nolint:gosec // low byte
	}
}
