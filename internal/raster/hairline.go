package raster

import "github.com/gogpu/scan/internal/fixed"

// HairLine draws a binary one-pixel line between two FDot6 endpoints,
// stepping along the major axis and rounding the minor ordinate to the
// pixel containing it. Each step emits a single-pixel BlitH. Clipping is
// the caller's job: wrap s in a RectClipper or region clipper.
// Based on Skia's SkScan_Hairline.cpp.
func HairLine(s Sink, x0, y0, x1, y1 fixed.FDot6) {
	if anyBadInts(x0, y0, x1, y1) {
		return
	}
	dx, dy := x1-x0, y1-y0

	if fixed.Abs(dx) > fixed.Abs(dy) {
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		ix0, ix1 := x0.Round(), x1.Round()
		if ix0 == ix1 {
			return
		}
		slope := fixed.Div(int32(y1-y0), int32(x1-x0))
		fy := fixed.FDot6ToFixed(y0) + (slope*fixed.Fixed((32-x0)&fixed.FDot6Mask))>>6
		if slope == 0 {
			s.BlitH(ix0, fy.Floor(), ix1-ix0)
			return
		}
		for x := ix0; x < ix1; x++ {
			s.BlitH(x, fy.Floor(), 1)
			fy += slope
		}
		return
	}

	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	iy0, iy1 := y0.Round(), y1.Round()
	if iy0 == iy1 {
		return
	}
	slope := fixed.Div(int32(x1-x0), int32(y1-y0))
	fx := fixed.FDot6ToFixed(x0) + (slope*fixed.Fixed((32-y0)&fixed.FDot6Mask))>>6
	if slope == 0 {
		s.BlitV(fx.Floor(), iy0, iy1-iy0, 0xFF)
		return
	}
	for y := iy0; y < iy1; y++ {
		s.BlitH(fx.Floor(), y, 1)
		fx += slope
	}
}
