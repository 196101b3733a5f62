// Package raster provides scanline rasterization for 2D paths.
// This file implements the anti-aliased hairline rendering algorithm.
// Based on Skia's SkScan_Antihair.cpp (Android/Skia heritage).
//
// The algorithm uses fixed-point arithmetic for precision:
//   - FDot6: 26.6 for endpoints (64 subpixel positions)
//   - Fixed: 16.16 for slopes and interpolation
//
// A hairline covers a band one pixel wide. At every step along the major
// axis its coverage is split between the two pixels straddling the minor
// ordinate, and the first and last steps are scaled by how much of the
// pixel the line spans.
package raster

import "github.com/gogpu/scan/internal/fixed"

// maxHairlineDelta is the longest delta, in FDot6, drawn in one pass.
// Longer lines are bisected so that slope arithmetic stays within 16.16.
const maxHairlineDelta = fixed.FDot6(511 << fixed.FDot6Shift)

// hairStepper draws one family of hairline. x is the major-axis pixel
// index, f the minor ordinate in 16.16 and slope its per-pixel step.
type hairStepper interface {
	// drawCap draws one partial step scaled by mod64/64 and returns the
	// advanced ordinate.
	drawCap(x int, f, slope fixed.Fixed, mod64 int) fixed.Fixed
	// drawLine draws full steps for x in [x, stop).
	drawLine(x, stop int, f, slope fixed.Fixed) fixed.Fixed
}

// split returns the pixel index and the 8-bit fraction of f centered on
// the pixel.
func split(f fixed.Fixed) (int, uint8) {
	return int(f >> fixed.Shift), uint8(f >> 8) //nolint:gosec // low byte
}

// hlineStepper draws exactly horizontal lines.
type hlineStepper struct{ s Sink }

func (h hlineStepper) drawCap(x int, fy, _ fixed.Fixed, mod64 int) fixed.Fixed {
	y, a := split(fy + fixed.Half)
	if ma := fixed.SmallDot6Scale(a, mod64); ma != 0 {
		BlitHLine(h.s, x, y, 1, ma)
	}
	if ma := fixed.SmallDot6Scale(255-a, mod64); ma != 0 {
		BlitHLine(h.s, x, y-1, 1, ma)
	}
	return fy
}

func (h hlineStepper) drawLine(x, stop int, fy, _ fixed.Fixed) fixed.Fixed {
	y, a := split(fy + fixed.Half)
	if a != 0 {
		BlitHLine(h.s, x, y, stop-x, a)
	}
	if a != 0xFF {
		BlitHLine(h.s, x, y-1, stop-x, 255-a)
	}
	return fy
}

// horishStepper draws lines that are mostly horizontal.
type horishStepper struct{ s Sink }

func (h horishStepper) drawCap(x int, fy, dy fixed.Fixed, mod64 int) fixed.Fixed {
	y, a := split(fy + fixed.Half)
	BlitAntiV2(h.s, x, y-1, fixed.SmallDot6Scale(255-a, mod64), fixed.SmallDot6Scale(a, mod64))
	return fy + dy
}

func (h horishStepper) drawLine(x, stop int, fy, dy fixed.Fixed) fixed.Fixed {
	fy += fixed.Half
	for ; x < stop; x++ {
		y, a := split(fy)
		BlitAntiV2(h.s, x, y-1, 255-a, a)
		fy += dy
	}
	return fy - fixed.Half
}

// vlineStepper draws exactly vertical lines.
type vlineStepper struct{ s Sink }

func (v vlineStepper) drawCap(y int, fx, _ fixed.Fixed, mod64 int) fixed.Fixed {
	x, a := split(fx + fixed.Half)
	if ma := fixed.SmallDot6Scale(a, mod64); ma != 0 {
		v.s.BlitV(x, y, 1, ma)
	}
	if ma := fixed.SmallDot6Scale(255-a, mod64); ma != 0 {
		v.s.BlitV(x-1, y, 1, ma)
	}
	return fx
}

func (v vlineStepper) drawLine(y, stop int, fx, _ fixed.Fixed) fixed.Fixed {
	x, a := split(fx + fixed.Half)
	if a != 0 {
		v.s.BlitV(x, y, stop-y, a)
	}
	if a != 0xFF {
		v.s.BlitV(x-1, y, stop-y, 255-a)
	}
	return fx
}

// vertishStepper draws lines that are mostly vertical.
type vertishStepper struct{ s Sink }

func (v vertishStepper) drawCap(y int, fx, dx fixed.Fixed, mod64 int) fixed.Fixed {
	x, a := split(fx + fixed.Half)
	BlitAntiH2(v.s, x-1, y, fixed.SmallDot6Scale(255-a, mod64), fixed.SmallDot6Scale(a, mod64))
	return fx + dx
}

func (v vertishStepper) drawLine(y, stop int, fx, dx fixed.Fixed) fixed.Fixed {
	fx += fixed.Half
	for ; y < stop; y++ {
		x, a := split(fx)
		BlitAntiH2(v.s, x-1, y, 255-a, a)
		fx += dx
	}
	return fx - fixed.Half
}

// AntiHairLine draws an anti-aliased one-pixel line between two FDot6
// endpoints. When clip is non-nil nothing is drawn outside it.
//
// Lines whose delta exceeds 511 pixels on either axis are bisected.
// Endpoints equal to fixed.BadInt, the image of a NaN, are ignored.
func AntiHairLine(s Sink, x0, y0, x1, y1 fixed.FDot6, clip *Rect) {
	if anyBadInts(x0, y0, x1, y1) {
		return
	}

	if fixed.Abs(x1-x0) > maxHairlineDelta || fixed.Abs(y1-y0) > maxHairlineDelta {
		hx := (x0 >> 1) + (x1 >> 1)
		hy := (y0 >> 1) + (y1 >> 1)
		AntiHairLine(s, x0, y0, hx, hy, clip)
		AntiHairLine(s, hx, hy, x1, y1, clip)
		return
	}

	var l hairline
	var ok bool
	if fixed.Abs(x1-x0) > fixed.Abs(y1-y0) {
		l, ok = setupHorizontal(x0, y0, x1, y1, clip)
	} else {
		l, ok = setupVertical(x0, y0, x1, y1, clip)
	}
	if !ok {
		return
	}

	if l.clip != nil {
		s = NewRectClipper(s, *l.clip)
	}
	var step hairStepper
	switch l.kind {
	case hairHLine:
		step = hlineStepper{s}
	case hairHorish:
		step = horishStepper{s}
	case hairVLine:
		step = vlineStepper{s}
	default:
		step = vertishStepper{s}
	}

	f := step.drawCap(l.start, l.f, l.slope, l.scaleStart)
	l.start++
	fullSpans := l.stop - l.start
	if l.scaleStop > 0 {
		fullSpans--
	}
	if fullSpans > 0 {
		f = step.drawLine(l.start, l.start+fullSpans, f, l.slope)
	}
	if l.scaleStop > 0 {
		step.drawCap(l.stop-1, f, l.slope, l.scaleStop)
	}
}

type hairKind int

const (
	hairHLine hairKind = iota
	hairHorish
	hairVLine
	hairVertish
)

// hairline is a line reduced to steps along its major axis.
type hairline struct {
	kind        hairKind
	start, stop int         // major-axis pixel range [start, stop)
	f, slope    fixed.Fixed // minor ordinate at the first pixel center and its step
	scaleStart  int         // coverage of the first step in 64ths
	scaleStop   int         // coverage of the last step in 64ths, 0 if full
	clip        *Rect       // remaining clip, nil when the line is inside it
}

func setupHorizontal(x0, y0, x1, y1 fixed.FDot6, clip *Rect) (hairline, bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	l := hairline{
		kind:  hairHLine,
		start: x0.Floor(),
		stop:  x1.Ceil(),
		f:     fixed.FDot6ToFixed(y0),
	}
	if y0 != y1 {
		l.kind = hairHorish
		l.slope = fixed.FastDiv(y1-y0, x1-x0)
		l.f += (l.slope*fixed.Fixed(32-(x0&fixed.FDot6Mask)) + 32) >> 6
	}
	setScales(&l, x0, x1)

	if clip == nil {
		return l, true
	}
	ok := clipMajor(&l, x1, clip.Left, clip.Right)
	if !ok {
		return l, false
	}
	top, bottom := minorExtent(&l)
	if top >= clip.Bottom || bottom <= clip.Top {
		return l, false
	}
	if clip.Top > top || clip.Bottom < bottom {
		l.clip = clip
	}
	return l, true
}

func setupVertical(x0, y0, x1, y1 fixed.FDot6, clip *Rect) (hairline, bool) {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	l := hairline{
		kind:  hairVLine,
		start: y0.Floor(),
		stop:  y1.Ceil(),
		f:     fixed.FDot6ToFixed(x0),
	}
	if x0 == x1 {
		if y0 == y1 {
			return l, false
		}
	} else {
		l.kind = hairVertish
		l.slope = fixed.FastDiv(x1-x0, y1-y0)
		l.f += (l.slope*fixed.Fixed(32-(y0&fixed.FDot6Mask)) + 32) >> 6
	}
	setScales(&l, y0, y1)

	if clip == nil {
		return l, true
	}
	ok := clipMajor(&l, y1, clip.Top, clip.Bottom)
	if !ok {
		return l, false
	}
	left, right := minorExtent(&l)
	if left >= clip.Right || right <= clip.Left {
		return l, false
	}
	if clip.Left > left || clip.Right < right {
		l.clip = clip
	}
	return l, true
}

// setScales sets the coverage of the first and last steps from the
// major-axis endpoints a <= b.
func setScales(l *hairline, a, b fixed.FDot6) {
	if l.stop-l.start == 1 {
		// Within a single pixel.
		l.scaleStart = int(b - a)
		l.scaleStop = 0
		return
	}
	l.scaleStart = int(fixed.FDot6One - (a & fixed.FDot6Mask))
	l.scaleStop = int(b & fixed.FDot6Mask)
}

// clipMajor trims the major-axis range to [lo, hi). end is the far
// endpoint, needed when trimming leaves a single pixel.
func clipMajor(l *hairline, end fixed.FDot6, lo, hi int) bool {
	if l.start >= hi || l.stop <= lo {
		return false
	}
	if l.start < lo {
		l.f += l.slope * fixed.Fixed(lo-l.start) //nolint:gosec // bounded by the 511px subdivision
		l.start = lo
		l.scaleStart = 64
		if l.stop-l.start == 1 {
			l.scaleStart = fixed.Contribution64(end)
			l.scaleStop = 0
		}
	}
	if l.stop > hi {
		l.stop = hi
		l.scaleStop = 0
	}
	return l.start < l.stop
}

// minorExtent returns the minor-axis pixel range the line touches, outset
// by one pixel on each side.
func minorExtent(l *hairline) (lo, hi int) {
	last := l.f + fixed.Fixed(l.stop-l.start-1)*l.slope //nolint:gosec // bounded by the 511px subdivision
	if l.slope >= 0 {
		lo = (l.f - fixed.Half).Floor()
		hi = (last + fixed.Half).Ceil()
	} else {
		hi = (l.f + fixed.Half).Ceil()
		lo = (last - fixed.Half).Floor()
	}
	return lo - 1, hi + 1
}

// anyBadInts reports whether any value is the minimum int32, which a NaN
// truncates to and which cannot be negated.
func anyBadInts(a, b, c, d fixed.FDot6) bool {
	return a == fixed.BadInt || b == fixed.BadInt || c == fixed.BadInt || d == fixed.BadInt
}
