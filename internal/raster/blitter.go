// Package raster provides scanline rasterization for 2D paths.
// This file declares the blitter contract the scan converters drive.
// Based on Skia's SkBlitter (Android/Skia heritage).
package raster

// Sink receives coverage from the scan converters
// (internal copy of scan.Blitter without mask support to avoid import cycle).
//
// BlitAntiH takes a sparse run array: runs[i] is the length of the span of
// constant alpha[i] that starts at x+i, the next span starts at index
// i+runs[i], and a zero entry terminates the array.
type Sink interface {
	BlitH(x, y, width int)
	BlitAntiH(x, y int, alpha []uint8, runs []int16)
	BlitV(x, y, height int, alpha uint8)
	BlitRect(x, y, width, height int)
}

// AntiH2Sink is an optional interface for sinks with a faster path for
// two-pixel anti-aliased runs, the common case for hairlines.
type AntiH2Sink interface {
	BlitAntiH2(x, y int, alpha0, alpha1 uint8)
	BlitAntiV2(x, y int, alpha0, alpha1 uint8)
}

// AntiRectSink is an optional interface for sinks that can take a
// rectangle with partially covered left and right columns in one call.
type AntiRectSink interface {
	BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8)
}

// Rect is an integer rectangle given by its edges, right and bottom
// exclusive (internal copy to avoid import cycle).
type Rect struct {
	Left, Top, Right, Bottom int
}

// IsEmpty reports whether r covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	i := Rect{max(r.Left, o.Left), max(r.Top, o.Top), min(r.Right, o.Right), min(r.Bottom, o.Bottom)}
	return i, !i.IsEmpty()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return r.Left <= o.Left && r.Top <= o.Top && r.Right >= o.Right && r.Bottom >= o.Bottom
}

// BlitAntiH2 blits two horizontally adjacent pixels, falling back to a
// two-run BlitAntiH when s has no dedicated path.
func BlitAntiH2(s Sink, x, y int, alpha0, alpha1 uint8) {
	if f, ok := s.(AntiH2Sink); ok {
		f.BlitAntiH2(x, y, alpha0, alpha1)
		return
	}
	alpha := [2]uint8{alpha0, alpha1}
	runs := [3]int16{1, 1, 0}
	s.BlitAntiH(x, y, alpha[:], runs[:])
}

// BlitAntiV2 blits two vertically adjacent pixels, falling back to two
// single-pixel BlitAntiH calls when s has no dedicated path.
func BlitAntiV2(s Sink, x, y int, alpha0, alpha1 uint8) {
	if f, ok := s.(AntiH2Sink); ok {
		f.BlitAntiV2(x, y, alpha0, alpha1)
		return
	}
	alpha := [1]uint8{alpha0}
	runs := [2]int16{1, 0}
	s.BlitAntiH(x, y, alpha[:], runs[:])
	alpha[0] = alpha1
	runs[0] = 1 // s may have rewritten the runs
	runs[1] = 0
	s.BlitAntiH(x, y+1, alpha[:], runs[:])
}

// BlitAntiRect blits a rectangle whose column x has leftAlpha, whose next
// width columns are opaque and whose column x+width+1 has rightAlpha.
func BlitAntiRect(s Sink, x, y, width, height int, leftAlpha, rightAlpha uint8) {
	if f, ok := s.(AntiRectSink); ok {
		f.BlitAntiRect(x, y, width, height, leftAlpha, rightAlpha)
		return
	}
	if leftAlpha > 0 {
		s.BlitV(x, y, height, leftAlpha)
	}
	x++
	if width > 0 {
		s.BlitRect(x, y, width, height)
		x += width
	}
	if rightAlpha > 0 {
		s.BlitV(x, y, height, rightAlpha)
	}
}

// hlineChunk is the widest run BlitHLine sends in one BlitAntiH call.
const hlineChunk = 100

// BlitHLine blits a horizontal run of constant alpha, using BlitH for
// opaque coverage.
func BlitHLine(s Sink, x, y, width int, alpha uint8) {
	if alpha == 0xFF {
		s.BlitH(x, y, width)
		return
	}
	if alpha == 0 || width <= 0 {
		return
	}
	var (
		aa   [hlineChunk + 1]uint8
		runs [hlineChunk + 1]int16
	)
	for width > 0 {
		n := min(width, hlineChunk)
		aa[0] = alpha
		runs[0] = int16(n) //nolint:gosec // n <= hlineChunk
		runs[n] = 0
		s.BlitAntiH(x, y, aa[:], runs[:])
		x += n
		width -= n
	}
}

// AntiWidth returns the pixel width described by a sparse run array.
func AntiWidth(runs []int16) int {
	width := 0
	for i := 0; i < len(runs); {
		n := int(runs[i])
		if n <= 0 {
			break
		}
		width += n
		i += n
	}
	return width
}

// BreakAt splits the run containing offset x so that a run starts there.
func BreakAt(runs []int16, alpha []uint8, x int) {
	i := 0
	for x > 0 {
		n := int(runs[i])
		if n <= 0 {
			return
		}
		if x < n {
			alpha[i+x] = alpha[i]
			runs[i] = int16(x)       //nolint:gosec // x < n
			runs[i+x] = int16(n - x) //nolint:gosec // n-x < n
			return
		}
		i += n
		x -= n
	}
}

// Break splits runs so that runs start at offsets x and x+count.
func Break(runs []int16, alpha []uint8, x, count int) {
	BreakAt(runs, alpha, x)
	i := x
	for {
		n := int(runs[i])
		if n <= 0 {
			return
		}
		if count < n {
			alpha[i+count] = alpha[i]
			runs[i] = int16(count)           //nolint:gosec // count < n
			runs[i+count] = int16(n - count) //nolint:gosec // n-count < n
			return
		}
		count -= n
		if count <= 0 {
			return
		}
		i += n
	}
}
