// Package raster provides scanline rasterization for 2D paths.
// This file implements SuperBlitter for anti-aliased rendering via 4x supersampling.
// Based on tiny-skia's path_aa.rs (Android/Skia heritage).
package raster

// SupersampleShift controls supersampling level: 2 means 4x (1 << 2 = 4).
const SupersampleShift = 2

// SupersampleScale is the number of subpixels per pixel (4 for 2-bit shift).
const SupersampleScale = 1 << SupersampleShift

// SupersampleMask is used to extract subpixel coordinates.
const SupersampleMask = SupersampleScale - 1

// SuperBlitter accumulates supersampled binary spans into per-pixel
// coverage and hands each finished pixel row to a Sink via BlitAntiH.
type SuperBlitter struct {
	sink Sink
	runs *AlphaRuns

	// Current destination y coordinate (in pixel space).
	currIY int
	// Width of the region being blitted (in pixel space).
	width int
	// Left edge x coordinate (in pixel space).
	left int
	// Left edge x coordinate (in supersampled space).
	superLeft int

	// Current y in supersampled coordinates.
	currY int
	// Top boundary (in pixel space).
	top int

	// Offset hint for AlphaRuns.Add.
	offsetX int
}

// NewSuperBlitter creates a SuperBlitter covering bounds, given in pixel
// space and already intersected with the clip. It returns nil when bounds
// is empty.
func NewSuperBlitter(sink Sink, bounds Rect) *SuperBlitter {
	if bounds.IsEmpty() {
		return nil
	}
	width := bounds.Right - bounds.Left

	return &SuperBlitter{
		sink:      sink,
		runs:      NewAlphaRuns(width),
		currIY:    bounds.Top - 1,
		width:     width,
		left:      bounds.Left,
		superLeft: bounds.Left << SupersampleShift,
		currY:     (bounds.Top << SupersampleShift) - 1,
		top:       bounds.Top,
	}
}

// BlitH receives a span at supersampled coordinates.
func (sb *SuperBlitter) BlitH(x, y, width int) {
	if width <= 0 {
		return
	}

	iy := y >> SupersampleShift

	x -= sb.superLeft
	// Spans reaching left of our region keep only their visible part.
	if x < 0 {
		width += x
		x = 0
		if width <= 0 {
			return
		}
	}
	if limit := sb.width << SupersampleShift; x+width > limit {
		width = limit - x
		if width <= 0 {
			return
		}
	}

	// Reset offset when moving to new supersampled row
	if sb.currY != y {
		sb.offsetX = 0
		sb.currY = y
	}

	// Flush when moving to new pixel row
	if iy != sb.currIY {
		sb.Flush()
		sb.currIY = iy
	}

	start := x
	stop := x + width

	// Calculate partial coverage for start and end pixels
	fb := start & SupersampleMask
	fe := stop & SupersampleMask
	n := (stop >> SupersampleShift) - (start >> SupersampleShift) - 1

	if n < 0 {
		// Start and end in same pixel
		fb = fe - fb
		n = 0
		fe = 0
	} else {
		if fb == 0 {
			n++
		} else {
			fb = SupersampleScale - fb
		}
	}

	// Four supersampled rows add up to 255, not 256: the last row of each
	// pixel contributes one less.
	//nolint:gosec // bounded calculation, max result is 64
	maxValue := uint8((1 << (8 - SupersampleShift)) - (((y & SupersampleMask) + 1) >> SupersampleShift))

	sb.offsetX = sb.runs.Add(
		x>>SupersampleShift,
		coverageToPartialAlpha(fb),
		n,
		coverageToPartialAlpha(fe),
		maxValue,
		sb.offsetX,
	)
}

// Flush hands the accumulated row to the sink and resets the buffer.
func (sb *SuperBlitter) Flush() {
	if sb.currIY < sb.top {
		return
	}

	if !sb.runs.IsEmpty() {
		sb.sink.BlitAntiH(sb.left, sb.currIY, sb.runs.Alpha(), sb.runs.Runs())
		sb.runs.Reset(sb.width)
		sb.offsetX = 0
	}
	sb.currIY = sb.top - 1
}

// coverageToPartialAlpha converts fractional coverage to alpha contribution.
// The coverage is accumulated by AlphaRuns which handles clamping 256->255.
func coverageToPartialAlpha(coverage int) uint8 {
	// For SupersampleShift=2, coverage is 0-4, shifted by 4 bits -> 0-64
	return uint8(coverage << (8 - 2*SupersampleShift)) //nolint:gosec // bounded by 64
}
