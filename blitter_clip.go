package scan

import "github.com/gogpu/scan/internal/raster"

// RectClipBlitter forwards to another Blitter only the parts of each blit
// inside a rectangle. BlitAntiH may rewrite the caller's arrays.
type RectClipBlitter struct {
	dst  Blitter
	clip IRect
	rc   raster.RectClipper
}

// NewRectClipBlitter returns a blitter restricting dst to clip.
func NewRectClipBlitter(dst Blitter, clip IRect) *RectClipBlitter {
	return &RectClipBlitter{
		dst:  dst,
		clip: clip,
		rc:   raster.RectClipper{Sink: dst, Clip: clip.raster()},
	}
}

// BlitH implements Blitter.
func (b *RectClipBlitter) BlitH(x, y, width int) { b.rc.BlitH(x, y, width) }

// BlitAntiH implements Blitter.
func (b *RectClipBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	b.rc.BlitAntiH(x, y, alpha, runs)
}

// BlitV implements Blitter.
func (b *RectClipBlitter) BlitV(x, y, height int, alpha uint8) { b.rc.BlitV(x, y, height, alpha) }

// BlitRect implements Blitter.
func (b *RectClipBlitter) BlitRect(x, y, width, height int) { b.rc.BlitRect(x, y, width, height) }

// BlitAntiRect implements AntiRectBlitter.
func (b *RectClipBlitter) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	b.rc.BlitAntiRect(x, y, width, height, leftAlpha, rightAlpha)
}

// BlitMask implements Blitter.
func (b *RectClipBlitter) BlitMask(m *Mask, clip IRect) {
	if r, ok := clip.Intersect(b.clip); ok {
		b.dst.BlitMask(m, r)
	}
}

// RegionClipBlitter forwards to another Blitter only the parts of each
// blit inside a Region.
type RegionClipBlitter struct {
	dst Blitter
	rgn *Region
}

// NewRegionClipBlitter returns a blitter restricting dst to rgn.
func NewRegionClipBlitter(dst Blitter, rgn *Region) *RegionClipBlitter {
	return &RegionClipBlitter{dst: dst, rgn: rgn}
}

// BlitH implements Blitter.
func (b *RegionClipBlitter) BlitH(x, y, width int) {
	for left, right := range b.rgn.Spans(y, x, x+width) {
		b.dst.BlitH(left, y, right-left)
	}
}

// BlitAntiH implements Blitter. Runs between the region's spans are
// zeroed and the array is cut after the last span.
func (b *RegionClipBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	width := raster.AntiWidth(runs)
	first, prevRite := -1, x
	for left, right := range b.rgn.Spans(y, x, x+width) {
		raster.Break(runs, alpha, left-x, right-left)
		if first < 0 {
			first = left
		} else if left > prevRite {
			i := prevRite - x
			alpha[i] = 0
			runs[i] = int16(left - prevRite) //nolint:gosec // bounded by the run width
		}
		prevRite = right
	}
	if first < 0 {
		return
	}
	runs[prevRite-x] = 0
	off := first - x
	b.dst.BlitAntiH(first, y, alpha[off:], runs[off:])
}

// BlitV implements Blitter.
func (b *RegionClipBlitter) BlitV(x, y, height int, alpha uint8) {
	for r := range b.rgn.Cliperator(IRect{x, y, x + 1, y + height}) {
		b.dst.BlitV(r.Left, r.Top, r.Height(), alpha)
	}
}

// BlitRect implements Blitter.
func (b *RegionClipBlitter) BlitRect(x, y, width, height int) {
	for r := range b.rgn.Cliperator(IRect{x, y, x + width, y + height}) {
		b.dst.BlitRect(r.Left, r.Top, r.Width(), r.Height())
	}
}

// BlitAntiRect implements AntiRectBlitter.
func (b *RegionClipBlitter) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	for r := range b.rgn.Cliperator(IRect{x, y, x + width + 2, y + height}) {
		raster.NewRectClipper(b.dst, r.raster()).BlitAntiRect(x, y, width, height, leftAlpha, rightAlpha)
	}
}

// BlitMask implements Blitter.
func (b *RegionClipBlitter) BlitMask(m *Mask, clip IRect) {
	for r := range b.rgn.Cliperator(clip) {
		b.dst.BlitMask(m, r)
	}
}

// clipBlitter returns the blitter to draw through when drawing inside
// bounds under clip. It reports false when nothing can be drawn. A nil
// clip leaves b unclipped.
func clipBlitter(b Blitter, clip *Region, bounds IRect) (Blitter, bool) {
	switch {
	case clip == nil:
		return b, true
	case clip.QuickReject(bounds):
		return nil, false
	case clip.IsRect():
		if clip.Bounds().Contains(bounds) {
			return b, true
		}
		return NewRectClipBlitter(b, clip.Bounds()), true
	default:
		return NewRegionClipBlitter(b, clip), true
	}
}
