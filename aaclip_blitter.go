package scan

import (
	"github.com/gogpu/scan/internal/blend"
	"github.com/gogpu/scan/internal/raster"
)

// AAClipBlitter multiplies every blit's coverage by an AAClip's coverage
// and forwards the result to another Blitter. Blits over fully opaque
// clip areas pass through unchanged; coverage outside the clip bounds is
// dropped.
type AAClipBlitter struct {
	dst  Blitter
	clip *AAClip

	runs []int16
	aa   []uint8
	mask Mask
}

// NewAAClipBlitter returns a blitter drawing into dst through clip. The
// blitter reads clip's encoding directly, so it is valid until clip is
// next modified or released. Hold a copy made with Set to keep the rows
// alive while the original changes.
func NewAAClipBlitter(dst Blitter, clip *AAClip) *AAClipBlitter {
	return &AAClipBlitter{dst: dst, clip: clip}
}

// scratch returns run and alpha buffers wide enough for one clip row.
func (b *AAClipBlitter) scratch() ([]int16, []uint8) {
	n := b.clip.bounds.Width() + 1
	if len(b.runs) < n {
		b.runs = make([]int16, n)
		b.aa = make([]uint8, n)
	}
	return b.runs, b.aa
}

func (b *AAClipBlitter) rowInside(y int) bool {
	return !b.clip.IsEmpty() && y >= b.clip.bounds.Top && y < b.clip.bounds.Bottom
}

// BlitH implements Blitter.
func (b *AAClipBlitter) BlitH(x, y, width int) {
	if !b.rowInside(y) {
		return
	}
	left, right := max(x, b.clip.bounds.Left), min(x+width, b.clip.bounds.Right)
	if left >= right {
		return
	}
	x, width = left, right-left

	row, _ := b.clip.FindRow(y)
	row, n := b.clip.FindX(row, x)
	if n >= width {
		switch row[1] {
		case 0:
			return
		case 0xFF:
			b.dst.BlitH(x, y, width)
			return
		}
	}
	runs, aa := b.scratch()
	expandToRuns(row, n, width, runs, aa)
	b.dst.BlitAntiH(x, y, aa, runs)
}

// expandToRuns writes width pixels of row, whose first run has n pixels
// left, as a sparse run array.
func expandToRuns(row []byte, n, width int, runs []int16, aa []uint8) {
	i := 0
	for {
		n = min(n, width)
		runs[i] = int16(n) //nolint:gosec // n <= 255
		aa[i] = row[1]
		i += n
		width -= n
		if width == 0 {
			break
		}
		row = row[2:]
		n = int(row[0])
	}
	runs[i] = 0
}

// BlitAntiH implements Blitter.
func (b *AAClipBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	if !b.rowInside(y) {
		return
	}
	bounds := b.clip.bounds
	x0, x1 := x, x+raster.AntiWidth(runs)
	if x1 <= bounds.Left || x0 >= bounds.Right {
		return
	}
	if x0 < bounds.Left {
		dx := bounds.Left - x0
		raster.BreakAt(runs, alpha, dx)
		runs, alpha = runs[dx:], alpha[dx:]
		x0 = bounds.Left
	}
	if x1 > bounds.Right {
		raster.BreakAt(runs, alpha, bounds.Right-x0)
		runs[bounds.Right-x0] = 0
	}

	row, _ := b.clip.FindRow(y)
	row, n := b.clip.FindX(row, x0)
	dstRuns, dstAA := b.scratch()
	if mergeRuns(row, n, alpha, runs, dstAA, dstRuns) {
		b.dst.BlitAntiH(x0, y, dstAA, dstRuns)
	}
}

// mergeRuns multiplies the runs of src by the clip row, splitting runs
// where either side changes. It reports false for an empty src.
func mergeRuns(row []byte, rowN int, srcAA []uint8, srcRuns []int16, dstAA []uint8, dstRuns []int16) bool {
	srcN := int(srcRuns[0])
	if srcN == 0 {
		return false
	}
	si, di := 0, 0
	for {
		m := min(srcN, rowN)
		dstRuns[di] = int16(m) //nolint:gosec // m <= 255
		dstAA[di] = blend.MulDiv255Round(srcAA[si], row[1])
		di += m

		if srcN -= m; srcN == 0 {
			si += int(srcRuns[si])
			srcN = int(srcRuns[si])
			if srcN == 0 {
				break
			}
		}
		if rowN -= m; rowN == 0 {
			row = row[2:]
			rowN = int(row[0])
		}
	}
	dstRuns[di] = 0
	return true
}

// BlitV implements Blitter.
func (b *AAClipBlitter) BlitV(x, y, height int, alpha uint8) {
	bounds := b.clip.bounds
	if b.clip.IsEmpty() || x < bounds.Left || x >= bounds.Right {
		return
	}
	top, bottom := max(y, bounds.Top), min(y+height, bounds.Bottom)
	if top >= bottom {
		return
	}
	y, height = top, bottom-top

	if b.clip.QuickContains(IRect{x, y, x + 1, y + height}) {
		b.dst.BlitV(x, y, height, alpha)
		return
	}
	for height > 0 {
		row, lastY := b.clip.FindRow(y)
		dy := min(lastY-y+1, height)
		row, _ = b.clip.FindX(row, x)
		if a := blend.MulDiv255Round(alpha, row[1]); a != 0 {
			b.dst.BlitV(x, y, dy, a)
		}
		height -= dy
		y = lastY + 1
	}
}

// BlitRect implements Blitter.
func (b *AAClipBlitter) BlitRect(x, y, width, height int) {
	r, ok := IRectXYWH(x, y, width, height).Intersect(b.clip.bounds)
	if !ok || b.clip.IsEmpty() {
		return
	}
	if b.clip.QuickContains(r) {
		b.dst.BlitRect(r.Left, r.Top, r.Width(), r.Height())
		return
	}
	for y := r.Top; y < r.Bottom; y++ {
		b.BlitH(r.Left, y, r.Width())
	}
}

// BlitMask implements Blitter. BW masks are expanded to A8 first; the
// result goes out one row at a time.
func (b *AAClipBlitter) BlitMask(m *Mask, clip IRect) {
	clip, ok := clip.Intersect(b.clip.bounds)
	if !ok || b.clip.IsEmpty() {
		return
	}
	if clip, ok = clip.Intersect(m.Bounds); !ok {
		return
	}
	if b.clip.QuickContains(clip) {
		b.dst.BlitMask(m, clip)
		return
	}

	m = m.toA8()
	_, aa := b.scratch()
	width := clip.Width()
	b.mask = Mask{Image: aa[:width], RowBytes: width, Format: MaskA8}

	for y := clip.Top; y < clip.Bottom; {
		row, lastY := b.clip.FindRow(y)
		stop := min(lastY+1, clip.Bottom)
		row, n := b.clip.FindX(row, clip.Left)
		for ; y < stop; y++ {
			src := m.row(y)[clip.Left-m.Bounds.Left:][:width]
			mergeMaskRow(src, row, n, b.mask.Image)
			b.mask.Bounds = IRect{clip.Left, y, clip.Right, y + 1}
			b.dst.BlitMask(&b.mask, b.mask.Bounds)
		}
	}
}

// mergeMaskRow writes src multiplied by the clip row into dst.
func mergeMaskRow(src, row []byte, rowN int, dst []byte) {
	for {
		n := min(rowN, len(src))
		switch a := row[1]; a {
		case 0xFF:
			copy(dst[:n], src[:n])
		case 0:
			clear(dst[:n])
		default:
			for i := range n {
				dst[i] = blend.MulDiv255Round(src[i], a)
			}
		}
		if n == len(src) {
			return
		}
		src, dst = src[n:], dst[n:]
		row = row[2:]
		rowN = int(row[0])
	}
}
