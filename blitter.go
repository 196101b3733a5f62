package scan

import "github.com/gogpu/scan/internal/raster"

// Blitter receives coverage from the rasterizer. Implementations write
// pixels, record spans, or clip and forward to another Blitter.
//
// BlitAntiH takes a sparse run array: runs[i] is the length of the span of
// constant alpha[i] that starts at x+i, the next span starts at index
// i+runs[i], and a zero entry terminates the array. Both arrays belong to
// the caller and may be rewritten by clipping blitters.
type Blitter interface {
	// BlitH fills width pixels of row y starting at x with full coverage.
	BlitH(x, y, width int)
	// BlitAntiH fills row y starting at x with the runs of alpha.
	BlitAntiH(x, y int, alpha []uint8, runs []int16)
	// BlitV fills height pixels of column x starting at y with alpha.
	BlitV(x, y, height int, alpha uint8)
	// BlitRect fills a rectangle with full coverage.
	BlitRect(x, y, width, height int)
	// BlitMask fills the part of m inside clip. clip lies within m.Bounds.
	BlitMask(m *Mask, clip IRect)
}

// AntiRectBlitter is implemented by blitters that can take a rectangle
// with partially covered left and right columns in one call.
type AntiRectBlitter interface {
	// BlitAntiRect fills column x with leftAlpha, the next width columns
	// with full coverage and column x+width+1 with rightAlpha, over height
	// rows starting at y.
	BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8)
}

// AntiH2Blitter is implemented by blitters with a fast path for the two
// adjacent pixels an anti-aliased hairline touches per step.
type AntiH2Blitter interface {
	BlitAntiH2(x, y int, alpha0, alpha1 uint8)
	BlitAntiV2(x, y int, alpha0, alpha1 uint8)
}

// BlitAntiRect calls b.BlitAntiRect when b implements AntiRectBlitter and
// otherwise decomposes the call into BlitV and BlitRect.
func BlitAntiRect(b Blitter, x, y, width, height int, leftAlpha, rightAlpha uint8) {
	raster.BlitAntiRect(b, x, y, width, height, leftAlpha, rightAlpha)
}

// BlitAntiH2 blits pixels (x, y) and (x+1, y), falling back to BlitAntiH.
func BlitAntiH2(b Blitter, x, y int, alpha0, alpha1 uint8) {
	raster.BlitAntiH2(b, x, y, alpha0, alpha1)
}

// BlitAntiV2 blits pixels (x, y) and (x, y+1), falling back to BlitAntiH.
func BlitAntiV2(b Blitter, x, y int, alpha0, alpha1 uint8) {
	raster.BlitAntiV2(b, x, y, alpha0, alpha1)
}

// BlitMaskRows delivers the part of m inside clip as BlitH and BlitAntiH
// rows. Blitters without a native mask path use it to implement BlitMask.
func BlitMaskRows(b Blitter, m *Mask, clip IRect) {
	clip, ok := clip.Intersect(m.Bounds)
	if !ok {
		return
	}
	width := clip.Width()
	alpha := make([]uint8, width+1)
	runs := make([]int16, width+1)
	for y := clip.Top; y < clip.Bottom; y++ {
		for x := clip.Left; x < clip.Right; x++ {
			alpha[x-clip.Left] = m.Alpha(x, y)
		}
		emitRuns(b, clip.Left, y, alpha[:width], runs)
	}
}

// emitRuns run-length encodes a dense coverage row and sends its non-zero
// spans to b. runs must hold len(alpha)+1 entries.
func emitRuns(b Blitter, x, y int, alpha []uint8, runs []int16) {
	width := len(alpha)
	for i := 0; i < width; {
		if alpha[i] == 0 {
			i++
			continue
		}
		start := i
		for i < width && alpha[i] != 0 {
			j := i + 1
			for j < width && j-i < maxRun && alpha[j] == alpha[i] {
				j++
			}
			runs[i] = int16(j - i) //nolint:gosec // bounded by maxRun
			i = j
		}
		if alpha[start] == 0xFF && int(runs[start]) == i-start {
			b.BlitH(x+start, y, i-start)
			continue
		}
		runs[i] = 0
		b.BlitAntiH(x+start, y, alpha[start:i], runs[start:i+1])
	}
}

// maxRun is the longest run one int16 run entry can describe.
const maxRun = 0x7FFF

// NullBlitter discards everything. It is useful for measuring the cost of
// scan conversion alone.
type NullBlitter struct{}

func (NullBlitter) BlitH(int, int, int)                           {}
func (NullBlitter) BlitAntiH(int, int, []uint8, []int16)          {}
func (NullBlitter) BlitV(int, int, int, uint8)                    {}
func (NullBlitter) BlitRect(int, int, int, int)                   {}
func (NullBlitter) BlitMask(*Mask, IRect)                         {}
func (NullBlitter) BlitAntiRect(int, int, int, int, uint8, uint8) {}
