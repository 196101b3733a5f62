package raster

import "github.com/gogpu/scan/internal/blend"

// AlphaRuns accumulates the coverage of one output row from several
// supersampled sub-rows. It holds the row in the sparse run form that
// Sink.BlitAntiH takes: runs[i] is the length of the run starting at i and
// alpha[i] its coverage, with a zero run ending the row. Adding a span
// splits runs only at the span's ends, so untouched stretches stay long.
type AlphaRuns struct {
	runs  []int16
	alpha []uint8
}

// maxRunWidth is the widest row a single run can describe.
const maxRunWidth = 0x7FFF

// NewAlphaRuns returns an empty row width pixels wide, clamped to
// [1, maxRunWidth].
func NewAlphaRuns(width int) *AlphaRuns {
	width = min(max(width, 1), maxRunWidth)
	ar := &AlphaRuns{
		runs:  make([]int16, width+1),
		alpha: make([]uint8, width+1),
	}
	ar.Reset(width)
	return ar
}

// IsEmpty reports whether the row is one run of zero coverage.
func (ar *AlphaRuns) IsEmpty() bool {
	if ar.runs[0] == 0 {
		return true
	}
	return ar.alpha[0] == 0 && ar.runs[ar.runs[0]] == 0
}

// Reset makes the row a single transparent run of the given width.
func (ar *AlphaRuns) Reset(width int) {
	width = min(max(width, 1), maxRunWidth)
	ar.runs[0] = int16(width) //nolint:gosec // clamped above
	ar.runs[width] = 0
	ar.alpha[0] = 0
}

// Add adds one sub-row span starting at x. The first pixel gets startAlpha
// and the middleCount pixels after it get maxValue each. stopAlpha goes to
// the pixel after those. A zero start or stop alpha omits that pixel.
//
// offsetX is where the search for x may begin. Spans of one sub-row come
// in increasing x, so passing back the returned offset keeps each Add from
// rescanning the row. Negative x is ignored.
func (ar *AlphaRuns) Add(x int, startAlpha uint8, middleCount int, stopAlpha uint8, maxValue uint8, offsetX int) int {
	if x < 0 {
		return offsetX
	}
	// runs and alpha share indexing, so one offset walks both.
	off, last := offsetX, offsetX
	x -= offsetX

	if startAlpha != 0 {
		ar.breakRun(off, x, 1)
		off += x
		ar.alpha[off] = blend.CatchOverflow(int(ar.alpha[off]) + int(startAlpha))
		off++
		x = 0
	}

	if middleCount > 0 {
		ar.breakRun(off, x, middleCount)
		off += x
		x = 0
		for middleCount > 0 {
			ar.alpha[off] = blend.CatchOverflow(int(ar.alpha[off]) + int(maxValue))
			n := int(ar.runs[off])
			if n <= 0 {
				break
			}
			n = min(n, middleCount)
			off += n
			middleCount -= n
		}
		last = off
	}

	if stopAlpha != 0 {
		ar.breakRun(off, x, 1)
		off += x
		ar.alpha[off] += stopAlpha
		last = off
	}
	return last
}

// breakRun makes off+x and off+x+count run boundaries.
func (ar *AlphaRuns) breakRun(off, x, count int) {
	if count > 0 {
		Break(ar.runs[off:], ar.alpha[off:], x, count)
	}
}

// Runs and Alpha expose the row for BlitAntiH. They alias the buffer and
// change with the next Add or Reset.
func (ar *AlphaRuns) Runs() []int16  { return ar.runs }
func (ar *AlphaRuns) Alpha() []uint8 { return ar.alpha }
