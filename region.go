package scan

import (
	"iter"
	"math"
	"slices"
)

// ClipOp combines two clips.
type ClipOp uint8

const (
	// OpDifference keeps A minus B.
	OpDifference ClipOp = iota
	// OpIntersect keeps the overlap of A and B.
	OpIntersect
	// OpUnion keeps A or B.
	OpUnion
	// OpXor keeps A or B but not both.
	OpXor
	// OpReverseDifference keeps B minus A.
	OpReverseDifference
	// OpReplace keeps B.
	OpReplace
)

// String returns the operation name.
func (op ClipOp) String() string {
	switch op {
	case OpDifference:
		return "Difference"
	case OpIntersect:
		return "Intersect"
	case OpUnion:
		return "Union"
	case OpXor:
		return "Xor"
	case OpReverseDifference:
		return "ReverseDifference"
	case OpReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// keeps reports whether a point inside a (ina) and/or b (inb) survives op.
func (op ClipOp) keeps(ina, inb bool) bool {
	switch op {
	case OpDifference:
		return ina && !inb
	case OpIntersect:
		return ina && inb
	case OpUnion:
		return ina || inb
	case OpXor:
		return ina != inb
	case OpReverseDifference:
		return inb && !ina
	default:
		return inb
	}
}

// Region is a set of pixels stored as horizontal bands of sorted,
// disjoint spans. Bands are ordered top to bottom, never overlap and never
// repeat the spans of an adjacent band they touch. The zero value is the
// empty region.
type Region struct {
	bounds IRect
	bands  []band
}

type band struct {
	top, bottom int
	spans       []int // left, right pairs; right exclusive
}

// NewRegion returns a region covering r.
func NewRegion(r IRect) *Region {
	rg := &Region{}
	rg.SetRect(r)
	return rg
}

// SetEmpty makes the region empty. It returns false.
func (rg *Region) SetEmpty() bool {
	rg.bounds = IRect{}
	rg.bands = nil
	return false
}

// SetRect makes the region exactly r and reports whether it is non-empty.
func (rg *Region) SetRect(r IRect) bool {
	if r.IsEmpty() {
		return rg.SetEmpty()
	}
	rg.bounds = r
	rg.bands = []band{{top: r.Top, bottom: r.Bottom, spans: []int{r.Left, r.Right}}}
	return true
}

// Set makes the region a copy of src.
func (rg *Region) Set(src *Region) bool {
	if rg == src {
		return !rg.IsEmpty()
	}
	rg.bounds = src.bounds
	rg.bands = make([]band, len(src.bands))
	for i, b := range src.bands {
		rg.bands[i] = band{b.top, b.bottom, slices.Clone(b.spans)}
	}
	return !rg.IsEmpty()
}

// AddRect adds r to the region.
func (rg *Region) AddRect(r IRect) bool {
	return rg.OpRect(r, OpUnion)
}

// OpRect replaces the region with the result of combining it with r.
func (rg *Region) OpRect(r IRect, op ClipOp) bool {
	return rg.Op(NewRegion(r), op)
}

// Op replaces the region with rg op o. o may be rg itself.
func (rg *Region) Op(o *Region, op ClipOp) bool {
	rg.bands = combineBands(rg.bands, o.bands, op)
	rg.computeBounds()
	return !rg.IsEmpty()
}

// IsEmpty reports whether the region has no pixels.
func (rg *Region) IsEmpty() bool { return len(rg.bands) == 0 }

// IsRect reports whether the region is a single non-empty rectangle.
func (rg *Region) IsRect() bool {
	return len(rg.bands) == 1 && len(rg.bands[0].spans) == 2
}

// IsComplex reports whether the region is neither empty nor a rectangle.
func (rg *Region) IsComplex() bool {
	return !rg.IsEmpty() && !rg.IsRect()
}

// Bounds returns the smallest rectangle containing the region.
func (rg *Region) Bounds() IRect { return rg.bounds }

// QuickReject reports whether r certainly does not intersect the region.
func (rg *Region) QuickReject(r IRect) bool {
	return rg.IsEmpty() || r.IsEmpty() || !rg.bounds.Intersects(r)
}

// QuickContains reports whether the region is a rectangle containing r.
// It may return false for complex regions that do contain r.
func (rg *Region) QuickContains(r IRect) bool {
	return rg.IsRect() && rg.bounds.Contains(r)
}

// Contains reports whether pixel (x, y) is in the region.
func (rg *Region) Contains(x, y int) bool {
	if !rg.bounds.ContainsPoint(x, y) {
		return false
	}
	for _, b := range rg.bands {
		if y < b.top {
			return false
		}
		if y < b.bottom {
			return spansContain(b.spans, x, x+1)
		}
	}
	return false
}

// ContainsRect reports whether every pixel of r is in the region.
func (rg *Region) ContainsRect(r IRect) bool {
	if !rg.bounds.Contains(r) {
		return false
	}
	y := r.Top
	for _, b := range rg.bands {
		if b.bottom <= y {
			continue
		}
		if b.top > y || !spansContain(b.spans, r.Left, r.Right) {
			return false
		}
		y = b.bottom
		if y >= r.Bottom {
			return true
		}
	}
	return false
}

func spansContain(spans []int, left, right int) bool {
	for i := 0; i < len(spans); i += 2 {
		if spans[i] <= left && right <= spans[i+1] {
			return true
		}
		if spans[i] >= right {
			break
		}
	}
	return false
}

// Rects returns the region as rectangles in scanline order.
func (rg *Region) Rects() []IRect {
	var out []IRect
	for _, b := range rg.bands {
		for i := 0; i < len(b.spans); i += 2 {
			out = append(out, IRect{b.spans[i], b.top, b.spans[i+1], b.bottom})
		}
	}
	return out
}

// Cliperator yields the non-empty intersections of r with the region's
// rectangles, top to bottom and left to right within a band.
func (rg *Region) Cliperator(r IRect) iter.Seq[IRect] {
	return func(yield func(IRect) bool) {
		if rg.QuickReject(r) {
			return
		}
		for _, b := range rg.bands {
			if b.bottom <= r.Top {
				continue
			}
			if b.top >= r.Bottom {
				return
			}
			top, bottom := max(b.top, r.Top), min(b.bottom, r.Bottom)
			for i := 0; i < len(b.spans); i += 2 {
				left, right := max(b.spans[i], r.Left), min(b.spans[i+1], r.Right)
				if b.spans[i] >= r.Right {
					break
				}
				if left < right && !yield(IRect{left, top, right, bottom}) {
					return
				}
			}
		}
	}
}

// Spans yields the intervals of row y that lie in the region and within
// [left, right), left to right.
func (rg *Region) Spans(y, left, right int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if y < rg.bounds.Top || y >= rg.bounds.Bottom || left >= right {
			return
		}
		for _, b := range rg.bands {
			if y >= b.bottom {
				continue
			}
			if y < b.top {
				return
			}
			for i := 0; i < len(b.spans); i += 2 {
				if b.spans[i] >= right {
					return
				}
				l, r := max(b.spans[i], left), min(b.spans[i+1], right)
				if l < r && !yield(l, r) {
					return
				}
			}
			return
		}
	}
}

func (rg *Region) computeBounds() {
	if len(rg.bands) == 0 {
		rg.bounds = IRect{}
		return
	}
	rg.bounds = IRect{math.MaxInt, rg.bands[0].top, math.MinInt, rg.bands[len(rg.bands)-1].bottom}
	for _, b := range rg.bands {
		rg.bounds.Left = min(rg.bounds.Left, b.spans[0])
		rg.bounds.Right = max(rg.bounds.Right, b.spans[len(b.spans)-1])
	}
}

// combineBands merges two band lists under op. The output is split at
// every band edge of either input, then adjacent bands with equal spans
// are coalesced.
func combineBands(a, b []band, op ClipOp) []band {
	ys := make([]int, 0, 2*(len(a)+len(b)))
	for _, bd := range a {
		ys = append(ys, bd.top, bd.bottom)
	}
	for _, bd := range b {
		ys = append(ys, bd.top, bd.bottom)
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var out []band
	ia, ib := 0, 0
	for k := 0; k+1 < len(ys); k++ {
		top, bottom := ys[k], ys[k+1]
		for ia < len(a) && a[ia].bottom <= top {
			ia++
		}
		for ib < len(b) && b[ib].bottom <= top {
			ib++
		}
		var sa, sb []int
		if ia < len(a) && a[ia].top <= top {
			sa = a[ia].spans
		}
		if ib < len(b) && b[ib].top <= top {
			sb = b[ib].spans
		}
		spans := combineSpans(nil, sa, sb, op)
		if len(spans) == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].bottom == top && slices.Equal(out[n-1].spans, spans) {
			out[n-1].bottom = bottom
			continue
		}
		out = append(out, band{top, bottom, spans})
	}
	return out
}

// combineSpans appends to dst the spans of a op b, merging touching spans.
func combineSpans(dst, a, b []int, op ClipOp) []int {
	i, j := 0, 0
	ina, inb, on := false, false, false
	start := 0
	for i < len(a) || j < len(b) {
		na, nb := math.MaxInt, math.MaxInt
		if i < len(a) {
			na = a[i]
		}
		if j < len(b) {
			nb = b[j]
		}
		x := min(na, nb)
		if na == x {
			ina = !ina
			i++
		}
		if nb == x {
			inb = !inb
			j++
		}
		switch keep := op.keeps(ina, inb); {
		case keep && !on:
			if n := len(dst); n > 0 && dst[n-1] == x {
				dst = dst[:n-1] // touches the previous span
			} else {
				dst = append(dst, x)
			}
			on = true
			start = x
		case !keep && on:
			if x > start || len(dst)%2 == 1 {
				dst = append(dst, x)
			}
			on = false
		}
	}
	return dst
}
