// Package raster provides scanline rasterization for 2D paths.
// This file implements the binary scan converter shared by non-AA fills
// and the supersampled AA fill.
package raster

import (
	"cmp"
	"math"
	"slices"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SpanSink receives binary horizontal spans.
type SpanSink interface {
	BlitH(x, y, width int)
}

// Scanner converts an edge list to binary spans sampled at row centers.
// A pixel is inside when its center is; span ends round to the nearest
// pixel boundary. With Shift > 0 the scan runs on a grid 1<<Shift times
// finer in both directions and emits spans in that grid.
type Scanner struct {
	Rule    FillRule
	Inverse bool
	Shift   int

	aet    *ActiveEdgeTable
	spans  []int
	sorted []Edge
}

// Fill scans edges inside clip (pixel space) and calls sink.BlitH for
// each covered span. With Inverse set, the spans outside the path but
// inside clip are emitted instead.
func (s *Scanner) Fill(edges []Edge, clip Rect, sink SpanSink) {
	if clip.IsEmpty() {
		return
	}
	if s.aet == nil {
		s.aet = NewActiveEdgeTable()
	}

	scale := float64(int(1) << s.Shift)
	top := clip.Top << s.Shift
	bottom := clip.Bottom << s.Shift
	left := clip.Left << s.Shift
	right := clip.Right << s.Shift

	s.sorted = append(s.sorted[:0], edges...)
	slices.SortFunc(s.sorted, func(a, b Edge) int { return cmp.Compare(a.Y0, b.Y0) })

	if !s.Inverse {
		if len(s.sorted) == 0 {
			return
		}
		minY, maxY := s.sorted[0].Y0, s.sorted[0].Y1
		for i := range s.sorted {
			maxY = math.Max(maxY, s.sorted[i].Y1)
		}
		top = max(top, clampInt(math.Floor(minY*scale)))
		bottom = min(bottom, clampInt(math.Ceil(maxY*scale)))
	}

	s.aet.Clear()
	next := 0
	for sy := top; sy < bottom; sy++ {
		y := (float64(sy) + 0.5) / scale
		for next < len(s.sorted) && s.sorted[next].Y0 <= y {
			if s.sorted[next].Y1 > y {
				s.aet.Add(s.sorted, next)
			}
			next++
		}
		s.aet.Advance(s.sorted, y)
		s.aet.Sort()

		s.spans = s.collectSpans(s.spans[:0], scale, left, right)
		if s.Inverse {
			s.emitInverse(sink, sy, left, right)
		} else {
			for i := 0; i+1 < len(s.spans); i += 2 {
				sink.BlitH(s.spans[i], sy, s.spans[i+1]-s.spans[i])
			}
		}
	}
}

// collectSpans appends [start, end) pairs of covered spans in the current
// row, clamped to [left, right).
func (s *Scanner) collectSpans(dst []int, scale float64, left, right int) []int {
	edges := s.aet.Edges()
	winding := 0
	var x0 float64

	for i := range edges {
		wasInside := s.inside(winding)
		if s.Rule == FillRuleEvenOdd {
			winding ^= 1
		} else {
			winding += edges[i].Dir
		}
		isInside := s.inside(winding)

		switch {
		case !wasInside && isInside:
			x0 = edges[i].X
		case wasInside && !isInside:
			l := roundSpan(x0*scale, left, right)
			r := roundSpan(edges[i].X*scale, left, right)
			if l < r {
				dst = append(dst, l, r)
			}
		}
	}
	return dst
}

func (s *Scanner) inside(winding int) bool {
	if s.Rule == FillRuleEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

func (s *Scanner) emitInverse(sink SpanSink, y, left, right int) {
	x := left
	for i := 0; i+1 < len(s.spans); i += 2 {
		if s.spans[i] > x {
			sink.BlitH(x, y, s.spans[i]-x)
		}
		x = max(x, s.spans[i+1])
	}
	if x < right {
		sink.BlitH(x, y, right-x)
	}
}

// roundSpan rounds a span end to the nearest grid boundary, clamped to
// [left, right].
func roundSpan(x float64, left, right int) int {
	switch {
	case x <= float64(left):
		return left
	case x >= float64(right):
		return right
	}
	return int(math.Floor(x + 0.5))
}
