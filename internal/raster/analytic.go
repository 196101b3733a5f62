// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"cmp"
	"math"
	"slices"
)

// AnalyticFiller computes exact per-pixel area coverage and emits it row
// by row through Sink.BlitAntiH. It is the alternative to supersampling
// when anti-aliasing a path.
//
// Coverage accumulation model: for each pixel of a row two values are
// tracked.
//
//	cover: signed vertical extent of edges crossing this pixel column
//	area:  cover weighted by how much of the pixel lies right of the crossing
//
// Integrating left to right, pixel coverage is the running sum of cover
// from the pixels to the left plus the pixel's own area term.
type AnalyticFiller struct {
	Rule    FillRule
	Inverse bool

	cover  []float32
	area   []float32
	alpha  []uint8
	runs   []int16
	active []int
	sorted []Edge
}

// Fill rasterizes edges inside clip and emits one BlitAntiH per row that
// has coverage. With Inverse set, the complement of the path's coverage
// within clip is emitted instead.
func (f *AnalyticFiller) Fill(edges []Edge, clip Rect, sink Sink) {
	if clip.IsEmpty() {
		return
	}
	width := clip.Right - clip.Left
	f.cover = grow(f.cover, width)
	f.area = grow(f.area, width)
	f.alpha = grow(f.alpha, width+1)
	f.runs = grow(f.runs, width+1)

	f.sorted = append(f.sorted[:0], edges...)
	slices.SortFunc(f.sorted, func(a, b Edge) int { return cmp.Compare(a.Y0, b.Y0) })

	top, bottom := clip.Top, clip.Bottom
	if !f.Inverse {
		if len(f.sorted) == 0 {
			return
		}
		maxY := f.sorted[0].Y1
		for i := range f.sorted {
			maxY = math.Max(maxY, f.sorted[i].Y1)
		}
		top = max(top, clampInt(math.Floor(f.sorted[0].Y0)))
		bottom = min(bottom, clampInt(math.Ceil(maxY)))
	}

	f.active = f.active[:0]
	next := 0
	for y := top; y < bottom; y++ {
		yTop, yBot := float64(y), float64(y+1)
		for next < len(f.sorted) && f.sorted[next].Y0 < yBot {
			f.active = append(f.active, next)
			next++
		}
		j := 0
		for _, i := range f.active {
			if f.sorted[i].Y1 > yTop {
				f.active[j] = i
				j++
			}
		}
		f.active = f.active[:j]

		if len(f.active) == 0 {
			if f.Inverse {
				sink.BlitH(clip.Left, y, width)
			}
			continue
		}

		clear(f.cover[:width])
		clear(f.area[:width])
		for _, i := range f.active {
			accumulateEdge(&f.sorted[i], yTop, yBot, f.cover[:width], f.area[:width], clip.Left)
		}
		f.integrate(width)
		f.emitRow(sink, clip.Left, y, width)
	}
}

// accumulateEdge adds the part of e inside the row [yTop, yBot) to the
// cover and area buffers, which are indexed by x - left.
func accumulateEdge(e *Edge, yTop, yBot float64, cover, area []float32, left int) {
	yTop = math.Max(yTop, e.Y0)
	yBot = math.Min(yBot, e.Y1)
	if yBot <= yTop {
		return
	}
	sign := float32(e.Dir)
	width := len(cover)

	xTop := e.XAtY(yTop)
	xBot := e.XAtY(yBot)
	xl, xr := math.Min(xTop, xBot), math.Max(xTop, xBot)
	pixLeft := clampInt(math.Floor(xl)) - left
	pixRight := clampInt(math.Floor(xr)) - left

	if pixRight < 0 {
		// Entirely left of the buffer: full coverage from column 0 on.
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= width {
		return
	}

	if pixLeft == pixRight {
		addSegment(e, yTop, yBot, sign, pixLeft, cover, area, left)
		return
	}

	if pixLeft < 0 {
		// The part of the edge left of the buffer adds full coverage to column 0.
		yAtLeft := e.Y0 + (float64(left)-e.X0)/e.DxDy
		segTop, segBot := yTop, math.Min(yAtLeft, yBot)
		if e.DxDy < 0 {
			segTop, segBot = math.Max(yAtLeft, yTop), yBot
		}
		if segBot > segTop {
			addSegment(e, segTop, segBot, sign, -1, cover, area, left)
		}
		pixLeft = 0
	}

	// The edge crosses several columns; split it at column boundaries.
	dydx := 1 / e.DxDy
	for pix := pixLeft; pix <= min(pixRight, width-1); pix++ {
		x0 := float64(pix + left)
		ya := e.Y0 + dydx*(x0-e.X0)
		yb := e.Y0 + dydx*(x0+1-e.X0)
		segTop := math.Max(math.Min(ya, yb), yTop)
		segBot := math.Min(math.Max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		addSegment(e, segTop, segBot, sign, pix, cover, area, left)
	}
}

// addSegment records a piece of an edge that stays within one column.
func addSegment(e *Edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, left int) {
	c := sign * float32(yBot-yTop)
	if pix < 0 {
		cover[0] += c
		area[0] += c
		return
	}
	xMid := e.XAtY((yTop + yBot) / 2)
	frac := xMid - float64(pix+left)
	cover[pix] += c
	area[pix] += c * float32(1-frac)
}

// integrate turns the accumulated cover/area into 8-bit alpha in f.alpha.
func (f *AnalyticFiller) integrate(width int) {
	var accum float32
	for i := 0; i < width; i++ {
		raw := accum + f.area[i]
		accum += f.cover[i]

		if raw < 0 {
			raw = -raw
		}
		var cov float32
		if f.Rule == FillRuleEvenOdd {
			mod := raw - 2*float32(math.Floor(float64(raw/2)))
			cov = 1 - float32(math.Abs(float64(1-mod)))
		} else {
			cov = min(raw, 1)
		}

		a := uint8(cov*255 + 0.5) //nolint:gosec // cov is in [0, 1]
		if f.Inverse {
			a = 255 - a
		}
		f.alpha[i] = a
	}
}

// emitRow run-length encodes f.alpha[:width] and sends the non-zero
// portion to sink.
func (f *AnalyticFiller) emitRow(sink Sink, left, y, width int) {
	lo := 0
	for lo < width && f.alpha[lo] == 0 {
		lo++
	}
	if lo == width {
		return
	}
	hi := width
	for f.alpha[hi-1] == 0 {
		hi--
	}

	for i := lo; i < hi; {
		j := i + 1
		for j < hi && j-i < maxRunWidth && f.alpha[j] == f.alpha[i] {
			j++
		}
		f.runs[i] = int16(j - i) //nolint:gosec // bounded by maxRunWidth
		i = j
	}
	f.runs[hi] = 0

	if f.alpha[lo] == 0xFF && int(f.runs[lo]) == hi-lo {
		sink.BlitH(left+lo, y, hi-lo)
		return
	}
	sink.BlitAntiH(left+lo, y, f.alpha[lo:hi+1], f.runs[lo:hi+1])
}

func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
