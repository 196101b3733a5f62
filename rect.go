// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scan

import (
	"image"
	"math"

	"github.com/gogpu/scan/internal/raster"
)

// Rect is a rectangle with floating-point edges. Right and Bottom are
// exclusive; a Rect with Left >= Right or Top >= Bottom is empty.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH returns the rectangle with origin (x, y) and size w x h.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{x, y, x + w, y + h}
}

// IsEmpty reports whether r has no area. NaN edges make r empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// IsFinite reports whether every edge is finite.
func (r Rect) IsFinite() bool {
	return Pt(r.Left, r.Top).IsFinite() && Pt(r.Right, r.Bottom).IsFinite()
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Sort swaps edges as needed so that Left <= Right and Top <= Bottom.
func (r Rect) Sort() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Outset returns r grown by dx horizontally and dy vertically on each side.
func (r Rect) Outset(dx, dy float64) Rect {
	return Rect{r.Left - dx, r.Top - dy, r.Right + dx, r.Bottom + dy}
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	i := Rect{math.Max(r.Left, o.Left), math.Max(r.Top, o.Top), math.Min(r.Right, o.Right), math.Min(r.Bottom, o.Bottom)}
	return i, !i.IsEmpty()
}

// Contains reports whether o lies inside r. An empty o is never contained.
func (r Rect) Contains(o Rect) bool {
	return !r.IsEmpty() && !o.IsEmpty() &&
		r.Left <= o.Left && r.Top <= o.Top && r.Right >= o.Right && r.Bottom >= o.Bottom
}

// Round returns r with each edge rounded to the nearest integer, halves
// rounding up.
func (r Rect) Round() IRect {
	return IRect{roundInt(r.Left), roundInt(r.Top), roundInt(r.Right), roundInt(r.Bottom)}
}

// RoundOut returns the smallest integer rectangle containing r.
func (r Rect) RoundOut() IRect {
	return IRect{floorInt(r.Left), floorInt(r.Top), ceilInt(r.Right), ceilInt(r.Bottom)}
}

// IsInteger reports whether every edge of r is a whole number.
func (r Rect) IsInteger() bool {
	return r.Left == math.Trunc(r.Left) && r.Top == math.Trunc(r.Top) &&
		r.Right == math.Trunc(r.Right) && r.Bottom == math.Trunc(r.Bottom)
}

// IRect is an integer rectangle in pixels, right and bottom exclusive.
type IRect struct {
	Left, Top, Right, Bottom int
}

// IRectXYWH returns the rectangle with origin (x, y) and size w x h.
func IRectXYWH(x, y, w, h int) IRect {
	return IRect{x, y, x + w, y + h}
}

// IRectFromImage converts an image.Rectangle.
func IRectFromImage(r image.Rectangle) IRect {
	return IRect{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}

// Image converts r to an image.Rectangle.
func (r IRect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Rect converts r to a floating-point Rect.
func (r IRect) Rect() Rect {
	return Rect{float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom)}
}

// IsEmpty reports whether r covers no pixels.
func (r IRect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Width returns Right - Left.
func (r IRect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r IRect) Height() int { return r.Bottom - r.Top }

// Offset returns r translated by (dx, dy).
func (r IRect) Offset(dx, dy int) IRect {
	return IRect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Outset returns r grown by d pixels on each side.
func (r IRect) Outset(d int) IRect {
	return IRect{r.Left - d, r.Top - d, r.Right + d, r.Bottom + d}
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r IRect) Intersect(o IRect) (IRect, bool) {
	i := IRect{max(r.Left, o.Left), max(r.Top, o.Top), min(r.Right, o.Right), min(r.Bottom, o.Bottom)}
	return i, !i.IsEmpty()
}

// Intersects reports whether r and o share at least one pixel.
func (r IRect) Intersects(o IRect) bool {
	_, ok := r.Intersect(o)
	return ok
}

// Join returns the smallest rectangle containing r and o. Empty operands
// are ignored.
func (r IRect) Join(o IRect) IRect {
	switch {
	case o.IsEmpty():
		return r
	case r.IsEmpty():
		return o
	}
	return IRect{min(r.Left, o.Left), min(r.Top, o.Top), max(r.Right, o.Right), max(r.Bottom, o.Bottom)}
}

// Contains reports whether o lies inside r. An empty o is never contained.
func (r IRect) Contains(o IRect) bool {
	return !r.IsEmpty() && !o.IsEmpty() &&
		r.Left <= o.Left && r.Top <= o.Top && r.Right >= o.Right && r.Bottom >= o.Bottom
}

// ContainsPoint reports whether pixel (x, y) lies inside r.
func (r IRect) ContainsPoint(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

func (r IRect) raster() raster.Rect {
	return raster.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// coordLimit bounds every coordinate handed to the fixed-point code.
const coordLimit = 32767

var limitIRect = IRect{-coordLimit, -coordLimit, coordLimit, coordLimit}

func clampCoord(f float64) int {
	switch {
	case f < -coordLimit:
		return -coordLimit
	case f > coordLimit:
		return coordLimit
	case math.IsNaN(f):
		return 0
	}
	return int(f)
}

func roundInt(f float64) int { return clampCoord(math.Floor(f + 0.5)) }
func floorInt(f float64) int { return clampCoord(math.Floor(f)) }
func ceilInt(f float64) int  { return clampCoord(math.Ceil(f)) }
