// Package clip provides geometric clipping of line segments against
// rectangles, used to bring hairline endpoints into fixed-point range.
package clip

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Outset returns r grown by dx horizontally and dy vertically on each side.
func (r Rect) Outset(dx, dy float64) Rect {
	return Rect{r.Left - dx, r.Top - dy, r.Right + dx, r.Bottom + dy}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}
