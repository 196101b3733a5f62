package raster

import "math"

// LineCap specifies the shape of hairline endpoints.
type LineCap int

const (
	// CapButt ends the line exactly at its endpoint.
	CapButt LineCap = iota
	// CapRound extends the line by the area of a half-pixel half-disc.
	CapRound
	// CapSquare extends the line by half a pixel.
	CapSquare
)

// capOutset returns how far, in pixels, a cap moves an endpoint. A round
// cap on a one-pixel line covers PI/8 of a pixel, which is what the line
// gains when extended by that length.
func capOutset(c LineCap) float64 {
	switch c {
	case CapRound:
		return math.Pi / 8
	case CapSquare:
		return 0.5
	}
	return 0
}

// ExtendCaps moves the first and last points of an open polyline outward
// along their end tangents so that drawing it as hairlines covers the cap.
// Coincident points at either end move together. A polyline whose points
// all coincide becomes a horizontal dot of the cap's length.
func ExtendCaps(pts []Point, c LineCap) {
	out := capOutset(c)
	if out == 0 || len(pts) < 2 {
		return
	}

	first := pts[0]
	i := 1
	for i < len(pts) && pts[i] == first {
		i++
	}
	if i == len(pts) {
		// Degenerate: all points equal.
		for j := range pts[:len(pts)-1] {
			pts[j].X -= out
		}
		pts[len(pts)-1].X += out
		return
	}
	dx, dy := unit(first.X-pts[i].X, first.Y-pts[i].Y)
	for j := 0; j < i; j++ {
		pts[j].X += dx * out
		pts[j].Y += dy * out
	}

	last := pts[len(pts)-1]
	k := len(pts) - 2
	for k >= 0 && pts[k] == last {
		k--
	}
	dx, dy = unit(last.X-pts[k].X, last.Y-pts[k].Y)
	for j := k + 1; j < len(pts); j++ {
		pts[j].X += dx * out
		pts[j].Y += dy * out
	}
}

func unit(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	return dx / l, dy / l
}
