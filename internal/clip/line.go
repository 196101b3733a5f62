package clip

import "math"

// Outcode constants for Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// outcode computes the Cohen-Sutherland outcode of p against r.
// Points on an edge count as inside.
func outcode(r Rect, p Point) int {
	code := outcodeInside

	if p.X < r.Left {
		code |= outcodeLeft
	} else if p.X > r.Right {
		code |= outcodeRight
	}

	if p.Y < r.Top {
		code |= outcodeTop
	} else if p.Y > r.Bottom {
		code |= outcodeBottom
	}

	return code
}

// IntersectLine clips the segment p0-p1 to r using Cohen-Sutherland.
// It reports false when nothing of the segment lies inside r, including
// for segments with non-finite coordinates. Endpoint order is preserved.
func IntersectLine(p0, p1 Point, r Rect) (Point, Point, bool) {
	if !finite(p0) || !finite(p1) || r.IsEmpty() {
		return p0, p1, false
	}

	code0 := outcode(r, p0)
	code1 := outcode(r, p1)

	for {
		if (code0 | code1) == 0 {
			return p0, p1, true
		}
		if (code0 & code1) != 0 {
			return p0, p1, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case (codeOut & outcodeTop) != 0:
			t := (r.Top - p0.Y) / (p1.Y - p0.Y)
			p.X = p0.X + t*(p1.X-p0.X)
			p.Y = r.Top
		case (codeOut & outcodeBottom) != 0:
			t := (r.Bottom - p0.Y) / (p1.Y - p0.Y)
			p.X = p0.X + t*(p1.X-p0.X)
			p.Y = r.Bottom
		case (codeOut & outcodeRight) != 0:
			t := (r.Right - p0.X) / (p1.X - p0.X)
			p.Y = p0.Y + t*(p1.Y-p0.Y)
			p.X = r.Right
		case (codeOut & outcodeLeft) != 0:
			t := (r.Left - p0.X) / (p1.X - p0.X)
			p.Y = p0.Y + t*(p1.Y-p0.Y)
			p.X = r.Left
		}

		if codeOut == code0 {
			p0 = p
			code0 = outcode(r, p0)
		} else {
			p1 = p
			code1 = outcode(r, p1)
		}
	}
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
