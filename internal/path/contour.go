package path

// Contour is one flattened subpath.
type Contour struct {
	Points []Point
	Closed bool // the last point joins back to the first
}

// Contours flattens elements into one polyline per subpath, for drawing
// outlines. Unlike EdgeIter it keeps subpaths open unless they end with
// Close, and a closed contour does not repeat its start point. A MoveTo
// with nothing after it yields no contour.
func Contours(elements []PathElement, tolerance float64) []Contour {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}

	var (
		out     []Contour
		pts     []Point
		start   Point
		current Point
	)
	flush := func(closed bool) {
		if len(pts) > 1 {
			if closed && pts[len(pts)-1] == pts[0] {
				pts = pts[:len(pts)-1]
			}
			out = append(out, Contour{Points: pts, Closed: closed})
		}
		pts = nil
	}
	begin := func() {
		if len(pts) == 0 {
			pts = append(pts, current)
		}
	}

	for _, elem := range elements {
		switch el := elem.(type) {
		case MoveTo:
			flush(false)
			start, current = el.Point, el.Point
		case LineTo:
			begin()
			pts = append(pts, el.Point)
			current = el.Point
		case QuadTo:
			begin()
			pts = flattenQuadratic(pts, current, el.Control, el.Point, tolerance)
			current = el.Point
		case CubicTo:
			begin()
			pts = flattenCubic(pts, current, el.Control1, el.Control2, el.Point, tolerance)
			current = el.Point
		case Close:
			flush(true)
			current = start
		}
	}
	flush(false)
	return out
}
