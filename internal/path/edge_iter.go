package path

// Edge represents a line segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// EdgeIter iterates over the line segments of a path, flattening curves.
// It never emits an edge joining two subpaths, and closes every subpath
// back to its start point the way a scan converter needs it.
//
// This follows the same pattern as tiny-skia's PathEdgeIter.
type EdgeIter struct {
	elements  []PathElement
	index     int
	tolerance float64

	current        Point
	moveTo         Point // Start of current subpath
	needsCloseLine bool
	pending        []Point // flattened curve points not yet emitted
}

// NewEdgeIter creates an iterator for the given path elements. A
// non-positive tolerance selects DefaultTolerance.
func NewEdgeIter(elements []PathElement, tolerance float64) *EdgeIter {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	return &EdgeIter{elements: elements, tolerance: tolerance}
}

// Next returns the next edge. ok is false when iteration is complete.
// Zero-length edges are skipped.
func (iter *EdgeIter) Next() (e Edge, ok bool) {
	for {
		if len(iter.pending) > 0 {
			p := iter.pending[0]
			iter.pending = iter.pending[1:]
			if e, ok := iter.lineTo(p); ok {
				return e, true
			}
			continue
		}

		if iter.index >= len(iter.elements) {
			if iter.needsCloseLine {
				if e, ok := iter.closeLine(); ok {
					return e, true
				}
			}
			return Edge{}, false
		}

		elem := iter.elements[iter.index]
		iter.index++

		switch el := elem.(type) {
		case MoveTo:
			if iter.needsCloseLine {
				iter.index-- // reprocess this MoveTo after closing
				if e, ok := iter.closeLine(); ok {
					return e, true
				}
				continue
			}
			iter.needsCloseLine = false
			iter.moveTo = el.Point
			iter.current = el.Point

		case LineTo:
			if e, ok := iter.lineTo(el.Point); ok {
				return e, true
			}

		case QuadTo:
			iter.pending = flattenQuadratic(iter.pending[:0], iter.current, el.Control, el.Point, iter.tolerance)

		case CubicTo:
			iter.pending = flattenCubic(iter.pending[:0], iter.current, el.Control1, el.Control2, el.Point, iter.tolerance)

		case Close:
			if iter.needsCloseLine {
				if e, ok := iter.closeLine(); ok {
					return e, true
				}
			}
			iter.current = iter.moveTo
		}
	}
}

func (iter *EdgeIter) lineTo(p Point) (Edge, bool) {
	iter.needsCloseLine = true
	p0 := iter.current
	iter.current = p
	if p0 == p {
		return Edge{}, false
	}
	return Edge{P0: p0, P1: p}, true
}

// closeLine returns the edge from the current position back to the
// subpath start.
func (iter *EdgeIter) closeLine() (Edge, bool) {
	iter.needsCloseLine = false
	p0 := iter.current
	iter.current = iter.moveTo
	if p0 == iter.moveTo {
		return Edge{}, false
	}
	return Edge{P0: p0, P1: iter.moveTo}, true
}

// CollectEdges returns all edges of the path elements.
func CollectEdges(elements []PathElement, tolerance float64) []Edge {
	iter := NewEdgeIter(elements, tolerance)
	var edges []Edge
	for {
		e, ok := iter.Next()
		if !ok {
			return edges
		}
		edges = append(edges, e)
	}
}
