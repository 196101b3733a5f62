package raster

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal line segment stored top to bottom.
type Edge struct {
	X0, Y0 float64 // Top point
	X1, Y1 float64 // Bottom point
	DxDy   float64 // dx/dy slope
	Dir    int     // +1 if the segment pointed down, -1 if up
}

// NewEdge creates an edge from two points. It reports false for
// horizontal segments and segments with non-finite coordinates, neither
// of which contributes coverage.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if !finite(p0.X) || !finite(p0.Y) || !finite(p1.X) || !finite(p1.Y) {
		return Edge{}, false
	}
	if p0.Y == p1.Y {
		return Edge{}, false
	}

	// Determine direction BEFORE swap (for non-zero winding rule)
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		X0:   p0.X,
		Y0:   p0.Y,
		X1:   p1.X,
		Y1:   p1.Y,
		DxDy: (p1.X - p0.X) / (p1.Y - p0.Y),
		Dir:  dir,
	}, true
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	return e.X0 + (y-e.Y0)*e.DxDy
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// EdgeList accumulates edges and their bounding box.
type EdgeList struct {
	Edges                  []Edge
	MinX, MinY, MaxX, MaxY float64
}

// Add appends the edge p0-p1 if it contributes coverage.
func (l *EdgeList) Add(p0, p1 Point) {
	e, ok := NewEdge(p0, p1)
	if !ok {
		return
	}
	if len(l.Edges) == 0 {
		l.MinX, l.MaxX = math.Min(e.X0, e.X1), math.Max(e.X0, e.X1)
		l.MinY, l.MaxY = e.Y0, e.Y1
	} else {
		l.MinX = math.Min(l.MinX, math.Min(e.X0, e.X1))
		l.MaxX = math.Max(l.MaxX, math.Max(e.X0, e.X1))
		l.MinY = math.Min(l.MinY, e.Y0)
		l.MaxY = math.Max(l.MaxY, e.Y1)
	}
	l.Edges = append(l.Edges, e)
}

// Bounds returns the integer bounds enclosing every edge, or an empty
// Rect when the list has no edges.
func (l *EdgeList) Bounds() Rect {
	if len(l.Edges) == 0 {
		return Rect{}
	}
	return Rect{
		Left:   clampInt(math.Floor(l.MinX)),
		Top:    clampInt(math.Floor(l.MinY)),
		Right:  clampInt(math.Ceil(l.MaxX)),
		Bottom: clampInt(math.Ceil(l.MaxY)),
	}
}

// Reset empties the list, keeping its storage.
func (l *EdgeList) Reset() {
	l.Edges = l.Edges[:0]
}

// clampInt converts f to int, saturating far outside the 16-bit pixel
// range any device uses.
func clampInt(f float64) int {
	const limit = 1 << 29
	switch {
	case f < -limit:
		return -limit
	case f > limit:
		return limit
	}
	return int(f)
}

// ActiveEdgeTable holds the edges crossing the current sample row.
type ActiveEdgeTable struct {
	edges []ActiveEdge
}

// ActiveEdge is an edge being processed by the rasterizer.
type ActiveEdge struct {
	X    float64 // x at the current sample row
	Dir  int     // Direction for winding
	edge int     // index into the scanned edge list
}

// NewActiveEdgeTable creates a new active edge table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{
		edges: make([]ActiveEdge, 0, 32),
	}
}

// Add inserts edge index i of edges.
func (aet *ActiveEdgeTable) Add(edges []Edge, i int) {
	aet.edges = append(aet.edges, ActiveEdge{Dir: edges[i].Dir, edge: i})
}

// Advance drops edges ending at or above y and moves the rest to y.
func (aet *ActiveEdgeTable) Advance(edges []Edge, y float64) {
	j := 0
	for _, ae := range aet.edges {
		e := &edges[ae.edge]
		if y >= e.Y1 {
			continue
		}
		ae.X = e.XAtY(y)
		aet.edges[j] = ae
		j++
	}
	aet.edges = aet.edges[:j]
}

// Sort sorts edges by x coordinate (insertion sort for small lists).
func (aet *ActiveEdgeTable) Sort() {
	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].X > key.X {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
}

// Edges returns the active edges.
func (aet *ActiveEdgeTable) Edges() []ActiveEdge {
	return aet.edges
}

// Clear clears all edges.
func (aet *ActiveEdgeTable) Clear() {
	aet.edges = aet.edges[:0]
}
