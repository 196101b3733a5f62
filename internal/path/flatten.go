// Package path flattens path elements into line segments for the scan
// converters.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// DefaultTolerance is the maximum distance from the curve for flattening.
const DefaultTolerance = 0.1

// maxFlattenDepth bounds curve subdivision. Non-finite control points never
// become "flat", so the recursion needs a floor independent of tolerance.
const maxFlattenDepth = 16

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// flattenQuadratic appends the end points of the line segments
// approximating a quadratic Bezier curve. p0 itself is not appended.
func flattenQuadratic(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	return flattenQuadraticRec(dst, p0, p1, p2, tolerance, 0)
}

func flattenQuadraticRec(dst []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxFlattenDepth || distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)

	dst = flattenQuadraticRec(dst, p0, q0, q2, tolerance, depth+1)
	return flattenQuadraticRec(dst, q2, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the end points of the line segments approximating
// a cubic Bezier curve. p0 itself is not appended.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	return flattenCubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || dist < tolerance {
		return append(dst, p3)
	}

	// de Casteljau split at t = 0.5
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	dst = flattenCubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine calculates the distance from point p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen2 := ab.dot(ab)
	if abLen2 < 1e-20 {
		return p.distance(a)
	}

	t := p.sub(a).dot(ab) / abLen2
	switch {
	case t < 0:
		return p.distance(a)
	case t > 1:
		return p.distance(b)
	}
	return p.distance(a.lerp(b, t))
}
