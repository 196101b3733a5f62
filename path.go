package scan

import (
	"math"

	"github.com/gogpu/scan/internal/path"
)

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	VerbMoveTo PathVerb = iota // consumes 1 point
	VerbLineTo                 // consumes 1 point
	VerbQuadTo                 // consumes 2 points: control, end
	VerbCubicTo                // consumes 3 points: control1, control2, end
	VerbClose                  // consumes 0 points
)

func (v PathVerb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// FillType selects which points a filled path covers.
type FillType uint8

const (
	// FillWinding covers points with a non-zero winding number (default).
	FillWinding FillType = iota
	// FillEvenOdd covers points with an odd winding number.
	FillEvenOdd
	// FillInverseWinding covers points FillWinding leaves uncovered.
	FillInverseWinding
	// FillInverseEvenOdd covers points FillEvenOdd leaves uncovered.
	FillInverseEvenOdd
)

// IsInverse reports whether f covers the outside of the path.
func (f FillType) IsInverse() bool {
	return f == FillInverseWinding || f == FillInverseEvenOdd
}

// IsEvenOdd reports whether f uses the even-odd rule.
func (f FillType) IsEvenOdd() bool {
	return f == FillEvenOdd || f == FillInverseEvenOdd
}

// String returns the fill type name.
func (f FillType) String() string {
	switch f {
	case FillWinding:
		return "Winding"
	case FillEvenOdd:
		return "EvenOdd"
	case FillInverseWinding:
		return "InverseWinding"
	case FillInverseEvenOdd:
		return "InverseEvenOdd"
	default:
		return "Unknown"
	}
}

// Path is a sequence of contours made of lines, quadratic and cubic
// Bezier curves, plus the fill type used when it is filled.
type Path struct {
	verbs    []PathVerb
	points   []Point
	fillType FillType
	start    Point // start of the current contour
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// Reset clears the path for reuse, keeping its storage and fill type.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = Point{}
}

// FillType returns the path's fill type.
func (p *Path) FillType() FillType { return p.fillType }

// SetFillType sets the path's fill type.
func (p *Path) SetFillType(f FillType) { p.fillType = f }

// MoveTo begins a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start = pt
}

// injectMoveTo starts a contour at the last MoveTo point when a segment is
// added to an empty path or after Close.
func (p *Path) injectMoveTo() {
	if n := len(p.verbs); n == 0 || p.verbs[n-1] == VerbClose {
		p.MoveTo(p.start.X, p.start.Y)
	}
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.injectMoveTo()
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Pt(x, y))
}

// QuadTo adds a quadratic Bezier curve to (x, y) with control point
// (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.injectMoveTo()
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Pt(cx, cy), Pt(x, y))
}

// CubicTo adds a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.injectMoveTo()
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// Close closes the current contour. A second Close is ignored.
func (p *Path) Close() {
	if n := len(p.verbs); n > 0 && p.verbs[n-1] != VerbClose {
		p.verbs = append(p.verbs, VerbClose)
	}
}

// Rectangle adds a closed clockwise rectangle contour.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddRect adds r as a closed clockwise contour.
func (p *Path) AddRect(r Rect) {
	p.Rectangle(r.Left, r.Top, r.Width(), r.Height())
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the path's verbs. The slice must not be modified.
func (p *Path) Verbs() []PathVerb { return p.verbs }

// Points returns the path's points. The slice must not be modified.
func (p *Path) Points() []Point { return p.points }

// Bounds returns the bounds of every point in the path, control points
// included. It returns the zero Rect for an empty path.
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	b := Rect{p.points[0].X, p.points[0].Y, p.points[0].X, p.points[0].Y}
	for _, pt := range p.points[1:] {
		b.Left = math.Min(b.Left, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Right = math.Max(b.Right, pt.X)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	return b
}

// IsFinite reports whether every point is finite.
func (p *Path) IsFinite() bool {
	for _, pt := range p.points {
		if !pt.IsFinite() {
			return false
		}
	}
	return true
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := p.Clone()
	for i, pt := range result.points {
		result.points[i] = m.TransformPoint(pt)
	}
	result.start = m.TransformPoint(p.start)
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		verbs:    append([]PathVerb(nil), p.verbs...),
		points:   append([]Point(nil), p.points...),
		fillType: p.fillType,
		start:    p.start,
	}
}

// elements converts the path to the flattener's element list.
func (p *Path) elements() []path.PathElement {
	out := make([]path.PathElement, 0, len(p.verbs))
	pts := p.points
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			out = append(out, path.MoveTo{Point: ipt(pts[0])})
		case VerbLineTo:
			out = append(out, path.LineTo{Point: ipt(pts[0])})
		case VerbQuadTo:
			out = append(out, path.QuadTo{Control: ipt(pts[0]), Point: ipt(pts[1])})
		case VerbCubicTo:
			out = append(out, path.CubicTo{Control1: ipt(pts[0]), Control2: ipt(pts[1]), Point: ipt(pts[2])})
		case VerbClose:
			out = append(out, path.Close{})
		}
		pts = pts[v.pointCount():]
	}
	return out
}

func ipt(p Point) path.Point {
	return path.Point{X: p.X, Y: p.Y}
}
