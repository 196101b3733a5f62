package scan

import (
	"github.com/gogpu/scan/internal/fixed"
	"github.com/gogpu/scan/internal/path"
	"github.com/gogpu/scan/internal/raster"
)

// Rasterizer converts rectangles, paths and lines to coverage and hands it
// to a Blitter, clipped to an optional Region. A nil *Region means no clip.
//
// A Rasterizer reuses its scratch buffers between calls and must not be
// used from several goroutines at once. Create one per goroutine; they
// share no state.
type Rasterizer struct {
	cfg      Config
	edges    raster.EdgeList
	scanner  raster.Scanner
	analytic raster.AnalyticFiller
}

// NewRasterizer returns a Rasterizer configured by opts.
func NewRasterizer(opts ...Option) *Rasterizer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.Tolerance > 0) {
		cfg.Tolerance = defaultTolerance
	}
	return &Rasterizer{cfg: cfg}
}

// Config returns the settings the Rasterizer was created with.
func (r *Rasterizer) Config() Config { return r.cfg }

// FillIRect fills the pixels of rect with full coverage.
func (r *Rasterizer) FillIRect(rect IRect, clip *Region, b Blitter) {
	if rect.IsEmpty() {
		return
	}
	switch {
	case clip == nil:
		b.BlitRect(rect.Left, rect.Top, rect.Width(), rect.Height())
	case clip.IsRect():
		if c, ok := rect.Intersect(clip.Bounds()); ok {
			b.BlitRect(c.Left, c.Top, c.Width(), c.Height())
		}
	default:
		for c := range clip.Cliperator(rect) {
			b.BlitRect(c.Left, c.Top, c.Width(), c.Height())
		}
	}
}

// FillRect fills the pixels whose centers lie inside rect.
func (r *Rasterizer) FillRect(rect Rect, clip *Region, b Blitter) {
	if !rect.IsFinite() {
		return
	}
	r.FillIRect(rect.Round(), clip, b)
}

// AntiFillRect fills rect with coverage proportional to the area of each
// pixel it overlaps, at 1/256 pixel precision.
func (r *Rasterizer) AntiFillRect(rect Rect, clip *Region, b Blitter) {
	if !rect.IsFinite() {
		return
	}
	dr := dotRect(rect)
	if dr.IsEmpty() {
		return
	}
	outer := IRect{dr.Left.Floor(), dr.Top.Floor(), dr.Right.Ceil(), dr.Bottom.Ceil()}
	switch {
	case clip == nil:
		raster.AntiFillRect(b, dr)
	case clip.IsRect():
		if clip.Bounds().Contains(outer) {
			raster.AntiFillRect(b, dr)
			return
		}
		antiFillClipped(b, dr, clip.Bounds())
	default:
		for c := range clip.Cliperator(outer) {
			antiFillClipped(b, dr, c)
		}
	}
}

// antiFillClipped fills the part of dr inside c. Edges cut by c fall on
// pixel boundaries and so come out opaque.
func antiFillClipped(b Blitter, dr raster.DotRect, c IRect) {
	dr = raster.DotRect{
		Left:   max(dr.Left, intToDot8(c.Left)),
		Top:    max(dr.Top, intToDot8(c.Top)),
		Right:  min(dr.Right, intToDot8(c.Right)),
		Bottom: min(dr.Bottom, intToDot8(c.Bottom)),
	}
	if !dr.IsEmpty() {
		raster.AntiFillRect(b, dr)
	}
}

func intToDot8(i int) fixed.FDot8 {
	return fixed.FDot8(min(max(i, -coordLimit), coordLimit) << 8) //nolint:gosec // clamped
}

// dotRect converts r, clamped to the coordinate limit, to 24.8 fixed point.
func dotRect(r Rect) raster.DotRect {
	clamp := func(f float64) fixed.FDot8 {
		return fixed.FDot8FromFloat(min(max(f, -coordLimit), coordLimit))
	}
	return raster.DotRect{Left: clamp(r.Left), Top: clamp(r.Top), Right: clamp(r.Right), Bottom: clamp(r.Bottom)}
}

// FillPath fills p with binary coverage: a pixel is inside when its center
// is, under p's fill type. Inverse fill types fill the clip outside the
// path, so with a nil clip they draw nothing.
func (r *Rasterizer) FillPath(p *Path, clip *Region, b Blitter) {
	ir, wrapped, ok := r.preparePath(p, clip, b)
	if !ok {
		return
	}
	r.scanner.Rule = fillRule(p.FillType())
	r.scanner.Inverse = p.FillType().IsInverse()
	r.scanner.Shift = 0
	r.scanner.Fill(r.edges.Edges, ir.raster(), wrapped)
}

// AntiFillPath fills p with anti-aliased coverage, one BlitAntiH per row,
// using the engine selected by Config.AAMode.
func (r *Rasterizer) AntiFillPath(p *Path, clip *Region, b Blitter) {
	ir, wrapped, ok := r.preparePath(p, clip, b)
	if !ok {
		return
	}
	r.cfg.logger().Debug("anti fill path", "engine", r.cfg.AAMode, "bounds", ir.Image())

	rule, inverse := fillRule(p.FillType()), p.FillType().IsInverse()
	if r.cfg.AAMode == AAAnalytic {
		r.analytic.Rule = rule
		r.analytic.Inverse = inverse
		r.analytic.Fill(r.edges.Edges, ir.raster(), wrapped)
		return
	}
	sb := raster.NewSuperBlitter(wrapped, ir.raster())
	r.scanner.Rule = rule
	r.scanner.Inverse = inverse
	r.scanner.Shift = raster.SupersampleShift
	r.scanner.Fill(r.edges.Edges, ir.raster(), sb)
	sb.Flush()
}

// preparePath builds the edge list of p and returns the pixel bounds to
// scan along with the blitter to draw through.
func (r *Rasterizer) preparePath(p *Path, clip *Region, b Blitter) (IRect, Blitter, bool) {
	if p == nil || !p.IsFinite() {
		return IRect{}, nil, false
	}
	r.edges.Reset()
	for _, e := range path.CollectEdges(p.elements(), r.cfg.Tolerance) {
		r.edges.Add(raster.Point{X: e.P0.X, Y: e.P0.Y}, raster.Point{X: e.P1.X, Y: e.P1.Y})
	}

	var ir IRect
	if p.FillType().IsInverse() {
		if clip == nil {
			return IRect{}, nil, false
		}
		ir = clip.Bounds()
	} else {
		eb := r.edges.Bounds()
		ir = IRect{eb.Left, eb.Top, eb.Right, eb.Bottom}
		if clip != nil {
			ir, _ = ir.Intersect(clip.Bounds())
		}
	}
	ir, ok := ir.Intersect(limitIRect)
	if !ok {
		return IRect{}, nil, false
	}
	wrapped, ok := clipBlitter(b, clip, ir)
	return ir, wrapped, ok
}

func fillRule(f FillType) raster.FillRule {
	if f.IsEvenOdd() {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}
