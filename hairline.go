package scan

import (
	"github.com/gogpu/scan/internal/clip"
	"github.com/gogpu/scan/internal/path"
	"github.com/gogpu/scan/internal/raster"
)

// HairLine draws a binary line one pixel wide from p0 to p1. Each step
// along the major axis sets the pixel containing the minor ordinate.
func (r *Rasterizer) HairLine(p0, p1 Point, rgn *Region, b Blitter) {
	q0, q1, ok := preclipLine(p0, p1, rgn)
	if !ok {
		return
	}
	x0, y0 := q0.dot6()
	x1, y1 := q1.dot6()
	bounds := IRect{min(x0, x1).Floor(), min(y0, y1).Floor(), max(x0, x1).Ceil() + 1, max(y0, y1).Ceil() + 1}
	if b, ok = clipBlitter(b, rgn, bounds); ok {
		raster.HairLine(b, x0, y0, x1, y1)
	}
}

// AntiHairLine draws an anti-aliased line one pixel wide from p0 to p1.
// Lines longer than 511 pixels on either axis are drawn in halves.
func (r *Rasterizer) AntiHairLine(p0, p1 Point, rgn *Region, b Blitter) {
	q0, q1, ok := preclipLine(p0, p1, rgn)
	if !ok {
		return
	}
	x0, y0 := q0.dot6()
	x1, y1 := q1.dot6()
	if rgn == nil {
		raster.AntiHairLine(b, x0, y0, x1, y1, nil)
		return
	}

	ir := IRect{min(x0, x1).Floor() - 1, min(y0, y1).Floor() - 1, max(x0, x1).Ceil() + 1, max(y0, y1).Ceil() + 1}
	switch {
	case rgn.QuickReject(ir):
	case rgn.QuickContains(ir):
		raster.AntiHairLine(b, x0, y0, x1, y1, nil)
	default:
		for c := range rgn.Cliperator(ir) {
			rc := c.raster()
			raster.AntiHairLine(b, x0, y0, x1, y1, &rc)
		}
	}
}

// preclipLine trims the segment to the fixed-point coordinate range and,
// when rgn is set, to the clip bounds outset by a pixel so that the cut
// ends still produce the same coverage inside the clip.
func preclipLine(p0, p1 Point, rgn *Region) (Point, Point, bool) {
	c0, c1 := clip.Point{X: p0.X, Y: p0.Y}, clip.Point{X: p1.X, Y: p1.Y}
	limit := clip.Rect{Left: -coordLimit, Top: -coordLimit, Right: coordLimit, Bottom: coordLimit}
	c0, c1, ok := clip.IntersectLine(c0, c1, limit)
	if !ok {
		return p0, p1, false
	}
	if rgn != nil {
		if rgn.IsEmpty() {
			return p0, p1, false
		}
		cb := rgn.Bounds().Rect()
		r := clip.Rect{Left: cb.Left, Top: cb.Top, Right: cb.Right, Bottom: cb.Bottom}.Outset(1, 1)
		if c0, c1, ok = clip.IntersectLine(c0, c1, r); !ok {
			return p0, p1, false
		}
	}
	return Pt(c0.X, c0.Y), Pt(c1.X, c1.Y), true
}

// HairPath draws every segment of p's flattened outline with HairLine.
// Open contours get Config.HairCap at both ends.
func (r *Rasterizer) HairPath(p *Path, rgn *Region, b Blitter) {
	r.hairPath(p, rgn, b, r.HairLine)
}

// AntiHairPath draws every segment of p's flattened outline with
// AntiHairLine. Open contours get Config.HairCap at both ends.
func (r *Rasterizer) AntiHairPath(p *Path, rgn *Region, b Blitter) {
	r.hairPath(p, rgn, b, r.AntiHairLine)
}

func (r *Rasterizer) hairPath(p *Path, rgn *Region, b Blitter, line func(p0, p1 Point, rgn *Region, b Blitter)) {
	if p == nil || !p.IsFinite() {
		return
	}
	var pts []raster.Point
	for _, c := range path.Contours(p.elements(), r.cfg.Tolerance) {
		pts = pts[:0]
		for _, q := range c.Points {
			pts = append(pts, raster.Point{X: q.X, Y: q.Y})
		}
		if !c.Closed {
			raster.ExtendCaps(pts, raster.LineCap(r.cfg.HairCap))
		}
		for i := 0; i+1 < len(pts); i++ {
			line(Pt(pts[i].X, pts[i].Y), Pt(pts[i+1].X, pts[i+1].Y), rgn, b)
		}
		if c.Closed {
			last := pts[len(pts)-1]
			line(Pt(last.X, last.Y), Pt(pts[0].X, pts[0].Y), rgn, b)
		}
	}
}

// FrameRect strokes the outline of rect with binary coverage. The stroke
// is centered on the edges and stroke.X wide on the vertical sides,
// stroke.Y tall on the horizontal ones. The four sides share rounded
// edges, so no pixel is filled twice.
func (r *Rasterizer) FrameRect(rect Rect, stroke Point, rgn *Region, b Blitter) {
	if !rect.IsFinite() || !stroke.IsFinite() || stroke.X < 0 || stroke.Y < 0 {
		return
	}
	dx, dy := stroke.X, stroke.Y
	outer := rect.Outset(dx/2, dy/2)
	if rect.Width() <= dx || rect.Height() <= dy {
		r.FillRect(outer, rgn, b)
		return
	}
	r.FillRect(Rect{outer.Left, outer.Top, outer.Right, outer.Top + dy}, rgn, b)
	r.FillRect(Rect{outer.Left, outer.Bottom - dy, outer.Right, outer.Bottom}, rgn, b)
	r.FillRect(Rect{outer.Left, outer.Top + dy, outer.Left + dx, outer.Bottom - dy}, rgn, b)
	r.FillRect(Rect{outer.Right - dx, outer.Top + dy, outer.Right, outer.Bottom - dy}, rgn, b)
}

// AntiFrameRect strokes the outline of rect with anti-aliased coverage.
// Strokes thinner than a pixel are aligned so that each covered row or
// column is blitted once.
func (r *Rasterizer) AntiFrameRect(rect Rect, stroke Point, rgn *Region, b Blitter) {
	if !rect.IsFinite() || !stroke.IsFinite() || stroke.X < 0 || stroke.Y < 0 {
		return
	}
	rx, ry := stroke.X/2, stroke.Y/2
	outer := dotRect(rect.Outset(rx, ry))
	bounds := IRect{outer.Left.Floor(), outer.Top.Floor(), outer.Right.Ceil(), outer.Bottom.Ceil()}
	if rgn != nil {
		if rgn.QuickReject(bounds) {
			return
		}
		if !rgn.ContainsRect(bounds) {
			b, _ = clipBlitter(b, rgn, bounds)
		}
	}

	// The inner inset takes what the halving lost.
	rx, ry = stroke.X-rx, stroke.Y-ry
	inner := dotRect(rect.Outset(-rx, -ry))
	raster.AntiFrameRect(b, outer, inner, stroke.X < 1 || stroke.Y < 1)
}
