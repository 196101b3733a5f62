package scan

import (
	"bytes"
	"fmt"
	"math"
)

// builderRow is one band under construction. y is the band's last
// scanline relative to the builder's top.
type builderRow struct {
	y, width int
	data     []byte
}

// clipBuilder collects coverage runs in scanline order and packs them
// into an AAClip. Runs of a row must arrive left to right and rows top to
// bottom; byte-identical neighbouring rows merge into one band.
type clipBuilder struct {
	bounds IRect
	width  int
	rows   []builderRow
	curr   int // index of the row being filled, -1 before the first
	prevY  int
	minY   int
}

func newClipBuilder(bounds IRect) *clipBuilder {
	return &clipBuilder{
		bounds: bounds,
		width:  bounds.Width(),
		curr:   -1,
		prevY:  -1,
		minY:   bounds.Top,
	}
}

// addRun appends count pixels of alpha at (x, y). Columns skipped since
// the previous run of the row are filled with zero coverage.
func (b *clipBuilder) addRun(x, y int, alpha uint8, count int) {
	x -= b.bounds.Left
	y -= b.bounds.Top
	if y != b.prevY {
		if y < b.prevY {
			panic(fmt.Sprintf("scan: clip builder row %d after %d", y, b.prevY))
		}
		b.prevY = y
		b.curr = b.flushRow(true)
		r := &b.rows[b.curr]
		r.y = y
		r.width = 0
	}
	r := &b.rows[b.curr]
	if x < r.width || x+count > b.width {
		panic(fmt.Sprintf("scan: clip builder run [%d, %d) outside row at %d of %d", x, x+count, r.width, b.width))
	}
	if gap := x - r.width; gap > 0 {
		r.data = appendRunTo(r.data, 0, gap)
		r.width += gap
	}
	r.data = appendRunTo(r.data, alpha, count)
	r.width += count
}

// addColumn adds a single column of alpha height rows tall.
func (b *clipBuilder) addColumn(x, y int, alpha uint8, height int) {
	b.addRun(x, y, alpha, 1)
	b.closeBand(y, height)
}

// addRectRun adds an opaque rectangle that is all these rows will get.
func (b *clipBuilder) addRectRun(x, y, width, height int) {
	b.addRun(x, y, 0xFF, width)
	b.closeBand(y, height)
}

// addAntiRectRun adds a rectangle with partial left and right columns that
// is all these rows will get. Opaque edge columns merge into the middle.
func (b *clipBuilder) addAntiRectRun(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	switch {
	case leftAlpha == 0xFF:
		width++
	case leftAlpha > 0:
		b.addRun(x, y, leftAlpha, 1)
		x++
	default:
		x++
	}
	if rightAlpha == 0xFF {
		width++
	}
	if width > 0 {
		b.addRun(x, y, 0xFF, width)
	}
	if rightAlpha > 0 && rightAlpha < 0xFF {
		b.addRun(x+width, y, rightAlpha, 1)
	}
	b.closeBand(y, height)
}

// closeBand pads the current row to full width and stretches it over
// height rows from y.
func (b *clipBuilder) closeBand(y, height int) {
	if b.curr < 0 {
		return
	}
	b.flushRowH(b.curr)
	b.rows[b.curr].y = y - b.bounds.Top + height - 1
}

func (b *clipBuilder) flushRowH(i int) {
	r := &b.rows[i]
	if r.width < b.width {
		r.data = appendRunTo(r.data, 0, b.width-r.width)
		r.width = b.width
	}
}

// flushRow completes the last row, merging it into the previous one when
// their bytes match. With ready set it returns the index of a cleared row
// to fill next.
func (b *clipBuilder) flushRow(ready bool) int {
	n := len(b.rows)
	if n > 0 {
		b.flushRowH(n - 1)
	}
	if n > 1 {
		prev, curr := &b.rows[n-2], &b.rows[n-1]
		if bytes.Equal(prev.data, curr.data) {
			prev.y = curr.y
			if ready {
				curr.data = curr.data[:0]
				return n - 1
			}
			b.rows = b.rows[:n-1]
			return -1
		}
	}
	if !ready {
		return -1
	}
	b.rows = append(b.rows, builderRow{})
	return len(b.rows) - 1
}

// finish packs the rows into target, trimming zero coverage from every
// side, and reports whether target is non-empty.
func (b *clipBuilder) finish(target *AAClip) bool {
	b.flushRow(false)

	dataSize := 0
	for _, r := range b.rows {
		dataSize += len(r.data)
	}
	if dataSize == 0 {
		return target.SetEmpty()
	}

	bounds := b.bounds
	adjustY := b.minY - bounds.Top
	bounds.Top = b.minY
	rows := b.rows
	for i := range rows {
		rows[i].y -= adjustY
	}
	bounds.Bottom = bounds.Top + rows[len(rows)-1].y + 1

	rows, bounds, ok := trimTopBottom(rows, bounds)
	if !ok {
		return target.SetEmpty()
	}
	rows, bounds, ok = trimLeftRight(rows, bounds)
	if !ok {
		return target.SetEmpty()
	}

	target.setHead(bounds, packRows(rows))
	if err := target.Validate(); err != nil {
		panic(err)
	}
	Logger().Debug("aaclip built",
		"rows", len(rows),
		"bytes", target.head.dataSize(),
		"bounds", bounds.Image())
	return true
}

// packRows encodes rows into a fresh head.
func packRows(rows []builderRow) *runHead {
	dataSize := 0
	for _, r := range rows {
		dataSize += len(r.data)
	}
	h := allocHead(len(rows), dataSize)
	data := h.data()
	off := 0
	for i, r := range rows {
		h.setYOffset(i, r.y, off)
		off += copy(data[off:], r.data)
	}
	return h
}

func rowIsAllZeros(row []byte) bool {
	for i := 1; i < len(row); i += 2 {
		if row[i] != 0 {
			return false
		}
	}
	return true
}

// trimTopBottom drops all-zero bands from both ends.
func trimTopBottom(rows []builderRow, bounds IRect) ([]builderRow, IRect, bool) {
	skip := 0
	for skip < len(rows) && rowIsAllZeros(rows[skip].data) {
		skip++
	}
	if skip == len(rows) {
		return nil, IRect{}, false
	}
	if skip > 0 {
		dy := rows[skip-1].y + 1
		rows = rows[skip:]
		for i := range rows {
			rows[i].y -= dy
		}
		bounds.Top += dy
	}

	last := len(rows) - 1
	for rowIsAllZeros(rows[last].data) {
		last--
	}
	rows = rows[:last+1]
	bounds.Bottom = bounds.Top + rows[last].y + 1
	return rows, bounds, true
}

// countLeftRightZeros returns the zero-coverage pixels at each end of row.
func countLeftRightZeros(row []byte) (left, right int) {
	i := 0
	for ; i < len(row) && row[i+1] == 0; i += 2 {
		left += int(row[i])
	}
	for ; i < len(row); i += 2 {
		if row[i+1] == 0 {
			right += int(row[i])
		} else {
			right = 0
		}
	}
	return left, right
}

// trimLeftRight drops the zero columns every row shares at either side.
func trimLeftRight(rows []builderRow, bounds IRect) ([]builderRow, IRect, bool) {
	width := bounds.Width()
	leftZ, rightZ := width, width
	for _, r := range rows {
		l, rz := countLeftRightZeros(r.data)
		leftZ, rightZ = min(leftZ, l), min(rightZ, rz)
		if leftZ == 0 && rightZ == 0 {
			return rows, bounds, true
		}
	}
	if leftZ+rightZ >= width {
		return nil, IRect{}, false
	}
	bounds.Left += leftZ
	bounds.Right -= rightZ
	for i := range rows {
		rows[i].data = trimRow(rows[i].data, leftZ, rightZ)
	}
	return rows, bounds, true
}

// trimRow removes leftZ zero pixels from the start of row and rightZ from
// its end.
func trimRow(row []byte, leftZ, rightZ int) []byte {
	for leftZ > 0 {
		n := int(row[0])
		if n > leftZ {
			row[0] = byte(n - leftZ)
			break
		}
		row = row[2:]
		leftZ -= n
	}
	for rightZ > 0 {
		last := len(row) - 2
		n := int(row[last])
		if n > rightZ {
			row[last] = byte(n - rightZ)
			break
		}
		row = row[:last]
		rightZ -= n
	}
	return row
}

// builderBlitter feeds rasterizer output into a clipBuilder. Scanlines the
// rasterizer skips become explicit zero bands.
type builderBlitter struct {
	b           *clipBuilder
	left, right int
	minY, lastY int
}

func newBuilderBlitter(b *clipBuilder) *builderBlitter {
	return &builderBlitter{
		b:     b,
		left:  b.bounds.Left,
		right: b.bounds.Right,
		minY:  math.MaxInt,
		lastY: math.MinInt,
	}
}

// finish passes the first scanline seen to the builder.
func (bb *builderBlitter) finish() {
	if bb.minY < math.MaxInt {
		bb.b.minY = bb.minY
	}
}

func (bb *builderBlitter) recordMinY(y int) {
	bb.minY = min(bb.minY, y)
}

// checkForYGap inserts a zero band for rows skipped since the last blit.
func (bb *builderBlitter) checkForYGap(y int) {
	if bb.lastY > math.MinInt && y-bb.lastY > 1 {
		bb.b.addRun(bb.left, y-1, 0, bb.right-bb.left)
	}
	bb.lastY = y
}

func (bb *builderBlitter) BlitH(x, y, width int) {
	bb.recordMinY(y)
	bb.checkForYGap(y)
	bb.b.addRun(x, y, 0xFF, width)
}

// BlitAntiH drops the parts of runs outside the builder's columns; the
// supersampler may hand over rows wider than the clip.
func (bb *builderBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	bb.recordMinY(y)
	bb.checkForYGap(y)
	for i := 0; i < len(runs) && runs[i] > 0; {
		n := int(runs[i])
		lx, rx := max(x+i, bb.left), min(x+i+n, bb.right)
		if lx < rx {
			bb.b.addRun(lx, y, alpha[i], rx-lx)
		}
		i += n
	}
}

func (bb *builderBlitter) BlitV(x, y, height int, alpha uint8) {
	bb.recordMinY(y)
	bb.checkForYGap(y)
	bb.b.addColumn(x, y, alpha, height)
	bb.lastY = y + height - 1
}

func (bb *builderBlitter) BlitRect(x, y, width, height int) {
	bb.recordMinY(y)
	bb.checkForYGap(y)
	bb.b.addRectRun(x, y, width, height)
	bb.lastY = y + height - 1
}

func (bb *builderBlitter) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	bb.recordMinY(y)
	bb.checkForYGap(y)
	bb.b.addAntiRectRun(x, y, width, height, leftAlpha, rightAlpha)
	bb.lastY = y + height - 1
}

func (bb *builderBlitter) BlitMask(*Mask, IRect) {
	panic("scan: BlitMask into a clip builder")
}

// SetPath makes the clip the coverage of p inside clip, anti-aliased when
// doAA is set, and reports whether it is non-empty. A nil clip means the
// path's own bounds, so inverse fills of an unclipped path are empty.
// opts configure the rasterizer that fills the path.
func (c *AAClip) SetPath(p *Path, clip *Region, doAA bool, opts ...Option) bool {
	if p == nil || (clip != nil && clip.IsEmpty()) {
		return c.SetEmpty()
	}
	ibounds := p.Bounds().RoundOut()
	if clip == nil {
		clip = NewRegion(ibounds)
	}
	if p.FillType().IsInverse() {
		ibounds = clip.Bounds()
	} else {
		var ok bool
		if ibounds, ok = ibounds.Intersect(clip.Bounds()); !ok {
			return c.SetEmpty()
		}
	}
	if ibounds.IsEmpty() {
		return c.SetEmpty()
	}

	b := newClipBuilder(ibounds)
	bb := newBuilderBlitter(b)
	r := NewRasterizer(opts...)
	if doAA {
		r.AntiFillPath(p, clip, bb)
	} else {
		r.FillPath(p, clip, bb)
	}
	bb.finish()
	return b.finish(c)
}

// SetRectF makes the clip the coverage of r. Rectangles with integer
// edges take the SetRect path; others are filled as a path.
func (c *AAClip) SetRectF(r Rect, doAA bool) bool {
	if r.IsEmpty() || !r.IsFinite() {
		return c.SetEmpty()
	}
	if r.IsInteger() {
		return c.SetRect(IRect{clampCoord(r.Left), clampCoord(r.Top), clampCoord(r.Right), clampCoord(r.Bottom)})
	}
	p := NewPath()
	p.AddRect(r)
	return c.SetPath(p, nil, doAA)
}

// SetRegion makes the clip the opaque pixels of rgn.
func (c *AAClip) SetRegion(rgn *Region) bool {
	if rgn == nil || rgn.IsEmpty() {
		return c.SetEmpty()
	}
	if rgn.IsRect() {
		return c.SetRect(rgn.Bounds())
	}

	bounds := rgn.Bounds()
	width := bounds.Width()
	rows := make([]builderRow, 0, 2*len(rgn.bands))
	prevBot := 0
	for _, bd := range rgn.bands {
		top, bot := bd.top-bounds.Top, bd.bottom-bounds.Top
		if top > prevBot {
			rows = append(rows, builderRow{y: top - 1, width: width, data: appendRunTo(nil, 0, width)})
		}
		var data []byte
		prevRight := 0
		for i := 0; i < len(bd.spans); i += 2 {
			x := bd.spans[i] - bounds.Left
			data = appendRunTo(data, 0, x-prevRight)
			data = appendRunTo(data, 0xFF, bd.spans[i+1]-bd.spans[i])
			prevRight = bd.spans[i+1] - bounds.Left
		}
		data = appendRunTo(data, 0, width-prevRight)
		rows = append(rows, builderRow{y: bot - 1, width: width, data: data})
		prevBot = bot
	}
	c.setHead(bounds, packRows(rows))
	return true
}
