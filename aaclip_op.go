package scan

import (
	"math"

	"github.com/gogpu/scan/internal/blend"
)

// alphaProc returns the coverage combiner for op. Reverse difference and
// replace never reach the row merge.
func alphaProc(op ClipOp) blend.BlendFunc {
	switch op {
	case OpDifference:
		return blend.GetBlendFunc(blend.BlendSourceOut)
	case OpUnion:
		return blend.GetBlendFunc(blend.BlendSourceOver)
	case OpXor:
		return blend.GetBlendFunc(blend.BlendXor)
	default:
		return blend.GetBlendFunc(blend.BlendModulate)
	}
}

// Op sets c to a op b and reports whether the result is non-empty. c may
// be a or b.
func (c *AAClip) Op(a, b *AAClip, op ClipOp) bool {
	switch op {
	case OpReplace:
		return c.Set(b)
	case OpReverseDifference:
		a, b = b, a
		op = OpDifference
	}

	var bounds IRect
	switch op {
	case OpDifference:
		if a.IsEmpty() {
			return c.SetEmpty()
		}
		if b.IsEmpty() || !a.bounds.Intersects(b.bounds) {
			return c.Set(a)
		}
		bounds = a.bounds
	case OpIntersect:
		var ok bool
		if a.IsEmpty() || b.IsEmpty() {
			return c.SetEmpty()
		}
		if bounds, ok = a.bounds.Intersect(b.bounds); !ok {
			return c.SetEmpty()
		}
	case OpUnion, OpXor:
		if a.IsEmpty() {
			return c.Set(b)
		}
		if b.IsEmpty() {
			return c.Set(a)
		}
		bounds = a.bounds.Join(b.bounds)
	default:
		return !c.IsEmpty()
	}

	builder := newClipBuilder(bounds)
	operateY(builder, a, b, alphaProc(op))
	return builder.finish(c)
}

// OpClip sets c to c op b.
func (c *AAClip) OpClip(b *AAClip, op ClipOp) bool {
	return c.Op(c, b, op)
}

// OpRect sets c to c op r. Intersecting with a rectangle that covers the
// clip, or one the clip fully covers, and union with a rectangle that
// covers the clip skip the row merge.
func (c *AAClip) OpRect(r IRect, op ClipOp) bool {
	switch op {
	case OpIntersect:
		sect, ok := r.Intersect(c.bounds)
		if !ok {
			return c.SetEmpty()
		}
		if sect == c.bounds {
			Logger().Debug("aaclip op shortcut", "op", op, "result", "unchanged")
			return !c.IsEmpty()
		}
		if c.QuickContains(sect) {
			Logger().Debug("aaclip op shortcut", "op", op, "result", "rect")
			return c.SetRect(sect)
		}
		r = sect
	case OpUnion:
		if r.Contains(c.bounds) {
			Logger().Debug("aaclip op shortcut", "op", op, "result", "rect")
			return c.SetRect(r)
		}
	}
	var tmp AAClip
	defer tmp.Release()
	tmp.SetRect(r)
	return c.Op(c, &tmp, op)
}

// OpRectF sets c to c op r, rasterizing r anti-aliased when doAA is set.
// Only the part of r over the clip matters for intersect and difference.
func (c *AAClip) OpRectF(r Rect, op ClipOp, doAA bool) bool {
	bounds := c.bounds.Rect()
	switch op {
	case OpIntersect, OpDifference:
		sect, ok := r.Intersect(bounds)
		if !ok {
			if op == OpDifference {
				return !c.IsEmpty()
			}
			return c.SetEmpty()
		}
		r = sect
	case OpUnion:
		if r.Contains(bounds) {
			return c.SetRectF(r, doAA)
		}
	}
	var tmp AAClip
	defer tmp.Release()
	tmp.SetRectF(r, doAA)
	return c.Op(c, &tmp, op)
}

// operateY merges the bands of a and b over bounds, splitting at every
// band edge of either. Scanlines where neither clip has a band get a zero
// row.
func operateY(builder *clipBuilder, a, b *AAClip, proc blend.BlendFunc) {
	bounds := builder.bounds
	itA, itB := newBandIter(a), newBandIter(b)
	topA, botA := itA.top, itA.bottom
	topB, botB := itB.top, itB.bottom

	for {
		var rowA, rowB []byte
		var top, bot int
		switch {
		case topA < topB:
			top = topA
			rowA = itA.data
			if botA <= topB {
				bot = botA
			} else {
				bot = topB
				topA = topB
			}
		case topB < topA:
			top = topB
			rowB = itB.data
			if botB <= topA {
				bot = botB
			} else {
				bot = topA
				topB = topA
			}
		default:
			top = topA
			bot = min(botA, botB)
			topA, topB = bot, bot
			rowA, rowB = itA.data, itB.data
		}

		if top >= bounds.Bottom {
			break
		}
		bot = min(bot, bounds.Bottom)

		if top >= bounds.Top {
			if rowA == nil && rowB == nil {
				builder.addRun(bounds.Left, bot-1, 0, bounds.Width())
			} else {
				ra, rb := bounds, bounds
				if rowA != nil {
					ra = a.bounds
				}
				if rowB != nil {
					rb = b.bounds
				}
				operateX(builder, bot-1, newRowIter(rowA, ra), newRowIter(rowB, rb), proc, bounds)
			}
		}

		advanceBand(&itA, &topA, &botA, bot)
		advanceBand(&itB, &topB, &botB, bot)
		if itA.done && itB.done {
			break
		}
	}
}

func advanceBand(it *bandIter, top, bot *int, y int) {
	if y == *bot {
		it.next()
		*top = *bot
		*bot = it.bottom
	}
}

// rowIter walks the runs of one encoded row. A nil row behaves as a row
// of zero coverage with no end.
type rowIter struct {
	row         []byte
	left, right int
	boundsRight int
	alpha       uint8
	done        bool
}

func newRowIter(row []byte, bounds IRect) rowIter {
	it := rowIter{row: row, left: bounds.Left, boundsRight: bounds.Right}
	if row == nil {
		it.done = true
		it.right = math.MaxInt
		return it
	}
	it.right = bounds.Left + int(row[0])
	it.alpha = row[1]
	return it
}

func (it *rowIter) next() {
	if it.done {
		return
	}
	it.left = it.right
	if it.right == it.boundsRight {
		it.done = true
		it.right = math.MaxInt
		it.alpha = 0
		return
	}
	it.row = it.row[2:]
	it.right += int(it.row[0])
	it.alpha = it.row[1]
}

// operateX merges two rows into the builder row at y, splitting at every
// run edge of either and keeping only columns inside bounds.
func operateX(builder *clipBuilder, y int, itA, itB rowIter, proc blend.BlendFunc, bounds IRect) {
	leftA, riteA := itA.left, itA.right
	leftB, riteB := itB.left, itB.right
	prevRite := bounds.Left

	for {
		var alphaA, alphaB uint8
		var left, rite int
		switch {
		case leftA < leftB:
			left = leftA
			alphaA = itA.alpha
			if riteA <= leftB {
				rite = riteA
			} else {
				rite = leftB
				leftA = leftB
			}
		case leftB < leftA:
			left = leftB
			alphaB = itB.alpha
			if riteB <= leftA {
				rite = riteB
			} else {
				rite = leftA
				leftB = leftA
			}
		default:
			left = leftA
			rite = min(riteA, riteB)
			leftA, leftB = rite, rite
			alphaA, alphaB = itA.alpha, itB.alpha
		}

		if left >= bounds.Right {
			break
		}
		rite = min(rite, bounds.Right)
		if left >= bounds.Left {
			builder.addRun(left, y, proc(alphaA, alphaB), rite-left)
			prevRite = rite
		}

		advanceRun(&itA, &leftA, &riteA, rite)
		advanceRun(&itB, &leftB, &riteB, rite)
		if itA.done && itB.done {
			break
		}
	}
	if prevRite < bounds.Right {
		builder.addRun(prevRite, y, 0, bounds.Right-prevRite)
	}
}

func advanceRun(it *rowIter, left, rite *int, x int) {
	if x == *rite {
		it.next()
		*left = it.left
		*rite = it.right
	}
}
