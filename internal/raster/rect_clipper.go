package raster

// RectClipper forwards to Sink only the parts of each blit that fall
// inside Clip. BlitAntiH may rewrite the caller's alpha and runs arrays.
// Based on Skia's SkRectClipBlitter.
type RectClipper struct {
	Sink Sink
	Clip Rect
}

// NewRectClipper returns a RectClipper restricting s to clip.
func NewRectClipper(s Sink, clip Rect) *RectClipper {
	return &RectClipper{Sink: s, Clip: clip}
}

func (c *RectClipper) yInside(y int) bool {
	return y >= c.Clip.Top && y < c.Clip.Bottom
}

// BlitH implements Sink.
func (c *RectClipper) BlitH(x, y, width int) {
	if !c.yInside(y) {
		return
	}
	left := max(x, c.Clip.Left)
	right := min(x+width, c.Clip.Right)
	if left < right {
		c.Sink.BlitH(left, y, right-left)
	}
}

// BlitAntiH implements Sink.
func (c *RectClipper) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	if !c.yInside(y) || x >= c.Clip.Right {
		return
	}

	x0 := x
	x1 := x + AntiWidth(runs)
	if x1 <= c.Clip.Left {
		return
	}

	if x0 < c.Clip.Left {
		dx := c.Clip.Left - x0
		BreakAt(runs, alpha, dx)
		runs = runs[dx:]
		alpha = alpha[dx:]
		x0 = c.Clip.Left
	}

	if x1 > c.Clip.Right {
		x1 = c.Clip.Right
		BreakAt(runs, alpha, x1-x0)
		runs[x1-x0] = 0
	}

	c.Sink.BlitAntiH(x0, y, alpha, runs)
}

// BlitV implements Sink.
func (c *RectClipper) BlitV(x, y, height int, alpha uint8) {
	if x < c.Clip.Left || x >= c.Clip.Right {
		return
	}
	top := max(y, c.Clip.Top)
	bottom := min(y+height, c.Clip.Bottom)
	if top < bottom {
		c.Sink.BlitV(x, top, bottom-top, alpha)
	}
}

// BlitRect implements Sink.
func (c *RectClipper) BlitRect(x, y, width, height int) {
	if r, ok := (Rect{x, y, x + width, y + height}).Intersect(c.Clip); ok {
		c.Sink.BlitRect(r.Left, r.Top, r.Right-r.Left, r.Bottom-r.Top)
	}
}

// BlitAntiRect implements AntiRectSink. The blitted area is width+2
// columns wide; a partial column cut away by the clip turns the adjacent
// visible column opaque.
func (c *RectClipper) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	r, ok := (Rect{x, y, x + width + 2, y + height}).Intersect(c.Clip)
	if !ok {
		return
	}
	if r.Left != x {
		leftAlpha = 0xFF
	}
	if r.Right != x+width+2 {
		rightAlpha = 0xFF
	}

	switch {
	case leftAlpha == 0xFF && rightAlpha == 0xFF:
		c.Sink.BlitRect(r.Left, r.Top, r.Right-r.Left, r.Bottom-r.Top)
	case r.Right-r.Left == 1:
		a := leftAlpha
		if r.Left != x {
			a = rightAlpha
		}
		c.Sink.BlitV(r.Left, r.Top, r.Bottom-r.Top, a)
	default:
		BlitAntiRect(c.Sink, r.Left, r.Top, r.Right-r.Left-2, r.Bottom-r.Top, leftAlpha, rightAlpha)
	}
}
