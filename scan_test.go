package scan

import (
	"fmt"
	"image"
	"testing"
)

// circlePath returns a closed circle contour.
func circlePath(cx, cy, r float64) *Path {
	p := NewPath()
	p.Circle(cx, cy, r)
	return p
}

// newCanvas returns a zeroed w x h alpha image and a blitter over it.
func newCanvas(w, h int) (*image.Alpha, *AlphaBlitter) {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	return img, NewAlphaBlitter(img)
}

// countBlitter counts how often each pixel is touched.
type countBlitter struct {
	hits map[image.Point]int
}

func newCountBlitter() *countBlitter {
	return &countBlitter{hits: make(map[image.Point]int)}
}

func (c *countBlitter) hit(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.hits[image.Pt(i, j)]++
		}
	}
}

func (c *countBlitter) BlitH(x, y, width int) { c.hit(x, y, width, 1) }

func (c *countBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	for i := 0; i < len(runs) && runs[i] > 0; i += int(runs[i]) {
		if alpha[i] != 0 {
			c.hit(x+i, y, int(runs[i]), 1)
		}
	}
}

func (c *countBlitter) BlitV(x, y, height int, alpha uint8) {
	if alpha != 0 {
		c.hit(x, y, 1, height)
	}
}

func (c *countBlitter) BlitRect(x, y, width, height int) { c.hit(x, y, width, height) }

func (c *countBlitter) BlitMask(m *Mask, clip IRect) {
	for y := clip.Top; y < clip.Bottom; y++ {
		for x := clip.Left; x < clip.Right; x++ {
			if m.Alpha(x, y) != 0 {
				c.hit(x, y, 1, 1)
			}
		}
	}
}

// recordBlitter logs every call it receives.
type recordBlitter struct {
	calls []string
}

func (r *recordBlitter) BlitH(x, y, width int) {
	r.calls = append(r.calls, fmt.Sprintf("H %d,%d w%d", x, y, width))
}

func (r *recordBlitter) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	s := fmt.Sprintf("AntiH %d,%d", x, y)
	for i := 0; i < len(runs) && runs[i] > 0; i += int(runs[i]) {
		s += fmt.Sprintf(" %dx%02X", runs[i], alpha[i])
	}
	r.calls = append(r.calls, s)
}

func (r *recordBlitter) BlitV(x, y, height int, alpha uint8) {
	r.calls = append(r.calls, fmt.Sprintf("V %d,%d h%d a%02X", x, y, height, alpha))
}

func (r *recordBlitter) BlitRect(x, y, width, height int) {
	r.calls = append(r.calls, fmt.Sprintf("Rect %d,%d %dx%d", x, y, width, height))
}

func (r *recordBlitter) BlitMask(m *Mask, clip IRect) {
	r.calls = append(r.calls, fmt.Sprintf("Mask %v", clip.Image()))
}

// clipFromRows builds a clip whose row y-bounds.Top holds rows[y] as dense
// coverage starting at bounds.Left.
func clipFromRows(t *testing.T, bounds IRect, rows [][]uint8) *AAClip {
	t.Helper()
	b := newClipBuilder(bounds)
	for j, row := range rows {
		for i := 0; i < len(row); {
			k := i + 1
			for k < len(row) && row[k] == row[i] {
				k++
			}
			b.addRun(bounds.Left+i, bounds.Top+j, row[i], k-i)
			i = k
		}
	}
	c := new(AAClip)
	b.finish(c)
	if err := c.Validate(); err != nil {
		t.Fatalf("clipFromRows: %v", err)
	}
	return c
}

// clipAlpha returns the clip's coverage at (x, y), 0 outside its bounds.
func clipAlpha(c *AAClip, x, y int) uint8 {
	if c.IsEmpty() {
		return 0
	}
	return c.CopyToMask().Alpha(x, y)
}

func alphaAt(img *image.Alpha, x, y int) uint8 {
	return img.AlphaAt(x, y).A
}

func between(v uint8, lo, hi uint8) bool { return v >= lo && v <= hi }
