package scan

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
)

// AAClip is an anti-aliased clip mask stored as run-length encoded rows.
//
// Each stored row is a sequence of (count, alpha) byte pairs whose counts
// add up to the clip's width. Adjacent identical rows share one entry, so
// a clip is a list of horizontal bands. The zero value is an empty clip.
//
// Clips share their encoded rows: Set, Translate and the op shortcuts are
// O(1) and every mutation builds fresh rows before dropping the old ones,
// so a clip may be combined with itself. An AAClip must not be copied by
// value; use Set. Call Release, or any Set method, to return the rows to
// the allocator early.
type AAClip struct {
	noCopy noCopy

	bounds IRect
	head   *runHead
}

// noCopy lets go vet's copylocks check flag copies of the containing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Encoded layout, little endian:
//
//	[refcount:i32][rowCount:i32][dataSize:i32]
//	[rowCount × (y:i32, offset:u32)]
//	[dataSize bytes of (count, alpha) pairs]
//
// y is the last mask-relative scanline of the entry's band; offset is the
// start of its row within the pair data.
const (
	headerSize  = 12
	yOffsetSize = 8
	maxRowRun   = 255
)

var (
	// ErrRowWidth reports a row whose run counts do not add up to the
	// clip width.
	ErrRowWidth = errors.New("scan: aaclip row width mismatch")
	// ErrYOrder reports band entries whose last scanlines do not increase.
	ErrYOrder = errors.New("scan: aaclip rows out of order")
	// ErrOffsetOrder reports row offsets that decrease or leave the data.
	ErrOffsetOrder = errors.New("scan: aaclip row offsets out of order")
	// ErrLastRow reports a last band that does not end at the bottom edge.
	ErrLastRow = errors.New("scan: aaclip last row does not match bounds")
	// ErrEmptyHead reports rows without bounds or bounds without rows.
	ErrEmptyHead = errors.New("scan: aaclip rows and bounds disagree")
)

// runHead owns one encoded clip. The reference count lives outside the
// byte buffer so that it can be updated atomically.
type runHead struct {
	refs atomic.Int32
	buf  []byte
}

var headPool = sync.Pool{New: func() any { return new([]byte) }}

func allocHead(rowCount, dataSize int) *runHead {
	size := headerSize + rowCount*yOffsetSize + dataSize
	bp := headPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < size {
		buf = make([]byte, size)
	}
	buf = buf[:size]
	clear(buf[:headerSize])

	h := &runHead{buf: buf}
	h.refs.Store(1)
	binary.LittleEndian.PutUint32(buf[4:], uint32(rowCount)) //nolint:gosec // row counts fit in 31 bits
	binary.LittleEndian.PutUint32(buf[8:], uint32(dataSize)) //nolint:gosec // data sizes fit in 31 bits
	return h
}

// allocRectHead encodes a single fully opaque band width wide and height
// tall.
func allocRectHead(width, height int) *runHead {
	h := allocHead(1, rowSizeForWidth(width))
	h.setYOffset(0, height-1, 0)
	appendRunTo(h.data()[:0], 0xFF, width)
	return h
}

func rowSizeForWidth(width int) int {
	return 2 * ((width + maxRowRun - 1) / maxRowRun)
}

func (h *runHead) retain() { h.refs.Add(1) }

// release drops one reference and recycles the buffer after the last.
func (h *runHead) release() {
	if h.refs.Add(-1) == 0 {
		buf := h.buf
		h.buf = nil
		headPool.Put(&buf)
	}
}

func (h *runHead) rowCount() int {
	return int(binary.LittleEndian.Uint32(h.buf[4:]))
}

func (h *runHead) dataSize() int {
	return int(binary.LittleEndian.Uint32(h.buf[8:]))
}

// yOffset returns entry i of the Y-offset table.
func (h *runHead) yOffset(i int) (y, offset int) {
	e := h.buf[headerSize+i*yOffsetSize:]
	return int(int32(binary.LittleEndian.Uint32(e))), int(binary.LittleEndian.Uint32(e[4:])) //nolint:gosec // stored as i32
}

func (h *runHead) setYOffset(i, y, offset int) {
	e := h.buf[headerSize+i*yOffsetSize:]
	binary.LittleEndian.PutUint32(e, uint32(int32(y))) //nolint:gosec // y is mask-relative
	binary.LittleEndian.PutUint32(e[4:], uint32(offset)) //nolint:gosec // offsets fit in 31 bits
}

// data returns the pair data following the Y-offset table.
func (h *runHead) data() []byte {
	return h.buf[headerSize+h.rowCount()*yOffsetSize:]
}

// row returns the pairs of entry i, running to the end of the data.
func (h *runHead) row(i int) []byte {
	_, off := h.yOffset(i)
	return h.data()[off:]
}

// IsEmpty reports whether the clip has no pixels.
func (c *AAClip) IsEmpty() bool { return c.head == nil }

// IsRect reports whether the clip is a fully opaque rectangle.
func (c *AAClip) IsRect() bool {
	if c.head == nil || c.head.rowCount() != 1 {
		return false
	}
	row := c.head.row(0)
	for w := c.bounds.Width(); w > 0; row = row[2:] {
		if row[1] != 0xFF {
			return false
		}
		w -= int(row[0])
	}
	return true
}

// Bounds returns the tight bounds of the clip's non-zero coverage.
func (c *AAClip) Bounds() IRect { return c.bounds }

// SetEmpty makes the clip empty and returns false.
func (c *AAClip) SetEmpty() bool {
	c.setHead(IRect{}, nil)
	return false
}

// Release empties the clip, returning its rows to the allocator once no
// other clip shares them.
func (c *AAClip) Release() { c.SetEmpty() }

// setHead installs a new head, which the clip now owns, and drops the old.
func (c *AAClip) setHead(bounds IRect, h *runHead) {
	old := c.head
	c.bounds, c.head = bounds, h
	if h == nil {
		c.bounds = IRect{}
	}
	if old != nil {
		old.release()
	}
}

// SetRect makes the clip the opaque rectangle r and reports whether it is
// non-empty.
func (c *AAClip) SetRect(r IRect) bool {
	if r.IsEmpty() {
		return c.SetEmpty()
	}
	c.setHead(r, allocRectHead(r.Width(), r.Height()))
	return true
}

// Set makes c share src's rows.
func (c *AAClip) Set(src *AAClip) bool {
	if c == src {
		return !c.IsEmpty()
	}
	if src.head != nil {
		src.head.retain()
	}
	c.setHead(src.bounds, src.head)
	return !c.IsEmpty()
}

// Swap exchanges the contents of c and o.
func (c *AAClip) Swap(o *AAClip) {
	c.bounds, o.bounds = o.bounds, c.bounds
	c.head, o.head = o.head, c.head
}

// Translate stores c offset by (dx, dy) in dst, sharing c's rows. dst may
// be c. With a nil dst it only reports whether c is non-empty.
func (c *AAClip) Translate(dx, dy int, dst *AAClip) bool {
	if dst == nil {
		return !c.IsEmpty()
	}
	if c.IsEmpty() {
		return dst.SetEmpty()
	}
	if c != dst {
		dst.Set(c)
	}
	dst.bounds = dst.bounds.Offset(dx, dy)
	return true
}

// Equal reports whether c and o cover the same pixels with the same
// coverage encoding.
func (c *AAClip) Equal(o *AAClip) bool {
	if c == o {
		return true
	}
	if c.bounds != o.bounds {
		return false
	}
	if c.head == o.head {
		return true
	}
	if c.head == nil || o.head == nil {
		return false
	}
	a, b := c.head, o.head
	return a.rowCount() == b.rowCount() && a.dataSize() == b.dataSize() &&
		bytes.Equal(a.data()[:a.dataSize()], b.data()[:b.dataSize()])
}

// FindRow returns the encoded row covering scanline y and the last
// scanline of its band. row is nil when y is outside the clip.
//
// row aliases the encoding c shares with its copies. It is valid until c
// is next modified or released. Once the last clip holding the encoding
// lets go, its buffer is recycled and row may read another clip's data.
func (c *AAClip) FindRow(y int) (row []byte, lastY int) {
	if c.head == nil || y < c.bounds.Top || y >= c.bounds.Bottom {
		return nil, 0
	}
	y -= c.bounds.Top
	i := 0
	for {
		ry, off := c.head.yOffset(i)
		if ry >= y {
			return c.head.data()[off:], c.bounds.Top + ry
		}
		i++
	}
}

// FindX skips the runs of row left of column x. It returns the row from
// the run containing x and how many pixels of that run remain from x on.
// x must lie inside the clip bounds. rest stays valid as long as row does.
func (c *AAClip) FindX(row []byte, x int) (rest []byte, initialCount int) {
	x -= c.bounds.Left
	for {
		n := int(row[0])
		if x < n {
			return row, n - x
		}
		row = row[2:]
		x -= n
	}
}

// QuickContains reports whether every pixel of r has full coverage and
// r lies within a single band.
func (c *AAClip) QuickContains(r IRect) bool {
	if c.IsEmpty() || !c.bounds.Contains(r) {
		return false
	}
	row, lastY := c.FindRow(r.Top)
	if lastY < r.Bottom-1 {
		return false
	}
	row, count := c.FindX(row, r.Left)
	width := r.Width()
	for row[1] == 0xFF {
		if count >= width {
			return true
		}
		width -= count
		row = row[2:]
		if len(row) < 2 {
			return false
		}
		count = int(row[0])
	}
	return false
}

// CopyToMask expands the clip into an A8 mask covering its bounds.
func (c *AAClip) CopyToMask() *Mask {
	if c.IsEmpty() {
		return &Mask{Format: MaskA8}
	}
	m := NewMask(c.bounds, MaskA8)
	width := c.bounds.Width()
	it := newBandIter(c)
	for y := c.bounds.Top; !it.done; it.next() {
		for ; y < it.bottom; y++ {
			expandRow(m.row(y), it.data, width)
		}
	}
	return m
}

func expandRow(dst, row []byte, width int) {
	for width > 0 {
		n := int(row[0])
		a := row[1]
		for i := range dst[:n] {
			dst[i] = a
		}
		dst = dst[n:]
		row = row[2:]
		width -= n
	}
}

// MarshalBinary returns the clip's encoded rows in the little-endian
// layout [refcount][rowCount][dataSize][(y, offset)...][pairs...]. An
// empty clip encodes as nil.
func (c *AAClip) MarshalBinary() ([]byte, error) {
	if c.head == nil {
		return nil, nil
	}
	out := make([]byte, headerSize+c.head.rowCount()*yOffsetSize+c.head.dataSize())
	copy(out, c.head.buf)
	binary.LittleEndian.PutUint32(out, uint32(c.head.refs.Load())) //nolint:gosec // non-negative
	return out, nil
}

// Validate checks the encoding invariants and returns the first breach.
func (c *AAClip) Validate() error {
	if c.head == nil {
		if !c.bounds.IsEmpty() {
			return fmt.Errorf("%w: bounds %v without rows", ErrEmptyHead, c.bounds)
		}
		return nil
	}
	n := c.head.rowCount()
	if n == 0 || c.bounds.IsEmpty() {
		return fmt.Errorf("%w: %d rows in %v", ErrEmptyHead, n, c.bounds)
	}
	width, size := c.bounds.Width(), c.head.dataSize()
	prevY, prevOff := -1, -1
	for i := range n {
		y, off := c.head.yOffset(i)
		if y <= prevY {
			return fmt.Errorf("%w: entry %d y=%d after %d", ErrYOrder, i, y, prevY)
		}
		if off <= prevOff || off >= size {
			return fmt.Errorf("%w: entry %d offset=%d", ErrOffsetOrder, i, off)
		}
		if w := rowWidth(c.head.data()[off:size], width); w != width {
			return fmt.Errorf("%w: entry %d is %d wide, want %d", ErrRowWidth, i, w, width)
		}
		prevY, prevOff = y, off
	}
	if prevY != c.bounds.Height()-1 {
		return fmt.Errorf("%w: last y=%d, height %d", ErrLastRow, prevY, c.bounds.Height())
	}
	return nil
}

// rowWidth sums run counts until they reach width or the data ends.
// Zero counts stop the sum.
func rowWidth(row []byte, width int) int {
	w := 0
	for len(row) >= 2 && w < width && row[0] != 0 {
		w += int(row[0])
		row = row[2:]
	}
	return w
}

// Dump writes a readable listing of the clip's bands to w.
func (c *AAClip) Dump(w io.Writer) error {
	if c.head == nil {
		_, err := fmt.Fprintln(w, "aaclip: empty")
		return err
	}
	if _, err := fmt.Fprintf(w, "aaclip: bounds=%v rows=%d bytes=%d\n", c.bounds.Image(), c.head.rowCount(), c.head.dataSize()); err != nil {
		return err
	}
	width := c.bounds.Width()
	for i := range c.head.rowCount() {
		y, off := c.head.yOffset(i)
		line := fmt.Sprintf("Y:%3d", y)
		row := c.head.data()[off:]
		for x := 0; x < width; row = row[2:] {
			line += fmt.Sprintf(" [%3d:%02X]", row[0], row[1])
			x += int(row[0])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// bandIter walks a clip's bands top to bottom. After the last band done
// is set, data is nil and bottom is unbounded.
type bandIter struct {
	head        *runHead
	i           int
	top, bottom int
	data        []byte
	done        bool
}

func newBandIter(c *AAClip) bandIter {
	if c.head == nil {
		return bandIter{top: c.bounds.Bottom, bottom: c.bounds.Bottom, done: true}
	}
	y, _ := c.head.yOffset(0)
	return bandIter{
		head:   c.head,
		top:    c.bounds.Top,
		bottom: c.bounds.Top + y + 1,
		data:   c.head.row(0),
	}
}

func (it *bandIter) next() {
	if it.done {
		return
	}
	it.top = it.bottom
	it.i++
	if it.i >= it.head.rowCount() {
		it.done = true
		it.bottom = math.MaxInt
		it.data = nil
		return
	}
	prevY, _ := it.head.yOffset(it.i - 1)
	y, _ := it.head.yOffset(it.i)
	it.bottom += y - prevY
	it.data = it.head.row(it.i)
}

// appendRunTo appends (count, alpha) pairs covering count pixels, split
// into runs of at most 255.
func appendRunTo(dst []byte, alpha uint8, count int) []byte {
	for count > 0 {
		n := min(count, maxRowRun)
		dst = append(dst, byte(n), alpha)
		count -= n
	}
	return dst
}
