package scan

import "image"

// MaskFormat is the pixel layout of a Mask.
type MaskFormat uint8

const (
	// MaskA8 stores one coverage byte per pixel.
	MaskA8 MaskFormat = iota
	// MaskBW stores one bit per pixel, most significant bit first. A set
	// bit is full coverage.
	MaskBW
)

// Mask is a coverage image positioned in device space. Pixel (x, y) of the
// device maps to row y-Bounds.Top and column x-Bounds.Left of Image.
type Mask struct {
	Image    []byte
	Bounds   IRect
	RowBytes int
	Format   MaskFormat
}

// NewMask allocates a zeroed mask covering bounds.
func NewMask(bounds IRect, format MaskFormat) *Mask {
	if bounds.IsEmpty() {
		return &Mask{Bounds: bounds, Format: format}
	}
	rowBytes := bounds.Width()
	if format == MaskBW {
		rowBytes = (rowBytes + 7) >> 3
	}
	return &Mask{
		Image:    make([]byte, rowBytes*bounds.Height()),
		Bounds:   bounds,
		RowBytes: rowBytes,
		Format:   format,
	}
}

// NewMaskFromImage creates an A8 mask from an image's alpha channel,
// positioned at the image's bounds.
func NewMaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(IRectFromImage(b), MaskA8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.row(y)
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			row[x-b.Min.X] = uint8(a >> 8) //nolint:gosec // a>>8 is in [0, 255]
		}
	}
	return m
}

// row returns the bytes of device row y.
func (m *Mask) row(y int) []byte {
	off := (y - m.Bounds.Top) * m.RowBytes
	return m.Image[off : off+m.RowBytes]
}

// Alpha returns the coverage at device pixel (x, y), or 0 outside Bounds.
func (m *Mask) Alpha(x, y int) uint8 {
	if !m.Bounds.ContainsPoint(x, y) {
		return 0
	}
	row := m.row(y)
	x -= m.Bounds.Left
	if m.Format == MaskBW {
		if row[x>>3]&(0x80>>(x&7)) != 0 {
			return 0xFF
		}
		return 0
	}
	return row[x]
}

// SetAlpha stores a coverage at device pixel (x, y). Pixels outside
// Bounds are ignored; BW masks store any non-zero value as a set bit.
func (m *Mask) SetAlpha(x, y int, a uint8) {
	if !m.Bounds.ContainsPoint(x, y) {
		return
	}
	row := m.row(y)
	x -= m.Bounds.Left
	if m.Format == MaskBW {
		bit := byte(0x80 >> (x & 7))
		if a != 0 {
			row[x>>3] |= bit
		} else {
			row[x>>3] &^= bit
		}
		return
	}
	row[x] = a
}

// ToImage expands the mask into an *image.Alpha with the same bounds.
func (m *Mask) ToImage() *image.Alpha {
	img := image.NewAlpha(m.Bounds.Image())
	if m.Format == MaskA8 {
		for y := m.Bounds.Top; y < m.Bounds.Bottom; y++ {
			copy(img.Pix[img.PixOffset(m.Bounds.Left, y):], m.row(y)[:m.Bounds.Width()])
		}
		return img
	}
	for y := m.Bounds.Top; y < m.Bounds.Bottom; y++ {
		for x := m.Bounds.Left; x < m.Bounds.Right; x++ {
			img.Pix[img.PixOffset(x, y)] = m.Alpha(x, y)
		}
	}
	return img
}

// toA8 returns m itself when it is A8, or an A8 copy of a BW mask.
func (m *Mask) toA8() *Mask {
	if m.Format == MaskA8 {
		return m
	}
	gray := NewMask(m.Bounds, MaskA8)
	width := m.Bounds.Width()
	for y := m.Bounds.Top; y < m.Bounds.Bottom; y++ {
		src, dst := m.row(y), gray.row(y)
		for x := range width {
			// Negating a set bit fills the high byte.
			dst[x] = uint8(-int(src[x>>3]&(0x80>>(x&7))) >> 8) //nolint:gosec // 0 or 0xFF
		}
	}
	return gray
}
