package scan

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskBW(t *testing.T) {
	m := NewMask(IRect{3, 1, 13, 3}, MaskBW)
	if m.RowBytes != 2 {
		t.Fatalf("RowBytes = %d, want 2", m.RowBytes)
	}
	m.SetAlpha(3, 1, 0x10)
	m.SetAlpha(12, 2, 0xFF)
	m.SetAlpha(20, 2, 0xFF) // outside

	if m.Image[0] != 0x80 || m.Image[3] != 0x40 {
		t.Errorf("bits = % X", m.Image)
	}
	if got := m.Alpha(3, 1); got != 0xFF {
		t.Errorf("Alpha(3,1) = %d, want 255", got)
	}
	if got := m.Alpha(4, 1); got != 0 {
		t.Errorf("Alpha(4,1) = %d, want 0", got)
	}

	m.SetAlpha(3, 1, 0)
	if m.Alpha(3, 1) != 0 {
		t.Error("SetAlpha(0) did not clear the bit")
	}
}

func TestMaskToA8(t *testing.T) {
	m := NewMask(IRect{0, 0, 9, 1}, MaskBW)
	m.Image[0] = 0xA5
	m.Image[1] = 0x80

	a8 := m.toA8()
	want := []uint8{0xFF, 0, 0xFF, 0, 0, 0xFF, 0, 0xFF, 0xFF}
	for x, w := range want {
		if got := a8.Alpha(x, 0); got != w {
			t.Errorf("pixel %d = %02X, want %02X", x, got, w)
		}
	}
	if a8.toA8() != a8 {
		t.Error("toA8 of an A8 mask should return it unchanged")
	}
}

func TestMaskImageRoundTrip(t *testing.T) {
	src := image.NewAlpha(image.Rect(2, 2, 6, 5))
	src.SetAlpha(3, 3, color.Alpha{A: 0x7F})
	src.SetAlpha(5, 4, color.Alpha{A: 0xFF})

	m := NewMaskFromImage(src)
	if m.Bounds != (IRect{2, 2, 6, 5}) {
		t.Fatalf("Bounds = %v", m.Bounds)
	}
	out := m.ToImage()
	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if out.AlphaAt(x, y) != src.AlphaAt(x, y) {
				t.Errorf("(%d,%d) = %v, want %v", x, y, out.AlphaAt(x, y), src.AlphaAt(x, y))
			}
		}
	}
}

func TestBlitMaskRows(t *testing.T) {
	m := NewMask(IRect{0, 0, 4, 2}, MaskA8)
	copy(m.Image, []byte{0, 0xFF, 0xFF, 0x40, 0x20, 0x20, 0, 0})

	var rec recordBlitter
	BlitMaskRows(&rec, m, IRect{0, 0, 4, 2})
	want := []string{"AntiH 1,0 2xFF 1x40", "AntiH 0,1 2x20"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %q, want %q", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, rec.calls[i], want[i])
		}
	}
}
