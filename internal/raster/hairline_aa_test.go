package raster

import (
	"testing"

	"github.com/gogpu/scan/internal/fixed"
)

func dot6(v float64) fixed.FDot6 { return fixed.FDot6FromFloat(v) }

func TestAntiHairLineHorizontal(t *testing.T) {
	s := newRecordSink()
	AntiHairLine(s, 0, 0, dot6(10), 0, nil)

	for x := 0; x < 10; x++ {
		if got := s.at(x, 0); got != 128 {
			t.Errorf("(%d,0) = %d, want 128", x, got)
		}
		if got := s.at(x, -1); got != 127 {
			t.Errorf("(%d,-1) = %d, want 127", x, got)
		}
	}
	if got, want := s.bounds(), (Rect{0, -1, 10, 1}); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
	equalCalls(t, s.calls, []string{
		"AH 0,0 1x128", "AH 0,-1 1x127",
		"AH 1,0 9x128", "AH 1,-1 9x127",
	})
}

func TestAntiHairLineVertical(t *testing.T) {
	s := newRecordSink()
	AntiHairLine(s, dot6(3.5), dot6(1), dot6(3.5), dot6(5), nil)

	for y := 1; y < 5; y++ {
		if got := s.at(3, y); got != 255 {
			t.Errorf("(3,%d) = %d, want 255", y, got)
		}
		if got := s.at(2, y); got != 0 {
			t.Errorf("(2,%d) = %d, want 0", y, got)
		}
	}
}

func TestAntiHairLineColumnSums(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
	}{
		{"shallow down", 0, 0, 100, 37},
		{"shallow up", 0, 40, 100, 3},
		{"right to left", 100, 10, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			AntiHairLine(s, dot6(tt.x0), dot6(tt.y0), dot6(tt.x1), dot6(tt.y1), nil)

			sums := map[int]int{}
			for p, a := range s.coverage {
				sums[p[0]] += a
			}
			for x := 0; x < 100; x++ {
				if sums[x] != 255 {
					t.Errorf("column %d sums to %d, want 255", x, sums[x])
				}
			}
			if len(sums) != 100 {
				t.Errorf("touched %d columns, want 100", len(sums))
			}
		})
	}
}

func TestAntiHairLineRowSums(t *testing.T) {
	s := newRecordSink()
	AntiHairLine(s, dot6(5), 0, dot6(30), dot6(80), nil)

	sums := map[int]int{}
	for p, a := range s.coverage {
		sums[p[1]] += a
	}
	for y := 0; y < 80; y++ {
		if sums[y] != 255 {
			t.Errorf("row %d sums to %d, want 255", y, sums[y])
		}
	}
}

func TestAntiHairLinePartialEnds(t *testing.T) {
	// Half a pixel at each end.
	s := newRecordSink()
	AntiHairLine(s, dot6(0.5), dot6(2), dot6(3.5), dot6(2), nil)

	want := map[int]int{0: 64, 1: 128, 2: 128, 3: 64}
	for x, a := range want {
		if got := s.at(x, 2); got != a {
			t.Errorf("(%d,2) = %d, want %d", x, got, a)
		}
	}
}

func TestAntiHairLineDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 fixed.FDot6
	}{
		{"zero length", 64, 64, 64, 64},
		{"bad int", fixed.BadInt, 0, 640, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			AntiHairLine(s, tt.x0, tt.y0, tt.x1, tt.y1, nil)
			if len(s.calls) != 0 {
				t.Errorf("got calls %q, want none", s.calls)
			}
		})
	}
}

func TestAntiHairLineBisection(t *testing.T) {
	x0, y0, x1, y1 := dot6(0), dot6(0), dot6(1000), dot6(300)

	whole := newRecordSink()
	AntiHairLine(whole, x0, y0, x1, y1, nil)

	hx := (x0 >> 1) + (x1 >> 1)
	hy := (y0 >> 1) + (y1 >> 1)
	halves := newRecordSink()
	AntiHairLine(halves, x0, y0, hx, hy, nil)
	AntiHairLine(halves, hx, hy, x1, y1, nil)

	equalCalls(t, whole.calls, halves.calls)
}

func TestAntiHairLineClip(t *testing.T) {
	clip := Rect{10, 10, 20, 20}
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		empty          bool
	}{
		{"diagonal through", 0, 0, 30, 30, false},
		{"shallow through", 0, 12, 40, 17, false},
		{"steep through", 12, 0, 17, 40, false},
		{"left of clip", 0, 0, 5, 30, true},
		{"above clip", 0, 2, 30, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			AntiHairLine(s, dot6(tt.x0), dot6(tt.y0), dot6(tt.x1), dot6(tt.y1), &clip)
			if tt.empty {
				if len(s.coverage) != 0 {
					t.Errorf("got coverage at %+v, want none", s.bounds())
				}
				return
			}
			if len(s.coverage) == 0 {
				t.Fatal("got no coverage")
			}
			if b := s.bounds(); !clip.Contains(b) {
				t.Errorf("coverage %+v escapes clip %+v", b, clip)
			}
		})
	}
}

func TestAntiHairLineClipMatchesUnclipped(t *testing.T) {
	clip := Rect{10, 0, 20, 100}
	x0, y0, x1, y1 := dot6(0), dot6(5.25), dot6(40), dot6(21.75)

	clipped := newRecordSink()
	AntiHairLine(clipped, x0, y0, x1, y1, &clip)
	full := newRecordSink()
	AntiHairLine(full, x0, y0, x1, y1, nil)

	for p, a := range full.coverage {
		inside := p[0] >= clip.Left && p[0] < clip.Right
		got := clipped.coverage[p]
		if inside && got != a {
			t.Errorf("pixel %v = %d, want %d", p, got, a)
		}
		if !inside && got != 0 {
			t.Errorf("pixel %v outside clip = %d", p, got)
		}
	}
}
