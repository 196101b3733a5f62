package raster

import (
	"testing"

	"github.com/gogpu/scan/internal/fixed"
)

func dotRect(l, t, r, b float64) DotRect {
	return DotRect{fixed.FDot8FromFloat(l), fixed.FDot8FromFloat(t), fixed.FDot8FromFloat(r), fixed.FDot8FromFloat(b)}
}

func TestAntiFillRect(t *testing.T) {
	tests := []struct {
		name string
		r    DotRect
		want []string
	}{
		{
			"integer",
			dotRect(1, 1, 4, 3),
			[]string{"V 1,1 h2 a255", "R 2,1 2x2"},
		},
		{
			"half pixel inset",
			dotRect(0.5, 0.5, 2.5, 2.5),
			[]string{
				"V 0,0 h1 a64", "AH 1,0 1x128", "V 2,0 h1 a64",
				"V 0,1 h1 a128", "R 1,1 1x1", "V 2,1 h1 a128",
				"V 0,2 h1 a64", "AH 1,2 1x128", "V 2,2 h1 a64",
			},
		},
		{
			"inside one pixel",
			dotRect(0.25, 0.25, 0.75, 0.75),
			[]string{"V 0,0 h1 a63"},
		},
		{
			"one pixel wide",
			dotRect(2.25, 0, 2.75, 3),
			[]string{"V 2,0 h3 a127"},
		},
		{"empty", dotRect(2, 2, 2, 5), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			AntiFillRect(s, tt.r)
			equalCalls(t, s.calls, tt.want)
		})
	}
}

func TestAntiFrameRectInteger(t *testing.T) {
	s := newRecordSink()
	AntiFrameRect(s, dotRect(0, 0, 4, 4), dotRect(1, 1, 3, 3), false)

	equalCalls(t, s.calls, []string{"R 0,0 4x1", "R 0,1 1x2", "R 3,1 1x2", "R 0,3 4x1"})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 255
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 0
			}
			if got := s.at(x, y); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestAntiFrameRectFractional(t *testing.T) {
	s := newRecordSink()
	AntiFrameRect(s, dotRect(0.5, 0.5, 4.5, 4.5), dotRect(1.5, 1.5, 3.5, 3.5), false)

	want := map[[2]int]int{
		{0, 0}: 64, {1, 0}: 128, {4, 0}: 64,
		{1, 1}: 192, {2, 1}: 128, {3, 1}: 191,
		{1, 2}: 128, {2, 2}: 0, {3, 2}: 127,
		{3, 3}: 191,
	}
	for p, a := range want {
		if got := s.coverage[p]; got != a {
			t.Errorf("pixel %v = %d, want %d", p, got, a)
		}
	}

	total := 0
	for p, a := range s.coverage {
		if a > 255 {
			t.Errorf("pixel %v blitted twice: %d", p, a)
		}
		total += a
	}
	// Ring area is 16 - 4 = 12 pixels.
	if total < 12*255-24 || total > 12*255+24 {
		t.Errorf("total coverage = %d, want about %d", total, 12*255)
	}
}

func TestAntiFrameRectThinStroke(t *testing.T) {
	// A quarter-pixel stroke centered on x = 2.5 puts both hull edges in
	// column 2.
	s := newRecordSink()
	AntiFrameRect(s, dotRect(2.375, 0, 8, 8), dotRect(2.625, 1, 7, 7), true)

	for p, a := range s.coverage {
		if a > 255 {
			t.Errorf("pixel %v blitted twice: %d", p, a)
		}
	}
	if got := s.at(2, 3); got < 60 || got > 68 {
		t.Errorf("column 2 coverage = %d, want about 64", got)
	}
}

func TestAntiFrameRectFilled(t *testing.T) {
	// A stroke wider than the rectangle leaves no hole.
	s := newRecordSink()
	AntiFrameRect(s, dotRect(0, 0, 3, 3), DotRect{}, false)

	equalCalls(t, s.calls, []string{"R 0,0 3x3"})
}
