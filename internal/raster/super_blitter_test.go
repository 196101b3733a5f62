package raster

import (
	"testing"
)

func TestSupersampleConstants(t *testing.T) {
	if SupersampleShift != 2 {
		t.Errorf("SupersampleShift = %d, want 2", SupersampleShift)
	}
	if SupersampleScale != 4 {
		t.Errorf("SupersampleScale = %d, want 4", SupersampleScale)
	}
	if SupersampleMask != 3 {
		t.Errorf("SupersampleMask = %d, want 3", SupersampleMask)
	}
}

func TestNewSuperBlitterEmpty(t *testing.T) {
	if sb := NewSuperBlitter(newRecordSink(), Rect{5, 5, 5, 10}); sb != nil {
		t.Error("NewSuperBlitter with empty bounds should return nil")
	}
}

func TestSuperBlitterCoverage(t *testing.T) {
	tests := []struct {
		name   string
		x, w   int // supersampled span
		pixels []int
	}{
		{"full pixels", 4, 8, []int{0, 255, 255, 0}},
		{"half pixel", 4, 2, []int{0, 128, 0, 0}},
		{"straddle", 6, 4, []int{0, 128, 128, 0}},
		{"clamped left", -8, 12, []int{255, 0, 0, 0}},
		{"clamped right", 12, 20, []int{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			sb := NewSuperBlitter(s, Rect{0, 0, 4, 2})
			for sy := 0; sy < SupersampleScale; sy++ {
				sb.BlitH(tt.x, sy, tt.w)
			}
			sb.Flush()

			for x, want := range tt.pixels {
				if got := s.at(x, 0); got != want {
					t.Errorf("pixel %d = %d, want %d", x, got, want)
				}
			}
		})
	}
}

func TestSuperBlitterFlushesPerRow(t *testing.T) {
	s := newRecordSink()
	sb := NewSuperBlitter(s, Rect{0, 0, 2, 2})
	for sy := 0; sy < 2*SupersampleScale; sy++ {
		sb.BlitH(0, sy, 8)
	}
	sb.Flush()

	if len(s.calls) != 2 {
		t.Fatalf("got %d BlitAntiH calls, want one per row: %q", len(s.calls), s.calls)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := s.at(x, y); got != 255 {
				t.Errorf("pixel (%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestSuperBlitterFlushWithoutSpans(t *testing.T) {
	s := newRecordSink()
	sb := NewSuperBlitter(s, Rect{0, 0, 2, 2})
	sb.Flush()
	if len(s.calls) != 0 {
		t.Errorf("Flush on fresh blitter emitted %q", s.calls)
	}
}
