package raster

import (
	"fmt"
	"testing"
)

// recordSink records every call and accumulates the coverage each pixel
// receives. Opaque calls add 255.
type recordSink struct {
	calls    []string
	coverage map[[2]int]int
}

func newRecordSink() *recordSink {
	return &recordSink{coverage: make(map[[2]int]int)}
}

func (r *recordSink) add(x, y, alpha int) {
	if alpha != 0 {
		r.coverage[[2]int{x, y}] += alpha
	}
}

func (r *recordSink) BlitH(x, y, width int) {
	r.calls = append(r.calls, fmt.Sprintf("H %d,%d w%d", x, y, width))
	for i := 0; i < width; i++ {
		r.add(x+i, y, 255)
	}
}

func (r *recordSink) BlitAntiH(x, y int, alpha []uint8, runs []int16) {
	s := fmt.Sprintf("AH %d,%d", x, y)
	for i := 0; runs[i] > 0; i += int(runs[i]) {
		s += fmt.Sprintf(" %dx%d", runs[i], alpha[i])
		for j := 0; j < int(runs[i]); j++ {
			r.add(x+i+j, y, int(alpha[i]))
		}
	}
	r.calls = append(r.calls, s)
}

func (r *recordSink) BlitV(x, y, height int, alpha uint8) {
	r.calls = append(r.calls, fmt.Sprintf("V %d,%d h%d a%d", x, y, height, alpha))
	for i := 0; i < height; i++ {
		r.add(x, y+i, int(alpha))
	}
}

func (r *recordSink) BlitRect(x, y, width, height int) {
	r.calls = append(r.calls, fmt.Sprintf("R %d,%d %dx%d", x, y, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			r.add(x+i, y+j, 255)
		}
	}
}

func (r *recordSink) at(x, y int) int {
	return r.coverage[[2]int{x, y}]
}

// bounds returns the rectangle enclosing every covered pixel.
func (r *recordSink) bounds() Rect {
	first := true
	var b Rect
	for p := range r.coverage {
		if first {
			b = Rect{p[0], p[1], p[0] + 1, p[1] + 1}
			first = false
			continue
		}
		b.Left = min(b.Left, p[0])
		b.Top = min(b.Top, p[1])
		b.Right = max(b.Right, p[0]+1)
		b.Bottom = max(b.Bottom, p[1]+1)
	}
	return b
}

func equalCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d calls %q, want %d calls %q", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBlitHLine(t *testing.T) {
	tests := []struct {
		name  string
		width int
		alpha uint8
		want  []string
	}{
		{"opaque", 5, 0xFF, []string{"H 1,2 w5"}},
		{"partial", 5, 0x80, []string{"AH 1,2 5x128"}},
		{"transparent", 5, 0, nil},
		{"empty", 0, 0x80, nil},
		{"chunked", hlineChunk + 3, 9, []string{"AH 1,2 100x9", "AH 101,2 3x9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			BlitHLine(s, 1, 2, tt.width, tt.alpha)
			equalCalls(t, s.calls, tt.want)
		})
	}
}

func TestBlitAntiFallbacks(t *testing.T) {
	s := newRecordSink()
	BlitAntiH2(s, 3, 4, 10, 20)
	BlitAntiV2(s, 3, 4, 30, 40)
	equalCalls(t, s.calls, []string{
		"AH 3,4 1x10 1x20",
		"AH 3,4 1x30",
		"AH 3,5 1x40",
	})
}

func TestBlitAntiRectFallback(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		left, right uint8
		want        []string
	}{
		{"both partial", 3, 10, 20, []string{"V 0,0 h2 a10", "R 1,0 3x2", "V 4,0 h2 a20"}},
		{"no right", 2, 10, 0, []string{"V 0,0 h2 a10", "R 1,0 2x2"}},
		{"no middle", 0, 10, 20, []string{"V 0,0 h2 a10", "V 1,0 h2 a20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSink()
			BlitAntiRect(s, 0, 0, tt.width, 2, tt.left, tt.right)
			equalCalls(t, s.calls, tt.want)
		})
	}
}

func TestBreak(t *testing.T) {
	runs := []int16{6, 0, 0, 0, 0, 0, 0}
	alpha := []uint8{7, 0, 0, 0, 0, 0, 0}

	Break(runs, alpha, 2, 3)

	want := []int16{2, 0, 3, 0, 0, 1, 0}
	for i, n := range want {
		if runs[i] != n {
			t.Fatalf("runs = %v, want %v", runs, want)
		}
	}
	for _, i := range []int{0, 2, 5} {
		if alpha[i] != 7 {
			t.Errorf("alpha[%d] = %d, want 7", i, alpha[i])
		}
	}
	if got := AntiWidth(runs); got != 6 {
		t.Errorf("AntiWidth() = %d, want 6", got)
	}
}

func TestBreakAtRunBoundary(t *testing.T) {
	runs := []int16{2, 0, 3, 0, 0, 0}
	alpha := []uint8{1, 0, 2, 0, 0, 0}

	BreakAt(runs, alpha, 2)

	if runs[0] != 2 || runs[2] != 3 {
		t.Errorf("runs = %v, want unchanged", runs)
	}
}
