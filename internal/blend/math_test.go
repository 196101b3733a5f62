package blend

import (
	"math"
	"testing"
)

func TestMulDiv255Round(t *testing.T) {
	tests := []struct {
		a, b uint8
		want uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 128, 128},
		{200, 100, 78},
		{200, 155, 122},
		{1, 1, 0},
		{128, 128, 64},
	}

	for _, tt := range tests {
		if got := MulDiv255Round(tt.a, tt.b); got != tt.want {
			t.Errorf("MulDiv255Round(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMulDiv255RoundAllValues(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := uint8(math.Floor(float64(a*b)/255 + 0.5))
			if got := MulDiv255Round(uint8(a), uint8(b)); got != want {
				t.Fatalf("MulDiv255Round(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestInvAlphaMul(t *testing.T) {
	tests := []struct {
		a, b uint8
		want uint8
	}{
		{0, 0, 0},
		{255, 0, 255},
		{0, 255, 255},
		{128, 128, 192},
		{255, 255, 255},
	}

	for _, tt := range tests {
		if got := InvAlphaMul(tt.a, tt.b); got != tt.want {
			t.Errorf("InvAlphaMul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCatchOverflow(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{0, 0},
		{128, 128},
		{255, 255},
		{256, 255},
		{300, 255},
	}

	for _, tt := range tests {
		if got := CatchOverflow(tt.in); got != tt.want {
			t.Errorf("CatchOverflow(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
