package scan

import (
	"math"
	"testing"
)

func nearPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), Pt(3, 4), Pt(7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !nearPoint(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	p := Pt(11, -3)
	if got := inv.TransformPoint(m.TransformPoint(p)); !nearPoint(got, p) {
		t.Errorf("round trip = %v, want %v", got, p)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() of a singular matrix reported success")
	}
}

func TestMatrixMapRect(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	if got := Scale(2, 1).MapRect(r); got != (Rect{0, 0, 20, 20}) {
		t.Errorf("MapRect(scale) = %v", got)
	}
	got := Rotate(math.Pi / 2).MapRect(r)
	if math.Abs(got.Left+20) > 1e-9 || math.Abs(got.Right) > 1e-9 || math.Abs(got.Bottom-10) > 1e-9 {
		t.Errorf("MapRect(rotate) = %v, want [-20 0 0 10]", got)
	}
	if !Translate(3, 4).IsScaleTranslate() || Rotate(0.1).IsScaleTranslate() {
		t.Error("IsScaleTranslate misclassified")
	}
	if !Identity().IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity misclassified")
	}
}
