// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"
	"testing"
)

// TestNewEdge tests creating edges from two points.
func TestNewEdge(t *testing.T) {
	tests := []struct {
		name    string
		p0, p1  Point
		wantOK  bool
		wantTop Point
		wantDir int
	}{
		{"downward", Point{0, 0}, Point{10, 10}, true, Point{0, 0}, 1},
		{"upward normalized", Point{10, 10}, Point{0, 0}, true, Point{0, 0}, -1},
		{"horizontal", Point{0, 5}, Point{10, 5}, false, Point{}, 0},
		{"nan", Point{math.NaN(), 0}, Point{1, 1}, false, Point{}, 0},
		{"inf", Point{0, 0}, Point{1, math.Inf(1)}, false, Point{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewEdge(tt.p0, tt.p1)
			if ok != tt.wantOK {
				t.Fatalf("NewEdge ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.X0 != tt.wantTop.X || e.Y0 != tt.wantTop.Y {
				t.Errorf("top = (%v,%v), want %v", e.X0, e.Y0, tt.wantTop)
			}
			if e.Dir != tt.wantDir {
				t.Errorf("Dir = %d, want %d", e.Dir, tt.wantDir)
			}
			if e.Y1 <= e.Y0 {
				t.Errorf("edge not ordered top to bottom: %+v", e)
			}
		})
	}
}

func TestEdgeXAtY(t *testing.T) {
	e, _ := NewEdge(Point{0, 0}, Point{10, 20})
	for _, tt := range []struct{ y, x float64 }{{0, 0}, {10, 5}, {20, 10}} {
		if got := e.XAtY(tt.y); got != tt.x {
			t.Errorf("XAtY(%v) = %v, want %v", tt.y, got, tt.x)
		}
	}
}

func TestEdgeListBounds(t *testing.T) {
	var l EdgeList
	if !l.Bounds().IsEmpty() {
		t.Error("empty list should have empty bounds")
	}
	l.Add(Point{1.5, 2.25}, Point{4.5, 8.75})
	l.Add(Point{0, 3}, Point{2, 3}) // horizontal, dropped
	l.Add(Point{-1.25, 5}, Point{3, 4})

	if len(l.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(l.Edges))
	}
	want := Rect{-2, 2, 5, 9}
	if got := l.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	l.Reset()
	if len(l.Edges) != 0 {
		t.Error("Reset should drop edges")
	}
}

func TestActiveEdgeTable(t *testing.T) {
	edges := []Edge{}
	for _, pts := range [][2]Point{
		{{8, 0}, {8, 10}},
		{{0, 0}, {4, 10}},
		{{2, 0}, {2, 5}},
	} {
		e, _ := NewEdge(pts[0], pts[1])
		edges = append(edges, e)
	}

	aet := NewActiveEdgeTable()
	for i := range edges {
		aet.Add(edges, i)
	}
	aet.Advance(edges, 2.5)
	aet.Sort()

	got := aet.Edges()
	if len(got) != 3 {
		t.Fatalf("got %d active edges, want 3", len(got))
	}
	wantX := []float64{1, 2, 8}
	for i, x := range wantX {
		if got[i].X != x {
			t.Errorf("edge %d at x = %v, want %v", i, got[i].X, x)
		}
	}

	aet.Advance(edges, 7.5)
	if n := len(aet.Edges()); n != 2 {
		t.Errorf("after y=7.5 got %d active edges, want 2", n)
	}

	aet.Clear()
	if n := len(aet.Edges()); n != 0 {
		t.Errorf("after Clear got %d edges", n)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(1e300); got != 1<<29 {
		t.Errorf("clampInt(1e300) = %d", got)
	}
	if got := clampInt(-1e300); got != -1<<29 {
		t.Errorf("clampInt(-1e300) = %d", got)
	}
	if got := clampInt(-3); got != -3 {
		t.Errorf("clampInt(-3) = %d", got)
	}
}
