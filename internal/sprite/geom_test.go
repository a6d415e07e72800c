package sprite

import (
	"math"
	"testing"
)

func TestSegDist(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 4, Y: 0}
	tests := []struct {
		name string
		p    Point
		a, b Point
		want float64
	}{
		{name: "on segment", p: Point{X: 2, Y: 0}, a: a, b: b, want: 0},
		{name: "on endpoint", p: Point{X: 4, Y: 0}, a: a, b: b, want: 0},
		{name: "perpendicular", p: Point{X: 1, Y: 3}, a: a, b: b, want: 3},
		{name: "before start", p: Point{X: -3, Y: 4}, a: a, b: b, want: 5},
		{name: "past end", p: Point{X: 7, Y: -4}, a: a, b: b, want: 5},
		{name: "degenerate", p: Point{X: 3, Y: 4}, a: a, b: a, want: 5},
		{name: "diagonal midpoint", p: Point{X: 0.5, Y: 0.5}, a: a, b: Point{X: 1, Y: 1}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegDist(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("SegDist(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestInBorder(t *testing.T) {
	if !inBorder(Point{X: 0.01, Y: 0.5}, 0.05) {
		t.Fatalf("expected left margin to be border")
	}
	if !inBorder(Point{X: 0.5, Y: 0.96}, 0.05) {
		t.Fatalf("expected bottom margin to be border")
	}
	if inBorder(Point{X: 0.5, Y: 0.5}, 0.05) {
		t.Fatalf("centre must not be border")
	}
}
