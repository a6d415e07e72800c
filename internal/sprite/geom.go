package sprite

import "math"

type Point struct {
	X, Y float64
}

type Segment struct {
	A, B Point
}

// SegDist returns the distance from p to the closest point of segment ab.
func SegDist(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

func (s Segment) Dist(p Point) float64 {
	return SegDist(p, s.A, s.B)
}

func nearAny(p Point, segs []Segment, limit float64) bool {
	for _, s := range segs {
		if s.Dist(p) < limit {
			return true
		}
	}
	return false
}

func normalize(x, y, size int) Point {
	return Point{X: float64(x) / float64(size), Y: float64(y) / float64(size)}
}

// inBorder reports whether p lies in the outer margin of a unit square.
func inBorder(p Point, margin float64) bool {
	return p.X < margin || p.X > 1-margin || p.Y < margin || p.Y > 1-margin
}
