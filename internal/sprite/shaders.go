package sprite

import "math"

const (
	obstacleBorder = 0.06
	obstacleStripe = 0.11

	gravityCutoff    = 0.97
	gravityCore      = 0.18
	gravityGlowInner = 0.82
	gravityGlowPeak  = 0.90
	gravityGlowWidth = 0.08

	boostBorder = 0.05
	boltWidth   = 0.10
	boltGlow    = 0.17
)

var boltSegments = []Segment{
	{A: Point{0.62, 0.08}, B: Point{0.35, 0.48}},
	{A: Point{0.35, 0.48}, B: Point{0.65, 0.48}},
	{A: Point{0.65, 0.48}, B: Point{0.38, 0.92}},
}

// Sword parts, each with its own hit radius.
var (
	swordBlade  = Segment{A: Point{0.50, 0.07}, B: Point{0.50, 0.70}}
	swordGuard  = Segment{A: Point{0.22, 0.64}, B: Point{0.78, 0.64}}
	swordHandle = Segment{A: Point{0.50, 0.72}, B: Point{0.50, 0.93}}
)

func shadeObstacle(x, y, size int) (int, int, int, int) {
	p := normalize(x, y, size)
	if inBorder(p, obstacleBorder) {
		return 90, 90, 100, 255
	}
	d1 := math.Abs(p.Y-p.X) / math.Sqrt2
	d2 := math.Abs(p.Y-(1-p.X)) / math.Sqrt2
	if d1 < obstacleStripe || d2 < obstacleStripe {
		return 210, 210, 220, 255
	}
	return 55, 55, 65, 255
}

func shadeGravityDevice(x, y, size int) (int, int, int, int) {
	c := float64(size-1) / 2
	d := math.Hypot(float64(x)-c, float64(y)-c) / (float64(size) / 2)
	if d > gravityCutoff {
		return 0, 0, 0, 0
	}

	// concentric rings
	ring := (math.Sin(d*math.Pi*6) + 1) / 2
	r := int(90 + ring*50)
	g := int(20 + ring*15)
	b := int(170 + ring*60)
	a := int(220 * (1 - d*0.35))

	if d < gravityCore {
		bright := (gravityCore - d) / gravityCore
		r += int(bright * 80)
		g += int(bright * 30)
		b += int(bright * 50)
	}
	if d > gravityGlowInner && d < gravityCutoff {
		glow := 1 - math.Abs(d-gravityGlowPeak)/gravityGlowWidth
		r += int(glow * 40)
		g += int(glow * 20)
		b += int(glow * 60)
	}
	return r, g, b, a
}

func shadeSpeedBoost(x, y, size int) (int, int, int, int) {
	p := normalize(x, y, size)
	if inBorder(p, boostBorder) {
		return 30, 130, 40, 255
	}
	if nearAny(p, boltSegments, boltWidth) {
		return 200, 255, 80, 255
	}
	if nearAny(p, boltSegments, boltGlow) {
		return 80, 180, 50, 200
	}
	return 20, 70, 25, 255
}

func shadeDamageBoost(x, y, size int) (int, int, int, int) {
	p := normalize(x, y, size)
	if inBorder(p, boostBorder) {
		return 150, 30, 30, 255
	}
	blade := swordBlade.Dist(p) < 0.07
	guard := swordGuard.Dist(p) < 0.06
	handle := swordHandle.Dist(p) < 0.07
	if blade || guard || handle {
		v := int(230 - math.Abs(p.X-0.5)*80)
		return v, v, v + 10, 255
	}
	if p.Y < 0.12 && math.Abs(p.X-0.5) < 0.10 {
		tip := (0.12 - p.Y) / 0.12
		return 255, int(80 + tip*100), int(tip * 80), 255
	}
	return 75, 15, 15, 255
}
