package shapefall

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(math.Pow(a.X-b.X, 2) + math.Pow(a.Y-b.Y, 2))
}

// SideFromLawOfSines returns the side opposite targetAngle in a triangle
// where knownSide is opposite knownAngle. Angles are in radians.
// knownAngle must not be a multiple of π; the result is meaningless otherwise.
func SideFromLawOfSines(knownSide, knownAngle, targetAngle float64) float64 {
	return knownSide * math.Sin(targetAngle) / math.Sin(knownAngle)
}

// TriangleAreaHeron returns the area of a triangle with side lengths a, b, c.
// Lengths that cannot close a triangle yield NaN.
func TriangleAreaHeron(a, b, c float64) float64 {
	s := (a + b + c) / 2
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

// PolygonAreaShoelace returns the absolute area of a simple polygon.
// Fewer than three points have zero area.
func PolygonAreaShoelace(points []Vec2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// Star wedge angles in radians. A five-point star splits into ten congruent
// triangles spanning the center O, an outer tip A and an inner vertex C:
// the angle at C is 126°, at O 36° and at A 18°.
const (
	starInnerAngle = 2.19911486
	starTipSpan    = 0.628318531
	starHalfTip    = 0.314159265
	starPoints     = 5
)

// StarArea approximates the area of a five-point star with the given outer
// radius as ten copies of the wedge O-A-C.
func StarArea(radius float64) float64 {
	ac := SideFromLawOfSines(radius, starInnerAngle, starTipSpan)
	co := SideFromLawOfSines(radius, starInnerAngle, starHalfTip)
	return 10 * TriangleAreaHeron(radius, ac, co)
}

// StarOutline returns the 2n outline points of an n-point star centered on c,
// alternating outer and inner radius. The first tip points straight up.
func StarOutline(c Vec2, outer, inner float64, n int) []Vec2 {
	pts := make([]Vec2, 2*n)
	step := math.Pi / float64(n)
	start := -math.Pi / 2
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := start + float64(i)*step
		pts[i] = Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// circleSegments is the tessellation used for circle outlines.
const circleSegments = 48

// CircleOutline returns a regular polygon approximating a circle.
func CircleOutline(c Vec2, radius float64, segments int) []Vec2 {
	pts := make([]Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vec2{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
	}
	return pts
}

// RectOutline returns the four corners of a rectangle, clockwise from the origin.
func RectOutline(x, y, w, h float64) []Vec2 {
	return []Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// outlineBounds returns the axis-aligned bounding box of points.
func outlineBounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
