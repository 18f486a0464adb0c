package shapefall

// HitShape is a pickable region in a shape's local (spawn) coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// HitFan is a star-shaped polygon hit area: every point of the outline is
// visible from Center. Stars are not convex, so each wedge
// (Center, Points[i], Points[i+1]) is tested on its own.
type HitFan struct {
	Center Vec2
	Points []Vec2
}

// Contains reports whether (x, y) lies inside any wedge of the fan.
func (f HitFan) Contains(x, y float64) bool {
	n := len(f.Points)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		wedge := HitPolygon{Points: []Vec2{f.Center, f.Points[i], f.Points[(i+1)%n]}}
		if wedge.Contains(x, y) {
			return true
		}
	}
	return false
}
