package shapefall

import "math"

// shapeIDCounter is a plain counter (no atomic, shapefall is single-threaded).
var shapeIDCounter uint32

func nextShapeID() uint32 {
	shapeIDCounter++
	return shapeIDCounter
}

// Shape is one falling figure. Its outline is stored in the coordinates it
// was spawned at; X and Y are the translation accumulated since then, so the
// figure is drawn at Points[i] + (X, Y).
type Shape struct {
	ID   uint32
	Kind ShapeKind

	// Translation since spawn.
	X, Y float64

	// Height is the bounding height of the outline.
	Height float64

	// Area is computed once at creation.
	Area float64

	// Degenerate is set when the area formula produced NaN; Area is then 0.
	Degenerate bool

	Color  Color
	Points []Vec2

	// Hit is the pick region in spawn coordinates.
	Hit HitShape

	// Fill hub for fan triangulation. Stars fan from their center,
	// convex figures from their first point.
	hub    Vec2
	hasHub bool
}

// newShape finalizes a shape record from its outline.
func newShape(kind ShapeKind, points []Vec2, area float64, hit HitShape) *Shape {
	s := &Shape{
		ID:     nextShapeID(),
		Kind:   kind,
		Points: points,
		Hit:    hit,
		Height: outlineBounds(points).Height,
	}
	if math.IsNaN(area) {
		s.Degenerate = true
		area = 0
	}
	s.Area = area
	return s
}

// Bounds returns the shape's current world-space bounding box.
func (s *Shape) Bounds() Rect {
	b := outlineBounds(s.Points)
	b.X += s.X
	b.Y += s.Y
	return b
}

// Contains reports whether the world point (x, y) lies on the shape.
func (s *Shape) Contains(x, y float64) bool {
	if s.Hit == nil {
		return false
	}
	return s.Hit.Contains(x-s.X, y-s.Y)
}

// OutlineArea returns the shoelace area of the drawn outline. For stars this
// differs from Area, which uses the ten-wedge approximation.
func (s *Shape) OutlineArea() float64 {
	return PolygonAreaShoelace(s.Points)
}

// pastBottom reports whether the shape has fallen out of a view of the given
// height. The test compares the translation, not the outline's top edge.
func (s *Shape) pastBottom(viewHeight float64) bool {
	return s.Y-s.Height > viewHeight
}
