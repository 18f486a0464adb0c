package shapefall

import (
	"math"
	"testing"
)

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonTriangle(t *testing.T) {
	p := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {0, -100}}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 20, -20, true},
		{"vertex", 0, 0, true},
		{"on hypotenuse", 50, -50, true},
		{"beyond hypotenuse", 60, -60, false},
		{"below base", 20, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonReversedWinding(t *testing.T) {
	cw := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
	ccw := HitPolygon{Points: []Vec2{{0, 0}, {0, 100}, {100, 100}, {100, 0}}}
	for _, pt := range []Vec2{{50, 50}, {1, 99}, {150, 50}, {-1, 0}} {
		if cw.Contains(pt.X, pt.Y) != ccw.Contains(pt.X, pt.Y) {
			t.Errorf("winding changes result at %v", pt)
		}
	}
}

func TestHitPolygonTooFewPoints(t *testing.T) {
	p := HitPolygon{Points: []Vec2{{0, 0}, {10, 10}}}
	if p.Contains(5, 5) {
		t.Error("a two-point polygon should contain nothing")
	}
}

func TestHitFanStar(t *testing.T) {
	c := Vec2{X: 200, Y: 200}
	f := HitFan{Center: c, Points: StarOutline(c, 100, 50, 5)}

	if !f.Contains(200, 200) {
		t.Error("fan should contain its center")
	}
	// Each tip, just inside.
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/5
		x, y := c.X+95*math.Cos(a), c.Y+95*math.Sin(a)
		if !f.Contains(x, y) {
			t.Errorf("tip %d: (%v, %v) should be inside", i, x, y)
		}
	}
	// Each notch, outside the inner radius.
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + math.Pi/5 + float64(i)*2*math.Pi/5
		x, y := c.X+70*math.Cos(a), c.Y+70*math.Sin(a)
		if f.Contains(x, y) {
			t.Errorf("notch %d: (%v, %v) should be outside", i, x, y)
		}
	}
	if f.Contains(400, 400) {
		t.Error("far point should be outside")
	}
}
