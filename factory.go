package shapefall

import (
	"math"
	"math/rand/v2"
)

// Spawn ranges for randomized geometry.
var (
	RectWidthRange      = Range{Min: 50, Max: 600}
	RectHeightRange     = Range{Min: 50, Max: 400}
	RadiusRange         = Range{Min: 50, Max: 200}
	CenterXRange        = Range{Min: 0, Max: 400}
	TriangleXRange      = Range{Min: 50, Max: 400}
	TriangleHeightRange = Range{Min: 50, Max: 600}
)

// DefaultCanvasWidth is the horizontal extent rectangles are placed within.
const DefaultCanvasWidth = 800

// Factory builds shapes with randomized geometry. It is not safe for
// concurrent use.
type Factory struct {
	rng         *rand.Rand
	canvasWidth float64
}

// NewFactory returns a factory drawing from rng. A nil rng uses a randomly
// seeded source. canvasWidth <= 0 falls back to DefaultCanvasWidth.
func NewFactory(rng *rand.Rand, canvasWidth float64) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if canvasWidth <= 0 {
		canvasWidth = DefaultCanvasWidth
	}
	return &Factory{rng: rng, canvasWidth: canvasWidth}
}

// NewSeededFactory returns a factory with a deterministic source.
func NewSeededFactory(seed uint64, canvasWidth float64) *Factory {
	return NewFactory(rand.New(rand.NewPCG(seed, seed)), canvasWidth)
}

func (f *Factory) random(r Range) float64 {
	return f.rng.Float64()*(r.Max-r.Min) + r.Min
}

func (f *Factory) randomColor() Color {
	v := f.rng.IntN(0xFFFFFF + 1)
	return Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
		A: 1,
	}
}

// CreateShape builds a shape of a uniformly chosen kind. When at is non-nil
// the shape is placed at that point; otherwise it starts above the top edge.
func (f *Factory) CreateShape(at *Vec2) *Shape {
	kind := ShapeKind(math.Floor(f.random(Range{Min: 0, Max: numShapeKinds})))
	return f.CreateKind(kind, at)
}

// CreateKind builds a shape of the given kind with randomized geometry.
func (f *Factory) CreateKind(kind ShapeKind, at *Vec2) *Shape {
	var s *Shape
	switch kind {
	case ShapeRectangle:
		w := f.random(RectWidthRange)
		h := f.random(RectHeightRange)
		if at != nil {
			s = NewRectangle(at.X, at.Y, w, h)
		} else {
			s = NewRectangle(f.random(Range{Min: 0, Max: f.canvasWidth - w}), -h-1, w, h)
		}
	case ShapeCircle:
		r := f.random(RadiusRange)
		s = NewCircle(f.center(r, at), r)
	case ShapeStar:
		r := f.random(RadiusRange)
		s = NewStar(f.center(r, at), r)
	default:
		var pts [3]Vec2
		for i := range pts {
			pts[i] = Vec2{X: f.random(TriangleXRange), Y: -f.random(TriangleHeightRange)}
		}
		if at != nil {
			cx := (pts[0].X + pts[1].X + pts[2].X) / 3
			cy := (pts[0].Y + pts[1].Y + pts[2].Y) / 3
			for i := range pts {
				pts[i].X += at.X - cx
				pts[i].Y += at.Y - cy
			}
		}
		s = NewTriangle(pts[0], pts[1], pts[2])
	}
	s.Color = f.randomColor()
	return s
}

// center picks a circle or star center: the pointer if given, otherwise a
// point just above the top edge.
func (f *Factory) center(radius float64, at *Vec2) Vec2 {
	if at != nil {
		return *at
	}
	return Vec2{X: reflectInward(f.random(CenterXRange), radius), Y: -radius - 1}
}

// reflectInward moves x right when a circle of the given radius would cross
// the left edge. The result is x + (x + radius), kept as-is: for x near zero
// it does not fully clear the edge.
func reflectInward(x, radius float64) float64 {
	if x-radius < 0 {
		return x + (x - (-radius))
	}
	return x
}

// NewRectangle builds a rectangle with its top-left corner at (x, y).
func NewRectangle(x, y, w, h float64) *Shape {
	return newShape(ShapeRectangle, RectOutline(x, y, w, h), w*h,
		HitRect{X: x, Y: y, Width: w, Height: h})
}

// NewCircle builds a circle.
func NewCircle(c Vec2, radius float64) *Shape {
	return newShape(ShapeCircle, CircleOutline(c, radius, circleSegments),
		math.Pi*radius*radius, HitCircle{CenterX: c.X, CenterY: c.Y, Radius: radius})
}

// NewStar builds a five-point star with inner radius half the outer radius.
func NewStar(c Vec2, radius float64) *Shape {
	pts := StarOutline(c, radius, radius/2, starPoints)
	s := newShape(ShapeStar, pts, StarArea(radius), HitFan{Center: c, Points: pts})
	s.hub = c
	s.hasHub = true
	return s
}

// NewTriangle builds a triangle from three vertices.
func NewTriangle(a, b, c Vec2) *Shape {
	area := TriangleAreaHeron(Distance(a, b), Distance(a, c), Distance(b, c))
	pts := []Vec2{a, b, c}
	return newShape(ShapeTriangle, pts, area, HitPolygon{Points: pts})
}
