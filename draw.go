package shapefall

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once, shapefall is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Every fill is drawn as triangles sampling this pixel.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// surface draws shapes and HUD panels as fan-triangulated meshes. Vertex and
// index buffers are reused across frames.
type surface struct {
	verts     []ebiten.Vertex
	inds      []uint16
	drawCalls int
}

// fanTransform maps an outline point to canvas space.
type fanTransform struct {
	tx, ty float64 // translation
	cx, cy float64 // scale origin
	scale  float64
}

func (t fanTransform) apply(p Vec2) (float32, float32) {
	x := t.cx + (p.X-t.cx)*t.scale + t.tx
	y := t.cy + (p.Y-t.cy)*t.scale + t.ty
	return float32(x), float32(y)
}

// buildFan fills verts/inds with a fan triangulation of points. With a hub,
// the hub is vertex 0 and the outline is closed back to its first point:
// N+2 vertices, 3N indices. Without one, vertex 0 of the outline is the hub:
// N vertices, 3(N-2) indices.
func buildFan(verts []ebiten.Vertex, inds []uint16, points []Vec2, hub *Vec2, t fanTransform, c Color) ([]ebiten.Vertex, []uint16) {
	verts = verts[:0]
	inds = inds[:0]
	n := len(points)
	if n < 3 {
		return verts, inds
	}

	push := func(p Vec2) {
		x, y := t.apply(p)
		verts = append(verts, ebiten.Vertex{
			DstX: x, DstY: y,
			// Untextured: map to center of white pixel (0.5, 0.5)
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: float32(c.A),
		})
	}

	if hub != nil {
		push(*hub)
		for _, p := range points {
			push(p)
		}
		push(points[0])
		for i := 1; i <= n; i++ {
			inds = append(inds, 0, uint16(i), uint16(i+1))
		}
		return verts, inds
	}

	for _, p := range points {
		push(p)
	}
	for i := 0; i < n-2; i++ {
		inds = append(inds, 0, uint16(i+1), uint16(i+2))
	}
	return verts, inds
}

// drawShape draws s translated by its fall offset, scaled around its center.
func (sf *surface) drawShape(dst *ebiten.Image, s *Shape, alpha, scale float64) {
	b := outlineBounds(s.Points)
	t := fanTransform{
		tx: s.X, ty: s.Y,
		cx: b.X + b.Width/2, cy: b.Y + b.Height/2,
		scale: scale,
	}
	c := s.Color
	c.A *= alpha

	var hub *Vec2
	if s.hasHub {
		hub = &s.hub
	}
	sf.verts, sf.inds = buildFan(sf.verts, sf.inds, s.Points, hub, t, c)
	sf.submit(dst)
}

// fillRect draws a solid rectangle.
func (sf *surface) fillRect(dst *ebiten.Image, r Rect, c Color) {
	sf.verts, sf.inds = buildFan(sf.verts, sf.inds,
		RectOutline(r.X, r.Y, r.Width, r.Height), nil, fanTransform{scale: 1}, c)
	sf.submit(dst)
}

func (sf *surface) submit(dst *ebiten.Image) {
	if len(sf.inds) == 0 {
		return
	}
	dst.DrawTriangles(sf.verts, sf.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	sf.drawCalls++
}
