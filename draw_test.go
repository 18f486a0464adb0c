package shapefall

import "testing"

func TestBuildFanConvex(t *testing.T) {
	pts := RectOutline(10, 20, 30, 40)
	verts, inds := buildFan(nil, nil, pts, nil, fanTransform{scale: 1}, ColorWhite)
	if len(verts) != 4 {
		t.Fatalf("verts = %d, want 4", len(verts))
	}
	if len(inds) != 6 {
		t.Fatalf("inds = %d, want 6", len(inds))
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i, w := range want {
		if inds[i] != w {
			t.Errorf("inds[%d] = %d, want %d", i, inds[i], w)
		}
	}
	if verts[2].DstX != 40 || verts[2].DstY != 60 {
		t.Errorf("vertex 2 = (%v, %v), want (40, 60)", verts[2].DstX, verts[2].DstY)
	}
	if verts[0].SrcX != 0.5 || verts[0].SrcY != 0.5 {
		t.Errorf("src = (%v, %v), want white pixel center", verts[0].SrcX, verts[0].SrcY)
	}
}

func TestBuildFanWithHub(t *testing.T) {
	c := Vec2{X: 100, Y: 100}
	pts := StarOutline(c, 50, 25, 5)
	verts, inds := buildFan(nil, nil, pts, &c, fanTransform{scale: 1}, ColorWhite)
	if len(verts) != len(pts)+2 {
		t.Fatalf("verts = %d, want %d", len(verts), len(pts)+2)
	}
	if len(inds) != 3*len(pts) {
		t.Fatalf("inds = %d, want %d", len(inds), 3*len(pts))
	}
	if verts[0].DstX != 100 || verts[0].DstY != 100 {
		t.Errorf("hub vertex = (%v, %v), want (100, 100)", verts[0].DstX, verts[0].DstY)
	}
	last := verts[len(verts)-1]
	if last.DstX != verts[1].DstX || last.DstY != verts[1].DstY {
		t.Error("outline should close back to its first point")
	}
	for i := 0; i < len(inds); i += 3 {
		if inds[i] != 0 {
			t.Errorf("triangle %d does not start at the hub", i/3)
		}
	}
}

func TestBuildFanTooFewPoints(t *testing.T) {
	verts, inds := buildFan(nil, nil, []Vec2{{0, 0}, {1, 1}}, nil, fanTransform{scale: 1}, ColorWhite)
	if len(verts) != 0 || len(inds) != 0 {
		t.Errorf("got %d verts %d inds, want none", len(verts), len(inds))
	}
}

func TestBuildFanReusesBuffers(t *testing.T) {
	verts, inds := buildFan(nil, nil, RectOutline(0, 0, 1, 1), nil, fanTransform{scale: 1}, ColorWhite)
	verts2, inds2 := buildFan(verts, inds, []Vec2{{0, 0}, {1, 0}, {0, 1}}, nil, fanTransform{scale: 1}, ColorWhite)
	if len(verts2) != 3 || len(inds2) != 3 {
		t.Fatalf("got %d verts %d inds, want 3 and 3", len(verts2), len(inds2))
	}
	if &verts2[0] != &verts[0] {
		t.Error("vertex buffer should be reused")
	}
}

func TestBuildFanColor(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 0.5}
	verts, _ := buildFan(nil, nil, RectOutline(0, 0, 1, 1), nil, fanTransform{scale: 1}, c)
	v := verts[0]
	if v.ColorR != 0.2 || v.ColorG != 0.4 || v.ColorB != 0.6 || v.ColorA != 0.5 {
		t.Errorf("color = (%v, %v, %v, %v)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestFanTransform(t *testing.T) {
	tr := fanTransform{tx: 5, ty: 100, cx: 10, cy: 10, scale: 2}
	x, y := tr.apply(Vec2{X: 12, Y: 10})
	if x != 19 || y != 110 {
		t.Errorf("apply = (%v, %v), want (19, 110)", x, y)
	}
	// The scale origin itself only translates.
	x, y = tr.apply(Vec2{X: 10, Y: 10})
	if x != 15 || y != 110 {
		t.Errorf("apply(center) = (%v, %v), want (15, 110)", x, y)
	}
}
