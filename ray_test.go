package flixel

import "testing"

// TestRay_ClearMap verifies an unobstructed segment reports clear.
func TestRay_ClearMap(t *testing.T) {
	m := newPixelMap(t, "0,0,0\n0,0,0")
	if !m.Ray(Point{X: 4, Y: 4}, Point{X: 44, Y: 28}, nil, 1) {
		t.Error("ray across an empty map reported a hit")
	}
}

// TestRay_HitFromLeft verifies a hit and the exact crossing on the
// tile's near X boundary.
func TestRay_HitFromLeft(t *testing.T) {
	m := newPixelMap(t, "0,1,0")
	var hit Point
	if m.Ray(Point{X: 8, Y: 8}, Point{X: 40, Y: 8}, &hit, 1) {
		t.Fatal("ray into the wall reported clear")
	}
	if hit.X != 16 || hit.Y != 8 {
		t.Errorf("crossing = (%g,%g), want (16,8)", hit.X, hit.Y)
	}
}

// TestRay_HitFromRight verifies the boundary flips to the tile's far
// side when the ray travels in -X.
func TestRay_HitFromRight(t *testing.T) {
	m := newPixelMap(t, "0,1,0")
	var hit Point
	if m.Ray(Point{X: 40, Y: 8}, Point{X: 8, Y: 8}, &hit, 1) {
		t.Fatal("ray into the wall reported clear")
	}
	if hit.X != 32 || hit.Y != 8 {
		t.Errorf("crossing = (%g,%g), want (32,8)", hit.X, hit.Y)
	}
}

// TestRay_VerticalHit verifies the Y-boundary crossing for a straight
// downward ray.
func TestRay_VerticalHit(t *testing.T) {
	m := newPixelMap(t, "0,0\n1,1")
	var hit Point
	if m.Ray(Point{X: 8, Y: 8}, Point{X: 8, Y: 40}, &hit, 1) {
		t.Fatal("ray into the wall reported clear")
	}
	if hit.X != 8 || hit.Y != 16 {
		t.Errorf("crossing = (%g,%g), want (8,16)", hit.X, hit.Y)
	}
}

// TestRay_CornerGraze verifies a segment that would enter a solid tile
// exactly through its corner reports clear: neither boundary crossing is
// strictly inside the tile.
func TestRay_CornerGraze(t *testing.T) {
	m := newTestMap(t, "0,0,0\n0,1,0\n0,0,0", AutotileOff)
	if !m.Ray(Point{X: 0.5, Y: 0.5}, Point{X: 2.5, Y: 2.5}, nil, 1) {
		t.Error("corner-grazing ray reported a hit")
	}
}

// TestRay_ZeroLength verifies a degenerate segment reports clear.
func TestRay_ZeroLength(t *testing.T) {
	m := newPixelMap(t, "1,1\n1,1")
	if !m.Ray(Point{X: 8, Y: 8}, Point{X: 8, Y: 8}, nil, 1) {
		t.Error("zero-length ray reported a hit")
	}
}

// TestRay_StartOutsideMap verifies samples off the grid are skipped and
// the march still detects the first in-grid wall.
func TestRay_StartOutsideMap(t *testing.T) {
	m := newPixelMap(t, "1,0")
	var hit Point
	if m.Ray(Point{X: -8, Y: 8}, Point{X: 24, Y: 8}, &hit, 1) {
		t.Fatal("ray entering a wall from outside reported clear")
	}
	if hit.X != 0 || hit.Y != 8 {
		t.Errorf("crossing = (%g,%g), want (0,8)", hit.X, hit.Y)
	}
}

// TestRay_OffsetMapWorldResult verifies the crossing point comes back in
// world coordinates when the map sits away from the origin.
func TestRay_OffsetMapWorldResult(t *testing.T) {
	m := newPixelMap(t, "0,1,0")
	m.X = 100
	m.Y = 50
	var hit Point
	if m.Ray(Point{X: 108, Y: 58}, Point{X: 140, Y: 58}, &hit, 1) {
		t.Fatal("ray into the wall reported clear")
	}
	if hit.X != 116 || hit.Y != 58 {
		t.Errorf("crossing = (%g,%g), want world-space (116,58)", hit.X, hit.Y)
	}
}

// TestRay_ResolutionCatchesCornerClip verifies resolution shortens the
// sampling step: a segment inside a solid tile for less than one tile
// span of travel is stepped over at resolution 1 and sampled at 4.
func TestRay_ResolutionCatchesCornerClip(t *testing.T) {
	m := newPixelMap(t, "0,0,0\n0,1,0\n0,0,0")
	start := Point{X: 12, Y: 22}
	end := Point{X: 22, Y: 12}
	if !m.Ray(start, end, nil, 1) {
		t.Error("coarse march sampled the corner clip it should step over")
	}
	var hit Point
	if m.Ray(start, end, &hit, 4) {
		t.Fatal("resolution-4 march missed the solid cell")
	}
	if hit.X != 16 || hit.Y != 18 {
		t.Errorf("crossing = (%g,%g), want (16,18)", hit.X, hit.Y)
	}
}
