package sdf

import (
	"testing"

	"github.com/MeKo-Christian/glyphcore/internal/outline"
)

func sdfSquare() *outline.Outline {
	return &outline.Outline{Commands: []outline.Command{
		{Op: outline.OpMoveTo, X: 0, Y: 0},
		{Op: outline.OpLineTo, X: 10, Y: 0},
		{Op: outline.OpLineTo, X: 10, Y: 10},
		{Op: outline.OpLineTo, X: 0, Y: 10},
		{Op: outline.OpClose},
	}}
}

func TestRenderSDFEmptyOutlineIsZero(t *testing.T) {
	buf := RenderSDF(&outline.Outline{}, Options{Width: 4, Height: 4, Scale: 1, Spread: 8})
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0 for empty outline", i, v)
		}
	}
}

func TestRenderSDFInteriorAboveBoundaryExteriorBelow(t *testing.T) {
	opt := Options{Width: 20, Height: 20, Scale: 1, Spread: 8}
	buf := RenderSDF(sdfSquare(), opt)

	center := buf[5*20+5] // pixel (5,5): font-unit center (5.5,5.5), well inside
	if center <= 128 {
		t.Errorf("interior pixel = %d, want > 128 (positive signed distance)", center)
	}

	outside := buf[18*20+18] // pixel (18,18): font-unit center (18.5,18.5), well outside
	if outside >= 128 {
		t.Errorf("exterior pixel = %d, want < 128 (negative signed distance)", outside)
	}
}

func TestRenderSDFBoundaryNearMidpoint(t *testing.T) {
	opt := Options{Width: 20, Height: 20, Scale: 1, Spread: 8}
	buf := RenderSDF(sdfSquare(), opt)
	// Pixel (10,5) is centered at x=10.5, half a unit outside the right
	// edge at x=10, so it should read close to the encoded boundary value
	// 128 (about 120 with Spread 8).
	v := int(buf[5*20+10])
	if v < 110 || v > 146 {
		t.Errorf("boundary pixel = %d, want close to 128", v)
	}
}

func TestInsideEvenOddRayCast(t *testing.T) {
	rings := [][][2]float64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	if !inside(rings, 5, 5) {
		t.Error("center of square should be inside")
	}
	if inside(rings, 20, 20) {
		t.Error("far point should be outside")
	}
}

func TestRenderSDFHoleIsOutside(t *testing.T) {
	// Outer square with an inner square hole: even-odd parity must read
	// points in the hole as outside, with no phantom segments bridging the
	// two contours.
	o := &outline.Outline{Commands: []outline.Command{
		{Op: outline.OpMoveTo, X: 0, Y: 0},
		{Op: outline.OpLineTo, X: 20, Y: 0},
		{Op: outline.OpLineTo, X: 20, Y: 20},
		{Op: outline.OpLineTo, X: 0, Y: 20},
		{Op: outline.OpClose},
		{Op: outline.OpMoveTo, X: 7, Y: 7},
		{Op: outline.OpLineTo, X: 13, Y: 7},
		{Op: outline.OpLineTo, X: 13, Y: 13},
		{Op: outline.OpLineTo, X: 7, Y: 13},
		{Op: outline.OpClose},
	}}
	buf := RenderSDF(o, Options{Width: 24, Height: 24, Scale: 1, Spread: 4})

	hole := buf[10*24+10] // pixel (10,10): font-unit center (10.5,10.5), in the hole
	if hole >= 128 {
		t.Errorf("hole pixel = %d, want < 128 (outside)", hole)
	}
	ring := buf[3*24+10] // pixel (10,3): between outer edge and hole, inside the ring
	if ring <= 128 {
		t.Errorf("ring pixel = %d, want > 128 (inside)", ring)
	}
}

func TestRenderSDFSquareEncoding(t *testing.T) {
	o := &outline.Outline{Commands: []outline.Command{
		{Op: outline.OpMoveTo, X: 20, Y: 20},
		{Op: outline.OpLineTo, X: 80, Y: 20},
		{Op: outline.OpLineTo, X: 80, Y: 80},
		{Op: outline.OpLineTo, X: 20, Y: 80},
		{Op: outline.OpClose},
	}}
	buf := RenderSDF(o, Options{Width: 100, Height: 100, Scale: 1, Spread: 20})

	if v := buf[50*100+50]; v < 200 {
		t.Errorf("deep-interior pixel (50,50) = %d, want >= 200", v)
	}
	if v := buf[10*100+10]; v > 80 {
		t.Errorf("far-exterior pixel (10,10) = %d, want <= 80", v)
	}
	if v := buf[50*100+20]; v < 120 || v > 136 {
		t.Errorf("on-boundary pixel (20,50) = %d, want within [120,136]", v)
	}
}

func TestRenderMSDFHasThreeChannels(t *testing.T) {
	opt := Options{Width: 10, Height: 10, Scale: 1, Spread: 8}
	buf := RenderMSDF(sdfSquare(), opt)
	if len(buf) != 10*10*3 {
		t.Errorf("len(buf) = %d, want %d", len(buf), 10*10*3)
	}
}
