package view

import (
	"image"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFit(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		wantZoom float64
	}{
		{"block", 16, 16, 40},
		{"atlas", 256, 256, 2},
		{"selector", 256, 128, 4},
	}
	for _, tt := range tests {
		c := NewCamera(1280, 720)
		c.Fit(tt.w, tt.h)
		if c.Zoom != tt.wantZoom {
			t.Errorf("%s: zoom %v, want %v", tt.name, c.Zoom, tt.wantZoom)
		}
		sx, sy := c.WorldToScreen(float64(tt.w)/2, float64(tt.h)/2)
		if !near(sx, 640) || !near(sy, 360) {
			t.Errorf("%s: centre maps to (%v,%v)", tt.name, sx, sy)
		}
	}
}

func TestFitTooLarge(t *testing.T) {
	c := NewCamera(200, 100)
	c.Fit(256, 256)
	if c.Zoom >= 1 || c.Zoom < c.MinZoom {
		t.Errorf("zoom %v should shrink below 1", c.Zoom)
	}
}

func TestRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.Fit(16, 16)
	c.Pan(13, -7)
	for _, p := range []image.Point{{0, 0}, {400, 300}, {799, 599}, {123, 456}} {
		wx, wy := c.ScreenToWorld(p.X, p.Y)
		sx, sy := c.WorldToScreen(wx, wy)
		if !near(sx, float64(p.X)) || !near(sy, float64(p.Y)) {
			t.Errorf("%v -> (%v,%v)", p, sx, sy)
		}
	}
}

func TestZoomAtKeepsPoint(t *testing.T) {
	c := NewCamera(800, 600)
	c.Fit(256, 256)
	wx, wy := c.ScreenToWorld(300, 200)
	c.ZoomAt(2, 300, 200)
	wx2, wy2 := c.ScreenToWorld(300, 200)
	if !near(wx, wx2) || !near(wy, wy2) {
		t.Errorf("point moved from (%v,%v) to (%v,%v)", wx, wy, wx2, wy2)
	}
	c.ZoomAt(1000, 0, 0)
	if c.Zoom != c.MaxZoom {
		t.Errorf("zoom %v not clamped to %v", c.Zoom, c.MaxZoom)
	}
}

func TestPixelAt(t *testing.T) {
	c := NewCamera(160, 160)
	c.Fit(16, 16) // zoom 9, texture spans 8..152
	p, ok := c.PixelAt(80, 80)
	if !ok || p != image.Pt(8, 8) {
		t.Errorf("centre texel = %v %v", p, ok)
	}
	scale, tx, ty := c.Transform()
	p, ok = c.PixelAt(int(tx), int(ty))
	if !ok || p != image.Pt(0, 0) || scale != 9 {
		t.Errorf("origin texel = %v %v (scale %v)", p, ok, scale)
	}
	if _, ok := c.PixelAt(2, 2); ok {
		t.Error("margin should be outside the texture")
	}
}

func TestPanClamps(t *testing.T) {
	c := NewCamera(800, 600)
	c.Fit(16, 16)
	c.Pan(1e6, -1e6)
	if c.X != 16 || c.Y != 0 {
		t.Errorf("camera at (%v,%v), want clamped to (16,0)", c.X, c.Y)
	}
}
