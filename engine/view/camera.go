// Package view holds the texture viewer's state: the camera over the
// texture being inspected and the library of textures loaded from a run
// manifest. Nothing here touches the window.
package view

import (
	"image"
	"math"
)

// Camera maps texture pixels to screen pixels. X, Y is the texture point
// at the centre of the screen; Zoom is screen pixels per texture pixel.
type Camera struct {
	X, Y    float64
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int
	Speed   float64 // keyboard pan, screen pixels per second

	// texture size, for clamping
	texW, texH int
}

func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    4,
		MinZoom: 0.5,
		MaxZoom: 48,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   600,
	}
}

// Resize follows the window size.
func (c *Camera) Resize(w, h int) {
	c.ScreenW, c.ScreenH = w, h
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clamp()
}

func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt multiplies the zoom by factor keeping the texture point under
// the screen position fixed.
func (c *Camera) ZoomAt(factor float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom * factor)
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	c.X += wx - wx2
	c.Y += wy - wy2
	c.clamp()
}

// Fit centres a w×h texture at the largest whole zoom that leaves a
// margin around it. Whole zooms keep every texel the same size on screen.
func (c *Camera) Fit(w, h int) {
	c.texW, c.texH = w, h
	c.X, c.Y = float64(w)/2, float64(h)/2
	if w == 0 || h == 0 {
		return
	}
	z := math.Floor(math.Min(float64(c.ScreenW)*0.9/float64(w), float64(c.ScreenH)*0.9/float64(h)))
	if z < 1 {
		z = math.Min(float64(c.ScreenW)/float64(w), float64(c.ScreenH)/float64(h))
	}
	c.SetZoom(z)
}

// WorldToScreen converts a texture position to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts a screen pixel to a texture position.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// PixelAt returns the texel under a screen position.
func (c *Camera) PixelAt(sx, sy int) (image.Point, bool) {
	wx, wy := c.ScreenToWorld(sx, sy)
	p := image.Pt(int(math.Floor(wx)), int(math.Floor(wy)))
	return p, p.In(image.Rect(0, 0, c.texW, c.texH))
}

// Transform is the draw transform: scale by Zoom, then translate. The
// offset is rounded so texel edges land on whole screen pixels.
func (c *Camera) Transform() (scale, tx, ty float64) {
	tx, ty = c.WorldToScreen(0, 0)
	return c.Zoom, math.Round(tx), math.Round(ty)
}

// clamp keeps the screen centre over the texture.
func (c *Camera) clamp() {
	if c.texW == 0 || c.texH == 0 {
		return
	}
	c.X = math.Max(0, math.Min(float64(c.texW), c.X))
	c.Y = math.Max(0, math.Min(float64(c.texH), c.Y))
}
