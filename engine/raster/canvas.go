// Package raster is the pixel buffer every texture is painted on.
// Coordinates start at the top-left corner; writes never blend.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Transparent is the zero pixel (alpha 0).
var Transparent = color.NRGBA{0, 0, 0, 0}

// OpaqueBlack is the base fill for block faces.
var OpaqueBlack = color.NRGBA{0, 0, 0, 255}

// OutOfBoundsError reports a write or read outside the canvas.
// It is raised with panic: a bad coordinate is a layout bug.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d canvas", e.X, e.Y, e.Width, e.Height)
}

// Canvas is a fixed-size NRGBA grid.
type Canvas struct {
	img *image.NRGBA
}

// New allocates a w×h canvas with every pixel set to fill.
func New(w, h int, fill color.NRGBA) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = fill.R
		img.Pix[i+1] = fill.G
		img.Pix[i+2] = fill.B
		img.Pix[i+3] = fill.A
	}
	return &Canvas{img: img}
}

// NewTransparent is New with a fully transparent background (GUI and items).
func NewTransparent(w, h int) *Canvas {
	return New(w, h, Transparent)
}

// NewOpaque is New with an opaque black background (block faces).
func NewOpaque(w, h int) *Canvas {
	return New(w, h, OpaqueBlack)
}

// FromImage copies any image into a new canvas anchored at (0,0).
// NRGBA sources are copied byte for byte so alpha-0 pixels keep their
// colour channels.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(img.Pix[y*img.Stride:y*img.Stride+4*b.Dx()], n.Pix[off:off+4*b.Dx()])
		}
		return &Canvas{img: img}
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA))
		}
	}
	return &Canvas{img: img}
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Image exposes the backing buffer for encoders and scalers.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// InBounds reports whether (x,y) addresses a pixel.
func (c *Canvas) InBounds(x, y int) bool {
	return image.Pt(x, y).In(c.img.Rect)
}

func (c *Canvas) check(x, y int) {
	if !c.InBounds(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, Width: c.Width(), Height: c.Height()})
	}
}

// Set overwrites one pixel, alpha included.
func (c *Canvas) Set(x, y int, clr color.NRGBA) {
	c.check(x, y)
	c.img.SetNRGBA(x, y, clr)
}

// At reads one pixel back.
func (c *Canvas) At(x, y int) color.NRGBA {
	c.check(x, y)
	return c.img.NRGBAAt(x, y)
}

// Line writes every integer point from (x0,y0) to (x1,y1), both ends
// included. Callers only draw horizontal and vertical segments; anything
// else falls back to Bresenham.
func (c *Canvas) Line(x0, y0, x1, y1 int, clr color.NRGBA) {
	switch {
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			c.Set(x, y0, clr)
		}
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			c.Set(x0, y, clr)
		}
	default:
		c.bresenham(x0, y0, x1, y1, clr)
	}
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, clr color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Rect converts an (x, y, w, h) region to an image.Rectangle.
func Rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// FillRect paints every pixel of r.
func (c *Canvas) FillRect(r image.Rectangle, clr color.NRGBA) {
	if r.Empty() {
		return
	}
	c.check(r.Min.X, r.Min.Y)
	c.check(r.Max.X-1, r.Max.Y-1)
	draw.Draw(c.img, r, &image.Uniform{clr}, image.Point{}, draw.Src)
}

// OutlineRect paints the one-pixel border of r.
func (c *Canvas) OutlineRect(r image.Rectangle, clr color.NRGBA) {
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	c.Line(x0, y0, x1, y0, clr)
	c.Line(x0, y1, x1, y1, clr)
	c.Line(x0, y0, x0, y1, clr)
	c.Line(x1, y0, x1, y1, clr)
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	img := image.NewNRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return &Canvas{img: img}
}

// Equal reports pixel-for-pixel equality, size included.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.img.Rect != o.img.Rect {
		return false
	}
	return len(c.Diff(o)) == 0
}

// Diff lists every coordinate whose pixel differs. Canvases of different
// sizes are compared over their common area.
func (c *Canvas) Diff(o *Canvas) []image.Point {
	var pts []image.Point
	r := c.img.Rect.Intersect(o.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.img.NRGBAAt(x, y) != o.img.NRGBAAt(x, y) {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
