// Package preview lays generated textures out on one labelled contact
// sheet so a whole run can be reviewed at a glance.
package preview

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// DefaultPath is where texgen writes the sheet, relative to the project.
const DefaultPath = "build/textures/sheet.png"

var (
	colBackground = color.NRGBA{32, 32, 36, 255}
	colCheckLight = color.NRGBA{92, 92, 96, 255}
	colCheckDark  = color.NRGBA{64, 64, 68, 255}
	colLabel      = color.NRGBA{230, 230, 230, 255}
)

const checkSize = 8

// Tile is one texture on the sheet.
type Tile struct {
	Name  string
	Image image.Image
}

// Layout controls the sheet grid. Every texture is scaled with nearest
// neighbour to fit a Cell×Cell box; its label sits underneath.
type Layout struct {
	Columns int
	Cell    int
	Padding int
	Label   int
}

func DefaultLayout() Layout {
	return Layout{Columns: 6, Cell: 128, Padding: 8, Label: 16}
}

func (l Layout) rows(n int) int {
	return (n + l.Columns - 1) / l.Columns
}

// Size is the sheet size for n tiles.
func (l Layout) Size(n int) image.Point {
	cols := l.Columns
	if n < cols {
		cols = n
	}
	return image.Pt(
		cols*(l.Cell+l.Padding)+l.Padding,
		l.rows(n)*(l.Cell+l.Label+l.Padding)+l.Padding,
	)
}

// CellRect is the Cell×Cell box of tile i.
func (l Layout) CellRect(i int) image.Rectangle {
	col, row := i%l.Columns, i/l.Columns
	x := l.Padding + col*(l.Cell+l.Padding)
	y := l.Padding + row*(l.Cell+l.Label+l.Padding)
	return raster.Rect(x, y, l.Cell, l.Cell)
}

// Fit scales src to the largest size that fits the cell, keeping its
// aspect ratio, and centres it.
func (l Layout) Fit(i int, src image.Rectangle) image.Rectangle {
	cell := l.CellRect(i)
	w, h := src.Dx(), src.Dy()
	if w >= h {
		h = h * l.Cell / w
		w = l.Cell
	} else {
		w = w * l.Cell / h
		h = l.Cell
	}
	x := cell.Min.X + (l.Cell-w)/2
	y := cell.Min.Y + (l.Cell-h)/2
	return raster.Rect(x, y, w, h)
}

// Sheet renders tiles in order onto one canvas. Transparent texture pixels
// show a checkerboard.
func Sheet(tiles []Tile, l Layout) *raster.Canvas {
	size := l.Size(len(tiles))
	c := raster.New(size.X, size.Y, colBackground)
	dst := c.Image()
	for i, t := range tiles {
		r := l.Fit(i, t.Image.Bounds())
		checker(c, r)
		xdraw.NearestNeighbor.Scale(dst, r, t.Image, t.Image.Bounds(), xdraw.Over, nil)
		label(dst, l, i, t.Name)
	}
	return c
}

func checker(c *raster.Canvas, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			clr := colCheckDark
			if ((x-r.Min.X)/checkSize+(y-r.Min.Y)/checkSize)%2 == 0 {
				clr = colCheckLight
			}
			c.Set(x, y, clr)
		}
	}
}

// label writes the name under the cell, cut to the cell width.
func label(dst *image.NRGBA, l Layout, i int, name string) {
	face := basicfont.Face7x13
	maxChars := l.Cell / face.Advance
	if len(name) > maxChars {
		name = name[:maxChars-2] + ".."
	}
	cell := l.CellRect(i)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colLabel),
		Face: face,
		Dot:  fixed.P(cell.Min.X, cell.Max.Y+face.Ascent+1),
	}
	d.DrawString(name)
}
