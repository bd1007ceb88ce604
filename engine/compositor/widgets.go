package compositor

import (
	"fmt"
	"image"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// SlotRecipe is one recessed inventory cell: dark top and left edges,
// white bottom and right edges, slot_fill inside. The top-right pixel is
// forced to slot_fill so the dark and white edges never touch.
func SlotRecipe(pal *palette.GUI, x, y, size int) Recipe {
	r, b := x+size-1, y+size-1
	return Recipe{
		{"shadow", []raster.Op{
			raster.Line(x, y, r-1, y, pal.BorderDark),
			raster.Line(x, y, x, b-1, pal.BorderDark),
		}},
		{"highlight", []raster.Op{
			raster.Line(x, b, r, b, pal.BorderWhite),
			raster.Line(r, y, r, b, pal.BorderWhite),
		}},
		{"corner", []raster.Op{
			raster.Point(r, y, pal.SlotFill),
		}},
		{"interior", []raster.Op{
			raster.Fill(x+1, y+1, r-1, b-1, pal.SlotFill),
		}},
	}
}

// Slot paints one cell of the given size (SlotSize for inventories).
func (p *Painter) Slot(x, y, size int) {
	p.apply(SlotRecipe(p.pal, x, y, size))
}

// SlotGrid lays out cols×rows slots row-major with no gaps and returns
// their bounding box.
func (p *Painter) SlotGrid(x, y, cols, rows, size int) image.Rectangle {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p.Slot(x+col*size, y+row*size, size)
		}
	}
	return raster.Rect(x, y, cols*size, rows*size)
}

// RecessedRecipe is the slot convention stretched over a content area:
// dark top and left, white bottom and right, slot_fill inside.
func RecessedRecipe(pal *palette.GUI, x, y, w, h int) Recipe {
	r, b := x+w-1, y+h-1
	return Recipe{
		{"shadow", []raster.Op{
			raster.Line(x, y, r, y, pal.BorderDark),
			raster.Line(x, y, x, b, pal.BorderDark),
		}},
		{"highlight", []raster.Op{
			raster.Line(x, b, r, b, pal.BorderWhite),
			raster.Line(r, y, r, b, pal.BorderWhite),
		}},
		{"interior", []raster.Op{
			raster.Fill(x+1, y+1, r-1, b-1, pal.SlotFill),
		}},
	}
}

// Recessed paints an inset content area (status panes, logs, lists).
func (p *Painter) Recessed(x, y, w, h int) {
	p.apply(RecessedRecipe(p.pal, x, y, w, h))
}

// ScrollTrack paints the recessed channel a scrollbar thumb slides in.
func (p *Painter) ScrollTrack(x, y, w, h int) {
	p.Recessed(x, y, w, h)
}

// ButtonRecipe is a shallow raised button: dark outline and a white line
// under the top edge.
func ButtonRecipe(pal *palette.GUI, x, y, w, h int) Recipe {
	r, b := x+w-1, y+h-1
	return Recipe{
		{"outline", []raster.Op{
			raster.Outline(x, y, r, b, pal.BorderDark),
		}},
		{"highlight", []raster.Op{
			raster.Line(x+1, y+1, r-1, y+1, pal.BorderWhite),
		}},
	}
}

func (p *Painter) Button(x, y, w, h int) {
	p.apply(ButtonRecipe(p.pal, x, y, w, h))
}

// SeparatorError is raised with panic for a separator that is neither
// horizontal nor vertical.
type SeparatorError struct {
	From, To image.Point
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("compositor: separator %v-%v is not axis aligned", e.From, e.To)
}

// SeparatorRecipe is a dark line with a white line one pixel below it
// (horizontal) or to its right (vertical).
func SeparatorRecipe(pal *palette.GUI, x1, y1, x2, y2 int) Recipe {
	var dx, dy int
	switch {
	case y1 == y2:
		dy = 1
	case x1 == x2:
		dx = 1
	default:
		panic(&SeparatorError{From: image.Pt(x1, y1), To: image.Pt(x2, y2)})
	}
	return Recipe{
		{"shadow", []raster.Op{raster.Line(x1, y1, x2, y2, pal.BorderDark)}},
		{"highlight", []raster.Op{raster.Line(x1+dx, y1+dy, x2+dx, y2+dy, pal.BorderWhite)}},
	}
}

func (p *Painter) Separator(x1, y1, x2, y2 int) {
	p.apply(SeparatorRecipe(p.pal, x1, y1, x2, y2))
}

// TextField paints a black-bordered input box with a dark interior.
func (p *Painter) TextField(x, y, w, h int) {
	r, b := x+w-1, y+h-1
	p.canvas.Apply(
		raster.Outline(x, y, r, b, p.pal.BorderBlack),
		raster.Fill(x+1, y+1, r-1, b-1, p.pal.BorderDark),
	)
}

// Fill paints a solid w×h block in one palette role, used for entity
// preview windows and scroll thumbs.
func (p *Painter) Fill(x, y, w, h int, role palette.Role) {
	p.canvas.FillRect(raster.Rect(x, y, w, h), p.pal.Color(role))
}
