package compositor

import (
	"fmt"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// MinPanelSize is the smallest edge the panel recipe is defined for.
const MinPanelSize = 16

// PanelSizeError is raised with panic when a panel is too small for the
// corner tables to stay inside it.
type PanelSizeError struct {
	Width, Height int
}

func (e *PanelSizeError) Error() string {
	return fmt.Sprintf("compositor: panel %dx%d below minimum %d", e.Width, e.Height, MinPanelSize)
}

// PanelRecipe returns the raised panel as ordered steps:
//
//  1. fill with panel_fill
//  2. 2px medium shadow inside the right and bottom edges
//  3. 1px black border, each edge inset from its ends
//  4. eight black rounding pixels
//  5. transparent corner cutouts
//  6. 2px white highlight inside the top and left edges
//  7. corner transition overrides
//
// FixCorners must still run once the panel content is drawn.
func PanelRecipe(pal *palette.GUI, x, y, w, h int) Recipe {
	if w < MinPanelSize || h < MinPanelSize {
		panic(&PanelSizeError{Width: w, Height: h})
	}
	r, b := x+w-1, y+h-1
	return Recipe{
		{"fill", []raster.Op{
			raster.Fill(x, y, r, b, pal.PanelFill),
		}},
		{"shadow", []raster.Op{
			raster.Line(r-2, y+3, r-2, b-3, pal.BorderMedium),
			raster.Line(r-1, y+3, r-1, b-3, pal.BorderMedium),
			raster.Line(x+3, b-2, r-3, b-2, pal.BorderMedium),
			raster.Line(x+3, b-1, r-3, b-1, pal.BorderMedium),
		}},
		{"border", []raster.Op{
			raster.Line(x+2, y, r-3, y, pal.BorderBlack),
			raster.Line(x, y+2, x, b-3, pal.BorderBlack),
			raster.Line(r, y+3, r, b-2, pal.BorderBlack),
			raster.Line(x+3, b, r-2, b, pal.BorderBlack),
		}},
		{"rounding", roundingPixels.Ops(pal, x, y, w, h)},
		{"cutouts", cutouts.Ops(pal, x, y, w, h)},
		{"highlight", []raster.Op{
			raster.Line(x+2, y+1, r-3, y+1, pal.BorderWhite),
			raster.Line(x+3, y+2, r-3, y+2, pal.BorderWhite),
			raster.Line(x+1, y+2, x+1, b-3, pal.BorderWhite),
			raster.Line(x+2, y+3, x+2, b-3, pal.BorderWhite),
		}},
		{"transitions", transitions.Ops(pal, x, y, w, h)},
	}
}

// Panel paints a raised panel with rounded corners at (x,y).
func (p *Painter) Panel(x, y, w, h int) {
	p.apply(PanelRecipe(p.pal, x, y, w, h))
}

// FixCorners restores the corner pixels of a panel after content has been
// drawn over it. Every panel texture calls it last.
func (p *Painter) FixCorners(x, y, w, h int) {
	if w < MinPanelSize || h < MinPanelSize {
		panic(&PanelSizeError{Width: w, Height: h})
	}
	p.canvas.Apply(closing.Ops(p.pal, x, y, w, h)...)
}
