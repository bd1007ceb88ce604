// Package compositor paints the vanilla inventory bevel language: raised
// panels with rounded transparent corners, recessed slots and content
// areas, shallow buttons and separators.
//
// Every recipe is an ordered list of raster ops. Order is the contract:
// later ops overwrite earlier ones, so reordering changes the texture.
package compositor

import (
	"image"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// SlotSize is the edge of one inventory cell.
const SlotSize = 18

// Painter binds a canvas to the GUI palette.
type Painter struct {
	canvas *raster.Canvas
	pal    *palette.GUI
}

func New(c *raster.Canvas, pal *palette.GUI) *Painter {
	return &Painter{canvas: c, pal: pal}
}

func (p *Painter) Canvas() *raster.Canvas { return p.canvas }

func (p *Painter) Palette() *palette.GUI { return p.pal }

// Step is a named group of ops inside a recipe.
type Step struct {
	Name string
	Ops  []raster.Op
}

// Recipe is an ordered list of steps.
type Recipe []Step

// Ops flattens the recipe in application order.
func (r Recipe) Ops() []raster.Op {
	var n int
	for _, s := range r {
		n += len(s.Ops)
	}
	ops := make([]raster.Op, 0, n)
	for _, s := range r {
		ops = append(ops, s.Ops...)
	}
	return ops
}

func (p *Painter) apply(r Recipe) {
	p.canvas.Apply(r.Ops()...)
}

// PanelSpec places one panel on a texture.
type PanelSpec struct {
	X, Y          int
	Width, Height int

	// ControlBar adds the program/casing control bar; ClearButton appends
	// a Clear button to it.
	ControlBar  bool
	ClearButton bool
}

func (s PanelSpec) Rect() image.Rectangle {
	return raster.Rect(s.X, s.Y, s.Width, s.Height)
}
