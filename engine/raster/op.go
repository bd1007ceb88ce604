package raster

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind selects the primitive an Op performs.
type OpKind int

const (
	OpPoint OpKind = iota
	OpLine
	OpFill
	OpOutline
)

func (k OpKind) String() string {
	switch k {
	case OpPoint:
		return "point"
	case OpLine:
		return "line"
	case OpFill:
		return "fill"
	case OpOutline:
		return "outline"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one drawing call in a recipe. Point uses P0, Line uses P0..P1,
// Fill and Outline use the inclusive rectangle P0..P1.
type Op struct {
	Kind   OpKind
	P0, P1 image.Point
	Color  color.NRGBA
}

func Point(x, y int, c color.NRGBA) Op {
	return Op{Kind: OpPoint, P0: image.Pt(x, y), Color: c}
}

func Line(x0, y0, x1, y1 int, c color.NRGBA) Op {
	return Op{Kind: OpLine, P0: image.Pt(x0, y0), P1: image.Pt(x1, y1), Color: c}
}

// Fill covers the inclusive box (x0,y0)..(x1,y1).
func Fill(x0, y0, x1, y1 int, c color.NRGBA) Op {
	return Op{Kind: OpFill, P0: image.Pt(x0, y0), P1: image.Pt(x1, y1), Color: c}
}

// Outline borders the inclusive box (x0,y0)..(x1,y1).
func Outline(x0, y0, x1, y1 int, c color.NRGBA) Op {
	return Op{Kind: OpOutline, P0: image.Pt(x0, y0), P1: image.Pt(x1, y1), Color: c}
}

// box turns an inclusive corner pair into a half-open rectangle. An
// inverted pair is empty.
func (o Op) box() image.Rectangle {
	if o.P1.X < o.P0.X || o.P1.Y < o.P0.Y {
		return image.Rectangle{}
	}
	return image.Rect(o.P0.X, o.P0.Y, o.P1.X+1, o.P1.Y+1)
}

// Apply runs ops in order. Later ops overwrite earlier ones.
func (c *Canvas) Apply(ops ...Op) {
	for _, o := range ops {
		switch o.Kind {
		case OpPoint:
			c.Set(o.P0.X, o.P0.Y, o.Color)
		case OpLine:
			c.Line(o.P0.X, o.P0.Y, o.P1.X, o.P1.Y, o.Color)
		case OpFill:
			c.FillRect(o.box(), o.Color)
		case OpOutline:
			c.OutlineRect(o.box(), o.Color)
		default:
			panic(fmt.Sprintf("raster: unknown op %v", o.Kind))
		}
	}
}
