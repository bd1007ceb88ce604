package textures

import (
	"image/color"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// BlockSize is the edge of every block face and item icon.
const BlockSize = 16

// ironFrame draws the riveted iron border that every controller face
// shares: dark outer ring, mid second ring, a light/mid bevel where the
// frame meets the centre and four dark rivets.
func ironFrame(c *raster.Canvas, b *palette.Block) {
	last := BlockSize - 1
	for i := 0; i < BlockSize; i++ {
		c.Set(i, 0, b.IronDark)
		c.Set(i, last, b.IronDark)
		c.Set(0, i, b.IronDark)
		c.Set(last, i, b.IronDark)
	}
	for i := 1; i < last; i++ {
		c.Set(i, 1, b.IronMid)
		c.Set(i, last-1, b.IronMid)
		c.Set(1, i, b.IronMid)
		c.Set(last-1, i, b.IronMid)
	}
	for i := 2; i < last-1; i++ {
		c.Set(i, 2, b.IronLight)
		c.Set(i, last-2, b.IronMid)
		c.Set(2, i, b.IronLight)
		c.Set(last-2, i, b.IronMid)
	}
	for _, pt := range [][2]int{{1, 1}, {last - 1, 1}, {1, last - 1}, {last - 1, last - 1}} {
		c.Set(pt[0], pt[1], b.IronDark)
	}
}

// centre visits the 10×10 area inside the frame.
func centre(fn func(x, y int)) {
	for y := 3; y < 13; y++ {
		for x := 3; x < 13; x++ {
			fn(x, y)
		}
	}
}

// woodGrain fills the centre with oak planks: a diagonal (x*3+y)%7 grain,
// plank seams every fourth row and two broken grain lines.
func woodGrain(c *raster.Canvas, b *palette.Block) {
	centre(func(x, y int) {
		var clr color.NRGBA
		switch g := (x*3 + y) % 7; {
		case g == 0:
			clr = b.OakDark
		case g == 1 || g == 6:
			clr = b.OakLight
		case y%4 == 0 && x%2 == 0:
			clr = b.OakDark
		default:
			clr = b.OakMid
		}
		c.Set(x, y, clr)
	})
	for _, y := range []int{5, 9} {
		for x := 3; x < 13; x++ {
			if x%3 != 0 {
				c.Set(x, y, b.OakDark)
			}
		}
	}
}

// ControllerTop is all iron: redstone corner circuits trace in towards a
// 2×2 indicator light showing the idle blue.
func ControllerTop(set *palette.Set) *raster.Canvas {
	b := set.Block
	c := raster.NewOpaque(BlockSize, BlockSize)
	ironFrame(c, b)

	centre(func(x, y int) {
		switch {
		case (x+y)%5 == 0:
			c.Set(x, y, b.IronLight)
		case (x+y)%7 == 0:
			c.Set(x, y, b.IronDark)
		default:
			c.Set(x, y, b.IronMid)
		}
	})

	mid, bright := b.RedstoneMid, b.RedstoneBright
	c.Apply(
		raster.Point(4, 4, mid), raster.Point(5, 4, bright), raster.Point(4, 5, mid),
		raster.Point(10, 4, bright), raster.Point(11, 4, mid), raster.Point(11, 5, mid),
		raster.Point(4, 10, mid), raster.Point(4, 11, mid), raster.Point(5, 11, bright),
		raster.Point(11, 10, mid), raster.Point(10, 11, bright), raster.Point(11, 11, mid),
	)
	for _, v := range []int{6, 9} {
		c.Line(v, 7, v, 8, b.RedstoneDark)
		c.Line(7, v, 8, v, b.RedstoneDark)
	}

	c.Line(7, 7, 8, 7, b.LightBlue)
	c.Line(7, 8, 8, 8, b.LightBlueDim)
	return c
}

// ControllerSide is the plain oak panel in its iron frame.
func ControllerSide(set *palette.Set) *raster.Canvas {
	c := raster.NewOpaque(BlockSize, BlockSize)
	ironFrame(c, set.Block)
	woodGrain(c, set.Block)
	return c
}

// ControllerFront adds a dispenser-style opening and a small status light
// to the side face.
func ControllerFront(set *palette.Set) *raster.Canvas {
	b := set.Block
	c := ControllerSide(set)

	c.Apply(
		raster.Fill(7, 6, 8, 7, b.VoidDark),
		raster.Outline(6, 5, 9, 8, b.VoidEdge),
		raster.Line(7, 6, 8, 6, b.VoidMid),
		raster.Point(11, 4, b.LightBlue),
		raster.Point(11, 5, b.LightBlueDim),
	)
	return c
}

// ControllerBottom uses a coarser two-term grain on the oak.
func ControllerBottom(set *palette.Set) *raster.Canvas {
	b := set.Block
	c := raster.NewOpaque(BlockSize, BlockSize)
	ironFrame(c, b)
	centre(func(x, y int) {
		switch {
		case (x+y*2)%6 == 0:
			c.Set(x, y, b.OakDark)
		case (x*2+y)%5 == 0:
			c.Set(x, y, b.OakLight)
		default:
			c.Set(x, y, b.OakMid)
		}
	})
	return c
}
