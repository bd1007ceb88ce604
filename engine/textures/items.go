package textures

import (
	"image/color"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// px is one hand-placed pixel of an icon.
type px struct {
	x, y int
	c    color.NRGBA
}

func plot(c *raster.Canvas, pts ...px) {
	for _, p := range pts {
		c.Set(p.x, p.y, p.c)
	}
}

func itemCanvas() *raster.Canvas {
	return raster.NewTransparent(BlockSize, BlockSize)
}

// Program is a stone tablet with redstone traces etched around a small
// amethyst memory crystal.
func Program(set *palette.Set) *raster.Canvas {
	k := set.Item.Program
	none := set.Item.Transparent
	c := itemCanvas()

	// tablet body
	c.Apply(
		raster.Fill(3, 3, 12, 13, k.StoneMid),
		raster.Line(4, 3, 11, 3, k.StoneLight),
		raster.Line(3, 4, 3, 12, k.StoneLight),
		raster.Line(4, 13, 12, 13, k.StoneDark),
		raster.Line(12, 4, 12, 13, k.StoneDark),
	)
	plot(c, px{3, 3, none}, px{12, 3, none}, px{3, 13, none}, px{12, 13, none})

	c.Apply(
		raster.Line(4, 2, 11, 2, k.OutlineDark),
		raster.Line(4, 14, 11, 14, k.OutlineDark),
		raster.Line(2, 4, 2, 12, k.OutlineDark),
		raster.Line(13, 4, 13, 13, k.OutlineDark),
	)
	for _, pt := range [][2]int{{3, 2}, {12, 2}, {2, 3}, {13, 3}, {2, 13}, {13, 13}, {3, 14}, {12, 14}} {
		c.Set(pt[0], pt[1], k.OutlineDark)
	}

	// traces
	c.Apply(
		raster.Line(4, 5, 6, 5, k.RedstoneMid),
		raster.Line(9, 5, 11, 5, k.RedstoneMid),
		raster.Line(4, 11, 5, 11, k.RedstoneMid),
		raster.Line(10, 11, 11, 11, k.RedstoneMid),
		raster.Line(4, 5, 4, 7, k.RedstoneMid),
		raster.Line(11, 5, 11, 7, k.RedstoneMid),
		raster.Line(4, 9, 4, 11, k.RedstoneMid),
		raster.Line(11, 9, 11, 11, k.RedstoneMid),
	)
	plot(c,
		px{5, 5, k.RedstoneBright}, px{10, 5, k.RedstoneBright},
		px{4, 6, k.RedstoneBright}, px{11, 6, k.RedstoneBright},
	)

	// crystal, lit from the top left
	plot(c,
		px{6, 7, k.AmethystDark}, px{6, 8, k.AmethystDark}, px{7, 9, k.AmethystDark},
		px{8, 9, k.AmethystDark}, px{9, 8, k.AmethystDark},

		px{7, 7, k.AmethystMid}, px{8, 7, k.AmethystMid}, px{7, 8, k.AmethystMid},
		px{8, 8, k.AmethystMid}, px{9, 7, k.AmethystMid},

		px{6, 6, k.AmethystLight}, px{7, 6, k.AmethystLight},
		px{8, 6, k.AmethystBright}, px{9, 6, k.AmethystLight},
	)
	return c
}

// AutomatonCasing is a front view of the blocky iron body with gold eyes
// and chest trim. The left half is lit, the lower body shaded.
func AutomatonCasing(set *palette.Set) *raster.Canvas {
	k := set.Item.Casing
	c := itemCanvas()
	shade := func(y, split int, upper, lower color.NRGBA) color.NRGBA {
		if y < split {
			return upper
		}
		return lower
	}

	// head
	c.Line(6, 1, 9, 1, k.Outline)
	for y := 2; y <= 4; y++ {
		plot(c,
			px{5, y, k.Outline}, px{6, y, k.IronLight}, px{7, y, k.IronLight},
			px{8, y, k.IronMid}, px{9, y, k.IronMid}, px{10, y, k.Outline},
		)
	}
	c.Line(6, 5, 9, 5, k.Outline)
	plot(c, px{6, 3, k.GoldAccent}, px{9, 3, k.GoldAccent})

	// body
	for y := 6; y <= 10; y++ {
		lit := shade(y, 8, k.IronLight, k.IronMid)
		dim := shade(y, 8, k.IronMid, k.IronDark)
		plot(c,
			px{5, y, k.Outline}, px{6, y, lit}, px{7, y, lit},
			px{8, y, dim}, px{9, y, dim}, px{10, y, k.Outline},
		)
	}
	plot(c, px{7, 6, k.GoldAccent}, px{8, 6, k.GoldDark}, px{7, 7, k.GoldDark})

	// arms
	for y := 6; y <= 10; y++ {
		plot(c,
			px{3, y, k.Outline}, px{4, y, shade(y, 8, k.IronLight, k.IronMid)},
			px{11, y, shade(y, 8, k.IronMid, k.IronDark)}, px{12, y, k.Outline},
		)
	}
	plot(c, px{4, 11, k.Outline}, px{11, 11, k.Outline})

	// legs
	for y := 11; y <= 14; y++ {
		leg := shade(y, 13, k.IronMid, k.IronDark)
		plot(c,
			px{5, y, k.Outline}, px{6, y, leg}, px{7, y, k.Outline},
			px{8, y, k.Outline}, px{9, y, leg}, px{10, y, k.Outline},
		)
	}
	plot(c, px{6, 15, k.Outline}, px{9, 15, k.Outline})
	return c
}

// WaypointWand runs diagonally from a copper handle in the bottom left,
// along a blaze rod, to an ender pearl tip.
func WaypointWand(set *palette.Set) *raster.Canvas {
	k := set.Item.Wand
	c := itemCanvas()

	// pearl tip
	plot(c,
		px{12, 1, k.EnderLight}, px{13, 1, k.EnderMid}, px{14, 1, k.Outline},
		px{11, 2, k.EnderHighlight}, px{12, 2, k.EnderLight}, px{13, 2, k.EnderMid}, px{14, 2, k.EnderDark},
		px{11, 3, k.EnderLight}, px{12, 3, k.EnderMid}, px{13, 3, k.EnderDark},
		px{10, 3, k.Outline}, px{11, 4, k.EnderDark}, px{12, 4, k.Outline},
	)

	// shaft
	plot(c,
		px{10, 4, k.BlazeHighlight}, px{9, 5, k.BlazeLight}, px{10, 5, k.BlazeMid},
		px{8, 6, k.BlazeLight}, px{9, 6, k.BlazeMid},
		px{7, 7, k.BlazeLight}, px{8, 7, k.BlazeMid},
		px{6, 8, k.BlazeLight}, px{7, 8, k.BlazeMid},
		px{5, 9, k.BlazeLight}, px{6, 9, k.BlazeDark},
		px{4, 10, k.BlazeMid}, px{5, 10, k.BlazeDark},
	)

	// handle
	plot(c,
		px{3, 11, k.CopperLight}, px{4, 11, k.CopperMid},
		px{2, 12, k.CopperLight}, px{3, 12, k.CopperMid},
		px{1, 13, k.CopperMid}, px{2, 13, k.CopperDark},
		px{1, 14, k.CopperDark},
		px{0, 14, k.Outline}, px{0, 13, k.Outline}, px{1, 12, k.Outline},
	)
	return c
}

// AnchorCrystal is an end crystal with a nether star core and diamond
// facets, set on an obsidian foot.
func AnchorCrystal(set *palette.Set) *raster.Canvas {
	k := set.Item.Crystal
	c := itemCanvas()

	plot(c,
		px{8, 1, k.Glow},
		px{7, 2, k.Light}, px{8, 2, k.Glow}, px{9, 2, k.Light},

		px{6, 3, k.Mid}, px{7, 3, k.Light}, px{8, 3, k.StarWhite}, px{9, 3, k.Light}, px{10, 3, k.Mid},

		px{5, 4, k.Dark}, px{6, 4, k.Mid}, px{7, 4, k.Light}, px{8, 4, k.StarCore},
		px{9, 4, k.Light}, px{10, 4, k.Mid}, px{11, 4, k.Dark},
	)
	for y := 5; y <= 7; y++ {
		plot(c,
			px{4, y, k.DarkFrame}, px{5, y, k.Dark}, px{6, y, k.Mid},
			px{10, y, k.Mid}, px{11, y, k.Dark}, px{12, y, k.DarkFrame},
		)
	}
	plot(c,
		px{7, 5, k.DiamondLight}, px{8, 5, k.StarWhite}, px{9, 5, k.DiamondLight},
		px{7, 6, k.DiamondMid}, px{8, 6, k.StarYellow}, px{9, 6, k.DiamondMid},
		px{7, 7, k.DiamondDark}, px{8, 7, k.DiamondMid}, px{9, 7, k.DiamondDark},

		px{5, 8, k.DarkFrame}, px{6, 8, k.Dark}, px{7, 8, k.Mid}, px{8, 8, k.Light},
		px{9, 8, k.Mid}, px{10, 8, k.Dark}, px{11, 8, k.DarkFrame},

		px{6, 9, k.DarkFrame}, px{7, 9, k.Dark}, px{8, 9, k.Mid}, px{9, 9, k.Dark}, px{10, 9, k.DarkFrame},

		px{7, 10, k.Obsidian}, px{8, 10, k.Dark}, px{9, 10, k.Obsidian},
		px{7, 11, k.Obsidian}, px{8, 11, k.Obsidian}, px{9, 11, k.Obsidian},
		px{8, 12, k.DarkFrame},
	)

	// sparkles
	plot(c,
		px{4, 3, k.Glow}, px{12, 3, k.Glow},
		px{3, 6, k.StarWhite}, px{13, 6, k.StarWhite},
		px{5, 10, k.Light}, px{11, 10, k.Light},
	)
	return c
}

// SlotProgram is the empty-slot hint for the program slot: the inner edge
// of the tablet and the crystal outline in one flat tone.
func SlotProgram(set *palette.Set) *raster.Canvas {
	g := set.Item.Ghost
	c := itemCanvas()
	c.Apply(
		raster.Line(4, 3, 11, 3, g),
		raster.Line(3, 4, 3, 12, g),
		raster.Line(12, 4, 12, 12, g),
		raster.Line(4, 13, 11, 13, g),

		raster.Line(6, 6, 9, 6, g),
		raster.Line(7, 9, 8, 9, g),
		raster.Line(6, 7, 6, 8, g),
		raster.Line(9, 7, 9, 8, g),
	)
	return c
}

// SlotCasing traces the casing silhouette for the casing slot hint.
func SlotCasing(set *palette.Set) *raster.Canvas {
	g := set.Item.Ghost
	c := itemCanvas()
	c.Apply(
		raster.Outline(6, 2, 9, 4, g),
		raster.Outline(6, 6, 9, 10, g),
		raster.Line(4, 6, 4, 10, g),
		raster.Line(11, 6, 11, 10, g),
		raster.Line(6, 11, 6, 14, g),
		raster.Line(9, 11, 9, 14, g),
	)
	return c
}
