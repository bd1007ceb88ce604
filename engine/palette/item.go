package palette

import "image/color"

// Item groups the per-icon palettes for 16×16 item textures.
type Item struct {
	Program ProgramColors
	Casing  CasingColors
	Wand    WandColors
	Crystal CrystalColors

	// Ghost is the single flat tone of empty-slot hint sprites.
	Ghost       color.NRGBA
	Transparent color.NRGBA
}

// ProgramColors paints the stone tablet with redstone traces and an
// amethyst memory crystal.
type ProgramColors struct {
	StoneDark      color.NRGBA
	StoneMid       color.NRGBA
	StoneLight     color.NRGBA
	StoneHighlight color.NRGBA

	RedstoneDark   color.NRGBA
	RedstoneMid    color.NRGBA
	RedstoneBright color.NRGBA

	AmethystDark   color.NRGBA
	AmethystMid    color.NRGBA
	AmethystLight  color.NRGBA
	AmethystBright color.NRGBA

	OutlineDark  color.NRGBA
	OutlineBlack color.NRGBA
}

type CasingColors struct {
	IronDark   color.NRGBA
	IronMid    color.NRGBA
	IronLight  color.NRGBA
	GoldAccent color.NRGBA
	GoldDark   color.NRGBA
	Outline    color.NRGBA
}

// WandColors: ender pearl tip, blaze rod shaft, copper handle.
type WandColors struct {
	EnderDark      color.NRGBA
	EnderMid       color.NRGBA
	EnderLight     color.NRGBA
	EnderHighlight color.NRGBA

	BlazeDark      color.NRGBA
	BlazeMid       color.NRGBA
	BlazeLight     color.NRGBA
	BlazeHighlight color.NRGBA

	CopperDark  color.NRGBA
	CopperMid   color.NRGBA
	CopperLight color.NRGBA

	Outline color.NRGBA
}

// CrystalColors: end crystal body, nether star core, diamond facets and an
// obsidian base.
type CrystalColors struct {
	Dark  color.NRGBA
	Mid   color.NRGBA
	Light color.NRGBA
	Glow  color.NRGBA

	StarWhite  color.NRGBA
	StarYellow color.NRGBA
	StarCore   color.NRGBA

	DiamondDark  color.NRGBA
	DiamondMid   color.NRGBA
	DiamondLight color.NRGBA

	DarkFrame color.NRGBA
	Obsidian  color.NRGBA
}

func Items() *Item {
	return &Item{
		Program: ProgramColors{
			StoneDark:      rgb(90, 90, 90),
			StoneMid:       rgb(125, 125, 125),
			StoneLight:     rgb(160, 160, 160),
			StoneHighlight: rgb(180, 180, 180),

			RedstoneDark:   rgb(139, 0, 0),
			RedstoneMid:    rgb(180, 20, 20),
			RedstoneBright: rgb(220, 50, 50),

			AmethystDark:   rgb(100, 60, 130),
			AmethystMid:    rgb(157, 120, 196),
			AmethystLight:  rgb(200, 160, 230),
			AmethystBright: rgb(220, 190, 255),

			OutlineDark:  rgb(40, 40, 40),
			OutlineBlack: rgb(20, 20, 20),
		},
		Casing: CasingColors{
			IronDark:   rgb(120, 120, 130),
			IronMid:    rgb(160, 160, 170),
			IronLight:  rgb(200, 200, 210),
			GoldAccent: rgb(220, 180, 60),
			GoldDark:   rgb(180, 140, 40),
			Outline:    rgb(40, 40, 50),
		},
		Wand: WandColors{
			EnderDark:      rgb(15, 60, 60),
			EnderMid:       rgb(25, 100, 100),
			EnderLight:     rgb(40, 140, 130),
			EnderHighlight: rgb(80, 180, 170),

			BlazeDark:      rgb(180, 100, 20),
			BlazeMid:       rgb(220, 150, 40),
			BlazeLight:     rgb(250, 190, 70),
			BlazeHighlight: rgb(255, 220, 120),

			CopperDark:  rgb(140, 70, 40),
			CopperMid:   rgb(180, 100, 60),
			CopperLight: rgb(200, 130, 80),

			Outline: rgb(30, 30, 30),
		},
		Crystal: CrystalColors{
			Dark:  rgb(120, 40, 100),
			Mid:   rgb(180, 80, 150),
			Light: rgb(220, 130, 190),
			Glow:  rgb(250, 180, 230),

			StarWhite:  rgb(255, 255, 255),
			StarYellow: rgb(255, 250, 200),
			StarCore:   rgb(255, 255, 220),

			DiamondDark:  rgb(60, 140, 190),
			DiamondMid:   rgb(100, 190, 230),
			DiamondLight: rgb(150, 220, 250),

			DarkFrame: rgb(40, 35, 45),
			Obsidian:  rgb(20, 15, 30),
		},
		Ghost:       rgb(85, 85, 85),
		Transparent: color.NRGBA{0, 0, 0, 0},
	}
}
