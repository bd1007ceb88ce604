package palette

import "image/color"

// Block is the palette for the 16×16 controller block faces.
type Block struct {
	OakDark      color.NRGBA
	OakMid       color.NRGBA
	OakLight     color.NRGBA
	OakHighlight color.NRGBA

	IronDark      color.NRGBA
	IronMid       color.NRGBA
	IronLight     color.NRGBA
	IronHighlight color.NRGBA

	RedstoneDark   color.NRGBA
	RedstoneMid    color.NRGBA
	RedstoneBright color.NRGBA

	// Indicator light in its idle state.
	LightBlue    color.NRGBA
	LightBlueDim color.NRGBA

	// Dispenser-style opening.
	VoidDark color.NRGBA
	VoidMid  color.NRGBA
	VoidEdge color.NRGBA
}

// Blocks returns the block palette, sampled from oak planks, the crafter
// frame and redstone dust.
func Blocks() *Block {
	return &Block{
		OakDark:      rgb(126, 98, 55),
		OakMid:       rgb(156, 127, 78),
		OakLight:     rgb(188, 152, 98),
		OakHighlight: rgb(199, 166, 115),

		IronDark:      rgb(104, 104, 104),
		IronMid:       rgb(135, 135, 135),
		IronLight:     rgb(167, 167, 167),
		IronHighlight: rgb(219, 219, 219),

		RedstoneDark:   rgb(92, 12, 12),
		RedstoneMid:    rgb(140, 24, 24),
		RedstoneBright: rgb(180, 40, 40),

		LightBlue:    rgb(90, 130, 190),
		LightBlueDim: rgb(60, 90, 130),

		VoidDark: rgb(20, 20, 24),
		VoidMid:  rgb(40, 40, 46),
		VoidEdge: rgb(60, 60, 66),
	}
}
