// Package palette holds the fixed colour tables textures are painted with.
// Tables are built once and handed around by pointer; nothing mutates them.
package palette

import (
	"fmt"
	"image/color"
)

// Role names a colour in the GUI palette so recipes and override tables
// can refer to it without holding the colour itself.
type Role int

const (
	PanelFill Role = iota
	SlotFill
	BorderDark
	BorderBlack
	BorderWhite
	BorderMedium
	Clear
)

var roleNames = [...]string{
	PanelFill:    "panel_fill",
	SlotFill:     "slot_fill",
	BorderDark:   "border_dark",
	BorderBlack:  "border_black",
	BorderWhite:  "border_white",
	BorderMedium: "border_medium",
	Clear:        "transparent",
}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// GUI is the vanilla inventory palette.
type GUI struct {
	PanelFill    color.NRGBA
	SlotFill     color.NRGBA
	BorderDark   color.NRGBA
	BorderBlack  color.NRGBA
	BorderWhite  color.NRGBA
	BorderMedium color.NRGBA
	Transparent  color.NRGBA
}

// Color resolves a role. Unknown roles panic.
func (g *GUI) Color(r Role) color.NRGBA {
	switch r {
	case PanelFill:
		return g.PanelFill
	case SlotFill:
		return g.SlotFill
	case BorderDark:
		return g.BorderDark
	case BorderBlack:
		return g.BorderBlack
	case BorderWhite:
		return g.BorderWhite
	case BorderMedium:
		return g.BorderMedium
	case Clear:
		return g.Transparent
	}
	panic(fmt.Sprintf("palette: unknown role %v", r))
}

// Vanilla returns the GUI palette sampled from the stock inventory screen:
// light panels raised with a top-left highlight, slots recessed with a
// top-left shadow.
func Vanilla() *GUI {
	return &GUI{
		PanelFill:    rgb(198, 198, 198),
		SlotFill:     rgb(139, 139, 139),
		BorderDark:   rgb(55, 55, 55),
		BorderBlack:  rgb(0, 0, 0),
		BorderWhite:  rgb(255, 255, 255),
		BorderMedium: rgb(85, 85, 85),
		Transparent:  color.NRGBA{0, 0, 0, 0},
	}
}

// Set bundles every table used by one generation run.
type Set struct {
	GUI   *GUI
	Block *Block
	Item  *Item
}

// Default builds the full palette set.
func Default() *Set {
	return &Set{
		GUI:   Vanilla(),
		Block: Blocks(),
		Item:  Items(),
	}
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{r, g, b, 255}
}
