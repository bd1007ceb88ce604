package textures

import (
	"github.com/ecstaticpichu/promaton-texgen/engine/compositor"
)

// GUI atlases are 256 wide; panels are centred horizontally.
const (
	AtlasSize = 256

	// TitleBar is the strip above panel content where screens render the
	// tab name.
	TitleBar = 17
)

// Controller interface tabs share one 176×222 panel, laid out bottom-up:
// hotbar, player inventory, control bar, then the content area fills
// whatever is left under the title.
const (
	ControllerWidth  = 176
	ControllerHeight = 222
	ControllerX      = (AtlasSize - ControllerWidth) / 2
	ControllerY      = 28

	PlayerInvY = 167
	HotbarY    = PlayerInvY + 3*compositor.SlotSize + 4

	ControlBarY      = PlayerInvY - 10 - 20
	ControlBarHeight = 20

	ContentY      = ControllerY + TitleBar
	ContentHeight = ControlBarY - 4 - ContentY
)

// Automaton screen tabs use a taller panel that reaches the atlas bottom.
const (
	AutomatonWidth  = 176
	AutomatonHeight = 232
	AutomatonX      = (AtlasSize - AutomatonWidth) / 2
	AutomatonY      = 24
)

const (
	// controlButtonWidth is kept narrow so a Clear button still fits.
	controlButtonWidth = 35

	scrollTrackWidth = 14
	panelPadding     = 7
)

// ControllerSpec is the shared controller panel. bar adds the control bar;
// withClear appends its Clear button.
func ControllerSpec(bar, withClear bool) compositor.PanelSpec {
	return compositor.PanelSpec{
		X:           ControllerX,
		Y:           ControllerY,
		Width:       ControllerWidth,
		Height:      ControllerHeight,
		ControlBar:  bar,
		ClearButton: bar && withClear,
	}
}

// ControllerBase draws what every controller tab has in common: the panel,
// the optional control bar
//
//	[program slot][Run/Stop] | [casing slot][Summon] [| Clear]
//
// and the player inventory with its hotbar. Callers draw their content and
// then run FixCorners.
func ControllerBase(p *compositor.Painter, spec compositor.PanelSpec) {
	p.Panel(spec.X, spec.Y, spec.Width, spec.Height)
	if spec.ControlBar {
		controlBar(p, spec)
	}
	playerInventory(p, spec.X+panelPadding, PlayerInvY)
}

func controlBar(p *compositor.Painter, spec compositor.PanelSpec) {
	y := ControlBarY + 1 // centres 18px widgets in the 20px bar
	sepTop, sepBottom := ControlBarY+2, ControlBarY+ControlBarHeight-2

	x := spec.X + panelPadding
	p.Slot(x, y, compositor.SlotSize)
	run := x + compositor.SlotSize + 3
	p.Button(run, y, controlButtonWidth, compositor.SlotSize)

	div := run + controlButtonWidth + 3
	p.Separator(div, sepTop, div, sepBottom)

	casing := div + 5
	p.Slot(casing, y, compositor.SlotSize)
	summon := casing + compositor.SlotSize + 3
	p.Button(summon, y, controlButtonWidth, compositor.SlotSize)

	if !spec.ClearButton {
		return
	}
	div2 := summon + controlButtonWidth + 3
	p.Separator(div2, sepTop, div2, sepBottom)
	clr := div2 + 5
	p.Button(clr, y, spec.X+spec.Width-panelPadding-clr, compositor.SlotSize)
}

// playerInventory draws the 9×3 inventory at y and the hotbar 4px below it.
func playerInventory(p *compositor.Painter, x, y int) {
	p.SlotGrid(x, y, 9, 3, compositor.SlotSize)
	p.SlotGrid(x, y+3*compositor.SlotSize+4, 9, 1, compositor.SlotSize)
}
