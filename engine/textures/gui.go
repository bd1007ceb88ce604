package textures

import (
	"github.com/ecstaticpichu/promaton-texgen/engine/compositor"
	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

func guiPainter(set *palette.Set, h int) *compositor.Painter {
	return compositor.New(raster.NewTransparent(AtlasSize, h), set.GUI)
}

// ControllerStatus is the status tab: one recessed info pane above the
// control bar. Name, health and task text are rendered by the game.
func ControllerStatus(set *palette.Set) *raster.Canvas {
	p := guiPainter(set, AtlasSize)
	spec := ControllerSpec(true, false)
	ControllerBase(p, spec)

	p.Recessed(spec.X+6, ContentY, spec.Width-12, ContentHeight)

	p.FixCorners(spec.X, spec.Y, spec.Width, spec.Height)
	return p.Canvas()
}

// ControllerControl is the manual command tab: a 2×2 button grid centred
// in the content area (Return Home, Stay / Follow Me, Enlist).
func ControllerControl(set *palette.Set) *raster.Canvas {
	p := guiPainter(set, AtlasSize)
	spec := ControllerSpec(true, false)
	ControllerBase(p, spec)

	const gap, bh = 4, 20
	x := spec.X + panelPadding
	bw := (spec.Width - 2*panelPadding - gap) / 2
	y := ContentY + (ContentHeight-(2*bh+gap))/2
	for row := 0; row < 2; row++ {
		by := y + row*(bh+gap)
		p.Button(x, by, bw, bh)
		p.Button(x+bw+gap, by, bw, bh)
	}

	p.FixCorners(spec.X, spec.Y, spec.Width, spec.Height)
	return p.Canvas()
}

// ControllerLogs is the log tab. The log pane takes the full content
// height; Clear lives in the control bar.
func ControllerLogs(set *palette.Set) *raster.Canvas {
	p := guiPainter(set, AtlasSize)
	spec := ControllerSpec(true, true)
	ControllerBase(p, spec)

	x := spec.X + panelPadding
	w := spec.Width - 2*panelPadding - scrollTrackWidth - 4
	p.Recessed(x, ContentY, w, ContentHeight)
	p.ScrollTrack(x+w+4, ContentY, scrollTrackWidth, ContentHeight)

	p.FixCorners(spec.X, spec.Y, spec.Width, spec.Height)
	return p.Canvas()
}

// ControllerSkin drops the control bar: entity preview and two buttons on
// the left, the skin list and its scroll track on the right.
func ControllerSkin(set *palette.Set) *raster.Canvas {
	p := guiPainter(set, AtlasSize)
	spec := ControllerSpec(false, false)
	ControllerBase(p, spec)

	top := spec.Y + TitleBar
	skinBrowser(p, spec.X+panelPadding, top, PlayerInvY-10-top)

	p.FixCorners(spec.X, spec.Y, spec.Width, spec.Height)
	return p.Canvas()
}

// skinBrowser lays out the preview column, list and scroll track shared by
// both skin tabs. h is the list height.
func skinBrowser(p *compositor.Painter, x, y, h int) {
	const (
		previewW, previewH = 51, 70
		gap, scrollGap     = 4, 2
		bh                 = 16
	)
	p.Fill(x, y, previewW, previewH, palette.BorderBlack)
	selectY := y + previewH + gap
	p.Button(x, selectY, previewW, bh)
	p.Button(x, selectY+bh+gap, previewW, bh)

	listX := x + previewW + gap
	listW := ControllerWidth - 2*panelPadding - previewW - gap - scrollGap - scrollTrackWidth
	p.Recessed(listX, y, listW, h)
	p.ScrollTrack(listX+listW+scrollGap, y, scrollTrackWidth, h)
}

// ProgramEditor is the wide editor panel: text area with an outside scroll
// track and Compile / Save buttons centred under it.
func ProgramEditor(set *palette.Set) *raster.Canvas {
	const w, h = 220, 180
	x, y := (AtlasSize-w)/2, 28
	p := guiPainter(set, AtlasSize)
	p.Panel(x, y, w, h)

	tx, ty := x+6, y+TitleBar
	tw := w - 12 - 4 - scrollTrackWidth
	th := h - TitleBar - 30
	p.Recessed(tx, ty, tw, th)
	p.ScrollTrack(tx+tw+4, ty, scrollTrackWidth, th)

	const bw, bh = 60, 18
	by := y + h - 24
	p.Button(x+w/2-bw-8, by, bw, bh)
	p.Button(x+w/2+8, by, bw, bh)

	p.FixCorners(x, y, w, h)
	return p.Canvas()
}

// automatonInfoHeight fits three text lines per column.
const automatonInfoHeight = 38

// AutomatonInventory is the automaton's inventory tab: info pane, six
// equipment slots with the Enlist button, the automaton's 27 slots and the
// player inventory.
func AutomatonInventory(set *palette.Set) *raster.Canvas {
	x, y, w, h := AutomatonX, AutomatonY, AutomatonWidth, AutomatonHeight
	p := guiPainter(set, AtlasSize)
	p.Panel(x, y, w, h)

	infoY := y + TitleBar
	p.Recessed(x+6, infoY, w-12, automatonInfoHeight)

	equipY := infoY + automatonInfoHeight + 4
	left := x + panelPadding
	equip := p.SlotGrid(left, equipY, 6, 1, compositor.SlotSize)
	bx := equip.Max.X + 4
	p.Button(bx, equipY, x+w-panelPadding-bx, compositor.SlotSize)

	invY := equipY + 22
	p.SlotGrid(left, invY, 9, 3, compositor.SlotSize)
	// 14px matches the vanilla chest gap above the player inventory.
	playerInventory(p, left, invY+3*compositor.SlotSize+14)

	p.FixCorners(x, y, w, h)
	return p.Canvas()
}

// AutomatonSkin shares the inventory tab's panel and player inventory
// position with a skin browser above.
func AutomatonSkin(set *palette.Set) *raster.Canvas {
	x, y, w, h := AutomatonX, AutomatonY, AutomatonWidth, AutomatonHeight
	p := guiPainter(set, AtlasSize)
	p.Panel(x, y, w, h)

	top := y + TitleBar
	invY := y + 149
	skinBrowser(p, x+panelPadding, top, invY-14-top)
	playerInventory(p, x+panelPadding, invY)

	p.FixCorners(x, y, w, h)
	return p.Canvas()
}

// SkinSelector is the standalone 256×128 skin picker: list with a thin
// scrollbar, a dark preview box and two buttons.
func SkinSelector(set *palette.Set) *raster.Canvas {
	const w, h = 180, 100
	x, y := (AtlasSize-w)/2, 4
	p := guiPainter(set, 128)
	p.Panel(x, y, w, h)

	const listW = 70
	lx, ly := x+5, y+5
	lh := h - 28
	p.Recessed(lx, ly, listW, lh)

	sx, sy := lx+listW-10, ly+2
	p.Fill(sx, sy, 7, lh-4+1, palette.BorderDark)
	p.Fill(sx+1, sy+1, 5, 15, palette.PanelFill)

	px := lx + listW + 8
	pw := w - listW - 18
	p.TextField(px, y+5, pw, lh)

	const bh = 14
	by := y + h - 19
	p.Button(lx, by, 55, bh)
	p.Button(px+pw-45, by, 45, bh)

	p.FixCorners(x, y, w, h)
	return p.Canvas()
}
