package compositor

import (
	"errors"
	"image"
	"testing"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

func newPainter(w, h int) (*Painter, *palette.GUI) {
	pal := palette.Vanilla()
	return New(raster.NewTransparent(w, h), pal), pal
}

func TestSlot(t *testing.T) {
	p, pal := newPainter(40, 40)
	x, y := 5, 7
	p.Slot(x, y, SlotSize)
	c := p.Canvas()

	for yy := y + 1; yy <= y+SlotSize-2; yy++ {
		for xx := x + 1; xx <= x+SlotSize-2; xx++ {
			if got := c.At(xx, yy); got != pal.SlotFill {
				t.Fatalf("interior (%d,%d) = %v", xx, yy, got)
			}
		}
	}
	checks := []struct {
		name string
		x, y int
		want palette.Role
	}{
		{"top-left", x, y, palette.BorderDark},
		{"top edge", x + 9, y, palette.BorderDark},
		{"left edge", x, y + 9, palette.BorderDark},
		{"top-right forced", x + 17, y, palette.SlotFill},
		{"right edge", x + 17, y + 9, palette.BorderWhite},
		{"bottom edge", x + 9, y + 17, palette.BorderWhite},
		{"bottom-left", x, y + 17, palette.BorderWhite},
		{"bottom-right", x + 17, y + 17, palette.BorderWhite},
		{"left above bottom", x, y + 16, palette.BorderDark},
	}
	for _, tt := range checks {
		if got := c.At(tt.x, tt.y); got != pal.Color(tt.want) {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if got := c.At(x-1, y); got != pal.Transparent {
		t.Errorf("slot bled outside: %v", got)
	}
}

func TestSlotGrid(t *testing.T) {
	p, pal := newPainter(200, 80)
	box := p.SlotGrid(3, 4, 9, 3, SlotSize)
	if want := image.Rect(3, 4, 3+9*18, 4+3*18); box != want {
		t.Fatalf("bounds = %v, want %v", box, want)
	}
	c := p.Canvas()
	for row := 0; row < 3; row++ {
		for col := 0; col < 9; col++ {
			x, y := 3+col*18, 4+row*18
			if c.At(x, y) != pal.BorderDark {
				t.Errorf("slot %d,%d missing top-left shadow", col, row)
			}
			if c.At(x+17, y+17) != pal.BorderWhite {
				t.Errorf("slot %d,%d missing bottom-right highlight", col, row)
			}
		}
	}
	painted := 0
	for y := 0; y < 80; y++ {
		for x := 0; x < 200; x++ {
			if c.At(x, y).A != 0 {
				if !image.Pt(x, y).In(box) {
					t.Fatalf("(%d,%d) painted outside grid", x, y)
				}
				painted++
			}
		}
	}
	if painted != 9*3*18*18 {
		t.Errorf("painted %d pixels, want %d", painted, 9*3*18*18)
	}
}

func TestRecessed(t *testing.T) {
	p, pal := newPainter(30, 30)
	p.Recessed(2, 2, 20, 10)
	c := p.Canvas()
	if c.At(2, 2) != pal.BorderDark || c.At(21, 2) != pal.BorderWhite {
		t.Error("top row wrong")
	}
	if c.At(2, 11) != pal.BorderWhite || c.At(2, 10) != pal.BorderDark {
		t.Error("left column wrong")
	}
	if c.At(10, 6) != pal.SlotFill {
		t.Error("interior not slot fill")
	}
}

func TestButton(t *testing.T) {
	p, pal := newPainter(40, 30)
	p.Canvas().FillRect(raster.Rect(0, 0, 40, 30), pal.PanelFill)
	p.Button(4, 4, 20, 10)
	c := p.Canvas()
	for _, pt := range []image.Point{{4, 4}, {23, 4}, {4, 13}, {23, 13}, {10, 13}} {
		if c.At(pt.X, pt.Y) != pal.BorderDark {
			t.Errorf("outline missing at %v", pt)
		}
	}
	for x := 5; x <= 22; x++ {
		if c.At(x, 5) != pal.BorderWhite {
			t.Errorf("highlight missing at (%d,5)", x)
		}
	}
	if c.At(10, 8) != pal.PanelFill {
		t.Error("button painted its interior")
	}
}

func TestSeparator(t *testing.T) {
	p, pal := newPainter(30, 30)
	p.Separator(5, 2, 5, 18)
	p.Separator(10, 20, 25, 20)
	c := p.Canvas()
	if c.At(5, 10) != pal.BorderDark || c.At(6, 10) != pal.BorderWhite {
		t.Error("vertical separator wrong")
	}
	if c.At(15, 20) != pal.BorderDark || c.At(15, 21) != pal.BorderWhite {
		t.Error("horizontal separator wrong")
	}
}

func TestSeparatorDiagonalPanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		var se *SeparatorError
		if !errors.As(err, &se) {
			t.Fatalf("expected SeparatorError, got %v", err)
		}
	}()
	p, _ := newPainter(30, 30)
	p.Separator(0, 0, 5, 5)
}

func TestTextFieldAndFill(t *testing.T) {
	p, pal := newPainter(30, 30)
	p.TextField(1, 1, 10, 6)
	p.Fill(15, 15, 4, 4, palette.BorderBlack)
	c := p.Canvas()
	if c.At(1, 1) != pal.BorderBlack || c.At(5, 3) != pal.BorderDark {
		t.Error("text field wrong")
	}
	if c.At(18, 18) != pal.BorderBlack || c.At(19, 19) != pal.Transparent {
		t.Error("fill bounds wrong")
	}
}
