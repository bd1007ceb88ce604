package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

func expectOutOfBounds(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
	}()
	fn()
}

func TestNewFill(t *testing.T) {
	c := NewTransparent(16, 16)
	if c.Width() != 16 || c.Height() != 16 {
		t.Fatalf("size = %dx%d", c.Width(), c.Height())
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := c.At(x, y); got != Transparent {
				t.Fatalf("At(%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
	o := NewOpaque(4, 4)
	if got := o.At(3, 3); got != OpaqueBlack {
		t.Errorf("opaque fill = %v", got)
	}
}

func TestSetLastWriterWins(t *testing.T) {
	c := NewTransparent(4, 4)
	c.Set(1, 1, red)
	c.Set(1, 1, blue)
	if got := c.At(1, 1); got != blue {
		t.Errorf("At = %v, want %v", got, blue)
	}
	c.Set(1, 1, Transparent)
	if got := c.At(1, 1); got.A != 0 {
		t.Errorf("alpha not replaced: %v", got)
	}
}

func TestOutOfBounds(t *testing.T) {
	c := NewTransparent(8, 8)
	tests := []struct {
		name string
		fn   func()
	}{
		{"set negative", func() { c.Set(-1, 0, red) }},
		{"set past width", func() { c.Set(8, 0, red) }},
		{"at past height", func() { c.At(0, 8) }},
		{"line overflow", func() { c.Line(0, 0, 8, 0, red) }},
		{"fill overflow", func() { c.FillRect(Rect(4, 4, 5, 1), red) }},
		{"outline overflow", func() { c.OutlineRect(Rect(0, 0, 9, 9), red) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectOutOfBounds(t, tt.fn)
		})
	}
}

func TestLineInclusive(t *testing.T) {
	c := NewTransparent(10, 10)
	c.Line(2, 3, 6, 3, red)
	for x := 0; x < 10; x++ {
		want := x >= 2 && x <= 6
		if got := c.At(x, 3) == red; got != want {
			t.Errorf("x=%d painted=%v want %v", x, got, want)
		}
	}
	c.Line(5, 8, 5, 1, blue)
	for y := 1; y <= 8; y++ {
		if c.At(5, y) != blue {
			t.Errorf("vertical line missing (5,%d)", y)
		}
	}
	c.Line(0, 0, 0, 0, red)
	if c.At(0, 0) != red {
		t.Error("single-point line not drawn")
	}
}

func TestLineDiagonal(t *testing.T) {
	c := NewTransparent(5, 5)
	c.Line(0, 0, 4, 4, red)
	for i := 0; i < 5; i++ {
		if c.At(i, i) != red {
			t.Errorf("diagonal missing (%d,%d)", i, i)
		}
	}
}

func TestFillAndOutline(t *testing.T) {
	c := NewTransparent(10, 10)
	c.FillRect(Rect(1, 1, 3, 2), red)
	count := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.At(x, y) == red {
				count++
			}
		}
	}
	if count != 6 {
		t.Errorf("filled %d pixels, want 6", count)
	}

	if c.At(0, 0) != Transparent || c.At(4, 1) != Transparent || c.At(1, 3) != Transparent {
		t.Error("fill leaked outside its rectangle")
	}

	o := NewTransparent(10, 10)
	o.OutlineRect(Rect(2, 2, 5, 4), blue)
	if o.At(2, 2) != blue || o.At(6, 5) != blue || o.At(6, 2) != blue || o.At(2, 5) != blue {
		t.Error("outline corners missing")
	}
	if o.At(4, 3) != Transparent {
		t.Error("outline painted interior")
	}
}

func TestApplyOrder(t *testing.T) {
	c := NewTransparent(6, 6)
	c.Apply(
		Fill(0, 0, 5, 5, red),
		Outline(0, 0, 5, 5, blue),
		Line(1, 1, 4, 1, Transparent),
		Point(1, 1, red),
	)
	if c.At(0, 0) != blue {
		t.Error("outline did not overwrite fill")
	}
	if c.At(2, 1) != Transparent {
		t.Error("line did not overwrite fill")
	}
	if c.At(1, 1) != red {
		t.Error("point did not overwrite line")
	}
	if c.At(3, 3) != red {
		t.Error("fill missing")
	}
}

func TestDiffAndClone(t *testing.T) {
	a := NewTransparent(4, 4)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone differs")
	}
	b.Set(2, 3, red)
	d := a.Diff(b)
	if len(d) != 1 || d[0] != image.Pt(2, 3) {
		t.Errorf("Diff = %v", d)
	}
	if a.At(2, 3) != Transparent {
		t.Error("clone shares pixels")
	}
	if a.Equal(NewTransparent(4, 5)) {
		t.Error("different sizes compared equal")
	}
}

func TestFillReplacesAlpha(t *testing.T) {
	c := NewOpaque(8, 8)
	c.FillRect(Rect(2, 2, 4, 4), Transparent)
	if got := c.At(3, 3); got != Transparent {
		t.Errorf("clear fill over opaque = %v, want transparent", got)
	}
	if got := c.At(1, 1); got != OpaqueBlack {
		t.Errorf("outside fill = %v", got)
	}
	c.FillRect(Rect(2, 2, 1, 1), blue)
	if got := c.At(2, 2); got != blue {
		t.Errorf("opaque fill over clear = %v, want %v", got, blue)
	}
}
