package palette

import (
	"image/color"
	"testing"
)

func TestVanillaRoles(t *testing.T) {
	g := Vanilla()
	tests := []struct {
		role Role
		want color.NRGBA
	}{
		{PanelFill, color.NRGBA{198, 198, 198, 255}},
		{SlotFill, color.NRGBA{139, 139, 139, 255}},
		{BorderDark, color.NRGBA{55, 55, 55, 255}},
		{BorderBlack, color.NRGBA{0, 0, 0, 255}},
		{BorderWhite, color.NRGBA{255, 255, 255, 255}},
		{BorderMedium, color.NRGBA{85, 85, 85, 255}},
		{Clear, color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := g.Color(tt.role); got != tt.want {
				t.Errorf("Color(%v) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestUnknownRolePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Vanilla().Color(Role(99))
}

func TestDefaultIndependent(t *testing.T) {
	a, b := Default(), Default()
	a.GUI.PanelFill = color.NRGBA{1, 2, 3, 255}
	if b.GUI.PanelFill == a.GUI.PanelFill {
		t.Error("palette sets share storage")
	}
}
