package textures

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

func TestLayoutConstants(t *testing.T) {
	tests := []struct {
		name      string
		got, want int
	}{
		{"controller x", ControllerX, 40},
		{"hotbar y", HotbarY, 225},
		{"control bar y", ControlBarY, 137},
		{"content y", ContentY, 45},
		{"content height", ContentHeight, 88},
		{"automaton x", AutomatonX, 40},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestRegistryUnique(t *testing.T) {
	names := map[string]bool{}
	paths := map[string]bool{}
	for _, tex := range All() {
		if names[tex.Name] {
			t.Errorf("duplicate name %q", tex.Name)
		}
		if paths[tex.Path] {
			t.Errorf("duplicate path %q", tex.Path)
		}
		names[tex.Name] = true
		paths[tex.Path] = true
	}
	if len(names) != 18 {
		t.Errorf("%d textures registered, want 18", len(names))
	}
}

func TestEveryTextureBuilds(t *testing.T) {
	set := palette.Default()
	for _, tex := range All() {
		t.Run(tex.Name, func(t *testing.T) {
			c := tex.Build(set)
			if c.Width() != tex.Width || c.Height() != tex.Height {
				t.Fatalf("built %dx%d, declared %dx%d", c.Width(), c.Height(), tex.Width, tex.Height)
			}
			switch tex.Group {
			case GroupBlock:
				for y := 0; y < c.Height(); y++ {
					for x := 0; x < c.Width(); x++ {
						if c.At(x, y).A != 255 {
							t.Fatalf("block pixel (%d,%d) not opaque", x, y)
						}
					}
				}
			default:
				if c.At(0, 0).A != 0 {
					t.Errorf("(0,0) alpha = %d, want transparent background", c.At(0, 0).A)
				}
			}
		})
	}
}

func TestBuildsAreDeterministic(t *testing.T) {
	for _, tex := range All() {
		a, b := tex.Build(palette.Default()), tex.Build(palette.Default())
		if !a.Equal(b) {
			t.Errorf("%s differs between builds", tex.Name)
		}
	}
}

func TestProgramIcon(t *testing.T) {
	c := Program(palette.Default())
	if c.At(0, 0).A != 0 {
		t.Error("(0,0) should be transparent")
	}
	if got, want := c.At(8, 8), (color.NRGBA{157, 120, 196, 255}); got != want {
		t.Errorf("(8,8) = %v, want %v", got, want)
	}
	if c.At(3, 3).A != 0 {
		t.Error("tablet corner (3,3) should be cut away")
	}
}

func TestControllerPanels(t *testing.T) {
	set := palette.Default()
	gui := set.GUI
	for _, build := range []Builder{ControllerStatus, ControllerControl, ControllerLogs, ControllerSkin} {
		c := build(set)
		if c.At(ControllerX, ControllerY).A != 0 {
			t.Error("panel origin should be transparent")
		}
		if c.At(ControllerX+1, ControllerY+1) != gui.BorderBlack {
			t.Error("rounding pixel should be black")
		}
		// first inventory slot, top-left shadow
		if c.At(ControllerX+7, PlayerInvY) != gui.BorderDark {
			t.Error("player inventory missing")
		}
		if c.At(ControllerX+7, HotbarY+17) != gui.BorderWhite {
			t.Error("hotbar missing")
		}
	}
}

func TestControlBarClearButton(t *testing.T) {
	set := palette.Default()
	const clearX, barY = 175, ControlBarY + 1
	logs := ControllerLogs(set)
	if logs.At(clearX, barY) != set.GUI.BorderDark {
		t.Error("logs tab should have a Clear button")
	}
	if logs.At(ControllerX+ControllerWidth-8, barY) != set.GUI.BorderDark {
		t.Error("Clear button should stretch to the right padding")
	}
	status := ControllerStatus(set)
	if status.At(clearX, barY) != set.GUI.PanelFill {
		t.Error("status tab should not have a Clear button")
	}
	// both tabs share the Run button
	if status.At(ControllerX+7+21, barY) != set.GUI.BorderDark {
		t.Error("Run button missing")
	}
}

func TestControllerFront(t *testing.T) {
	set := palette.Default()
	b := set.Block
	c := ControllerFront(set)
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{6, 5, b.VoidEdge},
		{9, 8, b.VoidEdge},
		{7, 6, b.VoidMid},
		{8, 7, b.VoidDark},
		{11, 4, b.LightBlue},
		{11, 5, b.LightBlueDim},
		{0, 0, b.IronDark},
		{1, 1, b.IronDark},
		{2, 5, b.IronLight},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestControllerTopLight(t *testing.T) {
	set := palette.Default()
	c := ControllerTop(set)
	if c.At(7, 7) != set.Block.LightBlue || c.At(8, 8) != set.Block.LightBlueDim {
		t.Error("indicator light wrong")
	}
	if c.At(5, 4) != set.Block.RedstoneBright {
		t.Error("corner circuit wrong")
	}
}

func TestLookup(t *testing.T) {
	tex, err := Lookup("waypoint_wand")
	if err != nil || tex.Group != GroupItem {
		t.Fatalf("Lookup(waypoint_wand) = %v, %v", tex.Name, err)
	}

	_, err = Lookup("progam")
	var ue *UnknownTextureError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnknownTextureError, got %v", err)
	}
	if len(ue.Suggestions) == 0 || ue.Suggestions[0] != "program" {
		t.Errorf("suggestions = %v, want program first", ue.Suggestions)
	}
}

func TestSuggestPrefix(t *testing.T) {
	got := Suggest("controller_s")
	if len(got) < 2 || got[0] != "controller_skin" || got[1] != "controller_status" {
		t.Fatalf("Suggest = %v, want prefix matches first", got)
	}
	if len(got) > maxSuggestions {
		t.Errorf("%d suggestions, cap is %d", len(got), maxSuggestions)
	}
	if s := Suggest("zzzzzzzz"); len(s) != 0 {
		t.Errorf("Suggest(zzzzzzzz) = %v, want none", s)
	}
}

func TestParseGroup(t *testing.T) {
	tests := []struct {
		in   string
		want Group
		ok   bool
	}{
		{"gui", GroupGUI, true},
		{"blocks", GroupBlock, true},
		{"Items", GroupItem, true},
		{"sounds", 0, false},
	}
	for _, tt := range tests {
		g, err := ParseGroup(tt.in)
		if (err == nil) != tt.ok || (tt.ok && g != tt.want) {
			t.Errorf("ParseGroup(%q) = %v, %v", tt.in, g, err)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	root := filepath.Join(t.TempDir(), "textures")
	g := NewGenerator(root, palette.Default(), nil)

	results, err := g.Generate(All())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(All()) {
		t.Fatalf("%d results, want %d", len(results), len(All()))
	}
	for _, r := range results {
		disk, err := raster.Load(r.File)
		if err != nil {
			t.Fatal(err)
		}
		if !disk.Equal(r.Canvas) {
			t.Errorf("%s: file does not match canvas", r.Name)
		}
	}

	drift, err := g.Check(All())
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range drift {
		if !d.Clean() {
			t.Errorf("fresh generation drifted: %v", d)
		}
	}
}

func TestGenerateGUINeedsDir(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(root, palette.Default(), nil)

	results, err := g.Generate(InGroup(GroupGUI))
	var me *MissingDirError
	if !errors.As(err, &me) {
		t.Fatalf("expected MissingDirError, got %v", err)
	}
	if me.Path != filepath.Join(root, "gui") || len(results) != 0 {
		t.Errorf("path %q, %d results", me.Path, len(results))
	}

	if err := os.Mkdir(filepath.Join(root, "gui"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(InGroup(GroupGUI)); err != nil {
		t.Fatalf("with gui/ present: %v", err)
	}
}

func TestCheckReportsDrift(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(root, palette.Default(), nil)
	blocks := InGroup(GroupBlock)
	if _, err := g.Generate(blocks); err != nil {
		t.Fatal(err)
	}

	top := g.File(blocks[0])
	c, err := raster.Load(top)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(8, 8, color.NRGBA{1, 2, 3, 255})
	c.Set(9, 8, color.NRGBA{1, 2, 3, 255})
	if err := c.Save(top); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(g.File(blocks[1])); err != nil {
		t.Fatal(err)
	}

	drift, err := g.Check(blocks)
	if err != nil {
		t.Fatal(err)
	}
	if drift[0].Pixels != 2 {
		t.Errorf("top: %v", drift[0])
	}
	if !drift[1].Missing {
		t.Errorf("side: %v", drift[1])
	}
	if !drift[2].Clean() || !drift[3].Clean() {
		t.Errorf("front/bottom should be clean: %v, %v", drift[2], drift[3])
	}
}

func TestFindProject(t *testing.T) {
	project := t.TempDir()
	if err := os.MkdirAll(filepath.Join(Root(project), "gui"), 0755); err != nil {
		t.Fatal(err)
	}
	deep := filepath.Join(project, "src", "main", "java")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(project)
	if got := FindProject(deep); got != want {
		t.Errorf("FindProject(%s) = %s, want %s", deep, got, want)
	}

	lost := t.TempDir()
	if got := FindProject(lost); got != lost {
		t.Errorf("FindProject outside a project = %s, want it unchanged", got)
	}
}
