// Package textures holds every Promaton texture generator and the registry
// the CLI and viewer iterate over.
package textures

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// Group is the output family a texture belongs to.
type Group int

const (
	GroupBlock Group = iota
	GroupItem
	GroupGUI
)

var groupNames = [...]string{"block", "item", "gui"}

func (g Group) String() string {
	if g >= 0 && int(g) < len(groupNames) {
		return groupNames[g]
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// ParseGroup accepts the names printed by String plus their plurals.
func ParseGroup(s string) (Group, error) {
	key := strings.TrimSuffix(strings.ToLower(s), "s")
	for i, n := range groupNames {
		if n == key {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("unknown texture group %q (want block, item or gui)", s)
}

// Builder paints one texture from the palette set.
type Builder func(set *palette.Set) *raster.Canvas

// Texture describes one generated file. Path is slash-separated and
// relative to the textures root.
type Texture struct {
	Name   string
	Group  Group
	Path   string
	Width  int
	Height int
	Build  Builder
}

// registry is the fixed generation order: block faces, item icons with
// their slot hints, then GUI atlases.
var registry = []Texture{
	{"automaton_controller_top", GroupBlock, "block/automaton_controller_top.png", BlockSize, BlockSize, ControllerTop},
	{"automaton_controller_side", GroupBlock, "block/automaton_controller_side.png", BlockSize, BlockSize, ControllerSide},
	{"automaton_controller_front", GroupBlock, "block/automaton_controller_front.png", BlockSize, BlockSize, ControllerFront},
	{"automaton_controller_bottom", GroupBlock, "block/automaton_controller_bottom.png", BlockSize, BlockSize, ControllerBottom},

	{"program", GroupItem, "item/program.png", BlockSize, BlockSize, Program},
	{"automaton_casing", GroupItem, "item/automaton_casing.png", BlockSize, BlockSize, AutomatonCasing},
	{"waypoint_wand", GroupItem, "item/waypoint_wand.png", BlockSize, BlockSize, WaypointWand},
	{"anchor_crystal", GroupItem, "item/anchor_crystal.png", BlockSize, BlockSize, AnchorCrystal},
	{"slot_program", GroupItem, "gui/sprites/slot_program.png", BlockSize, BlockSize, SlotProgram},
	{"slot_casing", GroupItem, "gui/sprites/slot_casing.png", BlockSize, BlockSize, SlotCasing},

	{"controller_status", GroupGUI, "gui/container/controller_status.png", AtlasSize, AtlasSize, ControllerStatus},
	{"controller_control", GroupGUI, "gui/container/controller_control.png", AtlasSize, AtlasSize, ControllerControl},
	{"controller_logs", GroupGUI, "gui/container/controller_logs.png", AtlasSize, AtlasSize, ControllerLogs},
	{"controller_skin", GroupGUI, "gui/container/controller_skin.png", AtlasSize, AtlasSize, ControllerSkin},
	{"program_editor", GroupGUI, "gui/container/program_editor.png", AtlasSize, AtlasSize, ProgramEditor},
	{"automaton_gui_inventory", GroupGUI, "gui/container/automaton_gui_inventory.png", AtlasSize, AtlasSize, AutomatonInventory},
	{"automaton_gui_skin", GroupGUI, "gui/container/automaton_gui_skin.png", AtlasSize, AtlasSize, AutomatonSkin},
	{"skin_selector", GroupGUI, "gui/container/skin_selector.png", AtlasSize, 128, SkinSelector},
}

// All returns every texture in generation order.
func All() []Texture {
	return append([]Texture(nil), registry...)
}

// InGroup returns the textures of one group in generation order.
func InGroup(g Group) []Texture {
	var out []Texture
	for _, t := range registry {
		if t.Group == g {
			out = append(out, t)
		}
	}
	return out
}

// UnknownTextureError is returned by Lookup for a name not in the
// registry. Suggestions holds the closest registered names.
type UnknownTextureError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownTextureError) Error() string {
	msg := fmt.Sprintf("unknown texture %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Lookup finds a texture by name.
func Lookup(name string) (Texture, error) {
	for _, t := range registry {
		if t.Name == name {
			return t, nil
		}
	}
	return Texture{}, &UnknownTextureError{Name: name, Suggestions: Suggest(name)}
}

const maxSuggestions = 3

// Suggest ranks registered names by edit distance to name. Names sharing
// its prefix always qualify; others must be within a third of their length.
func Suggest(name string) []string {
	type scored struct {
		name string
		dist int
	}
	name = strings.ToLower(name)
	var cands []scored
	for _, t := range registry {
		switch {
		case len(name) >= 3 && strings.HasPrefix(t.Name, name):
			cands = append(cands, scored{t.Name, 0})
		default:
			d := levenshtein.ComputeDistance(name, t.Name)
			if d <= suggestLimit(len(t.Name)) {
				cands = append(cands, scored{t.Name, d})
			}
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})
	if len(cands) > maxSuggestions {
		cands = cands[:maxSuggestions]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}

func suggestLimit(n int) int {
	if n < 6 {
		return 1
	}
	return n / 3
}
