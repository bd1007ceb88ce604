package compositor

import (
	"fmt"
	"image"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// Corner identifies one of the four panel corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (k Corner) String() string {
	if k >= 0 && int(k) < len(cornerNames) {
		return cornerNames[k]
	}
	return fmt.Sprintf("Corner(%d)", int(k))
}

// Anchor returns the outermost pixel of the corner for a panel at (x,y)
// sized w×h. Override offsets are relative to it.
func (k Corner) Anchor(x, y, w, h int) image.Point {
	switch k {
	case TopRight:
		return image.Pt(x+w-1, y)
	case BottomLeft:
		return image.Pt(x, y+h-1)
	case BottomRight:
		return image.Pt(x+w-1, y+h-1)
	}
	return image.Pt(x, y)
}

// Override forces one pixel near a corner to a palette role.
type Override struct {
	DX, DY int
	Role   palette.Role
}

// CornerTable holds overrides keyed by corner. Corners apply in
// TopLeft, TopRight, BottomLeft, BottomRight order; entries within a
// corner apply in slice order.
type CornerTable [4][]Override

// Len counts every entry in the table.
func (t CornerTable) Len() int {
	n := 0
	for _, o := range t {
		n += len(o)
	}
	return n
}

// Points resolves the table for one corner to absolute coordinates.
func (t CornerTable) Points(k Corner, x, y, w, h int) []image.Point {
	a := k.Anchor(x, y, w, h)
	pts := make([]image.Point, len(t[k]))
	for i, o := range t[k] {
		pts[i] = a.Add(image.Pt(o.DX, o.DY))
	}
	return pts
}

// Ops resolves the whole table against a panel rectangle.
func (t CornerTable) Ops(pal *palette.GUI, x, y, w, h int) []raster.Op {
	ops := make([]raster.Op, 0, t.Len())
	for k := TopLeft; k <= BottomRight; k++ {
		a := k.Anchor(x, y, w, h)
		for _, o := range t[k] {
			ops = append(ops, raster.Point(a.X+o.DX, a.Y+o.DY, pal.Color(o.Role)))
		}
	}
	return ops
}

// Then concatenates two tables corner by corner.
func (t CornerTable) Then(u CornerTable) CornerTable {
	var out CornerTable
	for k := range t {
		out[k] = append(append([]Override{}, t[k]...), u[k]...)
	}
	return out
}

const (
	fill   = palette.PanelFill
	white  = palette.BorderWhite
	black  = palette.BorderBlack
	medium = palette.BorderMedium
	cut    = palette.Clear
)

// roundingPixels are the eight black pixels that round the silhouette.
var roundingPixels = CornerTable{
	TopLeft:     {{1, 1, black}},
	TopRight:    {{-1, 1, black}, {-2, 1, black}, {-1, 2, black}},
	BottomLeft:  {{1, -1, black}, {1, -2, black}, {2, -1, black}},
	BottomRight: {{-1, -1, black}},
}

// cutouts are the fully transparent pixels outside the rounded border:
// 3 top-left, 6 top-right, 6 bottom-left, 3 bottom-right.
var cutouts = CornerTable{
	TopLeft:     {{0, 0, cut}, {1, 0, cut}, {0, 1, cut}},
	TopRight:    {{0, 0, cut}, {-1, 0, cut}, {-2, 0, cut}, {0, 1, cut}, {-1, 1, cut}, {0, 2, cut}},
	BottomLeft:  {{0, 0, cut}, {1, 0, cut}, {2, 0, cut}, {0, -1, cut}, {1, -1, cut}, {0, -2, cut}},
	BottomRight: {{0, 0, cut}, {-1, 0, cut}, {0, -1, cut}},
}

// transitions patches the spots where the uniform edge rules meet. The
// highlight wraps around the top-left rounding pixel and the shadow fills
// the bottom-right elbow. The table is literal; some entries undo earlier
// steps on purpose.
var transitions = CornerTable{
	TopLeft: {{2, 1, white}, {1, 2, white}, {2, 2, white}},
	TopRight: {
		{-3, 1, white}, {-3, 2, white}, {-2, 2, fill},
		{-2, 3, medium},
	},
	BottomLeft: {{1, -3, white}, {2, -3, white}, {2, -2, fill}, {3, -2, medium}},
	BottomRight: {
		{-2, -3, medium}, {-3, -2, medium}, {-2, -2, medium},
		{-3, -1, medium}, {-2, -1, medium}, {-1, -1, black},
	},
}

// closing is re-applied by FixCorners after interior content is drawn.
var closing = CornerTable{
	TopLeft: {{2, 1, white}, {1, 2, white}, {2, 2, white}, {3, 3, white}},
	TopRight: {
		{-1, 1, black}, {-2, 1, black}, {-1, 2, black},
	},
	BottomLeft: {
		{1, -1, black}, {1, -2, black}, {2, -1, black},
	},
	BottomRight: {
		{-3, -3, medium}, {-2, -3, medium}, {-3, -2, medium}, {-2, -2, medium},
		{-1, -2, medium}, {-3, -1, medium}, {-2, -1, medium}, {-1, -1, black},
	},
}.Then(cutouts)

// Cutouts exposes the transparent corner sets for callers that verify
// textures.
func Cutouts() CornerTable { return cutouts.Then(CornerTable{}) }

// Transitions exposes the corner transition table applied by Panel.
func Transitions() CornerTable { return transitions.Then(CornerTable{}) }

// Closing exposes the table FixCorners applies.
func Closing() CornerTable { return closing.Then(CornerTable{}) }
