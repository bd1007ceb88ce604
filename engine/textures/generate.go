package textures

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// OutputRoot is where the mod expects its textures, relative to the
// project directory.
const OutputRoot = "src/main/resources/assets/promaton/textures"

// Root returns the textures directory for a project.
func Root(project string) string {
	return filepath.Join(project, filepath.FromSlash(OutputRoot))
}

// FindProject walks up from dir to the first directory holding the mod's
// assets tree. With no match it returns dir as given.
func FindProject(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	marker := filepath.Dir(filepath.FromSlash(OutputRoot))
	for d := abs; ; {
		if st, err := os.Stat(filepath.Join(d, marker)); err == nil && st.IsDir() {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir
		}
		d = parent
	}
}

// MissingDirError means the GUI directory is absent. GUI generation never
// creates it: a missing gui/ almost always means the wrong project.
type MissingDirError struct {
	Path string
}

func (e *MissingDirError) Error() string {
	return fmt.Sprintf("output directory not found: %s", e.Path)
}

// Result is one written texture.
type Result struct {
	Texture
	File   string
	Canvas *raster.Canvas
}

// Generator paints textures and writes them under Root. Progress goes to
// Out in the same banner style as the other asset tools.
type Generator struct {
	Root    string
	Palette *palette.Set
	Out     io.Writer
}

func NewGenerator(root string, set *palette.Set, out io.Writer) *Generator {
	if out == nil {
		out = io.Discard
	}
	return &Generator{Root: root, Palette: set, Out: out}
}

// File resolves a texture's path on disk.
func (g *Generator) File(t Texture) string {
	return filepath.Join(g.Root, filepath.FromSlash(t.Path))
}

// prepare creates the directories a group writes into. The GUI group only
// creates subdirectories of an existing gui/.
func (g *Generator) prepare(group Group, texs []Texture) error {
	if group == GroupGUI {
		dir := filepath.Join(g.Root, "gui")
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return &MissingDirError{Path: dir}
		}
	}
	seen := map[string]bool{}
	for _, t := range texs {
		dir := filepath.Dir(g.File(t))
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// Generate writes texs in order, one group at a time. It stops at the
// first error; files already written stay on disk and are returned.
func (g *Generator) Generate(texs []Texture) ([]Result, error) {
	var results []Result
	for len(texs) > 0 {
		n := 1
		for n < len(texs) && texs[n].Group == texs[0].Group {
			n++
		}
		batch := texs[:n]
		texs = texs[n:]

		group := batch[0].Group
		if err := g.prepare(group, batch); err != nil {
			return results, err
		}
		fmt.Fprintf(g.Out, "Output directory: %s\n", filepath.Join(g.Root, groupDir(group)))
		fmt.Fprintf(g.Out, "Generating Promaton %s textures...\n", group)
		fmt.Fprintln(g.Out, strings.Repeat("=", 50))

		for _, t := range batch {
			res, err := g.write(t)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func (g *Generator) write(t Texture) (Result, error) {
	c := t.Build(g.Palette)
	file := g.File(t)
	if err := c.Save(file); err != nil {
		return Result{}, err
	}
	fmt.Fprintf(g.Out, "  → %s\n", file)
	return Result{Texture: t, File: file, Canvas: c}, nil
}

func groupDir(g Group) string {
	if g == GroupGUI {
		return "gui"
	}
	return g.String()
}

// Drift is the difference between a texture on disk and a fresh build.
type Drift struct {
	Texture
	File    string
	Missing bool
	Resized bool
	Pixels  int
}

// Clean reports whether the file matches the generator exactly.
func (d Drift) Clean() bool {
	return !d.Missing && !d.Resized && d.Pixels == 0
}

func (d Drift) String() string {
	switch {
	case d.Missing:
		return fmt.Sprintf("%s: missing %s", d.Name, d.File)
	case d.Resized:
		return fmt.Sprintf("%s: size differs from %dx%d", d.Name, d.Width, d.Height)
	case d.Pixels > 0:
		return fmt.Sprintf("%s: %d pixels differ", d.Name, d.Pixels)
	}
	return d.Name + ": ok"
}

// Check rebuilds each texture in memory and compares it with the file on
// disk. Decode failures are errors; absent files are reported as drift.
func (g *Generator) Check(texs []Texture) ([]Drift, error) {
	out := make([]Drift, 0, len(texs))
	for _, t := range texs {
		d := Drift{Texture: t, File: g.File(t)}
		disk, err := raster.Load(d.File)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			d.Missing = true
		case err != nil:
			return out, err
		default:
			want := t.Build(g.Palette)
			if disk.Bounds() != want.Bounds() {
				d.Resized = true
			} else {
				d.Pixels = len(want.Diff(disk))
			}
		}
		out = append(out, d)
	}
	return out, nil
}
