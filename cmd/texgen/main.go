// texgen paints the Promaton block, item and GUI textures and writes them
// into the mod's resource tree.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ecstaticpichu/promaton-texgen/engine/manifest"
	"github.com/ecstaticpichu/promaton-texgen/engine/palette"
	"github.com/ecstaticpichu/promaton-texgen/engine/preview"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
	"github.com/ecstaticpichu/promaton-texgen/engine/textures"
)

const desc = `Generates the Promaton block, item and GUI textures in vanilla style.`

type Globals struct {
	Project string `short:"p" type:"existingdir" help:"Project root holding src/main/resources. Found by walking up from the working directory when omitted."`
}

var cli struct {
	Globals

	All    AllCmd    `cmd:"" default:"1" help:"Generate every texture: blocks, items, then GUI."`
	Blocks BlocksCmd `cmd:"" help:"Generate the controller block faces."`
	Items  ItemsCmd  `cmd:"" help:"Generate item icons and slot hint sprites."`
	GUI    GUICmd    `cmd:"" name:"gui" help:"Generate GUI container atlases."`
	Only   OnlyCmd   `cmd:"" help:"Generate the named textures."`
	Check  CheckCmd  `cmd:"" help:"Compare textures on disk with a fresh build."`
	Sheet  SheetCmd  `cmd:"" help:"Write a labelled contact sheet of all textures."`
	List   ListCmd   `cmd:"" help:"List registered textures."`
}

type AllCmd struct{}

func (c *AllCmd) Run(g *Globals) error { return generate(g, textures.All()) }

type BlocksCmd struct{}

func (c *BlocksCmd) Run(g *Globals) error { return generate(g, textures.InGroup(textures.GroupBlock)) }

type ItemsCmd struct{}

func (c *ItemsCmd) Run(g *Globals) error { return generate(g, textures.InGroup(textures.GroupItem)) }

type GUICmd struct{}

func (c *GUICmd) Run(g *Globals) error { return generate(g, textures.InGroup(textures.GroupGUI)) }

type OnlyCmd struct {
	Names []string `arg:"" name:"name" help:"Texture names (see 'texgen list')."`
}

func (c *OnlyCmd) Run(g *Globals) error {
	var texs []textures.Texture
	for _, n := range c.Names {
		t, err := textures.Lookup(n)
		if err != nil {
			return err
		}
		texs = append(texs, t)
	}
	return generate(g, texs)
}

type CheckCmd struct{}

func (c *CheckCmd) Run(g *Globals) error {
	gen := textures.NewGenerator(textures.Root(g.Project), palette.Default(), os.Stdout)
	drift, err := gen.Check(textures.All())
	if err != nil {
		return err
	}
	bad := 0
	for _, d := range drift {
		mark := "  ✓"
		if !d.Clean() {
			mark = "  ✗"
			bad++
		}
		fmt.Println(mark, d)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d textures differ from the generator; run texgen to rewrite them", bad, len(drift))
	}
	fmt.Printf("All %d textures match.\n", len(drift))
	return nil
}

type SheetCmd struct {
	Out     string `short:"o" help:"Output PNG (default <project>/build/textures/sheet.png)."`
	Columns int    `default:"6" help:"Textures per row."`
	Cell    int    `default:"128" help:"Cell size in pixels."`
}

func (c *SheetCmd) Run(g *Globals) error {
	if c.Columns < 1 || c.Cell < 16 {
		return fmt.Errorf("need at least 1 column and a 16px cell")
	}
	set := palette.Default()
	gen := textures.NewGenerator(textures.Root(g.Project), set, nil)

	var tiles []preview.Tile
	for _, t := range textures.All() {
		cv, err := raster.Load(gen.File(t))
		if err != nil {
			fmt.Printf("  ! %s not readable (%v), using a fresh build\n", t.Name, err)
			cv = t.Build(set)
		}
		tiles = append(tiles, preview.Tile{Name: t.Name, Image: cv.Image()})
	}

	l := preview.DefaultLayout()
	l.Columns, l.Cell = c.Columns, c.Cell
	out := c.Out
	if out == "" {
		out = filepath.Join(g.Project, filepath.FromSlash(preview.DefaultPath))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	if err := preview.Sheet(tiles, l).Save(out); err != nil {
		return err
	}
	fmt.Printf("  → %s\n", out)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(g *Globals) error {
	for _, t := range textures.All() {
		fmt.Printf("%-28s %-6s %3dx%-3d  %s\n", t.Name, t.Group, t.Width, t.Height, t.Path)
	}
	return nil
}

// generate writes texs and records everything written in the manifest,
// including the files written before a failure.
func generate(g *Globals, texs []textures.Texture) error {
	root := textures.Root(g.Project)
	gen := textures.NewGenerator(root, palette.Default(), os.Stdout)

	results, err := gen.Generate(texs)
	if len(results) > 0 {
		if merr := writeManifest(g.Project, results); merr != nil {
			fmt.Printf("Warning: manifest not written: %v\n", merr)
		}
	}
	if err != nil {
		return err
	}
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Done!")
	return nil
}

// writeManifest merges results into the project's manifest so a partial
// run keeps the entries of earlier runs.
func writeManifest(project string, results []textures.Result) error {
	path := filepath.Join(project, filepath.FromSlash(manifest.DefaultPath))
	m, err := manifest.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Warning: replacing unreadable manifest: %v\n", err)
		}
		m = manifest.New(textures.OutputRoot)
	}
	m.Root = textures.OutputRoot
	m.Generated = time.Now().UTC().Truncate(time.Second)
	for _, r := range results {
		if err := m.Add(r.Name, r.Group.String(), r.Path, r.Canvas); err != nil {
			return err
		}
	}
	if err := m.Write(path); err != nil {
		return err
	}
	fmt.Printf("  → %s\n", path)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("texgen"),
		kong.Description(desc),
		kong.UsageOnError(),
	)

	if cli.Project == "" {
		cli.Project = textures.FindProject(".")
	}
	err := ctx.Run(&cli.Globals)
	var missing *textures.MissingDirError
	if errors.As(err, &missing) {
		fmt.Printf("Error: %v\n", missing)
		fmt.Println("Make sure you're running this from the Promaton project.")
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
