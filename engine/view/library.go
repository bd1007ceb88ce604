package view

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/ecstaticpichu/promaton-texgen/engine/manifest"
	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// Texture is one manifest entry with its pixels. Err is set when the file
// could not be read; Stale when its bytes no longer match the manifest.
type Texture struct {
	manifest.Entry
	File   string
	Canvas *raster.Canvas
	Stale  bool
	Err    error
}

// Size is the pixel size as decoded from disk, which differs from the
// manifest entry when the file was rewritten since the run.
func (t *Texture) Size() (w, h int) {
	if t.Canvas != nil {
		return t.Canvas.Width(), t.Canvas.Height()
	}
	return t.Width, t.Height
}

// Texel reads one pixel. ok is false when nothing was loaded or p lies
// outside the decoded image.
func (t *Texture) Texel(p image.Point) (c color.NRGBA, ok bool) {
	if t.Canvas == nil || !t.Canvas.InBounds(p.X, p.Y) {
		return c, false
	}
	return t.Canvas.At(p.X, p.Y), true
}

// Library is the set of textures listed by a manifest, with a cursor.
type Library struct {
	Path     string
	Manifest *manifest.Manifest
	Textures []*Texture

	idx   int
	group string
}

// Open reads a manifest and every texture it lists. Unreadable textures
// stay in the list with Err set.
func Open(path string) (*Library, error) {
	l := &Library{Path: path}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the manifest and files, keeping the cursor on the same
// texture name when it still exists.
func (l *Library) Reload() error {
	m, err := manifest.Read(l.Path)
	if err != nil {
		return err
	}
	if len(m.Textures) == 0 {
		return fmt.Errorf("manifest %s lists no textures", l.Path)
	}
	prev := ""
	if cur := l.Current(); cur != nil {
		prev = cur.Name
	}

	texs := make([]*Texture, len(m.Textures))
	for i, e := range m.Textures {
		texs[i] = load(m, e)
	}
	l.Manifest, l.Textures, l.idx = m, texs, 0
	if prev == "" || !l.Select(prev) {
		l.SetGroup(l.group)
	}
	return nil
}

func load(m *manifest.Manifest, e manifest.Entry) *Texture {
	t := &Texture{Entry: e, File: m.File(e)}
	b, err := os.ReadFile(t.File)
	if err != nil {
		log.Printf("texview: %v", err)
		t.Err = err
		return t
	}
	sum := sha256.Sum256(b)
	t.Stale = hex.EncodeToString(sum[:]) != e.SHA256
	t.Canvas, err = raster.Decode(bytes.NewReader(b))
	if err != nil {
		log.Printf("texview: decode %s: %v", t.File, err)
		t.Err = err
	}
	return t
}

func (l *Library) Len() int { return len(l.Textures) }

// Index is the cursor position in Textures.
func (l *Library) Index() int { return l.idx }

// Current is the texture under the cursor.
func (l *Library) Current() *Texture {
	if l.idx < 0 || l.idx >= len(l.Textures) {
		return nil
	}
	return l.Textures[l.idx]
}

// Group is the active group filter; empty means all.
func (l *Library) Group() string { return l.group }

// SetGroup restricts Next and Prev to one group and moves to its first
// texture. An empty group, or one with no textures, shows everything.
func (l *Library) SetGroup(group string) {
	l.group = ""
	for i, t := range l.Textures {
		if group == "" || t.Group == group {
			l.group, l.idx = group, i
			return
		}
	}
	l.idx = 0
}

// Select moves to a texture by name, clearing a filter that hides it.
func (l *Library) Select(name string) bool {
	for i, t := range l.Textures {
		if t.Name == name {
			if l.group != "" && t.Group != l.group {
				l.group = ""
			}
			l.idx = i
			return true
		}
	}
	return false
}

func (l *Library) Next() { l.step(1) }
func (l *Library) Prev() { l.step(-1) }

func (l *Library) step(d int) {
	n := len(l.Textures)
	for i := 1; i <= n; i++ {
		j := ((l.idx+d*i)%n + n) % n
		if l.group == "" || l.Textures[j].Group == l.group {
			l.idx = j
			return
		}
	}
}
