// Package manifest records what a generation run wrote: one YAML entry per
// texture with its size and a hash of the PNG bytes.
package manifest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ecstaticpichu/promaton-texgen/engine/raster"
)

// DefaultPath is where texgen writes the manifest, relative to the
// project directory.
const DefaultPath = "build/textures/manifest.yaml"

// Manifest is the YAML document. Root is the textures directory; entry
// paths are relative to it.
type Manifest struct {
	Generated time.Time `yaml:"generated"`
	Root      string    `yaml:"root"`
	Textures  []Entry   `yaml:"textures"`
}

type Entry struct {
	Name   string `yaml:"name"`
	Group  string `yaml:"group"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	SHA256 string `yaml:"sha256"`
}

func New(root string) *Manifest {
	return &Manifest{Generated: time.Now().UTC().Truncate(time.Second), Root: root}
}

// Add records a texture, replacing an earlier entry with the same name.
func (m *Manifest) Add(name, group, path string, c *raster.Canvas) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	sum := sha256.Sum256(buf.Bytes())
	e := Entry{
		Name:   name,
		Group:  group,
		Path:   path,
		Width:  c.Width(),
		Height: c.Height(),
		SHA256: hex.EncodeToString(sum[:]),
	}
	for i := range m.Textures {
		if m.Textures[i].Name == name {
			m.Textures[i] = e
			return nil
		}
	}
	m.Textures = append(m.Textures, e)
	return nil
}

// Lookup finds an entry by texture name.
func (m *Manifest) Lookup(name string) (Entry, bool) {
	for _, e := range m.Textures {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// File resolves an entry to a path on disk.
func (m *Manifest) File(e Entry) string {
	return filepath.Join(m.Root, filepath.FromSlash(e.Path))
}

// Write saves the manifest, creating its directory.
func (m *Manifest) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		f.Close()
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// Read loads a manifest. A relative Root is resolved against the project
// directory that contains it.
func Read(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Root != "" && !filepath.IsAbs(m.Root) {
		m.Root = filepath.Join(projectDir(path, m.Root), m.Root)
	}
	return &m, nil
}

// projectDir finds the nearest directory above the manifest that holds
// root. A manifest away from any such tree falls back to the default
// layout, three levels up.
func projectDir(path, root string) string {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		dir = filepath.Dir(path)
	}
	for d := dir; ; {
		if st, err := os.Stat(filepath.Join(d, filepath.FromSlash(root))); err == nil && st.IsDir() {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(path)))
}
