package raster

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// WriteError is returned when a canvas cannot be written to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("raster: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Encode writes the canvas as PNG. Alpha is kept per pixel.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Save writes the canvas to path as PNG. The parent directory must exist.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Decode reads a PNG stream into a canvas.
func Decode(r io.Reader) (*Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Load reads a PNG file from disk.
func Load(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}
