package brandkit

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// I/O errors.
var (
	// ErrEmptyCanvas is returned when encoding a canvas without pixels.
	ErrEmptyCanvas = errors.New("brandkit: empty canvas")
)

// LoadPNG loads a PNG image from the given file path and converts it to NRGBA.
func LoadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("brandkit: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from r and converts it to NRGBA.
func DecodePNG(r io.Reader) (*image.NRGBA, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("brandkit: decode png: %w", err)
	}
	return imaging.Clone(img), nil
}

// EncodePNG writes the canvas as PNG. RGB canvases are written without an
// alpha channel.
func EncodePNG(w io.Writer, c *Canvas) error {
	if c.Bounds().Empty() {
		return ErrEmptyCanvas
	}
	img := c.img
	if c.mode == ModeRGB && !img.Opaque() {
		img = c.Flatten().img
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("brandkit: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file, replacing any existing file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return fmt.Errorf("brandkit: create file: %w", err)
	}
	if err := EncodePNG(f, c); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("brandkit: close file: %w", err)
	}
	return nil
}
