// Package colorset writes asset catalog color sets.
//
// A color set is a directory named <Name>.colorset holding a Contents.json
// document. Two are produced per brand: AccentColor, which may be left
// undefined so the platform default applies, and LaunchBackground.
package colorset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/brand"
)

// Color set names.
const (
	Accent           = "AccentColor"
	LaunchBackground = "LaunchBackground"
)

// Document is the Contents.json schema of a color set.
type Document struct {
	Colors []Entry `json:"colors"`
	Info   Info    `json:"info"`
}

// Entry is one appearance variant of the color. Color is nil for the
// "system default" sentinel.
type Entry struct {
	Color *Color `json:"color,omitempty"`
	Idiom string `json:"idiom"`
}

// Color is a color value with decimal-string components.
type Color struct {
	ColorSpace string     `json:"color-space"`
	Components Components `json:"components"`
}

// Components are fractions in [0, 1] formatted with three decimals.
type Components struct {
	Alpha string `json:"alpha"`
	Blue  string `json:"blue"`
	Green string `json:"green"`
	Red   string `json:"red"`
}

// Info is the authoring metadata every catalog document carries.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

var xcodeInfo = Info{Author: "xcode", Version: 1}

// NewDocument returns the document for c, or the undefined-color document
// when c is nil.
func NewDocument(c *brand.Fraction) Document {
	e := Entry{Idiom: "universal"}
	if c != nil {
		e.Color = &Color{
			ColorSpace: "srgb",
			Components: Components{
				Alpha: "1.000",
				Blue:  component(c.B),
				Green: component(c.G),
				Red:   component(c.R),
			},
		}
	}
	return Document{Colors: []Entry{e}, Info: xcodeInfo}
}

func component(v float64) string { return fmt.Sprintf("%.3f", v) }

// Marshal encodes d with two-space indentation and a trailing newline.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("colorset: encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Path returns the Contents.json path of the named color set.
func Path(assetsDir, name string) string {
	return filepath.Join(assetsDir, name+".colorset", "Contents.json")
}

// Write writes the document for c as the named color set under assetsDir,
// creating directories as needed, and returns the file path.
func Write(assetsDir, name string, c *brand.Fraction) (string, error) {
	path := Path(assetsDir, name)
	data, err := NewDocument(c).Marshal()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("colorset: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // catalog files are world-readable
		return "", fmt.Errorf("colorset: write %s: %w", name, err)
	}
	brandkit.Logger().Debug("colorset written", "name", name, "defined", c != nil)
	return path, nil
}

// WriteAccent writes AccentColor.colorset. A nil accent writes the
// undefined-color document.
func WriteAccent(assetsDir string, accent *brand.Fraction) (string, error) {
	return Write(assetsDir, Accent, accent)
}

// WriteLaunchBackground writes LaunchBackground.colorset.
func WriteLaunchBackground(assetsDir string, bg brand.Fraction) (string, error) {
	return Write(assetsDir, LaunchBackground, &bg)
}

// Read decodes the named color set under assetsDir.
func Read(assetsDir, name string) (Document, error) {
	data, err := os.ReadFile(Path(assetsDir, name))
	if err != nil {
		return Document{}, fmt.Errorf("colorset: read %s: %w", name, err)
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("colorset: decode %s: %w", name, err)
	}
	return d, nil
}
