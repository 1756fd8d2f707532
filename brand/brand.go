// Package brand defines the per-brand visual parameters that drive asset
// generation, and the built-in brand table.
package brand

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/brandkit"
)

// Configuration errors.
var (
	// ErrUnknownBrand is returned by Lookup for keys not in the table.
	ErrUnknownBrand = errors.New("brand: unknown brand")

	// ErrUnknownTheme is returned for theme names other than play, vhs and crt.
	ErrUnknownTheme = errors.New("brand: unknown theme")

	// ErrInvalidColor is returned for malformed or out-of-range colors.
	ErrInvalidColor = errors.New("brand: invalid color")

	// ErrInvalidTable is returned when a brand table fails validation.
	ErrInvalidTable = errors.New("brand: invalid table")
)

//go:embed brands.yaml
var builtin []byte

// Fraction is an sRGB color with components in [0, 1], as stored in
// asset catalog colorsets.
type Fraction struct {
	R, G, B float64
}

// RGBA converts f to an opaque 8-bit color, truncating each channel.
func (f Fraction) RGBA() brandkit.RGBA {
	return brandkit.FromFractions(f.R, f.G, f.B)
}

// Brand is the immutable visual configuration of one product.
type Brand struct {
	Key       string
	Name      string
	AssetsDir string
	Theme     Theme

	GradientCenter brandkit.RGBA
	GradientEdge   brandkit.RGBA
	RecordingDot   brandkit.RGBA

	// Accent is nil when the brand uses the platform default accent color.
	Accent           *Fraction
	LaunchBackground Fraction
}

// clone returns a copy of b that shares no memory with it.
func (b Brand) clone() Brand {
	if b.Accent != nil {
		a := *b.Accent
		b.Accent = &a
	}
	return b
}

// Table is an ordered, read-only set of brands.
type Table struct {
	brands []Brand
	index  map[string]int
}

// Keys returns the brand keys in table order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.brands))
	for i, b := range t.brands {
		keys[i] = b.Key
	}
	return keys
}

// Len returns the number of brands.
func (t *Table) Len() int { return len(t.brands) }

// Lookup returns the brand with the given key.
func (t *Table) Lookup(key string) (Brand, error) {
	i, ok := t.index[key]
	if !ok {
		return Brand{}, fmt.Errorf("%w: %q", ErrUnknownBrand, key)
	}
	return t.brands[i].clone(), nil
}

// All returns every brand in table order.
func (t *Table) All() []Brand {
	out := make([]Brand, len(t.brands))
	for i, b := range t.brands {
		out[i] = b.clone()
	}
	return out
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("brand: built-in table: %v", err))
	}
	return t
})

// Default returns the built-in brand table.
func Default() *Table {
	return defaultTable()
}

// Load reads a brand table from a YAML file. The file replaces the built-in
// table; it does not extend it.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("brand: read table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	brandkit.Logger().Debug("brand table loaded", "path", path, "brands", t.Len())
	return t, nil
}

// Parse decodes and validates a YAML brand table. Unknown keys are rejected.
func Parse(data []byte) (*Table, error) {
	var doc tableDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("brand: decode table: %w", err)
	}

	t := &Table{index: make(map[string]int, len(doc.Brands))}
	for i, d := range doc.Brands {
		b, err := d.brand()
		if err != nil {
			return nil, fmt.Errorf("brand #%d: %w", i+1, err)
		}
		if _, dup := t.index[b.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidTable, b.Key)
		}
		t.index[b.Key] = len(t.brands)
		t.brands = append(t.brands, b)
	}
	if len(t.brands) == 0 {
		return nil, fmt.Errorf("%w: no brands defined", ErrInvalidTable)
	}
	return t, nil
}

type tableDoc struct {
	Brands []brandDoc `yaml:"brands"`
}

type brandDoc struct {
	Key              string       `yaml:"key"`
	Name             string       `yaml:"name"`
	AssetsDir        string       `yaml:"assets_dir"`
	Theme            *Theme       `yaml:"theme"`
	GradientCenter   rgb8         `yaml:"gradient_center"`
	GradientEdge     rgb8         `yaml:"gradient_edge"`
	RecordingDot     rgb8         `yaml:"recording_dot"`
	Accent           *fractionDoc `yaml:"accent"`
	LaunchBackground fractionDoc  `yaml:"launch_background"`
}

func (d brandDoc) brand() (Brand, error) {
	switch {
	case d.Key == "":
		return Brand{}, fmt.Errorf("%w: missing key", ErrInvalidTable)
	case d.Key == "all":
		return Brand{}, fmt.Errorf("%w: key %q is reserved", ErrInvalidTable, d.Key)
	case d.Name == "":
		return Brand{}, fmt.Errorf("%w: %s: missing name", ErrInvalidTable, d.Key)
	case d.AssetsDir == "" || filepath.IsAbs(d.AssetsDir):
		return Brand{}, fmt.Errorf("%w: %s: assets_dir must be a relative path", ErrInvalidTable, d.Key)
	case d.Theme == nil:
		return Brand{}, fmt.Errorf("%w: %s: missing theme", ErrInvalidTable, d.Key)
	}
	for _, c := range []struct {
		name string
		v    rgb8
	}{
		{"gradient_center", d.GradientCenter},
		{"gradient_edge", d.GradientEdge},
		{"recording_dot", d.RecordingDot},
	} {
		if !c.v.set {
			return Brand{}, fmt.Errorf("%w: %s: missing %s", ErrInvalidColor, d.Key, c.name)
		}
	}
	if !d.LaunchBackground.set {
		return Brand{}, fmt.Errorf("%w: %s: missing launch_background", ErrInvalidColor, d.Key)
	}

	b := Brand{
		Key:              d.Key,
		Name:             d.Name,
		AssetsDir:        filepath.FromSlash(d.AssetsDir),
		Theme:            *d.Theme,
		GradientCenter:   d.GradientCenter.c,
		GradientEdge:     d.GradientEdge.c,
		RecordingDot:     d.RecordingDot.c,
		LaunchBackground: d.LaunchBackground.f,
	}
	if d.Accent != nil {
		a := d.Accent.f
		b.Accent = &a
	}
	return b, nil
}

// rgb8 decodes an opaque 8-bit color from [r, g, b] or a hex string.
type rgb8 struct {
	c   brandkit.RGBA
	set bool
}

func (v *rgb8) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		c, err := brandkit.ParseHex(n.Value)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidColor, n.Line, err)
		}
		v.c, v.set = c.WithAlpha(255), true
		return nil
	}

	var comps []int
	if err := n.Decode(&comps); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrInvalidColor, n.Line, err)
	}
	if len(comps) != 3 {
		return fmt.Errorf("%w: line %d: want 3 components, got %d", ErrInvalidColor, n.Line, len(comps))
	}
	for _, x := range comps {
		if x < 0 || x > 255 {
			return fmt.Errorf("%w: line %d: component %d outside [0, 255]", ErrInvalidColor, n.Line, x)
		}
	}
	// #nosec G115 -- components validated above
	v.c, v.set = brandkit.RGB(uint8(comps[0]), uint8(comps[1]), uint8(comps[2])), true
	return nil
}

// fractionDoc decodes a Fraction from [r, g, b].
type fractionDoc struct {
	f   Fraction
	set bool
}

func (v *fractionDoc) UnmarshalYAML(n *yaml.Node) error {
	var comps []float64
	if err := n.Decode(&comps); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrInvalidColor, n.Line, err)
	}
	if len(comps) != 3 {
		return fmt.Errorf("%w: line %d: want 3 components, got %d", ErrInvalidColor, n.Line, len(comps))
	}
	for _, x := range comps {
		if x < 0 || x > 1 {
			return fmt.Errorf("%w: line %d: component %v outside [0, 1]", ErrInvalidColor, n.Line, x)
		}
	}
	v.f, v.set = Fraction{R: comps[0], G: comps[1], B: comps[2]}, true
	return nil
}
