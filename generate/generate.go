// Package generate writes the complete asset catalog contents for brands.
//
// A run renders every catalog entry with the brand's theme composer, saves it
// as PNG, writes the color sets and reports each file as it goes. Any error
// aborts the run; re-running after fixing the cause rewrites every file with
// identical bytes.
package generate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/brand"
	"github.com/gogpu/brandkit/colorset"
	"github.com/gogpu/brandkit/internal/catalog"
	"github.com/gogpu/brandkit/internal/compose"
	"github.com/gogpu/brandkit/internal/motif"
)

const bannerWidth = 50

// File describes one written image.
type File struct {
	Path   string
	Width  int
	Height int
	Mode   brandkit.Mode
	Bytes  int64
}

// Result lists what a brand run wrote.
type Result struct {
	Brand     string
	AssetsDir string
	Files     []File
	Colorsets []string
}

// Generator renders brand assets to disk. The cassette source is decoded at
// most once per Generator and shared by every run.
type Generator struct {
	opts     options
	title    lipgloss.Style
	vhs      func() (*motif.VHS, error)
	composer func(brand.Brand, compose.Options) (compose.Composer, error)
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator{
		opts:     o,
		title:    lipgloss.NewRenderer(o.out).NewStyle().Bold(true),
		composer: compose.For,
	}
	g.vhs = sync.OnceValues(func() (*motif.VHS, error) {
		return motif.LoadVHS(g.vhsPath())
	})
	return g
}

func (g *Generator) vhsPath() string {
	if filepath.IsAbs(g.opts.vhsSource) {
		return g.opts.vhsSource
	}
	return filepath.Join(g.opts.root, g.opts.vhsSource)
}

// RunAll generates brands in order and stops at the first failure; brands
// after the failing one are not generated.
func (g *Generator) RunAll(ctx context.Context, brands []brand.Brand) ([]*Result, error) {
	results := make([]*Result, 0, len(brands))
	for _, b := range brands {
		res, err := g.Run(ctx, b)
		if err != nil {
			return results, fmt.Errorf("generate %s: %w", b.Key, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Run generates every asset for b.
func (g *Generator) Run(ctx context.Context, b brand.Brand) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := brandkit.Logger().With("brand", b.Key)

	var copts compose.Options
	if b.Theme == brand.ThemeVHS {
		v, err := g.vhs()
		if err != nil {
			return nil, err
		}
		copts.VHS = v
	}
	comp, err := g.composer(b, copts)
	if err != nil {
		return nil, err
	}

	r := &run{
		ctx:   ctx,
		log:   log,
		out:   g.opts.out,
		comp:  comp,
		icons: make(map[int]*brandkit.Canvas),
		res: &Result{
			Brand:     b.Key,
			AssetsDir: filepath.Join(g.opts.root, b.AssetsDir),
		},
	}

	log.Info("generating assets", "theme", b.Theme, "dir", r.res.AssetsDir)
	g.banner(b)

	for i, s := range catalog.Sections() {
		if i > 0 {
			r.printf("\n")
		}
		r.printf("%s:\n", s.Title)
		if err := r.section(s); err != nil {
			return nil, err
		}
	}

	r.printf("\nColorsets:\n")
	if err := r.colorsets(b); err != nil {
		return nil, err
	}
	r.printf("\n")

	log.Info("assets generated", "files", len(r.res.Files), "colorsets", len(r.res.Colorsets))
	return r.res, nil
}

func (g *Generator) banner(b brand.Brand) {
	rule := strings.Repeat("=", bannerWidth)
	title := strings.TrimSpace(fmt.Sprintf("%s Assets %s", b.Name, b.Theme.Label()))
	fmt.Fprintf(g.opts.out, "\n%s\n  %s\n%s\n\n", rule, g.title.Render(title), rule)
}

// run is the state of one brand's generation.
type run struct {
	ctx  context.Context
	log  *slog.Logger
	out  io.Writer
	comp compose.Composer
	res  *Result

	// icons memoises app icons by pixel size; several entries share a size.
	icons map[int]*brandkit.Canvas
}

func (r *run) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *run) section(s catalog.Section) error {
	dir := filepath.Join(r.res.AssetsDir, s.Dir)
	for _, e := range s.Entries {
		if err := r.ctx.Err(); err != nil {
			r.log.Warn("generation cancelled", "next", e.File)
			return err
		}

		var err error
		switch s.Kind {
		case catalog.KindIcon:
			err = r.save(r.icon(e.Width), filepath.Join(dir, e.File), true)
		case catalog.KindLaunchLogo:
			err = r.save(r.comp.LaunchLogo(e.Width), filepath.Join(dir, e.File), false)
		case catalog.KindLaunchBackground:
			err = r.save(r.comp.LaunchBackground(e.Width), filepath.Join(dir, e.File), true)
		case catalog.KindLayeredIcon:
			err = r.layers(s.Dir, e)
		case catalog.KindTopShelf:
			err = r.save(r.comp.Shelf(e.Width, e.Height), filepath.Join(dir, e.File), true)
		default:
			err = fmt.Errorf("generate: unknown section kind %v", s.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *run) icon(size int) *brandkit.Canvas {
	if c, ok := r.icons[size]; ok {
		r.log.Debug("icon cache hit", "size", size)
		return c
	}
	c := r.comp.AppIcon(size)
	r.icons[size] = c
	return c
}

func (r *run) layers(stack string, e catalog.Entry) error {
	for _, l := range catalog.Layers {
		path := filepath.Join(r.res.AssetsDir, l.Dir(stack), e.File)
		var err error
		switch l {
		case catalog.LayerBack:
			err = r.save(r.comp.TVBack(e.Width, e.Height), path, true)
		case catalog.LayerMiddle:
			err = r.save(r.comp.TVMiddle(e.Width, e.Height), path, false)
		case catalog.LayerFront:
			err = r.save(r.comp.TVFront(e.Width, e.Height), path, false)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// save writes c to path as PNG, converting to opaque RGB first when forceRGB
// is set, and reports the file.
func (r *run) save(c *brandkit.Canvas, path string, forceRGB bool) error {
	if forceRGB && c.Mode() != brandkit.ModeRGB {
		c = c.Flatten()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("generate: create directory: %w", err)
	}
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("generate: %s: %w", filepath.Base(path), err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	f := File{Path: path, Width: c.Width(), Height: c.Height(), Mode: c.Mode(), Bytes: info.Size()}
	r.res.Files = append(r.res.Files, f)
	r.printf("  %s (%dx%d, %s) — %dKB\n", filepath.Base(path), f.Width, f.Height, f.Mode, f.Bytes/1024)
	return nil
}

func (r *run) colorsets(b brand.Brand) error {
	for _, write := range []func() (string, error){
		func() (string, error) { return colorset.WriteAccent(r.res.AssetsDir, b.Accent) },
		func() (string, error) { return colorset.WriteLaunchBackground(r.res.AssetsDir, b.LaunchBackground) },
	} {
		path, err := write()
		if err != nil {
			return err
		}
		r.res.Colorsets = append(r.res.Colorsets, path)
		rel, err := filepath.Rel(r.res.AssetsDir, path)
		if err != nil {
			rel = path
		}
		r.printf("  %s\n", rel)
	}
	return nil
}
