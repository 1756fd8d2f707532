package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/brand"
	"github.com/gogpu/brandkit/generate"
)

// allBrands selects every brand in table order.
const allBrands = "all"

const envPrefix = "BRANDKIT"

// settings are the resolved command settings: flags override environment
// variables, which override defaults.
type settings struct {
	Root      string
	VHSSource string
	Brands    string
	Verbose   bool
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		Root:      v.GetString("root"),
		VHSSource: v.GetString("vhs-source"),
		Brands:    v.GetString("brands"),
		Verbose:   v.GetBool("verbose"),
	}
}

func (s settings) table() (*brand.Table, error) {
	if s.Brands == "" {
		return brand.Default(), nil
	}
	return brand.Load(s.Brands)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "brandkit <brand|all>",
		Short: "Generate brand image assets and color sets",
		Long: `brandkit draws every app icon, launch logo, launch background, tvOS layered
icon and top shelf image of a brand and writes them, with the accent and
launch background color sets, into the brand's asset catalog.

Brands: ` + strings.Join(brand.Default().Keys(), ", ") + `, or "all".`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: append(brand.Default().Keys(), allBrands),
		Version:   brandkit.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(v)
			setupLogger(stderr, s.Verbose)

			tbl, err := s.table()
			if err != nil {
				return err
			}
			brands, err := selectBrands(tbl, args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			g := generate.New(
				generate.WithRoot(s.Root),
				generate.WithVHSSource(s.VHSSource),
				generate.WithOutput(stdout),
			)
			if _, err := g.RunAll(cmd.Context(), brands); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Done.")
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.String("root", ".", "directory brand asset catalogs are written under")
	f.String("vhs-source", generate.DefaultVHSSource, "cassette source image for VHS-themed brands, relative to --root")
	f.String("brands", "", "YAML brand table replacing the built-in one")
	f.BoolP("verbose", "v", false, "debug logging on stderr")

	_ = v.BindPFlags(f)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// selectBrands resolves a command-line selector to brands.
func selectBrands(tbl *brand.Table, selector string) ([]brand.Brand, error) {
	if selector == allBrands {
		return tbl.All(), nil
	}
	b, err := tbl.Lookup(selector)
	if err != nil {
		return nil, fmt.Errorf("%w (choose from %s or %s)", err, strings.Join(tbl.Keys(), ", "), allBrands)
	}
	return []brand.Brand{b}, nil
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	brandkit.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
