package generate

import (
	"io"
	"path/filepath"
)

// Option configures a Generator during creation.
//
// Example:
//
//	g := generate.New(
//		generate.WithRoot("/src/app"),
//		generate.WithOutput(os.Stdout),
//	)
type Option func(*options)

type options struct {
	root      string
	vhsSource string
	out       io.Writer
}

// DefaultVHSSource is the cassette source path, relative to the root.
var DefaultVHSSource = filepath.Join("scripts", "vhs_source.png")

func defaultOptions() options {
	return options{
		root:      ".",
		vhsSource: DefaultVHSSource,
		out:       io.Discard,
	}
}

// WithRoot sets the directory brand asset directories are resolved against.
// Defaults to the working directory.
func WithRoot(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.root = dir
		}
	}
}

// WithVHSSource sets the cassette source image used by VHS-themed brands.
// A relative path is resolved against the root.
func WithVHSSource(path string) Option {
	return func(o *options) {
		if path != "" {
			o.vhsSource = path
		}
	}
}

// WithOutput sets where the inventory report is written. By default the
// report is discarded.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}
