// Package brandkit provides the raster drawing core used to generate
// branded image assets.
//
// # Overview
//
// brandkit is a small immediate-mode canvas: build a path, set a color,
// fill it. Canvases are plain 8-bit NRGBA buffers so that
// every asset is bit-reproducible from its inputs.
//
// # Quick Start
//
//	import "github.com/gogpu/brandkit"
//
//	c := brandkit.NewCanvas(512, 512, brandkit.ModeRGBA)
//	c.SetColor(brandkit.RGB(233, 30, 99))
//	c.DrawCircle(256, 256, 100)
//	c.Fill()
//
//	if err := c.SavePNG("output.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized into:
//   - Drawing: Canvas, Path, Point, Matrix, RGBA
//   - Compositing: Mask, Paste, Composite, Flatten, Blur
//   - Fills: RadialGradient
//   - I/O: LoadPNG, EncodePNG, SavePNG
//
// Asset-specific drawing lives in internal/motif and internal/compose; the
// generate package ties them to the asset catalog layout.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive angles rotate clockwise on screen
package brandkit

// Version is the current version of the library.
const Version = "0.3.0"
