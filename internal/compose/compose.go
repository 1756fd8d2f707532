// Package compose renders finished assets for each visual theme.
//
// A Composer is bound to one brand. Every method returns a new canvas that
// the caller owns; the mode of the canvas is the mode the asset is saved in.
package compose

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/brand"
	"github.com/gogpu/brandkit/internal/motif"
)

// ErrNoVHSSource is returned by For when a VHS-themed brand is composed
// without a cassette source.
var ErrNoVHSSource = errors.New("compose: VHS theme needs a cassette source")

// Composer renders every asset category for one brand.
type Composer interface {
	AppIcon(size int) *brandkit.Canvas
	LaunchLogo(size int) *brandkit.Canvas
	LaunchBackground(size int) *brandkit.Canvas

	// TVBack, TVMiddle and TVFront are the layers of a tvOS layered icon,
	// composited by the platform at display time.
	TVBack(width, height int) *brandkit.Canvas
	TVMiddle(width, height int) *brandkit.Canvas
	TVFront(width, height int) *brandkit.Canvas

	Shelf(width, height int) *brandkit.Canvas
}

// Options carries inputs shared by the composers of a run.
type Options struct {
	// VHS is the decoded cassette source. Required for the VHS theme only.
	VHS *motif.VHS
}

// For returns the composer for b's theme.
func For(b brand.Brand, opts Options) (Composer, error) {
	base := base{brand: b}
	switch b.Theme {
	case brand.ThemePlay:
		return playComposer{base}, nil
	case brand.ThemeVHS:
		if opts.VHS == nil {
			return nil, fmt.Errorf("%w (brand %s)", ErrNoVHSSource, b.Key)
		}
		return vhsComposer{base: base, vhs: opts.VHS}, nil
	case brand.ThemeCRT:
		return crtComposer{base}, nil
	}
	return nil, fmt.Errorf("%w: %v", brand.ErrUnknownTheme, b.Theme)
}

// Corner radius of app icons and launch logos, as a fraction of the side.
const iconCornerRatio = 0.22

// glowAlpha is the opacity of the top shelf glow before blurring.
const glowAlpha = 30

// base holds the parts every theme renders the same way.
type base struct {
	brand brand.Brand
}

func (b base) gradient(width, height int) *brandkit.Canvas {
	return brandkit.RadialGradient(width, height, b.brand.GradientCenter, b.brand.GradientEdge)
}

// roundedGradient pastes a size x size gradient through a rounded mask onto
// dst at the given offset.
func (b base) roundedGradient(dst *brandkit.Canvas, at image.Point, size int, cornerRatio float64) *brandkit.Mask {
	mask := brandkit.RoundedRectMask(size, size, float64(int(float64(size)*cornerRatio)))
	dst.Paste(b.gradient(size, size).Image(), at, mask)
	return mask
}

func (b base) fill(width, height int, col brandkit.RGBA) *brandkit.Canvas {
	c := brandkit.NewCanvas(width, height, brandkit.ModeRGB)
	c.Clear(col)
	return c
}

func (b base) LaunchBackground(size int) *brandkit.Canvas {
	return b.fill(size, size, b.brand.LaunchBackground.RGBA())
}

func (b base) TVMiddle(width, height int) *brandkit.Canvas {
	return brandkit.NewCanvas(width, height, brandkit.ModeRGBA)
}

// shelfBackground returns the opaque launch-background fill with a soft disc
// of the gradient center color, size pixels across, blurred behind the middle.
func (b base) shelfBackground(width, height, size int) *brandkit.Canvas {
	c := b.fill(width, height, b.brand.LaunchBackground.RGBA())

	glow := brandkit.NewCanvas(size, size, brandkit.ModeRGBA)
	glow.SetColor(b.brand.GradientCenter.WithAlpha(glowAlpha))
	glow.DrawEllipse(float64(size+1)/2, float64(size+1)/2, float64(size+1)/2, float64(size+1)/2)
	glow.Fill()

	blurred := brandkit.Blur(glow.Image(), float64(size/4))
	c.Composite(blurred, image.Pt((width-size)/2, (height-size)/2))
	return c
}
