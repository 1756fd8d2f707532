package compose

import (
	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/internal/motif"
)

// crtShelfScale shrinks the television on top shelf images.
const crtShelfScale = 0.6

// crtComposer draws the CRT television. Its backgrounds are the fixed CRT
// palette, not the brand gradient.
type crtComposer struct {
	base
}

func crtScale(width, height int) float64 {
	return float64(min(width, height)) / 200
}

func (crtComposer) AppIcon(size int) *brandkit.Canvas {
	c := brandkit.NewCanvas(size, size, brandkit.ModeRGB)
	motif.DrawCRT(c, crtScale(size, size), true)
	return c
}

func (crtComposer) LaunchLogo(size int) *brandkit.Canvas {
	c := brandkit.NewCanvas(size, size, brandkit.ModeRGBA)
	motif.DrawCRT(c, crtScale(size, size), false)
	return c
}

func (r crtComposer) LaunchBackground(size int) *brandkit.Canvas {
	return r.fill(size, size, motif.CRTBackground)
}

func (r crtComposer) TVBack(width, height int) *brandkit.Canvas {
	return r.fill(width, height, motif.CRTBackground)
}

func (crtComposer) TVFront(width, height int) *brandkit.Canvas {
	c := brandkit.NewCanvas(width, height, brandkit.ModeRGBA)
	motif.DrawCRT(c, crtScale(width, height), false)
	return c
}

// Shelf draws the television with its background, which covers the launch
// background fill entirely.
func (r crtComposer) Shelf(width, height int) *brandkit.Canvas {
	c := r.fill(width, height, r.brand.LaunchBackground.RGBA())
	motif.DrawCRT(c, crtScale(width, height)*crtShelfScale, true)
	return c
}
