package compose

import (
	"image"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/internal/motif"
)

// playComposer draws the white play triangle and recording dot over the
// brand gradient.
type playComposer struct {
	base
}

func (p playComposer) mark(c *brandkit.Canvas, scale float64) {
	motif.PlayMark(c, float64(c.Width())/2, float64(c.Height())/2, scale, p.brand.RecordingDot)
}

func (p playComposer) AppIcon(size int) *brandkit.Canvas {
	c := p.fill(size, size, p.brand.GradientEdge)
	p.roundedGradient(c, image.Point{}, size, iconCornerRatio)
	p.mark(c, float64(size)/1024*2.5)
	return c
}

func (p playComposer) LaunchLogo(size int) *brandkit.Canvas {
	c := brandkit.NewCanvas(size, size, brandkit.ModeRGBA)
	p.roundedGradient(c, image.Point{}, size, iconCornerRatio)
	p.mark(c, float64(size)/400)
	return c
}

func (p playComposer) TVBack(width, height int) *brandkit.Canvas {
	return p.gradient(width, height)
}

func (p playComposer) TVFront(width, height int) *brandkit.Canvas {
	c := brandkit.NewCanvas(width, height, brandkit.ModeRGBA)
	p.mark(c, float64(width)/400)
	return c
}

// Shelf centers a small rounded icon, 60% of the height, on the glow.
func (p playComposer) Shelf(width, height int) *brandkit.Canvas {
	iconH := int(float64(height) * 0.6)
	c := p.shelfBackground(width, height, int(float64(iconH)*1.4))
	p.roundedGradient(c, image.Pt((width-iconH)/2, (height-iconH)/2), iconH, 0.15)
	p.mark(c, float64(iconH)/400)
	return c
}
