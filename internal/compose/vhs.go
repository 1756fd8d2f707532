package compose

import (
	"image"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/internal/motif"
)

// Fraction of the shorter canvas side the cassette occupies.
const (
	vhsIconFraction  = 0.85
	vhsLogoFraction  = 0.80
	vhsShelfFraction = 0.50
)

// vhsComposer places the cassette illustration over the brand gradient.
type vhsComposer struct {
	base
	vhs *motif.VHS
}

func (v vhsComposer) cassette(width, height int, fraction float64) *brandkit.Canvas {
	c, _ := v.vhs.Place(width, height, fraction, true)
	return c
}

// AppIcon masks the gradient and the cassette together so the cassette never
// spills past the rounded corners. The cut corners flatten to black.
func (v vhsComposer) AppIcon(size int) *brandkit.Canvas {
	layer := brandkit.NewCanvas(size, size, brandkit.ModeRGBA)
	mask := v.roundedGradient(layer, image.Point{}, size, iconCornerRatio)
	layer.Composite(v.cassette(size, size, vhsIconFraction).Image(), image.Point{})

	out := brandkit.NewCanvas(size, size, brandkit.ModeRGBA)
	out.Paste(layer.Image(), image.Point{}, mask)
	return out.Flatten()
}

func (v vhsComposer) LaunchLogo(size int) *brandkit.Canvas {
	return v.cassette(size, size, vhsLogoFraction)
}

func (v vhsComposer) TVBack(width, height int) *brandkit.Canvas {
	return v.gradient(width, height)
}

func (v vhsComposer) TVFront(width, height int) *brandkit.Canvas {
	return v.cassette(width, height, vhsLogoFraction)
}

func (v vhsComposer) Shelf(width, height int) *brandkit.Canvas {
	c := v.shelfBackground(width, height, int(float64(height)*1.2))
	c.Composite(v.cassette(width, height, vhsShelfFraction).Image(), image.Point{})
	return c
}
