package brandkit

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// maxDirectBlurSigma bounds the kernel size of a direct Gaussian pass.
// Larger blurs run on a proportionally downscaled copy.
const maxDirectBlurSigma = 16.0

// Blur returns a Gaussian-blurred copy of src with standard deviation radius.
//
// Glows use radii of a quarter of their size, which on top-shelf canvases
// reaches hundreds of pixels; those are blurred at reduced resolution and
// scaled back with linear filtering. The result stays deterministic.
func Blur(src image.Image, radius float64) *image.NRGBA {
	if radius <= 0 {
		return imaging.Clone(src)
	}
	if radius <= maxDirectBlurSigma {
		return imaging.Blur(src, radius)
	}

	b := src.Bounds()
	factor := math.Ceil(radius / maxDirectBlurSigma)
	sw := max(int(float64(b.Dx())/factor), 1)
	sh := max(int(float64(b.Dy())/factor), 1)

	small := imaging.Resize(src, sw, sh, imaging.Linear)
	small = imaging.Blur(small, radius/factor)
	return imaging.Resize(small, b.Dx(), b.Dy(), imaging.Linear)
}
