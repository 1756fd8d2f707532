package brandkit

import "math"

// gradientEasing is the exponent applied to the normalised distance so the
// falloff stays soft near the center.
const gradientEasing = 0.8

// RadialGradient returns an opaque canvas filled with a radial transition
// from center at the canvas midpoint to edge at the corners.
//
// The distance of every pixel from (w/2, h/2) is normalised by the
// half-diagonal, clamped to 1 and eased; each channel is interpolated and
// truncated toward zero. The midpoint pixel is exactly center and the
// top-left pixel is exactly edge.
func RadialGradient(width, height int, center, edge RGBA) *Canvas {
	c := NewCanvas(width, height, ModeRGB)
	cx, cy := float64(width)/2, float64(height)/2
	maxDist := math.Hypot(cx, cy)
	center.A = 255

	pix := c.img.Pix
	for y := 0; y < height; y++ {
		dy := float64(y) - cy
		row := y * c.img.Stride
		for x := 0; x < width; x++ {
			dx := float64(x) - cx
			ratio := 0.0
			if maxDist > 0 {
				ratio = math.Pow(math.Min(math.Sqrt(dx*dx+dy*dy)/maxDist, 1), gradientEasing)
			}
			col := center.Lerp(edge, ratio)
			i := row + x*4
			pix[i+0] = col.R
			pix[i+1] = col.G
			pix[i+2] = col.B
			pix[i+3] = 255
		}
	}
	return c
}
