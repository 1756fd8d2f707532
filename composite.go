package brandkit

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Paste copies src onto the canvas with its top-left corner at at.
// With a mask, every channel (alpha included) is blended as
// src*m + dst*(1-m); without one src replaces the covered pixels.
func (c *Canvas) Paste(src image.Image, at image.Point, mask *Mask) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	if mask == nil {
		xdraw.Draw(c.img, r, src, sb.Min, xdraw.Src)
		return
	}

	r = r.Intersect(mask.Bounds().Add(at)).Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := mask.At(x-at.X, y-at.Y)
			if m == 0 {
				continue
			}
			s := color.NRGBAModel.Convert(src.At(sb.Min.X+x-at.X, sb.Min.Y+y-at.Y)).(color.NRGBA)
			i := c.img.PixOffset(x, y)
			d := c.img.Pix[i : i+4 : i+4]
			d[0] = blend(d[0], s.R, m)
			d[1] = blend(d[1], s.G, m)
			d[2] = blend(d[2], s.B, m)
			d[3] = blend(d[3], s.A, m)
		}
	}
}

// blend mixes dst towards src by m/255, rounding to nearest.
func blend(dst, src, m uint8) uint8 {
	v := uint32(dst)*uint32(255-m) + uint32(src)*uint32(m) + 128
	return uint8((v + v>>8) >> 8)
}

// Composite draws src over the canvas (straight-alpha source-over) with its
// top-left corner at at. Parts outside the canvas are clipped.
func (c *Canvas) Composite(src image.Image, at image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	xdraw.Draw(c.img, r, src, sb.Min, xdraw.Over)
}

// Flatten returns an opaque RGB copy of the canvas. Color channels are kept
// as they are and alpha is forced to 255. The receiver is not modified.
func (c *Canvas) Flatten() *Canvas {
	out := c.Clone()
	out.mode = ModeRGB
	pix := out.img.Pix
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	return out
}
