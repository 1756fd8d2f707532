package brandkit

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// rasterize computes anti-aliased coverage of p clipped to clip.
// The returned mask is sized to the returned rectangle and has its origin at
// (0, 0); a nil mask means nothing is covered.
//
// Subpaths accumulate with the nonzero rule, so overlapping shapes of the
// same orientation union rather than cancel.
func rasterize(p *Path, clip image.Rectangle) (*image.Alpha, image.Rectangle) {
	if p.IsEmpty() {
		return nil, image.Rectangle{}
	}
	minX, minY, maxX, maxY := p.Bounds()
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(clip)
	if r.Empty() {
		return nil, image.Rectangle{}
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(q Point) (float32, float32) {
		return float32(q.X - ox), float32(q.Y - oy)
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			z.MoveTo(pt(e.Point))
		case LineTo:
			z.LineTo(pt(e.Point))
		case CubicTo:
			bx, by := pt(e.Control1)
			cx, cy := pt(e.Control2)
			dx, dy := pt(e.Point)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case Close:
			z.ClosePath()
		}
	}

	cov := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})
	return cov, r
}
