package motif

import (
	"image"

	"github.com/gogpu/brandkit"
)

// fillPolygon fills a polygon given in pixel-index coordinates.
func fillPolygon(c *brandkit.Canvas, col brandkit.RGBA, pts ...brandkit.Point) {
	shifted := make([]brandkit.Point, len(pts))
	for i, p := range pts {
		shifted[i] = p.Add(brandkit.Pt(0.5, 0.5))
	}
	c.SetColor(col)
	c.DrawPolygon(shifted...)
	c.Fill()
}

// fillEllipseBox fills the ellipse inscribed in the inclusive box
// [x0, x1] x [y0, y1].
func fillEllipseBox(c *brandkit.Canvas, col brandkit.RGBA, x0, y0, x1, y1 float64) {
	c.SetColor(col)
	c.DrawEllipse((x0+x1+1)/2, (y0+y1+1)/2, (x1-x0+1)/2, (y1-y0+1)/2)
	c.Fill()
}

// fillDisc fills a circle of radius r around the pixel (x, y).
func fillDisc(c *brandkit.Canvas, col brandkit.RGBA, at image.Point, r int) {
	fillEllipseBox(c, col, float64(at.X-r), float64(at.Y-r), float64(at.X+r), float64(at.Y+r))
}

// fillRoundedBox fills the rounded rectangle covering the pixels of box.
func fillRoundedBox(c *brandkit.Canvas, col brandkit.RGBA, box image.Rectangle, r int) {
	c.SetColor(col)
	c.DrawRoundedRectangle(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()), float64(r))
	c.Fill()
}

// strokeSegment draws a butt-capped line between two pixel centers.
func strokeSegment(c *brandkit.Canvas, col brandkit.RGBA, seg Segment, width int) {
	c.SetColor(col)
	c.SetLineWidth(float64(width))
	c.DrawLine(float64(seg.From.X)+0.5, float64(seg.From.Y)+0.5, float64(seg.To.X)+0.5, float64(seg.To.Y)+0.5)
	c.Stroke()
}

// Segment is a line between two pixel indices.
type Segment struct {
	From, To image.Point
}
