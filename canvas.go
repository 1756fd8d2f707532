package brandkit

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Mode is the pixel mode a canvas is saved in.
type Mode uint8

const (
	// ModeRGBA keeps the alpha channel.
	ModeRGBA Mode = iota
	// ModeRGB is opaque; alpha is discarded on save.
	ModeRGB
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeRGB {
		return "RGB"
	}
	return "RGBA"
}

// Canvas is a mutable raster buffer with an immediate-mode path API.
//
// Pixels are stored as 8-bit straight-alpha NRGBA regardless of mode.
// Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.NRGBA
	mode      Mode
	path      *Path
	color     RGBA
	lineWidth float64
}

// NewCanvas creates a transparent canvas. RGB canvases start opaque black.
func NewCanvas(width, height int, mode Mode) *Canvas {
	c := &Canvas{
		img:       image.NewNRGBA(image.Rect(0, 0, width, height)),
		mode:      mode,
		path:      NewPath(),
		color:     Black,
		lineWidth: 1,
	}
	if mode == ModeRGB {
		c.Clear(Black)
	}
	Logger().Debug("canvas allocated", "width", width, "height", height, "mode", mode)
	return c
}

// NewCanvasFromImage wraps a copy of img as a canvas of the given mode.
func NewCanvasFromImage(img image.Image, mode Mode) *Canvas {
	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy(), ModeRGBA)
	xdraw.Draw(c.img, c.img.Bounds(), img, b.Min, xdraw.Src)
	if mode == ModeRGB {
		return c.Flatten()
	}
	return c
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Mode returns the canvas pixel mode.
func (c *Canvas) Mode() Mode { return c.mode }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Image returns the underlying pixel buffer. Mutating it mutates the canvas.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// At returns the color of a single pixel, or Transparent outside the canvas.
func (c *Canvas) At(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	n := c.img.NRGBAAt(x, y)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Clear replaces every pixel with col.
func (c *Canvas) Clear(col RGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// SetColor sets the color used by Fill and Stroke.
func (c *Canvas) SetColor(col RGBA) { c.color = col }

// SetLineWidth sets the width used by Stroke.
func (c *Canvas) SetLineWidth(w float64) { c.lineWidth = w }

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo adds a line to (x, y).
func (c *Canvas) LineTo(x, y float64) { c.path.LineTo(x, y) }

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() { c.path.Close() }

// DrawRectangle adds an axis-aligned rectangle to the path.
func (c *Canvas) DrawRectangle(x, y, w, h float64) { c.path.Rectangle(x, y, w, h) }

// DrawRoundedRectangle adds a rounded rectangle to the path.
func (c *Canvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}

// DrawCircle adds a circle to the path.
func (c *Canvas) DrawCircle(x, y, r float64) { c.path.Circle(x, y, r) }

// DrawEllipse adds an ellipse to the path.
func (c *Canvas) DrawEllipse(x, y, rx, ry float64) { c.path.Ellipse(x, y, rx, ry) }

// DrawPolygon adds a closed polygon to the path.
func (c *Canvas) DrawPolygon(pts ...Point) { c.path.Polygon(pts...) }

// DrawLine adds a line segment to the path, for use with Stroke.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.path.MoveTo(x1, y1)
	c.path.LineTo(x2, y2)
}

// Fill fills the current path with the current color and clears the path.
func (c *Canvas) Fill() {
	c.fillPath(c.path, c.color)
	c.path.Clear()
}

// Stroke strokes the current path with butt caps at the current line width
// and clears the path.
func (c *Canvas) Stroke() {
	c.fillPath(c.path.strokeQuads(c.lineWidth), c.color)
	c.path.Clear()
}

// StrokeRoundedRectangle draws the outline of a rounded rectangle whose
// outer edge is the given box, with the outline width measured inwards.
func (c *Canvas) StrokeRoundedRectangle(x, y, w, h, r float64) {
	lw := c.lineWidth
	ox, oy := math.Floor(x), math.Floor(y)
	mw := int(math.Ceil(x+w) - ox)
	mh := int(math.Ceil(y+h) - oy)
	if mw <= 0 || mh <= 0 {
		return
	}

	outer := NewPath()
	outer.RoundedRectangle(x-ox, y-oy, w, h, r)
	ring := NewPathMask(mw, mh, outer)

	if w > 2*lw && h > 2*lw {
		inner := NewPath()
		inner.RoundedRectangle(x-ox+lw, y-oy+lw, w-2*lw, h-2*lw, r-lw)
		ring.Subtract(NewPathMask(mw, mh, inner))
	}
	c.fillMask(ring, image.Pt(int(ox), int(oy)), c.color)
}

func (c *Canvas) fillPath(p *Path, col RGBA) {
	cov, r := rasterize(p, c.img.Rect)
	if cov == nil {
		return
	}
	xdraw.DrawMask(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, cov, image.Point{}, xdraw.Over)
}

func (c *Canvas) fillMask(m *Mask, at image.Point, col RGBA) {
	r := m.Bounds().Add(at)
	xdraw.DrawMask(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, m.alpha(), image.Point{}, xdraw.Over)
}

// Clone returns a deep copy of the canvas pixels and mode.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{
		img:       image.NewNRGBA(c.img.Rect),
		mode:      c.mode,
		path:      NewPath(),
		color:     c.color,
		lineWidth: c.lineWidth,
	}
	copy(out.img.Pix, c.img.Pix)
	return out
}
