package brandkit

import "image"

// Mask represents an alpha mask for compositing operations.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewPathMask rasterizes p into a mask of the given size.
func NewPathMask(width, height int, p *Path) *Mask {
	m := NewMask(width, height)
	cov, r := rasterize(p, m.Bounds())
	if cov == nil {
		return m
	}
	for y := 0; y < r.Dy(); y++ {
		copy(m.data[(r.Min.Y+y)*width+r.Min.X:], cov.Pix[y*cov.Stride:y*cov.Stride+r.Dx()])
	}
	return m
}

// RoundedRectMask returns a width x height mask that is opaque inside a
// rounded rectangle covering the whole mask and transparent in the cut corners.
func RoundedRectMask(width, height int, radius float64) *Mask {
	p := NewPath()
	p.RoundedRectangle(0, 0, float64(width), float64(height), radius)
	return NewPathMask(width, height, p)
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Subtract removes other's coverage from m, saturating at zero.
func (m *Mask) Subtract(other *Mask) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			o := other.At(x, y)
			if o >= m.data[i] {
				m.data[i] = 0
			} else {
				m.data[i] -= o
			}
		}
	}
}

// alpha returns an image.Alpha view sharing the mask data.
func (m *Mask) alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    m.data,
		Stride: m.width,
		Rect:   m.Bounds(),
	}
}
