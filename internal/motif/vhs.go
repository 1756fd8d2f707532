package motif

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/gogpu/brandkit"
)

// ErrEmptySource is returned for a VHS source image with no pixels.
var ErrEmptySource = errors.New("motif: empty VHS source image")

// VHSTriangle is the color of the play mark printed on the cassette label.
var VHSTriangle = brandkit.RGB(220, 40, 30)

// vhsTilt is the rotation of the label triangle, in degrees.
const vhsTilt = 22

// VHS places a pre-rendered cassette illustration on canvases.
// A VHS is read-only after construction and safe for concurrent use.
type VHS struct {
	src *image.NRGBA
}

// LoadVHS decodes the cassette source PNG at path.
func LoadVHS(path string) (*VHS, error) {
	img, err := brandkit.LoadPNG(path)
	if err != nil {
		return nil, fmt.Errorf("motif: load VHS source: %w", err)
	}
	v, err := NewVHS(img)
	if err != nil {
		return nil, fmt.Errorf("motif: %s: %w", path, err)
	}
	brandkit.Logger().Debug("VHS source decoded", "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return v, nil
}

// NewVHS wraps an already decoded cassette image.
func NewVHS(img image.Image) (*VHS, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptySource
	}
	return &VHS{src: imaging.Clone(img)}, nil
}

// Size returns the source image dimensions.
func (v *VHS) Size() (width, height int) {
	b := v.src.Bounds()
	return b.Dx(), b.Dy()
}

// Placement is where a cassette landed on a canvas.
type Placement struct {
	Rect image.Rectangle

	// Triangle geometry in pixel-index coordinates. Size is zero when no
	// triangle was drawn.
	TriangleCenter brandkit.Point
	TriangleSize   float64
}

// Place returns a transparent width x height canvas with the cassette scaled
// to fraction of the shorter side, aspect preserved and centered. With
// triangle set the tilted red play mark is drawn on the label.
func (v *VHS) Place(width, height int, fraction float64, triangle bool) (*brandkit.Canvas, Placement) {
	c := brandkit.NewCanvas(width, height, brandkit.ModeRGBA)

	srcW, srcH := v.Size()
	margin := int(float64(min(width, height)) * (1 - fraction) / 2)
	availW := float64(width - 2*margin)
	availH := float64(height - 2*margin)
	scale := math.Min(availW/float64(srcW), availH/float64(srcH))
	nw, nh := int(float64(srcW)*scale), int(float64(srcH)*scale)
	if nw <= 0 || nh <= 0 {
		return c, Placement{}
	}

	scaled := imaging.Resize(v.src, nw, nh, imaging.Lanczos)
	at := image.Pt((width-nw)/2, (height-nh)/2)
	c.Composite(scaled, at)

	pl := Placement{Rect: image.Rectangle{Min: at, Max: at.Add(image.Pt(nw, nh))}}
	if !triangle {
		return c, pl
	}

	cx := float64(at.X + int(float64(nw)*0.516))
	cy := float64(at.Y + int(float64(nh)*0.422))
	size := float64(int(float64(nh) * 0.055))
	pl.TriangleCenter, pl.TriangleSize = brandkit.Pt(cx, cy), size

	m := brandkit.RotateAbout(vhsTilt*math.Pi/180, cx, cy)
	fillPolygon(c, VHSTriangle,
		m.TransformPoint(brandkit.Pt(cx-size*0.5, cy-size*0.7)),
		m.TransformPoint(brandkit.Pt(cx-size*0.5, cy+size*0.7)),
		m.TransformPoint(brandkit.Pt(cx+size*0.8, cy)),
	)
	return c, pl
}
