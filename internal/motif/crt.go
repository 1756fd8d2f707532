package motif

import (
	"image"

	"github.com/gogpu/brandkit"
)

// CRT palette.
var (
	CRTBackground = brandkit.RGB(14, 31, 21)
	CRTBody       = brandkit.RGB(30, 48, 37)
	CRTScreen     = brandkit.RGB(10, 26, 16)
	CRTPlay       = brandkit.RGB(100, 255, 150)
	CRTRec        = brandkit.RGB(229, 57, 53)
	CRTAntenna    = brandkit.RGB(58, 90, 58)
	CRTLeg        = brandkit.RGB(42, 74, 42)
	CRTKnob       = brandkit.RGB(50, 80, 50)
	CRTScanline   = brandkit.RGB(20, 50, 30)
	CRTBezel      = brandkit.RGB(24, 40, 30)
)

// crtReference is the side of the square reference space the television is
// designed in.
const crtReference = 200

// smallCRTSpan is the largest drawn span that uses the reduced dot and knob
// radii.
const smallCRTSpan = 32

// CRTLayout is the pixel geometry of the CRT television for one canvas size
// and scale. Rectangles cover whole pixels; Max is exclusive.
type CRTLayout struct {
	Scale  float64
	Span   int // int(200 * Scale)
	Origin image.Point

	Body       image.Rectangle
	BodyRadius int

	Bezel       image.Rectangle
	BezelRadius int
	BezelWidth  int

	Screen       image.Rectangle
	ScreenRadius int
	ScanStep     int

	PlayCenter brandkit.Point
	PlaySize   float64

	Rec       image.Point
	RecRadius int

	Knobs      [2]image.Point
	KnobRadius int

	Antennas     [2]Segment
	AntennaWidth int
	TipRadius    int

	Legs     [2]Segment
	LegWidth int

	Feet      [2]Segment
	FootWidth int
}

// NewCRTLayout computes the television geometry at scale s, centered in a
// width x height canvas.
func NewCRTLayout(width, height int, s float64) CRTLayout {
	span := int(crtReference * s)
	ox := (width - span) / 2
	oy := (height - span) / 2
	at := func(x, y float64) image.Point {
		return image.Pt(ox+int(x*s), oy+int(y*s))
	}
	box := func(x1, y1, x2, y2 float64) image.Rectangle {
		return image.Rectangle{Min: at(x1, y1), Max: at(x2, y2).Add(image.Pt(1, 1))}
	}

	l := CRTLayout{
		Scale:  s,
		Span:   span,
		Origin: image.Pt(ox, oy),

		Body:       box(30, 45, 170, 155),
		BodyRadius: int(12 * s),

		BezelRadius: int(10 * s),
		BezelWidth:  max(int(1.5*s), 1),

		Screen:       box(40, 55, 145, 135),
		ScreenRadius: int(8 * s),
		ScanStep:     max(int(4*s), 2),

		PlaySize: 18 * s,

		Rec:       at(155, 60),
		RecRadius: max(int(3*s), 1),

		Knobs:      [2]image.Point{at(155, 110), at(155, 130)},
		KnobRadius: max(int(4*s), 2),

		Antennas: [2]Segment{
			{From: at(70, 45), To: at(50, 18)},
			{From: at(130, 45), To: at(150, 18)},
		},
		AntennaWidth: max(int(2.5*s), 1),
		TipRadius:    max(int(2.5*s), 1),

		Legs: [2]Segment{
			{From: at(55, 155), To: at(45, 175)},
			{From: at(145, 155), To: at(155, 175)},
		},
		LegWidth: max(int(3*s), 1),

		Feet: [2]Segment{
			{From: at(38, 175), To: at(52, 175)},
			{From: at(148, 175), To: at(162, 175)},
		},
		FootWidth: max(int(4*s), 2),
	}

	inset := int(2 * s)
	l.Bezel = image.Rectangle{
		Min: l.Body.Min.Add(image.Pt(inset, inset)),
		Max: l.Body.Max.Sub(image.Pt(inset, inset)),
	}

	sx1, sy1 := l.Screen.Min.X, l.Screen.Min.Y
	sx2, sy2 := l.Screen.Max.X-1, l.Screen.Max.Y-1
	l.PlayCenter = brandkit.Pt(float64(sx1+sx2)/2, float64(sy1+sy2)/2)

	if span <= smallCRTSpan {
		l.RecRadius = max(int(2*s), 1)
		l.KnobRadius = max(int(3*s), 1)
	}
	return l
}

// Scanlines returns the rows that carry a scan line, top to bottom.
func (l CRTLayout) Scanlines() []int {
	var rows []int
	for y := l.Screen.Min.Y; y < l.Screen.Max.Y-1; y += l.ScanStep {
		rows = append(rows, y)
	}
	return rows
}

// DrawCRT draws the television at scale s centered on c. With background set
// the whole canvas is first filled with CRTBackground; without it the
// television is drawn over the existing pixels, which suits transparent
// overlay layers.
func DrawCRT(c *brandkit.Canvas, s float64, background bool) CRTLayout {
	l := NewCRTLayout(c.Width(), c.Height(), s)
	if background {
		c.Clear(CRTBackground)
	}

	fillRoundedBox(c, CRTBody, l.Body, l.BodyRadius)

	if !l.Bezel.Empty() {
		c.SetColor(CRTBezel)
		c.SetLineWidth(float64(l.BezelWidth))
		c.StrokeRoundedRectangle(float64(l.Bezel.Min.X), float64(l.Bezel.Min.Y),
			float64(l.Bezel.Dx()), float64(l.Bezel.Dy()), float64(l.BezelRadius))
	}

	fillRoundedBox(c, CRTScreen, l.Screen, l.ScreenRadius)

	c.SetColor(CRTScanline)
	for _, y := range l.Scanlines() {
		c.DrawRectangle(float64(l.Screen.Min.X), float64(y), float64(l.Screen.Dx()), 1)
	}
	c.Fill()

	ts, p := l.PlaySize, l.PlayCenter
	fillPolygon(c, CRTPlay,
		brandkit.Pt(p.X-ts*0.4, p.Y-ts*0.6),
		brandkit.Pt(p.X-ts*0.4, p.Y+ts*0.6),
		brandkit.Pt(p.X+ts*0.6, p.Y),
	)

	fillDisc(c, CRTRec, l.Rec, l.RecRadius)
	for _, k := range l.Knobs {
		fillDisc(c, CRTKnob, k, l.KnobRadius)
	}

	for _, a := range l.Antennas {
		strokeSegment(c, CRTAntenna, a, l.AntennaWidth)
	}
	for _, a := range l.Antennas {
		fillDisc(c, CRTAntenna, a.To, l.TipRadius)
	}

	for _, leg := range l.Legs {
		strokeSegment(c, CRTLeg, leg, l.LegWidth)
	}
	for _, foot := range l.Feet {
		strokeSegment(c, CRTLeg, foot, l.FootWidth)
	}
	return l
}
