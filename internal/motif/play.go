package motif

import "github.com/gogpu/brandkit"

// PlayTriangle draws the right-pointing play triangle around (cx, cy).
// At scale 1 it spans 70 pixels across and 84 pixels down.
func PlayTriangle(c *brandkit.Canvas, cx, cy, scale float64, col brandkit.RGBA) {
	s := 70 * scale
	px := cx - s*0.15
	fillPolygon(c, col,
		brandkit.Pt(px-s*0.45, cy-s*0.6),
		brandkit.Pt(px-s*0.45, cy+s*0.6),
		brandkit.Pt(px+s*0.55, cy),
	)
}

// RecordingDot draws the opaque recording indicator up and to the right of
// (cx, cy).
func RecordingDot(c *brandkit.Canvas, cx, cy, scale float64, col brandkit.RGBA) {
	r := 12 * scale
	dx := cx + 55*scale
	dy := cy - 45*scale
	fillEllipseBox(c, col.WithAlpha(255), dx-r, dy-r, dx+r, dy+r)
}

// PlayMark draws the play triangle in white with the recording dot, the
// foreground shared by every play-theme asset.
func PlayMark(c *brandkit.Canvas, cx, cy, scale float64, dot brandkit.RGBA) {
	PlayTriangle(c, cx, cy, scale, brandkit.White)
	RecordingDot(c, cx, cy, scale, dot)
}
