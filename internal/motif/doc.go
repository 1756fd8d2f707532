// Package motif draws the recurring brand elements: the play triangle, the
// recording dot, the CRT television and the placed VHS cassette.
//
// Geometry is specified in integer pixel indices where a pixel's center sits
// on whole coordinates. The helpers in this package shift such coordinates by
// half a pixel into the continuous space used by brandkit.Canvas, and treat
// bounding boxes as inclusive on both ends.
package motif
