package geom

import "github.com/fogleman/gg"

// Canvas is the drawing surface shapes render onto. Only path construction is
// required; stroking and filling stay with the caller. *gg.Context satisfies
// it directly.
type Canvas interface {
	NewSubPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
}

var _ Canvas = (*gg.Context)(nil)
