package geom

import "fmt"

// Canvas fake that records every call as a line of text.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) record(format string, args ...interface{}) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *recordingCanvas) NewSubPath()         { c.record("NewSubPath") }
func (c *recordingCanvas) MoveTo(x, y float64) { c.record("MoveTo %g %g", x, y) }
func (c *recordingCanvas) LineTo(x, y float64) { c.record("LineTo %g %g", x, y) }
func (c *recordingCanvas) ClosePath()          { c.record("ClosePath") }

func (c *recordingCanvas) QuadraticTo(x1, y1, x2, y2 float64) {
	c.record("QuadraticTo %g %g %g %g", x1, y1, x2, y2)
}

func (c *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	c.record("DrawRectangle %g %g %g %g", x, y, w, h)
}

func (c *recordingCanvas) DrawCircle(x, y, r float64) {
	c.record("DrawCircle %g %g %g", x, y, r)
}

var _ Canvas = (*recordingCanvas)(nil)
