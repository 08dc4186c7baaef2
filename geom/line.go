package geom

import "fmt"

// Line is the infinite line through P1 and P2.
type Line struct {
	P1 Point
	P2 Point
}

func NewLine(p1, p2 Point) *Line {
	return &Line{P1: p1, P2: p2}
}

func (l *Line) Kind() ShapeKind { return LineKind }

func (l *Line) Intersect(other Shape) ([]Point, error) {
	return Intersect(l, other)
}

// Draw renders the defining stretch between P1 and P2; the canvas has no
// notion of an unbounded line.
func (l *Line) Draw(c Canvas) {
	c.MoveTo(l.P1.X, l.P1.Y)
	c.LineTo(l.P2.X, l.P2.Y)
}

func (l *Line) Scale(fx, fy float64, center *Point) {
	pivot := l.P1.Lerp(l.P2, 0.5)
	if center != nil {
		pivot = *center
	}
	l.P1.ScaleAbout(fx, fy, pivot)
	l.P2.ScaleAbout(fx, fy, pivot)
}

func (l *Line) Clone(deep bool) Shape {
	clone := *l
	return &clone
}

func (l *Line) String() string {
	return fmt.Sprintf("Line{%v, %v}", l.P1, l.P2)
}

// Direction returns the unit vector from P1 towards P2.
func (l *Line) Direction() Point {
	return l.P2.Sub(l.P1).Normalize()
}

// Project returns the point on the line closest to p.
func (l *Line) Project(p Point) Point {
	d := l.P2.Sub(l.P1)
	l2 := d.LengthSquared()
	if l2 == 0 {
		return l.P1
	}
	return l.P1.Add(d.Mul(p.Sub(l.P1).Dot(d) / l2))
}
