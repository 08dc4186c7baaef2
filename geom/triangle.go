package geom

import (
	"fmt"
	"math"
)

type Triangle struct {
	A, B, C Point
}

func NewTriangle(a, b, c Point) *Triangle {
	return &Triangle{a, b, c}
}

func (t *Triangle) Kind() ShapeKind { return TriangleKind }

func (t *Triangle) Intersect(other Shape) ([]Point, error) {
	return Intersect(t, other)
}

func (t *Triangle) Draw(c Canvas) {
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()
}

// Scale scales around center, or around the centroid when center is nil.
func (t *Triangle) Scale(fx, fy float64, center *Point) {
	pivot := t.Centroid()
	if center != nil {
		pivot = *center
	}
	t.A.ScaleAbout(fx, fy, pivot)
	t.B.ScaleAbout(fx, fy, pivot)
	t.C.ScaleAbout(fx, fy, pivot)
}

func (t *Triangle) Clone(deep bool) Shape {
	clone := *t
	return &clone
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}

func (t *Triangle) Segments() []*LineSegment {
	return []*LineSegment{
		NewLineSegment(t.A.X, t.A.Y, t.B.X, t.B.Y),
		NewLineSegment(t.B.X, t.B.Y, t.C.X, t.C.Y),
		NewLineSegment(t.C.X, t.C.Y, t.A.X, t.A.Y),
	}
}

func (t *Triangle) BoundingRect() *Rectangle {
	path := &LinearPath{Points: []*Point{&t.A, &t.B, &t.C}}
	return path.BoundingRect()
}

func (t *Triangle) Centroid() Point {
	return Point{(t.A.X + t.B.X + t.C.X) / 3, (t.A.Y + t.B.Y + t.C.Y) / 3}
}

// SignedArea is positive for counterclockwise triangles (in a y-up space).
func (t *Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

// Circumcircle returns the circle through all three corners. It fails for
// collinear or coincident corners and for corners at infinity, none of which
// have a finite circumcircle.
func (t *Triangle) Circumcircle() (Circle, bool) {
	b := t.B.Sub(t.A)
	c := t.C.Sub(t.A)
	d := 2 * b.Cross(c)
	if math.Abs(d) < Epsilon*Epsilon || math.IsNaN(d) || math.IsInf(d, 0) {
		return Circle{}, false
	}
	b2 := b.LengthSquared()
	c2 := c.LengthSquared()
	ux := (c.Y*b2 - b.Y*c2) / d
	uy := (b.X*c2 - c.X*b2) / d
	circle := Circle{
		Center: Point{t.A.X + ux, t.A.Y + uy},
		Radius: math.Hypot(ux, uy),
	}
	if math.IsNaN(circle.Radius) || math.IsInf(circle.Radius, 0) {
		return Circle{}, false
	}
	return circle, true
}
