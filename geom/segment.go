package geom

import (
	"fmt"
	"math"
)

// LineSegment holds its endpoints by pointer. Which constructor is used
// decides ownership: NewLineSegment allocates its own points, while
// NewLineSegmentFromPoints references the caller's, so later changes to those
// points show through.
type LineSegment struct {
	P1 *Point
	P2 *Point
}

func NewLineSegment(x1, y1, x2, y2 float64) *LineSegment {
	return &LineSegment{P1: &Point{x1, y1}, P2: &Point{x2, y2}}
}

func NewLineSegmentFromPoints(p1, p2 *Point) *LineSegment {
	return &LineSegment{P1: p1, P2: p2}
}

func (s *LineSegment) Kind() ShapeKind { return LineSegmentKind }

func (s *LineSegment) Intersect(other Shape) ([]Point, error) {
	return Intersect(s, other)
}

func (s *LineSegment) Draw(c Canvas) {
	c.MoveTo(s.P1.X, s.P1.Y)
	c.LineTo(s.P2.X, s.P2.Y)
}

func (s *LineSegment) Scale(fx, fy float64, center *Point) {
	pivot := s.Midpoint()
	if center != nil {
		pivot = *center
	}
	s.P1.ScaleAbout(fx, fy, pivot)
	s.P2.ScaleAbout(fx, fy, pivot)
}

func (s *LineSegment) Clone(deep bool) Shape {
	if deep {
		return &LineSegment{P1: s.P1.Clone(), P2: s.P2.Clone()}
	}
	return &LineSegment{P1: s.P1, P2: s.P2}
}

func (s *LineSegment) Segments() []*LineSegment {
	return []*LineSegment{s}
}

func (s *LineSegment) String() string {
	return fmt.Sprintf("LineSegment{%v, %v}", *s.P1, *s.P2)
}

func (s *LineSegment) Length() float64 {
	return s.P1.Distance(*s.P2)
}

// Angle of the direction from P1 to P2.
func (s *LineSegment) Angle() float64 {
	return s.P1.AngleTo(*s.P2)
}

func (s *LineSegment) Midpoint() Point {
	return s.P1.Lerp(*s.P2, 0.5)
}

// PointAt returns the point at parameter t, where 0 is P1 and 1 is P2.
func (s *LineSegment) PointAt(t float64) Point {
	return s.P1.Lerp(*s.P2, t)
}

// Reverse returns a segment running the other way over the same points.
func (s *LineSegment) Reverse() *LineSegment {
	return &LineSegment{P1: s.P2, P2: s.P1}
}

func (s *LineSegment) BoundingRect() *Rectangle {
	return RectangleFromPoints(*s.P1, *s.P2)
}

// DistanceToPoint returns the shortest distance from p to any point on the
// segment.
func (s *LineSegment) DistanceToPoint(p Point) float64 {
	d := s.P2.Sub(*s.P1)
	l2 := d.LengthSquared()
	if l2 == 0 {
		return p.Distance(*s.P1)
	}
	t := math.Max(0, math.Min(1, p.Sub(*s.P1).Dot(d)/l2))
	return p.Distance(s.PointAt(t))
}
