package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircle(t *testing.T) {
	c := NewCircle(1, 2, 3)
	assert.True(t, c.Contains(Pt(1, 5)))
	assert.False(t, c.Contains(Pt(4, 5)))
	assert.InDelta(t, 9*math.Pi, c.Area(), Epsilon)
	assert.InDelta(t, 6*math.Pi, c.Circumference(), Epsilon)
	assertPointInDelta(t, Pt(1, 5), c.PointAtAngle(math.Pi/2), Epsilon)
	assert.Equal(t, &Rectangle{X: -2, Y: -1, Width: 6, Height: 6}, c.BoundingRect())
	assert.Equal(t, "Circle{(1, 2), r=3}", c.String())

	t.Run("scale", func(t *testing.T) {
		c := NewCircle(1, 2, 3)
		c.Scale(2, 4, &Point{})
		assert.Equal(t, &Circle{Center: Pt(2, 8), Radius: 9}, c)

		c.Scale(-1, -1, nil)
		assert.Equal(t, &Circle{Center: Pt(2, 8), Radius: 9}, c)
	})

	t.Run("draw", func(t *testing.T) {
		canvas := &recordingCanvas{}
		c.Draw(canvas)
		assert.Equal(t, []string{"NewSubPath", "DrawCircle 1 2 3"}, canvas.calls)
	})
}

func TestLineSegment(t *testing.T) {
	s := NewLineSegment(0, 0, 3, 4)
	assert.Equal(t, 5.0, s.Length())
	assert.Equal(t, Pt(1.5, 2), s.Midpoint())
	assert.InDelta(t, math.Atan2(4, 3), s.Angle(), Epsilon)
	assert.Equal(t, &Rectangle{X: 0, Y: 0, Width: 3, Height: 4}, s.BoundingRect())
	assert.Equal(t, "LineSegment{(0, 0), (3, 4)}", s.String())

	t.Run("distance to point", func(t *testing.T) {
		s := NewLineSegment(0, 0, 10, 0)
		assert.Equal(t, 3.0, s.DistanceToPoint(Pt(5, 3)))
		assert.Equal(t, 5.0, s.DistanceToPoint(Pt(13, 4)))
		assert.Equal(t, 5.0, NewLineSegment(1, 1, 1, 1).DistanceToPoint(Pt(4, 5)))
	})

	t.Run("shared points", func(t *testing.T) {
		p1, p2 := &Point{0, 0}, &Point{1, 0}
		s := NewLineSegmentFromPoints(p1, p2)
		p2.X = 2
		assert.Equal(t, 2.0, s.Length())

		reversed := s.Reverse()
		assert.Same(t, p2, reversed.P1)

		shallow := s.Clone(false).(*LineSegment)
		deep := s.Clone(true).(*LineSegment)
		assert.Same(t, p1, shallow.P1)
		assert.NotSame(t, p1, deep.P1)
		assert.Equal(t, *p1, *deep.P1)
	})

	t.Run("scale around the midpoint", func(t *testing.T) {
		s := NewLineSegment(0, 0, 2, 0)
		s.Scale(2, 2, nil)
		assert.Equal(t, Pt(-1, 0), *s.P1)
		assert.Equal(t, Pt(3, 0), *s.P2)
	})
}

func TestLine(t *testing.T) {
	l := NewLine(Pt(0, 0), Pt(2, 2))
	assertPointInDelta(t, Pt(math.Sqrt2/2, math.Sqrt2/2), l.Direction(), Epsilon)
	assertPointInDelta(t, Pt(2, 2), l.Project(Pt(4, 0)), Epsilon)
	assert.Equal(t, Pt(0, 0), NewLine(Pt(0, 0), Pt(0, 0)).Project(Pt(4, 0)))

	clone := l.Clone(true).(*Line)
	clone.Scale(2, 2, nil)
	assert.Equal(t, Pt(-1, -1), clone.P1)
	assert.Equal(t, Pt(0, 0), l.P1)
}

func TestTriangle(t *testing.T) {
	tri := NewTriangle(Pt(0, 0), Pt(4, 0), Pt(0, 3))
	assert.Equal(t, 6.0, tri.SignedArea())
	assert.True(t, tri.IsCCW())
	assert.Equal(t, -6.0, NewTriangle(Pt(0, 0), Pt(0, 3), Pt(4, 0)).SignedArea())
	assertPointInDelta(t, Pt(4.0/3, 1), tri.Centroid(), Epsilon)
	assert.Equal(t, &Rectangle{X: 0, Y: 0, Width: 4, Height: 3}, tri.BoundingRect())
	assert.Len(t, tri.Segments(), 3)

	canvas := &recordingCanvas{}
	tri.Draw(canvas)
	assert.Equal(t, []string{"MoveTo 0 0", "LineTo 4 0", "LineTo 0 3", "ClosePath"}, canvas.calls)

	tri.Scale(3, 3, nil)
	assert.InDelta(t, 54.0, tri.Area(), Epsilon)
}
