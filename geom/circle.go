package geom

import (
	"fmt"
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

func NewCircle(x, y, radius float64) *Circle {
	return &Circle{Center: Point{x, y}, Radius: radius}
}

func (c *Circle) Kind() ShapeKind { return CircleKind }

func (c *Circle) Intersect(other Shape) ([]Point, error) {
	return Intersect(c, other)
}

func (c *Circle) Draw(canvas Canvas) {
	canvas.NewSubPath()
	canvas.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
}

// Scale moves the center like any other point. Circles stay circles, so a
// non-uniform scale resizes the radius by the mean of the two factors.
func (c *Circle) Scale(fx, fy float64, center *Point) {
	pivot := c.Center
	if center != nil {
		pivot = *center
	}
	c.Center.ScaleAbout(fx, fy, pivot)
	c.Radius *= (math.Abs(fx) + math.Abs(fy)) / 2
}

func (c *Circle) Clone(deep bool) Shape {
	clone := *c
	return &clone
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle{%v, r=%g}", c.Center, c.Radius)
}

// Contains reports whether p lies inside or on the circle.
func (c *Circle) Contains(p Point) bool {
	return c.Center.SquaredDistance(p) <= c.Radius*c.Radius
}

func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c *Circle) Circumference() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

func (c *Circle) PointAtAngle(angle float64) Point {
	return c.Center.Polar(c.Radius, angle)
}

func (c *Circle) BoundingRect() *Rectangle {
	r := math.Abs(c.Radius)
	return NewRectangle(c.Center.X-r, c.Center.Y-r, 2*r, 2*r)
}

// InvertPoint maps p through the inversion in c: the image lies on the ray
// from the center through p, at distance radius²/|p - center|. The center
// itself maps to the point at infinity, returned as (+Inf, +Inf). The
// denominator is not replaced by the smallest positive float: that would
// still overflow, and 0·Inf turns the result into NaN.
func (c *Circle) InvertPoint(p Point) Point {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		Logger().Debug("inverting the center of inversion", "center", c.Center)
		return Point{math.Inf(1), math.Inf(1)}
	}
	k := c.Radius * c.Radius / d2
	return Point{c.Center.X + dx*k, c.Center.Y + dy*k}
}
