package geom

import (
	"fmt"
	"math"
)

// Point doubles as a 2D vector. Value methods return new points; the pointer
// methods at the bottom of the file mutate in place and are the only way a
// stored point changes.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Clone returns a freshly allocated copy of p.
func (p Point) Clone() *Point {
	return &Point{p.X, p.Y}
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Point) SquaredDistance(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Angle of the vector from the positive x axis, in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleTo returns the direction from p towards o.
func (p Point) AngleTo(o Point) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

// Lerp linearly interpolates between p (t = 0) and o (t = 1).
func (p Point) Lerp(o Point, t float64) Point {
	return Point{p.X + (o.X-p.X)*t, p.Y + (o.Y-p.Y)*t}
}

// Normal returns the vector rotated by 90° counterclockwise. It is not
// normalized.
func (p Point) Normal() Point {
	return Point{-p.Y, p.X}
}

// Normalize returns the unit vector in the direction of p. The zero vector is
// returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Mirror reflects p through center.
func (p Point) Mirror(center Point) Point {
	return Point{2*center.X - p.X, 2*center.Y - p.Y}
}

// Rotate rotates p by angle radians around center.
func (p Point) Rotate(angle float64, center Point) Point {
	s, c := math.Sincos(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		center.X + dx*c - dy*s,
		center.Y + dx*s + dy*c,
	}
}

// Polar returns the point at distance r and angle from p.
func (p Point) Polar(r, angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{p.X + r*c, p.Y + r*s}
}

func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) EqualsWithin(o Point, tolerance float64) bool {
	return math.Abs(p.X-o.X) <= tolerance && math.Abs(p.Y-o.Y) <= tolerance
}

func (p *Point) Set(x, y float64) {
	p.X = x
	p.Y = y
}

func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// ScaleAbout scales the point's offset from center by fx and fy.
func (p *Point) ScaleAbout(fx, fy float64, center Point) {
	p.X = center.X + (p.X-center.X)*fx
	p.Y = center.Y + (p.Y-center.Y)*fy
}
