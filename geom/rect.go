package geom

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned box. Width and height are never negative: any
// mutation that could flip an extent shifts the origin and takes the absolute
// value.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

func NewRectangle(x, y, width, height float64) *Rectangle {
	r := &Rectangle{x, y, width, height}
	r.normalize()
	return r
}

// RectangleFromPoints returns the smallest rectangle containing p1 and p2.
func RectangleFromPoints(p1, p2 Point) *Rectangle {
	return NewRectangle(p1.X, p1.Y, p2.X-p1.X, p2.Y-p1.Y)
}

func (r *Rectangle) normalize() {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
}

func (r *Rectangle) Kind() ShapeKind { return RectangleKind }

func (r *Rectangle) Intersect(other Shape) ([]Point, error) {
	return Intersect(r, other)
}

func (r *Rectangle) Draw(c Canvas) {
	c.NewSubPath()
	c.DrawRectangle(r.X, r.Y, r.Width, r.Height)
}

// Scale scales the rectangle around center, or around its own center when
// center is nil. Negative factors mirror the box; the result is normalized
// again afterwards.
func (r *Rectangle) Scale(fx, fy float64, center *Point) {
	pivot := r.Center()
	if center != nil {
		pivot = *center
	}
	r.X = pivot.X + (r.X-pivot.X)*fx
	r.Y = pivot.Y + (r.Y-pivot.Y)*fy
	r.Width *= fx
	r.Height *= fy
	r.normalize()
}

func (r *Rectangle) Clone(deep bool) Shape {
	clone := *r
	return &clone
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle{x=%g, y=%g, w=%g, h=%g}", r.X, r.Y, r.Width, r.Height)
}

func (r *Rectangle) BoundingRect() *Rectangle {
	return r.Clone(false).(*Rectangle)
}

func (r *Rectangle) Right() float64  { return r.X + r.Width }
func (r *Rectangle) Bottom() float64 { return r.Y + r.Height }

func (r *Rectangle) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

// IsEmpty reports whether the rectangle has zero area.
func (r *Rectangle) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether p lies inside or on the border.
func (r *Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Inflate grows the rectangle by dx on the left and right and dy on the top
// and bottom.
func (r *Rectangle) Inflate(dx, dy float64) {
	r.X -= dx
	r.Y -= dy
	r.Width += 2 * dx
	r.Height += 2 * dy
	r.normalize()
}

// Corners returns the corners in order: top left, top right, bottom right,
// bottom left (for a y-down space).
func (r *Rectangle) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}
}

// Segments returns the four outline edges as freshly allocated segments.
func (r *Rectangle) Segments() []*LineSegment {
	corners := r.Corners()
	segments := make([]*LineSegment, 4)
	for i := range corners {
		next := corners[CircularIndex(i+1, 4)]
		segments[i] = NewLineSegment(corners[i].X, corners[i].Y, next.X, next.Y)
	}
	return segments
}

// Union returns the smallest rectangle containing both. An empty operand is
// the identity: the other operand is returned as a copy.
func (r *Rectangle) Union(o *Rectangle) *Rectangle {
	if o.IsEmpty() {
		return r.Clone(false).(*Rectangle)
	}
	if r.IsEmpty() {
		return o.Clone(false).(*Rectangle)
	}
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return &Rectangle{
		X:      x,
		Y:      y,
		Width:  math.Max(r.Right(), o.Right()) - x,
		Height: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// Intersection returns the overlap of the two rectangles. When either operand
// is empty or they don't overlap, the result is the zero rectangle at the
// origin; check IsEmpty rather than expecting nil.
func (r *Rectangle) Intersection(o *Rectangle) *Rectangle {
	if r.IsEmpty() || o.IsEmpty() {
		return &Rectangle{}
	}
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return &Rectangle{}
	}
	return &Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
