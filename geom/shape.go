package geom

import "fmt"

// ShapeKind tags the closed set of shape variants the intersection router
// knows about.
type ShapeKind int

const (
	LineKind ShapeKind = iota
	LineSegmentKind
	LinearPathKind
	TriangleKind
	RectangleKind
	CircleKind

	shapeKindCount int = iota
)

func (k ShapeKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case LineSegmentKind:
		return "LineSegment"
	case LinearPathKind:
		return "LinearPath"
	case TriangleKind:
		return "Triangle"
	case RectangleKind:
		return "Rectangle"
	case CircleKind:
		return "Circle"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Shape is the capability set every variant supplies.
type Shape interface {
	Kind() ShapeKind
	// Intersect returns the points where the outlines of the two shapes meet,
	// or nil when they don't. An error is returned only for kind pairs the
	// router cannot handle.
	Intersect(other Shape) ([]Point, error)
	Draw(c Canvas)
	// Scale scales the shape by fx and fy around center. A nil center means
	// the shape's own geometric center.
	Scale(fx, fy float64, center *Point)
	// Clone copies the shape. Shapes that hold point pointers share them with
	// the original unless deep is set.
	Clone(deep bool) Shape
}

var (
	_ Shape = (*Line)(nil)
	_ Shape = (*LineSegment)(nil)
	_ Shape = (*LinearPath)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Circle)(nil)
)

// Outline is implemented by shapes whose boundary is a chain of straight
// segments. The router uses it to reduce polyline pairs to segment pairs.
type Outline interface {
	Segments() []*LineSegment
}
