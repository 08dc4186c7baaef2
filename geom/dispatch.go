package geom

import "github.com/pkg/errors"

// The router is keyed on the unordered pair of shape kinds. Every routine in
// the table receives its shapes in kind order (a.Kind() <= b.Kind()); Intersect
// swaps the operands when needed.

type kindPair struct {
	a, b ShapeKind
}

type intersector func(a, b Shape) []Point

var intersectors = map[kindPair]intersector{
	{LineKind, LineKind}:               lineLine,
	{LineKind, LineSegmentKind}:        lineOutline,
	{LineKind, LinearPathKind}:         lineOutline,
	{LineKind, TriangleKind}:           lineOutline,
	{LineKind, RectangleKind}:          lineOutline,
	{LineKind, CircleKind}:             lineCircle,
	{LineSegmentKind, LineSegmentKind}: outlineOutline,
	{LineSegmentKind, LinearPathKind}:  outlineOutline,
	{LineSegmentKind, TriangleKind}:    outlineOutline,
	{LineSegmentKind, RectangleKind}:   outlineOutline,
	{LineSegmentKind, CircleKind}:      outlineCircle,
	{LinearPathKind, LinearPathKind}:   outlineOutline,
	{LinearPathKind, TriangleKind}:     outlineOutline,
	{LinearPathKind, RectangleKind}:    outlineOutline,
	{LinearPathKind, CircleKind}:       outlineCircle,
	{TriangleKind, TriangleKind}:       outlineOutline,
	{TriangleKind, RectangleKind}:      outlineOutline,
	{TriangleKind, CircleKind}:         outlineCircle,
	{RectangleKind, CircleKind}:        outlineCircle,
	{CircleKind, CircleKind}:           circleCircle,
	// Rectangle against rectangle is an area question, answered by
	// Rectangle.Intersection. There is no entry for it.
}

// Intersect returns the points where the outlines of a and b meet, nil when
// they don't. Kind pairs without a routine return an error wrapping
// ErrUnsupportedShapePair.
func Intersect(a, b Shape) (points []Point, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			points = nil
			err = recoveredErr
		}
	}()

	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	fn, ok := intersectors[kindPair{a.Kind(), b.Kind()}]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedShapePair, "%s and %s", a.Kind(), b.Kind())
	}
	return fn(a, b), nil
}

// Supported reports whether the router has a routine for the two kinds.
func Supported(a, b ShapeKind) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := intersectors[kindPair{a, b}]
	return ok
}

// Checked conversion from the interface to the variant its kind promises.
func as[T Shape](s Shape) T {
	v, ok := s.(T)
	if !ok {
		fatalf("shape of kind %s has unexpected type %T", s.Kind(), s)
	}
	return v
}

func segmentsOf(s Shape) []*LineSegment {
	outline, ok := s.(Outline)
	if !ok {
		fatalf("%s has no straight outline", s.Kind())
	}
	return outline.Segments()
}

func lineLine(a, b Shape) []Point {
	l1, l2 := as[*Line](a), as[*Line](b)
	if p, ok := LineIntersectLine(l1.P1, l1.P2, l2.P1, l2.P2, false, false); ok {
		return []Point{p}
	}
	return nil
}

func lineOutline(a, b Shape) []Point {
	l := as[*Line](a)
	var result []Point
	for _, s := range segmentsOf(b) {
		if p, ok := LineIntersectLine(l.P1, l.P2, *s.P1, *s.P2, false, true); ok {
			result = appendUnique(result, p)
		}
	}
	return result
}

func lineCircle(a, b Shape) []Point {
	l, c := as[*Line](a), as[*Circle](b)
	return LineCircleIntersection(l.P1, l.P2, *c)
}

func outlineOutline(a, b Shape) []Point {
	var result []Point
	segmentsB := segmentsOf(b)
	for _, s1 := range segmentsOf(a) {
		for _, s2 := range segmentsB {
			if p, ok := LineIntersectLine(*s1.P1, *s1.P2, *s2.P1, *s2.P2, true, true); ok {
				result = appendUnique(result, p)
			}
		}
	}
	return result
}

func outlineCircle(a, b Shape) []Point {
	c := as[*Circle](b)
	var result []Point
	for _, s := range segmentsOf(a) {
		for _, p := range SegmentCircleIntersection(*s.P1, *s.P2, *c) {
			result = appendUnique(result, p)
		}
	}
	return result
}

func circleCircle(a, b Shape) []Point {
	return CirclesIntersection(*as[*Circle](a), *as[*Circle](b))
}
