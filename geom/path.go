package geom

import (
	"fmt"
	"math"
	"strings"
)

// LinearPath is an ordered polyline. Segment lengths are cached alongside the
// points; distances[i] is the length from Points[i] to Points[i+1]. The path
// itself is open. Closed traversal is requested per call with a loop flag,
// which adds the segment from the last point back to the first.
//
// Consecutive points are never closer than Epsilon, so no stored segment is
// degenerate.
type LinearPath struct {
	Points []*Point

	distances   []float64
	totalLength float64
	// Set when points were moved in place. Cached lengths are recomputed on
	// next access.
	dirty bool
}

// NewLinearPath builds a path from copies of the given points, skipping any
// that would create a degenerate segment.
func NewLinearPath(points ...Point) *LinearPath {
	path := &LinearPath{}
	for i := range points {
		path.AddPoint(&points[i], true)
	}
	return path
}

// AddPoint appends p. With clone set the path stores its own copy, otherwise
// it keeps the caller's pointer. Points equal to the current last point, or
// closer to it than Epsilon, are rejected and AddPoint reports false.
func (path *LinearPath) AddPoint(p *Point, clone bool) bool {
	path.updateLengths()
	if clone {
		p = p.Clone()
	}
	n := len(path.Points)
	if n == 0 {
		path.Points = append(path.Points, p)
		return true
	}

	last := path.Points[n-1]
	if last.Equals(*p) {
		Logger().Debug("rejected duplicate path point", "point", *p)
		return false
	}

	// Appended tentatively, so a too-short segment can be rolled back
	path.Points = append(path.Points, p)
	length := last.Distance(*p)
	if length < Epsilon {
		path.Points = path.Points[:n]
		Logger().Debug("rejected degenerate path segment", "point", *p, "length", length)
		return false
	}
	path.distances = append(path.distances, length)
	path.totalLength += length
	return true
}

// Recompute cached lengths if points were changed in place.
func (path *LinearPath) updateLengths() {
	if !path.dirty {
		return
	}
	path.distances = path.distances[:0]
	path.totalLength = 0
	for i := 1; i < len(path.Points); i++ {
		d := path.Points[i-1].Distance(*path.Points[i])
		path.distances = append(path.distances, d)
		path.totalLength += d
	}
	path.dirty = false
}

// MarkDirty must be called after moving stored points directly.
func (path *LinearPath) MarkDirty() {
	path.dirty = true
}

func (path *LinearPath) PointCount() int {
	return len(path.Points)
}

// SegmentCount returns the number of segments, counting the closing segment
// when loop is set.
func (path *LinearPath) SegmentCount(loop bool) int {
	n := len(path.Points)
	if n < 2 {
		return 0
	}
	if loop {
		return n
	}
	return n - 1
}

// Length returns the total length of the open path.
func (path *LinearPath) Length() float64 {
	path.updateLengths()
	return path.totalLength
}

// SegmentLength returns the length of segment i. Indices wrap, so the last
// index is the closing segment.
func (path *LinearPath) SegmentLength(i int) float64 {
	path.updateLengths()
	n := len(path.Points)
	if n < 2 {
		return 0
	}
	i = CircularIndex(i, n)
	if i < len(path.distances) {
		return path.distances[i]
	}
	return path.Points[n-1].Distance(*path.Points[0])
}

// GetSegment returns the segment from point index to point index+1, both
// taken modulo the point count. The segment references the stored points.
func (path *LinearPath) GetSegment(index int) *LineSegment {
	n := len(path.Points)
	if n == 0 {
		return nil
	}
	return NewLineSegmentFromPoints(
		path.Points[CircularIndex(index, n)],
		path.Points[CircularIndex(index+1, n)],
	)
}

// Segments returns the open path's segments.
func (path *LinearPath) Segments() []*LineSegment {
	count := path.SegmentCount(false)
	segments := make([]*LineSegment, count)
	for i := range segments {
		segments[i] = path.GetSegment(i)
	}
	return segments
}

// PointAtLength returns the point at distance d along the path, clamped to
// the path's ends. With loop set the closing segment is part of the path and
// d wraps around.
func (path *LinearPath) PointAtLength(d float64, loop bool) (Point, bool) {
	path.updateLengths()
	n := len(path.Points)
	if n == 0 {
		return Point{}, false
	}
	if n == 1 {
		return *path.Points[0], true
	}

	total := path.totalLength
	if loop {
		total += path.SegmentLength(n - 1)
		d = math.Mod(d, total)
		if d < 0 {
			d += total
		}
	} else if d <= 0 {
		return *path.Points[0], true
	} else if d >= total {
		return *path.Points[n-1], true
	}

	for i := 0; i < path.SegmentCount(loop); i++ {
		l := path.SegmentLength(i)
		if l > 0 && d <= l {
			return path.GetSegment(i).PointAt(d / l), true
		}
		d -= l
	}
	// Rounding left a sliver past the last segment
	if loop {
		return *path.Points[0], true
	}
	return *path.Points[n-1], true
}

// BoundingRect returns the axis-aligned bounds of the points, or a zero
// rectangle at the origin for an empty path.
func (path *LinearPath) BoundingRect() *Rectangle {
	if len(path.Points) == 0 {
		return &Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range path.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return &Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (path *LinearPath) Kind() ShapeKind { return LinearPathKind }

func (path *LinearPath) Intersect(other Shape) ([]Point, error) {
	return Intersect(path, other)
}

func (path *LinearPath) Draw(c Canvas) {
	if len(path.Points) == 0 {
		return
	}
	c.MoveTo(path.Points[0].X, path.Points[0].Y)
	for _, p := range path.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
}

// Scale moves every stored point, so callers sharing those points see the
// change too. Nil center means the center of the bounding rectangle.
func (path *LinearPath) Scale(fx, fy float64, center *Point) {
	if len(path.Points) == 0 {
		return
	}
	var pivot Point
	if center != nil {
		pivot = *center
	} else {
		pivot = path.BoundingRect().Center()
	}
	for _, p := range path.Points {
		p.ScaleAbout(fx, fy, pivot)
	}
	path.dirty = true
}

// Clone copies the path. A shallow clone shares the point pointers.
func (path *LinearPath) Clone(deep bool) Shape {
	path.updateLengths()
	clone := &LinearPath{
		Points:      make([]*Point, len(path.Points)),
		distances:   append([]float64(nil), path.distances...),
		totalLength: path.totalLength,
	}
	for i, p := range path.Points {
		if deep {
			p = p.Clone()
		}
		clone.Points[i] = p
	}
	return clone
}

func (path *LinearPath) String() string {
	parts := make([]string, len(path.Points))
	for i, p := range path.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("LinearPath[%s]", strings.Join(parts, " "))
}
