package geom

import "math"

// SmoothMode selects how far from each corner the straight part of an edge is
// cut back before the corner is replaced by a curve.
type SmoothMode int

const (
	// Cut back by factor times the edge's own length.
	SmoothRelative SmoothMode = iota
	// Cut back by factor, in absolute units.
	SmoothAbsolute
	// Cut back by factor times the length of the shortest edge in the path.
	SmoothRelativeMinimum
	// Cut back by factor, but never more than half the shortest edge.
	SmoothAbsoluteMinimum
)

// MixedPoint is a vertex of a MixedPath. Anchors are passed through, control
// points only pull the curve towards them.
type MixedPoint struct {
	Point
	Control bool
}

// MixedPath is a chain of straight lines and quadratic Bézier corners. Every
// control point sits between two anchors.
type MixedPath struct {
	Points []MixedPoint
	Closed bool
}

// GetSmoothPath replaces every corner of the path with a quadratic curve. Each
// edge keeps its straight middle part, from d to L-d, where L is the edge
// length and d the cut-back distance chosen by mode and factor (never more
// than L/2). The original vertex becomes the control point of the curve
// joining two consecutive straight parts. Without loop the two end points of
// the path are kept as they are; with loop the closing edge is smoothed too
// and the result is marked closed.
//
// Paths with fewer than two points can't be smoothed and yield nil.
func (path *LinearPath) GetSmoothPath(factor float64, mode SmoothMode, loop bool) *MixedPath {
	vertices := make([]Point, len(path.Points))
	for i, p := range path.Points {
		vertices[i] = *p
	}
	if loop && len(vertices) > 2 && vertices[0].Distance(vertices[len(vertices)-1]) < Epsilon {
		// Already explicitly closed; the closing edge would be degenerate
		vertices = vertices[:len(vertices)-1]
	}

	n := len(vertices)
	if n < 2 {
		Logger().Warn("path cannot be smoothed", "points", n)
		return nil
	}

	segmentCount := n - 1
	if loop {
		segmentCount = n
	}
	lengths := make([]float64, segmentCount)
	minLength := math.Inf(1)
	for i := range lengths {
		lengths[i] = vertices[i].Distance(vertices[CircularIndex(i+1, n)])
		minLength = math.Min(minLength, lengths[i])
	}
	if minLength < Epsilon {
		Logger().Warn("path cannot be smoothed", "reason", "degenerate segment")
		return nil
	}

	cutBack := func(length float64) float64 {
		var d float64
		switch mode {
		case SmoothRelative:
			d = factor * length
		case SmoothAbsolute:
			d = factor
		case SmoothRelativeMinimum:
			d = factor * minLength
		case SmoothAbsoluteMinimum:
			d = math.Min(factor, minLength/2)
		default:
			fatalf("unknown smoothing mode %d", mode)
		}
		return math.Max(0, math.Min(d, length/2))
	}

	result := &MixedPath{Closed: loop}
	for i := 0; i < segmentCount; i++ {
		start := vertices[i]
		end := vertices[CircularIndex(i+1, n)]
		length := lengths[i]
		d := cutBack(length)

		startCut, endCut := d, d
		if !loop {
			if i == 0 {
				startCut = 0
			}
			if i == segmentCount-1 {
				endCut = 0
			}
		}
		a := start.Lerp(end, startCut/length)
		b := end.Lerp(start, endCut/length)

		if i > 0 {
			result.addCorner(start, a, false)
		} else {
			result.Points = append(result.Points, MixedPoint{Point: a})
		}
		if b.Distance(a) < Epsilon {
			continue
		}
		if loop && i == segmentCount-1 && b.Distance(result.Points[0].Point) < Epsilon {
			// Uncut closing corner; b is the first anchor again
			continue
		}
		result.Points = append(result.Points, MixedPoint{Point: b})
	}
	if loop {
		result.addCorner(vertices[0], result.Points[0].Point, true)
	}
	return result
}

// Join the previous straight part to the next one through the corner vertex.
// A corner that wasn't cut back needs no curve; its vertex is already the
// last anchor. The closing corner of a loop ends on the first anchor, which
// is not repeated.
func (mp *MixedPath) addCorner(vertex, next Point, closing bool) {
	last := mp.Points[len(mp.Points)-1].Point
	if last.Distance(vertex) < Epsilon && next.Distance(vertex) < Epsilon {
		return
	}
	mp.Points = append(mp.Points, MixedPoint{Point: vertex, Control: true})
	if !closing {
		mp.Points = append(mp.Points, MixedPoint{Point: next})
	}
}

// Draw emits lines between anchors and quadratic curves through control
// points.
func (mp *MixedPath) Draw(c Canvas) {
	if len(mp.Points) == 0 {
		return
	}
	first := mp.Points[0]
	c.MoveTo(first.X, first.Y)
	for i := 1; i < len(mp.Points); i++ {
		p := mp.Points[i]
		if !p.Control {
			c.LineTo(p.X, p.Y)
			continue
		}
		next := first.Point
		if i+1 < len(mp.Points) {
			next = mp.Points[i+1].Point
			i++
		}
		c.QuadraticTo(p.X, p.Y, next.X, next.Y)
	}
	if mp.Closed {
		c.ClosePath()
	}
}

// Flatten approximates every curve with steps straight segments and returns
// the result as a polyline. A closed path ends on its first point again.
func (mp *MixedPath) Flatten(steps int) *LinearPath {
	if steps < 1 {
		steps = 1
	}
	result := &LinearPath{}
	if len(mp.Points) == 0 {
		return result
	}
	first := mp.Points[0].Point
	current := first
	result.AddPoint(&current, true)
	for i := 1; i < len(mp.Points); i++ {
		p := mp.Points[i]
		if !p.Control {
			current = p.Point
			result.AddPoint(&current, true)
			continue
		}
		next := first
		if i+1 < len(mp.Points) {
			next = mp.Points[i+1].Point
			i++
		}
		start := current
		for step := 1; step <= steps; step++ {
			current = quadraticPoint(start, p.Point, next, float64(step)/float64(steps))
			result.AddPoint(&current, true)
		}
	}
	if mp.Closed {
		result.AddPoint(&first, true)
	}
	return result
}

// BoundingRect returns the bounds of all anchors and control points. Since a
// quadratic curve stays inside the triangle of its points, this contains the
// whole path, though not always tightly.
func (mp *MixedPath) BoundingRect() *Rectangle {
	path := &LinearPath{Points: make([]*Point, len(mp.Points))}
	for i := range mp.Points {
		path.Points[i] = &mp.Points[i].Point
	}
	return path.BoundingRect()
}

// Evaluate the quadratic Bézier p0, p1, p2 at t.
func quadraticPoint(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}
