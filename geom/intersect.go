package geom

import "math"

// Analytic intersection routines. All of them return nil (or false) for "no
// intersection"; that is an ordinary outcome, not an error. Tolerances are
// the absolute Epsilon and SnapDistance constants.

// CirclesIntersection returns the points where the outlines of c1 and c2
// meet: two points for a proper crossing, one for tangency, nil otherwise.
// Coincident circles yield nil whether or not their radii match.
//
// See https://mathworld.wolfram.com/Circle-CircleIntersection.html
func CirclesIntersection(c1, c2 Circle) []Point {
	R := c1.Radius
	r := c2.Radius
	delta := c2.Center.Sub(c1.Center)
	d := delta.Length()

	if d < Epsilon {
		// Concentric. Either no points in common, or infinitely many.
		return nil
	}
	if d > R+r+Epsilon || d < math.Abs(R-r)-Epsilon {
		return nil
	}

	// Distance from c1's center to the foot of the common chord.
	baseRadius := (d*d - r*r + R*R) / (2 * d)
	unit := delta.Div(d)
	base := c1.Center.Add(unit.Mul(baseRadius))
	if math.Abs(d-(R+r)) < Epsilon || math.Abs(d-math.Abs(R-r)) < Epsilon {
		// Tangent. Tested on d, not h: the square root amplifies rounding
		// in h2 past Epsilon.
		return []Point{base}
	}
	h2 := R*R - baseRadius*baseRadius
	if h2 < 0 {
		// Rounding at tangency
		h2 = 0
	}
	h := math.Sqrt(h2)
	if h < Epsilon {
		return []Point{base}
	}
	offset := unit.Normal().Mul(h)
	return []Point{base.Add(offset), base.Sub(offset)}
}

// LineCircleIntersection intersects the infinite line through p1 and p2 with
// circle c.
//
// See https://mathworld.wolfram.com/Circle-LineIntersection.html
func LineCircleIntersection(p1, p2 Point, c Circle) []Point {
	// Work relative to the circle's center
	x1, y1 := p1.X-c.Center.X, p1.Y-c.Center.Y
	x2, y2 := p2.X-c.Center.X, p2.Y-c.Center.Y
	dx := x2 - x1
	dy := y2 - y1
	dr2 := dx*dx + dy*dy
	if dr2 < Epsilon {
		// The two points don't define a line
		return nil
	}

	D := x1*y2 - x2*y1
	discriminant := c.Radius*c.Radius*dr2 - D*D
	if discriminant < -Epsilon {
		return nil
	}

	if discriminant <= Epsilon {
		return []Point{{
			X: c.Center.X + D*dy/dr2,
			Y: c.Center.Y - D*dx/dr2,
		}}
	}

	sqrtDisc := math.Sqrt(discriminant)
	sgn := 1.0
	if dy < 0 {
		sgn = -1
	}
	bx := sgn * dx * sqrtDisc
	by := math.Abs(dy) * sqrtDisc
	return []Point{
		{X: c.Center.X + (D*dy+bx)/dr2, Y: c.Center.Y + (-D*dx+by)/dr2},
		{X: c.Center.X + (D*dy-bx)/dr2, Y: c.Center.Y + (-D*dx-by)/dr2},
	}
}

// SegmentCircleIntersection intersects the segment from p1 to p2 with circle
// c. Points are ordered by their position along the segment.
func SegmentCircleIntersection(p1, p2 Point, c Circle) []Point {
	// Points on the segment are p1 + mu*(p2-p1) for mu in [0, 1]. Substituting
	// into |p - center|² = r² gives a·mu² + b·mu + c = 0.
	d := p2.Sub(p1)
	f := p1.Sub(c.Center)
	qa := d.Dot(d)
	qb := 2 * d.Dot(f)
	qc := f.Dot(f) - c.Radius*c.Radius

	if qa < Epsilon {
		return nil
	}
	discriminant := qb*qb - 4*qa*qc
	if discriminant < 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(discriminant)

	var result []Point
	for _, mu := range [2]float64{(-qb - sqrtDisc) / (2 * qa), (-qb + sqrtDisc) / (2 * qa)} {
		if mu < -Epsilon || mu > 1+Epsilon {
			continue
		}
		result = appendUnique(result, p1.Lerp(p2, mu))
	}
	return result
}

// LineIntersectLine intersects the line through a and b with the line through
// e and f. asSegment1 and asSegment2 restrict the respective side to the
// segment between its two points instead of the infinite line. Parallel and
// coincident lines report no intersection.
func LineIntersectLine(a, b, e, f Point, asSegment1, asSegment2 bool) (Point, bool) {
	// Implicit form a·x + b·y + c = 0 for both lines
	a1 := b.Y - a.Y
	b1 := a.X - b.X
	c1 := b.X*a.Y - a.X*b.Y
	a2 := f.Y - e.Y
	b2 := e.X - f.X
	c2 := f.X*e.Y - e.X*f.Y

	denom := a1*b2 - a2*b1
	if math.Abs(denom) < Epsilon {
		return Point{}, false
	}

	ip := Point{
		X: (b1*c2 - b2*c1) / denom,
		Y: (a2*c1 - a1*c2) / denom,
	}

	// Axis-aligned inputs know one coordinate exactly; don't let it drift.
	if a.X == b.X {
		ip.X = a.X
	} else if e.X == f.X {
		ip.X = e.X
	}
	if a.Y == b.Y {
		ip.Y = a.Y
	} else if e.Y == f.Y {
		ip.Y = e.Y
	}

	if asSegment1 && !(inInterval(ip.X, a.X, b.X) && inInterval(ip.Y, a.Y, b.Y)) {
		return Point{}, false
	}
	if asSegment2 && !(inInterval(ip.X, e.X, f.X) && inInterval(ip.Y, e.Y, f.Y)) {
		return Point{}, false
	}
	return ip, true
}
