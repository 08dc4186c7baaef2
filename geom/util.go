package geom

import "math"

// Absolute tolerance shared by every intersection routine. It is not scaled
// to the magnitude of the inputs, so geometry far from unit scale loses
// precision (very large coordinates) or collapses (very small ones).
const Epsilon = 1e-9

// Two intersection candidates whose squared distance is below this value are
// reported as one point.
const SnapDistance = 1e-9

// Looser tolerance used by tests and by callers comparing derived geometry,
// such as circles that went through an inversion.
const Tolerance = 1e-6

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Closed interval check padded by Epsilon. lower and upper may come in either
// order.
func inInterval(f, lower, upper float64) bool {
	if upper < lower {
		lower, upper = upper, lower
	}
	return lower-Epsilon <= f && f <= upper+Epsilon
}

// Append p unless a point within the snap distance is already present.
func appendUnique(points []Point, p Point) []Point {
	for _, q := range points {
		if q.SquaredDistance(p) < SnapDistance {
			return points
		}
	}
	return append(points, p)
}
