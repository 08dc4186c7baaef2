package geom

// Triangulation of closed y-monotone paths. A y-monotone polygon is a simple
// polygon such that any horizontal line intersects at most two edges.
//
// Points with equal Y are ordered by X (Below), which simulates a slightly
// rotated coordinate system with no horizontal edges. On the left chain a
// horizontal edge must therefore sit above the inside of the polygon, on the
// right chain below it.

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower".
func (p Point) Below(o Point) bool {
	if Equal(p.Y, o.Y) {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func (p Point) Above(o Point) bool {
	return !p.Below(o)
}

// Triangulate splits the closed polygon described by the path into triangles
// using only its own points. The closing edge is implied. The polygon must be
// y-monotone; either winding is accepted and the triangles are returned
// counterclockwise.
func (path *LinearPath) Triangulate() (result []*Triangle, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	points := make([]Point, len(path.Points))
	for i, p := range path.Points {
		points[i] = *p
	}
	if len(points) > 3 && points[0].Distance(points[len(points)-1]) < Epsilon {
		points = points[:len(points)-1]
	}
	if polygonSignedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return triangulateMonotone(points), nil
}

// Twice the signed area, positive for counterclockwise polygons.
func polygonSignedArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		area += p.Cross(points[CircularIndex(i+1, len(points))])
	}
	return area
}

// The polygon must be counterclockwise.
func triangulateMonotone(points []Point) []*Triangle {
	if len(points) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(points))
	}
	if len(points) == 3 {
		return []*Triangle{{points[0], points[1], points[2]}}
	}

	triangles := make([]*Triangle, 0, len(points)-2)

	// Find the top point
	var topPointIndex int
	for i, point := range points {
		if point.Above(points[topPointIndex]) {
			topPointIndex = i
		}
	}

	// Merge the two chains from the top down, noting which points are on the
	// left chain. Both chains have to descend the whole way, otherwise the
	// polygon isn't monotone.
	sortedPoints := make([]Point, 0, len(points))
	sortedPoints = append(sortedPoints, points[topPointIndex])
	// The top point belongs to both chains; it is filed under the right one.
	isLeft := make([]bool, 0, len(points))
	isLeft = append(isLeft, false)

	leftOffset := 1
	rightOffset := 1
	var bottomPoint Point
	prevLeft := points[topPointIndex]
	prevRight := points[topPointIndex]
	for {
		leftIndex := CircularIndex(topPointIndex+leftOffset, len(points))
		rightIndex := CircularIndex(topPointIndex-rightOffset, len(points))
		leftPoint := points[leftIndex]
		rightPoint := points[rightIndex]

		// We don't add the bottom point to the list, as it's handled at the very
		// end.
		if leftIndex == rightIndex {
			if !leftPoint.Below(prevLeft) || !leftPoint.Below(prevRight) {
				fatalWrapf(ErrNotMonotone, "chains do not meet at the bottom point %v", leftPoint)
			}
			bottomPoint = leftPoint
			break
		}

		if leftPoint.Above(rightPoint) {
			if !leftPoint.Below(prevLeft) {
				fatalWrapf(ErrNotMonotone, "left chain rises at %v", leftPoint)
			}
			sortedPoints = append(sortedPoints, leftPoint)
			isLeft = append(isLeft, true)
			prevLeft = leftPoint
			leftOffset++
		} else {
			if !rightPoint.Below(prevRight) {
				fatalWrapf(ErrNotMonotone, "right chain rises at %v", rightPoint)
			}
			sortedPoints = append(sortedPoints, rightPoint)
			isLeft = append(isLeft, false)
			prevRight = rightPoint
			rightOffset++
		}
	}

	// The stack holds indexes into sortedPoints
	stack := make([]int, 0, len(sortedPoints))
	stack = append(stack, 0, 1)
	pop := func() int {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return i
	}
	peek := func() int { return stack[len(stack)-1] }

	for i := 2; i < len(sortedPoints); i++ {
		p := sortedPoints[i]
		left := isLeft[i]
		if left != isLeft[peek()] {
			// Jumped to the other chain. Monotonicity guarantees that every point on
			// the stack is visible from p, so the whole stack becomes a fan.
			for len(stack) > 0 {
				a := sortedPoints[pop()]
				if len(stack) > 0 {
					b := sortedPoints[peek()]
					if left {
						triangles = appendTriangle(triangles, &Triangle{p, a, b})
					} else {
						triangles = appendTriangle(triangles, &Triangle{a, p, b})
					}
				}
			}
			stack = append(stack, i-1, i)
		} else {
			// Same chain. Always pop the last point off; if no triangle can be
			// cut, it goes back on.
			v := pop()
			for len(stack) > 0 {
				top := peek()
				// The easiest way to see if p "sees" the top of the stack is to try
				// the triangle and check that it is counterclockwise.
				var candidate *Triangle
				if left {
					candidate = &Triangle{p, sortedPoints[top], sortedPoints[v]}
				} else {
					candidate = &Triangle{p, sortedPoints[v], sortedPoints[top]}
				}
				if !candidate.IsCCW() {
					break
				}
				v = pop()
				triangles = append(triangles, candidate)
			}
			stack = append(stack, v, i)
		}
	}

	// Fan the bottom point with whatever is left on the stack. The final
	// triangle matters here: stopping one point early would drop the bottom
	// point from the output when only two points remain.
	l := pop()
	for len(stack) > 0 {
		p := pop()
		if isLeft[l] {
			triangles = appendTriangle(triangles, &Triangle{bottomPoint, sortedPoints[p], sortedPoints[l]})
		} else {
			triangles = appendTriangle(triangles, &Triangle{bottomPoint, sortedPoints[l], sortedPoints[p]})
		}
		l = p
	}
	return triangles
}

// Append with a winding check; a clockwise triangle here means the input
// wasn't monotone after all.
func appendTriangle(triangles []*Triangle, tri *Triangle) []*Triangle {
	if tri.SignedArea() < 0 {
		fatalWrapf(ErrNotMonotone, "triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}
