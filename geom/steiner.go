package geom

import "math"

// SteinerCircles lays out a ring of circles inside a parent circle, each
// tangent to its two neighbours, to the parent, and to a common inner circle.
//
// The chain is first built concentrically in a unit frame, where it has a
// closed form: n circles of radius sin(π/n) centred on the unit circle. An
// inversion about a point off the common center turns that into an eccentric
// chain while keeping every tangency, since inversion maps circles to circles.
// Finally the configuration is scaled and moved so its outer circle is the
// parent.
type SteinerCircles struct {
	Parent     Circle
	Count      int
	Ratio      float64
	Rotation   float64
	StartAngle float64

	// The chain circles followed by the innermost circle
	Circles     []Circle
	OuterCircle Circle
}

// NewSteinerCircles computes a chain of count circles inside parent. Counts
// below 3 are raised to 3. ratio places the center of inversion at that
// fraction of the inner circle's radius, in direction rotation; 0 yields a
// concentric chain, values towards 1 push the inner circle against the
// parent's rim. Measured against the inner circle, every ratio in [0, 1)
// keeps the inversion center inside it and the chain nested; measured
// against the parent, the usable range would shrink to
// (1-sin(π/n))/(1+sin(π/n)), under 0.08 for n = 3. startAngle turns the
// chain around the ring.
func NewSteinerCircles(parent Circle, count int, ratio, rotation, startAngle float64) (*SteinerCircles, error) {
	s := &SteinerCircles{}
	if err := s.Calculate(parent, count, ratio, rotation, startAngle); err != nil {
		return nil, err
	}
	return s, nil
}

// Calculate replaces all derived circles. On error the previous result is
// left untouched.
func (s *SteinerCircles) Calculate(parent Circle, count int, ratio, rotation, startAngle float64) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()

	if count < 3 {
		count = 3
	}
	circles, outer := steinerChain(count, ratio, rotation, startAngle)

	// Fit the outer circle onto the parent
	scale := parent.Radius / outer.Radius
	fit := func(c Circle) Circle {
		return Circle{
			Center: parent.Center.Add(c.Center.Sub(outer.Center).Mul(scale)),
			Radius: c.Radius * scale,
		}
	}
	for i := range circles {
		circles[i] = fit(circles[i])
	}

	s.Parent = parent
	s.Count = count
	s.Ratio = ratio
	s.Rotation = rotation
	s.StartAngle = startAngle
	s.Circles = circles
	s.OuterCircle = parent
	return nil
}

// ChainCircles returns the Count circles of the ring, without the inner one.
func (s *SteinerCircles) ChainCircles() []Circle {
	return s.Circles[:s.Count]
}

// InnerCircle returns the circle enclosed by the ring.
func (s *SteinerCircles) InnerCircle() Circle {
	return s.Circles[s.Count]
}

func (s *SteinerCircles) BoundingRect() *Rectangle {
	return s.OuterCircle.BoundingRect()
}

func (s *SteinerCircles) Draw(c Canvas) {
	for i := range s.Circles {
		s.Circles[i].Draw(c)
	}
	s.OuterCircle.Draw(c)
}

// Build the inverted chain in the unit frame. Returns the n chain circles
// followed by the inner circle, plus the outer circle.
func steinerChain(n int, ratio, rotation, startAngle float64) ([]Circle, Circle) {
	step := 2 * math.Pi / float64(n)
	r := math.Sin(math.Pi / float64(n))
	innerRadius := 1 - r
	outerRadius := 1 + r
	tangentRadius := math.Cos(math.Pi / float64(n))

	origin := Point{}
	inversion := Circle{Center: origin.Polar(innerRadius*ratio, rotation), Radius: 1}
	invert := func(radius, angle float64) Point {
		return inversion.InvertPoint(origin.Polar(radius, angle))
	}

	circles := make([]Circle, 0, n+1)
	var innerAnchors, outerAnchors []Point
	for i := 0; i < n; i++ {
		angle := startAngle + float64(i)*step

		// Three points on chain circle i: where it touches the inner and outer
		// circle, and where it touches its next neighbour.
		inner := invert(innerRadius, angle)
		outer := invert(outerRadius, angle)
		tangent := invert(tangentRadius, angle+step/2)
		circles = append(circles, circleThrough(inner, outer, tangent))

		if len(innerAnchors) < 3 {
			innerAnchors = append(innerAnchors, inner)
			outerAnchors = append(outerAnchors, outer)
		}
	}

	innerImage := circleThrough(innerAnchors[0], innerAnchors[1], innerAnchors[2])
	outerImage := circleThrough(outerAnchors[0], outerAnchors[1], outerAnchors[2])
	// Inversion about a point inside both circles reverses their nesting, so
	// the image of the inner circle is usually the enclosing one.
	if innerImage.Radius > outerImage.Radius {
		innerImage, outerImage = outerImage, innerImage
	}
	return append(circles, innerImage), outerImage
}

func circleThrough(a, b, c Point) Circle {
	circle, ok := (&Triangle{a, b, c}).Circumcircle()
	if !ok {
		fatalWrapf(ErrDegenerateCircle, "%v, %v, %v", a, b, c)
	}
	return circle
}
