package geom

import (
	"fmt"
	"math"
)

// CovarianceMatrix2 is the symmetric matrix
//
//	| A  B |
//	| B  C |
//
// typically holding the second moments of a 2D point distribution. Nothing
// checks that it is positive semi-definite.
type CovarianceMatrix2 struct {
	A, B, C float64
}

// Eigen holds eigenvalues with their unit eigenvectors; Vectors[i] belongs to
// Values[i].
type Eigen struct {
	Values  [2]float64
	Vectors [2]Point
}

const (
	// Below this A the matrix is treated as isotropic
	eigenPuntA = 1e-7
	// Eigenvalue ratios within this distance of 1 count as a repeated root
	eigenSameness = 1e-4
)

func (m CovarianceMatrix2) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g]]", m.A, m.B, m.B, m.C)
}

// FindEigenvalues solves the characteristic polynomial
// λ² - (a+c)λ + (ac - b²) = 0. A single root is returned as a double root.
// Anything but two roots violates the solver's invariants and panics.
func (m CovarianceMatrix2) FindEigenvalues() [2]float64 {
	roots := solveQuadratic(1, -(m.A + m.C), m.A*m.C-m.B*m.B)
	if len(roots) == 1 {
		roots = append(roots, roots[0])
	}
	if len(roots) != 2 {
		fatalWrapf(ErrEigenSolve, "matrix %v gave %d roots", m, len(roots))
	}
	return [2]float64{roots[0], roots[1]}
}

// FindEigenvectors returns the eigen decomposition. For nearly isotropic
// matrices (tiny A, or eigenvalues within 0.01% of each other) the
// eigenvectors are not numerically meaningful; the matrix is then treated as
// isotropic, both eigenvalues are set to A and the axis-aligned unit basis is
// returned.
//
// Eigenvectors are only defined up to sign. They are returned with their
// largest component positive.
func (m CovarianceMatrix2) FindEigenvectors() Eigen {
	values := m.FindEigenvalues()

	punt := m.A < eigenPuntA
	if !punt {
		ratio := math.Abs(values[1] / values[0])
		punt = ratio > 1-eigenSameness && ratio < 1+eigenSameness
	}
	if punt {
		Logger().Debug("eigen solve punted to isotropic basis", "matrix", m.String())
		return Eigen{
			Values:  [2]float64{m.A, m.A},
			Vectors: [2]Point{{1, 0}, {0, 1}},
		}
	}

	var result Eigen
	for i, lambda := range values {
		// Both rows of (M - λI) give a null space generator. The longer one is
		// the better conditioned.
		v1 := Point{-m.B, m.A - lambda}
		v2 := Point{-(m.C - lambda), m.B}
		v := v2
		if v1.LengthSquared() > v2.LengthSquared() {
			v = v1
		}
		result.Values[i] = lambda
		result.Vectors[i] = canonicalSign(v.Normalize())
	}
	return result
}

// Eigen is FindEigenvectors with solver invariant violations returned as an
// error instead of a panic.
func (m CovarianceMatrix2) Eigen() (result Eigen, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = Eigen{}
			err = recoveredErr
		}
	}()
	return m.FindEigenvectors(), nil
}

// MoveToGlobalCoordinates shifts second moments taken around a local origin to
// moments around an origin offset by (x, y).
func (m CovarianceMatrix2) MoveToGlobalCoordinates(x, y float64) CovarianceMatrix2 {
	return CovarianceMatrix2{
		A: m.A + x*x,
		B: m.B + x*y,
		C: m.C + y*y,
	}
}

// MoveToLocalCoordinates is the inverse of MoveToGlobalCoordinates.
func (m CovarianceMatrix2) MoveToLocalCoordinates(x, y float64) CovarianceMatrix2 {
	return CovarianceMatrix2{
		A: m.A - x*x,
		B: m.B - x*y,
		C: m.C - y*y,
	}
}

func (m CovarianceMatrix2) Add(o CovarianceMatrix2) CovarianceMatrix2 {
	return CovarianceMatrix2{m.A + o.A, m.B + o.B, m.C + o.C}
}

func (m CovarianceMatrix2) ScaleBy(f float64) CovarianceMatrix2 {
	return CovarianceMatrix2{m.A * f, m.B * f, m.C * f}
}

// AddPoint accumulates the weighted second moments of (x, y) around the
// origin.
func (m *CovarianceMatrix2) AddPoint(x, y, weight float64) {
	m.A += x * x * weight
	m.B += x * y * weight
	m.C += y * y * weight
}

// CovarianceOfPoints returns the covariance of the points around their mean,
// along with the mean. Fewer than one point yields the zero matrix.
func CovarianceOfPoints(points []Point) (CovarianceMatrix2, Point) {
	if len(points) == 0 {
		return CovarianceMatrix2{}, Point{}
	}
	var global CovarianceMatrix2
	var mean Point
	weight := 1 / float64(len(points))
	for _, p := range points {
		global.AddPoint(p.X, p.Y, weight)
		mean = mean.Add(p.Mul(weight))
	}
	return global.MoveToLocalCoordinates(mean.X, mean.Y), mean
}

// Flip v so its component of largest magnitude is positive.
func canonicalSign(v Point) Point {
	major := v.X
	if math.Abs(v.Y) > math.Abs(v.X) {
		major = v.Y
	}
	if major < 0 {
		return Point{-v.X, -v.Y}
	}
	return v
}

// Real roots of a·x² + b·x + c = 0, avoiding cancellation by computing the
// larger-magnitude root first. A slightly negative discriminant is rounding
// and treated as zero; a repeated root is returned once.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		discriminant = 0
	}
	signB := 1.0
	if b < 0 {
		signB = -1
	}
	q := -0.5 * (b + signB*math.Sqrt(discriminant))
	roots := []float64{q / a}
	if q != 0 {
		if root := c / q; root != roots[0] {
			roots = append(roots, root)
		}
	}
	return roots
}
