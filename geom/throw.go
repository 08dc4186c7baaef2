package geom

import "github.com/pkg/errors"

// Invariant violations deep inside the solvers (an unreachable dispatch
// branch, an eigen solve that did not produce two roots, a degenerate
// circumcircle) are raised as panics. Exported entry points recover them into
// errors. Any other panic, runtime errors included, is a genuine bug and is
// re-raised.

var (
	ErrUnsupportedShapePair = errors.New("unsupported shape pair")
	ErrEigenSolve           = errors.New("eigenvalue solve did not yield two roots")
	ErrDegenerateCircle     = errors.New("points do not define a circle")
	ErrNotMonotone          = errors.New("path is not y-monotone")
)

// GeometryError is the panic payload used by fatalf.
type GeometryError struct {
	err error
}

func (e *GeometryError) Error() string { return e.err.Error() }
func (e *GeometryError) Unwrap() error { return e.err }

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(&GeometryError{errors.Errorf(format, args...)})
}

// Panic with a GeometryError wrapping one of the sentinels above.
func fatalWrapf(sentinel error, format string, args ...interface{}) {
	panic(&GeometryError{errors.Wrapf(sentinel, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(*GeometryError); ok {
			return geometryError.err
		}
		panic(r)
	}
	return nil
}
