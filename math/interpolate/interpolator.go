/*package interpolate builds one-dimensional interpolators from tables of
(x, y) samples.

All interpolators are immutable once constructed and can be shared between
goroutines. The x values must be strictly increasing. Evaluation is defined
on the closed interval [XMin(), XMax()] and returns ErrOutOfDomain outside of
it unless the interpolator was built WithExtrapolation().
*/
package interpolate

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

var (
	ErrInsufficientSamples = errors.New("interpolate: not enough samples")
	ErrUnsortedSamples     = errors.New("interpolate: x values not strictly increasing")
	ErrOutOfDomain         = errors.New("interpolate: point outside of interpolation domain")
	ErrLengthMismatch      = errors.New("interpolate: sample slices have different lengths")
	ErrNonFinite           = errors.New("interpolate: non-finite sample")
	ErrDerivativeOrder     = errors.New("interpolate: negative derivative order")
	ErrSingular            = errors.New("interpolate: singular tridiagonal system")
	ErrOption              = errors.New("interpolate: invalid option")
)

func tracer() tracing.Trace {
	return tracing.Select("numerics.interpolate")
}

// Interpolator is a real-valued function of one variable defined by a table.
type Interpolator interface {
	Eval(x float64) (float64, error)
	// EvalAll evaluates every point in xs. If out is given, results are
	// written to out[0], which must be the same length as xs.
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
	XMin() float64
	XMax() float64
	// X returns a copy of the sample points.
	X() []float64
}

// Differentiable is an Interpolator made of local polynomials which can be
// differentiated analytically.
type Differentiable interface {
	Interpolator
	Diff(x float64, order int) (float64, error)
}

// ComplexInterpolator is a complex-valued function of one real variable.
type ComplexInterpolator interface {
	Eval(x float64) (complex128, error)
	EvalAll(xs []float64, out ...[]complex128) ([]complex128, error)
	XMin() float64
	XMax() float64
	X() []float64
}

var (
	_ Differentiable      = &Linear{}
	_ Differentiable      = &Quadratic{}
	_ Differentiable      = &Cubic{}
	_ Interpolator        = &Sinc{}
	_ ComplexInterpolator = &ComplexLinear{}
	_ ComplexInterpolator = &ComplexQuadratic{}
	_ ComplexInterpolator = &ComplexCubic{}
)

// domain holds the sample points shared by all interpolators and maps query
// points onto segments.
type domain struct {
	searcher
	extrapolate bool
}

func (d *domain) XMin() float64 { return d.x0 }
func (d *domain) XMax() float64 { return d.lim }

func (d *domain) X() []float64 {
	xs := make([]float64, len(d.xs))
	copy(xs, d.xs)
	return xs
}

// segment returns the index of the segment containing x and the offset of x
// from the segment's left edge.
func (d *domain) segment(x float64) (int, float64, error) {
	if !(x >= d.x0 && x <= d.lim) {
		if !d.extrapolate || math.IsNaN(x) {
			return 0, 0, fmt.Errorf("%w: %g not in [%g, %g]",
				ErrOutOfDomain, x, d.x0, d.lim)
		}
	}
	i := d.search(x)
	return i, x - d.xs[i], nil
}

// isLast reports whether x is exactly the final sample point, where the last
// segment's polynomial is evaluated at its full width and may round.
func (d *domain) isLast(x float64) bool { return x == d.lim }

func newDomain(xs []float64, o *options) domain {
	d := domain{extrapolate: o.extrapolate}
	own := make([]float64, len(xs))
	copy(own, xs)
	d.init(own)
	return d
}

// checkSamples validates a table with n y values and returns a descriptive
// error for the first problem found.
func checkSamples(name string, xs []float64, n, min int) error {
	if len(xs) != n {
		return fmt.Errorf("%w: %s() given len(xs) = %d but len(ys) = %d",
			ErrLengthMismatch, name, len(xs), n)
	} else if len(xs) < min {
		return fmt.Errorf("%w: %s() given %d samples, needs at least %d",
			ErrInsufficientSamples, name, len(xs), min)
	}
	if err := checkFinite(name, "xs", xs); err != nil {
		return err
	}
	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			return fmt.Errorf("%w: %s() given xs[%d] = %g, xs[%d] = %g",
				ErrUnsortedSamples, name, i, xs[i], i+1, xs[i+1])
		}
	}
	return nil
}

func checkFinite(name, slice string, vals []float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s() given %s[%d] = %g",
				ErrNonFinite, name, slice, i, v)
		}
	}
	return nil
}

func checkOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("%w: %d", ErrDerivativeOrder, order)
	}
	return nil
}

func evalAll[T any](
	eval func(float64) (T, error), xs []float64, out [][]T,
) ([]T, error) {
	var res []T
	if len(out) == 0 {
		res = make([]T, len(xs))
	} else {
		res = out[0]
		if len(res) != len(xs) {
			return nil, fmt.Errorf("%w: EvalAll() given len(xs) = %d but len(out) = %d",
				ErrLengthMismatch, len(xs), len(res))
		}
	}

	for i, x := range xs {
		y, err := eval(x)
		if err != nil {
			return nil, err
		}
		res[i] = y
	}
	return res, nil
}
