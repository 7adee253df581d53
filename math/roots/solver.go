package roots

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/numerics/math/compare"
)

// Solver holds the numerical policy used by the root finders.
type Solver struct {
	// Tol is the relative tolerance used for every degeneracy decision.
	// Roots closer than sqrt(Tol), measured after the polynomial has been
	// rescaled so that its roots are of order unity, are merged into a
	// single root with a larger multiplicity.
	Tol float64
	// Polish enables a few Newton steps on isolated real roots.
	Polish bool
}

// Option configures a Solver.
type Option func(*Solver)

// WithTolerance sets the comparison tolerance.
func WithTolerance(tol float64) Option {
	return func(s *Solver) { s.Tol = tol }
}

// WithoutPolish turns off Newton polishing, leaving the raw closed-form
// results.
func WithoutPolish() Option {
	return func(s *Solver) { s.Polish = false }
}

// DefaultSolver is used by the package level functions.
var DefaultSolver = NewSolver()

// NewSolver returns a Solver using compare.DefaultTolerance with polishing
// enabled, modified by opts.
func NewSolver(opts ...Option) Solver {
	s := Solver{Tol: float64(compare.DefaultTolerance), Polish: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Linear solves a·x + b = 0 using DefaultSolver.
func Linear(a, b float64) (Roots, error) { return DefaultSolver.Linear(a, b) }

// Quadratic solves a·x² + b·x + c = 0 using DefaultSolver.
func Quadratic(a, b, c float64) (Roots, error) {
	return DefaultSolver.Quadratic(a, b, c)
}

// Cubic solves a·x³ + b·x² + c·x + d = 0 using DefaultSolver.
func Cubic(a, b, c, d float64) (Roots, error) {
	return DefaultSolver.Cubic(a, b, c, d)
}

// Quartic solves a·x⁴ + b·x³ + c·x² + d·x + e = 0 using DefaultSolver.
func Quartic(a, b, c, d, e float64) (Roots, error) {
	return DefaultSolver.Quartic(a, b, c, d, e)
}

// Linear solves a·x + b = 0. If a is almost zero the equation either has no
// solution or no root that can be represented reliably, and
// ErrDegenerateInput is returned.
func (s Solver) Linear(a, b float64) (Roots, error) {
	if err := checkFinite(a, b); err != nil {
		return nil, err
	}
	if s.leadingZero(a) {
		return nil, fmt.Errorf("%w: %g·x + %g = 0 has no unique root",
			ErrDegenerateInput, a, b)
	}
	// Adding zero turns -0 into +0.
	return Roots{{Value: complex(-b/a+0, 0), Multiplicity: 1}}, nil
}

// Quadratic solves a·x² + b·x + c = 0.
func (s Solver) Quadratic(a, b, c float64) (Roots, error) {
	if err := checkFinite(a, b, c); err != nil {
		return nil, err
	}
	if s.leadingZero(a) {
		tracer().Debugf("quadratic leading coefficient %g is almost zero", a)
		return s.Linear(b, c)
	}
	return s.finish(s.solveMonic([]float64{b / a, c / a})), nil
}

// Cubic solves a·x³ + b·x² + c·x + d = 0.
func (s Solver) Cubic(a, b, c, d float64) (Roots, error) {
	if err := checkFinite(a, b, c, d); err != nil {
		return nil, err
	}
	if s.leadingZero(a) {
		tracer().Debugf("cubic leading coefficient %g is almost zero", a)
		return s.Quadratic(b, c, d)
	}
	return s.finish(s.solveMonic([]float64{b / a, c / a, d / a})), nil
}

// Quartic solves a·x⁴ + b·x³ + c·x² + d·x + e = 0.
func (s Solver) Quartic(a, b, c, d, e float64) (Roots, error) {
	if err := checkFinite(a, b, c, d, e); err != nil {
		return nil, err
	}
	if s.leadingZero(a) {
		tracer().Debugf("quartic leading coefficient %g is almost zero", a)
		return s.Cubic(b, c, d, e)
	}
	return s.finish(s.solveMonic([]float64{b / a, c / a, d / a, e / a})), nil
}

// Solve dispatches on the degree of p.
func (s Solver) Solve(p Polynomial) (Roots, error) {
	switch len(p) {
	case 2:
		return s.Linear(p[0], p[1])
	case 3:
		return s.Quadratic(p[0], p[1], p[2])
	case 4:
		return s.Cubic(p[0], p[1], p[2], p[3])
	case 5:
		return s.Quartic(p[0], p[1], p[2], p[3], p[4])
	}
	return nil, fmt.Errorf("%w: %d", ErrDegree, p.Degree())
}

// leadingZero returns true if the leading coefficient is almost zero. The
// test is absolute: a small leading coefficient next to large ones still
// describes a finite root, e.g. x² + 1e10·x + 1 has a root near -1e10.
func (s Solver) leadingZero(a float64) bool {
	return compare.AlmostZero(a, s.Tol)
}

func checkFinite(coeffs ...float64) error {
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: coefficient %d is %g", ErrNonFinite, i, c)
		}
	}
	return nil
}
