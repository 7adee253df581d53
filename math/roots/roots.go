/*package roots finds the roots of real polynomials of degree one through four
using closed-form formulas.

Each solver falls back to the next lower degree when its leading coefficient
is almost zero, so Cubic(0, 1, -3, 2) gives the same answer as
Quadratic(1, -3, 2). Roots are returned together with their multiplicities
and are sorted by real part and then by imaginary part. Complex roots of real
polynomials come in conjugate pairs.
*/
package roots

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrDegenerateInput is returned when the coefficients do not describe a
	// well-posed problem, e.g. a·x + b = 0 with a ≈ 0.
	ErrDegenerateInput = errors.New("roots: degenerate polynomial coefficients")
	// ErrNonFinite is returned when a coefficient is NaN or infinite.
	ErrNonFinite = errors.New("roots: non-finite coefficient")
	// ErrDegree is returned by Polynomial.Roots outside of degrees 1 to 4.
	ErrDegree = errors.New("roots: unsupported polynomial degree")
)

func tracer() tracing.Trace {
	return tracing.Select("numerics.roots")
}

// Root is a single, possibly repeated, root of a polynomial.
type Root struct {
	Value        complex128
	Multiplicity int
}

// IsReal returns true if the root has no imaginary component.
func (r Root) IsReal() bool { return imag(r.Value) == 0 }

func (r Root) String() string {
	if r.IsReal() {
		return fmt.Sprintf("%g (x%d)", real(r.Value), r.Multiplicity)
	}
	return fmt.Sprintf("%g (x%d)", r.Value, r.Multiplicity)
}

// Roots is a set of distinct roots ordered by real part, then imaginary part.
type Roots []Root

// Count returns the number of roots counted with multiplicity. This is the
// degree of the polynomial that was actually solved.
func (rs Roots) Count() int {
	n := 0
	for _, r := range rs {
		n += r.Multiplicity
	}
	return n
}

// Real returns the distinct real roots in increasing order.
func (rs Roots) Real() []float64 {
	out := []float64{}
	for _, r := range rs {
		if r.IsReal() {
			out = append(out, real(r.Value))
		}
	}
	return out
}

// Complex returns the distinct roots which have a non-zero imaginary part.
func (rs Roots) Complex() []complex128 {
	out := []complex128{}
	for _, r := range rs {
		if !r.IsReal() {
			out = append(out, r.Value)
		}
	}
	return out
}

// Values returns every root, with repeated roots appearing once per
// multiplicity.
func (rs Roots) Values() []complex128 {
	out := make([]complex128, 0, rs.Count())
	for _, r := range rs {
		for i := 0; i < r.Multiplicity; i++ {
			out = append(out, r.Value)
		}
	}
	return out
}

func (rs Roots) sort() {
	sort.Slice(rs, func(i, j int) bool {
		return less(rs[i].Value, rs[j].Value)
	})
}

func less(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}
	return imag(a) < imag(b)
}
