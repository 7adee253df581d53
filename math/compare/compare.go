/*package compare contains tolerance-aware floating point predicates. Every
degeneracy decision made by the root solvers and interpolators goes through
these functions instead of exact equality.

The comparison is relative-scaled absolute:

    |a - b| <= tol * max(1, |a|, |b|)

so tol acts as an absolute tolerance near zero and a relative one for large
values.
*/
package compare

import (
	"math"
	"math/cmplx"
)

// DefaultTolerance is the tolerance used when a caller does not supply one.
// It is several thousand machine epsilons, which leaves room for the round-off
// accumulated by the closed-form root formulas.
const DefaultTolerance Tolerance = 1e-9

// Tolerance is a relative comparison tolerance.
type Tolerance float64

// Valid returns true if the tolerance can be used for comparisons.
func (tol Tolerance) Valid() bool {
	t := float64(tol)
	return t >= 0 && t < 1 && !math.IsNaN(t)
}

// Equal is AlmostEqual with the receiver as tolerance.
func (tol Tolerance) Equal(a, b float64) bool { return AlmostEqual(a, b, float64(tol)) }

// Zero is AlmostZero with the receiver as tolerance.
func (tol Tolerance) Zero(a float64) bool { return AlmostZero(a, float64(tol)) }

// One is AlmostOne with the receiver as tolerance.
func (tol Tolerance) One(a float64) bool { return AlmostOne(a, float64(tol)) }

// AlmostEqual returns true if |a - b| <= tol * max(1, |a|, |b|). Any comparison
// involving NaN is false. Two infinities of the same sign are equal.
func AlmostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	} else if a == b {
		return true
	} else if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

// AlmostZero returns true if a is within tol of zero.
func AlmostZero(a, tol float64) bool { return AlmostEqual(a, 0, tol) }

// AlmostOne returns true if a is within tol of one.
func AlmostOne(a, tol float64) bool { return AlmostEqual(a, 1, tol) }

// AlmostEqualC compares the real and imaginary parts of a and b separately.
func AlmostEqualC(a, b complex128, tol float64) bool {
	return AlmostEqual(real(a), real(b), tol) &&
		AlmostEqual(imag(a), imag(b), tol)
}

// AlmostZeroC returns true if both parts of a are within tol of zero.
func AlmostZeroC(a complex128, tol float64) bool { return AlmostEqualC(a, 0, tol) }

// AlmostOneC returns true if a is within tol of 1 + 0i.
func AlmostOneC(a complex128, tol float64) bool { return AlmostEqualC(a, 1, tol) }

// TrueZero returns exactly 0 if x is within tol of zero and x otherwise.
func TrueZero(x, tol float64) float64 {
	if AlmostZero(x, tol) {
		return 0
	}
	return x
}

// TrueZeroC applies TrueZero to the real and imaginary parts of z.
func TrueZeroC(z complex128, tol float64) complex128 {
	if cmplx.IsNaN(z) {
		return z
	}
	return complex(TrueZero(real(z), tol), TrueZero(imag(z), tol))
}
