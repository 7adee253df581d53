package roots

import (
	"math"
	"math/cmplx"

	"github.com/phil-mansfield/numerics/math/compare"
)

// solution holds the roots of a monic polynomial after it has been rescaled
// by x = scale·y so that its roots are of order unity.
type solution struct {
	ys    []complex128
	scale float64
	// poly is the rescaled monic polynomial, highest degree first.
	poly Polynomial
}

func (sol solution) values() []complex128 {
	xs := make([]complex128, len(sol.ys))
	for i, y := range sol.ys {
		xs[i] = y * complex(sol.scale, 0)
	}
	return xs
}

// solveMonic finds all roots of x^n + cs[0]·x^(n-1) + ... + cs[n-1].
func (s Solver) solveMonic(cs []float64) solution {
	scale := 0.0
	for k, c := range cs {
		scale = math.Max(scale, math.Pow(math.Abs(c), 1/float64(k+1)))
	}

	sol := solution{scale: scale, poly: make(Polynomial, len(cs)+1)}
	sol.poly[0] = 1
	if scale == 0 {
		// x^n = 0
		sol.scale = 1
		sol.ys = make([]complex128, len(cs))
		return sol
	}

	div := 1.0
	for k, c := range cs {
		div *= scale
		sol.poly[k+1] = c / div
	}

	ps := sol.poly
	switch len(cs) {
	case 2:
		r0, r1 := s.quadratic(ps[1], ps[2])
		sol.ys = []complex128{r0, r1}
	case 3:
		sol.ys = s.cubic(ps[1], ps[2], ps[3])
	case 4:
		sol.ys = s.quartic(ps[1], ps[2], ps[3], ps[4])
	default:
		panic("solveMonic called with unsupported degree.")
	}
	return sol
}

// quadratic solves y² + b·y + c = 0.
func (s Solver) quadratic(b, c float64) (complex128, complex128) {
	disc := b*b - 4*c
	switch {
	case compare.AlmostZero(disc, s.Tol):
		r := complex(-b/2, 0)
		return r, r
	case disc > 0:
		// q has the larger magnitude of the two roots, so neither root is
		// computed as the difference of two close numbers.
		q := -(b + math.Copysign(math.Sqrt(disc), b)) / 2
		return complex(q, 0), complex(c/q, 0)
	default:
		re, im := -b/2, math.Sqrt(-disc)/2
		return complex(re, -im), complex(re, im)
	}
}

// cubic solves y³ + b·y² + c·y + d = 0 through the depressed cubic
// t³ + p·t + q = 0 with y = t - b/3.
func (s Solver) cubic(b, c, d float64) []complex128 {
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3

	ts := s.depressedCubic(p, q)
	for i := range ts {
		ts[i] += complex(shift, 0)
	}
	return ts
}

func (s Solver) depressedCubic(p, q float64) []complex128 {
	if compare.AlmostZero(p, s.Tol) && compare.AlmostZero(q, s.Tol) {
		return []complex128{0, 0, 0}
	}

	h := q / 2
	g := p / 3
	disc := h*h + g*g*g

	// Sensitivity of disc to perturbations of p and q at the level of the
	// tolerance. Non-zero here because p and q are not both zero.
	sens := math.Abs(h) + g*g
	pZero := compare.AlmostZero(p, s.Tol)
	switch {
	case compare.AlmostZero(disc/sens, s.Tol) && !pZero:
		// One simple root and one double root.
		t1 := 3 * q / p
		t2 := -3 * q / (2 * p)
		return []complex128{complex(t1, 0), complex(t2, 0), complex(t2, 0)}

	case disc > 0 || pZero:
		// Cardano. u³ is chosen so that -h and the square root have the
		// same sign and do not cancel. With p ≈ 0 this reduces to the cube
		// roots of -q, and u cannot vanish because q is not almost zero.
		u := math.Cbrt(-h - math.Copysign(math.Sqrt(math.Max(disc, 0)), h))
		v := -g / u
		re := -(u + v) / 2
		im := math.Sqrt(3) / 2 * (u - v)
		if im < 0 {
			im = -im
		}
		return []complex128{complex(u+v, 0), complex(re, -im), complex(re, im)}

	default:
		// Three distinct real roots, p < 0.
		r := 2 * math.Sqrt(-g)
		cosPhi := 3 * q / (2 * p) * math.Sqrt(-3/p)
		phi := math.Acos(math.Max(-1, math.Min(1, cosPhi)))
		out := make([]complex128, 3)
		for k := range out {
			out[k] = complex(r*math.Cos(phi/3-2*math.Pi*float64(k)/3), 0)
		}
		return out
	}
}

// quartic solves y⁴ + b·y³ + c·y² + d·y + e = 0 through the depressed quartic
// z⁴ + p·z² + q·z + r = 0 with y = z - b/4.
func (s Solver) quartic(b, c, d, e float64) []complex128 {
	b2 := b * b
	p := c - 3*b2/8
	q := d - b*c/2 + b2*b/8
	r := e - b*d/4 + b2*c/16 - 3*b2*b2/256
	shift := complex(-b/4, 0)

	var zs []complex128
	if compare.AlmostZero(q, s.Tol) {
		zs = s.biquadratic(p, r)
	} else {
		zs = s.ferrari(p, q, r)
	}

	for i := range zs {
		zs[i] += shift
	}
	return zs
}

// biquadratic solves z⁴ + p·z² + r = 0 as a quadratic in w = z².
func (s Solver) biquadratic(p, r float64) []complex128 {
	w0, w1 := s.quadratic(p, r)
	out := make([]complex128, 0, 4)
	for _, w := range []complex128{w0, w1} {
		var z complex128
		if imag(w) == 0 {
			if real(w) >= 0 {
				z = complex(math.Sqrt(real(w)), 0)
			} else {
				z = complex(0, math.Sqrt(-real(w)))
			}
		} else {
			z = cmplx.Sqrt(w)
		}
		out = append(out, z, -z)
	}
	return out
}

// ferrari factors z⁴ + p·z² + q·z + r into two quadratics using a positive
// root m of the resolvent cubic 8m³ + 8p·m² + (2p² - 8r)·m - q² = 0.
func (s Solver) ferrari(p, q, r float64) []complex128 {
	rc := []float64{p, p*p/4 - r, -q * q / 8}
	m := math.Inf(-1)
	for _, root := range s.solveMonic(rc).values() {
		if imag(root) == 0 && real(root) > m {
			m = real(root)
		}
	}
	m = polishReal(Polynomial{1, rc[0], rc[1], rc[2]}, m, 8)
	if !(m > 0) {
		// The resolvent is negative at zero whenever q != 0, so this only
		// happens when m has underflowed.
		tracer().Infof("resolvent root %g is not positive, treating quartic as biquadratic", m)
		return s.biquadratic(p, r)
	}

	sq := math.Sqrt(2 * m)
	k := q / (2 * sq)
	z0, z1 := s.quadratic(sq, p/2+m-k)
	z2, z3 := s.quadratic(-sq, p/2+m+k)
	return []complex128{z0, z1, z2, z3}
}
