package roots

import (
	"math"
	"math/cmplx"

	"github.com/phil-mansfield/numerics/math/compare"
)

// finish turns the raw roots of a rescaled monic polynomial into Roots:
// isolated real roots are polished, imaginary parts within tolerance of zero
// are dropped, and roots closer than sqrt(Tol) are merged.
func (s Solver) finish(sol solution) Roots {
	ys := make([]complex128, len(sol.ys))
	copy(ys, sol.ys)
	sep := math.Sqrt(s.Tol)

	if s.Polish {
		for i, y := range ys {
			if imag(y) == 0 && isolated(ys, i, sep) {
				ys[i] = complex(polishReal(sol.poly, real(y), 4), 0)
			}
		}
	}

	for i, y := range ys {
		if compare.AlmostZero(imag(y), s.Tol) {
			ys[i] = complex(real(y), 0)
		}
	}

	type cluster struct {
		first, sum complex128
		n          int
	}
	clusters := []cluster{}
outer:
	for _, y := range ys {
		for i := range clusters {
			if cmplx.Abs(y-clusters[i].first) < sep {
				clusters[i].sum += y
				clusters[i].n++
				continue outer
			}
		}
		clusters = append(clusters, cluster{first: y, sum: y, n: 1})
	}

	out := make(Roots, len(clusters))
	for i, c := range clusters {
		mean := c.sum / complex(float64(c.n), 0)
		re, im := real(mean)*sol.scale+0, imag(mean)*sol.scale
		if compare.AlmostZero(imag(mean), s.Tol) {
			im = 0
		}
		out[i] = Root{Value: complex(re, im), Multiplicity: c.n}
		if c.n > 1 {
			tracer().Debugf("merged %d roots near %g", c.n, out[i].Value)
		}
	}
	out.sort()
	return out
}

func isolated(ys []complex128, i int, sep float64) bool {
	for j := range ys {
		if j != i && cmplx.Abs(ys[i]-ys[j]) < sep {
			return false
		}
	}
	return true
}

// polishReal applies up to n Newton steps to a real root x of p, stopping as
// soon as a step fails to reduce |p(x)|.
func polishReal(p Polynomial, x float64, n int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	dp := p.Derivative()
	fx := p.EvalReal(x)
	for i := 0; i < n && fx != 0; i++ {
		dfx := dp.EvalReal(x)
		if dfx == 0 {
			break
		}
		x1 := x - fx/dfx
		f1 := p.EvalReal(x1)
		if !(math.Abs(f1) < math.Abs(fx)) {
			break
		}
		x, fx = x1, f1
	}
	return x
}
