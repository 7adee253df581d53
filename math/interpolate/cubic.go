package interpolate

import (
	"fmt"
)

// CubicCoeffs describes y = A·dx³ + B·dx² + C·dx + D on one segment.
type CubicCoeffs struct {
	A, B, C, D float64
}

// Cubic is a piecewise cubic interpolator. It is either a cubic spline,
// which is C² at every interior sample, or a Hermite interpolant with
// prescribed first derivatives, which is C¹.
type Cubic struct {
	domain
	ys     []float64
	coeffs []CubicCoeffs
	// y2s holds the second derivative at each sample for splines.
	y2s      []float64
	boundary CubicBoundary
}

// NewCubic creates a cubic spline based off a table of x and y values. At
// least four samples are required. The tridiagonal system for the second
// derivatives is solved once here, in O(n) time. The default boundary is
// Natural.
func NewCubic(xs, ys []float64, opts ...Option) (*Cubic, error) {
	if err := checkSamples("NewCubic", xs, len(ys), 4); err != nil {
		return nil, err
	} else if err := checkFinite("NewCubic", "ys", ys); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	if o.cubic < Natural || o.cubic > Clamped {
		return nil, invalidBoundary(o.cubic)
	} else if o.cubic == Clamped {
		err := checkFinite("NewCubic", "end slopes", []float64{o.slope0, o.slopeN})
		if err != nil {
			return nil, err
		}
	}

	sp := &Cubic{domain: newDomain(xs, o), boundary: o.cubic}
	sp.ys = make([]float64, len(ys))
	copy(sp.ys, ys)
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]CubicCoeffs, len(xs)-1)

	if err := sp.calcY2s(o); err != nil {
		return nil, fmt.Errorf("NewCubic(): %w", err)
	}
	sp.calcCoeffs()

	tracer().Debugf("built %s cubic spline with %d samples", sp.boundary, len(xs))
	return sp, nil
}

// NewHermite creates a piecewise cubic which matches the values ys and the
// first derivatives yps at every sample. At least two samples are required.
func NewHermite(xs, ys, yps []float64, opts ...Option) (*Cubic, error) {
	if err := checkSamples("NewHermite", xs, len(ys), 2); err != nil {
		return nil, err
	} else if err := checkSamples("NewHermite", xs, len(yps), 2); err != nil {
		return nil, err
	} else if err := checkFinite("NewHermite", "ys", ys); err != nil {
		return nil, err
	} else if err := checkFinite("NewHermite", "yps", yps); err != nil {
		return nil, err
	}

	sp := &Cubic{domain: newDomain(xs, newOptions(opts)), boundary: Clamped}
	sp.ys = make([]float64, len(ys))
	copy(sp.ys, ys)
	sp.coeffs = make([]CubicCoeffs, len(xs)-1)

	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		slope := (ys[i+1] - ys[i]) / h
		sp.coeffs[i] = CubicCoeffs{
			A: (yps[i] + yps[i+1] - 2*slope) / (h * h),
			B: (3*slope - 2*yps[i] - yps[i+1]) / h,
			C: yps[i],
			D: ys[i],
		}
	}
	return sp, nil
}

// calcY2s computes the second derivative at every point in the table.
func (sp *Cubic) calcY2s(o *options) error {
	n := len(sp.xs)
	xs, ys := sp.xs, sp.ys
	as, bs := make([]float64, n), make([]float64, n)
	cs, rs := make([]float64, n), make([]float64, n)

	h := func(i int) float64 { return xs[i+1] - xs[i] }
	slope := func(i int) float64 { return (ys[i+1] - ys[i]) / h(i) }

	for j := 1; j < n-1; j++ {
		as[j] = h(j-1) / 6
		bs[j] = (h(j-1) + h(j)) / 3
		cs[j] = h(j) / 6
		rs[j] = slope(j) - slope(j-1)
	}

	// Rows lo through hi - 1 are solved. The other second derivatives
	// follow from the boundary conditions.
	lo, hi := 1, n-1
	switch o.cubic {
	case Natural:
	case Parabolic:
		// y2[0] = y2[1] and y2[n-1] = y2[n-2]
		bs[1] += as[1]
		bs[n-2] += cs[n-2]
	case NotAKnot:
		// y2[0] = (1 + r)·y2[1] - r·y2[2] with r = h0/h1, and the mirror
		// image at the other end.
		r0 := h(0) / h(1)
		bs[1] += as[1] * (1 + r0)
		cs[1] -= as[1] * r0
		rn := h(n-2) / h(n-3)
		bs[n-2] += cs[n-2] * (1 + rn)
		as[n-2] -= cs[n-2] * rn
	case Clamped:
		lo, hi = 0, n
		bs[0], cs[0] = h(0)/3, h(0)/6
		rs[0] = slope(0) - o.slope0
		as[n-1], bs[n-1] = h(n-2)/6, h(n-2)/3
		rs[n-1] = o.slopeN - slope(n-2)
	}

	err := TriDiagAt(as[lo:hi], bs[lo:hi], cs[lo:hi], rs[lo:hi], sp.y2s[lo:hi])
	if err != nil {
		return err
	}

	y2s := sp.y2s
	switch o.cubic {
	case Parabolic:
		y2s[0], y2s[n-1] = y2s[1], y2s[n-2]
	case NotAKnot:
		r0, rn := h(0)/h(1), h(n-2)/h(n-3)
		y2s[0] = (1+r0)*y2s[1] - r0*y2s[2]
		y2s[n-1] = (1+rn)*y2s[n-2] - rn*y2s[n-3]
	}
	return nil
}

func (sp *Cubic) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].A = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].B = y2s[i] / 2
		coeffs[i].C = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].D = ys[i]
	}
}

// Eval computes the value of the spline at x.
func (sp *Cubic) Eval(x float64) (float64, error) {
	i, dx, err := sp.segment(x)
	if err != nil {
		return 0, err
	} else if sp.isLast(x) {
		return sp.ys[len(sp.ys)-1], nil
	}
	c := sp.coeffs[i]
	return ((c.A*dx+c.B)*dx+c.C)*dx + c.D, nil
}

// EvalAll evaluates the spline at every point in xs.
func (sp *Cubic) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(sp.Eval, xs, out)
}

// Diff computes the derivative of spline at the given point to the
// specified order.
func (sp *Cubic) Diff(x float64, order int) (float64, error) {
	if err := checkOrder(order); err != nil {
		return 0, err
	} else if order == 0 {
		return sp.Eval(x)
	}

	i, dx, err := sp.segment(x)
	if err != nil {
		return 0, err
	}
	c := sp.coeffs[i]
	switch order {
	case 1:
		return (3*c.A*dx+2*c.B)*dx + c.C, nil
	case 2:
		return 6*c.A*dx + 2*c.B, nil
	case 3:
		return 6 * c.A, nil
	default:
		return 0, nil
	}
}

// Boundary returns the end condition of a spline. Hermite interpolants
// report Clamped.
func (sp *Cubic) Boundary() CubicBoundary { return sp.boundary }

// Coeffs returns a copy of the per-segment coefficients.
func (sp *Cubic) Coeffs() []CubicCoeffs {
	out := make([]CubicCoeffs, len(sp.coeffs))
	copy(out, sp.coeffs)
	return out
}
