package interpolate

// LinearCoeffs describes y = A·dx + B on one segment, where dx is the offset
// from the segment's left sample.
type LinearCoeffs struct {
	A, B float64
}

// Linear is a piecewise linear interpolator.
type Linear struct {
	domain
	ys     []float64
	coeffs []LinearCoeffs
}

// NewLinear creates a piecewise linear interpolator from at least two samples.
func NewLinear(xs, ys []float64, opts ...Option) (*Linear, error) {
	if err := checkSamples("NewLinear", xs, len(ys), 2); err != nil {
		return nil, err
	} else if err := checkFinite("NewLinear", "ys", ys); err != nil {
		return nil, err
	}

	lin := &Linear{domain: newDomain(xs, newOptions(opts))}
	lin.ys = make([]float64, len(ys))
	copy(lin.ys, ys)

	lin.coeffs = make([]LinearCoeffs, len(xs)-1)
	for i := range lin.coeffs {
		lin.coeffs[i].A = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
		lin.coeffs[i].B = ys[i]
	}
	return lin, nil
}

// Eval computes the value of the interpolator at x.
func (lin *Linear) Eval(x float64) (float64, error) {
	i, dx, err := lin.segment(x)
	if err != nil {
		return 0, err
	} else if lin.isLast(x) {
		return lin.ys[len(lin.ys)-1], nil
	}
	return lin.coeffs[i].A*dx + lin.coeffs[i].B, nil
}

// EvalAll evaluates the interpolator at every point in xs.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(lin.Eval, xs, out)
}

// Diff computes the derivative of the given order at x. At an interior sample
// point the slope of the segment to its right is used.
func (lin *Linear) Diff(x float64, order int) (float64, error) {
	if err := checkOrder(order); err != nil {
		return 0, err
	}
	switch order {
	case 0:
		return lin.Eval(x)
	case 1:
		i, _, err := lin.segment(x)
		if err != nil {
			return 0, err
		}
		return lin.coeffs[i].A, nil
	default:
		_, _, err := lin.segment(x)
		return 0, err
	}
}

// Coeffs returns a copy of the per-segment coefficients.
func (lin *Linear) Coeffs() []LinearCoeffs {
	out := make([]LinearCoeffs, len(lin.coeffs))
	copy(out, lin.coeffs)
	return out
}

// LinearAt linearly interpolates the table (xs, ys) at a single point.
func LinearAt(xs, ys []float64, x float64) (float64, error) {
	lin, err := NewLinear(xs, ys)
	if err != nil {
		return 0, err
	}
	return lin.Eval(x)
}
