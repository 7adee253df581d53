package interpolate

// QuadraticCoeffs describes y = A·dx² + B·dx + C on one segment.
type QuadraticCoeffs struct {
	A, B, C float64
}

// Quadratic is a piecewise quadratic interpolator.
type Quadratic struct {
	domain
	ys       []float64
	coeffs   []QuadraticCoeffs
	boundary QuadraticBoundary
}

// NewQuadratic creates a piecewise quadratic interpolator from at least three
// samples. The default boundary is LinearFirst.
func NewQuadratic(xs, ys []float64, opts ...Option) (*Quadratic, error) {
	if err := checkSamples("NewQuadratic", xs, len(ys), 3); err != nil {
		return nil, err
	} else if err := checkFinite("NewQuadratic", "ys", ys); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	q := &Quadratic{domain: newDomain(xs, o), boundary: o.quadratic}
	q.ys = make([]float64, len(ys))
	copy(q.ys, ys)
	q.coeffs = make([]QuadraticCoeffs, len(xs)-1)

	switch o.quadratic {
	case LinearFirst:
		q.linearFirst()
	case LinearLast:
		q.linearLast()
	case Local:
		q.local()
	default:
		return nil, invalidBoundary(o.quadratic)
	}
	return q, nil
}

func (q *Quadratic) linearFirst() {
	xs, ys, cs := q.xs, q.ys, q.coeffs
	for i := range cs {
		h := xs[i+1] - xs[i]
		cs[i].C = ys[i]
		if i == 0 {
			cs[i].B = (ys[1] - ys[0]) / h
		} else {
			hPrev := xs[i] - xs[i-1]
			cs[i].B = cs[i-1].B + 2*cs[i-1].A*hPrev
		}
		cs[i].A = ((ys[i+1]-ys[i])/h - cs[i].B) / h
	}
}

func (q *Quadratic) linearLast() {
	xs, ys, cs := q.xs, q.ys, q.coeffs
	// Slope at the right edge of the current segment.
	slope := 0.0
	for i := len(cs) - 1; i >= 0; i-- {
		h := xs[i+1] - xs[i]
		mean := (ys[i+1] - ys[i]) / h
		cs[i].C = ys[i]
		if i == len(cs)-1 {
			cs[i].B = mean
		} else {
			cs[i].A = (slope - mean) / h
			cs[i].B = slope - 2*cs[i].A*h
		}
		slope = cs[i].B
	}
}

func (q *Quadratic) local() {
	xs, ys, cs := q.xs, q.ys, q.coeffs
	for i := range cs {
		// Third point: the next sample, or the previous one for the last
		// segment.
		k := i + 2
		if k == len(xs) {
			k = i - 1
		}
		h := xs[i+1] - xs[i]
		f01 := (ys[i+1] - ys[i]) / h
		var f2 float64
		if k > i {
			f12 := (ys[k] - ys[i+1]) / (xs[k] - xs[i+1])
			f2 = (f12 - f01) / (xs[k] - xs[i])
		} else {
			fk0 := (ys[i] - ys[k]) / (xs[i] - xs[k])
			f2 = (f01 - fk0) / (xs[i+1] - xs[k])
		}
		cs[i].A = f2
		cs[i].B = f01 - f2*h
		cs[i].C = ys[i]
	}
}

// Eval computes the value of the interpolator at x.
func (q *Quadratic) Eval(x float64) (float64, error) {
	i, dx, err := q.segment(x)
	if err != nil {
		return 0, err
	} else if q.isLast(x) {
		return q.ys[len(q.ys)-1], nil
	}
	c := q.coeffs[i]
	return (c.A*dx+c.B)*dx + c.C, nil
}

// EvalAll evaluates the interpolator at every point in xs.
func (q *Quadratic) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(q.Eval, xs, out)
}

// Diff computes the derivative of the given order at x.
func (q *Quadratic) Diff(x float64, order int) (float64, error) {
	if err := checkOrder(order); err != nil {
		return 0, err
	} else if order == 0 {
		return q.Eval(x)
	}

	i, dx, err := q.segment(x)
	if err != nil {
		return 0, err
	}
	c := q.coeffs[i]
	switch order {
	case 1:
		return 2*c.A*dx + c.B, nil
	case 2:
		return 2 * c.A, nil
	default:
		return 0, nil
	}
}

// Boundary returns the end condition the interpolator was built with.
func (q *Quadratic) Boundary() QuadraticBoundary { return q.boundary }

// Coeffs returns a copy of the per-segment coefficients.
func (q *Quadratic) Coeffs() []QuadraticCoeffs {
	out := make([]QuadraticCoeffs, len(q.coeffs))
	copy(out, q.coeffs)
	return out
}
