package interpolate

// coeffTable is a Differentiable interpolator which exposes its per-segment
// coefficients.
type coeffTable[C any] interface {
	Differentiable
	Coeffs() []C
}

// Complex interpolates complex samples by interpolating the real and
// imaginary parts independently over the same x values.
type Complex[C any, I coeffTable[C]] struct {
	re, im I
}

type (
	ComplexLinear    = Complex[LinearCoeffs, *Linear]
	ComplexQuadratic = Complex[QuadraticCoeffs, *Quadratic]
	ComplexCubic     = Complex[CubicCoeffs, *Cubic]
)

// NewComplexLinear is the complex counterpart of NewLinear.
func NewComplexLinear(xs []float64, ys []complex128, opts ...Option) (*ComplexLinear, error) {
	return newComplex[LinearCoeffs](ys, func(ys []float64) (*Linear, error) {
		return NewLinear(xs, ys, opts...)
	})
}

// NewComplexQuadratic is the complex counterpart of NewQuadratic.
func NewComplexQuadratic(xs []float64, ys []complex128, opts ...Option) (*ComplexQuadratic, error) {
	return newComplex[QuadraticCoeffs](ys, func(ys []float64) (*Quadratic, error) {
		return NewQuadratic(xs, ys, opts...)
	})
}

// NewComplexCubic is the complex counterpart of NewCubic. Clamped end slopes
// given by WithEndSlopes apply to both parts.
func NewComplexCubic(xs []float64, ys []complex128, opts ...Option) (*ComplexCubic, error) {
	return newComplex[CubicCoeffs](ys, func(ys []float64) (*Cubic, error) {
		return NewCubic(xs, ys, opts...)
	})
}

// NewComplexHermite is the complex counterpart of NewHermite.
func NewComplexHermite(xs []float64, ys, yps []complex128, opts ...Option) (*ComplexCubic, error) {
	re, im := split(ys)
	ypRe, ypIm := split(yps)

	z := &ComplexCubic{}
	var err error
	if z.re, err = NewHermite(xs, re, ypRe, opts...); err != nil {
		return nil, err
	}
	if z.im, err = NewHermite(xs, im, ypIm, opts...); err != nil {
		return nil, err
	}
	return z, nil
}

func newComplex[C any, I coeffTable[C]](
	ys []complex128, build func([]float64) (I, error),
) (*Complex[C, I], error) {
	re, im := split(ys)
	z := &Complex[C, I]{}
	var err error
	if z.re, err = build(re); err != nil {
		return nil, err
	}
	if z.im, err = build(im); err != nil {
		return nil, err
	}
	return z, nil
}

func split(zs []complex128) (re, im []float64) {
	re, im = make([]float64, len(zs)), make([]float64, len(zs))
	for i, z := range zs {
		re[i], im[i] = real(z), imag(z)
	}
	return re, im
}

// Eval computes the value of the interpolator at x.
func (z *Complex[C, I]) Eval(x float64) (complex128, error) {
	re, err := z.re.Eval(x)
	if err != nil {
		return 0, err
	}
	im, err := z.im.Eval(x)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// EvalAll evaluates the interpolator at every point in xs.
func (z *Complex[C, I]) EvalAll(xs []float64, out ...[]complex128) ([]complex128, error) {
	return evalAll(z.Eval, xs, out)
}

// Diff computes the derivative of the given order at x.
func (z *Complex[C, I]) Diff(x float64, order int) (complex128, error) {
	re, err := z.re.Diff(x, order)
	if err != nil {
		return 0, err
	}
	im, err := z.im.Diff(x, order)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func (z *Complex[C, I]) XMin() float64 { return z.re.XMin() }
func (z *Complex[C, I]) XMax() float64 { return z.re.XMax() }
func (z *Complex[C, I]) X() []float64  { return z.re.X() }

// Parts returns the interpolators of the real and imaginary parts.
func (z *Complex[C, I]) Parts() (re, im I) { return z.re, z.im }

// Coeffs returns copies of the coefficient tables of the real and imaginary
// parts.
func (z *Complex[C, I]) Coeffs() (re, im []C) {
	return z.re.Coeffs(), z.im.Coeffs()
}
