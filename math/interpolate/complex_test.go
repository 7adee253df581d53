package interpolate

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexLinear(t *testing.T) {
	xs := []float64{0, 1, 3}
	zs := []complex128{0, 1 + 2i, -1 + 4i}

	z, err := NewComplexLinear(xs, zs)
	require.NoError(t, err)
	assert.Equal(t, 0.0, z.XMin())
	assert.Equal(t, 3.0, z.XMax())
	assert.Equal(t, xs, z.X())

	for i := range xs {
		v, err := z.Eval(xs[i])
		require.NoError(t, err)
		assert.Equal(t, zs[i], v)
	}
	v, err := z.Eval(2)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(v-3i), 1e-12)

	dv, err := z.Diff(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(dv-(-1+1i)), 1e-12)

	re, im := z.Coeffs()
	assert.Equal(t, []LinearCoeffs{{1, 0}, {-1, 1}}, re)
	assert.Equal(t, []LinearCoeffs{{2, 0}, {1, 2}}, im)

	reI, imI := z.Parts()
	y, err := reI.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-15)
	y, err = imI.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1, y, 1e-15)

	_, err = z.Eval(-1)
	assert.True(t, errors.Is(err, ErrOutOfDomain))
	_, err = z.Diff(1, -1)
	assert.True(t, errors.Is(err, ErrDerivativeOrder))
}

func TestComplexSplines(t *testing.T) {
	f := func(x float64) complex128 {
		return complex(x*x*x-x, 2*x*x+1)
	}
	xs := []float64{-1, -0.25, 0.5, 1, 2, 2.5}
	zs := make([]complex128, len(xs))
	for i := range xs {
		zs[i] = f(xs[i])
	}

	quad, err := NewComplexQuadratic(xs, zs, WithQuadraticBoundary(Local))
	require.NoError(t, err)
	cubic, err := NewComplexCubic(xs, zs, WithCubicBoundary(NotAKnot))
	require.NoError(t, err)

	vs, err := cubic.EvalAll(xs)
	require.NoError(t, err)
	assert.Equal(t, zs, vs)

	for x := -1.0; x <= 2.5; x += 0.125 {
		v, err := cubic.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, 0, cmplx.Abs(v-f(x)), 1e-10, "cubic at %g", x)

		// The quadratic reproduces the imaginary part exactly.
		v, err = quad.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, imag(f(x)), imag(v), 1e-10, "quadratic at %g", x)
	}

	_, err = NewComplexCubic(xs[:3], zs[:3])
	assert.True(t, errors.Is(err, ErrInsufficientSamples))
	_, err = NewComplexQuadratic(xs, zs[:2])
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestComplexHermite(t *testing.T) {
	xs := []float64{0, 1, 2}
	zs := []complex128{1, 1i, -1}
	dzs := []complex128{1i, -1, -1i}

	z, err := NewComplexHermite(xs, zs, dzs)
	require.NoError(t, err)
	for i := range xs {
		v, err := z.Eval(xs[i])
		require.NoError(t, err)
		assert.Equal(t, zs[i], v)

		dv, err := z.Diff(xs[i], 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, cmplx.Abs(dv-dzs[i]), 1e-12)
	}

	_, err = NewComplexHermite(xs, zs, dzs[:1])
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}
