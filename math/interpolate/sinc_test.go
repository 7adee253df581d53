package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSincKernel(t *testing.T) {
	assert.Equal(t, 1.0, SincKernel(0))
	assert.InDelta(t, 0, SincKernel(1), 1e-15)
	assert.InDelta(t, 0, SincKernel(-3), 1e-15)
	assert.InDelta(t, 2/math.Pi, SincKernel(0.5), 1e-15)
	assert.InDelta(t, 1, SincKernel(1e-8), 1e-15)
	assert.Equal(t, SincKernel(0.3), SincKernel(-0.3))
}

func cosTable(n int) (xs, ys []float64) {
	xs, ys = make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = math.Cos(0.1 * math.Pi * xs[i])
	}
	return xs, ys
}

func TestSinc(t *testing.T) {
	xs, ys := cosTable(201)

	for _, opts := range [][]Option{nil, {WithLanczos(3)}} {
		s, err := NewSinc(xs, ys, opts...)
		require.NoError(t, err)

		for i := range xs {
			y, err := s.Eval(xs[i])
			require.NoError(t, err)
			assert.Equal(t, ys[i], y, "Eval(xs[%d])", i)
		}

		for _, x := range []float64{37.25, 100.5, 150.75} {
			y, err := s.Eval(x)
			require.NoError(t, err)
			assert.InDelta(t, math.Cos(0.1*math.Pi*x), y, 0.02,
				"window %d: Eval(%g)", s.Window(), x)
		}

		_, err = s.Eval(200.5)
		assert.True(t, errors.Is(err, ErrOutOfDomain))
	}
}

func TestSincWindowIsLocal(t *testing.T) {
	xs, ys := cosTable(50)
	s1, err := NewSinc(xs, ys, WithLanczos(2))
	require.NoError(t, err)

	far := append([]float64{}, ys...)
	far[0], far[49] = 100, -100
	s2, err := NewSinc(xs, far, WithLanczos(2))
	require.NoError(t, err)
	rect, err := NewSinc(xs, far)
	require.NoError(t, err)

	y1, _ := s1.Eval(24.5)
	y2, _ := s2.Eval(24.5)
	y3, _ := rect.Eval(24.5)
	assert.Equal(t, y1, y2)
	assert.NotEqual(t, y1, y3)

	_, err = NewSinc(xs, ys, WithLanczos(-1))
	assert.True(t, errors.Is(err, ErrOption))
}
