package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlmostEqual(t *testing.T) {
	table := []struct {
		a, b, tol float64
		res       bool
	}{
		{0, 0, 0, true},
		{1, 1, 0, true},
		{1, 1 + 1e-12, 1e-9, true},
		{1, 1 + 1e-6, 1e-9, false},
		{0, 1e-10, 1e-9, true},
		{0, 1e-8, 1e-9, false},
		// relative for large values
		{1e12, 1e12 + 100, 1e-9, true},
		{1e12, 1e12 + 1e4, 1e-9, false},
		{-3, 3, 0.5, false},
		{math.NaN(), math.NaN(), 1, false},
		{math.NaN(), 0, 1, false},
		{math.Inf(1), math.Inf(1), 1e-9, true},
		{math.Inf(1), math.Inf(-1), 1e-9, false},
		{math.Inf(1), 1e300, 1e-9, false},
	}

	for i, test := range table {
		assert.Equal(t, test.res, AlmostEqual(test.a, test.b, test.tol),
			"%d) AlmostEqual(%g, %g, %g)", i+1, test.a, test.b, test.tol)
		assert.Equal(t, test.res, AlmostEqual(test.b, test.a, test.tol),
			"%d) AlmostEqual is not symmetric", i+1)
	}
}

func TestAlmostZeroOne(t *testing.T) {
	tol := float64(DefaultTolerance)

	assert.True(t, AlmostZero(0, tol))
	assert.True(t, AlmostZero(-5e-10, tol))
	assert.False(t, AlmostZero(2e-9, tol))
	assert.False(t, AlmostZero(math.NaN(), tol))

	assert.True(t, AlmostOne(1, tol))
	assert.True(t, AlmostOne(1-5e-10, tol))
	assert.False(t, AlmostOne(1.001, tol))
	assert.False(t, AlmostOne(-1, tol))
}

func TestComplex(t *testing.T) {
	tol := 1e-9
	assert.True(t, AlmostEqualC(1+2i, complex(1+1e-12, 2-1e-12), tol))
	assert.False(t, AlmostEqualC(1+2i, 1-2i, tol))
	assert.True(t, AlmostZeroC(complex(1e-12, -1e-12), tol))
	assert.False(t, AlmostZeroC(1e-3i, tol))
	assert.True(t, AlmostOneC(complex(1, 1e-11), tol))
}

func TestTrueZero(t *testing.T) {
	tol := 1e-9
	assert.Equal(t, 0.0, TrueZero(3e-12, tol))
	assert.Equal(t, 0.25, TrueZero(0.25, tol))
	assert.Equal(t, complex(1, 0), TrueZeroC(complex(1, 1e-15), tol))
	assert.Equal(t, complex(0, -2), TrueZeroC(complex(-1e-15, -2), tol))
}

func TestTolerance(t *testing.T) {
	assert.True(t, DefaultTolerance.Valid())
	assert.True(t, Tolerance(0).Valid())
	assert.False(t, Tolerance(-1e-9).Valid())
	assert.False(t, Tolerance(1).Valid())
	assert.False(t, Tolerance(math.NaN()).Valid())

	tol := Tolerance(1e-3)
	assert.True(t, tol.Equal(10, 10.005))
	assert.True(t, tol.Zero(5e-4))
	assert.True(t, tol.One(1.0009))
	assert.False(t, tol.One(1.01))
}
