package roots

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func r(x float64, n int) Root { return Root{complex(x, 0), n} }
func c(z complex128) Root     { return Root{z, 1} }

func checkRoots(t *testing.T, got, want Roots) {
	t.Helper()
	const eps = 1e-9
	if !assert.Equal(t, len(want), len(got), "got roots %v, expected %v", got, want) {
		return
	}
	for i := range want {
		scale := math.Max(1, cmplx.Abs(want[i].Value))
		if cmplx.Abs(got[i].Value-want[i].Value) > eps*scale {
			t.Errorf("root %d is %v but we expected %v", i, got[i].Value, want[i].Value)
		}
		assert.Equal(t, want[i].Multiplicity, got[i].Multiplicity,
			"multiplicity of root %d (%v)", i, want[i].Value)
	}
}

func TestLinear(t *testing.T) {
	rs, err := Linear(2, -3)
	require.NoError(t, err)
	checkRoots(t, rs, Roots{r(1.5, 1)})

	rs, err = Linear(5, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), rs[0].Value)
	assert.False(t, math.Signbit(real(rs[0].Value)))

	for _, test := range [][2]float64{{0, 1}, {0, 0}, {1e-12, 1}} {
		_, err := Linear(test[0], test[1])
		assert.Truef(t, errors.Is(err, ErrDegenerateInput),
			"Linear(%g, %g) returned %v", test[0], test[1], err)
	}
}

func TestQuadratic(t *testing.T) {
	table := []struct {
		a, b, c float64
		want    Roots
	}{
		{1, -3, 2, Roots{r(1, 1), r(2, 1)}},
		{1, 2, 1, Roots{r(-1, 2)}},
		{1, 0, 1, Roots{c(-1i), c(1i)}},
		{2, -4, -6, Roots{r(-1, 1), r(3, 1)}},
		{1, 0, 0, Roots{r(0, 2)}},
		{1, 0, -4, Roots{r(-2, 1), r(2, 1)}},
		{1, -2, 5, Roots{c(1 - 2i), c(1 + 2i)}},
		{1e-6, -3e-6, 2e-6, Roots{r(1, 1), r(2, 1)}},
		{4e8, -12e8, 8e8, Roots{r(1, 1), r(2, 1)}},
	}

	for _, test := range table {
		rs, err := Quadratic(test.a, test.b, test.c)
		require.NoError(t, err)
		checkRoots(t, rs, test.want)
	}
}

func TestQuadraticCancellation(t *testing.T) {
	// x² - 1e8·x + 1 has roots near 1e-8 and 1e8. The naive formula loses
	// every digit of the small root.
	rs, err := Quadratic(1, -1e8, 1)
	require.NoError(t, err)
	xs := rs.Real()
	require.Len(t, xs, 2)
	assert.InEpsilon(t, 1e-8, xs[0], 1e-12)
	assert.InEpsilon(t, 1e8, xs[1], 1e-12)
}

func TestSmallLeadingCoefficient(t *testing.T) {
	// The leading coefficient is small next to b but the second root is
	// still finite and representable.
	rs, err := Quadratic(1, 1e10, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Count())
	xs := rs.Real()
	require.Len(t, xs, 2)
	assert.InEpsilon(t, -1e10, xs[0], 1e-9)
	assert.InEpsilon(t, -1e-10, xs[1], 1e-9)
}

func TestPerturbedTripleRoot(t *testing.T) {
	// (x - 1)³ + δ has roots 1 - cbrt(δ) and 1 + cbrt(δ)·(1 ± i√3)/2. Near
	// δ = 4e-8 the depressed cubic has p ≈ 0 while q sits just above the
	// tolerance.
	deltas := []float64{
		1e-9, 1e-8, 2.95e-8, 3e-8, 4e-8, 5e-8, 5.23e-8, 1e-7, 1e-6, -4e-8,
	}
	for _, delta := range deltas {
		p := Polynomial{1, -3, 3, -1 + delta}
		rs, err := Cubic(p[0], p[1], p[2], p[3])
		require.NoError(t, err, "delta = %g", delta)
		assert.Equal(t, 3, rs.Count(), "delta = %g: %v", delta, rs)

		dist := math.Cbrt(math.Abs(delta))
		for _, root := range rs {
			z := root.Value
			require.Falsef(t, cmplx.IsNaN(z) || cmplx.IsInf(z),
				"delta = %g: root %v", delta, z)
			assert.LessOrEqualf(t, cmplx.Abs(z-1), 1.01*dist+1e-9,
				"delta = %g: root %v", delta, z)
			assert.LessOrEqualf(t, cmplx.Abs(p.Eval(z)), 10*math.Abs(delta),
				"delta = %g: root %v", delta, z)
		}

		if math.Abs(delta) >= 2.95e-8 {
			require.Len(t, rs, 3, "delta = %g", delta)
			xs := rs.Real()
			require.Len(t, xs, 1, "delta = %g", delta)
			assert.InDelta(t, 1-math.Copysign(dist, delta), xs[0], 1e-6,
				"delta = %g", delta)
		}
	}

	// Quartic delegates to Cubic through its tiny leading coefficient.
	want, err := Cubic(1, -3, 3, -1+4e-8)
	require.NoError(t, err)
	got, err := Quartic(1e-20, 1, -3, 3, -1+4e-8)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCubic(t *testing.T) {
	s3 := math.Sqrt(3) / 2
	table := []struct {
		a, b, c, d float64
		want       Roots
	}{
		{1, -6, 11, -6, Roots{r(1, 1), r(2, 1), r(3, 1)}},
		{1, -3, 3, -1, Roots{r(1, 3)}},
		{1, -4, 5, -2, Roots{r(1, 2), r(2, 1)}},
		{1, 0, 0, -1, Roots{c(complex(-0.5, -s3)), c(complex(-0.5, s3)), r(1, 1)}},
		{1, 0, 0, 0, Roots{r(0, 3)}},
		{1, 0, -1, 0, Roots{r(-1, 1), r(0, 1), r(1, 1)}},
		{1, 0, 0, -5, nil},
		{2, 0, 0, 16, nil},
		{1, -1, 1, -1, Roots{c(-1i), c(1i), r(1, 1)}},
		{1, 3, 0, -4, Roots{r(-2, 2), r(1, 1)}},
	}
	table[6].want = Roots{
		c(complex(-0.5*math.Cbrt(5), -s3*math.Cbrt(5))),
		c(complex(-0.5*math.Cbrt(5), s3*math.Cbrt(5))),
		r(math.Cbrt(5), 1),
	}
	table[7].want = Roots{
		r(-2, 1), c(complex(1, -2*s3)), c(complex(1, 2*s3)),
	}

	for i, test := range table {
		rs, err := Cubic(test.a, test.b, test.c, test.d)
		require.NoError(t, err, "%d)", i+1)
		checkRoots(t, rs, test.want)
	}
}

func TestQuartic(t *testing.T) {
	table := []struct {
		a, b, c, d, e float64
		want          Roots
	}{
		{3, 6, -123, -126, 1080, Roots{r(-6, 1), r(-4, 1), r(3, 1), r(5, 1)}},
		{1, 0, 0, 0, -1, Roots{r(-1, 1), c(-1i), c(1i), r(1, 1)}},
		{1, 0, -5, 0, 4, Roots{r(-2, 1), r(-1, 1), r(1, 1), r(2, 1)}},
		{1, 0, 5, 0, 4, Roots{c(-2i), c(-1i), c(1i), c(2i)}},
		{1, -4, 6, -4, 1, Roots{r(1, 4)}},
		{1, 0, -2, 0, 1, Roots{r(-1, 2), r(1, 2)}},
		{1, -7, 17, -17, 6, Roots{r(1, 2), r(2, 1), r(3, 1)}},
		{1, -3, 3, -3, 2, Roots{c(-1i), c(1i), r(1, 1), r(2, 1)}},
		{1, -10, 35, -50, 24, Roots{r(1, 1), r(2, 1), r(3, 1), r(4, 1)}},
		{1, 0, 0, 0, 0, Roots{r(0, 4)}},
		{1, 0, -1, 0, 0, Roots{r(-1, 1), r(0, 2), r(1, 1)}},
	}

	for i, test := range table {
		rs, err := Quartic(test.a, test.b, test.c, test.d, test.e)
		require.NoError(t, err, "%d)", i+1)
		checkRoots(t, rs, test.want)
		assert.Equal(t, 4, rs.Count(), "%d)", i+1)
	}
}

func TestDelegation(t *testing.T) {
	want, err := Quadratic(1, -3, 2)
	require.NoError(t, err)

	got, err := Cubic(0, 1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = Quartic(0, 0, 1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = Cubic(1e-14, 1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	lin, err := Quadratic(0, 2, -4)
	require.NoError(t, err)
	checkRoots(t, lin, Roots{r(2, 1)})
}

func TestDegenerate(t *testing.T) {
	table := []struct {
		name    string
		solve   func() (Roots, error)
		wantErr error
	}{
		{"zero quadratic", func() (Roots, error) { return Quadratic(0, 0, 0) }, ErrDegenerateInput},
		{"constant quadratic", func() (Roots, error) { return Quadratic(0, 0, 3) }, ErrDegenerateInput},
		{"zero cubic", func() (Roots, error) { return Cubic(0, 0, 0, 0) }, ErrDegenerateInput},
		{"constant quartic", func() (Roots, error) { return Quartic(0, 0, 0, 0, 1) }, ErrDegenerateInput},
		{"nan", func() (Roots, error) { return Quadratic(math.NaN(), 1, 1) }, ErrNonFinite},
		{"inf", func() (Roots, error) { return Quartic(1, 0, math.Inf(1), 0, 1) }, ErrNonFinite},
		{"degree", func() (Roots, error) { return Polynomial{1, 2, 3, 4, 5, 6}.Roots() }, ErrDegree},
		{"empty", func() (Roots, error) { return Polynomial{}.Roots() }, ErrDegree},
	}

	for _, tc := range table {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rs, err := tc.solve()
			require.Error(t, err)
			assert.Nil(t, rs)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestRootsAccessors(t *testing.T) {
	rs, err := Quartic(1, -3, 3, -3, 2)
	require.NoError(t, err)

	diff(t, []float64{1, 2}, rs.Real(), cmpopts.EquateApprox(0, 1e-9))
	cs := rs.Complex()
	require.Len(t, cs, 2)
	assert.InDelta(t, -1, imag(cs[0]), 1e-9)
	assert.InDelta(t, 1, imag(cs[1]), 1e-9)
	assert.Equal(t, 4, rs.Count())
	assert.Len(t, rs.Values(), 4)

	rs, err = Quadratic(1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{-1, -1}, rs.Values())
	assert.Equal(t, 2, rs.Count())
	assert.Len(t, rs.Complex(), 0)
}

func TestPolynomial(t *testing.T) {
	p := Polynomial{1, -6, 11, -6}
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, 0.0, p.EvalReal(2))
	assert.Equal(t, -6.0, p.EvalReal(0))
	assert.Equal(t, complex(-6, 0), p.Eval(0))
	assert.Equal(t, Polynomial{3, -12, 11}, p.Derivative())
	assert.Equal(t, Polynomial{0}, Polynomial{7}.Derivative())

	rs, err := p.Roots()
	require.NoError(t, err)
	diff(t, []float64{1, 2, 3}, rs.Real(), cmpopts.EquateApprox(0, 1e-9))

	q := Polynomial{1, 0, 1}
	assert.InDelta(t, 0, cmplx.Abs(q.Eval(1i)), 1e-15)
}

func TestSolverOptions(t *testing.T) {
	s := NewSolver(WithoutPolish(), WithTolerance(1e-6))
	assert.False(t, s.Polish)
	assert.Equal(t, 1e-6, s.Tol)

	rs, err := s.Cubic(1, -6, 11, -6)
	require.NoError(t, err)
	checkRoots(t, rs, Roots{r(1, 1), r(2, 1), r(3, 1)})

	// With a loose tolerance, close roots are reported as a repeated root.
	loose := NewSolver(WithTolerance(1e-4))
	rs, err = loose.Quadratic(1, -2, 1-1e-6)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, 2, rs[0].Multiplicity)
	assert.InDelta(t, 1, real(rs[0].Value), 1e-6)

	rs, err = DefaultSolver.Quadratic(1, -2, 1-1e-6)
	require.NoError(t, err)
	assert.Len(t, rs, 2)
}

// companionRoots finds the roots of a monic polynomial as the eigenvalues of
// its companion matrix.
func companionRoots(t *testing.T, p Polynomial) []complex128 {
	n := p.Degree()
	data := make([]float64, n*n)
	for j := 0; j < n; j++ {
		data[j] = -p[j+1] / p[0]
	}
	for i := 1; i < n; i++ {
		data[i*n+i-1] = 1
	}

	var eig mat.Eigen
	ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenNone)
	require.True(t, ok)
	return eig.Values(nil)
}

func TestAgainstEigenvalues(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for trial := 0; trial < 200; trial++ {
		deg := 2 + trial%3
		p := make(Polynomial, deg+1)
		p[0] = 1 + 4*rng.Float64()
		for i := 1; i <= deg; i++ {
			p[i] = 20*rng.Float64() - 10
		}

		rs, err := p.Roots()
		require.NoError(t, err)
		got := rs.Values()
		want := companionRoots(t, p)
		require.Len(t, got, len(want), "%v", p)

		used := make([]bool, len(want))
		for _, z := range got {
			best := -1
			for j, w := range want {
				if !used[j] && (best < 0 || cmplx.Abs(z-w) < cmplx.Abs(z-want[best])) {
					best = j
				}
			}
			used[best] = true
			scale := math.Max(1, cmplx.Abs(z))
			assert.LessOrEqualf(t, cmplx.Abs(z-want[best]), 1e-6*scale,
				"%v: root %v, eigenvalue %v", p, z, want[best])
		}

		for i := 1; i < len(rs); i++ {
			assert.False(t, less(rs[i].Value, rs[i-1].Value), "%v unordered", rs)
		}
	}
}

func BenchmarkQuartic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Quartic(3, 6, -123, -126, 1080)
	}
}
