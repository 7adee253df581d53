package roots

// Polynomial is a list of real coefficients, highest degree first:
// Polynomial{a, b, c} is a·x² + b·x + c.
type Polynomial []float64

// Degree returns the nominal degree of p, len(p) - 1.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval evaluates p at z with Horner's rule.
func (p Polynomial) Eval(z complex128) complex128 {
	var sum complex128
	for _, c := range p {
		sum = sum*z + complex(c, 0)
	}
	return sum
}

// EvalReal evaluates p at x.
func (p Polynomial) EvalReal(x float64) float64 {
	sum := 0.0
	for _, c := range p {
		sum = sum*x + c
	}
	return sum
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	n := len(p) - 1
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		out[i] = p[i] * float64(n-i)
	}
	return out
}

// Roots solves p with DefaultSolver. p must have degree 1 to 4.
func (p Polynomial) Roots() (Roots, error) { return DefaultSolver.Solve(p) }
