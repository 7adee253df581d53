package interpolate

import (
	"fmt"
	"math"
)

// Sinc is a band-limited interpolator which sums a sinc kernel centered on
// every sample. Nothing is precomputed, so each evaluation costs O(n). The
// samples are assumed to be close to uniformly spaced, with the kernel width
// set by the mean spacing.
type Sinc struct {
	domain
	ys     []float64
	dx     float64
	window int
}

// NewSinc creates a sinc interpolator from at least three samples. Use
// WithLanczos to taper the kernel.
func NewSinc(xs, ys []float64, opts ...Option) (*Sinc, error) {
	if err := checkSamples("NewSinc", xs, len(ys), 3); err != nil {
		return nil, err
	} else if err := checkFinite("NewSinc", "ys", ys); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	if o.lanczos < 0 {
		return nil, fmt.Errorf("%w: Lanczos window %d", ErrOption, o.lanczos)
	}

	s := &Sinc{domain: newDomain(xs, o), window: o.lanczos}
	s.ys = make([]float64, len(ys))
	copy(s.ys, ys)
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	return s, nil
}

// Eval computes the kernel sum at x. At a sample point the sample value is
// returned exactly.
func (s *Sinc) Eval(x float64) (float64, error) {
	i, dx, err := s.segment(x)
	if err != nil {
		return 0, err
	} else if dx == 0 {
		return s.ys[i], nil
	} else if s.isLast(x) {
		return s.ys[len(s.ys)-1], nil
	}

	a := float64(s.window)
	sum := 0.0
	for j, xj := range s.xs {
		u := (x - xj) / s.dx
		w := SincKernel(u)
		if s.window > 0 {
			if math.Abs(u) >= a {
				continue
			}
			w *= SincKernel(u / a)
		}
		sum += s.ys[j] * w
	}
	return sum, nil
}

// EvalAll evaluates the interpolator at every point in xs.
func (s *Sinc) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(s.Eval, xs, out)
}

// Window returns the Lanczos half-width, or zero for a rectangular window.
func (s *Sinc) Window() int { return s.window }

// SincKernel is the normalized sinc function sin(πx)/(πx).
func SincKernel(x float64) float64 {
	px := math.Pi * x
	if math.Abs(x) < 1e-6 {
		return 1 - px*px/6
	}
	return math.Sin(px) / px
}
