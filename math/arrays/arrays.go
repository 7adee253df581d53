/*package arrays generates the regular grids used as sample points for the
interpolators.
*/
package arrays

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrCount     = errors.New("arrays: fewer than two points requested")
	ErrStep      = errors.New("arrays: step does not lead from start to stop")
	ErrNonFinite = errors.New("arrays: non-finite bound")
)

// MaxPoints is the largest grid Regspace will allocate.
const MaxPoints = math.MaxInt32

// Linspace returns n evenly spaced values from start to stop, inclusive. The
// last value is exactly stop. start and stop must differ.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: Linspace() given n = %d", ErrCount, n)
	}
	out := make([]float64, n)
	return out, LinspaceAt(start, stop, out)
}

// LinspaceAt fills out with len(out) evenly spaced values from start to stop.
// The values are strictly monotonic, so start == stop is an error.
func LinspaceAt(start, stop float64, out []float64) error {
	if err := checkFinite(start, stop); err != nil {
		return err
	} else if len(out) < 2 {
		return fmt.Errorf("%w: LinspaceAt() given len(out) = %d",
			ErrCount, len(out))
	} else if start == stop {
		return fmt.Errorf("%w: LinspaceAt() given start = stop = %g",
			ErrStep, start)
	}

	n := len(out)
	delta := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*delta
	}
	out[n-1] = stop
	return nil
}

// Logspace returns n values from base^start to base^stop whose logarithms are
// evenly spaced.
func Logspace(start, stop float64, n int, base float64) ([]float64, error) {
	if !(base > 0) || base == 1 || math.IsInf(base, 0) {
		return nil, fmt.Errorf("%w: Logspace() given base %g", ErrStep, base)
	}
	out, err := Linspace(start, stop, n)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = math.Pow(base, out[i])
	}
	return out, nil
}

// Regspace returns start, start + step, start + 2·step, ... up to and
// including stop if it lies on the grid. Round-off in (stop - start)/step is
// forgiven at the 1e-9 relative level, so Regspace(0, 0.3, 0.1) has four
// elements.
func Regspace(start, stop, step float64) ([]float64, error) {
	if err := checkFinite(start, stop, step); err != nil {
		return nil, err
	}
	steps := (stop - start) / step
	if step == 0 || steps < 0 || math.IsNaN(steps) {
		return nil, fmt.Errorf("%w: Regspace(%g, %g, %g)",
			ErrStep, start, stop, step)
	} else if math.IsInf(steps, 0) || steps >= MaxPoints {
		return nil, fmt.Errorf("%w: Regspace(%g, %g, %g) needs more than %d "+
			"points", ErrStep, start, stop, step, MaxPoints)
	}

	n := int(math.Floor(steps+1e-9*math.Max(1, steps))) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

func checkFinite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %g", ErrNonFinite, x)
		}
	}
	return nil
}
