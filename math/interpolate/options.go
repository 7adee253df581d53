package interpolate

import (
	"fmt"
	"strings"
)

// QuadraticBoundary selects how a piecewise quadratic is closed off.
type QuadraticBoundary int

const (
	// LinearFirst makes the first segment a straight line and carries the
	// slope forward, giving a C¹ curve.
	LinearFirst QuadraticBoundary = iota
	// LinearLast makes the last segment a straight line and carries the
	// slope backward.
	LinearLast
	// Local fits each segment with the parabola through its two end points
	// and the next sample. The result is continuous but not C¹.
	Local
)

var quadraticNames = []string{"LinearFirst", "LinearLast", "Local"}

func (b QuadraticBoundary) String() string {
	if b < 0 || int(b) >= len(quadraticNames) {
		return fmt.Sprintf("QuadraticBoundary(%d)", int(b))
	}
	return quadraticNames[b]
}

// CubicBoundary selects the end conditions of a cubic spline.
type CubicBoundary int

const (
	// Natural sets the second derivative to zero at both ends.
	Natural CubicBoundary = iota
	// Parabolic makes the first and last segments quadratic.
	Parabolic
	// NotAKnot makes the third derivative continuous at the second and
	// second-to-last samples.
	NotAKnot
	// Clamped fixes the first derivative at both ends, see WithEndSlopes.
	Clamped
)

var cubicNames = []string{"Natural", "Parabolic", "NotAKnot", "Clamped"}

func (b CubicBoundary) String() string {
	if b < 0 || int(b) >= len(cubicNames) {
		return fmt.Sprintf("CubicBoundary(%d)", int(b))
	}
	return cubicNames[b]
}

// ParseQuadraticBoundary converts a case-insensitive name to a
// QuadraticBoundary.
func ParseQuadraticBoundary(s string) (QuadraticBoundary, error) {
	for i, name := range quadraticNames {
		if strings.EqualFold(s, name) {
			return QuadraticBoundary(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown quadratic boundary '%s'", ErrOption, s)
}

// ParseCubicBoundary converts a case-insensitive name to a CubicBoundary.
func ParseCubicBoundary(s string) (CubicBoundary, error) {
	for i, name := range cubicNames {
		if strings.EqualFold(s, name) {
			return CubicBoundary(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown cubic boundary '%s'", ErrOption, s)
}

type options struct {
	extrapolate bool

	quadratic QuadraticBoundary
	cubic     CubicBoundary
	// Only used by Clamped.
	slope0, slopeN float64

	// Lanczos window half-width. Zero means a rectangular window.
	lanczos int
}

// Option configures the construction of an interpolator. Options which do not
// apply to a given interpolator are ignored.
type Option func(*options)

// WithExtrapolation allows evaluation outside of [XMin, XMax] by continuing
// the first or last segment.
func WithExtrapolation() Option {
	return func(o *options) { o.extrapolate = true }
}

func WithQuadraticBoundary(b QuadraticBoundary) Option {
	return func(o *options) { o.quadratic = b }
}

func WithCubicBoundary(b CubicBoundary) Option {
	return func(o *options) { o.cubic = b }
}

// WithEndSlopes clamps a cubic spline's first derivative to d0 at XMin and dn
// at XMax.
func WithEndSlopes(d0, dn float64) Option {
	return func(o *options) {
		o.cubic = Clamped
		o.slope0, o.slopeN = d0, dn
	}
}

// WithLanczos multiplies the sinc kernel by a Lanczos window of half-width a
// samples. a = 0 restores the rectangular window.
func WithLanczos(a int) Option {
	return func(o *options) { o.lanczos = a }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func invalidBoundary(b fmt.Stringer) error {
	return fmt.Errorf("%w: boundary %s", ErrOption, b)
}
