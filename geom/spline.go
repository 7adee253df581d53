package geom

import (
	"errors"
	"fmt"

	intr "github.com/phil-mansfield/numerics/math/interpolate"
)

// ErrDomainMismatch is returned when the per-axis interpolators of a
// Spline3D do not share identical knots.
var ErrDomainMismatch = errors.New("geom: per-axis interpolators have different knots")

// Spline3D is a parametric curve (x(t), y(t), z(t)) built from three one
// dimensional interpolators which share the same knots in t.
type Spline3D[I intr.Differentiable] struct {
	axes [3]I
}

type (
	LinearSpline3D = Spline3D[*intr.Linear]
	CubicSpline3D  = Spline3D[*intr.Cubic]
)

// NewSpline3D combines three interpolators into a parametric curve. The
// interpolators must have been constructed from the same t values.
func NewSpline3D[I intr.Differentiable](x, y, z I) (*Spline3D[I], error) {
	ts := x.X()
	for i, axis := range []I{y, z} {
		if !sameKnots(ts, axis.X()) {
			return nil, fmt.Errorf("%w: axis %d", ErrDomainMismatch, i+1)
		}
	}
	return &Spline3D[I]{axes: [3]I{x, y, z}}, nil
}

func sameKnots(t1, t2 []float64) bool {
	if len(t1) != len(t2) {
		return false
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			return false
		}
	}
	return true
}

// NewLinearSpline3D creates a piecewise linear path through pts.
func NewLinearSpline3D(
	ts []float64, pts []Vec, opts ...intr.Option,
) (*LinearSpline3D, error) {
	xs, ys, zs := Components(pts)
	var axes [3]*intr.Linear
	for i, vals := range [3][]float64{xs, ys, zs} {
		var err error
		if axes[i], err = intr.NewLinear(ts, vals, opts...); err != nil {
			return nil, err
		}
	}
	return NewSpline3D(axes[0], axes[1], axes[2])
}

// NewCubicSpline3D creates a cubic spline path through pts. Boundary options
// apply to every axis. WithEndSlopes is not meaningful here, use
// NewHermiteSpline3D to fix velocities instead.
func NewCubicSpline3D(
	ts []float64, pts []Vec, opts ...intr.Option,
) (*CubicSpline3D, error) {
	xs, ys, zs := Components(pts)
	var axes [3]*intr.Cubic
	for i, vals := range [3][]float64{xs, ys, zs} {
		var err error
		if axes[i], err = intr.NewCubic(ts, vals, opts...); err != nil {
			return nil, err
		}
	}
	return NewSpline3D(axes[0], axes[1], axes[2])
}

// NewHermiteSpline3D creates a path which passes through pos[i] with
// velocity vel[i] at ts[i].
func NewHermiteSpline3D(
	ts []float64, pos, vel []Vec, opts ...intr.Option,
) (*CubicSpline3D, error) {
	xs, ys, zs := Components(pos)
	vxs, vys, vzs := Components(vel)
	vals := [3][]float64{xs, ys, zs}
	derivs := [3][]float64{vxs, vys, vzs}

	var axes [3]*intr.Cubic
	for i := range axes {
		var err error
		axes[i], err = intr.NewHermite(ts, vals[i], derivs[i], opts...)
		if err != nil {
			return nil, err
		}
	}
	return NewSpline3D(axes[0], axes[1], axes[2])
}

// Eval returns the position of the path at t.
func (sp *Spline3D[I]) Eval(t float64) (Vec, error) {
	return sp.Diff(t, 0)
}

// Velocity returns the first derivative of the path at t.
func (sp *Spline3D[I]) Velocity(t float64) (Vec, error) {
	return sp.Diff(t, 1)
}

// Acceleration returns the second derivative of the path at t.
func (sp *Spline3D[I]) Acceleration(t float64) (Vec, error) {
	return sp.Diff(t, 2)
}

// Diff returns the order-th derivative of each axis at t.
func (sp *Spline3D[I]) Diff(t float64, order int) (Vec, error) {
	var v Vec
	for i, axis := range sp.axes {
		var err error
		if order == 0 {
			v[i], err = axis.Eval(t)
		} else {
			v[i], err = axis.Diff(t, order)
		}
		if err != nil {
			return Vec{}, err
		}
	}
	return v, nil
}

// EvalAll evaluates the path at every value in ts. If an output slice is
// given, it is used instead of allocating a new one and must have the same
// length as ts.
func (sp *Spline3D[I]) EvalAll(ts []float64, out ...[]Vec) ([]Vec, error) {
	var vs []Vec
	if len(out) == 0 {
		vs = make([]Vec, len(ts))
	} else {
		vs = out[0]
		if len(vs) != len(ts) {
			return nil, fmt.Errorf("%w: EvalAll() given len(ts) = %d but "+
				"len(out) = %d", intr.ErrLengthMismatch, len(ts), len(vs))
		}
	}

	for i, t := range ts {
		var err error
		if vs[i], err = sp.Eval(t); err != nil {
			return nil, err
		}
	}
	return vs, nil
}

func (sp *Spline3D[I]) TMin() float64 { return sp.axes[0].XMin() }
func (sp *Spline3D[I]) TMax() float64 { return sp.axes[0].XMax() }

// T returns a copy of the knots.
func (sp *Spline3D[I]) T() []float64 { return sp.axes[0].X() }

// AxisX, AxisY, and AxisZ give access to the per-axis interpolators, and
// through them to their coefficient tables.
func (sp *Spline3D[I]) AxisX() I { return sp.axes[0] }
func (sp *Spline3D[I]) AxisY() I { return sp.axes[1] }
func (sp *Spline3D[I]) AxisZ() I { return sp.axes[2] }
