/*package geom contains the three dimensional types used by the parametric
path interpolators: vectors, Euler rotations and splines over a running
parameter.
*/
package geom

import (
	"math"

	"github.com/phil-mansfield/numerics/math/compare"
)

// Vec is a three dimensional vector.
type Vec [3]float64

func (v Vec) Add(u Vec) Vec { return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }
func (v Vec) Sub(u Vec) Vec { return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

func (v Vec) Scale(k float64) Vec { return Vec{k * v[0], k * v[1], k * v[2]} }

func (v Vec) Dot(u Vec) float64 { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] }

func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// AlmostEqual compares each component with compare.AlmostEqual.
func (v Vec) AlmostEqual(u Vec, tol float64) bool {
	for i := 0; i < 3; i++ {
		if !compare.AlmostEqual(v[i], u[i], tol) {
			return false
		}
	}
	return true
}

// Components splits a slice of vectors into one slice per axis.
func Components(vs []Vec) (xs, ys, zs []float64) {
	xs, ys, zs = make([]float64, len(vs)), make([]float64, len(vs)), make([]float64, len(vs))
	for i, v := range vs {
		xs[i], ys[i], zs[i] = v[0], v[1], v[2]
	}
	return xs, ys, zs
}
