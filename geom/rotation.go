package geom

import (
	. "math"

	"github.com/phil-mansfield/numerics/math/mat"
)

// axisRotation returns the matrix which rotates the coordinate frame by angle
// about the given axis (0 for x, 1 for y, 2 for z).
func axisRotation(axis int, angle float64) *mat.Matrix {
	m := mat.Identity(3)
	i, j := (axis+1)%3, (axis+2)%3
	c, s := Cos(angle), Sin(angle)
	m.Vals[i*3+i], m.Vals[i*3+j] = c, s
	m.Vals[j*3+i], m.Vals[j*3+j] = -s, c
	return m
}

// EulerMatrix returns the rotation by phi about x, then theta about y, then
// psi about z. The result is orthonormal with determinant 1, so its
// transpose undoes the rotation.
func EulerMatrix(phi, theta, psi float64) *mat.Matrix {
	xy := axisRotation(1, theta).Mult(axisRotation(0, phi))
	return axisRotation(2, psi).Mult(xy)
}

// InverseEulerMatrix returns the rotation which undoes
// EulerMatrix(phi, theta, psi).
func InverseEulerMatrix(phi, theta, psi float64) *mat.Matrix {
	return EulerMatrix(phi, theta, psi).Transpose()
}

// Rotate rotates a vector by the given rotation matrix.
func (v *Vec) Rotate(m *mat.Matrix) {
	v0 := m.At(0, 0)*v[0] + m.At(0, 1)*v[1] + m.At(0, 2)*v[2]
	v1 := m.At(1, 0)*v[0] + m.At(1, 1)*v[1] + m.At(1, 2)*v[2]
	v2 := m.At(2, 0)*v[0] + m.At(2, 1)*v[1] + m.At(2, 2)*v[2]
	v[0], v[1], v[2] = v0, v1, v2
}

// RotateAll rotates every vector in vs in place.
func RotateAll(vs []Vec, m *mat.Matrix) {
	for i := range vs {
		vs[i].Rotate(m)
	}
}
