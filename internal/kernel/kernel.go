// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package kernel implements fixed-arity routines used by
// the linear types.
//
// Quaternions are stored as [x, y, z, w], w being the
// real part. The first argument of every function is the
// output and it may alias any of the inputs.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Epsilon is the threshold below which a rotation is
// considered degenerate.
const Epsilon = 1e-6

func number(q *[4]float64) quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

func store(out *[4]float64, n quat.Number) {
	*out = [4]float64{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// Identity sets out to the identity rotation.
func Identity(out *[4]float64) { *out = [4]float64{0, 0, 0, 1} }

// Mul sets out to contain l ⋅ r (Hamilton product).
func Mul(out, l, r *[4]float64) { store(out, quat.Mul(number(l), number(r))) }

// Add sets out to contain l + r.
func Add(out, l, r *[4]float64) { store(out, quat.Add(number(l), number(r))) }

// Conj sets out to contain the conjugate of q.
func Conj(out, q *[4]float64) { store(out, quat.Conj(number(q))) }

// Inv sets out to contain the inverse of q.
// The inverse of the zero quaternion is zero.
func Inv(out, q *[4]float64) {
	n := number(q)
	if n == (quat.Number{}) {
		*out = [4]float64{}
		return
	}
	store(out, quat.Inv(n))
}

// Abs returns the modulus of q.
func Abs(q *[4]float64) float64 { return quat.Abs(number(q)) }

// Scale sets out to contain s ⋅ q.
func Scale(out, q *[4]float64, s float64) { store(out, quat.Scale(s, number(q))) }

// Lerp sets out to contain l + t⋅(r - l).
func Lerp(out, l, r *[4]float64, t float64) {
	for i := range out {
		out[i] = l[i] + t*(r[i]-l[i])
	}
}

// Normalize sets out to contain q scaled to unit length.
// The zero quaternion is left unchanged.
func Normalize(out, q *[4]float64) {
	d := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if d <= 0 {
		*out = *q
		return
	}
	l := math.Sqrt(d)
	for i := range out {
		out[i] = q[i] / l
	}
}

// SetAxisAngle sets out to contain the rotation of rad
// radians about axis, which must have unit length.
func SetAxisAngle(out *[4]float64, axis *[3]float64, rad float64) {
	s, c := math.Sincos(rad * 0.5)
	*out = [4]float64{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// AxisAngle returns the axis and angle of the rotation q,
// which must have unit length.
// The angle is in [0, 2π]. If it is close to zero, the
// axis is [1, 0, 0].
func AxisAngle(q *[4]float64) (axis [3]float64, rad float64) {
	w := math.Max(-1, math.Min(1, q[3]))
	rad = math.Acos(w) * 2
	s := math.Sin(rad * 0.5)
	if s > Epsilon {
		axis = [3]float64{q[0] / s, q[1] / s, q[2] / s}
	} else {
		axis = [3]float64{1, 0, 0}
	}
	return
}

// RotateX sets out to contain q rotated by rad about the
// x axis.
func RotateX(out, q *[4]float64, rad float64) {
	s, c := math.Sincos(rad * 0.5)
	Mul(out, q, &[4]float64{s, 0, 0, c})
}

// RotateY sets out to contain q rotated by rad about the
// y axis.
func RotateY(out, q *[4]float64, rad float64) {
	s, c := math.Sincos(rad * 0.5)
	Mul(out, q, &[4]float64{0, s, 0, c})
}

// RotateZ sets out to contain q rotated by rad about the
// z axis.
func RotateZ(out, q *[4]float64, rad float64) {
	s, c := math.Sincos(rad * 0.5)
	Mul(out, q, &[4]float64{0, 0, s, c})
}

// WEpsilon is how far x² + y² + z² may exceed 1 before
// CalculateW gives up. Smaller excesses are rounding
// error and yield w = 0.
const WEpsilon = 1e-12

// CalculateW sets out to contain q with the w component
// derived from x, y and z, assuming unit length.
// If x² + y² + z² > 1 + WEpsilon, w is NaN.
func CalculateW(out, q *[4]float64) {
	x, y, z := q[0], q[1], q[2]
	d := 1 - x*x - y*y - z*z
	var w float64
	switch {
	case d >= 0:
		w = math.Sqrt(d)
	case d >= -WEpsilon:
		w = 0
	default:
		w = math.NaN()
	}
	*out = [4]float64{x, y, z, w}
}

// FromMat3 sets out to contain the rotation described by
// the column-major 3x3 matrix m.
// The result is not normalized.
func FromMat3(out *[4]float64, m *[9]float64) {
	trace := m[0] + m[4] + m[8]
	if trace > 0 {
		root := math.Sqrt(trace + 1)
		w := 0.5 * root
		root = 0.5 / root
		*out = [4]float64{
			(m[5] - m[7]) * root,
			(m[6] - m[2]) * root,
			(m[1] - m[3]) * root,
			w,
		}
		return
	}
	i := 0
	if m[4] > m[0] {
		i = 1
	}
	if m[8] > m[i*3+i] {
		i = 2
	}
	j := (i + 1) % 3
	k := (i + 2) % 3
	root := math.Sqrt(m[i*3+i] - m[j*3+j] - m[k*3+k] + 1)
	var q [4]float64
	q[i] = 0.5 * root
	root = 0.5 / root
	q[3] = (m[j*3+k] - m[k*3+j]) * root
	q[j] = (m[j*3+i] + m[i*3+j]) * root
	q[k] = (m[k*3+i] + m[i*3+k]) * root
	*out = q
}

// Slerp sets out to contain the spherical linear
// interpolation between l and r at t.
// The shorter arc is taken. Nearly parallel inputs are
// linearly interpolated and renormalized.
func Slerp(out, l, r *[4]float64, t float64) {
	a, b := *l, *r
	cos := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	if cos < 0 {
		cos = -cos
		for i := range b {
			b[i] = -b[i]
		}
	}
	if 1-cos <= Epsilon {
		Lerp(out, &a, &b, t)
		Normalize(out, out)
		return
	}
	omega := math.Acos(cos)
	sin := math.Sin(omega)
	s0 := math.Sin((1-t)*omega) / sin
	s1 := math.Sin(t*omega) / sin
	for i := range out {
		out[i] = s0*a[i] + s1*b[i]
	}
}

// RotationTo sets out to contain the shortest rotation
// from a to b. Both must have unit length.
func RotationTo(out *[4]float64, a, b *[3]float64) {
	d := Dot3(a, b)
	switch {
	case d < -1+Epsilon:
		var axis [3]float64
		Cross3(&axis, &[3]float64{1, 0, 0}, a)
		if Len3(&axis) < Epsilon {
			Cross3(&axis, &[3]float64{0, 1, 0}, a)
		}
		Norm3(&axis, &axis)
		SetAxisAngle(out, &axis, math.Pi)
	case d > 1-Epsilon:
		Identity(out)
	default:
		var v [3]float64
		Cross3(&v, a, b)
		q := [4]float64{v[0], v[1], v[2], 1 + d}
		Normalize(out, &q)
	}
}

// Rotate returns p rotated by q.
// q is normalized before use.
func Rotate(q *[4]float64, p *[3]float64) [3]float64 {
	n := number(q)
	if a := quat.Abs(n); a != 0 && a != 1 {
		n = quat.Scale(1/a, n)
	}
	v := quat.Number{Imag: p[0], Jmag: p[1], Kmag: p[2]}
	v = quat.Mul(quat.Mul(n, v), quat.Conj(n))
	return [3]float64{v.Imag, v.Jmag, v.Kmag}
}

// Dot3 returns v ⋅ w.
func Dot3(v, w *[3]float64) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Len3 returns the length of v.
func Len3(v *[3]float64) float64 { return math.Sqrt(Dot3(v, v)) }

// Norm3 sets out to contain v normalized.
// The zero vector is left unchanged.
func Norm3(out, v *[3]float64) {
	l := Len3(v)
	if l == 0 {
		*out = *v
		return
	}
	*out = [3]float64{v[0] / l, v[1] / l, v[2] / l}
}

// Cross3 sets out to contain v × w.
func Cross3(out, v, w *[3]float64) {
	*out = [3]float64{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}
