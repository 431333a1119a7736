// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/gviegas/mathtuple/internal/kernel"
	"github.com/gviegas/mathtuple/internal/tuple"
)

// Q is a quaternion of float64 stored as [x, y, z, w],
// w being the real part.
// Rotations are represented by unit quaternions, but Q
// does not enforce unit length.
type Q [4]float64

// NewQ creates an identity quaternion.
func NewQ() *Q { return &Q{0, 0, 0, 1} }

// NewQFrom creates a Q from the first four elements of s.
func NewQFrom(s []float64) *Q { return new(Q).FromArray(s, 0) }

// ValidQ reports whether s could be a valid Q.
func ValidQ(s []float64) bool { return tuple.Valid(s, 4) }

func (q *Q) a() *[4]float64 { return (*[4]float64)(q) }

func (q *Q) X() float64 { return q[0] }
func (q *Q) Y() float64 { return q[1] }
func (q *Q) Z() float64 { return q[2] }
func (q *Q) W() float64 { return q[3] }

func (q *Q) SetX(x float64) *Q { q[0] = checkNumber(x); return q }
func (q *Q) SetY(y float64) *Q { q[1] = checkNumber(y); return q }
func (q *Q) SetZ(z float64) *Q { q[2] = checkNumber(z); return q }
func (q *Q) SetW(w float64) *Q { q[3] = checkNumber(w); return q }

// Clone returns a copy of q.
func (q *Q) Clone() *Q { p := *q; return p.Check() }

// Copy sets q to contain p.
func (q *Q) Copy(p *Q) *Q { tuple.Copy(q[:], p[:]); return q.Check() }

// Set sets the components of q.
func (q *Q) Set(x, y, z, w float64) *Q { return q.FromValues(x, y, z, w) }

// FromValues sets the components of q positionally.
// Missing values are 0 and extra values are ignored.
func (q *Q) FromValues(values ...float64) *Q { tuple.Set(q[:], values...); return q.Check() }

// FromArray sets q to contain s[off:off+4].
func (q *Q) FromArray(s []float64, off int) *Q {
	tuple.FromArray(q[:], s, off)
	return q.Check()
}

// ToArray writes q into dst at off and returns dst,
// which grows if too short.
func (q *Q) ToArray(dst []float64, off int) []float64 { return tuple.ToArray(q[:], dst, off) }

// ToFloat32 returns q converted to float32.
func (q *Q) ToFloat32() (f [4]float32) {
	tuple.ToFloat32(f[:], q[:])
	return
}

// Equals reports whether q and p are approximately equal.
// Note that q and -q are distinct, although they
// represent the same rotation.
func (q *Q) Equals(p *Q) bool { return p != nil && equal(q[:], p[:]) }

// EqualsArray is like Equals but takes a slice.
func (q *Q) EqualsArray(s []float64) bool { return equal(q[:], s) }

// ExactEquals reports whether q and p are identical.
func (q *Q) ExactEquals(p *Q) bool { return p != nil && tuple.ExactEqual(q[:], p[:]) }

// Format formats q according to o.
func (q *Q) Format(o Options) string { return tuple.Format("Q", q[:], o) }

func (q *Q) String() string { return q.Format(CurrentOptions()) }

// Valid reports whether every component is finite.
func (q *Q) Valid() bool { return tuple.Valid(q[:], 4) }

// Check panics if checks are enabled and q is not valid.
func (q *Q) Check() *Q {
	check("Q", 4, q[:])
	return q
}

// FromMatrix3 sets q to contain the rotation described by
// the column-major 3x3 matrix m.
// The result is not normalized.
func (q *Q) FromMatrix3(m *[9]float64) *Q { kernel.FromMat3(q.a(), m); return q.Check() }

// Identity sets q to the identity rotation.
func (q *Q) Identity() *Q { kernel.Identity(q.a()); return q.Check() }

// Len returns the modulus of q.
func (q *Q) Len() float64 { return kernel.Abs(q.a()) }

// Magnitude returns the Euclidean norm of q.
// It differs from Len only by rounding.
func (q *Q) Magnitude() float64 { return tuple.Len(q[:]) }

// LenSquared returns the squared modulus of q.
func (q *Q) LenSquared() float64 { return tuple.LenSquared(q[:]) }

// Distance returns the Euclidean distance between q and p.
func (q *Q) Distance(p *Q) float64 { return tuple.Distance(q[:], p[:]) }

// DistanceSquared returns the squared Euclidean distance
// between q and p.
func (q *Q) DistanceSquared(p *Q) float64 { return tuple.DistanceSquared(q[:], p[:]) }

// Dot returns q ⋅ p.
func (q *Q) Dot(p *Q) float64 { return tuple.Dot(q[:], p[:]) }

// AxisAngle returns the rotation axis and angle of q,
// which must have unit length.
// For a rotation created by SetAxisAngle, the result is
// either the original axis and angle or an equivalent
// pair; -π/2 about z is reported as π/2 about -z.
func (q *Q) AxisAngle() (axis [3]float64, rad float64) { return kernel.AxisAngle(q.a()) }

// RotationTo sets q to the shortest rotation from a to b.
// Both vectors must have unit length.
func (q *Q) RotationTo(a, b *[3]float64) *Q { kernel.RotationTo(q.a(), a, b); return q.Check() }

// Add adds a and then b to q.
// b may be nil.
func (q *Q) Add(a, b *Q) *Q {
	kernel.Add(q.a(), q.a(), a.a())
	if b != nil {
		kernel.Add(q.a(), q.a(), b.a())
	}
	return q.Check()
}

// CalculateW sets the w component from x, y and z,
// assuming q has unit length.
// If x² + y² + z² exceeds 1 by more than rounding error,
// w becomes NaN.
func (q *Q) CalculateW() *Q { kernel.CalculateW(q.a(), q.a()); return q.Check() }

// Conjugate sets q to its conjugate.
// For unit quaternions, this is the same as Invert.
func (q *Q) Conjugate() *Q { kernel.Conj(q.a(), q.a()); return q.Check() }

// Invert sets q to its inverse.
// The zero quaternion is left unchanged.
func (q *Q) Invert() *Q { kernel.Inv(q.a(), q.a()); return q.Check() }

// Lerp sets q to a + t⋅(b - a).
func (q *Q) Lerp(a, b *Q, t float64) *Q { kernel.Lerp(q.a(), a.a(), b.a(), t); return q.Check() }

// Mul sets q to contain q ⋅ r.
func (q *Q) Mul(r *Q) *Q { kernel.Mul(q.a(), q.a(), r.a()); return q.Check() }

// Negate sets q to -q.
func (q *Q) Negate() *Q { tuple.Negate(q[:]); return q.Check() }

// Sub subtracts each of ps from q.
func (q *Q) Sub(ps ...*Q) *Q {
	for _, p := range ps {
		tuple.Sub(q[:], p[:])
	}
	return q.Check()
}

// Div divides q by each of ps, component-wise.
// This is not quaternion division; for that, use Mul
// with an inverted operand.
func (q *Q) Div(ps ...*Q) *Q {
	for _, p := range ps {
		tuple.Div(q[:], p[:])
	}
	return q.Check()
}

// Inverse sets each component of q to its reciprocal.
// Use Invert for the quaternion inverse.
func (q *Q) Inverse() *Q { tuple.Inverse(q[:]); return q.Check() }

// Normalize scales q to unit length.
// The zero quaternion is left unchanged.
func (q *Q) Normalize() *Q { kernel.Normalize(q.a(), q.a()); return q.Check() }

// RotateX rotates q by rad about the x axis.
func (q *Q) RotateX(rad float64) *Q { kernel.RotateX(q.a(), q.a(), rad); return q.Check() }

// RotateY rotates q by rad about the y axis.
func (q *Q) RotateY(rad float64) *Q { kernel.RotateY(q.a(), q.a(), rad); return q.Check() }

// RotateZ rotates q by rad about the z axis.
func (q *Q) RotateZ(rad float64) *Q { kernel.RotateZ(q.a(), q.a(), rad); return q.Check() }

// Scale sets q to s ⋅ q.
func (q *Q) Scale(s float64) *Q { kernel.Scale(q.a(), q.a(), s); return q.Check() }

// ScaleAndAdd sets q to q + s⋅p.
func (q *Q) ScaleAndAdd(p *Q, s float64) *Q {
	tuple.ScaleAndAdd(q[:], p[:], checkNumber(s))
	return q.Check()
}

// SetAxisAngle sets q to the rotation of rad radians
// about axis, which must have unit length.
func (q *Q) SetAxisAngle(axis *[3]float64, rad float64) *Q {
	kernel.SetAxisAngle(q.a(), axis, rad)
	return q.Check()
}

// Slerp sets q to the spherical linear interpolation
// between start and target at t.
// A nil start is the identity rotation.
// The shorter arc is always taken, so when t is 1 the
// result may be -target.
func (q *Q) Slerp(start, target *Q, t float64) *Q {
	s := Q{0, 0, 0, 1}
	if start != nil {
		s = *start
	}
	kernel.Slerp(q.a(), s.a(), target.a(), t)
	return q.Check()
}

// Rotate returns p rotated by q.
// q need not have unit length.
func (q *Q) Rotate(p *[3]float64) [3]float64 { return kernel.Rotate(q.a(), p) }
