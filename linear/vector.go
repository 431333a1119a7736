// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"github.com/gviegas/mathtuple/internal/tuple"
)

// V2 is a 2-component vector of float64.
type V2 [2]float64

// NewV2 creates a checked V2.
func NewV2(x, y float64) *V2 { return (&V2{x, y}).Check() }

// NewV2From creates a V2 from the first two elements of s.
func NewV2From(s []float64) *V2 { return new(V2).FromArray(s, 0) }

// ValidV2 reports whether s could be a valid V2.
func ValidV2(s []float64) bool { return tuple.Valid(s, 2) }

func (v *V2) X() float64 { return v[0] }
func (v *V2) Y() float64 { return v[1] }

// SetX sets the x component. The value is checked.
func (v *V2) SetX(x float64) *V2 { v[0] = checkNumber(x); return v }

// SetY sets the y component. The value is checked.
func (v *V2) SetY(y float64) *V2 { v[1] = checkNumber(y); return v }

// Clone returns a copy of v.
func (v *V2) Clone() *V2 { u := *v; return u.Check() }

// Copy sets v to contain w.
func (v *V2) Copy(w *V2) *V2 { tuple.Copy(v[:], w[:]); return v.Check() }

// Set sets the components of v.
func (v *V2) Set(x, y float64) *V2 { return v.FromValues(x, y) }

// FromValues sets the components of v positionally.
// Missing values are 0 and extra values are ignored.
func (v *V2) FromValues(values ...float64) *V2 { tuple.Set(v[:], values...); return v.Check() }

// FromArray sets v to contain s[off:off+2].
func (v *V2) FromArray(s []float64, off int) *V2 {
	tuple.FromArray(v[:], s, off)
	return v.Check()
}

// ToArray writes v into dst at off and returns dst,
// which grows if too short.
func (v *V2) ToArray(dst []float64, off int) []float64 { return tuple.ToArray(v[:], dst, off) }

// ToFloat32 returns v converted to float32.
func (v *V2) ToFloat32() (f [2]float32) {
	tuple.ToFloat32(f[:], v[:])
	return
}

// Equals reports whether v and w are approximately equal.
func (v *V2) Equals(w *V2) bool { return w != nil && equal(v[:], w[:]) }

// EqualsArray is like Equals but takes a slice.
// It returns false if len(s) != 2.
func (v *V2) EqualsArray(s []float64) bool { return equal(v[:], s) }

// ExactEquals reports whether v and w are identical.
func (v *V2) ExactEquals(w *V2) bool { return w != nil && tuple.ExactEqual(v[:], w[:]) }

// Format formats v according to o.
func (v *V2) Format(o Options) string { return tuple.Format("V2", v[:], o) }

func (v *V2) String() string { return v.Format(CurrentOptions()) }

// Valid reports whether every component is finite.
func (v *V2) Valid() bool { return tuple.Valid(v[:], 2) }

// Check panics if checks are enabled and v is not valid.
func (v *V2) Check() *V2 {
	check("V2", 2, v[:])
	return v
}

// Len returns the length of v.
func (v *V2) Len() float64 { return tuple.Len(v[:]) }

// Magnitude is the same as Len.
func (v *V2) Magnitude() float64 { return tuple.Len(v[:]) }

// LenSquared returns the squared length of v.
func (v *V2) LenSquared() float64 { return tuple.LenSquared(v[:]) }

// Distance returns the distance between v and w.
func (v *V2) Distance(w *V2) float64 { return tuple.Distance(v[:], w[:]) }

// DistanceSquared returns the squared distance between
// v and w.
func (v *V2) DistanceSquared(w *V2) float64 { return tuple.DistanceSquared(v[:], w[:]) }

// Dot returns v ⋅ w.
func (v *V2) Dot(w *V2) float64 { return tuple.Dot(v[:], w[:]) }

// Negate sets v to -v.
func (v *V2) Negate() *V2 { tuple.Negate(v[:]); return v.Check() }

// Inverse sets each component of v to its reciprocal.
func (v *V2) Inverse() *V2 { tuple.Inverse(v[:]); return v.Check() }

// Normalize scales v to unit length.
// The zero vector is left unchanged.
func (v *V2) Normalize() *V2 { tuple.Normalize(v[:]); return v.Check() }

// Add adds each of ws to v.
func (v *V2) Add(ws ...*V2) *V2 {
	for _, w := range ws {
		tuple.Add(v[:], w[:])
	}
	return v.Check()
}

// Sub subtracts each of ws from v.
func (v *V2) Sub(ws ...*V2) *V2 {
	for _, w := range ws {
		tuple.Sub(v[:], w[:])
	}
	return v.Check()
}

// Mul multiplies v by each of ws, component-wise.
func (v *V2) Mul(ws ...*V2) *V2 {
	for _, w := range ws {
		tuple.Mul(v[:], w[:])
	}
	return v.Check()
}

// Div divides v by each of ws, component-wise.
func (v *V2) Div(ws ...*V2) *V2 {
	for _, w := range ws {
		tuple.Div(v[:], w[:])
	}
	return v.Check()
}

// Scale sets v to s ⋅ v.
func (v *V2) Scale(s float64) *V2 { tuple.Scale(v[:], s); return v.Check() }

// ScaleV is the same as Mul(w).
func (v *V2) ScaleV(w *V2) *V2 { return v.Mul(w) }

// ScaleAndAdd sets v to v + s⋅w.
func (v *V2) ScaleAndAdd(w *V2, s float64) *V2 {
	tuple.ScaleAndAdd(v[:], w[:], checkNumber(s))
	return v.Check()
}

// Lerp moves v toward w by the fraction t.
func (v *V2) Lerp(w *V2, t float64) *V2 { tuple.Lerp(v[:], w[:], t); return v.Check() }

// Apply calls f with v as both output and input.
func (v *V2) Apply(f func(out, in *V2)) *V2 { f(v, v); return v.Check() }

// Cross returns the z component of (v.x, v.y, 0) × (w.x, w.y, 0).
func (v *V2) Cross(w *V2) float64 { return v[0]*w[1] - v[1]*w[0] }

// HorizontalAngle returns the angle of v measured from
// the x axis.
func (v *V2) HorizontalAngle() float64 { return math.Atan2(v[1], v[0]) }

// VerticalAngle returns the angle of v measured from
// the y axis.
func (v *V2) VerticalAngle() float64 { return math.Atan2(v[0], v[1]) }

// V4 is a 4-component vector of float64.
type V4 [4]float64

// NewV4 creates a checked V4.
func NewV4(x, y, z, w float64) *V4 { return (&V4{x, y, z, w}).Check() }

// NewV4From creates a V4 from the first four elements of s.
func NewV4From(s []float64) *V4 { return new(V4).FromArray(s, 0) }

// ValidV4 reports whether s could be a valid V4.
func ValidV4(s []float64) bool { return tuple.Valid(s, 4) }

func (v *V4) X() float64 { return v[0] }
func (v *V4) Y() float64 { return v[1] }
func (v *V4) Z() float64 { return v[2] }
func (v *V4) W() float64 { return v[3] }

func (v *V4) SetX(x float64) *V4 { v[0] = checkNumber(x); return v }
func (v *V4) SetY(y float64) *V4 { v[1] = checkNumber(y); return v }
func (v *V4) SetZ(z float64) *V4 { v[2] = checkNumber(z); return v }
func (v *V4) SetW(w float64) *V4 { v[3] = checkNumber(w); return v }

// Clone returns a copy of v.
func (v *V4) Clone() *V4 { u := *v; return u.Check() }

// Copy sets v to contain w.
func (v *V4) Copy(w *V4) *V4 { tuple.Copy(v[:], w[:]); return v.Check() }

// Set sets the components of v.
func (v *V4) Set(x, y, z, w float64) *V4 { return v.FromValues(x, y, z, w) }

// FromValues sets the components of v positionally.
// Missing values are 0 and extra values are ignored.
func (v *V4) FromValues(values ...float64) *V4 { tuple.Set(v[:], values...); return v.Check() }

// FromArray sets v to contain s[off:off+4].
func (v *V4) FromArray(s []float64, off int) *V4 {
	tuple.FromArray(v[:], s, off)
	return v.Check()
}

// ToArray writes v into dst at off and returns dst,
// which grows if too short.
func (v *V4) ToArray(dst []float64, off int) []float64 { return tuple.ToArray(v[:], dst, off) }

// ToFloat32 returns v converted to float32.
func (v *V4) ToFloat32() (f [4]float32) {
	tuple.ToFloat32(f[:], v[:])
	return
}

// Equals reports whether v and w are approximately equal.
func (v *V4) Equals(w *V4) bool { return w != nil && equal(v[:], w[:]) }

// EqualsArray is like Equals but takes a slice.
// It returns false if len(s) != 4.
func (v *V4) EqualsArray(s []float64) bool { return equal(v[:], s) }

// ExactEquals reports whether v and w are identical.
func (v *V4) ExactEquals(w *V4) bool { return w != nil && tuple.ExactEqual(v[:], w[:]) }

// Format formats v according to o.
func (v *V4) Format(o Options) string { return tuple.Format("V4", v[:], o) }

func (v *V4) String() string { return v.Format(CurrentOptions()) }

// Valid reports whether every component is finite.
func (v *V4) Valid() bool { return tuple.Valid(v[:], 4) }

// Check panics if checks are enabled and v is not valid.
func (v *V4) Check() *V4 {
	check("V4", 4, v[:])
	return v
}

func (v *V4) Len() float64        { return tuple.Len(v[:]) }
func (v *V4) Magnitude() float64  { return tuple.Len(v[:]) }
func (v *V4) LenSquared() float64 { return tuple.LenSquared(v[:]) }

func (v *V4) Distance(w *V4) float64        { return tuple.Distance(v[:], w[:]) }
func (v *V4) DistanceSquared(w *V4) float64 { return tuple.DistanceSquared(v[:], w[:]) }

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) float64 { return tuple.Dot(v[:], w[:]) }

func (v *V4) Negate() *V4  { tuple.Negate(v[:]); return v.Check() }
func (v *V4) Inverse() *V4 { tuple.Inverse(v[:]); return v.Check() }

// Normalize scales v to unit length.
// The zero vector is left unchanged.
func (v *V4) Normalize() *V4 { tuple.Normalize(v[:]); return v.Check() }

// Add adds each of ws to v.
func (v *V4) Add(ws ...*V4) *V4 {
	for _, w := range ws {
		tuple.Add(v[:], w[:])
	}
	return v.Check()
}

// Sub subtracts each of ws from v.
func (v *V4) Sub(ws ...*V4) *V4 {
	for _, w := range ws {
		tuple.Sub(v[:], w[:])
	}
	return v.Check()
}

// Mul multiplies v by each of ws, component-wise.
func (v *V4) Mul(ws ...*V4) *V4 {
	for _, w := range ws {
		tuple.Mul(v[:], w[:])
	}
	return v.Check()
}

// Div divides v by each of ws, component-wise.
func (v *V4) Div(ws ...*V4) *V4 {
	for _, w := range ws {
		tuple.Div(v[:], w[:])
	}
	return v.Check()
}

// Scale sets v to s ⋅ v.
func (v *V4) Scale(s float64) *V4 { tuple.Scale(v[:], s); return v.Check() }

// ScaleV is the same as Mul(w).
func (v *V4) ScaleV(w *V4) *V4 { return v.Mul(w) }

// ScaleAndAdd sets v to v + s⋅w.
func (v *V4) ScaleAndAdd(w *V4, s float64) *V4 {
	tuple.ScaleAndAdd(v[:], w[:], checkNumber(s))
	return v.Check()
}

// Lerp moves v toward w by the fraction t.
func (v *V4) Lerp(w *V4, t float64) *V4 { tuple.Lerp(v[:], w[:], t); return v.Check() }

// Apply calls f with v as both output and input.
func (v *V4) Apply(f func(out, in *V4)) *V4 { f(v, v); return v.Check() }
