// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package tuple implements the operations shared by all
// fixed-arity tuple types.
// Functions operate on slice views of the tuple arrays.
// Destination arguments come first and are modified in
// place; operands must have the destination's length.
package tuple

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Valid reports whether s has length n and only finite
// elements.
func Valid(s []float64, n int) bool {
	if len(s) != n {
		return false
	}
	for _, x := range s {
		if !finite(x) {
			return false
		}
	}
	return true
}

// Copy sets dst[i] to src[i] for every i in dst.
func Copy(dst, src []float64) {
	for i := range dst {
		dst[i] = src[i]
	}
}

// Set assigns values positionally. Missing values are 0.
func Set(dst []float64, values ...float64) {
	for i := range dst {
		if i < len(values) {
			dst[i] = values[i]
		} else {
			dst[i] = 0
		}
	}
}

// FromArray sets dst[i] to src[off+i].
func FromArray(dst, src []float64, off int) {
	for i := range dst {
		dst[i] = src[off+i]
	}
}

// ToArray writes src into dst starting at off, growing
// dst if needed, and returns it.
func ToArray(src, dst []float64, off int) []float64 {
	if n := off + len(src); len(dst) < n {
		dst = append(dst, make([]float64, n-len(dst))...)
	}
	copy(dst[off:], src)
	return dst
}

// ToFloat32 converts src into dst.
func ToFloat32(dst []float32, src []float64) {
	for i := range dst {
		dst[i] = float32(src[i])
	}
}

// Equal reports whether a and b have the same length and
// every pair of elements is equal within eps, either in
// absolute or in relative terms.
func Equal(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], eps, eps) {
			return false
		}
	}
	return true
}

// ExactEqual reports whether a and b have the same length
// and identical elements.
func ExactEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Format renders s as "[a, b, ...]", prefixed by name if
// o.PrintTypes is set.
func Format(name string, s []float64, o Options) string {
	var sb strings.Builder
	if o.PrintTypes {
		sb.WriteString(name)
	}
	sb.WriteByte('[')
	for i, x := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatValue(x, o.Precision))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatValue renders x rounded to prec significant digits,
// without trailing zeros. Exponents of 6 and above or
// below -4 use scientific notation.
// Negative zero is rendered as "0".
func FormatValue(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'g', prec, 64)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Dot returns a ⋅ b.
func Dot(a, b []float64) float64 { return floats.Dot(a, b) }

// LenSquared returns the squared Euclidean norm of s.
func LenSquared(s []float64) float64 { return floats.Dot(s, s) }

// Len returns the Euclidean norm of s.
func Len(s []float64) float64 { return math.Sqrt(LenSquared(s)) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// DistanceSquared returns the squared Euclidean distance
// between a and b.
func DistanceSquared(a, b []float64) (d float64) {
	for i := range a {
		x := a[i] - b[i]
		d += x * x
	}
	return
}

// Negate flips the sign of every element.
func Negate(dst []float64) { floats.Scale(-1, dst) }

// Inverse replaces every element by its reciprocal.
// Zero elements become infinities.
func Inverse(dst []float64) {
	for i := range dst {
		dst[i] = 1 / dst[i]
	}
}

// Normalize divides dst by its length.
// A zero-length dst is left unchanged.
func Normalize(dst []float64) {
	l := Len(dst)
	if l == 0 {
		return
	}
	for i := range dst {
		dst[i] /= l
	}
}

// Add adds each of srcs to dst, in order.
func Add(dst []float64, srcs ...[]float64) {
	for _, s := range srcs {
		floats.Add(dst, s)
	}
}

// Sub subtracts each of srcs from dst, in order.
func Sub(dst []float64, srcs ...[]float64) {
	for _, s := range srcs {
		floats.Sub(dst, s)
	}
}

// Mul multiplies dst by each of srcs, element-wise.
func Mul(dst []float64, srcs ...[]float64) {
	for _, s := range srcs {
		floats.Mul(dst, s)
	}
}

// Div divides dst by each of srcs, element-wise.
func Div(dst []float64, srcs ...[]float64) {
	for _, s := range srcs {
		floats.Div(dst, s)
	}
}

// Scale multiplies every element of dst by f.
func Scale(dst []float64, f float64) { floats.Scale(f, dst) }

// ScaleAndAdd sets dst to dst + f⋅src.
func ScaleAndAdd(dst, src []float64, f float64) { floats.AddScaled(dst, f, src) }

// Lerp moves every element of dst toward the matching
// element of src by the fraction t.
func Lerp(dst, src []float64, t float64) {
	for i := range dst {
		dst[i] += t * (src[i] - dst[i])
	}
}
