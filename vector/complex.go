package vector

import (
	"fmt"
	"math/cmplx"
	"slices"
	"strings"
)

// ComplexVector is a fixed-length vector of complex elements.
//
// It mirrors Vector with three differences: Dot conjugates its argument,
// Scale takes a complex scalar while Div takes a real one, and the magnitude
// used by Normalize is the real part of the complex square root of v · v.
type ComplexVector[T Complex] struct {
	data []T
}

// NewComplex returns a vector of length dim with every element set to value.
//
// dim is not validated; dim <= 0 yields an empty vector.
func NewComplex[T Complex](dim int, value T) *ComplexVector[T] {
	if dim <= 0 {
		return &ComplexVector[T]{data: []T{}}
	}
	data := make([]T, dim)
	for i := range data {
		data[i] = value
	}
	return &ComplexVector[T]{data: data}
}

// NewRandomComplex returns a vector of length dim whose real and imaginary
// parts are drawn independently from a uniform distribution over [-1, 1).
func NewRandomComplex[T Complex](dim int, opts ...Option) (*ComplexVector[T], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidDimension, dim)
	}
	v := &ComplexVector[T]{data: make([]T, dim)}
	fillComplex(v.data, ApplyOptions(opts...))
	return v, nil
}

// FromComplexSlice returns a vector holding a copy of values.
func FromComplexSlice[T Complex](values []T) *ComplexVector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &ComplexVector[T]{data: data}
}

func (v *ComplexVector[T]) raw() []T {
	if v == nil {
		return nil
	}
	return v.data
}

// Len returns the number of elements.
func (v *ComplexVector[T]) Len() int {
	return len(v.raw())
}

// Clone returns an independent copy of v.
func (v *ComplexVector[T]) Clone() *ComplexVector[T] {
	return FromComplexSlice(v.raw())
}

// Assign replaces the contents of v with a copy of other.
// Assigning a vector to itself is a no-op.
func (v *ComplexVector[T]) Assign(other *ComplexVector[T]) {
	if v == other {
		return
	}
	v.data = FromComplexSlice(other.raw()).data
}

// At returns the element at index.
func (v *ComplexVector[T]) At(index int) (T, error) {
	data := v.raw()
	if index < 0 || index >= len(data) {
		var zero T
		return zero, outOfRange(index, len(data))
	}
	return data[index], nil
}

// Set stores z at index.
func (v *ComplexVector[T]) Set(index int, z T) error {
	data := v.raw()
	if index < 0 || index >= len(data) {
		return outOfRange(index, len(data))
	}
	data[index] = z
	return nil
}

// Values returns a copy of the elements.
func (v *ComplexVector[T]) Values() []T {
	return slices.Clone(v.raw())
}

// Add returns v + other.
func (v *ComplexVector[T]) Add(other *ComplexVector[T]) (*ComplexVector[T], error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return nil, mismatch(len(a), len(b))
	}
	out := make([]T, len(a))
	caddTo(out, a, b)
	return &ComplexVector[T]{data: out}, nil
}

// Sub returns v - other.
func (v *ComplexVector[T]) Sub(other *ComplexVector[T]) (*ComplexVector[T], error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return nil, mismatch(len(a), len(b))
	}
	out := make([]T, len(a))
	csubTo(out, a, b)
	return &ComplexVector[T]{data: out}, nil
}

// Dot returns the Hermitian product sum(v[i] * conj(other[i])).
// v.Dot(w) equals the conjugate of w.Dot(v).
func (v *ComplexVector[T]) Dot(other *ComplexVector[T]) (T, error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		var zero T
		return zero, mismatch(len(a), len(b))
	}
	return cdot(a, b), nil
}

// Scale returns v * s for a complex scalar s.
func (v *ComplexVector[T]) Scale(s T) *ComplexVector[T] {
	src := v.raw()
	out := make([]T, len(src))
	cscaleTo(out, s, src)
	return &ComplexVector[T]{data: out}
}

// ScaleComplexBy returns s * v. It is identical to v.Scale(s).
func ScaleComplexBy[T Complex](s T, v *ComplexVector[T]) *ComplexVector[T] {
	return v.Scale(s)
}

// Div returns v / s for a real scalar s, dividing both parts of every
// element. Only an exact zero divisor is rejected.
func (v *ComplexVector[T]) Div(s float64) (*ComplexVector[T], error) {
	if s == 0 {
		return nil, ErrDivideByZero
	}
	src := v.raw()
	out := make([]T, len(src))
	for i, x := range src {
		z := complex128(x)
		out[i] = T(complex(real(z)/s, imag(z)/s))
	}
	return &ComplexVector[T]{data: out}, nil
}

// Magnitude returns the real part of sqrt(v · v).
func (v *ComplexVector[T]) Magnitude() float64 {
	a := v.raw()
	return real(cmplx.Sqrt(complex128(cdot(a, a))))
}

// Normalize returns v divided by its magnitude. A zero magnitude yields
// ErrDivideByZero.
func (v *ComplexVector[T]) Normalize() (*ComplexVector[T], error) {
	return v.Div(v.Magnitude())
}

// Conj returns the element-wise complex conjugate of v.
func (v *ComplexVector[T]) Conj() *ComplexVector[T] {
	src := v.raw()
	out := make([]T, len(src))
	for i, z := range src {
		out[i] = conj(z)
	}
	return &ComplexVector[T]{data: out}
}

// Moduli returns the element-wise absolute values |v[i]|.
func (v *ComplexVector[T]) Moduli() *Vector[float64] {
	src := v.raw()
	out := make([]float64, len(src))
	cabs(out, src)
	return &Vector[float64]{data: out}
}

// Equal reports whether v and other have the same length and elements.
func (v *ComplexVector[T]) Equal(other *ComplexVector[T]) bool {
	return slices.Equal(v.raw(), other.raw())
}

// EqualApprox reports whether v and other have the same length and
// |v[i] - other[i]| <= tol for every i.
func (v *ComplexVector[T]) EqualApprox(other *ComplexVector[T], tol float64) bool {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(complex128(a[i])-complex128(b[i])) > tol {
			return false
		}
	}
	return true
}

// String renders v as (e0, e1, ..., en-1) using Go's complex formatting,
// e.g. ((1+2i), (0-1i)).
func (v *ComplexVector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, z := range v.raw() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, z)
	}
	sb.WriteByte(')')
	return sb.String()
}
