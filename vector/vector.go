package vector

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Vector is a fixed-length vector of real elements.
//
// The zero value is an empty vector. A nil *Vector behaves as an empty vector
// for Len and as an operand of other operations.
type Vector[T Real] struct {
	data []T
}

// New returns a vector of length dim with every element set to value.
//
// dim is not validated; dim <= 0 yields an empty vector.
func New[T Real](dim int, value T) *Vector[T] {
	if dim <= 0 {
		return &Vector[T]{data: []T{}}
	}
	data := make([]T, dim)
	for i := range data {
		data[i] = value
	}
	return &Vector[T]{data: data}
}

// NewRandom returns a vector of length dim whose elements are drawn
// independently from a uniform distribution over [0, 100) and converted to T.
// Integer element types truncate toward zero.
func NewRandom[T Real](dim int, opts ...Option) (*Vector[T], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidDimension, dim)
	}
	v := &Vector[T]{data: make([]T, dim)}
	fillReal(v.data, ApplyOptions(opts...))
	return v, nil
}

// FromSlice returns a vector holding a copy of values.
func FromSlice[T Real](values []T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data}
}

func (v *Vector[T]) raw() []T {
	if v == nil {
		return nil
	}
	return v.data
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.raw())
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.raw())
}

// Assign replaces the contents of v with a copy of other.
// Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	v.data = FromSlice(other.raw()).data
}

// At returns the element at index.
func (v *Vector[T]) At(index int) (T, error) {
	data := v.raw()
	if index < 0 || index >= len(data) {
		var zero T
		return zero, outOfRange(index, len(data))
	}
	return data[index], nil
}

// Set stores x at index.
func (v *Vector[T]) Set(index int, x T) error {
	data := v.raw()
	if index < 0 || index >= len(data) {
		return outOfRange(index, len(data))
	}
	data[index] = x
	return nil
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.raw())
}

// Add returns v + other.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return nil, mismatch(len(a), len(b))
	}
	out := make([]T, len(a))
	addTo(out, a, b)
	return &Vector[T]{data: out}, nil
}

// Sub returns v - other.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return nil, mismatch(len(a), len(b))
	}
	out := make([]T, len(a))
	subTo(out, a, b)
	return &Vector[T]{data: out}, nil
}

// Dot returns the scalar product sum(v[i] * other[i]).
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		var zero T
		return zero, mismatch(len(a), len(b))
	}
	return dot(a, b), nil
}

// Hadamard returns the element-wise product of v and other.
func (v *Vector[T]) Hadamard(other *Vector[T]) (*Vector[T], error) {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return nil, mismatch(len(a), len(b))
	}
	out := make([]T, len(a))
	mulTo(out, a, b)
	return &Vector[T]{data: out}, nil
}

// Scale returns v * s.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	src := v.raw()
	out := make([]T, len(src))
	scaleTo(out, s, src)
	return &Vector[T]{data: out}
}

// ScaleBy returns s * v. It is identical to v.Scale(s).
func ScaleBy[T Real](s T, v *Vector[T]) *Vector[T] {
	return v.Scale(s)
}

// Div returns v / s. Only an exact zero divisor is rejected.
func (v *Vector[T]) Div(s T) (*Vector[T], error) {
	if s == 0 {
		return nil, ErrDivideByZero
	}
	src := v.raw()
	out := make([]T, len(src))
	for i, x := range src {
		out[i] = x / s
	}
	return &Vector[T]{data: out}, nil
}

// Magnitude returns sqrt(v · v).
func (v *Vector[T]) Magnitude() float64 {
	a := v.raw()
	return sqrt(float64(dot(a, a)))
}

// Normalize returns v divided by its magnitude, converted to T first.
//
// There is no tolerance: a magnitude that converts to exactly zero yields
// ErrDivideByZero, while a tiny nonzero magnitude is divided through as is.
func (v *Vector[T]) Normalize() (*Vector[T], error) {
	return v.Div(T(v.Magnitude()))
}

// Equal reports whether v and other have the same length and elements.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return slices.Equal(v.raw(), other.raw())
}

// EqualApprox reports whether v and other have the same length and every
// element pair differs by at most tol.
func (v *Vector[T]) EqualApprox(other *Vector[T], tol float64) bool {
	a, b := v.raw(), other.raw()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) > tol {
			return false
		}
	}
	return true
}

// String renders v as (e0, e1, ..., en-1).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.raw() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(')')
	return sb.String()
}
