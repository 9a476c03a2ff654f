package vector

import "fmt"

// PerpendicularUnit returns a unit vector perpendicular to v: the first two
// components of v rotated by 90 degrees, (-v[1], v[0], 0, ..., 0), normalized.
//
// For unsigned element types the negation wraps around.
func PerpendicularUnit[T Real](v *Vector[T]) (*Vector[T], error) {
	n := v.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooShort, n)
	}
	u := New(n, T(0))
	u.data[0] = -v.data[1]
	u.data[1] = v.data[0]
	return u.Normalize()
}

// PerpendicularUnitComplex is PerpendicularUnit for complex vectors.
func PerpendicularUnitComplex[T Complex](v *ComplexVector[T]) (*ComplexVector[T], error) {
	n := v.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooShort, n)
	}
	u := NewComplex(n, T(0))
	u.data[0] = -v.data[1]
	u.data[1] = v.data[0]
	return u.Normalize()
}
