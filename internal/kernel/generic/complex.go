package generic

import (
	"math/cmplx"
)

// CAddTo computes dst[i] = a[i] + b[i].
func CAddTo(dst, a, b []complex128) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// CSubTo computes dst[i] = a[i] - b[i].
func CSubTo(dst, a, b []complex128) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// CScaleTo computes dst[i] = s * src[i].
func CScaleTo(dst []complex128, s complex128, src []complex128) {
	for i := range dst {
		dst[i] = s * src[i]
	}
}

// CDot returns the Hermitian product sum(a[i] * conj(b[i])).
func CDot(a, b []complex128) complex128 {
	var sum complex128
	for i := range a {
		sum += a[i] * cmplx.Conj(b[i])
	}
	return sum
}

// CAbs computes dst[i] = |src[i]|.
func CAbs(dst []float64, src []complex128) {
	for i := range dst {
		dst[i] = cmplx.Abs(src[i])
	}
}
