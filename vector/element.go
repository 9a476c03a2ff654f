package vector

import (
	"math/cmplx"

	"github.com/cwbudde/algo-vector/internal/kernel"
)

// Real is the set of element types accepted by Vector.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Complex is the set of element types accepted by ComplexVector.
type Complex interface {
	~complex64 | ~complex128
}

// The helpers below take the kernel path only for exact []float64 and
// []complex128 slices. Lengths are validated by the callers.

func addTo[T Real](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		kernel.AddTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subTo[T Real](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		kernel.SubTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleTo[T Real](dst []T, s T, src []T) {
	if d, ok := any(dst).([]float64); ok {
		kernel.ScaleTo(d, any(s).(float64), any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}

func mulTo[T Real](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		kernel.MulTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func dot[T Real](a, b []T) T {
	if x, ok := any(a).([]float64); ok {
		return T(kernel.Dot(x, any(b).([]float64)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func caddTo[T Complex](dst, a, b []T) {
	if d, ok := any(dst).([]complex128); ok {
		kernel.CAddTo(d, any(a).([]complex128), any(b).([]complex128))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func csubTo[T Complex](dst, a, b []T) {
	if d, ok := any(dst).([]complex128); ok {
		kernel.CSubTo(d, any(a).([]complex128), any(b).([]complex128))
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func cscaleTo[T Complex](dst []T, s T, src []T) {
	if d, ok := any(dst).([]complex128); ok {
		kernel.CScaleTo(d, any(s).(complex128), any(src).([]complex128))
		return
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}

func cdot[T Complex](a, b []T) T {
	if x, ok := any(a).([]complex128); ok {
		return T(kernel.CDot(x, any(b).([]complex128)))
	}
	var sum T
	for i := range a {
		sum += a[i] * conj(b[i])
	}
	return sum
}

func cabs[T Complex](dst []float64, src []T) {
	kernel.CAbs(dst, toComplex128(src))
}

func conj[T Complex](z T) T {
	return T(cmplx.Conj(complex128(z)))
}

// toComplex128 returns src itself when it already is a []complex128.
func toComplex128[T Complex](src []T) []complex128 {
	if z, ok := any(src).([]complex128); ok {
		return z
	}
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex128(v)
	}
	return out
}
