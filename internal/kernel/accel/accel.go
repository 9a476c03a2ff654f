// Package accel provides kernels backed by gonum's assembly-accelerated
// floats and cmplxs routines and by algo-vecmath's SIMD block operations.
package accel

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

const priority = 10

func entry() registry.OpEntry {
	return registry.OpEntry{
		Name:     "accel",
		Priority: priority,

		AddTo:   AddTo,
		SubTo:   SubTo,
		ScaleTo: ScaleTo,
		MulTo:   MulTo,
		Dot:     floats.Dot,

		CAddTo:   CAddTo,
		CSubTo:   CSubTo,
		CScaleTo: CScaleTo,
		CDot:     CDot,
		CAbs:     CAbs,
	}
}

// AddTo computes dst[i] = a[i] + b[i].
func AddTo(dst, a, b []float64) { floats.AddTo(dst, a, b) }

// SubTo computes dst[i] = a[i] - b[i].
func SubTo(dst, a, b []float64) { floats.SubTo(dst, a, b) }

// ScaleTo computes dst[i] = s * src[i].
func ScaleTo(dst []float64, s float64, src []float64) { floats.ScaleTo(dst, s, src) }

// MulTo computes dst[i] = a[i] * b[i].
func MulTo(dst, a, b []float64) { vecmath.MulBlock(dst, a, b) }

// CAddTo computes dst[i] = a[i] + b[i].
func CAddTo(dst, a, b []complex128) { cmplxs.AddTo(dst, a, b) }

// CSubTo computes dst[i] = a[i] - b[i].
func CSubTo(dst, a, b []complex128) { cmplxs.SubTo(dst, a, b) }

// CScaleTo computes dst[i] = s * src[i].
func CScaleTo(dst []complex128, s complex128, src []complex128) { cmplxs.ScaleTo(dst, s, src) }

// CDot returns sum(a[i] * conj(b[i])).
//
// cmplxs.Dot conjugates its first argument, so the operands are swapped.
func CDot(a, b []complex128) complex128 { return cmplxs.Dot(b, a) }

// CAbs computes dst[i] = |src[i]| from split real and imaginary parts.
func CAbs(dst []float64, src []complex128) {
	re := make([]float64, len(src))
	im := make([]float64, len(src))
	for i, z := range src {
		re[i], im[i] = real(z), imag(z)
	}
	vecmath.Magnitude(dst, re, im)
}
