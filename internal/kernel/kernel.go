// Package kernel dispatches vector arithmetic on float64 and complex128
// slices to the best kernel set registered for the running CPU.
//
// The selection happens once, on first use, and is cached; every later call
// is a direct function pointer call.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	// Register kernel sets.
	_ "github.com/cwbudde/algo-vector/internal/kernel/accel"
	_ "github.com/cwbudde/algo-vector/internal/kernel/generic"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

var (
	active   *registry.OpEntry
	initOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered (missing generic fallback?)")
	}
	active = entry
}

func current() *registry.OpEntry {
	initOnce.Do(initKernels)
	return active
}

// Name reports the selected kernel set.
func Name() string { return current().Name }

// AddTo computes dst[i] = a[i] + b[i]. All slices must have equal length.
func AddTo(dst, a, b []float64) { current().AddTo(dst, a, b) }

// SubTo computes dst[i] = a[i] - b[i]. All slices must have equal length.
func SubTo(dst, a, b []float64) { current().SubTo(dst, a, b) }

// ScaleTo computes dst[i] = s * src[i].
func ScaleTo(dst []float64, s float64, src []float64) { current().ScaleTo(dst, s, src) }

// MulTo computes dst[i] = a[i] * b[i].
func MulTo(dst, a, b []float64) { current().MulTo(dst, a, b) }

// Dot returns sum(a[i] * b[i]).
func Dot(a, b []float64) float64 { return current().Dot(a, b) }

// CAddTo computes dst[i] = a[i] + b[i].
func CAddTo(dst, a, b []complex128) { current().CAddTo(dst, a, b) }

// CSubTo computes dst[i] = a[i] - b[i].
func CSubTo(dst, a, b []complex128) { current().CSubTo(dst, a, b) }

// CScaleTo computes dst[i] = s * src[i].
func CScaleTo(dst []complex128, s complex128, src []complex128) {
	current().CScaleTo(dst, s, src)
}

// CDot returns the Hermitian product sum(a[i] * conj(b[i])).
func CDot(a, b []complex128) complex128 { return current().CDot(a, b) }

// CAbs computes dst[i] = |src[i]|.
func CAbs(dst []float64, src []complex128) { current().CAbs(dst, src) }
