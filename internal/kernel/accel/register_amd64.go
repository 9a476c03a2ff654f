//go:build amd64

package accel

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// SSE2 is the amd64 baseline for gonum's and algo-vecmath's assembly.
func init() {
	e := entry()
	e.SIMDLevel = cpu.SIMDSSE2
	registry.Global.Register(e)
}
