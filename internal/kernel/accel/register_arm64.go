//go:build arm64

package accel

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

func init() {
	e := entry()
	e.SIMDLevel = cpu.SIMDNEON
	registry.Global.Register(e)
}
