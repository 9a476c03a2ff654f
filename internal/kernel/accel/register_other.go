//go:build !amd64 && !arm64

package accel

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// gonum falls back to pure Go here; the entry still beats generic on priority.
func init() {
	e := entry()
	e.SIMDLevel = cpu.SIMDNone
	registry.Global.Register(e)
}
