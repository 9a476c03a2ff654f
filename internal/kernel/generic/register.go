package generic

import (
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernels as the lowest-priority fallback.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddTo:   AddTo,
		SubTo:   SubTo,
		ScaleTo: ScaleTo,
		MulTo:   MulTo,
		Dot:     Dot,

		CAddTo:   CAddTo,
		CSubTo:   CSubTo,
		CScaleTo: CScaleTo,
		CDot:     CDot,
		CAbs:     CAbs,
	})
}
