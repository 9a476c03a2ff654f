//go:build fastmath

package vector

import (
	"github.com/meko-christian/algo-approx"
)

// sqrt trades accuracy for speed in Normalize when built with -tags fastmath.
func sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
