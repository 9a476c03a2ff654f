package vector

import (
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	realFillMin    = 0
	realFillMax    = 100
	complexFillMin = -1
	complexFillMax = 1
)

func fillReal[T Real](dst []T, cfg Config) {
	dist := distuv.Uniform{Min: realFillMin, Max: realFillMax, Src: cfg.Source}
	for i := range dst {
		dst[i] = T(dist.Rand())
	}
}

// fillComplex draws the real part before the imaginary part of each element.
func fillComplex[T Complex](dst []T, cfg Config) {
	dist := distuv.Uniform{Min: complexFillMin, Max: complexFillMax, Src: cfg.Source}
	for i := range dst {
		re := dist.Rand()
		im := dist.Rand()
		dst[i] = T(complex(re, im))
	}
}
