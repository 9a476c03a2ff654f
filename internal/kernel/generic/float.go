// Package generic provides pure Go reference kernels for the vector package.
package generic

// AddTo computes dst[i] = a[i] + b[i].
func AddTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubTo computes dst[i] = a[i] - b[i].
func SubTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ScaleTo computes dst[i] = s * src[i].
func ScaleTo(dst []float64, s float64, src []float64) {
	for i := range dst {
		dst[i] = s * src[i]
	}
}

// MulTo computes dst[i] = a[i] * b[i].
func MulTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Dot returns sum(a[i] * b[i]).
func Dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
