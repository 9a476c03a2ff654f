package testutil

import (
	"math/rand/v2"
)

// DeterministicValues returns n values uniform in [-amplitude, amplitude)
// drawn from a PCG source seeded with seed.
func DeterministicValues(seed uint64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplex returns n complex values whose real and imaginary
// parts are uniform in [-amplitude, amplitude).
func DeterministicComplex(seed uint64, amplitude float64, n int) []complex128 {
	re := DeterministicValues(seed, amplitude, n)
	im := DeterministicValues(seed+1, amplitude, n)
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

// Basis returns the n-dimensional standard basis vector e_pos.
// An out-of-range pos yields the zero vector.
func Basis(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Fill returns a slice of length n with every element set to value.
func Fill(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
