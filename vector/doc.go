// Package vector provides fixed-length numeric vectors over real and complex
// element types.
//
// Vector[T] holds integer or floating-point elements and ComplexVector[T]
// holds complex64 or complex128 elements. Both own their storage exclusively:
// every arithmetic operation returns a freshly allocated vector and never
// aliases its operands, and Clone and Assign always deep-copy.
//
// Operations on []float64 and []complex128 backed vectors dispatch to
// accelerated kernels selected once for the running CPU; every other element
// type uses plain Go loops with identical semantics.
//
// The complex dot product is Hermitian, sum(a[i] * conj(b[i])). Complex Scale
// takes a complex scalar while complex Div takes a real one.
//
// Errors are reported through the sentinels in errors.go; use errors.Is with
// ErrInvalidArgument or ErrOutOfRange to classify them.
package vector
