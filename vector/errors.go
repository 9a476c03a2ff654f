package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind shared by every argument validation failure.
	ErrInvalidArgument = errors.New("vector: invalid argument")
	// ErrOutOfRange is returned for element access outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	ErrDimensionMismatch = fmt.Errorf("%w: vectors must have the same dimension", ErrInvalidArgument)
	ErrInvalidDimension  = fmt.Errorf("%w: vector dimension must be greater than 0", ErrInvalidArgument)
	ErrDivideByZero      = fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	ErrTooShort          = fmt.Errorf("%w: vector must have at least 2 dimensions", ErrInvalidArgument)
)

func mismatch(a, b int) error {
	return fmt.Errorf("%w (%d != %d)", ErrDimensionMismatch, a, b)
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}
