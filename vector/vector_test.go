package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vector/internal/testutil"
)

func TestNew(t *testing.T) {
	v := New(3, 2)
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if x, err := v.At(i); err != nil || x != 2 {
			t.Fatalf("At(%d) = %v, %v; want 2, nil", i, x, err)
		}
	}
}

// New does not validate its dimension, unlike NewRandom.
func TestNewNonPositiveDimension(t *testing.T) {
	for _, dim := range []int{0, -1, -10} {
		v := New(dim, 1.5)
		if v.Len() != 0 {
			t.Fatalf("New(%d).Len() = %d, want 0", dim, v.Len())
		}
		if got := v.String(); got != "()" {
			t.Fatalf("New(%d).String() = %q, want ()", dim, got)
		}
	}
}

func TestNewRandom(t *testing.T) {
	v, err := NewRandom[float64](64, WithSeed(1))
	if err != nil {
		t.Fatalf("NewRandom() error = %v", err)
	}
	if v.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", v.Len())
	}
	for i, x := range v.Values() {
		if x < 0 || x >= 100 {
			t.Fatalf("index %d: %v outside [0, 100)", i, x)
		}
	}
}

func TestNewRandomInteger(t *testing.T) {
	v, err := NewRandom[uint8](128, WithSeed(5))
	if err != nil {
		t.Fatalf("NewRandom() error = %v", err)
	}
	for i, x := range v.Values() {
		if x >= 100 {
			t.Fatalf("index %d: %v outside [0, 100)", i, x)
		}
	}
}

func TestNewRandomInvalidDimension(t *testing.T) {
	for _, dim := range []int{0, -3} {
		v, err := NewRandom[int](dim)
		if !errors.Is(err, ErrInvalidDimension) || !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewRandom(%d) error = %v, want ErrInvalidDimension", dim, err)
		}
		if v != nil {
			t.Fatalf("NewRandom(%d) returned non-nil vector on error", dim)
		}
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	v := FromSlice(src)
	src[0] = 42
	if x, _ := v.At(0); x != 1 {
		t.Fatalf("At(0) = %v after mutating source, want 1", x)
	}

	vals := v.Values()
	vals[1] = 42
	if x, _ := v.At(1); x != 2 {
		t.Fatalf("At(1) = %v after mutating Values(), want 2", x)
	}
}

func TestAtOutOfRange(t *testing.T) {
	v := New(3, 1.0)
	for _, idx := range []int{-1, 3, 100} {
		if _, err := v.At(idx); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if err := v.Set(idx, 2); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Set(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
	if err := v.Set(2, 7); err != nil {
		t.Fatalf("Set(2) error = %v", err)
	}
	if x, _ := v.At(2); x != 7 {
		t.Fatalf("At(2) = %v, want 7", x)
	}
}

func TestCloneIndependence(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	c := v.Clone()
	if err := c.Set(0, 99); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if x, _ := v.At(0); x != 1 {
		t.Fatalf("source At(0) = %v after mutating clone, want 1", x)
	}
}

func TestAssign(t *testing.T) {
	v := FromSlice([]float64{1, 2, 3})
	w := New(1, 0.0)
	w.Assign(v)
	if !w.Equal(v) {
		t.Fatalf("Assign() = %v, want %v", w, v)
	}

	if err := w.Set(1, -5); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if x, _ := v.At(1); x != 2 {
		t.Fatalf("source At(1) = %v after mutating assignee, want 2", x)
	}

	v.Assign(v)
	if got := v.Values(); got[0] != 1 || got[1] != 2 || got[2] != 3 || len(got) != 3 {
		t.Fatalf("self Assign() changed vector to %v", got)
	}
}

func TestAddSub(t *testing.T) {
	a := FromSlice([]float64{1, 2, 3})
	b := FromSlice([]float64{4, 5, 6})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, sum.Values(), []float64{5, 7, 9}, 0)

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, diff.Values(), []float64{-3, -3, -3}, 0)

	// operands untouched
	testutil.RequireSliceNearlyEqual(t, a.Values(), []float64{1, 2, 3}, 0)
	testutil.RequireSliceNearlyEqual(t, b.Values(), []float64{4, 5, 6}, 0)
}

func TestAddSubInteger(t *testing.T) {
	a := FromSlice([]int32{1, -2, 3})
	b := FromSlice([]int32{10, 20, 30})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !sum.Equal(FromSlice([]int32{11, 18, 33})) {
		t.Fatalf("Add() = %v", sum)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	if !diff.Equal(FromSlice([]int32{-9, -22, -27})) {
		t.Fatalf("Sub() = %v", diff)
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := New(3, 1.0)
	b := New(2, 1.0)

	tests := []struct {
		name string
		op   func() error
	}{
		{name: "add", op: func() error { _, err := a.Add(b); return err }},
		{name: "sub", op: func() error { _, err := a.Sub(b); return err }},
		{name: "dot", op: func() error { _, err := a.Dot(b); return err }},
		{name: "hadamard", op: func() error { _, err := a.Hadamard(b); return err }},
		{name: "nil operand", op: func() error { _, err := a.Add(nil); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("error = %v, want ErrDimensionMismatch", err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument kind", err)
			}
		})
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "empty", a: []float64{}, b: []float64{}, want: 0},
		{name: "single", a: []float64{3.5}, b: []float64{2}, want: 7},
		{name: "simple", a: []float64{1, 2, 3}, b: []float64{4, 5, 6}, want: 32},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "mixed signs", a: []float64{-1, 2, -3}, b: []float64{4, -5, 6}, want: -32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSlice(tt.a).Dot(FromSlice(tt.b))
			if err != nil {
				t.Fatalf("Dot() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotInteger(t *testing.T) {
	got, err := FromSlice([]int{1, 2, 3}).Dot(FromSlice([]int{4, 5, 6}))
	if err != nil {
		t.Fatalf("Dot() error = %v", err)
	}
	if got != 32 {
		t.Fatalf("Dot() = %v, want 32", got)
	}
}

func TestHadamard(t *testing.T) {
	got, err := FromSlice([]float64{1, -2, 3}).Hadamard(FromSlice([]float64{4, 5, 0.5}))
	if err != nil {
		t.Fatalf("Hadamard() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Values(), []float64{4, -10, 1.5}, 0)

	gotInt, err := FromSlice([]int{2, 3}).Hadamard(FromSlice([]int{4, -1}))
	if err != nil {
		t.Fatalf("Hadamard() error = %v", err)
	}
	if !gotInt.Equal(FromSlice([]int{8, -3})) {
		t.Fatalf("Hadamard() = %v, want (8, -3)", gotInt)
	}
}

func TestScaleCommutative(t *testing.T) {
	intVec := New(3, 2)
	if !intVec.Scale(3).Equal(ScaleBy(3, intVec)) {
		t.Fatal("int Scale and ScaleBy differ")
	}
	if !intVec.Scale(3).Equal(New(3, 6)) {
		t.Fatalf("Scale(3) = %v, want (6, 6, 6)", intVec.Scale(3))
	}

	floatVec := New(3, float32(1.5))
	if !floatVec.Scale(2).Equal(ScaleBy(2, floatVec)) {
		t.Fatal("float32 Scale and ScaleBy differ")
	}

	doubleVec := New(3, 1.234)
	got := doubleVec.Scale(1.5)
	if !got.Equal(ScaleBy(1.5, doubleVec)) {
		t.Fatal("float64 Scale and ScaleBy differ")
	}
	testutil.RequireSliceNearlyEqual(t, got.Values(), testutil.Fill(1.851, 3), 1e-12)
}

func TestDiv(t *testing.T) {
	got, err := FromSlice([]float64{2, -4, 1}).Div(2)
	if err != nil {
		t.Fatalf("Div() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Values(), []float64{1, -2, 0.5}, 0)

	gotInt, err := FromSlice([]int{7, -7, 3}).Div(2)
	if err != nil {
		t.Fatalf("Div() error = %v", err)
	}
	if !gotInt.Equal(FromSlice([]int{3, -3, 1})) {
		t.Fatalf("integer Div(2) = %v, want (3, -3, 1)", gotInt)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := New(3, 1.0).Div(0)
	if !errors.Is(err, ErrDivideByZero) || !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Div(0) error = %v, want ErrDivideByZero", err)
	}

	// exact comparison: a tiny divisor is accepted
	if _, err := New(3, 1.0).Div(1e-300); err != nil {
		t.Fatalf("Div(1e-300) error = %v, want nil", err)
	}
}

func TestNormalize(t *testing.T) {
	got, err := FromSlice([]float64{3, 4}).Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Values(), []float64{0.6, 0.8}, 1e-15)

	got32, err := FromSlice([]float32{0, 0, 2}).Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !got32.Equal(FromSlice([]float32{0, 0, 1})) {
		t.Fatalf("Normalize() = %v, want (0, 0, 1)", got32)
	}
}

func TestNormalizeZero(t *testing.T) {
	if _, err := New(4, 0.0).Normalize(); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Normalize() of zero vector error = %v, want ErrDivideByZero", err)
	}

	// the square underflows to exactly zero
	if _, err := FromSlice([]float64{1e-200}).Normalize(); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Normalize() of underflowing vector error = %v, want ErrDivideByZero", err)
	}
}

func TestNormalizeIntegerTruncates(t *testing.T) {
	got, err := FromSlice([]int{3, 4}).Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !got.Equal(FromSlice([]int{0, 0})) {
		t.Fatalf("integer Normalize() = %v, want (0, 0)", got)
	}
}

func TestMagnitude(t *testing.T) {
	if got := FromSlice([]float64{1, 2, 2}).Magnitude(); got != 3 {
		t.Fatalf("Magnitude() = %v, want 3", got)
	}
	if got := FromSlice([]int{5, 12}).Magnitude(); got != 13 {
		t.Fatalf("Magnitude() = %v, want 13", got)
	}
}

func TestEqualApprox(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	if !a.EqualApprox(FromSlice([]float64{1 + 1e-10, 2}), 1e-9) {
		t.Fatal("expected vectors to be approximately equal")
	}
	if a.EqualApprox(FromSlice([]float64{1.1, 2}), 1e-3) {
		t.Fatal("expected vectors to differ")
	}
	if a.EqualApprox(FromSlice([]float64{1}), 1) {
		t.Fatal("vectors of different length must not be equal")
	}
	if !FromSlice([]uint{3}).EqualApprox(FromSlice([]uint{5}), 2) {
		t.Fatal("unsigned difference must not wrap")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "int", got: New(3, 2).String(), want: "(2, 2, 2)"},
		{name: "float", got: FromSlice([]float64{1.5, -2, 0.25}).String(), want: "(1.5, -2, 0.25)"},
		{name: "single", got: FromSlice([]float32{1.5}).String(), want: "(1.5)"},
		{name: "empty", got: FromSlice([]int{}).String(), want: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestNilVector(t *testing.T) {
	var v *Vector[float64]
	if v.Len() != 0 {
		t.Fatalf("nil Len() = %d, want 0", v.Len())
	}
	if _, err := v.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("nil At(0) error = %v, want ErrOutOfRange", err)
	}
	sum, err := New(0, 1.0).Add(v)
	if err != nil || sum.Len() != 0 {
		t.Fatalf("empty + nil = %v, %v; want empty vector", sum, err)
	}
	if math.IsNaN(v.Magnitude()) {
		t.Fatal("nil Magnitude() is NaN")
	}
}
