// Package grid: Field is a concrete, row-major scalar field over a Shape,
// storing values in a flat slice for performance and cache friendliness.
package grid

import "math"

// Field is a scalar field on a 3-D grid.
// Data holds Shape.Size() elements in row-major order (axis 1 fastest);
// the value at (i1, i2, i3) lives at Data[Shape.Index(i1, i2, i3)].
// Data is exported so that kernel loops in sibling packages can index the
// backing slice directly; such callers must not reshape or reslice it.
type Field struct {
	Shape Shape
	Data  []float64
}

// NewField creates a zero-initialized field over shape.
// The shape is trusted to be valid (built via NewShape); a zero Shape yields
// an empty field that every kernel treats as a no-op.
// Complexity: O(n) time and memory for n = shape.Size().
func NewField(shape Shape) *Field {
	return &Field{Shape: shape, Data: make([]float64, shape.Size())}
}

// NewFieldLike creates a zero-initialized field with the same shape as f.
// Complexity: O(n).
func NewFieldLike(f *Field) *Field {
	return NewField(f.Shape)
}

// At retrieves the value at (i1, i2, i3).
// Returns ErrOutOfRange when the point lies outside the grid.
// Complexity: O(1).
func (f *Field) At(i1, i2, i3 int) (float64, error) {
	if !f.Shape.InBounds(i1, i2, i3) {
		return 0, ErrOutOfRange
	}

	return f.Data[f.Shape.Index(i1, i2, i3)], nil
}

// Set assigns v at (i1, i2, i3).
// Returns ErrOutOfRange when the point lies outside the grid.
// Complexity: O(1).
func (f *Field) Set(i1, i2, i3 int, v float64) error {
	if !f.Shape.InBounds(i1, i2, i3) {
		return ErrOutOfRange
	}
	f.Data[f.Shape.Index(i1, i2, i3)] = v

	return nil
}

// Zero sets every element to 0.
// Complexity: O(n).
func (f *Field) Zero() {
	for i := range f.Data {
		f.Data[i] = 0
	}
}

// Fill sets every element to v.
// Complexity: O(n).
func (f *Field) Fill(v float64) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

// Scale multiplies every element by v in place.
// Complexity: O(n).
func (f *Field) Scale(v float64) {
	for i := range f.Data {
		f.Data[i] *= v
	}
}

// CopyFrom copies src's values into f.
// Returns ErrNilField on a nil argument and ErrShapeMismatch when shapes differ.
// Complexity: O(n).
func (f *Field) CopyFrom(src *Field) error {
	if src == nil {
		return ErrNilField
	}
	if !f.Shape.Equal(src.Shape) {
		return ErrShapeMismatch
	}
	copy(f.Data, src.Data)

	return nil
}

// Sub subtracts other from f elementwise, in place (f ← f − other).
// Returns ErrNilField on a nil argument and ErrShapeMismatch when shapes differ.
// Complexity: O(n).
func (f *Field) Sub(other *Field) error {
	if other == nil {
		return ErrNilField
	}
	if !f.Shape.Equal(other.Shape) {
		return ErrShapeMismatch
	}
	for i := range f.Data {
		f.Data[i] -= other.Data[i]
	}

	return nil
}

// AXPY accumulates f ← f + alpha·other elementwise.
// Returns ErrNilField on a nil argument and ErrShapeMismatch when shapes differ.
// Complexity: O(n).
func (f *Field) AXPY(alpha float64, other *Field) error {
	if other == nil {
		return ErrNilField
	}
	if !f.Shape.Equal(other.Shape) {
		return ErrShapeMismatch
	}
	for i := range f.Data {
		f.Data[i] += alpha * other.Data[i]
	}

	return nil
}

// Dot returns the inner product ⟨f, other⟩ with a fixed accumulation order.
// Returns ErrNilField on a nil argument and ErrShapeMismatch when shapes differ.
// Complexity: O(n).
func (f *Field) Dot(other *Field) (float64, error) {
	if other == nil {
		return 0, ErrNilField
	}
	if !f.Shape.Equal(other.Shape) {
		return 0, ErrShapeMismatch
	}

	var sum float64
	for i := range f.Data {
		sum += f.Data[i] * other.Data[i]
	}

	return sum, nil
}

// MaxAbs returns the maximum absolute value over all elements (0 for an
// empty field).
// Complexity: O(n).
func (f *Field) MaxAbs() float64 {
	var m float64
	for _, v := range f.Data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

// Clone returns a deep copy of the field.
// Complexity: O(n) time and memory.
func (f *Field) Clone() *Field {
	out := NewField(f.Shape)
	copy(out.Data, f.Data)

	return out
}

// Aliases reports whether f and other share backing storage.
// Two distinct fields alias when their Data slices point at the same first
// element; apply/solve kernels use this to reject forbidden buffer reuse.
// Complexity: O(1).
func (f *Field) Aliases(other *Field) bool {
	if f == nil || other == nil {
		return false
	}
	if f == other {
		return true
	}
	if len(f.Data) == 0 || len(other.Data) == 0 {
		return false
	}

	return &f.Data[0] == &other.Data[0]
}
