// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numtasks/internal/tensor"
)

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Numeric is the ordered, arithmetic subset of DType (everything but bool).
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// ParseDataType converts a dtype name such as "float64" to a DataType.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device numtasks computes on.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// MemoryInfo describes how a tensor occupies memory.
type MemoryInfo = tensor.MemoryInfo

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Arange[float32](0, 10, backend)  // [0, 1, 2, ..., 9]
func Arange[T Numeric, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, end, b)
}

// ArangeStep creates a 1D tensor from start towards end (exclusive) in increments of step.
func ArangeStep[T Numeric, B Backend](start, end, step T, b B) *Tensor[T, B] {
	return tensor.ArangeStep[T, B](start, end, step, b)
}

// Linspace creates n evenly spaced values over [start, stop].
func Linspace[T Numeric, B Backend](start, stop T, n int, b B) *Tensor[T, B] {
	return tensor.Linspace[T, B](start, stop, n, b)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	backend := cpu.New()
//	identity := tensor.Eye[float32](3, backend)  // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// Vector creates a 1-D tensor holding a copy of data.
func Vector[T DType, B Backend](data []T, b B) *Tensor[T, B] {
	return tensor.Vector[T, B](data, b)
}

// FromRows creates a 2-D tensor from equally sized rows.
func FromRows[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	return tensor.FromRows[T, B](rows, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Manipulation functions

// Cat concatenates tensors along a dimension.
//
// Example:
//
//	backend := cpu.New()
//	a := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	b := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	c := tensor.Cat([]*tensor.Tensor[float32, B]{a, b}, 0)  // Shape: [4, 3]
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	return tensor.Cat(tensors, dim)
}

// Stack joins tensors of identical shape along a new dimension.
func Stack[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	return tensor.Stack(tensors, dim)
}

// Append flattens both tensors and joins them.
func Append[T DType, B Backend](a, values *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Append(a, values)
}

// Cast converts t to element type U.
//
// Example:
//
//	x := tensor.Vector([]float64{1.5, -2.7}, backend)
//	y := tensor.Cast[int64](x) // [ 1 -2]
func Cast[U, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	return tensor.Cast[U](t)
}

// Set functions

// Unique returns the sorted unique elements of t.
func Unique[T Numeric, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Unique(t)
}

// UniqueCounts returns the sorted unique elements of t and their counts.
func UniqueCounts[T Numeric, B Backend](t *Tensor[T, B]) (*Tensor[T, B], *Tensor[int64, B]) {
	return tensor.UniqueCounts(t)
}

// Intersect1D returns the sorted unique values present in both a and b.
func Intersect1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Intersect1D(a, b)
}

// Union1D returns the sorted unique values present in either a or b.
func Union1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Union1D(a, b)
}

// SetDiff1D returns the sorted unique values in a that are not in b.
func SetDiff1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	return tensor.SetDiff1D(a, b)
}

// SetXor1D returns the sorted unique values that are in exactly one of a and b.
func SetXor1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	return tensor.SetXor1D(a, b)
}

// In1D tests whether each element of a is present in b.
func In1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	return tensor.In1D(a, b)
}

// Utility functions

// SharesMemory reports whether a and b are backed by the same buffer.
func SharesMemory[T, U DType, B Backend](a *Tensor[T, B], b *Tensor[U, B]) bool {
	return tensor.SharesMemory(a, b)
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
