package tasks

import (
	"fmt"

	"github.com/born-ml/numtasks/tensor"
)

// NumericListToArray converts a list of numbers into a one-dimensional array.
func NumericListToArray[B tensor.Backend](lst []float64, b B) *tensor.Tensor[float64, B] {
	return tensor.Vector(lst, b)
}

// CreateMatrix returns the 3x3 matrix [[2 3 4] [5 6 7] [8 9 10]].
func CreateMatrix[B tensor.Backend](b B) *tensor.Tensor[int64, B] {
	return tensor.Arange[int64](2, 11, b).Reshape(3, 3)
}

// NullVector returns n zeros with value stored at idx.
// Negative idx counts from the end.
func NullVector[B tensor.Backend](n, idx int, value float64, b B) (*tensor.Tensor[float64, B], error) {
	if n < 0 {
		return nil, fmt.Errorf("null vector: negative size %d", n)
	}
	if idx < -n || idx >= n {
		return nil, fmt.Errorf("null vector: index %d out of range for size %d", idx, n)
	}
	x := tensor.Zeros[float64](tensor.Shape{n}, b)
	x.Set(value, idx)
	return x, nil
}

// RangeArray returns the integers in [start, stop).
func RangeArray[B tensor.Backend](start, stop int64, b B) *tensor.Tensor[int64, B] {
	return tensor.Arange(start, stop, b)
}

// Checkerboard returns an n x n matrix of alternating 0 and 1 with 0 in the
// top-left corner.
func Checkerboard[B tensor.Backend](n int, b B) (*tensor.Tensor[int64, B], error) {
	if n < 0 {
		return nil, fmt.Errorf("checkerboard: negative size %d", n)
	}
	board := tensor.Zeros[int64](tensor.Shape{n, n}, b)
	for i := 0; i < n; i++ {
		for j := (i + 1) % 2; j < n; j += 2 {
			board.Set(1, i, j)
		}
	}
	return board, nil
}

// IdentityMatrix returns the n x n identity matrix.
func IdentityMatrix[B tensor.Backend](n int, b B) (*tensor.Tensor[float64, B], error) {
	if n < 0 {
		return nil, fmt.Errorf("identity matrix: negative size %d", n)
	}
	return tensor.Eye[float64](n, b), nil
}
