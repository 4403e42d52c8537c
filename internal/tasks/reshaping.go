package tasks

import (
	"fmt"

	"github.com/born-ml/numtasks/tensor"
)

// ReverseArray reverses a along its first axis.
func ReverseArray[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	if a.NDim() == 0 {
		return a.Clone()
	}
	return a.Flip(0)
}

// ReshapeArray gives a a new shape without changing its data. One dimension
// may be -1 and is then inferred.
func ReshapeArray[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B], shape ...int) (*tensor.Tensor[T, B], error) {
	if _, err := tensor.Shape(shape).Resolve(a.NumElements()); err != nil {
		return nil, fmt.Errorf("reshape array: %w", err)
	}
	return a.Reshape(shape...), nil
}

// FlattenArray returns a copy of a collapsed into one dimension.
func FlattenArray[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return a.Flatten()
}

// TransposeArray reverses the axes of a.
func TransposeArray[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return a.Transpose()
}
