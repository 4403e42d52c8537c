package tasks

import (
	"fmt"

	"github.com/born-ml/numtasks/tensor"
)

// AppendValues flattens a and values and joins them.
func AppendValues[T tensor.DType, B tensor.Backend](a, values *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.Append(a, values)
}

// ConcatenateArrays joins a and b along axis.
func ConcatenateArrays[T tensor.DType, B tensor.Backend](a, b *tensor.Tensor[T, B], axis int) (*tensor.Tensor[T, B], error) {
	if a.NDim() != b.NDim() {
		return nil, fmt.Errorf("concatenate: arrays have %d and %d dimensions", a.NDim(), b.NDim())
	}
	if a.NDim() == 0 {
		return nil, fmt.Errorf("concatenate: zero-dimensional arrays cannot be concatenated")
	}
	dim := axis
	if dim < 0 {
		dim += a.NDim()
	}
	if dim < 0 || dim >= a.NDim() {
		return nil, fmt.Errorf("concatenate: axis %d out of range for %dD arrays", axis, a.NDim())
	}
	for d := range a.Shape() {
		if d != dim && a.Shape()[d] != b.Shape()[d] {
			return nil, fmt.Errorf("concatenate: shapes %v and %v differ outside axis %d", a.Shape(), b.Shape(), axis)
		}
	}
	return tensor.Cat([]*tensor.Tensor[T, B]{a, b}, dim), nil
}

// StackArrays stacks a and b vertically: 1-D inputs become the rows of a
// 2-D result, higher dimensional inputs are joined along their first axis.
func StackArrays[T tensor.DType, B tensor.Backend](a, b *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if a.NDim() <= 1 {
		if !a.Shape().Equal(b.Shape()) {
			return nil, fmt.Errorf("stack: shapes %v and %v differ", a.Shape(), b.Shape())
		}
		if a.NDim() == 0 {
			return tensor.Stack([]*tensor.Tensor[T, B]{a.Reshape(1), b.Reshape(1)}, 0), nil
		}
		return tensor.Stack([]*tensor.Tensor[T, B]{a, b}, 0), nil
	}
	return ConcatenateArrays(a, b, 0)
}
