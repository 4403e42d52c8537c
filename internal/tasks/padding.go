package tasks

import "github.com/born-ml/numtasks/tensor"

// CreateBorderArray returns a 5x5 array of ones whose interior 3x3 block is zero.
func CreateBorderArray[B tensor.Backend](b B) *tensor.Tensor[float64, B] {
	inner := tensor.Zeros[float64](tensor.Shape{3, 3}, b)
	return inner.Pad([][2]int{{1, 1}}, tensor.PadOptions{Mode: tensor.PadConstant, Value: 1})
}

// AddZeroBorder surrounds a with a border of zeros one element wide.
func AddZeroBorder[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return a.Pad([][2]int{{1, 1}}, tensor.PadOptions{Mode: tensor.PadConstant})
}
