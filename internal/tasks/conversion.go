package tasks

import "github.com/born-ml/numtasks/tensor"

// ToFloat converts a to float64.
func ToFloat[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return a.Float64()
}

// FloatToInt converts a to int64, truncating toward zero.
func FloatToInt[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[int64, B] {
	return a.Int64()
}
