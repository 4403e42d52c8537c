package tasks

import "github.com/born-ml/numtasks/tensor"

// ArrayMemory reports the element count, element size and total byte size of a.
func ArrayMemory[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B]) tensor.MemoryInfo {
	return a.Memory()
}

// Layout compares the memory layout of an array with a reshaped view of it.
type Layout struct {
	Array  tensor.MemoryInfo
	View   tensor.MemoryInfo
	Shared bool // view and array use the same buffer
}

// MemoryLayout reshapes a into shape and reports both layouts.
// The reshape is a view, so no data is copied.
func MemoryLayout[T tensor.DType, B tensor.Backend](a *tensor.Tensor[T, B], shape ...int) (Layout, error) {
	view, err := ReshapeArray(a, shape...)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Array:  a.Memory(),
		View:   view.Memory(),
		Shared: tensor.SharesMemory(a, view),
	}, nil
}
