package tensor

import "fmt"

// Reshape returns a tensor with the same data but different shape.
// One dimension may be -1, in which case it is inferred.
// The result shares memory with t until either is written through Set.
//
// Example:
//
//	t := tensor.Arange[int32](0, 12, backend) // Shape: [12]
//	reshaped := t.Reshape(3, -1)              // Shape: [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	resolved, err := Shape(newShape).Resolve(t.NumElements())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	result := t.backend.Reshape(t.raw, resolved)
	return New[T, B](result, t.backend)
}

// Flatten returns a 1-D copy of the tensor in row-major order.
func (t *Tensor[T, B]) Flatten() *Tensor[T, B] {
	raw := t.raw.Copy()
	raw.shape = Shape{raw.NumElements()}
	raw.stride = raw.shape.ComputeStrides()
	return New[T, B](raw, t.backend)
}

// Transpose permutes the dimensions. With no axes the order is reversed.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3}, backend)
//	y := x.Transpose() // Shape: [3, 2]
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	result := t.backend.Transpose(t.raw, axes...)
	return New[T, B](result, t.backend)
}

// Flip reverses the order of elements along dim.
// Supports negative dim indexing.
func (t *Tensor[T, B]) Flip(dim int) *Tensor[T, B] {
	result := t.backend.Flip(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Expand broadcasts the tensor to shape.
func (t *Tensor[T, B]) Expand(shape Shape) *Tensor[T, B] {
	result := t.backend.Expand(t.raw, shape)
	return New[T, B](result, t.backend)
}

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{2, 3}, backend)
//	b := tensor.Zeros[float32](Shape{2, 5}, backend)
//	c := tensor.Cat([]*Tensor[float32, B]{a, b}, 1) // Shape: [2, 8]
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	if len(tensors) == 1 {
		// Single tensor - return clone
		return tensors[0].Clone()
	}

	rawTensors := make([]*RawTensor, len(tensors))
	backend := tensors[0].backend
	for i, t := range tensors {
		rawTensors[i] = t.raw
	}

	result := backend.Cat(rawTensors, dim)
	return New[T, B](result, backend)
}

// Stack joins tensors of identical shape along a new dimension.
//
// Example:
//
//	a := tensor.Vector([]int64{1, 2, 3}, backend)
//	b := tensor.Vector([]int64{4, 5, 6}, backend)
//	c := tensor.Stack([]*Tensor[int64, B]{a, b}, 0) // [[1 2 3] [4 5 6]]
func Stack[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("stack: at least one tensor required")
	}

	shape := tensors[0].Shape()
	expanded := make([]*Tensor[T, B], len(tensors))
	for i, t := range tensors {
		if !t.Shape().Equal(shape) {
			panic(fmt.Sprintf("stack: tensor %d has shape %v, expected %v", i, t.Shape(), shape))
		}
		expanded[i] = t.Unsqueeze(dim)
	}
	return Cat(expanded, dim)
}

// Append flattens both tensors and joins them, like numpy.append without an axis.
func Append[T DType, B Backend](a, values *Tensor[T, B]) *Tensor[T, B] {
	return Cat([]*Tensor[T, B]{a.Flatten(), values.Flatten()}, 0)
}

// Chunk splits the tensor into n equal parts along the specified dimension.
//
// The dimension size must be divisible by n.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3, 6}, backend)
//	parts := x.Chunk(3, -1) // 3 tensors of shape [2, 3, 2]
func (t *Tensor[T, B]) Chunk(n, dim int) []*Tensor[T, B] {
	rawParts := t.backend.Chunk(t.raw, n, dim)
	parts := make([]*Tensor[T, B], len(rawParts))
	for i, raw := range rawParts {
		parts[i] = New[T, B](raw, t.backend)
	}
	return parts
}

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3}, backend)
//	y := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	result := t.backend.Unsqueeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Panics if the dimension size is not 1.
// Supports negative dim indexing.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	result := t.backend.Squeeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Pad adds values around the tensor. widths holds one (before, after) pair
// per dimension, or a single pair applied to every dimension.
//
// Example:
//
//	x := tensor.Ones[float64](Shape{3, 3}, backend)
//	y := x.Pad([][2]int{{1, 1}}, PadOptions{}) // 5x5 with a zero border
func (t *Tensor[T, B]) Pad(widths [][2]int, opts PadOptions) *Tensor[T, B] {
	result := t.backend.Pad(t.raw, widths, opts)
	return New[T, B](result, t.backend)
}
