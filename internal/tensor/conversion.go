package tensor

// Cast converts t to element type U.
// Float to integer conversion truncates toward zero; any non-zero value
// converts to true.
//
// Example:
//
//	x := tensor.Vector([]float64{1.5, -2.7}, backend)
//	y := tensor.Cast[int64](x) // [1 -2]
func Cast[U, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	result := t.backend.Cast(t.raw, DataTypeOf[U]())
	if result == t.raw {
		result = t.raw.Copy()
	}
	return New[U, B](result, t.backend)
}

// Float32 converts the tensor to float32.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	return Cast[float32](t)
}

// Float64 converts the tensor to float64.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	return Cast[float64](t)
}

// Int32 converts the tensor to int32.
func (t *Tensor[T, B]) Int32() *Tensor[int32, B] {
	return Cast[int32](t)
}

// Int64 converts the tensor to int64.
func (t *Tensor[T, B]) Int64() *Tensor[int64, B] {
	return Cast[int64](t)
}

// Uint8 converts the tensor to uint8.
func (t *Tensor[T, B]) Uint8() *Tensor[uint8, B] {
	return Cast[uint8](t)
}

// Bool converts the tensor to bool.
func (t *Tensor[T, B]) Bool() *Tensor[bool, B] {
	return Cast[bool](t)
}
