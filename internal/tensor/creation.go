package tensor

import (
	"fmt"
	"math"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones (true for bool).
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full(shape, one[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive), step 1.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T Numeric, B Backend](start, end T, b B) *Tensor[T, B] {
	return ArangeStep(start, end, 1, b)
}

// ArangeStep creates a 1D tensor with values start, start+step, ... stopping
// before end. A negative step counts down. An empty range yields shape (0,).
//
// Example:
//
//	t := tensor.ArangeStep[float64](0, 1, 0.25, backend) // [0, 0.25, 0.5, 0.75]
func ArangeStep[T Numeric, B Backend](start, end, step T, b B) *Tensor[T, B] {
	if step == 0 {
		panic("arange: step must be non-zero")
	}

	n := int(math.Ceil((float64(end) - float64(start)) / float64(step)))
	if n < 0 {
		n = 0
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = T(float64(start) + float64(i)*float64(step))
	}
	return t
}

// Linspace creates n evenly spaced values over [start, stop], endpoint included.
// Integer types truncate each value toward zero.
//
// Example:
//
//	t := tensor.Linspace[float64](0, 1, 5, backend) // [0, 0.25, 0.5, 0.75, 1]
func Linspace[T Numeric, B Backend](start, stop T, n int, b B) *Tensor[T, B] {
	if n < 0 {
		panic(fmt.Sprintf("linspace: number of samples %d must be non-negative", n))
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	if n == 0 {
		return t
	}
	if n == 1 {
		data[0] = start
		return t
	}

	lo, hi := float64(start), float64(stop)
	step := (hi - lo) / float64(n-1)
	for i := range data {
		data[i] = T(lo + float64(i)*step)
	}
	data[n-1] = stop
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float32](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	v := one[T]()
	for i := 0; i < n; i++ {
		t.Set(v, i, i)
	}
	return t
}
