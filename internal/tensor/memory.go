package tensor

import (
	"fmt"
	"slices"
)

// MemoryInfo describes how a tensor occupies memory, mirroring the NumPy
// attributes size, itemsize, nbytes and strides.
type MemoryInfo struct {
	Shape    Shape
	DType    DataType
	Size     int   // number of elements
	ItemSize int   // bytes per element
	NBytes   int   // Size * ItemSize
	Strides  []int // bytes to step in each dimension
	// Contiguous is true for row-major (C order) layouts.
	Contiguous bool
	// Shared is true when another tensor (for example a reshape view)
	// references the same buffer.
	Shared bool
}

// String renders the info on one line.
func (m MemoryInfo) String() string {
	return fmt.Sprintf("shape=%v dtype=%s size=%d itemsize=%d nbytes=%d strides=%v contiguous=%t shared=%t",
		m.Shape, m.DType, m.Size, m.ItemSize, m.NBytes, Shape(m.Strides), m.Contiguous, m.Shared)
}

// Memory reports the memory layout of the tensor.
//
// Example:
//
//	x := tensor.Zeros[float64](Shape{3, 4}, backend)
//	info := x.Memory() // size=12 itemsize=8 nbytes=96 strides=(32, 8)
func (t *Tensor[T, B]) Memory() MemoryInfo {
	return MemoryInfo{
		Shape:      t.Shape().Clone(),
		DType:      t.DType(),
		Size:       t.NumElements(),
		ItemSize:   t.DType().Size(),
		NBytes:     t.raw.ByteSize(),
		Strides:    t.raw.ByteStrides(),
		Contiguous: slices.Equal(t.raw.Strides(), t.Shape().ComputeStrides()),
		Shared:     !t.raw.IsUnique(),
	}
}

// SharesMemory reports whether a and b are backed by the same buffer.
func SharesMemory[T, U DType, B Backend](a *Tensor[T, B], b *Tensor[U, B]) bool {
	return a.raw.SharesBuffer(b.raw)
}
