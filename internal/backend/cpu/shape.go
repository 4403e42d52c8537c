package cpu

import (
	"fmt"

	"github.com/born-ml/numtasks/internal/parallel"
	"github.com/born-ml/numtasks/internal/tensor"
)

// Expand broadcasts the tensor to a new shape.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	xShape := x.Shape()

	// newShape must have >= dimensions
	if len(newShape) < len(xShape) {
		panic(fmt.Sprintf("expand: new shape %v has fewer dimensions than input shape %v",
			newShape, xShape))
	}

	// Align shapes from the right: each input dimension is either equal to
	// the new one or 1.
	offset := len(newShape) - len(xShape)
	for i := 0; i < len(xShape); i++ {
		xDim := xShape[i]
		newDim := newShape[offset+i]
		if xDim != 1 && xDim != newDim {
			panic(fmt.Sprintf("expand: cannot expand dimension %d from %d to %d",
				i, xDim, newDim))
		}
	}

	result, err := tensor.NewRaw(newShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	xStrides := x.Strides()
	cpu.gather(result, x, func(coords []int) int {
		return broadcastOffset(coords, xShape, xStrides, offset)
	})

	return result
}

// broadcastOffset maps output coordinates onto a broadcast input.
func broadcastOffset(coords []int, shape tensor.Shape, strides []int, offset int) int {
	idx := 0
	for i, dim := range shape {
		if dim == 1 {
			continue // Broadcast dimension
		}
		idx += coords[offset+i] * strides[i]
	}
	return idx
}

// gather fills dst element by element, copying from the src element that
// srcIndex returns for each destination coordinate. A negative index leaves
// the destination element untouched. srcIndex may run on several goroutines
// at once and must not mutate shared state.
func (cpu *CPUBackend) gather(dst, src *tensor.RawTensor, srcIndex func(coords []int) int) {
	size := dst.DType().Size()
	out := dst.Data()
	in := src.Data()
	strides := dst.Strides()

	parallel.ForRange(dst.NumElements(), func(start, end int) {
		coords := make([]int, len(strides))
		for idx := start; idx < end; idx++ {
			unravel(idx, strides, coords)
			si := srcIndex(coords)
			if si < 0 {
				continue
			}
			copy(out[idx*size:(idx+1)*size], in[si*size:(si+1)*size])
		}
	}, cpu.parallel)
}

// unravel converts a flat row-major index into coordinates.
func unravel(idx int, strides, coords []int) {
	for d, s := range strides {
		coords[d] = idx / s
		idx %= s
	}
}
