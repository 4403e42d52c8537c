// Package cpu implements the pure Go CPU backend for numtasks tensors.
package cpu

import (
	"fmt"

	"github.com/born-ml/numtasks/internal/parallel"
	"github.com/born-ml/numtasks/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend with parallel element-wise loops sized to the machine.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Reshape returns a view with the same data but different shape.
// The view shares memory with t (copy-on-write).
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	view, err := t.View(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return view
}

// Transpose transposes the tensor by permuting its dimensions.
// With no axes the dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	perm := make([]int, ndim)
	for i, ax := range axes {
		norm, err := tensor.NormalizeDim(ax, ndim)
		if err != nil {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[norm] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[norm] = true
		perm[i] = norm
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range perm {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	inStrides := t.Strides()
	mapped := make([]int, ndim)
	for i, ax := range perm {
		mapped[i] = inStrides[ax]
	}
	cpu.gather(result, t, func(coords []int) int {
		src := 0
		for i, c := range coords {
			src += c * mapped[i]
		}
		return src
	})

	return result
}
