package cpu

import (
	"fmt"

	"github.com/born-ml/numtasks/internal/tensor"
)

// Pad surrounds x with values produced by opts.Mode, like numpy.pad.
//
// widths holds one (before, after) pair per dimension; a single pair is
// applied to every dimension.
//
// Example:
//
//	x := tensor.Ones[float64](tensor.Shape{3, 3}, backend)
//	y := backend.Pad(x.Raw(), [][2]int{{1, 1}}, tensor.PadOptions{}) // Shape: [5, 5]
func (cpu *CPUBackend) Pad(x *tensor.RawTensor, widths [][2]int, opts tensor.PadOptions) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(widths) == 1 && ndim > 1 {
		pair := widths[0]
		widths = make([][2]int, ndim)
		for i := range widths {
			widths[i] = pair
		}
	}
	if len(widths) != ndim {
		panic(fmt.Sprintf("pad: got %d width pairs for %dD tensor", len(widths), ndim))
	}

	outShape := make(tensor.Shape, ndim)
	for d, w := range widths {
		if w[0] < 0 || w[1] < 0 {
			panic(fmt.Sprintf("pad: negative width %v for dimension %d", w, d))
		}
		if shape[d] == 0 && opts.Mode != tensor.PadConstant && w[0]+w[1] > 0 {
			panic(fmt.Sprintf("pad: cannot %s-pad empty dimension %d", opts.Mode, d))
		}
		outShape[d] = shape[d] + w[0] + w[1]
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("pad: %v", err))
	}

	if opts.Mode == tensor.PadConstant {
		cpu.fillScalar(result, opts.Value)
	}

	strides := x.Strides()
	cpu.gather(result, x, func(coords []int) int {
		src := 0
		for d, c := range coords {
			i, ok := padIndex(c-widths[d][0], shape[d], opts.Mode)
			if !ok {
				return -1
			}
			src += i * strides[d]
		}
		return src
	})

	return result
}

// padIndex maps a source coordinate that may lie outside [0, n) back into
// the source according to mode. ok is false when the element comes from the
// constant fill.
func padIndex(i, n int, mode tensor.PadMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}

	switch mode {
	case tensor.PadConstant:
		return 0, false
	case tensor.PadEdge:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case tensor.PadReflect:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		m := mod(i, period)
		if m >= n {
			m = period - m
		}
		return m, true
	case tensor.PadSymmetric:
		period := 2 * n
		m := mod(i, period)
		if m >= n {
			m = period - 1 - m
		}
		return m, true
	case tensor.PadWrap:
		return mod(i, n), true
	default:
		panic(fmt.Sprintf("pad: unsupported mode %v", mode))
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
