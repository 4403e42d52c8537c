package cpu

import (
	"fmt"

	"github.com/born-ml/numtasks/internal/parallel"
	"github.com/born-ml/numtasks/internal/tensor"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

func (op binaryOp) String() string {
	return [...]string{"add", "sub", "mul", "div"}[op]
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(a, b, opAdd)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(a, b, opSub)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(a, b, opMul)
}

// Div performs element-wise division with broadcasting.
// Integer division floors like NumPy's floor_divide, so -7 / 2 is -4, and
// division by zero yields 0.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(a, b, opDiv)
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar(x, scalar, opAdd)
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar(x, scalar, opMul)
}

func (cpu *CPUBackend) binary(a, b *tensor.RawTensor, op binaryOp) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		binaryTyped[float32](cpu.parallel, result, a, b, op)
	case tensor.Float64:
		binaryTyped[float64](cpu.parallel, result, a, b, op)
	case tensor.Int32:
		binaryTyped[int32](cpu.parallel, result, a, b, op)
	case tensor.Int64:
		binaryTyped[int64](cpu.parallel, result, a, b, op)
	case tensor.Uint8:
		binaryTyped[uint8](cpu.parallel, result, a, b, op)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

func (cpu *CPUBackend) scalar(x *tensor.RawTensor, s any, op binaryOp) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		scalarTyped[float32](cpu.parallel, result, x, s, op)
	case tensor.Float64:
		scalarTyped[float64](cpu.parallel, result, x, s, op)
	case tensor.Int32:
		scalarTyped[int32](cpu.parallel, result, x, s, op)
	case tensor.Int64:
		scalarTyped[int64](cpu.parallel, result, x, s, op)
	case tensor.Uint8:
		scalarTyped[uint8](cpu.parallel, result, x, s, op)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

func binaryTyped[T tensor.Numeric](cfg parallel.Config, out, a, b *tensor.RawTensor, op binaryOp) {
	dst := tensor.Elements[T](out)
	x := tensor.Elements[T](a)
	y := tensor.Elements[T](b)
	f := opFunc[T](op)

	// Fast path: same shape, no index mapping
	if a.Shape().Equal(b.Shape()) {
		parallel.For(len(dst), func(i int) {
			dst[i] = f(x[i], y[i])
		}, cfg)
		return
	}

	outShape := out.Shape()
	outStrides := out.Strides()
	aShape, aStrides := a.Shape(), a.Strides()
	bShape, bStrides := b.Shape(), b.Strides()
	aOff := len(outShape) - len(aShape)
	bOff := len(outShape) - len(bShape)

	parallel.For(len(dst), func(i int) {
		coords := make([]int, len(outShape))
		unravel(i, outStrides, coords)
		dst[i] = f(x[broadcastOffset(coords, aShape, aStrides, aOff)],
			y[broadcastOffset(coords, bShape, bStrides, bOff)])
	}, cfg)
}

func scalarTyped[T tensor.Numeric](cfg parallel.Config, out, x *tensor.RawTensor, s any, op binaryOp) {
	dst := tensor.Elements[T](out)
	src := tensor.Elements[T](x)
	v := scalarAs[T](s)
	f := opFunc[T](op)

	parallel.For(len(dst), func(i int) {
		dst[i] = f(src[i], v)
	}, cfg)
}

func opFunc[T tensor.Numeric](op binaryOp) func(x, y T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		if tensor.DataTypeOf[T]().IsFloat() {
			return func(x, y T) T { return x / y }
		}
		return func(x, y T) T {
			if y == 0 {
				return 0
			}
			xi, yi := int64(x), int64(y)
			q := xi / yi
			if xi%yi != 0 && (xi < 0) != (yi < 0) {
				q--
			}
			return T(q)
		}
	default:
		panic(fmt.Sprintf("unknown op %d", op))
	}
}
