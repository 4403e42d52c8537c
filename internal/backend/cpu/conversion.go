package cpu

import (
	"fmt"

	"github.com/born-ml/numtasks/internal/parallel"
	"github.com/born-ml/numtasks/internal/tensor"
)

// Cast converts the tensor to a different data type.
// Returns x itself when the dtype already matches.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch dtype {
	case tensor.Float32:
		castTo[float32](cpu.parallel, result, x)
	case tensor.Float64:
		castTo[float64](cpu.parallel, result, x)
	case tensor.Int32:
		castTo[int32](cpu.parallel, result, x)
	case tensor.Int64:
		castTo[int64](cpu.parallel, result, x)
	case tensor.Uint8:
		castTo[uint8](cpu.parallel, result, x)
	case tensor.Bool:
		castToBool(cpu.parallel, result, x)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", dtype))
	}

	return result
}

// castTo converts any source dtype into the numeric type To.
func castTo[To tensor.Numeric](cfg parallel.Config, dst, src *tensor.RawTensor) {
	out := tensor.Elements[To](dst)

	switch src.DType() {
	case tensor.Float32:
		convert(cfg, out, src.AsFloat32())
	case tensor.Float64:
		convert(cfg, out, src.AsFloat64())
	case tensor.Int32:
		convert(cfg, out, src.AsInt32())
	case tensor.Int64:
		convert(cfg, out, src.AsInt64())
	case tensor.Uint8:
		convert(cfg, out, src.AsUint8())
	case tensor.Bool:
		in := src.AsBool()
		parallel.For(len(in), func(i int) {
			if in[i] {
				out[i] = 1
			}
		}, cfg)
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", src.DType()))
	}
}

func convert[To, From tensor.Numeric](cfg parallel.Config, dst []To, src []From) {
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = To(src[i])
		}
	}, cfg)
}

func castToBool(cfg parallel.Config, dst, src *tensor.RawTensor) {
	out := dst.AsBool()

	switch src.DType() {
	case tensor.Float32:
		nonZero(cfg, out, src.AsFloat32())
	case tensor.Float64:
		nonZero(cfg, out, src.AsFloat64())
	case tensor.Int32:
		nonZero(cfg, out, src.AsInt32())
	case tensor.Int64:
		nonZero(cfg, out, src.AsInt64())
	case tensor.Uint8:
		nonZero(cfg, out, src.AsUint8())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", src.DType()))
	}
}

func nonZero[T tensor.Numeric](cfg parallel.Config, dst []bool, src []T) {
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] != 0
		}
	}, cfg)
}

// fillScalar sets every element of r to v converted to r's dtype.
func (cpu *CPUBackend) fillScalar(r *tensor.RawTensor, v float64) {
	switch r.DType() {
	case tensor.Float32:
		fill(cpu.parallel, r.AsFloat32(), float32(v))
	case tensor.Float64:
		fill(cpu.parallel, r.AsFloat64(), v)
	case tensor.Int32:
		fill(cpu.parallel, r.AsInt32(), int32(v))
	case tensor.Int64:
		fill(cpu.parallel, r.AsInt64(), int64(v))
	case tensor.Uint8:
		fill(cpu.parallel, r.AsUint8(), uint8(v))
	case tensor.Bool:
		fill(cpu.parallel, r.AsBool(), v != 0)
	default:
		panic(fmt.Sprintf("fill: unsupported dtype %v", r.DType()))
	}
}

func fill[T tensor.DType](cfg parallel.Config, data []T, v T) {
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = v
		}
	}, cfg)
}

// scalarAs converts a Go scalar passed through the Backend interface to T.
func scalarAs[T tensor.Numeric](s any) T {
	switch v := s.(type) {
	case float32:
		return T(v)
	case float64:
		return T(v)
	case int:
		return T(v)
	case int32:
		return T(v)
	case int64:
		return T(v)
	case uint8:
		return T(v)
	default:
		panic(fmt.Sprintf("scalar: unsupported scalar type %T", s))
	}
}
