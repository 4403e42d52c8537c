package cpu

import (
	"testing"

	"github.com/born-ml/numtasks/internal/parallel"
	"github.com/born-ml/numtasks/internal/tensor"
)

func TestElementwiseOps(t *testing.T) {
	backend := New()
	a := rawOf(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawOf(t, []float64{10, 20, 30}, tensor.Shape{3})

	expectElements(t, "Add", backend.Add(a, b), []float64{11, 22, 33})
	expectElements(t, "Sub", backend.Sub(b, a), []float64{9, 18, 27})
	expectElements(t, "Mul", backend.Mul(a, b), []float64{10, 40, 90})
	expectElements(t, "Div", backend.Div(b, a), []float64{10, 10, 10})
}

func TestElementwiseBroadcast(t *testing.T) {
	backend := New()
	col := rawOf(t, []int64{1, 2}, tensor.Shape{2, 1})
	row := rawOf(t, []int64{10, 20, 30}, tensor.Shape{3})

	result := backend.Add(col, row)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Add broadcast shape = %v, expected (2, 3)", result.Shape())
	}
	expectElements(t, "Add broadcast", result, []int64{11, 21, 31, 12, 22, 32})

	expectPanic(t, "Add incompatible", func() {
		backend.Add(row, rawOf(t, []int64{1, 2}, tensor.Shape{2}))
	})
}

func TestIntegerDivideFloors(t *testing.T) {
	backend := New()

	a := rawOf(t, []int64{-7, 7, -7, 7, -6, 0}, tensor.Shape{6})
	b := rawOf(t, []int64{2, 2, -2, -2, 3, -5}, tensor.Shape{6})
	expectElements(t, "Div int64", backend.Div(a, b), []int64{-4, 3, 3, -4, -2, 0})

	c := rawOf(t, []int32{-1, 1}, tensor.Shape{2})
	d := rawOf(t, []int32{3, 3}, tensor.Shape{2})
	expectElements(t, "Div int32", backend.Div(c, d), []int32{-1, 0})

	u := rawOf(t, []uint8{255, 7}, tensor.Shape{2})
	v := rawOf(t, []uint8{2, 2}, tensor.Shape{2})
	expectElements(t, "Div uint8", backend.Div(u, v), []uint8{127, 3})
}

func TestIntegerDivideByZero(t *testing.T) {
	backend := New()
	a := rawOf(t, []int32{7, 8}, tensor.Shape{2})
	b := rawOf(t, []int32{2, 0}, tensor.Shape{2})

	expectElements(t, "Div", backend.Div(a, b), []int32{3, 0})
}

func TestScalarOps(t *testing.T) {
	backend := New()
	x := rawOf(t, []int64{1, 2}, tensor.Shape{2})
	expectElements(t, "AddScalar", backend.AddScalar(x, 5), []int64{6, 7})

	f := rawOf(t, []float32{1.5, -1}, tensor.Shape{2})
	expectElements(t, "MulScalar", backend.MulScalar(f, float32(2)), []float32{3, -2})
}

func TestOps_DTypeErrors(t *testing.T) {
	backend := New()
	a := rawOf(t, []int64{1}, tensor.Shape{1})
	b := rawOf(t, []float64{1}, tensor.Shape{1})
	flags := rawOf(t, []bool{true}, tensor.Shape{1})

	expectPanic(t, "Add dtype mismatch", func() { backend.Add(a, b) })
	expectPanic(t, "Add bool", func() { backend.Add(flags, flags) })
	expectPanic(t, "AddScalar string", func() { backend.AddScalar(a, "1") })
}

// TestParallelMatchesSequential runs a workload large enough to be split
// across goroutines and compares it with the sequential backend.
func TestParallelMatchesSequential(t *testing.T) {
	n := 3 * parallel.DefaultConfig().MinChunkSize
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	x := rawOf(t, data, tensor.Shape{n})

	par := New().Mul(x, x).AsFloat64()
	seq := NewWithConfig(parallel.Sequential()).Mul(x, x).AsFloat64()

	for i := range par {
		if par[i] != seq[i] {
			t.Fatalf("element %d: parallel %v != sequential %v", i, par[i], seq[i])
		}
	}
}

// TestStructuralKernelsParallel forces small chunks so the index-mapping
// kernels behind transpose, flip, pad, expand and cast split across
// goroutines, and checks them against the sequential backend.
func TestStructuralKernelsParallel(t *testing.T) {
	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8})
	seq := NewWithConfig(parallel.Sequential())

	rows, cols := 30, 17
	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = int64(i*7%23) - 11
	}
	x := rawOf(t, data, tensor.Shape{rows, cols})
	col := rawOf(t, data[:rows], tensor.Shape{rows, 1})

	kernels := map[string]func(b *CPUBackend) *tensor.RawTensor{
		"transpose": func(b *CPUBackend) *tensor.RawTensor { return b.Transpose(x) },
		"flip":      func(b *CPUBackend) *tensor.RawTensor { return b.Flip(x, 1) },
		"pad reflect": func(b *CPUBackend) *tensor.RawTensor {
			return b.Pad(x, [][2]int{{3, 2}, {4, 5}}, tensor.PadOptions{Mode: tensor.PadReflect})
		},
		"pad constant": func(b *CPUBackend) *tensor.RawTensor {
			return b.Pad(x, [][2]int{{1, 1}}, tensor.PadOptions{Mode: tensor.PadConstant, Value: 9})
		},
		"expand":        func(b *CPUBackend) *tensor.RawTensor { return b.Expand(col, tensor.Shape{rows, cols}) },
		"cast float64":  func(b *CPUBackend) *tensor.RawTensor { return b.Cast(x, tensor.Float64) },
		"cast bool":     func(b *CPUBackend) *tensor.RawTensor { return b.Cast(x, tensor.Bool) },
		"cast from bool": func(b *CPUBackend) *tensor.RawTensor { return b.Cast(b.Cast(x, tensor.Bool), tensor.Int32) },
	}

	for name, kernel := range kernels {
		t.Run(name, func(t *testing.T) {
			got, want := kernel(par), kernel(seq)
			if !got.Shape().Equal(want.Shape()) {
				t.Fatalf("shape %v, expected %v", got.Shape(), want.Shape())
			}
			g, w := got.Data(), want.Data()
			for i := range w {
				if g[i] != w[i] {
					t.Fatalf("byte %d: parallel %d != sequential %d", i, g[i], w[i])
				}
			}
		})
	}
}
