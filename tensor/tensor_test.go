// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/numtasks/backend/cpu"
	"github.com/born-ml/numtasks/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want (2, 3)", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want float32", raw.DType())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
	if len(raw.AsFloat32()) != 6 {
		t.Errorf("AsFloat32() length = %d, want 6", len(raw.AsFloat32()))
	}

	view, err := raw.View(tensor.Shape{3, 2})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if raw.IsUnique() {
		t.Error("IsUnique() = true while a view exists, want false")
	}
	view.Release()
	if !raw.IsUnique() {
		t.Error("IsUnique() = false after the view was released, want true")
	}
}

// TestTensorCreationFunctions verifies high-level tensor creation API.
func TestTensorCreationFunctions(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name  string
		fn    func() (*tensor.Tensor[float64, *cpu.Backend], error)
		shape tensor.Shape
	}{
		{"Zeros", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.Zeros[float64](tensor.Shape{2, 3}, backend), nil
		}, tensor.Shape{2, 3}},
		{"Ones", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.Ones[float64](tensor.Shape{2, 3}, backend), nil
		}, tensor.Shape{2, 3}},
		{"Full", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.Full[float64](tensor.Shape{4}, 3.5, backend), nil
		}, tensor.Shape{4}},
		{"Arange", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.Arange[float64](12, 38, backend), nil
		}, tensor.Shape{26}},
		{"Linspace", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.Linspace[float64](0, 1, 5, backend), nil
		}, tensor.Shape{5}},
		{"Eye", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.Eye[float64](3, backend), nil
		}, tensor.Shape{3, 3}},
		{"FromSlice", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
		}, tensor.Shape{2, 3}},
		{"FromRows", func() (*tensor.Tensor[float64, *cpu.Backend], error) {
			return tensor.FromRows([][]float64{{2, 3, 4}, {5, 6, 7}, {8, 9, 10}}, backend)
		}, tensor.Shape{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.fn()
			if err != nil {
				t.Fatalf("%s() returned error: %v", tt.name, err)
			}
			if !result.Shape().Equal(tt.shape) {
				t.Errorf("%s() shape = %v, want %v", tt.name, result.Shape(), tt.shape)
			}
		})
	}
}

// TestSetFunctions verifies the set algebra wrappers.
func TestSetFunctions(t *testing.T) {
	backend := cpu.New()
	a := tensor.Vector([]int64{0, 10, 20, 40, 60}, backend)
	b := tensor.Vector([]int64{10, 30, 40}, backend)

	if got := tensor.Intersect1D(a, b).String(); got != "[10 40]" {
		t.Errorf("Intersect1D = %s, want [10 40]", got)
	}
	if got := tensor.SetDiff1D(a, b).String(); got != "[ 0 20 60]" {
		t.Errorf("SetDiff1D = %s, want [ 0 20 60]", got)
	}
	if got := tensor.In1D(a, b).String(); got != "[False  True False  True False]" {
		t.Errorf("In1D = %s", got)
	}
}

// TestParseDataType verifies dtype names round-trip.
func TestParseDataType(t *testing.T) {
	for _, dt := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Int32, tensor.Int64, tensor.Uint8, tensor.Bool} {
		got, err := tensor.ParseDataType(dt.String())
		if err != nil {
			t.Fatalf("ParseDataType(%q) failed: %v", dt.String(), err)
		}
		if got != dt {
			t.Errorf("ParseDataType(%q) = %v, want %v", dt.String(), got, dt)
		}
	}
}

// TestCast verifies the public Cast wrapper truncates toward zero.
func TestCast(t *testing.T) {
	backend := cpu.New()
	x := tensor.Vector([]float64{1.5, -2.7, 3}, backend)
	y := tensor.Cast[int64](x)

	want := []int64{1, -2, 3}
	for i, v := range y.Data() {
		if v != want[i] {
			t.Errorf("Cast[int64] element %d = %d, want %d", i, v, want[i])
		}
	}
}
