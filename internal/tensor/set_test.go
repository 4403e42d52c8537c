package tensor_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/born-ml/numtasks/internal/backend/cpu"
	"github.com/born-ml/numtasks/internal/tensor"
)

func TestSetOperations(t *testing.T) {
	backend := cpu.New()
	a := tensor.Vector([]int64{0, 10, 20, 40, 60, 80}, backend)
	b := tensor.Vector([]int64{10, 30, 40, 50, 70, 90}, backend)

	tests := []struct {
		name string
		got  *tensor.Tensor[int64, *cpu.CPUBackend]
		want []int64
	}{
		{"intersect", tensor.Intersect1D(a, b), []int64{10, 40}},
		{"union", tensor.Union1D(a, b), []int64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}},
		{"difference", tensor.SetDiff1D(a, b), []int64{0, 20, 60, 80}},
		{"exclusive or", tensor.SetXor1D(a, b), []int64{0, 20, 30, 50, 60, 70, 80, 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 1, tt.got.NDim())
		})
	}
}

func TestUnique(t *testing.T) {
	backend := cpu.New()

	x := tensor.Vector([]int64{10, 10, 20, 20, 30, 30}, backend)
	assert.Equal(t, []int64{10, 20, 30}, tensor.Unique(x).Data())

	m, err := tensor.FromRows([][]int64{{1, 1}, {2, 3}}, backend)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, tensor.Unique(m).Data())

	values, counts := tensor.UniqueCounts(tensor.Vector([]float64{3, 1, 3, 2, 3}, backend))
	assert.Equal(t, []float64{1, 2, 3}, values.Data())
	assert.Equal(t, []int64{1, 1, 3}, counts.Data())
}

func TestIn1D(t *testing.T) {
	backend := cpu.New()

	a := tensor.Vector([]int64{0, 10, 20, 40, 60}, backend)
	b := tensor.Vector([]int64{0, 40}, backend)
	assert.Equal(t, []bool{true, false, false, true, false}, tensor.In1D(a, b).Data())
}

func TestSetOperations_Empty(t *testing.T) {
	backend := cpu.New()

	a := tensor.Vector([]int32{1, 2}, backend)
	b := tensor.Vector([]int32{3, 4}, backend)

	inter := tensor.Intersect1D(a, b)
	assert.True(t, inter.Shape().Equal(tensor.Shape{0}))
	assert.Equal(t, "[]", inter.String())

	empty := tensor.Vector([]int32{}, backend)
	assert.Equal(t, []int32{1, 2}, tensor.SetXor1D(a, empty).Data())
	assert.Equal(t, []int32{1, 2}, tensor.SetDiff1D(a, empty).Data())
	assert.Empty(t, tensor.SetDiff1D(empty, a).Data())
}

func TestUnique_MergesNaN(t *testing.T) {
	backend := cpu.New()
	nan := math.NaN()
	x := tensor.Vector([]float64{nan, 2, nan, 1, 2}, backend)

	got := tensor.Unique(x).Data()
	if assert.Len(t, got, 3) {
		assert.True(t, math.IsNaN(got[0]))
		assert.Equal(t, []float64{1, 2}, got[1:])
	}

	values, counts := tensor.UniqueCounts(x)
	assert.Len(t, values.Data(), 3)
	assert.Equal(t, []int64{2, 1, 2}, counts.Data())

	assert.Len(t, tensor.Union1D(x, tensor.Vector([]float64{nan}, backend)).Data(), 3)
}
