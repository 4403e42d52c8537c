package tasks

import (
	"fmt"

	"github.com/born-ml/numtasks/backend/cpu"
	"github.com/born-ml/numtasks/tensor"
)

// Sample inputs shared by the set exercises.
var (
	setA      = []int64{0, 10, 20, 40, 60, 80}
	setB      = []int64{10, 30, 40, 50, 70, 90}
	commonA   = []int64{0, 10, 20, 40, 60}
	commonB   = []int64{10, 30, 40}
	memberOf  = []int64{0, 40}
	duplicate = []int64{10, 10, 20, 20, 30, 30}
)

var registry = []Task{
	{
		ID: 1, Name: "numeric_list_to_array", Category: Construction,
		Summary: "Convert a list of numbers into a one-dimensional array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			lst := []float64{12.23, 13.32, 100, 36.32}
			return []Step{
				textStep("Original List", formatList(lst)),
				arrayStep("One-dimensional numpy array", NumericListToArray(lst, b)),
			}, nil
		},
	},
	{
		ID: 2, Name: "create_matrix", Category: Construction,
		Summary: "Create a 3x3 matrix with values ranging from 2 to 10",
		Run: func(b *cpu.Backend) ([]Step, error) {
			return []Step{arrayStep("3x3 matrix", CreateMatrix(b))}, nil
		},
	},
	{
		ID: 3, Name: "null_vector", Category: Construction,
		Summary: "Create a null vector of size 10 and update the seventh value to 11",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, err := NullVector(10, 6, 11, b)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Null vector", tensor.Zeros[float64](tensor.Shape{10}, b)),
				arrayStep("Update seventh value to 11", x),
			}, nil
		},
	},
	{
		ID: 4, Name: "range_array", Category: Construction,
		Summary: "Create an array with values ranging from 12 to 37",
		Run: func(b *cpu.Backend) ([]Step, error) {
			return []Step{arrayStep("Array from 12 to 37", RangeArray(12, 38, b))}, nil
		},
	},
	{
		ID: 5, Name: "reverse_array", Category: Reshaping,
		Summary: "Reverse an array so the first element becomes the last",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := RangeArray(12, 38, b)
			return []Step{
				arrayStep("Original array", x),
				arrayStep("Reverse array", ReverseArray(x)),
			}, nil
		},
	},
	{
		ID: 6, Name: "to_float", Category: DType,
		Summary: "Convert an integer array to a float type",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Vector([]int64{1, 2, 3, 4}, b)
			return []Step{
				arrayStep("Original array", x),
				arrayStep("Array converted to a float type", ToFloat(x)),
			}, nil
		},
	},
	{
		ID: 7, Name: "create_border_array", Category: Padding,
		Summary: "Create a 5x5 array with 1 on the border and 0 inside",
		Run: func(b *cpu.Backend) ([]Step, error) {
			return []Step{arrayStep("1 on the border and 0 inside the array", CreateBorderArray(b))}, nil
		},
	},
	{
		ID: 8, Name: "add_zero_border", Category: Padding,
		Summary: "Add a border filled with 0 around an existing array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Ones[float64](tensor.Shape{3, 3}, b)
			return []Step{
				arrayStep("Original array", x),
				arrayStep("0 on the border and 1 inside the array", AddZeroBorder(x)),
			}, nil
		},
	},
	{
		ID: 9, Name: "checkerboard", Category: Construction,
		Summary: "Create an 8x8 matrix filled with a checkerboard pattern",
		Run: func(b *cpu.Backend) ([]Step, error) {
			board, err := Checkerboard(8, b)
			if err != nil {
				return nil, err
			}
			return []Step{arrayStep("Checkerboard pattern", board)}, nil
		},
	},
	{
		ID: 10, Name: "append_values", Category: Concatenation,
		Summary: "Append values to the end of an array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Vector([]int64{10, 20, 30}, b)
			values, err := tensor.FromRows([][]int64{{40, 50, 60}, {70, 80, 90}}, b)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Original array", x),
				arrayStep("After append values to the end of the array", AppendValues(x, values)),
			}, nil
		},
	},
	{
		ID: 11, Name: "array_memory", Category: Memory,
		Summary: "Find the memory size of an array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Zeros[float64](tensor.Shape{4, 4}, b)
			info := ArrayMemory(x)
			return []Step{
				arrayStep("Original array", x),
				textStep("Size of the array", info.Size),
				textStep("Memory size of one array element in bytes", info.ItemSize),
				textStep("Memory size of numpy array in bytes", fmt.Sprintf("%d bytes", info.NBytes)),
			}, nil
		},
	},
	{
		ID: 12, Name: "common_values", Category: Set,
		Summary: "Find the values common to two arrays",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, y := tensor.Vector(commonA, b), tensor.Vector(commonB, b)
			return []Step{
				arrayStep("Array1", x),
				arrayStep("Array2", y),
				arrayStep("Common values between two arrays", CommonValues(x, y)),
			}, nil
		},
	},
	{
		ID: 13, Name: "unique_values", Category: Set,
		Summary: "Get the unique elements of an array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Vector(duplicate, b)
			m, err := tensor.FromRows([][]int64{{1, 1}, {2, 3}}, b)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Original array", x),
				arrayStep("Unique elements of the above array", UniqueValues(x)),
				arrayStep("Original array", m),
				arrayStep("Unique elements of the above array", UniqueValues(m)),
			}, nil
		},
	},
	{
		ID: 14, Name: "set_difference", Category: Set,
		Summary: "Find the unique values of the first array that are not in the second",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, y := tensor.Vector(setA, b), tensor.Vector(setB, b)
			return []Step{
				arrayStep("Array1", x),
				arrayStep("Array2", y),
				arrayStep("Unique values in array1 that are not in array2", SetDifference(x, y)),
			}, nil
		},
	},
	{
		ID: 15, Name: "set_exclusive_or", Category: Set,
		Summary: "Find the values that are in only one of two arrays",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, y := tensor.Vector(setA, b), tensor.Vector(setB, b)
			return []Step{
				arrayStep("Array1", x),
				arrayStep("Array2", y),
				arrayStep("Unique values that are in only one (not both) of the input arrays", SetExclusiveOr(x, y)),
			}, nil
		},
	},
	{
		ID: 16, Name: "union_values", Category: Set,
		Summary: "Find the union of two arrays",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, y := tensor.Vector(setA, b), tensor.Vector(setB, b)
			return []Step{
				arrayStep("Array1", x),
				arrayStep("Array2", y),
				arrayStep("Unique sorted array of values that are in either of the two input arrays", UnionValues(x, y)),
			}, nil
		},
	},
	{
		ID: 17, Name: "membership", Category: Set,
		Summary: "Test whether each element of an array is present in a second array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, y := tensor.Vector(commonA, b), tensor.Vector(memberOf, b)
			return []Step{
				textStep("Array1", formatList(commonA)),
				textStep("Array2", formatList(memberOf)),
				arrayStep("Compare each element of array1 and array2", Membership(x, y)),
			}, nil
		},
	},
	{
		ID: 18, Name: "reshape_array", Category: Reshaping,
		Summary: "Change the shape of an array without changing its data",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Arange[int64](0, 12, b)
			y, err := ReshapeArray(x, 3, 4)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Original array", x),
				arrayStep("Reshape 3x4", y),
			}, nil
		},
	},
	{
		ID: 19, Name: "flatten_array", Category: Reshaping,
		Summary: "Collapse a two-dimensional array into one dimension",
		Run: func(b *cpu.Backend) ([]Step, error) {
			rows := [][]int64{{10, 20, 30}, {20, 40, 50}}
			x, err := tensor.FromRows(rows, b)
			if err != nil {
				return nil, err
			}
			return []Step{
				textStep("Original array", formatRows(rows)),
				arrayStep("New flattened array", FlattenArray(x)),
			}, nil
		},
	},
	{
		ID: 20, Name: "concatenate_arrays", Category: Concatenation,
		Summary: "Concatenate two 2-dimensional arrays along the second axis",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, err := tensor.FromRows([][]int64{{0, 1, 3}, {5, 7, 9}}, b)
			if err != nil {
				return nil, err
			}
			y, err := tensor.FromRows([][]int64{{0, 2, 4}, {6, 8, 10}}, b)
			if err != nil {
				return nil, err
			}
			joined, err := ConcatenateArrays(x, y, 1)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Array1", x),
				arrayStep("Array2", y),
				arrayStep("Concatenated array", joined),
			}, nil
		},
	},
	{
		ID: 21, Name: "float_to_int", Category: DType,
		Summary: "Convert a float array to integers, truncating toward zero",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, err := tensor.FromRows([][]float64{{12.0, 12.51}, {2.34, 7.98}, {25.23, 36.5}}, b)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Original array elements", x),
				arrayStep("Convert float values to integer values", FloatToInt(x)),
			}, nil
		},
	},
	{
		ID: 22, Name: "identity_matrix", Category: Construction,
		Summary: "Create a 3x3 identity matrix",
		Run: func(b *cpu.Backend) ([]Step, error) {
			eye, err := IdentityMatrix(3, b)
			if err != nil {
				return nil, err
			}
			return []Step{arrayStep("3x3 identity matrix", eye)}, nil
		},
	},
	{
		ID: 23, Name: "transpose_array", Category: Reshaping,
		Summary: "Swap the axes of a 2x3 array",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x, err := tensor.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}}, b)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Original array", x),
				arrayStep("Transposed array", TransposeArray(x)),
			}, nil
		},
	},
	{
		ID: 24, Name: "stack_arrays", Category: Concatenation,
		Summary: "Stack two arrays vertically",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Vector([]int64{1, 2, 3}, b)
			y := tensor.Vector([]int64{4, 5, 6}, b)
			stacked, err := StackArrays(x, y)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Array1", x),
				arrayStep("Array2", y),
				arrayStep("Stacked array", stacked),
			}, nil
		},
	},
	{
		ID: 25, Name: "memory_layout", Category: Memory,
		Summary: "Compare the strides of an array with a reshaped view of it",
		Run: func(b *cpu.Backend) ([]Step, error) {
			x := tensor.Arange[int32](0, 12, b)
			layout, err := MemoryLayout(x, 3, 4)
			if err != nil {
				return nil, err
			}
			return []Step{
				arrayStep("Original array", x),
				textStep("Strides of the original array", tensor.Shape(layout.Array.Strides)),
				textStep("Strides of the 3x4 view", tensor.Shape(layout.View.Strides)),
				textStep("View shares memory with the original", formatScalar(layout.Shared)),
			}, nil
		},
	},
	{
		ID: 26, Name: "temperature_conversion", Category: Arithmetic,
		Summary: "Convert temperatures between Fahrenheit and Celsius",
		Run: func(b *cpu.Backend) ([]Step, error) {
			f := tensor.Vector([]float64{0, 12, 45.21, 34, 99.91, 32}, b)
			c := tensor.Vector([]float64{-17.78, -11.11, 7.34, 1.11, 37.73, 0}, b)
			return []Step{
				arrayStep("Values in Fahrenheit degrees", f),
				arrayStep("Values in Centigrade degrees", FahrenheitToCelsius(f)),
				arrayStep("Values in Centigrade degrees", c),
				arrayStep("Values in Fahrenheit degrees", CelsiusToFahrenheit(c)),
			}, nil
		},
	},
}
