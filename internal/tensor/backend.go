package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations and panic
// with an "op: detail" message when given invalid arguments.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations with NumPy broadcasting
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor
	Flip(x *RawTensor, dim int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor

	// Manipulation operations
	Cat(tensors []*RawTensor, dim int) *RawTensor // concatenate along dimension
	Chunk(x *RawTensor, n, dim int) []*RawTensor  // split into n equal parts
	Unsqueeze(x *RawTensor, dim int) *RawTensor   // add dimension of size 1
	Squeeze(x *RawTensor, dim int) *RawTensor     // remove dimension of size 1

	// Padding
	Pad(x *RawTensor, widths [][2]int, opts PadOptions) *RawTensor

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
	Device() Device
}

// PadMode selects how values outside the source array are produced by Pad.
type PadMode int

// Padding modes, matching numpy.pad.
const (
	// PadConstant fills with PadOptions.Value.
	PadConstant PadMode = iota
	// PadEdge repeats the edge value.
	PadEdge
	// PadReflect mirrors without repeating the edge: [1 2 3] → 3 2 | 1 2 3 | 2 1.
	PadReflect
	// PadSymmetric mirrors including the edge: [1 2 3] → 2 1 | 1 2 3 | 3 2.
	PadSymmetric
	// PadWrap wraps around: [1 2 3] → 2 3 | 1 2 3 | 1 2.
	PadWrap
)

// String returns the numpy name of the mode.
func (m PadMode) String() string {
	switch m {
	case PadConstant:
		return "constant"
	case PadEdge:
		return "edge"
	case PadReflect:
		return "reflect"
	case PadSymmetric:
		return "symmetric"
	case PadWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// PadOptions configures Pad.
type PadOptions struct {
	Mode PadMode
	// Value is the fill value for PadConstant, converted to the tensor dtype
	// (non-zero means true for bool).
	Value float64
}
