package tensor

import (
	"math"
	"strconv"
	"strings"
)

// Print options matching NumPy defaults.
const (
	printLineWidth = 75
	printPrecision = 8
	printThreshold = 1000
	printEdgeItems = 3
)

// Format renders the tensor the way NumPy's str() does: aligned columns,
// floats in shortest form with up to 8 fractional digits, bools as True/False,
// lines wrapped at 75 characters and arrays over 1000 elements summarized.
//
// Example:
//
//	tensor.Vector([]float64{12.23, 13.32, 100, 36.32}, b).Format()
//	// [ 12.23  13.32 100.    36.32]
func (t *Tensor[T, B]) Format() string {
	return FormatRaw(t.raw)
}

// FormatRaw renders a RawTensor in NumPy str() style.
func FormatRaw(r *RawTensor) string {
	shape := r.Shape()
	n := r.NumElements()
	if n == 0 {
		return "[]"
	}

	words := formatElements(r)
	if len(shape) == 0 {
		return words[0]
	}

	p := &printer{
		shape:     shape,
		strides:   shape.ComputeStrides(),
		words:     words,
		summarize: n > printThreshold,
	}
	return p.recurse(0, 0, " ", printLineWidth)
}

type printer struct {
	shape     Shape
	strides   []int
	words     []string
	summarize bool
}

// recurse formats the sub-array starting at flat offset base for dimension
// axis. It follows numpy's _formatArray: hanging is the indent for wrapped
// lines and width is the room left before the closing brackets.
func (p *printer) recurse(axis, base int, hanging string, width int) string {
	axesLeft := len(p.shape) - axis
	size := p.shape[axis]
	stride := p.strides[axis]

	summary := p.summarize && size > 2*printEdgeItems
	leading, trailing := 0, size
	if summary {
		leading, trailing = printEdgeItems, printEdgeItems
	}

	var s strings.Builder
	if axesLeft == 1 {
		elemWidth := width - len("]")
		line := hanging
		for i := 0; i < leading; i++ {
			line = p.extend(&s, line, p.words[base+i*stride], elemWidth, hanging) + " "
		}
		if summary {
			line = p.extend(&s, line, "...", elemWidth, hanging) + " "
		}
		for i := size - trailing; i < size-1; i++ {
			line = p.extend(&s, line, p.words[base+i*stride], elemWidth, hanging) + " "
		}
		line = p.extend(&s, line, p.words[base+(size-1)*stride], elemWidth, hanging)
		s.WriteString(line)
		return "[" + s.String()[len(hanging):] + "]"
	}

	nextHanging := hanging + " "
	nextWidth := width - len("]")
	lineSep := strings.Repeat("\n", axesLeft-1)
	nested := func(i int) {
		s.WriteString(hanging)
		s.WriteString(p.recurse(axis+1, base+i*stride, nextHanging, nextWidth))
	}

	for i := 0; i < leading; i++ {
		nested(i)
		s.WriteString(lineSep)
	}
	if summary {
		s.WriteString(hanging)
		s.WriteString("...")
		s.WriteString(lineSep)
	}
	for i := size - trailing; i < size-1; i++ {
		nested(i)
		s.WriteString(lineSep)
	}
	nested(size - 1)

	return "[" + s.String()[len(hanging):] + "]"
}

// extend appends word to line, first flushing line into s when it would
// overflow width.
func (p *printer) extend(s *strings.Builder, line, word string, width int, hanging string) string {
	if len(line)+len(word) > width && len(line) > len(hanging) {
		s.WriteString(strings.TrimRight(line, " "))
		s.WriteString("\n")
		line = hanging
	}
	return line + word
}

// formatElements renders every element with a common width.
func formatElements(r *RawTensor) []string {
	switch r.DType() {
	case Float32:
		data := r.AsFloat32()
		vals := make([]float64, len(data))
		for i, v := range data {
			vals[i] = float64(v)
		}
		return formatFloats(vals, 32)
	case Float64:
		return formatFloats(r.AsFloat64(), 64)
	case Int32:
		return formatInts(r.AsInt32())
	case Int64:
		return formatInts(r.AsInt64())
	case Uint8:
		return formatInts(r.AsUint8())
	case Bool:
		data := r.AsBool()
		out := make([]string, len(data))
		for i, v := range data {
			if v {
				out[i] = " True"
			} else {
				out[i] = "False"
			}
		}
		return out
	default:
		panic("format: unsupported dtype " + r.DType().String())
	}
}

func formatInts[T int32 | int64 | uint8](data []T) []string {
	out := make([]string, len(data))
	width := 0
	for i, v := range data {
		out[i] = strconv.FormatInt(int64(v), 10)
		width = max(width, len(out[i]))
	}
	for i := range out {
		out[i] = padLeft(out[i], width)
	}
	return out
}

// formatFloats implements numpy's default "maxprec" float mode.
func formatFloats(data []float64, bitSize int) []string {
	useExp := false
	var maxAbs, minAbs float64
	first := true
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			continue
		}
		a := math.Abs(v)
		if first {
			maxAbs, minAbs = a, a
			first = false
			continue
		}
		maxAbs = math.Max(maxAbs, a)
		minAbs = math.Min(minAbs, a)
	}
	if !first && (maxAbs >= 1e8 || minAbs < 1e-4 || maxAbs/minAbs > 1e3) {
		useExp = true
	}

	if useExp {
		return formatFloatsExp(data, bitSize)
	}

	intParts := make([]string, len(data))
	fracParts := make([]string, len(data))
	special := make([]bool, len(data))
	padLeftW, padRightW := 0, 0
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			intParts[i] = specialFloat(v)
			special[i] = true
			continue
		}
		s := strconv.FormatFloat(v, 'f', -1, bitSize)
		if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > printPrecision {
			s = strings.TrimRight(strconv.FormatFloat(v, 'f', printPrecision, bitSize), "0")
		}
		ip, fp, _ := strings.Cut(s, ".")
		intParts[i], fracParts[i] = ip, fp
		padLeftW = max(padLeftW, len(ip))
		padRightW = max(padRightW, len(fp))
	}

	width := padLeftW + 1 + padRightW
	out := make([]string, len(data))
	for i := range data {
		if special[i] {
			out[i] = padLeft(intParts[i], width)
			continue
		}
		out[i] = padLeft(intParts[i], padLeftW) + "." + fracParts[i] + strings.Repeat(" ", padRightW-len(fracParts[i]))
	}
	return out
}

func formatFloatsExp(data []float64, bitSize int) []string {
	mant := make([]string, len(data))
	exps := make([]string, len(data))
	special := make([]bool, len(data))
	mantFrac, mantInt := 0, 0
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			mant[i] = specialFloat(v)
			special[i] = true
			continue
		}
		s := strconv.FormatFloat(v, 'e', -1, bitSize)
		m, e, _ := strings.Cut(s, "e")
		ip, fp, _ := strings.Cut(m, ".")
		if len(fp) > printPrecision {
			s = strconv.FormatFloat(v, 'e', printPrecision, bitSize)
			m, e, _ = strings.Cut(s, "e")
			ip, fp, _ = strings.Cut(m, ".")
			fp = strings.TrimRight(fp, "0")
		}
		mant[i] = ip + "." + fp
		exps[i] = "e" + e
		mantInt = max(mantInt, len(ip))
		mantFrac = max(mantFrac, len(fp))
	}

	out := make([]string, len(data))
	width := 0
	for i := range data {
		if special[i] {
			continue
		}
		ip, fp, _ := strings.Cut(mant[i], ".")
		out[i] = padLeft(ip, mantInt) + "." + fp + strings.Repeat("0", mantFrac-len(fp)) + exps[i]
		width = max(width, len(out[i]))
	}
	for i := range data {
		if special[i] {
			out[i] = padLeft(mant[i], width)
		}
	}
	return out
}

func specialFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	default:
		return "-inf"
	}
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
