package npy

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/numtasks/internal/tensor"
)

// Format constants.
const (
	Magic           = "\x93NUMPY"
	HeaderAlignment = 64
	// MaxHeaderSize bounds the header read from untrusted files.
	MaxHeaderSize = 1 << 20
	// MaxDataSize bounds the array payload Read accepts (4 GiB).
	MaxDataSize = 1 << 32
)

// Header is the decoded .npy header dict.
type Header struct {
	Descr        string // Element type, e.g. "<f8"
	FortranOrder bool   // Column-major data when true
	Shape        tensor.Shape
}

// String renders h as the Python dict literal numpy writes, without padding.
func (h Header) String() string {
	order := "False"
	if h.FortranOrder {
		order = "True"
	}
	return fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': %s, }", h.Descr, order, pyTuple(h.Shape))
}

func pyTuple(shape tensor.Shape) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(shape[0]) + ",)"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// descrOf returns the little-endian type string for dt.
func descrOf(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float32:
		return "<f4", nil
	case tensor.Float64:
		return "<f8", nil
	case tensor.Int32:
		return "<i4", nil
	case tensor.Int64:
		return "<i8", nil
	case tensor.Uint8:
		return "|u1", nil
	case tensor.Bool:
		return "|b1", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDType, dt)
	}
}

// parseDescr maps a type string to a DataType and the byte order of its data.
func parseDescr(descr string) (tensor.DataType, binary.ByteOrder, error) {
	if len(descr) < 2 {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnsupportedDType, descr)
	}
	var order binary.ByteOrder
	switch descr[0] {
	case '<', '|', '=':
		order = binary.LittleEndian
	case '>':
		order = binary.BigEndian
	default:
		return 0, nil, fmt.Errorf("%w: %q", ErrUnsupportedDType, descr)
	}

	switch descr[1:] {
	case "f4":
		return tensor.Float32, order, nil
	case "f8":
		return tensor.Float64, order, nil
	case "i4":
		return tensor.Int32, order, nil
	case "i8":
		return tensor.Int64, order, nil
	case "u1":
		return tensor.Uint8, order, nil
	case "b1":
		return tensor.Bool, order, nil
	default:
		return 0, nil, fmt.Errorf("%w: %q", ErrUnsupportedDType, descr)
	}
}

// parseHeader decodes the dict literal written by numpy. Keys may appear in
// any order and strings may use either quote character.
func parseHeader(s string) (Header, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return Header{}, fmt.Errorf("%w: not a dict", ErrMalformedHeader)
	}

	var (
		h    Header
		seen = map[string]bool{}
		err  error
	)
	body := strings.TrimSpace(s[1 : len(s)-1])
	for body != "" {
		var key string
		key, body, err = readString(body)
		if err != nil {
			return Header{}, err
		}
		body = strings.TrimSpace(body)
		if !strings.HasPrefix(body, ":") {
			return Header{}, fmt.Errorf("%w: missing ':' after %q", ErrMalformedHeader, key)
		}
		body = strings.TrimSpace(body[1:])

		switch key {
		case "descr":
			h.Descr, body, err = readString(body)
		case "fortran_order":
			h.FortranOrder, body, err = readBool(body)
		case "shape":
			h.Shape, body, err = readTuple(body)
		default:
			return Header{}, fmt.Errorf("%w: unexpected key %q", ErrMalformedHeader, key)
		}
		if err != nil {
			return Header{}, err
		}
		seen[key] = true

		body = strings.TrimSpace(body)
		body = strings.TrimSpace(strings.TrimPrefix(body, ","))
	}

	for _, key := range []string{"descr", "fortran_order", "shape"} {
		if !seen[key] {
			return Header{}, fmt.Errorf("%w: missing key %q", ErrMalformedHeader, key)
		}
	}
	return h, nil
}

func readString(s string) (value, rest string, err error) {
	if s == "" || (s[0] != '\'' && s[0] != '"') {
		return "", "", fmt.Errorf("%w: expected string at %q", ErrMalformedHeader, s)
	}
	end := strings.IndexByte(s[1:], s[0])
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated string", ErrMalformedHeader)
	}
	return s[1 : 1+end], s[2+end:], nil
}

func readBool(s string) (value bool, rest string, err error) {
	switch {
	case strings.HasPrefix(s, "True"):
		return true, s[len("True"):], nil
	case strings.HasPrefix(s, "False"):
		return false, s[len("False"):], nil
	default:
		return false, "", fmt.Errorf("%w: expected True or False at %q", ErrMalformedHeader, s)
	}
}

func readTuple(s string) (shape tensor.Shape, rest string, err error) {
	if !strings.HasPrefix(s, "(") {
		return nil, "", fmt.Errorf("%w: expected tuple at %q", ErrMalformedHeader, s)
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return nil, "", fmt.Errorf("%w: unterminated tuple", ErrMalformedHeader)
	}

	shape = tensor.Shape{}
	for _, part := range strings.Split(s[1:end], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// Python 2 numpy wrote long integers with an L suffix.
		d, err := strconv.Atoi(strings.TrimSuffix(part, "L"))
		if err != nil || d < 0 {
			return nil, "", fmt.Errorf("%w: bad dimension %q", ErrMalformedHeader, part)
		}
		shape = append(shape, d)
	}
	return shape, s[end+1:], nil
}
