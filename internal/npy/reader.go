package npy

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"
	"slices"

	"github.com/born-ml/numtasks/internal/tensor"
)

// ReadHeader reads the preamble and header of a .npy stream, leaving r
// positioned at the first data byte.
func ReadHeader(r io.Reader) (Header, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return Header{}, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != Magic {
		return Header{}, ErrInvalidMagic
	}

	version := make([]byte, 2)
	if _, err := io.ReadFull(r, version); err != nil {
		return Header{}, fmt.Errorf("failed to read version: %w", err)
	}

	var size uint32
	switch version[0] {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return Header{}, fmt.Errorf("failed to read header size: %w", err)
		}
		size = uint32(n)
	case 2, 3:
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return Header{}, fmt.Errorf("failed to read header size: %w", err)
		}
	default:
		return Header{}, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, version[0], version[1])
	}
	if size > MaxHeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("failed to read header: %w", err)
	}
	return parseHeader(string(buf))
}

// Read decodes one array from r.
func Read(r io.Reader) (*tensor.RawTensor, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	dtype, order, err := parseDescr(h.Descr)
	if err != nil {
		return nil, err
	}
	// Column-major and row-major layouts coincide below two dimensions.
	if h.FortranOrder && len(h.Shape) > 1 {
		return nil, ErrFortranOrder
	}

	size, err := dataSize(h.Shape, dtype)
	if err != nil {
		return nil, err
	}

	// Stage the payload in a growing buffer so a file that is shorter than
	// its header claims fails before the full array is allocated.
	var data bytes.Buffer
	if _, err := io.CopyN(&data, r, size); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	raw, err := tensor.NewRaw(h.Shape, dtype, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", h.Shape, err)
	}
	if err := readElements(bytes.NewReader(data.Bytes()), raw, order); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return raw, nil
}

// dataSize returns the payload size in bytes for shape and dtype, rejecting
// shapes whose size overflows or exceeds MaxDataSize.
func dataSize(shape tensor.Shape, dtype tensor.DataType) (int64, error) {
	if slices.Contains(shape, 0) {
		return 0, nil
	}
	n := uint64(dtype.Size())
	for _, d := range shape {
		hi, lo := bits.Mul64(n, uint64(d))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, fmt.Errorf("%w: shape %v overflows", ErrMalformedHeader, shape)
		}
		n = lo
	}
	if n > MaxDataSize {
		return 0, fmt.Errorf("%w: shape %v needs %d bytes", ErrDataTooLarge, shape, n)
	}
	return int64(n), nil
}

// Load reads the .npy file at path.
func Load(path string) (*tensor.RawTensor, error) {
	//nolint:gosec // G304: input path comes from the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	raw, err := Read(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

func readElements(r io.Reader, raw *tensor.RawTensor, order binary.ByteOrder) error {
	switch raw.DType() {
	case tensor.Float32:
		return binary.Read(r, order, raw.AsFloat32())
	case tensor.Float64:
		return binary.Read(r, order, raw.AsFloat64())
	case tensor.Int32:
		return binary.Read(r, order, raw.AsInt32())
	case tensor.Int64:
		return binary.Read(r, order, raw.AsInt64())
	case tensor.Uint8:
		_, err := io.ReadFull(r, raw.AsUint8())
		return err
	case tensor.Bool:
		return binary.Read(r, order, raw.AsBool())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, raw.DType())
	}
}
