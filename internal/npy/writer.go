package npy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/born-ml/numtasks/internal/tensor"
)

// Write encodes raw to w in .npy format.
func Write(w io.Writer, raw *tensor.RawTensor) error {
	descr, err := descrOf(raw.DType())
	if err != nil {
		return err
	}
	dict := Header{Descr: descr, Shape: raw.Shape()}.String()

	// magic + version + uint16 length
	major := byte(1)
	header := padHeader(dict, len(Magic)+2+2)
	if len(header) > math.MaxUint16 {
		// magic + version + uint32 length
		major = 2
		header = padHeader(dict, len(Magic)+2+4)
	}

	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if _, err := w.Write([]byte{major, 0}); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if major == 1 {
		//nolint:gosec // G115: checked against MaxUint16 above
		err = binary.Write(w, binary.LittleEndian, uint16(len(header)))
	} else {
		//nolint:gosec // G115: header is bounded by the shape rank
		err = binary.Write(w, binary.LittleEndian, uint32(len(header)))
	}
	if err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := writeElements(w, raw); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

// Save writes raw to a new .npy file at path.
func Save(path string, raw *tensor.RawTensor) error {
	//nolint:gosec // G304: output path comes from the caller
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := Write(bw, raw); err != nil {
		_ = file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}

// padHeader appends spaces and a newline so the data after a preamble of
// the given size starts on a HeaderAlignment boundary.
func padHeader(dict string, preamble int) string {
	total := preamble + len(dict) + 1
	padding := (HeaderAlignment - total%HeaderAlignment) % HeaderAlignment
	return dict + strings.Repeat(" ", padding) + "\n"
}

func writeElements(w io.Writer, raw *tensor.RawTensor) error {
	switch raw.DType() {
	case tensor.Float32:
		return binary.Write(w, binary.LittleEndian, raw.AsFloat32())
	case tensor.Float64:
		return binary.Write(w, binary.LittleEndian, raw.AsFloat64())
	case tensor.Int32:
		return binary.Write(w, binary.LittleEndian, raw.AsInt32())
	case tensor.Int64:
		return binary.Write(w, binary.LittleEndian, raw.AsInt64())
	case tensor.Uint8:
		_, err := w.Write(raw.AsUint8())
		return err
	case tensor.Bool:
		return binary.Write(w, binary.LittleEndian, raw.AsBool())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, raw.DType())
	}
}
