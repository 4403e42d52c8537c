// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe N-dimensional arrays for numtasks.
//
// # Overview
//
// Arrays are the only data structure the exercise catalogue works on. This
// package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting, reshaping, padding and concatenation
//   - Set algebra on flattened arrays (Unique, Intersect1D, Union1D, ...)
//   - dtype conversion and memory introspection
//   - NumPy str()-compatible formatting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/numtasks/backend/cpu"
//	    "github.com/born-ml/numtasks/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    m := tensor.Arange[int64](2, 11, backend).Reshape(3, 3)
//	    fmt.Println(m)
//	    // [[ 2  3  4]
//	    //  [ 5  6  7]
//	    //  [ 8  9 10]]
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (boolean masks)
//
// # Memory Management
//
// Reshape returns a view sharing the source buffer. Buffers are
// reference-counted; Set copies a shared buffer before writing, so a view
// never observes writes made through another handle.
//
//	x := tensor.Zeros[float64](tensor.Shape{3, 4}, backend)
//	info := x.Memory() // size=12 itemsize=8 nbytes=96 strides=(32, 8)
//
// # Errors
//
// Functions that accept external data (FromSlice, FromRows) return errors.
// Shape, axis and dtype misuse inside an operation panics with an
// "op: detail" message.
package tensor
