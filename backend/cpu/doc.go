// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - All six dtypes (float32, float64, int32, int64, uint8, bool)
//   - NumPy-compatible broadcasting
//   - numpy.pad modes: constant, edge, reflect, symmetric, wrap
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
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
