// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/numtasks/internal/backend/cpu"
	"github.com/born-ml/numtasks/internal/parallel"
	"github.com/born-ml/numtasks/tensor"
)

// Backend represents the CPU backend implementation.
//
// Structural operations copy raw bytes and work for every dtype;
// arithmetic is generic over the numeric dtypes.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/numtasks/backend/cpu"
//	    "github.com/born-ml/numtasks/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that never splits element-wise loops
// across goroutines.
func NewSequential() *Backend {
	return internalcpu.NewWithConfig(parallel.Sequential())
}
