// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/numtasks/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go
//
// Example:
//
//	import (
//	    "github.com/born-ml/numtasks/tensor"
//	    "github.com/born-ml/numtasks/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend

// PadMode selects how Pad produces values outside the source array.
type PadMode = tensor.PadMode

// Padding modes, matching numpy.pad.
const (
	PadConstant  PadMode = tensor.PadConstant
	PadEdge      PadMode = tensor.PadEdge
	PadReflect   PadMode = tensor.PadReflect
	PadSymmetric PadMode = tensor.PadSymmetric
	PadWrap      PadMode = tensor.PadWrap
)

// PadOptions configures Pad.
type PadOptions = tensor.PadOptions
