// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/tileplan/internal/intmath"
)

// ElementCapacityPerPass returns how many elements of each of coexistentBufferCount working buffers
// fit in scratchBytes at once, rounded down to a multiple of blockSize.
//
// It returns 0 when scratch can't hold a single element of every buffer: callers must handle it.
// It panics on a non-positive coexistentBufferCount or workingElemBytes, which only come from
// profile constants.
func ElementCapacityPerPass(scratchBytes, coexistentBufferCount, workingElemBytes, blockSize int64) int64 {
	if coexistentBufferCount <= 0 || workingElemBytes <= 0 {
		exceptions.Panicf("tiling.ElementCapacityPerPass: coexistent buffer count (%d) and element size (%d) must be > 0",
			coexistentBufferCount, workingElemBytes)
	}
	if scratchBytes <= 0 {
		return 0
	}
	perBuffer := scratchBytes / (workingElemBytes * coexistentBufferCount)
	return intmath.AlignDown(perBuffer, blockSize)
}

// passCapacity is the scratch capacity of one pass for a given number of coexistent buffers.
type passCapacity struct {
	bufferCount int64
	elements    int64
}

func capacityFor(platform Platform, quant QuantConfig, bufferCount int64) passCapacity {
	return passCapacity{
		bufferCount: bufferCount,
		elements: ElementCapacityPerPass(platform.Limits.ScratchBytes, bufferCount,
			quant.WorkingElemBytes(), platform.Profile.BlockSize),
	}
}
