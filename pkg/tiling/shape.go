// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"fmt"
	"math"

	"github.com/gomlx/tileplan/internal/intmath"
	"github.com/pkg/errors"
)

// MaxRank is the largest input rank supported.
const MaxRank = 8

// TensorShapeInfo is the 2D view (leading rows x last axis) of the input tensor the planner works on.
//
// Invariants: TotalElementCount == LeadingElementCount * LastAxisLen, and LastAxisLenAligned is the
// smallest multiple of the block size >= LastAxisLen.
type TensorShapeInfo struct {
	DimCount            int
	LastAxisLen         int64
	LastAxisLenAligned  int64
	LeadingElementCount int64
	TotalElementCount   int64
}

// DeriveShape builds the TensorShapeInfo of a tensor with the given dimensions. blockSize is the
// alignment granularity, in elements, of the last axis in scratch memory.
//
// A rank-1 tensor has LeadingElementCount == 1.
func DeriveShape(dims []int64, blockSize int64) (TensorShapeInfo, error) {
	if len(dims) == 0 {
		return TensorShapeInfo{}, errors.Wrap(ErrShape, "tensor has no axes")
	}
	if len(dims) > MaxRank {
		return TensorShapeInfo{}, errors.Wrapf(ErrShape, "tensor has rank %d, at most %d supported", len(dims), MaxRank)
	}
	if blockSize <= 0 {
		return TensorShapeInfo{}, errors.Wrapf(ErrConfig, "block size must be > 0, got %d", blockSize)
	}
	for axis, dim := range dims {
		if dim < 0 {
			return TensorShapeInfo{}, errors.Wrapf(ErrShape, "axis %d has negative dimension %d (dims=%v)", axis, dim, dims)
		}
	}
	last := len(dims) - 1
	if dims[last] > math.MaxInt64-blockSize {
		return TensorShapeInfo{}, errors.Wrapf(ErrShape, "last axis of %d elements can't be aligned to %d (dims=%v)",
			dims[last], blockSize, dims)
	}
	leading, ok := intmath.ProductChecked(dims[:last]...)
	if !ok {
		return TensorShapeInfo{}, errors.Wrapf(ErrShape, "leading element count of dims %v overflows int64", dims)
	}
	total, ok := intmath.MulChecked(leading, dims[last])
	if !ok {
		return TensorShapeInfo{}, errors.Wrapf(ErrShape, "element count of dims %v overflows int64", dims)
	}
	return TensorShapeInfo{
		DimCount:            len(dims),
		LastAxisLen:         dims[last],
		LastAxisLenAligned:  intmath.AlignUp(dims[last], blockSize),
		LeadingElementCount: leading,
		TotalElementCount:   total,
	}, nil
}

// Validate returns an ErrShape error if the invariants of TensorShapeInfo don't hold, for shapes not
// built by DeriveShape.
func (s TensorShapeInfo) Validate() error {
	if s.DimCount <= 0 || s.DimCount > MaxRank {
		return errors.Wrapf(ErrShape, "shape %s has invalid rank", s)
	}
	if s.LastAxisLen < 0 || s.LeadingElementCount < 0 || s.LastAxisLenAligned < s.LastAxisLen {
		return errors.Wrapf(ErrShape, "shape %s has negative or misaligned counts", s)
	}
	if total, ok := intmath.MulChecked(s.LeadingElementCount, s.LastAxisLen); !ok || total != s.TotalElementCount {
		return errors.Wrapf(ErrShape, "shape %s has %d elements, want %d rows x %d", s, s.TotalElementCount,
			s.LeadingElementCount, s.LastAxisLen)
	}
	return nil
}

// String implements fmt.Stringer.
func (s TensorShapeInfo) String() string {
	return fmt.Sprintf("[rank=%d, %d rows x %d (aligned %d)]", s.DimCount, s.LeadingElementCount, s.LastAxisLen, s.LastAxisLenAligned)
}
