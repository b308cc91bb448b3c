// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"github.com/gomlx/gopjrt/dtypes"
)

// QuantMode selects between a quantization scale given as input (static) and one computed per row
// by the kernel (dynamic).
type QuantMode int

//go:generate go tool enumer -type=QuantMode -trimprefix=Quant -text -output=gen_quantmode_enumer.go quant.go

const (
	QuantStatic QuantMode = iota
	QuantDynamic
)

// ScaleShapeKind describes the shape of the optional scale (or offset) input.
type ScaleShapeKind int

//go:generate go tool enumer -type=ScaleShapeKind -trimprefix=Scale -text -output=gen_scaleshapekind_enumer.go quant.go

const (
	// ScaleEmpty means the input was not given.
	ScaleEmpty ScaleShapeKind = iota

	// ScaleScalar is a single value for the whole tensor (per-tensor quantization).
	ScaleScalar

	// ScalePerChannel is one value per element of the last axis.
	ScalePerChannel
)

// Approximate is the GELU formulation the kernel uses.
type Approximate int

//go:generate go tool enumer -type=Approximate -trimprefix=Approximate -text -output=gen_approximate_enumer.go quant.go

const (
	ApproximateNone Approximate = iota
	ApproximateTanh
)

// DstType is the quantized output dtype. Values are the dtype codes the kernel reads from the
// descriptor, hence not contiguous.
type DstType int

//go:generate go tool enumer -type=DstType -trimprefix=Dst -text -output=gen_dsttype_enumer.go quant.go

const (
	DstInt8         DstType = 2
	DstHiFloat8     DstType = 34
	DstFloat8E5M2   DstType = 35
	DstFloat8E4M3FN DstType = 36
)

// RoundMode used when casting to DstType. Only profiles with CarriesRoundMode forward it to
// the kernel, others always write RoundUnset.
type RoundMode int

//go:generate go tool enumer -type=RoundMode -trimprefix=Round -text -output=gen_roundmode_enumer.go quant.go

const (
	RoundUnset RoundMode = iota
	RoundRint
	RoundRound
	RoundHybrid
)

// DefaultRoundMode returns the round mode used for dst when none is given: "round" for hifloat8
// and "rint" for everything else.
func DefaultRoundMode(dst DstType) RoundMode {
	if dst == DstHiFloat8 {
		return RoundRound
	}
	return RoundRint
}

// QuantConfig holds the (already validated) operator attributes relevant to planning.
type QuantConfig struct {
	Mode       QuantMode
	ScaleKind  ScaleShapeKind
	OffsetKind ScaleShapeKind

	// InputDType is the dtype of the tensor being quantized: Float32, Float16 or BFloat16.
	InputDType dtypes.DType

	// ScaleDType is the dtype of the scale input, or dtypes.InvalidDType if there is none.
	ScaleDType dtypes.DType

	DstType     DstType
	RoundMode   RoundMode
	Approximate Approximate
}

// WorkingElemBytes is the size of the element type the kernel accumulates in. It is always
// float32, whatever the input dtype.
func (q QuantConfig) WorkingElemBytes() int64 {
	return int64(dtypes.Float32.Size())
}

// InputDataType returns the dtype combination that selects the kernel variant.
// The scale dtype, when it is a half type, takes precedence over the input dtype.
func (q QuantConfig) InputDataType() InputDataType {
	switch {
	case q.ScaleDType == dtypes.Float16:
		return DataHalfHalf
	case q.ScaleDType == dtypes.BFloat16:
		return DataBF16BF16
	case q.InputDType == dtypes.Float32:
		return DataFloatFloat
	case q.InputDType == dtypes.Float16:
		return DataHalfFloat
	default:
		return DataBF16Float
	}
}
