// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/tileplan/pkg/tilingkey"
)

// TemplateMode is the execution strategy the kernel runs. The numeric values are the tens digit
// of the tiling key, so they must not change.
type TemplateMode int

//go:generate go tool enumer -type=TemplateMode -trimprefix=Template -text -output=gen_templatemode_enumer.go template.go

const (
	// TemplatePerTensorScalar processes the flattened tensor with a single scale value.
	TemplatePerTensorScalar TemplateMode = iota

	// TemplateRowMajorFallback processes one row of the last axis at a time, with no further tiling.
	TemplateRowMajorFallback

	// TemplateRowColPerformance processes tiles of rows (or columns of a single row) sized to fit
	// one scratch pass.
	TemplateRowColPerformance

	// TemplateDynamicNormal computes the per-row scale in scratch.
	TemplateDynamicNormal

	// TemplateDynamicWorkspace computes the per-row scale spilling a row to global workspace.
	TemplateDynamicWorkspace
)

// InputDataType is the combination of input and scale dtypes, the ones digit of the tiling key.
type InputDataType int

//go:generate go tool enumer -type=InputDataType -trimprefix=Data -text -output=gen_inputdatatype_enumer.go template.go

const (
	DataHalfHalf InputDataType = iota + 1
	DataBF16BF16
	DataFloatFloat
	DataHalfFloat
	DataBF16Float
)

// TilingKey returns the dispatch key for template and dtype combination: 1000 + 10*template + combo.
func TilingKey(template TemplateMode, combo InputDataType) uint64 {
	if !template.IsATemplateMode() {
		exceptions.Panicf("tiling.TilingKey: invalid template mode %d", int(template))
	}
	if !combo.IsAInputDataType() {
		exceptions.Panicf("tiling.TilingKey: invalid input data type %d", int(combo))
	}
	return tilingkey.Encode(uint64(template), uint64(combo))
}

// ParseTilingKey is the inverse of TilingKey.
func ParseTilingKey(key uint64) (TemplateMode, InputDataType) {
	digits := tilingkey.Decode(tilingkey.DefaultBase, key, 2)
	return TemplateMode(digits[0]), InputDataType(digits[1])
}
