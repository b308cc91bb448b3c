// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"k8s.io/klog/v2"
)

// Selection is the outcome of SelectTemplate: the template, how its work units are split across
// cores and, for TemplateRowColPerformance only, the tiles.
//
// The work units being split depend on the template: elements for TemplatePerTensorScalar, tiles
// (RowOuter*ColOuter) for TemplateRowColPerformance and rows of the leading axis otherwise.
type Selection struct {
	Template TemplateMode
	Split    SplitPlan
	Tiles    TileShape

	// CoexistentBufferCount and CoexistentBufferElementCapacity are the buffer strategy the
	// kernel must use, and the elements of each buffer that fit one scratch pass.
	CoexistentBufferCount           int64
	CoexistentBufferElementCapacity int64
}

// HasTiles returns whether Tiles is populated.
func (s Selection) HasTiles() bool {
	return s.Template == TemplateRowColPerformance
}

// minRowsPerPerformancePass is the smallest number of rows per scratch pass for which tiling rows
// beats processing one row at a time.
const minRowsPerPerformancePass = 2

// SelectTemplate chooses the execution template for the shape and splits its work across cores.
//
// The platform limits must have been validated (see PlatformLimits.Validate). It never fails.
func SelectTemplate(shape TensorShapeInfo, quant QuantConfig, platform Platform) Selection {
	var sel Selection
	if quant.Mode == QuantDynamic {
		sel = selectDynamic(shape, quant, platform)
	} else {
		sel = selectStatic(shape, quant, platform)
	}
	if klog.V(1).Enabled() {
		klog.Infof("tiling: shape %s, %s quantization with %s scale: template %s, split %s",
			shape, quant.Mode, quant.ScaleKind, sel.Template, sel.Split)
	}
	return sel
}

func selectStatic(shape TensorShapeInfo, quant QuantConfig, platform Platform) Selection {
	profile, cores := platform.Profile, platform.Limits.CoreCount
	if quant.ScaleKind == ScaleScalar {
		capacity := capacityFor(platform, quant, profile.Coexistent.PerTensor)
		return Selection{
			Template:                        TemplatePerTensorScalar,
			Split:                           SplitAcrossCores(shape.TotalElementCount, cores, profile.SingleCoreMinUnits),
			CoexistentBufferCount:           capacity.bufferCount,
			CoexistentBufferElementCapacity: capacity.elements,
		}
	}

	capacity := capacityFor(platform, quant, profile.Coexistent.PerChannel)
	rowFallback := Selection{
		Template:                        TemplateRowMajorFallback,
		Split:                           SplitAcrossCores(shape.LeadingElementCount, cores, 0),
		CoexistentBufferCount:           capacity.bufferCount,
		CoexistentBufferElementCapacity: capacity.elements,
	}
	var rowsPerPass int64
	if shape.LastAxisLenAligned > 0 {
		rowsPerPass = capacity.elements / shape.LastAxisLenAligned
	} else {
		rowsPerPass = capacity.elements
	}
	allCoresBusy := shape.LeadingElementCount >= cores
	if allCoresBusy && rowsPerPass < minRowsPerPerformancePass {
		return rowFallback
	}
	if capacity.elements == 0 {
		// Not even one aligned block fits in scratch: column tiles can't be sized, and the
		// fallback template streams each row through scratch in whatever it can hold.
		klog.Warningf("tiling: scratch of %d bytes can't hold a block of %d buffers, falling back to %s",
			platform.Limits.ScratchBytes, capacity.bufferCount, TemplateRowMajorFallback)
		return rowFallback
	}

	sel := Selection{
		Template:                        TemplateRowColPerformance,
		CoexistentBufferCount:           capacity.bufferCount,
		CoexistentBufferElementCapacity: capacity.elements,
	}
	if allCoresBusy {
		// Many short rows: give each pass several rows, but keep at least one pass per core.
		rows, _ := shrinkRowsPerPass(shape.LeadingElementCount, cores, rowsPerPass)
		if rows < minRowsPerPerformancePass {
			return rowFallback
		}
		sel.Tiles = rowTiles(shape, rows)
	} else {
		// Fewer rows than cores: split the last axis too.
		sel.Tiles = columnTiles(shape, cores, capacity.elements, profile.ColumnTileAlign)
	}
	sel.Split = SplitAcrossCores(sel.Tiles.RowOuter*sel.Tiles.ColOuter, cores, 0)
	return sel
}

func selectDynamic(shape TensorShapeInfo, quant QuantConfig, platform Platform) Selection {
	profile := platform.Profile
	sel := Selection{
		Template: TemplateDynamicNormal,
		Split:    SplitAcrossCores(shape.LeadingElementCount, platform.Limits.CoreCount, 0),
	}
	capacity := capacityFor(platform, quant, profile.Coexistent.DynamicNormal)
	if capacity.elements < shape.LastAxisLenAligned || capacity.elements == 0 {
		// A whole row doesn't fit: the row is reduced in slices and spilled to global workspace.
		sel.Template = TemplateDynamicWorkspace
		capacity = capacityFor(platform, quant, profile.Coexistent.DynamicWorkspace)
	}
	sel.CoexistentBufferCount = capacity.bufferCount
	sel.CoexistentBufferElementCapacity = capacity.elements
	return sel
}
