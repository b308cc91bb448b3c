// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tileplan/internal/intmath"
	"github.com/pkg/errors"
)

// TileShape describes how the 2D view of the tensor is cut in tiles. Along each axis there are
// *Outer tiles: *Outer-1 of *Inner elements and a last one of *Tail elements, so that
// Inner*(Outer-1)+Tail == axis length and 0 < Tail <= Inner.
type TileShape struct {
	RowInner, RowOuter, RowTail int64
	ColInner, ColOuter, ColTail int64
}

// String implements fmt.Stringer.
func (t TileShape) String() string {
	return fmt.Sprintf("{rows: %d x %d tail %d, cols: %d x %d tail %d}",
		t.RowOuter, t.RowInner, t.RowTail, t.ColOuter, t.ColInner, t.ColTail)
}

// Validate checks the tiles cover exactly rows x cols.
func (t TileShape) Validate(rows, cols int64) error {
	if err := validateAxisTiles("row", rows, t.RowInner, t.RowOuter, t.RowTail); err != nil {
		return errors.WithMessagef(err, "tiles %s", t)
	}
	if err := validateAxisTiles("column", cols, t.ColInner, t.ColOuter, t.ColTail); err != nil {
		return errors.WithMessagef(err, "tiles %s", t)
	}
	return nil
}

func validateAxisTiles(axis string, total, inner, outer, tail int64) error {
	if total == 0 {
		return nil
	}
	if inner <= 0 || outer <= 0 || tail <= 0 || tail > inner {
		return errors.Errorf("%s tiles inner=%d outer=%d tail=%d: need inner, outer > 0 and tail in (0, inner]", axis, inner, outer, tail)
	}
	if covered := inner*(outer-1) + tail; covered != total {
		return errors.Errorf("%s tiles cover %d, want %d", axis, covered, total)
	}
	return nil
}

// tileAxis cuts total elements in tiles of inner elements. An exact division gets a full-size
// tail, so the last outer iteration is never empty.
func tileAxis(total, inner int64) (outer, tail int64) {
	if inner <= 0 {
		exceptions.Panicf("tiling: tile size must be > 0, got %d", inner)
	}
	outer = intmath.CeilDiv(total, inner)
	tail = total % inner
	if tail == 0 {
		tail = inner
	}
	return
}

// rowTiles tiles the leading axis by rowsPerPass rows, each tile covering the whole last axis.
func rowTiles(shape TensorShapeInfo, rowsPerPass int64) TileShape {
	t := TileShape{
		RowInner: rowsPerPass,
		ColInner: shape.LastAxisLen,
		ColOuter: 1,
		ColTail:  shape.LastAxisLen,
	}
	t.RowOuter, t.RowTail = tileAxis(shape.LeadingElementCount, rowsPerPass)
	return t
}

// columnTiles splits each row in column tiles, so that there are about as many tiles as cores.
// Tiles are multiples of align (at least align wide) but never more than capacity elements.
func columnTiles(shape TensorShapeInfo, coreCount, capacity, align int64) TileShape {
	tilesPerRow := intmath.CeilDiv(coreCount, shape.LeadingElementCount)
	width := intmath.CeilDiv(shape.LastAxisLen, tilesPerRow)
	if width < align {
		width = align
	} else {
		width = intmath.AlignDown(width, align)
	}
	width = min(width, capacity)
	t := TileShape{
		RowInner: 1,
		RowOuter: shape.LeadingElementCount,
		RowTail:  1,
		ColInner: width,
	}
	t.ColOuter, t.ColTail = tileAxis(shape.LastAxisLen, width)
	return t
}

// shrinkRowsPerPass lowers rowsPerPass until there are at least coreCount passes over the
// leadingRows, so every core gets a pass. It stops at 1 row per pass.
//
// It also returns the number of decrements, bounded by the initial rowsPerPass.
func shrinkRowsPerPass(leadingRows, coreCount, rowsPerPass int64) (rows, iterations int64) {
	rows = rowsPerPass
	for rows >= 2 && intmath.CeilDiv(leadingRows, rows) < coreCount {
		rows--
		iterations++
	}
	return rows, iterations
}
