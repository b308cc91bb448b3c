// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/gomlx/tileplan/internal/intmath"
	"github.com/gomlx/tileplan/pkg/tilingkey"
	"github.com/pkg/errors"
)

// TilingDescriptor is everything the kernel needs to drive its loops. It is assembled once per
// launch and never modified afterwards: pass it by value.
type TilingDescriptor struct {
	UsedCoreCount          int64
	NormalCorePerCoreCount int64
	TailCorePerCoreCount   int64

	CoexistentBufferCount           int64
	CoexistentBufferElementCapacity int64

	RowInner, RowOuter, RowTail int64
	ColInner, ColOuter, ColTail int64

	TilingKey uint64

	LastAxisLen        int64
	LastAxisLenAligned int64

	QuantMode   QuantMode
	Approximate Approximate
	ScaleKind   ScaleShapeKind
	OffsetKind  ScaleShapeKind
	DstType     DstType
	RoundMode   RoundMode

	// Template is also encoded in TilingKey. It is not part of the wire format.
	Template TemplateMode

	// WorkspaceBytes is the global workspace to allocate for the launch. It is not part of
	// the wire format, the launcher passes it to the allocator.
	WorkspaceBytes uint64
}

// wireDescriptor is the kernel-side layout of TilingDescriptor, little-endian, no padding.
type wireDescriptor struct {
	UsedCoreCount, NormalCorePerCoreCount, TailCorePerCoreCount int64
	CoexistentBufferCount, CoexistentBufferElementCapacity      int64
	RowInner, RowOuter, RowTail                                 int64
	ColInner, ColOuter, ColTail                                 int64
	TilingKey                                                   uint64
	LastAxisLen, LastAxisLenAligned                             int64
	QuantMode, Approximate, ScaleKind, OffsetKind               uint32
	DstType, RoundMode                                          uint32
}

// DescriptorWireSize is the size in bytes of a serialized TilingDescriptor.
var DescriptorWireSize = binary.Size(wireDescriptor{})

// Assemble builds the descriptor from the planning results.
//
// It returns an ErrCapacity error if the serialized descriptor wouldn't fit tilingDataCapacity bytes,
// or an ErrShape error if the workspace size overflows.
func Assemble(shape TensorShapeInfo, sel Selection, quant QuantConfig, profile HardwareProfile,
	tilingKey uint64, tilingDataCapacity int) (TilingDescriptor, error) {
	if DescriptorWireSize > tilingDataCapacity {
		return TilingDescriptor{}, errors.Wrapf(ErrCapacity, "descriptor takes %d bytes, buffer holds %d",
			DescriptorWireSize, tilingDataCapacity)
	}
	workspace, err := WorkspaceBytes(shape, sel, quant, profile)
	if err != nil {
		return TilingDescriptor{}, err
	}
	d := TilingDescriptor{
		UsedCoreCount:                   sel.Split.UsedCoreCount,
		NormalCorePerCoreCount:          sel.Split.NormalCorePerCoreCount,
		TailCorePerCoreCount:            sel.Split.TailCorePerCoreCount,
		CoexistentBufferCount:           sel.CoexistentBufferCount,
		CoexistentBufferElementCapacity: sel.CoexistentBufferElementCapacity,
		TilingKey:                       tilingKey,
		LastAxisLen:                     shape.LastAxisLen,
		LastAxisLenAligned:              shape.LastAxisLenAligned,
		QuantMode:                       quant.Mode,
		Approximate:                     quant.Approximate,
		ScaleKind:                       quant.ScaleKind,
		OffsetKind:                      quant.OffsetKind,
		DstType:                         quant.DstType,
		Template:                        sel.Template,
		WorkspaceBytes:                  workspace,
	}
	if quant.Mode == QuantDynamic {
		d.OffsetKind = ScaleEmpty
	}
	if profile.CarriesRoundMode {
		d.RoundMode = quant.RoundMode
		if d.RoundMode == RoundUnset {
			d.RoundMode = DefaultRoundMode(quant.DstType)
		}
	}
	if sel.HasTiles() {
		t := sel.Tiles
		d.RowInner, d.RowOuter, d.RowTail = t.RowInner, t.RowOuter, t.RowTail
		d.ColInner, d.ColOuter, d.ColTail = t.ColInner, t.ColOuter, t.ColTail
	}
	return d, nil
}

// WorkspaceBytes is the global workspace a launch needs: the profile's base workspace, plus one
// row of working elements per core for TemplateDynamicWorkspace.
//
// It returns an ErrShape error if the size doesn't fit an uint64.
func WorkspaceBytes(shape TensorShapeInfo, sel Selection, quant QuantConfig, profile HardwareProfile) (uint64, error) {
	ws := profile.BaseWorkspaceBytes
	if sel.Template != TemplateDynamicWorkspace {
		return ws, nil
	}
	rows, ok := intmath.ProductChecked(uint64(shape.LastAxisLen), uint64(quant.WorkingElemBytes()), uint64(sel.Split.UsedCoreCount))
	if !ok || rows > math.MaxUint64-ws {
		return 0, errors.Wrapf(ErrShape, "workspace for rows of %d elements on %d cores overflows", shape.LastAxisLen, sel.Split.UsedCoreCount)
	}
	return ws + rows, nil
}

// Tiles returns the tile shape, only meaningful for TemplateRowColPerformance.
func (d TilingDescriptor) Tiles() TileShape {
	return TileShape{
		RowInner: d.RowInner, RowOuter: d.RowOuter, RowTail: d.RowTail,
		ColInner: d.ColInner, ColOuter: d.ColOuter, ColTail: d.ColTail,
	}
}

// Split returns the core split of the descriptor.
func (d TilingDescriptor) Split() SplitPlan {
	return SplitPlan{
		UsedCoreCount:          d.UsedCoreCount,
		NormalCorePerCoreCount: d.NormalCorePerCoreCount,
		TailCorePerCoreCount:   d.TailCorePerCoreCount,
	}
}

// SplitUnits returns the number of work units the core split partitions for the descriptor's
// template, given the shape it was planned for.
func (d TilingDescriptor) SplitUnits(shape TensorShapeInfo) int64 {
	switch d.Template {
	case TemplatePerTensorScalar:
		return shape.TotalElementCount
	case TemplateRowColPerformance:
		return d.RowOuter * d.ColOuter
	default:
		return shape.LeadingElementCount
	}
}

// Validate checks that the descriptor partitions the tensor of the given shape exactly once over
// at most coreCount cores, and that its tiles fit one scratch pass.
func (d TilingDescriptor) Validate(shape TensorShapeInfo, coreCount int64) error {
	if d.TilingKey < tilingkey.DefaultBase {
		return errors.Errorf("invalid tiling key %d", d.TilingKey)
	}
	if template, combo := ParseTilingKey(d.TilingKey); template != d.Template || !combo.IsAInputDataType() {
		return errors.Errorf("tiling key %d doesn't match template %s", d.TilingKey, d.Template)
	}
	if err := d.Split().Validate(d.SplitUnits(shape), coreCount); err != nil {
		return err
	}
	if d.Template != TemplateRowColPerformance {
		return nil
	}
	t := d.Tiles()
	if err := t.Validate(shape.LeadingElementCount, shape.LastAxisLen); err != nil {
		return err
	}
	if t.RowInner > 1 && t.RowInner*shape.LastAxisLenAligned > d.CoexistentBufferElementCapacity {
		return errors.Errorf("row tiles of %d x %d (aligned) elements exceed the %d elements of a scratch pass",
			t.RowInner, shape.LastAxisLenAligned, d.CoexistentBufferElementCapacity)
	}
	if t.ColInner > d.CoexistentBufferElementCapacity {
		return errors.Errorf("column tiles of %d elements exceed the %d elements of a scratch pass",
			t.ColInner, d.CoexistentBufferElementCapacity)
	}
	return nil
}

func (d TilingDescriptor) toWire() wireDescriptor {
	return wireDescriptor{
		UsedCoreCount:                   d.UsedCoreCount,
		NormalCorePerCoreCount:          d.NormalCorePerCoreCount,
		TailCorePerCoreCount:            d.TailCorePerCoreCount,
		CoexistentBufferCount:           d.CoexistentBufferCount,
		CoexistentBufferElementCapacity: d.CoexistentBufferElementCapacity,
		RowInner:                        d.RowInner,
		RowOuter:                        d.RowOuter,
		RowTail:                         d.RowTail,
		ColInner:                        d.ColInner,
		ColOuter:                        d.ColOuter,
		ColTail:                         d.ColTail,
		TilingKey:                       d.TilingKey,
		LastAxisLen:                     d.LastAxisLen,
		LastAxisLenAligned:              d.LastAxisLenAligned,
		QuantMode:                       uint32(d.QuantMode),
		Approximate:                     uint32(d.Approximate),
		ScaleKind:                       uint32(d.ScaleKind),
		OffsetKind:                      uint32(d.OffsetKind),
		DstType:                         uint32(d.DstType),
		RoundMode:                       uint32(d.RoundMode),
	}
}

// MarshalBinaryTo writes the wire format of the descriptor into buf and returns the number of
// bytes written. It returns an ErrCapacity error if buf is shorter than DescriptorWireSize.
func (d TilingDescriptor) MarshalBinaryTo(buf []byte) (int, error) {
	if len(buf) < DescriptorWireSize {
		return 0, errors.Wrapf(ErrCapacity, "descriptor takes %d bytes, buffer holds %d", DescriptorWireSize, len(buf))
	}
	n, err := binary.Encode(buf, binary.LittleEndian, d.toWire())
	if err != nil {
		return 0, errors.Wrap(err, "encoding tiling descriptor")
	}
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d TilingDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, DescriptorWireSize)
	_, err := d.MarshalBinaryTo(buf)
	return buf, err
}

// UnmarshalDescriptor reads a descriptor in wire format, the way the kernel does.
// Fields that are not part of the wire format are recovered from the tiling key (Template) or
// left zero (WorkspaceBytes).
func UnmarshalDescriptor(buf []byte) (TilingDescriptor, error) {
	var w wireDescriptor
	if _, err := binary.Decode(buf, binary.LittleEndian, &w); err != nil {
		return TilingDescriptor{}, errors.Wrapf(ErrCapacity, "decoding %d bytes of tiling data, need %d: %v",
			len(buf), DescriptorWireSize, err)
	}
	d := TilingDescriptor{
		UsedCoreCount:                   w.UsedCoreCount,
		NormalCorePerCoreCount:          w.NormalCorePerCoreCount,
		TailCorePerCoreCount:            w.TailCorePerCoreCount,
		CoexistentBufferCount:           w.CoexistentBufferCount,
		CoexistentBufferElementCapacity: w.CoexistentBufferElementCapacity,
		RowInner:                        w.RowInner,
		RowOuter:                        w.RowOuter,
		RowTail:                         w.RowTail,
		ColInner:                        w.ColInner,
		ColOuter:                        w.ColOuter,
		ColTail:                         w.ColTail,
		TilingKey:                       w.TilingKey,
		LastAxisLen:                     w.LastAxisLen,
		LastAxisLenAligned:              w.LastAxisLenAligned,
		QuantMode:                       QuantMode(w.QuantMode),
		Approximate:                     Approximate(w.Approximate),
		ScaleKind:                       ScaleShapeKind(w.ScaleKind),
		OffsetKind:                      ScaleShapeKind(w.OffsetKind),
		DstType:                         DstType(w.DstType),
		RoundMode:                       RoundMode(w.RoundMode),
	}
	if d.TilingKey < tilingkey.DefaultBase {
		return TilingDescriptor{}, errors.Errorf("tiling data has invalid tiling key %d", d.TilingKey)
	}
	d.Template, _ = ParseTilingKey(d.TilingKey)
	return d, nil
}

// String returns a multi-line dump of the descriptor.
func (d TilingDescriptor) String() string {
	var sb strings.Builder
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&sb, format+"\n", args...) }
	w("TilingDescriptor:")
	if d.TilingKey >= tilingkey.DefaultBase {
		template, combo := ParseTilingKey(d.TilingKey)
		w("  tilingKey: %d (template %s, dtypes %s)", d.TilingKey, template, combo)
	} else {
		w("  tilingKey: %d (invalid)", d.TilingKey)
	}
	w("  usedCoreCount: %d", d.UsedCoreCount)
	w("  normalCorePerCoreCount: %d", d.NormalCorePerCoreCount)
	w("  tailCorePerCoreCount: %d", d.TailCorePerCoreCount)
	w("  coexistentBufferCount: %d", d.CoexistentBufferCount)
	w("  coexistentBufferElementCapacity: %d", d.CoexistentBufferElementCapacity)
	w("  rows: inner=%d outer=%d tail=%d", d.RowInner, d.RowOuter, d.RowTail)
	w("  cols: inner=%d outer=%d tail=%d", d.ColInner, d.ColOuter, d.ColTail)
	w("  lastAxisLen: %d (aligned %d)", d.LastAxisLen, d.LastAxisLenAligned)
	w("  quantMode: %s, approximate: %s, scale: %s, offset: %s", d.QuantMode, d.Approximate, d.ScaleKind, d.OffsetKind)
	w("  dstType: %s, roundMode: %s", d.DstType, d.RoundMode)
	w("  workspaceBytes: %d", d.WorkspaceBytes)
	return sb.String()
}
