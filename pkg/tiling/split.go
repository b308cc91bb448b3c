// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tileplan/internal/intmath"
	"github.com/pkg/errors"
)

// SplitPlan partitions a number of work units over cores: the first UsedCoreCount-1 cores each
// process NormalCorePerCoreCount units, the last one TailCorePerCoreCount.
//
// Invariant: NormalCorePerCoreCount*(UsedCoreCount-1) + TailCorePerCoreCount == total units, and
// 0 < TailCorePerCoreCount <= NormalCorePerCoreCount. The only exception is the empty plan for
// 0 units: one core with both counts 0, which the kernel treats as a no-op.
type SplitPlan struct {
	UsedCoreCount          int64
	NormalCorePerCoreCount int64
	TailCorePerCoreCount   int64
}

// SplitAcrossCores splits totalUnits over at most coreCount cores, never giving a (non-tail) core
// fewer than minUnitsPerCore units. If totalUnits <= minUnitsPerCore everything goes to one core.
//
// It panics if coreCount <= 0: platform limits must be validated before planning.
func SplitAcrossCores(totalUnits, coreCount, minUnitsPerCore int64) SplitPlan {
	if coreCount <= 0 {
		exceptions.Panicf("tiling.SplitAcrossCores: core count must be > 0, got %d", coreCount)
	}
	if totalUnits <= minUnitsPerCore {
		return SplitPlan{
			UsedCoreCount:          1,
			NormalCorePerCoreCount: totalUnits,
			TailCorePerCoreCount:   totalUnits,
		}
	}
	normal := max(intmath.CeilDiv(totalUnits, coreCount), minUnitsPerCore)
	if normal == 0 {
		return SplitPlan{UsedCoreCount: 1}
	}
	used := intmath.CeilDiv(totalUnits, normal)
	return SplitPlan{
		UsedCoreCount:          used,
		NormalCorePerCoreCount: normal,
		TailCorePerCoreCount:   totalUnits - normal*(used-1),
	}
}

// CoreRange returns the first unit and the number of units processed by core coreIdx.
// Ranges of different cores never overlap and together cover all units.
func (p SplitPlan) CoreRange(coreIdx int64) (start, count int64) {
	if coreIdx < 0 || coreIdx >= p.UsedCoreCount {
		exceptions.Panicf("SplitPlan.CoreRange(%d) out of range for %d used cores", coreIdx, p.UsedCoreCount)
	}
	start = coreIdx * p.NormalCorePerCoreCount
	if coreIdx == p.UsedCoreCount-1 {
		return start, p.TailCorePerCoreCount
	}
	return start, p.NormalCorePerCoreCount
}

// Validate checks the plan partitions totalUnits over at most coreCount cores.
func (p SplitPlan) Validate(totalUnits, coreCount int64) error {
	if p.UsedCoreCount < 1 || p.UsedCoreCount > coreCount {
		return errors.Errorf("split %s uses %d cores, must be in [1, %d]", p, p.UsedCoreCount, coreCount)
	}
	if totalUnits == 0 {
		if p.UsedCoreCount != 1 || p.NormalCorePerCoreCount != 0 || p.TailCorePerCoreCount != 0 {
			return errors.Errorf("split %s of 0 units must be the empty one-core plan", p)
		}
		return nil
	}
	if p.TailCorePerCoreCount <= 0 || p.TailCorePerCoreCount > p.NormalCorePerCoreCount {
		return errors.Errorf("split %s: tail count must be in (0, %d]", p, p.NormalCorePerCoreCount)
	}
	if covered := p.NormalCorePerCoreCount*(p.UsedCoreCount-1) + p.TailCorePerCoreCount; covered != totalUnits {
		return errors.Errorf("split %s covers %d units, want %d", p, covered, totalUnits)
	}
	return nil
}

// String implements fmt.Stringer.
func (p SplitPlan) String() string {
	return fmt.Sprintf("{cores=%d, normal=%d, tail=%d}", p.UsedCoreCount, p.NormalCorePerCoreCount, p.TailCorePerCoreCount)
}
