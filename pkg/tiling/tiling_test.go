// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlatform(t testing.TB, config string) Platform {
	t.Helper()
	p, err := NewPlatformFromConfig(config)
	require.NoError(t, err)
	return p
}

func mustPlan(t testing.TB, dims []int64, quant QuantConfig, platform Platform) Launch {
	t.Helper()
	launch, err := Plan(dims, quant, platform, make([]byte, 4096))
	require.NoError(t, err)
	return launch
}

func staticQuant(scale ScaleShapeKind, x, scaleDType dtypes.DType) QuantConfig {
	return QuantConfig{
		Mode:       QuantStatic,
		ScaleKind:  scale,
		OffsetKind: scale,
		InputDType: x,
		ScaleDType: scaleDType,
		DstType:    DstInt8,
	}
}

func dynamicQuant(x, scaleDType dtypes.DType) QuantConfig {
	scale := ScalePerChannel
	if scaleDType == dtypes.InvalidDType {
		scale = ScaleEmpty
	}
	return QuantConfig{
		Mode:        QuantDynamic,
		ScaleKind:   scale,
		InputDType:  x,
		ScaleDType:  scaleDType,
		DstType:     DstInt8,
		Approximate: ApproximateTanh,
	}
}

func TestPlanTilingKeys(t *testing.T) {
	testCases := []struct {
		name    string
		config  string
		dims    []int64
		quant   QuantConfig
		wantKey uint64
	}{
		{"regbase/static_fp32_per_channel", "regbase", []int64{1, 1024, 6912},
			staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), 1013},
		{"regbase/dynamic_fp32", "regbase", []int64{1, 1024, 6912},
			dynamicQuant(dtypes.Float32, dtypes.Float32), 1043},
		{"regbase/dynamic_fp16", "regbase", []int64{1, 1024, 6912},
			dynamicQuant(dtypes.Float16, dtypes.Float16), 1041},
		{"regbase/static_fp32_scalar", "regbase", []int64{1, 1024, 6912},
			staticQuant(ScaleScalar, dtypes.Float32, dtypes.Float32), 1003},
		{"regbase/full_kernel_small_end_axis", "regbase", []int64{100, 1024, 69},
			staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), 1023},
		{"regbase/not_full_kernel_split_end_axis", "regbase", []int64{1, 1, 6912},
			staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), 1023},
		{"legacy/static_fp32_per_channel", "legacy", []int64{1, 1024, 6912},
			staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), 1013},
		{"legacy/dynamic_fp32", "legacy", []int64{1, 1024, 6912},
			dynamicQuant(dtypes.Float32, dtypes.Float32), 1033},
		{"legacy/dynamic_fp16", "legacy", []int64{1, 1024, 6912},
			dynamicQuant(dtypes.Float16, dtypes.Float16), 1031},
		{"legacy/dynamic_bf16_workspace", "legacy", []int64{1, 1024, 69120},
			dynamicQuant(dtypes.BFloat16, dtypes.InvalidDType), 1045},
		{"legacy/full_kernel_small_end_axis", "legacy", []int64{100, 1024, 69},
			staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), 1023},
		{"legacy/not_full_kernel_split_end_axis", "legacy", []int64{1, 1, 6912},
			staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), 1023},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			launch := mustPlan(t, tc.dims, tc.quant, mustPlatform(t, tc.config))
			assert.Equal(t, tc.wantKey, launch.TilingKey)
			assert.Equal(t, launch.Descriptor.TilingKey, launch.TilingKey)
			assert.Equal(t, launch.Descriptor.UsedCoreCount, launch.BlockDim)
		})
	}
}

func TestPlanRegbaseDetails(t *testing.T) {
	platform := mustPlatform(t, "regbase")
	require.Equal(t, int64(64), platform.Limits.CoreCount)
	require.Equal(t, int64(253952-8192), platform.Limits.ScratchBytes)

	// Per-channel, 1024 rows of 6912: a pass holds less than 2 rows, every core is busy.
	d := mustPlan(t, []int64{1, 1024, 6912}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplateRowMajorFallback, d.Template)
	assert.Equal(t, SplitPlan{64, 16, 16}, d.Split())
	assert.Equal(t, int64(11), d.CoexistentBufferCount)
	assert.Equal(t, int64(5584), d.CoexistentBufferElementCapacity)
	assert.Equal(t, int64(6912), d.LastAxisLen)
	assert.Equal(t, int64(6912), d.LastAxisLenAligned)
	assert.Equal(t, TileShape{}, d.Tiles())
	assert.Equal(t, RoundRint, d.RoundMode)

	// Many short rows: 77 rows of 69 (72 aligned) per pass.
	d = mustPlan(t, []int64{100, 1024, 69}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplateRowColPerformance, d.Template)
	assert.Equal(t, TileShape{RowInner: 77, RowOuter: 1330, RowTail: 67, ColInner: 69, ColOuter: 1, ColTail: 69}, d.Tiles())
	assert.Equal(t, SplitPlan{64, 21, 7}, d.Split())

	// One row: split in 54 column tiles of 128.
	d = mustPlan(t, []int64{1, 1, 6912}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplateRowColPerformance, d.Template)
	assert.Equal(t, TileShape{RowInner: 1, RowOuter: 1, RowTail: 1, ColInner: 128, ColOuter: 54, ColTail: 128}, d.Tiles())
	assert.Equal(t, SplitPlan{54, 1, 1}, d.Split())

	// Per-tensor: flattened elements split across all cores.
	d = mustPlan(t, []int64{1, 1024, 6912}, staticQuant(ScaleScalar, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplatePerTensorScalar, d.Template)
	assert.Equal(t, SplitPlan{64, 110592, 110592}, d.Split())
	assert.Equal(t, uint64(16*1024*1024), d.WorkspaceBytes)

	// Dynamic, row doesn't fit: spill to workspace, one row per used core.
	launch := mustPlan(t, []int64{1, 1024, 6912}, dynamicQuant(dtypes.Float32, dtypes.Float32), platform)
	d = launch.Descriptor
	assert.Equal(t, TemplateDynamicWorkspace, d.Template)
	assert.Equal(t, SplitPlan{64, 16, 16}, d.Split())
	assert.Equal(t, int64(13), d.CoexistentBufferCount)
	assert.Equal(t, int64(4720), d.CoexistentBufferElementCapacity)
	assert.Equal(t, uint64(16*1024*1024+6912*4*64), d.WorkspaceBytes)
	assert.Equal(t, d.WorkspaceBytes, launch.WorkspaceBytes)
	assert.Equal(t, ApproximateTanh, d.Approximate)
	assert.Equal(t, ScaleEmpty, d.OffsetKind)
}

func TestPlanLegacyDetails(t *testing.T) {
	platform := mustPlatform(t, "legacy")
	require.Equal(t, int64(48), platform.Limits.CoreCount)

	d := mustPlan(t, []int64{100, 1024, 69}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplateRowColPerformance, d.Template)
	assert.Equal(t, TileShape{RowInner: 130, RowOuter: 788, RowTail: 90, ColInner: 69, ColOuter: 1, ColTail: 69}, d.Tiles())
	assert.Equal(t, SplitPlan{47, 17, 6}, d.Split())

	d = mustPlan(t, []int64{1, 1024, 6912}, dynamicQuant(dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplateDynamicNormal, d.Template)
	assert.Equal(t, int64(6), d.CoexistentBufferCount)
	assert.Equal(t, int64(7848), d.CoexistentBufferElementCapacity)
	assert.Equal(t, uint64(16*1024*1024), d.WorkspaceBytes)

	// Legacy kernels don't read the round mode.
	quant := staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32)
	quant.DstType, quant.RoundMode = DstHiFloat8, RoundHybrid
	d = mustPlan(t, []int64{4, 256}, quant, platform).Descriptor
	assert.Equal(t, RoundUnset, d.RoundMode)
	assert.Equal(t, DstHiFloat8, d.DstType)
}

func TestScenarios(t *testing.T) {
	t.Run("A/small_per_tensor_single_core", func(t *testing.T) {
		d := mustPlan(t, []int64{1, 64}, staticQuant(ScaleScalar, dtypes.Float32, dtypes.Float32),
			mustPlatform(t, "regbase:cores=32")).Descriptor
		assert.Equal(t, TemplatePerTensorScalar, d.Template)
		assert.Equal(t, SplitPlan{1, 64, 64}, d.Split())
	})

	t.Run("B/one_row_per_pass_fallback", func(t *testing.T) {
		d := mustPlan(t, []int64{256, 4096}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32),
			mustPlatform(t, "regbase:cores=32")).Descriptor
		assert.Equal(t, TemplateRowMajorFallback, d.Template)
		assert.Equal(t, SplitPlan{32, 8, 8}, d.Split())
	})

	t.Run("C/fewer_rows_than_cores_column_split", func(t *testing.T) {
		d := mustPlan(t, []int64{8, 4096}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32),
			mustPlatform(t, "regbase:cores=32")).Descriptor
		assert.Equal(t, TemplateRowColPerformance, d.Template)
		assert.Greater(t, d.ColOuter, int64(1))
		assert.Equal(t, TileShape{RowInner: 1, RowOuter: 8, RowTail: 1, ColInner: 1024, ColOuter: 4, ColTail: 1024}, d.Tiles())
		assert.Equal(t, SplitPlan{32, 1, 1}, d.Split())
	})

	t.Run("D/dynamic_workspace_spill", func(t *testing.T) {
		platform := mustPlatform(t, "regbase")
		d := mustPlan(t, []int64{16, 8000}, dynamicQuant(dtypes.Float32, dtypes.InvalidDType), platform).Descriptor
		assert.Equal(t, TemplateDynamicWorkspace, d.Template)
		assert.Equal(t, SplitPlan{16, 1, 1}, d.Split())
		assert.Equal(t, platform.Profile.BaseWorkspaceBytes+8000*4*16, d.WorkspaceBytes)
		assert.Equal(t, uint64(1043), d.TilingKey)
	})
}

func TestRowColumnBranchBoundary(t *testing.T) {
	platform := mustPlatform(t, "regbase:cores=32")
	quant := staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32)

	// One row short of the core count: columns are split, rows are not.
	d := mustPlan(t, []int64{31, 64}, quant, platform).Descriptor
	assert.Equal(t, TemplateRowColPerformance, d.Template)
	assert.Equal(t, int64(1), d.RowInner)
	assert.Equal(t, int64(31), d.RowOuter)

	// As many rows as cores: a pass holds 87 rows, so it is the row branch, not the "less than 2 rows
	// per pass" shortcut, that falls back: every pass must go to a different core, and the search for
	// rows per pass bottoms out at 1.
	capacity := capacityFor(platform, quant, platform.Profile.Coexistent.PerChannel)
	require.Equal(t, int64(87), capacity.elements/64)
	rows, iterations := shrinkRowsPerPass(32, 32, capacity.elements/64)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, int64(86), iterations)
	d = mustPlan(t, []int64{32, 64}, quant, platform).Descriptor
	assert.Equal(t, TemplateRowMajorFallback, d.Template)
	assert.Equal(t, SplitPlan{32, 1, 1}, d.Split())

	// With 4 rows per core the row branch keeps 4 rows per pass.
	d = mustPlan(t, []int64{128, 64}, quant, platform).Descriptor
	assert.Equal(t, TemplateRowColPerformance, d.Template)
	assert.Equal(t, TileShape{RowInner: 4, RowOuter: 32, RowTail: 4, ColInner: 64, ColOuter: 1, ColTail: 64}, d.Tiles())
	assert.Equal(t, SplitPlan{32, 1, 1}, d.Split())
}

func TestNoBlockFitsScratch(t *testing.T) {
	// 40 usable bytes can't hold one element of each of the 11 per-channel buffers.
	platform, err := NewPlatform(RegbaseProfile, 32, RegbaseProfile.ReservedScratchBytes+40)
	require.NoError(t, err)
	quant := staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32)

	// Fewer rows than cores: column tiles can't be sized, fall back to one row at a time.
	d := mustPlan(t, []int64{8, 4096}, quant, platform).Descriptor
	assert.Equal(t, TemplateRowMajorFallback, d.Template)
	assert.Equal(t, int64(0), d.CoexistentBufferElementCapacity)
	assert.Equal(t, SplitPlan{8, 1, 1}, d.Split())
	assert.Equal(t, TileShape{}, d.Tiles())

	// Dynamic quantization spills to the workspace.
	d = mustPlan(t, []int64{8, 4096}, dynamicQuant(dtypes.Float32, dtypes.InvalidDType), platform).Descriptor
	assert.Equal(t, TemplateDynamicWorkspace, d.Template)
	assert.Equal(t, int64(0), d.CoexistentBufferElementCapacity)
}

func TestPlanIsIdempotent(t *testing.T) {
	platform := mustPlatform(t, "regbase")
	for _, quant := range []QuantConfig{
		staticQuant(ScaleScalar, dtypes.Float16, dtypes.Float16),
		staticQuant(ScalePerChannel, dtypes.BFloat16, dtypes.Float32),
		dynamicQuant(dtypes.Float32, dtypes.InvalidDType),
	} {
		for _, dims := range [][]int64{{3, 5, 7}, {100, 1024, 69}, {1, 1, 6912}, {2, 50000}} {
			first := mustPlan(t, dims, quant, platform)
			second := mustPlan(t, dims, quant, platform)
			require.Equal(t, first.Descriptor, second.Descriptor)
			require.Equal(t, first.TilingData, second.TilingData)
		}
	}
}

func TestPlanErrors(t *testing.T) {
	platform := mustPlatform(t, "regbase")
	quant := staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32)

	_, err := Plan(nil, quant, platform, make([]byte, 4096))
	require.True(t, errors.Is(err, ErrShape), "got %v", err)
	_, err = Plan([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, quant, platform, make([]byte, 4096))
	require.True(t, errors.Is(err, ErrShape), "got %v", err)

	badLimits := platform
	badLimits.Limits.CoreCount = 0
	_, err = Plan([]int64{4, 4}, quant, badLimits, make([]byte, 4096))
	require.True(t, errors.Is(err, ErrConfig), "got %v", err)

	// A ConfigError is reported before the shape is even looked at.
	_, err = Plan(nil, quant, badLimits, make([]byte, 4096))
	require.True(t, errors.Is(err, ErrConfig), "got %v", err)

	// Shapes whose element count doesn't fit int64 are rejected before planning.
	for _, dims := range [][]int64{{1 << 40, 1 << 40}, {1 << 62, 3, 8}} {
		for _, q := range []QuantConfig{quant, staticQuant(ScaleScalar, dtypes.Float32, dtypes.Float32)} {
			_, err = Plan(dims, q, platform, make([]byte, 4096))
			require.True(t, errors.Is(err, ErrShape), "dims=%v: got %v", dims, err)
		}
	}

	// One row per core spilled to workspace, too large for an uint64.
	_, err = Plan([]int64{64, 1 << 56}, dynamicQuant(dtypes.Float32, dtypes.InvalidDType), platform, make([]byte, 4096))
	require.True(t, errors.Is(err, ErrShape), "got %v", err)

	// Shapes built by hand are checked too.
	shape, err := DeriveShape([]int64{100, 1024, 69}, platform.Profile.BlockSize)
	require.NoError(t, err)
	require.NoError(t, shape.Validate())
	for _, broken := range []func(s *TensorShapeInfo){
		func(s *TensorShapeInfo) { s.DimCount = 0 },
		func(s *TensorShapeInfo) { s.LeadingElementCount = -1 },
		func(s *TensorShapeInfo) { s.TotalElementCount++ },
		func(s *TensorShapeInfo) { s.LastAxisLenAligned = 64 },
		func(s *TensorShapeInfo) { s.LeadingElementCount = 1 << 62 },
	} {
		bad := shape
		broken(&bad)
		_, err = PlanShape(bad, quant, platform, make([]byte, 4096))
		require.True(t, errors.Is(err, ErrShape), "shape %s: got %v", bad, err)
	}

	buf := make([]byte, DescriptorWireSize-1)
	_, err = Plan([]int64{4, 4}, quant, platform, buf)
	require.True(t, errors.Is(err, ErrCapacity), "got %v", err)
	require.Equal(t, make([]byte, DescriptorWireSize-1), buf)
}

func TestEmptyTensor(t *testing.T) {
	platform := mustPlatform(t, "regbase")
	for _, quant := range []QuantConfig{
		staticQuant(ScaleScalar, dtypes.Float32, dtypes.Float32),
		staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32),
		dynamicQuant(dtypes.Float32, dtypes.InvalidDType),
	} {
		// No rows: a single idle core.
		d := mustPlan(t, []int64{0, 16}, quant, platform).Descriptor
		assert.Equal(t, SplitPlan{UsedCoreCount: 1}, d.Split(), "quant=%+v", quant)

		// Empty rows: still planned, only the per-tensor template ends up with nothing to split.
		d = mustPlan(t, []int64{16, 0}, quant, platform).Descriptor
		assert.Equal(t, int64(0), d.LastAxisLen)
		if quant.ScaleKind == ScaleScalar {
			assert.Equal(t, SplitPlan{UsedCoreCount: 1}, d.Split())
		}
	}
}

func TestHugeTensor(t *testing.T) {
	platform := mustPlatform(t, "regbase")
	const largest = math.MaxInt64 - 8
	d := mustPlan(t, []int64{largest}, staticQuant(ScaleScalar, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplatePerTensorScalar, d.Template)
	assert.Equal(t, int64(64), d.UsedCoreCount)
	assert.Equal(t, int64(math.MaxInt64-7), d.LastAxisLenAligned)

	d = mustPlan(t, []int64{largest / 64, 64}, staticQuant(ScalePerChannel, dtypes.Float32, dtypes.Float32), platform).Descriptor
	assert.Equal(t, TemplateRowColPerformance, d.Template)
	assert.Equal(t, int64(64), d.UsedCoreCount)
}

func TestInputDataType(t *testing.T) {
	testCases := []struct {
		x, scale dtypes.DType
		want     InputDataType
	}{
		{dtypes.Float16, dtypes.Float16, DataHalfHalf},
		{dtypes.BFloat16, dtypes.BFloat16, DataBF16BF16},
		{dtypes.Float32, dtypes.Float32, DataFloatFloat},
		{dtypes.Float32, dtypes.InvalidDType, DataFloatFloat},
		{dtypes.Float16, dtypes.Float32, DataHalfFloat},
		{dtypes.Float16, dtypes.InvalidDType, DataHalfFloat},
		{dtypes.BFloat16, dtypes.Float32, DataBF16Float},
	}
	for _, tc := range testCases {
		q := QuantConfig{InputDType: tc.x, ScaleDType: tc.scale}
		assert.Equal(t, tc.want, q.InputDataType(), "x=%s, scale=%s", tc.x, tc.scale)
	}
	assert.Equal(t, int64(4), QuantConfig{InputDType: dtypes.Float16}.WorkingElemBytes())
}

func TestTilingKey(t *testing.T) {
	assert.Equal(t, uint64(1003), TilingKey(TemplatePerTensorScalar, DataFloatFloat))
	assert.Equal(t, uint64(1041), TilingKey(TemplateDynamicWorkspace, DataHalfHalf))
	for _, template := range TemplateModeValues() {
		for _, combo := range InputDataTypeValues() {
			gotTemplate, gotCombo := ParseTilingKey(TilingKey(template, combo))
			assert.Equal(t, template, gotTemplate)
			assert.Equal(t, combo, gotCombo)
		}
	}
	require.Panics(t, func() { TilingKey(TemplateMode(5), DataFloatFloat) })
	require.Panics(t, func() { TilingKey(TemplatePerTensorScalar, InputDataType(0)) })
}

func TestEnumText(t *testing.T) {
	var mode QuantMode
	require.NoError(t, mode.UnmarshalText([]byte("dynamic")))
	assert.Equal(t, QuantDynamic, mode)

	var dst DstType
	require.NoError(t, dst.UnmarshalText([]byte("float8e4m3fn")))
	assert.Equal(t, DstFloat8E4M3FN, dst)
	assert.Equal(t, "HiFloat8", DstHiFloat8.String())
	assert.Error(t, dst.UnmarshalText([]byte("int4")))

	assert.Equal(t, "RowColPerformance", TemplateRowColPerformance.String())
	assert.Equal(t, RoundRound, DefaultRoundMode(DstHiFloat8))
	assert.Equal(t, RoundRint, DefaultRoundMode(DstFloat8E5M2))
}
