// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tiling plans how an elementwise quantizing operator (GELU followed by quantization) is
// spread over the compute cores of an accelerator, and cut in tiles that fit each core's scratch
// memory.
//
// The planner sees the input as a 2D view: LeadingElementCount rows (the product of all but the
// last axis) by LastAxisLen columns. Planning is a pipeline of pure functions, each taking the
// result of the previous one:
//
//   - DeriveShape: the 2D view of the input dimensions (TensorShapeInfo).
//   - NewPlatform / NewPlatformFromConfig: the HardwareProfile constants plus the actual core count
//     and usable scratch (PlatformLimits).
//   - ElementCapacityPerPass: how many elements of each working buffer fit one scratch pass.
//   - SelectTemplate: the execution template, its SplitPlan over cores (SplitAcrossCores) and,
//     for TemplateRowColPerformance, the TileShape.
//   - TilingKey: the kernel variant to dispatch.
//   - Assemble: the TilingDescriptor, with the workspace size, serialized to a fixed layout.
//
// Plan and PlanShape run the whole pipeline. Example:
//
//	platform, err := tiling.NewPlatformFromConfig("regbase:cores=64")
//	if err != nil { ... }
//	quant := tiling.QuantConfig{
//		Mode: tiling.QuantDynamic, InputDType: dtypes.Float32, DstType: tiling.DstInt8,
//	}
//	launch, err := tiling.Plan([]int64{1, 1024, 6912}, quant, platform, make([]byte, 4096))
//	if err != nil { ... }
//	// launch.BlockDim cores, kernel variant launch.TilingKey, launch.TilingData as argument,
//	// launch.WorkspaceBytes of global memory.
//
// The planner is not concurrent, but the plan is: each core reads the same descriptor and works on
// its own disjoint range of units (see SplitPlan.CoreRange), so cores never need to coordinate.
package tiling
