// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Launch is everything the launcher needs from a plan: the descriptor, its serialized form, and
// the side channels used to launch the kernel.
type Launch struct {
	Descriptor TilingDescriptor

	// TilingData is the serialized descriptor, a prefix of the buffer given to Plan.
	TilingData []byte

	// BlockDim is the number of cores to launch.
	BlockDim int64

	// TilingKey selects the kernel variant.
	TilingKey uint64

	// WorkspaceBytes of global memory to allocate for the launch.
	WorkspaceBytes uint64
}

// Plan derives the shape of a tensor with the given dimensions and plans it. See PlanShape.
func Plan(dims []int64, quant QuantConfig, platform Platform, tilingData []byte) (Launch, error) {
	if err := platform.Limits.Validate(); err != nil {
		return Launch{}, err
	}
	shape, err := DeriveShape(dims, platform.Profile.BlockSize)
	if err != nil {
		return Launch{}, err
	}
	return PlanShape(shape, quant, platform, tilingData)
}

// PlanShape plans the launch of the operator on a tensor of the given shape, and serializes the
// descriptor into tilingData, whose length is the capacity reserved by the kernel.
//
// Errors wrap ErrConfig (invalid platform limits), ErrShape (inconsistent shape, or a workspace too
// large to represent) or ErrCapacity (tilingData too small). Nothing is written to tilingData on error.
func PlanShape(shape TensorShapeInfo, quant QuantConfig, platform Platform, tilingData []byte) (Launch, error) {
	if err := platform.Limits.Validate(); err != nil {
		return Launch{}, err
	}
	if err := shape.Validate(); err != nil {
		return Launch{}, err
	}

	sel := SelectTemplate(shape, quant, platform)
	key := TilingKey(sel.Template, quant.InputDataType())
	desc, err := Assemble(shape, sel, quant, platform.Profile, key, len(tilingData))
	if err != nil {
		return Launch{}, err
	}
	if err := desc.Validate(shape, platform.Limits.CoreCount); err != nil {
		exceptions.Panicf("tiling: plan for shape %s on %s is inconsistent: %+v\n%s", shape, platform, err, desc)
	}
	n, err := desc.MarshalBinaryTo(tilingData)
	if err != nil {
		return Launch{}, err
	}
	if klog.V(2).Enabled() {
		klog.Infof("tiling: shape %s on %s:\n%s", shape, platform, desc)
	}
	return Launch{
		Descriptor:     desc,
		TilingData:     tilingData[:n],
		BlockDim:       desc.UsedCoreCount,
		TilingKey:      desc.TilingKey,
		WorkspaceBytes: desc.WorkspaceBytes,
	}, nil
}
