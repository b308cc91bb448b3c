// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import "github.com/pkg/errors"

// Every error returned by this package wraps exactly one of these, test with errors.Is.
// Planning is deterministic, so none of them is worth retrying.
var (
	// ErrConfig reports invalid platform limits or an invalid platform configuration string.
	ErrConfig = errors.New("invalid platform configuration")

	// ErrShape reports a tensor shape the planner cannot handle (empty, rank above MaxRank, negative axis).
	ErrShape = errors.New("malformed tensor shape")

	// ErrCapacity reports that the serialized descriptor doesn't fit the buffer given by the caller.
	// It means the planner and the kernel disagree on the descriptor layout.
	ErrCapacity = errors.New("tiling data exceeds buffer capacity")
)
