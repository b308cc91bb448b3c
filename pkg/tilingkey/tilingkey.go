// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tilingkey packs the per-axis choices of a tiling plan (template, dtype combination, ...)
// into the single integer the kernel launcher uses to select a compiled kernel variant.
//
// Each axis value becomes one decimal digit of the key, on top of a fixed base. The last axis
// given is the ones digit, the one before it the tens digit, and so on. So with the default base,
// Encode(2, 3) == 1023.
package tilingkey

import (
	"github.com/gomlx/exceptions"
)

// DefaultBase is added to every key, so that a valid key is never 0.
const DefaultBase uint64 = 1000

// MaxAxes is the number of axes that can be encoded before the digits collide with DefaultBase.
const MaxAxes = 3

// Encode returns DefaultBase plus the axis values as decimal digits, most-significant first.
//
// It panics if a value is not a single decimal digit or if more than MaxAxes values are given:
// both enums feeding it are closed, so that is a bug in the caller.
func Encode(values ...uint64) uint64 {
	if len(values) > MaxAxes {
		exceptions.Panicf("tilingkey.Encode: %d axes given, at most %d fit below base %d", len(values), MaxAxes, DefaultBase)
	}
	return EncodeWithBase(DefaultBase, values...)
}

// EncodeWithBase is like Encode, but with a custom base.
func EncodeWithBase(base uint64, values ...uint64) uint64 {
	key := base
	weight := uint64(1)
	for ii := len(values) - 1; ii >= 0; ii-- {
		v := values[ii]
		if v > 9 {
			exceptions.Panicf("tilingkey.Encode: axis #%d value %d is not a single decimal digit", ii, v)
		}
		key += v * weight
		weight *= 10
	}
	return key
}

// Decode splits key back into numAxes digits, in the same order given to Encode.
// It is the inverse of EncodeWithBase for keys it produced.
func Decode(base, key uint64, numAxes int) []uint64 {
	if key < base {
		exceptions.Panicf("tilingkey.Decode: key %d is smaller than base %d", key, base)
	}
	rest := key - base
	values := make([]uint64, numAxes)
	for ii := numAxes - 1; ii >= 0; ii-- {
		values[ii] = rest % 10
		rest /= 10
	}
	return values
}
