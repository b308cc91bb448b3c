// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package intmath holds the small integer helpers every tiling computation needs: ceiling division
// and alignment to a block granularity.
//
// All functions treat a zero divisor (or zero alignment) as "nothing to divide by" and return 0 (or
// the input unchanged for alignments), so callers never have to special-case it before calling.
package intmath

import "golang.org/x/exp/constraints"

// CeilDiv returns ceil(a/b) for non-negative a and positive b. It returns 0 if b == 0.
func CeilDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// SafeDiv returns a/b, or 0 if b == 0.
func SafeDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}

// AlignUp rounds a up to the next multiple of align. If align == 0, a is returned unchanged.
func AlignUp[T constraints.Integer](a, align T) T {
	if align == 0 {
		return a
	}
	return CeilDiv(a, align) * align
}

// AlignDown rounds a down to a multiple of align. If align == 0, a is returned unchanged.
func AlignDown[T constraints.Integer](a, align T) T {
	if align == 0 {
		return a
	}
	return (a / align) * align
}

// MulChecked returns a*b for non-negative a and b, and false if the product overflows T.
func MulChecked[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || p < 0 {
		return 0, false
	}
	return p, true
}

// ProductChecked returns the product of all values (1 for an empty list), and false if it
// overflows T. Values must be non-negative.
func ProductChecked[T constraints.Integer](values ...T) (T, bool) {
	p := T(1)
	for _, v := range values {
		var ok bool
		if p, ok = MulChecked(p, v); !ok {
			return 0, false
		}
	}
	return p, true
}
