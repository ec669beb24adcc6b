// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"math"
	"math/bits"
)

// Checked arithmetic for offsets and sizes. Each helper reports false on
// overflow instead of wrapping.

func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// alignUp rounds v up to a multiple of align, which must be a power of two.
func alignUp(v, align uint64) (uint64, bool) {
	mask := align - 1
	sum, ok := addChecked(v, mask)
	if !ok {
		return 0, false
	}
	return sum &^ mask, true
}

func isAligned(v, align uint64) bool {
	return v&(align-1) == 0
}

func toUint32(v uint64) (uint32, bool) {
	if v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// minify returns the extent of mip level l for a base extent.
func minify(base uint32, l uint32) uint32 {
	if l >= 32 {
		return 1
	}
	return max(1, base>>l)
}
