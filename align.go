// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import "github.com/gogpu/texlayout/format"

// Alignment constants in bytes.
const (
	// CacheLineAlignment aligns slice offsets, linear rows and the array
	// stride unless headers are tiled.
	CacheLineAlignment = 64

	// PageAlignment rounds the total allocation size.
	PageAlignment = 4096

	// TiledBodyAlignment is the minimum alignment of a compressed body
	// when headers are tiled.
	TiledBodyAlignment = 4096

	// compressedOffsetAlignment is the explicit offset alignment for
	// compressed images.
	compressedOffsetAlignment = 16

	// chroma420Alignment is the relaxed row and offset alignment for
	// 4:2:0 YUV planes on newer hardware.
	chroma420Alignment = 16
)

// RowStrideAlignedArch is the first hardware generation on which row
// strides are aligned like offsets.
const RowStrideAlignedArch = 7

// SliceAlignment returns the alignment of each mip level's offset and of
// the array stride: the cache line, or the body alignment when headers are
// tiled so that every body behind a header region stays page aligned.
func SliceAlignment(mod TilingModifier) uint32 {
	return max(CacheLineAlignment, MinimumBodyAlignment(mod))
}

// MinimumBodyAlignment returns the alignment compressed header regions are
// padded to so that the body that follows is aligned.
func MinimumBodyAlignment(mod TilingModifier) uint32 {
	if mod.TiledHeaders() {
		return TiledBodyAlignment
	}
	return CacheLineAlignment
}

// MinimumOffsetAlignment returns the minimum alignment of an image offset,
// and on arch >= RowStrideAlignedArch also of its row stride.
func MinimumOffsetAlignment(mod TilingModifier, f format.Format, arch uint32) uint32 {
	if mod.IsCompressed() {
		return compressedOffsetAlignment
	}
	if arch < RowStrideAlignedArch {
		return CacheLineAlignment
	}
	if f.Chroma420 {
		return chroma420Alignment
	}
	return CacheLineAlignment
}
