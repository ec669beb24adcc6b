// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texlayout/format"
)

var (
	fmtR8    = format.MustLookup(gputypes.TextureFormatR8Unorm)
	fmtRGBA8 = format.MustLookup(gputypes.TextureFormatRGBA8Unorm)
	fmtBC1   = format.MustLookup(gputypes.TextureFormatBC1RGBAUnorm)
	fmtASTC5 = format.MustLookup(gputypes.TextureFormatASTC5x5Unorm)

	afbc16      = Compressed(Superblock16x16, CompressionOptions{})
	afbc16Tiled = Compressed(Superblock16x16, CompressionOptions{TiledHeaders: true})
	afbc32x8    = Compressed(Superblock32x8, CompressionOptions{})
	afbc64x4    = Compressed(Superblock64x4, CompressionOptions{})
)

func TestBlockSizeOf(t *testing.T) {
	tests := []struct {
		name      string
		mod       TilingModifier
		f         format.Format
		block     BlockSize
		render    BlockSize
		tileSize  uint32
		bodyAlign uint32
	}{
		{"linear", Linear(), fmtRGBA8, BlockSize{1, 1}, BlockSize{1, 1}, 1, 64},
		{"interleaved", Interleaved(), fmtRGBA8, BlockSize{16, 16}, BlockSize{16, 16}, 1, 64},
		{"interleaved bc1", Interleaved(), fmtBC1, BlockSize{4, 4}, BlockSize{4, 4}, 1, 64},
		{"afbc 16x16", afbc16, fmtRGBA8, BlockSize{16, 16}, BlockSize{16, 16}, 1, 64},
		{"afbc 32x8", afbc32x8, fmtRGBA8, BlockSize{32, 8}, BlockSize{32, 16}, 1, 64},
		{"afbc 64x4", afbc64x4, fmtRGBA8, BlockSize{64, 4}, BlockSize{64, 16}, 1, 64},
		{"afbc tiled", afbc16Tiled, fmtRGBA8, BlockSize{16, 16}, BlockSize{16, 16}, 8, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockSizeOf(tt.mod, tt.f); got != tt.block {
				t.Errorf("BlockSizeOf = %v, want %v", got, tt.block)
			}
			if got := RenderBlockSizeOf(tt.mod, tt.f); got != tt.render {
				t.Errorf("RenderBlockSizeOf = %v, want %v", got, tt.render)
			}
			if got := TileSize(tt.mod); got != tt.tileSize {
				t.Errorf("TileSize = %d, want %d", got, tt.tileSize)
			}
			if got := MinimumBodyAlignment(tt.mod); got != tt.bodyAlign {
				t.Errorf("MinimumBodyAlignment = %d, want %d", got, tt.bodyAlign)
			}
			if got := SliceAlignment(tt.mod); got != max(64, tt.bodyAlign) {
				t.Errorf("SliceAlignment = %d, want %d", got, max(64, tt.bodyAlign))
			}
		})
	}
}

func TestMinimumOffsetAlignment(t *testing.T) {
	luma := format.NV12.Planes[0].Format

	tests := []struct {
		name string
		mod  TilingModifier
		f    format.Format
		arch uint32
		want uint32
	}{
		{"compressed", afbc16, fmtRGBA8, 6, 16},
		{"compressed arch 7", afbc16, fmtRGBA8, 7, 16},
		{"linear old arch", Linear(), fmtRGBA8, 6, 64},
		{"yuv old arch", Linear(), luma, 6, 64},
		{"yuv arch 7", Linear(), luma, 7, 16},
		{"rgba arch 7", Linear(), fmtRGBA8, 7, 64},
		{"interleaved arch 9", Interleaved(), fmtRGBA8, 9, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinimumOffsetAlignment(tt.mod, tt.f, tt.arch); got != tt.want {
				t.Errorf("MinimumOffsetAlignment = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHeaderRowStride(t *testing.T) {
	tests := []struct {
		mod   TilingModifier
		effW  uint64
		want  uint64
		count uint64
	}{
		{afbc16, 16, 16, 1},
		{afbc16, 64, 64, 4},
		{afbc32x8, 64, 32, 2},
		{afbc16Tiled, 128, 1024, 8},
		{afbc16Tiled, 1024, 8192, 64},
	}
	for _, tt := range tests {
		got := headerRowStride(tt.mod, tt.effW)
		if got != tt.want {
			t.Errorf("headerRowStride(%v, %d) = %d, want %d", tt.mod, tt.effW, got, tt.want)
		}
		if n := headerStrideBlocks(tt.mod, got); n != tt.count {
			t.Errorf("headerStrideBlocks(%v, %d) = %d, want %d", tt.mod, got, n, tt.count)
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	const maxU64 = ^uint64(0)
	if _, ok := addChecked(maxU64, 1); ok {
		t.Error("addChecked overflow not detected")
	}
	if _, ok := mulChecked(maxU64/2+1, 2); ok {
		t.Error("mulChecked overflow not detected")
	}
	if _, ok := alignUp(maxU64-10, 64); ok {
		t.Error("alignUp overflow not detected")
	}
	if v, ok := alignUp(65, 64); !ok || v != 128 {
		t.Errorf("alignUp(65, 64) = %d, %v", v, ok)
	}
	if _, ok := toUint32(1 << 32); ok {
		t.Error("toUint32 overflow not detected")
	}
	for _, tt := range []struct{ base, level, want uint32 }{
		{128, 0, 128}, {128, 3, 16}, {128, 7, 1}, {128, 12, 1}, {5, 40, 1},
	} {
		if got := minify(tt.base, tt.level); got != tt.want {
			t.Errorf("minify(%d, %d) = %d, want %d", tt.base, tt.level, got, tt.want)
		}
	}
}
