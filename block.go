// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import "github.com/gogpu/texlayout/format"

const (
	// interleavedTile is the u-interleaved tile side in elements.
	interleavedTile = 16

	// interleavedCompressedTile is the tile side, in compression blocks,
	// for block-compressed formats under u-interleaving (16x16 pixels of
	// 4x4 blocks).
	interleavedCompressedTile = 4

	// headerTileSuperblocks is the side of a header tile, in superblocks,
	// when tiled headers are enabled.
	headerTileSuperblocks = 8

	// renderTileHeight is the height the GPU renders compressed images in.
	renderTileHeight = 16

	// headerBytesPerSuperblock is the fixed size of one superblock header.
	headerBytesPerSuperblock = 16
)

// BlockSize is a block footprint in format elements.
type BlockSize struct {
	Width  uint32
	Height uint32
}

// BlockSizeOf returns the tiling or compression block for a modifier and
// format. Linear is 1x1, u-interleaved is 16x16 (4x4 for block-compressed
// formats), compressed is the superblock.
func BlockSizeOf(mod TilingModifier, f format.Format) BlockSize {
	switch mod.Tiling() {
	case TilingInterleaved:
		if f.Compressed {
			return BlockSize{interleavedCompressedTile, interleavedCompressedTile}
		}
		return BlockSize{interleavedTile, interleavedTile}
	case TilingCompressed:
		return BlockSize{mod.SuperblockWidth(), mod.SuperblockHeight()}
	default:
		return BlockSize{1, 1}
	}
}

// RenderBlockSizeOf returns the block images are padded to. It matches
// BlockSizeOf except for wide superblocks, whose height is extended to the
// 16-row render tile.
func RenderBlockSizeOf(mod TilingModifier, f format.Format) BlockSize {
	b := BlockSizeOf(mod, f)
	if mod.IsCompressed() && b.Height < renderTileHeight {
		b.Height = renderTileHeight
	}
	return b
}

// TileSize returns the side of a header tile in superblocks: 8 with tiled
// headers, 1 otherwise.
func TileSize(mod TilingModifier) uint32 {
	if mod.TiledHeaders() {
		return headerTileSuperblocks
	}
	return 1
}

// headerRowStride is the byte distance between rows of headers (or rows of
// header tiles) for an image effectiveWidth elements wide.
func headerRowStride(mod TilingModifier, effectiveWidth uint64) uint64 {
	return effectiveWidth / uint64(mod.SuperblockWidth()) * uint64(TileSize(mod)) * headerBytesPerSuperblock
}

// headerStrideBlocks converts a header row stride back to superblocks.
func headerStrideBlocks(mod TilingModifier, rowStride uint64) uint64 {
	return rowStride / (headerBytesPerSuperblock * uint64(TileSize(mod)))
}
