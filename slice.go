// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"fmt"

	"github.com/gogpu/texlayout/format"
)

const (
	checksumTileSize     = 16
	checksumBytesPerTile = 8
)

// CompressedSliceInfo holds the header/body split of a compressed level.
type CompressedSliceInfo struct {
	// HeaderStrideBlocks is the number of superblocks per header row.
	HeaderStrideBlocks uint32

	// NumSuperblocks is the number of superblocks in one surface.
	NumSuperblocks uint32

	// HeaderSize is the size of the header region, padded to the body
	// alignment. For 2D images it is the header of one surface (one
	// sample); for 3D images it covers every depth slice.
	HeaderSize uint64

	// BodySize is the uncompressed-equivalent size of the payload of the
	// whole level: every depth slice and every sample.
	BodySize uint64

	// HeaderToHeaderStride is the distance between consecutive header
	// regions: header plus body for 2D surfaces, one depth slice's header
	// for 3D images.
	HeaderToHeaderStride uint64

	// HeadersFirst is set for 3D images, whose headers for every depth
	// slice precede one contiguous body.
	HeadersFirst bool
}

// ChecksumInfo locates the per-tile checksum region of a level.
type ChecksumInfo struct {
	Offset uint64
	Stride uint32
	Size   uint64
}

// SliceLayout is the layout of one mip level.
type SliceLayout struct {
	// Offset is the level's start relative to the image base.
	Offset uint64

	// RowStride is the byte distance between rows of blocks, or between
	// header rows for compressed levels.
	RowStride uint32

	// SurfaceStride is the distance between consecutive samples (2D) or
	// depth slices (3D). For 3D compressed levels it is the body size of
	// one depth slice.
	SurfaceStride uint64

	// Size is the level's total footprint, including compressed headers
	// and the checksum region.
	Size uint64

	Compressed *CompressedSliceInfo
	Checksum   *ChecksumInfo
}

// SliceParams is the input to PlanSlice. Extents are in pixels for the
// level being planned.
type SliceParams struct {
	Modifier TilingModifier
	Format   format.Format
	Arch     uint32

	Width, Height, Depth uint32
	Samples              uint32
	Is3D                 bool
	Checksum             bool

	// Offset is where the level starts, already aligned by the caller.
	Offset uint64

	// RowStride, when non-zero, is an externally imposed row stride. It
	// must be at least the computed stride and is then used verbatim.
	RowStride uint32
}

// PlanSlice computes the layout of one mip level.
//
// It fails only with ErrStrideTooSmall (RowStride below the minimum) or
// ErrLayoutOverflow.
func PlanSlice(p SliceParams) (SliceLayout, error) {
	mod, f := p.Modifier, p.Format
	block := BlockSizeOf(mod, f)
	render := RenderBlockSizeOf(mod, f)

	alignW, alignH := uint64(render.Width), uint64(render.Height)
	if mod.TiledHeaders() {
		alignW *= headerTileSuperblocks
		alignH *= headerTileSuperblocks
	}
	effW, _ := alignUp(uint64(f.BlocksX(p.Width)), alignW)
	effH, _ := alignUp(uint64(f.BlocksY(p.Height)), alignH)

	// One row of blocks, as if uncompressed.
	rowStride := uint64(f.BlockBytes) * effW * uint64(block.Height)
	if p.Arch >= RowStrideAlignedArch {
		rowStride, _ = alignUp(rowStride, uint64(MinimumOffsetAlignment(mod, f, p.Arch)))
	}

	if !mod.IsCompressed() {
		if p.RowStride != 0 {
			if uint64(p.RowStride) < rowStride {
				return SliceLayout{}, fmt.Errorf("%w: %d < %d", ErrStrideTooSmall, p.RowStride, rowStride)
			}
			rowStride = uint64(p.RowStride)
		} else if mod.IsLinear() {
			rowStride, _ = alignUp(rowStride, CacheLineAlignment)
		}
	}

	rows := effH / uint64(block.Height)
	oneSize, ok := mulChecked(rowStride, rows)
	if !ok {
		return SliceLayout{}, overflow("surface size")
	}

	s := SliceLayout{Offset: p.Offset}
	var headerRun uint64

	if mod.IsCompressed() {
		headerRow := headerRowStride(mod, effW)
		if p.RowStride != 0 {
			if uint64(p.RowStride) < headerRow {
				return SliceLayout{}, fmt.Errorf("%w: %d < %d", ErrStrideTooSmall, p.RowStride, headerRow)
			}
			headerRow = uint64(p.RowStride)
		}
		strideBlocks := headerStrideBlocks(mod, headerRow)
		nrBlocks, ok := mulChecked(strideBlocks, effH/uint64(mod.SuperblockHeight()))
		var header uint64
		if ok {
			header, ok = mulChecked(nrBlocks, headerBytesPerSuperblock)
		}
		if ok {
			header, ok = alignUp(header, uint64(MinimumBodyAlignment(mod)))
		}
		if !ok {
			return SliceLayout{}, overflow("header size")
		}

		ci := &CompressedSliceInfo{HeaderSize: header, BodySize: oneSize}
		if ci.HeaderStrideBlocks, ok = toUint32(strideBlocks); !ok {
			return SliceLayout{}, overflow("header stride")
		}
		if ci.NumSuperblocks, ok = toUint32(nrBlocks); !ok {
			return SliceLayout{}, overflow("superblock count")
		}

		if p.Is3D {
			// Every depth slice's header comes first, then one body run.
			ci.HeaderToHeaderStride = header
			ci.HeadersFirst = true
			ci.HeaderSize, ok = mulChecked(header, uint64(p.Depth))
			if !ok {
				return SliceLayout{}, overflow("header run")
			}
			headerRun = ci.HeaderSize
		} else {
			oneSize, ok = addChecked(oneSize, header)
			if !ok {
				return SliceLayout{}, overflow("surface size")
			}
			ci.HeaderToHeaderStride = oneSize
		}

		ci.BodySize, ok = mulChecked(ci.BodySize, uint64(p.Depth))
		if ok {
			ci.BodySize, ok = mulChecked(ci.BodySize, uint64(p.Samples))
		}
		if !ok {
			return SliceLayout{}, overflow("body run")
		}

		s.Compressed = ci
		rowStride = headerRow
	}

	if s.RowStride, ok = toUint32(rowStride); !ok {
		return SliceLayout{}, overflow("row stride")
	}
	s.SurfaceStride = oneSize

	full, ok := mulChecked(oneSize, uint64(p.Depth))
	if ok {
		full, ok = mulChecked(full, uint64(p.Samples))
	}
	if ok {
		full, ok = addChecked(full, headerRun)
	}
	if !ok {
		return SliceLayout{}, overflow("slice size")
	}
	s.Size = full

	if p.Checksum {
		crc := checksumFor(p.Width, p.Height)
		if crc.Offset, ok = addChecked(p.Offset, s.Size); !ok {
			return SliceLayout{}, overflow("checksum offset")
		}
		if s.Size, ok = addChecked(s.Size, crc.Size); !ok {
			return SliceLayout{}, overflow("slice size")
		}
		s.Checksum = &crc
	}

	return s, nil
}

// checksumFor sizes the checksum region: 8 bytes per 16x16 pixel tile.
func checksumFor(width, height uint32) ChecksumInfo {
	tilesX := (uint64(width) + checksumTileSize - 1) / checksumTileSize
	tilesY := (uint64(height) + checksumTileSize - 1) / checksumTileSize
	stride := tilesX * checksumBytesPerTile
	return ChecksumInfo{Stride: uint32(stride), Size: stride * tilesY}
}

func overflow(what string) error {
	return fmt.Errorf("%w: %s", ErrLayoutOverflow, what)
}
