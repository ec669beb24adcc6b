// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texlayout computes the physical memory layout of GPU images for
// tile-based Mali-class hardware.
//
// # Overview
//
// Given an image description (format, extent, mip levels, array layers,
// samples) and a tiling modifier, [Init] produces an [ImageLayout]: the
// offset, row stride, surface stride and size of every mip level, the
// distance between array layers, and the total allocation size. The layout
// is then used to turn (level, layer, sample) coordinates into addresses
// with [ImageLayout.Surface].
//
// The engine allocates nothing and never touches pixel data; it is pure
// arithmetic and safe for concurrent use.
//
// # Quick Start
//
//	f := format.MustLookup(gputypes.TextureFormatRGBA8Unorm)
//	layout, err := texlayout.Init(texlayout.Request{
//	    Modifier:    texlayout.Interleaved(),
//	    Format:      f,
//	    Dimension:   texlayout.Dimension2D,
//	    Width:       256,
//	    Height:      256,
//	    Depth:       1,
//	    SampleCount: 1,
//	    LevelCount:  9,
//	    ArraySize:   1,
//	}, nil)
//	if err != nil {
//	    return err
//	}
//	s := layout.Surface(gpuBase, 3, 0, 0)
//	_ = s.Data
//
// # Modifiers
//
// Three storage schemes are supported, identified by DRM format modifiers:
//
//   - Linear: rows back to back, row stride aligned to 64 bytes.
//   - 16x16 u-interleaved: pixels reordered within 16x16 tiles (4x4 blocks
//     for block-compressed formats).
//   - AFBC: a header region of 16 bytes per superblock followed by a body
//     sized as if uncompressed. Superblocks are 16x16, 32x8 or 64x4; with
//     tiled headers, headers are grouped into 8x8-superblock tiles.
//
// [ParseModifier] converts a 64-bit modifier received from a window system
// or another driver into a [TilingModifier]; anything else is rejected with
// [ErrUnsupportedModifier].
//
// # Imported images
//
// Buffers imported from another producer come with their own offset and
// row stride. Passing an [ExplicitLayout] to Init validates those values
// against the hardware's alignment rules instead of computing them.
//
// # Logging
//
// texlayout is silent by default. Use [SetLogger] to receive rejected
// requests at Warn level and computed layouts at Debug level.
package texlayout
