// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package format describes pixel formats the way the layout engine needs
// them: bytes per element, element footprint in pixels, and the handful of
// properties that change sizing or alignment rules.
//
// Formats are identified by [gputypes.TextureFormat]. The catalog is
// immutable and built once at package initialization:
//
//	f, ok := format.Lookup(gputypes.TextureFormatRGBA8Unorm)
//	if !ok {
//	    // format has no layout description
//	}
//	_ = f.BlockBytes // 4
//
// Block-compressed families (BC, ETC2/EAC, ASTC) report their compression
// block as one element, so an ASTC 5x5 image of 50x50 pixels is 10x10
// elements of 16 bytes each.
//
// Multi-planar YUV formats are described by [Planar]; each plane is an
// ordinary [Format] that the layout engine handles one at a time.
package format
