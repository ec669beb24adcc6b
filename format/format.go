// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package format

import "fmt"

// Format describes the memory footprint of one pixel format.
//
// An element is the smallest addressable unit of the format: one pixel for
// uncompressed formats, one compression block for BC/ETC2/ASTC.
type Format struct {
	// Name is a human-readable identifier, e.g. "RGBA8Unorm".
	Name string

	// BlockWidth and BlockHeight are the element footprint in pixels.
	BlockWidth  uint32
	BlockHeight uint32

	// BlockBytes is the size of one element in bytes.
	BlockBytes uint32

	// Compressed is true for block-compressed families.
	Compressed bool

	// Channels is the number of colour channels (0 for compressed formats).
	Channels uint8

	// ChannelBits is the bit width of each channel when all channels share
	// one width, 0 for packed or mixed layouts.
	ChannelBits uint8

	// Depth is true for depth and/or stencil formats.
	Depth bool

	// Float is true when the channels hold floating-point data.
	Float bool

	// Chroma420 marks a plane of an 8-bit 4:2:0 YUV format. Such planes
	// have a relaxed row alignment on newer hardware.
	Chroma420 bool
}

// IsValid reports whether f describes a usable format.
func (f Format) IsValid() bool {
	return f.BlockWidth > 0 && f.BlockHeight > 0 && f.BlockBytes > 0
}

// BlocksX returns the number of elements covering width pixels.
func (f Format) BlocksX(width uint32) uint32 {
	return divRoundUp(width, f.BlockWidth)
}

// BlocksY returns the number of elements covering height pixels.
func (f Format) BlocksY(height uint32) uint32 {
	return divRoundUp(height, f.BlockHeight)
}

// String returns the format name, or a footprint description for
// unnamed formats.
func (f Format) String() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("Format[%dx%d, %dB]", f.BlockWidth, f.BlockHeight, f.BlockBytes)
}

// SupportsCompression reports whether images of this format may use the
// AFBC-style compressed modifier. Only uncompressed colour formats with
// 8-bit channels or 10:10:10:2 packing, and the 24-bit depth formats,
// have a compressed encoding.
func SupportsCompression(f Format) bool {
	if f.Compressed || f.Chroma420 || f.Float {
		return false
	}
	if f.Depth {
		return f.Name == depth24PlusName || f.Name == depth24PlusStencil8Name
	}
	if f.ChannelBits == 8 {
		return true
	}
	return f.Name == rgb10a2UnormName || f.Name == rgb10a2UintName
}

// CanYTR reports whether the lossless colour transform may be enabled for
// compressed images of this format. The transform is only defined for RGB
// data with three or four channels.
func CanYTR(f Format) bool {
	if !SupportsCompression(f) || f.Depth {
		return false
	}
	return f.Channels == 3 || f.Channels == 4
}

func divRoundUp(v, d uint32) uint32 {
	if d == 0 {
		return 0
	}
	q := v / d
	if v%d != 0 {
		q++
	}
	return q
}
