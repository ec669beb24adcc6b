// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package format

import (
	"sort"
	"strings"

	"github.com/gogpu/gputypes"
)

const (
	depth24PlusName         = "Depth24Plus"
	depth24PlusStencil8Name = "Depth24PlusStencil8"
	rgb10a2UnormName        = "RGB10A2Unorm"
	rgb10a2UintName         = "RGB10A2Uint"
)

// catalog maps every supported WebGPU texture format to its description.
// It is populated once in init and never written afterwards.
var catalog = make(map[gputypes.TextureFormat]Format)

// byName indexes the catalog by lower-cased name for Lookup by string.
var byName = make(map[string]gputypes.TextureFormat)

func init() {
	plain := func(tf gputypes.TextureFormat, bytes uint32, channels, bits uint8) {
		add(tf, Format{BlockWidth: 1, BlockHeight: 1, BlockBytes: bytes, Channels: channels, ChannelBits: bits})
	}
	floating := func(tf gputypes.TextureFormat, bytes uint32, channels, bits uint8) {
		add(tf, Format{BlockWidth: 1, BlockHeight: 1, BlockBytes: bytes, Channels: channels, ChannelBits: bits, Float: true})
	}
	depth := func(tf gputypes.TextureFormat, bytes uint32, fl bool) {
		add(tf, Format{BlockWidth: 1, BlockHeight: 1, BlockBytes: bytes, Channels: 1, Depth: true, Float: fl})
	}
	block := func(tf gputypes.TextureFormat, w, h, bytes uint32) {
		add(tf, Format{BlockWidth: w, BlockHeight: h, BlockBytes: bytes, Compressed: true})
	}

	// 8-bit channels
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatR8Unorm, gputypes.TextureFormatR8Snorm,
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatR8Sint,
	} {
		plain(tf, 1, 1, 8)
	}
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatRG8Snorm,
		gputypes.TextureFormatRG8Uint, gputypes.TextureFormatRG8Sint,
	} {
		plain(tf, 2, 2, 8)
	}
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatRGBA8Snorm, gputypes.TextureFormatRGBA8Uint,
		gputypes.TextureFormatRGBA8Sint, gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatBGRA8UnormSrgb,
	} {
		plain(tf, 4, 4, 8)
	}

	// 16-bit channels
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatR16Unorm, gputypes.TextureFormatR16Snorm,
		gputypes.TextureFormatR16Uint, gputypes.TextureFormatR16Sint,
	} {
		plain(tf, 2, 1, 16)
	}
	floating(gputypes.TextureFormatR16Float, 2, 1, 16)
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatRG16Unorm, gputypes.TextureFormatRG16Snorm,
		gputypes.TextureFormatRG16Uint, gputypes.TextureFormatRG16Sint,
	} {
		plain(tf, 4, 2, 16)
	}
	floating(gputypes.TextureFormatRG16Float, 4, 2, 16)
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA16Unorm, gputypes.TextureFormatRGBA16Snorm,
		gputypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA16Sint,
	} {
		plain(tf, 8, 4, 16)
	}
	floating(gputypes.TextureFormatRGBA16Float, 8, 4, 16)

	// 32-bit channels
	plain(gputypes.TextureFormatR32Uint, 4, 1, 32)
	plain(gputypes.TextureFormatR32Sint, 4, 1, 32)
	floating(gputypes.TextureFormatR32Float, 4, 1, 32)
	plain(gputypes.TextureFormatRG32Uint, 8, 2, 32)
	plain(gputypes.TextureFormatRG32Sint, 8, 2, 32)
	floating(gputypes.TextureFormatRG32Float, 8, 2, 32)
	plain(gputypes.TextureFormatRGBA32Uint, 16, 4, 32)
	plain(gputypes.TextureFormatRGBA32Sint, 16, 4, 32)
	floating(gputypes.TextureFormatRGBA32Float, 16, 4, 32)

	// Packed
	plain(gputypes.TextureFormatRGB10A2Unorm, 4, 4, 0)
	plain(gputypes.TextureFormatRGB10A2Uint, 4, 4, 0)
	floating(gputypes.TextureFormatRG11B10Ufloat, 4, 3, 0)
	floating(gputypes.TextureFormatRGB9E5Ufloat, 4, 3, 0)

	// Depth/stencil
	depth(gputypes.TextureFormatStencil8, 1, false)
	depth(gputypes.TextureFormatDepth16Unorm, 2, false)
	depth(gputypes.TextureFormatDepth24Plus, 4, false)
	depth(gputypes.TextureFormatDepth24PlusStencil8, 4, false)
	depth(gputypes.TextureFormatDepth32Float, 4, true)
	depth(gputypes.TextureFormatDepth32FloatStencil8, 8, true)

	// BC: 8 bytes per 4x4 block for BC1 and BC4, 16 for the rest.
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatBC1RGBAUnorm, gputypes.TextureFormatBC1RGBAUnormSrgb,
		gputypes.TextureFormatBC4RUnorm, gputypes.TextureFormatBC4RSnorm,
	} {
		block(tf, 4, 4, 8)
	}
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatBC2RGBAUnorm, gputypes.TextureFormatBC2RGBAUnormSrgb,
		gputypes.TextureFormatBC3RGBAUnorm, gputypes.TextureFormatBC3RGBAUnormSrgb,
		gputypes.TextureFormatBC5RGUnorm, gputypes.TextureFormatBC5RGSnorm,
		gputypes.TextureFormatBC6HRGBUfloat, gputypes.TextureFormatBC6HRGBFloat,
		gputypes.TextureFormatBC7RGBAUnorm, gputypes.TextureFormatBC7RGBAUnormSrgb,
	} {
		block(tf, 4, 4, 16)
	}

	// ETC2/EAC
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatETC2RGB8Unorm, gputypes.TextureFormatETC2RGB8UnormSrgb,
		gputypes.TextureFormatETC2RGB8A1Unorm, gputypes.TextureFormatETC2RGB8A1UnormSrgb,
		gputypes.TextureFormatEACR11Unorm, gputypes.TextureFormatEACR11Snorm,
	} {
		block(tf, 4, 4, 8)
	}
	for _, tf := range []gputypes.TextureFormat{
		gputypes.TextureFormatETC2RGBA8Unorm, gputypes.TextureFormatETC2RGBA8UnormSrgb,
		gputypes.TextureFormatEACRG11Unorm, gputypes.TextureFormatEACRG11Snorm,
	} {
		block(tf, 4, 4, 16)
	}

	// ASTC: every footprint is 128 bits.
	for _, a := range []struct {
		unorm, srgb gputypes.TextureFormat
		w, h        uint32
	}{
		{gputypes.TextureFormatASTC4x4Unorm, gputypes.TextureFormatASTC4x4UnormSrgb, 4, 4},
		{gputypes.TextureFormatASTC5x4Unorm, gputypes.TextureFormatASTC5x4UnormSrgb, 5, 4},
		{gputypes.TextureFormatASTC5x5Unorm, gputypes.TextureFormatASTC5x5UnormSrgb, 5, 5},
		{gputypes.TextureFormatASTC6x5Unorm, gputypes.TextureFormatASTC6x5UnormSrgb, 6, 5},
		{gputypes.TextureFormatASTC6x6Unorm, gputypes.TextureFormatASTC6x6UnormSrgb, 6, 6},
		{gputypes.TextureFormatASTC8x5Unorm, gputypes.TextureFormatASTC8x5UnormSrgb, 8, 5},
		{gputypes.TextureFormatASTC8x6Unorm, gputypes.TextureFormatASTC8x6UnormSrgb, 8, 6},
		{gputypes.TextureFormatASTC8x8Unorm, gputypes.TextureFormatASTC8x8UnormSrgb, 8, 8},
		{gputypes.TextureFormatASTC10x5Unorm, gputypes.TextureFormatASTC10x5UnormSrgb, 10, 5},
		{gputypes.TextureFormatASTC10x6Unorm, gputypes.TextureFormatASTC10x6UnormSrgb, 10, 6},
		{gputypes.TextureFormatASTC10x8Unorm, gputypes.TextureFormatASTC10x8UnormSrgb, 10, 8},
		{gputypes.TextureFormatASTC10x10Unorm, gputypes.TextureFormatASTC10x10UnormSrgb, 10, 10},
		{gputypes.TextureFormatASTC12x10Unorm, gputypes.TextureFormatASTC12x10UnormSrgb, 12, 10},
		{gputypes.TextureFormatASTC12x12Unorm, gputypes.TextureFormatASTC12x12UnormSrgb, 12, 12},
	} {
		block(a.unorm, a.w, a.h, 16)
		block(a.srgb, a.w, a.h, 16)
	}
}

func add(tf gputypes.TextureFormat, f Format) {
	f.Name = tf.String()
	catalog[tf] = f
	byName[strings.ToLower(f.Name)] = tf
}

// Lookup returns the description of a WebGPU texture format.
// The second result is false for TextureFormatUndefined and unknown values.
func Lookup(tf gputypes.TextureFormat) (Format, bool) {
	f, ok := catalog[tf]
	return f, ok
}

// MustLookup is like Lookup but panics if the format is not in the catalog.
// Intended for tests and package-level variables.
func MustLookup(tf gputypes.TextureFormat) Format {
	f, ok := catalog[tf]
	if !ok {
		panic("format: no description for " + tf.String())
	}
	return f
}

// ByName looks up a catalog format by its name, ignoring case, e.g.
// "rgba8unorm" or "ASTC5x5Unorm". Planar formats are found with LookupPlanar.
func ByName(name string) (gputypes.TextureFormat, bool) {
	tf, ok := byName[strings.ToLower(name)]
	return tf, ok
}

// All returns every catalogued WebGPU format in ascending enum order.
func All() []gputypes.TextureFormat {
	out := make([]gputypes.TextureFormat, 0, len(catalog))
	for tf := range catalog {
		out = append(out, tf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
