// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"fmt"
	"strings"
)

// Modifier is a 64-bit DRM format modifier as exchanged between drivers,
// compositors and window systems.
//
// The top 8 bits select a vendor; for ARM the next 4 bits select the
// modifier type (AFBC, misc, AFRC) and the low 52 bits carry type-specific
// flags.
type Modifier uint64

const (
	vendorShift  = 56
	vendorARM    = 0x08
	armTypeShift = 52
	armTypeMask  = 0xf
	armTypeAFBC  = 0x0
	armTypeMisc  = 0x1
	armTypeAFRC  = 0x2
	armValueMask = 0x000fffffffffffff
)

// Well-known modifiers.
const (
	// ModLinear is plain row-major storage.
	ModLinear Modifier = 0

	// ModInvalid marks an unknown or absent modifier.
	ModInvalid Modifier = 0x00ffffffffffffff

	// ModInterleaved16x16 is ARM's 16x16 u-interleaved tiling.
	ModInterleaved16x16 Modifier = vendorARM<<vendorShift | armTypeMisc<<armTypeShift | 1
)

// AFBC modifier flags. Exactly one block size must be set.
const (
	AFBCBlockSize16x16     uint64 = 1
	AFBCBlockSize32x8      uint64 = 2
	AFBCBlockSize64x4      uint64 = 3
	AFBCBlockSize32x8_64x4 uint64 = 4
	afbcBlockSizeMask      uint64 = 0xf

	AFBCYTR    uint64 = 1 << 4
	AFBCSplit  uint64 = 1 << 5
	AFBCSparse uint64 = 1 << 6
	AFBCCBR    uint64 = 1 << 7
	AFBCTiled  uint64 = 1 << 8
	AFBCSC     uint64 = 1 << 9
	AFBCDB     uint64 = 1 << 10
	AFBCBCH    uint64 = 1 << 11
	AFBCUSM    uint64 = 1 << 12

	// afbcLayoutFlags are the mode flags this engine lays out. SPLIT,
	// SPARSE and SC do not change sizes or offsets.
	afbcLayoutFlags = AFBCYTR | AFBCSplit | AFBCSparse | AFBCTiled | AFBCSC
)

// ModAFBC builds an ARM AFBC modifier from block size and mode flags.
func ModAFBC(flags uint64) Modifier {
	return Modifier(vendorARM<<vendorShift | armTypeAFBC<<armTypeShift | flags&armValueMask)
}

// Vendor returns the vendor code in the top byte.
func (m Modifier) Vendor() uint8 {
	return uint8(m >> vendorShift)
}

// IsAFBC reports whether m is in the ARM AFBC namespace, regardless of
// whether this engine supports its flags.
func (m Modifier) IsAFBC() bool {
	return m.Vendor() == vendorARM && (uint64(m)>>armTypeShift)&armTypeMask == armTypeAFBC
}

// String returns the libdrm-style name of a supported modifier, or the
// hexadecimal value otherwise.
func (m Modifier) String() string {
	if tm, err := ParseModifier(m); err == nil {
		return tm.String()
	}
	if m == ModInvalid {
		return "INVALID"
	}
	return fmt.Sprintf("0x%016x", uint64(m))
}

// Tiling selects one of the supported storage schemes.
type Tiling uint8

const (
	// TilingLinear stores rows back to back.
	TilingLinear Tiling = iota
	// TilingInterleaved reorders pixels inside 16x16 tiles.
	TilingInterleaved
	// TilingCompressed is AFBC: a header region followed by a body.
	TilingCompressed
)

// String returns the tiling name.
func (t Tiling) String() string {
	switch t {
	case TilingLinear:
		return "Linear"
	case TilingInterleaved:
		return "Interleaved"
	case TilingCompressed:
		return "Compressed"
	default:
		return fmt.Sprintf("Tiling(%d)", t)
	}
}

// Superblock is the compression unit of a compressed modifier.
type Superblock uint8

const (
	Superblock16x16 Superblock = iota + 1
	Superblock32x8
	Superblock64x4
)

// Width returns the superblock width in pixels.
func (s Superblock) Width() uint32 {
	switch s {
	case Superblock32x8:
		return 32
	case Superblock64x4:
		return 64
	default:
		return 16
	}
}

// Height returns the superblock height in pixels.
func (s Superblock) Height() uint32 {
	switch s {
	case Superblock32x8:
		return 8
	case Superblock64x4:
		return 4
	default:
		return 16
	}
}

// String returns e.g. "16x16".
func (s Superblock) String() string {
	return fmt.Sprintf("%dx%d", s.Width(), s.Height())
}

func (s Superblock) flag() uint64 {
	switch s {
	case Superblock16x16:
		return AFBCBlockSize16x16
	case Superblock32x8:
		return AFBCBlockSize32x8
	case Superblock64x4:
		return AFBCBlockSize64x4
	}
	return 0
}

// CompressionOptions are the mode bits of a compressed modifier.
type CompressionOptions struct {
	// TiledHeaders groups headers into 8x8-superblock tiles.
	TiledHeaders bool
	// YTR enables the lossless colour transform.
	YTR bool
	// Sparse, Split and SolidColor are carried through unchanged; they
	// do not affect the layout.
	Sparse     bool
	Split      bool
	SolidColor bool
}

// TilingModifier is the decoded, closed form of a supported Modifier.
//
// The zero value is the linear modifier. TilingModifier is comparable and
// can be used as a map key.
type TilingModifier struct {
	tiling     Tiling
	superblock Superblock
	flags      uint64
}

// Linear returns the linear modifier.
func Linear() TilingModifier {
	return TilingModifier{tiling: TilingLinear}
}

// Interleaved returns the 16x16 u-interleaved modifier.
func Interleaved() TilingModifier {
	return TilingModifier{tiling: TilingInterleaved}
}

// Compressed returns an AFBC modifier with the given superblock. It panics
// if sb is not one of the Superblock constants.
func Compressed(sb Superblock, opts CompressionOptions) TilingModifier {
	if sb.flag() == 0 {
		panic(fmt.Sprintf("texlayout: invalid superblock %d", sb))
	}
	var flags uint64
	if opts.TiledHeaders {
		flags |= AFBCTiled
	}
	if opts.YTR {
		flags |= AFBCYTR
	}
	if opts.Sparse {
		flags |= AFBCSparse
	}
	if opts.Split {
		flags |= AFBCSplit
	}
	if opts.SolidColor {
		flags |= AFBCSC
	}
	return TilingModifier{tiling: TilingCompressed, superblock: sb, flags: flags}
}

// ParseModifier decodes a DRM modifier. Only linear, 16x16 u-interleaved
// and AFBC with a single 16x16, 32x8 or 64x4 block size and the YTR,
// SPLIT, SPARSE, TILED and SC mode flags are accepted; everything else
// returns ErrUnsupportedModifier.
func ParseModifier(m Modifier) (TilingModifier, error) {
	switch m {
	case ModLinear:
		return Linear(), nil
	case ModInterleaved16x16:
		return Interleaved(), nil
	}
	if !m.IsAFBC() {
		return TilingModifier{}, fmt.Errorf("%w: 0x%016x", ErrUnsupportedModifier, uint64(m))
	}

	value := uint64(m) & armValueMask
	var sb Superblock
	switch value & afbcBlockSizeMask {
	case AFBCBlockSize16x16:
		sb = Superblock16x16
	case AFBCBlockSize32x8:
		sb = Superblock32x8
	case AFBCBlockSize64x4:
		sb = Superblock64x4
	default:
		return TilingModifier{}, fmt.Errorf("%w: AFBC block size %d", ErrUnsupportedModifier, value&afbcBlockSizeMask)
	}

	mode := value &^ afbcBlockSizeMask
	if extra := mode &^ afbcLayoutFlags; extra != 0 {
		return TilingModifier{}, fmt.Errorf("%w: AFBC mode bits 0x%x", ErrUnsupportedModifier, extra)
	}
	return TilingModifier{tiling: TilingCompressed, superblock: sb, flags: mode}, nil
}

// Tiling returns the storage scheme.
func (t TilingModifier) Tiling() Tiling { return t.tiling }

// IsLinear reports whether t is the linear modifier.
func (t TilingModifier) IsLinear() bool { return t.tiling == TilingLinear }

// IsCompressed reports whether t is a compressed (AFBC) modifier.
func (t TilingModifier) IsCompressed() bool { return t.tiling == TilingCompressed }

// Superblock returns the superblock of a compressed modifier, 0 otherwise.
func (t TilingModifier) Superblock() Superblock { return t.superblock }

// SuperblockWidth returns the superblock width in pixels, 0 if t is not
// compressed.
func (t TilingModifier) SuperblockWidth() uint32 {
	if !t.IsCompressed() {
		return 0
	}
	return t.superblock.Width()
}

// SuperblockHeight returns the superblock height in pixels, 0 if t is not
// compressed.
func (t TilingModifier) SuperblockHeight() uint32 {
	if !t.IsCompressed() {
		return 0
	}
	return t.superblock.Height()
}

// IsWide reports whether the superblock is wider than 16 pixels.
func (t TilingModifier) IsWide() bool {
	return t.SuperblockWidth() > 16
}

// TiledHeaders reports whether headers are grouped into 8x8 tiles.
func (t TilingModifier) TiledHeaders() bool {
	return t.IsCompressed() && t.flags&AFBCTiled != 0
}

// YTR reports whether the colour transform is enabled.
func (t TilingModifier) YTR() bool {
	return t.IsCompressed() && t.flags&AFBCYTR != 0
}

// Modifier encodes t back to its 64-bit DRM form.
func (t TilingModifier) Modifier() Modifier {
	switch t.tiling {
	case TilingInterleaved:
		return ModInterleaved16x16
	case TilingCompressed:
		return ModAFBC(t.superblock.flag() | t.flags)
	default:
		return ModLinear
	}
}

var afbcModeNames = []struct {
	flag uint64
	name string
}{
	{AFBCYTR, "YTR"},
	{AFBCSplit, "SPLIT"},
	{AFBCSparse, "SPARSE"},
	{AFBCCBR, "CBR"},
	{AFBCTiled, "TILED"},
	{AFBCSC, "SC"},
	{AFBCDB, "DB"},
	{AFBCBCH, "BCH"},
	{AFBCUSM, "USM"},
}

// String returns the libdrm-style name, e.g.
// "ARM_AFBC(BLOCK_SIZE=16x16,MODE=SPARSE|TILED)".
func (t TilingModifier) String() string {
	switch t.tiling {
	case TilingLinear:
		return "LINEAR"
	case TilingInterleaved:
		return "ARM_16X16_BLOCK_U_INTERLEAVED"
	}

	var b strings.Builder
	b.WriteString("ARM_AFBC(BLOCK_SIZE=")
	b.WriteString(t.superblock.String())
	sep := ",MODE="
	for _, m := range afbcModeNames {
		if t.flags&m.flag != 0 {
			b.WriteString(sep)
			b.WriteString(m.name)
			sep = "|"
		}
	}
	b.WriteByte(')')
	return b.String()
}
