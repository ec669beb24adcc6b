// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout_test

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texlayout"
	"github.com/gogpu/texlayout/format"
)

func ExampleInit() {
	layout, err := texlayout.Init(texlayout.Request{
		Modifier:    texlayout.Compressed(texlayout.Superblock16x16, texlayout.CompressionOptions{TiledHeaders: true}),
		Format:      format.MustLookup(gputypes.TextureFormatRGBA8Unorm),
		Dimension:   texlayout.Dimension2D,
		Width:       917,
		Height:      417,
		Depth:       1,
		SampleCount: 1,
		LevelCount:  1,
		ArraySize:   1,
	}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	s := layout.Slices[0]
	fmt.Println("row stride:", s.RowStride)
	fmt.Println("header:", s.Compressed.HeaderSize)
	fmt.Println("body:", s.Compressed.BodySize)
	fmt.Println("size:", s.Size)
	// Output:
	// row stride: 8192
	// header: 32768
	// body: 2097152
	// size: 2129920
}

func ExampleParseModifier() {
	mod, err := texlayout.ParseModifier(texlayout.ModAFBC(texlayout.AFBCBlockSize16x16 | texlayout.AFBCSparse | texlayout.AFBCTiled))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mod)
	fmt.Println(mod.TiledHeaders())

	_, err = texlayout.ParseModifier(0x0100000000000001)
	fmt.Println(err)
	// Output:
	// ARM_AFBC(BLOCK_SIZE=16x16,MODE=SPARSE|TILED)
	// true
	// texlayout: unsupported modifier: 0x0100000000000001
}

func ExampleImageLayout_Surface() {
	layout, err := texlayout.Init(texlayout.Request{
		Modifier:    texlayout.Linear(),
		Format:      format.MustLookup(gputypes.TextureFormatRGBA8Unorm),
		Dimension:   texlayout.Dimension2D,
		Width:       16,
		Height:      16,
		Depth:       1,
		SampleCount: 1,
		LevelCount:  2,
		ArraySize:   3,
	}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(layout.Surface(0x10000, 1, 2, 0))
	// Output:
	// Surface[data=0x11000]
}
