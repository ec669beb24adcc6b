// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package format

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tf         gputypes.TextureFormat
		w, h       uint32
		bytes      uint32
		compressed bool
	}{
		{gputypes.TextureFormatR8Unorm, 1, 1, 1, false},
		{gputypes.TextureFormatRGBA8Unorm, 1, 1, 4, false},
		{gputypes.TextureFormatRGBA32Float, 1, 1, 16, false},
		{gputypes.TextureFormatDepth32FloatStencil8, 1, 1, 8, false},
		{gputypes.TextureFormatBC1RGBAUnorm, 4, 4, 8, true},
		{gputypes.TextureFormatBC7RGBAUnorm, 4, 4, 16, true},
		{gputypes.TextureFormatETC2RGB8Unorm, 4, 4, 8, true},
		{gputypes.TextureFormatEACRG11Unorm, 4, 4, 16, true},
		{gputypes.TextureFormatASTC5x5Unorm, 5, 5, 16, true},
		{gputypes.TextureFormatASTC12x10UnormSrgb, 12, 10, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.tf.String(), func(t *testing.T) {
			f, ok := Lookup(tt.tf)
			if !ok {
				t.Fatalf("Lookup(%v) not found", tt.tf)
			}
			if f.BlockWidth != tt.w || f.BlockHeight != tt.h {
				t.Errorf("block = %dx%d, want %dx%d", f.BlockWidth, f.BlockHeight, tt.w, tt.h)
			}
			if f.BlockBytes != tt.bytes {
				t.Errorf("BlockBytes = %d, want %d", f.BlockBytes, tt.bytes)
			}
			if f.Compressed != tt.compressed {
				t.Errorf("Compressed = %v, want %v", f.Compressed, tt.compressed)
			}
			if f.Name != tt.tf.String() {
				t.Errorf("Name = %q, want %q", f.Name, tt.tf.String())
			}
		})
	}
}

func TestLookupUndefined(t *testing.T) {
	if _, ok := Lookup(gputypes.TextureFormatUndefined); ok {
		t.Error("Lookup(Undefined) should fail")
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup(Undefined) did not panic")
		}
	}()
	MustLookup(gputypes.TextureFormatUndefined)
}

func TestAllFormatsValid(t *testing.T) {
	all := All()
	if len(all) < 90 {
		t.Fatalf("catalog has %d formats, expected the full WebGPU set", len(all))
	}
	for i, tf := range all {
		if i > 0 && all[i-1] >= tf {
			t.Fatalf("All() not sorted at %d", i)
		}
		if f := MustLookup(tf); !f.IsValid() {
			t.Errorf("%v: invalid description %+v", tf, f)
		}
	}
}

func TestByName(t *testing.T) {
	tf, ok := ByName("astc5x5unorm")
	if !ok || tf != gputypes.TextureFormatASTC5x5Unorm {
		t.Errorf("ByName(astc5x5unorm) = %v, %v", tf, ok)
	}
	if _, ok := ByName("nope"); ok {
		t.Error("ByName(nope) should fail")
	}
}

func TestBlocks(t *testing.T) {
	astc := MustLookup(gputypes.TextureFormatASTC5x5Unorm)
	if got := astc.BlocksX(50); got != 10 {
		t.Errorf("BlocksX(50) = %d, want 10", got)
	}
	if got := astc.BlocksY(51); got != 11 {
		t.Errorf("BlocksY(51) = %d, want 11", got)
	}
	if got := astc.BlocksX(1); got != 1 {
		t.Errorf("BlocksX(1) = %d, want 1", got)
	}
	if got := astc.BlocksX(^uint32(0) - 1); got != 858993459 {
		t.Errorf("BlocksX(max-1) = %d, want 858993459", got)
	}
}

func TestSupportsCompression(t *testing.T) {
	tests := []struct {
		tf   gputypes.TextureFormat
		want bool
		ytr  bool
	}{
		{gputypes.TextureFormatRGBA8Unorm, true, true},
		{gputypes.TextureFormatBGRA8UnormSrgb, true, true},
		{gputypes.TextureFormatR8Unorm, true, false},
		{gputypes.TextureFormatRG8Unorm, true, false},
		{gputypes.TextureFormatRGB10A2Unorm, true, true},
		{gputypes.TextureFormatDepth24PlusStencil8, true, false},
		{gputypes.TextureFormatDepth32Float, false, false},
		{gputypes.TextureFormatRGBA16Float, false, false},
		{gputypes.TextureFormatRGBA16Unorm, false, false},
		{gputypes.TextureFormatBC1RGBAUnorm, false, false},
		{gputypes.TextureFormatASTC4x4Unorm, false, false},
	}
	for _, tt := range tests {
		f := MustLookup(tt.tf)
		if got := SupportsCompression(f); got != tt.want {
			t.Errorf("SupportsCompression(%v) = %v, want %v", tt.tf, got, tt.want)
		}
		if got := CanYTR(f); got != tt.ytr {
			t.Errorf("CanYTR(%v) = %v, want %v", tt.tf, got, tt.ytr)
		}
	}
}

func TestPlanar(t *testing.T) {
	p, ok := LookupPlanar("nv12")
	if !ok {
		t.Fatal("NV12 not found")
	}
	if len(p.Planes) != 2 {
		t.Fatalf("NV12 planes = %d, want 2", len(p.Planes))
	}
	w, h := p.Planes[1].Extent(1919, 1081)
	if w != 960 || h != 541 {
		t.Errorf("chroma extent = %dx%d, want 960x541", w, h)
	}
	if !p.Planes[0].Format.Chroma420 {
		t.Error("NV12 luma plane should be marked Chroma420")
	}
	if P010.Planes[0].Format.Chroma420 {
		t.Error("P010 keeps default alignment")
	}
	if got := I420.Planes[2].Format.BlockBytes; got != 1 {
		t.Errorf("I420 Cr bytes = %d, want 1", got)
	}
	if _, ok := LookupPlanar("YUYV"); ok {
		t.Error("YUYV is not a planar format")
	}
}
