// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package format

import "strings"

// Plane is one memory plane of a multi-planar format.
type Plane struct {
	// Format describes the elements stored in this plane.
	Format Format

	// SubsampleX and SubsampleY divide the image extent to get the plane
	// extent, rounding up.
	SubsampleX uint32
	SubsampleY uint32
}

// Extent returns the plane dimensions for an image of width x height pixels.
func (p Plane) Extent(width, height uint32) (uint32, uint32) {
	return divRoundUp(width, p.SubsampleX), divRoundUp(height, p.SubsampleY)
}

// Planar describes a multi-planar YUV format.
type Planar struct {
	Name   string
	Planes []Plane
}

func lumaPlane(name string, bytes uint32, chroma420 bool) Plane {
	return Plane{
		Format: Format{
			Name: name, BlockWidth: 1, BlockHeight: 1, BlockBytes: bytes,
			Channels: 1, ChannelBits: uint8(bytes * 8), Chroma420: chroma420,
		},
		SubsampleX: 1, SubsampleY: 1,
	}
}

func chromaPlane(name string, bytes uint32, channels uint8, chroma420 bool) Plane {
	return Plane{
		Format: Format{
			Name: name, BlockWidth: 1, BlockHeight: 1, BlockBytes: bytes,
			Channels: channels, ChannelBits: uint8(bytes * 8 / uint32(channels)), Chroma420: chroma420,
		},
		SubsampleX: 2, SubsampleY: 2,
	}
}

// Multi-planar 4:2:0 formats.
var (
	// NV12 is an 8-bit Y plane followed by an interleaved CbCr plane.
	NV12 = Planar{Name: "NV12", Planes: []Plane{
		lumaPlane("NV12.Y", 1, true),
		chromaPlane("NV12.CbCr", 2, 2, true),
	}}

	// NV21 is NV12 with the chroma order swapped; the layout is identical.
	NV21 = Planar{Name: "NV21", Planes: []Plane{
		lumaPlane("NV21.Y", 1, true),
		chromaPlane("NV21.CrCb", 2, 2, true),
	}}

	// I420 stores Y, Cb and Cr in three separate 8-bit planes.
	I420 = Planar{Name: "I420", Planes: []Plane{
		lumaPlane("I420.Y", 1, true),
		chromaPlane("I420.Cb", 1, 1, true),
		chromaPlane("I420.Cr", 1, 1, true),
	}}

	// P010 is the 10-bit-in-16 variant of NV12. It keeps the default
	// row alignment.
	P010 = Planar{Name: "P010", Planes: []Plane{
		lumaPlane("P010.Y", 2, false),
		chromaPlane("P010.CbCr", 4, 2, false),
	}}
)

var planarFormats = []Planar{NV12, NV21, I420, P010}

// LookupPlanar finds a multi-planar format by name, ignoring case.
func LookupPlanar(name string) (Planar, bool) {
	for _, p := range planarFormats {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Planar{}, false
}
