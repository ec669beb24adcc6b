// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import "fmt"

// Surface is the address of one 2D surface of an image: a level, a layer
// (or depth slice) and a sample. Compressed surfaces have a header and a
// body pointer, others a single data pointer.
type Surface struct {
	Compressed bool

	// Data is the surface start for linear and interleaved images.
	Data uint64

	// Header and Body locate a compressed surface.
	Header uint64
	Body   uint64
}

// Address returns the first byte of the surface: the header for compressed
// surfaces, the data pointer otherwise.
func (s Surface) Address() uint64 {
	if s.Compressed {
		return s.Header
	}
	return s.Data
}

// String implements fmt.Stringer.
func (s Surface) String() string {
	if s.Compressed {
		return fmt.Sprintf("Surface[header=0x%x body=0x%x]", s.Header, s.Body)
	}
	return fmt.Sprintf("Surface[data=0x%x]", s.Data)
}

// SurfaceOffset returns the offset of a surface relative to the image
// base: level offset + arrayIndex*ArrayStride + surfaceIndex*SurfaceStride.
func (l ImageLayout) SurfaceOffset(level, arrayIndex, surfaceIndex uint32) uint64 {
	s := l.slice(level)
	return s.Offset + uint64(arrayIndex)*l.ArrayStride + uint64(surfaceIndex)*s.SurfaceStride
}

// Surface resolves the address of a surface given the base address of the
// image's allocation. For 3D images layer selects a depth slice; for cube
// maps it is the folded cube/face index (see CubeLayer).
//
// Out-of-range coordinates are programming errors and panic.
func (l ImageLayout) Surface(base uint64, level, layer, sample uint32) Surface {
	s := l.slice(level)
	if sample >= l.SampleCount {
		panic(fmt.Sprintf("texlayout: sample %d out of range (%d samples)", sample, l.SampleCount))
	}

	is3D := l.Dimension == Dimension3D
	if is3D {
		if depth := minify(l.Depth, level); layer >= depth {
			panic(fmt.Sprintf("texlayout: depth slice %d out of range (%d at level %d)", layer, depth, level))
		}
	} else if layer >= l.ArraySize {
		panic(fmt.Sprintf("texlayout: layer %d out of range (%d layers)", layer, l.ArraySize))
	}

	if ci := s.Compressed; ci != nil {
		if is3D {
			return Surface{
				Compressed: true,
				Header:     base + s.Offset + uint64(layer)*ci.HeaderToHeaderStride,
				Body:       base + s.Offset + ci.HeaderSize + uint64(layer)*s.SurfaceStride,
			}
		}
		header := base + l.SurfaceOffset(level, layer, sample)
		return Surface{Compressed: true, Header: header, Body: header + ci.HeaderSize}
	}

	arrayIndex, surfaceIndex := layer, sample
	if is3D {
		arrayIndex, surfaceIndex = 0, layer
	}
	return Surface{Data: base + l.SurfaceOffset(level, arrayIndex, surfaceIndex)}
}

// ChecksumAddress returns the address of a level's checksum region within
// one layer. It panics if the layout has no checksums.
func (l ImageLayout) ChecksumAddress(base uint64, level, layer uint32) uint64 {
	s := l.slice(level)
	if s.Checksum == nil {
		panic("texlayout: layout has no checksum region")
	}
	if layer >= l.ArraySize {
		panic(fmt.Sprintf("texlayout: layer %d out of range (%d layers)", layer, l.ArraySize))
	}
	return base + s.Checksum.Offset + uint64(layer)*l.ArrayStride
}
