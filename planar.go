// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"fmt"

	"github.com/gogpu/texlayout/format"
)

// PlanarRequest describes a multi-planar YUV image. Planes are always
// single-sampled 2D images.
type PlanarRequest struct {
	Modifier TilingModifier
	Format   format.Planar

	Width, Height uint32
	LevelCount    uint32
	ArraySize     uint32
	Arch          uint32
}

// PlanarLayout is the layout of every plane of a multi-planar image.
type PlanarLayout struct {
	Planes []ImageLayout

	// Offsets is the start of each plane relative to the allocation base.
	// Plane layouts are computed from 0 and shifted by Offsets[i] when
	// packed; with explicit layouts the offsets are already included in
	// the plane layouts and Offsets is all zero.
	Offsets []uint64

	// DataSize covers every plane.
	DataSize uint64
}

// InitPlanar lays out each plane of a planar image. With explicit == nil
// the planes are packed back to back in one allocation, each starting on a
// page boundary. Otherwise explicit must hold one layout per plane, as
// imported from a multi-plane buffer.
//
// Planar formats have no compressed encoding; compressed modifiers fail
// with ErrUnsupportedModifier.
func InitPlanar(req PlanarRequest, explicit []ExplicitLayout) (PlanarLayout, error) {
	if req.Modifier.IsCompressed() {
		return PlanarLayout{}, fmt.Errorf("%w: %v on planar format %s",
			ErrUnsupportedModifier, req.Modifier, req.Format.Name)
	}
	if len(req.Format.Planes) == 0 {
		return PlanarLayout{}, fmt.Errorf("%w: planar format %q has no planes", ErrInvalidRequest, req.Format.Name)
	}
	if explicit != nil && len(explicit) != len(req.Format.Planes) {
		return PlanarLayout{}, fmt.Errorf("%w: %d explicit layouts for %d planes",
			ErrUnsupportedExplicitLayout, len(explicit), len(req.Format.Planes))
	}

	out := PlanarLayout{
		Planes:  make([]ImageLayout, len(req.Format.Planes)),
		Offsets: make([]uint64, len(req.Format.Planes)),
	}

	var offset uint64
	for i, plane := range req.Format.Planes {
		w, h := plane.Extent(req.Width, req.Height)
		pr := Request{
			Modifier:    req.Modifier,
			Format:      plane.Format,
			Dimension:   Dimension2D,
			Width:       w,
			Height:      h,
			Depth:       1,
			SampleCount: 1,
			LevelCount:  req.LevelCount,
			ArraySize:   req.ArraySize,
			Arch:        req.Arch,
		}

		var ex *ExplicitLayout
		if explicit != nil {
			ex = &explicit[i]
		}
		l, err := Init(pr, ex)
		if err != nil {
			return PlanarLayout{}, fmt.Errorf("plane %d (%s): %w", i, plane.Format.Name, err)
		}
		out.Planes[i] = l

		if ex != nil {
			out.DataSize = max(out.DataSize, l.DataSize)
			continue
		}
		out.Offsets[i] = offset
		var ok bool
		if offset, ok = addChecked(offset, l.DataSize); !ok {
			return PlanarLayout{}, overflow("planar size")
		}
	}
	if explicit == nil {
		out.DataSize = offset
	}
	return out, nil
}

// Surface resolves a surface of one plane. base is the allocation base
// shared by every plane.
func (p PlanarLayout) Surface(base uint64, plane, level, layer uint32) Surface {
	if int(plane) >= len(p.Planes) {
		panic(fmt.Sprintf("texlayout: plane %d out of range (%d planes)", plane, len(p.Planes)))
	}
	return p.Planes[plane].Surface(base+p.Offsets[plane], level, layer, 0)
}
