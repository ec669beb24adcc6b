// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texlayout/format"
)

// Dimension is the image dimensionality.
type Dimension uint8

const (
	DimensionUndefined Dimension = iota
	Dimension1D
	Dimension2D
	Dimension3D
	// DimensionCube is laid out as a 2D array; the caller folds faces into
	// the array size (6 per cube) and into layer indices.
	DimensionCube
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case Dimension1D:
		return "1D"
	case Dimension2D:
		return "2D"
	case Dimension3D:
		return "3D"
	case DimensionCube:
		return "Cube"
	default:
		return "Undefined"
	}
}

// DimensionFromView maps a WebGPU view dimension to a layout dimension.
// Array views map to their element dimension.
func DimensionFromView(d gputypes.TextureViewDimension) Dimension {
	switch d {
	case gputypes.TextureViewDimension1D:
		return Dimension1D
	case gputypes.TextureViewDimension2D, gputypes.TextureViewDimension2DArray:
		return Dimension2D
	case gputypes.TextureViewDimension3D:
		return Dimension3D
	case gputypes.TextureViewDimensionCube, gputypes.TextureViewDimensionCubeArray:
		return DimensionCube
	default:
		return DimensionUndefined
	}
}

// CubeFaces is the number of faces per cube map.
const CubeFaces = 6

// CubeLayer folds a cube index and face into a layer index.
func CubeLayer(cube, face uint32) uint32 {
	return cube*CubeFaces + face
}

// Request describes the image to lay out.
type Request struct {
	Modifier  TilingModifier
	Format    format.Format
	Dimension Dimension

	Width, Height, Depth uint32

	SampleCount uint32
	LevelCount  uint32

	// ArraySize is the number of layers; cube maps count every face.
	ArraySize uint32

	// Checksum appends a per-tile checksum region to every level.
	Checksum bool

	// Arch is the hardware generation. Row strides are aligned like
	// offsets from RowStrideAlignedArch on.
	Arch uint32
}

// MaxLevels returns the length of the full mip chain for the request's
// extent.
func (r Request) MaxLevels() uint32 {
	largest := max(r.Width, r.Height)
	if r.Dimension == Dimension3D {
		largest = max(largest, r.Depth)
	}
	if largest == 0 {
		return 0
	}
	return uint32(bits.Len32(largest))
}

func (r Request) validate() error {
	switch {
	case !r.Format.IsValid():
		return fmt.Errorf("%w: format %v has no block description", ErrInvalidRequest, r.Format)
	case r.Dimension == DimensionUndefined || r.Dimension > DimensionCube:
		return fmt.Errorf("%w: dimension %v", ErrInvalidRequest, r.Dimension)
	case r.Width == 0 || r.Height == 0 || r.Depth == 0:
		return fmt.Errorf("%w: extent %dx%dx%d", ErrInvalidRequest, r.Width, r.Height, r.Depth)
	case r.SampleCount == 0 || r.LevelCount == 0 || r.ArraySize == 0:
		return fmt.Errorf("%w: samples=%d levels=%d layers=%d",
			ErrInvalidRequest, r.SampleCount, r.LevelCount, r.ArraySize)
	case r.Dimension != Dimension3D && r.Depth != 1:
		return fmt.Errorf("%w: depth %d on a %v image", ErrInvalidRequest, r.Depth, r.Dimension)
	case r.Dimension == Dimension3D && r.SampleCount > 1:
		return fmt.Errorf("%w: multisampled 3D image", ErrInvalidRequest)
	case r.Dimension == Dimension1D && r.Height != 1:
		return fmt.Errorf("%w: height %d on a 1D image", ErrInvalidRequest, r.Height)
	case r.LevelCount > r.MaxLevels():
		return fmt.Errorf("%w: %d levels, mip chain has %d", ErrInvalidRequest, r.LevelCount, r.MaxLevels())
	}
	return nil
}

// ExplicitLayout is an externally imposed offset and row stride, typically
// from an imported buffer. It is only valid for single-level,
// single-layer, single-sample 2D images without checksums.
type ExplicitLayout struct {
	Offset    uint64
	RowStride uint32
}

// ImageLayout is the physical layout of an image. It is immutable once
// returned by Init; share it freely between goroutines.
type ImageLayout struct {
	Request

	// Slices holds one entry per mip level with increasing offsets.
	Slices []SliceLayout

	// ArrayStride is the distance between array layers; every layer holds
	// a full mip chain.
	ArrayStride uint64

	// DataSize is the allocation size required for the image.
	DataSize uint64

	// Explicit is set when the layout was validated against an
	// ExplicitLayout instead of computed.
	Explicit bool
}

// Init computes the layout of an image. When explicit is non-nil, its
// offset and row stride are validated and used instead of computed values.
//
// Init is the only fallible operation of the engine. On error the
// returned ImageLayout is the zero value.
func Init(req Request, explicit *ExplicitLayout) (ImageLayout, error) {
	layout, err := initLayout(req, explicit)
	if err != nil {
		Logger().Warn("texlayout: rejecting image",
			slog.String("modifier", req.Modifier.String()),
			slog.String("format", req.Format.String()),
			slog.Any("error", err))
		return ImageLayout{}, err
	}

	Logger().Debug("texlayout: image laid out",
		slog.String("modifier", req.Modifier.String()),
		slog.String("format", req.Format.String()),
		slog.Int("levels", len(layout.Slices)),
		slog.Uint64("array_stride", layout.ArrayStride),
		slog.Uint64("data_size", layout.DataSize))
	return layout, nil
}

func initLayout(req Request, explicit *ExplicitLayout) (ImageLayout, error) {
	if err := req.validate(); err != nil {
		return ImageLayout{}, err
	}

	mod := req.Modifier
	is3D := req.Dimension == Dimension3D

	var offset uint64
	if explicit != nil {
		if req.LevelCount > 1 || req.ArraySize > 1 || req.SampleCount > 1 ||
			req.Depth > 1 || req.Dimension != Dimension2D || req.Checksum {
			return ImageLayout{}, fmt.Errorf("%w: %v image, %d levels, %d layers, %d samples, checksum=%v",
				ErrUnsupportedExplicitLayout, req.Dimension, req.LevelCount, req.ArraySize, req.SampleCount, req.Checksum)
		}

		align := uint64(MinimumOffsetAlignment(mod, req.Format, req.Arch))
		if !isAligned(explicit.Offset, align) {
			return ImageLayout{}, fmt.Errorf("%w: offset %d not %d-byte aligned",
				ErrMisalignedExplicitLayout, explicit.Offset, align)
		}
		if req.Arch >= RowStrideAlignedArch && !isAligned(uint64(explicit.RowStride), align) {
			return ImageLayout{}, fmt.Errorf("%w: row stride %d not %d-byte aligned",
				ErrMisalignedExplicitLayout, explicit.RowStride, align)
		}
		if explicit.RowStride == 0 {
			return ImageLayout{}, fmt.Errorf("%w: zero row stride", ErrStrideTooSmall)
		}
		offset = explicit.Offset
	}

	slices := make([]SliceLayout, req.LevelCount)
	for level := range slices {
		l := uint32(level)
		p := SliceParams{
			Modifier: mod,
			Format:   req.Format,
			Arch:     req.Arch,
			Width:    minify(req.Width, l),
			Height:   minify(req.Height, l),
			Depth:    minify(req.Depth, l),
			Samples:  req.SampleCount,
			Is3D:     is3D,
			Checksum: req.Checksum,
		}

		// An explicit offset is used as given; computed offsets are
		// rounded to the slice alignment.
		if explicit != nil {
			p.RowStride = explicit.RowStride
		} else {
			var ok bool
			if offset, ok = alignUp(offset, uint64(SliceAlignment(mod))); !ok {
				return ImageLayout{}, overflow("level offset")
			}
		}
		p.Offset = offset

		s, err := PlanSlice(p)
		if err != nil {
			return ImageLayout{}, fmt.Errorf("level %d: %w", level, err)
		}
		slices[level] = s

		var ok bool
		if offset, ok = addChecked(offset, s.Size); !ok {
			return ImageLayout{}, overflow("image size")
		}
	}

	arrayStride, ok := alignUp(offset, uint64(SliceAlignment(mod)))
	if !ok {
		return ImageLayout{}, overflow("array stride")
	}

	var dataSize uint64
	if explicit != nil {
		dataSize = offset
	} else {
		dataSize, ok = mulChecked(arrayStride, uint64(req.ArraySize))
		if ok {
			dataSize, ok = alignUp(dataSize, PageAlignment)
		}
		if !ok {
			return ImageLayout{}, overflow("data size")
		}
	}

	return ImageLayout{
		Request:     req,
		Slices:      slices,
		ArrayStride: arrayStride,
		DataSize:    dataSize,
		Explicit:    explicit != nil,
	}, nil
}

// Clone returns a deep copy of l.
func (l ImageLayout) Clone() ImageLayout {
	c := l
	c.Slices = make([]SliceLayout, len(l.Slices))
	for i, s := range l.Slices {
		if s.Compressed != nil {
			ci := *s.Compressed
			s.Compressed = &ci
		}
		if s.Checksum != nil {
			crc := *s.Checksum
			s.Checksum = &crc
		}
		c.Slices[i] = s
	}
	return c
}

// LayerStride returns the distance between layers of a level: the array
// stride for arrays and cube maps, the per-depth-slice stride for 3D
// images (header stride when compressed).
func (l ImageLayout) LayerStride(level uint32) uint64 {
	s := l.slice(level)
	if l.Dimension != Dimension3D {
		return l.ArrayStride
	}
	if s.Compressed != nil {
		return s.Compressed.HeaderToHeaderStride
	}
	return s.SurfaceStride
}

// Validate checks the structural invariants of a layout: offsets increase
// and are aligned, the array stride covers every level and is aligned like
// a level, and the data size covers every layer.
func (l ImageLayout) Validate() error {
	if len(l.Slices) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidLayout)
	}
	align := uint64(SliceAlignment(l.Modifier))
	if l.Explicit {
		align = uint64(MinimumOffsetAlignment(l.Modifier, l.Format, l.Arch))
	}

	var end, total uint64
	for i, s := range l.Slices {
		if !isAligned(s.Offset, align) {
			return fmt.Errorf("%w: level %d offset %d not %d-byte aligned", ErrInvalidLayout, i, s.Offset, align)
		}
		if i > 0 && s.Offset < end {
			return fmt.Errorf("%w: level %d offset %d overlaps previous level ending at %d",
				ErrInvalidLayout, i, s.Offset, end)
		}
		end = s.Offset + s.Size
		total += s.Size
	}
	if !isAligned(l.ArrayStride, uint64(SliceAlignment(l.Modifier))) {
		return fmt.Errorf("%w: array stride %d not %d-byte aligned",
			ErrInvalidLayout, l.ArrayStride, SliceAlignment(l.Modifier))
	}
	if l.ArrayStride < total || l.ArrayStride < end {
		return fmt.Errorf("%w: array stride %d below level footprint %d", ErrInvalidLayout, l.ArrayStride, end)
	}
	if l.Explicit {
		if l.DataSize != end {
			return fmt.Errorf("%w: explicit data size %d, levels end at %d", ErrInvalidLayout, l.DataSize, end)
		}
		return nil
	}
	if l.ArraySize == 0 {
		return fmt.Errorf("%w: zero array size", ErrInvalidLayout)
	}
	if !isAligned(l.DataSize, PageAlignment) {
		return fmt.Errorf("%w: data size %d not page aligned", ErrInvalidLayout, l.DataSize)
	}
	if l.DataSize/uint64(l.ArraySize) < l.ArrayStride {
		return fmt.Errorf("%w: data size %d below %d layers of %d",
			ErrInvalidLayout, l.DataSize, l.ArraySize, l.ArrayStride)
	}
	return nil
}

func (l ImageLayout) slice(level uint32) SliceLayout {
	if int(level) >= len(l.Slices) {
		panic(fmt.Sprintf("texlayout: level %d out of range (%d levels)", level, len(l.Slices)))
	}
	return l.Slices[level]
}
