// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import "errors"

// Errors returned by Init and InitPlanar. They are wrapped with context;
// match them with errors.Is.
var (
	// ErrUnsupportedModifier is returned for modifiers outside the
	// linear, u-interleaved and AFBC subset.
	ErrUnsupportedModifier = errors.New("texlayout: unsupported modifier")

	// ErrUnsupportedExplicitLayout is returned when an explicit layout is
	// requested for a mipmapped, layered, 3D, multisampled or
	// checksummed image.
	ErrUnsupportedExplicitLayout = errors.New("texlayout: explicit layout not supported for this image")

	// ErrMisalignedExplicitLayout is returned when an explicit offset or
	// row stride violates the minimum alignment.
	ErrMisalignedExplicitLayout = errors.New("texlayout: misaligned explicit layout")

	// ErrStrideTooSmall is returned when an explicit row stride is below
	// the computed minimum.
	ErrStrideTooSmall = errors.New("texlayout: explicit row stride too small")

	// ErrInvalidRequest is returned for requests with zero extents or
	// counts, or more levels than the mip chain has.
	ErrInvalidRequest = errors.New("texlayout: invalid layout request")

	// ErrLayoutOverflow is returned when a size or offset does not fit in
	// 64 bits (or a row stride in 32 bits).
	ErrLayoutOverflow = errors.New("texlayout: layout size overflow")

	// ErrInvalidLayout is returned by ImageLayout.Validate when a layout
	// breaks one of its structural invariants.
	ErrInvalidLayout = errors.New("texlayout: layout invariant violated")
)
