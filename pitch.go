// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import "github.com/gogpu/texlayout/format"

// Window systems and buffer-sharing APIs exchange a single "pitch": the
// byte width of one row of pixels (or of blocks). The engine's row stride
// covers a whole row of tiles, so the two are converted here.

// RowPitch returns the window-system pitch of a level. For compressed
// images it is the uncompressed-equivalent width of the padded image.
func (l ImageLayout) RowPitch(level uint32) uint32 {
	s := l.slice(level)
	render := RenderBlockSizeOf(l.Modifier, l.Format)

	if l.Modifier.IsCompressed() {
		width := uint64(minify(l.Width, level))
		width, _ = alignUp(width, uint64(render.Width*TileSize(l.Modifier)))
		pitch, _ := toUint32(width * uint64(l.Format.BlockBytes))
		return pitch
	}
	return s.RowStride / render.Height
}

// RowStrideFromPitch converts a window-system pitch to the row stride an
// ExplicitLayout expects for the given format and modifier. It returns 0
// for an invalid format.
func RowStrideFromPitch(pitch uint32, f format.Format, mod TilingModifier) uint32 {
	if !f.IsValid() {
		return 0
	}
	render := RenderBlockSizeOf(mod, f)
	if mod.IsCompressed() {
		width := uint64(pitch / f.BlockBytes)
		stride, _ := toUint32(headerRowStride(mod, width))
		return stride
	}
	return pitch * render.Height
}
