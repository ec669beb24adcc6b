// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"testing"

	"github.com/gogpu/texlayout/format"
)

func TestRowPitch(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		pitch     uint32
		rowStride uint32
	}{
		{"linear", request2D(Linear(), fmtRGBA8, 100, 100), 448, 448},
		{"interleaved", request2D(Interleaved(), fmtRGBA8, 100, 100), 448, 7168},
		{"compressed", request2D(afbc16, fmtRGBA8, 64, 64), 256, 64},
		{"compressed tiled", request2D(afbc16Tiled, fmtRGBA8, 917, 417), 4096, 8192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustInit(t, tt.req, nil)
			if got := l.RowPitch(0); got != tt.pitch {
				t.Errorf("RowPitch = %d, want %d", got, tt.pitch)
			}
			if l.Slices[0].RowStride != tt.rowStride {
				t.Errorf("RowStride = %d, want %d", l.Slices[0].RowStride, tt.rowStride)
			}
			if got := RowStrideFromPitch(tt.pitch, tt.req.Format, tt.req.Modifier); got != tt.rowStride {
				t.Errorf("RowStrideFromPitch(%d) = %d, want %d", tt.pitch, got, tt.rowStride)
			}
		})
	}
}

func TestRowStrideFromPitchImports(t *testing.T) {
	// A producer's pitch converted to a row stride must be accepted back.
	pitch := uint32(512)
	stride := RowStrideFromPitch(pitch, fmtRGBA8, Linear())
	l := mustInit(t, request2D(Linear(), fmtRGBA8, 100, 100), &ExplicitLayout{RowStride: stride})
	if got := l.RowPitch(0); got != pitch {
		t.Errorf("RowPitch = %d, want %d", got, pitch)
	}
}

func TestRowStrideFromPitchInvalidFormat(t *testing.T) {
	for _, mod := range []TilingModifier{Linear(), Interleaved(), afbc16, afbc16Tiled} {
		if got := RowStrideFromPitch(256, format.Format{}, mod); got != 0 {
			t.Errorf("%v: RowStrideFromPitch(zero format) = %d, want 0", mod, got)
		}
	}
}
