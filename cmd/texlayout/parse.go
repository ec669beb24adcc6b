// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/texlayout"
)

// parseModifier accepts a symbolic modifier name or a DRM modifier value.
func parseModifier(s string) (texlayout.TilingModifier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return texlayout.TilingModifier{}, fmt.Errorf("modifier %q: %w", s, err)
		}
		return texlayout.ParseModifier(texlayout.Modifier(v))
	}

	parts := strings.Split(s, "+")
	switch parts[0] {
	case "linear":
		if len(parts) > 1 {
			return texlayout.TilingModifier{}, fmt.Errorf("modifier %q: linear takes no options", s)
		}
		return texlayout.Linear(), nil
	case "interleaved", "u-interleaved":
		if len(parts) > 1 {
			return texlayout.TilingModifier{}, fmt.Errorf("modifier %q: interleaved takes no options", s)
		}
		return texlayout.Interleaved(), nil
	}

	var sb texlayout.Superblock
	switch parts[0] {
	case "afbc", "afbc16x16":
		sb = texlayout.Superblock16x16
	case "afbc32x8":
		sb = texlayout.Superblock32x8
	case "afbc64x4":
		sb = texlayout.Superblock64x4
	default:
		return texlayout.TilingModifier{}, fmt.Errorf("unknown modifier %q", s)
	}

	var opts texlayout.CompressionOptions
	for _, opt := range parts[1:] {
		switch opt {
		case "tiled":
			opts.TiledHeaders = true
		case "ytr":
			opts.YTR = true
		case "sparse":
			opts.Sparse = true
		case "split":
			opts.Split = true
		case "sc":
			opts.SolidColor = true
		default:
			return texlayout.TilingModifier{}, fmt.Errorf("modifier %q: unknown option %q", s, opt)
		}
	}
	return texlayout.Compressed(sb, opts), nil
}

// parseSize parses "WxH" or "WxHxD".
func parseSize(s string) (w, h, d uint32, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("size %q: want WxH or WxHxD", s)
	}
	vals := [3]uint32{1, 1, 1}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil || v == 0 {
			return 0, 0, 0, fmt.Errorf("size %q: bad extent %q", s, p)
		}
		vals[i] = uint32(v)
	}
	return vals[0], vals[1], vals[2], nil
}

// parseDimension resolves -dim, defaulting to 3D when a depth is given.
func parseDimension(s string, height, depth uint32) (texlayout.Dimension, error) {
	switch strings.ToLower(s) {
	case "":
		if depth > 1 {
			return texlayout.Dimension3D, nil
		}
		if height == 1 {
			return texlayout.Dimension1D, nil
		}
		return texlayout.Dimension2D, nil
	case "1d":
		return texlayout.Dimension1D, nil
	case "2d":
		return texlayout.Dimension2D, nil
	case "3d":
		return texlayout.Dimension3D, nil
	case "cube":
		return texlayout.DimensionCube, nil
	}
	return texlayout.DimensionUndefined, fmt.Errorf("unknown dimension %q", s)
}
