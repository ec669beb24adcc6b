// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command texlayout prints the memory layout of a GPU image.
//
// Usage:
//
//	texlayout -format rgba8unorm -modifier afbc16x16+tiled -size 917x417
//	texlayout -format nv12 -size 1920x1080 -map nv12.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/texlayout"
	"github.com/gogpu/texlayout/format"
)

type options struct {
	format   string
	modifier string
	size     string
	dim      string
	levels   uint
	layers   uint
	samples  uint
	arch     uint
	checksum bool
	offset   uint64
	stride   uint
	mapPath  string
	verbose  bool
}

func main() {
	var o options
	flag.StringVar(&o.format, "format", "rgba8unorm", "texture format name (WebGPU name, or nv12/nv21/i420/p010)")
	flag.StringVar(&o.modifier, "modifier", "linear", "modifier: linear, interleaved, afbc16x16[+tiled][+ytr][+sparse][+split][+sc], afbc32x8..., afbc64x4..., or a hex DRM value")
	flag.StringVar(&o.size, "size", "256x256", "image extent WxH or WxHxD")
	flag.StringVar(&o.dim, "dim", "", "dimension: 1d, 2d, 3d, cube (default from -size)")
	flag.UintVar(&o.levels, "levels", 1, "mip level count, 0 for the full chain")
	flag.UintVar(&o.layers, "layers", 1, "array layers (cube maps count every face)")
	flag.UintVar(&o.samples, "samples", 1, "sample count")
	flag.UintVar(&o.arch, "arch", 7, "hardware generation")
	flag.BoolVar(&o.checksum, "crc", false, "append per-tile checksum regions")
	flag.Uint64Var(&o.offset, "offset", 0, "explicit offset (requires -stride)")
	flag.UintVar(&o.stride, "stride", 0, "explicit row stride; enables explicit layout")
	flag.StringVar(&o.mapPath, "map", "", "write a PNG memory map to this file")
	flag.BoolVar(&o.verbose, "v", false, "debug logging to stderr")
	flag.Parse()

	if o.verbose {
		texlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(o, os.Stdout); err != nil {
		log.Fatalf("texlayout: %v", err)
	}
}

// checkRanges rejects flag values that do not fit the 32-bit request fields.
func checkRanges(o options) error {
	for _, f := range []struct {
		name  string
		value uint
	}{
		{"levels", o.levels},
		{"layers", o.layers},
		{"samples", o.samples},
		{"arch", o.arch},
		{"stride", o.stride},
	} {
		if uint64(f.value) > math.MaxUint32 {
			return fmt.Errorf("-%s %d out of range", f.name, f.value)
		}
	}
	return nil
}

func run(o options, w io.Writer) error {
	if err := checkRanges(o); err != nil {
		return err
	}
	mod, err := parseModifier(o.modifier)
	if err != nil {
		return err
	}
	width, height, depth, err := parseSize(o.size)
	if err != nil {
		return err
	}
	dim, err := parseDimension(o.dim, height, depth)
	if err != nil {
		return err
	}

	var explicit *texlayout.ExplicitLayout
	if o.stride != 0 {
		explicit = &texlayout.ExplicitLayout{Offset: o.offset, RowStride: uint32(o.stride)}
	} else if o.offset != 0 {
		return errors.New("-offset requires -stride")
	}

	p := message.NewPrinter(language.English)

	if planar, ok := format.LookupPlanar(o.format); ok {
		if explicit != nil {
			return errors.New("-stride is not supported for planar formats")
		}
		req := texlayout.PlanarRequest{
			Modifier: mod, Format: planar,
			Width: width, Height: height,
			LevelCount: uint32(o.levels), ArraySize: uint32(o.layers), Arch: uint32(o.arch),
		}
		if req.LevelCount == 0 {
			req.LevelCount = texlayout.Request{Dimension: texlayout.Dimension2D, Width: width, Height: height}.MaxLevels()
		}
		pl, err := texlayout.InitPlanar(req, nil)
		if err != nil {
			return err
		}
		for i, l := range pl.Planes {
			p.Fprintf(w, "plane %d %s at %d\n", i, planar.Planes[i].Format.Name, pl.Offsets[i])
			printLayout(p, w, l)
		}
		p.Fprintf(w, "total %d bytes\n", pl.DataSize)
		if o.mapPath != "" {
			return writeMap(o.mapPath, pl.Planes, pl.Offsets)
		}
		return nil
	}

	tf, ok := format.ByName(o.format)
	if !ok {
		return fmt.Errorf("unknown format %q", o.format)
	}
	req := texlayout.Request{
		Modifier:    mod,
		Format:      format.MustLookup(tf),
		Dimension:   dim,
		Width:       width,
		Height:      height,
		Depth:       depth,
		SampleCount: uint32(o.samples),
		LevelCount:  uint32(o.levels),
		ArraySize:   uint32(o.layers),
		Checksum:    o.checksum,
		Arch:        uint32(o.arch),
	}
	if req.LevelCount == 0 {
		req.LevelCount = req.MaxLevels()
	}

	if mod.IsCompressed() && !format.SupportsCompression(req.Format) {
		p.Fprintf(w, "warning: %s has no compressed encoding\n", req.Format)
	}
	if mod.YTR() && !format.CanYTR(req.Format) {
		p.Fprintf(w, "warning: YTR is not defined for %s\n", req.Format)
	}

	l, err := texlayout.Init(req, explicit)
	if err != nil {
		return err
	}
	printLayout(p, w, l)
	p.Fprintf(w, "array stride %d, total %d bytes\n", l.ArrayStride, l.DataSize)

	if o.mapPath != "" {
		return writeMap(o.mapPath, []texlayout.ImageLayout{l}, []uint64{0})
	}
	return nil
}

func printLayout(p *message.Printer, w io.Writer, l texlayout.ImageLayout) {
	extent := fmt.Sprintf("%dx%dx%d", l.Width, l.Height, l.Depth)
	p.Fprintf(w, "%s %s %s %s, %d levels, %d layers, %d samples\n",
		l.Modifier, l.Format, extent, l.Dimension, len(l.Slices), l.ArraySize, l.SampleCount)
	for i, s := range l.Slices {
		p.Fprintf(w, "  level %2d: offset %d, row stride %d, pitch %d, size %d",
			i, s.Offset, s.RowStride, l.RowPitch(uint32(i)), s.Size)
		if ci := s.Compressed; ci != nil {
			p.Fprintf(w, ", header %d, body %d", ci.HeaderSize, ci.BodySize)
		}
		if crc := s.Checksum; crc != nil {
			p.Fprintf(w, ", crc %d@%d", crc.Size, crc.Offset)
		}
		p.Fprintln(w)
	}
}
