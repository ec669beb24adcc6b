// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texlayout"
)

const (
	mapWidth   = 1024
	mapMargin  = 8
	mapBarH    = 32
	mapLabelH  = 16
	mapRowH    = mapBarH + mapLabelH + mapMargin
	mapMinText = 48
	mapFontPt  = 11
)

var (
	mapBackground = color.RGBA{0x20, 0x20, 0x28, 0xff}
	mapHeader     = color.RGBA{0xd0, 0x60, 0x40, 0xff}
	mapChecksum   = color.RGBA{0xe0, 0xc0, 0x40, 0xff}
	mapText       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	mapLevels     = []color.RGBA{
		{0x40, 0x80, 0xd0, 0xff},
		{0x50, 0xa0, 0x70, 0xff},
		{0x90, 0x70, 0xc0, 0xff},
		{0x40, 0xa0, 0xb0, 0xff},
	}
)

// writeMap draws one bar per layout, scaled to the whole allocation, with
// each mip level of the first layer as a coloured span.
func writeMap(path string, layouts []texlayout.ImageLayout, offsets []uint64) error {
	var total uint64
	for i, l := range layouts {
		total = max(total, offsets[i]+l.DataSize)
	}
	if total == 0 {
		return fmt.Errorf("map: empty layout")
	}

	face, err := mapFace()
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	h := mapMargin + len(layouts)*mapRowH
	img := image.NewRGBA(image.Rect(0, 0, mapWidth, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(mapBackground), image.Point{}, draw.Src)

	span := uint64(mapWidth - 2*mapMargin)
	x := func(off uint64) int {
		return mapMargin + int(off*span/total)
	}

	d := &font.Drawer{Dst: img, Src: image.NewUniform(mapText), Face: face}
	for row, l := range layouts {
		y0 := mapMargin + row*mapRowH
		for i, s := range l.Slices {
			start := offsets[row] + s.Offset
			end := start + s.Size
			bar := image.Rect(x(start), y0, max(x(end), x(start)+1), y0+mapBarH)
			draw.Draw(img, bar, image.NewUniform(mapLevels[i%len(mapLevels)]), image.Point{}, draw.Src)

			if ci := s.Compressed; ci != nil {
				hdr := image.Rect(bar.Min.X, y0, max(x(start+ci.HeaderSize), bar.Min.X+1), y0+mapBarH/3)
				draw.Draw(img, hdr, image.NewUniform(mapHeader), image.Point{}, draw.Src)
			}
			if crc := s.Checksum; crc != nil {
				c := image.Rect(x(offsets[row]+crc.Offset), y0+2*mapBarH/3, bar.Max.X, y0+mapBarH)
				draw.Draw(img, c, image.NewUniform(mapChecksum), image.Point{}, draw.Src)
			}

			if bar.Dx() >= mapMinText || i == 0 {
				d.Dot = fixed.P(bar.Min.X, y0+mapBarH+mapLabelH-4)
				d.DrawString(fmt.Sprintf("L%d", i))
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("map: %w", err)
	}
	return f.Close()
}

func mapFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("map: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    mapFontPt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("map: font face: %w", err)
	}
	return face, nil
}
