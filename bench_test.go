// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import "testing"

func BenchmarkInit(b *testing.B) {
	benchmarks := []struct {
		name string
		req  Request
	}{
		{"linear", request2D(Linear(), fmtRGBA8, 1920, 1080)},
		{"interleaved", request2D(Interleaved(), fmtRGBA8, 1920, 1080)},
		{"afbc", request2D(afbc16, fmtRGBA8, 1920, 1080)},
		{"afbc_tiled", request2D(afbc16Tiled, fmtRGBA8, 1920, 1080)},
	}
	for _, bm := range benchmarks {
		bm.req.LevelCount = bm.req.MaxLevels()
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Init(bm.req, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCacheInit(b *testing.B) {
	c := NewCache()
	req := request2D(afbc16Tiled, fmtRGBA8, 1920, 1080)
	req.LevelCount = req.MaxLevels()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Init(req, nil); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSurface(b *testing.B) {
	req := request2D(afbc16, fmtRGBA8, 1024, 1024)
	req.LevelCount = req.MaxLevels()
	req.ArraySize = 6
	l, err := Init(req, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	var sink Surface
	for b.Loop() {
		sink = l.Surface(0x100000, 5, 3, 0)
	}
	_ = sink
}
