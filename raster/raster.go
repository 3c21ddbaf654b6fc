// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

// Package raster renders overlay actors into images, for off-screen
// inspection of a tile's crosshair and for writing snapshots to disk.
//
// Stroking goes through golang.org/x/image/vector: each segment becomes a
// filled quad of the actor's line width, anti-aliased by the rasterizer's
// coverage accumulation.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/medview/crossview"
)

// Draw strokes the actor's segments, translated to its current position,
// into dst. Invisible or nil actors draw nothing. Geometry outside dst is
// clipped by the rasterizer.
func Draw(dst *image.RGBA, a *crossview.Actor) {
	if a == nil || !a.Visible() {
		return
	}
	mesh := a.Mesh()
	if len(mesh.Segments) == 0 {
		return
	}

	st := a.Style()
	pos := a.Position()
	b := dst.Bounds()

	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := float64(st.Width) / 2
	for _, seg := range mesh.Segments {
		strokeSegment(r, seg.P1.Add(pos), seg.P2.Add(pos), half)
	}

	cr, cg, cb := st.Color.RGB255()
	src := image.NewUniform(color.NRGBA{
		R: cr, G: cg, B: cb,
		A: uint8(math.Round(clamp01(st.Opacity) * 255)),
	})
	r.Draw(dst, b, src, image.Point{})
}

// strokeSegment appends the filled quad covering a line of width 2*half
// from p1 to p2.
func strokeSegment(r *vector.Rasterizer, p1, p2 crossview.Point, half float64) {
	d := p2.Sub(p1)
	length := d.Length()
	if length == 0 {
		return
	}
	// Perpendicular offset of half the line width.
	n := crossview.Pt(-d.Y/length*half, d.X/length*half)

	r.MoveTo(float32(p1.X+n.X), float32(p1.Y+n.Y))
	r.LineTo(float32(p2.X+n.X), float32(p2.Y+n.Y))
	r.LineTo(float32(p2.X-n.X), float32(p2.Y-n.Y))
	r.LineTo(float32(p1.X-n.X), float32(p1.Y-n.Y))
	r.ClosePath()
}

// Encode writes img to w in PNG format.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
