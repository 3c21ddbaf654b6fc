// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

// Package lightbox implements the grid tile layout used by multi-slice
// ("lightbox") view windows.
//
// A Grid divides the view window into rows x cols tiles of equal pixel
// size, each optionally backed by its own sub-renderer. It implements
// crossview.Layout: device positions map to tile-local coordinates whose Z
// component is the row-major tile index, and a projected depth coordinate
// resolves back to the owning sub-renderer.
package lightbox

import (
	"math"

	"github.com/medview/crossview"
)

// Grid is a rows x cols lightbox layout. A single-tile view is the 1x1
// case. The zero value is not usable; use NewGrid.
type Grid struct {
	rows, cols   int
	tileW, tileH int
	renderers    []crossview.Renderer
}

// NewGrid creates a layout of rows x cols tiles, each tileWidth x
// tileHeight pixels, with no sub-renderers attached.
func NewGrid(rows, cols, tileWidth, tileHeight int) *Grid {
	return &Grid{
		rows:      rows,
		cols:      cols,
		tileW:     tileWidth,
		tileH:     tileHeight,
		renderers: make([]crossview.Renderer, rows*cols),
	}
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// Tiles returns the total tile count.
func (g *Grid) Tiles() int { return g.rows * g.cols }

// SetRenderer attaches a sub-renderer to the tile at the given row-major
// index. A nil renderer detaches the tile.
func (g *Grid) SetRenderer(tile int, r crossview.Renderer) {
	if tile < 0 || tile >= len(g.renderers) {
		return
	}
	g.renderers[tile] = r
}

// Renderer returns the sub-renderer for the tile at the given row-major
// index, or nil.
func (g *Grid) Renderer(tile int) crossview.Renderer {
	if tile < 0 || tile >= len(g.renderers) {
		return nil
	}
	return g.renderers[tile]
}

// TileSize returns one tile's pixel size.
func (g *Grid) TileSize() (w, h int) { return g.tileW, g.tileH }

// DeviceToLocal maps a window pixel position to tile-local coordinates.
// Z carries the row-major tile index; positions outside the grid yield
// Z = -1.
func (g *Grid) DeviceToLocal(x, y int) crossview.Vec3 {
	col := x / g.tileW
	row := y / g.tileH
	if x < 0 || y < 0 || col >= g.cols || row >= g.rows {
		return crossview.Vec3{X: float64(x), Y: float64(y), Z: -1}
	}
	return crossview.Vec3{
		X: float64(x - col*g.tileW),
		Y: float64(y - row*g.tileH),
		Z: float64(row*g.cols + col),
	}
}

// RendererFor resolves the sub-renderer owning the tile selected by the
// projected depth coordinate, rounding to the nearest tile index. Depths
// outside the grid resolve to nil.
func (g *Grid) RendererFor(depth float64) crossview.Renderer {
	tile := int(math.Floor(depth + 0.5))
	if tile < 0 || tile >= len(g.renderers) {
		return nil
	}
	return g.renderers[tile]
}
