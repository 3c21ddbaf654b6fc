// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/draw"

	"github.com/medview/crossview"
)

// Tile is an off-screen sub-renderer hosting overlay actors for one
// lightbox tile. It implements crossview.Renderer; Render composites the
// hosted actors into a fresh image.
type Tile struct {
	w, h   int
	actors []*crossview.Actor
}

// NewTile creates an off-screen tile of the given pixel size.
func NewTile(width, height int) *Tile {
	return &Tile{w: width, h: height}
}

// AddOverlay starts drawing the actor on this tile. Redundant adds are
// ignored.
func (t *Tile) AddOverlay(a *crossview.Actor) {
	if a == nil {
		return
	}
	for _, existing := range t.actors {
		if existing == a {
			return
		}
	}
	t.actors = append(t.actors, a)
}

// RemoveOverlay stops drawing the actor on this tile. Removing an actor
// the tile does not host is a no-op.
func (t *Tile) RemoveOverlay(a *crossview.Actor) {
	for i, existing := range t.actors {
		if existing == a {
			t.actors = append(t.actors[:i], t.actors[i+1:]...)
			return
		}
	}
}

// Len returns the number of hosted actors.
func (t *Tile) Len() int { return len(t.actors) }

// Render composites the hosted actors over the background color into a new
// image. A nil background renders on transparent black.
func (t *Tile) Render(background image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, t.w, t.h))
	if background != nil {
		draw.Draw(dst, dst.Bounds(), background, image.Point{}, draw.Src)
	}
	for _, a := range t.actors {
		Draw(dst, a)
	}
	return dst
}
