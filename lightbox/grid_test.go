// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

package lightbox

import (
	"testing"

	"github.com/medview/crossview"
)

type nopRenderer struct{ id int }

func (nopRenderer) AddOverlay(*crossview.Actor)    {}
func (nopRenderer) RemoveOverlay(*crossview.Actor) {}

func TestGridDeviceToLocal(t *testing.T) {
	g := NewGrid(2, 3, 100, 80)

	tests := []struct {
		name string
		x, y int
		want crossview.Vec3
	}{
		{"origin", 0, 0, crossview.V3(0, 0, 0)},
		{"inside first tile", 40, 30, crossview.V3(40, 30, 0)},
		{"second column", 140, 30, crossview.V3(40, 30, 1)},
		{"second row", 40, 90, crossview.V3(40, 10, 3)},
		{"last tile", 299, 159, crossview.V3(99, 79, 5)},
		{"column boundary", 100, 0, crossview.V3(0, 0, 1)},
		{"right of grid", 300, 30, crossview.V3(300, 30, -1)},
		{"below grid", 40, 160, crossview.V3(40, 160, -1)},
		{"negative", -5, 10, crossview.V3(-5, 10, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.DeviceToLocal(tt.x, tt.y); got != tt.want {
				t.Errorf("DeviceToLocal(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGridRendererFor(t *testing.T) {
	g := NewGrid(2, 2, 100, 100)
	rs := make([]nopRenderer, 4)
	for i := range rs {
		rs[i] = nopRenderer{id: i}
		g.SetRenderer(i, rs[i])
	}

	tests := []struct {
		name  string
		depth float64
		want  crossview.Renderer
	}{
		{"exact", 1, rs[1]},
		{"round down", 2.4, rs[2]},
		{"round up", 2.6, rs[3]},
		{"slightly negative rounds to zero", -0.4, rs[0]},
		{"outside low", -0.6, nil},
		{"outside high", 3.6, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.RendererFor(tt.depth)
			if got != tt.want {
				t.Errorf("RendererFor(%v) = %v, want %v", tt.depth, got, tt.want)
			}
		})
	}
}

func TestGridSetRendererBounds(t *testing.T) {
	g := NewGrid(1, 2, 10, 10)
	// Out-of-range indexes are ignored rather than panicking.
	g.SetRenderer(-1, nopRenderer{})
	g.SetRenderer(2, nopRenderer{})
	if g.Renderer(-1) != nil || g.Renderer(2) != nil {
		t.Error("out-of-range Renderer() must return nil")
	}
	if g.Tiles() != 2 || g.Rows() != 1 || g.Cols() != 2 {
		t.Error("grid shape accessors wrong")
	}
	if w, h := g.TileSize(); w != 10 || h != 10 {
		t.Errorf("TileSize() = %d,%d, want 10,10", w, h)
	}
}
