package crossview

// Layout describes the active view's tile arrangement: per-tile pixel
// geometry, the device-to-local mapping, and the resolver from a projected
// depth coordinate to the sub-renderer owning that tile. Implemented by
// lightbox.Grid; single-tile views are the rows=cols=1 case.
type Layout interface {
	// TileSize returns one tile's pixel size.
	TileSize() (w, h int)

	// DeviceToLocal converts a device (window) pixel position into the
	// view-local coordinate whose Z component selects a tile. Positions
	// outside every tile yield a negative Z.
	DeviceToLocal(x, y int) Vec3

	// RendererFor resolves the sub-renderer owning the tile selected by
	// the projected depth coordinate, or nil when the point maps outside
	// all tiles.
	RendererFor(depth float64) Renderer
}

// TileRouter tracks which sub-renderer currently hosts the overlay and
// migrates it when the tracked point crosses tile boundaries. Migration is
// atomic from the renderers' perspective: remove from the old tile, then
// add to the new, within one Route call.
type TileRouter struct {
	current Renderer
}

// Current returns the sub-renderer currently hosting the overlay, or nil.
func (r *TileRouter) Current() Renderer { return r.current }

// Route resolves the tile owning the projected depth coordinate and moves
// the actor there if ownership changed. An unchanged resolution is a no-op
// so repeated routing never causes redundant remove/add flicker. A depth
// outside every tile removes the overlay without a replacement. Returns
// the renderer now hosting the overlay, or nil.
func (r *TileRouter) Route(actor *Actor, depth float64, layout Layout) Renderer {
	if layout == nil {
		return r.current
	}
	next := layout.RendererFor(depth)
	if next == r.current {
		return r.current
	}
	if r.current != nil && actor != nil {
		r.current.RemoveOverlay(actor)
	}
	if next != nil && actor != nil {
		next.AddOverlay(actor)
	}
	Logger().Debug("crossview: overlay migrated", "depth", depth)
	r.current = next
	return next
}
