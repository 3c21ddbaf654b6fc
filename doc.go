// Package crossview synchronizes an on-screen crosshair overlay with a
// shared 3D imaging scene's cursor state, across multiple synchronized 2D
// slice views.
//
// # Overview
//
// crossview is a thin reactive adapter between a scene of observable state
// nodes (package scene) and whatever renders the 2D overlays. It observes
// the shared Crosshair node, decides on each notification whether the
// overlay's line geometry must be rebuilt or merely repositioned, projects
// the tracked 3D position through the active view's transform, and routes
// the overlay to the lightbox tile that owns the projected point. Pointer
// events travel the other way: a device position is lifted into world
// coordinates and written back into the shared crosshair state.
//
// # Quick Start
//
//	sc := scene.New()
//	view := crossview.NewSliceView("axial")
//	sc.Import(crossview.NewCrosshair(), crossview.NewComposite("axial"))
//
//	grid := lightbox.NewGrid(2, 2, 512, 512)
//	sync := crossview.NewSync(sc, view, crossview.WithLayout(grid))
//	if err := sync.OnViewChanged(); err != nil {
//	    log.Fatal(err)
//	}
//	sync.OnInitialize()
//
//	// Pointer motion inside the view:
//	sync.OnPointerEvent(130, 245)
//
// # Architecture
//
// The library is organized into:
//   - Core: BuildMesh (geometry), Classify (change detection),
//     TileRouter (overlay migration), Sync (orchestration)
//   - scene/: observable node container and event registry
//   - lightbox/: grid tile layout implementing the Layout interface
//   - raster/: off-screen snapshot rendering of overlay actors
//
// # Coordinate System
//
// View-local coordinates use display pixels with origin at the top-left of
// a tile; the Z component of a local coordinate selects the tile. World
// coordinates are whatever the view's 4x4 transform maps them to
// (millimeters, typically). Overlay geometry is expressed as pixel offsets
// from the crosshair center.
//
// # Threading
//
// All entry points run on a single control thread and complete
// synchronously; see the Sync documentation.
package crossview
