// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

package crossview

import (
	"errors"

	"github.com/medview/crossview/scene"
)

// Configuration errors returned by Bind/OnViewChanged. A sync that fails
// to bind stays inert: no overlay is ever drawn for that view.
var (
	// ErrNoCrosshair reports that the scene holds no "default"-named
	// crosshair node.
	ErrNoCrosshair = errors.New("crossview: no default crosshair state in scene")

	// ErrNoComposite reports that the scene holds no composite node
	// matching the view's layout name.
	ErrNoComposite = errors.New("crossview: no composite state matching view layout")
)

// Sync keeps one slice view's crosshair overlay consistent with the shared
// crosshair state.
//
// On every crosshair notification Sync classifies the change (Classify),
// rebuilds the overlay geometry when a display property changed
// (BuildMesh), reprojects the tracked world position through the view
// transform, and routes the overlay to the tile owning the projected point
// (TileRouter). Pointer events inside the view travel the other way:
// OnPointerEvent lifts the device position into world coordinates and
// writes it into the crosshair state, which synchronously re-enters the
// notification path.
//
// A Sync is Unbound until OnViewChanged resolves the per-view composite
// and the crosshair state in the scene. Binding failures leave it Unbound
// and inert rather than failing hard.
//
// Thread Safety: Sync is NOT thread-safe. All entry points must run on the
// single control thread that drives scene event dispatch; each runs to
// completion without blocking.
type Sync struct {
	sc   *scene.Scene
	view *SliceView

	crosshair    *Crosshair
	composite    *Composite
	crosshairSub scene.Subscription
	compositeSub scene.Subscription
	sceneSub     scene.Subscription

	snapshot Snapshot
	actor    *Actor
	router   TileRouter

	layout Layout
	redraw func()
	style  Style
}

// NewSync creates a sync for one slice view. The sync immediately watches
// scene-lifecycle events so a later Import re-resolves its bindings;
// call OnViewChanged to bind and OnInitialize to build the first overlay.
func NewSync(sc *scene.Scene, view *SliceView, opts ...Option) *Sync {
	s := &Sync{
		sc:   sc,
		view: view,
		style: Style{
			Color:   DefaultColor(),
			Opacity: 1.0,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sceneSub = sc.Registry().SubscribeScene(s.OnNotify)
	return s
}

// Bound reports whether the sync has resolved a live crosshair state.
func (s *Sync) Bound() bool { return s.crosshair != nil }

// Actor returns the overlay actor, or nil before initialization or while
// unbound. The actor is owned by the sync; callers must not re-parent it.
func (s *Sync) Actor() *Actor { return s.actor }

// View returns the slice view this sync serves.
func (s *Sync) View() *SliceView { return s.view }

// OnViewChanged re-resolves the per-view composite state and the crosshair
// state from the scene, rebinding subscriptions. Stale subscriptions are
// removed before new ones are added, so no source ever delivers twice.
//
// The composite is re-resolved only when unset or when its layout name no
// longer matches the view's. A failed lookup unbinds the sync, removes any
// displayed overlay, and returns ErrNoComposite or ErrNoCrosshair.
func (s *Sync) OnViewChanged() error {
	reg := s.sc.Registry()

	if s.composite == nil || s.composite.Name() != s.view.Name() {
		node := s.sc.FirstByName(TagComposite, s.view.Name())
		composite, ok := node.(*Composite)
		if !ok {
			s.unbind()
			return ErrNoComposite
		}
		reg.Unsubscribe(s.compositeSub)
		s.composite = composite
		s.compositeSub = reg.Subscribe(composite, s.OnNotify)
	}

	node := s.sc.FirstByName(TagCrosshair, DefaultCrosshairName)
	crosshair, ok := node.(*Crosshair)
	if !ok {
		s.unbind()
		return ErrNoCrosshair
	}
	if crosshair != s.crosshair {
		reg.Unsubscribe(s.crosshairSub)
		s.crosshair = crosshair
		s.crosshairSub = reg.Subscribe(crosshair, s.OnNotify)
	}
	return nil
}

// OnInitialize builds the initial overlay unconditionally, before any
// notification has arrived, so the crosshair is visible immediately after
// binding.
func (s *Sync) OnInitialize() {
	if s.crosshair == nil {
		return
	}
	s.rebuild()
}

// OnNotify processes one event. Crosshair modifications drive the overlay;
// a scene load re-resolves bindings; modifications from other sources
// (the composite, foreign nodes) are not this component's concern and are
// ignored.
func (s *Sync) OnNotify(ev scene.Event) {
	switch ev.Kind {
	case scene.KindSceneLoaded:
		if err := s.OnViewChanged(); err != nil {
			Logger().Warn("crossview: rebind after scene load failed",
				"view", s.view.Name(), "err", err)
		}
		return
	case scene.KindModified:
	default:
		return
	}
	if s.crosshair == nil || ev.Node == nil || ev.Node.ID() != s.crosshair.ID() {
		return
	}
	s.processCrosshair()
}

// OnPointerEvent converts a device pixel position inside the active view
// into world coordinates and writes it to the shared crosshair state. The
// write publishes a modification event, so the resulting overlay update
// completes before this method returns. Ignored while unbound or without
// a layout.
func (s *Sync) OnPointerEvent(x, y int) {
	if s.crosshair == nil || s.layout == nil {
		return
	}
	local := s.layout.DeviceToLocal(x, y)
	world := s.view.XYToWorld().Apply(local)
	s.crosshair.SetPosition(world)
}

// Close unsubscribes the sync from the scene and removes any displayed
// overlay. The sync must not be used afterwards.
func (s *Sync) Close() {
	s.unbind()
	s.sc.Registry().Unsubscribe(s.sceneSub)
	s.sceneSub = scene.Subscription{}
}

// processCrosshair runs the classification pipeline for one crosshair
// notification and requests a redraw.
func (s *Sync) processCrosshair() {
	cls := Classify(s.snapshot, s.crosshair)

	if cls == ChangeRebuild {
		s.rebuild()
	}

	positioned := true
	if cls != ChangeNone && s.actor != nil {
		positioned = s.reposition()
	}

	snap := s.crosshair.Snapshot()
	if !positioned {
		// Keep the stale position so the next notification retries the
		// reposition; the overlay stays frozen until the transform is
		// valid again.
		snap.Position = s.snapshot.Position
	}
	s.snapshot = snap

	if s.redraw != nil {
		s.redraw()
	}
}

// rebuild replaces the overlay actor with freshly built geometry and
// re-hosts it on the current tile, if any.
func (s *Sync) rebuild() {
	if cur := s.router.Current(); cur != nil && s.actor != nil {
		cur.RemoveOverlay(s.actor)
	}

	var w, h int
	if s.layout != nil {
		w, h = s.layout.TileSize()
	}
	mesh := BuildMesh(s.crosshair.Mode(), s.crosshair.Thickness(), w, h)
	style := s.style
	style.Width = mesh.Width
	style.Visible = mesh.Visible
	s.actor = NewActor(mesh, style)

	if cur := s.router.Current(); cur != nil {
		cur.AddOverlay(s.actor)
	}
	Logger().Debug("crossview: overlay rebuilt",
		"view", s.view.Name(),
		"mode", s.crosshair.Mode(),
		"thickness", s.crosshair.Thickness())
}

// reposition projects the tracked world position into view coordinates,
// moves the actor, and routes it to the owning tile. Returns false when
// the view transform is not invertible; the overlay then freezes at its
// last position until the next valid notification.
func (s *Sync) reposition() bool {
	inv, err := s.view.XYToWorld().Inverted()
	if err != nil {
		Logger().Warn("crossview: reposition skipped",
			"view", s.view.Name(), "err", err)
		return false
	}
	pos := inv.Apply(s.crosshair.Position())
	s.actor.SetPosition(pos.X, pos.Y)
	s.router.Route(s.actor, pos.Z, s.layout)
	return true
}

// unbind drops all node bindings and removes the overlay from display.
func (s *Sync) unbind() {
	reg := s.sc.Registry()
	reg.Unsubscribe(s.crosshairSub)
	reg.Unsubscribe(s.compositeSub)
	s.crosshairSub = scene.Subscription{}
	s.compositeSub = scene.Subscription{}
	s.crosshair = nil
	s.composite = nil

	if cur := s.router.Current(); cur != nil && s.actor != nil {
		cur.RemoveOverlay(s.actor)
	}
	s.router = TileRouter{}
	s.actor = nil
	s.snapshot = Snapshot{}
}
