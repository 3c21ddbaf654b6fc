package crossview

import "github.com/medview/crossview/scene"

// Mode selects the crosshair's visual style.
type Mode int

const (
	// ModeNone hides the crosshair entirely.
	ModeNone Mode = iota

	// ModeBasic draws four arms reaching the tile edges, with a gap at
	// the center.
	ModeBasic

	// ModeIntersection draws two full-length lines through the center,
	// no gap.
	ModeIntersection

	// ModeSmallBasic draws four short arms near the center only.
	ModeSmallBasic

	// ModeSmallIntersection draws two short lines through the center.
	ModeSmallIntersection
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeBasic:
		return "Basic"
	case ModeIntersection:
		return "Intersection"
	case ModeSmallBasic:
		return "SmallBasic"
	case ModeSmallIntersection:
		return "SmallIntersection"
	default:
		return "Unknown"
	}
}

// Thickness selects the crosshair line weight.
type Thickness int

const (
	ThicknessFine Thickness = iota
	ThicknessMedium
	ThicknessThick
)

// String returns the thickness name.
func (t Thickness) String() string {
	switch t {
	case ThicknessFine:
		return "Fine"
	case ThicknessMedium:
		return "Medium"
	case ThicknessThick:
		return "Thick"
	default:
		return "Unknown"
	}
}

// LineWidth returns the line width in device-independent units:
// Fine 1, Medium 3, Thick 5.
func (t Thickness) LineWidth() int {
	switch t {
	case ThicknessMedium:
		return 3
	case ThicknessThick:
		return 5
	default:
		return 1
	}
}

// Scene type tags for the nodes this package defines.
const (
	TagCrosshair = "Crosshair"
	TagSliceView = "SliceView"
	TagComposite = "SliceComposite"
)

// DefaultCrosshairName is the conventional name of the single tracked
// crosshair node in a scene.
const DefaultCrosshairName = "default"

// Crosshair is the shared scene node driving the overlay: a 3D world
// position plus the visual mode and thickness. It is owned by scene
// management; Sync holds a non-owning reference and a value Snapshot for
// change detection.
//
// Every setter publishes a modification event, so a position write from a
// pointer handler becomes visual feedback synchronously.
type Crosshair struct {
	scene.Base

	position  Vec3
	mode      Mode
	thickness Thickness
}

// NewCrosshair creates the conventional "default"-named crosshair node.
// The initial mode is ModeBasic at the world origin.
func NewCrosshair() *Crosshair {
	return &Crosshair{
		Base: scene.NewBase(TagCrosshair, DefaultCrosshairName),
		mode: ModeBasic,
	}
}

// Position returns the tracked world position.
func (c *Crosshair) Position() Vec3 { return c.position }

// SetPosition moves the tracked world position and notifies observers.
func (c *Crosshair) SetPosition(p Vec3) {
	c.position = p
	c.Modified()
}

// Mode returns the visual mode.
func (c *Crosshair) Mode() Mode { return c.mode }

// SetMode changes the visual mode and notifies observers.
func (c *Crosshair) SetMode(m Mode) {
	c.mode = m
	c.Modified()
}

// Thickness returns the line weight.
func (c *Crosshair) Thickness() Thickness { return c.thickness }

// SetThickness changes the line weight and notifies observers.
func (c *Crosshair) SetThickness(t Thickness) {
	c.thickness = t
	c.Modified()
}

// Snapshot returns a value copy of the display-affecting state.
func (c *Crosshair) Snapshot() Snapshot {
	return Snapshot{
		Position:  c.position,
		Mode:      c.mode,
		Thickness: c.thickness,
	}
}

// Snapshot is the by-value copy of crosshair state used for change
// detection. Sync owns one and overwrites it after every processed
// notification; it is never partially updated.
type Snapshot struct {
	Position  Vec3
	Mode      Mode
	Thickness Thickness
}

// SliceView is the per-view state node: the view's layout name and the 4x4
// transform mapping view-local coordinates to world coordinates. The node
// name doubles as the layout name, which matching Composite nodes share.
type SliceView struct {
	scene.Base

	xyToWorld *Transform
}

// NewSliceView creates a slice view with an identity transform.
func NewSliceView(layoutName string) *SliceView {
	return &SliceView{
		Base:      scene.NewBase(TagSliceView, layoutName),
		xyToWorld: IdentityTransform(),
	}
}

// XYToWorld returns the view-local-to-world transform. Callers must not
// mutate the returned transform; use SetXYToWorld.
func (v *SliceView) XYToWorld() *Transform { return v.xyToWorld }

// SetXYToWorld replaces the view transform and notifies observers.
func (v *SliceView) SetXYToWorld(t *Transform) {
	v.xyToWorld = t.Clone()
	v.Modified()
}

// Composite is the per-view composite state node, matched to a SliceView
// by layout name. Its modifications are handled by collaborators other
// than the crosshair sync, which observes it only to keep its binding
// current.
type Composite struct {
	scene.Base

	linked bool
}

// NewComposite creates a composite node for the given layout.
func NewComposite(layoutName string) *Composite {
	return &Composite{Base: scene.NewBase(TagComposite, layoutName)}
}

// Linked reports whether this view participates in linked cursor control.
func (c *Composite) Linked() bool { return c.linked }

// SetLinked toggles linked cursor control and notifies observers.
func (c *Composite) SetLinked(v bool) {
	c.linked = v
	c.Modified()
}
