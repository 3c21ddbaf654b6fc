package crossview

import "github.com/lucasb-eyer/go-colorful"

// DefaultColor returns the conventional crosshair color, a warm yellow.
func DefaultColor() colorful.Color {
	return colorful.Color{R: 1.0, G: 0.8, B: 0.1}
}

// Style is the overlay's visual style: color, opacity, line width, and
// visibility. Width duplicates the mesh's resolved width so renderers can
// stroke without consulting the mesh.
type Style struct {
	Color   colorful.Color
	Opacity float64
	Width   int
	Visible bool
}

// Actor is the 2D overlay object: a line mesh plus style, positioned on a
// tile. Sync owns its actor exclusively — it is replaced wholesale on a
// rebuild and mutated in place (position only) on a reposition. An actor
// belongs to at most one Renderer at any instant.
type Actor struct {
	mesh  LineMesh
	style Style
	pos   Point
}

// NewActor creates an actor from a built mesh and style.
func NewActor(mesh LineMesh, style Style) *Actor {
	return &Actor{mesh: mesh, style: style}
}

// Mesh returns the actor's line geometry.
func (a *Actor) Mesh() LineMesh { return a.mesh }

// Style returns the actor's visual style.
func (a *Actor) Style() Style { return a.style }

// Position returns the actor's on-screen position (the crosshair center)
// in tile-local display coordinates.
func (a *Actor) Position() Point { return a.pos }

// SetPosition moves the actor's on-screen position.
func (a *Actor) SetPosition(x, y float64) {
	a.pos = Point{X: x, Y: y}
}

// Visible reports whether the actor should be drawn.
func (a *Actor) Visible() bool { return a.style.Visible }

// Renderer hosts overlay actors for one tile. Implementations include
// raster.Tile and application-side renderers (windowing toolkits,
// terminals). AddOverlay and RemoveOverlay must tolerate redundant calls.
type Renderer interface {
	// AddOverlay starts drawing the actor on this tile.
	AddOverlay(*Actor)

	// RemoveOverlay stops drawing the actor on this tile.
	RemoveOverlay(*Actor)
}
