package crossview

// Segment is one overlay line from P1 to P2, in display-pixel offsets from
// the crosshair center.
type Segment struct {
	P1, P2 Point
}

// LineMesh is the overlay geometry produced by BuildMesh: an ordered
// sequence of line segments plus the resolved line width and visibility.
type LineMesh struct {
	Segments []Segment
	Width    int
	Visible  bool
}

// Display-pixel constants defining the crosshair shape. The center gap and
// the small-arm extent are fixed regardless of tile size; edge-reaching
// arms use the tile's own extent so they always leave the visible area.
const (
	crosshairGap      = 5
	crosshairSmallArm = 10
)

// BuildMesh builds the crosshair line geometry for one tile.
//
// Geometry is centered on the origin; the owning actor's position places
// it on screen. BuildMesh is a pure function: identical inputs yield
// identical meshes, and no state is carried between calls.
func BuildMesh(mode Mode, thickness Thickness, tileWidth, tileHeight int) LineMesh {
	w := float64(tileWidth)
	h := float64(tileHeight)
	const gap = float64(crosshairGap)
	const arm = float64(crosshairSmallArm)

	var segs []Segment
	switch mode {
	case ModeBasic:
		segs = []Segment{
			{Pt(0, -h), Pt(0, -gap)},
			{Pt(0, gap), Pt(0, h)},
			{Pt(-w, 0), Pt(-gap, 0)},
			{Pt(gap, 0), Pt(w, 0)},
		}
	case ModeIntersection:
		segs = []Segment{
			{Pt(-w, 0), Pt(w, 0)},
			{Pt(0, -h), Pt(0, h)},
		}
	case ModeSmallBasic:
		segs = []Segment{
			{Pt(0, -arm), Pt(0, -gap)},
			{Pt(0, gap), Pt(0, arm)},
			{Pt(-arm, 0), Pt(-gap, 0)},
			{Pt(gap, 0), Pt(arm, 0)},
		}
	case ModeSmallIntersection:
		segs = []Segment{
			{Pt(0, -arm), Pt(0, arm)},
			{Pt(-arm, 0), Pt(arm, 0)},
		}
	}

	return LineMesh{
		Segments: segs,
		Width:    thickness.LineWidth(),
		Visible:  mode != ModeNone,
	}
}
