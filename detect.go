package crossview

import "math"

// Change classifies what a crosshair notification requires of the overlay.
type Change int

const (
	// ChangeNone requires nothing.
	ChangeNone Change = iota

	// ChangeReposition requires moving the existing overlay.
	ChangeReposition

	// ChangeRebuild requires regenerating the overlay geometry. A rebuild
	// always implies a reposition as well.
	ChangeRebuild
)

// String returns the classification name.
func (c Change) String() string {
	switch c {
	case ChangeNone:
		return "None"
	case ChangeReposition:
		return "Reposition"
	case ChangeRebuild:
		return "Rebuild"
	default:
		return "Unknown"
	}
}

// positionEps is the absolute per-coordinate tolerance below which two
// world positions are considered equal.
const positionEps = 1e-12

// Classify compares the cached snapshot against the live crosshair state.
// A nil live state yields ChangeNone regardless of the cache. A mode or
// thickness difference yields ChangeRebuild regardless of position; a
// position delta of at least positionEps on any coordinate yields
// ChangeReposition. Classify mutates neither input.
func Classify(cached Snapshot, live *Crosshair) Change {
	if live == nil {
		return ChangeNone
	}
	if cached.Mode != live.Mode() || cached.Thickness != live.Thickness() {
		return ChangeRebuild
	}
	if positionChanged(cached.Position, live.Position()) {
		return ChangeReposition
	}
	return ChangeNone
}

func positionChanged(a, b Vec3) bool {
	return math.Abs(a.X-b.X) >= positionEps ||
		math.Abs(a.Y-b.Y) >= positionEps ||
		math.Abs(a.Z-b.Z) >= positionEps
}
