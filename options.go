package crossview

import "github.com/lucasb-eyer/go-colorful"

// Option configures a Sync during creation.
//
// Example:
//
//	sync := crossview.NewSync(sc, view,
//	    crossview.WithLayout(grid),
//	    crossview.WithRedraw(window.Invalidate),
//	)
type Option func(*Sync)

// WithLayout sets the tile layout collaborator: tile geometry, the device
// to view-local mapping, and tile-renderer resolution. Without a layout
// the sync still tracks state but never hosts the overlay on a tile.
func WithLayout(l Layout) Option {
	return func(s *Sync) {
		s.layout = l
	}
}

// WithRedraw sets the redraw request callback, invoked after every
// processed crosshair notification. The policy is deliberately
// conservative: a no-op classification still requests a redraw.
func WithRedraw(fn func()) Option {
	return func(s *Sync) {
		s.redraw = fn
	}
}

// WithColor overrides the overlay color. The default is DefaultColor.
func WithColor(c colorful.Color) Option {
	return func(s *Sync) {
		s.style.Color = c
	}
}

// WithOpacity overrides the overlay opacity in [0, 1]. The default is 1.
func WithOpacity(a float64) Option {
	return func(s *Sync) {
		s.style.Opacity = a
	}
}
