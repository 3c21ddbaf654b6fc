// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

// Command crossview-demo drives a lightbox grid of slice tiles in the
// terminal. Moving the mouse writes the pointer position into the shared
// crosshair state; the resulting notifications reposition (and migrate)
// the overlay exactly as they would in a real viewer.
//
// Keys: m cycles the crosshair mode, t cycles the thickness, q quits.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/medview/crossview"
	"github.com/medview/crossview/lightbox"
	"github.com/medview/crossview/scene"
)

var (
	rows, cols   int
	tileW, tileH int
	colorHex     string
)

func main() {
	root := &cobra.Command{
		Use:   "crossview-demo",
		Short: "Interactive lightbox crosshair demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.Flags().IntVar(&rows, "rows", 1, "lightbox rows")
	root.Flags().IntVar(&cols, "cols", 2, "lightbox columns")
	root.Flags().IntVar(&tileW, "tile-width", 40, "tile width in cells")
	root.Flags().IntVar(&tileH, "tile-height", 20, "tile height in cells")
	root.Flags().StringVar(&colorHex, "color", "", "overlay color as #rrggbb (default crosshair yellow)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	overlayColor := crossview.DefaultColor()
	if colorHex != "" {
		c, err := colorful.Hex(colorHex)
		if err != nil {
			return fmt.Errorf("bad --color %q: %w", colorHex, err)
		}
		overlayColor = c
	}

	sc := scene.New()
	crosshair := crossview.NewCrosshair()
	sc.Import(crosshair, crossview.NewComposite("demo"))

	view := crossview.NewSliceView("demo")
	grid := lightbox.NewGrid(rows, cols, tileW, tileH)
	tiles := make([]*termTile, grid.Tiles())
	for i := range tiles {
		tiles[i] = &termTile{
			index: i,
			x:     (i % cols) * tileW,
			y:     (i / cols) * tileH,
			w:     tileW,
			h:     tileH,
		}
		grid.SetRenderer(i, tiles[i])
	}

	dirty := true
	sync := crossview.NewSync(sc, view,
		crossview.WithLayout(grid),
		crossview.WithColor(overlayColor),
		crossview.WithRedraw(func() { dirty = true }))
	if err := sync.OnViewChanged(); err != nil {
		return err
	}
	sync.OnInitialize()

	for {
		if dirty {
			draw(screen, tiles, crosshair)
			dirty = false
		}
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			dirty = true
		case *tcell.EventMouse:
			x, y := ev.Position()
			sync.OnPointerEvent(x, y)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'm':
				crosshair.SetMode(nextMode(crosshair.Mode()))
			case ev.Rune() == 't':
				crosshair.SetThickness(nextThickness(crosshair.Thickness()))
			}
		}
	}
}

func nextMode(m crossview.Mode) crossview.Mode {
	if m == crossview.ModeSmallIntersection {
		return crossview.ModeNone
	}
	return m + 1
}

func nextThickness(t crossview.Thickness) crossview.Thickness {
	if t == crossview.ThicknessThick {
		return crossview.ThicknessFine
	}
	return t + 1
}

// termTile renders one lightbox tile as a region of the terminal.
// It implements crossview.Renderer.
type termTile struct {
	index int
	x, y  int
	w, h  int
	actor *crossview.Actor
}

func (t *termTile) AddOverlay(a *crossview.Actor) { t.actor = a }

func (t *termTile) RemoveOverlay(a *crossview.Actor) {
	if t.actor == a {
		t.actor = nil
	}
}

func draw(screen tcell.Screen, tiles []*termTile, crosshair *crossview.Crosshair) {
	screen.Clear()
	for _, t := range tiles {
		t.drawBackground(screen)
		t.drawOverlay(screen)
	}
	if len(tiles) > 0 {
		last := tiles[len(tiles)-1]
		status := fmt.Sprintf(" mode=%v thickness=%v world=(%.0f, %.0f, %.0f)  [m/t/q] ",
			crosshair.Mode(), crosshair.Thickness(),
			crosshair.Position().X, crosshair.Position().Y, crosshair.Position().Z)
		drawText(screen, 0, last.y+last.h+1, status)
	}
	screen.Show()
}

func (t *termTile) drawBackground(screen tcell.Screen) {
	shade := tcell.NewRGBColor(24, 24, 28)
	if t.index%2 == 1 {
		shade = tcell.NewRGBColor(34, 34, 40)
	}
	style := tcell.StyleDefault.Background(shade)
	for dy := 0; dy < t.h; dy++ {
		for dx := 0; dx < t.w; dx++ {
			screen.SetContent(t.x+dx, t.y+dy, ' ', nil, style)
		}
	}
}

func (t *termTile) drawOverlay(screen tcell.Screen) {
	if t.actor == nil || !t.actor.Visible() {
		return
	}
	st := t.actor.Style()
	r, g, b := st.Color.RGB255()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

	pos := t.actor.Position()
	for _, seg := range t.actor.Mesh().Segments {
		t.drawSegment(screen, style, pos, seg, st.Width)
	}
}

// drawSegment plots one axis-aligned segment, clamped to the tile.
func (t *termTile) drawSegment(screen tcell.Screen, style tcell.Style, pos crossview.Point, seg crossview.Segment, width int) {
	x1, y1 := int(pos.X+seg.P1.X), int(pos.Y+seg.P1.Y)
	x2, y2 := int(pos.X+seg.P2.X), int(pos.Y+seg.P2.Y)

	horizontal := y1 == y2
	ch := '│'
	if horizontal {
		ch = '─'
	}
	if width >= 3 {
		ch = '┃'
		if horizontal {
			ch = '━'
		}
	}

	if horizontal {
		if y1 < 0 || y1 >= t.h {
			return
		}
		for x := max(x1, 0); x <= min(x2, t.w-1); x++ {
			screen.SetContent(t.x+x, t.y+y1, ch, nil, style)
		}
	} else {
		if x1 < 0 || x1 >= t.w {
			return
		}
		for y := max(y1, 0); y <= min(y2, t.h-1); y++ {
			screen.SetContent(t.x+x1, t.y+y, ch, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
